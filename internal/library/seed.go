package library

import (
	"time"

	"github.com/dmitrijs2005/gametracker/internal/models"
)

const day = 24 * time.Hour

// DemoGames returns the first-run library, dated relative to now.
func DemoGames(now time.Time) []models.Game {
	ago := func(days int) time.Time { return now.Add(-time.Duration(days) * day) }

	return []models.Game{
		{
			Id:            "1",
			Title:         "The Legend of Zelda: Breath of the Wild",
			Platform:      "Nintendo Switch",
			Status:        models.StatusPlayed,
			Rating:        models.IntPtr(5),
			DateAdded:     ago(30),
			DateCompleted: models.TimePtr(ago(15)),
			CoverImage:    "https://media.rawg.io/media/games/cc1/cc196a5ad763955d6532cdba236f730c.jpg",
			ExternalID:    22511,
		},
		{
			Id:         "2",
			Title:      "Elden Ring",
			Platform:   "PlayStation 5",
			Status:     models.StatusBacklog,
			DateAdded:  ago(10),
			CoverImage: "https://media.rawg.io/media/games/5ec/5ecac5cb026ec26a56efcc546364e348.jpg",
			ExternalID: 326243,
		},
		{
			Id:            "3",
			Title:         "Hollow Knight",
			Platform:      "PC",
			Status:        models.StatusPlayed,
			Rating:        models.IntPtr(5),
			DateAdded:     ago(60),
			DateCompleted: models.TimePtr(ago(45)),
			CoverImage:    "https://media.rawg.io/media/games/4cf/4cfc6b7f1850590a4634b08bfab308ab.jpg",
			ExternalID:    9767,
		},
		{
			Id:         "4",
			Title:      "Cyberpunk 2077",
			Platform:   "PC",
			Status:     models.StatusBacklog,
			DateAdded:  ago(5),
			CoverImage: "https://media.rawg.io/media/games/26d/26d4437715bee60138dab4a7c8c59c92.jpg",
			ExternalID: 41494,
		},
	}
}
