package catalog

import (
	"github.com/dmitrijs2005/gametracker/internal/models"
)

type named struct {
	Name string `json:"name"`
}

type platformRef struct {
	Platform named `json:"platform"`
}

// Summary is one search hit.
type Summary struct {
	ID              int
	Name            string
	BackgroundImage string
	Released        string
	Rating          float64
	Platforms       []string
	Genres          []string
}

// Enrich copies the catalog fields of s into f. The platform is only filled
// when f has none, using the first platform the service lists.
func (s Summary) Enrich(f *models.GameFields) {
	f.ExternalID = s.ID
	f.CoverImage = s.BackgroundImage
	if f.Title == "" {
		f.Title = s.Name
	}
	if f.Platform == "" && len(s.Platforms) > 0 {
		f.Platform = s.Platforms[0]
	}
}

// Details is the full record for one game.
type Details struct {
	ID                        int
	Name                      string
	Description               string
	BackgroundImage           string
	BackgroundImageAdditional string
	Released                  string
	Rating                    float64
	RatingsCount              int
	// Metacritic is nil when the service has no critic score.
	Metacritic *int
	Playtime   int
	Platforms  []string
	Genres     []string
	Developers []string
	Publishers []string
	// ESRBRating is empty when the service has no content rating.
	ESRBRating string
	Website    string
}

type searchResponse struct {
	Count   int          `json:"count"`
	Results []gameResult `json:"results"`
}

type gameResult struct {
	ID              int           `json:"id"`
	Name            string        `json:"name"`
	BackgroundImage string        `json:"background_image"`
	Released        string        `json:"released"`
	Rating          float64       `json:"rating"`
	Platforms       []platformRef `json:"platforms"`
	Genres          []named       `json:"genres"`
}

func (r gameResult) summary() Summary {
	return Summary{
		ID:              r.ID,
		Name:            r.Name,
		BackgroundImage: r.BackgroundImage,
		Released:        r.Released,
		Rating:          r.Rating,
		Platforms:       platformNames(r.Platforms),
		Genres:          names(r.Genres),
	}
}

type detailsResponse struct {
	ID                        int           `json:"id"`
	Name                      string        `json:"name"`
	DescriptionRaw            string        `json:"description_raw"`
	BackgroundImage           string        `json:"background_image"`
	BackgroundImageAdditional string        `json:"background_image_additional"`
	Released                  string        `json:"released"`
	Rating                    float64       `json:"rating"`
	RatingsCount              int           `json:"ratings_count"`
	Metacritic                *int          `json:"metacritic"`
	Playtime                  int           `json:"playtime"`
	Platforms                 []platformRef `json:"platforms"`
	Genres                    []named       `json:"genres"`
	Developers                []named       `json:"developers"`
	Publishers                []named       `json:"publishers"`
	ESRBRating                *named        `json:"esrb_rating"`
	Website                   string        `json:"website"`
}

func (r detailsResponse) details() *Details {
	d := &Details{
		ID:                        r.ID,
		Name:                      r.Name,
		Description:               r.DescriptionRaw,
		BackgroundImage:           r.BackgroundImage,
		BackgroundImageAdditional: r.BackgroundImageAdditional,
		Released:                  r.Released,
		Rating:                    r.Rating,
		RatingsCount:              r.RatingsCount,
		Metacritic:                r.Metacritic,
		Playtime:                  r.Playtime,
		Platforms:                 platformNames(r.Platforms),
		Genres:                    names(r.Genres),
		Developers:                names(r.Developers),
		Publishers:                names(r.Publishers),
		Website:                   r.Website,
	}
	if r.ESRBRating != nil {
		d.ESRBRating = r.ESRBRating.Name
	}
	return d
}

type errorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail"`
}

func names(in []named) []string {
	out := make([]string, 0, len(in))
	for _, n := range in {
		out = append(out, n.Name)
	}
	return out
}

func platformNames(in []platformRef) []string {
	out := make([]string, 0, len(in))
	for _, p := range in {
		out = append(out, p.Platform.Name)
	}
	return out
}
