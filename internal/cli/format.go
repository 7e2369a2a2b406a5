package cli

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/gametracker/internal/catalog"
	"github.com/dmitrijs2005/gametracker/internal/models"
)

func formatGame(g models.Game) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s", g.Id, g.Title)
	if g.Platform != "" {
		fmt.Fprintf(&b, " (%s)", g.Platform)
	}
	fmt.Fprintf(&b, " - %s", g.Status)
	if g.Rating != nil {
		fmt.Fprintf(&b, " %s", strings.Repeat("*", *g.Rating))
	}
	if g.DateCompleted != nil {
		fmt.Fprintf(&b, ", completed %s", g.DateCompleted.Local().Format("2006-01-02"))
	}
	if g.Notes != "" {
		fmt.Fprintf(&b, "\n    %s", strings.ReplaceAll(g.Notes, "\n", "\n    "))
	}
	return b.String()
}

func formatSummary(s catalog.Summary) string {
	var b strings.Builder
	b.WriteString(s.Name)
	if s.Released != "" {
		fmt.Fprintf(&b, " (%s)", s.Released[:min(4, len(s.Released))])
	}
	if len(s.Platforms) > 0 {
		fmt.Fprintf(&b, " - %s", strings.Join(s.Platforms, ", "))
	}
	fmt.Fprintf(&b, " [rawg %d]", s.ID)
	return b.String()
}

func formatDetails(d *catalog.Details) string {
	var b strings.Builder
	line := func(label, value string) {
		if value != "" {
			fmt.Fprintf(&b, "%-12s %s\n", label+":", value)
		}
	}
	fmt.Fprintf(&b, "%s [rawg %d]\n", d.Name, d.ID)
	line("Released", d.Released)
	if d.Rating > 0 {
		line("Rating", fmt.Sprintf("%.2f (%d ratings)", d.Rating, d.RatingsCount))
	}
	if d.Metacritic != nil {
		line("Metacritic", fmt.Sprint(*d.Metacritic))
	}
	if d.Playtime > 0 {
		line("Playtime", fmt.Sprintf("%dh", d.Playtime))
	}
	line("Platforms", strings.Join(d.Platforms, ", "))
	line("Genres", strings.Join(d.Genres, ", "))
	line("Developers", strings.Join(d.Developers, ", "))
	line("Publishers", strings.Join(d.Publishers, ", "))
	line("ESRB", d.ESRBRating)
	line("Website", d.Website)
	if d.Description != "" {
		fmt.Fprintf(&b, "\n%s\n", d.Description)
	}
	return strings.TrimRight(b.String(), "\n")
}
