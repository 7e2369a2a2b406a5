package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/gametracker/internal/catalog"
	"github.com/dmitrijs2005/gametracker/internal/tracker"
)

var errNoProfile = tracker.ErrNoCurrentUser

func (a *App) catalogError(err error) error {
	switch {
	case errors.Is(err, catalog.ErrInvalidAPIKey):
		return fmt.Errorf("%w; enter a valid one with setkey", err)
	case errors.Is(err, catalog.ErrNotConfigured):
		return fmt.Errorf("%w; set one with setkey, -k or RAWG_API_KEY", err)
	default:
		return err
	}
}

// Search lists catalog hits and offers to add one to the current profile.
func (a *App) Search(ctx context.Context, args []string) error {
	title := strings.Join(args, " ")
	if title == "" {
		return usage("search <title>")
	}

	hits, err := a.tr.Search(ctx, title)
	if err != nil {
		return a.catalogError(err)
	}
	a.lastSearch = hits
	if len(hits) == 0 {
		a.println("No matches.")
		return nil
	}
	for i, h := range hits {
		a.println(fmt.Sprintf("%2d. %s", i+1, formatSummary(h)))
	}

	if !a.hasProfile() {
		return nil
	}
	pick, err := a.prompt("Number to add (empty to skip)")
	if err != nil || pick == "" {
		return err
	}
	n, err := strconv.Atoi(pick)
	if err != nil || n < 1 || n > len(hits) {
		return usage("pick a number between 1 and %d", len(hits))
	}
	status, err := a.promptStatus()
	if err != nil {
		return err
	}

	g, err := a.tr.AddFromCatalog(ctx, hits[n-1], status)
	if err != nil {
		return err
	}
	a.println("Added:", formatGame(g))
	return nil
}

// Details accepts a library game id, or a RAWG id when no game matches.
func (a *App) Details(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usage("details <id>")
	}

	var rawgID int
	if g, ok := a.tr.Game(args[0]); ok {
		if g.ExternalID == 0 {
			a.println(fmt.Sprintf("%s was added by hand and has no catalog record.", g.Title))
			return nil
		}
		rawgID = g.ExternalID
	} else {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("no game with id %s", args[0])
		}
		rawgID = n
	}

	d, err := a.tr.FetchDetails(ctx, rawgID)
	if err != nil {
		return a.catalogError(err)
	}
	if d == nil {
		a.println("No catalog record.")
		return nil
	}
	a.println(formatDetails(d))
	return nil
}

func (a *App) SetKey(ctx context.Context) error {
	key, err := GetSecret("RAWG API key", a.out)
	if err != nil {
		return err
	}
	a.tr.SetAPIKey(key)
	if a.tr.CatalogConfigured() {
		a.println("API key set for this session.")
	} else {
		a.println("API key cleared.")
	}
	return nil
}
