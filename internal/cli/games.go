package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/gametracker/internal/models"
)

func (a *App) List(ctx context.Context, shelf string) error {
	var games []models.Game
	switch shelf {
	case shelfPlayed:
		games = a.tr.PlayedGames()
	case shelfBacklog:
		games = a.tr.BacklogGames()
	default:
		games = a.tr.ListGames()
	}
	if !a.hasProfile() {
		a.println("No profile selected.")
		return nil
	}
	if len(games) == 0 {
		a.println("Nothing here.")
		return nil
	}
	for _, g := range games {
		a.println(formatGame(g))
	}
	return nil
}

func (a *App) Add(ctx context.Context) error {
	if !a.hasProfile() {
		return errNoProfile
	}

	title, err := a.prompt("Title")
	if err != nil {
		return err
	}
	platform, err := a.prompt("Platform (optional)")
	if err != nil {
		return err
	}
	status, err := a.promptStatus()
	if err != nil {
		return err
	}

	f := models.GameFields{Title: title, Platform: platform, Status: status}
	if status == models.StatusPlayed {
		raw, err := a.prompt("Rating 1-5 (empty for none)")
		if err != nil {
			return err
		}
		if raw != "" {
			r, err := strconv.Atoi(raw)
			if err != nil {
				return fmt.Errorf("%w: rating %q is not a number", models.ErrValidation, raw)
			}
			f.Rating = &r
		}
	}
	if f.Notes, err = GetMultiline(a.reader, "Notes (optional)", a.out); err != nil {
		return err
	}

	g, err := a.tr.AddGame(ctx, f)
	if err != nil {
		return err
	}
	a.println("Added:", formatGame(g))
	return nil
}

func (a *App) promptStatus() (models.GameStatus, error) {
	raw, err := a.prompt("Status: backlog or played (default backlog)")
	if err != nil {
		return "", err
	}
	switch strings.ToLower(raw) {
	case "", "b", string(models.StatusBacklog):
		return models.StatusBacklog, nil
	case "p", string(models.StatusPlayed):
		return models.StatusPlayed, nil
	default:
		return "", fmt.Errorf("%w: unknown status %q", models.ErrValidation, raw)
	}
}

func (a *App) Rate(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return usage("rate <id> <1-5|clear>")
	}
	u := models.GameUpdate{}
	if args[1] == "clear" {
		u.ClearRating = true
	} else {
		r, err := strconv.Atoi(args[1])
		if err != nil {
			return usage("rating must be 1-5 or clear")
		}
		u.Rating = &r
	}
	return a.update(ctx, args[0], u)
}

func (a *App) Note(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usage("note <id> [text]")
	}
	text := strings.Join(args[1:], " ")
	if text == "" {
		var err error
		if text, err = GetMultiline(a.reader, "Notes", a.out); err != nil {
			return err
		}
	}
	return a.update(ctx, args[0], models.GameUpdate{Notes: &text})
}

func (a *App) update(ctx context.Context, id string, u models.GameUpdate) error {
	found, err := a.tr.UpdateGame(ctx, id, u)
	if err != nil {
		return err
	}
	return a.report(id, found, "Updated")
}

func (a *App) Delete(ctx context.Context, args []string) error {
	return a.byID(args, "delete <id>", "Deleted", func(id string) (bool, error) {
		return a.tr.DeleteGame(ctx, id)
	})
}

func (a *App) ToBacklog(ctx context.Context, args []string) error {
	return a.byID(args, "tobacklog <id>", "Moved to backlog", func(id string) (bool, error) {
		return a.tr.MoveToBacklog(ctx, id)
	})
}

func (a *App) ToPlayed(ctx context.Context, args []string) error {
	return a.byID(args, "toplayed <id>", "Marked played", func(id string) (bool, error) {
		return a.tr.MoveToPlayed(ctx, id)
	})
}

func (a *App) byID(args []string, syntax, done string, fn func(string) (bool, error)) error {
	if len(args) != 1 {
		return usage(syntax)
	}
	found, err := fn(args[0])
	if err != nil {
		return err
	}
	return a.report(args[0], found, done)
}

func (a *App) report(id string, found bool, done string) error {
	if !found {
		return fmt.Errorf("no game with id %s", id)
	}
	if g, ok := a.tr.Game(id); ok {
		a.println(done+":", formatGame(g))
	} else {
		a.println(done, id)
	}
	return nil
}
