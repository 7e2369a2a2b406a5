package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/gametracker/internal/models"
)

func (a *App) Users(ctx context.Context) error {
	users := a.tr.ListUsers()
	if len(users) == 0 {
		a.println("No profiles yet. Create one with adduser.")
		return nil
	}
	cur := a.tr.CurrentUser()
	for _, u := range users {
		mark := " "
		if cur != nil && cur.Id == u.Id {
			mark = "*"
		}
		a.println(fmt.Sprintf("%s %s  %s  (since %s)", mark, u.Id, u.Name, u.CreatedAt.Local().Format("2006-01-02")))
	}
	return nil
}

func (a *App) AddUser(ctx context.Context, args []string) error {
	name := strings.Join(args, " ")
	if name == "" {
		var err error
		if name, err = a.prompt("Profile name"); err != nil {
			return err
		}
	}
	u, err := a.tr.CreateUser(ctx, name)
	if err != nil {
		return err
	}
	a.println(fmt.Sprintf("Created profile %s (%s). Use 'select %s' to switch to it.", u.Name, u.Id, u.Id))
	return nil
}

// findUser matches an id first, then a case-insensitive name.
func (a *App) findUser(args []string) (models.User, error) {
	if len(args) == 0 {
		return models.User{}, usage("expected a profile id or name")
	}
	key := strings.Join(args, " ")
	users := a.tr.ListUsers()
	for _, u := range users {
		if u.Id == key {
			return u, nil
		}
	}
	for _, u := range users {
		if strings.EqualFold(u.Name, key) {
			return u, nil
		}
	}
	return models.User{}, fmt.Errorf("no profile %q", key)
}

func (a *App) Select(ctx context.Context, args []string) error {
	u, err := a.findUser(args)
	if err != nil {
		return err
	}
	a.tr.SelectUser(ctx, u)
	a.println(fmt.Sprintf("Switched to %s: %d games.", u.Name, len(a.tr.ListGames())))
	return nil
}

func (a *App) DeleteUser(ctx context.Context, args []string) error {
	u, err := a.findUser(args)
	if err != nil {
		return err
	}
	a.tr.DeleteUser(ctx, u.Id)
	a.println(fmt.Sprintf("Deleted profile %s and its games.", u.Name))
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	a.tr.Logout(ctx)
	a.println("Logged out.")
	return nil
}
