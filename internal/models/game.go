package models

import (
	"fmt"
	"strings"
	"time"
)

// GameStatus classifies a game as pending or finished.
type GameStatus string

const (
	StatusBacklog GameStatus = "backlog"
	StatusPlayed  GameStatus = "played"
)

const (
	MinRating = 1
	MaxRating = 5
)

// Valid reports whether s is a known status.
func (s GameStatus) Valid() bool {
	return s == StatusBacklog || s == StatusPlayed
}

// Game is a single entry in a user's library.
type Game struct {
	Id       string
	Title    string
	Platform string
	Status   GameStatus

	// Rating is nil unless the game is played and has been rated.
	Rating *int
	Notes  string

	DateAdded     time.Time
	DateCompleted *time.Time

	// Enrichment from the catalog. Empty/zero means absent.
	CoverImage string
	ExternalID int
}

// GameFields is the caller-supplied part of a new Game.
// Id and DateAdded are assigned by the library.
type GameFields struct {
	Title         string
	Platform      string
	Status        GameStatus
	Rating        *int
	Notes         string
	DateCompleted *time.Time
	CoverImage    string
	ExternalID    int
}

// GameUpdate is a partial update. Nil fields are left untouched.
type GameUpdate struct {
	Title         *string
	Platform      *string
	Status        *GameStatus
	Rating        *int
	ClearRating   bool
	Notes         *string
	DateCompleted *time.Time
	CoverImage    *string
	ExternalID    *int
}

// NewGame builds a Game from fields, applying the status rules at now.
func NewGame(id string, f GameFields, now time.Time) Game {
	g := Game{
		Id:         id,
		Title:      strings.TrimSpace(f.Title),
		Platform:   f.Platform,
		Status:     f.Status,
		Rating:     cloneInt(f.Rating),
		Notes:      f.Notes,
		DateAdded:  now,
		CoverImage: f.CoverImage,
		ExternalID: f.ExternalID,
	}
	if g.Status == "" {
		g.Status = StatusBacklog
	}
	if f.DateCompleted != nil {
		t := *f.DateCompleted
		g.DateCompleted = &t
	}
	if g.Status == StatusPlayed && g.DateCompleted == nil {
		g.DateCompleted = &now
	}
	return g
}

// Validate checks the fields before a Game is built from them.
func (f GameFields) Validate() error {
	status := f.Status
	if status == "" {
		status = StatusBacklog
	}
	g := Game{Title: f.Title, Status: status, Rating: f.Rating, DateCompleted: f.DateCompleted}
	return g.Validate()
}

// Validate checks the record invariants.
func (g Game) Validate() error {
	if strings.TrimSpace(g.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrValidation)
	}
	if !g.Status.Valid() {
		return fmt.Errorf("%w: unknown status %q", ErrValidation, g.Status)
	}
	if g.Rating != nil && (*g.Rating < MinRating || *g.Rating > MaxRating) {
		return fmt.Errorf("%w: rating must be between %d and %d", ErrValidation, MinRating, MaxRating)
	}
	if g.Status == StatusBacklog {
		if g.Rating != nil {
			return fmt.Errorf("%w: backlog games cannot be rated", ErrValidation)
		}
		if g.DateCompleted != nil {
			return fmt.Errorf("%w: backlog games cannot have a completion date", ErrValidation)
		}
	}
	return nil
}

// MoveToBacklog marks the game as not played and drops the rating and
// completion date.
func (g *Game) MoveToBacklog() {
	g.Status = StatusBacklog
	g.Rating = nil
	g.DateCompleted = nil
}

// MoveToPlayed marks the game as played and stamps the completion date with
// now, even when it was already played.
func (g *Game) MoveToPlayed(now time.Time) {
	g.Status = StatusPlayed
	g.DateCompleted = &now
}

// Apply merges u into a copy of g. The status transition is applied first,
// then explicit field values, so an update can move a game to played and
// rate it in one step. The result is validated.
func (g Game) Apply(u GameUpdate, now time.Time) (Game, error) {
	out := g.Clone()

	if u.Status != nil && *u.Status != out.Status {
		switch *u.Status {
		case StatusBacklog:
			out.MoveToBacklog()
		case StatusPlayed:
			out.MoveToPlayed(now)
		default:
			return g, fmt.Errorf("%w: unknown status %q", ErrValidation, *u.Status)
		}
	}
	if u.Title != nil {
		out.Title = strings.TrimSpace(*u.Title)
	}
	if u.Platform != nil {
		out.Platform = *u.Platform
	}
	if u.ClearRating {
		out.Rating = nil
	}
	if u.Rating != nil {
		out.Rating = cloneInt(u.Rating)
	}
	if u.Notes != nil {
		out.Notes = *u.Notes
	}
	if u.DateCompleted != nil {
		t := *u.DateCompleted
		out.DateCompleted = &t
	}
	if u.CoverImage != nil {
		out.CoverImage = *u.CoverImage
	}
	if u.ExternalID != nil {
		out.ExternalID = *u.ExternalID
	}

	if err := out.Validate(); err != nil {
		return g, err
	}
	return out, nil
}

// Clone returns a deep copy of g.
func (g Game) Clone() Game {
	out := g
	out.Rating = cloneInt(g.Rating)
	if g.DateCompleted != nil {
		t := *g.DateCompleted
		out.DateCompleted = &t
	}
	return out
}

func cloneInt(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// IntPtr is a helper for optional integer fields.
func IntPtr(v int) *int { return &v }

// TimePtr is a helper for optional time fields.
func TimePtr(t time.Time) *time.Time { return &t }
