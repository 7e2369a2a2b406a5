package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gametracker/internal/models"
)

// SchemaVersion is the version written by Encode* functions.
const SchemaVersion = 1

var (
	ErrEmpty             = errors.New("empty input")
	ErrUnsupportedSchema = errors.New("unsupported schema version")
	ErrMissingID         = errors.New("record has no id")
)

type envelope struct {
	Schema int             `json:"schema"`
	Data   json.RawMessage `json:"data"`
}

type userDTO struct {
	Id        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt int64  `json:"createdAt"`
}

type gameDTO struct {
	Id            string            `json:"id"`
	Title         string            `json:"title"`
	Platform      string            `json:"platform,omitempty"`
	Status        models.GameStatus `json:"status"`
	Rating        *int              `json:"rating,omitempty"`
	Notes         string            `json:"notes,omitempty"`
	DateAdded     int64             `json:"dateAdded"`
	DateCompleted *int64            `json:"dateCompleted,omitempty"`
	CoverImage    string            `json:"coverImage,omitempty"`
	ExternalID    int               `json:"rawgId,omitempty"`
}

func fromMillis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}

func userToDTO(u models.User) userDTO {
	return userDTO{Id: u.Id, Name: u.Name, CreatedAt: u.CreatedAt.UnixMilli()}
}

func (d userDTO) model() (models.User, error) {
	if d.Id == "" {
		return models.User{}, ErrMissingID
	}
	return models.User{Id: d.Id, Name: d.Name, CreatedAt: fromMillis(d.CreatedAt)}, nil
}

func gameToDTO(g models.Game) gameDTO {
	d := gameDTO{
		Id:         g.Id,
		Title:      g.Title,
		Platform:   g.Platform,
		Status:     g.Status,
		Notes:      g.Notes,
		DateAdded:  g.DateAdded.UnixMilli(),
		CoverImage: g.CoverImage,
		ExternalID: g.ExternalID,
	}
	if g.Rating != nil {
		r := *g.Rating
		d.Rating = &r
	}
	if g.DateCompleted != nil {
		ms := g.DateCompleted.UnixMilli()
		d.DateCompleted = &ms
	}
	return d
}

func (d gameDTO) model() (models.Game, error) {
	if d.Id == "" {
		return models.Game{}, ErrMissingID
	}
	g := models.Game{
		Id:         d.Id,
		Title:      d.Title,
		Platform:   d.Platform,
		Status:     d.Status,
		Notes:      d.Notes,
		DateAdded:  fromMillis(d.DateAdded),
		CoverImage: d.CoverImage,
		ExternalID: d.ExternalID,
	}
	if g.Status == "" {
		g.Status = models.StatusBacklog
	}
	if d.Rating != nil {
		r := *d.Rating
		g.Rating = &r
	}
	if d.DateCompleted != nil {
		t := fromMillis(*d.DateCompleted)
		g.DateCompleted = &t
	}
	return g, nil
}

func encode(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return json.Marshal(envelope{Schema: SchemaVersion, Data: data})
}

// payload strips the envelope. Input without one is returned as is.
func payload(b []byte) ([]byte, error) {
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		return nil, ErrEmpty
	}
	if b[0] != '{' {
		return b, nil
	}

	var probe map[string]json.RawMessage
	if err := json.Unmarshal(b, &probe); err != nil {
		return nil, err
	}
	if _, ok := probe["schema"]; !ok {
		return b, nil
	}

	var env envelope
	if err := json.Unmarshal(b, &env); err != nil {
		return nil, err
	}
	if env.Schema < 1 || env.Schema > SchemaVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedSchema, env.Schema)
	}
	return env.Data, nil
}

func decode[T any](what string, b []byte) (T, error) {
	var out T
	data, err := payload(b)
	if err != nil {
		return out, &DecodeError{What: what, Err: err}
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return out, &DecodeError{What: what, Err: err}
	}
	return out, nil
}

// EncodeUser encodes a single user.
func EncodeUser(u models.User) ([]byte, error) {
	return encode(userToDTO(u))
}

// DecodeUser decodes a single user.
func DecodeUser(b []byte) (models.User, error) {
	d, err := decode[userDTO]("user", b)
	if err != nil {
		return models.User{}, err
	}
	u, err := d.model()
	if err != nil {
		return models.User{}, &DecodeError{What: "user", Err: err}
	}
	return u, nil
}

// EncodeUsers encodes the profile list, preserving order.
func EncodeUsers(users []models.User) ([]byte, error) {
	dtos := make([]userDTO, 0, len(users))
	for _, u := range users {
		dtos = append(dtos, userToDTO(u))
	}
	return encode(dtos)
}

// DecodeUsers decodes the profile list.
func DecodeUsers(b []byte) ([]models.User, error) {
	dtos, err := decode[[]userDTO]("users", b)
	if err != nil {
		return nil, err
	}
	users := make([]models.User, 0, len(dtos))
	for i, d := range dtos {
		u, err := d.model()
		if err != nil {
			return nil, &DecodeError{What: fmt.Sprintf("users[%d]", i), Err: err}
		}
		users = append(users, u)
	}
	return users, nil
}

// EncodeGame encodes a single game.
func EncodeGame(g models.Game) ([]byte, error) {
	return encode(gameToDTO(g))
}

// DecodeGame decodes a single game.
func DecodeGame(b []byte) (models.Game, error) {
	d, err := decode[gameDTO]("game", b)
	if err != nil {
		return models.Game{}, err
	}
	g, err := d.model()
	if err != nil {
		return models.Game{}, &DecodeError{What: "game", Err: err}
	}
	return g, nil
}

// EncodeGames encodes a game collection, preserving order.
func EncodeGames(games []models.Game) ([]byte, error) {
	dtos := make([]gameDTO, 0, len(games))
	for _, g := range games {
		dtos = append(dtos, gameToDTO(g))
	}
	return encode(dtos)
}

// DecodeGames decodes a game collection.
func DecodeGames(b []byte) ([]models.Game, error) {
	dtos, err := decode[[]gameDTO]("games", b)
	if err != nil {
		return nil, err
	}
	games := make([]models.Game, 0, len(dtos))
	for i, d := range dtos {
		g, err := d.model()
		if err != nil {
			return nil, &DecodeError{What: fmt.Sprintf("games[%d]", i), Err: err}
		}
		games = append(games, g)
	}
	return games, nil
}
