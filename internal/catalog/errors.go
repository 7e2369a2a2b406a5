package catalog

import "errors"

var (
	ErrNotConfigured = errors.New("catalog API key not configured")
	ErrInvalidAPIKey = errors.New("catalog API key rejected")
	ErrUnavailable   = errors.New("catalog unavailable")
	ErrNotFound      = errors.New("game not found in catalog")
	ErrSuperseded    = errors.New("lookup superseded by a newer request")
)
