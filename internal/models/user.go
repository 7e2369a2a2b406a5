package models

import (
	"fmt"
	"strings"
	"time"
)

// User is a local profile. A user is never mutated after creation.
type User struct {
	// Id is an opaque token assigned at creation.
	Id string
	// Name is the display name shown in the profile picker.
	Name string
	// CreatedAt is the creation time in UTC, millisecond precision.
	CreatedAt time.Time
}

// ValidateUserName rejects empty and whitespace-only names.
func ValidateUserName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: user name is required", ErrValidation)
	}
	return nil
}
