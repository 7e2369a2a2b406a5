package models

import "errors"

// ErrValidation is returned when a record would violate an invariant.
// Callers get it wrapped with a field-specific message.
var ErrValidation = errors.New("validation error")
