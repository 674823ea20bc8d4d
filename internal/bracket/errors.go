package bracket

import "errors"

// Business errors shared across services and the HTTP mapping.
var (
	ErrValidation     = errors.New("validation failed")
	ErrTournamentFull = errors.New("tournament is full (max 16 teams)")
	ErrUnauthorized   = errors.New("admin authorization required")
	ErrNotFound       = errors.New("requested resource not found")
)
