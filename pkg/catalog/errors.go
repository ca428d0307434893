package catalog

import "errors"

var (
	// ErrInvalidEntry wraps the validation errors returned by Checker.Check.
	ErrInvalidEntry = errors.New("invalid book entry")

	// ErrInvalidConfig is returned when a Config value cannot be interpreted.
	ErrInvalidConfig = errors.New("invalid catalog config")
)
