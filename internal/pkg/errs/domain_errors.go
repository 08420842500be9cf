package errs

import "errors"

// Error kinds shared by the use case layer. Lower-level errors are marked with
// one of these so handlers can pick a status code with errors.Is.
var (
	ErrValidation     = errors.New("validation failed")
	ErrNotFound       = errors.New("not found")
	ErrStateConflict  = errors.New("state conflict")
	ErrForbidden      = errors.New("forbidden")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrUnavailable    = errors.New("dependency unavailable")
	ErrInfrastructure = errors.New("infrastructure failure")
)
