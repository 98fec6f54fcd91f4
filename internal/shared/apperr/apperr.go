package apperr

import "errors"

// Taxonomy shared by every service layer. Repositories translate store
// errors into these; httpx maps them onto status codes.
var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrInvalid      = errors.New("invalid")
)
