package repository

import "errors"

// Storage-boundary errors. Implementations translate driver-specific
// failures into these so the application layer never sees pgx types.
var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("already exists")
)
