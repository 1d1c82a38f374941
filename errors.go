package hexpress

import "errors"

var (
	// ErrNotFound is returned when a requested record does not exist.
	ErrNotFound = errors.New("hexpress: not found")

	// ErrAlreadyExists is returned when adding a category that is already present.
	ErrAlreadyExists = errors.New("hexpress: already exists")

	// ErrProtected is returned when deleting the reserved "All" category.
	ErrProtected = errors.New("hexpress: protected record")
)
