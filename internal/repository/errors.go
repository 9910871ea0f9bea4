package repository

import "errors"

// ErrNotFound is returned when a lookup matches no row. Callers treat it as
// a normal negative result, not a backend failure.
var ErrNotFound = errors.New("row not found")
