package repository

import "errors"

// ErrNotFound is returned when a requested row does not exist. Callers
// match it with errors.Is; wrapping adds the entity name.
var ErrNotFound = errors.New("not found")
