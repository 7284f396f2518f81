package repository

import "errors"

// ErrNotFound is returned when a mutation matched no remote row.
var ErrNotFound = errors.New("no matching row in remote collection")
