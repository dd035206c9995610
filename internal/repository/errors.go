// Package repository defines error values shared across repositories.
// These sentinels let handlers distinguish failure scenarios without
// inspecting driver errors: ErrNotFound maps to an HTTP 404 for every
// id-scoped get, update and delete.
package repository

import "errors"

// ErrNotFound is returned when an id-scoped operation matches no row.
var ErrNotFound = errors.New("record not found")
