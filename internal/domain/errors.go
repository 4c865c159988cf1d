package domain

import "errors"

// Sentinel errors shared across repositories and services. Repositories
// translate driver-level failures (no rows, unique or foreign-key violations)
// into these so callers can map them to HTTP status codes without importing
// the driver.
var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("duplicate value")
	ErrRender   = errors.New("report rendering failed")
)
