package repository

import "errors"

// Sentinel kinds for storage errors.
var (
	ErrNotFound = errors.New("event not found")
	ErrStorage  = errors.New("storage read failed")
)
