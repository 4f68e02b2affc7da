package repository

import "errors"

// Sentinel kinds for catalog errors.
var (
	ErrNotFound = errors.New("gene not found")
)
