package repository

import "errors"

// Sentinel kinds for repository errors.
var (
	ErrNotLoaded = errors.New("datasets not loaded")
)
