package store

import "errors"

var (
	// ErrLoad wraps any failure to read or parse the projects file
	ErrLoad = errors.New("failed to load projects")
	// ErrSave wraps any failure to write the projects file
	ErrSave = errors.New("failed to save projects")
)
