package models

import "errors"

// Domain errors shared between the store, the service and the UIs
var (
	// ErrProjectNotFound indicates that no project carries the given identifier
	ErrProjectNotFound = errors.New("project not found")

	// ErrAmbiguousID indicates that an identifier prefix matches more than one project
	ErrAmbiguousID = errors.New("project identifier is ambiguous")
)
