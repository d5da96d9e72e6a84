package project

import (
	"errors"

	"github.com/thenoetrevino/tiles/internal/models"
)

// Domain errors for project service
var (
	// Validation errors
	ErrEmptyName   = errors.New("project name cannot be empty")
	ErrNameTooLong = errors.New("project name cannot exceed 100 characters")
	ErrEmptyPath   = errors.New("path cannot be empty")

	// Lookup errors
	ErrProjectNotFound = models.ErrProjectNotFound
	ErrAmbiguousID     = models.ErrAmbiguousID
	ErrPathNotFound    = errors.New("path does not exist")

	// OS errors
	ErrLaunchFailed   = errors.New("failed to start process")
	ErrReadmeTooLarge = errors.New("README is too large to display")
)
