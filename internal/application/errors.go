package application

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	ErrNotFound        = errors.New("not found")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrNothingToUpdate = errors.New("nothing to update")
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// UpdateError represents a failed write of a path into an item
type UpdateError struct {
	ItemID string
	Path   string
	Err    error
}

func (e *UpdateError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("cannot update %s: %v", e.ItemID, e.Err)
	}
	return fmt.Sprintf("cannot update %s at %s: %v", e.ItemID, e.Path, e.Err)
}

func (e *UpdateError) Unwrap() error {
	return e.Err
}
