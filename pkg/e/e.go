// Package e holds the error taxonomy shared by services and handlers.
package e

import (
	"errors"
	"fmt"
)

// ErrNotFound signals that a referenced entity id does not resolve.
var ErrNotFound = errors.New("not found")

// ValidationError is a user-input problem. It always leaves state unmodified
// and is recoverable at the presentation boundary.
type ValidationError struct {
	Field  string
	Reason string
}

func (v *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s %s", v.Field, v.Reason)
}

// NewValidation builds a ValidationError naming the offending field.
func NewValidation(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// StorageError means the persistence layer failed. Write paths roll back
// fully before surfacing one of these.
type StorageError struct {
	Op  string
	Err error
}

func (s *StorageError) Error() string {
	return fmt.Sprintf("%s: storage failure: %v", s.Op, s.Err)
}

func (s *StorageError) Unwrap() error { return s.Err }

// AssetError means saving an uploaded blob failed. It is carried as a
// warning beside an otherwise successful mutation, never as the failure
// of the mutation itself.
type AssetError struct {
	Op  string
	Err error
}

func (a *AssetError) Error() string {
	return fmt.Sprintf("%s: asset storage failure: %v", a.Op, a.Err)
}

func (a *AssetError) Unwrap() error { return a.Err }

// Wrap adds operation context to an error
func Wrap(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
