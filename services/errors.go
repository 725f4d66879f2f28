package services

import "errors"

// MissingFieldError names the first required field absent from an intake
// body.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return "missing required field: " + e.Field
}

var (
	ErrInvalidProduct     = errors.New("invalid product reference")
	ErrInvalidStatus      = errors.New("invalid status value")
	ErrInvalidNotes       = errors.New("notes must be a list of strings")
	ErrInvalidCategory    = errors.New("invalid product category")
	ErrInvalidID          = errors.New("invalid id")
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
