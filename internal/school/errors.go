package school

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation is matched by every *ValidationError through errors.Is.
	ErrValidation = errors.New("validation failed")

	// ErrDuplicateID is matched by every *DuplicateIDError through errors.Is.
	ErrDuplicateID = errors.New("duplicate id")
)

// ValidationError reports a rejected input value and the field it was meant for.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// DuplicateIDError is returned when an entity is added under an id the
// school already holds. Kind is "student" or "classroom".
type DuplicateIDError struct {
	Kind string
	ID   int
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("%s with id %d already exists", e.Kind, e.ID)
}

func (e *DuplicateIDError) Is(target error) bool {
	return target == ErrDuplicateID
}

func invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
