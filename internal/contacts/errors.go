package contacts

import (
	"errors"
	"fmt"
)

// Sentinel errors wrapped by ValidationError and NotFoundError.
var (
	ErrInvalidPhone = errors.New("phone number must be 10 digits")
	ErrInvalidDate  = errors.New("birthday must be a valid date")
	ErrEmptyName    = errors.New("contact name cannot be empty")
	ErrNotFound     = errors.New("contact not found")
)

// ValidationError reports a field value that failed validation.
// It unwraps to one of the sentinel errors above.
type ValidationError struct {
	Field string
	Value string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("contacts: invalid %s %q: %v", e.Field, e.Value, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NotFoundError indicates that no record is stored under Name.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("contacts: %q: %v", e.Name, ErrNotFound)
}

// Is reports whether target is ErrNotFound.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
