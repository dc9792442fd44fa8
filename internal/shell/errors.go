package shell

import (
	"errors"
	"fmt"

	"github.com/smileynet/assistant/internal/contacts"
)

// ArityError indicates a command received the wrong number of arguments.
// Message is shown to the user as-is.
type ArityError struct {
	Command string
	Got     int
	Message string
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("%s: %d arguments: %s", e.Command, e.Got, e.Message)
}

// Describe converts a handler error into the reply shown to the user.
// Known failures become "Error: ..." lines, lookup misses become
// "Contact not found.", and anything else is reported as unexpected.
func Describe(err error) string {
	var ae *ArityError
	switch {
	case errors.As(err, &ae):
		return "Error: " + ae.Message
	case errors.Is(err, contacts.ErrNotFound):
		return msgContactNotFound
	case errors.Is(err, contacts.ErrInvalidPhone):
		return "Error: Phone number must be 10 digits."
	case errors.Is(err, contacts.ErrInvalidDate):
		return "Error: " + msgInvalidDate
	case errors.Is(err, contacts.ErrEmptyName):
		return "Error: Contact name cannot be empty."
	}
	return "Unexpected error: " + err.Error()
}
