package book

import (
	"errors"
	"fmt"
	"strings"
)

/* Domain errors are typed so the HTTP layer can map them to status codes
 * with errors.Is / errors.As instead of matching on message strings
 */

// ErrNotFound is returned when no live record has the requested id.
var ErrNotFound = errors.New("book not found")

// ErrDuplicate is returned when a create or update would leave two live
// records with the same (title, author) pair, compared case-insensitively.
var ErrDuplicate = errors.New("a book with this title and author already exists")

// ErrEmptyQuery is returned when a search query is empty after trimming.
var ErrEmptyQuery = errors.New("search query must not be empty")

// FieldError describes one validation failure on one field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries every field-level violation found in a payload.
// Rules are evaluated independently, so Fields holds all failures, not
// just the first one.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// add records a failure for field only when ok is false.
func (e *ValidationError) add(ok bool, field, message string) {
	if !ok {
		e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
	}
}

// orNil returns the error itself when it holds failures, nil otherwise.
func (e *ValidationError) orNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}
