package chi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/SahandMohammed/simple-book-management-app/book"
)

/* Every endpoint answers with the same envelope: a success flag plus
 * either data (with an optional count) or a message with machine-usable
 * error detail. Domain errors are mapped to status codes here, at the
 * boundary, so nothing below this layer knows about HTTP
 */

// dataResponse is the success envelope
type dataResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Count   *int        `json:"count,omitempty"`
	Query   string      `json:"query,omitempty"`
}

// errorResponse is the failure envelope
type errorResponse struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Errors  []book.FieldError `json:"errors,omitempty"`
}

// healthResponse is the /api/health body
type healthResponse struct {
	Success   bool      `json:"success"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// responder maps outcomes to envelopes.
// development controls whether 500 bodies carry the underlying error
type responder struct {
	development bool
}

// ok writes a success envelope
func (re *responder) ok(w http.ResponseWriter, status int, body dataResponse) {
	body.Success = true
	writeJSON(w, status, body)
}

// fail writes a failure envelope
func (re *responder) fail(w http.ResponseWriter, status int, message string, fields []book.FieldError) {
	writeJSON(w, status, errorResponse{
		Success: false,
		Message: message,
		Errors:  fields,
	})
}

// domainError converts a service error into the right status and body
func (re *responder) domainError(w http.ResponseWriter, err error) {
	var ve *book.ValidationError
	switch {
	case errors.As(err, &ve):
		re.fail(w, http.StatusBadRequest, "validation failed", ve.Fields)
	case errors.Is(err, book.ErrNotFound):
		re.fail(w, http.StatusNotFound, book.ErrNotFound.Error(), nil)
	case errors.Is(err, book.ErrDuplicate):
		re.fail(w, http.StatusConflict, book.ErrDuplicate.Error(), nil)
	case errors.Is(err, book.ErrEmptyQuery):
		re.fail(w, http.StatusBadRequest, book.ErrEmptyQuery.Error(), nil)
	default:
		re.serverError(w, err)
	}
}

// serverError hides the error detail unless running in development
func (re *responder) serverError(w http.ResponseWriter, err error) {
	message := "the server encountered an unexpected problem"
	if re.development && err != nil {
		message = err.Error()
	}
	re.fail(w, http.StatusInternalServerError, message, nil)
}

// writeJSON serializes v with the right content type
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// Headers are already out; nothing useful left to do
		return
	}
}

// count returns a pointer for the optional count field
func count(n int) *int {
	return &n
}
