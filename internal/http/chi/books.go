package chi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/SahandMohammed/simple-book-management-app/book"
	"github.com/go-chi/chi/v5"
)

/* HTTP layer DTOs for the book API
 * Separate from the domain entity to avoid leaking internal structure;
 * this is where json tags and the ISO-8601 timestamp shape live
 */

// bookRequest represents the incoming record payload
type bookRequest struct {
	Title           string `json:"title"`
	Author          string `json:"author"`
	Genre           string `json:"genre"`
	PublicationYear int    `json:"publicationYear"`
	Description     string `json:"description"`
}

// bookResponse represents a record in the API
type bookResponse struct {
	ID              int64     `json:"id"`
	Title           string    `json:"title"`
	Author          string    `json:"author"`
	Genre           string    `json:"genre"`
	PublicationYear int       `json:"publicationYear"`
	Description     string    `json:"description"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func newBookResponse(b book.Book) bookResponse {
	return bookResponse{
		ID:              b.ID,
		Title:           b.Title,
		Author:          b.Author,
		Genre:           b.Genre.String(),
		PublicationYear: b.PublicationYear,
		Description:     b.Description,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

func newBookResponses(all []book.Book) []bookResponse {
	result := make([]bookResponse, 0, len(all))
	for _, b := range all {
		result = append(result, newBookResponse(b))
	}
	return result
}

func (br bookRequest) toInput() book.Input {
	return book.Input{
		Title:           br.Title,
		Author:          br.Author,
		Genre:           br.Genre,
		PublicationYear: br.PublicationYear,
		Description:     br.Description,
	}
}

// readIDParam parses the {id} URL parameter; ids are positive integers
func readIDParam(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}

// getBooks handles GET /api/books
func getBooks(bookService book.UseCase, re *responder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		all, err := bookService.List(r.Context())
		if err != nil {
			re.domainError(w, err)
			return
		}
		result := newBookResponses(all)
		re.ok(w, http.StatusOK, dataResponse{
			Data:  result,
			Count: count(len(result)),
		})
	})
}

// getBook handles GET /api/books/{id}
func getBook(bookService book.UseCase, re *responder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := readIDParam(r)
		if !ok {
			re.fail(w, http.StatusNotFound, book.ErrNotFound.Error(), nil)
			return
		}
		b, err := bookService.Get(r.Context(), id)
		if err != nil {
			re.domainError(w, err)
			return
		}
		re.ok(w, http.StatusOK, dataResponse{
			Data: newBookResponse(b),
		})
	})
}

// postBook handles POST /api/books
func postBook(bookService book.UseCase, re *responder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var br bookRequest
		if err := json.NewDecoder(r.Body).Decode(&br); err != nil {
			re.fail(w, http.StatusBadRequest, "invalid JSON body", nil)
			return
		}
		b, err := bookService.Create(r.Context(), br.toInput())
		if err != nil {
			re.domainError(w, err)
			return
		}
		re.ok(w, http.StatusCreated, dataResponse{
			Message: "book created successfully",
			Data:    newBookResponse(b),
		})
	})
}

// putBook handles PUT /api/books/{id}
func putBook(bookService book.UseCase, re *responder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := readIDParam(r)
		if !ok {
			re.fail(w, http.StatusNotFound, book.ErrNotFound.Error(), nil)
			return
		}
		var br bookRequest
		if err := json.NewDecoder(r.Body).Decode(&br); err != nil {
			re.fail(w, http.StatusBadRequest, "invalid JSON body", nil)
			return
		}
		b, err := bookService.Update(r.Context(), id, br.toInput())
		if err != nil {
			re.domainError(w, err)
			return
		}
		re.ok(w, http.StatusOK, dataResponse{
			Message: "book updated successfully",
			Data:    newBookResponse(b),
		})
	})
}

// deleteBook handles DELETE /api/books/{id}
func deleteBook(bookService book.UseCase, re *responder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := readIDParam(r)
		if !ok {
			re.fail(w, http.StatusNotFound, book.ErrNotFound.Error(), nil)
			return
		}
		b, err := bookService.Delete(r.Context(), id)
		if err != nil {
			re.domainError(w, err)
			return
		}
		re.ok(w, http.StatusOK, dataResponse{
			Message: "book deleted successfully",
			Data:    newBookResponse(b),
		})
	})
}

// searchBooks handles GET /api/books/search?q=...
func searchBooks(bookService book.UseCase, re *responder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query().Get("q")
		matches, err := bookService.Search(r.Context(), query)
		if err != nil {
			re.domainError(w, err)
			return
		}
		result := newBookResponses(matches)
		re.ok(w, http.StatusOK, dataResponse{
			Data:  result,
			Count: count(len(result)),
			Query: query,
		})
	})
}
