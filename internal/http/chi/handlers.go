package chi

import (
	"context"
	"net/http"
	"time"

	"github.com/SahandMohammed/simple-book-management-app/book"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httplog"
)

// Options carries the optional pieces of the HTTP layer
type Options struct {
	// Development switches 500 responses to include the underlying error
	Development bool
	// Metrics, when set, is mounted at /metrics
	Metrics http.Handler
}

// Handlers sets up the book API routes
func Handlers(ctx context.Context, bookService book.UseCase, opts Options) *chi.Mux {
	logger := httplog.NewLogger("book-api", httplog.Options{
		JSON: true,
	})

	re := &responder{development: opts.Development}

	r := chi.NewRouter()
	r.Use(httplog.RequestLogger(logger))
	r.Use(requestID)
	r.Use(recoverPanics(re))
	r.Use(middleware.Timeout(30 * time.Second))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", health().ServeHTTP)

		r.Get("/books", getBooks(bookService, re).ServeHTTP)
		r.Post("/books", postBook(bookService, re).ServeHTTP)
		// Registered before /books/{id} so the literal segment wins
		r.Get("/books/search", searchBooks(bookService, re).ServeHTTP)
		r.Get("/books/{id}", getBook(bookService, re).ServeHTTP)
		r.Put("/books/{id}", putBook(bookService, re).ServeHTTP)
		r.Delete("/books/{id}", deleteBook(bookService, re).ServeHTTP)
	})

	if opts.Metrics != nil {
		r.Handle("/metrics", opts.Metrics)
	}

	// Unmatched routes get the same envelope shape as everything else
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		re.fail(w, http.StatusNotFound, "the requested resource could not be found", nil)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		re.fail(w, http.StatusMethodNotAllowed, "method not allowed for this resource", nil)
	})

	return r
}

// health reports service liveness
func health() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, healthResponse{
			Success:   true,
			Message:   "book api is running",
			Timestamp: time.Now(),
		})
	})
}
