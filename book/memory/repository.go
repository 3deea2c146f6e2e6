package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/SahandMohammed/simple-book-management-app/book"
)

/* In-memory implementation of book.Repository
 * Records live in an insertion-ordered slice; every operation is a linear
 * scan, which is fine for a catalog this size.
 * The mutex makes the uniqueness check plus insert atomic: Go serves HTTP
 * requests on separate goroutines, so read-modify-write sequences must not
 * interleave or the (title, author) invariant breaks
 */

type Repository struct {
	mu     sync.Mutex
	books  []book.Book
	nextID int64
}

// NewRepository creates an empty in-memory repository.
// The id counter starts at 1 and only ever moves forward; deleting a
// record never frees its id for reuse.
func NewRepository() *Repository {
	return &Repository{
		books:  make([]book.Book, 0),
		nextID: 1,
	}
}

// Select returns the record with the given id
func (r *Repository) Select(ctx context.Context, id int64) (book.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, b := range r.books {
		if b.ID == id {
			return b, nil
		}
	}
	return book.Book{}, fmt.Errorf("selecting book %d: %w", id, book.ErrNotFound)
}

// SelectAll returns every live record in insertion order
func (r *Repository) SelectAll(ctx context.Context) ([]book.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	all := make([]book.Book, len(r.books))
	copy(all, r.books)
	return all, nil
}

// Insert stores a new record and returns its assigned id
func (r *Repository) Insert(ctx context.Context, b book.Book) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.books {
		if existing.SameTitleAuthor(b) {
			return 0, fmt.Errorf("inserting %q by %q: %w", b.Title, b.Author, book.ErrDuplicate)
		}
	}

	b.ID = r.nextID
	r.nextID++
	r.books = append(r.books, b)
	return b.ID, nil
}

// Update replaces the record identified by b.ID, preserving its id and
// CreatedAt. A record may keep its own (title, author); only a collision
// with a different record is a duplicate.
func (r *Repository) Update(ctx context.Context, b book.Book) (book.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := -1
	for i, existing := range r.books {
		if existing.ID == b.ID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return book.Book{}, fmt.Errorf("updating book %d: %w", b.ID, book.ErrNotFound)
	}

	for i, existing := range r.books {
		if i != idx && existing.SameTitleAuthor(b) {
			return book.Book{}, fmt.Errorf("updating %q by %q: %w", b.Title, b.Author, book.ErrDuplicate)
		}
	}

	b.CreatedAt = r.books[idx].CreatedAt
	r.books[idx] = b
	return b, nil
}

// Delete removes the record and returns it
func (r *Repository) Delete(ctx context.Context, id int64) (book.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.books {
		if existing.ID == id {
			r.books = append(r.books[:i], r.books[i+1:]...)
			return existing, nil
		}
	}
	return book.Book{}, fmt.Errorf("deleting book %d: %w", id, book.ErrNotFound)
}

// Close is a no-op; there is nothing to release
func (r *Repository) Close(ctx context.Context) error {
	return nil
}
