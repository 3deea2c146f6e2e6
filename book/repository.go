package book

import "context"

/* Small, focused interfaces
 * Interfaces abstract behavior, not things, and are written for users of
 * the API, not just for testing
 */

// Reader provides read operations over the catalog
type Reader interface {
	/* Context is always the first parameter in functions that do I/O */
	Select(ctx context.Context, id int64) (Book, error)
	SelectAll(ctx context.Context) ([]Book, error)
}

// Writer provides write operations over the catalog
type Writer interface {
	/* Insert assigns the next id from a monotonically increasing counter
	 * (ids are never reused, even after deletion) and returns it.
	 * Returns ErrDuplicate if a live record shares the (title, author)
	 * pair case-insensitively; the duplicate check and the insert happen
	 * under the same lock so they are atomic
	 */
	Insert(ctx context.Context, b Book) (int64, error)
	/* Update replaces every field of the record identified by b.ID except
	 * the id and CreatedAt, which are preserved from the stored record.
	 * Returns the stored record, ErrNotFound if the id is absent, or
	 * ErrDuplicate if another live record collides on (title, author)
	 */
	Update(ctx context.Context, b Book) (Book, error)
	/* Delete removes the record and returns it.
	 * Returns ErrNotFound if the id is absent
	 */
	Delete(ctx context.Context, id int64) (Book, error)
}

/* Interface composition - combining small interfaces into larger ones */
type Repository interface {
	Reader
	Writer
	Close(ctx context.Context) error
}
