package book

import (
	"strings"
	"time"
)

/* Book represents one record in the catalog
 * Uses value semantics as it represents data, not behavior
 * No tags here: the JSON shape belongs to the HTTP layer
 */
type Book struct {
	ID              int64
	Title           string
	Author          string
	Genre           Genre
	PublicationYear int
	Description     string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// SameTitleAuthor reports whether two records collide under the
// case-insensitive (title, author) uniqueness rule.
func (b Book) SameTitleAuthor(other Book) bool {
	return strings.EqualFold(b.Title, other.Title) &&
		strings.EqualFold(b.Author, other.Author)
}

// Matches reports whether query appears as a case-insensitive substring in
// the title, author, genre, or description of the record.
func (b Book) Matches(query string) bool {
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(b.Title), q) ||
		strings.Contains(strings.ToLower(b.Author), q) ||
		strings.Contains(strings.ToLower(b.Genre.String()), q) ||
		strings.Contains(strings.ToLower(b.Description), q)
}
