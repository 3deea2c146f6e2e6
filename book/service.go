package book

import (
	"context"
	"fmt"
	"strings"
	"time"
)

/* Service represents the business logic layer
 * Uses pointer semantics as it's an API, not data
 */

// UseCase defines the business operations for catalog management
type UseCase interface {
	List(ctx context.Context) ([]Book, error)
	Get(ctx context.Context, id int64) (Book, error)
	Create(ctx context.Context, in Input) (Book, error)
	Update(ctx context.Context, id int64, in Input) (Book, error)
	Delete(ctx context.Context, id int64) (Book, error)
	Search(ctx context.Context, query string) ([]Book, error)
}

type Service struct {
	Repo Repository
}

// NewService creates a new catalog service with dependency injection
func NewService(repo Repository) *Service {
	return &Service{
		Repo: repo,
	}
}

// List returns every live record in insertion order
func (s *Service) List(ctx context.Context) ([]Book, error) {
	all, err := s.Repo.SelectAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("selecting books: %w", err)
	}
	return all, nil
}

// Get returns the record with the given id
func (s *Service) Get(ctx context.Context, id int64) (Book, error) {
	b, err := s.Repo.Select(ctx, id)
	if err != nil {
		return Book{}, fmt.Errorf("selecting book: %w", err)
	}
	return b, nil
}

// Create validates the input and stores a new record.
// The repository assigns the id; both timestamps are set to the same
// instant so a freshly created record has CreatedAt == UpdatedAt.
func (s *Service) Create(ctx context.Context, in Input) (Book, error) {
	in = in.Normalize()
	if err := in.Validate(); err != nil {
		return Book{}, fmt.Errorf("validating book: %w", err)
	}

	now := time.Now()
	b := Book{
		Title:           in.Title,
		Author:          in.Author,
		Genre:           NewGenre(in.Genre),
		PublicationYear: in.PublicationYear,
		Description:     in.Description,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	id, err := s.Repo.Insert(ctx, b)
	if err != nil {
		return Book{}, fmt.Errorf("inserting book: %w", err)
	}
	b.ID = id
	return b, nil
}

// Update validates the input and replaces every field of the record
// except id and CreatedAt. UpdatedAt is refreshed.
func (s *Service) Update(ctx context.Context, id int64, in Input) (Book, error) {
	in = in.Normalize()
	if err := in.Validate(); err != nil {
		return Book{}, fmt.Errorf("validating book: %w", err)
	}

	b := Book{
		ID:              id,
		Title:           in.Title,
		Author:          in.Author,
		Genre:           NewGenre(in.Genre),
		PublicationYear: in.PublicationYear,
		Description:     in.Description,
		UpdatedAt:       time.Now(),
	}

	updated, err := s.Repo.Update(ctx, b)
	if err != nil {
		return Book{}, fmt.Errorf("updating book: %w", err)
	}
	return updated, nil
}

// Delete removes the record and returns it
func (s *Service) Delete(ctx context.Context, id int64) (Book, error) {
	removed, err := s.Repo.Delete(ctx, id)
	if err != nil {
		return Book{}, fmt.Errorf("deleting book: %w", err)
	}
	return removed, nil
}

// Search returns, in insertion order, every record whose title, author,
// genre, or description contains the query as a case-insensitive
// substring. A record matching on several fields appears once.
func (s *Service) Search(ctx context.Context, query string) ([]Book, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("validating query: %w", ErrEmptyQuery)
	}

	all, err := s.Repo.SelectAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("selecting books: %w", err)
	}

	matches := make([]Book, 0)
	for _, b := range all {
		if b.Matches(query) {
			matches = append(matches, b)
		}
	}
	return matches, nil
}
