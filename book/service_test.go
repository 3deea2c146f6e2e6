package book_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/SahandMohammed/simple-book-management-app/book"
	"github.com/SahandMohammed/simple-book-management-app/book/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		repo := mocks.NewRepository(t)
		s := book.NewService(repo)

		repo.On("Insert", ctx, book.MatchBook(func(b book.Book) bool {
			return b.Title == "The Left Hand of Darkness" &&
				b.Author == "Ursula K. Le Guin" &&
				b.Genre == book.ScienceFiction &&
				b.PublicationYear == 1969 &&
				!b.CreatedAt.IsZero() &&
				b.CreatedAt.Equal(b.UpdatedAt)
		})).Return(int64(1), nil)

		saved, err := s.Create(ctx, validInput())

		require.NoError(t, err)
		assert.Equal(t, int64(1), saved.ID)
		assert.Equal(t, "The Left Hand of Darkness", saved.Title)
		assert.Equal(t, book.ScienceFiction, saved.Genre)
		assert.True(t, saved.CreatedAt.Equal(saved.UpdatedAt))
		repo.AssertExpectations(t)
	})

	t.Run("input is normalized before storage", func(t *testing.T) {
		repo := mocks.NewRepository(t)
		s := book.NewService(repo)

		repo.On("Insert", ctx, book.MatchBook(func(b book.Book) bool {
			return b.Title == "Dune" && b.Author == "Frank Herbert"
		})).Return(int64(2), nil)

		_, err := s.Create(ctx, book.Input{
			Title:           "  Dune  ",
			Author:          " Frank Herbert ",
			Genre:           " Science Fiction ",
			PublicationYear: 1965,
			Description:     " Desert planet politics. ",
		})

		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("invalid input never reaches the repository", func(t *testing.T) {
		repo := mocks.NewRepository(t)
		s := book.NewService(repo)

		_, err := s.Create(ctx, book.Input{})

		require.Error(t, err)
		var ve *book.ValidationError
		assert.ErrorAs(t, err, &ve)
		repo.AssertNotCalled(t, "Insert")
	})

	t.Run("duplicate from the repository propagates", func(t *testing.T) {
		repo := mocks.NewRepository(t)
		s := book.NewService(repo)

		repo.On("Insert", ctx, book.MatchBook(func(b book.Book) bool { return true })).
			Return(int64(0), fmt.Errorf("inserting: %w", book.ErrDuplicate))

		_, err := s.Create(ctx, validInput())

		require.Error(t, err)
		assert.ErrorIs(t, err, book.ErrDuplicate)
	})
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("success refreshes UpdatedAt and targets the right id", func(t *testing.T) {
		repo := mocks.NewRepository(t)
		s := book.NewService(repo)

		created := time.Now().Add(-time.Hour)
		repo.On("Update", ctx, book.MatchBook(func(b book.Book) bool {
			return b.ID == 7 && !b.UpdatedAt.IsZero() && b.CreatedAt.IsZero()
		})).Return(func(_ context.Context, b book.Book) (book.Book, error) {
			b.CreatedAt = created
			return b, nil
		})

		updated, err := s.Update(ctx, 7, validInput())

		require.NoError(t, err)
		assert.Equal(t, int64(7), updated.ID)
		assert.True(t, updated.CreatedAt.Equal(created))
		assert.True(t, updated.UpdatedAt.After(updated.CreatedAt))
		repo.AssertExpectations(t)
	})

	t.Run("invalid input never reaches the repository", func(t *testing.T) {
		repo := mocks.NewRepository(t)
		s := book.NewService(repo)

		_, err := s.Update(ctx, 7, book.Input{Title: "x"})

		require.Error(t, err)
		var ve *book.ValidationError
		assert.ErrorAs(t, err, &ve)
		repo.AssertNotCalled(t, "Update")
	})

	t.Run("not found propagates", func(t *testing.T) {
		repo := mocks.NewRepository(t)
		s := book.NewService(repo)

		repo.On("Update", ctx, book.MatchBook(func(b book.Book) bool { return true })).
			Return(book.Book{}, fmt.Errorf("updating: %w", book.ErrNotFound))

		_, err := s.Update(ctx, 99, validInput())

		assert.ErrorIs(t, err, book.ErrNotFound)
	})
}

func TestDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the removed record", func(t *testing.T) {
		repo := mocks.NewRepository(t)
		s := book.NewService(repo)

		removed := book.Book{ID: 3, Title: "1984", Author: "George Orwell"}
		repo.On("Delete", ctx, int64(3)).Return(removed, nil)

		b, err := s.Delete(ctx, 3)

		require.NoError(t, err)
		assert.Equal(t, removed, b)
	})

	t.Run("not found propagates", func(t *testing.T) {
		repo := mocks.NewRepository(t)
		s := book.NewService(repo)

		repo.On("Delete", ctx, int64(42)).
			Return(book.Book{}, fmt.Errorf("deleting: %w", book.ErrNotFound))

		_, err := s.Delete(ctx, 42)

		assert.ErrorIs(t, err, book.ErrNotFound)
	})
}

func TestSearch(t *testing.T) {
	ctx := context.Background()

	catalog := []book.Book{
		{ID: 1, Title: "To Kill a Mockingbird", Author: "Harper Lee", Genre: book.Fiction,
			Description: "Racial injustice in the American South."},
		{ID: 2, Title: "1984", Author: "George Orwell", Genre: book.DystopianFiction,
			Description: "A totalitarian state that watches everything."},
		{ID: 3, Title: "A Brief History of Time", Author: "Stephen Hawking", Genre: book.NonFiction,
			Description: "A popular history of cosmology, from the Big Bang to black holes."},
	}

	t.Run("matches on description, case-insensitively", func(t *testing.T) {
		repo := mocks.NewRepository(t)
		s := book.NewService(repo)
		repo.On("SelectAll", ctx).Return(catalog, nil)

		matches, err := s.Search(ctx, "TOTALITARIAN")

		require.NoError(t, err)
		require.Len(t, matches, 1)
		assert.Equal(t, int64(2), matches[0].ID)
	})

	t.Run("matches on author and preserves insertion order", func(t *testing.T) {
		repo := mocks.NewRepository(t)
		s := book.NewService(repo)
		repo.On("SelectAll", ctx).Return(catalog, nil)

		// "or" appears in the author "George Orwell" and the title "A Brief History of Time"
		matches, err := s.Search(ctx, "or")

		require.NoError(t, err)
		require.Len(t, matches, 2)
		assert.Equal(t, int64(2), matches[0].ID)
		assert.Equal(t, int64(3), matches[1].ID)
	})

	t.Run("a record matching several fields appears once", func(t *testing.T) {
		repo := mocks.NewRepository(t)
		s := book.NewService(repo)
		repo.On("SelectAll", ctx).Return(catalog, nil)

		// "history" hits both the title and the description of record 3
		matches, err := s.Search(ctx, "history")

		require.NoError(t, err)
		require.Len(t, matches, 1)
		assert.Equal(t, int64(3), matches[0].ID)
	})

	t.Run("no match returns an empty, non-nil slice", func(t *testing.T) {
		repo := mocks.NewRepository(t)
		s := book.NewService(repo)
		repo.On("SelectAll", ctx).Return(catalog, nil)

		matches, err := s.Search(ctx, "zzzzz")

		require.NoError(t, err)
		assert.NotNil(t, matches)
		assert.Empty(t, matches)
	})

	t.Run("empty query after trimming", func(t *testing.T) {
		repo := mocks.NewRepository(t)
		s := book.NewService(repo)

		_, err := s.Search(ctx, "   ")

		assert.ErrorIs(t, err, book.ErrEmptyQuery)
		repo.AssertNotCalled(t, "SelectAll")
	})
}

func TestGet(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		repo := mocks.NewRepository(t)
		s := book.NewService(repo)

		stored := book.Book{ID: 1, Title: "1984", Author: "George Orwell"}
		repo.On("Select", ctx, int64(1)).Return(stored, nil)

		b, err := s.Get(ctx, 1)

		require.NoError(t, err)
		assert.Equal(t, stored, b)
	})

	t.Run("not found propagates", func(t *testing.T) {
		repo := mocks.NewRepository(t)
		s := book.NewService(repo)

		repo.On("Select", ctx, int64(9)).
			Return(book.Book{}, fmt.Errorf("selecting: %w", book.ErrNotFound))

		_, err := s.Get(ctx, 9)

		assert.ErrorIs(t, err, book.ErrNotFound)
	})
}
