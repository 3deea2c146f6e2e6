package redis

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/SahandMohammed/simple-book-management-app/book"
	"github.com/redis/go-redis/v9"
)

/* Redis implementation of book.Repository
 * Uses a Redis Hash per record for field storage, a List for insertion
 * order, and INCR on a counter key for monotonic id assignment.
 * A process-local mutex serializes the duplicate check with the write;
 * this assumes a single API instance owns the keyspace, which matches the
 * deployment model of the service
 */

const (
	hashPrefix = "book"          // Hash naming: book:{id}
	orderKey   = "books:order"   // List of ids in insertion order
	counterKey = "books:next_id" // INCR-backed id counter, never reused
)

type Repository struct {
	mu     sync.Mutex
	client *redis.Client
}

// NewRepository creates a new Redis repository
func NewRepository(addr, password string, db int) (*Repository, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connecting to Redis: %w", err)
	}

	return &Repository{
		client: client,
	}, nil
}

// Select retrieves a record by id from its Redis hash
func (r *Repository) Select(ctx context.Context, id int64) (book.Book, error) {
	return r.get(ctx, id)
}

// SelectAll returns every record, following the insertion-order list
func (r *Repository) SelectAll(ctx context.Context) ([]book.Book, error) {
	ids, err := r.client.LRange(ctx, orderKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("reading order list: %w", err)
	}

	all := make([]book.Book, 0, len(ids))
	for _, rawID := range ids {
		b, err := r.get(ctx, parseInt64(rawID))
		if err != nil {
			return nil, err
		}
		all = append(all, b)
	}
	return all, nil
}

// Insert stores a new record, assigning the next id from the counter
func (r *Repository) Insert(ctx context.Context, b book.Book) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.checkDuplicate(ctx, b, 0); err != nil {
		return 0, err
	}

	id, err := r.client.Incr(ctx, counterKey).Result()
	if err != nil {
		return 0, fmt.Errorf("assigning id: %w", err)
	}
	b.ID = id

	if err := r.set(ctx, b); err != nil {
		return 0, err
	}
	if err := r.client.RPush(ctx, orderKey, b.ID).Err(); err != nil {
		return 0, fmt.Errorf("appending to order list: %w", err)
	}
	return b.ID, nil
}

// Update replaces the record identified by b.ID, preserving CreatedAt
func (r *Repository) Update(ctx context.Context, b book.Book) (book.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, err := r.get(ctx, b.ID)
	if err != nil {
		return book.Book{}, err
	}
	if err := r.checkDuplicate(ctx, b, b.ID); err != nil {
		return book.Book{}, err
	}

	b.CreatedAt = stored.CreatedAt
	if err := r.set(ctx, b); err != nil {
		return book.Book{}, err
	}
	return b, nil
}

// Delete removes the record and returns it
func (r *Repository) Delete(ctx context.Context, id int64) (book.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, err := r.get(ctx, id)
	if err != nil {
		return book.Book{}, err
	}

	if err := r.client.LRem(ctx, orderKey, 1, id).Err(); err != nil {
		return book.Book{}, fmt.Errorf("removing from order list: %w", err)
	}
	if err := r.client.Del(ctx, hashKey(id)).Err(); err != nil {
		return book.Book{}, fmt.Errorf("deleting book hash: %w", err)
	}
	return stored, nil
}

// Close closes the underlying Redis connection
func (r *Repository) Close(ctx context.Context) error {
	return r.client.Close()
}

// checkDuplicate scans every live record for a case-insensitive
// (title, author) collision, skipping the record with id selfID.
func (r *Repository) checkDuplicate(ctx context.Context, b book.Book, selfID int64) error {
	ids, err := r.client.LRange(ctx, orderKey, 0, -1).Result()
	if err != nil {
		return fmt.Errorf("reading order list: %w", err)
	}

	for _, rawID := range ids {
		id := parseInt64(rawID)
		if id == selfID {
			continue
		}
		existing, err := r.get(ctx, id)
		if err != nil {
			return err
		}
		if existing.SameTitleAuthor(b) {
			return fmt.Errorf("checking %q by %q: %w", b.Title, b.Author, book.ErrDuplicate)
		}
	}
	return nil
}

// set writes every field of the record to its hash
func (r *Repository) set(ctx context.Context, b book.Book) error {
	err := r.client.HSet(ctx, hashKey(b.ID), map[string]interface{}{
		"id":               b.ID,
		"title":            b.Title,
		"author":           b.Author,
		"genre":            b.Genre.String(),
		"publication_year": b.PublicationYear,
		"description":      b.Description,
		"created_at":       b.CreatedAt.UnixNano(),
		"updated_at":       b.UpdatedAt.UnixNano(),
	}).Err()
	if err != nil {
		return fmt.Errorf("storing book %d: %w", b.ID, err)
	}
	return nil
}

// get reads a record from its hash, mapping an empty hash to ErrNotFound
func (r *Repository) get(ctx context.Context, id int64) (book.Book, error) {
	data, err := r.client.HGetAll(ctx, hashKey(id)).Result()
	if err != nil {
		return book.Book{}, fmt.Errorf("getting book %d: %w", id, err)
	}
	if len(data) == 0 {
		return book.Book{}, fmt.Errorf("getting book %d: %w", id, book.ErrNotFound)
	}

	b := book.Book{
		ID:              parseInt64(data["id"]),
		Title:           data["title"],
		Author:          data["author"],
		Genre:           book.NewGenre(data["genre"]),
		PublicationYear: int(parseInt64(data["publication_year"])),
		Description:     data["description"],
		CreatedAt:       time.Unix(0, parseInt64(data["created_at"])),
		UpdatedAt:       time.Unix(0, parseInt64(data["updated_at"])),
	}
	return b, nil
}

func hashKey(id int64) string {
	return fmt.Sprintf("%s:%d", hashPrefix, id)
}

// parseInt64 parses a string to int64, returning 0 on error
func parseInt64(s string) int64 {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return v
}
