package metrics

import (
	"context"
	"fmt"
	"time"

	"github.com/SahandMohammed/simple-book-management-app/book"
)

// CatalogCollector implements the Collector interface over the book store
type CatalogCollector struct {
	reader book.Reader
}

// NewCatalogCollector creates a new catalog metrics collector
func NewCatalogCollector(reader book.Reader) *CatalogCollector {
	return &CatalogCollector{
		reader: reader,
	}
}

// Collect gathers all metrics from the catalog
func (c *CatalogCollector) Collect(ctx context.Context) (Metrics, error) {
	total, err := c.GetTotalBooks(ctx)
	if err != nil {
		return Metrics{}, fmt.Errorf("getting total books: %w", err)
	}

	genreCounts, err := c.GetGenreCounts(ctx)
	if err != nil {
		return Metrics{}, fmt.Errorf("getting genre counts: %w", err)
	}

	return Metrics{
		TotalBooks:  total,
		GenreCounts: genreCounts,
		Timestamp:   time.Now(),
	}, nil
}

// GetTotalBooks returns the number of live records
func (c *CatalogCollector) GetTotalBooks(ctx context.Context) (int64, error) {
	all, err := c.reader.SelectAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("selecting books: %w", err)
	}
	return int64(len(all)), nil
}

// GetGenreCounts returns the count of records per genre.
// Every genre in the closed set is present, so gauges drop to zero
// instead of disappearing when the last record of a genre goes away.
func (c *CatalogCollector) GetGenreCounts(ctx context.Context) (map[string]int64, error) {
	all, err := c.reader.SelectAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("selecting books: %w", err)
	}

	counts := make(map[string]int64)
	for _, name := range book.GenreNames() {
		counts[name] = 0
	}
	for _, b := range all {
		counts[b.Genre.String()]++
	}
	return counts, nil
}
