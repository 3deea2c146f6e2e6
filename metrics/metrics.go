package metrics

import (
	"context"
	"time"
)

// Metrics represents the current state of the catalog.
type Metrics struct {
	// TotalBooks is the number of live records in the store
	TotalBooks int64 `json:"total_books"`

	// GenreCounts maps genre name to the number of records with that genre
	GenreCounts map[string]int64 `json:"genre_counts"`

	// Timestamp when metrics were collected
	Timestamp time.Time `json:"timestamp"`
}

// Collector defines the interface for collecting metrics from the catalog.
type Collector interface {
	// Collect gathers current metrics from the catalog
	Collect(ctx context.Context) (Metrics, error)

	// GetTotalBooks returns the number of live records
	GetTotalBooks(ctx context.Context) (int64, error)

	// GetGenreCounts returns the count of records per genre
	GetGenreCounts(ctx context.Context) (map[string]int64, error)
}
