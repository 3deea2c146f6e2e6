package metrics

import (
	"context"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// OTelExporter provides OpenTelemetry metrics export following OTel standards
type OTelExporter struct {
	meterProvider *sdkmetric.MeterProvider
	collector     Collector

	// OTel meter and instruments
	meter           metric.Meter
	totalBooksGauge metric.Int64ObservableGauge
	genreCountGauge metric.Int64ObservableGauge
}

// NewOTelExporter creates a new OpenTelemetry metrics exporter with Prometheus format
func NewOTelExporter(collector Collector) (*OTelExporter, error) {
	// Create Prometheus exporter
	exporter, err := prometheus.New()
	if err != nil {
		return nil, fmt.Errorf("creating prometheus exporter: %w", err)
	}

	// Create meter provider
	meterProvider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(exporter),
	)
	otel.SetMeterProvider(meterProvider)

	// Create meter with service info
	meter := meterProvider.Meter(
		"book-api",
		metric.WithInstrumentationVersion("1.0.0"),
	)

	oe := &OTelExporter{
		meterProvider: meterProvider,
		collector:     collector,
		meter:         meter,
	}

	// Register metrics instruments
	if err := oe.registerInstruments(); err != nil {
		return nil, fmt.Errorf("registering instruments: %w", err)
	}

	return oe, nil
}

// registerInstruments creates and registers all OpenTelemetry metric instruments
func (oe *OTelExporter) registerInstruments() error {
	var err error

	// Total books gauge
	oe.totalBooksGauge, err = oe.meter.Int64ObservableGauge(
		"catalog.books.total",
		metric.WithDescription("Number of live records in the catalog"),
		metric.WithUnit("{books}"),
		metric.WithInt64Callback(oe.observeTotalBooks),
	)
	if err != nil {
		return fmt.Errorf("creating total books gauge: %w", err)
	}

	// Per-genre gauge
	oe.genreCountGauge, err = oe.meter.Int64ObservableGauge(
		"catalog.books.by_genre",
		metric.WithDescription("Number of records per genre"),
		metric.WithUnit("{books}"),
		metric.WithInt64Callback(oe.observeGenreCounts),
	)
	if err != nil {
		return fmt.Errorf("creating genre count gauge: %w", err)
	}

	return nil
}

// observeTotalBooks is a callback that reports the catalog size
func (oe *OTelExporter) observeTotalBooks(ctx context.Context, observer metric.Int64Observer) error {
	total, err := oe.collector.GetTotalBooks(ctx)
	if err != nil {
		return err
	}

	observer.Observe(total)
	return nil
}

// observeGenreCounts is a callback that reports record counts by genre
func (oe *OTelExporter) observeGenreCounts(ctx context.Context, observer metric.Int64Observer) error {
	genreCounts, err := oe.collector.GetGenreCounts(ctx)
	if err != nil {
		return err
	}

	for genre, n := range genreCounts {
		observer.Observe(n, metric.WithAttributes(
			attribute.String("book.genre", genre),
		))
	}

	return nil
}

// ServeHTTP serves Prometheus-formatted metrics on the given HTTP handler
func (oe *OTelExporter) ServeHTTP() http.Handler {
	return promhttp.Handler()
}

// Shutdown gracefully shuts down the meter provider
func (oe *OTelExporter) Shutdown(ctx context.Context) error {
	if oe.meterProvider != nil {
		return oe.meterProvider.Shutdown(ctx)
	}
	return nil
}
