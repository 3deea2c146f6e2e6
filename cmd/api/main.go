package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/SahandMohammed/simple-book-management-app/book"
	"github.com/SahandMohammed/simple-book-management-app/book/memory"
	bookredis "github.com/SahandMohammed/simple-book-management-app/book/redis"
	"github.com/SahandMohammed/simple-book-management-app/config"
	internalchi "github.com/SahandMohammed/simple-book-management-app/internal/http/chi"
	"github.com/SahandMohammed/simple-book-management-app/metrics"
	"github.com/SahandMohammed/simple-book-management-app/seed"
)

const TIMEOUT = 30 * time.Second

/* main is where the wiring happens: config, store, seed, service, metrics,
 * and HTTP layer are assembled here and nowhere else.
 * Imports only go downward: the binary imports the business layer, which
 * imports the storage layer
 */

func main() {
	cfg, err := config.GetConfig()
	if err != nil {
		fmt.Println(err)
		return
	}
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT,
	)
	defer stop()

	repo, err := newRepository(cfg)
	if err != nil {
		fmt.Println(err)
		return
	}
	defer repo.Close(ctx)

	s := book.NewService(repo)

	// The catalog resets to the seed set on every start when backed by
	// memory; a persistent backend keeps whatever it already holds
	if cfg.Repository == "memory" {
		if err := seedCatalog(ctx, cfg, s); err != nil {
			fmt.Println(err)
			return
		}
	}

	exporter, err := metrics.NewOTelExporter(metrics.NewCatalogCollector(repo))
	if err != nil {
		fmt.Println(err)
		return
	}
	defer exporter.Shutdown(ctx)

	r := internalchi.Handlers(ctx, s, internalchi.Options{
		Development: cfg.IsDevelopment(),
		Metrics:     exporter.ServeHTTP(),
	})
	srv := &http.Server{
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		Addr:         ":" + cfg.Port,
		Handler:      r,
	}

	errShutdown := make(chan error, 1)
	go shutdown(srv, ctx, errShutdown)
	fmt.Printf("Listening on port %s\n", cfg.Port)
	err = srv.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		fmt.Println(err)
		return
	}
	err = <-errShutdown
	if err != nil {
		fmt.Println(err)
		return
	}
}

// newRepository picks the store backend from config
func newRepository(cfg *config.Config) (book.Repository, error) {
	switch cfg.Repository {
	case "memory":
		return memory.NewRepository(), nil
	case "redis":
		return bookredis.NewRepository(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	default:
		return nil, fmt.Errorf("unknown repository backend: %q", cfg.Repository)
	}
}

// seedCatalog loads the seed set and inserts it through the service, so
// seed records pass the same validation and get ids 1..n
func seedCatalog(ctx context.Context, cfg *config.Config, s book.UseCase) error {
	entries, err := seed.Load(cfg.SeedFile)
	if err != nil {
		return fmt.Errorf("loading seed set: %w", err)
	}
	for _, e := range entries {
		if _, err := s.Create(ctx, e.Input()); err != nil {
			return fmt.Errorf("seeding %q: %w", e.Title, err)
		}
	}
	return nil
}

func shutdown(server *http.Server, ctxShutdown context.Context, errShutdown chan error) {
	<-ctxShutdown.Done()

	ctxTimeout, stop := context.WithTimeout(context.Background(), TIMEOUT)
	defer stop()

	err := server.Shutdown(ctxTimeout)
	switch err {
	case nil:
		fmt.Printf("\nShutting down server...\n")
		errShutdown <- nil
	case context.DeadlineExceeded:
		errShutdown <- fmt.Errorf("Forcing closing the server")
	default:
		errShutdown <- fmt.Errorf("Forcing closing the server")
	}
}
