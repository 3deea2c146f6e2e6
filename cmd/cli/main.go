package main

import (
	"context"
	"fmt"

	"github.com/SahandMohammed/simple-book-management-app/book"
	bookredis "github.com/SahandMohammed/simple-book-management-app/book/redis"
	"github.com/SahandMohammed/simple-book-management-app/config"
)

/* Maintenance CLI: talks to the Redis-backed store directly through the
 * service, bypassing the HTTP layer. Handy for poking at a running
 * deployment's catalog
 */

func main() {
	cfg, err := config.GetConfig()
	if err != nil {
		fmt.Println(err)
		return
	}
	ctx := context.Background()
	repo, err := bookredis.NewRepository(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		fmt.Println(err)
		return
	}
	defer repo.Close(ctx)
	s := book.NewService(repo)

	created, err := s.Create(ctx, book.Input{
		Title:           "Neuromancer",
		Author:          "William Gibson",
		Genre:           "Science Fiction",
		PublicationYear: 1984,
		Description:     "The novel that defined cyberpunk: a washed-up hacker is hired for one last job against an artificial intelligence.",
	})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("created book %d: %s by %s\n", created.ID, created.Title, created.Author)

	all, err := s.List(ctx)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, b := range all {
		fmt.Printf("%d\t%s\t%s\t%s\t%d\n", b.ID, b.Title, b.Author, b.Genre, b.PublicationYear)
	}
}
