package main

import (
	"fmt"
	"os"

	"github.com/SahandMohammed/simple-book-management-app/seed"
)

/* validate-seed - Standalone CLI tool to validate a seed YAML file
 * Usage: go run cmd/validate-seed/main.go [seed.yaml]
 * Exit codes: 0 = valid, 1 = invalid
 */

func main() {
	seedFile := "seed.yaml"
	if len(os.Args) > 1 {
		seedFile = os.Args[1]
	}

	fmt.Printf("Validating seed file: %s\n\n", seedFile)

	entries, err := seed.Load(seedFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "VALIDATION FAILED\n\nError: %v\n", err)
		os.Exit(1)
	}

	failed := false
	for i, e := range entries {
		if err := e.Input().Normalize().Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "entry %d (%q): %v\n", i+1, e.Title, err)
			failed = true
		}
	}
	if failed {
		fmt.Fprintf(os.Stderr, "\nVALIDATION FAILED\n")
		os.Exit(1)
	}

	fmt.Printf("VALIDATION PASSED\n\nLoaded %d book(s):\n", len(entries))
	for i, e := range entries {
		fmt.Printf("%d. %s by %s (%s, %d)\n", i+1, e.Title, e.Author, e.Genre, e.PublicationYear)
	}
}
