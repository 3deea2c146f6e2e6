package seed

import (
	"fmt"
	"os"

	"github.com/SahandMohammed/simple-book-management-app/book"
	"gopkg.in/yaml.v3"
)

/* The seed set is the fixed group of records loaded into the store at
 * process start. A restart resets the catalog to exactly this set.
 * Operators can swap the built-in set for a YAML file via SEED_FILE
 */

// File represents the structure of a seed YAML file
type File struct {
	Books []Entry `yaml:"books"`
}

// Entry represents a single record in the seed file, pre-validation
type Entry struct {
	Title           string `yaml:"title"`
	Author          string `yaml:"author"`
	Genre           string `yaml:"genre"`
	PublicationYear int    `yaml:"publication_year"`
	Description     string `yaml:"description"`
}

// Input converts the entry to a domain input; seed entries go through
// the same validation and insert path as client-created records.
func (e Entry) Input() book.Input {
	return book.Input{
		Title:           e.Title,
		Author:          e.Author,
		Genre:           e.Genre,
		PublicationYear: e.PublicationYear,
		Description:     e.Description,
	}
}

// Load reads seed entries from path, falling back to the built-in set
// when path is empty.
func Load(path string) ([]Entry, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading seed file: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing seed file: %w", err)
	}
	if len(f.Books) == 0 {
		return nil, fmt.Errorf("seed file %s contains no books", path)
	}
	return f.Books, nil
}

// Default returns the built-in seed set
func Default() []Entry {
	return []Entry{
		{
			Title:           "To Kill a Mockingbird",
			Author:          "Harper Lee",
			Genre:           "Fiction",
			PublicationYear: 1960,
			Description:     "A novel about racial injustice and moral growth in the American South, seen through the eyes of young Scout Finch.",
		},
		{
			Title:           "1984",
			Author:          "George Orwell",
			Genre:           "Dystopian Fiction",
			PublicationYear: 1949,
			Description:     "A dystopian vision of a totalitarian state that watches everything and rewrites the past.",
		},
		{
			Title:           "A Brief History of Time",
			Author:          "Stephen Hawking",
			Genre:           "Non-Fiction",
			PublicationYear: 1988,
			Description:     "An accessible tour of cosmology, from the Big Bang to black holes.",
		},
	}
}
