package book

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

/* Field bounds for incoming records */
const (
	TitleMaxLen        = 200
	AuthorMaxLen       = 100
	DescriptionMaxLen  = 1000
	MinPublicationYear = 1000
)

/* Input is a candidate record as submitted by a client, before validation.
 * Genre arrives as a string here; it only becomes a Genre once it has been
 * checked against the closed set
 */
type Input struct {
	Title           string
	Author          string
	Genre           string
	PublicationYear int
	Description     string
}

// Normalize returns a copy of the input with all text fields trimmed.
// Normalized values are what validation sees and what gets stored.
func (in Input) Normalize() Input {
	in.Title = strings.TrimSpace(in.Title)
	in.Author = strings.TrimSpace(in.Author)
	in.Genre = strings.TrimSpace(in.Genre)
	in.Description = strings.TrimSpace(in.Description)
	return in
}

// Validate checks the (already normalized) input against the field rules.
// All violations are collected; on failure the returned error is a
// *ValidationError listing every failing field.
func (in Input) Validate() error {
	v := &ValidationError{}

	v.add(in.Title != "", "title", "must not be empty")
	v.add(utf8.RuneCountInString(in.Title) <= TitleMaxLen,
		"title", fmt.Sprintf("must be at most %d characters", TitleMaxLen))

	v.add(in.Author != "", "author", "must not be empty")
	v.add(utf8.RuneCountInString(in.Author) <= AuthorMaxLen,
		"author", fmt.Sprintf("must be at most %d characters", AuthorMaxLen))

	v.add(NewGenre(in.Genre).Validate() == nil,
		"genre", "must be one of: "+strings.Join(GenreNames(), ", "))

	maxYear := time.Now().Year()
	v.add(in.PublicationYear >= MinPublicationYear && in.PublicationYear <= maxYear,
		"publicationYear", fmt.Sprintf("must be between %d and %d", MinPublicationYear, maxYear))

	v.add(in.Description != "", "description", "must not be empty")
	v.add(utf8.RuneCountInString(in.Description) <= DescriptionMaxLen,
		"description", fmt.Sprintf("must be at most %d characters", DescriptionMaxLen))

	return v.orNil()
}
