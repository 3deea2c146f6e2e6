package book

import (
	"bytes"
	"fmt"
)

/* Genre is the closed set of catalog genres
 * Using the compiler in our favor: an int type with named constants turns
 * bad genre values into errors before they ever reach the store
 */
type Genre int

const (
	Fiction Genre = iota + 1
	NonFiction
	Mystery
	Romance
	ScienceFiction
	Fantasy
	Biography
	History
	DystopianFiction
	Other
)

// String returns the string representation of the genre
func (g Genre) String() string {
	switch g {
	case Fiction:
		return "Fiction"
	case NonFiction:
		return "Non-Fiction"
	case Mystery:
		return "Mystery"
	case Romance:
		return "Romance"
	case ScienceFiction:
		return "Science Fiction"
	case Fantasy:
		return "Fantasy"
	case Biography:
		return "Biography"
	case History:
		return "History"
	case DystopianFiction:
		return "Dystopian Fiction"
	case Other:
		return "Other"
	default:
		return "Unknown"
	}
}

// NewGenre creates a Genre from a string.
// Returns the zero Genre for values outside the closed set, which fails
// Validate; the match is exact, case included.
func NewGenre(s string) Genre {
	switch s {
	case "Fiction":
		return Fiction
	case "Non-Fiction":
		return NonFiction
	case "Mystery":
		return Mystery
	case "Romance":
		return Romance
	case "Science Fiction":
		return ScienceFiction
	case "Fantasy":
		return Fantasy
	case "Biography":
		return Biography
	case "History":
		return History
	case "Dystopian Fiction":
		return DystopianFiction
	case "Other":
		return Other
	}
	return Genre(0)
}

// Validate checks if the genre is within the closed set
func (g Genre) Validate() error {
	if g < Fiction || g > Other {
		return fmt.Errorf("invalid genre: %d", g)
	}
	return nil
}

// GenreNames returns every valid genre name, in declaration order.
// Used by validation messages and by the metrics collector.
func GenreNames() []string {
	names := make([]string, 0, int(Other))
	for g := Fiction; g <= Other; g++ {
		names = append(names, g.String())
	}
	return names
}

// MarshalJSON renders the genre as its display string
func (g Genre) MarshalJSON() ([]byte, error) {
	buffer := bytes.NewBufferString(`"`)
	buffer.WriteString(g.String())
	buffer.WriteString(`"`)
	return buffer.Bytes(), nil
}
