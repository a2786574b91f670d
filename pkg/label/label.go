// Package label synthesizes the wall label of a gallery artifact: an artist
// name, a title and a description.
//
// All three fields come from one fresh [stream.Stream] for the seed, drawn
// in the order artist name, title, description. For every field one draw picks
// the length, then one draw per character picks an index into the
// 29-symbol alphabet (a-z, space, comma, period).
//
// The text stream is independent of the image stream: both start at the
// first draw of the seed, so neither depends on how much the other consumed.
package label

import (
	"fmt"
	"strings"

	"github.com/matzehuels/babelgallery/pkg/stream"
)

// alphabet maps a draw in [0, 28] to a symbol.
const alphabet = "abcdefghijklmnopqrstuvwxyz ,."

// Field length bounds, inclusive.
const (
	MinArtistName  = 1
	MaxArtistName  = 70
	MinTitle       = 1
	MaxTitle       = 70
	MinDescription = 1
	MaxDescription = 600
)

// Alphabet returns the symbols in index order.
func Alphabet() string {
	return alphabet
}

// Details is the text half of an artifact.
type Details struct {
	ArtistName  string `json:"artistName"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Synthesize draws the details for seed n from a fresh stream.
func Synthesize(n int64) (Details, error) {
	s, err := stream.ForSeed(n)
	if err != nil {
		return Details{}, err
	}

	var d Details
	fields := []struct {
		dst      *string
		min, max int
	}{
		{&d.ArtistName, MinArtistName, MaxArtistName},
		{&d.Title, MinTitle, MaxTitle},
		{&d.Description, MinDescription, MaxDescription},
	}
	for _, f := range fields {
		text, err := draw(s, f.min, f.max)
		if err != nil {
			return Details{}, err
		}
		*f.dst = text
	}
	return d, nil
}

// draw reads a length in [min, max] and then that many symbols.
func draw(s *stream.Stream, min, max int) (string, error) {
	length, err := s.Int(min, max)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.Grow(length)
	for i := 0; i < length; i++ {
		idx, err := s.Int(0, len(alphabet)-1)
		if err != nil {
			return "", err
		}
		b.WriteByte(alphabet[idx])
	}
	return b.String(), nil
}

// Export renders the plain-text download for display id. The layout is
// fixed and has no trailing newline.
func (d Details) Export(displayID int64) string {
	return fmt.Sprintf("Title : %s\nArtist Name : %s\nDescription : %s\nDisplay Number : %d",
		d.Title, d.ArtistName, d.Description, displayID)
}
