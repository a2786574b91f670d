package gallery

import (
	"fmt"

	"github.com/matzehuels/babelgallery/pkg/artwork"
	"github.com/matzehuels/babelgallery/pkg/label"
)

// Artifact is everything on display for one id.
type Artifact struct {
	Display int64
	Room    int64
	Artwork *artwork.Artwork
	Details label.Details
}

// Export renders the plain-text download for the artifact.
func (a *Artifact) Export() string {
	return a.Details.Export(a.Display)
}

// Generate builds the artifact for display. The image and the text are
// synthesized from separate streams of the same seed.
func Generate(display int64) (*Artifact, error) {
	room, err := RoomOf(display)
	if err != nil {
		return nil, err
	}

	art, err := artwork.Synthesize(display)
	if err != nil {
		return nil, fmt.Errorf("display %d: image: %w", display, err)
	}

	details, err := label.Synthesize(display)
	if err != nil {
		return nil, fmt.Errorf("display %d: details: %w", display, err)
	}

	return &Artifact{
		Display: display,
		Room:    room,
		Artwork: art,
		Details: details,
	}, nil
}

// Summary is the text-only view of a display; it skips the image.
type Summary struct {
	Display int64         `json:"display"`
	Room    int64         `json:"room"`
	Ratio   artwork.Ratio `json:"ratio"`
	label.Details
}

// Summarize returns the details and aspect ratio of display without
// synthesizing pixels.
func Summarize(display int64) (Summary, error) {
	room, err := RoomOf(display)
	if err != nil {
		return Summary{}, err
	}
	ratio, err := artwork.RatioOf(display)
	if err != nil {
		return Summary{}, fmt.Errorf("display %d: ratio: %w", display, err)
	}
	details, err := label.Synthesize(display)
	if err != nil {
		return Summary{}, fmt.Errorf("display %d: details: %w", display, err)
	}
	return Summary{Display: display, Room: room, Ratio: ratio, Details: details}, nil
}

// Summary returns the text-only view of a generated artifact.
func (a *Artifact) Summary() Summary {
	return Summary{Display: a.Display, Room: a.Room, Ratio: a.Artwork.Ratio, Details: a.Details}
}
