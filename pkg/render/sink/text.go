package sink

import (
	"encoding/json"

	"github.com/matzehuels/babelgallery/pkg/gallery"
)

// RenderText returns the plain-text label download.
func RenderText(s gallery.Summary) []byte {
	return []byte(s.Export(s.Display))
}

type jsonOutput struct {
	Display     int64     `json:"display"`
	Room        int64     `json:"room"`
	Ratio       jsonRatio `json:"ratio"`
	ArtistName  string    `json:"artistName"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
}

type jsonRatio struct {
	Name   string `json:"name"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// RenderJSON encodes the text-only view of a display as indented JSON.
func RenderJSON(s gallery.Summary) ([]byte, error) {
	out := jsonOutput{
		Display:     s.Display,
		Room:        s.Room,
		Ratio:       jsonRatio{Name: s.Ratio.Name, Width: s.Ratio.Width, Height: s.Ratio.Height},
		ArtistName:  s.ArtistName,
		Title:       s.Title,
		Description: s.Description,
	}
	return json.MarshalIndent(out, "", "  ")
}
