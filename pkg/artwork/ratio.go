package artwork

import "fmt"

// Ratio is one entry of the aspect ratio catalog.
type Ratio struct {
	Name   string `json:"name"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// catalog is indexed by the first draw of every image stream.
// 1080 is the short side of every entry.
var catalog = [...]Ratio{
	{Name: "16:9", Width: 1920, Height: 1080},
	{Name: "9:16", Width: 1080, Height: 1920},
	{Name: "4:5", Width: 1080, Height: 1350},
	{Name: "1:1", Width: 1080, Height: 1080},
	{Name: "3:2", Width: 1620, Height: 1080},
	{Name: "4:3", Width: 1440, Height: 1080},
}

// Ratios returns a copy of the catalog in index order.
func Ratios() []Ratio {
	out := make([]Ratio, len(catalog))
	copy(out, catalog[:])
	return out
}

// Pixels returns Width * Height.
func (r Ratio) Pixels() int {
	return r.Width * r.Height
}

// String returns e.g. "16:9 (1920x1080)".
func (r Ratio) String() string {
	return fmt.Sprintf("%s (%dx%d)", r.Name, r.Width, r.Height)
}
