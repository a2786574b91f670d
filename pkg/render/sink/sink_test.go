package sink

import (
	"bytes"
	"encoding/json"
	"image"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/matzehuels/babelgallery/pkg/artwork"
	errs "github.com/matzehuels/babelgallery/pkg/errors"
	"github.com/matzehuels/babelgallery/pkg/gallery"
)

func generate(t *testing.T, display int64) *gallery.Artifact {
	t.Helper()
	a, err := gallery.Generate(display)
	if err != nil {
		t.Fatalf("Generate(%d) error: %v", display, err)
	}
	return a
}

func TestRenderPNGRoundTrip(t *testing.T) {
	a := generate(t, 1)

	data, err := RenderPNG(a.Artwork)
	if err != nil {
		t.Fatalf("RenderPNG() error: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("\x89PNG\r\n\x1a\n")) {
		t.Fatal("output is not a PNG")
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("png.Decode() error: %v", err)
	}
	if img.Bounds() != a.Artwork.Bounds() {
		t.Fatalf("decoded bounds %v, want %v", img.Bounds(), a.Artwork.Bounds())
	}

	// Fully opaque NRGBA decodes losslessly; spot check a few pixels.
	for _, p := range []image.Point{{0, 0}, {1, 0}, {0, 1}, {1439, 1079}} {
		want := a.Artwork.Image.NRGBAAt(p.X, p.Y)
		r, g, b, al := img.At(p.X, p.Y).RGBA()
		if uint8(r>>8) != want.R || uint8(g>>8) != want.G || uint8(b>>8) != want.B || uint8(al>>8) != 0xFF {
			t.Errorf("pixel %v = (%d,%d,%d,%d), want %v", p, r>>8, g>>8, b>>8, al>>8, want)
		}
	}
}

func TestRenderPNGDeterministic(t *testing.T) {
	a := generate(t, 3)
	x, err := RenderPNG(a.Artwork)
	if err != nil {
		t.Fatal(err)
	}
	y, err := RenderPNG(a.Artwork)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(x, y) {
		t.Error("PNG encoding is not deterministic")
	}
}

func TestRenderPreview(t *testing.T) {
	a := generate(t, 2) // 9:16

	data, err := RenderPreview(a.Artwork, WithPreviewWidth(90))
	if err != nil {
		t.Fatalf("RenderPreview() error: %v", err)
	}
	cfg, err := jpeg.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("jpeg.DecodeConfig() error: %v", err)
	}
	if cfg.Width != 90 || cfg.Height != 160 {
		t.Errorf("preview is %dx%d, want 90x160", cfg.Width, cfg.Height)
	}
}

func TestRenderPreviewNoUpscale(t *testing.T) {
	a := &artwork.Artwork{Seed: 9, Image: image.NewNRGBA(image.Rect(0, 0, 8, 4))}
	data, err := RenderPreview(a, WithPreviewWidth(100))
	if err != nil {
		t.Fatalf("RenderPreview() error: %v", err)
	}
	cfg, err := jpeg.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("jpeg.DecodeConfig() error: %v", err)
	}
	if cfg.Width != 8 || cfg.Height != 4 {
		t.Errorf("preview is %dx%d, want 8x4", cfg.Width, cfg.Height)
	}
}

func TestRenderPreviewInvalidOptions(t *testing.T) {
	a := &artwork.Artwork{Image: image.NewNRGBA(image.Rect(0, 0, 8, 4))}
	if _, err := RenderPreview(a, WithPreviewWidth(0)); !errs.Is(err, errs.ErrCodeInvalidInput) {
		t.Errorf("width 0 error = %v", err)
	}
	if _, err := RenderPreview(a, WithPreviewQuality(101)); !errs.Is(err, errs.ErrCodeInvalidInput) {
		t.Errorf("quality 101 error = %v", err)
	}
}

func TestRenderText(t *testing.T) {
	a := generate(t, 1)
	got := string(RenderText(a.Summary()))
	want := "Title : " + a.Details.Title +
		"\nArtist Name : " + a.Details.ArtistName +
		"\nDescription : " + a.Details.Description +
		"\nDisplay Number : 1"
	if got != want {
		t.Errorf("RenderText() = %q, want %q", got, want)
	}
}

func TestRenderJSON(t *testing.T) {
	s, err := gallery.Summarize(5)
	if err != nil {
		t.Fatalf("Summarize(5) error: %v", err)
	}

	data, err := RenderJSON(s)
	if err != nil {
		t.Fatalf("RenderJSON() error: %v", err)
	}

	var out jsonOutput
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("json.Unmarshal() error: %v", err)
	}
	if out.Display != 5 || out.Room != 2 {
		t.Errorf("display/room = %d/%d, want 5/2", out.Display, out.Room)
	}
	if out.Title != s.Title || out.ArtistName != s.ArtistName || out.Description != s.Description {
		t.Error("label fields do not match summary")
	}
	if out.Ratio.Name != s.Ratio.Name || out.Ratio.Width != s.Ratio.Width {
		t.Errorf("ratio = %+v, want %+v", out.Ratio, s.Ratio)
	}
}
