package sink

import (
	"bytes"
	"image"
	"image/jpeg"

	"golang.org/x/image/draw"

	"github.com/matzehuels/babelgallery/pkg/artwork"
	errs "github.com/matzehuels/babelgallery/pkg/errors"
)

const (
	// DefaultPreviewWidth is the width of listing thumbnails in pixels.
	DefaultPreviewWidth = 320

	// DefaultPreviewQuality is the JPEG quality of listing thumbnails.
	DefaultPreviewQuality = 80
)

// PreviewOption configures preview rendering.
type PreviewOption func(*previewRenderer)

type previewRenderer struct {
	width   int
	quality int
	scaler  draw.Scaler
}

// WithPreviewWidth sets the thumbnail width. Height follows the ratio.
func WithPreviewWidth(w int) PreviewOption {
	return func(r *previewRenderer) { r.width = w }
}

// WithPreviewQuality sets the JPEG quality (1-100).
func WithPreviewQuality(q int) PreviewOption {
	return func(r *previewRenderer) { r.quality = q }
}

// WithScaler overrides the resampling kernel (default draw.ApproxBiLinear).
func WithScaler(s draw.Scaler) PreviewOption {
	return func(r *previewRenderer) { r.scaler = s }
}

// RenderPreview downscales the artwork and encodes it as JPEG. Widths at or
// above the artwork width encode it unscaled.
func RenderPreview(a *artwork.Artwork, opts ...PreviewOption) ([]byte, error) {
	r := previewRenderer{
		width:   DefaultPreviewWidth,
		quality: DefaultPreviewQuality,
		scaler:  draw.ApproxBiLinear,
	}
	for _, opt := range opts {
		opt(&r)
	}
	if r.width <= 0 {
		return nil, errs.New(errs.ErrCodeInvalidInput, "preview width must be positive, got %d", r.width)
	}
	if r.quality < 1 || r.quality > 100 {
		return nil, errs.New(errs.ErrCodeInvalidInput, "preview quality must be in [1, 100], got %d", r.quality)
	}

	src := a.Image
	var img image.Image = src
	if b := src.Bounds(); r.width < b.Dx() {
		height := max(1, b.Dy()*r.width/b.Dx())
		dst := image.NewNRGBA(image.Rect(0, 0, r.width, height))
		r.scaler.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
		img = dst
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: r.quality}); err != nil {
		return nil, errs.Wrap(errs.ErrCodeRenderSurface, err, "encode preview for seed %d", a.Seed)
	}
	return buf.Bytes(), nil
}
