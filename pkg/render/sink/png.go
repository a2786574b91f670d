package sink

import (
	"bytes"
	"image/png"

	"github.com/matzehuels/babelgallery/pkg/artwork"
	errs "github.com/matzehuels/babelgallery/pkg/errors"
)

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	level png.CompressionLevel
}

// WithCompression sets the zlib level. Random pixels barely compress, so
// png.BestSpeed is the default.
func WithCompression(level png.CompressionLevel) PNGOption {
	return func(r *pngRenderer) { r.level = level }
}

// RenderPNG encodes the artwork as PNG.
func RenderPNG(a *artwork.Artwork, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{level: png.BestSpeed}
	for _, opt := range opts {
		opt(&r)
	}

	var buf bytes.Buffer
	// Header plus four bytes per pixel; compression rarely wins on noise.
	buf.Grow(len(a.Image.Pix) + 1024)

	enc := png.Encoder{CompressionLevel: r.level}
	if err := enc.Encode(&buf, a.Image); err != nil {
		return nil, errs.Wrap(errs.ErrCodeRenderSurface, err, "encode png for seed %d", a.Seed)
	}
	return buf.Bytes(), nil
}
