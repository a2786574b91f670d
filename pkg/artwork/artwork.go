package artwork

import (
	"fmt"
	"image"

	errs "github.com/matzehuels/babelgallery/pkg/errors"
	"github.com/matzehuels/babelgallery/pkg/stream"
)

// maxPixels guards surface allocation against corrupted dimensions.
const maxPixels = 1 << 26

// Artwork is the synthesized image for one seed.
type Artwork struct {
	Seed  int64
	Ratio Ratio
	Image *image.NRGBA
}

// Bounds is a shortcut for Image.Bounds.
func (a *Artwork) Bounds() image.Rectangle {
	return a.Image.Bounds()
}

// Synthesize builds the image for seed n. It fails with INVALID_SEED for a
// negative n and RENDER_SURFACE when the raster cannot be allocated.
func Synthesize(n int64) (*Artwork, error) {
	s, err := stream.ForSeed(n)
	if err != nil {
		return nil, err
	}

	ratio, err := drawRatio(s)
	if err != nil {
		return nil, err
	}

	img, err := newSurface(ratio.Width, ratio.Height)
	if err != nil {
		return nil, err
	}
	fill(img, s)

	return &Artwork{Seed: n, Ratio: ratio, Image: img}, nil
}

// RatioOf returns the catalog entry seed n would use, drawing nothing else.
func RatioOf(n int64) (Ratio, error) {
	s, err := stream.ForSeed(n)
	if err != nil {
		return Ratio{}, err
	}
	return drawRatio(s)
}

func drawRatio(s *stream.Stream) (Ratio, error) {
	i, err := s.Int(0, len(catalog)-1)
	if err != nil {
		return Ratio{}, err
	}
	return catalog[i], nil
}

// newSurface allocates a width x height raster.
func newSurface(width, height int) (img *image.NRGBA, err error) {
	if width <= 0 || height <= 0 {
		return nil, errs.New(errs.ErrCodeRenderSurface, "invalid surface size %dx%d", width, height)
	}
	if width > maxPixels/height {
		return nil, errs.New(errs.ErrCodeRenderSurface, "surface %dx%d exceeds %d pixels", width, height, maxPixels)
	}

	defer func() {
		if r := recover(); r != nil {
			img = nil
			err = errs.Wrap(errs.ErrCodeRenderSurface, fmt.Errorf("%v", r), "allocate %dx%d surface", width, height)
		}
	}()
	return image.NewNRGBA(image.Rect(0, 0, width, height)), nil
}

// fill writes R, G, B from s for every pixel in row-major order.
// NewNRGBA rasters at the origin have Stride == 4*width, so Pix is
// already in that order.
func fill(img *image.NRGBA, s *stream.Stream) {
	pix := img.Pix
	for i := 0; i+3 < len(pix); i += 4 {
		pix[i] = s.Byte()
		pix[i+1] = s.Byte()
		pix[i+2] = s.Byte()
		pix[i+3] = 0xFF
	}
}
