package pipeline

import (
	"fmt"

	"github.com/matzehuels/babelgallery/pkg/gallery"
	"github.com/matzehuels/babelgallery/pkg/render/sink"
)

// Render encodes the requested formats. a may be nil when no format needs
// pixels.
func Render(s gallery.Summary, a *gallery.Artifact, opts Options) (map[string][]byte, error) {
	artifacts := make(map[string][]byte, len(opts.Formats))

	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatPNG:
			if a == nil {
				return nil, fmt.Errorf("render %s: no image", format)
			}
			data, err = sink.RenderPNG(a.Artwork)
		case FormatPreview:
			if a == nil {
				return nil, fmt.Errorf("render %s: no image", format)
			}
			data, err = sink.RenderPreview(a.Artwork,
				sink.WithPreviewWidth(opts.PreviewWidth),
				sink.WithPreviewQuality(opts.PreviewQuality))
		case FormatTXT:
			data = sink.RenderText(s)
		case FormatJSON:
			data, err = sink.RenderJSON(s)
		default:
			return nil, fmt.Errorf("unsupported format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}
