// Package pipeline generates and encodes gallery artifacts.
//
// This package ties the generator to the output sinks so the CLI and the
// HTTP gallery behave the same way: one display in, a set of encoded
// downloads out.
//
// # Architecture
//
// A run has two stages:
//
//  1. Synthesize: build the label, and the image when a format needs pixels
//  2. Render: encode the requested formats (PNG, JPEG preview, text, JSON)
//
// Text-only runs skip pixel synthesis, which dominates the cost of a run.
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Display: 7,
//	    Formats: []string{pipeline.FormatPNG, pipeline.FormatTXT},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	png := result.Artifacts[pipeline.FormatPNG]
//
// Batch runs fan out over a worker pool:
//
//	err := runner.ExecuteBatch(ctx, pipeline.Batch{From: 1, To: 100}, func(r *pipeline.Result) error {
//	    return save(r)
//	})
package pipeline

import (
	"io"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	errs "github.com/matzehuels/babelgallery/pkg/errors"
	"github.com/matzehuels/babelgallery/pkg/gallery"
	"github.com/matzehuels/babelgallery/pkg/render/sink"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Server
// =============================================================================

const (
	// DefaultPreviewWidth is the default thumbnail width in pixels.
	DefaultPreviewWidth = sink.DefaultPreviewWidth

	// DefaultPreviewQuality is the default thumbnail JPEG quality.
	DefaultPreviewQuality = sink.DefaultPreviewQuality
)

// Format constants for output formats.
const (
	FormatPNG     = "png"
	FormatTXT     = "txt"
	FormatJSON    = "json"
	FormatPreview = "preview"
)

// DefaultFormats are the two downloads a visitor gets for a display.
var DefaultFormats = []string{FormatPNG, FormatTXT}

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatPNG:     true,
	FormatTXT:     true,
	FormatJSON:    true,
	FormatPreview: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for one pipeline run.
type Options struct {
	Display        int64    `json:"display"`
	Formats        []string `json:"formats,omitempty"`
	PreviewWidth   int      `json:"preview_width,omitempty"`
	PreviewQuality int      `json:"preview_quality,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Summary is the text-only view of the display. Always set.
	Summary gallery.Summary

	// Artifact holds the synthesized image. Nil when no requested format
	// needs pixels.
	Artifact *gallery.Artifact

	// Artifacts contains encoded outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	SynthesizeTime time.Duration
	RenderTime     time.Duration
	Bytes          int
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errs.New(errs.ErrCodeInvalidFormat, "invalid format: %q (must be one of: %s)", format, formatList())
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

func formatList() string {
	names := make([]string, 0, len(ValidFormats))
	for f := range ValidFormats {
		names = append(names, f)
	}
	slices.Sort(names)
	return strings.Join(names, ", ")
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := gallery.ValidateDisplay(o.Display); err != nil {
		return err
	}
	o.SetDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.PreviewWidth < 1 {
		return errs.New(errs.ErrCodeInvalidInput, "preview width must be positive, got %d", o.PreviewWidth)
	}
	o.validated = true
	return nil
}

// SetDefaults fills unset fields.
func (o *Options) SetDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = slices.Clone(DefaultFormats)
	}
	if o.PreviewWidth == 0 {
		o.PreviewWidth = DefaultPreviewWidth
	}
	if o.PreviewQuality == 0 {
		o.PreviewQuality = DefaultPreviewQuality
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// NeedsPixels reports whether any requested format encodes the image.
func (o *Options) NeedsPixels() bool {
	return slices.Contains(o.Formats, FormatPNG) || slices.Contains(o.Formats, FormatPreview)
}
