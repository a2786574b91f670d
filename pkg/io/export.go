package io

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"

	errs "github.com/matzehuels/babelgallery/pkg/errors"
	"github.com/matzehuels/babelgallery/pkg/gallery"
	"github.com/matzehuels/babelgallery/pkg/pipeline"
	"github.com/matzehuels/babelgallery/pkg/render/sink"
)

// ImageName returns the PNG file name for a display: the title when it is
// a valid file name, display_<id> otherwise.
func ImageName(title string, display int64) string {
	if errs.ValidateFilename(title) == nil {
		return title + ".png"
	}
	return fmt.Sprintf("display_%d.png", display)
}

// DetailsName returns the label file name for display.
func DetailsName(display int64) string {
	return fmt.Sprintf("artwork_details_%d.txt", display)
}

// FileName returns the file name used for format when saving display s.
func FileName(format string, s gallery.Summary) string {
	switch format {
	case pipeline.FormatPNG:
		return ImageName(s.Title, s.Display)
	case pipeline.FormatTXT:
		return DetailsName(s.Display)
	case pipeline.FormatPreview:
		return fmt.Sprintf("display_%d_preview.jpg", s.Display)
	default:
		return fmt.Sprintf("display_%d.%s", s.Display, format)
	}
}

// WriteDetails writes the plain-text label of s to w.
func WriteDetails(s gallery.Summary, w io.Writer) error {
	if _, err := w.Write(sink.RenderText(s)); err != nil {
		return fmt.Errorf("write details: %w", err)
	}
	return nil
}

// ExportDetails writes the label of s to a file at path.
func ExportDetails(s gallery.Summary, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	return closeAfter(f, path, WriteDetails(s, f))
}

// closeAfter closes c and reports its error unless err is already set.
func closeAfter(c io.Closer, path string, err error) error {
	cerr := c.Close()
	if err != nil {
		return err
	}
	if cerr != nil {
		return fmt.Errorf("close %s: %w", path, cerr)
	}
	return nil
}

// WriteResult saves every artifact of res into dir, creating dir if needed,
// and returns the written paths in format order. Existing files with the
// same names are overwritten.
func WriteResult(res *pipeline.Result, dir string) ([]string, error) {
	if err := errs.ValidateOutputDir(dir); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create %s: %w", dir, err)
	}

	formats := make([]string, 0, len(res.Artifacts))
	for f := range res.Artifacts {
		formats = append(formats, f)
	}
	slices.Sort(formats)

	paths := make([]string, 0, len(formats))
	for _, f := range formats {
		path := filepath.Join(dir, FileName(f, res.Summary))
		if err := os.WriteFile(path, res.Artifacts[f], 0o644); err != nil {
			return paths, fmt.Errorf("write %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
