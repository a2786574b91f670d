package io

import (
	"bytes"
	"context"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	errs "github.com/matzehuels/babelgallery/pkg/errors"
	"github.com/matzehuels/babelgallery/pkg/gallery"
	"github.com/matzehuels/babelgallery/pkg/label"
	"github.com/matzehuels/babelgallery/pkg/pipeline"
)

func TestImageName(t *testing.T) {
	tests := []struct {
		title   string
		display int64
		want    string
	}{
		{"sunset", 3, "sunset.png"},
		{" famng.rbfwbnpxl", 2, " famng.rbfwbnpxl.png"},
		{" . ", 7, "display_7.png"},
		{"..", 8, "display_8.png"},
		{strings.Repeat("a", 201), 9, "display_9.png"},
	}
	for _, tt := range tests {
		if got := ImageName(tt.title, tt.display); got != tt.want {
			t.Errorf("ImageName(%q) = %q, want %q", tt.title, got, tt.want)
		}
	}
}

func TestFileName(t *testing.T) {
	s := gallery.Summary{Display: 12, Details: label.Details{Title: "abc"}}
	tests := []struct {
		format string
		want   string
	}{
		{pipeline.FormatPNG, "abc.png"},
		{pipeline.FormatTXT, "artwork_details_12.txt"},
		{pipeline.FormatJSON, "display_12.json"},
		{pipeline.FormatPreview, "display_12_preview.jpg"},
	}
	for _, tt := range tests {
		if got := FileName(tt.format, s); got != tt.want {
			t.Errorf("FileName(%q) = %q, want %q", tt.format, got, tt.want)
		}
	}
}

func TestWriteResult(t *testing.T) {
	runner := pipeline.NewRunner(nil)
	res, err := runner.Execute(context.Background(), pipeline.Options{Display: 2})
	if err != nil {
		t.Fatalf("Execute(2) error: %v", err)
	}
	dir := filepath.Join(t.TempDir(), "out")

	paths, err := WriteResult(res, dir)
	if err != nil {
		t.Fatalf("WriteResult() error: %v", err)
	}
	want := []string{
		filepath.Join(dir, ImageName(res.Summary.Title, 2)),
		filepath.Join(dir, "artwork_details_2.txt"),
	}
	if len(paths) != len(want) || paths[0] != want[0] || paths[1] != want[1] {
		t.Fatalf("paths = %q, want %q", paths, want)
	}

	f, err := os.Open(paths[0])
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("png.DecodeConfig() error: %v", err)
	}
	if cfg.Width != 1080 || cfg.Height != 1920 {
		t.Errorf("image is %dx%d, want 1080x1920", cfg.Width, cfg.Height)
	}

	text, err := os.ReadFile(paths[1])
	if err != nil {
		t.Fatal(err)
	}
	if string(text) != res.Artifact.Export() {
		t.Errorf("details file = %q, want %q", text, res.Artifact.Export())
	}
}

func TestWriteResultInvalidDir(t *testing.T) {
	res := &pipeline.Result{}
	if _, err := WriteResult(res, ""); !errs.Is(err, errs.ErrCodeInvalidPath) {
		t.Errorf("WriteResult(\"\") error = %v, want INVALID_PATH", err)
	}
}

func TestReadDetailsRoundTrip(t *testing.T) {
	for _, display := range []int64{1, 2, 5, 65536} {
		s, err := gallery.Summarize(display)
		if err != nil {
			t.Fatalf("Summarize(%d) error: %v", display, err)
		}
		var buf bytes.Buffer
		if err := WriteDetails(s, &buf); err != nil {
			t.Fatal(err)
		}

		d, got, err := ReadDetails(&buf)
		if err != nil {
			t.Fatalf("ReadDetails() error: %v", err)
		}
		if got != display {
			t.Errorf("display = %d, want %d", got, display)
		}
		if d != s.Details {
			t.Errorf("details = %+v, want %+v", d, s.Details)
		}
	}
}

func TestExportImportDetails(t *testing.T) {
	s, err := gallery.Summarize(9)
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), DetailsName(9))
	if err := ExportDetails(s, path); err != nil {
		t.Fatalf("ExportDetails() error: %v", err)
	}
	d, display, err := ImportDetails(path)
	if err != nil {
		t.Fatalf("ImportDetails() error: %v", err)
	}
	if d != s.Details || display != 9 {
		t.Errorf("ImportDetails() = %+v, %d; want %+v, 9", d, display, s.Details)
	}
}

func TestImportDetails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "label.txt")
	content := "Title : a b\nArtist Name : c\nDescription : d.e,\nDisplay Number : 12\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	d, display, err := ImportDetails(path)
	if err != nil {
		t.Fatalf("ImportDetails() error: %v", err)
	}
	want := label.Details{Title: "a b", ArtistName: "c", Description: "d.e,"}
	if d != want || display != 12 {
		t.Errorf("ImportDetails() = %+v, %d; want %+v, 12", d, display, want)
	}
}

func TestReadDetailsErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		code  errs.Code
	}{
		{"empty", "", errs.ErrCodeInvalidInput},
		{"wrong order", "Artist Name : x\nTitle : y\nDescription : z\nDisplay Number : 1", errs.ErrCodeInvalidInput},
		{"truncated", "Title : x\nArtist Name : y", errs.ErrCodeInvalidInput},
		{"bad number", "Title : x\nArtist Name : y\nDescription : z\nDisplay Number : one", errs.ErrCodeInvalidDisplay},
		{"extra", "Title : x\nArtist Name : y\nDescription : z\nDisplay Number : 1\nmore", errs.ErrCodeInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ReadDetails(strings.NewReader(tt.input))
			if !errs.Is(err, tt.code) {
				t.Errorf("ReadDetails() error = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestImportDetailsMissing(t *testing.T) {
	if _, _, err := ImportDetails(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Error("expected error for missing file")
	}
}

type closeErr struct{ err error }

func (c closeErr) Close() error { return c.err }

func TestCloseAfter(t *testing.T) {
	diskFull := errors.New("no space left on device")
	writeFailed := errors.New("short write")

	tests := []struct {
		name     string
		closeErr error
		writeErr error
		want     error
	}{
		{"clean", nil, nil, nil},
		{"close fails", diskFull, nil, diskFull},
		{"write fails first", diskFull, writeFailed, writeFailed},
		{"write fails only", nil, writeFailed, writeFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := closeAfter(closeErr{tt.closeErr}, "label.txt", tt.writeErr)
			if tt.want == nil {
				if err != nil {
					t.Errorf("closeAfter() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("closeAfter() error = %v, want %v", err, tt.want)
			}
		})
	}
}
