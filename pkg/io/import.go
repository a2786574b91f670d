package io

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	errs "github.com/matzehuels/babelgallery/pkg/errors"
	"github.com/matzehuels/babelgallery/pkg/label"
)

var detailPrefixes = [...]string{
	"Title : ",
	"Artist Name : ",
	"Description : ",
	"Display Number : ",
}

// ReadDetails decodes a plain-text label from r.
//
// The four lines must appear in export order with their exact prefixes.
// Field values are taken verbatim, including leading spaces. A trailing
// newline after the display number is tolerated.
func ReadDetails(r io.Reader) (label.Details, int64, error) {
	var fields [len(detailPrefixes)]string

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 1024), 64*1024)
	i := 0
	for sc.Scan() {
		line := sc.Text()
		if i == len(detailPrefixes) {
			if line == "" {
				continue
			}
			return label.Details{}, 0, errs.New(errs.ErrCodeInvalidInput, "unexpected content after display number")
		}
		value, ok := strings.CutPrefix(line, detailPrefixes[i])
		if !ok {
			return label.Details{}, 0, errs.New(errs.ErrCodeInvalidInput, "line %d: expected %q", i+1, strings.TrimSpace(detailPrefixes[i]))
		}
		fields[i] = value
		i++
	}
	if err := sc.Err(); err != nil {
		return label.Details{}, 0, fmt.Errorf("read details: %w", err)
	}
	if i < len(detailPrefixes) {
		return label.Details{}, 0, errs.New(errs.ErrCodeInvalidInput, "truncated details: got %d of %d lines", i, len(detailPrefixes))
	}

	display, err := strconv.ParseInt(fields[3], 10, 64)
	if err != nil {
		return label.Details{}, 0, errs.Wrap(errs.ErrCodeInvalidDisplay, err, "display number %q", fields[3])
	}

	d := label.Details{
		Title:       fields[0],
		ArtistName:  fields[1],
		Description: fields[2],
	}
	return d, display, nil
}

// ImportDetails reads a label file at path.
func ImportDetails(path string) (label.Details, int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return label.Details{}, 0, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadDetails(f)
}
