// Package io saves gallery artifacts to disk and reads label files back.
//
// # Overview
//
// [WriteResult] saves the encoded outputs of a pipeline run. The two
// downloads a visitor can take away are named like this:
//
//   - <title>.png: the full-size artwork
//   - artwork_details_<display>.txt: the label in plain text
//
// Titles are generated text and may not be usable as file names (a title of
// only spaces and dots, for example). Those fall back to display_<display>.png.
// JSON and preview outputs are saved as display_<display>.json and
// display_<display>_preview.jpg.
//
// # Label Format
//
// The text file has four lines and no trailing newline:
//
//	Title : <title>
//	Artist Name : <artist>
//	Description : <description>
//	Display Number : <display>
//
// [ReadDetails] parses that layout back into a [label.Details] and display
// number, which lets a collection of exported labels be checked against the
// generator:
//
//	d, display, err := io.ImportDetails("artwork_details_7.txt")
//	fresh, _ := label.Synthesize(display)
//	same := d == fresh
package io
