package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	errs "github.com/matzehuels/babelgallery/pkg/errors"
	"github.com/matzehuels/babelgallery/pkg/gallery"
	bgio "github.com/matzehuels/babelgallery/pkg/io"
	"github.com/matzehuels/babelgallery/pkg/label"
	"github.com/matzehuels/babelgallery/pkg/pipeline"
	"github.com/matzehuels/babelgallery/pkg/seed"
	"github.com/matzehuels/babelgallery/pkg/stream"
)

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	output  string   // output directory
	formats []string // png, txt, json, preview
	preview int      // preview width in pixels
}

// generateCommand creates the generate command, which saves the downloads
// of one display.
func (c *CLI) generateCommand() *cobra.Command {
	var formatsStr string
	var opts generateOpts

	cmd := &cobra.Command{
		Use:   "generate <display>",
		Short: "Save the artwork and label of a display",
		Long: `Save the artwork and label of a display.

By default this writes "<title>.png" and "artwork_details_<display>.txt"
into the output directory.`,
		Example: `  babelgallery generate 7
  babelgallery generate 7 -o gallery -f png,txt,json,preview`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			display, err := gallery.ParseDisplay(args[0])
			if err != nil {
				return err
			}
			if opts.formats, err = parseFormats(formatsStr); err != nil {
				return err
			}
			opts.output = stringFlag(cmd, "output", c.Config.OutputDir)
			opts.preview = intFlag(cmd, "preview-width", c.Config.Preview.Width)
			return c.runGenerate(cmd.Context(), display, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output directory (default from config, else .)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): png, txt (default), json, preview (comma-separated)")
	cmd.Flags().Int("preview-width", 0, "preview width in pixels (default from config)")

	return cmd
}

func (c *CLI) runGenerate(ctx context.Context, display int64, opts generateOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Generating display %d...", display))
	spinner.Start()
	res, err := c.newRunner().Execute(ctx, pipeline.Options{
		Display:      display,
		Formats:      opts.formats,
		PreviewWidth: opts.preview,
	})
	spinner.Stop()
	if err != nil {
		return err
	}

	paths, err := bgio.WriteResult(res, opts.output)
	if err != nil {
		return err
	}

	printSuccess("Display %d: %s", display, StyleHighlight.Render(quoteTitle(res.Summary.Title)))
	for _, p := range paths {
		printFile(p)
	}
	prog.done("generated", "display", display, "bytes", res.Stats.Bytes)
	return nil
}

// detailsCommand prints the text export of a display.
func (c *CLI) detailsCommand() *cobra.Command {
	var pretty bool
	var output string

	cmd := &cobra.Command{
		Use:   "details <display>",
		Short: "Print the label of a display",
		Long: `Print the label of a display in the same layout as the details download.

Pixels are not generated, so this is fast for any display.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			display, err := gallery.ParseDisplay(args[0])
			if err != nil {
				return err
			}
			s, err := gallery.Summarize(display)
			if err != nil {
				return err
			}
			if output != "" {
				if err := bgio.ExportDetails(s, output); err != nil {
					return err
				}
				printFile(output)
				return nil
			}
			out := cmd.OutOrStdout()
			if pretty {
				writeSummary(out, s)
				return nil
			}
			if err := bgio.WriteDetails(s, out); err != nil {
				return err
			}
			_, err = fmt.Fprintln(out)
			return err
		},
	}

	cmd.Flags().BoolVarP(&pretty, "pretty", "p", false, "print a styled card instead of the plain export")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the export to this file instead of stdout")

	return cmd
}

// verifyCommand checks a downloaded details file against the label its
// display number generates today.
func (c *CLI) verifyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify <details-file>",
		Short: "Check a details file against its display",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, display, err := bgio.ImportDetails(args[0])
			if err != nil {
				return err
			}
			if err := verifyDetails(d, display); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s matches display %d\n", args[0], display)
			return err
		},
	}
	return cmd
}

func verifyDetails(d label.Details, display int64) error {
	want, err := gallery.Summarize(display)
	if err != nil {
		return err
	}
	for _, f := range []struct{ name, got, want string }{
		{"title", d.Title, want.Title},
		{"artist name", d.ArtistName, want.ArtistName},
		{"description", d.Description, want.Description},
	} {
		if f.got != f.want {
			return errs.New(errs.ErrCodeInvalidInput, "%s does not match display %d", f.name, display)
		}
	}
	return nil
}

// inspectCommand shows the seed key and the first draws of a display's
// stream. It is a debugging aid for checking other implementations.
func (c *CLI) inspectCommand() *cobra.Command {
	var draws int

	cmd := &cobra.Command{
		Use:   "inspect <seed>",
		Short: "Show the seed key and first stream draws",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseSeed(args[0])
			if err != nil {
				return err
			}
			return writeInspect(cmd.OutOrStdout(), n, draws)
		},
	}

	cmd.Flags().IntVarP(&draws, "draws", "n", 4, "number of 64-bit draws to show")

	return cmd
}

func parseSeed(s string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, errs.Wrap(errs.ErrCodeInvalidSeed, err, "invalid seed %q", s)
	}
	if _, err := seed.Encode(n); err != nil {
		return 0, err
	}
	return n, nil
}

func writeInspect(w io.Writer, n int64, draws int) error {
	key, err := seed.Encode(n)
	if err != nil {
		return err
	}
	decoded, err := seed.Decode(key.Units())
	if err != nil {
		return err
	}
	if decoded.Seed() != n {
		return errs.New(errs.ErrCodeInternal, "key %s decodes to %d, want %d", key, decoded.Seed(), n)
	}
	digest := stream.Digest(key)

	writeKeyValue(w, "Seed", fmt.Sprint(n))
	writeKeyValue(w, "Units", key.String())
	writeKeyValue(w, "Decoded", fmt.Sprint(decoded.Seed()))
	writeKeyValue(w, "Key bytes", fmt.Sprint(2*key.Len()))
	writeKeyValue(w, "ChaCha key", fmt.Sprintf("%x", digest))

	s := stream.New(key)
	for i := range draws {
		writeKeyValue(w, fmt.Sprintf("Draw %d", i), fmt.Sprint(s.Uint64()))
	}

	if n >= 1 && n <= gallery.MaxDisplay {
		sum, err := gallery.Summarize(n)
		if err != nil {
			return err
		}
		writeKeyValue(w, "Ratio", sum.Ratio.String())
		writeKeyValue(w, "Lengths", fmt.Sprintf("artist %d, title %d, description %d",
			len(sum.ArtistName), len(sum.Title), len(sum.Description)))
	}
	return nil
}
