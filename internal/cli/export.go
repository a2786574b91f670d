package cli

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/spf13/cobra"

	"github.com/matzehuels/babelgallery/pkg/gallery"
	bgio "github.com/matzehuels/babelgallery/pkg/io"
	"github.com/matzehuels/babelgallery/pkg/pipeline"
)

// exportOpts holds the command-line flags for the export command.
type exportOpts struct {
	from, to int64
	output   string
	formats  []string
	workers  int
	preview  int
}

// exportCommand generates a range of displays in parallel.
func (c *CLI) exportCommand() *cobra.Command {
	var fromStr, toStr, formatsStr string
	var opts exportOpts

	cmd := &cobra.Command{
		Use:   "export --from <display> --to <display>",
		Short: "Save a range of displays",
		Example: `  babelgallery export --from 1 --to 100 -o gallery
  babelgallery export --from 1 --to 4 -f txt,json --workers 2`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if opts.from, err = gallery.ParseDisplay(fromStr); err != nil {
				return err
			}
			if opts.to, err = gallery.ParseDisplay(toStr); err != nil {
				return err
			}
			if opts.formats, err = parseFormats(formatsStr); err != nil {
				return err
			}
			opts.output = stringFlag(cmd, "output", c.Config.OutputDir)
			opts.workers = intFlag(cmd, "workers", c.Config.Workers)
			opts.preview = intFlag(cmd, "preview-width", c.Config.Preview.Width)
			return c.runExport(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&fromStr, "from", "", "first display (inclusive)")
	cmd.Flags().StringVar(&toStr, "to", "", "last display (inclusive)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output directory (default from config, else .)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): png, txt (default), json, preview (comma-separated)")
	cmd.Flags().Int("workers", 0, "parallel workers (default from config, else CPU count)")
	cmd.Flags().Int("preview-width", 0, "preview width in pixels (default from config)")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func (c *CLI) runExport(ctx context.Context, opts exportOpts) error {
	logger := loggerFromContext(ctx)
	batch := pipeline.Batch{
		From:    opts.from,
		To:      opts.to,
		Workers: opts.workers,
		Options: pipeline.Options{Formats: opts.formats, PreviewWidth: opts.preview},
	}
	if err := batch.Validate(); err != nil {
		return err
	}

	prog := newProgress(logger)
	total := batch.Len()
	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Exporting 0/%d", total))
	spinner.Start()

	var written, files atomic.Int64
	err := c.newRunner().ExecuteBatch(ctx, batch, func(res *pipeline.Result) error {
		paths, err := bgio.WriteResult(res, opts.output)
		if err != nil {
			return err
		}
		files.Add(int64(len(paths)))
		n := written.Add(1)
		spinner.SetMessage(fmt.Sprintf("Exporting %d/%d", n, total))
		logger.Debug("exported", "display", res.Summary.Display, "files", len(paths))
		return nil
	})
	if err != nil {
		spinner.StopWithError(fmt.Sprintf("Export stopped after %d of %d displays", written.Load(), total))
		return err
	}

	spinner.StopWithSuccess(fmt.Sprintf("Exported %d displays (%d files) to %s", total, files.Load(), opts.output))
	printDetail("%.1f displays/s", prog.rate(total))
	prog.done("export complete", "displays", total)
	return nil
}
