package cli

import (
	"context"

	"github.com/spf13/cobra"

	errs "github.com/matzehuels/babelgallery/pkg/errors"
	"github.com/matzehuels/babelgallery/pkg/observability"
	"github.com/matzehuels/babelgallery/pkg/observability/prom"
	"github.com/matzehuels/babelgallery/pkg/server"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr    string
	rate    float64
	burst   int
	preview int
	metrics bool
}

// serveCommand runs the HTTP gallery until interrupted.
func (c *CLI) serveCommand() *cobra.Command {
	var opts serveOpts

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Open the gallery over HTTP",
		Long: `Open the gallery over HTTP.

Rooms are browsable at /room/<n>; each display has an image, a preview, a
details download and a JSON view. Image routes are rate limited.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.addr = stringFlag(cmd, "addr", c.Config.Server.Addr)
			opts.burst = intFlag(cmd, "burst", c.Config.Server.Burst)
			opts.preview = intFlag(cmd, "preview-width", c.Config.Preview.Width)
			opts.rate = c.Config.Server.Rate
			if cmd.Flags().Changed("rate") {
				opts.rate, _ = cmd.Flags().GetFloat64("rate")
			}
			if err := errs.ValidateAddr(opts.addr); err != nil {
				return err
			}
			return c.runServe(cmd.Context(), opts)
		},
	}

	cmd.Flags().String("addr", "", "listen address (default from config, else :8080)")
	cmd.Flags().Float64("rate", 0, "image generations per second (default from config)")
	cmd.Flags().Int("burst", 0, "image generation burst (default from config)")
	cmd.Flags().Int("preview-width", 0, "preview width in pixels (default from config)")
	cmd.Flags().BoolVar(&opts.metrics, "metrics", true, "serve Prometheus metrics at /metrics")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, opts serveOpts) error {
	logger := loggerFromContext(ctx)

	srvOpts := server.Options{
		Logger:       logger,
		Runner:       c.newRunner(),
		Rate:         opts.rate,
		Burst:        opts.burst,
		PreviewWidth: opts.preview,
	}
	if opts.metrics {
		m := prom.New()
		observability.SetGenerateHooks(m)
		observability.SetHTTPHooks(m)
		defer observability.Reset()
		srvOpts.Metrics = m.Handler()
		srvOpts.Hooks = m
		srvOpts.Runner.Hooks = m
	}

	printInfo("Gallery open at %s", StyleLink.Render("http://"+displayAddr(opts.addr)))
	printNextStep("Stop with", "ctrl+c")
	return server.New(srvOpts).ListenAndServe(ctx, opts.addr)
}

// displayAddr turns ":8080" into "localhost:8080" for printing.
func displayAddr(addr string) string {
	if len(addr) > 0 && addr[0] == ':' {
		return "localhost" + addr
	}
	return addr
}
