package pipeline

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	errs "github.com/matzehuels/babelgallery/pkg/errors"
	"github.com/matzehuels/babelgallery/pkg/gallery"
	"github.com/matzehuels/babelgallery/pkg/observability"
)

// Runner executes pipeline runs.
//
// The Runner is stateless except for the logger and hooks; the generator
// has no shared state. Multiple goroutines can safely use the same Runner
// with different options.
type Runner struct {
	Logger *log.Logger
	Hooks  observability.GenerateHooks
}

// NewRunner creates a runner. If logger is nil, log.Default() is used.
// Hooks come from the observability registry.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Logger: logger,
		Hooks:  observability.Generate(),
	}
}

// Execute runs synthesize → render for one display.
func (r *Runner) Execute(ctx context.Context, opts Options) (result *Result, err error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	hooks := r.hooks()
	start := time.Now()
	hooks.OnGenerateStart(ctx, opts.Display, opts.Formats)
	defer func() {
		hooks.OnGenerateComplete(ctx, opts.Display, opts.Formats, time.Since(start), err)
	}()

	result = &Result{}

	// Stage 1: Synthesize
	synthStart := time.Now()
	if opts.NeedsPixels() {
		a, err := gallery.Generate(opts.Display)
		if err != nil {
			return nil, fmt.Errorf("synthesize: %w", err)
		}
		result.Artifact = a
		result.Summary = a.Summary()
	} else {
		s, err := gallery.Summarize(opts.Display)
		if err != nil {
			return nil, fmt.Errorf("synthesize: %w", err)
		}
		result.Summary = s
	}
	result.Stats.SynthesizeTime = time.Since(synthStart)

	opts.Logger.Debug("synthesized display",
		"display", opts.Display,
		"room", result.Summary.Room,
		"ratio", result.Summary.Ratio.Name,
		"pixels", result.Artifact != nil,
		"duration", result.Stats.SynthesizeTime)

	// Stage 2: Render
	renderStart := time.Now()
	artifacts, err := Render(result.Summary, result.Artifact, opts)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	for _, data := range artifacts {
		result.Stats.Bytes += len(data)
	}

	opts.Logger.Debug("rendered outputs",
		"display", opts.Display,
		"formats", opts.Formats,
		"bytes", result.Stats.Bytes,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// =============================================================================
// Batch Execution
// =============================================================================

// Batch describes an inclusive range of displays to run.
type Batch struct {
	From, To int64
	Workers  int     // defaults to runtime.NumCPU()
	Options  Options // template; Display is overwritten per run
}

// Validate checks the range.
func (b Batch) Validate() error {
	if err := gallery.ValidateDisplay(b.From); err != nil {
		return err
	}
	if err := gallery.ValidateDisplay(b.To); err != nil {
		return err
	}
	if b.To < b.From {
		return errs.New(errs.ErrCodeInvalidInput, "range end %d is before start %d", b.To, b.From)
	}
	if b.Workers < 0 {
		return errs.New(errs.ErrCodeInvalidInput, "workers must not be negative, got %d", b.Workers)
	}
	return nil
}

// Len returns the number of displays in the batch.
func (b Batch) Len() int64 { return b.To - b.From + 1 }

// ExecuteBatch runs every display in b on a bounded worker pool and passes
// each result to fn. Results arrive in completion order. Calls to fn are
// serialized. The first error from a run or from fn cancels the rest.
func (r *Runner) ExecuteBatch(ctx context.Context, b Batch, fn func(*Result) error) error {
	if err := b.Validate(); err != nil {
		return err
	}
	workers := b.Workers
	if workers == 0 {
		workers = runtime.NumCPU()
	}

	tmpl := b.Options
	tmpl.Display = b.From
	r.applyLogger(&tmpl)
	if err := tmpl.ValidateAndSetDefaults(); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	var mu sync.Mutex
	start := time.Now()

	for display := b.From; display <= b.To; display++ {
		if gctx.Err() != nil {
			break
		}
		opts := tmpl
		opts.Display = display
		g.Go(func() error {
			res, err := r.Execute(gctx, opts)
			if err != nil {
				return fmt.Errorf("display %d: %w", opts.Display, err)
			}
			mu.Lock()
			defer mu.Unlock()
			return fn(res)
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	r.Logger.Info("batch complete",
		"from", b.From,
		"to", b.To,
		"count", b.Len(),
		"workers", workers,
		"duration", time.Since(start))
	return nil
}

func (r *Runner) hooks() observability.GenerateHooks {
	if r.Hooks == nil {
		return observability.Generate()
	}
	return r.Hooks
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
