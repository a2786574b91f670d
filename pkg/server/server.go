package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/time/rate"

	"github.com/matzehuels/babelgallery/pkg/config"
	"github.com/matzehuels/babelgallery/pkg/observability"
	"github.com/matzehuels/babelgallery/pkg/pipeline"
)

const shutdownTimeout = 5 * time.Second

// Options configures a Server. Zero values take the config defaults.
type Options struct {
	Logger       *log.Logger
	Runner       *pipeline.Runner
	Rate         float64 // image generations per second
	Burst        int
	PreviewWidth int

	// Metrics is mounted at /metrics when set.
	Metrics http.Handler

	// Hooks defaults to the observability registry.
	Hooks observability.HTTPHooks
}

// Server is the HTTP gallery.
type Server struct {
	router       chi.Router
	runner       *pipeline.Runner
	limiter      *rate.Limiter
	logger       *log.Logger
	hooks        observability.HTTPHooks
	previewWidth int
}

// New builds a Server and its routes.
func New(opts Options) *Server {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Runner == nil {
		opts.Runner = pipeline.NewRunner(opts.Logger)
	}
	if opts.Rate <= 0 {
		opts.Rate = config.DefaultRate
	}
	if opts.Burst <= 0 {
		opts.Burst = config.DefaultBurst
	}
	if opts.PreviewWidth <= 0 {
		opts.PreviewWidth = config.DefaultPreviewWidth
	}
	if opts.Hooks == nil {
		opts.Hooks = observability.HTTP()
	}

	s := &Server{
		runner:       opts.Runner,
		limiter:      rate.NewLimiter(rate.Limit(opts.Rate), opts.Burst),
		logger:       opts.Logger,
		hooks:        opts.Hooks,
		previewWidth: opts.PreviewWidth,
	}
	s.router = s.routes(opts.Metrics)
	return s
}

func (s *Server) routes(metrics http.Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.accessLog)
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleRoom)
	r.Get("/room", s.handleRoom)
	r.Get("/room/{room}", s.handleRoom)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
	if metrics != nil {
		r.Method(http.MethodGet, "/metrics", metrics)
	}

	r.Route("/display/{id}", func(r chi.Router) {
		r.Get("/", s.handleDisplay)
		r.Get("/view", s.handleDisplayPage)
		r.Get("/details.txt", s.handleDetails)
		r.Group(func(r chi.Router) {
			r.Use(s.rateLimit)
			r.Get("/image.png", s.handleImage)
			r.Get("/preview.jpg", s.handlePreview)
		})
	})
	return r
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves on addr until ctx is canceled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("gallery open", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	s.logger.Info("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
