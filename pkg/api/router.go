package api

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/canvas2svg/pkg/pipeline"
)

// DefaultMaxBodyBytes bounds the size of a render request body.
const DefaultMaxBodyBytes = 8 << 20

// Option configures the router.
type Option func(*server)

// WithMaxBodyBytes sets the request body limit.
func WithMaxBodyBytes(n int64) Option {
	return func(s *server) { s.maxBody = n }
}

// WithDefaults sets the options applied before query parameters.
func WithDefaults(opts pipeline.Options) Option {
	return func(s *server) { s.defaults = opts }
}

type server struct {
	runner   *pipeline.Runner
	logger   *log.Logger
	maxBody  int64
	defaults pipeline.Options
}

// NewRouter returns the HTTP handler serving the API.
func NewRouter(runner *pipeline.Runner, logger *log.Logger, opts ...Option) http.Handler {
	if logger == nil {
		logger = log.Default()
	}
	s := &server{
		runner:   runner,
		logger:   logger,
		maxBody:  DefaultMaxBodyBytes,
		defaults: pipeline.DefaultOptions(),
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Route("/api/v1", func(r chi.Router) {
		r.With(middleware.RequestSize(s.maxBody)).Post("/render", s.handleRender)
		r.Get("/palette", s.handlePalette)
		r.Get("/version", s.handleVersion)
	})
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "NOT_FOUND", "no route for "+r.Method+" "+r.URL.Path)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", r.Method+" not allowed on "+r.URL.Path)
	})
	return r
}
