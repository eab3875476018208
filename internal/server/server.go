// Package server implements the tianzige HTTP grid service.
//
// The service renders grid PDFs on demand. Query parameters mirror
// the CLI flags; render results are cached by a hash of the canonical
// option encoding so identical requests are served from cache.
package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/tzgrid/tianzige/pkg/cache"
	"github.com/tzgrid/tianzige/pkg/errors"
	"github.com/tzgrid/tianzige/pkg/pipeline"
)

// DefaultCacheTTL is how long rendered grids stay cached.
const DefaultCacheTTL = time.Hour

// Server renders and serves grid PDFs.
type Server struct {
	runner *pipeline.Runner
	cache  cache.Cache
	logger *log.Logger
	ttl    time.Duration
}

// New creates a server. A nil cache disables caching; a zero ttl uses
// DefaultCacheTTL.
func New(runner *pipeline.Runner, c cache.Cache, logger *log.Logger, ttl time.Duration) *Server {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	if ttl == 0 {
		ttl = DefaultCacheTTL
	}
	return &Server{runner: runner, cache: c, logger: logger, ttl: ttl}
}

// Router returns the HTTP handler for the service.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(s.requestLogger)
	r.Get("/healthz", s.handleHealth)
	r.Get("/grid.pdf", s.handleGrid)
	return r
}

// requestLogger tags every request with a request id and logs its
// outcome with duration.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		reqID := uuid.NewString()
		w.Header().Set("X-Request-ID", reqID)

		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)

		s.logger.Info("request",
			"id", reqID,
			"method", r.Method,
			"path", r.URL.Path,
			"status", sw.status,
			"duration", time.Since(start).Round(time.Microsecond),
		)
	})
}

// statusWriter captures the response status for logging.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok\n"))
}

func (s *Server) handleGrid(w http.ResponseWriter, r *http.Request) {
	opts, err := parseOptions(r.URL.Query())
	if err != nil {
		http.Error(w, errors.UserMessage(err), http.StatusBadRequest)
		return
	}

	key := cache.Key("grid", opts)
	ctx := r.Context()

	if data, hit, err := s.cache.Get(ctx, key); err == nil && hit {
		s.serve(w, data, "HIT")
		return
	} else if err != nil {
		s.logger.Warn("cache read failed", "error", err)
	}

	data, err := s.runner.Generate(ctx, opts)
	if err != nil {
		http.Error(w, errors.UserMessage(err), statusFor(err))
		return
	}

	if err := s.cache.Set(ctx, key, data, s.ttl); err != nil {
		s.logger.Warn("cache write failed", "error", err)
	}
	s.serve(w, data, "MISS")
}

func (s *Server) serve(w http.ResponseWriter, data []byte, cacheState string) {
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Header().Set("X-Cache", cacheState)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// statusFor maps pipeline errors onto HTTP status codes: malformed
// inputs are 400, layouts that cannot be satisfied are 422, anything
// else is 500.
func statusFor(err error) int {
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidColor, errors.ErrCodeInvalidPageSize,
		errors.ErrCodeInvalidMargin, errors.ErrCodeInvalidSize,
		errors.ErrCodeInvalidOption:
		return http.StatusBadRequest
	case errors.ErrCodeSizeConflict, errors.ErrCodeGridTooSmall:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
