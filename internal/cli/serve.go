package cli

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	apperrors "github.com/gridlockdev/gridlock/pkg/errors"
	"github.com/gridlockdev/gridlock/pkg/pattern"
)

// serveCommand creates the serve command, a small JSON API over the
// counting engine.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve pattern counts over HTTP",
		Long: `Start an HTTP server exposing the counting engine as a JSON API.

Endpoints:
  GET /api/v1/count?grid=N&min=M   total count for an N×N grid
  GET /api/v1/table?grid=N&min=M   counts broken down by length
  GET /healthz                     liveness probe

Results are kept in memory, so repeating a query is served from the
warm cache.`,
		Example: `  gridlock serve
  gridlock serve --addr :9000

  curl 'localhost:8417/api/v1/count?grid=3&min=4'`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			srv := newServer(logger)

			httpSrv := &http.Server{
				Addr:              addr,
				Handler:           srv.routes(),
				ReadHeaderTimeout: 5 * time.Second,
			}

			go func() {
				<-cmd.Context().Done()
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := httpSrv.Shutdown(shutdownCtx); err != nil {
					logger.Warn("shutdown", "err", err)
				}
			}()

			printInfo("Listening on %s", StyleValue.Render(addr))
			if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			logger.Info("server stopped")
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", c.Config.Serve.Addr, "listen address")

	return cmd
}

// =============================================================================
// Server
// =============================================================================

// countParams identifies one query; equal params hit the same cache slot.
type countParams struct {
	Grid      int
	MinLength int
}

// countResponse is the JSON body for /api/v1/count.
type countResponse struct {
	ID         string `json:"id"`
	Grid       int    `json:"grid"`
	MinLength  int    `json:"min_length"`
	Count      int64  `json:"count"`
	DurationMS int64  `json:"duration_ms"`
	Cached     bool   `json:"cached"`
}

// tableResponse is the JSON body for /api/v1/table.
type tableResponse struct {
	ID         string  `json:"id"`
	Grid       int     `json:"grid"`
	MinLength  int     `json:"min_length"`
	Counts     []int64 `json:"counts"`
	Total      int64   `json:"total"`
	DurationMS int64   `json:"duration_ms"`
	Cached     bool    `json:"cached"`
}

// errorResponse is the JSON body for all error replies.
type errorResponse struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    apperrors.Code `json:"code"`
	Message string         `json:"message"`
}

// server holds the shared counting state behind the HTTP handlers.
// The engine is single-threaded, so a mutex serializes counts; cached
// replies skip it entirely.
type server struct {
	logger *log.Logger

	mu      sync.Mutex
	counter *pattern.Counter

	cacheMu sync.RWMutex
	counts  map[countParams]int64
	tables  map[countParams][]int64
}

func newServer(logger *log.Logger) *server {
	return &server{
		logger:  logger,
		counter: pattern.NewCounter(),
		counts:  make(map[countParams]int64),
		tables:  make(map[countParams][]int64),
	}
}

func (s *server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)

	r.Get("/healthz", s.handleHealth)
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/count", s.handleCount)
		r.Get("/table", s.handleTable)
	})
	return r
}

// requestLogger logs each request with method, path, status and latency.
func (s *server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start).Round(time.Microsecond),
		)
	})
}

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *server) handleCount(w http.ResponseWriter, r *http.Request) {
	params, err := parseCountParams(r)
	if err != nil {
		writeError(w, err)
		return
	}

	s.cacheMu.RLock()
	count, hit := s.counts[params]
	s.cacheMu.RUnlock()

	start := time.Now()
	if !hit {
		s.mu.Lock()
		count, err = s.counter.CountValidPatterns(params.Grid, params.MinLength)
		s.mu.Unlock()
		if err != nil {
			writeError(w, countError(err, params))
			return
		}
		s.cacheMu.Lock()
		s.counts[params] = count
		s.cacheMu.Unlock()
	}

	writeJSON(w, http.StatusOK, countResponse{
		ID:         uuid.NewString(),
		Grid:       params.Grid,
		MinLength:  params.MinLength,
		Count:      count,
		DurationMS: time.Since(start).Milliseconds(),
		Cached:     hit,
	})
}

func (s *server) handleTable(w http.ResponseWriter, r *http.Request) {
	params, err := parseCountParams(r)
	if err != nil {
		writeError(w, err)
		return
	}

	s.cacheMu.RLock()
	counts, hit := s.tables[params]
	s.cacheMu.RUnlock()

	start := time.Now()
	if !hit {
		s.mu.Lock()
		counts, err = s.counter.CountByLength(params.Grid)
		s.mu.Unlock()
		if err != nil {
			writeError(w, countError(err, params))
			return
		}
		if min := params.MinLength; min > 1 {
			if min > len(counts) {
				counts = nil
			} else {
				counts = counts[min-1:]
			}
		}
		s.cacheMu.Lock()
		s.tables[params] = counts
		s.cacheMu.Unlock()
	}

	var total int64
	for _, n := range counts {
		total += n
	}

	writeJSON(w, http.StatusOK, tableResponse{
		ID:         uuid.NewString(),
		Grid:       params.Grid,
		MinLength:  params.MinLength,
		Counts:     counts,
		Total:      total,
		DurationMS: time.Since(start).Milliseconds(),
		Cached:     hit,
	})
}

// =============================================================================
// Helpers
// =============================================================================

// parseCountParams reads grid and min from the query string, defaulting
// to the classic 3×3 lock screen parameters.
func parseCountParams(r *http.Request) (countParams, error) {
	params := countParams{Grid: 3, MinLength: 4}

	if v := r.URL.Query().Get("grid"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return params, apperrors.New(apperrors.ErrCodeInvalidInput, "grid must be an integer, got %q", v)
		}
		params.Grid = n
	}
	if v := r.URL.Query().Get("min"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return params, apperrors.New(apperrors.ErrCodeInvalidInput, "min must be an integer, got %q", v)
		}
		params.MinLength = n
	}
	return params, nil
}

// countError maps engine failures onto structured API errors.
func countError(err error, params countParams) error {
	switch {
	case errors.Is(err, pattern.ErrGridSize):
		return apperrors.Wrap(apperrors.ErrCodeInvalidGrid, err, "grid size %d is out of range", params.Grid)
	case errors.Is(err, pattern.ErrOverflow):
		return apperrors.Wrap(apperrors.ErrCodeOverflow, err, "count for %d×%d grid exceeds int64", params.Grid, params.Grid)
	default:
		return apperrors.Wrap(apperrors.ErrCodeInternal, err, "counting failed")
	}
}

// writeError maps structured error codes onto HTTP statuses.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch apperrors.GetCode(err) {
	case apperrors.ErrCodeInvalidInput, apperrors.ErrCodeInvalidGrid:
		status = http.StatusBadRequest
	case apperrors.ErrCodeOverflow:
		status = http.StatusUnprocessableEntity
	case apperrors.ErrCodeNotFound:
		status = http.StatusNotFound
	}

	code := apperrors.GetCode(err)
	if code == "" {
		code = apperrors.ErrCodeInternal
	}
	writeJSON(w, status, errorResponse{Error: errorBody{
		Code:    code,
		Message: apperrors.UserMessage(err),
	}})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
