// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package server exposes search runs over HTTP as JSON. It is a thin
// renderer: it parses criteria from the query string, runs one search, and
// writes the report or an error body.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/pdiddy/met-explorer/internal/collection"
	"github.com/pdiddy/met-explorer/internal/explore"
	"github.com/pdiddy/met-explorer/pkg/types"
)

// RequestIDHeader carries the request ID on requests and responses.
const RequestIDHeader = "X-Request-ID"

// Runner executes one search.
type Runner interface {
	Run(ctx context.Context, criteria types.SearchCriteria) (types.SearchResult, error)
}

// Server routes HTTP requests to a Runner.
type Server struct {
	runner   Runner
	defaults types.DefaultsConfig
	gatherer prometheus.Gatherer
	logger   zerolog.Logger
}

// New returns a Server. gatherer may be nil, in which case /metrics is not served.
func New(runner Runner, defaults types.DefaultsConfig, gatherer prometheus.Gatherer, logger zerolog.Logger) *Server {
	return &Server{runner: runner, defaults: defaults, gatherer: gatherer, logger: logger}
}

// Handler returns the routed handler wrapped in request-ID and access-log middleware.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/search", s.handleSearch)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	if s.gatherer != nil {
		mux.Handle("GET /metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	}
	return s.requestID(s.accessLog(mux))
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	in := explore.Input{
		Keyword:     q.Get("q"),
		Type:        s.defaults.Type,
		Nationality: s.defaults.Nationality,
	}
	// A present but empty parameter clears the configured default.
	if q.Has("type") {
		in.Type = q.Get("type")
	}
	if q.Has("nationality") {
		in.Nationality = q.Get("nationality")
	}
	var err error
	if in.YearMin, err = intParam(q.Get("from")); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid from: %w", err))
		return
	}
	if in.YearMax, err = intParam(q.Get("to")); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid to: %w", err))
		return
	}

	criteria, err := explore.BuildCriteria(in, s.defaults)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	result, err := s.runner.Run(r.Context(), criteria)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, explore.NewReport(result))
	case errors.Is(err, collection.ErrSearchFailed):
		writeError(w, http.StatusBadGateway, errors.New("the collection API could not be searched; try again later"))
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		writeError(w, http.StatusServiceUnavailable, errors.New("search cancelled"))
	default:
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("search run failed")
		writeError(w, http.StatusInternalServerError, errors.New("internal server error"))
	}
}

func intParam(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(s)
}

// requestID propagates an incoming X-Request-ID or generates a UUID, and
// attaches a request-scoped logger to the context.
func (s *Server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		w.Header().Set(RequestIDHeader, id)

		log := s.logger.With().Str("request_id", id).Logger()
		next.ServeHTTP(w, r.WithContext(log.WithContext(r.Context())))
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		zerolog.Ctx(r.Context()).Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", rec.status).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	// Headers are already sent; an encode error cannot be reported to the client.
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, err error) {
	writeJSON(w, code, map[string]string{"error": err.Error()})
}
