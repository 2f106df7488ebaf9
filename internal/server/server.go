// Package server provides the HTTP API for Tadoru.
package server

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/hyperjump/tadoru/internal/config"
	"github.com/hyperjump/tadoru/internal/metrics"
	"github.com/hyperjump/tadoru/internal/session"
)

// Server is the HTTP server for the Tadoru API.
type Server struct {
	session *session.Session
	config  *config.Config
	logger  *zap.Logger
	metrics *metrics.Metrics
	server  *http.Server
}

// NewServer creates a server with the given dependencies. metrics may be
// nil, which disables the /metrics endpoint.
func NewServer(
	sess *session.Session,
	cfg *config.Config,
	logger *zap.Logger,
	m *metrics.Metrics,
) *Server {
	return &Server{
		session: sess,
		config:  cfg,
		logger:  logger,
		metrics: m,
	}
}

// Router builds the API router.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(middleware.Compress(5))
	r.Use(s.recordRequests)

	r.Post("/api/v1/nodes", s.handleExpand)
	r.Get("/api/v1/nodes", s.handleListNodes)
	r.Get("/api/v1/nodes/{id}", s.handleGetNode)
	r.Delete("/api/v1/nodes/{id}", s.handleDeleteNode)
	r.Get("/api/v1/documents", s.handleListDocuments)
	r.Get("/api/v1/leaves", s.handleListLeaves)
	r.Post("/api/v1/leaves/pop", s.handlePopLeaf)
	r.Get("/api/v1/status", s.handleStatus)
	r.Get("/health", s.handleHealth)
	if s.metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.metrics.Handler())
	}
	return r
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port)
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.Router(),
	}
	s.logger.Info("Starting server", zap.String("addr", addr))
	return s.server.ListenAndServe()
}

// Stop gracefully shuts down the server.
func (s *Server) Stop(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}

func (s *Server) recordRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.metrics == nil {
			next.ServeHTTP(w, r)
			return
		}
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.metrics.RecordHTTPRequest(r.Method, strconv.Itoa(ww.Status()), time.Since(start))
	})
}
