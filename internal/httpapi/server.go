// Package httpapi exposes the tutoring pipeline and render job manager over
// HTTP.
package httpapi

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/abhisek/gurukul/internal/pipeline"
	"github.com/abhisek/gurukul/internal/provider"
	"github.com/abhisek/gurukul/internal/renderjobs"
)

// Config holds server configuration.
type Config struct {
	Addr   string // Default: ":8080"
	Logger *slog.Logger
}

// Server routes HTTP requests to the pipeline and the job manager.
type Server struct {
	cfg      Config
	logger   *slog.Logger
	registry *provider.Registry
	orch     *pipeline.Orchestrator
	jobs     *renderjobs.Manager
	limiter  *rateLimiter
	mux      *http.ServeMux
}

// NewServer creates a Server with all routes registered.
func NewServer(cfg Config, registry *provider.Registry, orch *pipeline.Orchestrator, jobs *renderjobs.Manager) *Server {
	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	s := &Server{
		cfg:      cfg,
		logger:   cfg.Logger,
		registry: registry,
		orch:     orch,
		jobs:     jobs,
		limiter:  newRateLimiter(5, time.Minute),
		mux:      http.NewServeMux(),
	}

	s.mux.HandleFunc("POST /api/ai/voice/process", s.handleVoiceProcess)
	s.mux.HandleFunc("GET /api/ai/voice/process", s.handleVoiceAvailability)
	s.mux.HandleFunc("POST /api/ai/chat", s.handleChat)
	s.mux.HandleFunc("POST /api/ai/tts", s.handleTTS)
	s.mux.HandleFunc("GET /api/ai/tts", s.handleTTSAvailability)
	s.mux.HandleFunc("POST /api/render/generate", s.handleRenderGenerate)
	s.mux.HandleFunc("GET /api/render/status/{jobId}", s.handleRenderStatus)
	s.mux.HandleFunc("POST /api/render/status/{jobId}", s.handleRenderStatusWrite)

	return s
}

// Handler returns the root handler with request logging applied.
func (s *Server) Handler() http.Handler {
	return s.logRequests(s.mux)
}

// Run serves until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.Addr,
		Handler:      s.Handler(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", s.cfg.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// statusRecorder captures the response code for the request log.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}
