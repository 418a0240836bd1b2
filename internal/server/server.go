// Package server exposes repository stats, profile analysis and README
// generation as a small JSON API.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"ghstats/internal/generator"
	"ghstats/internal/github"
	"ghstats/internal/logging"
	"ghstats/internal/pipeline"

	"go.uber.org/zap"
)

// DefaultAddr is used when no address option is given.
const DefaultAddr = "127.0.0.1:8080"

// Service is the subset of pipeline.Service served over HTTP.
type Service interface {
	RepoStats(ctx context.Context, rawURL string) (*github.Repository, error)
	AnalyzeProfile(ctx context.Context, input string) (*pipeline.ProfileReport, error)
	Readme(opts generator.ReadmeOptions) (string, error)
}

type Server struct {
	svc            Service
	addr           string
	logger         *zap.Logger
	requestTimeout time.Duration

	mu       sync.Mutex
	server   *http.Server
	listener net.Listener
}

// Option customizes server construction.
type Option func(*Server)

func WithAddr(addr string) Option {
	return func(s *Server) {
		if addr != "" {
			s.addr = addr
		}
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithRequestTimeout bounds each API call, including AI analysis.
func WithRequestTimeout(d time.Duration) Option {
	return func(s *Server) {
		if d > 0 {
			s.requestTimeout = d
		}
	}
}

func New(svc Service, opts ...Option) *Server {
	s := &Server{
		svc:            svc,
		addr:           DefaultAddr,
		logger:         logging.OrNop(nil),
		requestTimeout: 2 * time.Minute,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Handler returns the routed API with request IDs and access logging applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /api/repos", s.handleRepo)
	mux.HandleFunc("GET /api/profile", s.handleProfile)
	mux.HandleFunc("GET /api/readme", s.handleReadme)
	return s.withRequestID(s.withAccessLog(mux))
}

// Start binds the listener and serves in the background.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener != nil {
		return fmt.Errorf("server: already started")
	}
	listener, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("server: listen %s: %w", s.addr, err)
	}
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return context.WithoutCancel(ctx) },
	}
	s.listener = listener
	s.server = srv
	go func() {
		if err := srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("serve failed", zap.Error(err))
		}
	}()
	s.logger.Info("listening", zap.String("addr", listener.Addr().String()))
	return nil
}

// Run serves until ctx is cancelled and then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	if err := s.Start(ctx); err != nil {
		return err
	}
	return s.Wait(ctx)
}

// Wait blocks until ctx is cancelled, then shuts a started server down.
// Requests already in flight keep running until the drain deadline.
func (s *Server) Wait(ctx context.Context) error {
	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.Shutdown(shutdownCtx)
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.server == nil {
		return nil
	}
	s.logger.Info("shutting down")
	err := s.server.Shutdown(ctx)
	s.server = nil
	s.listener = nil
	return err
}

// Addr is the bound address once started, or the configured one before.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return s.addr
}
