package server

import (
	"context"
	"net/http"
	"time"

	"github.com/Kronuz/base-x-go/internal/config"
	"github.com/Kronuz/base-x-go/internal/logging"
	"github.com/Kronuz/base-x-go/internal/metrics"
)

// Server wires the encode/decode/arith handlers, liveness probe, and
// metrics endpoint behind the security and metrics middleware.
type Server struct {
	httpServer      *http.Server
	metrics         *Metrics
	memoryCollector *metrics.MemoryCollector
	logger          logging.Logger
	security        SecurityConfig
	maxInputBytes   int64
	maxNValue       uint64
}

// New builds a Server from an AppConfig, ready to ListenAndServe.
func New(cfg config.AppConfig, logger logging.Logger) *Server {
	s := &Server{
		metrics:         NewMetrics(),
		memoryCollector: metrics.NewMemoryCollector(),
		logger:          logger,
		security:        DefaultSecurityConfig(),
		maxInputBytes:   cfg.MaxInputBytes,
		maxNValue:       cfg.MaxNValue,
	}
	s.security.MaxNValue = cfg.MaxNValue

	mux := http.NewServeMux()
	mux.HandleFunc("/v1/encode", s.wrap(s.handleEncode))
	mux.HandleFunc("/v1/decode", s.wrap(s.handleDecode))
	mux.HandleFunc("/v1/arith", s.wrap(s.handleArith))
	mux.HandleFunc("/healthz", s.wrap(s.handleHealthz))
	mux.HandleFunc("/metrics", s.wrap(s.handleMetrics))

	s.httpServer = &http.Server{
		Addr:        cfg.Addr,
		Handler:     mux,
		ReadTimeout: cfg.ReadTimeout,
	}
	return s
}

// wrap applies the metrics and security middleware to an endpoint handler.
func (s *Server) wrap(h http.HandlerFunc) http.HandlerFunc {
	return s.metricsMiddleware(SecurityMiddleware(s.security, h))
}

// ListenAndServe starts serving and blocks until ctx is canceled, at which
// point it shuts the server down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", logging.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.logger.Info("server shutting down")
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return <-errCh
	case err := <-errCh:
		return err
	}
}
