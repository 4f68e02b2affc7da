// Package app assembles the HTTP services and runs them until shutdown.
package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"runtime"
	"time"

	"github.com/biodemo/biodemo/pkg/logger"
	"github.com/biodemo/biodemo/pkg/metrics"
)

// HTTP server timeout constants.
const (
	readTimeout               = 10 * time.Second
	writeTimeout              = 10 * time.Second
	idleTimeout               = 60 * time.Second
	readHeaderTimeout         = 5 * time.Second
	defaultShutdownTimeout    = 30 * time.Second
	defaultMetricsInterval    = 10 * time.Second
	nanosecondsPerMillisecond = 1e6
)

// Server runs one HTTP handler on one address with graceful shutdown.
type Server struct {
	name            string
	addr            string
	handler         http.Handler
	logger          logger.Logger
	shutdownTimeout time.Duration
	metricsInterval time.Duration
}

// Option applies a configuration option to the Server.
type Option func(*Server)

// WithAddr sets the listen address used by Run.
func WithAddr(addr string) Option {
	return func(s *Server) {
		s.addr = addr
	}
}

// WithLogger sets a custom logger for the server.
func WithLogger(l logger.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithShutdownTimeout bounds how long in-flight requests may take to drain.
func WithShutdownTimeout(d time.Duration) Option {
	return func(s *Server) {
		if d > 0 {
			s.shutdownTimeout = d
		}
	}
}

// WithMetricsInterval sets how often runtime gauges are refreshed. Zero
// disables the updater.
func WithMetricsInterval(d time.Duration) Option {
	return func(s *Server) {
		if d >= 0 {
			s.metricsInterval = d
		}
	}
}

// New constructs a Server for handler.
func New(name string, handler http.Handler, opts ...Option) *Server {
	s := &Server{
		name:            name,
		handler:         handler,
		logger:          logger.Nop(),
		shutdownTimeout: defaultShutdownTimeout,
		metricsInterval: defaultMetricsInterval,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run listens on the configured address and serves until ctx is done.
func (s *Server) Run(ctx context.Context) error {
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", s.addr)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrListen, s.addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is done, then shuts down
// gracefully. It returns nil after a clean shutdown.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.handler,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	if s.metricsInterval > 0 {
		go startSystemMetricsUpdater(runCtx, s.metricsInterval)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()
	s.logger.Info(ctx, "starting HTTP server",
		logger.String("service", s.name),
		logger.String("addr", ln.Addr().String()),
	)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("%w: %v", ErrServe, err)
	case <-ctx.Done():
	}

	s.logger.Info(ctx, "shutting down server...", logger.String("service", s.name))

	shutdownCtx, stop := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer stop()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("%w: %v", ErrShutdown, err)
	}

	s.logger.Info(ctx, "server stopped", logger.String("service", s.name))
	return nil
}

// startSystemMetricsUpdater refreshes runtime gauges until ctx is done.
func startSystemMetricsUpdater(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	updateSystemMetrics()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			updateSystemMetrics()
		}
	}
}

func updateSystemMetrics() {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	metrics.UpdateSystemMemoryUsage(m.Alloc)
	metrics.UpdateSystemGoroutineCount(runtime.NumGoroutine())

	if m.NumGC > 0 {
		avgPauseMs := float64(m.PauseTotalNs) / float64(m.NumGC) / nanosecondsPerMillisecond
		metrics.RecordSystemGCPauseTime(avgPauseMs)
	}
}
