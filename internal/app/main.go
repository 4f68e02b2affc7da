package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/biodemo/biodemo/internal/config"
	"github.com/biodemo/biodemo/pkg/logger"
)

// Main boots one service: it loads configuration, initializes logging,
// builds the service and serves it until SIGINT or SIGTERM. It returns the
// process exit code.
func Main(build BuildFunc) int {
	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> dotenv -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		// The logger is configured from cfg, so it is not available yet.
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		return 1
	}

	if err := logger.Init(logger.WithFormat(cfg.LogFormat)); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return 1
	}
	defer func() {
		_ = logger.Sync()
	}()

	log := logger.Get()

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	svc, err := build(ctx, cfg, log)
	if err != nil {
		log.Error(ctx, "failed to build service", logger.Error(err))
		return 1
	}

	for _, route := range svc.Routes {
		log.Info(ctx, "route registered", logger.String("service", svc.Name), logger.String("route", route))
	}

	srv := svc.Server(
		WithLogger(log.Named(svc.Name)),
		WithShutdownTimeout(cfg.ShutdownTimeout()),
	)
	if err := srv.Run(ctx); err != nil {
		log.Error(ctx, "server failed", logger.String("service", svc.Name), logger.Error(err))
		return 1
	}
	return 0
}
