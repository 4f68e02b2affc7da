package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/biodemo/biodemo/internal/smoke"
	"github.com/biodemo/biodemo/pkg/logger"
)

// Default configuration constants.
const (
	defaultTimeout    = 5 * time.Second
	defaultWorkers    = 4
	defaultRunTimeout = time.Minute
)

func main() {
	var (
		geneURL     = flag.String("gene", "http://localhost:28881", "Base URL of the gene API")
		survivalURL = flag.String("survival", "http://localhost:28882", "Base URL of the survival service")
		frontendURL = flag.String("frontend", "http://localhost:28883", "Base URL of the frontend")
		timeout     = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
		workers     = flag.Int("workers", defaultWorkers, "Number of concurrent checks")
		verbose     = flag.Bool("verbose", false, "Log passing checks too")
		help        = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help {
		smoke.ShowHelp()
		return
	}

	if err := logger.Init(logger.WithFormat(logger.FormatConsole)); err != nil {
		os.Stderr.WriteString("Failed to setup logging: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	ctx, cancel := context.WithTimeout(context.Background(), defaultRunTimeout)
	defer cancel()

	config := &smoke.Config{
		GeneURL:     *geneURL,
		SurvivalURL: *survivalURL,
		FrontendURL: *frontendURL,
		Timeout:     *timeout,
		Workers:     *workers,
		Verbose:     *verbose,
	}

	if _, err := smoke.Run(ctx, config); err != nil {
		os.Stderr.WriteString("Smoke test failed: " + err.Error() + "\n")
		cancel()
		_ = logger.Sync()
		os.Exit(1)
	}
}
