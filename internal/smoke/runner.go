package smoke

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/biodemo/biodemo/pkg/logger"
)

const defaultWorkers = 4

type job struct {
	index int
	check Check
	base  string
}

// Run executes every check whose service has a URL configured and logs one
// line per result. It returns ErrChecksFailed when any check fails.
func Run(ctx context.Context, config *Config) (*Report, error) {
	start := time.Now()
	log := logger.Get()

	jobs := plan(config)
	if len(jobs) == 0 {
		return nil, ErrNoTargets
	}

	log.Info(ctx, "starting smoke checks",
		logger.String("geneURL", config.GeneURL),
		logger.String("survivalURL", config.SurvivalURL),
		logger.String("frontendURL", config.FrontendURL),
		logger.Int("checks", len(jobs)),
		logger.String("timeout", config.Timeout.String()))

	report := &Report{Results: make([]Result, len(jobs))}
	client := newHTTPClient(config.Timeout)

	workers := config.Workers
	if workers <= 0 {
		workers = defaultWorkers
	}

	jobCh := make(chan job, workers*2)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobCh {
				report.Results[j.index] = runCheck(ctx, client, j)
			}
		}()
	}

	go func() {
		defer close(jobCh)
		for _, j := range jobs {
			select {
			case <-ctx.Done():
				return
			case jobCh <- j:
			}
		}
	}()

	wg.Wait()
	report.Duration = time.Since(start)

	for i, res := range report.Results {
		if res.Name == "" {
			// Never dispatched because ctx ended.
			report.Results[i] = Result{Service: jobs[i].check.Service, Name: jobs[i].check.Name, Err: ctx.Err()}
		}
	}
	logReport(ctx, log, report, config.Verbose)

	if failed := report.Failed(); len(failed) > 0 {
		return report, fmt.Errorf("%w: %d of %d", ErrChecksFailed, len(failed), len(report.Results))
	}
	return report, nil
}

func plan(config *Config) []job {
	bases := map[string]string{
		ServiceGene:     config.GeneURL,
		ServiceSurvival: config.SurvivalURL,
		ServiceFrontend: config.FrontendURL,
	}
	var jobs []job
	for _, c := range Checks() {
		base := bases[c.Service]
		if base == "" {
			continue
		}
		jobs = append(jobs, job{index: len(jobs), check: c, base: base})
	}
	return jobs
}

func runCheck(ctx context.Context, client *HTTPClient, j job) Result {
	start := time.Now()
	err := j.check.Run(ctx, client, j.base)
	return Result{
		Service:  j.check.Service,
		Name:     j.check.Name,
		Err:      err,
		Duration: time.Since(start),
	}
}

func logReport(ctx context.Context, log logger.Logger, report *Report, verbose bool) {
	for _, res := range report.Results {
		fields := []logger.Field{
			logger.String("service", res.Service),
			logger.String("check", res.Name),
			logger.Float64("duration_ms", float64(res.Duration.Microseconds())/1000),
		}
		if res.Passed() {
			if verbose {
				log.Info(ctx, "check passed", fields...)
			}
			continue
		}
		log.Error(ctx, "check failed", append(fields, logger.Error(res.Err))...)
	}

	log.Info(ctx, "smoke summary",
		logger.Int("checks", len(report.Results)),
		logger.Int("failed", len(report.Failed())),
		logger.String("duration", report.Duration.String()))
}
