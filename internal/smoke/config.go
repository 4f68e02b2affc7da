package smoke

import "time"

// Config holds configuration for a smoke run. An empty URL skips the
// checks for that service.
type Config struct {
	GeneURL     string        // Base URL of the gene API
	SurvivalURL string        // Base URL of the survival-analysis service
	FrontendURL string        // Base URL of the frontend
	Timeout     time.Duration // HTTP request timeout
	Workers     int           // Number of concurrent checks
	Verbose     bool          // Log passing checks too
}

// Result is the outcome of one check.
type Result struct {
	Service  string
	Name     string
	Err      error
	Duration time.Duration
}

// Passed reports whether the check succeeded.
func (r Result) Passed() bool { return r.Err == nil }

// Report holds the results of a run in check order.
type Report struct {
	Results  []Result
	Duration time.Duration
}

// Failed returns the failing results.
func (r *Report) Failed() []Result {
	var out []Result
	for _, res := range r.Results {
		if !res.Passed() {
			out = append(out, res)
		}
	}
	return out
}
