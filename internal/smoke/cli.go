package smoke

import "os"

// ShowHelp prints usage information for the smoke tool.
func ShowHelp() {
	os.Stdout.WriteString(`Biodemo Smoke Tool
==================

Probes running services and verifies their public contract. Exits 1 when
any check fails.

Usage:
  go run ./cmd/smoke [options]

Options:
  -gene string
        Base URL of the gene API (default "http://localhost:28881")
  -survival string
        Base URL of the survival service (default "http://localhost:28882")
  -frontend string
        Base URL of the frontend (default "http://localhost:28883")
  -timeout duration
        HTTP request timeout (default 5s)
  -workers int
        Number of concurrent checks (default 4)
  -verbose
        Log passing checks too
  -help
        Show this help message

Pass an empty URL to skip a service:
  go run ./cmd/smoke -survival "" -frontend ""
`)
}
