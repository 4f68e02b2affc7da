package smoke

import "errors"

// Error constants
var (
	ErrNoTargets        = errors.New("no service URL configured")
	ErrChecksFailed     = errors.New("smoke checks failed")
	ErrUnexpectedStatus = errors.New("unexpected status")
	ErrUnexpectedBody   = errors.New("unexpected body")
)
