package config

import "errors"

// ErrLoadConfig wraps dotenv, file, env and decode failures in Load.
// ErrInvalidConfig is returned by Validate for unusable values.
var (
	ErrInvalidConfig = errors.New("invalid config")
	ErrLoadConfig    = errors.New("load config failed")
)
