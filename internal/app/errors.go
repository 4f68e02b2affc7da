package app

import "errors"

// Error constants
var (
	ErrListen   = errors.New("listen failed")
	ErrServe    = errors.New("http server failed")
	ErrShutdown = errors.New("graceful shutdown failed")
	ErrBuild    = errors.New("service build failed")
)
