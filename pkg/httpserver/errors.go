package httpserver

import "errors"

var (
	// ErrStart wraps failures to start or keep running the server.
	ErrStart = errors.New("httpserver: failed to start server")
	// ErrShutdown wraps failures to shut the server down gracefully.
	ErrShutdown = errors.New("httpserver: graceful shutdown failed")
)
