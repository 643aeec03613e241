package config

import "errors"

var (
	// ErrParsingConfig wraps failures to parse environment variables into
	// a configuration struct.
	ErrParsingConfig = errors.New("config: failed to parse environment variables")

	// ErrLoadingEnv wraps failures to read an explicitly named .env file.
	ErrLoadingEnv = errors.New("config: failed to load env file")

	// ErrNilPointer is returned when Load or Reload receives a nil
	// destination.
	ErrNilPointer = errors.New("config: nil pointer destination")
)
