package theme

import "errors"

var (
	ErrInvalidTheme  = errors.New("invalid theme file")
	ErrMissingTokens = errors.New("theme is missing required tokens")
)
