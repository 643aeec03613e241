package datefmt

import "errors"

var (
	ErrEmptyPattern = errors.New("empty date pattern")
	ErrEmptyValue   = errors.New("empty date value")
)
