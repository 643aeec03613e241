package binder

import "errors"

// Common binding errors.
var (
	// ErrBinderNotApplicable signals that a binder does not handle this
	// request (e.g. Form on a bodyless GET). viewkit.Wrap skips the binder
	// and tries the next one.
	ErrBinderNotApplicable = errors.New("binder not applicable to this request")

	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrFailedToParseForm    = errors.New("failed to parse form data")
	ErrFailedToParseQuery   = errors.New("failed to parse query parameters")
	ErrMissingContentType   = errors.New("missing content type")
)

// IsBindError reports whether the error chain is a request binding failure.
// ErrBinderNotApplicable is not a failure and returns false.
func IsBindError(err error) bool {
	return errors.Is(err, ErrUnsupportedMediaType) ||
		errors.Is(err, ErrFailedToParseForm) ||
		errors.Is(err, ErrFailedToParseQuery) ||
		errors.Is(err, ErrMissingContentType)
}
