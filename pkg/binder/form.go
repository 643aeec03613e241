package binder

import (
	"fmt"
	"net/http"
	"strings"
)

// DefaultMaxMemory caps the memory used for parsing multipart forms (10MB).
const DefaultMaxMemory = 10 << 20

// Form creates a binder for form bodies driven by `form:` tags. It handles
// application/x-www-form-urlencoded and the value fields of
// multipart/form-data.
//
// Bodyless methods (GET, HEAD, OPTIONS) report ErrBinderNotApplicable so the
// binder can sit in front of Query in a WithBinders chain.
//
// Example:
//
//	type PickDateRequest struct {
//		Day     time.Time `form:"day"`              // pattern defaults to YYYY-MM-DD
//		Display string    `form:"display"`
//		Notify  bool      `form:"notify"`           // accepts on/off, yes/no, 1/0
//		Skip    string    `form:"-"`                // never bound
//	}
func Form() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		switch r.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			return ErrBinderNotApplicable
		}

		contentType := r.Header.Get("Content-Type")
		if contentType == "" {
			return fmt.Errorf("%w: expected application/x-www-form-urlencoded or multipart/form-data", ErrMissingContentType)
		}

		mediaType := contentType
		if idx := strings.Index(contentType, ";"); idx != -1 {
			mediaType = strings.TrimSpace(contentType[:idx])
		}

		var values map[string][]string

		switch mediaType {
		case "application/x-www-form-urlencoded":
			if err := r.ParseForm(); err != nil {
				return fmt.Errorf("%w: %v", ErrFailedToParseForm, err)
			}
			values = r.PostForm

		case "multipart/form-data":
			if err := r.ParseMultipartForm(DefaultMaxMemory); err != nil {
				return fmt.Errorf("%w: %v", ErrFailedToParseForm, err)
			}
			values = r.MultipartForm.Value

		default:
			return fmt.Errorf("%w: %s", ErrUnsupportedMediaType, mediaType)
		}

		return bindToStruct(v, "form", values, ErrFailedToParseForm)
	}
}
