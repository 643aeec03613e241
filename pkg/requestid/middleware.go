package requestid

import (
	"net/http"
	"regexp"

	"github.com/google/uuid"
)

// Header is the canonical request-ID header name.
const Header = "X-Request-ID"

// Client-supplied IDs are only trusted when short and free of characters
// that could break log lines or response headers.
const maxIDLength = 128

var validID = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// Middleware assigns every request an identifier. A valid client-supplied
// header value is reused; anything else is replaced with a fresh UUID. The
// identifier is stored in the request context and echoed in the response
// header.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(Header)
		if !isValidID(id) {
			id = uuid.New().String()
		}
		w.Header().Set(Header, id)
		next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), id)))
	})
}

func isValidID(id string) bool {
	return len(id) > 0 && len(id) <= maxIDLength && validID.MatchString(id)
}
