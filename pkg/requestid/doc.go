// Package requestid correlates HTTP requests across logs and responses.
//
// Middleware gives every request an identifier: a client-supplied
// "X-Request-ID" header is reused when it passes validation, otherwise a
// fresh UUID is generated. The identifier travels in the request context,
// is echoed in the response header, and reaches structured logs through
// LoggerExtractor.
//
// # Usage
//
//	import "github.com/dmitrymomot/viewkit/pkg/requestid"
//
//	mux := http.NewServeMux()
//	mux.Handle("/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
//		id := requestid.FromContext(r.Context())
//		// id also appears in the X-Request-ID response header
//	}))
//	http.ListenAndServe(":8080", requestid.Middleware(mux))
//
// Wire the extractor into logger.New so error reports carry the ID:
//
//	log := logger.New(
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//
// Invalid or empty client IDs are silently replaced; the package never
// returns errors.
package requestid
