package requestid

import (
	"context"
	"log/slog"
)

// LoggerExtractor returns a context extractor for logger.New that records
// the request identifier under the "request_id" key. No attribute is
// emitted when the context carries no identifier.
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		if id := FromContext(ctx); id != "" {
			return slog.String("request_id", id), true
		}
		return slog.Attr{}, false
	}
}
