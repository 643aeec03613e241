package environment

import (
	"context"
	"log/slog"
)

// LoggerExtractor returns a context extractor for logger.New that records
// the current environment under the "env" key. No attribute is emitted when
// the context carries no environment.
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		if env := FromContext(ctx); env != "" {
			return slog.String("env", env.String()), true
		}
		return slog.Attr{}, false
	}
}
