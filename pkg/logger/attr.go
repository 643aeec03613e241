package logger

import (
	"log/slog"
	"strconv"
	"time"
)

// Group nests attrs under name.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error records err under the "error" key. A nil err yields an empty Attr,
// which slog drops from the record.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Errors groups several errors under the "errors" key, indexed by position.
// Nil entries are skipped; when every entry is nil the Attr is empty.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// RequestID records the request identifier under the "request_id" key.
// An empty id yields an empty Attr.
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// Component records the originating component under the "component" key.
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Event records the event name under the "event" key.
func Event(name string) slog.Attr {
	return slog.String("event", name)
}

// Handler records the handler name under the "handler" key.
func Handler(name string) slog.Attr {
	return slog.String("handler", name)
}

// Duration records d under the "duration" key.
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}
