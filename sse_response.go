package viewkit

import (
	"net/http"
)

// SSEHandler handles a Server-Sent Events stream. It runs for the lifetime
// of the connection; returning closes the stream.
//
// Example:
//
//	viewkit.SSE(func(stream viewkit.StreamContext) error {
//		sub := reloads.Subscribe(stream)
//		defer sub.Close()
//		for {
//			select {
//			case <-stream.Done():
//				return nil
//			case theme := <-sub.C():
//				if err := stream.SendComponent(pages.ThemeStyle(theme),
//					viewkit.WithTarget("#theme-style"),
//				); err != nil {
//					return err
//				}
//			}
//		}
//	})
type SSEHandler func(ctx StreamContext) error

// sseResponse implements Response for Server-Sent Events.
type sseResponse struct {
	handler SSEHandler
}

// Render validates the Datastar connection and runs the SSE handler.
func (s sseResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if !IsDataStar(r) {
		return NewHTTPError(http.StatusBadRequest, "sse_requires_datastar")
	}

	base := NewContext(w, r)
	if base.SSE() == nil {
		return ErrSSENotInitialized
	}

	ctx := &streamContext{
		Context: base,
		sse:     base.SSE(),
	}

	return s.handler(ctx)
}

// SSE creates a streaming response that runs the given handler over an
// established Datastar connection, pushing component patches and signal
// updates until the handler returns or the client disconnects.
func SSE(handler SSEHandler) Response {
	return sseResponse{
		handler: handler,
	}
}
