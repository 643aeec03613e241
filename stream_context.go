package viewkit

import (
	"encoding/json"

	"github.com/starfederation/datastar-go/datastar"
)

// StreamContext extends Context with SSE streaming capabilities for pushing
// updates through an established connection.
type StreamContext interface {
	Context

	// SendComponent sends a templ component with rendering options.
	//
	// Example:
	//
	//	err := stream.SendComponent(
	//		pages.ThemeStyle(theme),
	//		viewkit.WithTarget("#theme-style"),
	//	)
	SendComponent(component TemplComponent, opts ...TemplOption) error

	// SendMultiple sends several components in one batch.
	SendMultiple(patches ...TemplPatch) error

	// SendSignal updates a single frontend signal value.
	SendSignal(name string, value any) error

	// SendSignals updates multiple frontend signals at once.
	SendSignals(signals map[string]any) error
}

// streamContext wraps a base Context with SSE streaming.
type streamContext struct {
	Context
	sse *datastar.ServerSentEventGenerator
}

func (c *streamContext) SendComponent(component TemplComponent, opts ...TemplOption) error {
	if c.sse == nil {
		return ErrSSENotInitialized
	}
	return c.sse.PatchElementTempl(component, opts...)
}

func (c *streamContext) SendMultiple(patches ...TemplPatch) error {
	if c.sse == nil {
		return ErrSSENotInitialized
	}
	for _, patch := range patches {
		if err := c.sse.PatchElementTempl(patch.Component, patch.Options...); err != nil {
			return err
		}
	}
	return nil
}

func (c *streamContext) SendSignal(name string, value any) error {
	if c.sse == nil {
		return ErrSSENotInitialized
	}
	data, err := json.Marshal(map[string]any{name: value})
	if err != nil {
		return err
	}
	return c.sse.PatchSignals(data)
}

func (c *streamContext) SendSignals(signals map[string]any) error {
	if c.sse == nil {
		return ErrSSENotInitialized
	}
	data, err := json.Marshal(signals)
	if err != nil {
		return err
	}
	return c.sse.PatchSignals(data)
}
