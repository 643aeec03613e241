// Package broadcast provides an in-memory fan-out of values to any number
// of subscribers. It is the delivery layer behind live-update features such
// as pushing theme reloads to connected pages.
//
// Delivery is non-blocking: every subscription owns a buffered channel, and
// a value that does not fit into a subscriber's buffer is dropped for that
// subscriber only. Publishers never wait on slow consumers.
//
// Usage:
//
//	events := broadcast.New[string](8)
//	defer events.Close()
//
//	sub := events.Subscribe(r.Context())
//	defer sub.Close()
//
//	for v := range sub.C() {
//		// push v to the client
//	}
//
// Subscriptions bound to a context close themselves when the context is
// canceled, so request-scoped consumers need no extra teardown.
package broadcast
