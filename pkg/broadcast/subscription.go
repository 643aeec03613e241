package broadcast

import "sync"

// Subscription is one receiver attached to a Broadcaster. Values arrive on
// the channel returned by C until the subscription or the broadcaster is
// closed.
type Subscription[T any] struct {
	owner *Broadcaster[T]
	ch    chan T
	stop  chan struct{}
	once  sync.Once
}

// C returns the receive channel. It is closed when the subscription ends;
// values buffered before that remain readable.
func (s *Subscription[T]) C() <-chan T {
	return s.ch
}

// Close detaches the subscription from its broadcaster and closes the
// receive channel. Close is idempotent and safe to call concurrently with
// Publish.
func (s *Subscription[T]) Close() {
	s.owner.remove(s)
}

// finalize closes the channels exactly once. Callers must guarantee no
// concurrent sends, which remove and Broadcaster.Close do by holding the
// broadcaster lock.
func (s *Subscription[T]) finalize() {
	s.once.Do(func() {
		close(s.stop)
		close(s.ch)
	})
}
