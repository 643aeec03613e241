package broadcast

import (
	"context"
	"sync"
)

// Broadcaster fans published values out to all active subscriptions.
// The zero value is not usable; construct with New.
type Broadcaster[T any] struct {
	mu     sync.Mutex
	subs   map[*Subscription[T]]struct{}
	buffer int
	closed bool
	wg     sync.WaitGroup
}

// New creates a broadcaster whose subscriptions buffer up to the given
// number of undelivered values. Buffer sizes below one are raised to one.
func New[T any](buffer int) *Broadcaster[T] {
	if buffer < 1 {
		buffer = 1
	}
	return &Broadcaster[T]{
		subs:   make(map[*Subscription[T]]struct{}),
		buffer: buffer,
	}
}

// Subscribe registers a new subscription. When ctx is cancelable the
// subscription closes itself on cancellation. Subscribing to a closed
// broadcaster returns an already-closed subscription, so consumers that
// range over C exit immediately.
func (b *Broadcaster[T]) Subscribe(ctx context.Context) *Subscription[T] {
	s := &Subscription[T]{
		owner: b,
		ch:    make(chan T, b.buffer),
		stop:  make(chan struct{}),
	}

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		s.finalize()
		return s
	}
	b.subs[s] = struct{}{}
	done := ctx.Done()
	if done != nil {
		b.wg.Add(1)
	}
	b.mu.Unlock()

	if done != nil {
		go func() {
			defer b.wg.Done()
			select {
			case <-done:
				s.Close()
			case <-s.stop:
			}
		}()
	}
	return s
}

// Publish delivers v to every active subscription. A subscription whose
// buffer is full is skipped; it stays subscribed and receives later values.
// Publish returns ErrClosed after Close.
func (b *Broadcaster[T]) Publish(v T) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return ErrClosed
	}
	for s := range b.subs {
		select {
		case s.ch <- v:
		default:
			// Full buffer means the consumer is not draining. The value
			// is dropped for this subscription only.
		}
	}
	return nil
}

// Subscribers reports the number of active subscriptions.
func (b *Broadcaster[T]) Subscribers() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}

// Close terminates every subscription and rejects further publishes.
// Buffered values remain readable on closed subscription channels.
// Close is idempotent and waits for context watchers to finish.
func (b *Broadcaster[T]) Close() error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil
	}
	b.closed = true
	for s := range b.subs {
		s.finalize()
	}
	clear(b.subs)
	b.mu.Unlock()

	b.wg.Wait()
	return nil
}

// remove detaches the subscription and closes its channel exactly once.
func (b *Broadcaster[T]) remove(s *Subscription[T]) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.subs, s)
	s.finalize()
}
