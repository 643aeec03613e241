package broadcast_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/viewkit/pkg/broadcast"
)

func TestBroadcaster(t *testing.T) {
	t.Parallel()

	t.Run("delivers to all subscribers", func(t *testing.T) {
		t.Parallel()

		b := broadcast.New[string](4)
		defer b.Close()

		first := b.Subscribe(context.Background())
		second := b.Subscribe(context.Background())

		require.NoError(t, b.Publish("daylight"))

		assert.Equal(t, "daylight", <-first.C())
		assert.Equal(t, "daylight", <-second.C())
	})

	t.Run("preserves publish order per subscriber", func(t *testing.T) {
		t.Parallel()

		b := broadcast.New[int](4)
		defer b.Close()

		sub := b.Subscribe(context.Background())
		for i := 1; i <= 3; i++ {
			require.NoError(t, b.Publish(i))
		}

		assert.Equal(t, 1, <-sub.C())
		assert.Equal(t, 2, <-sub.C())
		assert.Equal(t, 3, <-sub.C())
	})

	t.Run("drops values for a full subscriber without unsubscribing it", func(t *testing.T) {
		t.Parallel()

		b := broadcast.New[string](1)
		defer b.Close()

		sub := b.Subscribe(context.Background())

		require.NoError(t, b.Publish("kept"))
		require.NoError(t, b.Publish("dropped"))

		assert.Equal(t, "kept", <-sub.C())
		assert.Equal(t, 1, b.Subscribers())

		require.NoError(t, b.Publish("next"))
		assert.Equal(t, "next", <-sub.C())
	})

	t.Run("publish after close returns ErrClosed", func(t *testing.T) {
		t.Parallel()

		b := broadcast.New[string](1)
		require.NoError(t, b.Close())

		assert.ErrorIs(t, b.Publish("late"), broadcast.ErrClosed)
	})

	t.Run("close ends all subscriptions", func(t *testing.T) {
		t.Parallel()

		b := broadcast.New[string](1)
		sub := b.Subscribe(context.Background())

		require.NoError(t, b.Close())

		_, ok := <-sub.C()
		assert.False(t, ok)
		assert.Equal(t, 0, b.Subscribers())
	})

	t.Run("close keeps buffered values readable", func(t *testing.T) {
		t.Parallel()

		b := broadcast.New[string](2)
		sub := b.Subscribe(context.Background())

		require.NoError(t, b.Publish("daylight"))
		require.NoError(t, b.Close())

		v, ok := <-sub.C()
		require.True(t, ok)
		assert.Equal(t, "daylight", v)

		_, ok = <-sub.C()
		assert.False(t, ok)
	})

	t.Run("close is idempotent", func(t *testing.T) {
		t.Parallel()

		b := broadcast.New[string](1)
		require.NoError(t, b.Close())
		require.NoError(t, b.Close())
	})

	t.Run("subscribe after close returns closed subscription", func(t *testing.T) {
		t.Parallel()

		b := broadcast.New[string](1)
		require.NoError(t, b.Close())

		sub := b.Subscribe(context.Background())
		_, ok := <-sub.C()
		assert.False(t, ok)
	})

	t.Run("subscription close detaches only itself", func(t *testing.T) {
		t.Parallel()

		b := broadcast.New[string](1)
		defer b.Close()

		leaving := b.Subscribe(context.Background())
		staying := b.Subscribe(context.Background())

		leaving.Close()
		leaving.Close() // safe to repeat

		require.NoError(t, b.Publish("still here"))

		_, ok := <-leaving.C()
		assert.False(t, ok)
		assert.Equal(t, "still here", <-staying.C())
		assert.Equal(t, 1, b.Subscribers())
	})

	t.Run("context cancellation closes the subscription", func(t *testing.T) {
		t.Parallel()

		b := broadcast.New[string](1)
		defer b.Close()

		ctx, cancel := context.WithCancel(context.Background())
		sub := b.Subscribe(ctx)
		require.Equal(t, 1, b.Subscribers())

		cancel()

		require.Eventually(t, func() bool {
			return b.Subscribers() == 0
		}, time.Second, 10*time.Millisecond)

		_, ok := <-sub.C()
		assert.False(t, ok)
	})
}

func TestBroadcasterConcurrency(t *testing.T) {
	t.Parallel()

	const (
		publishers   = 10
		perPublisher = 10
		totalValues  = publishers * perPublisher
	)

	// Buffer covers every value so the drop policy never kicks in and the
	// received count is exact.
	b := broadcast.New[int](totalValues)
	sub := b.Subscribe(context.Background())

	var wg sync.WaitGroup
	for p := range publishers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range perPublisher {
				assert.NoError(t, b.Publish(p*perPublisher+i))
			}
		}()
	}
	wg.Wait()
	require.NoError(t, b.Close())

	received := 0
	for range sub.C() {
		received++
	}
	assert.Equal(t, totalValues, received)
}
