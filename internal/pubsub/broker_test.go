package pubsub

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBrokerSubscribe(t *testing.T) {
	t.Parallel()

	t.Run("context cancel removes subscription", func(t *testing.T) {
		t.Parallel()
		broker := NewBroker[string]()
		ctx, cancel := context.WithCancel(context.Background())

		ch := broker.Subscribe(ctx)
		assert.NotNil(t, ch)
		assert.Equal(t, 1, broker.SubscriberCount())

		cancel()
		assert.Eventually(t, func() bool {
			return broker.SubscriberCount() == 0
		}, time.Second, 5*time.Millisecond)
	})

	t.Run("subscribe after shutdown yields closed channel", func(t *testing.T) {
		t.Parallel()
		broker := NewBroker[string]()
		broker.Shutdown()

		ch := broker.Subscribe(context.Background())
		_, ok := <-ch
		assert.False(t, ok)
	})
}

func TestBrokerPublish(t *testing.T) {
	t.Parallel()

	broker := NewBroker[string]()
	ch := broker.Subscribe(t.Context())

	broker.Publish("created", "hello")

	select {
	case event := <-ch:
		assert.Equal(t, EventType("created"), event.Type)
		assert.Equal(t, "hello", event.Payload)
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for event")
	}
}

func TestBrokerShutdown(t *testing.T) {
	t.Parallel()

	broker := NewBroker[int]()
	ch1 := broker.Subscribe(context.Background())
	ch2 := broker.Subscribe(context.Background())
	assert.Equal(t, 2, broker.SubscriberCount())

	broker.Shutdown()

	_, ok1 := <-ch1
	_, ok2 := <-ch2
	assert.False(t, ok1)
	assert.False(t, ok2)
	assert.Equal(t, 0, broker.SubscriberCount())

	// Publishing after shutdown is a no-op.
	broker.Publish("created", 1)
}
