package pubsub

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

const subscriberBufferSize = 64

// Broker delivers events to any number of subscribers. Subscriptions are
// removed when their context is cancelled or when the broker shuts down.
type Broker[T any] struct {
	mu     sync.RWMutex
	subs   map[chan Event[T]]context.CancelFunc
	closed bool
}

func NewBroker[T any]() *Broker[T] {
	return &Broker[T]{
		subs: make(map[chan Event[T]]context.CancelFunc),
	}
}

// Subscribe returns a channel that receives every event published after the
// call. The channel is closed when ctx is cancelled or the broker shuts
// down.
func (b *Broker[T]) Subscribe(ctx context.Context) <-chan Event[T] {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		ch := make(chan Event[T])
		close(ch)
		return ch
	}

	subCtx, cancel := context.WithCancel(ctx)
	ch := make(chan Event[T], subscriberBufferSize)
	b.subs[ch] = cancel

	go func() {
		<-subCtx.Done()
		b.mu.Lock()
		defer b.mu.Unlock()
		if _, ok := b.subs[ch]; ok {
			close(ch)
			delete(b.subs, ch)
		}
	}()

	return ch
}

// Publish sends the event to every subscriber. A subscriber whose buffer is
// full gets the event from a helper goroutine so it cannot block the
// publisher; after a timeout the event is dropped for that subscriber.
func (b *Broker[T]) Publish(eventType EventType, payload T) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return
	}

	event := Event[T]{Type: eventType, Payload: payload}
	for ch := range b.subs {
		select {
		case ch <- event:
		default:
			go func(ch chan Event[T]) {
				b.mu.RLock()
				closed := b.closed
				b.mu.RUnlock()
				if closed {
					return
				}
				select {
				case ch <- event:
				case <-time.After(2 * time.Second):
					slog.Warn("pubsub: dropped event for slow subscriber", "type", event.Type)
				}
			}(ch)
		}
	}
}

// Shutdown closes every subscriber channel and marks the broker closed.
func (b *Broker[T]) Shutdown() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true
	for ch, cancel := range b.subs {
		cancel()
		close(ch)
		delete(b.subs, ch)
	}
}

func (b *Broker[T]) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}
