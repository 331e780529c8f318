// Package pubsub provides a small generic broker used to fan service events
// (status messages, log entries) out to the TUI.
package pubsub

import "context"

type EventType string

// Event pairs a payload with the kind of change that produced it. Services
// declare their own EventType constants.
type Event[T any] struct {
	Type    EventType
	Payload T
}

type Subscriber[T any] interface {
	Subscribe(ctx context.Context) <-chan Event[T]
}

type Publisher[T any] interface {
	Publish(eventType EventType, payload T)
}
