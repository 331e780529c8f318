package logging

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/setforge/setforge/internal/pubsub"
)

func newTestService() *service {
	return &service{broker: pubsub.NewBroker[Log]()}
}

func TestServiceCreateAndList(t *testing.T) {
	svc := newTestService()

	require.NoError(t, svc.Create(context.Background(), time.Now(), "info", "first", nil))
	require.NoError(t, svc.Create(context.Background(), time.Now(), "", "second", map[string]string{"value": "tent"}))

	logs := svc.List(0)
	require.Len(t, logs, 2)

	// Newest first.
	assert.Equal(t, "second", logs[0].Message)
	assert.Equal(t, "info", logs[0].Level) // empty level defaults to info
	assert.Equal(t, "tent", logs[0].Attributes["value"])
	assert.Equal(t, "first", logs[1].Message)
	assert.NotEmpty(t, logs[0].ID)
}

func TestServiceListLimit(t *testing.T) {
	svc := newTestService()
	for i := 0; i < 5; i++ {
		require.NoError(t, svc.Create(context.Background(), time.Now(), "debug", "entry", nil))
	}

	assert.Len(t, svc.List(3), 3)
	assert.Len(t, svc.List(0), 5)
}

func TestServiceBufferBounded(t *testing.T) {
	svc := newTestService()
	for i := 0; i < maxBufferedLogs+25; i++ {
		require.NoError(t, svc.Create(context.Background(), time.Now(), "debug", "entry", nil))
	}

	assert.Len(t, svc.List(0), maxBufferedLogs)
}

func TestServicePublishesCreatedEvents(t *testing.T) {
	svc := newTestService()
	ch := svc.Subscribe(t.Context())

	require.NoError(t, svc.Create(context.Background(), time.Now(), "warn", "hello", nil))

	select {
	case event := <-ch:
		assert.Equal(t, EventLogCreated, event.Type)
		assert.Equal(t, "hello", event.Payload.Message)
		assert.Equal(t, "warn", event.Payload.Level)
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for log event")
	}
}
