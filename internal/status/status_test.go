package status

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestServicePublishesLevels(t *testing.T) {
	t.Parallel()

	svc := NewService()
	ch := svc.Subscribe(t.Context())

	svc.Info("added")
	svc.Warn("duplicate")
	svc.Error("backend down")

	want := []struct {
		level   Level
		message string
	}{
		{LevelInfo, "added"},
		{LevelWarn, "duplicate"},
		{LevelError, "backend down"},
	}

	for _, w := range want {
		select {
		case event := <-ch:
			assert.Equal(t, EventStatusPublished, event.Type)
			assert.Equal(t, w.level, event.Payload.Level)
			assert.Equal(t, w.message, event.Payload.Message)
			assert.WithinDuration(t, time.Now(), event.Payload.Timestamp, time.Second)
		case <-time.After(time.Second):
			t.Fatalf("timeout waiting for %q", w.message)
		}
	}
}
