// Package logging captures slog output into an in-memory log service that
// the TUI's logs page subscribes to. Nothing is persisted; the log buffer
// lives and dies with the process.
package logging

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/setforge/setforge/internal/pubsub"
)

// Log is a single captured log record.
type Log struct {
	ID         string
	Timestamp  time.Time
	Level      string
	Message    string
	Attributes map[string]string
}

const EventLogCreated pubsub.EventType = "log_created"

// maxBufferedLogs bounds the in-memory log history.
const maxBufferedLogs = 500

type Service interface {
	pubsub.Subscriber[Log]

	Create(ctx context.Context, timestamp time.Time, level, message string, attributes map[string]string) error
	List(limit int) []Log
}

type service struct {
	mu     sync.Mutex
	logs   []Log
	broker *pubsub.Broker[Log]
}

var globalLoggingService *service

func InitService() error {
	if globalLoggingService != nil {
		return fmt.Errorf("logging service already initialized")
	}
	globalLoggingService = &service{
		broker: pubsub.NewBroker[Log](),
	}
	return nil
}

func GetService() Service {
	if globalLoggingService == nil {
		panic("logging service not initialized. Call logging.InitService() first.")
	}
	return globalLoggingService
}

func (s *service) Create(ctx context.Context, timestamp time.Time, level, message string, attributes map[string]string) error {
	if level == "" {
		level = "info"
	}

	log := Log{
		ID:         uuid.New().String(),
		Timestamp:  timestamp,
		Level:      level,
		Message:    message,
		Attributes: attributes,
	}

	s.mu.Lock()
	s.logs = append(s.logs, log)
	if len(s.logs) > maxBufferedLogs {
		s.logs = s.logs[len(s.logs)-maxBufferedLogs:]
	}
	s.mu.Unlock()

	s.broker.Publish(EventLogCreated, log)
	return nil
}

// List returns the most recent records, newest first.
func (s *service) List(limit int) []Log {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.logs)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]Log, 0, n)
	for i := len(s.logs) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, s.logs[i])
	}
	return out
}

func (s *service) Subscribe(ctx context.Context) <-chan pubsub.Event[Log] {
	return s.broker.Subscribe(ctx)
}

func Subscribe(ctx context.Context) <-chan pubsub.Event[Log] {
	return GetService().Subscribe(ctx)
}
