package status

import (
	"log/slog"
	"sync"
)

// Manager holds the process-wide status service.
type Manager struct {
	service Service
	mu      sync.RWMutex
}

var globalManager *Manager

// InitManager installs the global status manager.
func InitManager(service Service) {
	globalManager = &Manager{service: service}
	slog.Debug("Status manager initialized")
}

// GetService returns the status service, initializing a default one if
// nothing was installed yet.
func GetService() Service {
	if globalManager == nil {
		slog.Warn("Status manager not initialized, initializing with default service")
		InitManager(NewService())
	}

	globalManager.mu.RLock()
	defer globalManager.mu.RUnlock()
	return globalManager.service
}

func Info(message string)  { GetService().Info(message) }
func Warn(message string)  { GetService().Warn(message) }
func Error(message string) { GetService().Error(message) }
func Debug(message string) { GetService().Debug(message) }
