// Package app wires the long-lived services together and hands them to the
// TUI as a single value.
package app

import (
	"context"
	"log/slog"

	"github.com/setforge/setforge/internal/config"
	"github.com/setforge/setforge/internal/logging"
	"github.com/setforge/setforge/internal/set"
	"github.com/setforge/setforge/internal/status"
	"github.com/setforge/setforge/internal/suggest"
)

type App struct {
	Logs   logging.Service
	Status status.Service

	Set     *set.Store
	Suggest *suggest.Client
	Flight  *suggest.Flight
}

func New(ctx context.Context, cfg *config.Config) (*App, error) {
	if err := logging.InitService(); err != nil {
		slog.Error("Failed to initialize logging service", "error", err)
		return nil, err
	}
	status.InitManager(status.NewService())

	app := &App{
		Logs:    logging.GetService(),
		Status:  status.GetService(),
		Set:     set.NewStore(),
		Suggest: suggest.NewClient(cfg.Backend.URL),
		Flight:  &suggest.Flight{},
	}
	return app, nil
}
