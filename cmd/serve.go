package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"log/slog"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/setforge/setforge/internal/config"
	"github.com/setforge/setforge/internal/provider"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the suggestion provider backend",
	Long: `Serve exposes the suggestion provider over HTTP: POST /api/build-set with
{"prompt": "..."} returns {"items": [...]}. With an OpenAI API key configured
the items come from the language model; otherwise a deterministic local
fallback answers.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := charmlog.NewWithOptions(os.Stderr, charmlog.Options{
			ReportTimestamp: true,
			TimeFormat:      time.RFC3339,
			Prefix:          "setforge",
		})
		charmlog.SetDefault(logger)
		slog.SetDefault(slog.New(logger))

		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get current working directory: %v", err)
		}
		debug, _ := cmd.Flags().GetBool("debug")
		if debug {
			logger.SetLevel(charmlog.DebugLevel)
		}
		cfg, err := config.Load(cwd, debug)
		if err != nil {
			return err
		}

		port, _ := cmd.Flags().GetInt("port")
		if port == 0 {
			port = cfg.Server.Port
		}

		source := provider.NewSource(cfg)
		if cfg.OpenAI.APIKey == "" {
			logger.Warn("No OpenAI API key configured, answering with the local fallback")
		}

		server := provider.NewServer(source, logger)

		errCh := make(chan error, 1)
		go func() {
			logger.Info("Suggestion backend listening", "port", port)
			if err := server.Start(port); err != nil && err != http.ErrServerClosed {
				errCh <- err
			}
		}()

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-errCh:
			return err
		case sig := <-sigCh:
			logger.Info("Shutting down", "signal", sig)
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	},
}

func init() {
	serveCmd.Flags().IntP("port", "P", 0, "Port to listen on (defaults to the configured server port)")
	serveCmd.Flags().BoolP("debug", "d", false, "Debug")
}
