package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"log/slog"

	charmlog "github.com/charmbracelet/log"

	"github.com/setforge/setforge/internal/config"
	"github.com/setforge/setforge/internal/format"
	"github.com/setforge/setforge/internal/provider"
	"github.com/setforge/setforge/internal/set"
	"github.com/setforge/setforge/internal/tui/components/spinner"
)

// syncWriter is a thread-safe writer that prevents interleaved output
type syncWriter struct {
	w  io.Writer
	mu sync.Mutex
}

func (sw *syncWriter) Write(p []byte) (n int, err error) {
	sw.mu.Lock()
	defer sw.mu.Unlock()
	return sw.w.Write(p)
}

func newSyncWriter(w io.Writer) io.Writer {
	return &syncWriter{w: w}
}

// handleNonInteractiveMode expands a single prompt through the provider
// source and prints the resulting set literal.
func handleNonInteractiveMode(ctx context.Context, cfg *config.Config, prompt string, outputFormat format.OutputFormat, quiet bool, verbose bool) error {
	slog.Info("Running in non-interactive mode", "prompt", prompt, "format", outputFormat, "quiet", quiet, "verbose", verbose)

	if quiet && verbose {
		return fmt.Errorf("--quiet and --verbose flags cannot be used together")
	}

	if verbose {
		charmLogger := charmlog.NewWithOptions(newSyncWriter(os.Stderr), charmlog.Options{
			Level:           charmlog.DebugLevel,
			ReportCaller:    true,
			ReportTimestamp: true,
			TimeFormat:      time.RFC3339,
			Prefix:          "setforge",
		})
		charmlog.SetDefault(charmLogger)
		slog.SetDefault(slog.New(charmLogger))
		charmLogger.Info("Verbose logging enabled")
	}

	prompt = set.Normalize(prompt)
	if prompt == "" {
		return fmt.Errorf("a prompt describing the set is required")
	}

	var s *spinner.Spinner
	if !quiet {
		s = spinner.NewSpinner("Building set...")
		s.Start()
		defer s.Stop()
	}

	ctx, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	source := provider.NewSource(cfg)
	items, err := source.Items(ctx, prompt)
	if err != nil {
		return fmt.Errorf("failed to build set: %w", err)
	}

	// Items arrive normalized and deduplicated; feed them through the store
	// anyway so the output path is the same one the TUI uses.
	store := set.NewStore()
	for _, item := range items {
		store.Add(item)
	}

	formattedOutput, err := format.Render(store.Values(), outputFormat)
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}

	if !quiet && s != nil {
		s.Stop()
	}

	fmt.Println(formattedOutput)
	return nil
}
