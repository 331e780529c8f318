package logging

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime/debug"
	"strings"
	"time"

	"github.com/go-logfmt/logfmt"
)

// slogWriter parses slog's logfmt text output and feeds each record to the
// logging service. Installed as the destination of the default slog handler
// so every slog call lands in the TUI's log buffer.
type slogWriter struct{}

func NewSlogWriter() io.Writer {
	return &slogWriter{}
}

func (sw *slogWriter) Write(p []byte) (n int, err error) {
	// Example: time=2024-05-09T12:34:56.789-05:00 level=INFO msg="Added value" value=tent
	d := logfmt.NewDecoder(bytes.NewReader(p))
	for d.ScanRecord() {
		var (
			timestamp  time.Time
			level      string
			message    string
			attributes = make(map[string]string)
		)

		for d.ScanKeyval() {
			key := string(d.Key())
			value := string(d.Value())

			switch key {
			case "time":
				parsed, timeErr := time.Parse(time.RFC3339Nano, value)
				if timeErr != nil {
					parsed, timeErr = time.Parse(time.RFC3339, value)
				}
				if timeErr == nil {
					timestamp = parsed
				}
			case "level":
				level = strings.ToLower(value)
			case "msg", "message":
				message = value
			default:
				attributes[key] = value
			}
		}
		if d.Err() != nil {
			return len(p), fmt.Errorf("logfmt.ScanRecord: %w", d.Err())
		}

		if timestamp.IsZero() {
			timestamp = time.Now()
		}

		// Run in a goroutine to avoid blocking slog.
		go func(timestamp time.Time, level, message string, attributes map[string]string) {
			if globalLoggingService == nil {
				return
			}
			if err := globalLoggingService.Create(context.Background(), timestamp, level, message, attributes); err != nil {
				fmt.Fprintf(os.Stderr, "ERROR [logging.slogWriter]: failed to buffer log: %v\n", err)
			}
		}(timestamp, level, message, attributes)
	}
	if d.Err() != nil {
		return len(p), fmt.Errorf("logfmt.ScanRecord final: %w", d.Err())
	}
	return len(p), nil
}

// RecoverPanic logs a panic, writes a panic file with the stack trace, and
// runs an optional cleanup function.
func RecoverPanic(name string, cleanup func()) {
	if r := recover(); r != nil {
		slog.Error(fmt.Sprintf("Panic in %s: %v", name, r))

		timestamp := time.Now().Format("20060102-150405")
		filename := fmt.Sprintf("setforge-panic-%s-%s.log", name, timestamp)

		file, err := os.Create(filename)
		if err != nil {
			slog.Error(fmt.Sprintf("Failed to create panic log file %q: %v", filename, err))
		} else {
			defer file.Close()
			fmt.Fprintf(file, "Panic in %s: %v\n\n", name, r)
			fmt.Fprintf(file, "Time: %s\n\n", time.Now().Format(time.RFC3339))
			fmt.Fprintf(file, "Stack Trace:\n%s\n", string(debug.Stack()))
			slog.Info(fmt.Sprintf("Panic details written to %s", filename))
		}

		if cleanup != nil {
			cleanup()
		}
	}
}
