// Package commands provides CLI command handlers for xstruct.
package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/telzey/xstruct"
	"github.com/telzey/xstruct/grouper"
	"github.com/telzey/xstruct/internal/fileutil"
)

// Writef writes formatted output to the writer.
// If the write fails, it logs to stderr (useful for debugging).
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// setupLogger builds the run logger from the logging configuration.
// The returned closer is non-nil when logging goes to a file.
func setupLogger(cfg xstruct.LoggingConfig) (grouper.Logger, io.Closer, error) {
	var w io.Writer = os.Stderr
	var closer io.Closer
	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_WRONLY|os.O_CREATE|os.O_APPEND, fileutil.ReadableByAll)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file: %w", err)
		}
		w = f
		closer = f
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: parseLevel(cfg.Level)})
	return grouper.NewSlogAdapter(slog.New(handler)), closer, nil
}
