package main

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	slogmulti "github.com/samber/slog-multi"
)

// colorHandler renders each record as a single colorized line on w, the way
// an interactive terminal session wants its diagnostics.
type colorHandler struct {
	w     io.Writer
	level slog.Level
}

func (h *colorHandler) Enabled(_ context.Context, level slog.Level) bool { return level >= h.level }

func (h *colorHandler) Handle(_ context.Context, r slog.Record) error {
	var c *color.Color
	switch {
	case r.Level >= slog.LevelError:
		c = color.New(color.FgRed, color.Bold)
	case r.Level >= slog.LevelWarn:
		c = color.New(color.FgYellow)
	default:
		c = color.New(color.FgCyan)
	}
	prefix := "IRA_INFO:"
	switch {
	case r.Level >= slog.LevelError:
		prefix = "IRA_ERROR:"
	case r.Level >= slog.LevelWarn:
		prefix = "IRA_WARN:"
	}
	_, err := c.Fprintf(h.w, "%s %s\n", prefix, r.Message)
	return err
}

func (h *colorHandler) WithAttrs(attrs []slog.Attr) slog.Handler { return h }
func (h *colorHandler) WithGroup(name string) slog.Handler       { return h }

// setupLogger builds the structured logger spec.md §6 names: a colorized
// stderr stream for a human watching the run, fanned out via slog-multi to a
// JSON file handler when logPath is non-empty for an automated harness to
// read afterward.
func setupLogger(logPath string) (*slog.Logger, func() error, error) {
	handlers := []slog.Handler{&colorHandler{w: os.Stderr, level: slog.LevelInfo}}
	closer := func() error { return nil }

	if logPath != "" {
		f, err := os.Create(logPath)
		if err != nil {
			return nil, nil, err
		}
		handlers = append(handlers, slog.NewJSONHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
		closer = f.Close
	}

	return slog.New(slogmulti.Fanout(handlers...)), closer, nil
}
