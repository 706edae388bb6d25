package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

func newLogger(cfg config, w io.Writer) (*slog.Logger, error) {
	level, err := slogLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	handler, err := slogHandler(cfg.LogFormat, w, level)
	if err != nil {
		return nil, err
	}
	return slog.New(handler), nil
}

// slogLevel maps the log-level setting to a slog.Level.
func slogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid log-level %q: expected debug, info, warn, or error", level)
	}
}

// slogHandler returns a [slog.Handler] writing to w in the given format.
func slogHandler(format string, w io.Writer, level slog.Level) (slog.Handler, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "text":
		return tint.NewHandler(w, &tint.Options{
			Level:      level,
			TimeFormat: time.TimeOnly,
			NoColor:    !isTerminal(w),
		}), nil
	case "json":
		return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}), nil
	case "logfmt":
		return slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}), nil
	default:
		return nil, fmt.Errorf("invalid log-format %q: expected text, json, or logfmt", format)
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
