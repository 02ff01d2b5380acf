// SPDX-License-Identifier: MIT

// Package logging provides the slog handler used by the irt command line.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

const (
	colorGreen = "\033[32m"
	colorRed   = "\033[31m"
	colorReset = "\033[0m"
)

// CLIHandler is a slog.Handler that writes one short line per record:
// "[group] message: key=value ...", red at error level, green otherwise.
type CLIHandler struct {
	mu     *sync.Mutex
	writer io.Writer
	level  slog.Level
	color  bool
	prefix string
	attrs  []slog.Attr
}

// NewCLIHandler returns a handler writing records at or above level to w.
func NewCLIHandler(w io.Writer, level slog.Level, color bool) *CLIHandler {
	return &CLIHandler{mu: &sync.Mutex{}, writer: w, level: level, color: color}
}

func (h *CLIHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *CLIHandler) Handle(_ context.Context, r slog.Record) error {
	msg := r.Message
	if h.prefix != "" {
		msg = "[" + h.prefix + "] " + msg
	}

	attrs := make([]string, 0, len(h.attrs)+r.NumAttrs())
	for _, a := range h.attrs {
		attrs = append(attrs, fmt.Sprintf("%s=%v", a.Key, a.Value))
	}
	r.Attrs(func(a slog.Attr) bool {
		attrs = append(attrs, fmt.Sprintf("%s=%v", a.Key, a.Value))
		return true
	})
	if len(attrs) > 0 {
		msg = msg + ": " + strings.Join(attrs, " ")
	}

	if h.color {
		if r.Level >= slog.LevelError {
			msg = colorRed + msg + colorReset
		} else {
			msg = colorGreen + msg + colorReset
		}
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := fmt.Fprintln(h.writer, msg)
	return err
}

func (h *CLIHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	c := *h
	c.attrs = append(append([]slog.Attr(nil), h.attrs...), attrs...)
	return &c
}

func (h *CLIHandler) WithGroup(name string) slog.Handler {
	c := *h
	c.prefix = name
	return &c
}

// NewCLILogger returns a logger writing to stderr at the named level.
func NewCLILogger(level string, color bool) *slog.Logger {
	return slog.New(NewCLIHandler(os.Stderr, ParseLogLevel(level), color))
}

// SetDefaultCLILogger installs NewCLILogger as the slog default.
func SetDefaultCLILogger(level string, color bool) {
	slog.SetDefault(NewCLILogger(level, color))
}

// ParseLogLevel converts a string log level to slog.Level.
// Defaults to slog.LevelInfo for unrecognized strings.
func ParseLogLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
