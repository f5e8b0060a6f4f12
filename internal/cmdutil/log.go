// internal/cmdutil/log.go
package cmdutil

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Warnf prints a plain WARN line; used before a logger exists.
func Warnf(dst io.Writer, quiet bool, format string, a ...any) {
	if quiet {
		return
	}
	_, _ = fmt.Fprintf(dst, "WARN: "+format+"\n", a...)
}

// LogOptions selects the handler and threshold for NewLogger.
type LogOptions struct {
	Level  string // debug | info | warn | error
	Format string // text | json
	Quiet  bool   // only errors
}

// ParseLevel maps a level name to slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "", "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("invalid log level %q (want debug, info, warn or error)", s)
}

// NewLogger builds a structured logger writing to dst.
func NewLogger(dst io.Writer, o LogOptions) (*slog.Logger, error) {
	lvl, err := ParseLevel(o.Level)
	if err != nil {
		return nil, err
	}
	if o.Quiet {
		lvl = slog.LevelError
	}
	opts := &slog.HandlerOptions{Level: lvl}
	switch strings.ToLower(o.Format) {
	case "", "text":
		return slog.New(slog.NewTextHandler(dst, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(dst, opts)), nil
	}
	return nil, fmt.Errorf("invalid log format %q (want text or json)", o.Format)
}
