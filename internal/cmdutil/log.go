// internal/cmdutil/log.go
package cmdutil

import (
	"fmt"
	"io"
	"log/slog"
)

// Warnf prints a WARN line unless quiet is set.
func Warnf(dst io.Writer, quiet bool, format string, a ...any) {
	if quiet {
		return
	}
	_, _ = fmt.Fprintf(dst, "WARN: "+format+"\n", a...)
}

// Level maps --verbosity to a slog level: 0=warn, 1=info, 2+=debug.
// quiet raises the floor to error.
func Level(verbosity int, quiet bool) slog.Level {
	switch {
	case quiet:
		return slog.LevelError
	case verbosity <= 0:
		return slog.LevelWarn
	case verbosity == 1:
		return slog.LevelInfo
	}
	return slog.LevelDebug
}

// NewLogger returns a text logger on dst at the level chosen by Level.
func NewLogger(dst io.Writer, verbosity int, quiet bool) *slog.Logger {
	return slog.New(slog.NewTextHandler(dst, &slog.HandlerOptions{
		Level: Level(verbosity, quiet),
	}))
}
