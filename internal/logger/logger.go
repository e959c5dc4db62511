// Package logger configures the process-wide slog logger. Logs always go to
// stderr so they never mix with the report on stdout.
package logger

import (
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

// Level is the shared level of the default logger
var Level = &slog.LevelVar{}

// ParseLevel maps a level name to a slog level
func ParseLevel(name string) (slog.Level, bool) {
	switch strings.ToLower(name) {
	case "err", "error":
		return slog.LevelError, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "info":
		return slog.LevelInfo, true
	case "debug":
		return slog.LevelDebug, true
	}
	return 0, false
}

// Setup installs the default logger writing to w (the command's stderr) at
// the named level. Unknown level names fall back to warn.
func Setup(w io.Writer, level string, noColor bool) {
	slog.SetDefault(New(w, level, noColor))
}

// New builds a logger for w; a colored tint handler is used when w is a terminal
func New(w io.Writer, level string, noColor bool) *slog.Logger {
	lvl, ok := ParseLevel(level)
	if !ok {
		lvl = slog.LevelWarn
	}
	Level.Set(lvl)

	if !noColor && isTerminal(w) {
		return slog.New(newTerminalHandler(w))
	}
	return slog.New(newTextHandler(w))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func newTextHandler(w io.Writer) slog.Handler {
	return slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: Level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			switch a.Key {
			case slog.TimeKey:
				return slog.Attr{}
			case slog.LevelKey:
				lvl := a.Value.Any().(slog.Level)
				return slog.String(a.Key, strings.ToLower(lvl.String()))
			}
			return a
		},
	})
}

func newTerminalHandler(w io.Writer) slog.Handler {
	return tint.NewHandler(w, &tint.Options{
		NoColor: runtime.GOOS == "windows",
		Level:   Level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	})
}
