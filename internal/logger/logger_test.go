package logger

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]struct {
		name   string
		want   slog.Level
		wantOK bool
	}{
		"error":   {name: "error", want: slog.LevelError, wantOK: true},
		"err":     {name: "ERR", want: slog.LevelError, wantOK: true},
		"warning": {name: "warning", want: slog.LevelWarn, wantOK: true},
		"info":    {name: "Info", want: slog.LevelInfo, wantOK: true},
		"debug":   {name: "debug", want: slog.LevelDebug, wantOK: true},
		"unknown": {name: "verbose", wantOK: false},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			got, ok := ParseLevel(test.name)
			assert.Equal(t, test.wantOK, ok)
			if test.wantOK {
				assert.Equal(t, test.want, got)
			}
		})
	}
}

func TestNew_TextHandler(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "info", false)

	log.Debug("hidden")
	log.Info("scanned fixture root", "files", 3)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "level=info")
	assert.Contains(t, out, "files=3")
	assert.NotContains(t, out, "time=")
}

func TestNew_UnknownLevelFallsBackToWarn(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "loud", false)

	log.Info("hidden")
	log.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestSetup_WritesToGivenWriter(t *testing.T) {
	defer slog.SetDefault(slog.Default())

	var buf bytes.Buffer
	Setup(&buf, "debug", true)

	slog.Debug("scanned fixture root", "files", 2)

	assert.Contains(t, buf.String(), "scanned fixture root")
	assert.Contains(t, buf.String(), "level=debug")
}
