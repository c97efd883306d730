package pixelstream

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestLoggerDefaultIsSilent(t *testing.T) {
	SetLogger(nil)
	l := Logger()
	if l == nil {
		t.Fatal("Logger() returned nil")
	}
	if l.Enabled(nil, slog.LevelError) {
		t.Error("default logger should discard even error-level records")
	}
}

func TestSetLogger(t *testing.T) {
	defer SetLogger(nil)

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	// Init with pending commands logs a debug record.
	r := NewRenderer()
	r.EndFrame()
	r.Init(10, 10)

	if !strings.Contains(buf.String(), "dropped") {
		t.Errorf("expected drop diagnostic in log output, got %q", buf.String())
	}
}

func TestSetLoggerNilRestoresSilence(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	SetLogger(nil)

	r := NewRenderer()
	r.EndFrame()
	r.Init(10, 10)

	if buf.Len() != 0 {
		t.Errorf("silent logger produced output: %q", buf.String())
	}
}
