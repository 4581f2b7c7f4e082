package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5/middleware"
)

func restoreDefault(t *testing.T) {
	t.Helper()
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"loud", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseLevel(tt.in); got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestSetup_JSONFormat(t *testing.T) {
	restoreDefault(t)
	var buf bytes.Buffer

	Setup(&buf, "info", "json")
	slog.Info("hello", "cookies", 3)

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if entry["msg"] != "hello" {
		t.Errorf("msg = %v, want hello", entry["msg"])
	}
	if entry["cookies"] != float64(3) {
		t.Errorf("cookies = %v, want 3", entry["cookies"])
	}
}

func TestSetup_LevelFilters(t *testing.T) {
	restoreDefault(t)
	var buf bytes.Buffer

	logger := Setup(&buf, "warn", "text")
	logger.Info("hidden")
	logger.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info entry written at warn level: %q", out)
	}
	if !strings.Contains(out, "msg=shown") {
		t.Errorf("warn entry missing: %q", out)
	}
}

func TestFromContext(t *testing.T) {
	restoreDefault(t)
	var buf bytes.Buffer
	Setup(&buf, "debug", "text")

	ctx := context.WithValue(context.Background(), middleware.RequestIDKey, "req-42")
	ctx = WithRunID(ctx, "run-7")

	FromContext(ctx).Info("tagged")

	out := buf.String()
	if !strings.Contains(out, "request_id=req-42") {
		t.Errorf("missing request_id: %q", out)
	}
	if !strings.Contains(out, "run_id=run-7") {
		t.Errorf("missing run_id: %q", out)
	}
}

func TestFromContext_Plain(t *testing.T) {
	restoreDefault(t)
	var buf bytes.Buffer
	Setup(&buf, "debug", "text")

	WithFields(context.Background(), "file", "cookies.csv").Info("plain")

	out := buf.String()
	if strings.Contains(out, "request_id") || strings.Contains(out, "run_id") {
		t.Errorf("unexpected ids in %q", out)
	}
	if !strings.Contains(out, "file=cookies.csv") {
		t.Errorf("missing field: %q", out)
	}
}

func TestRunID_Unset(t *testing.T) {
	if got := RunID(context.Background()); got != "" {
		t.Errorf("RunID() = %q, want empty", got)
	}
}
