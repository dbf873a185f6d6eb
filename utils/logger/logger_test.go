package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{" info ", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseLevel(tt.in); got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestInit_WritesJSONWithService(t *testing.T) {
	prev := slog.Default()
	prevCtx := GlobalContext
	defer func() {
		slog.SetDefault(prev)
		GlobalContext = prevCtx
	}()

	var buf bytes.Buffer
	log := initWithWriter(&buf, "info", false)
	log.Debug("hidden")
	log.Info("visible", "articles", 3)

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("failed to parse log output %q: %v", buf.String(), err)
	}
	if entry["msg"] != "visible" {
		t.Errorf("expected msg=visible, got %v", entry["msg"])
	}
	if entry["service"] != "news-dashboard" {
		t.Errorf("expected service=news-dashboard, got %v", entry["service"])
	}
	if entry["articles"] != float64(3) {
		t.Errorf("expected articles=3, got %v", entry["articles"])
	}
}

func TestInit_SetsGlobalContext(t *testing.T) {
	prev := slog.Default()
	prevCtx := GlobalContext
	defer func() {
		slog.SetDefault(prev)
		GlobalContext = prevCtx
	}()

	var buf bytes.Buffer
	initWithWriter(&buf, "debug", false)

	ctx := WithRequestID(context.Background(), "req-1")
	GlobalContext.WithContext(ctx).Debug("through global")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("failed to parse log output: %v", err)
	}
	if entry["request_id"] != "req-1" {
		t.Errorf("expected request_id=req-1, got %v", entry["request_id"])
	}
}

func TestInit_WithOTelUsesMultiHandler(t *testing.T) {
	prev := slog.Default()
	prevCtx := GlobalContext
	defer func() {
		slog.SetDefault(prev)
		GlobalContext = prevCtx
	}()

	var buf bytes.Buffer
	log := initWithWriter(&buf, "info", true)
	if _, ok := log.Handler().(*MultiHandler); !ok {
		t.Errorf("expected *MultiHandler, got %T", log.Handler())
	}

	log.Info("fan out")
	if buf.Len() == 0 {
		t.Error("expected stdout handler to receive the record")
	}
}
