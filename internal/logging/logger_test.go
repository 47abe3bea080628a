package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestNewLoggerNotNil(t *testing.T) {
	logger := NewLogger(Config{})
	if logger == nil {
		t.Fatal("expected logger to be non-nil")
	}
}

func TestNewLoggerUsesTextHandlerWithInfoLevel(t *testing.T) {
	logger := NewLogger(Config{Format: "text", Level: "info"})

	if enabled := logger.Enabled(context.Background(), slog.LevelInfo); !enabled {
		t.Fatal("expected info level to be enabled")
	}

	if enabled := logger.Enabled(context.Background(), slog.LevelDebug); enabled {
		t.Fatal("expected debug level to be disabled")
	}
}

func TestNewLoggerJSONIncludesServiceAndVersion(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(Config{Format: "json", Level: "debug", Service: "sportsbase", Version: "v1", Output: &buf})

	logger.Debug("hello")

	out := buf.String()
	if !strings.Contains(out, `"service":"sportsbase"`) || !strings.Contains(out, `"version":"v1"`) {
		t.Fatalf("expected common fields in output, got %s", out)
	}
}

func TestParseLevelVariants(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"WARN":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"bogus":   slog.LevelInfo,
	}
	for raw, want := range cases {
		if got := parseLevel(raw); got != want {
			t.Fatalf("level %q: expected %s, got %s", raw, want, got)
		}
	}
}

func TestContextLoggerRoundTrip(t *testing.T) {
	fallback := slog.Default()
	scoped := NewLogger(Config{})

	if got := FromContext(context.Background(), fallback); got != fallback {
		t.Fatalf("expected fallback when none stored")
	}
	ctx := WithLogger(context.Background(), scoped)
	if got := FromContext(ctx, fallback); got != scoped {
		t.Fatalf("expected scoped logger from context")
	}
	if got := WithLogger(ctx, nil); got != ctx {
		t.Fatalf("expected nil logger to leave context untouched")
	}
}
