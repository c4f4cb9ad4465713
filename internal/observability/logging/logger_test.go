package logging

import (
	"context"
	"log/slog"
	"testing"
)

func TestNewJSONLoggerHonorsLevel(t *testing.T) {
	logger := NewJSONLogger("briefly-api", "warn")
	ctx := context.Background()

	if logger.Enabled(ctx, slog.LevelInfo) {
		t.Fatalf("info must be suppressed at warn level")
	}
	if !logger.Enabled(ctx, slog.LevelWarn) {
		t.Fatalf("warn must be enabled at warn level")
	}
}

func TestNewJSONLoggerFallsBackToInfo(t *testing.T) {
	logger := NewJSONLogger("briefly-api", "verbose")
	ctx := context.Background()

	if logger.Enabled(ctx, slog.LevelDebug) {
		t.Fatalf("debug must be suppressed after fallback")
	}
	if !logger.Enabled(ctx, slog.LevelInfo) {
		t.Fatalf("info must be enabled after fallback")
	}
}

func TestParseLevelAcceptsOffsets(t *testing.T) {
	if got := parseLevel("warn+2"); got != slog.LevelWarn+2 {
		t.Fatalf("expected warn+2, got %v", got)
	}
	if got := parseLevel(" ERROR "); got != slog.LevelError {
		t.Fatalf("expected error, got %v", got)
	}
}
