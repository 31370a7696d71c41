package log_test

import (
	"context"
	"path/filepath"
	"testing"

	"memos-graph-sync/pkg/log"
)

func TestTraceIDRoundTrip(t *testing.T) {
	ctx := log.WithTraceID(context.Background(), "run-1")
	if got := log.TraceIDFromContext(ctx); got != "run-1" {
		t.Errorf("expected run-1, got %q", got)
	}
	if got := log.TraceIDFromContext(context.Background()); got != "" {
		t.Errorf("expected empty trace id, got %q", got)
	}
}

func TestInit(t *testing.T) {
	t.Run("console with file sink", func(t *testing.T) {
		l := log.Init(log.ZapConfig{
			Level:    "debug",
			Mode:     log.ModeDevelopment,
			Encoding: log.EncodingConsole,
			FilePath: filepath.Join(t.TempDir(), "memosync.log"),
		})
		l.Infof(log.WithTraceID(context.Background(), "abc"), "hello %s", "world")
	})

	t.Run("json with bad level", func(t *testing.T) {
		l := log.Init(log.ZapConfig{Level: "loud", Mode: log.ModeProduction, Encoding: log.EncodingJSON})
		l.Warn(context.Background(), "still logs")
	})
}
