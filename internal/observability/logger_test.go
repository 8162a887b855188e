package observability

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestInitFileLoggerWritesJSON(t *testing.T) {
	old := Logger
	t.Cleanup(func() { Logger = old })

	path := filepath.Join(t.TempDir(), "calcpad.log")
	if err := InitFileLogger(path); err != nil {
		t.Fatalf("init file logger: %v", err)
	}

	Logger.Info("widget mounted", zap.String("variant", "dark"))
	SyncLogger()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if !strings.Contains(string(data), `"msg":"widget mounted"`) {
		t.Fatalf("expected log line in file, got %q", data)
	}
}

func TestInitFileLoggerEmptyPathIsNop(t *testing.T) {
	old := Logger
	t.Cleanup(func() { Logger = old })

	if err := InitFileLogger(""); err != nil {
		t.Fatalf("init file logger: %v", err)
	}
	if Logger.Core().Enabled(zap.ErrorLevel) {
		t.Fatal("expected no-op logger")
	}
}

func TestLoggerWithTraceAddsIDs(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	old := Logger
	Logger = zap.New(core)
	t.Cleanup(func() { Logger = old })

	LoggerWithTrace(context.Background()).Info("no span")

	sc := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    trace.TraceID{1},
		SpanID:     trace.SpanID{2},
		TraceFlags: trace.FlagsSampled,
	})
	ctx := trace.ContextWithSpanContext(context.Background(), sc)
	LoggerWithTrace(ctx).Info("with span")

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("expected 2 log entries, got %d", len(entries))
	}

	if _, ok := entries[0].ContextMap()["trace_id"]; ok {
		t.Fatal("did not expect trace_id without a span")
	}

	fields := entries[1].ContextMap()
	if fields["trace_id"] != sc.TraceID().String() {
		t.Fatalf("expected trace_id %q, got %#v", sc.TraceID().String(), fields["trace_id"])
	}
	if fields["span_id"] != sc.SpanID().String() {
		t.Fatalf("expected span_id %q, got %#v", sc.SpanID().String(), fields["span_id"])
	}
}
