package logging

import (
	"context"
	"log/slog"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"DEBUG":   slog.LevelDebug,
		"warn":    slog.LevelWarn,
		"error":   slog.LevelError,
		"info":    slog.LevelInfo,
		"":        slog.LevelInfo,
		"unknown": slog.LevelInfo,
	}
	for in, want := range cases {
		if got := parseLevel(in); got != want {
			t.Fatalf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestContextRoundTrip(t *testing.T) {
	logger := slog.Default()
	ctx := WithLogger(context.Background(), logger)

	if got := FromContext(ctx, nil); got != logger {
		t.Fatal("expected stored logger")
	}

	fallback := slog.Default().With("k", "v")
	if got := FromContext(context.Background(), fallback); got != fallback {
		t.Fatal("expected fallback logger")
	}
	if got := FromContext(nil, fallback); got != fallback { //nolint:staticcheck
		t.Fatal("expected fallback for nil context")
	}
}

func TestNilSafeHelpers(t *testing.T) {
	// Must not panic.
	Info(nil, "msg")
	Warn(nil, "msg")
	Error(nil, "msg", nil)
}

func TestWithCommon(t *testing.T) {
	attrs := WithCommon(nil, "svc", "1.0")
	if len(attrs) != 2 {
		t.Fatalf("attrs = %v", attrs)
	}
	if got := WithCommon(nil, "", ""); len(got) != 0 {
		t.Fatalf("attrs = %v", got)
	}
}
