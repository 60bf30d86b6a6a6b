package log_test

import (
	"context"
	"testing"

	"campus-lost-found/pkg/log"
)

func TestRequestID(t *testing.T) {
	ctx := log.WithRequestID(context.Background(), "req-1")
	if got := log.RequestID(ctx); got != "req-1" {
		t.Errorf("expected req-1, got %q", got)
	}
	if got := log.RequestID(context.Background()); got != "" {
		t.Errorf("expected empty request id, got %q", got)
	}
}

func TestInit(t *testing.T) {
	for _, cfg := range []log.ZapConfig{
		{Level: "debug", Mode: log.ModeDevelopment, Encoding: log.EncodingConsole, ColorEnabled: true},
		{Level: "info", Mode: log.ModeProduction, Encoding: log.EncodingJSON},
	} {
		l := log.Init(cfg)
		if l == nil {
			t.Fatalf("Init returned nil for %+v", cfg)
		}
		l.Infof(log.WithRequestID(context.Background(), "abc"), "hello %s", "world")
	}

	log.NewNop().Error(context.Background(), "discarded")
}
