package log_test

import (
	"context"
	"testing"

	"smart-todo/pkg/log"
)

func TestInit(t *testing.T) {
	modes := []log.ZapConfig{
		{Level: "debug", Mode: log.ModeDebug, Encoding: log.EncodingConsole, ColorEnabled: true},
		{Level: "info", Mode: log.ModeProduction, Encoding: log.EncodingJSON},
		{Level: "not-a-level", Mode: log.ModeProduction, Encoding: log.EncodingJSON},
	}

	for _, cfg := range modes {
		l := log.Init(cfg)
		if l == nil {
			t.Fatalf("expected logger for config %+v", cfg)
		}
		ctx := context.WithValue(context.Background(), log.TraceIDKey, "trace-1")
		l.Infof(ctx, "hello %s", "world")
		l.Debug(ctx, "debug line")
	}
}

func TestNewNop(t *testing.T) {
	l := log.NewNop()
	l.Errorf(context.Background(), "discarded: %v", 1)
}
