package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"Debug console", Config{Level: "debug", Format: "console"}},
		{"Info json", Config{Level: "info", Format: "json"}},
		{"Warn json", Config{Level: "warn", Format: "json"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := New(&tt.cfg)
			assert.NoError(t, err)
			assert.NotNil(t, l)
		})
	}
}

func TestNew_WarnLevelDropsInfo(t *testing.T) {
	l, err := New(&Config{Level: "warn", Format: "json"})
	assert.NoError(t, err)
	assert.False(t, l.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, l.Core().Enabled(zapcore.WarnLevel))
}

func TestWithRun(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	l := zap.New(core)

	WithRun(l, "run-1").Info("pass started")
	WithRun(l, "").Info("no run")

	entries := logs.All()
	assert.Len(t, entries, 2)
	assert.Equal(t, "run-1", entries[0].ContextMap()["run_id"])
	_, ok := entries[1].ContextMap()["run_id"]
	assert.False(t, ok)
}
