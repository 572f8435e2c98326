package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zapcore.WarnLevel, parseLevel(" Warning "))
	assert.Equal(t, zapcore.ErrorLevel, parseLevel("error"))
	assert.Equal(t, zapcore.InfoLevel, parseLevel("nonsense"))
}

func TestZapLoggerWritesObjectField(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := NewZapLogger(zap.New(core))

	log.WarnObj("parameter dropped", "parameter_error", map[string]any{"name": "a"})
	log.DebugObj("connection built", "connection_meta", 1)

	entries := logs.All()
	if assert.Len(t, entries, 2) {
		assert.Equal(t, "parameter dropped", entries[0].Message)
		assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
		assert.Contains(t, entries[0].ContextMap(), "parameter_error")
	}
}

func TestHelpersAreNoopsBeforeInit(t *testing.T) {
	S = nil
	InfoObj("ignored", "k", 1)
	ErrorObj("ignored", "k", 1)
	assert.NoError(t, Close())
}
