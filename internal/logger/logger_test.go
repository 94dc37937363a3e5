package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"INFO":    zapcore.InfoLevel,
		" warn ":  zapcore.WarnLevel,
		"warning": zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
	} {
		got, ok := parseLevel(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}

	_, ok := parseLevel("verbose")
	assert.False(t, ok)
}

func TestSetAndNamed(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	Set(zap.New(core).Sugar())
	t.Cleanup(func() { Set(nil) })

	Named("provider").Infow("fetched", "count", 20)

	entries := logs.All()
	if assert.Len(t, entries, 1) {
		assert.Equal(t, "provider", entries[0].LoggerName)
		assert.Equal(t, int64(20), entries[0].ContextMap()["count"])
	}
}

func TestGet_InitializesLazily(t *testing.T) {
	Set(nil)
	t.Cleanup(func() { Set(nil) })

	assert.NotNil(t, Get())
}
