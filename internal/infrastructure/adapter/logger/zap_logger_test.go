package logger

import (
	"testing"

	"github.com/amirhossein-jamali/fantasy-cricket/internal/domain/port/core"
	"github.com/stretchr/testify/assert"
)

func TestZapLoggerLevel(t *testing.T) {
	l := NewZapLogger(Options{Level: "warn", Service: "test"})
	assert.Equal(t, core.LogLevelWarn, l.GetLevel())

	l.SetLevel(core.LogLevelDebug)
	assert.Equal(t, core.LogLevelDebug, l.GetLevel())

	assert.NotPanics(t, func() {
		l.Debug("debug", map[string]any{"k": "v"})
		l.Error("error", nil)
	})
}
