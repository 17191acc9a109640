//go:build unit

package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestLevelForVerbosity(t *testing.T) {
	assert.Equal(t, zapcore.WarnLevel, LevelForVerbosity(0))
	assert.Equal(t, zapcore.InfoLevel, LevelForVerbosity(1))
	assert.Equal(t, zapcore.DebugLevel, LevelForVerbosity(2))
	assert.Equal(t, zapcore.DebugLevel, LevelForVerbosity(5))
}

func TestNew(t *testing.T) {
	t.Run("should drop info logs by default", func(t *testing.T) {
		var buf bytes.Buffer
		logger := New(&buf, 0)

		logger.Info("hidden")
		logger.Warn("shown", zap.String("field", "branch"))

		out := buf.String()
		assert.NotContains(t, out, "hidden")
		assert.Contains(t, out, "WARN")
		assert.Contains(t, out, "shown")
		assert.Contains(t, out, `"field": "branch"`)
	})

	t.Run("should emit debug logs with -vv", func(t *testing.T) {
		var buf bytes.Buffer
		New(&buf, 2).Debug("resolved field")

		assert.Contains(t, buf.String(), "DEBUG")
	})
}
