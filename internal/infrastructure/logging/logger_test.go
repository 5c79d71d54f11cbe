package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		verbose bool
		enabled zapcore.Level
		blocked zapcore.Level
	}{
		{name: "default info", level: "", enabled: zapcore.InfoLevel, blocked: zapcore.DebugLevel},
		{name: "warn", level: "warn", enabled: zapcore.WarnLevel, blocked: zapcore.InfoLevel},
		{name: "verbose wins", level: "error", verbose: true, enabled: zapcore.DebugLevel, blocked: zapcore.DebugLevel - 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := New(tt.level, tt.verbose)
			require.NoError(t, err)
			assert.True(t, logger.Core().Enabled(tt.enabled))
			assert.False(t, logger.Core().Enabled(tt.blocked))
		})
	}
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New("loud", false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}
