package logging

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"opcode-map/internal/config"
)

func TestLevel(t *testing.T) {
	cases := []struct {
		name      string
		verbosity int
		want      zapcore.Level
	}{
		{"", 0, zapcore.WarnLevel},
		{"", 1, zapcore.InfoLevel},
		{"", 5, zapcore.DebugLevel},
		{"error", 0, zapcore.ErrorLevel},
		{"error", 2, zapcore.InfoLevel},
		{"debug", 3, zapcore.DebugLevel},
	}
	for _, tc := range cases {
		got, err := Level(tc.name, tc.verbosity)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "level %q verbosity %d", tc.name, tc.verbosity)
	}

	_, err := Level("loud", 0)
	assert.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger("opcodemap", config.Default().Log, 1, io.Discard)
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.False(t, logger.Core().Enabled(zapcore.DebugLevel))

	_, err = NewLogger("", config.LogConfig{Level: "loud"}, 0, nil)
	assert.Error(t, err)

	_, err = NewLogger("", config.LogConfig{Encoding: "xml"}, 0, nil)
	assert.ErrorContains(t, err, "build logger")
}

func TestNewLogger_KeepsEveryRepeatedWarning(t *testing.T) {
	for _, dev := range []bool{false, true} {
		var out bytes.Buffer
		logger, err := NewLogger("", config.LogConfig{Encoding: "json", Development: dev}, 0, &out)
		require.NoError(t, err)

		for i := 0; i < 300; i++ {
			logger.Warn("invalid opcode/subopcode pair")
		}
		require.NoError(t, logger.Sync())

		lines := strings.Split(strings.TrimSpace(out.String()), "\n")
		assert.Len(t, lines, 300, "development=%v", dev)
	}
}

func TestNewLogger_WritesToOut(t *testing.T) {
	var out bytes.Buffer
	logger, err := NewLogger("opcodemap", config.LogConfig{Encoding: "json"}, 0, &out)
	require.NoError(t, err)

	logger.Info("dropped below warn")
	logger.Warn("kept", zap.Int("opcode", 6))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(out.Bytes()), &entry))
	assert.Equal(t, "kept", entry["msg"])
	assert.Equal(t, "opcodemap", entry["logger"])
	assert.Equal(t, float64(6), entry["opcode"])
}
