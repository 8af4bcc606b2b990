package logger

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithWriter(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "warn")

	log.Info().Msg("dropped")
	assert.Zero(t, buf.Len())

	log.Warn().Str("k", "v").Msg("kept")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "kept", entry["message"])
	assert.Equal(t, "v", entry["k"])
	assert.Equal(t, "hourlog", entry["service"])
	assert.NotEmpty(t, entry["time"])
}

func TestNewWithWriter_UnknownLevel(t *testing.T) {
	tests := []string{"", "loud"}
	for _, level := range tests {
		log := NewWithWriter(&bytes.Buffer{}, level)
		assert.Equal(t, zerolog.InfoLevel, log.GetLevel(), "level %q", level)
	}
}

func TestNewWithWriter_LeavesTimeFormatAlone(t *testing.T) {
	orig := zerolog.TimeFieldFormat
	t.Cleanup(func() { zerolog.TimeFieldFormat = orig })
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	var buf bytes.Buffer
	log := NewWithWriter(&buf, "info")
	log.Info().Msg("tick")

	assert.Equal(t, zerolog.TimeFormatUnix, zerolog.TimeFieldFormat)
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.IsType(t, float64(0), entry["time"])
}

func TestTimeFieldFormat(t *testing.T) {
	assert.Equal(t, time.RFC3339Nano, zerolog.TimeFieldFormat)
}
