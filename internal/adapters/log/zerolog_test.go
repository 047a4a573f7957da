package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bft-labs/byteservice/internal/ports"
)

func TestZerologAdapter_Fields(t *testing.T) {
	var buf bytes.Buffer
	z := NewZerologAdapterWithLogger(zerolog.New(&buf).Level(zerolog.DebugLevel))

	z.Info("classified",
		ports.Field{Key: "input", Value: "Byte(0)"},
		ports.Bool("is_zero", true),
		ports.Field{Key: "error", Value: errors.New("boom")},
		ports.Field{Key: "raw", Value: uint8(3)},
	)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "classified", entry["message"])
	assert.Equal(t, "Byte(0)", entry["input"])
	assert.Equal(t, true, entry["is_zero"])
	assert.Equal(t, "boom", entry["error"])
	assert.Equal(t, float64(3), entry["raw"])
}

func TestZerologAdapter_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	z := NewZerologAdapterWithLogger(zerolog.New(&buf).Level(zerolog.WarnLevel))

	z.Debug("hidden")
	z.Info("hidden")
	assert.Zero(t, buf.Len())

	z.Warn("shown")
	z.Error("shown")
	assert.Equal(t, 2, bytes.Count(buf.Bytes(), []byte("\n")))
}

func TestNoopLogger(t *testing.T) {
	var l ports.Logger = NewNoopLogger()
	assert.NotPanics(t, func() {
		l.Debug("x")
		l.Info("x", ports.Bool("k", true))
		l.Warn("x")
		l.Error("x", ports.Field{Key: "error", Value: errors.New("e")})
	})
}
