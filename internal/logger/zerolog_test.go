package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZerologAdapter(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerolog(&buf, zerolog.InfoLevel)

	log.Debug("Driver", "dropped", nil)
	log.Info("Driver", "frame rendered", map[string]interface{}{"index": 2})

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "Driver", entry["component"])
	assert.Equal(t, "frame rendered", entry["message"])
	assert.EqualValues(t, 2, entry["index"])
}

func TestZerologAdapterError(t *testing.T) {
	var buf bytes.Buffer
	NewZerolog(&buf, zerolog.DebugLevel).Error("ImageService", errors.New("bad header"), nil)

	assert.Contains(t, buf.String(), `"error":"bad header"`)
	assert.Contains(t, buf.String(), `"component":"ImageService"`)
}

func TestParseLevel(t *testing.T) {
	lvl, err := ParseLevel("WARN")
	require.NoError(t, err)
	assert.Equal(t, zerolog.WarnLevel, lvl)

	lvl, err = ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, zerolog.InfoLevel, lvl)

	_, err = ParseLevel("verbose")
	assert.Error(t, err)
}
