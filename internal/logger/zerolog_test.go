package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEntry(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestZerolog_TagsComponentAndFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerolog(&buf, "info")

	log.Info("pipeline", "frame classified", map[string]interface{}{"frames": 3})

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "pipeline", entry["component"])
	assert.Equal(t, "frame classified", entry["message"])
	assert.Equal(t, float64(3), entry["frames"])
	assert.Contains(t, entry, "time")
}

func TestZerolog_ErrorCarriesCause(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerolog(&buf, "info")

	log.Error("config", errors.New("no such parameter"), nil)

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "config", entry["component"])
	assert.Equal(t, "no such parameter", entry["error"])
}

func TestZerolog_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerolog(&buf, "warn")

	log.Debug("tuning", "suppressed", nil)
	log.Info("tuning", "suppressed", nil)
	assert.Zero(t, buf.Len())

	log.Warning("tuning", "inverted bounds", nil)
	assert.Equal(t, "warn", decodeEntry(t, &buf)["level"])
}

func TestZerolog_UnknownLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerolog(&buf, "loud")

	log.Debug("main", "suppressed", nil)
	assert.Zero(t, buf.Len())

	log.Info("main", "kept", nil)
	assert.NotZero(t, buf.Len())
}
