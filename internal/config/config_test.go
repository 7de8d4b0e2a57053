package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"colorgate/internal/colorspace"
	"colorgate/internal/threshold"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseThresholds_KeyedForm(t *testing.T) {
	data := []byte(`
LAB:
  low: [0, 66, 66]
  high: [255, 180, 180]
`)

	cfg, err := ParseThresholds(data)
	require.NoError(t, err)
	require.Len(t, cfg, 1)
	assert.Equal(t, colorspace.LAB, cfg[0].Space)
	assert.Equal(t, []float64{0, 66, 66}, cfg[0].Low)
	assert.Equal(t, []float64{255, 180, 180}, cfg[0].High)
}

func TestParseThresholds_PairForm(t *testing.T) {
	data := []byte(`
LAB:
  - [0, 66, 66]
  - [255, 180, 180]
`)

	cfg, err := ParseThresholds(data)
	require.NoError(t, err)
	require.Len(t, cfg, 1)
	assert.Equal(t, []float64{0, 66, 66}, cfg[0].Low)
	assert.Equal(t, []float64{255, 180, 180}, cfg[0].High)
}

func TestParseThresholds_FormsEquivalent(t *testing.T) {
	keyed, err := ParseThresholds([]byte("LAB: {low: [0, 66, 66], high: [255, 180, 180]}"))
	require.NoError(t, err)
	pair, err := ParseThresholds([]byte("LAB: [[0, 66, 66], [255, 180, 180]]"))
	require.NoError(t, err)

	assert.Equal(t, keyed, pair)
}

func TestParseThresholds_PreservesDocumentOrder(t *testing.T) {
	data := []byte(`
HSV:
  low: [0, 20, 50]
  high: [255, 255, 255]
LAB:
  low: [0, 66, 66]
  high: [255, 180, 180]
`)

	cfg, err := ParseThresholds(data)
	require.NoError(t, err)
	require.Len(t, cfg, 2)
	assert.Equal(t, colorspace.HSV, cfg[0].Space, "first document key must stay first")
	assert.Equal(t, colorspace.LAB, cfg[1].Space)
}

func TestParseThresholds_Errors(t *testing.T) {
	var cfgErr *threshold.ConfigError

	cases := []struct {
		name string
		data string
	}{
		{"empty document", ""},
		{"not a mapping", "- LAB"},
		{"unknown space", "CMYK: {low: [0], high: [255]}"},
		{"missing high", "LAB: {low: [0, 66, 66]}"},
		{"pair with one element", "LAB: [[0, 66, 66]]"},
		{"pair with three elements", "LAB: [[0], [1], [2]]"},
		{"scalar entry", "LAB: 7"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseThresholds([]byte(tc.data))
			require.Error(t, err)
			assert.True(t, errors.As(err, &cfgErr), "expected ConfigError, got %T", err)
		})
	}
}

func TestStore(t *testing.T) {
	data := []byte(`
buoy_red:
  LAB:
    low: [0, 140, 120]
    high: [255, 200, 180]
dock_yellow:
  HSV: [[20, 100, 100], [35, 255, 255]]
`)

	store, err := NewStore(data)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"buoy_red", "dock_yellow"}, store.Names())

	t.Run("param lookup", func(t *testing.T) {
		cfg, err := store.Param("dock_yellow")
		require.NoError(t, err)
		require.Len(t, cfg, 1)
		assert.Equal(t, colorspace.HSV, cfg[0].Space)
		assert.Equal(t, []float64{20, 100, 100}, cfg[0].Low)
	})

	t.Run("missing param", func(t *testing.T) {
		_, err := store.Param("buoy_green")
		require.Error(t, err)

		var cfgErr *threshold.ConfigError
		assert.True(t, errors.As(err, &cfgErr))
	})

	t.Run("builds a spec end to end", func(t *testing.T) {
		spec, err := threshold.FromStore(store, "buoy_red", colorspace.BGR, "")
		require.NoError(t, err)
		assert.Equal(t, colorspace.LAB, spec.ThreshSpace())
		assert.NotNil(t, spec.Conversion())
	})
}

func TestLoadStore(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "thresholds.yaml")
	require.NoError(t, os.WriteFile(path, []byte("gate: {HSV: {low: [0, 0, 0], high: [255, 255, 255]}}"), 0o644))

	store, err := LoadStore(path)
	require.NoError(t, err)

	cfg, err := store.Param("gate")
	require.NoError(t, err)
	assert.Equal(t, colorspace.HSV, cfg[0].Space)

	_, err = LoadStore(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
