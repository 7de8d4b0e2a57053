package colorspace

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_SameSpace(t *testing.T) {
	for _, space := range Spaces() {
		conv, err := Resolve(space, space)
		require.NoError(t, err)
		assert.Nil(t, conv, "same-space resolution must yield no conversion for %s", space)
	}
}

func TestResolve_RegisteredPairs(t *testing.T) {
	pairs := []struct {
		source, target Space
	}{
		{BGR, HSV},
		{HSV, BGR},
		{BGR, LAB},
		{LAB, BGR},
		{RGB, YUV},
		{BGR, GRAY},
		{GRAY, BGR},
	}

	for _, pair := range pairs {
		conv, err := Resolve(pair.source, pair.target)
		require.NoError(t, err, "%s->%s should be registered", pair.source, pair.target)
		require.NotNil(t, conv)
		assert.Equal(t, string(pair.source)+"->"+string(pair.target), conv.String())
	}
}

func TestResolve_UnsupportedPair(t *testing.T) {
	// Cross conversions that skip the BGR/RGB hub are deliberately
	// absent from the table.
	conv, err := Resolve(HSV, LAB)
	require.Error(t, err)
	assert.Nil(t, conv)

	var unsupported *UnsupportedConversionError
	require.True(t, errors.As(err, &unsupported))
	assert.Equal(t, HSV, unsupported.Source)
	assert.Equal(t, LAB, unsupported.Target)
}

func TestParseSpace(t *testing.T) {
	t.Run("case insensitive", func(t *testing.T) {
		space, err := ParseSpace("hsv")
		require.NoError(t, err)
		assert.Equal(t, HSV, space)

		space, err = ParseSpace("Lab")
		require.NoError(t, err)
		assert.Equal(t, LAB, space)
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := ParseSpace("CMYK")
		assert.Error(t, err)
	})
}

func TestSpaceChannels(t *testing.T) {
	assert.Equal(t, 1, GRAY.Channels())
	assert.Equal(t, 3, BGR.Channels())
	assert.Equal(t, 3, LAB.Channels())
}
