package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVariant(t *testing.T) {
	v, err := ParseVariant("dark")
	require.NoError(t, err)
	assert.Equal(t, VariantDark, v)

	v, err = ParseVariant("toggle")
	require.NoError(t, err)
	assert.Equal(t, VariantToggle, v)

	_, err = ParseVariant("neon")
	assert.Error(t, err)
}

func TestToggle(t *testing.T) {
	s := New(VariantToggle)
	assert.Equal(t, ModeDark, s.Mode)

	s, changed := s.Toggle()
	assert.True(t, changed)
	assert.Equal(t, ModeLight, s.Mode)
	assert.Equal(t, lightPalette, s.Palette())

	s, changed = s.Toggle()
	assert.True(t, changed)
	assert.Equal(t, ModeDark, s.Mode)
}

func TestDarkVariantDoesNotToggle(t *testing.T) {
	s := New(VariantDark)

	next, changed := s.Toggle()
	assert.False(t, changed)
	assert.Equal(t, s, next)
	assert.Equal(t, darkPalette, next.Palette())
}
