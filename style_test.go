package ui

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinThemes(t *testing.T) {
	dark := DarkStyle()
	assert.True(t, dark.Visuals.DarkMode)
	assert.Equal(t, DefaultStyle().Visuals.PanelFill, dark.Visuals.PanelFill)

	light := LightStyle()
	assert.False(t, light.Visuals.DarkMode)
	assert.NotEqual(t, dark.Visuals.PanelFill, light.Visuals.PanelFill)
	assert.Equal(t, dark.Spacing, light.Spacing, "themes differ in colors only")
}

func TestDecodeStyleTomlOverlaysDefaults(t *testing.T) {
	doc := `
animation_time = 0.25

[text]
body = 16

[visuals]
hyperlink_color = "#FF8800"
`
	s, err := decodeStyle("theme.toml", []byte(doc))
	require.NoError(t, err)
	assert.Equal(t, float32(0.25), s.AnimationTime)
	assert.Equal(t, float32(16), s.Text.Body)
	assert.Equal(t, RGB(0xFF, 0x88, 0x00), s.Visuals.HyperlinkColor)

	def := DefaultStyle()
	assert.Equal(t, def.Spacing, s.Spacing, "untouched sections keep their defaults")
	assert.Equal(t, def.Visuals.PanelFill, s.Visuals.PanelFill)
}

func TestDecodeStyleYaml(t *testing.T) {
	doc := `
visuals:
  dark_mode: false
  selection_bg: "#90D1FF80"
spacing:
  indent: 24
`
	s, err := decodeStyle("theme.yaml", []byte(doc))
	require.NoError(t, err)
	assert.False(t, s.Visuals.DarkMode)
	assert.Equal(t, RGBA(0x90, 0xD1, 0xFF, 0x80), s.Visuals.SelectionBg)
	assert.Equal(t, float32(24), s.Spacing.Indent)
}

func TestDecodeStyleUnknownExtension(t *testing.T) {
	_, err := decodeStyle("theme.json", []byte("{}"))
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestDecodeStyleBadColor(t *testing.T) {
	_, err := decodeStyle("theme.toml", []byte("[visuals]\ntext_cursor = \"red\"\n"))
	assert.Error(t, err)
}

func TestSaveAndLoadStyleRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "theme.toml")

	s := LightStyle()
	s.AnimationTime = 0.42
	require.NoError(t, SaveStyle(path, s))

	loaded, err := LoadStyle(path)
	require.NoError(t, err)
	assert.Equal(t, s.Visuals, loaded.Visuals)
	assert.Equal(t, float32(0.42), loaded.AnimationTime)
}

func TestSaveStyleRejectsNonToml(t *testing.T) {
	err := SaveStyle(filepath.Join(t.TempDir(), "theme.yaml"), DefaultStyle())
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestLoadStyleMissingFile(t *testing.T) {
	_, err := LoadStyle(filepath.Join(t.TempDir(), "nope.toml"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoadStyleFS(t *testing.T) {
	fsys := fstest.MapFS{
		"themes/hi.yml": {Data: []byte("visuals:\n  dark_mode: false\n")},
	}
	s, err := LoadStyleFS(fsys, "themes/hi.yml")
	require.NoError(t, err)
	assert.False(t, s.Visuals.DarkMode)
}

func TestColorTextRoundTrip(t *testing.T) {
	cases := []Color32{
		RGB(255, 0, 0),
		RGBA(0x90, 0xD1, 0xFF, 0x80),
		ColorTransparent,
		GrayColor(27),
	}
	for _, c := range cases {
		text, err := c.MarshalText()
		require.NoError(t, err)
		var back Color32
		require.NoError(t, back.UnmarshalText(text))
		// Premultiplied storage loses a little precision per channel.
		assert.InDelta(t, float64(c.R()), float64(back.R()), 1)
		assert.InDelta(t, float64(c.G()), float64(back.G()), 1)
		assert.InDelta(t, float64(c.B()), float64(back.B()), 1)
		assert.Equal(t, c.A(), back.A())
	}
}

func TestColorUnmarshalForms(t *testing.T) {
	var c Color32
	require.NoError(t, c.UnmarshalText([]byte("#FF8800")))
	assert.Equal(t, RGB(0xFF, 0x88, 0x00), c)
	assert.True(t, c.IsOpaque())

	assert.Error(t, c.UnmarshalText([]byte("FF8800")))
	assert.Error(t, c.UnmarshalText([]byte("#FFF")))
	assert.Error(t, c.UnmarshalText([]byte("#GGGGGG")))
}
