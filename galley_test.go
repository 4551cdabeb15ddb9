package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frameloop/ui/geom"
)

func TestMonospaceMetrics(t *testing.T) {
	l := NewMonospaceLayouter()
	assert.Equal(t, float32(7), l.CharWidth)
	assert.Equal(t, float32(13), l.LineHeight)

	g := l.Layout("abcd", TextFormat{}, 0)
	require.Len(t, g.Rows, 1)
	assert.Equal(t, float32(28), g.Size.X)
	assert.Equal(t, float32(13), g.Size.Y)
	assert.Equal(t, 4, g.CharCount())
}

func TestLayoutScalesWithFormatSize(t *testing.T) {
	g := NewMonospaceLayouter().Layout("ab", TextFormat{Size: 26}, 0)
	assert.Equal(t, float32(28), g.Size.X, "double size doubles the advance")
	assert.Equal(t, float32(26), g.Size.Y)
}

func TestLayoutSplitsOnNewlines(t *testing.T) {
	g := NewMonospaceLayouter().Layout("one\ntwo\n", TextFormat{}, 0)
	require.Len(t, g.Rows, 3, "a trailing newline opens an empty row")
	assert.True(t, g.Rows[0].EndsWithNewline)
	assert.Equal(t, CharRange{Start: 0, End: 3}, g.Rows[0].Chars)
	assert.Equal(t, CharRange{Start: 4, End: 7}, g.Rows[1].Chars)
	assert.Equal(t, CharRange{Start: 8, End: 8}, g.Rows[2].Chars)
	assert.Equal(t, 8, g.CharCount())
}

func TestLayoutWraps(t *testing.T) {
	// 10 characters at width 7, wrapping at 5 characters' width.
	g := NewMonospaceLayouter().Layout("abcdefghij", TextFormat{}, 35)
	require.Len(t, g.Rows, 2)
	assert.Equal(t, CharRange{Start: 0, End: 5}, g.Rows[0].Chars)
	assert.Equal(t, CharRange{Start: 5, End: 10}, g.Rows[1].Chars)
	assert.False(t, g.Rows[0].EndsWithNewline, "a wrap is not a newline")
	assert.Equal(t, 10, g.CharCount())
}

func TestLayoutWithoutWrapWidthNeverWraps(t *testing.T) {
	g := NewMonospaceLayouter().Layout("abcdefghij", TextFormat{}, 0)
	require.Len(t, g.Rows, 1)
}

func TestTabsAdvanceToStops(t *testing.T) {
	g := NewMonospaceLayouter().Layout("a\tb", TextFormat{}, 0)
	require.Len(t, g.Rows, 1)
	row := &g.Rows[0]
	require.Len(t, row.Advances, 3)
	assert.Equal(t, float32(7), row.XOffset(1))
	assert.Equal(t, float32(28), row.XOffset(2), "the tab fills up to the next 4-char stop")
	assert.Equal(t, float32(35), row.XOffset(3))
}

func TestCursorFromPosRoundTrip(t *testing.T) {
	g := NewMonospaceLayouter().Layout("hello\nworld", TextFormat{}, 0)

	c := g.CursorFromPos(geom.V(0, 0))
	assert.Equal(t, 0, c.Index)

	// Between 'e' and 'l' on the first row.
	c = g.CursorFromPos(geom.V(14.5, 5))
	assert.Equal(t, 2, c.Index)

	// Second row, after 'w'.
	c = g.CursorFromPos(geom.V(8, 20))
	assert.Equal(t, 7, c.Index)

	// Far right of the first row clamps to its end.
	c = g.CursorFromPos(geom.V(1000, 5))
	assert.Equal(t, 5, c.Index)

	// Below everything lands on the last row.
	c = g.CursorFromPos(geom.V(0, 1000))
	assert.Equal(t, 6, c.Index)
}

func TestPosFromCursorMatchesColumns(t *testing.T) {
	g := NewMonospaceLayouter().Layout("hello\nworld", TextFormat{}, 0)

	r := g.PosFromCursor(CCursorAt(2))
	assert.Equal(t, float32(14), r.Min.X)
	assert.Equal(t, float32(0), r.Min.Y)
	assert.Equal(t, float32(0), r.Width(), "the caret rect is zero width")

	r = g.PosFromCursor(CCursorAt(8))
	assert.Equal(t, float32(14), r.Min.X)
	assert.Equal(t, float32(13), r.Min.Y)
}

func TestWrapBoundaryPrefersNextRow(t *testing.T) {
	g := NewMonospaceLayouter().Layout("abcdefghij", TextFormat{}, 35)
	require.Len(t, g.Rows, 2)

	// A click at the left edge of the second row is the same character
	// index as the end of the first row; the flag disambiguates.
	c := g.CursorFromPos(geom.V(0, 20))
	assert.Equal(t, 5, c.Index)
	assert.True(t, c.PreferNextRow)
	assert.Equal(t, float32(13), g.PosFromCursor(c).Min.Y)

	plain := CCursorAt(5)
	assert.Equal(t, float32(0), g.PosFromCursor(plain).Min.Y, "without the flag the caret stays on the first row")
}

func TestRowForChar(t *testing.T) {
	g := NewMonospaceLayouter().Layout("one\ntwo", TextFormat{}, 0)
	assert.Equal(t, 0, g.RowForChar(0))
	assert.Equal(t, 0, g.RowForChar(3), "the newline belongs to its row")
	assert.Equal(t, 1, g.RowForChar(4))
	assert.Equal(t, 1, g.RowForChar(7))
}

func TestBoundaryAtXUsesMidpoints(t *testing.T) {
	g := NewMonospaceLayouter().Layout("abc", TextFormat{}, 0)
	row := &g.Rows[0]
	assert.Equal(t, 0, row.boundaryAtX(3))
	assert.Equal(t, 1, row.boundaryAtX(4))
	assert.Equal(t, 3, row.boundaryAtX(99))
}

func TestGalleyGlyphColor(t *testing.T) {
	g := NewMonospaceLayouter().Layout("x", TextFormat{Color: RGB(255, 0, 0)}, 0)
	require.Len(t, g.Rows[0].Glyphs, 1)
	assert.Equal(t, RGB(255, 0, 0), g.Rows[0].Glyphs[0].Color)

	g = NewMonospaceLayouter().Layout("x", TextFormat{}, 0)
	assert.Equal(t, RGB(255, 255, 255), g.Rows[0].Glyphs[0].Color, "transparent means white")
}
