package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frameloop/ui/geom"
)

func TestMemoryGetOrCreatesOnce(t *testing.T) {
	m := NewMemory()
	id := NewId(IdNil, "w")

	v := MemoryGetOr(m, id, 7)
	assert.Equal(t, 7, *v)
	*v = 42

	again := MemoryGetOr(m, id, 7)
	assert.Equal(t, 42, *again)
	assert.Same(t, v, again)
}

func TestMemoryKeysByType(t *testing.T) {
	m := NewMemory()
	id := NewId(IdNil, "w")

	*MemoryGetOr(m, id, 1) = 5
	*MemoryGetOr(m, id, "x") = "hello"

	i, ok := MemoryGet[int](m, id)
	require.True(t, ok)
	assert.Equal(t, 5, *i)
	s, ok := MemoryGet[string](m, id)
	require.True(t, ok)
	assert.Equal(t, "hello", *s)
	assert.Equal(t, 2, m.Len())
}

func TestMemoryDropsStaleEntries(t *testing.T) {
	m := NewMemory()
	id := NewId(IdNil, "w")
	MemorySet(m, id, 42)

	for i := 0; i < staleFrames; i++ {
		m.beginFrame()
		_, ok := MemoryGet[int](m, id)
		require.True(t, ok, "entry must survive %d frames untouched", i+1)
	}
	m.beginFrame()
	_, ok := MemoryGet[int](m, id)
	assert.False(t, ok, "untouched entry is dropped")
}

func TestMemoryTouchPostponesGC(t *testing.T) {
	m := NewMemory()
	id := NewId(IdNil, "w")
	MemorySet(m, id, 42)

	for i := 0; i < 20; i++ {
		m.beginFrame()
		v := MemoryGetOr(m, id, 0)
		require.Equal(t, 42, *v)
	}
}

func TestMemoryDelete(t *testing.T) {
	m := NewMemory()
	id := NewId(IdNil, "w")
	MemorySet(m, id, 42)
	MemoryDelete[int](m, id)
	_, ok := MemoryGet[int](m, id)
	assert.False(t, ok)
}

func TestPopupIsExclusive(t *testing.T) {
	m := NewMemory()
	a, b := NewId(IdNil, "a"), NewId(IdNil, "b")

	m.OpenPopup(a)
	assert.True(t, m.IsPopupOpen(a))
	m.OpenPopup(b)
	assert.False(t, m.IsPopupOpen(a))
	assert.True(t, m.IsPopupOpen(b))

	m.ClosePopup(a)
	assert.True(t, m.IsPopupOpen(b), "closing a non-open popup is a no-op")
	m.ClosePopup(b)
	assert.False(t, m.AnyPopupOpen())

	m.OpenPopup(a)
	m.ClosePopup(IdNil)
	assert.False(t, m.AnyPopupOpen(), "IdNil closes whatever is open")
}

func TestStateSnapshotRoundTrip(t *testing.T) {
	m := NewMemory()
	scrollId := NewId(IdNil, "scroll")
	resizeId := NewId(IdNil, "resize")
	gridId := NewId(IdNil, "grid")
	headerId := NewId(IdNil, "header")
	areaId := NewId(IdNil, "area")

	MemorySet(m, scrollId, ScrollAreaState{Offset: geom.V(3, 140), PinnedToBottom: true})
	MemorySet(m, resizeId, ResizeState{DesiredSize: geom.V(320, 240)})
	MemorySet(m, gridId, GridState{ColWidths: []float32{40, 120}, RowHeights: []float32{18, 18, 32}})
	MemorySet(m, headerId, collapsingState{Open: true})
	MemorySet(m, areaId, AreaState{Pos: geom.P(40, 60), placed: true})

	var buf bytes.Buffer
	require.NoError(t, m.SaveState(&buf))

	m2 := NewMemory()
	require.NoError(t, m2.LoadState(&buf))

	scroll, ok := MemoryGet[ScrollAreaState](m2, scrollId)
	require.True(t, ok)
	assert.Equal(t, geom.V(3, 140), scroll.Offset)
	assert.True(t, scroll.PinnedToBottom)

	resize, ok := MemoryGet[ResizeState](m2, resizeId)
	require.True(t, ok)
	assert.Equal(t, geom.V(320, 240), resize.DesiredSize)

	grid, ok := MemoryGet[GridState](m2, gridId)
	require.True(t, ok)
	assert.Equal(t, []float32{40, 120}, grid.ColWidths)
	assert.Equal(t, []float32{18, 18, 32}, grid.RowHeights)

	header, ok := MemoryGet[collapsingState](m2, headerId)
	require.True(t, ok)
	assert.True(t, header.Open)

	area, ok := MemoryGet[AreaState](m2, areaId)
	require.True(t, ok)
	assert.Equal(t, geom.P(40, 60), area.Pos)
	assert.True(t, area.placed)
}

func TestLoadStateToleratesUnknownKeys(t *testing.T) {
	doc := `
version = 99
future_flag = true

[future_table]
whatever = "ignored"

[scroll.00000000deadbeef]
offset_x = 1.5
offset_y = 200.0
some_new_field = 3

[collapsing]
not-a-hex-id = true
`
	m := NewMemory()
	require.NoError(t, m.LoadState(strings.NewReader(doc)))

	s, ok := MemoryGet[ScrollAreaState](m, Id(0xdeadbeef))
	require.True(t, ok)
	assert.Equal(t, geom.V(1.5, 200), s.Offset)
}

func TestLoadStateRejectsBrokenToml(t *testing.T) {
	m := NewMemory()
	assert.Error(t, m.LoadState(strings.NewReader("= not toml =")))
}
