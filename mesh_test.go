package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frameloop/ui/geom"
)

func TestMeshAddColoredRect(t *testing.T) {
	var m Mesh
	rect := geom.RectFromMinSize(geom.P(10, 20), geom.V(30, 40))
	m.AddColoredRect(rect, ColorRed)

	assert.Len(t, m.Vertices, 4)
	assert.Len(t, m.Indices, 6)
	assert.True(t, m.IsValid())
	assert.Equal(t, rect, m.CalcBounds())
	for _, v := range m.Vertices {
		assert.Equal(t, WhiteUV, v.UV)
	}

	m.Translate(geom.V(5, -5))
	assert.Equal(t, rect.Translate(geom.V(5, -5)), m.CalcBounds())
}

func TestMeshAppendRebasesIndices(t *testing.T) {
	var a, b Mesh
	b.Texture = TextureId(3)
	b.AddColoredRect(geom.RectFromMinSize(geom.P(0, 0), geom.V(10, 10)), ColorWhite)

	// Appending into an empty mesh adopts the texture.
	a.Append(&b)
	assert.Equal(t, TextureId(3), a.Texture)
	require.Len(t, a.Indices, 6)

	a.Append(&b)
	require.Len(t, a.Vertices, 8)
	require.Len(t, a.Indices, 12)
	for _, idx := range a.Indices[6:] {
		assert.GreaterOrEqual(t, idx, uint32(4), "appended triangles index the appended vertices")
	}
	assert.True(t, a.IsValid())
}

func TestMeshAppendTextureMismatch(t *testing.T) {
	var a, b Mesh
	a.Texture = TextureId(1)
	a.AddColoredRect(geom.RectFromMinSize(geom.P(0, 0), geom.V(1, 1)), ColorWhite)
	b.Texture = TextureId(2)
	b.AddColoredRect(geom.RectFromMinSize(geom.P(0, 0), geom.V(1, 1)), ColorWhite)

	a.Append(&b)
	assert.Len(t, a.Indices, 6, "mismatched triangles are dropped")

	prev := DebugChecks
	DebugChecks = true
	defer func() { DebugChecks = prev }()
	assert.Panics(t, func() { a.Append(&b) })
}

func TestMeshSplitToU16Small(t *testing.T) {
	var m Mesh
	m.AddColoredRect(geom.RectFromMinSize(geom.P(0, 0), geom.V(10, 10)), ColorWhite)
	m.AddColoredRect(geom.RectFromMinSize(geom.P(20, 0), geom.V(10, 10)), ColorWhite)

	chunks, err := m.SplitToU16()
	require.NoError(t, err)
	require.Len(t, chunks, 1)
	assert.Len(t, chunks[0].Vertices, 8)
	require.Len(t, chunks[0].Indices, 12)
	for i, idx := range m.Indices {
		assert.Equal(t, uint16(idx), chunks[0].Indices[i])
	}

	var empty Mesh
	chunks, err = empty.SplitToU16()
	require.NoError(t, err)
	assert.Nil(t, chunks)
}

func TestMeshSplitToU16CutsLargeMeshes(t *testing.T) {
	var m Mesh
	// One more rect than fits a 16-bit index span.
	for i := 0; i <= maxU16Vertices/4; i++ {
		m.AddColoredRect(geom.RectFromMinSize(geom.P(float32(i), 0), geom.V(1, 1)), ColorWhite)
	}

	chunks, err := m.SplitToU16()
	require.NoError(t, err)
	require.Len(t, chunks, 2)
	assert.Len(t, chunks[0].Vertices, maxU16Vertices)
	assert.Len(t, chunks[0].Indices, maxU16Vertices/4*6)

	// The last rect lands alone in the second chunk, rebased to zero.
	assert.Len(t, chunks[1].Vertices, 4)
	assert.Equal(t, []uint16{0, 1, 2, 2, 1, 3}, chunks[1].Indices)
}

func TestFrameOutputSmoke(t *testing.T) {
	h := newHarness()
	out := h.frame(func(ctx *Context) {
		ctx.Label("hello")
		ctx.Button("Press")
		ctx.Separator()
	})

	require.NotEmpty(t, out.Primitives)
	for _, pr := range out.Primitives {
		assert.True(t, pr.ClipRect.IsPositive())
		require.NotNil(t, pr.Mesh)
		assert.False(t, pr.Mesh.IsEmpty())
		assert.True(t, pr.Mesh.IsValid())
		assert.Equal(t, 0, len(pr.Mesh.Indices)%3)
	}
	assert.Equal(t, float32(1), out.PixelsPerPoint)

	// The font atlas uploads with the first frame only.
	assert.NotEmpty(t, out.TexturesDelta.Set)
	out = h.frame(func(ctx *Context) { ctx.Label("hello") })
	assert.True(t, out.TexturesDelta.IsEmpty())
}

func TestCursorIconNames(t *testing.T) {
	assert.Equal(t, "default", CursorDefault.String())
	assert.Equal(t, "grabbing", CursorGrabbing.String())
	assert.Equal(t, "unknown", CursorIcon(99).String())
}

func TestMeshIsValidCatchesStrayIndices(t *testing.T) {
	var m Mesh
	m.AddColoredRect(geom.RectFromMinSize(geom.P(0, 0), geom.V(1, 1)), ColorWhite)
	require.True(t, m.IsValid())

	m.Indices[0] = 4
	assert.False(t, m.IsValid())
}

func TestMeshSplitToU16RejectsOversizedTriangles(t *testing.T) {
	m := Mesh{
		Vertices: make([]Vertex, maxU16Vertices+4),
		Indices:  []uint32{0, 1, maxU16Vertices + 3},
	}
	require.True(t, m.IsValid())

	_, err := m.SplitToU16()
	assert.ErrorIs(t, err, ErrTriangleTooLarge)
}
