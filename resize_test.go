package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frameloop/ui/geom"
)

func TestResizeDragGrowsTheRegion(t *testing.T) {
	h := newHarness()
	var id Id
	var frameRect geom.Rect
	build := func(ctx *Context) {
		id = ctx.MakeId("panel")
		pos := ctx.CursorPos()
		ctx.Resize("panel", WithDefaultSize(geom.V(200, 150)))(func() {
			ctx.AllocateSpace(geom.V(50, 50))
		})
		frameRect = geom.RectFromMinSize(pos, geom.V(200, 150))
	}

	h.frame(build)
	state, ok := MemoryGet[ResizeState](h.ctx.Memory(), id)
	require.True(t, ok)
	assert.Equal(t, geom.V(200, 150), state.DesiredSize)

	corner := h.ctx.Style().Visuals.ResizeCornerSize
	grip := geom.P(frameRect.Max.X-corner/2, frameRect.Max.Y-corner/2)

	h.press(grip)
	h.frame(build)
	h.move(grip.Add(geom.V(40, 25)))
	h.frame(build)
	h.release(grip.Add(geom.V(40, 25)))
	h.frame(build)

	assert.InDelta(t, 240, state.DesiredSize.X, 0.5)
	assert.InDelta(t, 175, state.DesiredSize.Y, 0.5)
}

func TestResizeDoubleClickResetsToDefault(t *testing.T) {
	h := newHarness()
	var id Id
	var frameRect geom.Rect
	build := func(ctx *Context) {
		id = ctx.MakeId("panel")
		pos := ctx.CursorPos()
		ctx.Resize("panel", WithDefaultSize(geom.V(200, 150)))(func() {
			ctx.AllocateSpace(geom.V(50, 50))
		})
		state, _ := MemoryGet[ResizeState](ctx.Memory(), ctx.MakeId("panel"))
		frameRect = geom.RectFromMinSize(pos, state.DesiredSize)
	}

	h.frame(build)
	state, ok := MemoryGet[ResizeState](h.ctx.Memory(), id)
	require.True(t, ok)
	state.DesiredSize = geom.V(320, 260)
	h.frame(build)

	corner := h.ctx.Style().Visuals.ResizeCornerSize
	grip := geom.P(frameRect.Max.X-corner/2, frameRect.Max.Y-corner/2)
	h.click(grip, build)
	h.click(grip, build)

	assert.Equal(t, geom.V(200, 150), state.DesiredSize)
}

func TestResizeGrowsToFitContent(t *testing.T) {
	h := newHarness()
	var id Id
	build := func(ctx *Context) {
		id = ctx.MakeId("panel")
		ctx.Resize("panel", WithDefaultSize(geom.V(100, 60)))(func() {
			ctx.AllocateSpace(geom.V(180, 90))
		})
	}

	h.frame(build)
	state, ok := MemoryGet[ResizeState](h.ctx.Memory(), id)
	require.True(t, ok)
	assert.Equal(t, float32(180), state.DesiredSize.X)
	assert.Equal(t, float32(90), state.DesiredSize.Y)
}

func TestResizeProgrammaticRequest(t *testing.T) {
	h := newHarness()
	var id Id
	build := func(ctx *Context) {
		id = ctx.MakeId("panel")
		ctx.Resize("panel", WithDefaultSize(geom.V(100, 60)))(func() {
			ctx.AllocateSpace(geom.V(10, 10))
		})
	}

	h.frame(build)
	state, _ := MemoryGet[ResizeState](h.ctx.Memory(), id)
	want := geom.V(300, 200)
	state.RequestedSize = &want
	h.frame(build)
	assert.Equal(t, want, state.DesiredSize)
	assert.Nil(t, state.RequestedSize, "the request is one-shot")
}

func TestResizeRespectsMinAndMax(t *testing.T) {
	h := newHarness()
	var id Id
	var inner geom.Vec2
	build := func(ctx *Context) {
		id = ctx.MakeId("panel")
		ctx.Resize("panel",
			WithDefaultSize(geom.V(100, 100)),
			WithMinSize(geom.V(80, 80)),
			WithMaxSize(geom.V(120, 120)),
		)(func() {
			inner = ctx.AvailableSize()
			ctx.AllocateSpace(geom.V(10, 10))
		})
	}

	h.frame(build)
	state, _ := MemoryGet[ResizeState](h.ctx.Memory(), id)
	tiny := geom.V(5, 5)
	state.RequestedSize = &tiny
	h.frames(2, build)
	assert.Equal(t, geom.V(80, 80), inner, "the laid-out region clamps to the minimum")

	huge := geom.V(900, 900)
	state.RequestedSize = &huge
	h.frames(2, build)
	assert.Equal(t, geom.V(120, 120), inner, "and to the maximum")
}
