package ui

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frameloop/ui/geom"
)

func TestScrollAreaWheelScrollsWhenHovered(t *testing.T) {
	h := newHarness()
	var id Id
	var firstLine geom.Pos2
	build := func(ctx *Context) {
		id = ctx.MakeId("log")
		ctx.ScrollArea("log", WithMaxHeight(100), NoAutoShrink())(func() {
			for i := 0; i < 50; i++ {
				r := ctx.Label(fmt.Sprintf("line %d", i))
				if i == 0 {
					firstLine = r.Rect.Center()
				}
			}
		})
	}

	h.frame(build)
	state, ok := MemoryGet[ScrollAreaState](h.ctx.Memory(), id)
	require.True(t, ok)
	assert.Zero(t, state.Offset.Y)
	maxOffset := state.ContentSize.Y - 100

	h.move(firstLine)
	h.frame(build)
	h.wheel(geom.V(0, -24))
	h.frame(build)
	assert.InDelta(t, 24, state.Offset.Y, 0.01, "wheel down scrolls the content up")

	// Scrolling past either end clamps.
	h.wheel(geom.V(0, 10000))
	h.frame(build)
	assert.Zero(t, state.Offset.Y)
	h.wheel(geom.V(0, -100000))
	h.frame(build)
	assert.InDelta(t, maxOffset, state.Offset.Y, 1)
}

func TestScrollAreaIgnoresWheelWhenNotHovered(t *testing.T) {
	h := newHarness()
	var id Id
	build := func(ctx *Context) {
		id = ctx.MakeId("log")
		ctx.ScrollArea("log", WithMaxHeight(100), NoAutoShrink())(func() {
			for i := 0; i < 50; i++ {
				ctx.Label(fmt.Sprintf("line %d", i))
			}
		})
	}

	h.frame(build)
	h.move(geom.P(790, 590))
	h.frame(build)
	h.wheel(geom.V(0, -24))
	h.frame(build)

	state, ok := MemoryGet[ScrollAreaState](h.ctx.Memory(), id)
	require.True(t, ok)
	assert.Zero(t, state.Offset.Y)
}

func TestScrollAreaSticksToBottom(t *testing.T) {
	h := newHarness()
	var id Id
	var firstLine geom.Pos2
	lines := 30
	build := func(ctx *Context) {
		id = ctx.MakeId("log")
		ctx.ScrollArea("log", WithMaxHeight(100), NoAutoShrink(), StickToBottom())(func() {
			for i := 0; i < lines; i++ {
				r := ctx.Label(fmt.Sprintf("line %d", i))
				if i == 0 {
					firstLine = r.Rect.Center()
				}
			}
		})
	}

	h.frame(build)
	h.move(firstLine)
	h.frame(build)
	h.wheel(geom.V(0, -100000))
	h.frame(build)

	state, ok := MemoryGet[ScrollAreaState](h.ctx.Memory(), id)
	require.True(t, ok)
	require.True(t, state.PinnedToBottom)
	bottomAt30 := state.Offset.Y

	lines = 60
	h.frame(build)
	h.frame(build)
	assert.Greater(t, state.Offset.Y, bottomAt30, "growth keeps the view at the end")
	assert.InDelta(t, state.ContentSize.Y-100, state.Offset.Y, 1)
	assert.True(t, state.PinnedToBottom)

	// Scrolling back up unpins.
	h.wheel(geom.V(0, 10000))
	h.frame(build)
	assert.False(t, state.PinnedToBottom)
}

func TestScrollRowsBuildsOnlyTheVisibleRange(t *testing.T) {
	h := newHarness()
	var id Id
	var got [2]int
	build := func(ctx *Context) {
		id = ctx.MakeId("rows")
		ctx.ScrollArea("rows", WithMaxHeight(100), NoAutoShrink())(func() {
			ctx.ScrollRows(20, 1000, func(first, last int) {
				got = [2]int{first, last}
			})
		})
	}

	h.frame(build)
	assert.Equal(t, 0, got[0])
	assert.Greater(t, got[1], 0)
	assert.Less(t, got[1], 20, "only a viewportful of rows is built")

	step := 20 + h.ctx.Style().Spacing.ItemSpacing.Y
	state, ok := MemoryGet[ScrollAreaState](h.ctx.Memory(), id)
	require.True(t, ok)
	state.Offset.Y = 10*step + 1
	h.frame(build)
	assert.Equal(t, 10, got[0], "scrolled rows are skipped exactly")
	assert.Less(t, got[1]-got[0], 20)
}

func TestScrollToRectBringsTheTargetIntoView(t *testing.T) {
	h := newHarness()
	var id Id
	build := func(ctx *Context) {
		id = ctx.MakeId("view")
		ctx.ScrollArea("view", WithMaxHeight(100), NoAutoShrink())(func() {
			ctx.AllocateSpace(geom.V(10, 500))
			target := ctx.AllocateSpace(geom.V(10, 20))
			ctx.ScrollToRect(target)
			ctx.AllocateSpace(geom.V(10, 300))
		})
	}

	h.frame(build)
	state, ok := MemoryGet[ScrollAreaState](h.ctx.Memory(), id)
	require.True(t, ok)
	sp := h.ctx.Style().Spacing.ItemSpacing.Y
	assert.InDelta(t, 500+sp+20-100, state.Offset.Y, 0.5, "the target's bottom edge lands at the viewport's bottom")

	// Once in view the target stops asking.
	before := state.Offset.Y
	h.frames(2, build)
	assert.Equal(t, before, state.Offset.Y)
}

func TestScrollOffsetClampsWhenContentShrinks(t *testing.T) {
	h := newHarness()
	var id Id
	lines := 50
	build := func(ctx *Context) {
		id = ctx.MakeId("log")
		ctx.ScrollArea("log", WithMaxHeight(100), NoAutoShrink())(func() {
			for i := 0; i < lines; i++ {
				ctx.Label(fmt.Sprintf("line %d", i))
			}
		})
	}

	h.frame(build)
	state, ok := MemoryGet[ScrollAreaState](h.ctx.Memory(), id)
	require.True(t, ok)
	h.move(geom.P(100, 50))
	h.frame(build)
	h.wheel(geom.V(0, -100000))
	h.frame(build)
	require.Greater(t, state.Offset.Y, float32(500))

	lines = 10
	h.frames(2, build)
	assert.InDelta(t, state.ContentSize.Y-100, state.Offset.Y, 1,
		"offset clamps to the shrunken content's end")
	assert.Less(t, state.Offset.Y, float32(200))
}

func TestFlingDecaysAndStops(t *testing.T) {
	h := newHarness()
	var id Id
	build := func(ctx *Context) {
		id = ctx.MakeId("feed")
		ctx.ScrollArea("feed", WithMaxHeight(100), NoAutoShrink(), DragToScroll())(func() {
			for i := 0; i < 200; i++ {
				ctx.Label(fmt.Sprintf("line %d", i))
			}
		})
	}

	h.frame(build)
	state, ok := MemoryGet[ScrollAreaState](h.ctx.Memory(), id)
	require.True(t, ok)

	// A fast upward drag, then release.
	h.press(geom.P(100, 90))
	h.frame(build)
	for y := float32(70); y >= 10; y -= 20 {
		h.move(geom.P(100, y))
		h.frame(build)
	}
	dragged := state.Offset.Y
	require.Greater(t, dragged, float32(50), "the drag itself scrolls the content")

	h.release(geom.P(100, 10))
	h.frame(build)
	require.NotEqual(t, geom.Vec2{}, state.Vel, "releasing a fast drag starts a fling")

	h.frames(10, build)
	coasted := state.Offset.Y
	assert.Greater(t, coasted, dragged, "the fling keeps scrolling after release")

	h.frames(150, build)
	assert.Equal(t, geom.Vec2{}, state.Vel, "friction stops the fling")
	stopped := state.Offset.Y
	h.frames(2, build)
	assert.Equal(t, stopped, state.Offset.Y)
}

func TestScrollBlocksEstimateSelfCorrects(t *testing.T) {
	h := newHarness()
	var id Id
	var built []int
	blockH := float32(30)
	build := func(ctx *Context) {
		built = built[:0]
		id = ctx.MakeId("blocks")
		ctx.ScrollArea("blocks", WithMaxHeight(100), NoAutoShrink())(func() {
			ctx.ScrollBlocks(100, func(i int) {
				built = append(built, i)
				ctx.AllocateSpace(geom.V(50, blockH))
			})
		})
	}

	h.frame(build)
	state, ok := MemoryGet[ScrollAreaState](h.ctx.Memory(), id)
	require.True(t, ok)
	assert.Equal(t, float32(30), state.FirstShownBlockSize)
	require.NotEmpty(t, built)
	assert.Equal(t, 0, built[0])
	assert.Less(t, len(built), 10, "only the visible blocks run")

	sp := h.ctx.Style().Spacing.ItemSpacing.Y
	step := blockH + sp
	state.Offset.Y = 10 * step
	h.frame(build)
	assert.Equal(t, 10, state.FirstToShow)
	assert.Equal(t, 10, built[0])

	// Taller blocks: the first frame still uses the stale estimate, the
	// measured size corrects the range one frame later.
	blockH = 50
	out := h.frame(build)
	assert.Equal(t, 10, built[0])
	assert.Equal(t, float32(50), state.FirstShownBlockSize)
	assert.True(t, out.RepaintRequested)

	h.frame(build)
	assert.Equal(t, int(10*step/(50+sp)), state.FirstToShow)
}
