package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frameloop/ui/geom"
)

func TestButtonClickLifecycle(t *testing.T) {
	h := newHarness()
	var rect geom.Rect
	clicks := 0
	build := func(ctx *Context) {
		resp := ctx.Button("Save")
		rect = resp.Rect
		if resp.Clicked() {
			clicks++
		}
	}

	h.frame(build)
	require.True(t, rect.IsPositive())

	h.click(rect.Center(), build)
	assert.Equal(t, 1, clicks)

	// Press inside, release far outside: no click.
	h.press(rect.Center())
	h.frame(build)
	h.move(rect.Center().Add(geom.V(200, 0)))
	h.frame(build)
	h.release(rect.Center().Add(geom.V(200, 0)))
	h.frame(build)
	assert.Equal(t, 1, clicks)
}

func TestOnlyThePressedWidgetClicks(t *testing.T) {
	h := newHarness()
	var rectA, rectB geom.Rect
	var clickedA, clickedB bool
	build := func(ctx *Context) {
		a := ctx.Button("A")
		b := ctx.Button("B")
		rectA, rectB = a.Rect, b.Rect
		clickedA = clickedA || a.Clicked()
		clickedB = clickedB || b.Clicked()
	}

	h.frame(build)
	require.False(t, rectA.Intersects(rectB))
	h.click(rectA.Center(), build)
	assert.True(t, clickedA)
	assert.False(t, clickedB)
}

func TestDisabledWidgetNeverClicks(t *testing.T) {
	h := newHarness()
	var rect geom.Rect
	clicked := false
	build := func(ctx *Context) {
		resp := ctx.Button("Delete", WithDisabled(true))
		rect = resp.Rect
		clicked = clicked || resp.Clicked()
	}
	h.frame(build)
	h.click(rect.Center(), build)
	assert.False(t, clicked)
}

// A full-surface catch-all registered after its content must not steal
// the press from the content widget.
func TestFirstRegisteredWidgetOwnsThePress(t *testing.T) {
	h := newHarness()
	inner := geom.RectFromMinSize(geom.P(100, 100), geom.V(50, 20))
	outer := geom.RectFromMinSize(geom.P(50, 50), geom.V(300, 300))

	var innerClicked, outerClicked, outerDragged bool
	build := func(ctx *Context) {
		ri := ctx.Interact(inner, ctx.MakeId("inner"), SenseClick())
		ro := ctx.Interact(outer, ctx.MakeId("outer"), SenseClickAndDrag())
		innerClicked = innerClicked || ri.Clicked()
		outerClicked = outerClicked || ro.Clicked()
		outerDragged = outerDragged || ro.Dragged()
	}

	h.frame(build)
	h.click(inner.Center(), build)
	assert.True(t, innerClicked)
	assert.False(t, outerClicked)

	// A drag starting on the click-only inner widget falls through to the
	// drag-sensing background.
	h.press(inner.Center())
	h.frame(build)
	h.move(inner.Center().Add(geom.V(60, 0)))
	h.frame(build)
	assert.True(t, outerDragged)
}

func TestClickAndDragWaitsForTheClickWindow(t *testing.T) {
	h := newHarness()
	rect := geom.RectFromMinSize(geom.P(100, 100), geom.V(80, 40))

	var resp Response
	build := func(ctx *Context) {
		resp = ctx.Interact(rect, ctx.MakeId("pane"), SenseClickAndDrag())
	}

	h.frame(build)
	h.press(rect.Center())
	h.frame(build)
	assert.False(t, resp.Dragged(), "a fresh press could still be a click")

	h.move(rect.Center().Add(geom.V(30, 0)))
	h.frame(build)
	assert.True(t, resp.DragStarted())
	assert.True(t, resp.Dragged())
	assert.Equal(t, geom.V(30, 0), resp.DragDelta)

	// The drag captures the pointer even outside the rect.
	h.move(geom.P(700, 500))
	h.frame(build)
	assert.True(t, resp.Dragged())
	assert.False(t, resp.DragStarted())

	h.release(geom.P(700, 500))
	h.frame(build)
	assert.True(t, resp.DragStopped())
	assert.False(t, resp.Dragged())
}

func TestDragOnlyWidgetGrabsAtPress(t *testing.T) {
	h := newHarness()
	rect := geom.RectFromMinSize(geom.P(100, 100), geom.V(80, 40))
	var resp Response
	build := func(ctx *Context) {
		resp = ctx.Interact(rect, ctx.MakeId("slider"), SenseDrag())
	}
	h.frame(build)
	h.press(rect.Center())
	h.frame(build)
	assert.True(t, resp.DragStarted())
}

func TestDraggingSuppressesHoverElsewhere(t *testing.T) {
	h := newHarness()
	a := geom.RectFromMinSize(geom.P(100, 100), geom.V(80, 40))
	b := geom.RectFromMinSize(geom.P(300, 100), geom.V(80, 40))
	var hoveredB bool
	build := func(ctx *Context) {
		ctx.Interact(a, ctx.MakeId("a"), SenseDrag())
		hoveredB = ctx.Interact(b, ctx.MakeId("b"), SenseHover()).Hovered
	}
	h.frame(build)
	h.press(a.Center())
	h.frame(build)
	h.move(b.Center())
	h.frame(build)
	assert.False(t, hoveredB, "the drag owner captures the pointer")
}

func TestHoverRequiresTopLayer(t *testing.T) {
	h := newHarness()
	rect := geom.RectFromMinSize(geom.P(100, 100), geom.V(80, 40))
	var hovered bool
	build := func(ctx *Context) {
		hovered = ctx.Interact(rect, ctx.MakeId("under"), SenseHover()).Hovered
		// A foreground area covering the same spot takes the pointer.
		ctx.Area("popup", AtPos(geom.P(80, 80)), OnOrder(OrderForeground))(func() {
			ctx.AllocateSpace(geom.V(200, 200))
		})
	}
	h.move(rect.Center())
	h.frames(3, build)
	assert.False(t, hovered)
}

func TestResponseUnion(t *testing.T) {
	a := Response{Rect: geom.RectFromMinSize(geom.P(0, 0), geom.V(10, 10)), Hovered: true}
	b := Response{Rect: geom.RectFromMinSize(geom.P(10, 0), geom.V(10, 10))}
	b.clicked[PointerPrimary] = true

	u := a.Union(b)
	assert.True(t, u.Hovered)
	assert.True(t, u.Clicked())
	assert.Equal(t, float32(20), u.Rect.Width())
}

func TestKeyboardActivation(t *testing.T) {
	h := newHarness()
	clicks := 0
	build := func(ctx *Context) {
		if ctx.Button("OK").Clicked() {
			clicks++
		}
	}
	h.frame(build)
	// Tab focuses the only button, Enter activates it.
	h.key(KeyTab, Modifiers{})
	h.mods = Modifiers{}
	h.frame(build)
	h.key(KeyEnter, Modifiers{})
	h.mods = Modifiers{}
	h.frame(build)
	assert.Equal(t, 1, clicks)
}

func TestResponseUnionLayerMismatchPanicsUnderDebugChecks(t *testing.T) {
	a := Response{Layer: LayerId{Order: OrderMiddle}}
	b := Response{Layer: LayerId{Order: OrderForeground}}

	assert.NotPanics(t, func() { a.Union(b) })

	prev := DebugChecks
	DebugChecks = true
	defer func() { DebugChecks = prev }()
	assert.Panics(t, func() { a.Union(b) })
}
