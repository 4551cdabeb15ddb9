package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frameloop/ui/geom"
)

func TestFitRectLetterboxes(t *testing.T) {
	viewport := geom.RectFromMinSize(geom.P(0, 0), geom.V(400, 200))

	// Wide content: width limits the scale.
	content := geom.RectFromMinSize(geom.P(0, 0), geom.V(800, 100))
	tr := FitRect(viewport, content, RangeValue{})
	assert.Equal(t, float32(0.5), tr.Scaling)
	center := tr.Apply(content.Center())
	assert.InDelta(t, 200, center.X, 0.01)
	assert.InDelta(t, 100, center.Y, 0.01, "content centers in the viewport")

	// Tall content: height limits the scale.
	content = geom.RectFromMinSize(geom.P(0, 0), geom.V(100, 800))
	tr = FitRect(viewport, content, RangeValue{})
	assert.Equal(t, float32(0.25), tr.Scaling)
}

func TestFitRectClampsToZoomRange(t *testing.T) {
	viewport := geom.RectFromMinSize(geom.P(0, 0), geom.V(400, 200))
	content := geom.RectFromMinSize(geom.P(0, 0), geom.V(8000, 8000))
	tr := FitRect(viewport, content, RangeValue{Min: 0.5, Max: 4, HasRange: true})
	assert.Equal(t, float32(0.5), tr.Scaling)
}

func TestFitRectDegenerateContent(t *testing.T) {
	viewport := geom.RectFromMinSize(geom.P(0, 0), geom.V(400, 200))
	tr := FitRect(viewport, geom.Rect{}, RangeValue{})
	assert.Equal(t, geom.TSIdentity(), tr)
}

func TestZoomAroundKeepsThePointFixed(t *testing.T) {
	tr := geom.TSTransform{Scaling: 1.5, Translation: geom.V(30, -12)}
	p := geom.P(100, 80)
	q := tr.Inverse().Apply(p) // the scene point under the pointer

	zoomed := zoomAround(tr, p, 1.25, RangeValue{})
	got := zoomed.Apply(q)
	assert.InDelta(t, p.X, got.X, 0.001)
	assert.InDelta(t, p.Y, got.Y, 0.001)
	assert.InDelta(t, 1.875, zoomed.Scaling, 0.001)
}

func TestZoomAroundReanchorsWhenClamped(t *testing.T) {
	tr := geom.TSTransform{Scaling: 2, Translation: geom.V(0, 0)}
	p := geom.P(50, 50)
	q := tr.Inverse().Apply(p)

	// Asking for 4x but the range caps at 3x.
	zoomed := zoomAround(tr, p, 2, RangeValue{Min: 0.5, Max: 3, HasRange: true})
	assert.InDelta(t, 3, zoomed.Scaling, 0.001)
	got := zoomed.Apply(q)
	assert.InDelta(t, p.X, got.X, 0.001, "the fixed point survives the clamp")
	assert.InDelta(t, p.Y, got.Y, 0.001)
}

func TestSceneFitsOnFirstValidFrame(t *testing.T) {
	h := newHarness()
	var tr geom.TSTransform
	build := func(ctx *Context) {
		ctx.Scene("map", &tr, WithHeight(200))(func() {
			ctx.AllocateSpace(geom.V(100, 100))
		})
	}

	// First frame: no bounds yet, the transform falls back to identity.
	h.frame(build)
	require.True(t, tr.IsValid())

	// Invalidate so the next frame refits from the measured bounds.
	tr = geom.TSTransform{}
	h.frame(build)
	assert.True(t, tr.IsValid())
	assert.Greater(t, tr.Scaling, float32(0))
}

func TestScenePansWithDrag(t *testing.T) {
	h := newHarness()
	tr := geom.TSIdentity()
	var viewport geom.Rect
	build := func(ctx *Context) {
		pos := ctx.CursorPos()
		size := ctx.AvailableSize()
		viewport = geom.RectFromMinSize(pos, geom.V(size.X, 200))
		ctx.Scene("map", &tr, WithHeight(200))(func() {
			ctx.AllocateSpace(geom.V(100, 100))
		})
	}

	h.frame(build)
	start := viewport.Center()
	h.press(start)
	h.frame(build)
	h.move(start.Add(geom.V(25, -10)))
	h.frame(build)
	h.release(start.Add(geom.V(25, -10)))
	h.frame(build)

	assert.InDelta(t, 25, tr.Translation.X, 0.5)
	assert.InDelta(t, -10, tr.Translation.Y, 0.5)
	assert.Equal(t, float32(1), tr.Scaling, "panning never zooms")
}

func TestSceneZoomsOnModifiedWheel(t *testing.T) {
	h := newHarness()
	tr := geom.TSIdentity()
	var viewport geom.Rect
	build := func(ctx *Context) {
		pos := ctx.CursorPos()
		size := ctx.AvailableSize()
		viewport = geom.RectFromMinSize(pos, geom.V(size.X, 200))
		ctx.Scene("map", &tr, WithHeight(200))(func() {
			ctx.AllocateSpace(geom.V(100, 100))
		})
	}

	h.frame(build)
	at := viewport.Center()
	h.move(at)
	h.frame(build)

	h.mods = Modifiers{Ctrl: true, Command: true}
	h.queue = append(h.queue, MouseWheelEvent{
		Unit:      UnitPoint,
		Delta:     geom.V(0, 60),
		Modifiers: h.mods,
	})
	h.frame(build)
	h.mods = Modifiers{}

	local := at.SubVec(viewport.Min.ToVec())
	scene := geom.TSIdentity().Inverse().Apply(local)
	assert.Greater(t, tr.Scaling, float32(1), "wheel up with the zoom modifier zooms in")
	got := tr.Apply(scene)
	assert.InDelta(t, local.X, got.X, 0.5, "the point under the pointer stays put")
	assert.InDelta(t, local.Y, got.Y, 0.5)
}
