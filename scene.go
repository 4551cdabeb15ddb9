package ui

import "github.com/frameloop/ui/geom"

// sceneState remembers the measured content bounds so a degenerate
// transform can recover by refitting.
type sceneState struct {
	Bounds geom.Rect
}

// FitRect returns the transform that letterboxes content into viewport:
// uniform scale of min(width ratio, height ratio), centered. The scale
// clamps to zoomRange. Degenerate content yields the identity.
func FitRect(viewport, content geom.Rect, zoomRange RangeValue) geom.TSTransform {
	if !content.IsPositive() || !viewport.IsPositive() {
		return geom.TSIdentity()
	}
	scale := min(viewport.Width()/content.Width(), viewport.Height()/content.Height())
	if zoomRange.HasRange {
		scale = geom.Clamp(scale, zoomRange.Min, zoomRange.Max)
	}
	vc := viewport.Size().Scale(0.5)
	cc := content.Center()
	return geom.TSTransform{
		Scaling:     scale,
		Translation: vc.Sub(cc.ToVec().Scale(scale)),
	}
}

// zoomAround scales t by factor keeping the viewport-local point p
// fixed, clamping the resulting scale to zoomRange. Clamping re-derives
// the factor so the fixed-point property survives it.
func zoomAround(t geom.TSTransform, p geom.Pos2, factor float32, zoomRange RangeValue) geom.TSTransform {
	if zoomRange.HasRange {
		clamped := geom.Clamp(t.Scaling*factor, zoomRange.Min, zoomRange.Max)
		factor = clamped / t.Scaling
	}
	pv := p.ToVec()
	return geom.TSFromTranslation(pv).
		Mul(geom.TSFromScaling(factor)).
		Mul(geom.TSFromTranslation(pv.Neg())).
		Mul(t)
}

// Scene is a pan-and-zoom canvas: the contents lay out in their own
// scene coordinate system and transform maps scene points to
// viewport-local points. The caller owns transform and passes it back
// every frame; Scene updates it from drags and zoom gestures.
//
//	ctx.Scene("map", &mapTransform)(func() {
//	    ctx.Painter().CircleFilled(geom.P(0, 0), 10, ui.RGB(200, 60, 60))
//	})
func (ctx *Context) Scene(source any, transform *geom.TSTransform, opts ...Option) func(func()) {
	o := applyOptions(opts)
	return func(contents func()) {
		ctx.sceneImpl(source, transform, o, contents)
	}
}

func (ctx *Context) sceneImpl(source any, transform *geom.TSTransform, o options, contents func()) {
	id := ctx.MakeId(source)
	state := MemoryGetOr(ctx.mem, id, sceneState{})
	zoomRange := GetOpt(o, OptZoomRange)

	size := ctx.AvailableSize()
	if w := GetOpt(o, OptWidth); w > 0 {
		size.X = w
	}
	if h := GetOpt(o, OptHeight); h > 0 {
		size.Y = h
	}
	viewport := ctx.AllocateSpace(size)

	if !transform.IsValid() || transform.Scaling <= 0 {
		// Bad persisted data or a first frame: refit from what the
		// content covered last time, or fall back to identity.
		*transform = FitRect(geom.RectFromMinSize(geom.Pos2Zero, viewport.Size()), state.Bounds, zoomRange)
	}

	// scene -> screen
	toScreen := geom.TSFromTranslation(viewport.Min.ToVec()).Mul(*transform)

	localViewport := toScreen.Inverse().ApplyRect(viewport)
	ctx.PushId(id)
	ctx.pushTransform(toScreen)
	ctx.pushRegionClipped(localViewport, localViewport, layoutVertical)
	contents()
	used := ctx.popRegion()
	ctx.popTransform()
	ctx.PopId()

	if used.IsPositive() {
		state.Bounds = used
	}

	// Background interactions, in screen coordinates.
	resp := ctx.Interact(viewport, NewId(id, "bg"), SenseClickAndDrag())
	if resp.Dragged() {
		transform.Translation = transform.Translation.Add(resp.DragDelta)
		ctx.RequestRepaint()
	}
	if resp.DoubleClicked() {
		*transform = FitRect(geom.RectFromMinSize(geom.Pos2Zero, viewport.Size()), state.Bounds, zoomRange)
		ctx.RequestRepaint()
	}
	if resp.Hovered {
		if delta := ctx.input.ConsumeScrollDelta(true, true); delta != (geom.Vec2{}) {
			transform.Translation = transform.Translation.Add(delta)
			ctx.RequestRepaint()
		}
		if factor := ctx.input.ZoomDelta(); factor != 1 {
			if pos, ok := ctx.input.Pointer.InteractPos(); ok {
				local := pos.SubVec(viewport.Min.ToVec())
				*transform = zoomAround(*transform, local, factor, zoomRange)
				ctx.RequestRepaint()
			}
		}
	}
	if zoomRange.HasRange {
		transform.Scaling = geom.Clamp(transform.Scaling, zoomRange.Min, zoomRange.Max)
	}
}
