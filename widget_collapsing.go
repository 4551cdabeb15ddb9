package ui

import "github.com/frameloop/ui/geom"

// collapsingState persists the open flag of a CollapsingHeader.
type collapsingState struct {
	Open bool
}

// CollapsingHeader shows a clickable header that expands and collapses
// its body, with an animated reveal. The open state persists in Memory
// unless bound to a caller variable with OpenState.
//
//	ctx.CollapsingHeader("Advanced")(func() {
//	    ctx.Checkbox("Verbose logging", &cfg.Verbose)
//	})
func (ctx *Context) CollapsingHeader(label string, opts ...Option) func(func()) {
	o := applyOptions(opts)
	return func(body func()) {
		ctx.collapsingImpl(label, o, body)
	}
}

func (ctx *Context) collapsingImpl(label string, o options, body func()) {
	id := ctx.widgetId(label, o)
	style := ctx.style

	bound := GetOpt(o, OptOpen)
	state := MemoryGetOr(ctx.mem, id, collapsingState{Open: GetOpt(o, OptDefaultOpen)})
	open := state.Open
	if bound.Ptr != nil {
		open = *bound.Ptr
	}

	galley := ctx.layouter.Layout(label, TextFormat{Size: style.Text.Body}, -1)
	pad := style.Spacing.ButtonPadding
	iconW := style.Spacing.IconWidth
	w := ctx.AvailableWidth()
	if !isFinite32(w) {
		w = iconW + style.Spacing.IconSpacing + galley.Size.X + 2*pad.X
	}
	rect := ctx.AllocateSpace(geom.V(w, max(galley.Size.Y+2*pad.Y, style.Spacing.InteractSize.Y)))

	ctx.mem.InterestedInFocus(id)
	resp := ctx.Interact(rect, id, SenseClick())
	ctx.activateOnKey(&resp)
	if resp.Clicked() {
		open = !open
		resp.MarkChanged()
		ctx.RequestRepaint()
	}
	state.Open = open
	if bound.Ptr != nil {
		*bound.Ptr = open
	}

	// 0 closed, 1 open; the triangle rotates with it and the body
	// reveals proportionally.
	t := ctx.AnimateBool(NewId(id, "open"), open)

	wv := style.InteractVisuals(resp)
	painter := ctx.Painter()
	painter.RectFilled(rect, wv.Rounding, wv.BgFill)

	center := geom.P(rect.Min.X+pad.X+iconW/2, rect.Center().Y)
	paintOpenTriangle(painter, center, iconW*0.35, t, wv.FgColor)
	textPos := geom.P(rect.Min.X+pad.X+iconW+style.Spacing.IconSpacing, rect.Center().Y-galley.Size.Y/2)
	painter.Galley(textPos, galley, wv.FgColor)

	if t <= 0 {
		return
	}
	if t >= 1 {
		ctx.Indented(body)
		return
	}
	// Mid-animation: clip the body to the revealed fraction of its
	// last measured height.
	heightState := MemoryGetOr(ctx.mem, NewId(id, "body-height"), float32(0))
	reveal := *heightState * t
	start := ctx.CursorPos()
	clip := ctx.clipRect().Intersect(geom.Rect{
		Min: start,
		Max: geom.P(start.X+w, start.Y+reveal),
	})
	ctx.pushRegionClipped(geom.RectFromMinSize(start, geom.V(w, geom.Inf)), clip, layoutVertical)
	ctx.Indented(body)
	used := ctx.popRegion()
	*heightState = used.Height()
	shown := geom.RectFromMinSize(start, geom.V(used.Width(), reveal))
	ctx.advanceCursor(shown)
}

// paintOpenTriangle draws the disclosure triangle, rotated from
// pointing right (t=0) to pointing down (t=1).
func paintOpenTriangle(painter *Painter, center geom.Pos2, r, t float32, color Color32) {
	// Vertices of a right-pointing triangle, rotated by t·90°.
	angle := t * 1.5707964
	pts := [3]geom.Vec2{{X: r, Y: 0}, {X: -r * 0.5, Y: -r * 0.866}, {X: -r * 0.5, Y: r * 0.866}}
	var out [3]geom.Pos2
	for i, p := range pts {
		out[i] = center.Add(p.Rotate(angle))
	}
	painter.Triangle(out[0], out[1], out[2], color)
}
