package ui

import "github.com/frameloop/ui/geom"

// ResizeState is the persisted state of a user-resizable region.
type ResizeState struct {
	// DesiredSize is the size the region tries to be this frame.
	DesiredSize geom.Vec2
	// LastContentSize is last frame's measured content size.
	LastContentSize geom.Vec2
	// RequestedSize, when set, overrides DesiredSize on the next frame
	// and is then cleared. Lets code resize the region programmatically.
	RequestedSize *geom.Vec2
}

// Resize wraps its contents in a region the user can resize by dragging
// the south-east corner handle. The region grows to fit content that
// does not fit, and double-clicking the handle resets it to the default
// size.
func (ctx *Context) Resize(source any, opts ...Option) func(func()) {
	o := applyOptions(opts)
	return func(contents func()) {
		ctx.resizeImpl(source, o, contents)
	}
}

func (ctx *Context) resizeImpl(source any, o options, contents func()) {
	id := ctx.MakeId(source)
	state := MemoryGetOr(ctx.mem, id, ResizeState{})

	defSize := GetOpt(o, OptDefaultSize)
	minSize := GetOpt(o, OptMinSize)
	maxSize := GetOpt(o, OptMaxSize)
	resizableX := GetOpt(o, OptResizableX)
	resizableY := GetOpt(o, OptResizableY)

	if state.DesiredSize == (geom.Vec2{}) {
		state.DesiredSize = defSize
	}
	if state.RequestedSize != nil {
		state.DesiredSize = *state.RequestedSize
		state.RequestedSize = nil
		ctx.RequestRepaint()
	}

	avail := ctx.AvailableSize()
	maxSize = maxSize.Min(avail)
	desired := state.DesiredSize.Clamp(minSize, maxSize.Max(minSize))

	corner := ctx.style.Visuals.ResizeCornerSize
	pos := ctx.CursorPos()
	inner := geom.RectFromMinSize(pos, desired)

	// The handle reacts before layout so the drag takes effect this
	// frame; its position comes from the pre-drag size, which is fine
	// for the small per-frame deltas a drag produces.
	handle := geom.RectFromMinSize(
		geom.P(inner.Max.X-corner, inner.Max.Y-corner),
		geom.Splat(corner),
	)
	overrode := false
	var resp Response
	if resizableX || resizableY {
		resp = ctx.Interact(handle, NewId(id, "handle"), SenseClickAndDrag())
		if resp.Hovered || resp.Dragged() {
			ctx.setCursor(CursorResizeNwSe)
		}
		if resp.DoubleClicked() {
			state.DesiredSize = defSize
			desired = state.DesiredSize.Clamp(minSize, maxSize.Max(minSize))
			inner = geom.RectFromMinSize(pos, desired)
			ctx.RequestRepaint()
		} else if resp.Dragged() {
			d := resp.DragDelta
			if !resizableX {
				d.X = 0
			}
			if !resizableY {
				d.Y = 0
			}
			desired = desired.Add(d).Clamp(minSize, maxSize.Max(minSize))
			state.DesiredSize = desired
			inner = geom.RectFromMinSize(pos, desired)
			overrode = true
			ctx.RequestRepaint()
		}
	}

	clip := inner.Expand(ctx.style.Visuals.ClipRectMargin)
	ctx.PushId(id)
	ctx.pushRegionClipped(inner, clip, layoutVertical)
	contents()
	used := ctx.popRegion()
	ctx.PopId()

	measured := used.Size()
	state.LastContentSize = measured

	// Content that does not fit grows the region, unless the user is
	// actively dragging it smaller.
	if !overrode {
		grown := desired.Max(measured).Clamp(minSize, maxSize.Max(minSize))
		if grown != desired {
			state.DesiredSize = grown
			ctx.RequestRepaint()
		}
	}

	outer := geom.RectFromMinSize(pos, desired)
	ctx.advanceCursor(outer)

	if resizableX || resizableY {
		ctx.paintResizeCorner(outer, corner, resp)
	}
}

// paintResizeCorner draws the diagonal grip lines in the SE corner.
func (ctx *Context) paintResizeCorner(outer geom.Rect, corner float32, resp Response) {
	wv := ctx.style.Visuals.Widgets.ForState(resp.Hovered, resp.Dragged(), true)
	painter := ctx.Painter()
	c := outer.Max
	for i := 1; i <= 3; i++ {
		off := corner * float32(i) / 4
		painter.Line(geom.P(c.X-off, c.Y), geom.P(c.X, c.Y-off), 1, wv.FgColor)
	}
}
