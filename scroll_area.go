package ui

import (
	"github.com/chewxy/math32"

	"github.com/frameloop/ui/geom"
)

// Kinetic fling constants, in points.
const (
	// FlingFriction is the linear deceleration of a fling, per second.
	FlingFriction = 1000.0
	// FlingMinSpeed is the speed below which a fling stops dead.
	FlingMinSpeed = 40.0
)

// ScrollBarFadeDelay is how long after the last scroll activity the
// bars stay fully visible before fading out.
const ScrollBarFadeDelay = 1.0

// ScrollAreaState is the persisted state of a scroll area.
type ScrollAreaState struct {
	// Offset is how far the content is scrolled, in points, per axis.
	// Content is drawn at viewport.Min − Offset.
	Offset geom.Vec2
	// Vel is the live fling velocity after a touch drag released.
	Vel geom.Vec2
	// ContentSize is last frame's measured content size.
	ContentSize geom.Vec2
	// PinnedToBottom tracks whether the view sat at the end last frame,
	// for stick-to-bottom following.
	PinnedToBottom bool

	// Block virtualization state (ShowBlocks).
	FirstToShow         int
	FirstShownBlockSize float32
	TotalBlocks         int

	lastActivity float64
	dragging     bool
}

// scrollScope is the live per-frame bookkeeping of an open scroll area.
type scrollScope struct {
	id        Id
	state     *ScrollAreaState
	outerRect geom.Rect
	innerRect geom.Rect
	enabled   [2]bool // x, y
	o         options

	// target offset requested by ScrollToRect this frame.
	target    geom.Vec2
	hasTarget [2]bool
}

// ScrollArea lays its contents into a clipped viewport that the user can
// scroll with the wheel, the scrollbars or (optionally) a touch drag.
//
//	ctx.ScrollArea("log")(func() {
//	    for _, line := range lines {
//	        ctx.Label(line)
//	    }
//	})
func (ctx *Context) ScrollArea(source any, opts ...Option) func(func()) {
	return func(contents func()) {
		sc := ctx.beginScrollArea(source, applyOptions(opts))
		contents()
		ctx.endScrollArea(sc)
	}
}

func (ctx *Context) beginScrollArea(source any, o options) *scrollScope {
	id := ctx.MakeId(source)
	state := MemoryGetOr(ctx.mem, id, ScrollAreaState{})

	enabled := [2]bool{GetOpt(o, OptHorizontalScroll), GetOpt(o, OptVerticalScroll)}

	spacing := &ctx.style.Spacing
	barSpace := spacing.ScrollBarWidth + spacing.ScrollBarInnerMargin + spacing.ScrollBarOuterMargin

	avail := ctx.AvailableSize()
	desired := geom.V(
		min(avail.X, GetOpt(o, OptMaxWidth)),
		min(avail.Y, GetOpt(o, OptMaxHeight)),
	)
	// Shrink to last frame's content where the axis allows it; the first
	// frame overshoots and converges one frame later.
	if GetOpt(o, OptAutoShrink) && state.ContentSize != (geom.Vec2{}) {
		want := state.ContentSize
		if state.ContentSize.Y > desired.Y-barSpace {
			want.X += barSpace
		}
		if state.ContentSize.X > desired.X-barSpace {
			want.Y += barSpace
		}
		desired = desired.Min(want)
	}
	outerRect := ctx.AllocateSpace(desired)

	// Reserve gutter space for bars that will be shown this frame, judged
	// from last frame's content size.
	innerRect := outerRect
	always := GetOpt(o, OptScrollbarVisibility) == ScrollbarAlways
	if enabled[1] && (always || state.ContentSize.Y > innerRect.Height()) {
		if GetOpt(o, OptScrollbarSide) == ScrollbarLeft {
			innerRect.Min.X += barSpace
		} else {
			innerRect.Max.X -= barSpace
		}
	}
	if enabled[0] && (always || state.ContentSize.X > innerRect.Width()) {
		innerRect.Max.Y -= barSpace
	}

	sc := &scrollScope{
		id:        id,
		state:     state,
		outerRect: outerRect,
		innerRect: innerRect,
		enabled:   enabled,
		o:         o,
	}
	ctx.scrollStack = append(ctx.scrollStack, sc)

	contentAvail := geom.RectFromMinSize(innerRect.Min.SubVec(state.Offset), innerRect.Size())
	if enabled[0] {
		contentAvail.Max.X = geom.Inf
	}
	if enabled[1] {
		contentAvail.Max.Y = geom.Inf
	}
	ctx.PushId(id)
	ctx.pushRegionClipped(contentAvail, innerRect, layoutVertical)
	return sc
}

func (ctx *Context) endScrollArea(sc *scrollScope) {
	used := ctx.popRegion()
	ctx.PopId()
	n := len(ctx.scrollStack)
	ctx.scrollStack = ctx.scrollStack[:n-1]

	state := sc.state
	inner := sc.innerRect
	contentSize := used.Size().Max(inner.Size())
	maxOffset := contentSize.Sub(inner.Size()).Max(geom.Vec2{})

	input := ctx.input
	offset := state.Offset

	// Stick-to-bottom: while pinned at the end, follow content growth.
	if GetOpt(sc.o, OptStickToBottom) && state.PinnedToBottom {
		offset.Y = maxOffset.Y
	}

	// Explicit targets from ScrollToRect win over everything else.
	if sc.hasTarget[0] {
		offset.X = sc.target.X
	}
	if sc.hasTarget[1] {
		offset.Y = sc.target.Y
	}

	// Wheel: the innermost hovered area consumes the smoothed delta.
	hover := ctx.Interact(inner, NewId(sc.id, "hover"), SenseHover())
	scrolled := false
	if hover.Hovered {
		wantX := sc.enabled[0] && (offset.X > 0 || maxOffset.X > 0)
		wantY := sc.enabled[1] && (offset.Y > 0 || maxOffset.Y > 0)
		if wantX || wantY {
			delta := input.ConsumeScrollDelta(wantX, wantY)
			if delta != (geom.Vec2{}) {
				offset = offset.Sub(delta)
				scrolled = true
				state.Vel = geom.Vec2{}
			}
		}
	}

	// Touch-style drag of the content, with a fling on release.
	if GetOpt(sc.o, OptDragToScroll) {
		drag := ctx.Interact(inner, NewId(sc.id, "drag"), SenseDrag())
		if drag.Dragged() {
			offset = offset.Sub(drag.DragDelta)
			scrolled = true
			state.Vel = geom.Vec2{}
			state.dragging = true
		} else if state.dragging {
			state.dragging = false
			if GetOpt(sc.o, OptFling) {
				state.Vel = input.Pointer.Velocity()
			}
		}
	}
	if state.Vel != (geom.Vec2{}) {
		dt := input.DT
		offset = offset.Sub(state.Vel.Scale(dt))
		speed := state.Vel.Length()
		speed -= FlingFriction * dt
		if speed < FlingMinSpeed {
			state.Vel = geom.Vec2{}
		} else {
			state.Vel = state.Vel.Normalized().Scale(speed)
			ctx.RequestRepaint()
		}
		scrolled = true
	}

	offset = offset.Clamp(geom.Vec2{}, maxOffset)
	// A fling that hit the edge is over.
	if (offset.X == 0 || offset.X == maxOffset.X) && state.Vel.Y == 0 {
		state.Vel.X = 0
	}
	if (offset.Y == 0 || offset.Y == maxOffset.Y) && state.Vel.X == 0 {
		state.Vel.Y = 0
	}

	if scrolled || offset != state.Offset {
		state.lastActivity = input.Time
	}

	// Scrollbars.
	always := GetOpt(sc.o, OptScrollbarVisibility) == ScrollbarAlways
	if sc.enabled[1] && (always || contentSize.Y > inner.Height()) {
		offset.Y = ctx.scrollBar(sc, axisY, inner, contentSize.Y, offset.Y, maxOffset.Y, always)
	}
	if sc.enabled[0] && (always || contentSize.X > inner.Width()) {
		offset.X = ctx.scrollBar(sc, axisX, inner, contentSize.X, offset.X, maxOffset.X, always)
	}

	offset = offset.Clamp(geom.Vec2{}, maxOffset)
	if offset != state.Offset {
		ctx.RequestRepaint()
	}
	state.Offset = offset
	state.PinnedToBottom = maxOffset.Y > 0 && offset.Y >= maxOffset.Y-1
	if state.ContentSize != contentSize {
		// Layout converges next frame.
		ctx.RequestRepaint()
	}
	state.ContentSize = contentSize
}

type axis int

const (
	axisX axis = iota
	axisY
)

// scrollBar paints one bar and handles thumb drags and track clicks.
// Returns the possibly updated offset along the axis.
func (ctx *Context) scrollBar(sc *scrollScope, ax axis, inner geom.Rect, content, offset, maxOffset float32, always bool) float32 {
	spacing := &ctx.style.Spacing
	state := sc.state

	var track geom.Rect
	if ax == axisY {
		x0 := inner.Max.X + spacing.ScrollBarInnerMargin
		if GetOpt(sc.o, OptScrollbarSide) == ScrollbarLeft {
			x0 = sc.outerRect.Min.X + spacing.ScrollBarOuterMargin
		}
		track = geom.Rect{
			Min: geom.P(x0, inner.Min.Y),
			Max: geom.P(x0+spacing.ScrollBarWidth, inner.Max.Y),
		}
	} else {
		y0 := inner.Max.Y + spacing.ScrollBarInnerMargin
		track = geom.Rect{
			Min: geom.P(inner.Min.X, y0),
			Max: geom.P(inner.Max.X, y0+spacing.ScrollBarWidth),
		}
	}

	viewport := inner.Height()
	trackLen := track.Height()
	if ax == axisX {
		viewport = inner.Width()
		trackLen = track.Width()
	}
	if trackLen <= 0 || content <= 0 {
		return offset
	}

	thumbLen := max(spacing.ScrollHandleMinLength, trackLen*viewport/content)
	thumbLen = min(thumbLen, trackLen)
	travel := trackLen - thumbLen
	frac := float32(0)
	if maxOffset > 0 {
		frac = offset / maxOffset
	}

	var thumb geom.Rect
	if ax == axisY {
		y := track.Min.Y + frac*travel
		thumb = geom.Rect{Min: geom.P(track.Min.X, y), Max: geom.P(track.Max.X, y+thumbLen)}
	} else {
		x := track.Min.X + frac*travel
		thumb = geom.Rect{Min: geom.P(x, track.Min.Y), Max: geom.P(x+thumbLen, track.Max.Y)}
	}

	thumbId := NewId(sc.id, [2]any{"thumb", int(ax)})
	resp := ctx.Interact(thumb, thumbId, SenseDrag())
	if resp.Dragged() && travel > 0 && maxOffset > 0 {
		d := resp.DragDelta.Y
		if ax == axisX {
			d = resp.DragDelta.X
		}
		offset = geom.Clamp(offset+d*maxOffset/travel, 0, maxOffset)
		state.lastActivity = ctx.input.Time
	}

	trackResp := ctx.Interact(track, NewId(sc.id, [2]any{"track", int(ax)}), SenseClick())
	if trackResp.Clicked() && trackResp.InteractPointerPos != nil && maxOffset > 0 {
		// Center the viewport on the clicked point of the track.
		p := trackResp.InteractPointerPos.Y - track.Min.Y
		if ax == axisX {
			p = trackResp.InteractPointerPos.X - track.Min.X
		}
		offset = geom.Clamp(p/trackLen*content-viewport/2, 0, maxOffset)
		state.lastActivity = ctx.input.Time
	}

	// Fade out when idle, unless pinned always-on.
	active := always || resp.Hovered || resp.Dragged() || trackResp.Hovered ||
		ctx.input.Time-state.lastActivity < ScrollBarFadeDelay
	alpha := ctx.AnimateBool(NewId(thumbId, "fade"), active)
	if alpha <= 0 {
		return offset
	}

	visuals := &ctx.style.Visuals
	painter := ctx.Painter()
	rounding := spacing.ScrollBarWidth / 2
	painter.RectFilled(track, rounding, visuals.ExtremeBgColor.MulAlpha(alpha))
	wv := visuals.Widgets.ForState(resp.Hovered, resp.Dragged(), true)
	painter.RectFilled(thumb, rounding, wv.FgColor.MulAlpha(alpha))
	return offset
}

// currentScrollScope returns the innermost open scroll area, or nil.
func (ctx *Context) currentScrollScope() *scrollScope {
	if n := len(ctx.scrollStack); n > 0 {
		return ctx.scrollStack[n-1]
	}
	return nil
}

// ScrollToRect asks the enclosing scroll area to bring rect (in content
// coordinates) into view. The adjustment lands this frame's offset and
// paints correctly from the next frame on.
func (ctx *Context) ScrollToRect(rect geom.Rect) {
	sc := ctx.currentScrollScope()
	if sc == nil {
		debugPanic("ScrollToRect outside a scroll area")
		return
	}
	inner := sc.innerRect
	// Content coordinates are viewport coordinates plus the offset.
	rel := rect.Translate(sc.state.Offset.Sub(inner.Min.ToVec()))
	for a := axisX; a <= axisY; a++ {
		if !sc.enabled[a] {
			continue
		}
		lo, hi, view := rel.Min.X, rel.Max.X, inner.Width()
		if a == axisY {
			lo, hi, view = rel.Min.Y, rel.Max.Y, inner.Height()
		}
		cur := sc.state.Offset.X
		if a == axisY {
			cur = sc.state.Offset.Y
		}
		target := cur
		if lo < cur {
			target = lo
		} else if hi > cur+view {
			target = hi - view
		}
		if target != cur {
			sc.hasTarget[a] = true
			if a == axisX {
				sc.target.X = target
			} else {
				sc.target.Y = target
			}
			ctx.RequestRepaint()
		}
	}
}

// ScrollRows virtualizes total uniform rows of the given height: only
// the visible range is built, with spacer gaps standing in for the rest.
// body receives the half-open visible range [first, last).
func (ctx *Context) ScrollRows(rowHeight float32, total int, body func(first, last int)) {
	sc := ctx.currentScrollScope()
	if sc == nil {
		debugPanic("ScrollRows outside a scroll area")
		body(0, total)
		return
	}
	step := rowHeight + ctx.style.Spacing.ItemSpacing.Y
	top := ctx.CursorPos().Y
	clip := sc.innerRect

	first := 0
	if step > 0 {
		first = int(math32.Floor((clip.Min.Y - top) / step))
	}
	first = geom.Clamp(first, 0, total)
	last := total
	if step > 0 {
		last = int(math32.Ceil((clip.Max.Y-top)/step)) + 1
	}
	last = geom.Clamp(last, first, total)

	if first > 0 {
		ctx.AllocateSpace(geom.V(0, float32(first)*step-ctx.style.Spacing.ItemSpacing.Y))
	}
	body(first, last)
	if last < total {
		ctx.AllocateSpace(geom.V(0, float32(total-last)*step-ctx.style.Spacing.ItemSpacing.Y))
	}
}

// ScrollBlocks virtualizes count blocks of roughly uniform height. The
// height is assumed from the first visible block's measured size, so the
// estimate self-corrects with one frame of lag; wildly varying block
// sizes will visibly jump while scrolling.
func (ctx *Context) ScrollBlocks(count int, body func(i int)) {
	sc := ctx.currentScrollScope()
	if sc == nil {
		debugPanic("ScrollBlocks outside a scroll area")
		for i := 0; i < count; i++ {
			body(i)
		}
		return
	}
	state := sc.state
	spacingY := ctx.style.Spacing.ItemSpacing.Y

	assumed := state.FirstShownBlockSize
	if state.TotalBlocks != count || assumed <= 0 {
		// Count changed or first sight: restart the estimate.
		assumed = 0
	}
	state.TotalBlocks = count

	step := assumed + spacingY
	first := 0
	if step > 0 {
		first = int(state.Offset.Y / step)
	}
	first = geom.Clamp(first, 0, count)
	state.FirstToShow = first

	if first > 0 {
		ctx.AllocateSpace(geom.V(0, float32(first)*step-spacingY))
	}

	clipBottom := sc.innerRect.Max.Y
	shown := 0
	measured := float32(0)
	i := first
	for ; i < count; i++ {
		before := ctx.CursorPos().Y
		body(i)
		after := ctx.CursorPos().Y
		if shown == 0 {
			measured = max(0, after-before-spacingY)
		}
		shown++
		if after > clipBottom {
			i++
			break
		}
	}
	if shown > 0 && measured != state.FirstShownBlockSize {
		state.FirstShownBlockSize = measured
		ctx.RequestRepaint()
	}
	if i < count {
		step = state.FirstShownBlockSize + spacingY
		ctx.AllocateSpace(geom.V(0, float32(count-i)*step-spacingY))
	}
}
