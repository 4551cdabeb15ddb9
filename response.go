package ui

import "github.com/frameloop/ui/geom"

// Sense is what kinds of pointer interaction a widget listens for.
type Sense uint8

const (
	senseHover Sense = 1 << iota
	senseClick
	senseDrag
)

// SenseHover listens for hover only (labels, tooltips).
func SenseHover() Sense { return senseHover }

// SenseClick listens for clicks (buttons, checkboxes).
func SenseClick() Sense { return senseHover | senseClick }

// SenseDrag listens for drags (sliders, resize handles). Drag-only
// widgets start dragging the moment the pointer presses on them.
func SenseDrag() Sense { return senseHover | senseDrag }

// SenseClickAndDrag listens for both; the drag only starts once the
// press stops being a click candidate.
func SenseClickAndDrag() Sense { return senseHover | senseClick | senseDrag }

// SensesClick reports whether clicks are part of this sense.
func (s Sense) SensesClick() bool { return s&senseClick != 0 }

// SensesDrag reports whether drags are part of this sense.
func (s Sense) SensesDrag() bool { return s&senseDrag != 0 }

// interactionState tracks which widget owns the pointer press across
// frames. It lives on Memory because a drag outlives the frame that
// started it.
type interactionState struct {
	// clickOwner was pressed and may still become a click.
	clickOwner Id
	// dragCandidate was pressed with drag sense but has not started
	// dragging yet (click-and-drag widgets wait for the click window
	// to pass).
	dragCandidate Id
	// dragOwner is being dragged and captures the pointer.
	dragOwner      Id
	dragStartFrame uint64

	// stoppedDragOwner is set on the release frame, cleared at the next
	// frame start.
	stoppedDragOwner Id
	// releasedClickOwner holds the press owner through the release frame
	// so the click can still be attributed to it.
	releasedClickOwner Id
}

// Response describes what happened to a widget this frame: the answer
// to ctx.Interact. Widgets hand it to callers so application code can
// ask "was this clicked" right where the widget was built.
type Response struct {
	Ctx *Context
	// Id of the widget the response belongs to.
	Id Id
	// Layer the widget painted on.
	Layer LayerId
	// Rect is the full rect allocated to the widget.
	Rect geom.Rect
	// InteractRect is the part of Rect that was actually hit-testable
	// after clipping.
	InteractRect geom.Rect
	Sense        Sense
	// Enabled is false for grayed-out widgets: they report hover but
	// never click or drag.
	Enabled bool

	// Hovered is true when the pointer is over the widget, the widget's
	// layer is topmost there, and nothing else is being dragged.
	Hovered bool
	// IsPointerButtonDownOn is true while a press that started on this
	// widget is held, wherever the pointer is now.
	IsPointerButtonDownOn bool
	// InteractPointerPos is where the pointer was for hit-testing, when
	// it was over or captured by this widget.
	InteractPointerPos *geom.Pos2
	// DragDelta is the pointer movement this frame while dragging.
	DragDelta geom.Vec2

	// HasFocus is true while the widget has keyboard focus.
	HasFocus    bool
	GainedFocus bool
	LostFocus   bool

	// Changed is set by the widget itself when it mutated the value it
	// edits this frame.
	Changed bool

	clicked       [NumPointerButtons]bool
	doubleClicked [NumPointerButtons]bool
	tripleClicked [NumPointerButtons]bool
	dragged       bool
	dragStarted   bool
	dragStopped   bool
	dragButton    PointerButton
}

// Clicked reports a primary-button click on the widget this frame.
func (r Response) Clicked() bool { return r.clicked[PointerPrimary] }

// ClickedBy reports a click by the given button.
func (r Response) ClickedBy(b PointerButton) bool {
	return b >= 0 && b < NumPointerButtons && r.clicked[b]
}

// SecondaryClicked reports a right click.
func (r Response) SecondaryClicked() bool { return r.clicked[PointerSecondary] }

// MiddleClicked reports a middle click.
func (r Response) MiddleClicked() bool { return r.clicked[PointerMiddle] }

// DoubleClicked reports a primary-button double click.
func (r Response) DoubleClicked() bool { return r.doubleClicked[PointerPrimary] }

// DoubleClickedBy reports a double click by the given button.
func (r Response) DoubleClickedBy(b PointerButton) bool {
	return b >= 0 && b < NumPointerButtons && r.doubleClicked[b]
}

// TripleClicked reports a primary-button triple click.
func (r Response) TripleClicked() bool { return r.tripleClicked[PointerPrimary] }

// TripleClickedBy reports a triple click by the given button.
func (r Response) TripleClickedBy(b PointerButton) bool {
	return b >= 0 && b < NumPointerButtons && r.tripleClicked[b]
}

// Dragged reports the widget is being dragged this frame.
func (r Response) Dragged() bool { return r.dragged }

// DraggedBy reports a drag by the given button.
func (r Response) DraggedBy(b PointerButton) bool { return r.dragged && r.dragButton == b }

// DragStarted reports the drag began this frame.
func (r Response) DragStarted() bool { return r.dragStarted }

// DragStopped reports the drag ended this frame.
func (r Response) DragStopped() bool { return r.dragStopped }

// MarkChanged records that the widget mutated its value.
func (r *Response) MarkChanged() { r.Changed = true }

// OnHover runs f when the widget is hovered. Sugar for tooltips.
func (r *Response) OnHover(f func()) *Response {
	if r.Hovered {
		f()
	}
	return r
}

// Interact re-queries the widget with a broader sense. A label drawn
// with hover sense can be upgraded to a click target after the fact.
func (r *Response) Interact(sense Sense) Response {
	return r.Ctx.Interact(r.Rect, r.Id, sense|r.Sense)
}

// Union merges another response into this one: boolean facts OR, rects
// union, receiver's id wins. Both responses must come from the same
// layer; a mismatch keeps the receiver's layer.
func (r Response) Union(other Response) Response {
	if r.Layer != other.Layer {
		debugPanic("Response.Union: layer mismatch (%v vs %v)", r.Layer, other.Layer)
	}
	out := r
	out.Rect = r.Rect.Union(other.Rect)
	out.InteractRect = r.InteractRect.Union(other.InteractRect)
	out.Sense = r.Sense | other.Sense
	out.Enabled = r.Enabled || other.Enabled
	out.Hovered = r.Hovered || other.Hovered
	out.IsPointerButtonDownOn = r.IsPointerButtonDownOn || other.IsPointerButtonDownOn
	if out.InteractPointerPos == nil {
		out.InteractPointerPos = other.InteractPointerPos
	}
	if !out.dragged && other.dragged {
		out.DragDelta = other.DragDelta
		out.dragButton = other.dragButton
	}
	out.HasFocus = r.HasFocus || other.HasFocus
	out.GainedFocus = r.GainedFocus || other.GainedFocus
	out.LostFocus = r.LostFocus || other.LostFocus
	out.Changed = r.Changed || other.Changed
	for b := range out.clicked {
		out.clicked[b] = r.clicked[b] || other.clicked[b]
		out.doubleClicked[b] = r.doubleClicked[b] || other.doubleClicked[b]
		out.tripleClicked[b] = r.tripleClicked[b] || other.tripleClicked[b]
	}
	out.dragged = r.dragged || other.dragged
	out.dragStarted = r.dragStarted || other.dragStarted
	out.dragStopped = r.dragStopped || other.dragStopped
	return out
}

// Interact hit-tests rect for the widget id with the given sense and
// returns what happened. The rect is clipped to the current region;
// hover requires the widget's layer to be topmost under the pointer.
// A widget that started a drag keeps receiving the drag wherever the
// pointer goes, and suppresses hover everywhere else.
func (ctx *Context) Interact(rect geom.Rect, id Id, sense Sense) Response {
	return ctx.interact(rect, id, sense, ctx.enabled)
}

func (ctx *Context) interact(rect geom.Rect, id Id, sense Sense, enabled bool) Response {
	mem := ctx.mem
	pointer := &ctx.input.Pointer
	it := &mem.interact
	layer := ctx.currentLayer()

	resp := Response{
		Ctx:          ctx,
		Id:           id,
		Layer:        layer,
		Rect:         rect,
		InteractRect: rect.Intersect(ctx.clipRect()),
		Sense:        sense,
		Enabled:      enabled,
	}
	ctx.registerUsedId(id, rect)

	resp.HasFocus = mem.HasFocus(id)
	had := mem.HadFocusLastFrame(id)
	resp.GainedFocus = resp.HasFocus && !had
	resp.LostFocus = !resp.HasFocus && had

	// Widget rects inside a transformed region (a Scene) are in local
	// coordinates; the pointer is in screen coordinates.
	trans := ctx.currentTransform()
	hitRect := trans.ApplyRect(resp.InteractRect)

	pos, hasPos := pointer.InteractPos()
	contains := hasPos && hitRect.IsPositive() && hitRect.Contains(pos)
	otherDragging := it.dragOwner != IdNil && it.dragOwner != id
	onTop := hasPos && layer.AllowsInteraction() && mem.TopLayerAt(pos) == layer
	resp.Hovered = contains && onTop && !otherDragging

	// First hovered widget to register wins the press: background
	// catch-alls (Scene panning, window moves) run after their content
	// and must not steal it.
	if enabled && resp.Hovered && pointer.AnyPressed() {
		if sense.SensesClick() && it.clickOwner == IdNil {
			it.clickOwner = id
		}
		if sense.SensesDrag() && it.dragCandidate == IdNil && it.dragOwner == IdNil {
			it.dragCandidate = id
		}
	}

	// Clicks need the press and the release on the same widget: the
	// release must be hovered here and the press origin must have been
	// inside too.
	if enabled && sense.SensesClick() && resp.Hovered &&
		(it.clickOwner == id || it.releasedClickOwner == id) &&
		hitRect.Contains(pointer.pressOrigin) {
		for b := PointerButton(0); b < NumPointerButtons; b++ {
			click, ok := pointer.ButtonClicked(b)
			if !ok {
				continue
			}
			resp.clicked[b] = true
			if click.Count >= 2 {
				resp.doubleClicked[b] = true
			}
			if click.Count >= 3 {
				resp.tripleClicked[b] = true
			}
		}
	}

	// Drag-only widgets grab the drag at press time; click-and-drag
	// widgets wait until the press stops being a click candidate.
	if enabled && sense.SensesDrag() && it.dragCandidate == id && it.dragOwner == IdNil {
		if !sense.SensesClick() || pointer.IsDecidedlyDragging() {
			it.dragOwner = id
			it.dragCandidate = IdNil
			it.dragStartFrame = mem.frame
		}
	}
	if it.dragOwner == id {
		resp.dragged = pointer.AnyDown()
		resp.dragStarted = it.dragStartFrame == mem.frame
		resp.DragDelta = pointer.Delta().Scale(1 / trans.Scaling)
		if b, ok := pointer.PressButton(); ok {
			resp.dragButton = b
		}
	}
	if it.stoppedDragOwner == id {
		resp.dragStopped = true
	}

	downOn := pointer.AnyDown() && (it.clickOwner == id || it.dragOwner == id)
	resp.IsPointerButtonDownOn = downOn
	if hasPos && (resp.Hovered || downOn) {
		// Reported in the widget's own (local) coordinates.
		p := trans.Inverse().Apply(pos)
		resp.InteractPointerPos = &p
	}

	if resp.Hovered || downOn {
		ctx.setCursor(cursorForSense(sense))
	}
	return resp
}

// cursorForSense picks a default cursor for interactive widgets.
func cursorForSense(sense Sense) CursorIcon {
	switch {
	case sense.SensesClick():
		return CursorPointingHand
	case sense.SensesDrag():
		return CursorGrab
	default:
		return CursorDefault
	}
}

// maintainInteraction resolves press ownership at the start of a frame,
// before any widget runs.
func (ctx *Context) maintainInteraction() {
	it := &ctx.mem.interact
	pointer := &ctx.input.Pointer

	it.stoppedDragOwner = IdNil
	it.releasedClickOwner = IdNil

	if pointer.AnyReleased() && !pointer.AnyDown() {
		it.stoppedDragOwner = it.dragOwner
		it.releasedClickOwner = it.clickOwner
		it.clickOwner = IdNil
		it.dragCandidate = IdNil
		it.dragOwner = IdNil
	}
	if !pointer.AnyDown() && !pointer.AnyReleased() {
		// Lost the release event (pointer gone): drop owners.
		it.clickOwner = IdNil
		it.dragCandidate = IdNil
		it.dragOwner = IdNil
	}
}
