package ui

import "github.com/frameloop/ui/geom"

// PointerButton identifies a pointer (mouse) button.
type PointerButton int

const (
	PointerPrimary   PointerButton = iota // Left mouse button, touch contact
	PointerSecondary                      // Right mouse button
	PointerMiddle
	PointerExtra1
	PointerExtra2
	NumPointerButtons
)

// MouseWheelUnit is the unit of a mouse wheel delta.
type MouseWheelUnit int

const (
	// UnitPoint means the delta is in logical points (precise trackpads).
	UnitPoint MouseWheelUnit = iota
	// UnitLine means the delta is in text lines (classic mouse wheels).
	UnitLine
	// UnitPage means the delta is in whole pages.
	UnitPage
)

// ScrollPhase tags wheel events from devices that report scroll sessions
// (trackpads). PhaseNone marks plain wheel ticks.
type ScrollPhase int

const (
	PhaseNone ScrollPhase = iota
	PhaseStart
	PhaseMove
	PhaseMomentum
	PhaseEnd
	PhaseCancel
)

// TouchPhase is the lifecycle stage of one touch point.
type TouchPhase int

const (
	TouchStart TouchPhase = iota
	TouchMove
	TouchEnd
	TouchCancel
)

// TouchDeviceId distinguishes touch hardware (screen vs trackpad).
type TouchDeviceId uint64

// TouchId identifies one finger within a device while it stays down.
type TouchId uint64

// Event is one input event from the host. The set of implementations is
// closed; fold new input kinds into new event structs here.
type Event interface {
	isEvent()
}

// PointerMovedEvent reports the pointer position in points.
type PointerMovedEvent struct {
	Pos geom.Pos2
}

// PointerButtonEvent reports a button press or release at a position.
type PointerButtonEvent struct {
	Pos       geom.Pos2
	Button    PointerButton
	Pressed   bool
	Modifiers Modifiers
}

// PointerGoneEvent reports that the pointer left the window or was lost.
type PointerGoneEvent struct{}

// MouseWheelEvent reports scroll input. Delta follows the natural reading
// direction: positive Y scrolls content up (wheel away from the user).
type MouseWheelEvent struct {
	Unit      MouseWheelUnit
	Delta     geom.Vec2
	Phase     ScrollPhase
	Modifiers Modifiers
}

// ZoomEvent reports a platform pinch-zoom gesture as a multiplicative
// factor (1.0 = no change).
type ZoomEvent struct {
	Factor float32
}

// KeyEvent reports a key press or release. Repeat is set by InputState for
// synthesized repeats; hosts may also deliver it.
type KeyEvent struct {
	Key       Key
	Pressed   bool
	Repeat    bool
	Modifiers Modifiers
}

// TextEvent reports typed text (post layout and IME composition).
type TextEvent struct {
	Text string
}

// TouchEvent reports one touch point changing.
type TouchEvent struct {
	DeviceId TouchDeviceId
	Id       TouchId
	Phase    TouchPhase
	Pos      geom.Pos2
	Force    float32 // 0 when the hardware does not report force
}

// CopyEvent asks the focused widget to copy its selection.
type CopyEvent struct{}

// CutEvent asks the focused widget to cut its selection.
type CutEvent struct{}

// PasteEvent delivers clipboard text to the focused widget.
type PasteEvent struct {
	Text string
}

// WindowFocusEvent reports the window gaining or losing keyboard focus.
type WindowFocusEvent struct {
	Focused bool
}

func (PointerMovedEvent) isEvent()  {}
func (PointerButtonEvent) isEvent() {}
func (PointerGoneEvent) isEvent()   {}
func (MouseWheelEvent) isEvent()    {}
func (ZoomEvent) isEvent()          {}
func (KeyEvent) isEvent()           {}
func (TextEvent) isEvent()          {}
func (TouchEvent) isEvent()         {}
func (CopyEvent) isEvent()          {}
func (CutEvent) isEvent()           {}
func (PasteEvent) isEvent()         {}
func (WindowFocusEvent) isEvent()   {}

// RawInput is everything the host feeds into one frame.
//
// Zero values mean "unchanged": a zero ScreenRect keeps the previous
// screen rect, a zero PixelsPerPoint keeps the previous scale.
type RawInput struct {
	// Events in the order they happened since the last frame.
	Events []Event

	// ScreenRect is the renderable area in points.
	ScreenRect geom.Rect

	// PixelsPerPoint is physical pixels per logical point (HiDPI scale).
	PixelsPerPoint float32

	// Time is seconds since an arbitrary fixed epoch, monotonic.
	Time float64

	// PredictedDT is the host's guess at seconds until the next frame,
	// used for animation stepping when Time is not yet advancing.
	PredictedDT float32

	// Modifiers is the modifier state at frame start.
	Modifiers Modifiers

	// MaxTextureSide caps texture allocations; 0 means unknown.
	MaxTextureSide int
}

// Take returns the RawInput and leaves the receiver empty, so a host can
// accumulate events between frames and hand them over once.
func (r *RawInput) Take() RawInput {
	out := *r
	r.Events = nil
	return out
}

// AddEvent appends an event to the batch.
func (r *RawInput) AddEvent(e Event) {
	r.Events = append(r.Events, e)
}
