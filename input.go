package ui

import (
	"github.com/chewxy/math32"

	"github.com/frameloop/ui/geom"
)

// Scroll handling constants.
const (
	// ScrollPointsPerLine converts line-unit wheel deltas to points.
	ScrollPointsPerLine float32 = 20
	// ScrollZoomSpeed converts zoom-modifier wheel points into the exponent
	// of the multiplicative zoom factor.
	ScrollZoomSpeed float32 = 1.0 / 200.0
	// ScrollSessionTimeout ends a scroll session after this many seconds
	// without wheel input.
	ScrollSessionTimeout float64 = 0.150
	// scrollSmoothingHalfAge: smoothed wheel scroll applies ~90% of the
	// remaining delta every this many seconds.
	scrollSmoothingReach float32 = 0.1
)

// InputState is the per-frame view of all input, derived from RawInput
// batches. Rebuild happens in begin; widgets read it during the frame and
// never mutate it except through Consume helpers.
type InputState struct {
	// Pointer is the pointer position/button state machine.
	Pointer PointerState

	// ScreenRect is the renderable area in points.
	ScreenRect geom.Rect
	// PixelsPerPoint is the HiDPI scale.
	PixelsPerPoint float32
	// Time is the frame timestamp in seconds.
	Time float64
	// DT is the stable time step used for animation, clamped to a sane
	// range.
	DT float32
	// Modifiers is the modifier state at frame start.
	Modifiers Modifiers

	touches map[TouchDeviceId]*TouchState

	// Scroll pipeline.
	scrollDelta       geom.Vec2 // smoothed, what consumers use
	rawScrollDelta    geom.Vec2 // this frame's raw wheel points
	unprocessedScroll geom.Vec2 // queued for smoothing
	zoomDeltaWheel    float32   // multiplicative, from zoom-modifier wheel
	inScrollSession   bool
	lastScrollTime    float64

	keyDown     [KeyCount]bool
	keyPressed  [KeyCount]bool
	keyReleased [KeyCount]bool
	keyRepeat   [KeyCount]bool
	keyHold     [KeyCount]float32
	keyRepeatAt [KeyCount]float32

	events []Event

	windowFocused bool
	prevTime      float64
	hasPrevTime   bool
}

// NewInputState creates an empty input state.
func NewInputState() *InputState {
	return &InputState{
		Pointer:        newPointerState(),
		touches:        make(map[TouchDeviceId]*TouchState),
		PixelsPerPoint: 1,
		zoomDeltaWheel: 1,
		windowFocused:  true,
	}
}

// begin folds one RawInput batch into the state. Events apply in order.
func (s *InputState) begin(raw RawInput) {
	s.Time = raw.Time
	s.DT = raw.PredictedDT
	if s.DT <= 0 {
		if s.hasPrevTime {
			s.DT = float32(raw.Time - s.prevTime)
		} else {
			s.DT = 1.0 / 60.0
		}
	}
	s.DT = geom.Clamp(s.DT, 1e-4, 0.1)
	s.prevTime = raw.Time
	s.hasPrevTime = true

	if raw.ScreenRect.IsPositive() {
		s.ScreenRect = raw.ScreenRect
	}
	if raw.PixelsPerPoint > 0 {
		s.PixelsPerPoint = raw.PixelsPerPoint
	}
	s.Modifiers = raw.Modifiers

	s.Pointer.beginFrame(raw.Time)
	for _, t := range s.touches {
		t.beginFrame()
	}

	for k := range s.keyPressed {
		s.keyPressed[k] = false
		s.keyReleased[k] = false
		s.keyRepeat[k] = false
	}
	s.events = s.events[:0]
	s.rawScrollDelta = geom.Vec2{}
	s.scrollDelta = geom.Vec2{}
	s.zoomDeltaWheel = 1

	sawWheel := false
	var sessionScroll geom.Vec2

	for _, ev := range raw.Events {
		switch e := ev.(type) {
		case PointerMovedEvent:
			s.Pointer.move(e.Pos, raw.Time)
		case PointerButtonEvent:
			s.Pointer.buttonEvent(e.Pos, e.Button, e.Pressed, e.Modifiers, raw.Time)
		case PointerGoneEvent:
			s.Pointer.gone()
		case MouseWheelEvent:
			sawWheel = true
			s.handleWheel(e, &sessionScroll)
		case ZoomEvent:
			if e.Factor > 0 && isFinite32(e.Factor) {
				s.zoomDeltaWheel *= e.Factor
			}
		case KeyEvent:
			s.handleKey(e)
			s.events = append(s.events, e)
		case TextEvent:
			s.events = append(s.events, e)
		case TouchEvent:
			s.touchFor(e.DeviceId).processEvent(e)
		case CopyEvent, CutEvent, PasteEvent:
			s.events = append(s.events, ev)
		case WindowFocusEvent:
			s.windowFocused = e.Focused
			if !e.Focused {
				s.releaseAllKeys()
			}
		}
	}

	// A live two-finger gesture owns the pointer; suppress the synthesized
	// pointer drag so containers do not pan twice.
	if s.AnyTouchGesture() {
		s.Pointer.gone()
	}

	s.stepKeyRepeat(raw.Time)
	s.stepScrollSmoothing(sawWheel, sessionScroll, raw.Time)
}

func (s *InputState) handleWheel(e MouseWheelEvent, sessionScroll *geom.Vec2) {
	delta := e.Delta
	switch e.Unit {
	case UnitLine:
		delta = delta.Scale(ScrollPointsPerLine)
	case UnitPage:
		delta = delta.Mul(geom.V(s.ScreenRect.Width(), s.ScreenRect.Height()))
	}
	if !delta.IsFinite() {
		return
	}

	mods := e.Modifiers
	if mods.Ctrl || mods.Command || mods.MacCmd {
		// Zoom scrolling: the wheel zooms instead of scrolling.
		s.zoomDeltaWheel *= math32.Exp(delta.Y * ScrollZoomSpeed)
		s.lastScrollTime = s.Time
		return
	}
	if mods.Shift {
		// Horizontal scrolling.
		delta = geom.V(delta.X+delta.Y, 0)
	}

	switch e.Phase {
	case PhaseNone:
		// Classic wheel ticks get smoothed over the following frames.
		s.unprocessedScroll = s.unprocessedScroll.Add(delta)
		s.inScrollSession = false
	case PhaseEnd, PhaseCancel:
		*sessionScroll = sessionScroll.Add(delta)
		s.inScrollSession = false
	default:
		// Device-driven sessions (trackpads) are already smooth; apply raw.
		*sessionScroll = sessionScroll.Add(delta)
		s.inScrollSession = true
	}
	s.lastScrollTime = s.Time
}

func (s *InputState) stepScrollSmoothing(sawWheel bool, sessionScroll geom.Vec2, now float64) {
	if s.inScrollSession && !sawWheel && now-s.lastScrollTime > ScrollSessionTimeout {
		s.inScrollSession = false
	}

	// Apply an exponentially decaying share of the queued wheel delta:
	// about 90% of it lands within scrollSmoothingReach seconds.
	applied := geom.Vec2{}
	if s.unprocessedScroll != (geom.Vec2{}) {
		frac := 1 - math32.Pow(0.1, s.DT/scrollSmoothingReach)
		applied = s.unprocessedScroll.Scale(frac)
		s.unprocessedScroll = s.unprocessedScroll.Sub(applied)
		// Snap the tail so the motion terminates.
		if math32.Abs(s.unprocessedScroll.X) < 0.1 {
			applied.X += s.unprocessedScroll.X
			s.unprocessedScroll.X = 0
		}
		if math32.Abs(s.unprocessedScroll.Y) < 0.1 {
			applied.Y += s.unprocessedScroll.Y
			s.unprocessedScroll.Y = 0
		}
	}

	s.scrollDelta = applied.Add(sessionScroll)
	s.rawScrollDelta = sessionScroll
}

func (s *InputState) handleKey(e KeyEvent) {
	if e.Key <= KeyNone || e.Key >= KeyCount {
		return
	}
	if e.Pressed {
		s.keyDown[e.Key] = true
		s.keyPressed[e.Key] = true
		s.keyRepeat[e.Key] = e.Repeat
		if !e.Repeat {
			s.keyHold[e.Key] = 0
			s.keyRepeatAt[e.Key] = 0
		}
	} else {
		s.keyDown[e.Key] = false
		s.keyReleased[e.Key] = true
		s.keyHold[e.Key] = 0
		s.keyRepeatAt[e.Key] = 0
	}
}

// stepKeyRepeat synthesizes repeat presses for held keys.
func (s *InputState) stepKeyRepeat(now float64) {
	for k := Key(1); k < KeyCount; k++ {
		if !s.keyDown[k] || s.keyPressed[k] {
			continue
		}
		s.keyHold[k] += s.DT
		if s.keyHold[k] < KeyRepeatDelay {
			continue
		}
		if s.keyHold[k]-s.keyRepeatAt[k] >= KeyRepeatInterval {
			s.keyRepeatAt[k] = s.keyHold[k]
			s.keyPressed[k] = true
			s.keyRepeat[k] = true
			s.events = append(s.events, KeyEvent{
				Key: k, Pressed: true, Repeat: true, Modifiers: s.Modifiers,
			})
		}
	}
}

func (s *InputState) releaseAllKeys() {
	for k := range s.keyDown {
		if s.keyDown[k] {
			s.keyDown[k] = false
			s.keyReleased[k] = true
		}
	}
}

func (s *InputState) touchFor(device TouchDeviceId) *TouchState {
	t, ok := s.touches[device]
	if !ok {
		t = newTouchState(device)
		s.touches[device] = t
	}
	return t
}

// KeyDown reports whether the key is currently held.
func (s *InputState) KeyDown(k Key) bool {
	return k > KeyNone && k < KeyCount && s.keyDown[k]
}

// KeyPressed reports whether the key was pressed this frame, including
// synthesized repeats.
func (s *InputState) KeyPressed(k Key) bool {
	return k > KeyNone && k < KeyCount && s.keyPressed[k]
}

// KeyReleased reports whether the key was released this frame.
func (s *InputState) KeyReleased(k Key) bool {
	return k > KeyNone && k < KeyCount && s.keyReleased[k]
}

// ConsumeKey checks for a press of key with logically matching modifiers
// and, if found, eats it so later handlers do not see it.
func (s *InputState) ConsumeKey(mods Modifiers, key Key) bool {
	if !s.KeyPressed(key) || !s.Modifiers.MatchesLogically(mods) {
		return false
	}
	s.keyPressed[key] = false
	kept := s.events[:0]
	for _, ev := range s.events {
		if ke, ok := ev.(KeyEvent); ok && ke.Key == key && ke.Pressed {
			continue
		}
		kept = append(kept, ev)
	}
	s.events = kept
	return true
}

// ConsumeShortcut is ConsumeKey for a KeyboardShortcut.
func (s *InputState) ConsumeShortcut(sc KeyboardShortcut) bool {
	return s.ConsumeKey(sc.Modifiers, sc.Key)
}

// ScrollDelta returns this frame's scroll amount in points, after
// smoothing. Positive y means content should move down (scrolling up).
func (s *InputState) ScrollDelta() geom.Vec2 {
	return s.scrollDelta
}

// RawScrollDelta returns the unsmoothed session scroll of this frame.
func (s *InputState) RawScrollDelta() geom.Vec2 {
	return s.rawScrollDelta
}

// ConsumeScrollDelta takes this frame's smoothed scroll on the requested
// axes and zeroes it, so an outer scroll area does not apply it again.
// Inner areas run their end-of-frame handling first and therefore win.
func (s *InputState) ConsumeScrollDelta(x, y bool) geom.Vec2 {
	var out geom.Vec2
	if x {
		out.X = s.scrollDelta.X
		s.scrollDelta.X = 0
	}
	if y {
		out.Y = s.scrollDelta.Y
		s.scrollDelta.Y = 0
	}
	return out
}

// ZoomDelta returns the multiplicative zoom for this frame, combining
// zoom-modifier scrolling, platform zoom gestures and two-finger pinches.
func (s *InputState) ZoomDelta() float32 {
	z := s.zoomDeltaWheel
	for _, t := range s.touches {
		if info, ok := t.Info(); ok {
			z *= info.ZoomDelta
		}
	}
	return z
}

// ZoomDelta2D is ZoomDelta with the pinch part split per axis.
func (s *InputState) ZoomDelta2D() geom.Vec2 {
	z := geom.Splat(s.zoomDeltaWheel)
	for _, t := range s.touches {
		if info, ok := t.Info(); ok {
			z = z.Mul(info.ZoomDelta2D)
		}
	}
	return z
}

// MultiTouch returns the first live two-finger gesture, if any.
func (s *InputState) MultiTouch() (MultiTouchInfo, bool) {
	for _, t := range s.touches {
		if info, ok := t.Info(); ok {
			return info, true
		}
	}
	return MultiTouchInfo{}, false
}

// AnyTouchGesture reports whether any device has a live gesture.
func (s *InputState) AnyTouchGesture() bool {
	for _, t := range s.touches {
		if t.Active() {
			return true
		}
	}
	return false
}

// Events returns the frame's key/text/clipboard events in order.
// Consumed keys are already filtered out.
func (s *InputState) Events() []Event {
	return s.events
}

// WindowFocused reports whether the host window has keyboard focus.
func (s *InputState) WindowFocused() bool {
	return s.windowFocused
}

// SmoothScrollPending reports whether queued wheel delta is still being
// paid out; callers keep repainting until it drains.
func (s *InputState) SmoothScrollPending() bool {
	return s.unprocessedScroll != (geom.Vec2{})
}

func isFinite32(f float32) bool {
	return !math32.IsNaN(f) && !math32.IsInf(f, 0)
}
