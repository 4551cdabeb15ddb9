package ui

import "github.com/frameloop/ui/geom"

// Click discrimination defaults, in points and seconds. Style.Interaction
// starts from these; the live values sit on PointerState.
const (
	// MaxClickDist is how far the pointer may move between press and
	// release and still count as a click. It is also the maximum distance
	// between two clicks of a double-click.
	MaxClickDist = 6.0
	// MaxClickDuration is the longest press that can still become a click.
	MaxClickDuration = 0.8
	// MaxDoubleClickDelay is the longest pause between clicks that chains
	// them into double and triple clicks.
	MaxDoubleClickDelay = 0.3
)

// Click is one completed click.
type Click struct {
	Pos       geom.Pos2
	Count     int // 1 single, 2 double, 3 triple
	Modifiers Modifiers
}

// PointerState tracks the pointer position, button state and the
// click-versus-drag state machine.
//
// A press starts out as a click candidate. The moment the pointer moves
// more than MaxClickDist from the press origin the press is reclassified
// as a drag, permanently: returning to the origin does not make it a
// click candidate again. Releasing a still-candidate press within
// MaxClickDuration emits a Click.
type PointerState struct {
	hasPointer bool
	pos        geom.Pos2
	delta      geom.Vec2
	velocity   geom.Vec2
	history    *History[geom.Pos2]

	down     [NumPointerButtons]bool
	pressed  [NumPointerButtons]bool
	released [NumPointerButtons]bool
	clicks   [NumPointerButtons]Click
	clicked  [NumPointerButtons]bool

	hasPress       bool
	pressButton    PointerButton
	pressOrigin    geom.Pos2
	pressStartTime float64
	movedTooMuch   bool

	inter Interaction

	lastClickTime   float64
	lastClickPos    geom.Pos2
	lastClickCount  int
	lastClickButton PointerButton

	lastMoveTime float64
	time         float64
}

func newPointerState() PointerState {
	return PointerState{
		history:       NewHistory[geom.Pos2](1000, 0.1),
		lastClickTime: -1e9,
		lastMoveTime:  -1e9,
		inter: Interaction{
			MaxClickDist:        MaxClickDist,
			MaxClickDuration:    MaxClickDuration,
			MaxDoubleClickDelay: MaxDoubleClickDelay,
		},
	}
}

// setInteraction adopts the style's click thresholds.
func (p *PointerState) setInteraction(inter Interaction) {
	p.inter = inter
}

// beginFrame clears the per-frame edges and recomputes velocity.
func (p *PointerState) beginFrame(time float64) {
	p.time = time
	p.delta = geom.Vec2{}
	for b := range p.pressed {
		p.pressed[b] = false
		p.released[b] = false
		p.clicked[b] = false
	}
	p.history.Flush(time)
	p.velocity = geom.Vec2{}
	if p.history.Len() >= 2 {
		if span := p.history.TimeSpan(); span > 0 {
			newest, _ := p.history.Latest()
			oldest, _ := p.history.Oldest()
			p.velocity = newest.Sub(oldest).Scale(float32(1 / span))
		}
	}
}

func (p *PointerState) move(pos geom.Pos2, time float64) {
	if !pos.IsFinite() {
		uiLogger.Debug("dropping non-finite pointer position")
		return
	}
	if p.hasPointer {
		p.delta = p.delta.Add(pos.Sub(p.pos))
	}
	p.hasPointer = true
	p.pos = pos
	p.lastMoveTime = time
	p.history.Add(time, pos)
	if p.hasPress && pos.Distance(p.pressOrigin) > p.inter.MaxClickDist {
		p.movedTooMuch = true
	}
}

func (p *PointerState) buttonEvent(pos geom.Pos2, button PointerButton, pressedNow bool, mods Modifiers, time float64) {
	if button < 0 || button >= NumPointerButtons {
		return
	}
	p.move(pos, time)

	if pressedNow {
		if p.anyDown() {
			// A second button joining rules out a click.
			p.movedTooMuch = true
		} else {
			p.hasPress = true
			p.pressButton = button
			p.pressOrigin = pos
			p.pressStartTime = time
			p.movedTooMuch = false
		}
		p.down[button] = true
		p.pressed[button] = true
		return
	}

	wasDown := p.down[button]
	p.down[button] = false
	p.released[button] = true

	if wasDown && p.hasPress && !p.movedTooMuch && time-p.pressStartTime <= float64(p.inter.MaxClickDuration) {
		count := 1
		if time-p.lastClickTime <= float64(p.inter.MaxDoubleClickDelay) &&
			pos.Distance(p.lastClickPos) <= p.inter.MaxClickDist &&
			p.lastClickButton == button &&
			p.lastClickCount < 3 {
			count = p.lastClickCount + 1
		}
		p.clicks[button] = Click{Pos: pos, Count: count, Modifiers: mods}
		p.clicked[button] = true
		p.lastClickTime = time
		p.lastClickPos = pos
		p.lastClickCount = count
		p.lastClickButton = button
	}

	if !p.anyDown() {
		p.hasPress = false
	}
}

func (p *PointerState) gone() {
	p.hasPointer = false
	p.history.Clear()
	p.velocity = geom.Vec2{}
	for b := range p.down {
		if p.down[b] {
			p.down[b] = false
			p.released[b] = true
		}
	}
	p.hasPress = false
}

// Pos returns the latest pointer position.
func (p *PointerState) Pos() (geom.Pos2, bool) {
	return p.pos, p.hasPointer
}

// InteractPos is the position used for hit tests. It matches Pos but stays
// valid on the release frame even if the host reported the pointer gone in
// the same batch.
func (p *PointerState) InteractPos() (geom.Pos2, bool) {
	if p.hasPointer || p.anyReleased() {
		return p.pos, true
	}
	return geom.Pos2{}, false
}

// Delta is the pointer movement this frame.
func (p *PointerState) Delta() geom.Vec2 {
	return p.delta
}

// Velocity is the recent pointer velocity in points per second.
func (p *PointerState) Velocity() geom.Vec2 {
	return p.velocity
}

// ButtonDown reports whether the button is currently held.
func (p *PointerState) ButtonDown(b PointerButton) bool {
	return b >= 0 && b < NumPointerButtons && p.down[b]
}

// ButtonPressed reports whether the button went down this frame.
func (p *PointerState) ButtonPressed(b PointerButton) bool {
	return b >= 0 && b < NumPointerButtons && p.pressed[b]
}

// ButtonReleased reports whether the button came up this frame.
func (p *PointerState) ButtonReleased(b PointerButton) bool {
	return b >= 0 && b < NumPointerButtons && p.released[b]
}

// ButtonClicked reports a completed click this frame and returns it.
func (p *PointerState) ButtonClicked(b PointerButton) (Click, bool) {
	if b >= 0 && b < NumPointerButtons && p.clicked[b] {
		return p.clicks[b], true
	}
	return Click{}, false
}

// PressOrigin returns where the current press started.
func (p *PointerState) PressOrigin() (geom.Pos2, bool) {
	return p.pressOrigin, p.hasPress
}

// PressStartTime returns when the current press started.
func (p *PointerState) PressStartTime() (float64, bool) {
	return p.pressStartTime, p.hasPress
}

func (p *PointerState) anyDown() bool {
	for _, d := range p.down {
		if d {
			return true
		}
	}
	return false
}

// AnyDown reports whether any button is held.
func (p *PointerState) AnyDown() bool { return p.anyDown() }

// AnyPressed reports whether any button went down this frame.
func (p *PointerState) AnyPressed() bool {
	for _, v := range p.pressed {
		if v {
			return true
		}
	}
	return false
}

func (p *PointerState) anyReleased() bool {
	for _, v := range p.released {
		if v {
			return true
		}
	}
	return false
}

// AnyReleased reports whether any button came up this frame.
func (p *PointerState) AnyReleased() bool { return p.anyReleased() }

// CouldAnyButtonBeClick reports whether the press in flight is still a
// click candidate.
func (p *PointerState) CouldAnyButtonBeClick() bool {
	if !p.anyDown() && !p.anyReleased() {
		return false
	}
	if p.movedTooMuch {
		return false
	}
	if p.hasPress && p.time-p.pressStartTime > float64(p.inter.MaxClickDuration) {
		return false
	}
	return true
}

// PressButton returns the button that started the press in flight.
func (p *PointerState) PressButton() (PointerButton, bool) {
	return p.pressButton, p.hasPress
}

// IsDecidedlyDragging reports whether the current press can no longer be a
// click: it moved past the threshold, was held too long, or involves more
// than one button.
func (p *PointerState) IsDecidedlyDragging() bool {
	return (p.anyDown() || p.anyReleased()) &&
		!p.AnyPressed() &&
		!p.CouldAnyButtonBeClick()
}

// IsMoving reports whether the pointer has meaningful velocity.
func (p *PointerState) IsMoving() bool {
	return p.velocity.LengthSq() > 16 // > 4 points/second
}

// IsStillIdle reports whether the pointer has not moved for the given
// number of seconds.
func (p *PointerState) IsStillIdle(seconds float64) bool {
	return p.time-p.lastMoveTime >= seconds
}
