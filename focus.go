package ui

type focusDirection int

const (
	focusNone focusDirection = iota
	focusNext
	focusPrev
)

// focusState tracks which widget has keyboard focus and resolves Tab
// navigation over the widgets that declare interest during the frame.
// Navigation needs no registry: when the focused widget registers its
// interest, focus hands over to the neighbouring registrant.
type focusState struct {
	focused          Id
	focusedLastFrame Id
	locked           bool // focused widget keeps Tab for itself

	pending         focusDirection
	giveToNext      bool
	firstRegistered Id
	lastRegistered  Id
}

func (f *focusState) beginFrame() {
	f.focusedLastFrame = f.focused
	f.pending = focusNone
	f.giveToNext = false
	f.firstRegistered = IdNil
	f.lastRegistered = IdNil
}

// handleInput reacts to frame-level focus keys: Tab moves focus, Escape
// drops it, any pointer press drops it (clicked widgets re-claim during
// the frame).
func (f *focusState) handleInput(input *InputState) {
	if input.Pointer.AnyPressed() {
		f.focused = IdNil
		f.locked = false
	}
	if input.KeyPressed(KeyEscape) {
		f.focused = IdNil
		f.locked = false
	}
	if !f.locked && input.KeyPressed(KeyTab) {
		if input.Modifiers.Shift {
			f.pending = focusPrev
		} else {
			f.pending = focusNext
		}
		if f.focused == IdNil {
			// Nothing focused: Tab enters the first interested widget.
			f.giveToNext = f.pending == focusNext
		}
		input.ConsumeKey(input.Modifiers, KeyTab)
	}
}

// register is called by widgets that can take keyboard focus, in paint
// order.
func (f *focusState) register(id Id) {
	if f.giveToNext {
		f.focused = id
		f.locked = false
		f.giveToNext = false
		f.pending = focusNone
	} else if f.focused == id {
		switch f.pending {
		case focusNext:
			f.giveToNext = true
			f.pending = focusNone
		case focusPrev:
			f.focused = f.lastRegistered
			f.locked = false
			f.pending = focusNone
		}
	}
	if f.firstRegistered == IdNil {
		f.firstRegistered = id
	}
	f.lastRegistered = id
}

// endFrame wraps unresolved Tab moves around the ends of the order.
func (f *focusState) endFrame() {
	if f.giveToNext {
		f.focused = f.firstRegistered
		f.giveToNext = false
	}
	if f.pending == focusPrev && f.focused == f.firstRegistered {
		f.focused = f.lastRegistered
		f.pending = focusNone
	}
}

// RequestFocus gives keyboard focus to id.
func (m *Memory) RequestFocus(id Id) {
	if m.focus.focused != id {
		uiLogger.Debug("focus moved", "to", id.Short())
	}
	m.focus.focused = id
	m.focus.locked = false
}

// SurrenderFocus drops focus if id currently holds it.
func (m *Memory) SurrenderFocus(id Id) {
	if m.focus.focused == id {
		m.focus.focused = IdNil
		m.focus.locked = false
	}
}

// HasFocus reports whether id holds keyboard focus.
func (m *Memory) HasFocus(id Id) bool {
	return id != IdNil && m.focus.focused == id
}

// HadFocusLastFrame reports whether id held focus during the previous
// frame. Response derives its focus-change flags from this.
func (m *Memory) HadFocusLastFrame(id Id) bool {
	return id != IdNil && m.focus.focusedLastFrame == id
}

// FocusedId returns the focused widget, if any.
func (m *Memory) FocusedId() (Id, bool) {
	return m.focus.focused, m.focus.focused != IdNil
}

// InterestedInFocus declares that id can take keyboard focus. Widgets
// call it every frame, in paint order; Tab navigation follows that order.
func (m *Memory) InterestedInFocus(id Id) {
	m.focus.register(id)
}

// LockFocus makes the focused widget keep Tab presses for itself (used by
// multi-line text editing). The lock clears whenever focus moves.
func (m *Memory) LockFocus(id Id, locked bool) {
	if m.focus.focused == id {
		m.focus.locked = locked
	}
}
