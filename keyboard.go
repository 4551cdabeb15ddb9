package ui

import "fmt"

// Key identifies a keyboard key, independent of layout.
type Key int

const (
	KeyNone Key = iota
	KeyDown
	KeyLeft
	KeyRight
	KeyUp
	KeyEscape
	KeyTab
	KeyBackspace
	KeyEnter
	KeySpace
	KeyInsert
	KeyDelete
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyMinus
	KeyPlus
	KeyEquals
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyCount
)

// Key repeat timing constants.
const (
	KeyRepeatDelay    float32 = 0.4  // Initial delay before repeat starts (seconds)
	KeyRepeatInterval float32 = 0.03 // Repeat interval once repeating (seconds)
)

// Name returns a human-readable key name for logs and shortcut display.
func (k Key) Name() string {
	switch {
	case k >= Key0 && k <= Key9:
		return string(rune('0' + (k - Key0)))
	case k >= KeyA && k <= KeyZ:
		return string(rune('A' + (k - KeyA)))
	case k >= KeyF1 && k <= KeyF12:
		return fmt.Sprintf("F%d", int(k-KeyF1)+1)
	}
	names := map[Key]string{
		KeyDown:      "Down",
		KeyLeft:      "Left",
		KeyRight:     "Right",
		KeyUp:        "Up",
		KeyEscape:    "Escape",
		KeyTab:       "Tab",
		KeyBackspace: "Backspace",
		KeyEnter:     "Enter",
		KeySpace:     "Space",
		KeyInsert:    "Insert",
		KeyDelete:    "Delete",
		KeyHome:      "Home",
		KeyEnd:       "End",
		KeyPageUp:    "PageUp",
		KeyPageDown:  "PageDown",
		KeyMinus:     "Minus",
		KeyPlus:      "Plus",
		KeyEquals:    "Equals",
	}
	if n, ok := names[k]; ok {
		return n
	}
	return "?"
}

// Modifiers is the state of the modifier keys.
//
// Command abstracts over platforms: hosts should set it alongside MacCmd on
// mac and alongside Ctrl elsewhere, so cross-platform shortcuts can test
// Command alone.
type Modifiers struct {
	Alt     bool
	Ctrl    bool
	Shift   bool
	MacCmd  bool
	Command bool
}

// ModifiersNone is the empty modifier state.
var ModifiersNone = Modifiers{}

// IsNone reports whether no modifier is held.
func (m Modifiers) IsNone() bool {
	return m == Modifiers{}
}

// Any reports whether at least one modifier is held.
func (m Modifiers) Any() bool {
	return !m.IsNone()
}

// ShiftOnly reports whether shift is the only held modifier.
func (m Modifiers) ShiftOnly() bool {
	return m.Shift && !m.Alt && !m.Ctrl && !m.MacCmd && !m.Command
}

// CommandOnly reports whether the platform command key is held without alt
// or shift.
func (m Modifiers) CommandOnly() bool {
	return m.Command && !m.Alt && !m.Shift
}

// Plus returns the union of two modifier states.
func (m Modifiers) Plus(o Modifiers) Modifiers {
	return Modifiers{
		Alt:     m.Alt || o.Alt,
		Ctrl:    m.Ctrl || o.Ctrl,
		Shift:   m.Shift || o.Shift,
		MacCmd:  m.MacCmd || o.MacCmd,
		Command: m.Command || o.Command,
	}
}

// MatchesLogically compares modifier states treating Ctrl and Command as
// interchangeable with their platform aliases. Use it when matching
// shortcut patterns against the live state.
func (m Modifiers) MatchesLogically(pattern Modifiers) bool {
	if m.Alt != pattern.Alt || m.Shift != pattern.Shift {
		return false
	}
	return (m.Ctrl || m.Command || m.MacCmd) == (pattern.Ctrl || pattern.Command || pattern.MacCmd)
}

// KeyboardShortcut is a modifier pattern plus a key.
type KeyboardShortcut struct {
	Modifiers Modifiers
	Key       Key
}

// Shortcut builds a KeyboardShortcut.
func Shortcut(mods Modifiers, key Key) KeyboardShortcut {
	return KeyboardShortcut{Modifiers: mods, Key: key}
}

// Keymap selects the platform key binding convention for text editing.
type Keymap int

const (
	// KeymapStandard uses Ctrl+Arrow word movement and Home/End line
	// movement (Windows, Linux).
	KeymapStandard Keymap = iota
	// KeymapMac uses Alt+Arrow word movement, Cmd+Arrow line/document
	// movement, and the Ctrl+A/E/P/N/B/F emacs bindings.
	KeymapMac
)
