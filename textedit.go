package ui

import "strings"

// maxUndoDepth bounds the per-widget undo stack.
const maxUndoDepth = 100

type undoRecord struct {
	text   string
	crange CCursorRange
}

// TextEditState is the per-widget persisted state of a text edit: the
// selection, the undo stack and the IME/blink bookkeeping.
type TextEditState struct {
	crange    CCursorRange
	hasRange  bool
	undoStack []undoRecord
	redoStack []undoRecord
	// lastInteraction drives the caret blink phase.
	lastInteraction float64
}

// CursorRange returns the selection clamped to the given text, or a
// cursor at the end of the text when none was stored yet.
func (s *TextEditState) CursorRange(text string) CCursorRange {
	if !s.hasRange {
		return CCursorRangeSingle(CCursorAt(charCount(text)))
	}
	return s.crange.ClampTo(charCount(text))
}

// SetCursorRange stores the selection.
func (s *TextEditState) SetCursorRange(r CCursorRange) {
	s.crange = r
	s.hasRange = true
}

func (s *TextEditState) pushUndo(text string, r CCursorRange) {
	if n := len(s.undoStack); n > 0 && s.undoStack[n-1].text == text {
		return
	}
	s.undoStack = append(s.undoStack, undoRecord{text: text, crange: r})
	if len(s.undoStack) > maxUndoDepth {
		copy(s.undoStack, s.undoStack[1:])
		s.undoStack = s.undoStack[:maxUndoDepth]
	}
	s.redoStack = s.redoStack[:0]
}

func (s *TextEditState) undo(current string, r CCursorRange) (string, CCursorRange, bool) {
	n := len(s.undoStack)
	if n == 0 {
		return current, r, false
	}
	rec := s.undoStack[n-1]
	s.undoStack = s.undoStack[:n-1]
	s.redoStack = append(s.redoStack, undoRecord{text: current, crange: r})
	return rec.text, rec.crange, true
}

func (s *TextEditState) redo(current string, r CCursorRange) (string, CCursorRange, bool) {
	n := len(s.redoStack)
	if n == 0 {
		return current, r, false
	}
	rec := s.redoStack[n-1]
	s.redoStack = s.redoStack[:n-1]
	s.undoStack = append(s.undoStack, undoRecord{text: current, crange: r})
	return rec.text, rec.crange, true
}

// --- cursor movement over a galley ---

// moveLeft returns the cursor one character to the left, or the left
// edge of the selection when collapsing a non-empty one.
func moveLeft(c CCursor) CCursor {
	if c.Index > 0 {
		c.Index--
	}
	c.PreferNextRow = true
	return c
}

func moveRight(c CCursor, count int) CCursor {
	if c.Index < count {
		c.Index++
	}
	c.PreferNextRow = false
	return c
}

func moveWordLeft(text string, c CCursor) CCursor {
	return CCursor{Index: prevWordBoundary([]rune(text), c.Index), PreferNextRow: true}
}

func moveWordRight(text string, c CCursor) CCursor {
	return CCursor{Index: nextWordBoundary([]rune(text), c.Index)}
}

// moveRowStart moves to the start of the cursor's visual row.
func moveRowStart(g *Galley, c CCursor) CCursor {
	row := &g.Rows[g.rowForCursor(c)]
	return CCursor{Index: row.Chars.Start, PreferNextRow: true}
}

// moveRowEnd moves past the last character of the cursor's visual row.
func moveRowEnd(g *Galley, c CCursor) CCursor {
	row := &g.Rows[g.rowForCursor(c)]
	return CCursor{Index: row.Chars.End}
}

// moveVertical moves the cursor dRows visual rows, remembering the
// horizontal position in hPos across short rows. Moving past the first
// or last row snaps to the document boundary.
func moveVertical(g *Galley, c CCursor, dRows int, hPos *float32) CCursor {
	if len(g.Rows) == 0 {
		return c
	}
	ri := g.rowForCursor(c)
	if *hPos < 0 {
		*hPos = g.PosFromCursor(c).Min.X
	}
	target := ri + dRows
	if target < 0 {
		*hPos = -1
		return CCursor{Index: 0, PreferNextRow: true}
	}
	if target >= len(g.Rows) {
		*hPos = -1
		return CCursor{Index: g.CharCount()}
	}
	return g.cursorFromRowX(target, *hPos)
}

// textEditOp is one decoded editing command.
type textEditOp int

const (
	opNone textEditOp = iota
	opLeft
	opRight
	opWordLeft
	opWordRight
	opUp
	opDown
	opRowStart
	opRowEnd
	opDocStart
	opDocEnd
	opPageUp
	opPageDown
)

// decodeMoveKey maps a key event to a movement op under the given
// keymap. Returns opNone for keys that are not movement.
func decodeMoveKey(e KeyEvent, keymap Keymap) textEditOp {
	mods := e.Modifiers
	if keymap == KeymapMac {
		// The emacs-style Ctrl bindings apply only without Shift:
		// Ctrl+Shift+letter is reserved for other shortcuts.
		if mods.Ctrl && !mods.Shift && !mods.Alt && !mods.MacCmd {
			switch e.Key {
			case KeyA:
				return opRowStart
			case KeyE:
				return opRowEnd
			case KeyP:
				return opUp
			case KeyN:
				return opDown
			case KeyB:
				return opLeft
			case KeyF:
				return opRight
			}
		}
		switch e.Key {
		case KeyLeft:
			switch {
			case mods.Alt:
				return opWordLeft
			case mods.MacCmd || mods.Command:
				return opRowStart
			default:
				return opLeft
			}
		case KeyRight:
			switch {
			case mods.Alt:
				return opWordRight
			case mods.MacCmd || mods.Command:
				return opRowEnd
			default:
				return opRight
			}
		case KeyUp:
			if mods.MacCmd || mods.Command {
				return opDocStart
			}
			return opUp
		case KeyDown:
			if mods.MacCmd || mods.Command {
				return opDocEnd
			}
			return opDown
		case KeyHome:
			return opDocStart
		case KeyEnd:
			return opDocEnd
		case KeyPageUp:
			return opPageUp
		case KeyPageDown:
			return opPageDown
		}
		return opNone
	}

	switch e.Key {
	case KeyLeft:
		if mods.Ctrl || mods.Command {
			return opWordLeft
		}
		return opLeft
	case KeyRight:
		if mods.Ctrl || mods.Command {
			return opWordRight
		}
		return opRight
	case KeyUp:
		if mods.Ctrl || mods.Command {
			return opDocStart
		}
		return opUp
	case KeyDown:
		if mods.Ctrl || mods.Command {
			return opDocEnd
		}
		return opDown
	case KeyHome:
		if mods.Ctrl || mods.Command {
			return opDocStart
		}
		return opRowStart
	case KeyEnd:
		if mods.Ctrl || mods.Command {
			return opDocEnd
		}
		return opRowEnd
	case KeyPageUp:
		return opPageUp
	case KeyPageDown:
		return opPageDown
	}
	return opNone
}

// applyMoveOp moves the range's primary cursor. Without shift the
// secondary snaps to the moved primary, collapsing the selection; with
// shift only the primary moves, extending it. Plain left/right on a
// non-empty selection collapse to the respective edge first.
func applyMoveOp(op textEditOp, r CCursorRange, text string, g *Galley, shift bool, pageRows int) CCursorRange {
	if op != opUp && op != opDown {
		r.HPos = -1
	}
	c := r.Primary
	switch op {
	case opLeft:
		if !shift && !r.IsEmpty() {
			c = r.Sorted()[0]
		} else {
			c = moveLeft(c)
		}
	case opRight:
		if !shift && !r.IsEmpty() {
			c = r.Sorted()[1]
		} else {
			c = moveRight(c, g.CharCount())
		}
	case opWordLeft:
		c = moveWordLeft(text, c)
	case opWordRight:
		c = moveWordRight(text, c)
	case opUp:
		c = moveVertical(g, c, -1, &r.HPos)
	case opDown:
		c = moveVertical(g, c, 1, &r.HPos)
	case opPageUp:
		c = moveVertical(g, c, -pageRows, &r.HPos)
	case opPageDown:
		c = moveVertical(g, c, pageRows, &r.HPos)
	case opRowStart:
		c = moveRowStart(g, c)
	case opRowEnd:
		c = moveRowEnd(g, c)
	case opDocStart:
		c = CCursor{Index: 0, PreferNextRow: true}
	case opDocEnd:
		c = CCursor{Index: g.CharCount()}
	}
	r.Primary = c
	if !shift {
		r.Secondary = c
	}
	return r
}

// --- text mutation (all indices are character indices) ---

// insertText replaces the selection with insert and returns the new text
// and the collapsed cursor after it. charLimit of 0 means unlimited.
func insertText(text string, r CCursorRange, insert string, charLimit int) (string, CCursorRange) {
	if charLimit > 0 {
		room := charLimit - charCount(text) + r.Max() - r.Min()
		if room <= 0 {
			return text, r
		}
		if charCount(insert) > room {
			insert = string([]rune(insert)[:room])
		}
	}
	lo := byteIndexFromChar(text, r.Min())
	hi := byteIndexFromChar(text, r.Max())
	out := text[:lo] + insert + text[hi:]
	c := CCursorAt(r.Min() + charCount(insert))
	return out, CCursorRangeSingle(c)
}

// deleteRange removes the characters in [lo, hi) and returns the new
// text with the cursor collapsed at lo.
func deleteRange(text string, lo, hi int) (string, CCursorRange) {
	if hi < lo {
		lo, hi = hi, lo
	}
	b0 := byteIndexFromChar(text, lo)
	b1 := byteIndexFromChar(text, hi)
	return text[:b0] + text[b1:], CCursorRangeSingle(CCursorAt(lo))
}

// backspace deletes the selection, or the character (or word, with the
// word modifier) before the cursor.
func backspace(text string, r CCursorRange, word bool) (string, CCursorRange) {
	if !r.IsEmpty() {
		return deleteRange(text, r.Min(), r.Max())
	}
	i := r.Primary.Index
	if i == 0 {
		return text, r
	}
	lo := i - 1
	if word {
		lo = prevWordBoundary([]rune(text), i)
	}
	return deleteRange(text, lo, i)
}

// deleteForward deletes the selection, or the character (or word) after
// the cursor.
func deleteForward(text string, r CCursorRange, word bool) (string, CCursorRange) {
	if !r.IsEmpty() {
		return deleteRange(text, r.Min(), r.Max())
	}
	i := r.Primary.Index
	n := charCount(text)
	if i >= n {
		return text, r
	}
	hi := i + 1
	if word {
		hi = nextWordBoundary([]rune(text), i)
	}
	return deleteRange(text, i, hi)
}

// wordModifier reports whether the word-wise delete modifier is held
// under the keymap: Alt on mac, Ctrl elsewhere.
func wordModifier(mods Modifiers, keymap Keymap) bool {
	if keymap == KeymapMac {
		return mods.Alt
	}
	return mods.Ctrl
}

// sanitizeText strips control characters a host might deliver in text
// events, keeping tabs.
func sanitizeText(s string) string {
	if !strings.ContainsFunc(s, func(r rune) bool { return r < 0x20 && r != '\t' && r != '\n' }) {
		return s
	}
	var b strings.Builder
	for _, r := range s {
		if r >= 0x20 || r == '\t' || r == '\n' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// textEditEvents applies one frame of events to the text and selection.
// relayout rebuilds the galley after a mutation so row-based movement
// later in the same batch sees fresh geometry. Returns the new text,
// range, whether the text changed and whether the edit was "committed"
// (Enter in a single-line edit).
func (ctx *Context) textEditEvents(state *TextEditState, text string, g *Galley, singleLine bool, charLimit int, pageRows int, relayout func(string) *Galley) (string, CCursorRange, bool, bool) {
	r := state.CursorRange(text)
	changed := false
	committed := false

	mutate := func(newText string, newRange CCursorRange) {
		if newText != text {
			state.pushUndo(text, r)
			text = newText
			changed = true
			g = relayout(text)
		}
		r = newRange
	}

	for _, ev := range ctx.input.Events() {
		switch e := ev.(type) {
		case TextEvent:
			if t := sanitizeText(e.Text); t != "" {
				nt, nr := insertText(text, r, t, charLimit)
				mutate(nt, nr)
			}
		case PasteEvent:
			t := sanitizeText(e.Text)
			if singleLine {
				t = strings.ReplaceAll(t, "\n", " ")
			}
			if t != "" {
				nt, nr := insertText(text, r, t, charLimit)
				mutate(nt, nr)
			}
		case CopyEvent:
			if !r.IsEmpty() {
				ctx.CopyText(r.SelectedText(text))
			}
		case CutEvent:
			if !r.IsEmpty() {
				ctx.CopyText(r.SelectedText(text))
				nt, nr := deleteRange(text, r.Min(), r.Max())
				mutate(nt, nr)
			}
		case KeyEvent:
			if !e.Pressed {
				continue
			}
			if op := decodeMoveKey(e, ctx.keymap); op != opNone {
				r = applyMoveOp(op, r, text, g, e.Modifiers.Shift, pageRows)
				continue
			}
			mods := e.Modifiers
			switch e.Key {
			case KeyBackspace:
				nt, nr := backspace(text, r, wordModifier(mods, ctx.keymap))
				mutate(nt, nr)
			case KeyDelete:
				nt, nr := deleteForward(text, r, wordModifier(mods, ctx.keymap))
				mutate(nt, nr)
			case KeyEnter:
				if singleLine {
					committed = true
				} else {
					nt, nr := insertText(text, r, "\n", charLimit)
					mutate(nt, nr)
				}
			case KeyA:
				if mods.CommandOnly() {
					r = CCursorRangeTwo(CCursorAt(charCount(text)), CCursorAt(0))
				}
			case KeyZ:
				if mods.Command && !mods.Alt {
					var ok bool
					var nt string
					if mods.Shift {
						nt, r, ok = state.redo(text, r)
					} else {
						nt, r, ok = state.undo(text, r)
					}
					if ok && nt != text {
						text = nt
						changed = true
						g = relayout(text)
					}
				}
			case KeyY:
				if mods.CommandOnly() {
					if nt, nr, ok := state.redo(text, r); ok {
						text, r = nt, nr
						changed = true
						g = relayout(text)
					}
				}
			}
		}
	}

	r = r.ClampTo(charCount(text))
	state.SetCursorRange(r)
	return text, r, changed, committed
}

// displayText is what the galley shows: the password mask hides content
// but keeps one mask character per real character, so cursor geometry
// still lines up.
func displayText(text string, password bool) string {
	if !password {
		return text
	}
	return strings.Repeat("•", charCount(text))
}
