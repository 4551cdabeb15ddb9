package ui

import "unicode"

// CCursor is a text cursor position given as a character (rune) index,
// never a byte offset. Index 0 is before the first character; an index
// equal to the character count is after the last.
//
// PreferNextRow disambiguates soft-wrap boundaries: the same character
// index sits both at the end of one visual row and at the start of the
// next, and the flag records which of the two the cursor means. It does
// not affect equality or ordering.
type CCursor struct {
	Index         int
	PreferNextRow bool
}

// CCursorAt returns a cursor at the given character index.
func CCursorAt(index int) CCursor {
	return CCursor{Index: index}
}

// CCursorRange is a text selection between two cursors. Primary is the
// end the user is actively moving (where the caret blinks); Secondary is
// the anchor left behind when the selection started. Primary may sit
// before or after Secondary; extent queries must go through Sorted.
type CCursorRange struct {
	Primary   CCursor
	Secondary CCursor

	// HPos remembers the horizontal caret position in points for
	// vertical movement, so moving through a short row does not lose the
	// column. Negative means unset.
	HPos float32
}

// CCursorRangeSingle returns a collapsed range at c.
func CCursorRangeSingle(c CCursor) CCursorRange {
	return CCursorRange{Primary: c, Secondary: c, HPos: -1}
}

// CCursorRangeTwo returns a range anchored at secondary reaching to
// primary.
func CCursorRangeTwo(primary, secondary CCursor) CCursorRange {
	return CCursorRange{Primary: primary, Secondary: secondary, HPos: -1}
}

// IsEmpty reports whether the range selects nothing.
func (r CCursorRange) IsEmpty() bool {
	return r.Primary.Index == r.Secondary.Index
}

// Sorted returns the two cursors ordered by index, regardless of which
// end is primary. Selection direction matters for shift-extension but
// never for extent.
func (r CCursorRange) Sorted() [2]CCursor {
	if r.Secondary.Index < r.Primary.Index {
		return [2]CCursor{r.Secondary, r.Primary}
	}
	return [2]CCursor{r.Primary, r.Secondary}
}

// Min returns the lower character index of the range.
func (r CCursorRange) Min() int { return r.Sorted()[0].Index }

// Max returns the higher character index of the range.
func (r CCursorRange) Max() int { return r.Sorted()[1].Index }

// Contains reports whether o lies entirely inside r.
func (r CCursorRange) Contains(o CCursorRange) bool {
	return r.Min() <= o.Min() && o.Max() <= r.Max()
}

// ClampTo limits both ends to [0, charCount], for when the underlying
// text changed since the range was stored.
func (r CCursorRange) ClampTo(charCount int) CCursorRange {
	clampC := func(c CCursor) CCursor {
		if c.Index < 0 {
			c.Index = 0
		}
		if c.Index > charCount {
			c.Index = charCount
		}
		return c
	}
	r.Primary = clampC(r.Primary)
	r.Secondary = clampC(r.Secondary)
	return r
}

// SelectedText returns the slice of text covered by the range.
func (r CCursorRange) SelectedText(text string) string {
	s := r.Sorted()
	return text[byteIndexFromChar(text, s[0].Index):byteIndexFromChar(text, s[1].Index)]
}

// isWordChar classifies characters for double-click selection and
// word-wise cursor movement: letters, digits and underscore stick
// together, everything else is a boundary.
func isWordChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// isLineBreak classifies characters for triple-click selection.
func isLineBreak(r rune) bool {
	return r == '\n' || r == '\r'
}

// byteIndexFromChar converts a character index into a byte offset for
// slicing. Linear in the index; only call at the string boundary, never
// store the result.
func byteIndexFromChar(text string, charIndex int) int {
	if charIndex <= 0 {
		return 0
	}
	n := 0
	for i := range text {
		if n == charIndex {
			return i
		}
		n++
	}
	return len(text)
}

// charCount returns the number of characters (runes) in text.
func charCount(text string) int {
	n := 0
	for range text {
		n++
	}
	return n
}

// nextBoundary scans forward from the character index and returns the
// index of the next boundary under pred. The first character is always
// consumed so a scan starting mid-run makes progress; the run class is
// taken from the second character examined.
func nextBoundary(chars []rune, from int, pred func(rune) bool) int {
	i := from
	if i >= len(chars) {
		return len(chars)
	}
	i++ // always include the first character
	if i >= len(chars) {
		return len(chars)
	}
	class := pred(chars[i])
	i++
	for i < len(chars) && pred(chars[i]) == class {
		i++
	}
	return i
}

// prevBoundary is nextBoundary scanning backward: it runs the same
// algorithm over the reversed text and maps the result back.
func prevBoundary(chars []rune, from int, pred func(rune) bool) int {
	n := len(chars)
	rev := make([]rune, n)
	for i, r := range chars {
		rev[n-1-i] = r
	}
	return n - nextBoundary(rev, n-from, pred)
}

// nextWordBoundary returns the character index of the next word
// boundary at or after from.
func nextWordBoundary(chars []rune, from int) int {
	return nextBoundary(chars, from, isWordChar)
}

// prevWordBoundary returns the character index of the previous word
// boundary at or before from.
func prevWordBoundary(chars []rune, from int) int {
	return prevBoundary(chars, from, isWordChar)
}

// nextLineBoundary returns the next line boundary at or after from.
func nextLineBoundary(chars []rune, from int) int {
	return nextBoundary(chars, from, isLineBreak)
}

// prevLineBoundary returns the previous line boundary at or before from.
func prevLineBoundary(chars []rune, from int) int {
	return prevBoundary(chars, from, isLineBreak)
}

// selectRunAt expands a click at character index i into a run under
// pred. Both neighbors in the run: select the whole run. One neighbor:
// expand only toward it. Neither: an empty range at i.
//
// This drives double-click word selection (pred = isWordChar) and
// triple-click line selection (pred = "not a line break").
func selectRunAt(chars []rune, i int, pred func(rune) bool) CCursorRange {
	if i < 0 {
		i = 0
	}
	if i > len(chars) {
		i = len(chars)
	}
	beforeIn := i > 0 && pred(chars[i-1])
	afterIn := i < len(chars) && pred(chars[i])

	switch {
	case beforeIn && afterIn:
		min := prevBoundary(chars, i+1, pred)
		return CCursorRangeTwo(CCursorAt(nextBoundary(chars, min, pred)), CCursorAt(min))
	case beforeIn:
		return CCursorRangeTwo(CCursorAt(i), CCursorAt(prevBoundary(chars, i, pred)))
	case afterIn:
		return CCursorRangeTwo(CCursorAt(nextBoundary(chars, i, pred)), CCursorAt(i))
	default:
		return CCursorRangeSingle(CCursorAt(i))
	}
}

// selectWordAt returns the word-selection range for a double-click at
// character index i.
func selectWordAt(text string, i int) CCursorRange {
	return selectRunAt([]rune(text), i, isWordChar)
}

// selectLineAt returns the line-selection range for a triple-click at
// character index i: the run of non-linebreak characters around it.
func selectLineAt(text string, i int) CCursorRange {
	return selectRunAt([]rune(text), i, func(r rune) bool { return !isLineBreak(r) })
}
