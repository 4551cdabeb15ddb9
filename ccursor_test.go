package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCCursorRangeSorting(t *testing.T) {
	r := CCursorRangeTwo(CCursorAt(2), CCursorAt(7))
	assert.Equal(t, 2, r.Min())
	assert.Equal(t, 7, r.Max())
	assert.False(t, r.IsEmpty())
	assert.True(t, CCursorRangeSingle(CCursorAt(3)).IsEmpty())
}

func TestCCursorRangeClamp(t *testing.T) {
	r := CCursorRangeTwo(CCursorAt(-2), CCursorAt(99)).ClampTo(5)
	assert.Equal(t, 0, r.Min())
	assert.Equal(t, 5, r.Max())
}

func TestSelectedText(t *testing.T) {
	r := CCursorRangeTwo(CCursorAt(8), CCursorAt(6))
	assert.Equal(t, "wo", r.SelectedText("hello world"))
}

func TestSelectWordAt(t *testing.T) {
	text := "hello world"
	cases := []struct {
		i        int
		min, max int
	}{
		{0, 0, 5},   // start of the first word
		{2, 0, 5},   // inside the first word
		{5, 0, 5},   // just after the first word
		{6, 6, 11},  // start of the second word
		{11, 6, 11}, // end of the text
	}
	for _, c := range cases {
		r := selectWordAt(text, c.i)
		assert.Equal(t, c.min, r.Min(), "click at %d", c.i)
		assert.Equal(t, c.max, r.Max(), "click at %d", c.i)
	}
}

func TestSelectWordTreatsUnderscoreAsWord(t *testing.T) {
	r := selectWordAt("foo_bar baz", 4)
	assert.Equal(t, "foo_bar", r.SelectedText("foo_bar baz"))
}

func TestSelectWordAtPunctuation(t *testing.T) {
	// A click between a word and punctuation expands toward the word only.
	r := selectWordAt("a.b", 1)
	assert.Equal(t, 0, r.Min())
	assert.Equal(t, 1, r.Max())
}

func TestSelectLineAt(t *testing.T) {
	text := "one\ntwo\nthree"
	r := selectLineAt(text, 5)
	assert.Equal(t, "two", r.SelectedText(text))

	r = selectLineAt(text, 0)
	assert.Equal(t, "one", r.SelectedText(text))
}

func TestByteIndexFromChar(t *testing.T) {
	text := "héllo"
	assert.Equal(t, 0, byteIndexFromChar(text, 0))
	assert.Equal(t, 1, byteIndexFromChar(text, 1))
	assert.Equal(t, 3, byteIndexFromChar(text, 2), "é is two bytes")
	assert.Equal(t, len(text), byteIndexFromChar(text, 99))
	assert.Equal(t, 0, byteIndexFromChar(text, -1))
	assert.Equal(t, 5, charCount(text))
}

func TestWordBoundaries(t *testing.T) {
	chars := []rune("one two")
	assert.Equal(t, 3, nextWordBoundary(chars, 0))
	assert.Equal(t, 7, nextWordBoundary(chars, 3))
	assert.Equal(t, 4, prevWordBoundary(chars, 7))
	assert.Equal(t, 0, prevWordBoundary(chars, 4))
}
