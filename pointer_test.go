package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frameloop/ui/geom"
)

func pressAt(pos geom.Pos2) Event {
	return PointerButtonEvent{Pos: pos, Button: PointerPrimary, Pressed: true}
}

func releaseAt(pos geom.Pos2) Event {
	return PointerButtonEvent{Pos: pos, Button: PointerPrimary}
}

func TestClickDetection(t *testing.T) {
	s := NewInputState()
	p := geom.P(100, 100)

	s.begin(rawAt(0.00, pressAt(p)))
	require.True(t, s.Pointer.ButtonPressed(PointerPrimary))
	_, clicked := s.Pointer.ButtonClicked(PointerPrimary)
	assert.False(t, clicked, "click completes on release, not press")

	s.begin(rawAt(0.05, releaseAt(p)))
	click, clicked := s.Pointer.ButtonClicked(PointerPrimary)
	require.True(t, clicked)
	assert.Equal(t, 1, click.Count)
	assert.Equal(t, p, click.Pos)

	// Edges are per frame.
	s.begin(rawAt(0.10))
	_, clicked = s.Pointer.ButtonClicked(PointerPrimary)
	assert.False(t, clicked)
}

func TestDoubleAndTripleClick(t *testing.T) {
	s := NewInputState()
	p := geom.P(50, 50)
	now := 0.0
	clickOnce := func() Click {
		now += 0.05
		s.begin(rawAt(now, pressAt(p)))
		now += 0.05
		s.begin(rawAt(now, releaseAt(p)))
		c, ok := s.Pointer.ButtonClicked(PointerPrimary)
		require.True(t, ok)
		return c
	}

	assert.Equal(t, 1, clickOnce().Count)
	assert.Equal(t, 2, clickOnce().Count)
	assert.Equal(t, 3, clickOnce().Count)
	// A fourth rapid click starts over.
	assert.Equal(t, 1, clickOnce().Count)
}

func TestDoubleClickNeedsProximityAndSpeed(t *testing.T) {
	s := NewInputState()
	p := geom.P(50, 50)

	s.begin(rawAt(0.00, pressAt(p)))
	s.begin(rawAt(0.05, releaseAt(p)))

	// Too far away: not a double click.
	far := geom.P(200, 50)
	s.begin(rawAt(0.10, pressAt(far)))
	s.begin(rawAt(0.15, releaseAt(far)))
	c, ok := s.Pointer.ButtonClicked(PointerPrimary)
	require.True(t, ok)
	assert.Equal(t, 1, c.Count)

	// Too slow: not a double click either.
	s.begin(rawAt(1.00, pressAt(far)))
	s.begin(rawAt(1.05, releaseAt(far)))
	c, ok = s.Pointer.ButtonClicked(PointerPrimary)
	require.True(t, ok)
	assert.Equal(t, 1, c.Count)
}

func TestDragRulesOutClickPermanently(t *testing.T) {
	s := NewInputState()
	origin := geom.P(100, 100)

	s.begin(rawAt(0.00, pressAt(origin)))
	assert.True(t, s.Pointer.CouldAnyButtonBeClick())

	s.begin(rawAt(0.02, PointerMovedEvent{Pos: geom.P(140, 100)}))
	assert.False(t, s.Pointer.CouldAnyButtonBeClick())
	assert.True(t, s.Pointer.IsDecidedlyDragging())

	// Returning to the origin does not resurrect the click.
	s.begin(rawAt(0.04, PointerMovedEvent{Pos: origin}))
	assert.False(t, s.Pointer.CouldAnyButtonBeClick())

	s.begin(rawAt(0.06, releaseAt(origin)))
	_, clicked := s.Pointer.ButtonClicked(PointerPrimary)
	assert.False(t, clicked)
}

func TestSlowPressIsNotAClick(t *testing.T) {
	s := NewInputState()
	p := geom.P(10, 10)
	s.begin(rawAt(0.0, pressAt(p)))
	s.begin(rawAt(1.5, releaseAt(p)))
	_, clicked := s.Pointer.ButtonClicked(PointerPrimary)
	assert.False(t, clicked)
}

func TestDeltaAccumulatesWithinFrame(t *testing.T) {
	s := NewInputState()
	s.begin(rawAt(0.00, PointerMovedEvent{Pos: geom.P(0, 0)}))
	s.begin(rawAt(0.02,
		PointerMovedEvent{Pos: geom.P(10, 0)},
		PointerMovedEvent{Pos: geom.P(10, 5)},
	))
	assert.Equal(t, geom.V(10, 5), s.Pointer.Delta())

	s.begin(rawAt(0.04))
	assert.Equal(t, geom.Vec2{}, s.Pointer.Delta(), "delta resets each frame")
}

func TestVelocityFromHistory(t *testing.T) {
	s := NewInputState()
	now := 0.0
	for i := 1; i <= 5; i++ {
		now += 0.02
		s.begin(rawAt(now, PointerMovedEvent{Pos: geom.P(float32(i)*10, 0)}))
	}
	now += 0.02
	s.begin(rawAt(now))
	v := s.Pointer.Velocity()
	assert.InDelta(t, 500, v.X, 50)
	assert.InDelta(t, 0, v.Y, 1)
}

func TestPointerGoneReleasesButtons(t *testing.T) {
	s := NewInputState()
	p := geom.P(10, 10)
	s.begin(rawAt(0.0, pressAt(p)))
	require.True(t, s.Pointer.AnyDown())

	s.begin(rawAt(0.02, PointerGoneEvent{}))
	assert.False(t, s.Pointer.AnyDown())
	assert.True(t, s.Pointer.AnyReleased())
	_, has := s.Pointer.Pos()
	assert.False(t, has)
}

func TestInteractPosValidOnReleaseFrame(t *testing.T) {
	s := NewInputState()
	p := geom.P(10, 10)
	s.begin(rawAt(0.0, pressAt(p)))
	s.begin(rawAt(0.05, releaseAt(p), PointerGoneEvent{}))
	pos, ok := s.Pointer.InteractPos()
	require.True(t, ok, "hit tests still need a position on the release frame")
	assert.Equal(t, p, pos)
}
