package ui

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frameloop/ui/geom"
)

func touchEv(id TouchId, phase TouchPhase, x, y float32) TouchEvent {
	return TouchEvent{DeviceId: 1, Id: id, Phase: phase, Pos: geom.P(x, y)}
}

func TestTwoFingerGestureStartsAndEnds(t *testing.T) {
	ts := newTouchState(1)

	ts.processEvent(touchEv(1, TouchStart, 100, 100))
	assert.False(t, ts.Active(), "one finger is not a gesture")

	ts.processEvent(touchEv(2, TouchStart, 200, 100))
	assert.True(t, ts.Active())
	assert.Equal(t, 2, ts.NumTouches())

	// A third finger ends the gesture.
	ts.processEvent(touchEv(3, TouchStart, 150, 200))
	assert.False(t, ts.Active())

	// Back to two restarts it fresh.
	ts.processEvent(touchEv(3, TouchEnd, 150, 200))
	assert.True(t, ts.Active())

	ts.processEvent(touchEv(1, TouchEnd, 100, 100))
	assert.False(t, ts.Active())
}

func TestPinchZoomDelta(t *testing.T) {
	ts := newTouchState(1)
	ts.processEvent(touchEv(1, TouchStart, 100, 100))
	ts.processEvent(touchEv(2, TouchStart, 200, 100))

	ts.beginFrame()
	// Spread the fingers to double the distance.
	ts.processEvent(touchEv(1, TouchMove, 50, 100))
	ts.processEvent(touchEv(2, TouchMove, 250, 100))

	info, ok := ts.Info()
	require.True(t, ok)
	assert.InDelta(t, 2.0, info.ZoomDelta, 0.001)
	assert.InDelta(t, 0, info.TranslationDelta.X, 0.001, "a symmetric pinch does not translate")
	assert.InDelta(t, 150, info.CenterPos.X, 0.001)
	assert.InDelta(t, 150, info.StartPos.X, 0.001)
}

func TestGestureTranslation(t *testing.T) {
	ts := newTouchState(1)
	ts.processEvent(touchEv(1, TouchStart, 100, 100))
	ts.processEvent(touchEv(2, TouchStart, 200, 100))

	ts.beginFrame()
	ts.processEvent(touchEv(1, TouchMove, 110, 130))
	ts.processEvent(touchEv(2, TouchMove, 210, 130))

	info, ok := ts.Info()
	require.True(t, ok)
	assert.InDelta(t, 1.0, info.ZoomDelta, 0.001)
	assert.InDelta(t, 10, info.TranslationDelta.X, 0.001)
	assert.InDelta(t, 30, info.TranslationDelta.Y, 0.001)
}

func TestGestureRotation(t *testing.T) {
	ts := newTouchState(1)
	ts.processEvent(touchEv(1, TouchStart, 100, 100))
	ts.processEvent(touchEv(2, TouchStart, 200, 100))

	ts.beginFrame()
	// Rotate the pair a quarter turn around its centroid.
	ts.processEvent(touchEv(1, TouchMove, 150, 50))
	ts.processEvent(touchEv(2, TouchMove, 150, 150))

	info, ok := ts.Info()
	require.True(t, ok)
	assert.InDelta(t, math.Pi/2, float64(info.RotationDelta), 0.001)
	assert.InDelta(t, 1.0, info.ZoomDelta, 0.001)
}

func TestGestureDeltasAreIncremental(t *testing.T) {
	ts := newTouchState(1)
	ts.processEvent(touchEv(1, TouchStart, 100, 100))
	ts.processEvent(touchEv(2, TouchStart, 200, 100))

	ts.beginFrame()
	ts.processEvent(touchEv(1, TouchMove, 75, 100))
	ts.processEvent(touchEv(2, TouchMove, 225, 100))
	info, _ := ts.Info()
	assert.InDelta(t, 1.5, info.ZoomDelta, 0.001)

	// No movement in the next frame: deltas reset to neutral.
	ts.beginFrame()
	info, _ = ts.Info()
	assert.InDelta(t, 1.0, info.ZoomDelta, 0.001)
	assert.Equal(t, geom.Vec2{}, info.TranslationDelta)
	assert.InDelta(t, 150, info.StartPos.X, 0.001, "the start centroid is remembered")
}

func TestTouchCancelEndsGesture(t *testing.T) {
	ts := newTouchState(1)
	ts.processEvent(touchEv(1, TouchStart, 100, 100))
	ts.processEvent(touchEv(2, TouchStart, 200, 100))
	require.True(t, ts.Active())

	ts.processEvent(touchEv(2, TouchCancel, 200, 100))
	assert.False(t, ts.Active())
	assert.Equal(t, 1, ts.NumTouches())
}

func TestNormalizeAngle(t *testing.T) {
	assert.InDelta(t, 0, float64(normalizeAngle(2*math.Pi)), 0.001)
	assert.InDelta(t, math.Pi/2, float64(normalizeAngle(math.Pi/2-4*math.Pi)), 0.001)
	assert.InDelta(t, -math.Pi/2, float64(normalizeAngle(3*math.Pi/2)), 0.001)
}
