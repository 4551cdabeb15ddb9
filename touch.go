package ui

import (
	"sort"

	"github.com/chewxy/math32"

	"github.com/frameloop/ui/geom"
)

// MultiTouchInfo is the per-frame summary of a live two-finger gesture.
// Deltas compare this frame against the previous one, so callers apply
// them incrementally.
type MultiTouchInfo struct {
	// NumTouches is the number of live touches on the device.
	NumTouches int
	// ZoomDelta is the multiplicative pinch factor since last frame.
	ZoomDelta float32
	// ZoomDelta2D is the pinch factor split per axis, for proportional
	// zoom of plots with independent axes.
	ZoomDelta2D geom.Vec2
	// RotationDelta is the rotation since last frame in radians,
	// positive clockwise in screen coordinates.
	RotationDelta float32
	// TranslationDelta is the centroid movement since last frame.
	TranslationDelta geom.Vec2
	// StartPos is the centroid at gesture start.
	StartPos geom.Pos2
	// CenterPos is the current centroid.
	CenterPos geom.Pos2
	// Force is the average contact force, 0 if unreported.
	Force float32
}

type touchPoint struct {
	pos   geom.Pos2
	force float32
}

// gestureSnapshot is the aggregate of all live touches at one instant.
type gestureSnapshot struct {
	avgPos      geom.Pos2
	avgDist     float32   // mean distance from the centroid
	avgAbsDist2 geom.Vec2 // mean per-axis absolute distance from the centroid
	heading     float32   // angle of the two-touch axis
	avgForce    float32
}

// TouchState tracks the touches of one device and recognizes the
// two-finger pinch/rotate/translate gesture. Adding a third finger or
// lifting one ends the gesture; the remaining movement is not misread as
// a new pinch until the touch count is exactly two again.
type TouchState struct {
	device TouchDeviceId

	active map[TouchId]touchPoint

	gestureActive bool
	start         gestureSnapshot
	previous      gestureSnapshot
	current       gestureSnapshot
}

func newTouchState(device TouchDeviceId) *TouchState {
	return &TouchState{
		device: device,
		active: make(map[TouchId]touchPoint),
	}
}

// beginFrame rolls the current snapshot into previous.
func (t *TouchState) beginFrame() {
	if t.gestureActive {
		t.previous = t.current
	}
}

func (t *TouchState) processEvent(e TouchEvent) {
	switch e.Phase {
	case TouchStart:
		t.active[e.Id] = touchPoint{pos: e.Pos, force: e.Force}
		t.endGesture()
		t.maybeStartGesture()
	case TouchMove:
		if _, ok := t.active[e.Id]; ok {
			t.active[e.Id] = touchPoint{pos: e.Pos, force: e.Force}
			if t.gestureActive {
				t.current = t.snapshot()
			}
		}
	case TouchEnd, TouchCancel:
		delete(t.active, e.Id)
		t.endGesture()
		t.maybeStartGesture()
	}
}

func (t *TouchState) maybeStartGesture() {
	if t.gestureActive || len(t.active) != 2 {
		return
	}
	t.gestureActive = true
	s := t.snapshot()
	t.start = s
	t.previous = s
	t.current = s
	uiLogger.Debug("touch gesture started", "device", t.device)
}

func (t *TouchState) endGesture() {
	if t.gestureActive {
		t.gestureActive = false
		uiLogger.Debug("touch gesture ended", "device", t.device)
	}
}

func (t *TouchState) snapshot() gestureSnapshot {
	n := len(t.active)
	if n == 0 {
		return gestureSnapshot{}
	}
	var s gestureSnapshot
	var sum geom.Vec2
	var force float32
	for _, tp := range t.active {
		sum = sum.Add(tp.pos.ToVec())
		force += tp.force
	}
	s.avgPos = sum.Scale(1 / float32(n)).ToPos()
	s.avgForce = force / float32(n)

	var dist float32
	var absDist geom.Vec2
	for _, tp := range t.active {
		d := tp.pos.Sub(s.avgPos)
		dist += d.Length()
		absDist = absDist.Add(d.Abs())
	}
	s.avgDist = dist / float32(n)
	s.avgAbsDist2 = absDist.Scale(1 / float32(n))

	if n == 2 {
		// Stable heading: order the two touches by id.
		ids := make([]TouchId, 0, 2)
		for id := range t.active {
			ids = append(ids, id)
		}
		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
		s.heading = t.active[ids[1]].pos.Sub(t.active[ids[0]].pos).Angle()
	}
	return s
}

// Info returns the gesture summary, or false while no two-finger gesture
// is live.
func (t *TouchState) Info() (MultiTouchInfo, bool) {
	if !t.gestureActive {
		return MultiTouchInfo{}, false
	}
	info := MultiTouchInfo{
		NumTouches:       len(t.active),
		ZoomDelta:        1,
		ZoomDelta2D:      geom.V(1, 1),
		RotationDelta:    normalizeAngle(t.current.heading - t.previous.heading),
		TranslationDelta: t.current.avgPos.Sub(t.previous.avgPos),
		StartPos:         t.start.avgPos,
		CenterPos:        t.current.avgPos,
		Force:            t.current.avgForce,
	}
	if t.previous.avgDist > 0 {
		info.ZoomDelta = t.current.avgDist / t.previous.avgDist
	}
	if t.previous.avgAbsDist2.X > 0 {
		info.ZoomDelta2D.X = t.current.avgAbsDist2.X / t.previous.avgAbsDist2.X
	}
	if t.previous.avgAbsDist2.Y > 0 {
		info.ZoomDelta2D.Y = t.current.avgAbsDist2.Y / t.previous.avgAbsDist2.Y
	}
	return info, true
}

// Active reports whether a two-finger gesture is live.
func (t *TouchState) Active() bool {
	return t.gestureActive
}

// NumTouches returns the number of live touches on the device.
func (t *TouchState) NumTouches() int {
	return len(t.active)
}

// normalizeAngle wraps an angle to (-pi, pi].
func normalizeAngle(a float32) float32 {
	for a > math32.Pi {
		a -= 2 * math32.Pi
	}
	for a <= -math32.Pi {
		a += 2 * math32.Pi
	}
	return a
}
