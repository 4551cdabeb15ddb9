package plot

import (
	"math"

	"github.com/frameloop/ui/geom"
)

// Axis selects one of the two plot axes.
type Axis int

const (
	XAxis Axis = 0
	YAxis Axis = 1
)

// Transform maps between plot values and screen positions inside a frame
// rect. Screen y is inverted: Bounds.Max[1] maps to the frame's top edge.
type Transform struct {
	frame     geom.Rect
	bounds    Bounds
	xCentered bool
	yCentered bool
}

// NewTransform builds a transform for the given screen frame and value
// bounds. Degenerate bounds are normalized per axis: a non-finite axis
// becomes [-1, 1], a zero-or-negative span becomes center±1. Centered axes
// are made symmetric around zero.
func NewTransform(frame geom.Rect, bounds Bounds, xCentered, yCentered bool) Transform {
	t := Transform{frame: frame, xCentered: xCentered, yCentered: yCentered}
	t.setBounds(bounds)
	return t
}

func (t *Transform) setBounds(b Bounds) {
	if !b.IsValidX() {
		c := (b.Min[0] + b.Max[0]) / 2
		if !finite(c) {
			c = 0
		}
		b.Min[0], b.Max[0] = c-1, c+1
	}
	if !b.IsValidY() {
		c := (b.Min[1] + b.Max[1]) / 2
		if !finite(c) {
			c = 0
		}
		b.Min[1], b.Max[1] = c-1, c+1
	}
	if t.xCentered {
		b = b.MakeXSymmetric()
	}
	if t.yCentered {
		b = b.MakeYSymmetric()
	}
	t.bounds = b
}

// Frame returns the screen rect the transform maps into.
func (t *Transform) Frame() geom.Rect {
	return t.frame
}

// Bounds returns the current value bounds.
func (t *Transform) Bounds() Bounds {
	return t.bounds
}

// SetBounds replaces the value bounds, normalizing degenerate input the
// same way as NewTransform.
func (t *Transform) SetBounds(b Bounds) {
	t.setBounds(b)
}

// PosFromValue maps the plot value (x, y) to a screen position.
func (t *Transform) PosFromValue(x, y float64) geom.Pos2 {
	nx := (x - t.bounds.Min[0]) / t.bounds.Width()
	ny := (y - t.bounds.Min[1]) / t.bounds.Height()
	return geom.P(
		t.frame.Left()+float32(nx)*t.frame.Width(),
		t.frame.Bottom()-float32(ny)*t.frame.Height(),
	)
}

// ValueFromPos maps a screen position back to a plot value.
func (t *Transform) ValueFromPos(pos geom.Pos2) (x, y float64) {
	nx := float64(pos.X-t.frame.Left()) / float64(t.frame.Width())
	ny := float64(t.frame.Bottom()-pos.Y) / float64(t.frame.Height())
	return t.bounds.Min[0] + nx*t.bounds.Width(), t.bounds.Min[1] + ny*t.bounds.Height()
}

// DValueDPos returns how much the plot value changes per screen point on
// each axis. The y component is negative (screen y grows downward).
func (t *Transform) DValueDPos() (dx, dy float64) {
	return t.bounds.Width() / float64(t.frame.Width()),
		-t.bounds.Height() / float64(t.frame.Height())
}

// DPosDValue returns how many screen points one plot unit covers on each
// axis. The y component is negative.
func (t *Transform) DPosDValue() (dx, dy float64) {
	return float64(t.frame.Width()) / t.bounds.Width(),
		-float64(t.frame.Height()) / t.bounds.Height()
}

// TranslateBounds moves the bounds by the given screen-space delta.
// Centered axes ignore translation on their axis.
func (t *Transform) TranslateBounds(screenDelta geom.Vec2) {
	dvx, dvy := t.DValueDPos()
	dx := float64(screenDelta.X) * dvx
	dy := float64(screenDelta.Y) * dvy
	if t.xCentered {
		dx = 0
	}
	if t.yCentered {
		dy = 0
	}
	t.setBounds(t.bounds.Translate(dx, dy))
}

// ZoomAroundPos zooms the bounds by the given per-axis factors, keeping the
// plot value under the screen position fixed. Factors > 1 zoom in. If the
// zoomed bounds would be invalid the zoom is rejected and the bounds stay
// unchanged.
func (t *Transform) ZoomAroundPos(factor geom.Vec2, pos geom.Pos2) {
	if factor.X <= 0 || factor.Y <= 0 {
		return
	}
	cx, cy := t.ValueFromPos(pos)
	zoomed := t.bounds.Zoom(float64(factor.X), float64(factor.Y), cx, cy)
	if !zoomed.IsValid() {
		return
	}
	t.setBounds(zoomed)
}

// Aspect returns the ratio of data units per point on x to data units per
// point on y. 1 means equal scaling on both axes.
func (t *Transform) Aspect() float64 {
	return (t.bounds.Width() / float64(t.frame.Width())) /
		(t.bounds.Height() / float64(t.frame.Height()))
}

// SetAspectByChangingAxisBounds adjusts the chosen axis so that Aspect
// becomes the given value. The other axis is left untouched.
func (t *Transform) SetAspectByChangingAxisBounds(aspect float64, axis Axis) {
	cur := t.Aspect()
	if math.Abs(cur-aspect) < 1e-5 {
		return
	}
	b := t.bounds
	switch axis {
	case XAxis:
		b = b.ExpandX((aspect/cur - 1) * b.Width() * 0.5)
	case YAxis:
		b = b.ExpandY((cur/aspect - 1) * b.Height() * 0.5)
	}
	t.setBounds(b)
}

// SetAspectByExpanding adjusts whichever axis must grow so that Aspect
// becomes the given value. Bounds only ever expand, so no data is cut off.
func (t *Transform) SetAspectByExpanding(aspect float64) {
	cur := t.Aspect()
	if math.Abs(cur-aspect) < 1e-5 {
		return
	}
	b := t.bounds
	if cur < aspect {
		b = b.ExpandX((aspect/cur - 1) * b.Width() * 0.5)
	} else {
		b = b.ExpandY((cur/aspect - 1) * b.Height() * 0.5)
	}
	t.setBounds(b)
}
