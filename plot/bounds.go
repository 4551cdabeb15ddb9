// Package plot provides the float64 data-space math for plot-like views:
// value bounds and the transform between data values and screen positions.
//
// Screen geometry stays float32 (package geom); data values are float64 so
// that deep zooms into large coordinates keep precision.
package plot

import "math"

// Bounds is an axis-aligned range of plot values. Min and Max are indexed
// by axis: 0 = x, 1 = y.
//
// The "nothing" bounds returned by BoundsNothing have Min at +Inf and Max
// at -Inf; extending them with a point yields a zero-span bounds at that
// point.
type Bounds struct {
	Min [2]float64
	Max [2]float64
}

// BoundsNothing returns bounds containing no values.
func BoundsNothing() Bounds {
	inf := math.Inf(1)
	return Bounds{
		Min: [2]float64{inf, inf},
		Max: [2]float64{-inf, -inf},
	}
}

// BoundsFromMinMax returns the bounds spanning (xmin, ymin) to (xmax, ymax).
func BoundsFromMinMax(xmin, ymin, xmax, ymax float64) Bounds {
	return Bounds{
		Min: [2]float64{xmin, ymin},
		Max: [2]float64{xmax, ymax},
	}
}

// BoundsSymmetrical returns bounds spanning ±half on both axes.
func BoundsSymmetrical(half float64) Bounds {
	return BoundsFromMinMax(-half, -half, half, half)
}

// Width returns the x span.
func (b Bounds) Width() float64 {
	return b.Max[0] - b.Min[0]
}

// Height returns the y span.
func (b Bounds) Height() float64 {
	return b.Max[1] - b.Min[1]
}

// Center returns the midpoint of the bounds.
func (b Bounds) Center() (x, y float64) {
	return (b.Min[0] + b.Max[0]) / 2, (b.Min[1] + b.Max[1]) / 2
}

// IsFinite reports whether all four edges are finite.
func (b Bounds) IsFinite() bool {
	return finite(b.Min[0]) && finite(b.Min[1]) && finite(b.Max[0]) && finite(b.Max[1])
}

// IsValid reports whether the bounds are finite with positive spans on
// both axes.
func (b Bounds) IsValid() bool {
	return b.IsFinite() && b.Width() > 0 && b.Height() > 0
}

// IsValidX reports whether the x axis is finite with a positive span.
func (b Bounds) IsValidX() bool {
	return finite(b.Min[0]) && finite(b.Max[0]) && b.Width() > 0
}

// IsValidY reports whether the y axis is finite with a positive span.
func (b Bounds) IsValidY() bool {
	return finite(b.Min[1]) && finite(b.Max[1]) && b.Height() > 0
}

// Extend grows the bounds to include the value (x, y). Non-finite inputs
// are ignored.
func (b Bounds) Extend(x, y float64) Bounds {
	if finite(x) {
		b.Min[0] = math.Min(b.Min[0], x)
		b.Max[0] = math.Max(b.Max[0], x)
	}
	if finite(y) {
		b.Min[1] = math.Min(b.Min[1], y)
		b.Max[1] = math.Max(b.Max[1], y)
	}
	return b
}

// Union returns the smallest bounds containing both b and o.
func (b Bounds) Union(o Bounds) Bounds {
	return Bounds{
		Min: [2]float64{math.Min(b.Min[0], o.Min[0]), math.Min(b.Min[1], o.Min[1])},
		Max: [2]float64{math.Max(b.Max[0], o.Max[0]), math.Max(b.Max[1], o.Max[1])},
	}
}

// Translate moves the bounds by (dx, dy).
func (b Bounds) Translate(dx, dy float64) Bounds {
	b.Min[0] += dx
	b.Max[0] += dx
	b.Min[1] += dy
	b.Max[1] += dy
	return b
}

// ExpandX grows the x range by pad on each side.
func (b Bounds) ExpandX(pad float64) Bounds {
	b.Min[0] -= pad
	b.Max[0] += pad
	return b
}

// ExpandY grows the y range by pad on each side.
func (b Bounds) ExpandY(pad float64) Bounds {
	b.Min[1] -= pad
	b.Max[1] += pad
	return b
}

// Expand grows both ranges by pad on each side.
func (b Bounds) Expand(pad float64) Bounds {
	return b.ExpandX(pad).ExpandY(pad)
}

// ExpandProportionally grows each axis by fraction*span on each side.
func (b Bounds) ExpandProportionally(fraction float64) Bounds {
	return b.ExpandX(fraction * b.Width()).ExpandY(fraction * b.Height())
}

// Zoom shrinks (factor > 1) or grows (factor < 1) the bounds per axis,
// keeping the value at center fixed.
func (b Bounds) Zoom(factorX, factorY float64, centerX, centerY float64) Bounds {
	b.Min[0] = centerX + (b.Min[0]-centerX)/factorX
	b.Max[0] = centerX + (b.Max[0]-centerX)/factorX
	b.Min[1] = centerY + (b.Min[1]-centerY)/factorY
	b.Max[1] = centerY + (b.Max[1]-centerY)/factorY
	return b
}

// MakeXSymmetric centers the x range on zero, keeping its reach.
func (b Bounds) MakeXSymmetric() Bounds {
	r := math.Max(math.Abs(b.Min[0]), math.Abs(b.Max[0]))
	b.Min[0], b.Max[0] = -r, r
	return b
}

// MakeYSymmetric centers the y range on zero, keeping its reach.
func (b Bounds) MakeYSymmetric() Bounds {
	r := math.Max(math.Abs(b.Min[1]), math.Abs(b.Max[1]))
	b.Min[1], b.Max[1] = -r, r
	return b
}

// Contains reports whether the value (x, y) lies inside the bounds,
// edges inclusive.
func (b Bounds) Contains(x, y float64) bool {
	return b.Min[0] <= x && x <= b.Max[0] && b.Min[1] <= y && y <= b.Max[1]
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
