package geom

import "github.com/chewxy/math32"

// Rect is an axis-aligned rectangle given by its min (left-top) and max
// (right-bottom) corners.
//
// The zero-area "nothing" rect returned by RectNothing has Min at +Inf and
// Max at -Inf. It contains no point, unions with it return the other
// operand unchanged, and extending it by a point yields a zero-sized rect
// at that point. Functions on Rect never panic on nothing or on negative
// rects; queries just answer accordingly.
type Rect struct {
	Min, Max Pos2
}

// RectFromMinMax returns the rect spanning min to max.
func RectFromMinMax(min, max Pos2) Rect {
	return Rect{Min: min, Max: max}
}

// RectFromMinSize returns the rect at min with the given size.
func RectFromMinSize(min Pos2, size Vec2) Rect {
	return Rect{Min: min, Max: min.Add(size)}
}

// RectFromCenterSize returns the rect centered on center with the given size.
func RectFromCenterSize(center Pos2, size Vec2) Rect {
	half := size.Scale(0.5)
	return Rect{Min: center.SubVec(half), Max: center.Add(half)}
}

// RectFromPoints returns the smallest rect containing all the given points.
func RectFromPoints(points ...Pos2) Rect {
	r := RectNothing()
	for _, p := range points {
		r = r.ExtendWith(p)
	}
	return r
}

// RectNothing returns the rect that contains no points: Min at +Inf,
// Max at -Inf.
func RectNothing() Rect {
	inf := math32.Inf(1)
	return Rect{
		Min: Pos2{X: inf, Y: inf},
		Max: Pos2{X: -inf, Y: -inf},
	}
}

// RectEverything returns the rect that contains all points.
func RectEverything() Rect {
	inf := math32.Inf(1)
	return Rect{
		Min: Pos2{X: -inf, Y: -inf},
		Max: Pos2{X: inf, Y: inf},
	}
}

// Size returns the rect's size. Negative rects yield negative sizes.
func (r Rect) Size() Vec2 {
	return r.Max.Sub(r.Min)
}

// Width returns Max.X - Min.X.
func (r Rect) Width() float32 {
	return r.Max.X - r.Min.X
}

// Height returns Max.Y - Min.Y.
func (r Rect) Height() float32 {
	return r.Max.Y - r.Min.Y
}

// Center returns the rect's center point.
func (r Rect) Center() Pos2 {
	return Pos2{X: (r.Min.X + r.Max.X) / 2, Y: (r.Min.Y + r.Max.Y) / 2}
}

// Left returns Min.X.
func (r Rect) Left() float32 { return r.Min.X }

// Right returns Max.X.
func (r Rect) Right() float32 { return r.Max.X }

// Top returns Min.Y.
func (r Rect) Top() float32 { return r.Min.Y }

// Bottom returns Max.Y.
func (r Rect) Bottom() float32 { return r.Max.Y }

// LeftTop returns the min corner.
func (r Rect) LeftTop() Pos2 { return r.Min }

// RightTop returns the top-right corner.
func (r Rect) RightTop() Pos2 { return Pos2{X: r.Max.X, Y: r.Min.Y} }

// LeftBottom returns the bottom-left corner.
func (r Rect) LeftBottom() Pos2 { return Pos2{X: r.Min.X, Y: r.Max.Y} }

// RightBottom returns the max corner.
func (r Rect) RightBottom() Pos2 { return r.Max }

// CenterTop returns the middle of the top edge.
func (r Rect) CenterTop() Pos2 { return Pos2{X: r.Center().X, Y: r.Min.Y} }

// CenterBottom returns the middle of the bottom edge.
func (r Rect) CenterBottom() Pos2 { return Pos2{X: r.Center().X, Y: r.Max.Y} }

// LeftCenter returns the middle of the left edge.
func (r Rect) LeftCenter() Pos2 { return Pos2{X: r.Min.X, Y: r.Center().Y} }

// RightCenter returns the middle of the right edge.
func (r Rect) RightCenter() Pos2 { return Pos2{X: r.Max.X, Y: r.Center().Y} }

// Area returns width * height.
func (r Rect) Area() float32 {
	return r.Width() * r.Height()
}

// Translate returns the rect moved by v.
func (r Rect) Translate(v Vec2) Rect {
	return Rect{Min: r.Min.Add(v), Max: r.Max.Add(v)}
}

// Expand grows the rect by amount on every side. Negative amounts shrink.
func (r Rect) Expand(amount float32) Rect {
	return r.Expand2(Splat(amount))
}

// Expand2 grows the rect by amount.X on the left and right sides and
// amount.Y on the top and bottom sides.
func (r Rect) Expand2(amount Vec2) Rect {
	return Rect{Min: r.Min.SubVec(amount), Max: r.Max.Add(amount)}
}

// Shrink shrinks the rect by amount on every side.
func (r Rect) Shrink(amount float32) Rect {
	return r.Expand(-amount)
}

// Shrink2 shrinks the rect by amount.X horizontally and amount.Y vertically.
func (r Rect) Shrink2(amount Vec2) Rect {
	return r.Expand2(amount.Neg())
}

// Union returns the smallest rect containing both r and o.
// Union with the nothing rect returns the other operand unchanged.
func (r Rect) Union(o Rect) Rect {
	return Rect{Min: r.Min.Min(o.Min), Max: r.Max.Max(o.Max)}
}

// Intersect returns the overlap of r and o. If they do not overlap the
// result is a negative rect for which IsPositive reports false.
func (r Rect) Intersect(o Rect) Rect {
	return Rect{Min: r.Min.Max(o.Min), Max: r.Max.Min(o.Max)}
}

// Intersects reports whether r and o share any point.
func (r Rect) Intersects(o Rect) bool {
	return r.Min.X <= o.Max.X && o.Min.X <= r.Max.X &&
		r.Min.Y <= o.Max.Y && o.Min.Y <= r.Max.Y
}

// ExtendWith returns the smallest rect containing both r and p.
func (r Rect) ExtendWith(p Pos2) Rect {
	return Rect{Min: r.Min.Min(p), Max: r.Max.Max(p)}
}

// Contains reports whether p is inside r. Both edges are inclusive.
func (r Rect) Contains(p Pos2) bool {
	return r.Min.X <= p.X && p.X <= r.Max.X &&
		r.Min.Y <= p.Y && p.Y <= r.Max.Y
}

// ContainsRect reports whether o lies entirely inside r.
func (r Rect) ContainsRect(o Rect) bool {
	return r.Contains(o.Min) && r.Contains(o.Max)
}

// ClampPos returns p limited to lie inside r.
func (r Rect) ClampPos(p Pos2) Pos2 {
	return p.Clamp(r.Min, r.Max)
}

// ClampRect returns o translated and shrunk as needed to lie inside r.
func (r Rect) ClampRect(o Rect) Rect {
	return Rect{Min: r.ClampPos(o.Min), Max: r.ClampPos(o.Max)}
}

// DistanceSqToPos returns the squared distance from p to the closest point
// of r, or 0 if p is inside.
func (r Rect) DistanceSqToPos(p Pos2) float32 {
	dx := maxf(r.Min.X-p.X, 0, p.X-r.Max.X)
	dy := maxf(r.Min.Y-p.Y, 0, p.Y-r.Max.Y)
	return dx*dx + dy*dy
}

// DistanceToPos returns the distance from p to the closest point of r.
func (r Rect) DistanceToPos(p Pos2) float32 {
	return math32.Sqrt(r.DistanceSqToPos(p))
}

// LerpInside returns the point at the normalized coordinates t inside r,
// so that (0,0) is the min corner and (1,1) the max corner.
func (r Rect) LerpInside(t Vec2) Pos2 {
	return Pos2{
		X: Lerp(r.Min.X, r.Max.X, t.X),
		Y: Lerp(r.Min.Y, r.Max.Y, t.Y),
	}
}

// SplitLeftRight cuts the rect at the given x, returning the left and
// right parts.
func (r Rect) SplitLeftRight(x float32) (left, right Rect) {
	left = Rect{Min: r.Min, Max: Pos2{X: x, Y: r.Max.Y}}
	right = Rect{Min: Pos2{X: x, Y: r.Min.Y}, Max: r.Max}
	return left, right
}

// SplitTopBottom cuts the rect at the given y, returning the top and
// bottom parts.
func (r Rect) SplitTopBottom(y float32) (top, bottom Rect) {
	top = Rect{Min: r.Min, Max: Pos2{X: r.Max.X, Y: y}}
	bottom = Rect{Min: Pos2{X: r.Min.X, Y: y}, Max: r.Max}
	return top, bottom
}

// WithMinX returns r with Min.X replaced.
func (r Rect) WithMinX(x float32) Rect { r.Min.X = x; return r }

// WithMinY returns r with Min.Y replaced.
func (r Rect) WithMinY(y float32) Rect { r.Min.Y = y; return r }

// WithMaxX returns r with Max.X replaced.
func (r Rect) WithMaxX(x float32) Rect { r.Max.X = x; return r }

// WithMaxY returns r with Max.Y replaced.
func (r Rect) WithMaxY(y float32) Rect { r.Max.Y = y; return r }

// ScaleFromCenter scales the rect around its center.
func (r Rect) ScaleFromCenter(factor float32) Rect {
	return RectFromCenterSize(r.Center(), r.Size().Scale(factor))
}

// IsPositive reports whether the rect has positive width and height.
// The nothing rect and negative intersections report false.
func (r Rect) IsPositive() bool {
	return r.Min.X < r.Max.X && r.Min.Y < r.Max.Y
}

// IsNegative reports whether the rect has negative width or height.
func (r Rect) IsNegative() bool {
	return r.Max.X < r.Min.X || r.Max.Y < r.Min.Y
}

// IsFinite reports whether all corners are finite.
func (r Rect) IsFinite() bool {
	return r.Min.IsFinite() && r.Max.IsFinite()
}

// HasNaN reports whether any corner component is NaN.
func (r Rect) HasNaN() bool {
	return r.Min.HasNaN() || r.Max.HasNaN()
}

func maxf(vs ...float32) float32 {
	m := vs[0]
	for _, v := range vs[1:] {
		if v > m {
			m = v
		}
	}
	return m
}
