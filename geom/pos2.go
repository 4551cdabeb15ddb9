package geom

import "github.com/chewxy/math32"

// Pos2 is an absolute point in points. The distinction from Vec2 keeps
// point arithmetic honest: point - point = vector, point + vector = point.
type Pos2 struct {
	X, Y float32
}

// P returns the point (x, y).
func P(x, y float32) Pos2 {
	return Pos2{X: x, Y: y}
}

// Pos2Zero is the origin.
var Pos2Zero = Pos2{}

// Add returns the point displaced by v.
func (p Pos2) Add(v Vec2) Pos2 {
	return Pos2{X: p.X + v.X, Y: p.Y + v.Y}
}

// Sub returns the vector from o to p.
func (p Pos2) Sub(o Pos2) Vec2 {
	return Vec2{X: p.X - o.X, Y: p.Y - o.Y}
}

// SubVec returns the point displaced by -v.
func (p Pos2) SubVec(v Vec2) Pos2 {
	return Pos2{X: p.X - v.X, Y: p.Y - v.Y}
}

// ToVec returns the displacement from the origin to p.
func (p Pos2) ToVec() Vec2 {
	return Vec2{X: p.X, Y: p.Y}
}

// Distance returns the euclidean distance between p and o.
func (p Pos2) Distance(o Pos2) float32 {
	return p.Sub(o).Length()
}

// DistanceSq returns the squared distance between p and o.
func (p Pos2) DistanceSq(o Pos2) float32 {
	return p.Sub(o).LengthSq()
}

// Lerp linearly interpolates from p to o by t.
func (p Pos2) Lerp(o Pos2, t float32) Pos2 {
	return Pos2{X: Lerp(p.X, o.X, t), Y: Lerp(p.Y, o.Y, t)}
}

// Min returns the component-wise minimum of p and o.
func (p Pos2) Min(o Pos2) Pos2 {
	return Pos2{X: math32.Min(p.X, o.X), Y: math32.Min(p.Y, o.Y)}
}

// Max returns the component-wise maximum of p and o.
func (p Pos2) Max(o Pos2) Pos2 {
	return Pos2{X: math32.Max(p.X, o.X), Y: math32.Max(p.Y, o.Y)}
}

// Clamp limits each component of p to the range [lo, hi].
func (p Pos2) Clamp(lo, hi Pos2) Pos2 {
	return Pos2{
		X: Clamp(p.X, lo.X, hi.X),
		Y: Clamp(p.Y, lo.Y, hi.Y),
	}
}

// Round returns p with each component rounded to the nearest integer.
func (p Pos2) Round() Pos2 {
	return Pos2{X: math32.Round(p.X), Y: math32.Round(p.Y)}
}

// IsFinite reports whether both components are finite.
func (p Pos2) IsFinite() bool {
	return isFinite(p.X) && isFinite(p.Y)
}

// HasNaN reports whether either component is NaN.
func (p Pos2) HasNaN() bool {
	return math32.IsNaN(p.X) || math32.IsNaN(p.Y)
}
