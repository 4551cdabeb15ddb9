package geom

import "github.com/chewxy/math32"

// Vec2 is a 2D displacement or size in points.
type Vec2 struct {
	X, Y float32
}

// V returns the vector (x, y).
func V(x, y float32) Vec2 {
	return Vec2{X: x, Y: y}
}

// Splat returns the vector (v, v).
func Splat(v float32) Vec2 {
	return Vec2{X: v, Y: v}
}

// Vec2Zero is the zero vector.
var Vec2Zero = Vec2{}

// Inf is the scalar +Inf.
var Inf = math32.Inf(1)

// Vec2Inf is the vector (+Inf, +Inf).
var Vec2Inf = Vec2{X: math32.Inf(1), Y: math32.Inf(1)}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Mul returns the component-wise product of v and o.
func (v Vec2) Mul(o Vec2) Vec2 {
	return Vec2{X: v.X * o.X, Y: v.Y * o.Y}
}

// Div returns the component-wise quotient v / o.
func (v Vec2) Div(o Vec2) Vec2 {
	return Vec2{X: v.X / o.X, Y: v.Y / o.Y}
}

// Scale returns v scaled by s.
func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Neg returns -v.
func (v Vec2) Neg() Vec2 {
	return Vec2{X: -v.X, Y: -v.Y}
}

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float32 {
	return v.X*o.X + v.Y*o.Y
}

// Length returns the euclidean length of v.
func (v Vec2) Length() float32 {
	return math32.Hypot(v.X, v.Y)
}

// LengthSq returns the squared length of v.
func (v Vec2) LengthSq() float32 {
	return v.X*v.X + v.Y*v.Y
}

// Normalized returns v scaled to unit length, or the zero vector if v is zero.
func (v Vec2) Normalized() Vec2 {
	l := v.Length()
	if l == 0 {
		return Vec2{}
	}
	return v.Scale(1 / l)
}

// Rotate returns v rotated by angle radians. With y growing downward a
// positive angle turns clockwise on screen.
func (v Vec2) Rotate(angle float32) Vec2 {
	s, c := math32.Sincos(angle)
	return Vec2{X: v.X*c - v.Y*s, Y: v.X*s + v.Y*c}
}

// Rot90 returns v rotated 90 degrees clockwise (in screen coordinates,
// where y grows downward).
func (v Vec2) Rot90() Vec2 {
	return Vec2{X: v.Y, Y: -v.X}
}

// Angle returns the angle of v in radians, measured from the positive
// x axis toward positive y.
func (v Vec2) Angle() float32 {
	return math32.Atan2(v.Y, v.X)
}

// Min returns the component-wise minimum of v and o.
func (v Vec2) Min(o Vec2) Vec2 {
	return Vec2{X: math32.Min(v.X, o.X), Y: math32.Min(v.Y, o.Y)}
}

// Max returns the component-wise maximum of v and o.
func (v Vec2) Max(o Vec2) Vec2 {
	return Vec2{X: math32.Max(v.X, o.X), Y: math32.Max(v.Y, o.Y)}
}

// Clamp limits each component of v to the range [lo, hi].
func (v Vec2) Clamp(lo, hi Vec2) Vec2 {
	return Vec2{
		X: Clamp(v.X, lo.X, hi.X),
		Y: Clamp(v.Y, lo.Y, hi.Y),
	}
}

// Abs returns the component-wise absolute value of v.
func (v Vec2) Abs() Vec2 {
	return Vec2{X: math32.Abs(v.X), Y: math32.Abs(v.Y)}
}

// Floor returns v with each component rounded down.
func (v Vec2) Floor() Vec2 {
	return Vec2{X: math32.Floor(v.X), Y: math32.Floor(v.Y)}
}

// Round returns v with each component rounded to the nearest integer.
func (v Vec2) Round() Vec2 {
	return Vec2{X: math32.Round(v.X), Y: math32.Round(v.Y)}
}

// Lerp linearly interpolates from v to o by t.
func (v Vec2) Lerp(o Vec2, t float32) Vec2 {
	return Vec2{X: Lerp(v.X, o.X, t), Y: Lerp(v.Y, o.Y, t)}
}

// MinElem returns the smaller of the two components.
func (v Vec2) MinElem() float32 {
	return math32.Min(v.X, v.Y)
}

// MaxElem returns the larger of the two components.
func (v Vec2) MaxElem() float32 {
	return math32.Max(v.X, v.Y)
}

// IsFinite reports whether both components are finite.
func (v Vec2) IsFinite() bool {
	return isFinite(v.X) && isFinite(v.Y)
}

// HasNaN reports whether either component is NaN.
func (v Vec2) HasNaN() bool {
	return math32.IsNaN(v.X) || math32.IsNaN(v.Y)
}

// ToPos returns v interpreted as a point relative to the origin.
func (v Vec2) ToPos() Pos2 {
	return Pos2{X: v.X, Y: v.Y}
}

func isFinite(f float32) bool {
	return !math32.IsNaN(f) && !math32.IsInf(f, 0)
}
