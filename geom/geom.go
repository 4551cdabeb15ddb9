// Package geom provides the float32 screen-space geometry used throughout
// the ui package: vectors, points, rectangles and scale-translate transforms.
//
// All coordinates are in logical points (not physical pixels). Y grows
// downward, matching the painting coordinate system.
package geom

import (
	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
)

// Clamp limits v to the range [lo, hi].
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp linearly interpolates from a to b by t.
// t=0 yields a, t=1 yields b. t is not clamped.
func Lerp[T constraints.Float](a, b, t T) T {
	return a + (b-a)*t
}

// InverseLerp returns where v sits between a and b, such that
// Lerp(a, b, InverseLerp(a, b, v)) == v. Returns 0 when a == b.
func InverseLerp[T constraints.Float](a, b, v T) T {
	if a == b {
		return 0
	}
	return (v - a) / (b - a)
}

// Remap maps v from the range [fromLo, fromHi] to [toLo, toHi].
func Remap[T constraints.Float](v, fromLo, fromHi, toLo, toHi T) T {
	return Lerp(toLo, toHi, InverseLerp(fromLo, fromHi, v))
}

// RemapClamp is Remap with the result clamped to [toLo, toHi].
func RemapClamp[T constraints.Float](v, fromLo, fromHi, toLo, toHi T) T {
	t := Clamp(InverseLerp(fromLo, fromHi, v), 0, 1)
	return Lerp(toLo, toHi, t)
}

// Almost reports whether a and b are within epsilon of each other.
func Almost(a, b, epsilon float32) bool {
	return math32.Abs(a-b) <= epsilon
}
