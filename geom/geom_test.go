package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	assert.Equal(t, 5, Clamp(3, 5, 10))
	assert.Equal(t, 10, Clamp(12, 5, 10))
	assert.Equal(t, 7, Clamp(7, 5, 10))
	assert.Equal(t, float32(0.5), Clamp(float32(0.5), 0, 1))

	// Clamping an already clamped value changes nothing.
	v := Clamp(float32(37.5), -1, 12)
	assert.Equal(t, v, Clamp(v, -1, 12))
}

func TestLerp(t *testing.T) {
	assert.Equal(t, float32(0), Lerp(float32(0), 10, 0))
	assert.Equal(t, float32(10), Lerp(float32(0), 10, 1))
	assert.Equal(t, float32(5), Lerp(float32(0), 10, 0.5))
	assert.Equal(t, float32(-10), Lerp(float32(0), 10, -1))
}

func TestInverseLerp(t *testing.T) {
	assert.Equal(t, float32(0.5), InverseLerp(float32(10), 20, 15))
	assert.Equal(t, float32(0), InverseLerp(float32(7), 7, 7))
	v := float32(13.25)
	assert.InDelta(t, v, Lerp(float32(10), 20, InverseLerp(float32(10), 20, v)), 1e-5)
}

func TestRemap(t *testing.T) {
	assert.Equal(t, float32(50), Remap(float32(5), 0, 10, 0, 100))
	assert.Equal(t, float32(150), Remap(float32(15), 0, 10, 0, 100))
	assert.Equal(t, float32(100), RemapClamp(float32(15), 0, 10, 0, 100))
	assert.Equal(t, float32(0), RemapClamp(float32(-3), 0, 10, 0, 100))
}

func TestVec2Ops(t *testing.T) {
	assert.Equal(t, V(4, 6), V(1, 2).Add(V(3, 4)))
	assert.Equal(t, V(-2, -2), V(1, 2).Sub(V(3, 4)))
	assert.Equal(t, V(3, 8), V(1, 2).Mul(V(3, 4)))
	assert.Equal(t, V(2, 4), V(1, 2).Scale(2))
	assert.Equal(t, float32(11), V(1, 2).Dot(V(3, 4)))
	assert.Equal(t, float32(5), V(3, 4).Length())
	assert.Equal(t, float32(25), V(3, 4).LengthSq())
	assert.Equal(t, V(0.6, 0.8), V(3, 4).Normalized())
	assert.Equal(t, Vec2{}, Vec2{}.Normalized())
	assert.Equal(t, V(2, -1), V(1, 2).Rot90())
	assert.Equal(t, V(1, 2), V(1, 2).Min(V(3, 4)))
	assert.Equal(t, V(3, 4), V(1, 2).Max(V(3, 4)))
	assert.Equal(t, V(1, 2), V(-5, 9).Clamp(V(1, 1), V(4, 2)))
	assert.Equal(t, V(1, 2), V(-1, 2).Abs())
	assert.Equal(t, V(2, 3), V(0, 2).Lerp(V(4, 4), 0.5))
	assert.Equal(t, float32(1), V(1, 2).MinElem())
	assert.Equal(t, float32(2), V(1, 2).MaxElem())
	assert.True(t, V(1, 2).IsFinite())
	assert.False(t, Vec2Inf.IsFinite())
}

func TestPos2Ops(t *testing.T) {
	assert.Equal(t, P(4, 6), P(1, 2).Add(V(3, 4)))
	assert.Equal(t, V(2, 2), P(4, 6).Sub(P(2, 4)))
	assert.Equal(t, P(2, 4), P(4, 6).SubVec(V(2, 2)))
	assert.Equal(t, float32(5), P(0, 0).Distance(P(3, 4)))
	assert.Equal(t, P(2, 3), P(0, 2).Lerp(P(4, 4), 0.5))
	assert.Equal(t, P(3, 3), P(2.6, 3.4).Round())
}
