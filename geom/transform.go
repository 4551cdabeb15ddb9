package geom

// TSTransform is a uniform scale followed by a translation:
//
//	out = in*Scaling + Translation
//
// It is the transform family used by pan/zoom canvases. Composition order
// follows matrix convention: a.Mul(b) applies b first, then a.
type TSTransform struct {
	Scaling     float32
	Translation Vec2
}

// TSIdentity returns the identity transform.
func TSIdentity() TSTransform {
	return TSTransform{Scaling: 1}
}

// TSFromTranslation returns a pure translation.
func TSFromTranslation(t Vec2) TSTransform {
	return TSTransform{Scaling: 1, Translation: t}
}

// TSFromScaling returns a pure scale around the origin.
func TSFromScaling(s float32) TSTransform {
	return TSTransform{Scaling: s}
}

// Apply transforms the point p.
func (t TSTransform) Apply(p Pos2) Pos2 {
	return Pos2{
		X: p.X*t.Scaling + t.Translation.X,
		Y: p.Y*t.Scaling + t.Translation.Y,
	}
}

// ApplyVec transforms the displacement v. Translations do not affect
// displacements.
func (t TSTransform) ApplyVec(v Vec2) Vec2 {
	return v.Scale(t.Scaling)
}

// ApplyRect transforms both corners of r.
func (t TSTransform) ApplyRect(r Rect) Rect {
	return Rect{Min: t.Apply(r.Min), Max: t.Apply(r.Max)}
}

// Inverse returns the transform undoing t. t must have nonzero scaling.
func (t TSTransform) Inverse() TSTransform {
	inv := 1 / t.Scaling
	return TSTransform{
		Scaling:     inv,
		Translation: t.Translation.Scale(-inv),
	}
}

// Mul composes two transforms. The returned transform applies o first,
// then t.
func (t TSTransform) Mul(o TSTransform) TSTransform {
	return TSTransform{
		Scaling:     t.Scaling * o.Scaling,
		Translation: o.Translation.Scale(t.Scaling).Add(t.Translation),
	}
}

// WithScaling returns t with the scaling replaced, keeping the translation.
func (t TSTransform) WithScaling(s float32) TSTransform {
	t.Scaling = s
	return t
}

// IsValid reports whether the transform is finite with nonzero scaling.
func (t TSTransform) IsValid() bool {
	return isFinite(t.Scaling) && t.Scaling != 0 && t.Translation.IsFinite()
}
