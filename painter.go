package ui

import (
	"github.com/chewxy/math32"

	"github.com/frameloop/ui/geom"
)

// ClippedPrimitive is one mesh together with the screen rectangle it
// must be scissored to.
type ClippedPrimitive struct {
	ClipRect geom.Rect
	Mesh     *Mesh
}

// layerPaint accumulates the primitives of one layer for the current
// frame. Shapes batch into the open primitive while clip and texture
// stay the same.
type layerPaint struct {
	prims []ClippedPrimitive
	open  int
}

func newLayerPaint() *layerPaint {
	return &layerPaint{open: -1}
}

// clear releases the meshes back to the pool and empties the layer.
// Must only run after the renderer consumed the previous frame.
func (lp *layerPaint) clear() {
	for i := range lp.prims {
		releaseMesh(lp.prims[i].Mesh)
		lp.prims[i].Mesh = nil
	}
	lp.prims = lp.prims[:0]
	lp.open = -1
}

// Painter emits shapes onto one layer, clipped to a screen rectangle.
// Painters are cheap values: deriving one with a tighter clip or an
// extra transform shares the underlying layer buffers.
type Painter struct {
	out   *layerPaint
	layer LayerId
	clip  geom.Rect
	trans geom.TSTransform

	clipStack []geom.Rect
}

func newPainter(out *layerPaint, layer LayerId, clip geom.Rect) Painter {
	return Painter{out: out, layer: layer, clip: clip, trans: geom.TSIdentity()}
}

// Layer returns the layer this painter draws to.
func (p *Painter) Layer() LayerId { return p.layer }

// ClipRect returns the current clip rectangle in screen space.
func (p *Painter) ClipRect() geom.Rect { return p.clip }

// WithClip returns a painter whose clip is the intersection of the
// current clip and rect (screen space).
func (p Painter) WithClip(rect geom.Rect) Painter {
	p.clip = p.clip.Intersect(rect)
	p.clipStack = nil
	return p
}

// WithTransform returns a painter whose shapes are transformed by t
// before the current transform. Scene uses this to paint content
// coordinates onto the screen.
func (p Painter) WithTransform(t geom.TSTransform) Painter {
	p.trans = p.trans.Mul(t)
	p.clipStack = nil
	return p
}

// PushClip narrows the clip rectangle until the matching PopClip.
func (p *Painter) PushClip(rect geom.Rect) {
	p.clipStack = append(p.clipStack, p.clip)
	p.clip = p.clip.Intersect(rect)
	p.out.open = -1
}

// PopClip restores the clip rectangle saved by PushClip.
func (p *Painter) PopClip() {
	n := len(p.clipStack)
	if n == 0 {
		debugPanic("Painter.PopClip without PushClip")
		return
	}
	p.clip = p.clipStack[n-1]
	p.clipStack = p.clipStack[:n-1]
	p.out.open = -1
}

// visible reports whether anything painted now could show up.
func (p *Painter) visible(color Color32) bool {
	return color.A() != 0 && p.clip.IsPositive()
}

// at maps a shape position through the painter transform.
func (p *Painter) at(pos geom.Pos2) geom.Pos2 {
	return p.trans.Apply(pos)
}

// atRect maps a rectangle through the painter transform.
func (p *Painter) atRect(rect geom.Rect) geom.Rect {
	return p.trans.ApplyRect(rect)
}

// meshFor returns the mesh new triangles should go to, batching into
// the open primitive when clip and texture allow it.
func (p *Painter) meshFor(tex TextureId) *Mesh {
	lp := p.out
	if lp.open >= 0 {
		pr := &lp.prims[lp.open]
		if pr.ClipRect == p.clip && pr.Mesh.Texture == tex {
			return pr.Mesh
		}
	}
	lp.prims = append(lp.prims, ClippedPrimitive{ClipRect: p.clip, Mesh: acquireMesh(tex)})
	lp.open = len(lp.prims) - 1
	return lp.prims[lp.open].Mesh
}

// RectFilled paints a filled rectangle with optionally rounded corners.
func (p *Painter) RectFilled(rect geom.Rect, rounding float32, fill Color32) {
	if !p.visible(fill) || rect.IsNegative() {
		return
	}
	rect = p.atRect(rect)
	rounding *= p.trans.Scaling
	mesh := p.meshFor(TextureIdFont)
	if rounding <= 0 {
		mesh.AddColoredRect(rect, fill)
		return
	}
	pts := roundedRectPath(rect, rounding)
	fillConvex(mesh, pts, fill)
}

// RectStroke paints the outline of a rectangle.
func (p *Painter) RectStroke(rect geom.Rect, rounding, width float32, color Color32) {
	if !p.visible(color) || rect.IsNegative() || width <= 0 {
		return
	}
	rect = p.atRect(rect)
	rounding *= p.trans.Scaling
	width *= p.trans.Scaling
	mesh := p.meshFor(TextureIdFont)
	if rounding <= 0 {
		// Four thin rects, inset so the stroke stays inside.
		t := math32.Min(width, rect.Height()/2)
		w := math32.Min(width, rect.Width()/2)
		mesh.AddColoredRect(geom.RectFromMinMax(rect.LeftTop(), geom.P(rect.Max.X, rect.Min.Y+t)), color)
		mesh.AddColoredRect(geom.RectFromMinMax(geom.P(rect.Min.X, rect.Max.Y-t), rect.RightBottom()), color)
		mesh.AddColoredRect(geom.RectFromMinMax(geom.P(rect.Min.X, rect.Min.Y+t), geom.P(rect.Min.X+w, rect.Max.Y-t)), color)
		mesh.AddColoredRect(geom.RectFromMinMax(geom.P(rect.Max.X-w, rect.Min.Y+t), geom.P(rect.Max.X, rect.Max.Y-t)), color)
		return
	}
	strokePath(mesh, roundedRectPath(rect, rounding), true, width, color)
}

// Line paints a straight line segment of the given width.
func (p *Painter) Line(a, b geom.Pos2, width float32, color Color32) {
	if !p.visible(color) || width <= 0 {
		return
	}
	a, b = p.at(a), p.at(b)
	width *= p.trans.Scaling
	addLineQuad(p.meshFor(TextureIdFont), a, b, width, color)
}

// Triangle paints a filled triangle.
func (p *Painter) Triangle(a, b, c geom.Pos2, color Color32) {
	if !p.visible(color) {
		return
	}
	mesh := p.meshFor(TextureIdFont)
	i := mesh.ColoredVertex(p.at(a), color)
	j := mesh.ColoredVertex(p.at(b), color)
	k := mesh.ColoredVertex(p.at(c), color)
	mesh.AddTriangle(i, j, k)
}

// CircleFilled paints a filled circle.
func (p *Painter) CircleFilled(center geom.Pos2, radius float32, fill Color32) {
	if !p.visible(fill) || radius <= 0 {
		return
	}
	center = p.at(center)
	radius *= p.trans.Scaling
	fillConvex(p.meshFor(TextureIdFont), circlePath(center, radius), fill)
}

// CircleStroke paints the outline of a circle.
func (p *Painter) CircleStroke(center geom.Pos2, radius, width float32, color Color32) {
	if !p.visible(color) || radius <= 0 || width <= 0 {
		return
	}
	center = p.at(center)
	radius *= p.trans.Scaling
	width *= p.trans.Scaling
	strokePath(p.meshFor(TextureIdFont), circlePath(center, radius), true, width, color)
}

// Arrow paints a line with an arrow head at origin+vec.
func (p *Painter) Arrow(origin geom.Pos2, vec geom.Vec2, width float32, color Color32) {
	if !p.visible(color) || width <= 0 {
		return
	}
	tip := origin.Add(vec)
	dir := vec.Normalized()
	if dir == geom.Vec2Zero {
		return
	}
	headLen := math32.Min(vec.Length()/2, width*4)
	back := dir.Scale(-headLen)
	side := dir.Rot90().Scale(headLen * 0.5)
	p.Line(origin, tip, width, color)
	p.Line(tip, tip.Add(back.Add(side)), width, color)
	p.Line(tip, tip.Add(back.Sub(side)), width, color)
}

// ShapeIdx is a placeholder handle returned by Reserve.
type ShapeIdx int

// Reserve claims a slot in the paint order that can be filled later
// with SetRectFilled. Containers use it to paint a background under
// content whose size is only known after the content ran.
func (p *Painter) Reserve() ShapeIdx {
	lp := p.out
	lp.prims = append(lp.prims, ClippedPrimitive{ClipRect: p.clip, Mesh: acquireMesh(TextureIdFont)})
	idx := ShapeIdx(len(lp.prims) - 1)
	lp.open = -1
	return idx
}

// SetRectFilled fills a slot claimed by Reserve with a rectangle. The
// rectangle paints under everything emitted after the Reserve call.
func (p *Painter) SetRectFilled(idx ShapeIdx, rect geom.Rect, rounding float32, fill Color32) {
	lp := p.out
	if int(idx) < 0 || int(idx) >= len(lp.prims) {
		debugPanic("Painter.SetRectFilled: invalid shape index %d", idx)
		return
	}
	pr := &lp.prims[idx]
	if !pr.ClipRect.IsPositive() || fill.A() == 0 || rect.IsNegative() {
		return
	}
	rect = p.atRect(rect)
	rounding *= p.trans.Scaling
	pr.Mesh.Clear()
	if rounding <= 0 {
		pr.Mesh.AddColoredRect(rect, fill)
	} else {
		fillConvex(pr.Mesh, roundedRectPath(rect, rounding), fill)
	}
}

// Galley paints laid-out text with its top-left corner at pos. A
// non-transparent override replaces every glyph color.
func (p *Painter) Galley(pos geom.Pos2, galley *Galley, override Color32) {
	if galley == nil || !p.clip.IsPositive() {
		return
	}
	mesh := p.meshFor(TextureIdFont)
	origin := pos.ToVec()
	for ri := range galley.Rows {
		row := &galley.Rows[ri]
		for gi := range row.Glyphs {
			g := &row.Glyphs[gi]
			color := g.Color
			if override.A() != 0 {
				color = override
			}
			if color.A() == 0 {
				continue
			}
			rect := p.atRect(g.Rect.Translate(origin))
			mesh.AddRectWithUV(rect, g.UV, color)
		}
	}
}

// --- shape tessellation helpers ---

// addLineQuad pushes one segment as a thickness quad.
func addLineQuad(mesh *Mesh, a, b geom.Pos2, width float32, color Color32) {
	dir := b.Sub(a)
	if dir == geom.Vec2Zero {
		return
	}
	n := dir.Normalized().Rot90().Scale(width / 2)
	i0 := mesh.ColoredVertex(a.Add(n), color)
	i1 := mesh.ColoredVertex(b.Add(n), color)
	i2 := mesh.ColoredVertex(b.SubVec(n), color)
	i3 := mesh.ColoredVertex(a.SubVec(n), color)
	mesh.AddTriangle(i0, i1, i2)
	mesh.AddTriangle(i0, i2, i3)
}

// fillConvex fan-triangulates a convex polygon.
func fillConvex(mesh *Mesh, pts []geom.Pos2, color Color32) {
	if len(pts) < 3 {
		return
	}
	first := mesh.ColoredVertex(pts[0], color)
	prev := mesh.ColoredVertex(pts[1], color)
	for _, pt := range pts[2:] {
		cur := mesh.ColoredVertex(pt, color)
		mesh.AddTriangle(first, prev, cur)
		prev = cur
	}
}

// strokePath draws every edge of a path as a quad. Joints are butt
// joints, which is fine at UI stroke widths.
func strokePath(mesh *Mesh, pts []geom.Pos2, closed bool, width float32, color Color32) {
	if len(pts) < 2 {
		return
	}
	for i := 1; i < len(pts); i++ {
		addLineQuad(mesh, pts[i-1], pts[i], width, color)
	}
	if closed {
		addLineQuad(mesh, pts[len(pts)-1], pts[0], width, color)
	}
}

// circleSegments picks the tessellation density for a radius.
func circleSegments(radius float32) int {
	n := int(radius*0.75) + 8
	if n > 64 {
		n = 64
	}
	return n
}

// circlePath returns the perimeter points of a circle.
func circlePath(center geom.Pos2, radius float32) []geom.Pos2 {
	n := circleSegments(radius)
	pts := make([]geom.Pos2, n)
	for i := range pts {
		a := 2 * math32.Pi * float32(i) / float32(n)
		pts[i] = center.Add(geom.V(math32.Cos(a), math32.Sin(a)).Scale(radius))
	}
	return pts
}

// roundedRectPath returns the clockwise perimeter of a rounded
// rectangle. The radius is clamped to half the shorter side.
func roundedRectPath(rect geom.Rect, rounding float32) []geom.Pos2 {
	r := math32.Min(rounding, math32.Min(rect.Width(), rect.Height())/2)
	if r <= 0 {
		return []geom.Pos2{rect.LeftTop(), rect.RightTop(), rect.RightBottom(), rect.LeftBottom()}
	}
	const segs = 8
	pts := make([]geom.Pos2, 0, 4*(segs+1))
	corner := func(cx, cy, fromDeg float32) {
		for i := 0; i <= segs; i++ {
			a := (fromDeg + 90*float32(i)/segs) * math32.Pi / 180
			pts = append(pts, geom.P(cx+r*math32.Cos(a), cy+r*math32.Sin(a)))
		}
	}
	// Screen coordinates: +y is down, so angles run clockwise.
	corner(rect.Min.X+r, rect.Min.Y+r, 180) // top left
	corner(rect.Max.X-r, rect.Min.Y+r, 270) // top right
	corner(rect.Max.X-r, rect.Max.Y-r, 0)   // bottom right
	corner(rect.Min.X+r, rect.Max.Y-r, 90)  // bottom left
	return pts
}
