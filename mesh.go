package ui

import (
	"errors"
	"sync"

	"github.com/frameloop/ui/geom"
)

// meshPool reuses mesh buffers across frames. Immediate mode rebuilds
// every mesh each frame, so without pooling steady-state rendering
// would allocate constantly.
var meshPool = sync.Pool{
	New: func() any {
		return &Mesh{
			Indices:  make([]uint32, 0, 512),
			Vertices: make([]Vertex, 0, 256),
		}
	},
}

// acquireMesh gets a cleared mesh from the pool bound to tex.
func acquireMesh(tex TextureId) *Mesh {
	m := meshPool.Get().(*Mesh)
	m.Clear()
	m.Texture = tex
	return m
}

// releaseMesh returns a mesh to the pool. Only call once the renderer
// has consumed the frame that referenced it.
func releaseMesh(m *Mesh) {
	if m != nil {
		meshPool.Put(m)
	}
}

// WhiteUV is the texture coordinate of the solid white pixel every
// texture managed by TextureManager carries at its origin. Untextured
// shapes sample it so that one pipeline renders everything.
var WhiteUV = geom.Pos2{}

// Vertex is one corner of a textured triangle.
type Vertex struct {
	// Pos in screen points.
	Pos geom.Pos2
	// UV in normalized texture coordinates.
	UV geom.Pos2
	// Color as premultiplied sRGBA.
	Color Color32
}

// Mesh is a list of triangles sharing one texture, with 32-bit indices.
// Rebuilt every frame; Clear retains capacity so steady-state frames do
// not allocate.
type Mesh struct {
	Indices  []uint32
	Vertices []Vertex
	Texture  TextureId
}

// Clear empties the mesh, keeping the allocated buffers.
func (m *Mesh) Clear() {
	m.Indices = m.Indices[:0]
	m.Vertices = m.Vertices[:0]
}

// IsEmpty reports whether the mesh has no triangles.
func (m *Mesh) IsEmpty() bool {
	return len(m.Indices) == 0 && len(m.Vertices) == 0
}

// IsValid reports whether every index points at a vertex.
func (m *Mesh) IsValid() bool {
	n := uint32(len(m.Vertices))
	for _, idx := range m.Indices {
		if idx >= n {
			return false
		}
	}
	return true
}

// Reserve grows the buffers for the given number of extra triangles
// and vertices.
func (m *Mesh) Reserve(triangles, vertices int) {
	if need := len(m.Indices) + 3*triangles; need > cap(m.Indices) {
		grown := make([]uint32, len(m.Indices), need)
		copy(grown, m.Indices)
		m.Indices = grown
	}
	if need := len(m.Vertices) + vertices; need > cap(m.Vertices) {
		grown := make([]Vertex, len(m.Vertices), need)
		copy(grown, m.Vertices)
		m.Vertices = grown
	}
}

// AddTriangle appends one triangle by vertex indices.
func (m *Mesh) AddTriangle(a, b, c uint32) {
	m.Indices = append(m.Indices, a, b, c)
}

// ColoredVertex appends an untextured vertex and returns its index.
func (m *Mesh) ColoredVertex(pos geom.Pos2, color Color32) uint32 {
	idx := uint32(len(m.Vertices))
	m.Vertices = append(m.Vertices, Vertex{Pos: pos, UV: WhiteUV, Color: color})
	return idx
}

// AddColoredRect appends an axis-aligned solid rectangle.
func (m *Mesh) AddColoredRect(rect geom.Rect, color Color32) {
	m.AddRectWithUV(rect, geom.RectFromMinMax(WhiteUV, WhiteUV), color)
}

// AddRectWithUV appends a rectangle mapped to the given texture region.
func (m *Mesh) AddRectWithUV(rect, uv geom.Rect, color Color32) {
	idx := uint32(len(m.Vertices))
	m.Vertices = append(m.Vertices,
		Vertex{Pos: rect.LeftTop(), UV: uv.LeftTop(), Color: color},
		Vertex{Pos: rect.RightTop(), UV: uv.RightTop(), Color: color},
		Vertex{Pos: rect.LeftBottom(), UV: uv.LeftBottom(), Color: color},
		Vertex{Pos: rect.RightBottom(), UV: uv.RightBottom(), Color: color},
	)
	m.AddTriangle(idx, idx+1, idx+2)
	m.AddTriangle(idx+2, idx+1, idx+3)
}

// Append moves all triangles of other into m. The meshes must use the
// same texture; a mismatch is a caller bug and the triangles are
// dropped.
func (m *Mesh) Append(other *Mesh) {
	if other.IsEmpty() {
		return
	}
	if m.IsEmpty() {
		m.Texture = other.Texture
	} else if m.Texture != other.Texture {
		debugPanic("Mesh.Append: texture mismatch (%d vs %d)", m.Texture, other.Texture)
		return
	}
	offset := uint32(len(m.Vertices))
	for _, idx := range other.Indices {
		m.Indices = append(m.Indices, idx+offset)
	}
	m.Vertices = append(m.Vertices, other.Vertices...)
}

// Translate moves every vertex by v.
func (m *Mesh) Translate(v geom.Vec2) {
	for i := range m.Vertices {
		m.Vertices[i].Pos = m.Vertices[i].Pos.Add(v)
	}
}

// ApplyTransform scales and translates every vertex.
func (m *Mesh) ApplyTransform(t geom.TSTransform) {
	for i := range m.Vertices {
		m.Vertices[i].Pos = t.Apply(m.Vertices[i].Pos)
	}
}

// CalcBounds returns the rectangle covering every vertex.
func (m *Mesh) CalcBounds() geom.Rect {
	bounds := geom.RectNothing()
	for i := range m.Vertices {
		bounds = bounds.ExtendWith(m.Vertices[i].Pos)
	}
	return bounds
}

// Mesh16 is a mesh with 16-bit indices for renderers that cannot bind
// 32-bit index buffers.
type Mesh16 struct {
	Indices  []uint16
	Vertices []Vertex
	Texture  TextureId
}

// maxU16Vertices is how many vertices one 16-bit index can address.
const maxU16Vertices = 1 << 16

// ErrTriangleTooLarge is returned by SplitToU16 when a single triangle
// references vertices further than 65535 slots apart, which cannot be
// expressed with 16-bit indices no matter how the mesh is cut.
var ErrTriangleTooLarge = errors.New("ui: triangle spans too many vertices for 16-bit indices")

// SplitToU16 cuts the mesh into chunks whose rebased indices fit in
// uint16. Triangles are taken greedily in order; each chunk covers a
// contiguous vertex span, so vertices shared across a cut are
// duplicated into both chunks.
func (m *Mesh) SplitToU16() ([]Mesh16, error) {
	if m.IsEmpty() {
		return nil, nil
	}
	if len(m.Indices)%3 != 0 {
		debugPanic("Mesh.SplitToU16: index count %d is not a multiple of 3", len(m.Indices))
		return nil, ErrTriangleTooLarge
	}

	if len(m.Vertices) <= maxU16Vertices {
		indices := make([]uint16, len(m.Indices))
		for i, idx := range m.Indices {
			indices[i] = uint16(idx)
		}
		return []Mesh16{{Indices: indices, Vertices: m.Vertices, Texture: m.Texture}}, nil
	}

	var out []Mesh16
	cursor := 0
	for cursor < len(m.Indices) {
		spanStart := cursor
		minV := m.Indices[cursor]
		maxV := m.Indices[cursor]

		for cursor < len(m.Indices) {
			newMin, newMax := minV, maxV
			for i := 0; i < 3; i++ {
				idx := m.Indices[cursor+i]
				if idx < newMin {
					newMin = idx
				}
				if idx > newMax {
					newMax = idx
				}
			}
			if newMax-newMin+1 > maxU16Vertices {
				break
			}
			minV, maxV = newMin, newMax
			cursor += 3
		}
		if cursor == spanStart {
			return nil, ErrTriangleTooLarge
		}

		indices := make([]uint16, 0, cursor-spanStart)
		for _, idx := range m.Indices[spanStart:cursor] {
			indices = append(indices, uint16(idx-minV))
		}
		out = append(out, Mesh16{
			Indices:  indices,
			Vertices: m.Vertices[minV : maxV+1],
			Texture:  m.Texture,
		})
	}
	return out, nil
}
