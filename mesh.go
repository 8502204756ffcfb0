package bezmesh

import "golang.org/x/image/math/f32"

// Mesh is a triangle list in the single-precision layout that graphics APIs
// expect for vertex buffers.
//
// Every triangle gets its own three vertices, so vertices are never shared
// and the per-corner colors and normals of flat-shaded triangles survive
// unchanged. Indices is the trivial index list 0, 1, 2, ..., provided for
// renderers that only draw indexed geometry.
type Mesh struct {
	Positions []f32.Vec3
	Normals   []f32.Vec3
	Colors    []f32.Vec4
	Indices   []uint32
}

// NewMesh assembles triangles into a mesh.
func NewMesh(tris []Triangle) *Mesh {
	n := 3 * len(tris)
	m := &Mesh{
		Positions: make([]f32.Vec3, 0, n),
		Normals:   make([]f32.Vec3, 0, n),
		Colors:    make([]f32.Vec4, 0, n),
		Indices:   make([]uint32, 0, n),
	}
	for _, tri := range tris {
		for k := range 3 {
			m.Indices = append(m.Indices, uint32(len(m.Positions)))
			m.Positions = append(m.Positions, tri.Positions[k].F32())
			m.Normals = append(m.Normals, tri.Normals[k].F32())
			m.Colors = append(m.Colors, tri.Colors[k].F32())
		}
	}
	return m
}

// VertexCount returns the number of vertices in the mesh.
func (m *Mesh) VertexCount() int {
	return len(m.Positions)
}

// TriangleCount returns the number of triangles in the mesh.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Bounds returns the bounding box of all vertices. It is empty if the mesh
// has no vertices.
func (m *Mesh) Bounds() Box {
	b := EmptyBox()
	for _, p := range m.Positions {
		b = b.UnionPoint(Vec(float64(p[0]), float64(p[1]), float64(p[2])))
	}
	return b
}
