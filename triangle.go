package bezmesh

import "fmt"

// Triangle is a flat-shaded triangle with per-vertex colors and normals.
//
// Normals may be the zero vector where the surface they were derived from is
// degenerate.
type Triangle struct {
	Positions [3]Vec3
	Colors    [3]Color
	Normals   [3]Vec3
}

func (tri Triangle) String() string {
	return fmt.Sprintf("Triangle(%v, %v, %v)", tri.Positions[0], tri.Positions[1], tri.Positions[2])
}

// FaceNormal returns the unit normal of the triangle's plane, oriented by
// counter-clockwise winding, or the zero vector if the triangle is
// degenerate.
func (tri Triangle) FaceNormal() Vec3 {
	p := tri.Positions
	return p[1].Sub(p[0]).Cross(p[2].Sub(p[0])).NormalizeOrZero()
}

// Area returns the area of the triangle.
func (tri Triangle) Area() float64 {
	p := tri.Positions
	return 0.5 * p[1].Sub(p[0]).Cross(p[2].Sub(p[0])).Hypot()
}

// FlattenPatch approximates p by the two triangles spanned by its corners.
//
// The first triangle has the corners (0,0), (1,0), (0,1), the second the
// corners (1,0), (1,1), (0,1). Every vertex carries the color and
// [CornerNormals] normal of its corner. Both triangles wind counter-clockwise
// around the corner normals.
//
// This ignores the interior of the patch and is only a good approximation
// once the patch has been subdivided sufficiently; see [Refine].
func FlattenPatch(p Patch[Vec3]) [2]Triangle {
	v := p.Corners()
	c := p.colors
	n := CornerNormals(p)
	return [2]Triangle{
		{
			Positions: [3]Vec3{v[0], v[1], v[2]},
			Colors:    [3]Color{c[0], c[1], c[2]},
			Normals:   [3]Vec3{n[0], n[1], n[2]},
		},
		{
			Positions: [3]Vec3{v[1], v[3], v[2]},
			Colors:    [3]Color{c[1], c[3], c[2]},
			Normals:   [3]Vec3{n[1], n[3], n[2]},
		},
	}
}

// flattenPatch adapts [FlattenPatch] to [Tessellate].
func flattenPatch(p Patch[Vec3]) []Triangle {
	tris := FlattenPatch(p)
	return tris[:]
}
