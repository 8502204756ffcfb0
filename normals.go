package bezmesh

// CornerNormals returns unit normals at the four corners of p, in the corner
// order (0,0), (1,0), (0,1), (1,1).
//
// Each normal is the cross product of the boundary tangents at the corner,
// both oriented towards increasing u and v, so all four normals lie on the
// same side of the surface. Where the tangents are parallel or vanish, the
// normal is the zero vector. Patches of degree 0 in either direction have no
// tangent in that direction and get four zero normals.
func CornerNormals(p Patch[Vec3]) [4]Vec3 {
	n, m := p.n, p.m
	if n == 0 || m == 0 {
		return [4]Vec3{}
	}
	at := func(i, j int) Vec3 { return p.points[p.index(i, j)] }

	d00u := at(1, 0).Sub(at(0, 0))
	d00v := at(0, 1).Sub(at(0, 0))
	d10u := at(n, 0).Sub(at(n-1, 0))
	d10v := at(n, 1).Sub(at(n, 0))
	d01u := at(1, m).Sub(at(0, m))
	d01v := at(0, m).Sub(at(0, m-1))
	d11u := at(n, m).Sub(at(n-1, m))
	d11v := at(n, m).Sub(at(n, m-1))

	return [4]Vec3{
		d00u.Cross(d00v).NormalizeOrZero(),
		d10u.Cross(d10v).NormalizeOrZero(),
		d01u.Cross(d01v).NormalizeOrZero(),
		d11u.Cross(d11v).NormalizeOrZero(),
	}
}
