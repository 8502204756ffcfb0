package bezmesh

import (
	"math"
	"testing"
)

func TestCornerNormalsFlat(t *testing.T) {
	p := gridPatch(t, 3, 3, flat)
	up := Vec(0, 0, 1)
	diff(t, [4]Vec3{up, up, up, up}, CornerNormals(p))
}

func TestCornerNormalsSameSide(t *testing.T) {
	// A bump: the interior is raised, the boundary is not.
	bump := func(i, j int) float64 {
		if i > 0 && i < 3 && j > 0 && j < 3 {
			return 2
		}
		return 0
	}
	dome := func(i, j int) float64 {
		return -math.Pow(float64(i)-1.5, 2) - math.Pow(float64(j)-1.5, 2)
	}
	for _, height := range []func(i, j int) float64{bump, dome} {
		p := gridPatch(t, 3, 3, height)
		for k, n := range CornerNormals(p) {
			if math.Abs(n.Hypot()-1) > 1e-12 {
				t.Errorf("corner %d: normal %v isn't a unit vector", k, n)
			}
			if n.Z <= 0 {
				t.Errorf("corner %d: normal %v points away from +z", k, n)
			}
		}
	}

	// Mirroring the patch reverses its orientation.
	p := TransformPatch(gridPatch(t, 3, 3, dome), Scale(1, -1, 1))
	for k, n := range CornerNormals(p) {
		if n.Z >= 0 {
			t.Errorf("corner %d: normal %v of mirrored patch points towards +z", k, n)
		}
	}
}

func TestCornerNormalsDegenerate(t *testing.T) {
	// Collapse the v = 0 edge into a single point.
	pts := []Vec3{
		Vec(0, 0, 0), Vec(0, 0, 0), Vec(0, 0, 0),
		Vec(0, 1, 0), Vec(1, 1, 0), Vec(2, 1, 0),
		Vec(0, 2, 0), Vec(1, 2, 0), Vec(2, 2, 0),
	}
	p := mustPatch(t, 2, 2, pts, rgbw)
	ns := CornerNormals(p)
	diff(t, Vec3{}, ns[0])
	diff(t, Vec3{}, ns[1])
	diff(t, Vec(0, 0, 1), ns[2])
	diff(t, Vec(0, 0, 1), ns[3])

	for _, q := range []Patch[Vec3]{gridPatch(t, 0, 3, flat), gridPatch(t, 3, 0, flat)} {
		diff(t, [4]Vec3{}, CornerNormals(q))
	}
}
