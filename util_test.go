package bezmesh

import (
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

var (
	approx      = cmpopts.EquateApprox(0, 1e-9)
	allowPatch  = cmp.AllowUnexported(Patch[Vec3]{}, Patch[Scalar]{})
	allowCurves = cmp.AllowUnexported(Curve[Vec3]{})
)

var rgbw = [4]Color{Red, Green, Blue, White}

func mustPatch[T Vector[T]](t testing.TB, n, m int, points []T, colors [4]Color) Patch[T] {
	t.Helper()
	p, err := NewPatch(n, m, points, colors)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

// randomPatch returns a patch with pseudo-random control points. The same
// seed always produces the same patch.
func randomPatch(t testing.TB, n, m int, seed uint64) Patch[Vec3] {
	t.Helper()
	r := rand.New(rand.NewPCG(seed, 0))
	pts := make([]Vec3, (n+1)*(m+1))
	for i := range pts {
		pts[i] = Vec(r.Float64()*10-5, r.Float64()*10-5, r.Float64()*10-5)
	}
	return mustPatch(t, n, m, pts, rgbw)
}

// gridPatch returns a patch of degree (n, m) whose control points lie on the
// integer grid in the z = 0 plane, displaced along z by height.
func gridPatch(t testing.TB, n, m int, height func(i, j int) float64) Patch[Vec3] {
	t.Helper()
	pts := make([]Vec3, 0, (n+1)*(m+1))
	for j := 0; j <= m; j++ {
		for i := 0; i <= n; i++ {
			pts = append(pts, Vec(float64(i), float64(j), height(i, j)))
		}
	}
	return mustPatch(t, n, m, pts, rgbw)
}

func flat(i, j int) float64 { return 0 }
