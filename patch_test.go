package bezmesh

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
	"testing"
)

func examplePatch(t *testing.T) Patch[Scalar] {
	t.Helper()
	pts := []Scalar{
		4, 0, 4, 0,
		4, 0, 4, 4,
		4, 0, 0, 4,
	}
	return mustPatch(t, 3, 2, pts, rgbw)
}

func examplePatch2(t *testing.T) Patch[Scalar] {
	t.Helper()
	pts := []Scalar{
		4, 0, 4, 0,
		4, 0, 4, 4,
		4, 0, 0, 4,
		2, 2, 0, 0,
	}
	return mustPatch(t, 3, 3, pts, rgbw)
}

func TestPatchSubdivideU(t *testing.T) {
	surf := examplePatch(t)
	l, r := surf.Subdivide(U, 0.5)

	for j := range 3 {
		// Points at the split line match.
		if l.At(3, j) != r.At(0, j) {
			t.Errorf("row %d: split edge differs: %g != %g", j, l.At(3, j), r.At(0, j))
		}
		// Points on the left and right border match the original.
		if l.At(0, j) != surf.At(0, j) {
			t.Errorf("row %d: left edge changed", j)
		}
		if r.At(3, j) != surf.At(3, j) {
			t.Errorf("row %d: right edge changed", j)
		}
	}

	diff(t, [4]Color{Red, RGB(0.5, 0.5, 0), Blue, RGB(0.5, 0.5, 1)}, l.Colors())
	diff(t, [4]Color{RGB(0.5, 0.5, 0), Green, RGB(0.5, 0.5, 1), White}, r.Colors())
}

func TestPatchSubdivideV(t *testing.T) {
	surf := examplePatch(t)
	top, bot := surf.Subdivide(V, 0.5)

	for i := range 4 {
		if top.At(i, 2) != bot.At(i, 0) {
			t.Errorf("column %d: split edge differs: %g != %g", i, top.At(i, 2), bot.At(i, 0))
		}
		if top.At(i, 0) != surf.At(i, 0) {
			t.Errorf("column %d: top edge changed", i)
		}
		if bot.At(i, 2) != surf.At(i, 2) {
			t.Errorf("column %d: bottom edge changed", i)
		}
	}

	diff(t, [4]Color{Red, Green, RGB(0.5, 0, 0.5), RGB(0.5, 1, 0.5)}, top.Colors())
	diff(t, [4]Color{RGB(0.5, 0, 0.5), RGB(0.5, 1, 0.5), Blue, White}, bot.Colors())
}

func TestPatchSubdivideBoundaries(t *testing.T) {
	for n := range 5 {
		for m := range 5 {
			for _, split := range []float64{0.5, 0.3, 0.9, -0.5, 1.7} {
				p := randomPatch(t, n, m, uint64(n*10+m))
				name := fmt.Sprintf("(%d,%d)@%g", n, m, split)

				l, r := p.Subdivide(U, split)
				diff(t, l.Column(n), r.Column(0))
				diff(t, p.Column(0), l.Column(0))
				diff(t, p.Column(n), r.Column(n))

				top, bot := p.Subdivide(V, split)
				diff(t, top.Row(m), bot.Row(0))
				diff(t, p.Row(0), top.Row(0))
				diff(t, p.Row(m), bot.Row(m))

				for _, c := range []Patch[Vec3]{l, r, top, bot} {
					if cn, cm := c.Degree(); cn != n || cm != m {
						t.Errorf("%s: got degree (%d, %d), want (%d, %d)", name, cn, cm, n, m)
					}
				}
			}
		}
	}
}

func TestPatchSubdivideDegreeZero(t *testing.T) {
	p := mustPatch(t, 0, 2, []Scalar{1, 2, 3}, rgbw)
	l, r := p.Subdivide(U, 0.5)
	diff(t, p.Points(), l.Points())
	diff(t, p.Points(), r.Points())

	q := mustPatch(t, 2, 0, []Scalar{1, 2, 3}, rgbw)
	top, bot := q.Subdivide(V, 0.25)
	diff(t, q.Points(), top.Points())
	diff(t, q.Points(), bot.Points())
}

func TestPatchSubdivideTranspose(t *testing.T) {
	// Splitting along U is the same as transposing, splitting along V and
	// transposing back.
	surf := examplePatch2(t)
	l, r := surf.Subdivide(U, 0.5)
	top, bot := surf.Transpose().Subdivide(V, 0.5)
	diff(t, l, top.Transpose(), allowPatch)
	diff(t, r, bot.Transpose(), allowPatch)
}

func TestPatchDoubleSubdivide(t *testing.T) {
	// The order of subsequent U and V subdivisions doesn't matter.
	surf := examplePatch2(t)
	al, ar := surf.Subdivide(U, 0.5)
	atl, abl := al.Subdivide(V, 0.5)
	atr, abr := ar.Subdivide(V, 0.5)

	bt, bb := surf.Subdivide(V, 0.5)
	btl, btr := bt.Subdivide(U, 0.5)
	bbl, bbr := bb.Subdivide(U, 0.5)

	diff(t, atl, btl, allowPatch)
	diff(t, atr, btr, allowPatch)
	diff(t, abl, bbl, allowPatch)
	diff(t, abr, bbr, allowPatch)

	diff(t, [4]Patch[Scalar]{atl, abl, atr, abr}, surf.SubdivideCross(), allowPatch)
}

func TestPatchDoubleSubdivideRandom(t *testing.T) {
	surf := randomPatch(t, 3, 2, 42)
	al, ar := surf.Subdivide(U, 0.5)
	atl, abl := al.Subdivide(V, 0.5)
	atr, abr := ar.Subdivide(V, 0.5)

	bt, bb := surf.Subdivide(V, 0.5)
	btl, btr := bt.Subdivide(U, 0.5)
	bbl, bbr := bb.Subdivide(U, 0.5)

	pairs := [][2]Patch[Vec3]{{atl, btl}, {atr, btr}, {abl, bbl}, {abr, bbr}}
	for _, pair := range pairs {
		diff(t, pair[0].Points(), pair[1].Points(), approx)
		diff(t, pair[0].Colors(), pair[1].Colors(), approx)
	}
}

func TestPatchEval(t *testing.T) {
	surf := randomPatch(t, 3, 2, 7)

	corners := surf.Corners()
	diff(t, corners[0], surf.Eval(0, 0))
	diff(t, corners[1], surf.Eval(1, 0))
	diff(t, corners[2], surf.Eval(0, 1))
	diff(t, corners[3], surf.Eval(1, 1))

	l, _ := surf.Subdivide(U, 0.5)
	diff(t, surf.Eval(0.25, 0.5), l.Eval(0.5, 0.5), approx)
	top, _ := surf.Subdivide(V, 0.5)
	diff(t, surf.Eval(0.5, 0.25), top.Eval(0.5, 0.5), approx)

	// A row of the patch at fixed v is a curve.
	row, err := NewCurve(surf.Row(0)...)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, row.Eval(0.3), surf.Eval(0.3, 0))
}

func TestPatchColorAt(t *testing.T) {
	surf := examplePatch(t)
	diff(t, Red, surf.ColorAt(0, 0))
	diff(t, Green, surf.ColorAt(1, 0))
	diff(t, Blue, surf.ColorAt(0, 1))
	diff(t, White, surf.ColorAt(1, 1))

	// Subdivision interpolates colors consistently with ColorAt.
	l, r := surf.Subdivide(U, 0.25)
	diff(t, surf.ColorAt(0.25, 0), l.Colors()[1], approx)
	diff(t, surf.ColorAt(0.25, 1), r.Colors()[2], approx)
}

func TestNewPatchErrors(t *testing.T) {
	_, err := NewPatch(-1, 2, []Scalar{}, rgbw)
	if !errors.Is(err, ErrNegativeDegree) {
		t.Errorf("got %v, want ErrNegativeDegree", err)
	}

	wide := 1<<(bits.UintSize/2) - 1
	for _, deg := range [][2]int{{math.MaxInt/2 - 1, 3}, {wide, wide}, {0, math.MaxInt}} {
		_, err = NewPatch(deg[0], deg[1], []Scalar{}, rgbw)
		if !errors.Is(err, ErrDegreeTooLarge) {
			t.Errorf("degree %v: got %v, want ErrDegreeTooLarge", deg, err)
		}
	}

	_, err = NewPatch(2, 1, []Scalar{1, 2, 3, 4, 5}, rgbw)
	var ce *CountError
	if !errors.As(err, &ce) {
		t.Fatalf("got %v, want *CountError", err)
	}
	diff(t, &CountError{What: "control points", Expected: 6, Got: 5}, ce)
	if got, want := err.Error(), "5 control points given, 6 expected"; got != want {
		t.Errorf("got message %q, want %q", got, want)
	}
}

func TestPatchImmutable(t *testing.T) {
	pts := []Scalar{1, 2, 3, 4}
	p := mustPatch(t, 1, 1, pts, rgbw)
	pts[0] = 100
	p.Points()[1] = 100
	p.Row(0)[0] = 100
	p.Column(1)[0] = 100
	diff(t, []Scalar{1, 2, 3, 4}, p.Points())

	p.Subdivide(U, 0.5)
	p.SubdivideCross()
	diff(t, []Scalar{1, 2, 3, 4}, p.Points())
}

func TestPatchAccessors(t *testing.T) {
	p := examplePatch(t)
	if n, m := p.Degree(); n != 3 || m != 2 {
		t.Errorf("got degree (%d, %d), want (3, 2)", n, m)
	}
	diff(t, []Scalar{4, 0, 4, 4}, p.Row(1))
	diff(t, []Scalar{4, 4, 0}, p.Column(2))
	diff(t, [4]Scalar{4, 0, 4, 4}, p.Corners())
	if got := p.At(3, 1); got != 4 {
		t.Errorf("At(3, 1) = %g, want 4", got)
	}

	defer func() {
		if recover() == nil {
			t.Error("At(4, 0) didn't panic")
		}
	}()
	p.At(4, 0)
}

func TestAxisString(t *testing.T) {
	for axis, want := range map[Axis]string{U: "U", V: "V", Axis(5): "Axis(5)"} {
		if got := axis.String(); got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	}
}
