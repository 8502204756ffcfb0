package bezmesh

import (
	"fmt"
	"math"
	"slices"
)

// TriPatch is a triangular Bézier patch of degree n.
//
// Control points are indexed by barycentric triples (i, j, k) with
// i+j+k = n. They are stored in rows of constant k, starting with k = 0, and
// within a row by increasing j. The corners b_n00, b_0n0 and b_00n are at the
// parameters (u, v) = (0, 0), (1, 0) and (0, 1) and carry the three colors, in
// that order.
//
// TriPatch can be evaluated but not subdivided, and so cannot be refined.
type TriPatch[T Vector[T]] struct {
	n      int
	points []T
	colors [3]Color
}

// NewTriPatch returns a triangular patch of degree n. points must hold
// exactly TriangularNumber(n+1) control points.
func NewTriPatch[T Vector[T]](n int, points []T, colors [3]Color) (TriPatch[T], error) {
	if n < 0 {
		return TriPatch[T]{}, fmt.Errorf("triangular patch of degree %d: %w", n, ErrNegativeDegree)
	}
	if n > math.MaxInt-2 || n+1 > math.MaxInt/(n+2) {
		return TriPatch[T]{}, fmt.Errorf("triangular patch of degree %d: %w", n, ErrDegreeTooLarge)
	}
	if want := TriangularNumber(n + 1); len(points) != want {
		return TriPatch[T]{}, &CountError{What: "control points", Expected: want, Got: len(points)}
	}
	return TriPatch[T]{n: n, points: slices.Clone(points), colors: colors}, nil
}

// Degree returns the degree of the patch.
func (p TriPatch[T]) Degree() int {
	return p.n
}

// Points returns a copy of the control points in storage order.
func (p TriPatch[T]) Points() []T {
	return slices.Clone(p.points)
}

// Colors returns the corner colors.
func (p TriPatch[T]) Colors() [3]Color {
	return p.colors
}

// At returns the control point b_ijk.
func (p TriPatch[T]) At(i, j, k int) T {
	if i < 0 || j < 0 || k < 0 || i+j+k != p.n {
		panic(fmt.Sprintf("invalid index (%d, %d, %d) for triangular patch of degree %d", i, j, k, p.n))
	}
	return p.points[triIndex(p.n, j, k)]
}

// Corners returns b_n00, b_0n0 and b_00n.
func (p TriPatch[T]) Corners() [3]T {
	return [3]T{
		p.points[triIndex(p.n, 0, 0)],
		p.points[triIndex(p.n, p.n, 0)],
		p.points[triIndex(p.n, 0, p.n)],
	}
}

// triIndex returns the storage index of b_ijk in a patch of degree n. i is
// implied by i = n-j-k.
func triIndex(n, j, k int) int {
	// Rows 0..k-1 hold n+1, n, ..., n+2-k points.
	return k*(n+1) - k*(k-1)/2 + j
}

// Eval evaluates the patch at (u, v), i.e. at the barycentric coordinates
// (1-u-v, u, v).
func (p TriPatch[T]) Eval(u, v float64) T {
	w := 1 - u - v
	cur := slices.Clone(p.points)
	for d := p.n; d > 0; d-- {
		next := make([]T, TriangularNumber(d))
		for k := 0; k < d; k++ {
			for j := 0; j < d-k; j++ {
				// b_ijk at level d-1 with i = d-1-j-k combines b_(i+1)jk,
				// b_i(j+1)k and b_ij(k+1) of level d.
				next[triIndex(d-1, j, k)] = cur[triIndex(d, j, k)].Mul(w).
					Add(cur[triIndex(d, j+1, k)].Mul(u)).
					Add(cur[triIndex(d, j, k+1)].Mul(v))
			}
		}
		cur = next
	}
	return cur[0]
}

// ColorAt interpolates the corner colors at (u, v) barycentrically.
func (p TriPatch[T]) ColorAt(u, v float64) Color {
	c := p.colors
	return c[0].Mul(1 - u - v).Add(c[1].Mul(u)).Add(c[2].Mul(v))
}
