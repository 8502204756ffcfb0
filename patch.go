package bezmesh

import (
	"fmt"
	"math"
	"slices"
)

// Axis is one of the two parametric directions of a [Patch].
type Axis int

const (
	// U is the first parametric direction, along which the index i of a
	// control point grows.
	U Axis = iota
	// V is the second parametric direction, along which the index j of a
	// control point grows.
	V
)

func (a Axis) String() string {
	switch a {
	case U:
		return "U"
	case V:
		return "V"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

var _ Refinable[Patch[Vec3]] = Patch[Vec3]{}

// Patch is a rectangular (tensor-product) Bézier patch of degree n in u and
// degree m in v.
//
// The control point b_ij, with i ∈ [0, n] and j ∈ [0, m], is stored at index
// j*(n+1)+i. The patch interpolates its four corner points, and each corner
// carries a color:
//
//	(0,0) -- u -- (1,0)        b_00 b_10 --- b_n0        c[0] -- c[1]
//	  |             |           b_01           |            |       |
//	  v             |           |              |            |       |
//	  |             |           |              |            |       |
//	(0,1) ------- (1,1)        b_0m b_1m --- b_nm        c[2] -- c[3]
//
// Patches are immutable. The degrees are fixed at construction and preserved
// by subdivision.
type Patch[T Vector[T]] struct {
	n, m   int
	points []T
	colors [4]Color
}

// NewPatch returns a patch of degree n in u and m in v.
//
// points must hold exactly (n+1)·(m+1) control points in row-major order,
// and colors holds the colors of the corners (0,0), (1,0), (0,1) and (1,1), in
// that order. The points are copied.
func NewPatch[T Vector[T]](n, m int, points []T, colors [4]Color) (Patch[T], error) {
	if n < 0 || m < 0 {
		return Patch[T]{}, fmt.Errorf("patch of degree (%d, %d): %w", n, m, ErrNegativeDegree)
	}
	want, ok := patchSize(n, m)
	if !ok {
		return Patch[T]{}, fmt.Errorf("patch of degree (%d, %d): %w", n, m, ErrDegreeTooLarge)
	}
	if len(points) != want {
		return Patch[T]{}, &CountError{What: "control points", Expected: want, Got: len(points)}
	}
	return Patch[T]{
		n:      n,
		m:      m,
		points: slices.Clone(points),
		colors: colors,
	}, nil
}

// patchSize returns (n+1)·(m+1) for non-negative n and m, or false if the
// product doesn't fit in an int.
func patchSize(n, m int) (int, bool) {
	if n == math.MaxInt || m == math.MaxInt {
		return 0, false
	}
	a, b := n+1, m+1
	if a > math.MaxInt/b {
		return 0, false
	}
	return a * b, true
}

func (p Patch[T]) String() string {
	return fmt.Sprintf("Patch(%d×%d)%v%v", p.n, p.m, p.points, p.colors)
}

// Degree returns the degrees of the patch in u and v.
func (p Patch[T]) Degree() (n, m int) {
	return p.n, p.m
}

// At returns the control point b_ij.
func (p Patch[T]) At(i, j int) T {
	if i < 0 || i > p.n || j < 0 || j > p.m {
		panic(fmt.Sprintf("control point (%d, %d) out of range for patch of degree (%d, %d)", i, j, p.n, p.m))
	}
	return p.points[p.index(i, j)]
}

func (p Patch[T]) index(i, j int) int {
	return j*(p.n+1) + i
}

// Points returns a copy of all control points, in row-major order.
func (p Patch[T]) Points() []T {
	return slices.Clone(p.points)
}

// Row returns a copy of the n+1 control points with index j in v.
func (p Patch[T]) Row(j int) []T {
	w := p.n + 1
	return slices.Clone(p.points[j*w : (j+1)*w])
}

// Column returns the m+1 control points with index i in u.
func (p Patch[T]) Column(i int) []T {
	col := make([]T, p.m+1)
	for j := range col {
		col[j] = p.points[p.index(i, j)]
	}
	return col
}

// Colors returns the corner colors in the order (0,0), (1,0), (0,1), (1,1).
func (p Patch[T]) Colors() [4]Color {
	return p.colors
}

// Corners returns the corner points b_00, b_n0, b_0m and b_nm.
func (p Patch[T]) Corners() [4]T {
	return [4]T{
		p.points[p.index(0, 0)],
		p.points[p.index(p.n, 0)],
		p.points[p.index(0, p.m)],
		p.points[p.index(p.n, p.m)],
	}
}

// Eval evaluates the patch at (u, v).
func (p Patch[T]) Eval(u, v float64) T {
	col := make([]T, p.m+1)
	w := p.n + 1
	for j := range col {
		col[j] = deCasteljau(p.points[j*w:(j+1)*w], u)
	}
	return deCasteljau(col, v)
}

// ColorAt bilinearly interpolates the corner colors at (u, v).
func (p Patch[T]) ColorAt(u, v float64) Color {
	c := p.colors
	return Lerp(Lerp(c[0], c[1], u), Lerp(c[2], c[3], u), v)
}

// Transpose returns the patch with the u and v directions swapped.
func (p Patch[T]) Transpose() Patch[T] {
	out := Patch[T]{
		n:      p.m,
		m:      p.n,
		points: make([]T, len(p.points)),
		colors: [4]Color{p.colors[0], p.colors[2], p.colors[1], p.colors[3]},
	}
	for j := 0; j <= p.m; j++ {
		for i := 0; i <= p.n; i++ {
			out.points[out.index(j, i)] = p.points[p.index(i, j)]
		}
	}
	return out
}

// Subdivide splits the patch at parameter t along the given axis.
//
// For [U], it returns the left (u ∈ [0, t]) and right (u ∈ [t, 1]) halves; for
// [V], it returns the top (v ∈ [0, t]) and bottom (v ∈ [t, 1]) halves. Both
// halves have the same degree as p. The control points on the shared edge are
// identical in both halves, and the outer edges are those of p.
//
// The corner colors on the split edge are interpolated from the colors at
// the ends of the edges crossing the split. t may lie outside of [0, 1], in
// which case the patch is extrapolated.
func (p Patch[T]) Subdivide(axis Axis, t float64) (Patch[T], Patch[T]) {
	switch axis {
	case U:
		return p.subdivideU(t)
	case V:
		return p.subdivideV(t)
	default:
		panic(fmt.Sprintf("invalid axis %v", axis))
	}
}

func (p Patch[T]) subdivideU(t float64) (Patch[T], Patch[T]) {
	w := p.n + 1
	left := make([]T, len(p.points))
	right := make([]T, len(p.points))
	for j := 0; j <= p.m; j++ {
		scheme := TriangularScheme(p.points[j*w:(j+1)*w], t)
		copy(left[j*w:], SchemeLeft(scheme, w))
		copy(right[j*w:], SchemeRight(scheme, w))
	}

	c := p.colors
	top := Lerp(c[0], c[1], t)
	bot := Lerp(c[2], c[3], t)
	return Patch[T]{n: p.n, m: p.m, points: left, colors: [4]Color{c[0], top, c[2], bot}},
		Patch[T]{n: p.n, m: p.m, points: right, colors: [4]Color{top, c[1], bot, c[3]}}
}

func (p Patch[T]) subdivideV(t float64) (Patch[T], Patch[T]) {
	h := p.m + 1
	top := make([]T, len(p.points))
	bot := make([]T, len(p.points))
	for i := 0; i <= p.n; i++ {
		scheme := TriangularScheme(p.Column(i), t)
		l := SchemeLeft(scheme, h)
		r := SchemeRight(scheme, h)
		for j := range h {
			top[p.index(i, j)] = l[j]
			bot[p.index(i, j)] = r[j]
		}
	}

	c := p.colors
	left := Lerp(c[0], c[2], t)
	right := Lerp(c[1], c[3], t)
	return Patch[T]{n: p.n, m: p.m, points: top, colors: [4]Color{c[0], c[1], left, right}},
		Patch[T]{n: p.n, m: p.m, points: bot, colors: [4]Color{left, right, c[2], c[3]}}
}

// SubdivideCross splits the patch into four quadrants at u = v = 0.5. See
// [Patch.SubdivideCrossAt].
func (p Patch[T]) SubdivideCross() [4]Patch[T] {
	return p.SubdivideCrossAt(0.5)
}

// SubdivideCrossAt splits the patch at u = t, then splits both halves at v = t.
// It returns the quadrants in the order top left, bottom left, top right,
// bottom right.
//
// Splitting along v first yields the same quadrants.
func (p Patch[T]) SubdivideCrossAt(t float64) [4]Patch[T] {
	l, r := p.Subdivide(U, t)
	tl, bl := l.Subdivide(V, t)
	tr, br := r.Subdivide(V, t)
	return [4]Patch[T]{tl, bl, tr, br}
}

// Refine implements [Refinable] by returning the four quadrants of
// [Patch.SubdivideCrossAt].
func (p Patch[T]) Refine(t float64) []Patch[T] {
	q := p.SubdivideCrossAt(t)
	return q[:]
}

// mapPoints returns a patch of the same shape and colors with f applied to
// every control point.
func (p Patch[T]) mapPoints(f func(T) T) Patch[T] {
	out := p
	out.points = make([]T, len(p.points))
	for i, pt := range p.points {
		out.points[i] = f(pt)
	}
	return out
}
