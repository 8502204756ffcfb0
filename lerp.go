package bezmesh

import "golang.org/x/exp/constraints"

// Vector describes control values: anything that can be added and scaled by a
// real number. Bézier curves and patches only ever form affine combinations of
// their control values, so this is all they need.
type Vector[T any] interface {
	Add(T) T
	Mul(float64) T
}

var _ Vector[Scalar] = Scalar(0)

// Scalar is a one-dimensional control value.
type Scalar float64

func (s Scalar) Add(o Scalar) Scalar  { return s + o }
func (s Scalar) Mul(f float64) Scalar { return s * Scalar(f) }

// Lerp linearly interpolates between a and b, returning a·(1−t) + b·t.
//
// t is not restricted to [0, 1]; values outside of it extrapolate.
func Lerp[T Vector[T]](a, b T, t float64) T {
	return a.Mul(1 - t).Add(b.Mul(t))
}

// TriangularNumber returns n·(n+1)/2, the number of values in a de Casteljau
// triangle built from n values.
func TriangularNumber[I constraints.Integer](n I) I {
	return n * (n + 1) / 2
}

// TriangularScheme runs the de Casteljau construction on row at parameter t.
//
// The result holds the whole triangle, flattened row by row: the first
// len(row) values are row itself, the next len(row)-1 values are the
// pairwise interpolations of those, and so on, for a total of
// TriangularNumber(len(row)) values. The last value is the point on the
// Bézier curve with control points row at t. The first value of every row,
// read in row order, are the control points of the sub-curve on [0, t], and
// the last value of every row, read in reverse row order, are the control
// points of the sub-curve on [t, 1]. See [SchemeLeft] and [SchemeRight].
func TriangularScheme[T Vector[T]](row []T, t float64) []T {
	n := len(row)
	out := make([]T, TriangularNumber(n))
	copy(out, row)
	prev := 0
	cur := n
	for l := n - 1; l > 0; l-- {
		for i := range l {
			out[cur+i] = Lerp(out[prev+i], out[prev+i+1], t)
		}
		prev = cur
		cur += l
	}
	return out
}

// SchemeLeft returns the left edge of a triangle computed by
// [TriangularScheme] from n values, which are the control points of the
// sub-curve on [0, t].
func SchemeLeft[T any](scheme []T, n int) []T {
	out := make([]T, n)
	off := 0
	for k := range n {
		out[k] = scheme[off]
		off += n - k
	}
	return out
}

// SchemeRight returns the right edge of a triangle computed by
// [TriangularScheme] from n values, in reverse row order. These are the
// control points of the sub-curve on [t, 1].
func SchemeRight[T any](scheme []T, n int) []T {
	out := make([]T, n)
	off := 0
	for k := range n {
		rowLen := n - k
		out[n-1-k] = scheme[off+rowLen-1]
		off += rowLen
	}
	return out
}

// deCasteljau evaluates the Bézier curve with control points pts at t
// without keeping the intermediate rows.
func deCasteljau[T Vector[T]](pts []T, t float64) T {
	if len(pts) == 0 {
		return *new(T)
	}
	buf := make([]T, len(pts))
	copy(buf, pts)
	for l := len(buf) - 1; l > 0; l-- {
		for i := range l {
			buf[i] = Lerp(buf[i], buf[i+1], t)
		}
	}
	return buf[0]
}
