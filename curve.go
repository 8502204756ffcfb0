package bezmesh

import (
	"fmt"
	"slices"
)

var _ Refinable[Curve[Scalar]] = Curve[Scalar]{}

// Curve is a Bézier curve of arbitrary degree over control values of type T.
//
// A curve of degree n has n+1 control points. Curves are immutable; all
// operations return new curves.
type Curve[T Vector[T]] struct {
	points []T
}

// NewCurve returns the curve with the given control points. The degree of the
// curve is len(points)-1. It returns a [*CountError] if no points are given.
func NewCurve[T Vector[T]](points ...T) (Curve[T], error) {
	if len(points) == 0 {
		return Curve[T]{}, &CountError{What: "control points", Expected: 1, Got: 0, AtLeast: true}
	}
	return Curve[T]{points: slices.Clone(points)}, nil
}

func (c Curve[T]) String() string {
	return fmt.Sprintf("Curve%v", c.points)
}

// Degree returns the degree of the curve.
func (c Curve[T]) Degree() int {
	return len(c.points) - 1
}

// Points returns a copy of the control points.
func (c Curve[T]) Points() []T {
	return slices.Clone(c.points)
}

// At returns the i-th control point.
func (c Curve[T]) At(i int) T {
	return c.points[i]
}

func (c Curve[T]) Start() T {
	return c.points[0]
}

func (c Curve[T]) End() T {
	return c.points[len(c.points)-1]
}

// Eval evaluates the curve at parameter t using de Casteljau.
func (c Curve[T]) Eval(t float64) T {
	return deCasteljau(c.points, t)
}

// Subdivide splits the curve at t into the curves on [0, t] and [t, 1].
//
// The end of the first curve and the start of the second curve are the same
// value.
func (c Curve[T]) Subdivide(t float64) (Curve[T], Curve[T]) {
	n := len(c.points)
	scheme := TriangularScheme(c.points, t)
	return Curve[T]{points: SchemeLeft(scheme, n)}, Curve[T]{points: SchemeRight(scheme, n)}
}

// Subsegment returns the part of the curve between t0 and t1. If t1 < t0, the
// returned curve runs backwards.
func (c Curve[T]) Subsegment(t0, t1 float64) Curve[T] {
	if t0 == t1 {
		return Curve[T]{points: slices.Repeat([]T{c.Eval(t0)}, len(c.points))}
	}
	if t1 == 0 {
		// [t0, 0] is [0, t0] reversed.
		a, _ := c.Subdivide(t0)
		slices.Reverse(a.points)
		return a
	}
	a, _ := c.Subdivide(t1)
	_, b := a.Subdivide(t0 / t1)
	return b
}

// Refine implements [Refinable] by splitting the curve at t.
func (c Curve[T]) Refine(t float64) []Curve[T] {
	a, b := c.Subdivide(t)
	return []Curve[T]{a, b}
}
