package bezmesh

import "math"

// Affine describes an affine transform of 3D space via coefficients.
//
// The coefficients (N0, ..., N11) represent this augmented matrix:
//
//	| N0 N3 N6 N9  |
//	| N1 N4 N7 N10 |
//	| N2 N5 N8 N11 |
//	| 0  0  0  1   |
//
// The idea is that (A * B) * v == A * (B * v).
//
// Bézier curves and patches are affine invariant: transforming their control
// points transforms the curve or surface they describe. See [TransformPatch].
type Affine struct {
	N0, N1, N2, N3, N4, N5, N6, N7, N8, N9, N10, N11 float64
}

// Identity is the identity transform.
var Identity = Affine{N0: 1, N4: 1, N8: 1}

// Scale creates an affine transform representing non-uniform scaling along
// the x, y and z axes.
func Scale(x, y, z float64) Affine {
	return Affine{N0: x, N4: y, N8: z}
}

// Translate creates an affine transform representing translation.
func Translate(v Vec3) Affine {
	return Affine{N0: 1, N4: 1, N8: 1, N9: v.X, N10: v.Y, N11: v.Z}
}

// Rotate creates an affine transform representing a rotation of th radians
// about axis, which passes through the origin. Looking down the axis towards
// the origin, positive angles rotate counter-clockwise.
//
// axis does not need to be normalized. A zero axis produces NaN values.
func Rotate(axis Vec3, th float64) Affine {
	a := axis.Normalize()
	sin, cos := math.Sincos(th)
	k := 1 - cos
	x, y, z := a.Splat()
	return Affine{
		N0: cos + x*x*k, N3: x*y*k - z*sin, N6: x*z*k + y*sin,
		N1: y*x*k + z*sin, N4: cos + y*y*k, N7: y*z*k - x*sin,
		N2: z*x*k - y*sin, N5: z*y*k + x*sin, N8: cos + z*z*k,
	}
}

// RotateAbout creates an affine transform representing a rotation of th
// radians about the line through center with direction axis.
func RotateAbout(axis Vec3, th float64, center Vec3) Affine {
	return Translate(center.Negate()).ThenRotate(axis, th).ThenTranslate(center)
}

// NewAffine creates a new affine transformation from an array of coefficients.
// Alternatively, you can initialize the fields of [Affine] manually.
func NewAffine(n [12]float64) Affine {
	return Affine{n[0], n[1], n[2], n[3], n[4], n[5], n[6], n[7], n[8], n[9], n[10], n[11]}
}

// Coefficients returns the the coefficients of the transform.
func (aff Affine) Coefficients() [12]float64 {
	return [12]float64{
		aff.N0, aff.N1, aff.N2, aff.N3, aff.N4, aff.N5,
		aff.N6, aff.N7, aff.N8, aff.N9, aff.N10, aff.N11,
	}
}

func (aff Affine) Mul(o Affine) Affine {
	return Affine{
		N0: aff.N0*o.N0 + aff.N3*o.N1 + aff.N6*o.N2,
		N1: aff.N1*o.N0 + aff.N4*o.N1 + aff.N7*o.N2,
		N2: aff.N2*o.N0 + aff.N5*o.N1 + aff.N8*o.N2,

		N3: aff.N0*o.N3 + aff.N3*o.N4 + aff.N6*o.N5,
		N4: aff.N1*o.N3 + aff.N4*o.N4 + aff.N7*o.N5,
		N5: aff.N2*o.N3 + aff.N5*o.N4 + aff.N8*o.N5,

		N6: aff.N0*o.N6 + aff.N3*o.N7 + aff.N6*o.N8,
		N7: aff.N1*o.N6 + aff.N4*o.N7 + aff.N7*o.N8,
		N8: aff.N2*o.N6 + aff.N5*o.N7 + aff.N8*o.N8,

		N9:  aff.N0*o.N9 + aff.N3*o.N10 + aff.N6*o.N11 + aff.N9,
		N10: aff.N1*o.N9 + aff.N4*o.N10 + aff.N7*o.N11 + aff.N10,
		N11: aff.N2*o.N9 + aff.N5*o.N10 + aff.N8*o.N11 + aff.N11,
	}
}

// PreRotate creates a rotation followed by aff.
//
// Equivalent to "aff * Rotate(axis, th)"
func (aff Affine) PreRotate(axis Vec3, th float64) Affine {
	return aff.Mul(Rotate(axis, th))
}

// ThenRotate creates aff followed by a rotation.
//
// Equivalent to "Rotate(axis, th) * aff"
func (aff Affine) ThenRotate(axis Vec3, th float64) Affine {
	return Rotate(axis, th).Mul(aff)
}

// PreScale creates a scale by (x, y, z) followed by aff.
//
// Equivalent to "aff * Scale(x, y, z)"
func (aff Affine) PreScale(x, y, z float64) Affine {
	return aff.Mul(Scale(x, y, z))
}

// ThenScale creates aff followed by a scale of (x, y, z).
//
// Equivalent to "Scale(x, y, z) * aff"
func (aff Affine) ThenScale(x, y, z float64) Affine {
	return Scale(x, y, z).Mul(aff)
}

// PreTranslate creates a translation of v followed by aff.
//
// Equivalent to "aff * Translate(v)"
func (aff Affine) PreTranslate(v Vec3) Affine {
	return aff.Mul(Translate(v))
}

// ThenTranslate creates aff followed by a translation of v.
//
// Equivalent to "Translate(v) * aff"
func (aff Affine) ThenTranslate(v Vec3) Affine {
	aff.N9 += v.X
	aff.N10 += v.Y
	aff.N11 += v.Z
	return aff
}

// Determinant computes the determinant of the linear part.
func (aff Affine) Determinant() float64 {
	return aff.N0*(aff.N4*aff.N8-aff.N7*aff.N5) -
		aff.N3*(aff.N1*aff.N8-aff.N7*aff.N2) +
		aff.N6*(aff.N1*aff.N5-aff.N4*aff.N2)
}

// Invert computes the inverse transform.
//
// Produces NaN or infinite values when the determinant is zero.
func (aff Affine) Invert() Affine {
	invDet := 1 / aff.Determinant()
	inv := Affine{
		N0: (aff.N4*aff.N8 - aff.N7*aff.N5) * invDet,
		N1: (aff.N7*aff.N2 - aff.N1*aff.N8) * invDet,
		N2: (aff.N1*aff.N5 - aff.N4*aff.N2) * invDet,
		N3: (aff.N6*aff.N5 - aff.N3*aff.N8) * invDet,
		N4: (aff.N0*aff.N8 - aff.N6*aff.N2) * invDet,
		N5: (aff.N3*aff.N2 - aff.N0*aff.N5) * invDet,
		N6: (aff.N3*aff.N7 - aff.N6*aff.N4) * invDet,
		N7: (aff.N6*aff.N1 - aff.N0*aff.N7) * invDet,
		N8: (aff.N0*aff.N4 - aff.N3*aff.N1) * invDet,
	}
	// The inverse translation is -(L⁻¹ t).
	t := inv.linear(aff.Translation()).Negate()
	return inv.WithTranslation(t)
}

func (aff Affine) IsInf() bool {
	for _, n := range aff.Coefficients() {
		if math.IsInf(n, 0) {
			return true
		}
	}
	return false
}

func (aff Affine) IsNaN() bool {
	for _, n := range aff.Coefficients() {
		if math.IsNaN(n) {
			return true
		}
	}
	return false
}

// Translation returns the translation component of this affine transformation.
func (aff Affine) Translation() Vec3 {
	return Vec3{
		X: aff.N9,
		Y: aff.N10,
		Z: aff.N11,
	}
}

// WithTranslation replaces the translation portion of this affine
// transformation.
func (aff Affine) WithTranslation(v Vec3) Affine {
	aff.N9 = v.X
	aff.N10 = v.Y
	aff.N11 = v.Z
	return aff
}

// linear applies only the linear part of aff to v.
func (aff Affine) linear(v Vec3) Vec3 {
	return Vec3{
		X: aff.N0*v.X + aff.N3*v.Y + aff.N6*v.Z,
		Y: aff.N1*v.X + aff.N4*v.Y + aff.N7*v.Z,
		Z: aff.N2*v.X + aff.N5*v.Y + aff.N8*v.Z,
	}
}

// Transform applies aff to v, treating v as a position (translation is
// applied).
func (v Vec3) Transform(aff Affine) Vec3 {
	return aff.linear(v).Add(aff.Translation())
}

// TransformBox computes the bounding box of a transformed box.
//
// If the transform only scales and translates, the returned box is the
// transformed box itself.
func (aff Affine) TransformBox(b Box) Box {
	if b.IsEmpty() {
		return b
	}
	out := EmptyBox()
	for _, x := range [2]float64{b.Min.X, b.Max.X} {
		for _, y := range [2]float64{b.Min.Y, b.Max.Y} {
			for _, z := range [2]float64{b.Min.Z, b.Max.Z} {
				out = out.UnionPoint(Vec(x, y, z).Transform(aff))
			}
		}
	}
	return out
}

// TransformPatch applies aff to every control point of p. The colors are
// unchanged.
func TransformPatch(p Patch[Vec3], aff Affine) Patch[Vec3] {
	return p.mapPoints(func(v Vec3) Vec3 { return v.Transform(aff) })
}
