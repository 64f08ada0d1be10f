package ga

import (
	"github.com/chewxy/math32"
)

// Affine describes a 2D affine transform via coefficients.
//
// If the coefficients are (a, b, c, d, e, f), then the resulting
// transformation represents this augmented matrix:
//
//	| a c e |
//	| b d f |
//	| 0 0 1 |
//
// The idea is that (A * B) * v == A * (B * v).
type Affine struct {
	// Struct instead of array so the coefficients can live in registers.
	N0, N1, N2, N3, N4, N5 float32
}

// IdentityAffine is the identity transform.
var IdentityAffine = Affine{1, 0, 0, 1, 0, 0}

// FlipY is a transform that is flipped on the y-axis. Useful for converting
// between y-up and y-down spaces.
var FlipY = Affine{1, 0, 0, -1, 0, 0}

// FlipX is a transform that is flipped on the x-axis.
var FlipX = Affine{-1, 0, 0, 1, 0, 0}

// Scale creates an affine transform representing non-uniform scaling with
// different scale values for x and y
func Scale(x, y float32) Affine {
	return Affine{x, 0, 0, y, 0, 0}
}

// Translate creates an affine transform representing translation.
func Translate(v Vec2) Affine {
	return Affine{1, 0, 0, 1, v.X, v.Y}
}

// Rotate creates an affine transform that applies the rotation of r, which
// must be normalized.
func Rotate(r Rotor2) Affine {
	x := r.TimesVec(XPos2)
	y := r.TimesVec(YPos2)
	return Affine{x.X, x.Y, y.X, y.Y, 0, 0}
}

// Affine returns the affine transform of the rotation r.
func (r Rotor2) Affine() Affine {
	return Rotate(r)
}

// RotateAbout creates an affine transform that applies the rotation of r about
// center.
func RotateAbout(r Rotor2, center Vec2) Affine {
	return Translate(center.Negated()).ThenRotate(r).ThenTranslate(center)
}

// Coefficients returns the the coefficients of the transform.
func (aff Affine) Coefficients() [6]float32 {
	return [6]float32{aff.N0, aff.N1, aff.N2, aff.N3, aff.N4, aff.N5}
}

// NewAffine creates a new affine transformation from an array of coefficients.
// Alternatively, you can initialize the fields of [Affine] manually.
func NewAffine(n [6]float32) Affine {
	return Affine{n[0], n[1], n[2], n[3], n[4], n[5]}
}

func (aff Affine) Mul(o Affine) Affine {
	return Affine{
		aff.N0*o.N0 + aff.N2*o.N1,
		aff.N1*o.N0 + aff.N3*o.N1,
		aff.N0*o.N2 + aff.N2*o.N3,
		aff.N1*o.N2 + aff.N3*o.N3,
		aff.N0*o.N4 + aff.N2*o.N5 + aff.N4,
		aff.N1*o.N4 + aff.N3*o.N5 + aff.N5,
	}
}

// PreRotate creates a rotation by r followed by aff.
//
// Equivalent to "aff * Rotate(r)"
func (aff Affine) PreRotate(r Rotor2) Affine {
	return aff.Mul(Rotate(r))
}

// ThenRotate creates aff followed by a rotation by r.
//
// Equivalent to "Rotate(r) * aff"
func (aff Affine) ThenRotate(r Rotor2) Affine {
	return Rotate(r).Mul(aff)
}

// PreScale creates a scale by (x, y) followed by aff.
//
// Equivalent to "aff * Scale(x, y)"
func (aff Affine) PreScale(x, y float32) Affine {
	return aff.Mul(Scale(x, y))
}

// ThenScale creates aff followed by a scale of (x, y).
//
// Equivalent to "Scale(x, y) * aff"
func (aff Affine) ThenScale(x, y float32) Affine {
	return Scale(x, y).Mul(aff)
}

// PreTranslate creates a translation of v followed by aff.
//
// Equivalent to "aff * Translate(v)"
func (aff Affine) PreTranslate(v Vec2) Affine {
	return aff.Mul(Translate(v))
}

// ThenTranslate creates aff followed by a translation of v.
//
// Equivalent to "Translate(v) * aff"
func (aff Affine) ThenTranslate(v Vec2) Affine {
	aff.N4 += v.X
	aff.N5 += v.Y
	return aff
}

// Determinant computes the determinant.
func (aff Affine) Determinant() float32 {
	return aff.N0*aff.N3 - aff.N1*aff.N2
}

// Invert computes the inverse transform.
//
// Produces NaN values when the determinant is zero.
func (aff Affine) Invert() Affine {
	invDet := 1 / aff.Determinant()
	return Affine{
		+invDet * aff.N3,
		-invDet * aff.N1,
		-invDet * aff.N2,
		+invDet * aff.N0,
		+invDet * (aff.N2*aff.N5 - aff.N3*aff.N4),
		+invDet * (aff.N1*aff.N4 - aff.N0*aff.N5),
	}
}

func (aff Affine) IsInf() bool {
	return math32.IsInf(aff.N0, 0) ||
		math32.IsInf(aff.N1, 0) ||
		math32.IsInf(aff.N2, 0) ||
		math32.IsInf(aff.N3, 0) ||
		math32.IsInf(aff.N4, 0) ||
		math32.IsInf(aff.N5, 0)
}

func (aff Affine) IsNaN() bool {
	return math32.IsNaN(aff.N0) ||
		math32.IsNaN(aff.N1) ||
		math32.IsNaN(aff.N2) ||
		math32.IsNaN(aff.N3) ||
		math32.IsNaN(aff.N4) ||
		math32.IsNaN(aff.N5)
}

// Translation returns the translation component of this affine transformation.
func (aff Affine) Translation() Vec2 {
	return Vec2{
		X: aff.N4,
		Y: aff.N5,
	}
}

// WithTranslation replaces the translation portion of this affine
// transformation.
func (aff Affine) WithTranslation(v Vec2) Affine {
	aff.N4 = v.X
	aff.N5 = v.Y
	return aff
}
