package ga

import (
	"fmt"

	"github.com/chewxy/math32"
)

type Vec2 struct {
	X float32
	Y float32
}

var (
	XPos2 = Vec2{X: 1}
	XNeg2 = Vec2{X: -1}
	YPos2 = Vec2{Y: 1}
	YNeg2 = Vec2{Y: -1}
)

// Vec returns the vector ⟨x, y⟩.
func Vec(x, y float32) Vec2 {
	return Vec2{
		X: x,
		Y: y,
	}
}

// Splat returns the vector's x and y coordinates.
func (v Vec2) Splat() (float32, float32) {
	return v.X, v.Y
}

func (v Vec2) String() string {
	return fmt.Sprintf("⟨%g, %g⟩", v.X, v.Y)
}

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float32 {
	return v.X*o.X + v.Y*o.Y
}

// Wedge returns the outer product v ∧ o.
//
// The result is oriented like [Bivec3.YX]: Wedge(+x, +y) has an XY of -1.
func (v Vec2) Wedge(o Vec2) Bivec2 {
	return Bivec2{XY: v.Y*o.X - v.X*o.Y}
}

// MagSq returns the squared magnitude of the vector.
func (v Vec2) MagSq() float32 {
	return v.Dot(v)
}

// Mag returns the magnitude of the vector.
func (v Vec2) Mag() float32 {
	return math32.Sqrt(v.MagSq())
}

// Normalized returns a vector of magnitude 1 with the same direction as v.
// The zero vector is returned unchanged.
func (v Vec2) Normalized() Vec2 {
	magSq := v.MagSq()
	if magSq == 0 {
		return v
	}
	return v.Scaled(InvSqrt(magSq))
}

// Renormalized is like [Vec2.Normalized] but only valid for vectors whose
// magnitude is already close to 1.
func (v Vec2) Renormalized() Vec2 {
	return v.Scaled(InvSqrtNearOne(v.MagSq()))
}

// Lerp linearly interpolates between two vectors.
func (v Vec2) Lerp(o Vec2, t float32) Vec2 {
	return Lerp(v, o, t)
}

// IsInf reports whether at least one of x and y is infinite.
func (v Vec2) IsInf() bool {
	return math32.IsInf(v.X, 0) || math32.IsInf(v.Y, 0)
}

// IsNaN reports whether at least one of x and y is NaN.
func (v Vec2) IsNaN() bool {
	return math32.IsNaN(v.X) || math32.IsNaN(v.Y)
}

// Add adds two vectors and returns the resulting vector.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{
		X: v.X + o.X,
		Y: v.Y + o.Y,
	}
}

// Sub subtracts two vectors and returns the resulting vector.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{
		X: v.X - o.X,
		Y: v.Y - o.Y,
	}
}

func (v Vec2) Scaled(f float32) Vec2 {
	return Vec2{
		X: v.X * f,
		Y: v.Y * f,
	}
}

// Negated returns a new vector with the signs of x and y flipped.
func (v Vec2) Negated() Vec2 {
	return Vec2{
		X: -v.X,
		Y: -v.Y,
	}
}

// Transform applies the affine transformation to v.
func (v Vec2) Transform(aff Affine) Vec2 {
	return Vec2{
		X: aff.N0*v.X + aff.N2*v.Y + aff.N4,
		Y: aff.N1*v.X + aff.N3*v.Y + aff.N5,
	}
}
