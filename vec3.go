package ga

import (
	"fmt"

	"github.com/chewxy/math32"
)

type Vec3 struct {
	X float32
	Y float32
	Z float32
}

var (
	XPos3 = Vec3{X: 1}
	XNeg3 = Vec3{X: -1}
	YPos3 = Vec3{Y: 1}
	YNeg3 = Vec3{Y: -1}
	ZPos3 = Vec3{Z: 1}
	ZNeg3 = Vec3{Z: -1}
)

// Vec3Of returns the vector ⟨x, y, z⟩.
func Vec3Of(x, y, z float32) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Splat returns the vector's x, y and z coordinates.
func (v Vec3) Splat() (float32, float32, float32) {
	return v.X, v.Y, v.Z
}

func (v Vec3) String() string {
	return fmt.Sprintf("⟨%g, %g, %g⟩", v.X, v.Y, v.Z)
}

// Dot returns the dot product of v and o.
func (v Vec3) Dot(o Vec3) float32 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross returns the cross product of v and o.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// Wedge returns the outer product v ∧ o, the plane segment spanned by the two
// vectors.
func (v Vec3) Wedge(o Vec3) Bivec3 {
	return Bivec3{
		YZ: v.Y*o.Z - v.Z*o.Y,
		XZ: v.X*o.Z - v.Z*o.X,
		YX: v.Y*o.X - v.X*o.Y,
	}
}

// MagSq returns the squared magnitude of the vector.
func (v Vec3) MagSq() float32 {
	return v.Dot(v)
}

// Mag returns the magnitude of the vector.
func (v Vec3) Mag() float32 {
	return math32.Sqrt(v.MagSq())
}

// Normalized returns a vector of magnitude 1 with the same direction as v.
// The zero vector is returned unchanged.
func (v Vec3) Normalized() Vec3 {
	magSq := v.MagSq()
	if magSq == 0 {
		return v
	}
	return v.Scaled(InvSqrt(magSq))
}

// Renormalized is like [Vec3.Normalized] but only valid for vectors whose
// magnitude is already close to 1.
func (v Vec3) Renormalized() Vec3 {
	return v.Scaled(InvSqrtNearOne(v.MagSq()))
}

// Lerp linearly interpolates between two vectors.
func (v Vec3) Lerp(o Vec3, t float32) Vec3 {
	return Lerp(v, o, t)
}

// IsInf reports whether at least one of x, y and z is infinite.
func (v Vec3) IsInf() bool {
	return math32.IsInf(v.X, 0) || math32.IsInf(v.Y, 0) || math32.IsInf(v.Z, 0)
}

// IsNaN reports whether at least one of x, y and z is NaN.
func (v Vec3) IsNaN() bool {
	return math32.IsNaN(v.X) || math32.IsNaN(v.Y) || math32.IsNaN(v.Z)
}

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{
		X: v.X + o.X,
		Y: v.Y + o.Y,
		Z: v.Z + o.Z,
	}
}

func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{
		X: v.X - o.X,
		Y: v.Y - o.Y,
		Z: v.Z - o.Z,
	}
}

func (v Vec3) Scaled(f float32) Vec3 {
	return Vec3{
		X: v.X * f,
		Y: v.Y * f,
		Z: v.Z * f,
	}
}

// Negated returns a new vector with all signs flipped.
func (v Vec3) Negated() Vec3 {
	return Vec3{
		X: -v.X,
		Y: -v.Y,
		Z: -v.Z,
	}
}
