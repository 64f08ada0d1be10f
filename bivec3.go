package ga

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Bivec3 is an oriented plane segment in 3D space, expressed as signed areas
// projected onto the three coordinate planes. The components need not describe
// a coordinate plane, nor have unit magnitude.
type Bivec3 struct {
	YZ float32
	XZ float32
	YX float32
}

// Unit bivectors of the coordinate planes. A rotor built from the plane ab
// with a positive angle turns a towards b.
var (
	BivecYZ = Bivec3{YZ: 1}
	BivecXZ = Bivec3{XZ: 1}
	BivecYX = Bivec3{YX: 1}
)

// Splat returns the bivector's components.
func (b Bivec3) Splat() (yz, xz, yx float32) {
	return b.YZ, b.XZ, b.YX
}

func (b Bivec3) String() string {
	return fmt.Sprintf("%g𝐞yz + %g𝐞xz + %g𝐞yx", b.YZ, b.XZ, b.YX)
}

func (b Bivec3) Add(o Bivec3) Bivec3 {
	return Bivec3{
		YZ: b.YZ + o.YZ,
		XZ: b.XZ + o.XZ,
		YX: b.YX + o.YX,
	}
}

func (b Bivec3) Scaled(f float32) Bivec3 {
	return Bivec3{
		YZ: b.YZ * f,
		XZ: b.XZ * f,
		YX: b.YX * f,
	}
}

func (b Bivec3) Negated() Bivec3 {
	return Bivec3{
		YZ: -b.YZ,
		XZ: -b.XZ,
		YX: -b.YX,
	}
}

func (b Bivec3) MagSq() float32 {
	return b.YZ*b.YZ + b.XZ*b.XZ + b.YX*b.YX
}

func (b Bivec3) Mag() float32 {
	return math32.Sqrt(b.MagSq())
}

// Normalized returns b scaled to unit magnitude. The zero bivector is returned
// unchanged.
func (b Bivec3) Normalized() Bivec3 {
	magSq := b.MagSq()
	if magSq == 0 {
		return b
	}
	return b.Scaled(InvSqrt(magSq))
}

// Renormalized is like [Bivec3.Normalized], but only valid for bivectors whose
// magnitude is already close to 1.
func (b Bivec3) Renormalized() Bivec3 {
	return b.Scaled(InvSqrtNearOne(b.MagSq()))
}

// InnerProd returns the inner product of two bivectors. For unit bivectors
// this is the negated cosine of the angle between the two planes.
func (b Bivec3) InnerProd(o Bivec3) float32 {
	return -(b.YZ*o.YZ + b.XZ*o.XZ + b.YX*o.YX)
}

// Exp returns e raised to b: the rotor that rotates in b's plane by twice b's
// magnitude, in radians. It is the inverse of [Rotor3.Ln].
func (b Bivec3) Exp() Rotor3 {
	magSq := b.MagSq()
	if magSq == 0 {
		return Identity3
	}
	h := math32.Sqrt(magSq)
	sin, cos := math32.Sincos(h)
	s := sin / h
	return Rotor3{
		YZ: b.YZ * s,
		XZ: b.XZ * s,
		YX: b.YX * s,
		A:  cos,
	}
}

// IsNaN reports whether any component is NaN.
func (b Bivec3) IsNaN() bool {
	return math32.IsNaN(b.YZ) || math32.IsNaN(b.XZ) || math32.IsNaN(b.YX)
}
