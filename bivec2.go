package ga

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Bivec2 is an oriented area in the plane. There is only one plane in 2D, so
// a 2D bivector is a single signed scalar.
//
// Positive values have the orientation of [Bivec3.YX]: a rotor built from a
// positive plane turns +y towards +x.
type Bivec2 struct {
	XY float32
}

// BivecXY is the unit bivector of the 2D plane.
var BivecXY = Bivec2{XY: 1}

func (b Bivec2) String() string {
	return fmt.Sprintf("%g𝐞xy", b.XY)
}

func (b Bivec2) Add(o Bivec2) Bivec2 {
	return Bivec2{XY: b.XY + o.XY}
}

func (b Bivec2) Scaled(f float32) Bivec2 {
	return Bivec2{XY: b.XY * f}
}

func (b Bivec2) Negated() Bivec2 {
	return Bivec2{XY: -b.XY}
}

func (b Bivec2) MagSq() float32 {
	return b.XY * b.XY
}

func (b Bivec2) Mag() float32 {
	return math32.Abs(b.XY)
}

// Normalized returns b scaled to unit magnitude. The zero bivector is returned
// unchanged.
func (b Bivec2) Normalized() Bivec2 {
	magSq := b.MagSq()
	if magSq == 0 {
		return b
	}
	return b.Scaled(InvSqrt(magSq))
}

// Renormalized is like [Bivec2.Normalized], but only valid for bivectors whose
// magnitude is already close to 1.
func (b Bivec2) Renormalized() Bivec2 {
	return b.Scaled(InvSqrtNearOne(b.MagSq()))
}

// InnerProd returns the inner product of two bivectors, -b·o.
func (b Bivec2) InnerProd(o Bivec2) float32 {
	return -b.XY * o.XY
}

// Exp returns e raised to b, the rotor that rotates in the plane by twice b's
// magnitude, in radians. It is the inverse of [Rotor2.Ln].
func (b Bivec2) Exp() Rotor2 {
	if b.XY == 0 {
		return Identity2
	}
	h := b.Mag()
	sin, cos := math32.Sincos(h)
	return Rotor2{
		XY: b.XY * (sin / h),
		A:  cos,
	}
}

func (b Bivec2) IsNaN() bool {
	return math32.IsNaN(b.XY)
}
