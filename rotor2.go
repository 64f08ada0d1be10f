package ga

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Rotor2 represents a rotation in the plane. It is the geometric algebra
// counterpart of a unit complex number, except that it stores half the angle:
// a unit rotor rotates by 2·atan2(-XY, A) radians, and r and r.Negated()
// describe the same rotation.
type Rotor2 struct {
	XY float32
	A  float32
}

// Identity2 is the rotor that doesn't rotate.
var Identity2 = Rotor2{XY: 0, A: 1}

// FromPlaneAngle2 returns the rotor that rotates by angle radians in plane,
// which must be normalized. With [BivecXY] and a positive angle, +y turns
// towards +x.
func FromPlaneAngle2(plane Bivec2, angle float32) Rotor2 {
	sin, cos := math32.Sincos(angle * 0.5)
	return Rotor2{
		XY: plane.XY * sin,
		A:  cos,
	}
}

// FromAngle2 returns the rotor that rotates +x towards +y by angle radians.
// It is the inverse of [Rotor2.Angle].
func FromAngle2(angle float32) Rotor2 {
	return FromPlaneAngle2(BivecXY, -angle)
}

// FromTo2 returns the rotor that rotates from onto to along the shorter arc.
// Both vectors must be normalized.
//
// There is no shorter arc between opposite vectors. In that case the result
// is a half turn in the plane oriented like from ∧ +x, or from ∧ +y if from
// lies on the x axis. Either orientation gives the same rotation, but they
// lie on different halves of the double cover.
func FromTo2(from, to Vec2) Rotor2 {
	if debug {
		assertNearOne(from.MagSq(), "FromTo2: from")
		assertNearOne(to.MagSq(), "FromTo2: to")
	}
	r := Rotor2{
		XY: from.Wedge(to).XY,
		A:  1 + from.Dot(to),
	}
	if r.A < oppositeEpsilon {
		plane := from.Wedge(XPos2)
		if plane.XY == 0 {
			plane = from.Wedge(YPos2)
		}
		return FromPlaneAngle2(plane.Normalized(), Pi)
	}
	return r.Scaled(InvSqrt(r.MagSq()))
}

// Look2 returns the rotor that rotates the forward direction, +y, onto dir.
func Look2(dir Vec2) Rotor2 {
	return FromTo2(YPos2, dir)
}

func (r Rotor2) String() string {
	return fmt.Sprintf("%g + %g𝐞xy", r.A, r.XY)
}

// Splat returns the rotor's bivector and scalar parts.
func (r Rotor2) Splat() (xy, a float32) {
	return r.XY, r.A
}

// Bivec returns the bivector part of r.
func (r Rotor2) Bivec() Bivec2 {
	return Bivec2{XY: r.XY}
}

// Angle returns the angle, in radians, by which r rotates +x towards +y. It is
// in the range [-2π, 2π]; angles θ and θ ± 2π are two halves of the same
// double cover.
func (r Rotor2) Angle() float32 {
	return 2 * math32.Atan2(-r.XY, r.A)
}

// Mul composes two rotations. The result first applies o, then r.
//
// The product of two unit rotors drifts only slightly from unit magnitude, so
// the result is renormalized with [Rotor2.Renormalized].
func (r Rotor2) Mul(o Rotor2) Rotor2 {
	return Rotor2{
		XY: r.A*o.XY + r.XY*o.A,
		A:  r.A*o.A - r.XY*o.XY,
	}.Renormalized()
}

// SetMul sets r to r.Mul(o).
func (r *Rotor2) SetMul(o Rotor2) {
	*r = r.Mul(o)
}

// TimesVec applies the rotation to v.
func (r Rotor2) TimesVec(v Vec2) Vec2 {
	// cos and sin of the full angle, from the half angle stored in r.
	cos := r.A*r.A - r.XY*r.XY
	sin := -2 * r.A * r.XY
	return Vec2{
		X: cos*v.X - sin*v.Y,
		Y: sin*v.X + cos*v.Y,
	}
}

// Inverse returns the rotor that undoes r. r must be normalized.
func (r Rotor2) Inverse() Rotor2 {
	return Rotor2{XY: -r.XY, A: r.A}
}

// SetInverse sets r to r.Inverse().
func (r *Rotor2) SetInverse() {
	r.XY = -r.XY
}

// Negated returns -r, which describes the same rotation as r but lies on the
// other half of the double cover.
func (r Rotor2) Negated() Rotor2 {
	return Rotor2{XY: -r.XY, A: -r.A}
}

func (r Rotor2) Add(o Rotor2) Rotor2 {
	return Rotor2{XY: r.XY + o.XY, A: r.A + o.A}
}

func (r Rotor2) Scaled(f float32) Rotor2 {
	return Rotor2{XY: r.XY * f, A: r.A * f}
}

func (r Rotor2) MagSq() float32 {
	return r.A*r.A + r.XY*r.XY
}

func (r Rotor2) Mag() float32 {
	return math32.Sqrt(r.MagSq())
}

// Normalized returns r scaled to unit magnitude. A zero rotor results in NaN.
func (r Rotor2) Normalized() Rotor2 {
	return r.Scaled(InvSqrt(r.MagSq()))
}

// SetNormalize sets r to r.Normalized().
func (r *Rotor2) SetNormalize() {
	*r = r.Normalized()
}

// Renormalized is a cheaper form of [Rotor2.Normalized] for rotors whose
// magnitude is already close to 1, such as the product of two unit rotors.
func (r Rotor2) Renormalized() Rotor2 {
	return r.Scaled(InvSqrtNearOne(r.MagSq()))
}

// SetRenormalize sets r to r.Renormalized().
func (r *Rotor2) SetRenormalize() {
	*r = r.Renormalized()
}

// Neighborhood returns the cosine of the half angle between r and o. A
// negative result means that r and o lie on different halves of the double
// cover, and that interpolating between them would take the long way around.
func (r Rotor2) Neighborhood(o Rotor2) float32 {
	return r.A*o.A + r.XY*o.XY
}

// Nearest returns whichever of o and o.Negated() lies in r's neighborhood.
func (r Rotor2) Nearest(o Rotor2) Rotor2 {
	if r.Neighborhood(o) < 0 {
		return o.Negated()
	}
	return o
}

// Ln returns the logarithm of r, which must be normalized. It is the inverse
// of [Bivec2.Exp].
//
// The rotor -1 (a full turn) has no unique logarithm; Ln returns π𝐞xy for it.
func (r Rotor2) Ln() Bivec2 {
	if debug {
		assertNearOne(r.MagSq(), "Rotor2.Ln")
	}
	sinSq := r.XY * r.XY
	if sinSq == 0 {
		if r.A > 0 {
			return Bivec2{}
		}
		return Bivec2{XY: Pi}
	}
	sin := math32.Abs(r.XY)
	half := math32.Atan2(sin, r.A)
	return Bivec2{XY: r.XY * (half / sin)}
}

// Slerp spherically interpolates between r and end, rotating at a constant
// angular velocity. Values of t outside of [0, 1] extrapolate.
//
// Slerp doesn't pick the shorter path: if r and end lie in different
// neighborhoods it goes the long way around. See [Rotor2.Nearest].
func (r Rotor2) Slerp(end Rotor2, t float32) Rotor2 {
	return r.Mul(r.Inverse().Mul(end).Ln().Scaled(t).Exp()).Normalized()
}

// Nlerp interpolates between r and end by normalizing the linear interpolation
// of their components. It is cheaper than [Rotor2.Slerp] and returns exactly r
// and end at t = 0 and t = 1, but its angular velocity is only close to
// constant for small separations.
//
// Like Slerp, it takes the long way around between rotors in different
// neighborhoods. If the interpolated rotor has zero magnitude, which only
// happens halfway between exact opposites, r is returned.
func (r Rotor2) Nlerp(end Rotor2, t float32) Rotor2 {
	switch t {
	case 0:
		return r
	case 1:
		return end
	}
	l := Lerp(r, end, t)
	magSq := l.MagSq()
	if magSq == 0 {
		return r
	}
	return l.Scaled(InvSqrt(magSq))
}

// IsNaN reports whether any component is NaN.
func (r Rotor2) IsNaN() bool {
	return math32.IsNaN(r.XY) || math32.IsNaN(r.A)
}
