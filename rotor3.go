package ga

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Rotor3 represents a rotation in 3D space as a scalar and a bivector. It
// plays the role a unit quaternion plays elsewhere: A is the cosine of the
// half angle and the bivector part is the plane of rotation scaled by the sine
// of the half angle. Like quaternions, r and r.Negated() describe the same
// rotation.
type Rotor3 struct {
	YZ float32
	XZ float32
	YX float32
	A  float32
}

// Identity3 is the rotor that doesn't rotate.
var Identity3 = Rotor3{A: 1}

// oppositeEpsilon is the value of 1 + from·to below which FromTo2 and FromTo3
// treat from and to as opposite.
const oppositeEpsilon = 1e-6

// FromPlaneAngle3 returns the rotor that rotates by angle radians in plane,
// which must be normalized. For a coordinate plane ab and a positive angle, a
// turns towards b.
func FromPlaneAngle3(plane Bivec3, angle float32) Rotor3 {
	sin, cos := math32.Sincos(angle * 0.5)
	return Rotor3{
		YZ: plane.YZ * sin,
		XZ: plane.XZ * sin,
		YX: plane.YX * sin,
		A:  cos,
	}
}

// FromTo3 returns the rotor that rotates from onto to along the shortest arc.
// Both vectors must be normalized.
//
// Opposite vectors have no shortest arc. For those, FromTo3 rotates
// half a turn in an arbitrary plane containing from: the plane spanned by
// from and +x, or by from and +y if from lies on the x axis.
func FromTo3(from, to Vec3) Rotor3 {
	if debug {
		assertNearOne(from.MagSq(), "FromTo3: from")
		assertNearOne(to.MagSq(), "FromTo3: to")
	}
	// Normalizing 1 + from·to + from∧to yields the rotor of the halfway angle.
	b := from.Wedge(to)
	r := Rotor3{
		YZ: b.YZ,
		XZ: b.XZ,
		YX: b.YX,
		A:  1 + from.Dot(to),
	}
	// For nearly opposite vectors, both parts are dominated by rounding
	// error and don't describe a plane.
	if r.A < oppositeEpsilon {
		plane := from.Wedge(XPos3)
		if plane.MagSq() == 0 {
			plane = from.Wedge(YPos3)
		}
		return FromPlaneAngle3(plane.Normalized(), Pi)
	}
	return r.Scaled(InvSqrt(r.MagSq()))
}

// Look returns the rotor that rotates the forward direction, +y, onto dir.
func Look(dir Vec3) Rotor3 {
	return FromTo3(YPos3, dir)
}

func (r Rotor3) String() string {
	return fmt.Sprintf("%g + %g𝐞yz + %g𝐞xz + %g𝐞yx", r.A, r.YZ, r.XZ, r.YX)
}

// Splat returns the rotor's components.
func (r Rotor3) Splat() (yz, xz, yx, a float32) {
	return r.YZ, r.XZ, r.YX, r.A
}

// Bivec returns the bivector part of r.
func (r Rotor3) Bivec() Bivec3 {
	return Bivec3{YZ: r.YZ, XZ: r.XZ, YX: r.YX}
}

// PlaneAngle decomposes a unit rotor into a unit plane and the angle of
// rotation within it, in radians, such that FromPlaneAngle3(plane, angle)
// returns r. The identity decomposes into the zero plane and a zero angle.
func (r Rotor3) PlaneAngle() (plane Bivec3, angle float32) {
	b := r.Bivec()
	return b.Normalized(), 2 * math32.Atan2(b.Mag(), r.A)
}

// Mul composes two rotations. The result first applies o, then r.
//
// The product of two unit rotors drifts only slightly from unit magnitude, so
// the result is renormalized with [Rotor3.Renormalized].
func (r Rotor3) Mul(o Rotor3) Rotor3 {
	return Rotor3{
		YZ: r.A*o.YZ + r.YZ*o.A + r.XZ*o.YX - r.YX*o.XZ,
		XZ: r.A*o.XZ + r.XZ*o.A - r.YZ*o.YX + r.YX*o.YZ,
		YX: r.A*o.YX + r.YX*o.A + r.YZ*o.XZ - r.XZ*o.YZ,
		A:  r.A*o.A - r.YZ*o.YZ - r.XZ*o.XZ - r.YX*o.YX,
	}.Renormalized()
}

// SetMul sets r to r.Mul(o).
func (r *Rotor3) SetMul(o Rotor3) {
	*r = r.Mul(o)
}

// TimesVec applies the rotation to v.
func (r Rotor3) TimesVec(v Vec3) Vec3 {
	// u is the rotation axis, dual to the bivector part, scaled by the sine
	// of the half angle.
	u := Vec3{X: r.YZ, Y: -r.XZ, Z: -r.YX}
	t := u.Cross(v).Scaled(2)
	return v.Add(t.Scaled(r.A)).Add(u.Cross(t))
}

// Inverse returns the rotor that undoes r. r must be normalized.
func (r Rotor3) Inverse() Rotor3 {
	return Rotor3{
		YZ: -r.YZ,
		XZ: -r.XZ,
		YX: -r.YX,
		A:  r.A,
	}
}

// SetInverse sets r to r.Inverse().
func (r *Rotor3) SetInverse() {
	r.YZ = -r.YZ
	r.XZ = -r.XZ
	r.YX = -r.YX
}

// Negated returns -r, which describes the same rotation as r but lies on the
// other half of the double cover.
func (r Rotor3) Negated() Rotor3 {
	return Rotor3{
		YZ: -r.YZ,
		XZ: -r.XZ,
		YX: -r.YX,
		A:  -r.A,
	}
}

func (r Rotor3) Add(o Rotor3) Rotor3 {
	return Rotor3{
		YZ: r.YZ + o.YZ,
		XZ: r.XZ + o.XZ,
		YX: r.YX + o.YX,
		A:  r.A + o.A,
	}
}

func (r Rotor3) Scaled(f float32) Rotor3 {
	return Rotor3{
		YZ: r.YZ * f,
		XZ: r.XZ * f,
		YX: r.YX * f,
		A:  r.A * f,
	}
}

func (r Rotor3) MagSq() float32 {
	return r.A*r.A + r.YZ*r.YZ + r.XZ*r.XZ + r.YX*r.YX
}

func (r Rotor3) Mag() float32 {
	return math32.Sqrt(r.MagSq())
}

// Normalized returns r scaled to unit magnitude. A zero rotor results in NaN.
func (r Rotor3) Normalized() Rotor3 {
	return r.Scaled(InvSqrt(r.MagSq()))
}

// SetNormalize sets r to r.Normalized().
func (r *Rotor3) SetNormalize() {
	*r = r.Normalized()
}

// Renormalized is a cheaper form of [Rotor3.Normalized] for rotors whose
// magnitude is already close to 1, such as the product of two unit rotors.
func (r Rotor3) Renormalized() Rotor3 {
	return r.Scaled(InvSqrtNearOne(r.MagSq()))
}

// SetRenormalize sets r to r.Renormalized().
func (r *Rotor3) SetRenormalize() {
	*r = r.Renormalized()
}

// Neighborhood returns the cosine of the half angle between r and o. A
// negative result means that r and o lie on different halves of the double
// cover, and that interpolating between them would take the long way around.
func (r Rotor3) Neighborhood(o Rotor3) float32 {
	return r.A*o.A + r.YZ*o.YZ + r.XZ*o.XZ + r.YX*o.YX
}

// Nearest returns whichever of o and o.Negated() lies in r's neighborhood.
func (r Rotor3) Nearest(o Rotor3) Rotor3 {
	if r.Neighborhood(o) < 0 {
		return o.Negated()
	}
	return o
}

// Ln returns the logarithm of r, which must be normalized. It is the inverse
// of [Bivec3.Exp].
//
// A full turn (a rotor with a zero bivector part and a negative scalar) has
// no plane to speak of. For it, Ln returns π𝐞yz; any other plane would be
// equally valid.
func (r Rotor3) Ln() Bivec3 {
	if debug {
		assertNearOne(r.MagSq(), "Rotor3.Ln")
	}
	b := r.Bivec()
	sinSq := b.MagSq()
	if sinSq == 0 {
		if r.A > 0 {
			return Bivec3{}
		}
		return Bivec3{YZ: Pi}
	}
	sin := math32.Sqrt(sinSq)
	half := math32.Atan2(sin, r.A)
	return b.Scaled(half / sin)
}

// Slerp spherically interpolates between r and end, rotating at a constant
// angular velocity. Values of t outside of [0, 1] extrapolate.
//
// Slerp doesn't pick the shortest path: if r and end lie in different
// neighborhoods it goes the long way around. Use [Rotor3.Nearest] on end to
// get shortest-path behavior. Because of rounding in Ln and Exp, the result
// at t = 0 and t = 1 is only approximately r and end.
func (r Rotor3) Slerp(end Rotor3, t float32) Rotor3 {
	return r.Mul(r.Inverse().Mul(end).Ln().Scaled(t).Exp()).Normalized()
}

// Nlerp interpolates between r and end by normalizing the linear interpolation
// of their components. It is cheaper than [Rotor3.Slerp] and returns exactly r
// and end at t = 0 and t = 1, but its angular velocity is only close to
// constant for small separations.
//
// Like Slerp, it takes the long way around between rotors in different
// neighborhoods. If the interpolated rotor has zero magnitude, which only
// happens halfway between exact opposites, r is returned.
func (r Rotor3) Nlerp(end Rotor3, t float32) Rotor3 {
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
func (r Rotor3) IsNaN() bool {
	return math32.IsNaN(r.YZ) || math32.IsNaN(r.XZ) || math32.IsNaN(r.YX) || math32.IsNaN(r.A)
}
