// Package ga provides rotors and bivectors, the geometric algebra
// representation of rotations in 2D and 3D, for real-time graphics. It uses
// float32 throughout and favors short multiply-add chains and cheap
// normalization over general linear algebra.
//
// # Bivectors and rotors
//
// A bivector is an oriented plane segment. [Bivec2] has a single component,
// as there is only one plane in 2D. [Bivec3] has one component per coordinate
// plane. Bivectors are the planes that rotations happen in, and the
// logarithms of rotors.
//
// A rotor is a scalar plus a bivector. [Rotor2] is the counterpart of a unit
// complex number and [Rotor3] the counterpart of a unit quaternion. Both store
// half of the rotation angle: the scalar part is the cosine of the half angle
// and the bivector part is the plane of rotation scaled by its sine.
//
// Rotors can be built from a plane and an angle ([FromPlaneAngle2],
// [FromPlaneAngle3]), from two directions ([FromTo2], [FromTo3], [Look]), or
// by exponentiating a bivector ([Bivec3.Exp]). They compose with Mul, apply to
// vectors with TimesVec, and can be turned into matrices with [Rotor3.Mat3],
// [Rotor3.Mat4] and [Rotor2.Affine].
//
// # Orientation
//
// For a coordinate plane ab, rotating by a positive angle turns a towards b.
// For example, FromPlaneAngle3(BivecYX, π/2) maps +x to -y. [Bivec2] has the
// orientation of [Bivec3.YX], so a [Rotor2] behaves exactly like a [Rotor3]
// whose only bivector component is YX. [Rotor2.Angle] reports angles from +x
// towards +y.
//
// # Double cover
//
// A rotor r and its negation -r describe the same rotation. No canonical sign
// is enforced. [Rotor3.Neighborhood] reports whether two rotors lie on the
// same half of the double cover, and [Rotor3.Nearest] picks the representative
// closest to a given rotor.
//
// # Normalization
//
// Only unit rotors describe rotations. There are two ways of normalizing:
//
//   - Normalized scales by the exact inverse square root of the squared
//     magnitude (see [InvSqrt]). It works for any positive finite magnitude.
//   - Renormalized uses the first-order approximation 1.5 - 0.5x (see
//     [InvSqrtNearOne]) and is only valid for values that are already close to
//     unit magnitude.
//
// Mul renormalizes its result, which keeps long chains of compositions (such
// as integrating angular velocity over many frames) from drifting.
//
// # Interpolation
//
// Slerp interpolates at a constant angular velocity by way of Ln and Exp.
// Nlerp normalizes the componentwise linear interpolation; it is cheaper, is
// exact at t = 0 and t = 1, and is the recommended default. Neither picks the
// shortest path by itself: if the endpoints lie in different neighborhoods,
// the interpolation goes the long way around. Use Nearest on the end point to
// get the shorter path. [Lerp] offers the same linear interpolation for any
// type implementing [Lerpable].
//
// # Degenerate inputs
//
// All functions are total. Exponentiating the zero bivector yields the
// identity; the logarithm of the identity is the zero bivector; normalizing a
// zero vector or bivector returns it unchanged. Building a rotor between two
// opposite directions picks an arbitrary plane of rotation, as
// documented on [FromTo3]. The logarithm of a full turn picks an arbitrary
// plane, too.
//
// Preconditions, such as passing normalized vectors to [FromTo3], aren't
// checked at runtime. Building with the gadebug tag enables assertions that
// panic on violations.
//
// # Literature
//
//   - [Let's remove Quaternions from every 3D Engine] by Marc ten Bosch
//   - [Geometric Algebra Primer] by Jaap Suter
//
// [Let's remove Quaternions from every 3D Engine]: https://marctenbosch.com/quaternions/
// [Geometric Algebra Primer]: https://jaapsuter.com/geometric-algebra.pdf
package ga
