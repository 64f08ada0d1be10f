package ga

import (
	"golang.org/x/exp/constraints"
)

// Lerpable describes values that form a vector space over float32, which is
// all that linear interpolation needs. All vector, bivector and rotor types in
// this package implement it.
type Lerpable[T any] interface {
	Add(T) T
	Scaled(float32) T
}

// Lerp linearly interpolates between a and b. Values of t outside of [0, 1]
// extrapolate.
//
// For finite inputs, Lerp(a, b, 0) is exactly a and Lerp(a, b, 1) is exactly b.
func Lerp[T Lerpable[T]](a, b T, t float32) T {
	// a*(1-t) + b*t rather than a + (b-a)*t, the latter isn't exact at t = 1.
	return a.Scaled(1 - t).Add(b.Scaled(t))
}

// LerpScalar linearly interpolates between two scalars.
func LerpScalar[F constraints.Float](a, b, t F) F {
	return a*(1-t) + b*t
}

// ILerp is the inverse of [LerpScalar]: it returns the t for which
// LerpScalar(a, b, t) == v. It returns NaN or ±Inf when a == b.
func ILerp[F constraints.Float](a, b, v F) F {
	return (v - a) / (b - a)
}

// Remap maps v from the range [inA, inB] to the range [outA, outB].
func Remap[F constraints.Float](inA, inB, outA, outB, v F) F {
	return LerpScalar(outA, outB, ILerp(inA, inB, v))
}

// Clamp returns v limited to [lo, hi].
func Clamp[F constraints.Float](v, lo, hi F) F {
	return min(max(v, lo), hi)
}
