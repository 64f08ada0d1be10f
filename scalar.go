package ga

import (
	"math"

	"github.com/chewxy/math32"
)

const (
	Pi  float32 = math.Pi
	Tau float32 = 2 * math.Pi
)

// InvSqrt returns 1/√f.
//
// Special cases are:
//
//	InvSqrt(+Inf) = +Inf
//	InvSqrt(±0) = NaN
//	InvSqrt(x < 0) = NaN
//	InvSqrt(NaN) = NaN
func InvSqrt(f float32) float32 {
	switch {
	case math32.IsInf(f, 1):
		return f
	case f == 0, f < 0, math32.IsNaN(f):
		return math32.NaN()
	}
	return 1 / math32.Sqrt(f)
}

// InvSqrtNearOne approximates 1/√f with the first-order Taylor expansion
// around 1. The result is only meaningful for f close to 1; renormalizing
// converges for f up to roughly 1.56.
func InvSqrtNearOne(f float32) float32 {
	return 1.5 - 0.5*f
}
