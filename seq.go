package ga

import (
	"iter"
)

// Rotate2 returns a sequence of the vectors in seq, each rotated by r.
func Rotate2(seq iter.Seq[Vec2], r Rotor2) iter.Seq[Vec2] {
	return mapSeq(seq, r.TimesVec)
}

// Rotate3 returns a sequence of the vectors in seq, each rotated by r.
func Rotate3(seq iter.Seq[Vec3], r Rotor3) iter.Seq[Vec3] {
	return mapSeq(seq, r.TimesVec)
}

// Transform returns a sequence of the vectors in seq, each transformed by aff.
func Transform(seq iter.Seq[Vec2], aff Affine) iter.Seq[Vec2] {
	return mapSeq(seq, func(v Vec2) Vec2 { return v.Transform(aff) })
}

// Interpolate returns n+1 evenly spaced samples from start to end, both
// inclusive, produced by interp. Passing [Rotor3.Nlerp] or [Rotor3.Slerp] as a
// method expression yields a keyframe sequence. For n < 1, the sequence
// consists of start alone.
func Interpolate[T any](start, end T, n int, interp func(T, T, float32) T) iter.Seq[T] {
	return func(yield func(T) bool) {
		if n < 1 {
			yield(start)
			return
		}
		for i := range n + 1 {
			t := float32(i) / float32(n)
			if !yield(interp(start, end, t)) {
				break
			}
		}
	}
}

func mapSeq[T any](seq iter.Seq[T], fn func(T) T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if !yield(fn(v)) {
				break
			}
		}
	}
}
