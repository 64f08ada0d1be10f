package ga

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterpolate(t *testing.T) {
	end := testRotors3[3]
	frames := slices.Collect(Interpolate(Identity3, end, 4, Rotor3.Nlerp))
	require.Len(t, frames, 5)
	assert.Equal(t, Identity3, frames[0])
	assert.Equal(t, end, frames[4])
	for i, r := range frames {
		assert.InDelta(t, 1, r.MagSq(), 1e-5, "frame %d", i)
	}

	angles := slices.Collect(Interpolate(Identity2, FromAngle2(1), 2, Rotor2.Slerp))
	require.Len(t, angles, 3)
	assert.InDelta(t, 0.5, angles[1].Angle(), 1e-5)

	n := 0
	for range Interpolate(Identity3, end, 10, Rotor3.Slerp) {
		n++
		if n == 3 {
			break
		}
	}
	assert.Equal(t, 3, n)

	for _, n := range []int{0, -1} {
		assert.Equal(t, []Rotor3{Identity3}, slices.Collect(Interpolate(Identity3, end, n, Rotor3.Nlerp)))
	}
}

func TestRotateSeq(t *testing.T) {
	r := testRotors3[4]
	got := slices.Collect(Rotate3(slices.Values(testVecs3), r))
	require.Len(t, got, len(testVecs3))
	for i, v := range testVecs3 {
		assertNear3(t, got[i], r.TimesVec(v), 1e-6)
	}

	r2 := FromAngle2(Pi / 2)
	got2 := slices.Collect(Rotate2(slices.Values(testVecs2), r2))
	for i, v := range testVecs2 {
		assertNear2(t, got2[i], r2.TimesVec(v), 1e-6)
	}

	moved := slices.Collect(Transform(slices.Values([]Vec2{XPos2, YPos2}), Translate(Vec(1, 1))))
	assert.Equal(t, []Vec2{Vec(2, 1), Vec(1, 2)}, moved)
}
