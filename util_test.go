package ga

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// within compares floats with an absolute tolerance.
func within(epsilon float64) cmp.Option {
	return cmpopts.EquateApprox(0, epsilon)
}

func assertNear2(t *testing.T, got, want Vec2, epsilon float32) {
	t.Helper()
	if d := got.Sub(want).Mag(); !(d <= epsilon) {
		t.Fatalf("got %s, expected %s", got, want)
	}
}

func assertNear3(t *testing.T, got, want Vec3, epsilon float32) {
	t.Helper()
	if d := got.Sub(want).Mag(); !(d <= epsilon) {
		t.Fatalf("got %s, expected %s", got, want)
	}
}

// testVecs3 are normalized directions that avoid the coordinate axes.
var testVecs3 = []Vec3{
	Vec3Of(1, 2, 3).Normalized(),
	Vec3Of(-2, 0.5, 1).Normalized(),
	Vec3Of(0.3, -0.9, 0.1).Normalized(),
	Vec3Of(-1, -1, -1).Normalized(),
	Vec3Of(4, 0, -3).Normalized(),
}

// testRotors3 are unit rotors covering both halves of the double cover.
var testRotors3 = []Rotor3{
	Identity3,
	FromPlaneAngle3(BivecYX, Pi/2),
	FromPlaneAngle3(BivecYZ, -0.3),
	FromPlaneAngle3(Bivec3{YZ: 1, XZ: -2, YX: 0.5}.Normalized(), 1.2),
	FromPlaneAngle3(Bivec3{YZ: -0.1, XZ: 0.7, YX: 3}.Normalized(), 5),
	FromTo3(testVecs3[0], testVecs3[1]),
	FromTo3(testVecs3[2], testVecs3[3]).Negated(),
}
