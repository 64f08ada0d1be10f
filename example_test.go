package ga_test

import (
	"fmt"
	"math"

	"honnef.co/go/ga"
)

// round rounds to three decimals and gets rid of negative zeros.
func round(f float32) float64 {
	return math.Round(float64(f)*1000)/1000 + 0
}

func printVec(v ga.Vec3) {
	fmt.Println(round(v.X), round(v.Y), round(v.Z))
}

func ExampleFromPlaneAngle3() {
	// A quarter turn in the yx plane turns +y towards +x, and +x towards -y.
	r := ga.FromPlaneAngle3(ga.BivecYX, ga.Pi/2)
	printVec(r.TimesVec(ga.XPos3))
	printVec(r.TimesVec(ga.YPos3))
	// Output:
	// 0 -1 0
	// 1 0 0
}

func ExampleFromTo3() {
	r := ga.FromTo3(ga.XPos3, ga.ZPos3)
	printVec(r.TimesVec(ga.XPos3))
	// The y axis is perpendicular to the plane of rotation.
	printVec(r.TimesVec(ga.YPos3))
	// Output:
	// 0 0 1
	// 0 1 0
}

func ExampleRotor3_Mul() {
	yaw := ga.FromPlaneAngle3(ga.BivecXZ, ga.Pi/2)
	pitch := ga.FromPlaneAngle3(ga.BivecYZ, ga.Pi/2)
	// Pitch first, then yaw.
	r := yaw.Mul(pitch)
	printVec(r.TimesVec(ga.YPos3))
	// Output:
	// -1 0 0
}

func ExampleInterpolate() {
	for r := range ga.Interpolate(ga.Identity2, ga.FromAngle2(ga.Pi/2), 4, ga.Rotor2.Slerp) {
		fmt.Println(math.Round(float64(r.Angle())*180/math.Pi*100)/100 + 0)
	}
	// Output:
	// 0
	// 22.5
	// 45
	// 67.5
	// 90
}

func ExampleRotor3_Nearest() {
	a := ga.Identity3
	b := ga.FromPlaneAngle3(ga.BivecYZ, 0.5).Negated()
	fmt.Println(a.Neighborhood(b) < 0, a.Neighborhood(a.Nearest(b)) < 0)
	// Output:
	// true false
}
