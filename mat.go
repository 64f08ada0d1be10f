package ga

import (
	"golang.org/x/image/math/f32"
)

// Mat3 returns the 3×3 rotation matrix of r, in row-major order.
//
// Row i is r's inverse applied to the i'th basis vector, which is the same as
// column i being r applied to it.
func (r Rotor3) Mat3() f32.Mat3 {
	inv := r.Inverse()
	x := inv.TimesVec(XPos3)
	y := inv.TimesVec(YPos3)
	z := inv.TimesVec(ZPos3)
	return f32.Mat3{
		x.X, x.Y, x.Z,
		y.X, y.Y, y.Z,
		z.X, z.Y, z.Z,
	}
}

// Mat4 returns the homogeneous 4×4 rotation matrix of r, in row-major order.
func (r Rotor3) Mat4() f32.Mat4 {
	m := r.Mat3()
	return f32.Mat4{
		m[0], m[1], m[2], 0,
		m[3], m[4], m[5], 0,
		m[6], m[7], m[8], 0,
		0, 0, 0, 1,
	}
}

// MulVec3 multiplies the row-major matrix m with the column vector v.
func MulVec3(m f32.Mat3, v Vec3) Vec3 {
	return Vec3{
		X: m[0]*v.X + m[1]*v.Y + m[2]*v.Z,
		Y: m[3]*v.X + m[4]*v.Y + m[5]*v.Z,
		Z: m[6]*v.X + m[7]*v.Y + m[8]*v.Z,
	}
}

// MulMat3 returns the matrix product a·b.
func MulMat3(a, b f32.Mat3) f32.Mat3 {
	// 0 1 2
	// 3 4 5
	// 6 7 8
	return f32.Mat3{
		a[0]*b[0] + a[1]*b[3] + a[2]*b[6],
		a[0]*b[1] + a[1]*b[4] + a[2]*b[7],
		a[0]*b[2] + a[1]*b[5] + a[2]*b[8],

		a[3]*b[0] + a[4]*b[3] + a[5]*b[6],
		a[3]*b[1] + a[4]*b[4] + a[5]*b[7],
		a[3]*b[2] + a[4]*b[5] + a[5]*b[8],

		a[6]*b[0] + a[7]*b[3] + a[8]*b[6],
		a[6]*b[1] + a[7]*b[4] + a[8]*b[7],
		a[6]*b[2] + a[7]*b[5] + a[8]*b[8],
	}
}
