// Copyright (c) 2026, The Frustum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import "github.com/chewxy/math32"

// Matrix4 is a 4x4 matrix stored in column-major order, matching the
// convention expected by graphics APIs: M[col*4+row].
type Matrix4 [16]float32

// Identity4 returns the 4x4 identity matrix.
func Identity4() Matrix4 {
	return Matrix4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// at returns element (row, col).
func (m Matrix4) at(row, col int) float32 { return m[col*4+row] }

// MulVector4 returns m*v.
func (m Matrix4) MulVector4(v Vector4) Vector4 {
	return Vector4{
		X: m.at(0, 0)*v.X + m.at(0, 1)*v.Y + m.at(0, 2)*v.Z + m.at(0, 3)*v.W,
		Y: m.at(1, 0)*v.X + m.at(1, 1)*v.Y + m.at(1, 2)*v.Z + m.at(1, 3)*v.W,
		Z: m.at(2, 0)*v.X + m.at(2, 1)*v.Y + m.at(2, 2)*v.Z + m.at(2, 3)*v.W,
		W: m.at(3, 0)*v.X + m.at(3, 1)*v.Y + m.at(3, 2)*v.Z + m.at(3, 3)*v.W,
	}
}

// MulPoint transforms a Vector3 as a point (w=1) and returns the result
// after perspective divide.
func (m Matrix4) MulPoint(v Vector3) Vector3 {
	r := m.MulVector4(Vector4FromVector3(v, 1)).DivW()
	return Vector3FromVector4(r)
}

// MulMatrix4 returns m*o.
func (m Matrix4) MulMatrix4(o Matrix4) Matrix4 {
	var r Matrix4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += m.at(row, k) * o.at(k, col)
			}
			r[col*4+row] = sum
		}
	}
	return r
}

// LookAt builds a right-handed view matrix from eye, target, and an up
// hint, following forward = normalize(target-eye), right =
// normalize(forward x up), up = right x forward.
func LookAt(eye, target, upHint Vector3) Matrix4 {
	forward := target.Sub(eye).Normal()
	right := forward.Cross(upHint).Normal()
	up := right.Cross(forward)

	// Rotation part is the transpose of the basis (world-to-camera),
	// translation encodes -eye in camera axes.
	return Matrix4{
		right.X, up.X, -forward.X, 0,
		right.Y, up.Y, -forward.Y, 0,
		right.Z, up.Z, -forward.Z, 0,
		-right.Dot(eye), -up.Dot(eye), forward.Dot(eye), 1,
	}
}

// Perspective builds a perspective projection matrix for fovY (radians),
// aspect ratio, and near/far planes, producing clip coordinates for a
// Y-up, Z in [0,1] NDC target (the "OpenGL-to-target" correction is
// folded into the Z row so callers need no separate correction matrix).
func Perspective(fovY, aspect, near, far float32) Matrix4 {
	f := 1 / math32.Tan(fovY/2)
	nf := 1 / (near - far)
	return Matrix4{
		f / aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, far * nf, -1,
		0, 0, far * near * nf, 0,
	}
}

// Orthographic builds an orthographic projection matrix from a symmetric
// viewHeight (world units) and aspect ratio, for a Y-up, Z in [0,1] NDC
// target.
func Orthographic(viewHeight, aspect, near, far float32) Matrix4 {
	top := viewHeight / 2
	right := top * aspect
	return Matrix4{
		1 / right, 0, 0, 0,
		0, 1 / top, 0, 0,
		0, 0, -1 / (far - near), 0,
		0, 0, -near / (far - near), 1,
	}
}
