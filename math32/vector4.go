// Copyright (c) 2026, The Frustum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Vector4 is a 4D vector, used for homogeneous coordinates and RGBA colors.
type Vector4 struct {
	X, Y, Z, W float32
}

// Vec4 returns a new Vector4.
func Vec4(x, y, z, w float32) Vector4 { return Vector4{x, y, z, w} }

// Vector3FromVector4 drops the W component.
func Vector3FromVector4(v Vector4) Vector3 { return Vector3{v.X, v.Y, v.Z} }

// Vector4FromVector3 lifts a Vector3 to homogeneous coordinates with the given w.
func Vector4FromVector3(v Vector3, w float32) Vector4 { return Vector4{v.X, v.Y, v.Z, w} }

// IsFinite reports whether all components of v are finite.
func (v Vector4) IsFinite() bool {
	return isFinite32(v.X) && isFinite32(v.Y) && isFinite32(v.Z) && isFinite32(v.W)
}

// DivW returns the vector divided by its W component (perspective divide).
func (v Vector4) DivW() Vector4 {
	if v.W == 0 {
		return v
	}
	return Vector4{v.X / v.W, v.Y / v.W, v.Z / v.W, 1}
}
