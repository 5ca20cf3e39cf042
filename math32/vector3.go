// Copyright (c) 2026, The Frustum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package math32 provides deterministic float32 3-vector, 4x4 matrix,
// and axis-aligned bounding box primitives used throughout the scene
// model, generators, and renderer. All operations are pure and carry
// no hidden global state.
package math32

import "github.com/chewxy/math32"

// Dims indexes a vector component.
type Dims int

const (
	X Dims = iota
	Y
	Z
	W
)

// Vector3 is a 3D vector or point, stored as float32 components.
type Vector3 struct {
	X, Y, Z float32
}

// Vec3 returns a new Vector3 with the given components.
func Vec3(x, y, z float32) Vector3 { return Vector3{x, y, z} }

// Vector3Scalar returns a Vector3 with all components set to s.
func Vector3Scalar(s float32) Vector3 { return Vector3{s, s, s} }

// Set sets the vector's components.
func (v *Vector3) Set(x, y, z float32) { v.X, v.Y, v.Z = x, y, z }

// SetScalar sets all components to s.
func (v *Vector3) SetScalar(s float32) { v.X, v.Y, v.Z = s, s, s }

// SetZero sets the vector to zero.
func (v *Vector3) SetZero() { v.Set(0, 0, 0) }

// Dim returns the given component.
func (v Vector3) Dim(d Dims) float32 {
	switch d {
	case X:
		return v.X
	case Y:
		return v.Y
	case Z:
		return v.Z
	}
	return 0
}

// SetDim sets the given component.
func (v *Vector3) SetDim(d Dims, value float32) {
	switch d {
	case X:
		v.X = value
	case Y:
		v.Y = value
	case Z:
		v.Z = value
	}
}

// FromSlice reads 3 components from s starting at idx.
func (v *Vector3) FromSlice(s []float32, idx int) {
	v.X, v.Y, v.Z = s[idx], s[idx+1], s[idx+2]
}

// ToSlice writes the vector's 3 components into s starting at idx.
func (v Vector3) ToSlice(s []float32, idx int) {
	s[idx], s[idx+1], s[idx+2] = v.X, v.Y, v.Z
}

// Add returns v+o.
func (v Vector3) Add(o Vector3) Vector3 { return Vector3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// AddScalar returns v with s added to every component.
func (v Vector3) AddScalar(s float32) Vector3 { return Vector3{v.X + s, v.Y + s, v.Z + s} }

// SetAdd sets v to v+o.
func (v *Vector3) SetAdd(o Vector3) { *v = v.Add(o) }

// SetAddScalar sets v to v+s.
func (v *Vector3) SetAddScalar(s float32) { *v = v.AddScalar(s) }

// Sub returns v-o.
func (v Vector3) Sub(o Vector3) Vector3 { return Vector3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// SubScalar returns v with s subtracted from every component.
func (v Vector3) SubScalar(s float32) Vector3 { return Vector3{v.X - s, v.Y - s, v.Z - s} }

// SetSub sets v to v-o.
func (v *Vector3) SetSub(o Vector3) { *v = v.Sub(o) }

// SetSubScalar sets v to v-s.
func (v *Vector3) SetSubScalar(s float32) { *v = v.SubScalar(s) }

// Mul returns the component-wise product v*o.
func (v Vector3) Mul(o Vector3) Vector3 { return Vector3{v.X * o.X, v.Y * o.Y, v.Z * o.Z} }

// MulScalar returns v scaled by s.
func (v Vector3) MulScalar(s float32) Vector3 { return Vector3{v.X * s, v.Y * s, v.Z * s} }

// SetMul sets v to v*o (component-wise).
func (v *Vector3) SetMul(o Vector3) { *v = v.Mul(o) }

// SetMulScalar sets v to v*s.
func (v *Vector3) SetMulScalar(s float32) { *v = v.MulScalar(s) }

// Div returns the component-wise quotient v/o.
func (v Vector3) Div(o Vector3) Vector3 { return Vector3{v.X / o.X, v.Y / o.Y, v.Z / o.Z} }

// DivScalar returns v divided by s.
func (v Vector3) DivScalar(s float32) Vector3 { return Vector3{v.X / s, v.Y / s, v.Z / s} }

// SetDiv sets v to v/o.
func (v *Vector3) SetDiv(o Vector3) { *v = v.Div(o) }

// SetDivScalar sets v to v/s.
func (v *Vector3) SetDivScalar(s float32) { *v = v.DivScalar(s) }

// Negate returns -v.
func (v Vector3) Negate() Vector3 { return Vector3{-v.X, -v.Y, -v.Z} }

// Abs returns the component-wise absolute value of v.
func (v Vector3) Abs() Vector3 { return Vector3{math32.Abs(v.X), math32.Abs(v.Y), math32.Abs(v.Z)} }

// Min returns the component-wise minimum of v and o.
func (v Vector3) Min(o Vector3) Vector3 {
	return Vector3{min32(v.X, o.X), min32(v.Y, o.Y), min32(v.Z, o.Z)}
}

// SetMin sets v to the component-wise minimum of v and o.
func (v *Vector3) SetMin(o Vector3) { *v = v.Min(o) }

// Max returns the component-wise maximum of v and o.
func (v Vector3) Max(o Vector3) Vector3 {
	return Vector3{max32(v.X, o.X), max32(v.Y, o.Y), max32(v.Z, o.Z)}
}

// SetMax sets v to the component-wise maximum of v and o.
func (v *Vector3) SetMax(o Vector3) { *v = v.Max(o) }

// Clamp clamps each component of v to [lo,hi].
func (v *Vector3) Clamp(lo, hi Vector3) {
	v.X = clamp32(v.X, lo.X, hi.X)
	v.Y = clamp32(v.Y, lo.Y, hi.Y)
	v.Z = clamp32(v.Z, lo.Z, hi.Z)
}

// Floor returns the component-wise floor of v.
func (v Vector3) Floor() Vector3 {
	return Vector3{math32.Floor(v.X), math32.Floor(v.Y), math32.Floor(v.Z)}
}

// Ceil returns the component-wise ceiling of v.
func (v Vector3) Ceil() Vector3 {
	return Vector3{math32.Ceil(v.X), math32.Ceil(v.Y), math32.Ceil(v.Z)}
}

// Round returns the component-wise rounding of v.
func (v Vector3) Round() Vector3 {
	return Vector3{math32.Round(v.X), math32.Round(v.Y), math32.Round(v.Z)}
}

// Dot returns the dot product of v and o.
func (v Vector3) Dot(o Vector3) float32 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// Cross returns the cross product v x o.
func (v Vector3) Cross(o Vector3) Vector3 {
	return Vector3{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

// LengthSquared returns the squared length of v.
func (v Vector3) LengthSquared() float32 { return v.Dot(v) }

// Length returns the length of v.
func (v Vector3) Length() float32 { return math32.Sqrt(v.LengthSquared()) }

// Normal returns v normalized to unit length. The zero vector normalizes to itself.
func (v Vector3) Normal() Vector3 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.DivScalar(l)
}

// IsFinite reports whether all components of v are finite (no NaN or Inf).
func (v Vector3) IsFinite() bool {
	return isFinite32(v.X) && isFinite32(v.Y) && isFinite32(v.Z)
}

func min32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func clamp32(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func isFinite32(f float32) bool {
	return !math32.IsNaN(f) && !math32.IsInf(f, 0)
}

// IsFinite reports whether f is neither NaN nor +/-Inf.
func IsFinite(f float32) bool { return isFinite32(f) }
