// Copyright (c) 2026, The Frustum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Box3 is an axis-aligned bounding box in 3D, the AABB of the glossary.
type Box3 struct {
	Min, Max Vector3
}

// NewBox3 returns a Box3 with the given min and max corners.
func NewBox3(min, max Vector3) Box3 { return Box3{min, max} }

// IsFinite reports whether both corners are finite.
func (b Box3) IsFinite() bool { return b.Min.IsFinite() && b.Max.IsFinite() }

// IsDegenerate reports whether the box has zero extent along any axis.
func (b Box3) IsDegenerate() bool {
	return b.Max.X <= b.Min.X || b.Max.Y <= b.Min.Y || b.Max.Z <= b.Min.Z
}

// IsWellFormed reports whether every axis has non-negative extent
// (Min <= Max componentwise), without requiring positive extent on
// every axis the way IsDegenerate's complement does.
func (b Box3) IsWellFormed() bool {
	return b.Min.X <= b.Max.X && b.Min.Y <= b.Max.Y && b.Min.Z <= b.Max.Z
}

// Contains reports whether o is fully contained within b (inclusive).
func (b Box3) Contains(o Box3) bool {
	return o.Min.X >= b.Min.X && o.Min.Y >= b.Min.Y && o.Min.Z >= b.Min.Z &&
		o.Max.X <= b.Max.X && o.Max.Y <= b.Max.Y && o.Max.Z <= b.Max.Z
}

// ContainsPoint reports whether p lies within b (inclusive).
func (b Box3) ContainsPoint(p Vector3) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// Size returns the box's extent along each axis.
func (b Box3) Size() Vector3 { return b.Max.Sub(b.Min) }

// Center returns the box's center point.
func (b Box3) Center() Vector3 { return b.Min.Add(b.Max).MulScalar(0.5) }
