// Copyright (c) 2026, The Frustum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package volume defines the Volume input type to the marching-cubes
// generator: a 3D scalar field of shape Nx x Ny x Nz, never
// itself part of a Scene.
package volume

import (
	"github.com/frustum-viz/frustum/frusterr"
	"github.com/frustum-viz/frustum/math32"
)

// Smoothing configures an optional Gaussian pre-smoothing pass applied
// to a copy of the scalar field before extraction.
type Smoothing struct {
	KernelSize int
	Sigma      float32
}

// Decimation configures an optional deterministic edge-collapse pass
// after extraction. Exactly one of Target or Ratio should be set by the
// caller; Target takes precedence when both are non-zero.
type Decimation struct {
	Target int     // target triangle count
	Ratio  float32 // reduction ratio in (0,1], used when Target == 0
}

// Volume is a 3D scalar field sampled on a regular grid.
type Volume struct {
	Values  [][][]float32 // [i][j][k], shape Nx x Ny x Nz
	Nx, Ny, Nz int
	Spacing math32.Vector3 // strictly positive
	Origin  math32.Vector3
	IsoValue float32

	Smoothing  *Smoothing
	Decimation *Decimation

	// AllowCategorical must be set by the caller to acknowledge the
	// continuity-assumption mismatch of extracting an isosurface from
	// categorical (caller-annotated) data.
	Categorical      bool
	AllowCategorical bool
}

// At returns the scalar value at grid cell (i,j,k).
func (v *Volume) At(i, j, k int) float32 { return v.Values[i][j][k] }

// WorldPos maps a grid index to world space via origin+spacing.
func (v *Volume) WorldPos(i, j, k int) math32.Vector3 {
	return math32.Vec3(
		v.Origin.X+float32(i)*v.Spacing.X,
		v.Origin.Y+float32(j)*v.Spacing.Y,
		v.Origin.Z+float32(k)*v.Spacing.Z,
	)
}

// CheckShape validates finiteness, spacing, and dimension constraints
// (the non-fatal iso_value-out-of-range case is reported by the caller,
// not here, since it is a warning rather than a rejection).
func (v *Volume) CheckShape() error {
	if v.Nx < 2 {
		return frusterr.NewVolumeDimensionTooSmall(0)
	}
	if v.Ny < 2 {
		return frusterr.NewVolumeDimensionTooSmall(1)
	}
	if v.Nz < 2 {
		return frusterr.NewVolumeDimensionTooSmall(2)
	}
	if v.Spacing.X <= 0 || v.Spacing.Y <= 0 || v.Spacing.Z <= 0 || !v.Spacing.IsFinite() {
		return frusterr.NewFieldOutOfRange("spacing", "strictly positive, finite")
	}
	if !v.Origin.IsFinite() {
		return frusterr.NewFieldNotFinite("origin")
	}
	if !math32.IsFinite(v.IsoValue) {
		return frusterr.NewFieldNotFinite("iso_value")
	}
	for i := 0; i < v.Nx; i++ {
		for j := 0; j < v.Ny; j++ {
			for k := 0; k < v.Nz; k++ {
				if !math32.IsFinite(v.Values[i][j][k]) {
					return frusterr.NewVolumeNonFinite()
				}
			}
		}
	}
	if v.Categorical && !v.AllowCategorical {
		return frusterr.NewCategoricalVolumeRejected()
	}
	return nil
}

// MinMax returns the minimum and maximum scalar values in the field.
func (v *Volume) MinMax() (lo, hi float32) {
	lo, hi = v.Values[0][0][0], v.Values[0][0][0]
	for i := 0; i < v.Nx; i++ {
		for j := 0; j < v.Ny; j++ {
			for k := 0; k < v.Nz; k++ {
				val := v.Values[i][j][k]
				if val < lo {
					lo = val
				}
				if val > hi {
					hi = val
				}
			}
		}
	}
	return lo, hi
}
