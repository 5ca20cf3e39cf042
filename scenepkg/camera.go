// Copyright (c) 2026, The Frustum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scenepkg

import "github.com/frustum-viz/frustum/math32"

// Projection discriminates Camera's projection variant.
type Projection int

const (
	Perspective Projection = iota
	Orthographic
)

func (p Projection) String() string {
	if p == Orthographic {
		return "orthographic"
	}
	return "perspective"
}

// Camera is the scene's single camera. Exactly one of FovYDegrees
// (Perspective) or ViewHeight (Orthographic) is meaningful, selected by
// Projection.
type Camera struct {
	Eye, Target, Up math32.Vector3
	Projection      Projection
	Near, Far       float32
	FovYDegrees     float32 // perspective only
	ViewHeight      float32 // orthographic only
}

// Light is the scene's single optional directional light.
type Light struct {
	Direction math32.Vector3 // finite, length in [0.99,1.01]
	Intensity float32        // >= 0, finite
	Enabled   bool           // default true
}
