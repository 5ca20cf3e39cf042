// Copyright (c) 2026, The Frustum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frustum-viz/frustum/math32"
)

// TestCollapseRejectionLeavesMeshUnchanged constructs a mesh where
// collapsing edge (0,1) would invert one triangle (1,2,3) but would
// leave an earlier-processed triangle (1,4,5) uninverted. A correct
// collapse must reject the whole edge and leave every index and
// position exactly as it found them, not just roll back the vertex
// that triggered the rejection.
func TestCollapseRejectionLeavesMeshUnchanged(t *testing.T) {
	mesh := Mesh{
		Positions: []math32.Vector3{
			math32.Vec3(0, -3, 0), // 0: e.a, far side of the collapsed edge
			math32.Vec3(0, 1, 0),  // 1: e.b
			math32.Vec3(-1, 0, 0),  // 2
			math32.Vec3(1, 0, 0),   // 3
			math32.Vec3(10, 10, 0), // 4
			math32.Vec3(11, 10, 0), // 5
		},
		Indices: []int32{
			1, 4, 5, // triangle 0: retargets cleanly
			1, 2, 3, // triangle 1: retargeting inverts this triangle
		},
	}
	origIndices := append([]int32(nil), mesh.Indices...)
	origPos := append([]math32.Vector3(nil), mesh.Positions...)

	d := newDecimator(mesh)
	ok := d.collapse(canonEdge(0, 1))
	require.False(t, ok, "collapse should be rejected: it inverts triangle 1")

	assert.Equal(t, origIndices, d.mesh.Indices, "rejected collapse must not retarget any triangle, including ones processed before the inverting one")
	assert.Equal(t, origPos, d.mesh.Positions, "rejected collapse must restore the merged vertex's position")
	assert.True(t, d.triAlive[0] && d.triAlive[1], "rejected collapse must not kill any triangle")
}
