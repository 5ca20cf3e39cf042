// Copyright (c) 2026, The Frustum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mc

import (
	"testing"

	chewxymath32 "github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frustum-viz/frustum/math32"
	"github.com/frustum-viz/frustum/volume"
)

func sphereVolume(n int, radius, iso float32) *volume.Volume {
	values := allocValues(n, n, n)
	half := float32(n-1) / 2
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			for k := 0; k < n; k++ {
				x, y, z := float32(i)-half, float32(j)-half, float32(k)-half
				values[i][j][k] = chewxymath32.Sqrt(x*x+y*y+z*z) - radius
			}
		}
	}
	return &volume.Volume{
		Values: values, Nx: n, Ny: n, Nz: n,
		Spacing:  math32.Vec3(1, 1, 1),
		Origin:   math32.Vec3(0, 0, 0),
		IsoValue: iso,
	}
}

func TestGenerateSphereProducesClosedManifold(t *testing.T) {
	vol := sphereVolume(9, 3, 0)
	mesh, warnings, err := Generate(vol)
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.NotEmpty(t, mesh.Positions)
	assert.True(t, len(mesh.Indices)%3 == 0)
	assert.Len(t, mesh.Normals, len(mesh.Positions))
	require.Len(t, mesh.Scalars, len(mesh.Positions))
	for _, s := range mesh.Scalars {
		assert.Equal(t, vol.IsoValue, s)
	}

	for i := 0; i < len(mesh.Indices); i += 3 {
		a, b, c := mesh.Indices[i], mesh.Indices[i+1], mesh.Indices[i+2]
		assert.NotEqual(t, a, b)
		assert.NotEqual(t, b, c)
		assert.NotEqual(t, c, a)
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	vol := sphereVolume(7, 2.5, 0)
	mesh1, _, err := Generate(vol)
	require.NoError(t, err)
	mesh2, _, err := Generate(vol)
	require.NoError(t, err)
	assert.Equal(t, mesh1.Positions, mesh2.Positions)
	assert.Equal(t, mesh1.Indices, mesh2.Indices)
	assert.Equal(t, mesh1.Normals, mesh2.Normals)
}

func TestGenerateRejectsNonFiniteValues(t *testing.T) {
	vol := sphereVolume(3, 1, 0)
	zero := float32(0)
	vol.Values[1][1][1] = zero / zero // NaN
	_, _, err := Generate(vol)
	require.Error(t, err)
}

func TestGenerateIsoOutOfRangeWarnsEmpty(t *testing.T) {
	vol := sphereVolume(5, 2, 100)
	mesh, warnings, err := Generate(vol)
	require.NoError(t, err)
	assert.Empty(t, mesh.Positions)
	assert.Len(t, warnings, 1)
}

func TestGenerateRejectsTooSmallVolume(t *testing.T) {
	vol := &volume.Volume{
		Values:  allocValues(1, 2, 2),
		Nx:      1, Ny: 2, Nz: 2,
		Spacing: math32.Vec3(1, 1, 1),
	}
	_, _, err := Generate(vol)
	require.Error(t, err)
}

// TestAmbiguousFaceCaseIsResolved exercises case 5, where corners 0 and
// 2 are below the isovalue and the rest above, producing a diagonal
// ambiguity on the z=0 face (corners 0,1,2,3). It checks the decider
// always returns a well-formed triangulation referencing only edges
// the cube configuration actually crosses.
func TestAmbiguousFaceCaseIsResolved(t *testing.T) {
	// Corners 0 and 2 (a diagonal of the z=0 face) below the isovalue,
	// corners 1 and 3 (the other diagonal) above: a bilinear saddle.
	const idx = byte(0b00000101) // bits 0 and 2 set
	corner := [8]float32{-1, 1, -1, 1, 1, 1, 1, 1}

	_, ok := ambiguousFace(idx)
	require.True(t, ok)

	crossed := cubeEdgeFlags[idx]
	tris := resolvedTriangles(idx, corner, 0)
	require.True(t, len(tris)%3 == 0)
	for _, e := range tris {
		assert.True(t, crossed&(1<<uint(e)) != 0, "triangle references an edge the isosurface does not cross")
	}
}

func TestGenerateWithSmoothing(t *testing.T) {
	vol := sphereVolume(9, 3, 0)
	vol.Smoothing = &volume.Smoothing{KernelSize: 1, Sigma: 1}
	mesh, warnings, err := Generate(vol)
	require.NoError(t, err)
	assert.NotEmpty(t, mesh.Positions)
	found := false
	for _, w := range warnings {
		if w.Message == "applied Gaussian pre-smoothing before extraction" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestGenerateWithDecimationReducesTriangleCount(t *testing.T) {
	vol := sphereVolume(11, 4, 0)
	full, _, err := Generate(vol)
	require.NoError(t, err)

	vol.Decimation = &volume.Decimation{Ratio: 0.5}
	reduced, _, err := Generate(vol)
	require.NoError(t, err)

	assert.Less(t, len(reduced.Indices), len(full.Indices))
	for i := 0; i < len(reduced.Indices); i += 3 {
		a, b, c := reduced.Indices[i], reduced.Indices[i+1], reduced.Indices[i+2]
		assert.NotEqual(t, a, b)
		assert.NotEqual(t, b, c)
		assert.NotEqual(t, c, a)
	}
}

func TestGenerateRejectsCategoricalVolume(t *testing.T) {
	vol := sphereVolume(3, 1, 0)
	vol.Categorical = true
	_, _, err := Generate(vol)
	require.Error(t, err)
}
