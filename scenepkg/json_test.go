// Copyright (c) 2026, The Frustum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scenepkg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cubeSceneJSON = `{
  "version": "frustum/scene/v1",
  "camera": {
    "eye": [3,3,3], "target": [0,0,0], "up": [0,1,0],
    "projection": "perspective", "near": 0.1, "far": 100, "fov_y": 50
  },
  "world_bounds": { "min": [-1,-1,-1], "max": [1,1,1] },
  "materials": [
    { "type": "solid", "id": "red", "color": [1,0,0,1] }
  ],
  "objects": [
    {
      "type": "mesh", "id": "cube",
      "positions": [0,0,0, 1,0,0, 0,1,0],
      "indices": [0,1,2],
      "material": "red"
    }
  ]
}`

func TestParseJSONAndValidate(t *testing.T) {
	desc, err := ParseJSON([]byte(cubeSceneJSON))
	require.NoError(t, err)
	assert.Equal(t, SchemaVersion, desc.Version)
	assert.Equal(t, Perspective, desc.Camera.Projection)

	sc, err := Validate(desc)
	require.NoError(t, err)
	assert.True(t, sc.Renderable())
	assert.Len(t, sc.Objects(), 1)
	assert.Equal(t, MeshKind, sc.Objects()[0].Kind())
}

const axisSceneJSON = `{
  "version": "frustum/scene/v1",
  "camera": {
    "eye": [3,3,3], "target": [0,0,0], "up": [0,1,0],
    "projection": "perspective", "near": 0.1, "far": 100, "fov_y": 50
  },
  "world_bounds": { "min": [0,0,0], "max": [10,10,10] },
  "materials": [
    { "type": "solid", "id": "axis-mat", "color": [0,0,0,1] }
  ],
  "objects": [
    {
      "type": "axes", "id": "x",
      "bounds": { "min": [0,0,0], "max": [10,0,0] },
      "axes": ["x"],
      "material": "axis-mat",
      "ticks": { "mode": "auto", "count": 3 },
      "label": { "show": true }
    }
  ]
}`

func TestParseJSONAxisBundle(t *testing.T) {
	desc, err := ParseJSON([]byte(axisSceneJSON))
	require.NoError(t, err)
	sc, err := Validate(desc)
	require.NoError(t, err)
	ab := sc.Objects()[0].(*AxisBundle)
	assert.Equal(t, TickAuto, ab.Ticks.Mode)
	assert.Equal(t, 3, ab.Ticks.Count)
	assert.True(t, ab.Label.Show)
	assert.Equal(t, float32(0.1), ab.Label.Offset.X)
}
