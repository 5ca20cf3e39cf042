// Copyright (c) 2026, The Frustum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scenepkg

import (
	"testing"

	"github.com/frustum-viz/frustum/frusterr"
	"github.com/frustum-viz/frustum/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unitCubeDesc() *SceneDesc {
	return &SceneDesc{
		Version: SchemaVersion,
		Camera: Camera{
			Eye: math32.Vec3(3, 3, 3), Target: math32.Vec3(0, 0, 0), Up: math32.Vec3(0, 1, 0),
			Projection: Perspective, Near: 0.1, Far: 100, FovYDegrees: 50,
		},
		WorldBounds: math32.NewBox3(math32.Vec3(-1, -1, -1), math32.Vec3(1, 1, 1)),
		Materials: []Material{
			&SolidMaterial{Id: "red", Color: math32.Vec4(1, 0, 0, 1)},
		},
		Objects: []Renderable{
			&Meshes{
				Id:        "cube",
				Positions: []math32.Vector3{math32.Vec3(0, 0, 0), math32.Vec3(1, 0, 0), math32.Vec3(0, 1, 0)},
				Indices:   []int32{0, 1, 2},
				MaterialID: "red",
			},
		},
	}
}

func TestValidateAccepts(t *testing.T) {
	sc, err := Validate(unitCubeDesc())
	require.NoError(t, err)
	assert.True(t, sc.Renderable())
	assert.Equal(t, SchemaVersion, sc.Version())
	m, ok := sc.MaterialByID("red")
	require.True(t, ok)
	assert.Equal(t, SolidMaterialKind, m.Kind())
}

func TestValidateEmptySceneIsValidButNotRenderable(t *testing.T) {
	desc := unitCubeDesc()
	desc.Objects = nil
	desc.Materials = nil
	sc, err := Validate(desc)
	require.NoError(t, err)
	assert.False(t, sc.Renderable())
}

func TestValidateRejectsBadVersion(t *testing.T) {
	desc := unitCubeDesc()
	desc.Version = "frustum/scene/v0"
	_, err := Validate(desc)
	var target *frusterr.Error
	require.ErrorAs(t, err, &target)
	assert.Equal(t, frusterr.SchemaVersionUnsupported, target.Kind)
}

func TestValidateRejectsEyeEqualsTarget(t *testing.T) {
	desc := unitCubeDesc()
	desc.Camera.Eye = desc.Camera.Target
	_, err := Validate(desc)
	require.Error(t, err)
}

func TestValidateRejectsCollinearUp(t *testing.T) {
	desc := unitCubeDesc()
	desc.Camera.Eye = math32.Vec3(0, 0, 5)
	desc.Camera.Target = math32.Vec3(0, 0, 0)
	desc.Camera.Up = math32.Vec3(0, 0, 1) // collinear with target-eye
	_, err := Validate(desc)
	require.Error(t, err)
}

func TestValidateRejectsUnresolvedMaterialRef(t *testing.T) {
	desc := unitCubeDesc()
	desc.Objects[0].(*Meshes).MaterialID = "missing"
	_, err := Validate(desc)
	var target *frusterr.Error
	require.ErrorAs(t, err, &target)
	assert.Equal(t, frusterr.MaterialRefUnresolved, target.Kind)
}

func TestValidateRejectsOutOfRangeIndex(t *testing.T) {
	desc := unitCubeDesc()
	desc.Objects[0].(*Meshes).Indices = []int32{0, 1, 9}
	_, err := Validate(desc)
	var target *frusterr.Error
	require.ErrorAs(t, err, &target)
	assert.Equal(t, frusterr.IndexOutOfBounds, target.Kind)
}

func TestValidateRejectsScalarMappedAxis(t *testing.T) {
	desc := unitCubeDesc()
	desc.Materials = append(desc.Materials, &ScalarMappedMaterial{
		Id: "sm", Colormap: "viridis", RangeMin: 0, RangeMax: 1, Clamp: true,
	})
	desc.Objects = append(desc.Objects, &AxisBundle{
		Id:         "x-axis",
		Bounds:     math32.NewBox3(math32.Vec3(-1, -1, -1), math32.Vec3(1, 1, 1)),
		Axes:       []Axis{AxisX},
		MaterialID: "sm",
	})
	_, err := Validate(desc)
	var target *frusterr.Error
	require.ErrorAs(t, err, &target)
	assert.Equal(t, frusterr.MaterialKindMismatch, target.Kind)
}

func TestValidateRejectsAxisBoundsNotContained(t *testing.T) {
	desc := unitCubeDesc()
	desc.Objects = append(desc.Objects, &AxisBundle{
		Id:         "x-axis",
		Bounds:     math32.NewBox3(math32.Vec3(-5, -1, -1), math32.Vec3(5, 1, 1)),
		Axes:       []Axis{AxisX},
		MaterialID: "red",
	})
	_, err := Validate(desc)
	var target *frusterr.Error
	require.ErrorAs(t, err, &target)
	assert.Equal(t, frusterr.BoundsNotContained, target.Kind)
}

func TestValidateRequiresScalarsForScalarMappedMaterial(t *testing.T) {
	desc := unitCubeDesc()
	desc.Materials = append(desc.Materials, &ScalarMappedMaterial{
		Id: "sm", Colormap: "viridis", RangeMin: 0, RangeMax: 1, Clamp: true,
	})
	desc.Objects[0].(*Meshes).MaterialID = "sm"
	_, err := Validate(desc)
	var target *frusterr.Error
	require.ErrorAs(t, err, &target)
	assert.Equal(t, frusterr.ScalarsRequired, target.Kind)
}

func TestValidateIdempotent(t *testing.T) {
	desc := unitCubeDesc()
	sc1, err := Validate(desc)
	require.NoError(t, err)

	desc2 := &SceneDesc{
		Version: sc1.Version(), Camera: sc1.Camera(), WorldBounds: sc1.WorldBounds(),
		Objects: sc1.Objects(), Materials: sc1.Materials(), Light: sc1.Light(),
	}
	sc2, err := Validate(desc2)
	require.NoError(t, err)
	assert.Equal(t, sc1.Version(), sc2.Version())
	assert.Equal(t, sc1.Renderable(), sc2.Renderable())
}
