// Copyright (c) 2026, The Frustum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frustum-viz/frustum/internal/rendertest"
	fmath "github.com/frustum-viz/frustum/math32"
	"github.com/frustum-viz/frustum/scenepkg"
)

func perspectiveCamera() scenepkg.Camera {
	return scenepkg.Camera{
		Eye:         fmath.Vec3(3, 3, 3),
		Target:      fmath.Vec3(0, 0, 0),
		Up:          fmath.Vec3(0, 1, 0),
		Projection:  scenepkg.Perspective,
		Near:        0.1,
		Far:         100,
		FovYDegrees: 60,
	}
}

func worldBounds() fmath.Box3 {
	return fmath.NewBox3(fmath.Vec3(-5, -5, -5), fmath.Vec3(5, 5, 5))
}

func TestRenderEmptySceneIsSolidBackground(t *testing.T) {
	desc := &scenepkg.SceneDesc{
		Version:     scenepkg.SchemaVersion,
		Camera:      perspectiveCamera(),
		WorldBounds: worldBounds(),
	}
	scene, err := scenepkg.Validate(desc)
	require.NoError(t, err)

	img, warnings, err := Render(scene, NewConfig(100, 100))
	require.NoError(t, err)
	assert.Empty(t, warnings)
	require.Equal(t, 100, img.Width)
	require.Equal(t, 100, img.Height)

	for i := 0; i < len(img.Pix); i += 4 {
		assert.Equal(t, uint8(255), img.Pix[i+0])
		assert.Equal(t, uint8(255), img.Pix[i+1])
		assert.Equal(t, uint8(255), img.Pix[i+2])
		assert.Equal(t, uint8(255), img.Pix[i+3])
	}
}

// unitCube returns a centered unit cube (extent -0.5..0.5 on every
// axis), 12 triangles, referencing materialID.
func unitCube(materialID string) *scenepkg.Meshes {
	positions := []fmath.Vector3{
		fmath.Vec3(-0.5, -0.5, -0.5), fmath.Vec3(0.5, -0.5, -0.5),
		fmath.Vec3(0.5, 0.5, -0.5), fmath.Vec3(-0.5, 0.5, -0.5),
		fmath.Vec3(-0.5, -0.5, 0.5), fmath.Vec3(0.5, -0.5, 0.5),
		fmath.Vec3(0.5, 0.5, 0.5), fmath.Vec3(-0.5, 0.5, 0.5),
	}
	indices := []int32{
		0, 1, 2, 0, 2, 3, // z = -0.5
		4, 6, 5, 4, 7, 6, // z = 0.5
		0, 5, 1, 0, 4, 5, // y = -0.5
		3, 2, 6, 3, 6, 7, // y = 0.5
		0, 3, 7, 0, 7, 4, // x = -0.5
		1, 5, 6, 1, 6, 2, // x = 0.5
	}
	return &scenepkg.Meshes{Id: "cube", Positions: positions, Indices: indices, MaterialID: materialID}
}

func TestRenderUnlitRedCube(t *testing.T) {
	desc := &scenepkg.SceneDesc{
		Version:     scenepkg.SchemaVersion,
		Camera:      perspectiveCamera(),
		WorldBounds: worldBounds(),
		Materials:   []scenepkg.Material{&scenepkg.SolidMaterial{Id: "red", Color: fmath.Vec4(1, 0, 0, 1)}},
		Objects:     []scenepkg.Renderable{unitCube("red")},
	}
	scene, err := scenepkg.Validate(desc)
	require.NoError(t, err)

	img, _, err := Render(scene, NewConfig(256, 256))
	require.NoError(t, err)

	cr, cg, cb, ca := img.At(128, 128)
	assert.Greater(t, int(cr), 200)
	assert.Less(t, int(cg), 60)
	assert.Less(t, int(cb), 60)
	assert.Equal(t, uint8(255), ca)

	kr, kg, kb, _ := img.At(2, 2)
	assert.Equal(t, uint8(255), kr)
	assert.Equal(t, uint8(255), kg)
	assert.Equal(t, uint8(255), kb)
}

func TestRenderIsDeterministic(t *testing.T) {
	desc := &scenepkg.SceneDesc{
		Version:     scenepkg.SchemaVersion,
		Camera:      perspectiveCamera(),
		WorldBounds: worldBounds(),
		Materials:   []scenepkg.Material{&scenepkg.SolidMaterial{Id: "red", Color: fmath.Vec4(1, 0, 0, 1)}},
		Objects:     []scenepkg.Renderable{unitCube("red")},
		Light:       &scenepkg.Light{Direction: fmath.Vec3(0, 0, 1), Intensity: 1, Enabled: true},
	}
	scene, err := scenepkg.Validate(desc)
	require.NoError(t, err)

	cfg := NewConfig(128, 128)
	img1, _, err := Render(scene, cfg)
	require.NoError(t, err)
	img2, _, err := Render(scene, cfg)
	require.NoError(t, err)

	assert.Equal(t, img1.Pix, img2.Pix)
	rendertest.AssertSimilar(t, img1, img2, 0, 1.0)
}

func TestRenderRejectsInvalidConfig(t *testing.T) {
	desc := &scenepkg.SceneDesc{
		Version:     scenepkg.SchemaVersion,
		Camera:      perspectiveCamera(),
		WorldBounds: worldBounds(),
	}
	scene, err := scenepkg.Validate(desc)
	require.NoError(t, err)

	_, _, err = Render(scene, Config{Width: 0, Height: 10, PixelRatio: 1, BackgroundColor: fmath.Vec4(1, 1, 1, 1)})
	assert.Error(t, err)

	_, _, err = Render(scene, Config{Width: 10, Height: 10, PixelRatio: 0, BackgroundColor: fmath.Vec4(1, 1, 1, 1)})
	assert.Error(t, err)
}

func TestRenderAllPrimitiveKindsSmoke(t *testing.T) {
	points := &scenepkg.Points{
		Id:         "pts",
		Positions:  []fmath.Vector3{fmath.Vec3(1, 0, 0), fmath.Vec3(-1, 0, 0)},
		HasSize:    true,
		Size:       3,
		MaterialID: "solid",
	}
	lines := &scenepkg.Lines{
		Id:         "lns",
		Positions:  []fmath.Vector3{fmath.Vec3(-2, -2, 0), fmath.Vec3(2, 2, 0)},
		HasWidth:   true,
		Width:      2,
		MaterialID: "solid",
	}
	curve := &scenepkg.Curves{
		Id:         "crv",
		CurveType:  scenepkg.CubicBezier,
		Control:    []fmath.Vector3{fmath.Vec3(-1, -1, 1), fmath.Vec3(-0.5, 1, 1), fmath.Vec3(0.5, -1, 1), fmath.Vec3(1, 1, 1)},
		Segments:   8,
		MaterialID: "solid",
	}
	axes := &scenepkg.AxisBundle{
		Id:         "ax",
		Bounds:     fmath.NewBox3(fmath.Vec3(-2, -2, -2), fmath.Vec3(2, 2, 2)),
		Axes:       []scenepkg.Axis{scenepkg.AxisX, scenepkg.AxisY, scenepkg.AxisZ},
		MaterialID: "solid",
		Ticks:      &scenepkg.TickSpec{Mode: scenepkg.TickAuto, Count: 3},
		Label:      &scenepkg.LabelSpec{Show: true, Offset: fmath.Vec3(0.1, 0.1, 0)},
	}

	desc := &scenepkg.SceneDesc{
		Version:     scenepkg.SchemaVersion,
		Camera:      perspectiveCamera(),
		WorldBounds: worldBounds(),
		Materials:   []scenepkg.Material{&scenepkg.SolidMaterial{Id: "solid", Color: fmath.Vec4(0, 0, 1, 1)}},
		Objects:     []scenepkg.Renderable{points, lines, curve, axes},
		Light:       &scenepkg.Light{Direction: fmath.Vec3(0, 1, 0), Intensity: 1.2, Enabled: true},
	}
	scene, err := scenepkg.Validate(desc)
	require.NoError(t, err)

	img, _, err := Render(scene, NewConfig(128, 128))
	require.NoError(t, err)
	require.Equal(t, 128, img.Width)

	var sawNonBackground bool
	for i := 0; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 255 || img.Pix[i+1] != 255 || img.Pix[i+2] != 255 {
			sawNonBackground = true
			break
		}
	}
	assert.True(t, sawNonBackground, "expected at least one shaded pixel across all primitive kinds")
}

func TestRenderScalarMappedMeshUsesColormap(t *testing.T) {
	cube := unitCube("heat")
	cube.Scalars = make([]float32, len(cube.Positions))
	for i := range cube.Scalars {
		cube.Scalars[i] = 0 // sample the colormap's first control color everywhere
	}
	desc := &scenepkg.SceneDesc{
		Version:     scenepkg.SchemaVersion,
		Camera:      perspectiveCamera(),
		WorldBounds: worldBounds(),
		Materials: []scenepkg.Material{&scenepkg.ScalarMappedMaterial{
			Id: "heat", Colormap: "viridis", RangeMin: 0, RangeMax: 1, Clamp: true,
			MissingColor: fmath.Vec4(0, 0, 0, 1),
		}},
		Objects: []scenepkg.Renderable{cube},
	}
	scene, err := scenepkg.Validate(desc)
	require.NoError(t, err)

	img, _, err := Render(scene, NewConfig(64, 64))
	require.NoError(t, err)

	r, g, b, _ := img.At(32, 32)
	assert.False(t, r == 255 && g == 255 && b == 255, "center pixel should be colormap-shaded, not background")
}
