// Copyright (c) 2026, The Frustum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package curve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frustum-viz/frustum/math32"
	"github.com/frustum-viz/frustum/scenepkg"
)

func square() []math32.Vector3 {
	return []math32.Vector3{
		math32.Vec3(0, 0, 0),
		math32.Vec3(1, 0, 0),
		math32.Vec3(1, 1, 0),
		math32.Vec3(0, 1, 0),
	}
}

func TestEvaluateBezierEndpoints(t *testing.T) {
	c := &scenepkg.Curves{Id: "b", CurveType: scenepkg.CubicBezier, Control: square(), Segments: 10}
	lines, err := Evaluate(c)
	require.NoError(t, err)
	assert.Len(t, lines.Positions, 11)
	assert.Equal(t, square()[0], lines.Positions[0])
	assert.Equal(t, square()[3], lines.Positions[10])
}

func TestEvaluateCatmullRomPassesThroughInterior(t *testing.T) {
	ctrl := []math32.Vector3{
		math32.Vec3(0, 0, 0), math32.Vec3(1, 0, 0),
		math32.Vec3(2, 1, 0), math32.Vec3(3, 1, 0),
	}
	c := &scenepkg.Curves{Id: "cr", CurveType: scenepkg.CatmullRom, Control: ctrl, Segments: 20}
	lines, err := Evaluate(c)
	require.NoError(t, err)
	assert.Len(t, lines.Positions, 21)
	assert.InDelta(t, ctrl[1].X, lines.Positions[0].X, 1e-5)
	assert.InDelta(t, ctrl[1].Y, lines.Positions[0].Y, 1e-5)
	assert.InDelta(t, ctrl[2].X, lines.Positions[20].X, 1e-5)
	assert.InDelta(t, ctrl[2].Y, lines.Positions[20].Y, 1e-5)
}

func TestEvaluateBSplineEndpointsMatchControlWithClampedKnots(t *testing.T) {
	ctrl := square()
	c := &scenepkg.Curves{Id: "bs", CurveType: scenepkg.BSpline, Control: ctrl, Segments: 8}
	lines, err := Evaluate(c)
	require.NoError(t, err)
	assert.Len(t, lines.Positions, 9)
	assert.InDelta(t, ctrl[0].X, lines.Positions[0].X, 1e-4)
	assert.InDelta(t, ctrl[0].Y, lines.Positions[0].Y, 1e-4)
	assert.InDelta(t, ctrl[3].X, lines.Positions[8].X, 1e-4)
	assert.InDelta(t, ctrl[3].Y, lines.Positions[8].Y, 1e-4)
}

func TestEvaluateDoublingSegmentsIsSupersetForBSpline(t *testing.T) {
	ctrl := square()
	c1 := &scenepkg.Curves{CurveType: scenepkg.BSpline, Control: ctrl, Segments: 4}
	c2 := &scenepkg.Curves{CurveType: scenepkg.BSpline, Control: ctrl, Segments: 8}
	l1, err := Evaluate(c1)
	require.NoError(t, err)
	l2, err := Evaluate(c2)
	require.NoError(t, err)

	for i, p := range l1.Positions {
		q := l2.Positions[i*2]
		assert.InDelta(t, p.X, q.X, 1e-4)
		assert.InDelta(t, p.Y, q.Y, 1e-4)
		assert.InDelta(t, p.Z, q.Z, 1e-4)
	}
}

func TestEvaluateRejectsTooFewControlPoints(t *testing.T) {
	c := &scenepkg.Curves{CurveType: scenepkg.CubicBezier, Control: square()[:2], Segments: 4}
	_, err := Evaluate(c)
	require.Error(t, err)
}

func TestEvaluateRejectsZeroSegments(t *testing.T) {
	c := &scenepkg.Curves{CurveType: scenepkg.CubicBezier, Control: square(), Segments: 0}
	_, err := Evaluate(c)
	require.Error(t, err)
}

func TestEvaluateInheritsMaterialAndWidth(t *testing.T) {
	c := &scenepkg.Curves{
		CurveType: scenepkg.CubicBezier, Control: square(), Segments: 4,
		MaterialID: "mat", HasWidth: true, Width: 2.5,
		Scalars: []float32{0, 1, 2, 3, 4},
	}
	lines, err := Evaluate(c)
	require.NoError(t, err)
	assert.Equal(t, "mat", lines.MaterialID)
	assert.True(t, lines.HasWidth)
	assert.Equal(t, float32(2.5), lines.Width)
	assert.Equal(t, c.Scalars, lines.Scalars)
}
