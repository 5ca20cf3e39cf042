// Copyright (c) 2026, The Frustum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package axis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frustum-viz/frustum/math32"
	"github.com/frustum-viz/frustum/scenepkg"
)

func TestExpandMainAxisEndpointsMatchBounds(t *testing.T) {
	b := &scenepkg.AxisBundle{
		Id:         "x",
		Bounds:     math32.NewBox3(math32.Vec3(0, 0, 0), math32.Vec3(10, 0, 0)),
		Axes:       []scenepkg.Axis{scenepkg.AxisX},
		MaterialID: "m",
	}
	out := Expand(b)
	require.Len(t, out.Main, 1)
	assert.Equal(t, math32.Vec3(0, 0, 0), out.Main[0].Positions[0])
	assert.Equal(t, math32.Vec3(10, 0, 0), out.Main[0].Positions[1])
	assert.Equal(t, "m", out.Main[0].MaterialID)
}

func TestExpandAutoTicksCoverEndpoints(t *testing.T) {
	b := &scenepkg.AxisBundle{
		Id:         "x",
		Bounds:     math32.NewBox3(math32.Vec3(0, 0, 0), math32.Vec3(10, 0, 0)),
		Axes:       []scenepkg.Axis{scenepkg.AxisX},
		MaterialID: "m",
		Ticks:      &scenepkg.TickSpec{Mode: scenepkg.TickAuto, Count: 3},
	}
	out := Expand(b)
	require.Len(t, out.Ticks, 3)
	assert.Equal(t, float32(0), out.Ticks[0].Positions[0].X)
	assert.Equal(t, float32(5), out.Ticks[1].Positions[0].X)
	assert.Equal(t, float32(10), out.Ticks[2].Positions[0].X)
}

func TestExpandLabelsUseOffsetAndDefaultFormat(t *testing.T) {
	b := &scenepkg.AxisBundle{
		Id:         "x",
		Bounds:     math32.NewBox3(math32.Vec3(0, 0, 0), math32.Vec3(10, 0, 0)),
		Axes:       []scenepkg.Axis{scenepkg.AxisX},
		MaterialID: "m",
		Ticks:      &scenepkg.TickSpec{Mode: scenepkg.TickAuto, Count: 2},
		Label:      &scenepkg.LabelSpec{Show: true, Offset: math32.Vec3(0.1, 0, 0)},
	}
	out := Expand(b)
	require.Len(t, out.Labels, 2)
	assert.Equal(t, "0", out.Labels[0].Text)
	assert.Equal(t, "10", out.Labels[1].Text)
	assert.Equal(t, float32(0.1), out.Labels[0].Anchor.X)
}

func TestExpandSkipsLabelsWhenNotShown(t *testing.T) {
	b := &scenepkg.AxisBundle{
		Id:         "x",
		Bounds:     math32.NewBox3(math32.Vec3(0, 0, 0), math32.Vec3(10, 0, 0)),
		Axes:       []scenepkg.Axis{scenepkg.AxisX},
		MaterialID: "m",
		Ticks:      &scenepkg.TickSpec{Mode: scenepkg.TickAuto, Count: 2},
	}
	out := Expand(b)
	assert.Empty(t, out.Labels)
}

func TestExpandFixedTicksUseExplicitValues(t *testing.T) {
	b := &scenepkg.AxisBundle{
		Id:         "x",
		Bounds:     math32.NewBox3(math32.Vec3(0, 0, 0), math32.Vec3(10, 0, 0)),
		Axes:       []scenepkg.Axis{scenepkg.AxisX},
		MaterialID: "m",
		Ticks:      &scenepkg.TickSpec{Mode: scenepkg.TickFixed, Values: []float32{1, 4, 9}},
	}
	out := Expand(b)
	require.Len(t, out.Ticks, 3)
	assert.Equal(t, float32(9), out.Ticks[2].Positions[0].X)
}
