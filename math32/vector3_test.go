// Copyright (c) 2026, The Frustum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVector3(t *testing.T) {
	assert.Equal(t, Vector3{5, 10, 7}, Vec3(5, 10, 7))
	assert.Equal(t, Vec3(20, 20, 20), Vector3Scalar(20))
	assert.Equal(t, Vec3(15, -5, 3), Vector3FromVector4(Vec4(15, -5, 3, 8)))

	v := Vector3{}
	v.Set(-1, 7, 12)
	assert.Equal(t, Vec3(-1, 7, 12), v)

	v.SetDim(X, -4)
	assert.Equal(t, float32(-4), v.Dim(X))
	v.SetDim(Y, 14.3)
	assert.Equal(t, float32(14.3), v.Dim(Y))
	v.SetDim(Z, 3.14)
	assert.Equal(t, float32(3.14), v.Dim(Z))

	v = Vec3(-2, 4, 5)
	assert.Equal(t, Vec3(3, 1, 7), v.Add(Vec3(5, -3, 2)))
	assert.Equal(t, Vec3(-7, 1, 1), v.Sub(Vec3(5, 3, 4)))
	assert.Equal(t, Vec3(-10, 12, 20), v.Mul(Vec3(5, 3, 4)))
	assert.Equal(t, Vec3(-2.0/3, 2, -2.5), v.Div(Vec3(3, 2, -2)))

	v = Vec3(2, 3, 4)
	assert.Equal(t, float32(1), v.Dot(Vec3(4, -5, 2)))
	assert.Equal(t, Vec3(3, 6, -6), v.Cross(Vec3(2, 0, 1)))

	unit := Vec3(3, 0, 4)
	assert.Equal(t, float32(5), unit.Length())
	n := unit.Normal()
	assert.InDelta(t, float64(1), float64(n.Length()), 1e-6)

	assert.True(t, Vec3(1, 2, 3).IsFinite())
	assert.False(t, Vec3(float32(0)/float32(0), 0, 0).IsFinite())
}

func TestBox3(t *testing.T) {
	b := NewBox3(Vec3(0, 0, 0), Vec3(1, 1, 1))
	assert.False(t, b.IsDegenerate())
	assert.True(t, b.Contains(NewBox3(Vec3(0.25, 0.25, 0.25), Vec3(0.75, 0.75, 0.75))))
	assert.False(t, b.Contains(NewBox3(Vec3(-1, 0, 0), Vec3(0.5, 0.5, 0.5))))
	assert.True(t, b.ContainsPoint(Vec3(0.5, 0.5, 0.5)))
	assert.Equal(t, Vec3(0.5, 0.5, 0.5), b.Center())

	degenerate := NewBox3(Vec3(0, 0, 0), Vec3(0, 1, 1))
	assert.True(t, degenerate.IsDegenerate())
}

func TestLookAt(t *testing.T) {
	m := LookAt(Vec3(0, 0, 5), Vec3(0, 0, 0), Vec3(0, 1, 0))
	origin := m.MulPoint(Vec3(0, 0, 0))
	assert.InDelta(t, float64(0), float64(origin.X), 1e-4)
	assert.InDelta(t, float64(0), float64(origin.Y), 1e-4)
	assert.InDelta(t, float64(-5), float64(origin.Z), 1e-4)
}
