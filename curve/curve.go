// Copyright (c) 2026, The Frustum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package curve evaluates the parametric curve bases: cubic
// Bézier, Catmull-Rom, and uniform B-spline — into a Lines primitive.
// Evaluation is a pure function of the Curves description: it never
// looks at the surrounding scene.
package curve

import (
	"github.com/frustum-viz/frustum/frusterr"
	"github.com/frustum-viz/frustum/math32"
	"github.com/frustum-viz/frustum/scenepkg"
)

// Evaluate samples c uniformly in its native parameterization,
// producing exactly c.Segments+1 points. The returned Lines inherits
// c's id, material reference, scalars and width unchanged.
func Evaluate(c *scenepkg.Curves) (*scenepkg.Lines, error) {
	if c.Segments < 1 {
		return nil, frusterr.NewFieldOutOfRange("segments", ">= 1")
	}
	if len(c.Control) < c.CurveType.MinControlPoints() {
		return nil, frusterr.NewLengthMismatch("control", c.CurveType.MinControlPoints(), len(c.Control))
	}

	var points []math32.Vector3
	switch c.CurveType {
	case scenepkg.CubicBezier:
		points = evalBezier(c.Control, c.Segments)
	case scenepkg.CatmullRom:
		points = evalCatmullRom(c.Control, c.Segments)
	case scenepkg.BSpline:
		points = evalBSpline(c.Control, c.Segments)
	default:
		return nil, frusterr.NewFieldOutOfRange("curve_type", "one of cubic_bezier, catmull_rom, b_spline")
	}

	return &scenepkg.Lines{
		Id:         c.Id,
		Positions:  points,
		Scalars:    c.Scalars,
		HasWidth:   c.HasWidth,
		Width:      c.Width,
		MaterialID: c.MaterialID,
	}, nil
}

// evalBezier evaluates the single cubic Bernstein basis over the 4
// control points P0..P3 at s+1 uniform parameter values in [0,1].
func evalBezier(p []math32.Vector3, s int) []math32.Vector3 {
	out := make([]math32.Vector3, s+1)
	for i := 0; i <= s; i++ {
		t := float32(i) / float32(s)
		u := 1 - t
		b0 := u * u * u
		b1 := 3 * u * u * t
		b2 := 3 * u * t * t
		b3 := t * t * t
		out[i] = weightedSum(p[0], b0, p[1], b1, p[2], b2, p[3], b3)
	}
	return out
}

// evalCatmullRom evaluates a uniform Catmull-Rom spline through N>=4
// control points, per-segment, sampling each of the N-3 interior
// segments with a share of the s+1 total output points proportional to
// its position in the overall uniform parameterization.
func evalCatmullRom(p []math32.Vector3, s int) []math32.Vector3 {
	segCount := len(p) - 3
	out := make([]math32.Vector3, s+1)
	for i := 0; i <= s; i++ {
		u := float32(i) / float32(s) * float32(segCount)
		seg := int(u)
		if seg >= segCount {
			seg = segCount - 1
		}
		t := u - float32(seg)
		p0, p1, p2, p3 := p[seg], p[seg+1], p[seg+2], p[seg+3]
		out[i] = catmullRomPoint(p0, p1, p2, p3, t)
	}
	return out
}

func catmullRomPoint(p0, p1, p2, p3 math32.Vector3, t float32) math32.Vector3 {
	t2 := t * t
	t3 := t2 * t
	b0 := -0.5*t3 + t2 - 0.5*t
	b1 := 1.5*t3 - 2.5*t2 + 1
	b2 := -1.5*t3 + 2*t2 + 0.5*t
	b3 := 0.5*t3 - 0.5*t2
	return weightedSum(p0, b0, p1, b1, p2, b2, p3, b3)
}

// evalBSpline evaluates a clamped, uniform cubic B-spline through N>=4
// control points via the standard de Boor basis on a clamped uniform
// knot vector, so the curve passes through the first and last control
// points.
func evalBSpline(p []math32.Vector3, s int) []math32.Vector3 {
	n := len(p) - 1
	degree := 3
	knots := clampedUniformKnots(n, degree)
	out := make([]math32.Vector3, s+1)
	tMin, tMax := knots[degree], knots[n+1]
	for i := 0; i <= s; i++ {
		t := tMin + (tMax-tMin)*float32(i)/float32(s)
		out[i] = deBoor(p, knots, degree, t)
	}
	return out
}

func clampedUniformKnots(n, degree int) []float32 {
	m := n + degree + 2
	knots := make([]float32, m)
	for i := 0; i < m; i++ {
		switch {
		case i <= degree:
			knots[i] = 0
		case i >= m-degree-1:
			knots[i] = float32(n - degree + 1)
		default:
			knots[i] = float32(i - degree)
		}
	}
	return knots
}

func deBoor(p []math32.Vector3, knots []float32, degree int, t float32) math32.Vector3 {
	k := findSpan(knots, degree, len(p)-1, t)
	d := make([]math32.Vector3, degree+1)
	for j := 0; j <= degree; j++ {
		d[j] = p[k-degree+j]
	}
	for r := 1; r <= degree; r++ {
		for j := degree; j >= r; j-- {
			idx := k - degree + j
			denom := knots[idx+degree-r+1] - knots[idx]
			var alpha float32
			if denom != 0 {
				alpha = (t - knots[idx]) / denom
			}
			d[j] = weightedSum(d[j-1], 1-alpha, d[j], alpha, math32.Vec3(0, 0, 0), 0, math32.Vec3(0, 0, 0), 0)
		}
	}
	return d[degree]
}

func findSpan(knots []float32, degree, n int, t float32) int {
	if t >= knots[n+1] {
		return n
	}
	lo, hi := degree, n+1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if knots[mid] <= t {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo
}

func weightedSum(p0 math32.Vector3, w0 float32, p1 math32.Vector3, w1 float32, p2 math32.Vector3, w2 float32, p3 math32.Vector3, w3 float32) math32.Vector3 {
	return math32.Vec3(
		p0.X*w0+p1.X*w1+p2.X*w2+p3.X*w3,
		p0.Y*w0+p1.Y*w1+p2.Y*w2+p3.Y*w3,
		p0.Z*w0+p1.Z*w1+p2.Z*w2+p3.Z*w3,
	)
}
