// Copyright (c) 2026, The Frustum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"golang.org/x/exp/constraints"

	fmath "github.com/frustum-viz/frustum/math32"
	"github.com/frustum-viz/frustum/scenepkg"
	"github.com/frustum-viz/frustum/text"
)

// vertexAttr is one triangle corner's screen-space projection plus the
// world-space attributes the color-mapping and lighting passes need.
type vertexAttr struct {
	proj   projected
	normal fmath.Vector3
	scalar float32
}

// edge is twice the signed area of the triangle (a,b,p); its sign
// determines which side of edge (a,b) point p falls on.
func edge(ax, ay, bx, by, px, py float32) float32 {
	return (bx-ax)*(py-ay) - (by-ay)*(px-ax)
}

// rasterizeTriangle fills the screen-space triangle v0,v1,v2 into fb,
// depth-testing each fragment and shading it from mat/light via
// perspective-correct interpolation of normal and scalar. unlit forces
// the lighting pass's factor to 1 regardless of the scene's light,
// matching points/lines/curves/axes always rendering unlit.
func rasterizeTriangle(fb *framebuffer, mat scenepkg.Material, light *scenepkg.Light, unlit bool, v0, v1, v2 vertexAttr) {
	a, b, c := v0.proj, v1.proj, v2.proj
	area := edge(a.X, a.Y, b.X, b.Y, c.X, c.Y)
	if area == 0 {
		return
	}

	minX, maxX := clampRange(min3(a.X, b.X, c.X), max3(a.X, b.X, c.X), fb.width)
	minY, maxY := clampRange(min3(a.Y, b.Y, c.Y), max3(a.Y, b.Y, c.Y), fb.height)

	for y := minY; y < maxY; y++ {
		py := float32(y) + 0.5
		for x := minX; x < maxX; x++ {
			px := float32(x) + 0.5
			w0 := edge(b.X, b.Y, c.X, c.Y, px, py)
			w1 := edge(c.X, c.Y, a.X, a.Y, px, py)
			w2 := edge(a.X, a.Y, b.X, b.Y, px, py)
			if !sameSign(area, w0, w1, w2) {
				continue
			}
			bc0, bc1, bc2 := w0/area, w1/area, w2/area
			depth := bc0*a.Depth + bc1*b.Depth + bc2*c.Depth

			invWSum := bc0*a.InvW + bc1*b.InvW + bc2*c.InvW
			pc0, pc1, pc2 := bc0*a.InvW/invWSum, bc1*b.InvW/invWSum, bc2*c.InvW/invWSum

			normal := v0.normal.MulScalar(pc0).Add(v1.normal.MulScalar(pc1)).Add(v2.normal.MulScalar(pc2))
			scalar := pc0*v0.scalar + pc1*v1.scalar + pc2*v2.scalar

			color := shaded(mat, scalar, normal, light, unlit)
			fb.blend(x, y, depth, color)
		}
	}
}

func min3(a, b, c float32) float32 { return minF(minF(a, b), c) }
func max3(a, b, c float32) float32 { return maxF(maxF(a, b), c) }

func minF[T constraints.Float](a, b T) T {
	if a < b {
		return a
	}
	return b
}
func maxF[T constraints.Float](a, b T) T {
	if a > b {
		return a
	}
	return b
}

func clampRange(lo, hi float32, bound int) (int, int) {
	l := int(lo)
	h := int(hi) + 1
	if l < 0 {
		l = 0
	}
	if h > bound {
		h = bound
	}
	return l, h
}

func sameSign(area, w0, w1, w2 float32) bool {
	if area > 0 {
		return w0 >= 0 && w1 >= 0 && w2 >= 0
	}
	return w0 <= 0 && w1 <= 0 && w2 <= 0
}

// drawPoint rasterizes a single Points vertex as an axis-aligned
// screen-space square of side 2*halfSize physical pixels.
func drawPoint(fb *framebuffer, mat scenepkg.Material, p projected, halfSize, scalar float32) {
	v00 := vertexAttr{proj: projected{X: p.X - halfSize, Y: p.Y - halfSize, Depth: p.Depth, InvW: p.InvW, ok: true}, scalar: scalar}
	v10 := vertexAttr{proj: projected{X: p.X + halfSize, Y: p.Y - halfSize, Depth: p.Depth, InvW: p.InvW, ok: true}, scalar: scalar}
	v01 := vertexAttr{proj: projected{X: p.X - halfSize, Y: p.Y + halfSize, Depth: p.Depth, InvW: p.InvW, ok: true}, scalar: scalar}
	v11 := vertexAttr{proj: projected{X: p.X + halfSize, Y: p.Y + halfSize, Depth: p.Depth, InvW: p.InvW, ok: true}, scalar: scalar}
	rasterizeTriangle(fb, mat, nil, true, v00, v10, v01)
	rasterizeTriangle(fb, mat, nil, true, v10, v11, v01)
}

// drawLineSegment rasterizes one segment of a polyline as a
// screen-space quad of uniform width, interpolating scalar linearly
// along the segment between its two endpoints.
func drawLineSegment(fb *framebuffer, mat scenepkg.Material, p0, p1 projected, halfWidth, s0, s1 float32) {
	dx, dy := p1.X-p0.X, p1.Y-p0.Y
	length := fmath.Vec3(dx, dy, 0).Length()
	if length == 0 {
		drawPoint(fb, mat, p0, halfWidth, s0)
		return
	}
	nx, ny := -dy/length*halfWidth, dx/length*halfWidth

	a0 := vertexAttr{proj: projected{X: p0.X + nx, Y: p0.Y + ny, Depth: p0.Depth, InvW: p0.InvW, ok: true}, scalar: s0}
	b0 := vertexAttr{proj: projected{X: p0.X - nx, Y: p0.Y - ny, Depth: p0.Depth, InvW: p0.InvW, ok: true}, scalar: s0}
	a1 := vertexAttr{proj: projected{X: p1.X + nx, Y: p1.Y + ny, Depth: p1.Depth, InvW: p1.InvW, ok: true}, scalar: s1}
	b1 := vertexAttr{proj: projected{X: p1.X - nx, Y: p1.Y - ny, Depth: p1.Depth, InvW: p1.InvW, ok: true}, scalar: s1}

	rasterizeTriangle(fb, mat, nil, true, a0, b0, a1)
	rasterizeTriangle(fb, mat, nil, true, b0, b1, a1)
}

// glyphVertex is one glyph quad corner: its screen-space projection and
// its UV coordinate within the glyph's atlas rectangle, in [0,1].
type glyphVertex struct {
	proj projected
	u, v float32
}

// rasterizeGlyphTriangle shades a label glyph's triangle from the
// shared font atlas, discarding (leaving the framebuffer untouched at)
// fragments the atlas reports as uncovered background.
func rasterizeGlyphTriangle(fb *framebuffer, color fmath.Vector4, atlas *text.Atlas, rect text.Rect, v0, v1, v2 glyphVertex) {
	a, b, c := v0.proj, v1.proj, v2.proj
	area := edge(a.X, a.Y, b.X, b.Y, c.X, c.Y)
	if area == 0 {
		return
	}
	minX, maxX := clampRange(min3(a.X, b.X, c.X), max3(a.X, b.X, c.X), fb.width)
	minY, maxY := clampRange(min3(a.Y, b.Y, c.Y), max3(a.Y, b.Y, c.Y), fb.height)

	for y := minY; y < maxY; y++ {
		py := float32(y) + 0.5
		for x := minX; x < maxX; x++ {
			px := float32(x) + 0.5
			w0 := edge(b.X, b.Y, c.X, c.Y, px, py)
			w1 := edge(c.X, c.Y, a.X, a.Y, px, py)
			w2 := edge(a.X, a.Y, b.X, b.Y, px, py)
			if !sameSign(area, w0, w1, w2) {
				continue
			}
			bc0, bc1, bc2 := w0/area, w1/area, w2/area
			depth := bc0*a.Depth + bc1*b.Depth + bc2*c.Depth
			u := bc0*v0.u + bc1*v1.u + bc2*v2.u
			v := bc0*v0.v + bc1*v1.v + bc2*v2.v

			coverage := atlas.SampleAlpha(rect, u, v)
			if coverage <= 0 {
				continue
			}
			fb.blend(x, y, depth, linearColor(color, coverage))
		}
	}
}
