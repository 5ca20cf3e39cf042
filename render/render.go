// Copyright (c) 2026, The Frustum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	cmath32 "github.com/chewxy/math32"

	"github.com/frustum-viz/frustum/axis"
	"github.com/frustum-viz/frustum/curve"
	"github.com/frustum-viz/frustum/internal/errs"
	fmath "github.com/frustum-viz/frustum/math32"
	"github.com/frustum-viz/frustum/scenepkg"
	"github.com/frustum-viz/frustum/text"
)

// Warning is a non-fatal observation surfaced alongside a successful
// Render, mirroring Generate's log-and-return-value contract:
// Render currently has no warning cases of its own, but returns the
// slice for symmetry with callers that chain mc.Generate's warnings
// into the same reporting path.
type Warning struct {
	Message string
}

const defaultLogicalSize = 1 // points/lines with no explicit size/width, in logical pixels

// physicalDim converts a logical dimension to physical pixels, rounding
// to the nearest integer and never collapsing to zero.
func physicalDim(logical int, pixelRatio float32) int {
	d := int(cmath32.Round(float32(logical) * pixelRatio))
	if d < 1 {
		d = 1
	}
	return d
}

// Render is a pure function (modulo GPU/CPU floating-point variation)
// from a validated Scene and Config to an sRGB RGBA8 Image. It
// validates cfg before doing any rasterization
// work, never mutates scene, never invents geometry or lights, and
// keeps objects in their input order through every pass.
func Render(scene *scenepkg.Scene, cfg Config) (*Image, []Warning, error) {
	if err := errs.Log(cfg.validate()); err != nil {
		return nil, nil, err
	}

	width := physicalDim(cfg.Width, cfg.PixelRatio)
	height := physicalDim(cfg.Height, cfg.PixelRatio)

	fb := newFramebuffer(width, height, cfg.BackgroundColor)

	aspect := float32(width) / float32(height)
	vp, right, up := viewProjection(scene.Camera(), aspect)
	light := scene.Light()

	rc := &renderContext{
		fb:         fb,
		vp:         vp,
		right:      right,
		up:         up,
		width:      float32(width),
		height:     float32(height),
		pixelRatio: cfg.PixelRatio,
		light:      light,
	}

	var warnings []Warning
	for _, obj := range scene.Objects() {
		mat, _ := scene.MaterialByID(obj.MaterialRef())
		if mat == nil {
			continue
		}
		if err := rc.draw(obj, mat); err != nil {
			return nil, warnings, err
		}
	}

	return fb.resolve(), warnings, nil
}

// renderContext carries the per-call state every draw helper needs:
// the target framebuffer, the combined view-projection matrix, the
// camera's billboard basis, physical viewport dimensions, and the
// scene's single optional light.
type renderContext struct {
	fb                 *framebuffer
	vp                 fmath.Matrix4
	right, up          fmath.Vector3
	width, height      float32
	pixelRatio         float32
	light              *scenepkg.Light
}

func (rc *renderContext) project(p fmath.Vector3) projected {
	return project(rc.vp, p, rc.width, rc.height)
}

func (rc *renderContext) draw(obj scenepkg.Renderable, mat scenepkg.Material) error {
	switch o := obj.(type) {
	case *scenepkg.Points:
		rc.drawPoints(o, mat)
	case *scenepkg.Lines:
		rc.drawLines(o, mat)
	case *scenepkg.Curves:
		lines, err := curve.Evaluate(o)
		if err := errs.Log(err); err != nil {
			return err
		}
		rc.drawLines(lines, mat)
	case *scenepkg.Meshes:
		rc.drawMesh(o, mat)
	case *scenepkg.AxisBundle:
		rc.drawAxisBundle(o, mat)
	}
	return nil
}

func (rc *renderContext) drawPoints(o *scenepkg.Points, mat scenepkg.Material) {
	size := float32(defaultLogicalSize)
	if o.HasSize {
		size = o.Size
	}
	halfSize := size * rc.pixelRatio / 2

	for i, pos := range o.Positions {
		p := rc.project(pos)
		if !p.ok {
			continue
		}
		var scalar float32
		if len(o.Scalars) > 0 {
			scalar = o.Scalars[i]
		}
		drawPoint(rc.fb, mat, p, halfSize, scalar)
	}
}

func (rc *renderContext) drawLines(o *scenepkg.Lines, mat scenepkg.Material) {
	width := float32(defaultLogicalSize)
	if o.HasWidth {
		width = o.Width
	}
	halfWidth := width * rc.pixelRatio / 2

	for i := 0; i+1 < len(o.Positions); i++ {
		p0 := rc.project(o.Positions[i])
		p1 := rc.project(o.Positions[i+1])
		if !p0.ok || !p1.ok {
			continue
		}
		var s0, s1 float32
		if len(o.Scalars) > 0 {
			s0, s1 = o.Scalars[i], o.Scalars[i+1]
		}
		drawLineSegment(rc.fb, mat, p0, p1, halfWidth, s0, s1)
	}
}

func (rc *renderContext) drawMesh(o *scenepkg.Meshes, mat scenepkg.Material) {
	hasNormals := len(o.Normals) > 0
	hasScalars := len(o.Scalars) > 0

	for t := 0; t+2 < len(o.Indices); t += 3 {
		i0, i1, i2 := o.Indices[t], o.Indices[t+1], o.Indices[t+2]
		w0, w1, w2 := o.Positions[i0], o.Positions[i1], o.Positions[i2]

		p0, p1, p2 := rc.project(w0), rc.project(w1), rc.project(w2)
		if !p0.ok || !p1.ok || !p2.ok {
			continue
		}

		var n0, n1, n2 fmath.Vector3
		if hasNormals {
			n0, n1, n2 = o.Normals[i0], o.Normals[i1], o.Normals[i2]
		} else {
			flat := w1.Sub(w0).Cross(w2.Sub(w0)).Normal()
			n0, n1, n2 = flat, flat, flat
		}

		var s0, s1, s2 float32
		if hasScalars {
			s0, s1, s2 = o.Scalars[i0], o.Scalars[i1], o.Scalars[i2]
		}

		rasterizeTriangle(rc.fb, mat, rc.light, false,
			vertexAttr{proj: p0, normal: n0, scalar: s0},
			vertexAttr{proj: p1, normal: n1, scalar: s1},
			vertexAttr{proj: p2, normal: n2, scalar: s2},
		)
	}
}

func (rc *renderContext) drawAxisBundle(o *scenepkg.AxisBundle, mat scenepkg.Material) {
	expanded := axis.Expand(o)
	for _, l := range expanded.Main {
		rc.drawLines(l, mat)
	}
	for _, l := range expanded.Ticks {
		rc.drawLines(l, mat)
	}
	solid, ok := mat.(*scenepkg.SolidMaterial)
	if !ok {
		return // unreachable for a validated scene: AxisBundle materials are always solid
	}
	for _, label := range expanded.Labels {
		rc.drawLabel(label, solid)
	}
}

func (rc *renderContext) drawLabel(label *scenepkg.ExpandedLabel, mat *scenepkg.SolidMaterial) {
	layout := text.Lay(label)
	atlas := text.Shared()
	color := mat.Color

	for _, g := range layout.Glyphs {
		rect := g.UV
		corners := [4]glyphVertex{
			rc.glyphCorner(layout.Anchor, g.LocalOffset, -g.HalfWidth, -g.HalfHeight, 0, 1),
			rc.glyphCorner(layout.Anchor, g.LocalOffset, g.HalfWidth, -g.HalfHeight, 1, 1),
			rc.glyphCorner(layout.Anchor, g.LocalOffset, -g.HalfWidth, g.HalfHeight, 0, 0),
			rc.glyphCorner(layout.Anchor, g.LocalOffset, g.HalfWidth, g.HalfHeight, 1, 0),
		}
		if !corners[0].proj.ok || !corners[1].proj.ok || !corners[2].proj.ok || !corners[3].proj.ok {
			continue
		}
		rasterizeGlyphTriangle(rc.fb, color, atlas, rect, corners[0], corners[1], corners[2])
		rasterizeGlyphTriangle(rc.fb, color, atlas, rect, corners[1], corners[3], corners[2])
	}
}

func (rc *renderContext) glyphCorner(anchor, offset fmath.Vector3, dx, dy, u, v float32) glyphVertex {
	world := anchor.
		Add(rc.right.MulScalar(offset.X + dx)).
		Add(rc.up.MulScalar(offset.Y + dy))
	return glyphVertex{proj: rc.project(world), u: u, v: v}
}
