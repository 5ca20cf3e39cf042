// Copyright (c) 2026, The Frustum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"github.com/frustum-viz/frustum/cie"
	fmath "github.com/frustum-viz/frustum/math32"
)

// framebuffer accumulates linear-space RGBA and a depth buffer while
// the geometry, lighting, and color-mapping passes are fused into a
// single per-fragment write; resolve performs the pass-4 composite and
// sRGB conversion. Shading math happens in linear space so the
// Lambertian term combines physically with the background and
// material colors, which are themselves authored in sRGB.
type framebuffer struct {
	width, height int
	color         []fmath.Vector4 // linear RGBA, straight (non-premultiplied) alpha
	depth         []float32       // NDC depth, [0,1]; 1 is the far plane
}

func newFramebuffer(width, height int, bg fmath.Vector4) *framebuffer {
	fb := &framebuffer{
		width:  width,
		height: height,
		color:  make([]fmath.Vector4, width*height),
		depth:  make([]float32, width*height),
	}
	r, g, b := cie.ToLinear(bg.X, bg.Y, bg.Z)
	bgLin := fmath.Vec4(r, g, b, bg.W)
	for i := range fb.color {
		fb.color[i] = bgLin
		fb.depth[i] = 1
	}
	return fb
}

func (fb *framebuffer) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < fb.width && y < fb.height
}

// blend applies the depth test at pixel (x,y) and, on pass, alpha-blends
// the linear-space straight-alpha color src over whatever is already
// accumulated there. Depth ties favor the later-drawn object, matching
// objects being kept in input order for all passes; alpha<1
// ordering beyond the depth test is implementation-defined.
func (fb *framebuffer) blend(x, y int, depth float32, src fmath.Vector4) {
	if !fb.inBounds(x, y) || depth < 0 || depth > 1 {
		return
	}
	i := y*fb.width + x
	if depth > fb.depth[i] {
		return
	}
	fb.depth[i] = depth
	dst := fb.color[i]
	a := src.W
	fb.color[i] = fmath.Vec4(
		src.X*a+dst.X*(1-a),
		src.Y*a+dst.Y*(1-a),
		src.Z*a+dst.Z*(1-a),
		a+dst.W*(1-a),
	)
}

// resolve performs pass 4: convert the linear accumulator back to sRGB
// and quantize to RGBA8.
func (fb *framebuffer) resolve() *Image {
	img := newImage(fb.width, fb.height)
	for i, c := range fb.color {
		r, g, b := cie.FromLinear(c.X, c.Y, c.Z)
		img.Pix[i*4+0] = to8(r)
		img.Pix[i*4+1] = to8(g)
		img.Pix[i*4+2] = to8(b)
		img.Pix[i*4+3] = to8(c.W)
	}
	return img
}

func to8(v float32) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	default:
		return uint8(v*255 + 0.5)
	}
}
