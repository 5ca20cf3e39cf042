// Copyright (c) 2026, The Frustum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cie provides sRGB/linear color-space conversion, used by the
// resolve pass to produce the final sRGB framebuffer from linearly
// shaded color values.
package cie

import "github.com/chewxy/math32"

// ToLinearComp converts a single sRGB component to linear space.
func ToLinearComp(srgb float32) float32 {
	if srgb <= 0.04045 {
		return srgb / 12.92
	}
	return math32.Pow((srgb+0.055)/1.055, 2.4)
}

// FromLinearComp converts a single linear component to gamma-corrected sRGB.
func FromLinearComp(lin float32) float32 {
	var gv float32
	if lin <= 0.0031308 {
		gv = 12.92 * lin
	} else {
		gv = 1.055*math32.Pow(lin, 1.0/2.4) - 0.055
	}
	return clamp(gv, 0, 1)
}

// ToLinear converts a set of sRGB components to linear values.
func ToLinear(r, g, b float32) (rl, gl, bl float32) {
	return ToLinearComp(r), ToLinearComp(g), ToLinearComp(b)
}

// FromLinear converts a set of linear components to gamma-corrected sRGB.
func FromLinear(rl, gl, bl float32) (r, g, b float32) {
	return FromLinearComp(rl), FromLinearComp(gl), FromLinearComp(bl)
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
