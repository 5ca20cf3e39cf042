// Copyright (c) 2026, The Frustum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	cmath32 "github.com/chewxy/math32"

	"github.com/frustum-viz/frustum/cie"
	"github.com/frustum-viz/frustum/colormap"
	fmath "github.com/frustum-viz/frustum/math32"
	"github.com/frustum-viz/frustum/scenepkg"
)

// baseColor implements pass 3 for a single fragment: resolve mat's
// color, sampling the referenced colormap through scalar when mat is a
// ScalarMappedMaterial. scalar is meaningless (and ignored) for a
// SolidMaterial.
func baseColor(mat scenepkg.Material, scalar float32) fmath.Vector4 {
	switch m := mat.(type) {
	case *scenepkg.SolidMaterial:
		return m.Color
	case *scenepkg.ScalarMappedMaterial:
		return scalarMappedColor(m, scalar)
	default:
		return fmath.Vec4(0, 0, 0, 1)
	}
}

func scalarMappedColor(m *scenepkg.ScalarMappedMaterial, scalar float32) fmath.Vector4 {
	if cmath32.IsNaN(scalar) {
		return m.MissingColor
	}
	t := (scalar - m.RangeMin) / (m.RangeMax - m.RangeMin)
	if m.Clamp {
		t = clamp01(t)
	} else if t < 0 || t > 1 {
		return m.MissingColor
	}
	table, ok := colormap.Lookup(m.Colormap)
	if !ok {
		return m.MissingColor
	}
	c := table.Sample(t)
	return fmath.Vec4(c.R, c.G, c.B, c.A)
}

func clamp01(v float32) float32 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}

// lightingFactor implements pass 2's Lambertian term for a lit Mesh
// fragment: min(max(dot(normalize(normal), light_dir), 0) * intensity,
// 1). Unlit primitives (Points, Lines, Curves, Axes, Labels) pass
// unlit=true and always get 1 regardless of light presence.
func lightingFactor(light *scenepkg.Light, normal fmath.Vector3, unlit bool) float32 {
	if unlit || light == nil || !light.Enabled {
		return 1
	}
	d := normal.Normal().Dot(light.Direction)
	if d < 0 {
		d = 0
	}
	f := d * light.Intensity
	if f > 1 {
		f = 1
	}
	return f
}

// linearColor converts a solid sRGB color to linear space and scales
// its alpha by coverage, for unlit glyph fragments (label text never applies
// lighting to label text).
func linearColor(c fmath.Vector4, coverage float32) fmath.Vector4 {
	r, g, b := cie.ToLinear(c.X, c.Y, c.Z)
	return fmath.Vec4(r, g, b, c.W*coverage)
}

// shaded resolves a fragment's final linear-space straight-alpha color
// from its material, interpolated scalar, interpolated normal, and the
// scene light, fusing passes 2 and 3 into one call.
func shaded(mat scenepkg.Material, scalar float32, normal fmath.Vector3, light *scenepkg.Light, unlit bool) fmath.Vector4 {
	base := baseColor(mat, scalar)
	factor := lightingFactor(light, normal, unlit)
	r, g, b := cie.ToLinear(base.X, base.Y, base.Z)
	return fmath.Vec4(r*factor, g*factor, b*factor, base.W)
}
