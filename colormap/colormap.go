// Copyright (c) 2026, The Frustum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colormap provides the frozen perceptually-uniform colormap
// lookup tables used by the render orchestrator's color-mapping pass.
// Tables are a stable subset of Matplotlib's perceptually-uniform maps
// and may not be parameterized or regenerated at runtime.
package colormap

import "golang.org/x/exp/slices"

// RGBA is a color with components in [0,1], in sRGB space, matching the
// Material.SolidMaterial component range.
type RGBA struct {
	R, G, B, A float32
}

// Map interpolates a normalized value in [0,1] over a fixed list of
// control-point colors.
type Map struct {
	Name   string
	Colors []RGBA
}

// Sample returns the interpolated color for a normalized value v.
// v is clamped to [0,1] before interpolation; callers are responsible
// for routing NaN or (when unclamped) out-of-range values to a
// material's missing_color before calling Sample.
func (m *Map) Sample(v float32) RGBA {
	nc := len(m.Colors)
	if nc == 0 {
		return RGBA{}
	}
	if v <= 0 {
		return m.Colors[0]
	}
	if v >= 1 {
		return m.Colors[nc-1]
	}
	ival := v * float32(nc-1)
	lo := int(ival)
	hi := lo + 1
	if hi >= nc {
		return m.Colors[nc-1]
	}
	frac := ival - float32(lo)
	return lerpRGBA(m.Colors[lo], m.Colors[hi], frac)
}

func lerpRGBA(a, b RGBA, t float32) RGBA {
	return RGBA{
		R: a.R + (b.R-a.R)*t,
		G: a.G + (b.G-a.G)*t,
		B: a.B + (b.B-a.B)*t,
		A: a.A + (b.A-a.A)*t,
	}
}

// c8 builds an RGBA from 0-255 byte components at full alpha.
func c8(r, g, b int) RGBA {
	return RGBA{float32(r) / 255, float32(g) / 255, float32(b) / 255, 1}
}

// Standard holds the fixed set of colormaps recognized by
// ScalarMappedMaterial.colormap: viridis, plasma, inferno, magma, cividis.
var Standard = map[string]*Map{
	"viridis": {
		Name: "viridis",
		Colors: []RGBA{
			c8(72, 33, 114), c8(67, 62, 133), c8(56, 87, 140), c8(45, 111, 142),
			c8(36, 133, 142), c8(30, 155, 138), c8(42, 176, 127), c8(81, 197, 105),
			c8(134, 212, 73), c8(194, 223, 35), c8(253, 231, 37),
		},
	},
	"plasma": {
		Name: "plasma",
		Colors: []RGBA{
			c8(61, 4, 155), c8(99, 0, 167), c8(133, 6, 166), c8(166, 32, 152),
			c8(192, 58, 131), c8(213, 84, 110), c8(231, 111, 90), c8(246, 141, 69),
			c8(253, 174, 50), c8(252, 210, 36), c8(240, 248, 33),
		},
	},
	"inferno": {
		Name: "inferno",
		Colors: []RGBA{
			c8(37, 12, 3), c8(19, 11, 52), c8(57, 9, 99), c8(95, 19, 110),
			c8(133, 33, 107), c8(169, 46, 94), c8(203, 65, 73), c8(230, 93, 47),
			c8(247, 131, 17), c8(252, 174, 19), c8(245, 219, 76),
		},
	},
	"magma": {
		Name: "magma",
		Colors: []RGBA{
			c8(0, 0, 4), c8(28, 16, 68), c8(79, 18, 123), c8(129, 37, 129),
			c8(181, 54, 122), c8(229, 80, 100), c8(251, 135, 97), c8(254, 176, 120),
			c8(254, 218, 154), c8(252, 246, 191), c8(252, 253, 191),
		},
	},
	"cividis": {
		Name: "cividis",
		Colors: []RGBA{
			c8(0, 32, 76), c8(0, 54, 103), c8(48, 74, 105), c8(75, 93, 109),
			c8(98, 112, 115), c8(122, 131, 120), c8(147, 151, 119), c8(174, 172, 111),
			c8(203, 194, 98), c8(233, 216, 78), c8(255, 234, 70),
		},
	},
}

// Names returns the sorted list of recognized colormap names.
func Names() []string {
	names := make([]string, 0, len(Standard))
	for k := range Standard {
		names = append(names, k)
	}
	slices.Sort(names)
	return names
}

// Lookup returns the named colormap, or nil and false if unrecognized.
func Lookup(name string) (*Map, bool) {
	m, ok := Standard[name]
	return m, ok
}
