// Copyright (c) 2026, The Frustum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package text lays out ExpandedLabels into camera-independent glyph
// quads: a single built-in monospace font, rasterized once into
// a fixed atlas keyed by ASCII codepoint, and a per-character quad
// emission rule. The camera-dependent billboard placement of each quad
// is left to the render package's vertex stage.
package text

import (
	"image"

	"golang.org/x/image/draw"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// firstCodepoint and lastCodepoint bound the atlas's printable ASCII
// range, inclusive.
const (
	firstCodepoint = 0x20
	lastCodepoint  = 0x7E
	glyphCount     = lastCodepoint - firstCodepoint + 1

	// atlasCols is chosen so the atlas is roughly square; 10x10 covers
	// the 95-glyph range with room to spare.
	atlasCols = 10
	atlasRows = (glyphCount + atlasCols - 1) / atlasCols
)

// Rect is a UV rectangle within the atlas bitmap, in [0,1]^2.
type Rect struct {
	U0, V0, U1, V1 float32
}

// Atlas is the process-lifetime monospace glyph atlas. Glyph placement
// and coverage are a pure function of codepoint, computed once at init
// time from golang.org/x/image's built-in 7x13 bitmap face
// (basicfont.Face7x13), so every Lay call over the process's lifetime
// sees identical UVs and every platform rasterizes identical atlas bytes.
type Atlas struct {
	Bitmap  *image.Alpha // coverage texture backing every glyph rectangle
	glyphs  [glyphCount]Rect
	Advance float32 // per-glyph advance at label height 1: glyph cell width over cell height
}

var shared = buildAtlas()

// Shared returns the single process-lifetime atlas instance.
func Shared() *Atlas { return shared }

func buildAtlas() *Atlas {
	face := basicfont.Face7x13
	cellW, cellH := face.Advance, 13
	width, height := atlasCols*cellW, atlasRows*cellH

	bmp := image.NewAlpha(image.Rect(0, 0, width, height))
	a := &Atlas{Bitmap: bmp, Advance: float32(cellW) / float32(cellH)}

	ascent := face.Metrics().Ascent.Ceil()
	for cp := firstCodepoint; cp <= lastCodepoint; cp++ {
		i := cp - firstCodepoint
		col, row := i%atlasCols, i/atlasCols
		ox, oy := col*cellW, row*cellH

		dot := fixed.P(ox, oy+ascent)
		dr, mask, maskp, _, ok := face.Glyph(dot, rune(cp))
		if ok {
			draw.Draw(bmp, dr, mask, maskp, draw.Src)
		}
		a.glyphs[i] = Rect{
			U0: float32(ox) / float32(width),
			V0: float32(oy) / float32(height),
			U1: float32(ox+cellW) / float32(width),
			V1: float32(oy+cellH) / float32(height),
		}
	}
	return a
}

// Glyph returns the atlas rectangle for codepoint r, or the rectangle
// for the last glyph ('~') when r falls outside the printable ASCII
// range the atlas covers.
func (a *Atlas) Glyph(r rune) Rect {
	if r < firstCodepoint || r > lastCodepoint {
		return a.glyphs[glyphCount-1]
	}
	return a.glyphs[r-firstCodepoint]
}

// SampleAlpha returns the atlas's coverage in [0,1] at normalized
// coordinate (u,v) within rect, nearest-neighbor.
func (a *Atlas) SampleAlpha(rect Rect, u, v float32) float32 {
	bounds := a.Bitmap.Bounds()
	px := int(rect.U0*float32(bounds.Dx()) + u*(rect.U1-rect.U0)*float32(bounds.Dx()))
	py := int(rect.V0*float32(bounds.Dy()) + v*(rect.V1-rect.V0)*float32(bounds.Dy()))
	if px < bounds.Min.X || px >= bounds.Max.X || py < bounds.Min.Y || py >= bounds.Max.Y {
		return 0
	}
	return float32(a.Bitmap.AlphaAt(px, py).A) / 255
}
