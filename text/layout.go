// Copyright (c) 2026, The Frustum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package text

import (
	"golang.org/x/text/width"

	"github.com/frustum-viz/frustum/math32"
	"github.com/frustum-viz/frustum/scenepkg"
)

// Glyph is one character's quad, expressed in the billboard's local 2D
// frame (x = right, y = up, both relative to the label's anchor). The
// render package turns LocalOffset, HalfWidth, and HalfHeight into
// world-space corners per-vertex using the camera's right/up vectors.
type Glyph struct {
	LocalOffset math32.Vector3 // (i*advance, 0, 0) before camera-space projection
	HalfWidth   float32
	HalfHeight  float32
	UV          Rect
}

// Layout is the camera-independent result of laying out one
// ExpandedLabel: an anchor in world space, the label's material, and
// one Glyph per character.
type Layout struct {
	Anchor     math32.Vector3
	MaterialID string
	Glyphs     []Glyph
}

// Lay lays out label's text against the shared atlas, emitting one
// quad per character advancing uniformly along the billboard's local
// x-axis starting at the label's anchor.
func Lay(label *scenepkg.ExpandedLabel) Layout {
	return LayWith(Shared(), label)
}

// LayWith lays out label against an explicit atlas, letting tests pin
// down a specific atlas instance instead of the process-shared one.
func LayWith(a *Atlas, label *scenepkg.ExpandedLabel) Layout {
	advance := a.Advance * label.Height
	halfHeight := label.Height / 2
	halfWidth := advance / 2

	// Fold fullwidth/halfwidth Unicode forms to their ordinary ASCII
	// equivalent before glyph lookup, so a label built from text that
	// passed through an East Asian locale still resolves against the
	// atlas's printable-ASCII range rather than falling back to '~'.
	folded := width.Fold.String(label.Text)

	out := Layout{Anchor: label.Anchor, MaterialID: label.MaterialID}
	i := 0
	for _, r := range folded {
		out.Glyphs = append(out.Glyphs, Glyph{
			LocalOffset: math32.Vec3(float32(i)*advance, 0, 0),
			HalfWidth:   halfWidth,
			HalfHeight:  halfHeight,
			UV:          a.Glyph(r),
		})
		i++
	}
	return out
}
