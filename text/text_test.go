// Copyright (c) 2026, The Frustum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frustum-viz/frustum/math32"
	"github.com/frustum-viz/frustum/scenepkg"
)

func TestAtlasCoversPrintableASCII(t *testing.T) {
	a := Shared()
	for cp := rune(firstCodepoint); cp <= lastCodepoint; cp++ {
		r := a.Glyph(cp)
		assert.True(t, r.U1 > r.U0)
		assert.True(t, r.V1 > r.V0)
	}
}

func TestAtlasIsStableAcrossCalls(t *testing.T) {
	a1 := Shared()
	a2 := Shared()
	assert.Same(t, a1, a2)
	assert.Equal(t, a1.Glyph('A'), a2.Glyph('A'))
}

func TestLayEmitsOneQuadPerCharacter(t *testing.T) {
	label := &scenepkg.ExpandedLabel{Text: "10", Anchor: math32.Vec3(1, 2, 3), Height: 12, MaterialID: "m"}
	l := Lay(label)
	require.Len(t, l.Glyphs, 2)
	assert.Equal(t, math32.Vec3(1, 2, 3), l.Anchor)
	assert.Equal(t, "m", l.MaterialID)
}

func TestLayAdvancesUniformly(t *testing.T) {
	label := &scenepkg.ExpandedLabel{Text: "abc", Anchor: math32.Vec3(0, 0, 0), Height: 10}
	l := Lay(label)
	require.Len(t, l.Glyphs, 3)
	advance := l.Glyphs[1].LocalOffset.X - l.Glyphs[0].LocalOffset.X
	assert.InDelta(t, advance, l.Glyphs[2].LocalOffset.X-l.Glyphs[1].LocalOffset.X, 1e-6)
	assert.Equal(t, float32(0), l.Glyphs[0].LocalOffset.X)
}

func TestGlyphOutOfRangeFallsBackToLastGlyph(t *testing.T) {
	a := Shared()
	assert.Equal(t, a.glyphs[glyphCount-1], a.Glyph(rune(0x01)))
}
