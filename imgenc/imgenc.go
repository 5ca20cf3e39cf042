// Copyright (c) 2026, The Frustum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package imgenc defines the boundary between a rendered framebuffer
// and an on-disk or in-memory image format. Encoding to a
// specific file format (PNG or otherwise) is an external-collaborator
// concern and is deliberately not implemented here; this package
// only adapts a render.Image into the standard library's image.Image
// so any stdlib- or third-party-compatible encoder can consume it
// directly, and names the interface a concrete encoder must satisfy.
package imgenc

import (
	"image"
	"io"

	"github.com/frustum-viz/frustum/render"
)

// Encoder writes img to w in some concrete file format. Frustum ships
// no implementation of this interface; callers supply their own (e.g.
// a thin wrapper around the standard library's image/png).
type Encoder interface {
	Encode(w io.Writer, img image.Image) error
}

// ToStdImage adapts fb into a standard library image.RGBA sharing fb's
// pixel storage (no copy): fb's sRGB RGBA8 bytes are already in the
// layout image.RGBA expects.
func ToStdImage(fb *render.Image) *image.RGBA {
	return &image.RGBA{
		Pix:    fb.Pix,
		Stride: fb.Width * 4,
		Rect:   image.Rect(0, 0, fb.Width, fb.Height),
	}
}
