// Copyright (c) 2026, The Frustum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render implements the software rasterizer that turns a
// validated Scene into an sRGB RGBA8 Image: a fixed four-pass
// pipeline (geometry, lighting, color mapping, resolve) running on the
// CPU so it is reproducible and testable without a GPU.
package render

// Image is an sRGB RGBA8 framebuffer of Width x Height physical
// pixels, row-major, top-to-bottom.
type Image struct {
	Width, Height int // physical pixel dimensions (logical * pixel_ratio)
	Pix           []uint8 // len == Width*Height*4, RGBA8
}

// At returns the RGBA8 color at physical pixel (x,y).
func (img *Image) At(x, y int) (r, g, b, a uint8) {
	i := (y*img.Width + x) * 4
	return img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3]
}

func newImage(w, h int) *Image {
	return &Image{Width: w, Height: h, Pix: make([]uint8, w*h*4)}
}
