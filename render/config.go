// Copyright (c) 2026, The Frustum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"github.com/frustum-viz/frustum/frusterr"
	"github.com/frustum-viz/frustum/math32"
)

// Config governs only how a validated Scene is realized into pixels
// it never affects scene semantics. A zero Config is not valid
// (zero width, height and pixel_ratio) — use NewConfig to
// start from the documented defaults.
type Config struct {
	Width, Height   int
	BackgroundColor math32.Vector4
	PixelRatio      float32
}

// NewConfig returns a Config for width x height logical pixels with the
// default opaque white background and a pixel_ratio of 1.0, matching
// the documented RenderConfig defaults. Defaults are applied only here,
// at construction; Render never substitutes for a missing or
// out-of-range field.
func NewConfig(width, height int) Config {
	return Config{
		Width:           width,
		Height:          height,
		BackgroundColor: math32.Vec4(1, 1, 1, 1),
		PixelRatio:      1,
	}
}

func (c Config) validate() error {
	if c.Width <= 0 {
		return frusterr.NewRenderConfigInvalid("width")
	}
	if c.Height <= 0 {
		return frusterr.NewRenderConfigInvalid("height")
	}
	if !math32.IsFinite(c.PixelRatio) || c.PixelRatio <= 0 {
		return frusterr.NewRenderConfigInvalid("pixel_ratio")
	}
	if !c.BackgroundColor.IsFinite() || !in01(c.BackgroundColor) {
		return frusterr.NewRenderConfigInvalid("background_color")
	}
	return nil
}

func in01(v math32.Vector4) bool {
	return inRange01(v.X) && inRange01(v.Y) && inRange01(v.Z) && inRange01(v.W)
}

func inRange01(f float32) bool { return f >= 0 && f <= 1 }
