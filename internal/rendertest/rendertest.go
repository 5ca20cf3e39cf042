// Copyright (c) 2026, The Frustum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rendertest provides golden-image comparators for the render
// contract's determinism invariant: max-per-channel pixel difference
// and SSIM, comparing a stored reference framebuffer against a freshly
// rendered one within two numeric tolerances rather than requiring
// exact pixel equality.
package rendertest

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/frustum-viz/frustum/render"
)

// MaxChannelDiff returns the largest absolute per-channel difference
// between got and want, in 8-bit units, or an error if their
// dimensions differ.
func MaxChannelDiff(got, want *render.Image) (int, error) {
	if got.Width != want.Width || got.Height != want.Height {
		return 0, fmt.Errorf("rendertest: dimension mismatch: got %dx%d, want %dx%d",
			got.Width, got.Height, want.Width, want.Height)
	}
	max := 0
	for i := range got.Pix {
		d := int(got.Pix[i]) - int(want.Pix[i])
		if d < 0 {
			d = -d
		}
		if d > max {
			max = d
		}
	}
	return max, nil
}

// SSIM returns the structural similarity index between got and want's
// luminance, computed globally over the whole image (a single-window
// simplification of the usual sliding-window SSIM, adequate for whole-
// frame determinism comparisons rather than localized defect
// detection). Returns an error if dimensions differ.
func SSIM(got, want *render.Image) (float64, error) {
	if got.Width != want.Width || got.Height != want.Height {
		return 0, fmt.Errorf("rendertest: dimension mismatch: got %dx%d, want %dx%d",
			got.Width, got.Height, want.Width, want.Height)
	}
	n := got.Width * got.Height
	lg := make([]float64, n)
	lw := make([]float64, n)
	for i := 0; i < n; i++ {
		lg[i] = luminance(got.Pix[i*4:])
		lw[i] = luminance(want.Pix[i*4:])
	}

	meanG, meanW := mean(lg), mean(lw)
	varG, varW := variance(lg, meanG), variance(lw, meanW)
	cov := covariance(lg, lw, meanG, meanW)

	const (
		k1, k2, l = 0.01, 0.03, 255.0
	)
	c1, c2 := (k1*l)*(k1*l), (k2*l)*(k2*l)

	num := (2*meanG*meanW + c1) * (2*cov + c2)
	den := (meanG*meanG + meanW*meanW + c1) * (varG + varW + c2)
	if den == 0 {
		return 1, nil
	}
	return num / den, nil
}

func luminance(rgba []byte) float64 {
	return 0.2126*float64(rgba[0]) + 0.7152*float64(rgba[1]) + 0.0722*float64(rgba[2])
}

func mean(v []float64) float64 {
	var sum float64
	for _, x := range v {
		sum += x
	}
	return sum / float64(len(v))
}

func variance(v []float64, m float64) float64 {
	var sum float64
	for _, x := range v {
		d := x - m
		sum += d * d
	}
	return sum / float64(len(v))
}

func covariance(a, b []float64, ma, mb float64) float64 {
	var sum float64
	for i := range a {
		sum += (a[i] - ma) * (b[i] - mb)
	}
	return sum / float64(len(a))
}

// AssertSimilar fails t unless got matches want within maxDiff (8-bit
// per-channel) and at least minSSIM structural similarity, the two
// tolerances the render contract names.
func AssertSimilar(t *testing.T, got, want *render.Image, maxDiff int, minSSIM float64) {
	t.Helper()
	diff, err := MaxChannelDiff(got, want)
	require.NoError(t, err)
	require.LessOrEqual(t, diff, maxDiff, "max per-channel difference exceeds tolerance")

	s, err := SSIM(got, want)
	require.NoError(t, err)
	require.GreaterOrEqual(t, s, minSSIM, "SSIM below tolerance")
}
