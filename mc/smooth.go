// Copyright (c) 2026, The Frustum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mc

import (
	"github.com/chewxy/math32"

	"github.com/frustum-viz/frustum/volume"
)

// smoothed returns a copy of vol whose Values have been convolved with
// a separable Gaussian kernel of the given size and sigma. The
// original volume is never mutated.
func smoothed(vol *volume.Volume, s volume.Smoothing) *volume.Volume {
	kernel := gaussianKernel(s.KernelSize, s.Sigma)

	out := &volume.Volume{
		Nx: vol.Nx, Ny: vol.Ny, Nz: vol.Nz,
		Spacing: vol.Spacing, Origin: vol.Origin, IsoValue: vol.IsoValue,
	}
	out.Values = convolveAxis(vol.Values, vol.Nx, vol.Ny, vol.Nz, kernel, 0)
	out.Values = convolveAxis(out.Values, vol.Nx, vol.Ny, vol.Nz, kernel, 1)
	out.Values = convolveAxis(out.Values, vol.Nx, vol.Ny, vol.Nz, kernel, 2)
	return out
}

func gaussianKernel(size int, sigma float32) []float32 {
	if size < 1 {
		size = 1
	}
	k := make([]float32, 2*size+1)
	var sum float32
	for n := -size; n <= size; n++ {
		v := math32.Exp(-float32(n*n) / (2 * sigma * sigma))
		k[n+size] = v
		sum += v
	}
	for n := range k {
		k[n] /= sum
	}
	return k
}

func convolveAxis(values [][][]float32, nx, ny, nz int, kernel []float32, axis int) [][][]float32 {
	radius := len(kernel) / 2
	out := allocValues(nx, ny, nz)
	dims := [3]int{nx, ny, nz}

	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			for k := 0; k < nz; k++ {
				var acc float32
				idx := [3]int{i, j, k}
				for t := -radius; t <= radius; t++ {
					s := idx
					s[axis] = clampIndex(idx[axis]+t, dims[axis])
					acc += kernel[t+radius] * values[s[0]][s[1]][s[2]]
				}
				out[i][j][k] = acc
			}
		}
	}
	return out
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

func allocValues(nx, ny, nz int) [][][]float32 {
	out := make([][][]float32, nx)
	for i := range out {
		out[i] = make([][]float32, ny)
		for j := range out[i] {
			out[i][j] = make([]float32, nz)
		}
	}
	return out
}
