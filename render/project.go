// Copyright (c) 2026, The Frustum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import fmath "github.com/frustum-viz/frustum/math32"

// projected is a world-space point after the view-projection transform
// and viewport mapping: screen-space coordinates in physical pixels, a
// depth in NDC's [0,1] range, and the reciprocal clip-space w used for
// perspective-correct attribute interpolation.
type projected struct {
	X, Y, Depth, InvW float32
	ok                bool
}

// project transforms p by vp and maps it into a width x height physical
// viewport, with the image's row 0 at the top (NDC's Y grows upward,
// screen Y grows downward). Points behind the eye (non-positive clip w)
// cannot be projected and are reported not ok; the caller drops any
// primitive referencing them rather than attempting near-plane clipping.
func project(vp fmath.Matrix4, p fmath.Vector3, width, height float32) projected {
	clip := vp.MulVector4(fmath.Vector4FromVector3(p, 1))
	if clip.W <= 1e-6 {
		return projected{}
	}
	invW := 1 / clip.W
	ndcX, ndcY, ndcZ := clip.X*invW, clip.Y*invW, clip.Z*invW
	return projected{
		X:     (ndcX*0.5 + 0.5) * width,
		Y:     (1 - (ndcY*0.5 + 0.5)) * height,
		Depth: ndcZ,
		InvW:  invW,
		ok:    true,
	}
}
