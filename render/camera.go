// Copyright (c) 2026, The Frustum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	cmath32 "github.com/chewxy/math32"

	fmath "github.com/frustum-viz/frustum/math32"
	"github.com/frustum-viz/frustum/scenepkg"
)

const degToRad = cmath32.Pi / 180

// viewProjection builds the combined view-projection matrix and the
// camera's right/up basis, the latter needed to billboard points and
// labels toward the camera during the geometry pass.
func viewProjection(cam scenepkg.Camera, aspect float32) (combined fmath.Matrix4, right, up fmath.Vector3) {
	view := fmath.LookAt(cam.Eye, cam.Target, cam.Up)

	forward := cam.Target.Sub(cam.Eye).Normal()
	right = forward.Cross(cam.Up).Normal()
	up = right.Cross(forward)

	var proj fmath.Matrix4
	if cam.Projection == scenepkg.Orthographic {
		proj = fmath.Orthographic(cam.ViewHeight, aspect, cam.Near, cam.Far)
	} else {
		proj = fmath.Perspective(cam.FovYDegrees*degToRad, aspect, cam.Near, cam.Far)
	}
	return proj.MulMatrix4(view), right, up
}
