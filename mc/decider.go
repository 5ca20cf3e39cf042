// Copyright (c) 2026, The Frustum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mc

// faces lists the cube's 6 faces as 4 corner indices in cyclic order,
// using the corner numbering documented in tables.go.
var faces = [6][4]int{
	{0, 1, 2, 3}, // z = 0
	{4, 5, 6, 7}, // z = 1
	{0, 1, 5, 4}, // y = 0
	{3, 2, 6, 7}, // y = 1
	{0, 3, 7, 4}, // x = 0
	{1, 2, 6, 5}, // x = 1
}

func bit(idx byte, c int) bool { return idx&(1<<uint(c)) != 0 }

// ambiguousFace returns the cube face whose diagonal corners agree
// with each other and disagree with the other diagonal — the
// bilinear-saddle pattern the asymptotic decider resolves — and
// whether configuration idx has one. When several faces have this
// pattern, the first one in faces order is returned.
func ambiguousFace(idx byte) (f [4]int, ok bool) {
	for _, face := range faces {
		b0, b1, b2, b3 := bit(idx, face[0]), bit(idx, face[1]), bit(idx, face[2]), bit(idx, face[3])
		if b0 == b2 && b1 == b3 && b0 != b1 {
			return face, true
		}
	}
	return [4]int{}, false
}

// asymptoticDecide compares the ambiguous face f's asymptotic decider
// value against the isovalue to choose whether the two diagonal
// components stay separate (true, keep the table's default
// triangulation) or connect through a tunnel (false, use the
// complementary triangulation).
func asymptoticDecide(idx byte, corner [8]float32, iso float32, f [4]int) bool {
	f0, f1, f2, f3 := corner[f[0]], corner[f[1]], corner[f[2]], corner[f[3]]
	denom := f0 + f2 - f1 - f3
	if denom == 0 {
		return true
	}
	a := (f0*f2 - f1*f3) / denom
	// bit(idx, f[0]) set means corner f[0] is "inside" (below iso). The
	// two diagonal components stay separate when the saddle value falls
	// on the same side of iso as the f[0]/f[2] diagonal.
	saddleInside := a < iso
	return saddleInside == bit(idx, f[0])
}

// complementTriangulation returns the alternate triangulation of an
// ambiguous case by taking the fully-inverted configuration's edge
// list (inverting every corner's inside/outside state yields the
// topological complement of the surface) and reversing each triangle's
// winding, since inversion flips which side each triangle faces.
func complementTriangulation(idx byte) []int8 {
	inv := idx ^ 0xFF
	row := triangleTable[inv]
	var out []int8
	for t := 0; t+2 < len(row) && row[t] != -1; t += 3 {
		out = append(out, row[t], row[t+2], row[t+1])
	}
	return out
}
