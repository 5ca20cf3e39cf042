// Copyright (c) 2026, The Frustum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mc

import (
	"sort"

	"github.com/frustum-viz/frustum/volume"
)

// decimate reduces mesh's triangle count toward d.Target (or, when
// Target is zero, toward a fraction d.Ratio of the original count) by
// repeatedly collapsing the shortest remaining edge into its midpoint.
// Edges are ranked by (length, lower vertex index, upper vertex index)
// so that ties between equal-length edges always resolve the same way
// regardless of map iteration order.
func decimate(mesh Mesh, d volume.Decimation, warnings []Warning) (Mesh, []Warning) {
	target := d.Target
	if target == 0 {
		if d.Ratio <= 0 || d.Ratio >= 1 {
			return mesh, warnings
		}
		target = int(float32(len(mesh.Indices)/3) * d.Ratio)
	}
	if target <= 0 || target >= len(mesh.Indices)/3 {
		return mesh, warnings
	}

	dm := newDecimator(mesh)
	collapsed := 0
	for dm.triangleCount() > target {
		e, ok := dm.shortestEdge()
		if !ok {
			break
		}
		if !dm.collapse(e) {
			// collapsing this edge would invert a triangle; drop it from
			// further consideration and try the next shortest.
			dm.forbid(e)
			continue
		}
		collapsed++
	}
	if collapsed > 0 {
		warnings = append(warnings, Warning{Message: "applied deterministic edge-collapse decimation"})
	}
	return dm.result(), warnings
}

type edge struct{ a, b int32 }

func canonEdge(a, b int32) edge {
	if a > b {
		a, b = b, a
	}
	return edge{a, b}
}

type decimator struct {
	mesh      Mesh
	triAlive  []bool
	forbidden map[edge]bool
}

func newDecimator(mesh Mesh) *decimator {
	d := &decimator{
		mesh:      mesh,
		triAlive:  make([]bool, len(mesh.Indices)/3),
		forbidden: make(map[edge]bool),
	}
	for i := range d.triAlive {
		d.triAlive[i] = true
	}
	return d
}

func (d *decimator) triangleCount() int {
	n := 0
	for _, a := range d.triAlive {
		if a {
			n++
		}
	}
	return n
}

func (d *decimator) forbid(e edge) { d.forbidden[e] = true }

// shortestEdge returns the live edge with least squared length, using
// (length, a, b) as a total order so the choice never depends on
// iteration order over the triangle list.
func (d *decimator) shortestEdge() (edge, bool) {
	seen := make(map[edge]bool)
	var candidates []edge
	for t := 0; t < len(d.triAlive); t++ {
		if !d.triAlive[t] {
			continue
		}
		i0, i1, i2 := d.mesh.Indices[3*t], d.mesh.Indices[3*t+1], d.mesh.Indices[3*t+2]
		for _, e := range [3]edge{canonEdge(i0, i1), canonEdge(i1, i2), canonEdge(i2, i0)} {
			if seen[e] || d.forbidden[e] {
				continue
			}
			seen[e] = true
			candidates = append(candidates, e)
		}
	}
	if len(candidates) == 0 {
		return edge{}, false
	}
	sort.Slice(candidates, func(i, j int) bool {
		li, lj := d.edgeLenSq(candidates[i]), d.edgeLenSq(candidates[j])
		if li != lj {
			return li < lj
		}
		if candidates[i].a != candidates[j].a {
			return candidates[i].a < candidates[j].a
		}
		return candidates[i].b < candidates[j].b
	})
	return candidates[0], true
}

func (d *decimator) edgeLenSq(e edge) float32 {
	p := d.mesh.Positions[e.a]
	q := d.mesh.Positions[e.b]
	return p.Sub(q).LengthSquared()
}

// collapse merges edge e's endpoints to their midpoint, retargeting
// every triangle referencing e.b onto e.a and dropping the now
// degenerate triangles that had e as one of their edges. It reports
// false (and changes nothing) if the collapse would invert any
// surviving triangle's winding.
func (d *decimator) collapse(e edge) bool {
	mid := d.mesh.Positions[e.a].Add(d.mesh.Positions[e.b]).MulScalar(0.5)
	saved := d.mesh.Positions[e.a]
	d.mesh.Positions[e.a] = mid

	// Stage every retargeted triangle's new indices and every triangle
	// to kill; only commit them once the whole mesh has passed the
	// inversion guard, so a rejected collapse leaves triAlive and
	// Indices exactly as they were.
	type retarget struct {
		t          int
		i0, i1, i2 int32
	}
	var retargets []retarget
	var kill []int

	for t := 0; t < len(d.triAlive); t++ {
		if !d.triAlive[t] {
			continue
		}
		i0, i1, i2 := d.mesh.Indices[3*t], d.mesh.Indices[3*t+1], d.mesh.Indices[3*t+2]
		before := triangleNormalSign(d.mesh, i0, i1, i2)
		remapped := false
		if i0 == e.b {
			i0, remapped = e.a, true
		}
		if i1 == e.b {
			i1, remapped = e.a, true
		}
		if i2 == e.b {
			i2, remapped = e.a, true
		}
		if !remapped {
			continue
		}
		if i0 == i1 || i1 == i2 || i2 == i0 {
			kill = append(kill, t)
			continue
		}
		after := triangleNormalSign(d.mesh, i0, i1, i2)
		if before*after < 0 {
			d.mesh.Positions[e.a] = saved
			return false
		}
		retargets = append(retargets, retarget{t, i0, i1, i2})
	}

	for _, t := range kill {
		d.triAlive[t] = false
	}
	for _, r := range retargets {
		d.mesh.Indices[3*r.t], d.mesh.Indices[3*r.t+1], d.mesh.Indices[3*r.t+2] = r.i0, r.i1, r.i2
	}
	return true
}

func triangleNormalSign(mesh Mesh, a, b, c int32) float32 {
	pa, pb, pc := mesh.Positions[a], mesh.Positions[b], mesh.Positions[c]
	n := pb.Sub(pa).Cross(pc.Sub(pa))
	return n.X + n.Y + n.Z
}

// result compacts the mesh, dropping dead triangles and unreferenced
// vertices while preserving the relative order of survivors.
func (d *decimator) result() Mesh {
	out := Mesh{}
	newIndex := make(map[int32]int32)
	for t := 0; t < len(d.triAlive); t++ {
		if !d.triAlive[t] {
			continue
		}
		for _, idx := range [3]int32{d.mesh.Indices[3*t], d.mesh.Indices[3*t+1], d.mesh.Indices[3*t+2]} {
			if _, ok := newIndex[idx]; !ok {
				newIndex[idx] = int32(len(out.Positions))
				out.Positions = append(out.Positions, d.mesh.Positions[idx])
				if len(d.mesh.Normals) > 0 {
					out.Normals = append(out.Normals, d.mesh.Normals[idx])
				}
				if len(d.mesh.Scalars) > 0 {
					out.Scalars = append(out.Scalars, d.mesh.Scalars[idx])
				}
			}
			out.Indices = append(out.Indices, newIndex[idx])
		}
	}
	return out
}
