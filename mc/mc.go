// Copyright (c) 2026, The Frustum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mc implements the marching-cubes scalar-field-to-mesh
// generator: a pure function from a volume.Volume and options to
// an indexed triangle Mesh, driven entirely by the frozen tables in
// tables.go. Generate never mutates its input and never depends on
// anything outside the field it is given.
package mc

import (
	"github.com/frustum-viz/frustum/math32"
	"github.com/frustum-viz/frustum/volume"
)

// Warning reports a non-fatal condition encountered during generation.
type Warning struct {
	Message string
}

// Mesh is the indexed triangle output of Generate, shaped to drop
// directly into a scenepkg.Meshes renderable.
type Mesh struct {
	Positions []math32.Vector3
	Indices   []int32
	Normals   []math32.Vector3
	Scalars   []float32 // one per vertex, equal to the volume's iso_value
}

// cube corner offsets in (i,j,k), matching the numbering in tables.go.
var cornerOffset = [8][3]int{
	{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0},
	{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1},
}

// edgeCorners gives the two corner indices each of the 12 edges joins.
var edgeCorners = [12][2]int{
	{0, 1}, {1, 2}, {2, 3}, {3, 0},
	{4, 5}, {5, 6}, {6, 7}, {7, 4},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

// Generate extracts an isosurface from vol at vol.IsoValue. It visits
// cells in a fixed (k,j,i) outer-to-inner order and resolves the 6
// ambiguous face configurations with the asymptotic decider, so two
// calls against equal inputs always produce byte-identical output.
func Generate(vol *volume.Volume) (Mesh, []Warning, error) {
	if err := vol.CheckShape(); err != nil {
		return Mesh{}, nil, err
	}

	lo, hi := vol.MinMax()
	if vol.IsoValue < lo || vol.IsoValue > hi {
		return Mesh{}, []Warning{{Message: "iso_value outside the range of the volume; returning an empty mesh"}}, nil
	}

	field := vol
	var warnings []Warning
	if vol.Smoothing != nil {
		field = smoothed(vol, *vol.Smoothing)
		warnings = append(warnings, Warning{Message: "applied Gaussian pre-smoothing before extraction"})
	}

	gen := &generator{
		vol:      field,
		vertices: make(map[edgeKey]int32),
	}

	for k := 0; k < field.Nz-1; k++ {
		for j := 0; j < field.Ny-1; j++ {
			for i := 0; i < field.Nx-1; i++ {
				gen.processCell(i, j, k)
			}
		}
	}

	mesh := Mesh{
		Positions: gen.positions,
		Normals:   gen.normals,
		Indices:   gen.indices,
		Scalars:   gen.scalars,
	}

	if vol.Decimation != nil {
		mesh, warnings = decimate(mesh, *vol.Decimation, warnings)
	}

	if len(mesh.Indices) == 0 {
		warnings = append(warnings, Warning{Message: "isosurface does not intersect the volume; returning an empty mesh"})
	}

	return mesh, warnings, nil
}

// edgeKey identifies a unique grid edge so adjacent cells share a
// vertex rather than duplicating it.
type edgeKey struct {
	i, j, k int // the lesser-indexed corner's grid position
	edge    int // which of the 12 canonical edges, 0-11
}

type generator struct {
	vol       *volume.Volume
	vertices  map[edgeKey]int32
	positions []math32.Vector3
	normals   []math32.Vector3
	scalars   []float32
	indices   []int32
}

func (g *generator) processCell(i, j, k int) {
	var corner [8]float32
	var idx byte
	for c := 0; c < 8; c++ {
		off := cornerOffset[c]
		corner[c] = g.vol.At(i+off[0], j+off[1], k+off[2])
		if corner[c] < g.vol.IsoValue {
			idx |= 1 << uint(c)
		}
	}

	flags := cubeEdgeFlags[idx]
	if flags == 0 {
		return
	}

	var edgeVert [12]int32
	for e := 0; e < 12; e++ {
		if flags&(1<<uint(e)) == 0 {
			continue
		}
		edgeVert[e] = g.vertexForEdge(i, j, k, e, corner)
	}

	tris := resolvedTriangles(idx, corner, g.vol.IsoValue)
	for t := 0; t+2 < len(tris); t += 3 {
		a, b, c := edgeVert[tris[t]], edgeVert[tris[t+1]], edgeVert[tris[t+2]]
		g.emitTriangle(a, b, c)
	}
}

// canonicalEdge maps a cell-local edge index to the edgeKey of the
// lesser grid cell that owns it, so two adjacent cells compute the
// same key for a shared edge.
func canonicalEdge(i, j, k, e int) edgeKey {
	switch e {
	case 1:
		return edgeKey{i + 1, j, k, 3}
	case 2:
		return edgeKey{i, j + 1, k, 0}
	case 4:
		return edgeKey{i, j, k + 1, 0}
	case 5:
		return edgeKey{i + 1, j, k + 1, 3}
	case 6:
		return edgeKey{i, j + 1, k + 1, 0}
	case 7:
		return edgeKey{i, j, k + 1, 3}
	case 9:
		return edgeKey{i + 1, j, k, 8}
	case 10:
		return edgeKey{i + 1, j + 1, k, 8}
	case 11:
		return edgeKey{i, j + 1, k, 8}
	default:
		return edgeKey{i, j, k, e}
	}
}

func (g *generator) vertexForEdge(i, j, k, e int, corner [8]float32) int32 {
	key := canonicalEdge(i, j, k, e)
	if id, ok := g.vertices[key]; ok {
		return id
	}

	c0, c1 := edgeCorners[e][0], edgeCorners[e][1]
	off0, off1 := cornerOffset[c0], cornerOffset[c1]
	gi0, gj0, gk0 := i+off0[0], j+off0[1], k+off0[2]
	gi1, gj1, gk1 := i+off1[0], j+off1[1], k+off1[2]
	p0 := g.vol.WorldPos(gi0, gj0, gk0)
	p1 := g.vol.WorldPos(gi1, gj1, gk1)
	v0, v1 := corner[c0], corner[c1]

	t := (g.vol.IsoValue - v0) / (v1 - v0)
	p := math32.Vec3(
		p0.X+t*(p1.X-p0.X),
		p0.Y+t*(p1.Y-p0.Y),
		p0.Z+t*(p1.Z-p0.Z),
	)

	// The vertex lies exactly on the grid edge between the two corners,
	// so trilinear interpolation of the gradient over the cell reduces
	// to a linear interpolation between the two corners' central-
	// difference gradients computed at this same t.
	n0 := centralGradient(g.vol, gi0, gj0, gk0)
	n1 := centralGradient(g.vol, gi1, gj1, gk1)
	grad := math32.Vec3(
		n0.X+t*(n1.X-n0.X),
		n0.Y+t*(n1.Y-n0.Y),
		n0.Z+t*(n1.Z-n0.Z),
	)
	normal := grad.Negate().Normal()

	id := int32(len(g.positions))
	g.positions = append(g.positions, p)
	g.normals = append(g.normals, normal)
	g.scalars = append(g.scalars, g.vol.IsoValue)
	g.vertices[key] = id
	return id
}

// centralGradient estimates the scalar field gradient at grid point
// (i,j,k) via central differences, falling back to a one-sided
// difference at the field boundary.
func centralGradient(v *volume.Volume, i, j, k int) math32.Vector3 {
	gx := partial(v, i, j, k, 0)
	gy := partial(v, i, j, k, 1)
	gz := partial(v, i, j, k, 2)
	return math32.Vec3(gx, gy, gz)
}

func partial(v *volume.Volume, i, j, k, axis int) float32 {
	lo := [3]int{i, j, k}
	hi := [3]int{i, j, k}
	n := [3]int{v.Nx, v.Ny, v.Nz}
	h := v.Spacing.Dim(math32.Dims(axis))

	lo[axis]--
	hi[axis]++
	switch {
	case lo[axis] < 0 && hi[axis] >= n[axis]:
		return 0
	case lo[axis] < 0:
		return (v.At(hi[0], hi[1], hi[2]) - v.At(i, j, k)) / h
	case hi[axis] >= n[axis]:
		return (v.At(i, j, k) - v.At(lo[0], lo[1], lo[2])) / h
	default:
		return (v.At(hi[0], hi[1], hi[2]) - v.At(lo[0], lo[1], lo[2])) / (2 * h)
	}
}

func (g *generator) emitTriangle(a, b, c int32) {
	g.indices = append(g.indices, a, b, c)
}

// resolvedTriangles returns the triangulation of case idx, replacing
// triangleTable's default with the asymptotic decider's choice when
// idx is one of the ambiguous-face configurations.
func resolvedTriangles(idx byte, corner [8]float32, iso float32) []int8 {
	row := triangleTable[idx]
	n := 0
	for n < len(row) && row[n] != -1 {
		n++
	}
	base := append([]int8(nil), row[:n]...)

	face, ok := ambiguousFace(idx)
	if !ok {
		return base
	}
	if asymptoticDecide(idx, corner, iso, face) {
		return base
	}
	return complementTriangulation(idx)
}
