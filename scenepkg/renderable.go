// Copyright (c) 2026, The Frustum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scenepkg

import "github.com/frustum-viz/frustum/math32"

// RenderableKind discriminates the Renderable tagged variant.
type RenderableKind int

const (
	PointsKind RenderableKind = iota
	LinesKind
	CurvesKind
	MeshKind
	AxisBundleKind
)

func (k RenderableKind) String() string {
	switch k {
	case PointsKind:
		return "points"
	case LinesKind:
		return "lines"
	case CurvesKind:
		return "curves"
	case MeshKind:
		return "mesh"
	case AxisBundleKind:
		return "axes"
	}
	return "unknown"
}

// Renderable is the tagged variant over Points, Lines, Curves, Meshes,
// and AxisBundle. Every Renderable carries an optional stable Id and,
// when it requires rendering, a reference to an existing material.
type Renderable interface {
	ID() string
	Kind() RenderableKind
	MaterialRef() string
}

// Points is a point-cloud primitive.
type Points struct {
	Id         string
	Positions  []math32.Vector3
	Scalars    []float32 // optional, len == len(Positions) when present
	HasSize    bool
	Size       float32 // logical pixels, >0
	MaterialID string
}

func (p *Points) ID() string            { return p.Id }
func (p *Points) Kind() RenderableKind  { return PointsKind }
func (p *Points) MaterialRef() string   { return p.MaterialID }

// Lines is an ordered polyline primitive, >= 2 positions.
type Lines struct {
	Id         string
	Positions  []math32.Vector3
	Scalars    []float32
	HasWidth   bool
	Width      float32
	MaterialID string
}

func (l *Lines) ID() string           { return l.Id }
func (l *Lines) Kind() RenderableKind { return LinesKind }
func (l *Lines) MaterialRef() string  { return l.MaterialID }

// CurveType discriminates the Curves primitive's basis.
type CurveType int

const (
	CubicBezier CurveType = iota
	CatmullRom
	BSpline
)

func (t CurveType) String() string {
	switch t {
	case CubicBezier:
		return "cubic_bezier"
	case CatmullRom:
		return "catmull_rom"
	case BSpline:
		return "b_spline"
	}
	return "unknown"
}

// MinControlPoints returns the minimum control-point count required for t.
func (t CurveType) MinControlPoints() int {
	switch t {
	case CubicBezier:
		return 4
	case CatmullRom, BSpline:
		return 4
	}
	return 0
}

// Curves is a parametric curve, evaluated by the curve package into a
// Lines primitive before rendering.
type Curves struct {
	Id           string
	CurveType    CurveType
	Control      []math32.Vector3
	Segments     int // >= 1
	Scalars      []float32
	HasWidth     bool
	Width        float32
	MaterialID   string
}

func (c *Curves) ID() string           { return c.Id }
func (c *Curves) Kind() RenderableKind { return CurvesKind }
func (c *Curves) MaterialRef() string  { return c.MaterialID }

// Meshes is an indexed triangle mesh.
type Meshes struct {
	Id         string
	Positions  []math32.Vector3
	Indices    []int32 // triangle indices, 3 per triangle, all in-range
	Normals    []math32.Vector3 // optional, len == len(Positions) when present
	Scalars    []float32
	MaterialID string
}

func (m *Meshes) ID() string           { return m.Id }
func (m *Meshes) Kind() RenderableKind { return MeshKind }
func (m *Meshes) MaterialRef() string  { return m.MaterialID }

// Axis names one of the three world axes an AxisBundle can expand.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// TickMode discriminates TickSpec's fixed/auto variant.
type TickMode int

const (
	TickFixed TickMode = iota
	TickAuto
)

// TickSpec configures tick placement along an axis.
type TickSpec struct {
	Mode   TickMode
	Values []float32 // used when Mode == TickFixed; must lie within bounds
	Count  int       // used when Mode == TickAuto; >= 1
}

// LabelSpec configures tick-label rendering.
type LabelSpec struct {
	Show   bool
	Offset math32.Vector3 // default (0.1,0,0)
	Format string         // printf-style; "" means default "%g"-equivalent
}

// AxisBundle expands into Lines (main axes + ticks) and ExpandedLabels.
type AxisBundle struct {
	Id         string
	Bounds     math32.Box3 // must be contained in world_bounds, non-degenerate
	Axes       []Axis      // subset of {x,y,z}
	MaterialID string      // must reference a SolidMaterial
	Ticks      *TickSpec   // optional
	Label      *LabelSpec  // optional
}

func (a *AxisBundle) ID() string           { return a.Id }
func (a *AxisBundle) Kind() RenderableKind { return AxisBundleKind }
func (a *AxisBundle) MaterialRef() string  { return a.MaterialID }

// ExpandedLabel is produced by the axis expander; it is never part of
// the input scene, only of a generator's output.
type ExpandedLabel struct {
	Text       string // non-empty ASCII, 0x20-0x7E
	Anchor     math32.Vector3
	Height     float32 // logical pixels, > 0
	MaterialID string
}
