// Copyright (c) 2026, The Frustum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scenepkg

import (
	"encoding/json"
	"fmt"

	"github.com/frustum-viz/frustum/frusterr"
	"github.com/frustum-viz/frustum/math32"
)

// wire mirrors exactly the canonical JSON encoding. It is an
// unvalidated transport shape; ParseJSON converts it to a SceneDesc
// without interpreting any invariant beyond basic shape (flattened
// array lengths, known discriminator values).
type wireScene struct {
	Version     string            `json:"version"`
	Camera      wireCamera        `json:"camera"`
	WorldBounds wireBox           `json:"world_bounds"`
	Objects     []json.RawMessage `json:"objects"`
	Materials   []json.RawMessage `json:"materials"`
	Light       *wireLight        `json:"light,omitempty"`
}

type wireBox struct {
	Min [3]float32 `json:"min"`
	Max [3]float32 `json:"max"`
}

type wireCamera struct {
	Eye        [3]float32 `json:"eye"`
	Target     [3]float32 `json:"target"`
	Up         [3]float32 `json:"up"`
	Projection string     `json:"projection"`
	Near       float32    `json:"near"`
	Far        float32    `json:"far"`
	FovY       float32    `json:"fov_y,omitempty"`
	ViewHeight float32    `json:"view_height,omitempty"`
}

type wireLight struct {
	Direction [3]float32 `json:"direction"`
	Intensity float32    `json:"intensity"`
	Enabled   *bool      `json:"enabled,omitempty"`
}

type wireTickSpec struct {
	Mode   string    `json:"mode"`
	Values []float32 `json:"values,omitempty"`
	Count  int       `json:"count,omitempty"`
}

type wireLabelSpec struct {
	Show   bool        `json:"show"`
	Offset *[3]float32 `json:"offset,omitempty"`
	Format string      `json:"format,omitempty"`
}

type wireRenderable struct {
	Type       string          `json:"type"`
	Id         string          `json:"id,omitempty"`
	Positions  []float32       `json:"positions,omitempty"`
	Scalars    []float32       `json:"scalars,omitempty"`
	Size       *float32        `json:"size,omitempty"`
	Width      *float32        `json:"width,omitempty"`
	MaterialID string          `json:"material,omitempty"`
	CurveType  string          `json:"curve_type,omitempty"`
	Control    []float32       `json:"control,omitempty"`
	Segments   int             `json:"segments,omitempty"`
	Indices    []int32         `json:"indices,omitempty"`
	Normals    []float32       `json:"normals,omitempty"`
	Bounds     *wireBox        `json:"bounds,omitempty"`
	Axes       []string        `json:"axes,omitempty"`
	Ticks      *wireTickSpec   `json:"ticks,omitempty"`
	Label      *wireLabelSpec  `json:"label,omitempty"`
}

type wireMaterial struct {
	Type         string     `json:"type"`
	Id           string     `json:"id"`
	Color        *[4]float32 `json:"color,omitempty"`
	Colormap     string     `json:"colormap,omitempty"`
	Range        *[2]float32 `json:"range,omitempty"`
	Clamp        *bool      `json:"clamp,omitempty"`
	MissingColor *[4]float32 `json:"missing_color,omitempty"`
}

// ParseJSON decodes the canonical JSON encoding into a SceneDesc,
// ready for Validate. It does not itself enforce any scene invariant
// beyond the shape required to populate the Go types.
func ParseJSON(data []byte) (*SceneDesc, error) {
	var w wireScene
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, err
	}

	desc := &SceneDesc{
		Version: w.Version,
		Camera: Camera{
			Eye:         vec3(w.Camera.Eye),
			Target:      vec3(w.Camera.Target),
			Up:          vec3(w.Camera.Up),
			Near:        w.Camera.Near,
			Far:         w.Camera.Far,
			FovYDegrees: w.Camera.FovY,
			ViewHeight:  w.Camera.ViewHeight,
		},
		WorldBounds: math32.NewBox3(vec3(w.WorldBounds.Min), vec3(w.WorldBounds.Max)),
	}
	switch w.Camera.Projection {
	case "perspective":
		desc.Camera.Projection = Perspective
	case "orthographic":
		desc.Camera.Projection = Orthographic
	default:
		return nil, frusterr.NewFieldOutOfRange("camera.projection", "perspective or orthographic")
	}

	for _, raw := range w.Materials {
		m, err := parseMaterial(raw)
		if err != nil {
			return nil, err
		}
		desc.Materials = append(desc.Materials, m)
	}

	for i, raw := range w.Objects {
		obj, err := parseRenderable(raw)
		if err != nil {
			return nil, fmt.Errorf("objects[%d]: %w", i, err)
		}
		desc.Objects = append(desc.Objects, obj)
	}

	if w.Light != nil {
		enabled := true
		if w.Light.Enabled != nil {
			enabled = *w.Light.Enabled
		}
		desc.Light = &Light{
			Direction: vec3(w.Light.Direction),
			Intensity: w.Light.Intensity,
			Enabled:   enabled,
		}
	}
	return desc, nil
}

func parseMaterial(raw json.RawMessage) (Material, error) {
	var w wireMaterial
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, err
	}
	switch w.Type {
	case "solid":
		var c math32.Vector4
		if w.Color != nil {
			c = math32.Vec4(w.Color[0], w.Color[1], w.Color[2], w.Color[3])
		}
		return &SolidMaterial{Id: w.Id, Color: c}, nil
	case "scalar_mapped":
		clamp := true
		if w.Clamp != nil {
			clamp = *w.Clamp
		}
		var rmin, rmax float32
		if w.Range != nil {
			rmin, rmax = w.Range[0], w.Range[1]
		}
		var mc math32.Vector4
		if w.MissingColor != nil {
			mc = math32.Vec4(w.MissingColor[0], w.MissingColor[1], w.MissingColor[2], w.MissingColor[3])
		}
		return &ScalarMappedMaterial{
			Id: w.Id, Colormap: w.Colormap, RangeMin: rmin, RangeMax: rmax,
			Clamp: clamp, MissingColor: mc,
		}, nil
	}
	return nil, frusterr.NewFieldOutOfRange("materials[].type", "solid or scalar_mapped")
}

func parseRenderable(raw json.RawMessage) (Renderable, error) {
	var w wireRenderable
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, err
	}
	if err := checkFlatLen("positions", w.Positions); err != nil {
		return nil, err
	}
	if err := checkFlatLen("control", w.Control); err != nil {
		return nil, err
	}
	if err := checkFlatLen("normals", w.Normals); err != nil {
		return nil, err
	}
	positions := vec3Slice(w.Positions)
	switch w.Type {
	case "points":
		p := &Points{Id: w.Id, Positions: positions, Scalars: w.Scalars, MaterialID: w.MaterialID}
		if w.Size != nil {
			p.HasSize, p.Size = true, *w.Size
		}
		return p, nil
	case "lines":
		l := &Lines{Id: w.Id, Positions: positions, Scalars: w.Scalars, MaterialID: w.MaterialID}
		if w.Width != nil {
			l.HasWidth, l.Width = true, *w.Width
		}
		return l, nil
	case "curves":
		ct, err := parseCurveType(w.CurveType)
		if err != nil {
			return nil, err
		}
		c := &Curves{
			Id: w.Id, CurveType: ct, Control: vec3Slice(w.Control),
			Segments: w.Segments, Scalars: w.Scalars, MaterialID: w.MaterialID,
		}
		if w.Width != nil {
			c.HasWidth, c.Width = true, *w.Width
		}
		return c, nil
	case "mesh":
		m := &Meshes{
			Id: w.Id, Positions: positions, Indices: w.Indices,
			Normals: vec3Slice(w.Normals), Scalars: w.Scalars, MaterialID: w.MaterialID,
		}
		return m, nil
	case "axes":
		return parseAxisBundle(w)
	}
	return nil, frusterr.NewFieldOutOfRange("type", "points|lines|curves|mesh|axes")
}

func parseCurveType(s string) (CurveType, error) {
	switch s {
	case "cubic_bezier":
		return CubicBezier, nil
	case "catmull_rom":
		return CatmullRom, nil
	case "b_spline":
		return BSpline, nil
	}
	return 0, frusterr.NewFieldOutOfRange("curve_type", "cubic_bezier|catmull_rom|b_spline")
}

func parseAxisBundle(w wireRenderable) (*AxisBundle, error) {
	a := &AxisBundle{Id: w.Id, MaterialID: w.MaterialID}
	if w.Bounds != nil {
		a.Bounds = math32.NewBox3(vec3(w.Bounds.Min), vec3(w.Bounds.Max))
	}
	for _, name := range w.Axes {
		switch name {
		case "x":
			a.Axes = append(a.Axes, AxisX)
		case "y":
			a.Axes = append(a.Axes, AxisY)
		case "z":
			a.Axes = append(a.Axes, AxisZ)
		default:
			return nil, frusterr.NewFieldOutOfRange("axes", "subset of {x,y,z}")
		}
	}
	if w.Ticks != nil {
		t := &TickSpec{Values: w.Ticks.Values, Count: w.Ticks.Count}
		switch w.Ticks.Mode {
		case "fixed":
			t.Mode = TickFixed
		case "auto":
			t.Mode = TickAuto
		default:
			return nil, frusterr.NewFieldOutOfRange("ticks.mode", "fixed or auto")
		}
		a.Ticks = t
	}
	if w.Label != nil {
		l := &LabelSpec{Show: w.Label.Show, Format: w.Label.Format, Offset: math32.Vec3(0.1, 0, 0)}
		if w.Label.Offset != nil {
			l.Offset = vec3(*w.Label.Offset)
		}
		a.Label = l
	}
	return a, nil
}

func checkFlatLen(path string, flat []float32) error {
	if len(flat)%3 != 0 {
		return frusterr.NewFieldOutOfRange(path, "flattened position array length must be a multiple of 3")
	}
	return nil
}

func vec3(a [3]float32) math32.Vector3 { return math32.Vec3(a[0], a[1], a[2]) }

func vec3Slice(flat []float32) []math32.Vector3 {
	if len(flat) == 0 {
		return nil
	}
	out := make([]math32.Vector3, len(flat)/3)
	for i := range out {
		out[i] = math32.Vec3(flat[i*3], flat[i*3+1], flat[i*3+2])
	}
	return out
}
