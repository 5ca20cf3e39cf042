// Copyright (c) 2026, The Frustum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scenepkg

import (
	"fmt"

	"github.com/frustum-viz/frustum/colormap"
	"github.com/frustum-viz/frustum/frusterr"
	"github.com/frustum-viz/frustum/math32"
	"github.com/jinzhu/copier"
)

// Validate walks desc in the fixed order version -> camera ->
// world_bounds -> materials -> objects -> light, checking finiteness,
// length and index constraints, material-reference resolution, and
// AxisBundle containment. Validation never normalizes, rounds, or
// substitutes: it only accepts (returning a deeply immutable Scene) or
// rejects (returning the first *frusterr.Error encountered).
func Validate(desc *SceneDesc) (*Scene, error) {
	if desc.Version != SchemaVersion {
		return nil, frusterr.NewSchemaVersionUnsupported(desc.Version)
	}

	if err := validateCamera(desc.Camera); err != nil {
		return nil, err
	}

	if !desc.WorldBounds.IsFinite() {
		return nil, frusterr.NewFieldNotFinite("world_bounds")
	}
	if !desc.WorldBounds.IsWellFormed() {
		return nil, frusterr.NewFieldOutOfRange("world_bounds", "min <= max on every axis")
	}

	materials, materialIdx, err := validateMaterials(desc.Materials)
	if err != nil {
		return nil, err
	}

	objects, err := validateObjects(desc.Objects, desc.WorldBounds, materials, materialIdx)
	if err != nil {
		return nil, err
	}

	var light *Light
	if desc.Light != nil {
		if err := validateLight(*desc.Light); err != nil {
			return nil, err
		}
		light = &Light{}
		if err := copier.Copy(light, desc.Light); err != nil {
			return nil, err
		}
	}

	sc := &Scene{
		version:     desc.Version,
		camera:      desc.Camera,
		worldBounds: desc.WorldBounds,
		objects:     objects,
		materials:   materials,
		materialIdx: materialIdx,
		light:       light,
	}
	return sc, nil
}

func validateCamera(c Camera) error {
	if !c.Eye.IsFinite() {
		return frusterr.NewFieldNotFinite("camera.eye")
	}
	if !c.Target.IsFinite() {
		return frusterr.NewFieldNotFinite("camera.target")
	}
	if !c.Up.IsFinite() {
		return frusterr.NewFieldNotFinite("camera.up")
	}
	if c.Eye == c.Target {
		return frusterr.NewFieldOutOfRange("camera", "eye != target")
	}
	forward := c.Target.Sub(c.Eye)
	if forward.Cross(c.Up).Length() == 0 {
		return frusterr.NewFieldOutOfRange("camera.up", "up must not be collinear with target-eye")
	}
	if !isFiniteScalar(c.Near) || !isFiniteScalar(c.Far) {
		return frusterr.NewFieldNotFinite("camera.near/far")
	}
	if !(c.Near > 0 && c.Near < c.Far) {
		return frusterr.NewFieldOutOfRange("camera.near", "0 < near < far")
	}
	switch c.Projection {
	case Perspective:
		if !isFiniteScalar(c.FovYDegrees) || c.FovYDegrees <= 0 || c.FovYDegrees >= 180 {
			return frusterr.NewFieldOutOfRange("camera.fov_y", "0 < fov_y < 180")
		}
	case Orthographic:
		if !isFiniteScalar(c.ViewHeight) || c.ViewHeight <= 0 {
			return frusterr.NewFieldOutOfRange("camera.view_height", "view_height > 0")
		}
	default:
		return frusterr.NewFieldOutOfRange("camera.projection", "perspective or orthographic")
	}
	return nil
}

func validateMaterials(in []Material) ([]Material, map[string]int, error) {
	out := make([]Material, len(in))
	idx := make(map[string]int, len(in))
	for i, m := range in {
		path := fmt.Sprintf("materials[%d]", i)
		if m.ID() == "" {
			return nil, nil, frusterr.NewFieldMissing(path + ".id")
		}
		if _, dup := idx[m.ID()]; dup {
			return nil, nil, frusterr.NewFieldOutOfRange(path+".id", "material ids must be unique")
		}
		switch mt := m.(type) {
		case *SolidMaterial:
			if !mt.Color.IsFinite() || !in01Vec4(mt.Color) {
				return nil, nil, frusterr.NewFieldOutOfRange(path+".color", "components in [0,1]")
			}
			cp := *mt
			out[i] = &cp
		case *ScalarMappedMaterial:
			if _, ok := colormap.Lookup(mt.Colormap); !ok {
				return nil, nil, frusterr.NewFieldOutOfRange(path+".colormap", "one of viridis|plasma|inferno|magma|cividis")
			}
			if !isFiniteScalar(mt.RangeMin) || !isFiniteScalar(mt.RangeMax) || mt.RangeMin >= mt.RangeMax {
				return nil, nil, frusterr.NewFieldOutOfRange(path+".range", "min < max, finite")
			}
			if !mt.MissingColor.IsFinite() || !in01Vec4(mt.MissingColor) {
				return nil, nil, frusterr.NewFieldOutOfRange(path+".missing_color", "components in [0,1]")
			}
			cp := *mt
			out[i] = &cp
		default:
			return nil, nil, frusterr.NewFieldOutOfRange(path, "unknown material kind")
		}
		idx[m.ID()] = i
	}
	return out, idx, nil
}

func validateObjects(in []Renderable, worldBounds math32.Box3, materials []Material, materialIdx map[string]int) ([]Renderable, error) {
	out := make([]Renderable, len(in))
	for i, obj := range in {
		path := fmt.Sprintf("objects[%d]", i)
		cp, err := validateOne(path, obj, worldBounds, materials, materialIdx)
		if err != nil {
			return nil, err
		}
		out[i] = cp
	}
	return out, nil
}

func validateOne(path string, obj Renderable, worldBounds math32.Box3, materials []Material, materialIdx map[string]int) (Renderable, error) {
	if ref := obj.MaterialRef(); ref != "" {
		i, ok := materialIdx[ref]
		if !ok {
			return nil, frusterr.NewMaterialRefUnresolved(ref)
		}
		_ = materials[i]
	}

	switch o := obj.(type) {
	case *Points:
		if err := requireFinitePositions(path+".positions", o.Positions); err != nil {
			return nil, err
		}
		if err := requireScalarLength(path, o.Scalars, len(o.Positions)); err != nil {
			return nil, err
		}
		if o.HasSize && o.Size <= 0 {
			return nil, frusterr.NewFieldOutOfRange(path+".size", "size > 0")
		}
		if err := requireScalarsIfScalarMapped(path, o.MaterialID, o.Scalars, materials, materialIdx); err != nil {
			return nil, err
		}
		cp := *o
		return &cp, nil

	case *Lines:
		if len(o.Positions) < 2 {
			return nil, frusterr.NewFieldOutOfRange(path+".positions", ">= 2 ordered positions")
		}
		if err := requireFinitePositions(path+".positions", o.Positions); err != nil {
			return nil, err
		}
		if err := requireScalarLength(path, o.Scalars, len(o.Positions)); err != nil {
			return nil, err
		}
		if o.HasWidth && o.Width <= 0 {
			return nil, frusterr.NewFieldOutOfRange(path+".width", "width > 0")
		}
		if err := requireScalarsIfScalarMapped(path, o.MaterialID, o.Scalars, materials, materialIdx); err != nil {
			return nil, err
		}
		cp := *o
		return &cp, nil

	case *Curves:
		min := o.CurveType.MinControlPoints()
		if o.CurveType == CubicBezier && len(o.Control) != 4 {
			return nil, frusterr.NewLengthMismatch(path+".control", 4, len(o.Control))
		}
		if o.CurveType != CubicBezier && len(o.Control) < min {
			return nil, frusterr.NewFieldOutOfRange(path+".control", fmt.Sprintf(">= %d control points", min))
		}
		if err := requireFinitePositions(path+".control", o.Control); err != nil {
			return nil, err
		}
		if o.Segments < 1 {
			return nil, frusterr.NewFieldOutOfRange(path+".segments", "segments >= 1")
		}
		if o.HasWidth && o.Width <= 0 {
			return nil, frusterr.NewFieldOutOfRange(path+".width", "width > 0")
		}
		if err := requireScalarsIfScalarMapped(path, o.MaterialID, o.Scalars, materials, materialIdx); err != nil {
			return nil, err
		}
		cp := *o
		return &cp, nil

	case *Meshes:
		if err := requireFinitePositions(path+".positions", o.Positions); err != nil {
			return nil, err
		}
		if len(o.Indices)%3 != 0 {
			return nil, frusterr.NewFieldOutOfRange(path+".indices", "length must be a multiple of 3")
		}
		n := len(o.Positions)
		for j, idx := range o.Indices {
			if idx < 0 || int(idx) >= n {
				return nil, frusterr.NewIndexOutOfBounds(fmt.Sprintf("%s.indices[%d]", path, j), int(idx), n)
			}
		}
		if len(o.Normals) > 0 {
			if err := requireScalarLengthN(path+".normals", len(o.Normals), n); err != nil {
				return nil, err
			}
			if err := requireFinitePositions(path+".normals", o.Normals); err != nil {
				return nil, err
			}
		}
		if err := requireScalarLength(path, o.Scalars, n); err != nil {
			return nil, err
		}
		if err := requireScalarsIfScalarMapped(path, o.MaterialID, o.Scalars, materials, materialIdx); err != nil {
			return nil, err
		}
		cp := *o
		return &cp, nil

	case *AxisBundle:
		if !o.Bounds.IsFinite() {
			return nil, frusterr.NewFieldNotFinite(path + ".bounds")
		}
		if !o.Bounds.IsWellFormed() {
			return nil, frusterr.NewFieldOutOfRange(path+".bounds", "min <= max on every axis")
		}
		for _, axis := range o.Axes {
			d := dimOf(axis)
			if o.Bounds.Min.Dim(d) >= o.Bounds.Max.Dim(d) {
				return nil, frusterr.NewFieldOutOfRange(path+".bounds", "non-degenerate along each enabled axis")
			}
		}
		if !worldBounds.Contains(o.Bounds) {
			return nil, frusterr.NewBoundsNotContained(o.Id)
		}
		if o.MaterialID == "" {
			return nil, frusterr.NewFieldMissing(path + ".material_id")
		}
		mi, ok := materialIdx[o.MaterialID]
		if !ok {
			return nil, frusterr.NewMaterialRefUnresolved(o.MaterialID)
		}
		if materials[mi].Kind() != SolidMaterialKind {
			return nil, frusterr.NewMaterialKindMismatch(path, "solid", materials[mi].Kind().String())
		}
		if o.Ticks != nil {
			if err := validateTicks(path+".ticks", *o.Ticks, o.Axes, o.Bounds); err != nil {
				return nil, err
			}
		}
		cp := *o
		return &cp, nil
	}
	return nil, frusterr.NewFieldOutOfRange(path, "unknown renderable kind")
}

func validateTicks(path string, t TickSpec, axes []Axis, bounds math32.Box3) error {
	switch t.Mode {
	case TickFixed:
		for _, axis := range axes {
			d := dimOf(axis)
			lo, hi := bounds.Min.Dim(d), bounds.Max.Dim(d)
			for _, v := range t.Values {
				if !isFiniteScalar(v) || v < lo || v > hi {
					return frusterr.NewFieldOutOfRange(path+".values", "each tick value must lie within bounds")
				}
			}
		}
	case TickAuto:
		if t.Count < 1 {
			return frusterr.NewFieldOutOfRange(path+".count", "count >= 1")
		}
	default:
		return frusterr.NewFieldOutOfRange(path+".mode", "fixed or auto")
	}
	return nil
}

func validateLight(l Light) error {
	if !l.Direction.IsFinite() {
		return frusterr.NewFieldNotFinite("light.direction")
	}
	length := l.Direction.Length()
	if length < 0.99 || length > 1.01 {
		return frusterr.NewFieldOutOfRange("light.direction", "length in [0.99,1.01]")
	}
	if !isFiniteScalar(l.Intensity) || l.Intensity < 0 {
		return frusterr.NewFieldOutOfRange("light.intensity", "intensity >= 0, finite")
	}
	return nil
}

func requireFinitePositions(path string, positions []math32.Vector3) error {
	for i, p := range positions {
		if !p.IsFinite() {
			return frusterr.NewFieldNotFinite(fmt.Sprintf("%s[%d]", path, i))
		}
	}
	return nil
}

func requireScalarLength(path string, scalars []float32, vertexCount int) error {
	if scalars == nil {
		return nil
	}
	return requireScalarLengthN(path+".scalars", len(scalars), vertexCount)
}

func requireScalarLengthN(path string, got, want int) error {
	if got != want {
		return frusterr.NewLengthMismatch(path, want, got)
	}
	return nil
}

func requireScalarsIfScalarMapped(path, materialID string, scalars []float32, materials []Material, materialIdx map[string]int) error {
	if materialID == "" {
		return nil
	}
	mi, ok := materialIdx[materialID]
	if !ok {
		return nil // reported earlier by the generic material-ref check
	}
	if materials[mi].Kind() == ScalarMappedMaterialKind && len(scalars) == 0 {
		return frusterr.NewScalarsRequired(path)
	}
	return nil
}

func dimOf(a Axis) math32.Dims {
	switch a {
	case AxisX:
		return math32.X
	case AxisY:
		return math32.Y
	case AxisZ:
		return math32.Z
	}
	return math32.X
}

func in01Vec4(v math32.Vector4) bool {
	return inRange(v.X) && inRange(v.Y) && inRange(v.Z) && inRange(v.W)
}

func inRange(f float32) bool { return f >= 0 && f <= 1 }

func isFiniteScalar(f float32) bool {
	return math32.IsFinite(f)
}
