// Copyright (c) 2026, The Frustum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package frusterr defines the typed error taxonomy: every
// validation, generation, and render failure surfaces as a *Error whose
// Kind names the taxonomy entry, rather than an opaque formatted string,
// so callers can errors.As to *Error, switch on Kind, and recover the
// offending field path and violated constraint programmatically.
package frusterr

import "fmt"

// Kind discriminates the error taxonomy.
type Kind int

const (
	SchemaVersionUnsupported Kind = iota
	FieldMissing
	FieldNotFinite
	FieldOutOfRange
	LengthMismatch
	IndexOutOfBounds
	MaterialRefUnresolved
	MaterialKindMismatch
	ScalarsRequired
	BoundsNotContained
	CategoricalVolumeRejected
	VolumeNonFinite
	VolumeDimensionTooSmall
	RenderConfigInvalid
	GpuReadbackFailed
)

func (k Kind) String() string {
	switch k {
	case SchemaVersionUnsupported:
		return "SchemaVersionUnsupported"
	case FieldMissing:
		return "FieldMissing"
	case FieldNotFinite:
		return "FieldNotFinite"
	case FieldOutOfRange:
		return "FieldOutOfRange"
	case LengthMismatch:
		return "LengthMismatch"
	case IndexOutOfBounds:
		return "IndexOutOfBounds"
	case MaterialRefUnresolved:
		return "MaterialRefUnresolved"
	case MaterialKindMismatch:
		return "MaterialKindMismatch"
	case ScalarsRequired:
		return "ScalarsRequired"
	case BoundsNotContained:
		return "BoundsNotContained"
	case CategoricalVolumeRejected:
		return "CategoricalVolumeRejected"
	case VolumeNonFinite:
		return "VolumeNonFinite"
	case VolumeDimensionTooSmall:
		return "VolumeDimensionTooSmall"
	case RenderConfigInvalid:
		return "RenderConfigInvalid"
	case GpuReadbackFailed:
		return "GpuReadbackFailed"
	}
	return "Unknown"
}

// Error is the single concrete error type backing the whole taxonomy.
// Fields not relevant to a particular Kind are left zero.
type Error struct {
	Kind       Kind
	Path       string // field path, e.g. "objects[2].positions"
	Constraint string // violated constraint, e.g. "near < far"
	Expected   int
	Actual     int
	Index      int
	Bound      int
	Ref        string
	Where      string
	Required   string
	Got        string
	Axis       int
}

func (e *Error) Error() string {
	switch e.Kind {
	case SchemaVersionUnsupported:
		return fmt.Sprintf("%s: unsupported schema version %q", e.Kind, e.Ref)
	case FieldMissing:
		return fmt.Sprintf("%s: %s is required", e.Kind, e.Path)
	case FieldNotFinite:
		return fmt.Sprintf("%s: %s must be finite", e.Kind, e.Path)
	case FieldOutOfRange:
		return fmt.Sprintf("%s: %s violates %s", e.Kind, e.Path, e.Constraint)
	case LengthMismatch:
		return fmt.Sprintf("%s: %s expected length %d, got %d", e.Kind, e.Path, e.Expected, e.Actual)
	case IndexOutOfBounds:
		return fmt.Sprintf("%s: %s index %d out of bound %d", e.Kind, e.Path, e.Index, e.Bound)
	case MaterialRefUnresolved:
		return fmt.Sprintf("%s: material reference %q does not resolve", e.Kind, e.Ref)
	case MaterialKindMismatch:
		return fmt.Sprintf("%s: %s requires %s material, got %s", e.Kind, e.Where, e.Required, e.Got)
	case ScalarsRequired:
		return fmt.Sprintf("%s: %s references a scalar-mapped material but carries no scalars", e.Kind, e.Path)
	case BoundsNotContained:
		return fmt.Sprintf("%s: axis bundle %q bounds are not contained in world_bounds", e.Kind, e.Ref)
	case CategoricalVolumeRejected:
		return fmt.Sprintf("%s: categorical volume data requires allow_categorical", e.Kind)
	case VolumeNonFinite:
		return fmt.Sprintf("%s: volume values contain NaN or Inf", e.Kind)
	case VolumeDimensionTooSmall:
		return fmt.Sprintf("%s: volume dimension %d is smaller than 2", e.Kind, e.Axis)
	case RenderConfigInvalid:
		return fmt.Sprintf("%s: render config field %s is invalid", e.Kind, e.Path)
	case GpuReadbackFailed:
		return fmt.Sprintf("%s: framebuffer readback failed", e.Kind)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Path)
}

// constructors, one per taxonomy entry.

func NewSchemaVersionUnsupported(version string) *Error {
	return &Error{Kind: SchemaVersionUnsupported, Ref: version}
}

func NewFieldMissing(path string) *Error {
	return &Error{Kind: FieldMissing, Path: path}
}

func NewFieldNotFinite(path string) *Error {
	return &Error{Kind: FieldNotFinite, Path: path}
}

func NewFieldOutOfRange(path, constraint string) *Error {
	return &Error{Kind: FieldOutOfRange, Path: path, Constraint: constraint}
}

func NewLengthMismatch(path string, expected, actual int) *Error {
	return &Error{Kind: LengthMismatch, Path: path, Expected: expected, Actual: actual}
}

func NewIndexOutOfBounds(path string, index, bound int) *Error {
	return &Error{Kind: IndexOutOfBounds, Path: path, Index: index, Bound: bound}
}

func NewMaterialRefUnresolved(ref string) *Error {
	return &Error{Kind: MaterialRefUnresolved, Ref: ref}
}

func NewMaterialKindMismatch(where, required, got string) *Error {
	return &Error{Kind: MaterialKindMismatch, Where: where, Required: required, Got: got}
}

func NewScalarsRequired(primitive string) *Error {
	return &Error{Kind: ScalarsRequired, Path: primitive}
}

func NewBoundsNotContained(bundle string) *Error {
	return &Error{Kind: BoundsNotContained, Ref: bundle}
}

func NewCategoricalVolumeRejected() *Error {
	return &Error{Kind: CategoricalVolumeRejected}
}

func NewVolumeNonFinite() *Error {
	return &Error{Kind: VolumeNonFinite}
}

func NewVolumeDimensionTooSmall(axis int) *Error {
	return &Error{Kind: VolumeDimensionTooSmall, Axis: axis}
}

func NewRenderConfigInvalid(field string) *Error {
	return &Error{Kind: RenderConfigInvalid, Path: field}
}

func NewGpuReadbackFailed() *Error {
	return &Error{Kind: GpuReadbackFailed}
}
