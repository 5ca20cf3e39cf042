// Copyright (c) 2026, The Frustum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scenepkg

import "github.com/frustum-viz/frustum/math32"

// MaterialKind discriminates the Material tagged variant.
type MaterialKind int

const (
	SolidMaterialKind MaterialKind = iota
	ScalarMappedMaterialKind
)

func (k MaterialKind) String() string {
	if k == ScalarMappedMaterialKind {
		return "scalar_mapped"
	}
	return "solid"
}

// Material is the tagged variant over SolidMaterial and
// ScalarMappedMaterial, keyed by Id for reference resolution.
type Material interface {
	ID() string
	Kind() MaterialKind
}

// SolidMaterial is a flat RGBA color, components in [0,1].
type SolidMaterial struct {
	Id    string
	Color math32.Vector4 // R,G,B,A
}

func (m *SolidMaterial) ID() string          { return m.Id }
func (m *SolidMaterial) Kind() MaterialKind  { return SolidMaterialKind }

// ScalarMappedMaterial maps a per-vertex scalar through a named colormap.
type ScalarMappedMaterial struct {
	Id           string
	Colormap     string
	RangeMin     float32
	RangeMax     float32
	Clamp        bool // default true
	MissingColor math32.Vector4
}

func (m *ScalarMappedMaterial) ID() string         { return m.Id }
func (m *ScalarMappedMaterial) Kind() MaterialKind { return ScalarMappedMaterialKind }
