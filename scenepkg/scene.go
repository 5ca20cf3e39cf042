// Copyright (c) 2026, The Frustum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scenepkg implements the scene model and validator: an
// immutable scene graph with structural and numeric invariants.
// A Scene is constructed only by Validate, which walks a
// SceneDesc once, in the fixed order version -> camera -> world_bounds
// -> materials -> objects -> light, and either returns a fully valid,
// deeply immutable Scene or rejects it with a *frusterr.Error naming
// the offending field.
package scenepkg

import "github.com/frustum-viz/frustum/math32"

// SchemaVersion is the one schema version this package accepts.
const SchemaVersion = "frustum/scene/v1"

// SceneDesc is the mutable, pre-validation description of a scene: the
// in-memory form of the canonical JSON encoding. It is never rendered directly;
// Validate turns it into an immutable Scene.
type SceneDesc struct {
	Version     string
	Camera      Camera
	WorldBounds math32.Box3
	Objects     []Renderable
	Materials   []Material
	Light       *Light // optional
}

// Scene is a scene graph that has passed Validate and is thereafter
// treated as deeply immutable: every accessor returns either a value
// type or a slice that the Scene never mutates internally. A Scene with
// no objects or no materials is valid but non-renderable (see
// Scene.Renderable).
type Scene struct {
	version     string
	camera      Camera
	worldBounds math32.Box3
	objects     []Renderable
	materials   []Material
	materialIdx map[string]int // Id -> index into materials, resolved once at validation
	light       *Light
}

func (s *Scene) Version() string            { return s.version }
func (s *Scene) Camera() Camera             { return s.camera }
func (s *Scene) WorldBounds() math32.Box3   { return s.worldBounds }
func (s *Scene) Objects() []Renderable      { return s.objects }
func (s *Scene) Materials() []Material      { return s.materials }
func (s *Scene) Light() *Light              { return s.light }

// Renderable reports whether the scene has at least one object and one
// material; a scene failing this check is valid but produces no
// geometry pass output.
func (s *Scene) Renderable() bool {
	return len(s.objects) > 0 && len(s.materials) > 0
}

// MaterialByID resolves a material reference to its concrete value in
// O(1), using the index built once at validation time rather than a
// linear scan.
func (s *Scene) MaterialByID(id string) (Material, bool) {
	idx, ok := s.materialIdx[id]
	if !ok {
		return nil, false
	}
	return s.materials[idx], true
}
