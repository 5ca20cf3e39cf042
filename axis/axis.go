// Copyright (c) 2026, The Frustum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package axis expands an AxisBundle into the Lines and
// ExpandedLabels primitives a renderer actually draws: one main Line
// per enabled axis, one short perpendicular tick Line per tick value,
// and one ExpandedLabel per tick when labels are requested.
package axis

import (
	"fmt"

	"github.com/frustum-viz/frustum/math32"
	"github.com/frustum-viz/frustum/scenepkg"
)

// tickLength is the half-length, in world units, of a tick mark's
// perpendicular stroke (see tickMark for the dimension it runs along).
const tickLength = 0.05

// Expanded holds the geometry and labels produced by Expand.
type Expanded struct {
	Main   []*scenepkg.Lines
	Ticks  []*scenepkg.Lines
	Labels []*scenepkg.ExpandedLabel
}

// Expand generates the main axis lines, tick marks, and tick labels for
// every axis named in b.Axes, in the fixed order b.Axes lists them.
func Expand(b *scenepkg.AxisBundle) Expanded {
	var out Expanded
	for _, ax := range b.Axes {
		d := dim(ax)
		lo, hi := b.Bounds.Min.Dim(d), b.Bounds.Max.Dim(d)

		out.Main = append(out.Main, &scenepkg.Lines{
			Id:         b.Id + "/" + axisName(ax),
			Positions:  []math32.Vector3{axisPoint(b.Bounds.Min, d, lo), axisPoint(b.Bounds.Min, d, hi)},
			MaterialID: b.MaterialID,
		})

		if b.Ticks == nil {
			continue
		}
		values := tickValues(*b.Ticks, lo, hi)
		for i, v := range values {
			pos := axisPoint(b.Bounds.Min, d, v)
			out.Ticks = append(out.Ticks, tickMark(b.Id, axisName(ax), i, d, pos, b.MaterialID))

			if b.Label != nil && b.Label.Show {
				out.Labels = append(out.Labels, &scenepkg.ExpandedLabel{
					Text:       formatTick(b.Label.Format, v),
					Anchor:     pos.Add(b.Label.Offset),
					Height:     12,
					MaterialID: b.MaterialID,
				})
			}
		}
	}
	return out
}

func dim(a scenepkg.Axis) math32.Dims {
	switch a {
	case scenepkg.AxisX:
		return math32.X
	case scenepkg.AxisY:
		return math32.Y
	default:
		return math32.Z
	}
}

func axisName(a scenepkg.Axis) string {
	switch a {
	case scenepkg.AxisX:
		return "x"
	case scenepkg.AxisY:
		return "y"
	default:
		return "z"
	}
}

// axisPoint returns base with dimension d replaced by v.
func axisPoint(base math32.Vector3, d math32.Dims, v float32) math32.Vector3 {
	p := base
	p.SetDim(d, v)
	return p
}

// tickValues returns the tick positions for spec, either the fixed
// values verbatim or the auto formula lo + k*(hi-lo)/(n-1).
func tickValues(spec scenepkg.TickSpec, lo, hi float32) []float32 {
	if spec.Mode == scenepkg.TickFixed {
		return spec.Values
	}
	n := spec.Count
	if n < 1 {
		return nil
	}
	if n == 1 {
		return []float32{lo}
	}
	values := make([]float32, n)
	for k := 0; k < n; k++ {
		values[k] = lo + float32(k)*(hi-lo)/float32(n-1)
	}
	return values
}

// tickMark builds a short Line perpendicular to axis d, centered at
// pos, along the next dimension in cyclic x -> y -> z -> x order.
func tickMark(bundleID, axisLabel string, index int, d math32.Dims, pos math32.Vector3, materialID string) *scenepkg.Lines {
	perp := perpendicularDim(d)
	a := axisPoint(pos, perp, pos.Dim(perp)-tickLength)
	b := axisPoint(pos, perp, pos.Dim(perp)+tickLength)
	return &scenepkg.Lines{
		Id:         fmt.Sprintf("%s/%s/tick%d", bundleID, axisLabel, index),
		Positions:  []math32.Vector3{a, b},
		MaterialID: materialID,
	}
}

func perpendicularDim(d math32.Dims) math32.Dims {
	switch d {
	case math32.X:
		return math32.Y
	case math32.Y:
		return math32.Z
	default:
		return math32.X
	}
}

// formatTick renders v with format, defaulting to a "%g"-equivalent
// rendering when format is empty.
func formatTick(format string, v float32) string {
	if format == "" {
		return fmt.Sprintf("%g", v)
	}
	return fmt.Sprintf(format, v)
}
