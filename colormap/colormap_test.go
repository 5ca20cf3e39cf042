// Copyright (c) 2026, The Frustum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colormap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	for _, name := range []string{"viridis", "plasma", "inferno", "magma", "cividis"} {
		m, ok := Lookup(name)
		require.True(t, ok, name)
		assert.GreaterOrEqual(t, len(m.Colors), 2, name)
	}
	_, ok := Lookup("not-a-map")
	assert.False(t, ok)
}

func TestSampleEndpoints(t *testing.T) {
	m, _ := Lookup("viridis")
	first := m.Colors[0]
	last := m.Colors[len(m.Colors)-1]
	mid := m.Colors[len(m.Colors)/2]

	assert.Equal(t, first, m.Sample(0))
	assert.Equal(t, last, m.Sample(1))
	assert.Equal(t, mid, m.Sample(0.5))
}

func TestSampleClampsOutOfRange(t *testing.T) {
	m, _ := Lookup("plasma")
	assert.Equal(t, m.Colors[0], m.Sample(-5))
	assert.Equal(t, m.Colors[len(m.Colors)-1], m.Sample(5))
}

func TestNamesSorted(t *testing.T) {
	names := Names()
	for i := 1; i < len(names); i++ {
		assert.Less(t, names[i-1], names[i])
	}
}
