// Copyright (c) 2026, The Frustum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frusterr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorAs(t *testing.T) {
	var err error = NewLengthMismatch("objects[0].scalars", 4, 3)

	var target *Error
	assert.True(t, errors.As(err, &target))
	assert.Equal(t, LengthMismatch, target.Kind)
	assert.Equal(t, "objects[0].scalars", target.Path)
	assert.Contains(t, err.Error(), "expected length 4, got 3")
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "BoundsNotContained", BoundsNotContained.String())
	assert.Equal(t, "Unknown", Kind(999).String())
}
