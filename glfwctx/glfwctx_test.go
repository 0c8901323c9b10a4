// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glfwctx

import (
	"image"
	"testing"

	"cogentcore.org/gdevice/gldev"
	"github.com/stretchr/testify/assert"
)

var _ gldev.Context = (*Context)(nil)

func TestDefaultOptions(t *testing.T) {
	o := DefaultOptions()
	assert.Equal(t, 4, o.Major)
	assert.Equal(t, 6, o.Minor)
	assert.Equal(t, image.Pt(64, 64), o.Size)
	assert.False(t, o.Debug)
}

func TestHooks(t *testing.T) {
	var c Context
	n := 0
	c.OnDeactivate(func() { n++ })
	c.OnDeactivate(func() { n += 10 })
	c.runHooks()
	assert.Equal(t, 11, n)
	c.Destroy()
	assert.Equal(t, 11, n, "destroying without a window does nothing")
}

func TestContext(t *testing.T) {
	t.Skip("Need display on CI")
}
