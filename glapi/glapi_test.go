// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVersion(t *testing.T) {
	v, es, err := ParseVersion("4.6.0 NVIDIA 535.54.03")
	require.NoError(t, err)
	assert.False(t, es)
	assert.Equal(t, Version{4, 6}, v)
	assert.True(t, v.AtLeast(4, 5))
	assert.True(t, v.AtLeast(3, 9))
	assert.False(t, v.AtLeast(4, 7))
	assert.Equal(t, "4.6", v.String())

	v, es, err = ParseVersion("OpenGL ES 3.2 Mesa 23.0.4")
	require.NoError(t, err)
	assert.True(t, es)
	assert.Equal(t, Version{3, 2}, v)

	_, _, err = ParseVersion("garbage")
	assert.Error(t, err)
}

func TestExtensions(t *testing.T) {
	ex := Extensions{"GL_ARB_clip_control", "GL_EXT_texture_filter_anisotropic"}
	assert.True(t, ex.Has("GL_ARB_clip_control"))
	assert.True(t, ex.Has("GL_ARB_texture_filter_anisotropic", "GL_EXT_texture_filter_anisotropic"))
	assert.False(t, ex.Has("GL_ARB_shader_storage_buffer_object"))
}

func TestTypes(t *testing.T) {
	for _, typ := range []Enum{BYTE, UNSIGNED_BYTE, SHORT, UNSIGNED_SHORT, INT, UNSIGNED_INT} {
		assert.True(t, IsIntegerType(typ))
	}
	for _, typ := range []Enum{FLOAT, DOUBLE, HALF_FLOAT, FIXED} {
		assert.False(t, IsIntegerType(typ))
	}
	assert.Equal(t, 16, PixelSize(RGBA, FLOAT))
	assert.Equal(t, 3, PixelSize(RGB, UNSIGNED_BYTE))
	assert.Equal(t, 4, PixelSize(DEPTH_STENCIL, UNSIGNED_INT_24_8))
	assert.Equal(t, 0, PixelSize(Enum(0x1234), FLOAT))
	assert.Equal(t, "GL_INVALID_VALUE", ErrorString(INVALID_VALUE))
	assert.Equal(t, "GL_NO_ERROR", ErrorString(NO_ERROR))
}
