// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gldev

import (
	"testing"

	"cogentcore.org/gdevice/glapi"
	"cogentcore.org/gdevice/glapi/glfake"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testVertex = `#version 460
layout(location = 0) in vec3 pos;
in vec2 uv;
uniform mat4 mvp;
uniform float weights[4];
void main() { gl_Position = mvp * vec4(pos, 1); }
`
	testFragment = `#version 460
uniform sampler2D tex;
uniform mat4 mvp;
out vec4 color;
void main() { color = vec4(1); }
`
	testCompute = `#version 460
layout(local_size_x = 64) in;
layout(std430, binding = 2) buffer Particles {
	vec4 data[];
};
void main() {}
`
	badFragment = `#version 460
#error missing color output
void main() {}
`
)

func TestCreateProgram(t *testing.T) {
	f := glfake.New()
	dv, _ := newTestDevice(t, f)
	p, err := dv.CreateProgram(ProgramSources{Vertex: testVertex, Fragment: testFragment})
	require.NoError(t, err)
	assert.NotZero(t, p)
	assert.Equal(t, 1, f.Live(glfake.KindProgram))
	assert.Zero(t, f.Live(glfake.KindShader), "shaders are deleted once linked")

	us, err := dv.ReflectUniforms(p)
	require.NoError(t, err)
	assert.Equal(t, []ProgramInput{
		{Name: "mvp", Length: 1, Type: glapi.FLOAT_MAT4, Location: 0},
		{Name: "weights", Length: 4, Type: glapi.FLOAT, Location: 1},
		{Name: "tex", Length: 1, Type: glapi.SAMPLER_2D, Location: 2},
	}, us)

	as, err := dv.ReflectAttributes(p)
	require.NoError(t, err)
	require.Len(t, as, 2)
	assert.Equal(t, ProgramInput{Name: "uv", Length: 1, Type: glapi.FLOAT_VEC2, Location: 1}, as[1])

	blocks, err := dv.ReflectStorageBlocks(p)
	require.NoError(t, err)
	assert.Empty(t, blocks)

	require.NoError(t, dv.UseProgram(p))
	require.NoError(t, dv.UseProgram(p))
	assert.Equal(t, 1, f.Count("UseProgram"))
	require.NoError(t, dv.DeleteProgram(p))
	assert.Zero(t, f.Live(glfake.KindProgram))
	require.NoError(t, dv.UseProgram(0))
	assert.Equal(t, 2, f.Count("UseProgram"))
}

func TestCreateComputeProgram(t *testing.T) {
	f := glfake.New()
	dv, _ := newTestDevice(t, f)
	p, err := dv.CreateProgram(ProgramSources{Compute: testCompute})
	require.NoError(t, err)
	blocks, err := dv.ReflectStorageBlocks(p)
	require.NoError(t, err)
	assert.Equal(t, []StorageBlock{{Name: "Particles", Binding: 2, DataSize: 16}}, blocks)

	f = glfake.New()
	f.Version = "4.1.0 glfake"
	dv, _ = newTestDevice(t, f)
	p, err = dv.CreateProgram(ProgramSources{Compute: testCompute})
	require.NoError(t, err)
	f.ClearCalls()
	blocks, err = dv.ReflectStorageBlocks(p)
	require.NoError(t, err)
	assert.Empty(t, blocks)
	assert.Empty(t, f.Calls)
}

func TestCreateProgramCompileFailure(t *testing.T) {
	f := glfake.New()
	dv, _ := newTestDevice(t, f)
	_, err := dv.CreateProgram(ProgramSources{Vertex: testVertex, Fragment: badFragment})
	var ce *ShaderCompileError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "fragment", ce.Stage)
	assert.Contains(t, ce.Log, "missing color output")
	assert.Zero(t, f.Live(glfake.KindShader))
	assert.Zero(t, f.Live(glfake.KindProgram))
	assert.Zero(t, f.Count("CreateProgram"))
}

func TestCreateProgramLinkFailure(t *testing.T) {
	f := glfake.New()
	dv, _ := newTestDevice(t, f)
	f.LinkLog = "error: varying uv not written"
	_, err := dv.CreateProgram(ProgramSources{Vertex: testVertex, Fragment: testFragment})
	var le *ShaderLinkError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, f.LinkLog, le.Log)
	assert.Zero(t, f.Live(glfake.KindShader))
	assert.Zero(t, f.Live(glfake.KindProgram))
}

func TestCreateProgramArguments(t *testing.T) {
	f := glfake.New()
	dv, _ := newTestDevice(t, f)
	for _, src := range []ProgramSources{
		{},
		{Geometry: "void main() {}", Fragment: testFragment},
		{Vertex: testVertex, Compute: testCompute},
	} {
		_, err := dv.CreateProgram(src)
		var ae *ArgumentError
		assert.ErrorAs(t, err, &ae)
	}
	assert.Empty(t, f.Calls)
}
