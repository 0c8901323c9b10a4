// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gldev

import (
	"strings"

	"cogentcore.org/gdevice/base/errors"
	"cogentcore.org/gdevice/glapi"
)

// ProgramSources are the GLSL sources of the stages of a program.
// An empty source means the stage is absent.
type ProgramSources struct {
	Vertex   string
	Geometry string
	Fragment string
	Compute  string
}

type stage struct {
	name string
	typ  glapi.Enum
	src  string
}

func (ps *ProgramSources) stages() []stage {
	all := []stage{
		{"vertex", glapi.VERTEX_SHADER, ps.Vertex},
		{"geometry", glapi.GEOMETRY_SHADER, ps.Geometry},
		{"fragment", glapi.FRAGMENT_SHADER, ps.Fragment},
		{"compute", glapi.COMPUTE_SHADER, ps.Compute},
	}
	var sts []stage
	for _, st := range all {
		if st.src != "" {
			sts = append(sts, st)
		}
	}
	return sts
}

func (ps *ProgramSources) validate() error {
	const op = "create program"
	switch {
	case ps.Vertex == "" && ps.Geometry == "" && ps.Fragment == "" && ps.Compute == "":
		return argErrorf(op, "no shader stages")
	case ps.Geometry != "" && ps.Vertex == "":
		return argErrorf(op, "geometry stage requires a vertex stage")
	case ps.Compute != "" && (ps.Vertex != "" || ps.Geometry != "" || ps.Fragment != ""):
		return argErrorf(op, "compute stage cannot be combined with graphics stages")
	}
	return nil
}

// CreateProgram compiles the stages of src and links them into a
// program. A failed stage gives a [ShaderCompileError] naming it and
// a failed link gives a [ShaderLinkError], both carrying the driver
// log. Shader objects never outlive the call, and the program is
// deleted if linking fails.
func (dv *Device) CreateProgram(src ProgramSources) (glapi.Program, error) {
	const op = "create program"
	if err := src.validate(); err != nil {
		return 0, err
	}
	var shaders []glapi.Shader
	defer func() {
		for _, s := range shaders {
			dv.gl.DeleteShader(s)
		}
	}()
	for _, st := range src.stages() {
		s := dv.gl.CreateShader(st.typ)
		if err := dv.check(op); err != nil {
			return 0, err
		}
		if s == 0 {
			return 0, &DriverError{Op: op, Desc: "driver returned no " + st.name + " shader", Caller: errors.CallerInfo(0)}
		}
		shaders = append(shaders, s)
		dv.gl.ShaderSource(s, st.src)
		dv.gl.CompileShader(s)
		if dv.gl.GetShaderi(s, glapi.COMPILE_STATUS) == 0 {
			return 0, &ShaderCompileError{Stage: st.name, Log: dv.gl.GetShaderInfoLog(s)}
		}
		if err := dv.check(op); err != nil {
			return 0, err
		}
	}

	p, err := create(dv, op, dv.gl.CreateProgram)
	if err != nil {
		return 0, err
	}
	for _, s := range shaders {
		dv.gl.AttachShader(p, s)
	}
	dv.gl.LinkProgram(p)
	if dv.gl.GetProgrami(p, glapi.LINK_STATUS) == 0 {
		log := dv.gl.GetProgramInfoLog(p)
		dv.gl.DeleteProgram(p)
		return 0, &ShaderLinkError{Log: log}
	}
	if err := dv.check(op); err != nil {
		dv.gl.DeleteProgram(p)
		return 0, err
	}
	return p, nil
}

// UseProgram makes p the active program; 0 means none. The active
// program is cached.
func (dv *Device) UseProgram(p glapi.Program) error {
	if dv.state.program.is(p) {
		return nil
	}
	dv.gl.UseProgram(p)
	if err := dv.check("use program"); err != nil {
		return err
	}
	dv.state.program = known(p)
	return nil
}

// DeleteProgram releases a program handle.
func (dv *Device) DeleteProgram(p glapi.Program) error {
	dv.gl.DeleteProgram(p)
	if dv.state.program.is(p) {
		dv.state.program = cached[glapi.Program]{}
	}
	return dv.check("delete program")
}

// ProgramInput is an active uniform or vertex attribute of a program.
type ProgramInput struct {

	// Name is the declared name, without a trailing [0] for arrays.
	Name string

	// Length is the number of array elements; 1 for non-arrays.
	Length int

	// Type is the GL type tag, such as FLOAT_VEC3.
	Type glapi.Enum

	// Location is the uniform or attribute location.
	Location int
}

// ReflectUniforms returns the active uniforms of p in driver order.
func (dv *Device) ReflectUniforms(p glapi.Program) ([]ProgramInput, error) {
	n := dv.gl.GetProgrami(p, glapi.ACTIVE_UNIFORMS)
	ins := make([]ProgramInput, 0, n)
	for i := range n {
		name, size, typ := dv.gl.GetActiveUniform(p, i)
		name = strings.TrimSuffix(name, "[0]")
		loc := dv.gl.GetUniformLocation(p, name)
		ins = append(ins, ProgramInput{Name: name, Length: size, Type: typ, Location: int(loc)})
	}
	if err := dv.check("reflect uniforms"); err != nil {
		return nil, err
	}
	return ins, nil
}

// ReflectAttributes returns the active vertex attributes of p in
// driver order.
func (dv *Device) ReflectAttributes(p glapi.Program) ([]ProgramInput, error) {
	n := dv.gl.GetProgrami(p, glapi.ACTIVE_ATTRIBUTES)
	ins := make([]ProgramInput, 0, n)
	for i := range n {
		name, size, typ := dv.gl.GetActiveAttrib(p, i)
		name = strings.TrimSuffix(name, "[0]")
		loc := dv.gl.GetAttribLocation(p, name)
		ins = append(ins, ProgramInput{Name: name, Length: size, Type: typ, Location: loc})
	}
	if err := dv.check("reflect attributes"); err != nil {
		return nil, err
	}
	return ins, nil
}

// StorageBlock is an active shader storage block of a program.
type StorageBlock struct {
	Name     string
	Binding  int
	DataSize int
}

// ReflectStorageBlocks returns the active shader storage blocks of p.
// It returns none, without calling the driver, when the device does
// not support shader storage.
func (dv *Device) ReflectStorageBlocks(p glapi.Program) ([]StorageBlock, error) {
	if !dv.Caps.Features.Has(FeatureShaderStorage) {
		return nil, nil
	}
	props := []glapi.Enum{glapi.BUFFER_BINDING, glapi.BUFFER_DATA_SIZE}
	n := dv.gl.GetProgramInterfacei(p, glapi.SHADER_STORAGE_BLOCK, glapi.ACTIVE_RESOURCES)
	blocks := make([]StorageBlock, 0, n)
	for i := range n {
		name := dv.gl.GetProgramResourceName(p, glapi.SHADER_STORAGE_BLOCK, i)
		vals := dv.gl.GetProgramResourceiv(p, glapi.SHADER_STORAGE_BLOCK, i, props)
		sb := StorageBlock{Name: name}
		if len(vals) == len(props) {
			sb.Binding, sb.DataSize = vals[0], vals[1]
		}
		blocks = append(blocks, sb)
	}
	if err := dv.check("reflect storage blocks"); err != nil {
		return nil, err
	}
	return blocks, nil
}
