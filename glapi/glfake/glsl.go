// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glfake

import (
	"regexp"
	"strconv"
	"strings"

	"cogentcore.org/gdevice/glapi"
)

// glslTypes maps GLSL type names to their reflected type tags.
var glslTypes = map[string]glapi.Enum{
	"float": glapi.FLOAT, "vec2": glapi.FLOAT_VEC2, "vec3": glapi.FLOAT_VEC3, "vec4": glapi.FLOAT_VEC4,
	"double": glapi.DOUBLE, "dvec2": glapi.DOUBLE_VEC2, "dvec3": glapi.DOUBLE_VEC3, "dvec4": glapi.DOUBLE_VEC4,
	"int": glapi.INT, "ivec2": glapi.INT_VEC2, "ivec3": glapi.INT_VEC3, "ivec4": glapi.INT_VEC4,
	"uint": glapi.UNSIGNED_INT, "uvec2": glapi.UNSIGNED_INT_VEC2, "uvec3": glapi.UNSIGNED_INT_VEC3, "uvec4": glapi.UNSIGNED_INT_VEC4,
	"bool": glapi.BOOL, "bvec2": glapi.BOOL_VEC2, "bvec3": glapi.BOOL_VEC3, "bvec4": glapi.BOOL_VEC4,
	"mat2": glapi.FLOAT_MAT2, "mat3": glapi.FLOAT_MAT3, "mat4": glapi.FLOAT_MAT4,
	"mat2x3": glapi.FLOAT_MAT2x3, "mat2x4": glapi.FLOAT_MAT2x4, "mat3x2": glapi.FLOAT_MAT3x2,
	"mat3x4": glapi.FLOAT_MAT3x4, "mat4x2": glapi.FLOAT_MAT4x2, "mat4x3": glapi.FLOAT_MAT4x3,
	"dmat2": glapi.DOUBLE_MAT2, "dmat3": glapi.DOUBLE_MAT3, "dmat4": glapi.DOUBLE_MAT4,
	"dmat2x3": glapi.DOUBLE_MAT2x3, "dmat2x4": glapi.DOUBLE_MAT2x4, "dmat3x2": glapi.DOUBLE_MAT3x2,
	"dmat3x4": glapi.DOUBLE_MAT3x4, "dmat4x2": glapi.DOUBLE_MAT4x2, "dmat4x3": glapi.DOUBLE_MAT4x3,
	"sampler1D": glapi.SAMPLER_1D, "sampler2D": glapi.SAMPLER_2D, "sampler3D": glapi.SAMPLER_3D,
	"samplerCube": glapi.SAMPLER_CUBE, "sampler2DShadow": glapi.SAMPLER_2D_SHADOW,
	"sampler2DArray": glapi.SAMPLER_2D_ARRAY, "image2D": glapi.IMAGE_2D,
}

// variable is an active uniform or attribute.
type variable struct {
	name string
	size int
	typ  glapi.Enum
}

// block is a shader storage block.
type block struct {
	name    string
	binding int
}

var (
	layoutRe  = regexp.MustCompile(`^layout\s*\(([^)]*)\)\s*`)
	bindingRe = regexp.MustCompile(`binding\s*=\s*(\d+)`)
	declRe    = regexp.MustCompile(`^(\w+)\s+(\w+)\s*(?:\[(\d+)\])?\s*;`)
	blockRe   = regexp.MustCompile(`^buffer\s+(\w+)`)
)

// scanSource extracts the uniforms, vertex inputs and storage blocks
// declared at the top level of a shader source, in order of
// declaration. It understands just enough GLSL for tests.
func scanSource(src string, stage glapi.Enum) (uniforms, attribs []variable, blocks []block) {
	for _, line := range strings.Split(src, "\n") {
		line = strings.TrimSpace(line)
		binding := 0
		if m := layoutRe.FindStringSubmatch(line); m != nil {
			if b := bindingRe.FindStringSubmatch(m[1]); b != nil {
				binding, _ = strconv.Atoi(b[1])
			}
			line = line[len(m[0]):]
		}
		switch {
		case strings.HasPrefix(line, "uniform "):
			if v, ok := parseDecl(strings.TrimPrefix(line, "uniform ")); ok {
				uniforms = append(uniforms, v)
			}
		case strings.HasPrefix(line, "in ") && stage == glapi.VERTEX_SHADER:
			if v, ok := parseDecl(strings.TrimPrefix(line, "in ")); ok {
				attribs = append(attribs, v)
			}
		case strings.HasPrefix(line, "buffer "):
			if m := blockRe.FindStringSubmatch(line); m != nil {
				blocks = append(blocks, block{name: m[1], binding: binding})
			}
		}
	}
	return
}

func parseDecl(s string) (variable, bool) {
	m := declRe.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return variable{}, false
	}
	typ, ok := glslTypes[m[1]]
	if !ok {
		return variable{}, false
	}
	v := variable{name: m[2], size: 1, typ: typ}
	if m[3] != "" {
		v.size, _ = strconv.Atoi(m[3])
		v.name += "[0]"
	}
	return v, true
}

// compileError returns the info log for a source that fails to
// compile, or "" if it compiles. Sources containing an #error
// directive or no main function fail.
func compileError(src string) string {
	for i, line := range strings.Split(src, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "#error") {
			return "ERROR: 0:" + strconv.Itoa(i+1) + ": '#error' : " + strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "#error"))
		}
	}
	if !strings.Contains(src, "main(") {
		return "ERROR: 0:1: '' : function 'main' is not defined"
	}
	return ""
}
