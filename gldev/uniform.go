// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gldev

import (
	"cogentcore.org/gdevice/glapi"
	"golang.org/x/exp/constraints"
)

// Scalar is a uniform component type.
type Scalar interface {
	constraints.Float | int32 | uint32
}

// UniformShape is the shape of one uniform element: a vector of Cols
// components when Rows is 1, or a Cols x Rows matrix.
type UniformShape struct {
	Cols, Rows int
}

// Vec returns the shape of an n-component vector.
func Vec(n int) UniformShape { return UniformShape{Cols: n, Rows: 1} }

// Mat returns the shape of a cols x rows matrix.
func Mat(cols, rows int) UniformShape { return UniformShape{Cols: cols, Rows: rows} }

// IsMatrix reports whether s is a matrix shape.
func (s UniformShape) IsMatrix() bool { return s.Rows > 1 }

// Len is the number of components of one element.
func (s UniformShape) Len() int { return s.Cols * s.Rows }

// SetUniform sets count elements of shape at loc of the active program
// from values, which must hold exactly count*shape.Len() components
// in column-major order. Matrices are float or double only and are
// never transposed. Values are not cached.
func SetUniform[T Scalar](dv *Device, loc glapi.Uniform, shape UniformShape, count int, values []T) error {
	const op = "set uniform"
	if count < 1 {
		return argErrorf(op, "count must be 1 or more, got %d", count)
	}
	if shape.IsMatrix() {
		if shape.Cols < 2 || shape.Cols > 4 || shape.Rows > 4 {
			return argErrorf(op, "invalid matrix shape %dx%d", shape.Cols, shape.Rows)
		}
	} else if shape.Rows != 1 || shape.Cols < 1 || shape.Cols > 4 {
		return argErrorf(op, "invalid vector shape %dx%d", shape.Cols, shape.Rows)
	}
	if len(values) != count*shape.Len() {
		return argErrorf(op, "expected %d values for %d elements of %dx%d, got %d",
			count*shape.Len(), count, shape.Cols, shape.Rows, len(values))
	}
	switch v := any(values).(type) {
	case []float32:
		if shape.IsMatrix() {
			dv.gl.UniformMatrixfv(loc, shape.Cols, shape.Rows, count, false, v)
		} else {
			dv.gl.Uniformfv(loc, shape.Cols, count, v)
		}
	case []float64:
		if shape.IsMatrix() {
			dv.gl.UniformMatrixdv(loc, shape.Cols, shape.Rows, count, false, v)
		} else {
			dv.gl.Uniformdv(loc, shape.Cols, count, v)
		}
	case []int32:
		if shape.IsMatrix() {
			return argErrorf(op, "integer matrices are not supported")
		}
		dv.gl.Uniformiv(loc, shape.Cols, count, v)
	case []uint32:
		if shape.IsMatrix() {
			return argErrorf(op, "unsigned integer matrices are not supported")
		}
		dv.gl.Uniformuiv(loc, shape.Cols, count, v)
	default:
		return argErrorf(op, "unsupported component type %T", values)
	}
	return dv.check(op)
}

// SetUniformBool sets count boolean vectors of arity components at loc,
// uploaded as integers.
func (dv *Device) SetUniformBool(loc glapi.Uniform, arity, count int, values []bool) error {
	iv := make([]int32, len(values))
	for i, b := range values {
		if b {
			iv[i] = 1
		}
	}
	return SetUniform(dv, loc, Vec(arity), count, iv)
}

// UniformKind is the component type used to set a uniform.
type UniformKind int32

const (
	KindFloat UniformKind = iota
	KindDouble
	KindInt
	KindUint
	KindBool
)

type uniformType struct {
	kind  UniformKind
	shape UniformShape
}

var uniformTypes = map[glapi.Enum]uniformType{
	glapi.FLOAT:             {KindFloat, Vec(1)},
	glapi.FLOAT_VEC2:        {KindFloat, Vec(2)},
	glapi.FLOAT_VEC3:        {KindFloat, Vec(3)},
	glapi.FLOAT_VEC4:        {KindFloat, Vec(4)},
	glapi.DOUBLE:            {KindDouble, Vec(1)},
	glapi.DOUBLE_VEC2:       {KindDouble, Vec(2)},
	glapi.DOUBLE_VEC3:       {KindDouble, Vec(3)},
	glapi.DOUBLE_VEC4:       {KindDouble, Vec(4)},
	glapi.INT:               {KindInt, Vec(1)},
	glapi.INT_VEC2:          {KindInt, Vec(2)},
	glapi.INT_VEC3:          {KindInt, Vec(3)},
	glapi.INT_VEC4:          {KindInt, Vec(4)},
	glapi.UNSIGNED_INT:      {KindUint, Vec(1)},
	glapi.UNSIGNED_INT_VEC2: {KindUint, Vec(2)},
	glapi.UNSIGNED_INT_VEC3: {KindUint, Vec(3)},
	glapi.UNSIGNED_INT_VEC4: {KindUint, Vec(4)},
	glapi.BOOL:              {KindBool, Vec(1)},
	glapi.BOOL_VEC2:         {KindBool, Vec(2)},
	glapi.BOOL_VEC3:         {KindBool, Vec(3)},
	glapi.BOOL_VEC4:         {KindBool, Vec(4)},
	glapi.FLOAT_MAT2:        {KindFloat, Mat(2, 2)},
	glapi.FLOAT_MAT3:        {KindFloat, Mat(3, 3)},
	glapi.FLOAT_MAT4:        {KindFloat, Mat(4, 4)},
	glapi.FLOAT_MAT2x3:      {KindFloat, Mat(2, 3)},
	glapi.FLOAT_MAT2x4:      {KindFloat, Mat(2, 4)},
	glapi.FLOAT_MAT3x2:      {KindFloat, Mat(3, 2)},
	glapi.FLOAT_MAT3x4:      {KindFloat, Mat(3, 4)},
	glapi.FLOAT_MAT4x2:      {KindFloat, Mat(4, 2)},
	glapi.FLOAT_MAT4x3:      {KindFloat, Mat(4, 3)},
	glapi.DOUBLE_MAT2:       {KindDouble, Mat(2, 2)},
	glapi.DOUBLE_MAT3:       {KindDouble, Mat(3, 3)},
	glapi.DOUBLE_MAT4:       {KindDouble, Mat(4, 4)},
	glapi.DOUBLE_MAT2x3:     {KindDouble, Mat(2, 3)},
	glapi.DOUBLE_MAT2x4:     {KindDouble, Mat(2, 4)},
	glapi.DOUBLE_MAT3x2:     {KindDouble, Mat(3, 2)},
	glapi.DOUBLE_MAT3x4:     {KindDouble, Mat(3, 4)},
	glapi.DOUBLE_MAT4x2:     {KindDouble, Mat(4, 2)},
	glapi.DOUBLE_MAT4x3:     {KindDouble, Mat(4, 3)},
}

// ShapeOf returns the component kind and shape used to set a uniform
// of the reflected type tag typ. Samplers and images are set as a
// single int, the unit. ok is false for unknown tags.
func ShapeOf(typ glapi.Enum) (kind UniformKind, shape UniformShape, ok bool) {
	if ut, ok := uniformTypes[typ]; ok {
		return ut.kind, ut.shape, true
	}
	switch typ {
	case glapi.SAMPLER_1D, glapi.SAMPLER_2D, glapi.SAMPLER_3D, glapi.SAMPLER_CUBE,
		glapi.SAMPLER_1D_SHADOW, glapi.SAMPLER_2D_SHADOW, glapi.SAMPLER_2D_ARRAY,
		glapi.SAMPLER_BUFFER, glapi.INT_SAMPLER_2D, glapi.UNSIGNED_INT_SAMPLER_2D,
		glapi.SAMPLER_2D_MULTISAMPLE, glapi.IMAGE_2D:
		return KindInt, Vec(1), true
	}
	return 0, UniformShape{}, false
}
