// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gldev

import "cogentcore.org/gdevice/glapi"

// Attribute is the layout of one vertex attribute in the bound
// ARRAY_BUFFER.
type Attribute struct {

	// Location is the attribute location in the program.
	Location int

	// Components is the number of components per vertex, 1 to 4.
	Components int

	// Type is the scalar type of each component.
	Type glapi.Enum

	// Stride is the byte distance between consecutive vertices;
	// 0 means tightly packed.
	Stride int

	// Offset is the byte offset of the first component.
	Offset int

	// Divisor, when non-nil, is the number of instances drawn
	// before the attribute advances.
	Divisor *int
}

// ConfigureAttribute sets the layout of an attribute of the bound
// vertex array and enables it. Integer types are read as integers;
// all others are read as floats without normalization.
func (dv *Device) ConfigureAttribute(at Attribute) error {
	const op = "configure attribute"
	if at.Components < 1 || at.Components > 4 {
		return argErrorf(op, "component count must be 1 to 4, got %d", at.Components)
	}
	if at.Location < 0 || at.Stride < 0 || at.Offset < 0 {
		return argErrorf(op, "location, stride and offset must be 0 or more")
	}
	if glapi.IsIntegerType(at.Type) {
		dv.gl.VertexAttribIPointer(at.Location, at.Components, at.Type, at.Stride, at.Offset)
	} else {
		dv.gl.VertexAttribPointer(at.Location, at.Components, at.Type, false, at.Stride, at.Offset)
	}
	dv.gl.EnableVertexAttribArray(at.Location)
	if at.Divisor != nil {
		dv.gl.VertexAttribDivisor(at.Location, *at.Divisor)
	}
	return dv.check(op)
}
