// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gldev

import "cogentcore.org/gdevice/glapi"

func checkDraw(op string, count, instances int) error {
	if instances < 0 {
		return argErrorf(op, "instance count must be 0 or more, got %d", instances)
	}
	if count < 0 {
		return argErrorf(op, "vertex count must be 0 or more, got %d", count)
	}
	return nil
}

// DrawElements draws count indices of type indexType from the bound
// element buffer, starting offset bytes in. It draws instances
// instances, and nothing when instances is 0.
func (dv *Device) DrawElements(mode glapi.Enum, count, offset int, indexType glapi.Enum, instances int) error {
	const op = "draw elements"
	if err := checkDraw(op, count, instances); err != nil {
		return err
	}
	switch {
	case instances == 0:
		return nil
	case instances == 1:
		dv.gl.DrawElements(mode, count, indexType, offset)
	default:
		dv.gl.DrawElementsInstanced(mode, count, indexType, offset, instances)
	}
	return dv.check(op)
}

// DrawArrays draws count vertices starting at first. It draws
// instances instances, and nothing when instances is 0.
func (dv *Device) DrawArrays(mode glapi.Enum, first, count, instances int) error {
	const op = "draw arrays"
	if err := checkDraw(op, count, instances); err != nil {
		return err
	}
	if first < 0 {
		return argErrorf(op, "first vertex must be 0 or more, got %d", first)
	}
	switch {
	case instances == 0:
		return nil
	case instances == 1:
		dv.gl.DrawArrays(mode, first, count)
	default:
		dv.gl.DrawArraysInstanced(mode, first, count, instances)
	}
	return dv.check(op)
}

// DispatchCompute runs the active compute program over x*y*z work
// groups.
func (dv *Device) DispatchCompute(x, y, z uint32) error {
	dv.gl.DispatchCompute(x, y, z)
	return dv.check("dispatch compute")
}

// MemoryBarrier orders memory accesses of the barrier domains in bits,
// such as SHADER_STORAGE_BARRIER_BIT, against later commands. bits
// are passed through unvalidated.
func (dv *Device) MemoryBarrier(bits glapi.Enum) error {
	dv.gl.MemoryBarrier(bits)
	return dv.check("memory barrier")
}

// ClearCache makes shader image writes visible to later image access
// and texture updates visible to later texture reads. It does nothing
// if neither is requested.
func (dv *Device) ClearCache(image, texture bool) error {
	var bits glapi.Enum
	if image {
		bits |= glapi.SHADER_IMAGE_ACCESS_BARRIER_BIT
	}
	if texture {
		bits |= glapi.TEXTURE_UPDATE_BARRIER_BIT
	}
	if bits == 0 {
		return nil
	}
	return dv.MemoryBarrier(bits)
}

// SetImageUnit binds level 0 of t to image unit unit for read and
// write access as format.
func (dv *Device) SetImageUnit(unit int, t glapi.Texture, format glapi.Enum) error {
	const op = "set image unit"
	if err := dv.require(op, FeatureImageUnit); err != nil {
		return err
	}
	if unit < 0 || unit >= dv.Caps.MaxImageUnits {
		return argErrorf(op, "image unit %d out of range [0, %d)", unit, dv.Caps.MaxImageUnits)
	}
	dv.gl.BindImageTexture(unit, t, 0, false, 0, glapi.READ_WRITE, format)
	return dv.check(op)
}

// SetStorageBufferUnit binds size bytes of b from offset to shader
// storage binding index. A size of 0 binds the whole buffer, and a
// b of 0 unbinds the index.
func (dv *Device) SetStorageBufferUnit(index int, b glapi.Buffer, offset, size int) error {
	const op = "set storage buffer unit"
	if err := dv.require(op, FeatureShaderStorage); err != nil {
		return err
	}
	if index < 0 || index >= dv.Caps.MaxStorageBufferBindings {
		return argErrorf(op, "storage buffer binding %d out of range [0, %d)", index, dv.Caps.MaxStorageBufferBindings)
	}
	if offset < 0 || size < 0 {
		return argErrorf(op, "offset and size must be 0 or more")
	}
	if b == 0 || size == 0 {
		if offset != 0 && b != 0 {
			return argErrorf(op, "offset %d requires a size", offset)
		}
		dv.gl.BindBufferBase(glapi.SHADER_STORAGE_BUFFER, index, b)
	} else {
		dv.gl.BindBufferRange(glapi.SHADER_STORAGE_BUFFER, index, b, offset, size)
	}
	return dv.check(op)
}
