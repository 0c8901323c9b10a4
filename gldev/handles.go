// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gldev

import (
	"cogentcore.org/gdevice/base/errors"
	"cogentcore.org/gdevice/glapi"
)

// Handles are pass-through: the device does not track their liveness,
// and deleting a handle not obtained from the matching Create call,
// or deleting one twice, is undefined at the driver level.

// create issues gen and returns its handle, or a [DriverError] if
// the driver reported an error or returned the null handle.
func create[H ~uint32](dv *Device, op string, gen func() H) (H, error) {
	h := gen()
	if err := dv.checkSkip(op, 2); err != nil {
		return 0, err
	}
	if h == 0 {
		return 0, &DriverError{Op: op, Desc: "driver returned no handle", Caller: errors.CallerInfo(1)}
	}
	return h, nil
}

// CreateBuffer returns a new buffer handle.
func (dv *Device) CreateBuffer() (glapi.Buffer, error) {
	return create(dv, "create buffer", dv.gl.GenBuffer)
}

// DeleteBuffer releases a buffer handle.
func (dv *Device) DeleteBuffer(b glapi.Buffer) error {
	dv.gl.DeleteBuffer(b)
	return dv.check("delete buffer")
}

// CreateVertexArray returns a new vertex array handle.
func (dv *Device) CreateVertexArray() (glapi.VertexArray, error) {
	return create(dv, "create vertex array", dv.gl.GenVertexArray)
}

// DeleteVertexArray releases a vertex array handle.
func (dv *Device) DeleteVertexArray(va glapi.VertexArray) error {
	dv.gl.DeleteVertexArray(va)
	return dv.check("delete vertex array")
}

// CreateTexture returns a new texture handle.
func (dv *Device) CreateTexture() (glapi.Texture, error) {
	return create(dv, "create texture", dv.gl.GenTexture)
}

// DeleteTexture releases a texture handle.
func (dv *Device) DeleteTexture(t glapi.Texture) error {
	dv.gl.DeleteTexture(t)
	return dv.check("delete texture")
}

// CreateFramebuffer returns a new framebuffer handle.
func (dv *Device) CreateFramebuffer() (glapi.Framebuffer, error) {
	return create(dv, "create framebuffer", dv.gl.GenFramebuffer)
}

// DeleteFramebuffer releases a framebuffer handle.
func (dv *Device) DeleteFramebuffer(fb glapi.Framebuffer) error {
	dv.gl.DeleteFramebuffer(fb)
	return dv.check("delete framebuffer")
}

// CreateRenderbuffer returns a new renderbuffer handle.
func (dv *Device) CreateRenderbuffer() (glapi.Renderbuffer, error) {
	return create(dv, "create renderbuffer", dv.gl.GenRenderbuffer)
}

// DeleteRenderbuffer releases a renderbuffer handle.
func (dv *Device) DeleteRenderbuffer(rb glapi.Renderbuffer) error {
	dv.gl.DeleteRenderbuffer(rb)
	return dv.check("delete renderbuffer")
}
