// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gldev

import (
	"fmt"
	"image"
	"unsafe"

	"cogentcore.org/gdevice/base/errors"
	"cogentcore.org/gdevice/glapi"
)

// BindDrawFramebuffer binds fb, or the default framebuffer when fb is
// 0, as the draw target, and sets the viewport to cover size.
func (dv *Device) BindDrawFramebuffer(fb glapi.Framebuffer, size image.Point) error {
	dv.gl.BindFramebuffer(glapi.DRAW_FRAMEBUFFER, fb)
	dv.gl.Viewport(0, 0, size.X, size.Y)
	return dv.check("bind draw framebuffer")
}

// BindReadFramebuffer binds fb, or the default framebuffer when fb is
// 0, as the read target. Attachments are made to the read target.
func (dv *Device) BindReadFramebuffer(fb glapi.Framebuffer) error {
	dv.gl.BindFramebuffer(glapi.READ_FRAMEBUFFER, fb)
	return dv.check("bind read framebuffer")
}

// AttachColor attaches level 0 of the 2D texture t to color slot i
// of the read framebuffer.
func (dv *Device) AttachColor(t glapi.Texture, i int) error {
	if i < 0 || (dv.Caps.MaxDrawBuffers > 0 && i >= dv.Caps.MaxDrawBuffers) {
		return argErrorf("attach color", "color attachment %d out of range [0, %d)", i, dv.Caps.MaxDrawBuffers)
	}
	dv.gl.FramebufferTexture2D(glapi.READ_FRAMEBUFFER, glapi.COLOR_ATTACHMENT0+glapi.Enum(i), glapi.TEXTURE_2D, t, 0)
	return dv.check("attach color")
}

// AttachDepthTexture attaches level 0 of the 2D texture t as the
// depth buffer of the read framebuffer.
func (dv *Device) AttachDepthTexture(t glapi.Texture) error {
	dv.gl.FramebufferTexture2D(glapi.READ_FRAMEBUFFER, glapi.DEPTH_ATTACHMENT, glapi.TEXTURE_2D, t, 0)
	return dv.check("attach depth texture")
}

// AttachDepthRenderbuffer creates a 24-bit depth renderbuffer of the
// given size and attaches it to the read framebuffer. The caller owns
// the returned renderbuffer. Nothing is left allocated on failure.
func (dv *Device) AttachDepthRenderbuffer(size image.Point) (rb glapi.Renderbuffer, err error) {
	const op = "attach depth renderbuffer"
	if size.X <= 0 || size.Y <= 0 {
		return 0, argErrorf(op, "size must be greater than 0, got %v", size)
	}
	rb, err = dv.CreateRenderbuffer()
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			dv.gl.DeleteRenderbuffer(rb)
			rb = 0
		}
	}()
	dv.gl.BindRenderbuffer(glapi.RENDERBUFFER, rb)
	dv.gl.RenderbufferStorage(glapi.RENDERBUFFER, glapi.DEPTH_COMPONENT24, size.X, size.Y)
	dv.gl.FramebufferRenderbuffer(glapi.READ_FRAMEBUFFER, glapi.DEPTH_ATTACHMENT, glapi.RENDERBUFFER, rb)
	dv.gl.BindRenderbuffer(glapi.RENDERBUFFER, 0)
	err = dv.check(op)
	return
}

// SetDrawBuffers enables the color slots of the draw framebuffer
// positionally: slot i is drawn to when enabled[i] is true.
func (dv *Device) SetDrawBuffers(enabled []bool) error {
	if dv.Caps.MaxDrawBuffers > 0 && len(enabled) > dv.Caps.MaxDrawBuffers {
		return argErrorf("set draw buffers", "%d draw buffers exceed the limit of %d", len(enabled), dv.Caps.MaxDrawBuffers)
	}
	bufs := make([]glapi.Enum, len(enabled))
	for i, on := range enabled {
		if on {
			bufs[i] = glapi.COLOR_ATTACHMENT0 + glapi.Enum(i)
		} else {
			bufs[i] = glapi.NONE
		}
	}
	dv.gl.DrawBuffers(bufs)
	return dv.check("set draw buffers")
}

// CheckFramebuffer returns an error unless the framebuffer bound to
// target is complete.
func (dv *Device) CheckFramebuffer(target glapi.Enum) error {
	status := dv.gl.CheckFramebufferStatus(target)
	if err := dv.check("check framebuffer"); err != nil {
		return err
	}
	if status != glapi.FRAMEBUFFER_COMPLETE {
		return &DriverError{Op: "check framebuffer", Code: status,
			Desc: fmt.Sprintf("framebuffer incomplete: 0x%04X", uint32(status)), Caller: errors.CallerInfo(0)}
	}
	return nil
}

func (dv *Device) readPixels(op string, r image.Rectangle, format glapi.Enum) ([]float32, error) {
	if r.Empty() {
		return nil, argErrorf(op, "empty read rectangle %v", r)
	}
	data := make([]float32, r.Dx()*r.Dy()*glapi.FormatComponents(format))
	dv.gl.PixelStorei(glapi.PACK_ALIGNMENT, 1)
	dv.gl.ReadPixels(r.Min.X, r.Min.Y, r.Dx(), r.Dy(), format, glapi.FLOAT, unsafe.Pointer(&data[0]))
	if err := dv.checkSkip(op, 2); err != nil {
		return nil, err
	}
	return data, nil
}

// ReadColor returns the RGBA values of rectangle r of color slot i of
// the read framebuffer, row by row from the bottom. Reads go through
// slot 0, so for i > 0 the texture in slot i is attached to slot 0
// for the read and slot 0 is restored afterwards, whether or not the
// read succeeds.
func (dv *Device) ReadColor(r image.Rectangle, i int) (data []float32, err error) {
	const op = "read color"
	if i < 0 {
		return nil, argErrorf(op, "negative color attachment %d", i)
	}
	if i > 0 {
		slot := glapi.COLOR_ATTACHMENT0 + glapi.Enum(i)
		orig := glapi.Texture(dv.gl.GetFramebufferAttachmentParameteri(glapi.READ_FRAMEBUFFER, glapi.COLOR_ATTACHMENT0, glapi.FRAMEBUFFER_ATTACHMENT_OBJECT_NAME))
		t := glapi.Texture(dv.gl.GetFramebufferAttachmentParameteri(glapi.READ_FRAMEBUFFER, slot, glapi.FRAMEBUFFER_ATTACHMENT_OBJECT_NAME))
		if err := dv.check(op); err != nil {
			return nil, err
		}
		dv.gl.FramebufferTexture2D(glapi.READ_FRAMEBUFFER, glapi.COLOR_ATTACHMENT0, glapi.TEXTURE_2D, t, 0)
		defer func() {
			dv.gl.FramebufferTexture2D(glapi.READ_FRAMEBUFFER, glapi.COLOR_ATTACHMENT0, glapi.TEXTURE_2D, orig, 0)
			if rerr := dv.check("restore color attachment"); rerr != nil && err == nil {
				data, err = nil, rerr
			}
		}()
		if err := dv.check(op); err != nil {
			return nil, err
		}
	}
	return dv.readPixels(op, r, glapi.RGBA)
}

// ReadDepth returns the depth values of rectangle r of the read
// framebuffer, row by row from the bottom.
func (dv *Device) ReadDepth(r image.Rectangle) ([]float32, error) {
	return dv.readPixels("read depth", r, glapi.DEPTH_COMPONENT)
}
