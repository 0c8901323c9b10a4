// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gldev

import (
	"image"
	"testing"

	"cogentcore.org/gdevice/glapi"
	"cogentcore.org/gdevice/glapi/glfake"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// colorFramebuffer binds a framebuffer with two color textures for
// both reading and drawing.
func colorFramebuffer(t *testing.T, dv *Device) (glapi.Framebuffer, glapi.Texture, glapi.Texture) {
	t.Helper()
	fb, err := dv.CreateFramebuffer()
	require.NoError(t, err)
	t0, err := dv.CreateTexture()
	require.NoError(t, err)
	t1, err := dv.CreateTexture()
	require.NoError(t, err)
	require.NoError(t, dv.BindReadFramebuffer(fb))
	require.NoError(t, dv.BindDrawFramebuffer(fb, image.Pt(4, 4)))
	require.NoError(t, dv.AttachColor(t0, 0))
	require.NoError(t, dv.AttachColor(t1, 1))
	return fb, t0, t1
}

func TestBindDrawFramebuffer(t *testing.T) {
	f := glfake.New()
	dv, _ := newTestDevice(t, f)
	require.NoError(t, dv.BindDrawFramebuffer(0, image.Pt(640, 480)))
	assert.Equal(t, []any{glapi.DRAW_FRAMEBUFFER, glapi.Framebuffer(0)}, f.Named("BindFramebuffer")[0].Args)
	assert.Equal(t, []any{0, 0, 640, 480}, f.Named("Viewport")[0].Args)
}

func TestReadColorRestoresAttachment(t *testing.T) {
	f := glfake.New()
	dv, _ := newTestDevice(t, f)
	fb, t0, t1 := colorFramebuffer(t, dv)
	require.NoError(t, dv.CheckFramebuffer(glapi.READ_FRAMEBUFFER))

	r := image.Rect(0, 0, 2, 1)
	data, err := dv.ReadColor(r, 1)
	require.NoError(t, err)
	assert.Equal(t, []float32{float32(t1), float32(t1), float32(t1), float32(t1), float32(t1), float32(t1), float32(t1), float32(t1)}, data)
	assert.Equal(t, uint32(t0), f.Attachment(fb, glapi.COLOR_ATTACHMENT0))

	data, err = dv.ReadColor(r, 0)
	require.NoError(t, err)
	assert.Equal(t, float32(t0), data[0])

	f.FailOn("ReadPixels", glapi.INVALID_OPERATION)
	_, err = dv.ReadColor(r, 1)
	var de *DriverError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "read color", de.Op)
	assert.Equal(t, uint32(t0), f.Attachment(fb, glapi.COLOR_ATTACHMENT0), "restored after a failed read")
	assert.Equal(t, uint32(t1), f.Attachment(fb, glapi.COLOR_ATTACHMENT0+1))

	var ae *ArgumentError
	_, err = dv.ReadColor(image.Rectangle{}, 0)
	assert.ErrorAs(t, err, &ae)
}

func TestReadDepth(t *testing.T) {
	f := glfake.New()
	dv, _ := newTestDevice(t, f)
	fb, _, _ := colorFramebuffer(t, dv)
	dt, err := dv.CreateTexture()
	require.NoError(t, err)
	require.NoError(t, dv.AttachDepthTexture(dt))
	assert.Equal(t, uint32(dt), f.Attachment(fb, glapi.DEPTH_ATTACHMENT))

	data, err := dv.ReadDepth(image.Rect(0, 0, 3, 1))
	require.NoError(t, err)
	assert.Equal(t, []float32{float32(dt), float32(dt), float32(dt)}, data)
}

func TestAttachDepthRenderbuffer(t *testing.T) {
	f := glfake.New()
	dv, _ := newTestDevice(t, f)
	fb, _, _ := colorFramebuffer(t, dv)

	rb, err := dv.AttachDepthRenderbuffer(image.Pt(4, 4))
	require.NoError(t, err)
	assert.Equal(t, uint32(rb), f.Attachment(fb, glapi.DEPTH_ATTACHMENT))
	assert.Equal(t, []any{glapi.RENDERBUFFER, glapi.DEPTH_COMPONENT24, 4, 4}, f.Named("RenderbufferStorage")[0].Args)

	f.FailOn("RenderbufferStorage", glapi.OUT_OF_MEMORY)
	rb, err = dv.AttachDepthRenderbuffer(image.Pt(4, 4))
	assert.Error(t, err)
	assert.Zero(t, rb)
	assert.Equal(t, 1, f.Live(glfake.KindRenderbuffer), "failed renderbuffer is deleted")
}

func TestSetDrawBuffers(t *testing.T) {
	f := glfake.New()
	dv, _ := newTestDevice(t, f)
	require.NoError(t, dv.SetDrawBuffers([]bool{true, false, true}))
	assert.Equal(t, []any{[]glapi.Enum{glapi.COLOR_ATTACHMENT0, glapi.NONE, glapi.COLOR_ATTACHMENT0 + 2}}, f.Named("DrawBuffers")[0].Args)

	var ae *ArgumentError
	assert.ErrorAs(t, dv.SetDrawBuffers(make([]bool, 9)), &ae)
}

func TestCheckFramebuffer(t *testing.T) {
	f := glfake.New()
	dv, _ := newTestDevice(t, f)
	fb, err := dv.CreateFramebuffer()
	require.NoError(t, err)
	require.NoError(t, dv.BindReadFramebuffer(fb))
	err = dv.CheckFramebuffer(glapi.READ_FRAMEBUFFER)
	var de *DriverError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, glapi.FRAMEBUFFER_INCOMPLETE_MISSING_ATTACHMENT, de.Code)
}
