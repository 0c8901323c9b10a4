// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gldev

import (
	"errors"
	"testing"

	"cogentcore.org/gdevice/glapi"
	"cogentcore.org/gdevice/glapi/glfake"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boundBuffer(t *testing.T, dv *Device) glapi.Buffer {
	t.Helper()
	b, err := dv.CreateBuffer()
	require.NoError(t, err)
	require.NoError(t, dv.BindBuffer(glapi.ARRAY_BUFFER, b))
	return b
}

func TestBufferRoundTrip(t *testing.T) {
	f := glfake.New()
	dv, _ := newTestDevice(t, f)
	b := boundBuffer(t, dv)

	n, err := dv.UploadBuffer(glapi.ARRAY_BUFFER, []byte{1, 2, 3, 4}, glapi.STATIC_DRAW)
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	require.NoError(t, dv.WriteBuffer(glapi.ARRAY_BUFFER, []byte{0xFF, 0xFF}, 1))
	assert.Equal(t, []byte{1, 0xFF, 0xFF, 4}, f.BufferContents(b))

	f.ClearCalls()
	err = dv.WriteBuffer(glapi.ARRAY_BUFFER, []byte{0xFF, 0xFF}, 3)
	var re *RangeError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, 4, re.Capacity)
	assert.Zero(t, f.Count("BufferSubData"))

	require.NoError(t, dv.WriteBuffer(glapi.ARRAY_BUFFER, []byte{9, 9}, 2), "a write ending at capacity fits")
	assert.Equal(t, []byte{1, 0xFF, 9, 9}, f.BufferContents(b))

	var ae *ArgumentError
	assert.ErrorAs(t, dv.WriteBuffer(glapi.ARRAY_BUFFER, []byte{1}, -1), &ae)
}

func TestReserveBuffer(t *testing.T) {
	f := glfake.New()
	dv, _ := newTestDevice(t, f)
	b := boundBuffer(t, dv)
	f.ClearCalls()

	var ae *ArgumentError
	_, err := dv.ReserveBuffer(glapi.ARRAY_BUFFER, -1, glapi.DYNAMIC_DRAW)
	require.ErrorAs(t, err, &ae)
	assert.Empty(t, f.Calls)

	n, err := dv.ReserveBuffer(glapi.ARRAY_BUFFER, 16, Usage(Dynamic, Draw))
	require.NoError(t, err)
	assert.Equal(t, 16, n)
	assert.Len(t, f.BufferContents(b), 16)
	assert.Equal(t, glapi.DYNAMIC_DRAW, f.Named("BufferData")[0].Args[3])

	size, err := dv.BufferSize(glapi.ARRAY_BUFFER)
	require.NoError(t, err)
	assert.Equal(t, 16, size)
}

func TestUploadWithoutBuffer(t *testing.T) {
	f := glfake.New()
	dv, _ := newTestDevice(t, f)
	_, err := dv.UploadBuffer(glapi.ARRAY_BUFFER, []byte{1}, glapi.STATIC_DRAW)
	var de *DriverError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, glapi.INVALID_OPERATION, de.Code)
}

func TestMapBuffer(t *testing.T) {
	f := glfake.New()
	dv, _ := newTestDevice(t, f)
	b := boundBuffer(t, dv)
	_, err := dv.UploadBuffer(glapi.ARRAY_BUFFER, []byte{1, 2, 3, 4}, glapi.DYNAMIC_DRAW)
	require.NoError(t, err)

	m, err := dv.MapBuffer(glapi.ARRAY_BUFFER, 0)
	require.NoError(t, err)
	assert.Empty(t, m)
	assert.Zero(t, f.Count("MapBuffer"))
	require.NoError(t, dv.UnmapBuffer(glapi.ARRAY_BUFFER), "unmapping an empty map does nothing")
	assert.Zero(t, f.Count("UnmapBuffer"))

	_, err = dv.MapBuffer(glapi.ARRAY_BUFFER, 5)
	var re *RangeError
	assert.ErrorAs(t, err, &re)

	err = dv.WithMappedBuffer(glapi.ARRAY_BUFFER, 4, func(m []byte) error {
		m[0] = 42
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, byte(42), f.BufferContents(b)[0])
	assert.False(t, f.Mapped(glapi.ARRAY_BUFFER))

	fail := errors.New("fill failed")
	err = dv.WithMappedBuffer(glapi.ARRAY_BUFFER, 2, func(m []byte) error { return fail })
	assert.ErrorIs(t, err, fail)
	assert.False(t, f.Mapped(glapi.ARRAY_BUFFER), "unmapped after failure")

	assert.Panics(t, func() {
		dv.WithMappedBuffer(glapi.ARRAY_BUFFER, 2, func(m []byte) error { panic("fill panicked") })
	})
	assert.False(t, f.Mapped(glapi.ARRAY_BUFFER), "unmapped after panic")

	require.NoError(t, dv.WithMappedBuffer(glapi.ARRAY_BUFFER, 0, func(m []byte) error { return nil }))
	assert.Equal(t, 3, f.Count("UnmapBuffer"), "an empty map is not unmapped natively")

	f.UnmapCorrupt = true
	_, err = dv.MapBuffer(glapi.ARRAY_BUFFER, 4)
	require.NoError(t, err)
	var de *DriverError
	assert.ErrorAs(t, dv.UnmapBuffer(glapi.ARRAY_BUFFER), &de)
}

func TestBufferEdits(t *testing.T) {
	f := glfake.New()
	dv, _ := newTestDevice(t, f)
	b := boundBuffer(t, dv)
	_, err := dv.ReserveBuffer(glapi.ARRAY_BUFFER, 8, glapi.DYNAMIC_DRAW)
	require.NoError(t, err)
	f.ClearCalls()

	be := &BufferEdits{Buffer: b}
	data := []byte{3, 3}
	be.Write(data, 6)
	be.Write([]byte{1, 1}, 0)
	be.Write([]byte{2}, 2)
	data[0] = 9
	assert.Equal(t, 3, be.Len())

	require.NoError(t, be.Flush(dv))
	assert.Zero(t, be.Len())
	subs := f.Named("BufferSubData")
	require.Len(t, subs, 2)
	assert.Equal(t, []any{glapi.ARRAY_BUFFER, 0, []byte{1, 1, 2}}, subs[0].Args)
	assert.Equal(t, []any{glapi.ARRAY_BUFFER, 6, []byte{3, 3}}, subs[1].Args)
	assert.Equal(t, []byte{1, 1, 2, 0, 0, 0, 3, 3}, f.BufferContents(b))

	be.Write([]byte{1, 2, 3}, 7)
	var re *RangeError
	assert.ErrorAs(t, be.Flush(dv), &re)
	assert.Zero(t, be.Len(), "dropped after a failed flush")

	f.ClearCalls()
	require.NoError(t, be.Flush(dv))
	assert.Empty(t, f.Calls)
}

func TestHandles(t *testing.T) {
	f := glfake.New()
	dv, _ := newTestDevice(t, f)
	b, err := dv.CreateBuffer()
	require.NoError(t, err)
	va, err := dv.CreateVertexArray()
	require.NoError(t, err)
	tex, err := dv.CreateTexture()
	require.NoError(t, err)
	fb, err := dv.CreateFramebuffer()
	require.NoError(t, err)
	rb, err := dv.CreateRenderbuffer()
	require.NoError(t, err)
	assert.Equal(t, 1, f.Live(glfake.KindBuffer))

	require.NoError(t, dv.DeleteBuffer(b))
	require.NoError(t, dv.DeleteVertexArray(va))
	require.NoError(t, dv.DeleteTexture(tex))
	require.NoError(t, dv.DeleteFramebuffer(fb))
	require.NoError(t, dv.DeleteRenderbuffer(rb))
	for _, k := range []string{glfake.KindBuffer, glfake.KindVertexArray, glfake.KindTexture, glfake.KindFramebuffer, glfake.KindRenderbuffer} {
		assert.Zero(t, f.Live(k), k)
	}

	f.FailOn("GenTexture", glapi.OUT_OF_MEMORY)
	_, err = dv.CreateTexture()
	var de *DriverError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "create texture", de.Op)
	assert.Equal(t, glapi.OUT_OF_MEMORY, de.Code)
}
