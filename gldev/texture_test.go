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

func TestMinFilterFor(t *testing.T) {
	tests := []struct {
		mip    MipmapSelection
		filter Filter
		want   glapi.Enum
	}{
		{MipmapNone, FilterNearest, glapi.NEAREST},
		{MipmapNone, FilterLinear, glapi.LINEAR},
		{MipmapNearest, FilterNearest, glapi.NEAREST_MIPMAP_NEAREST},
		{MipmapNearest, FilterLinear, glapi.LINEAR_MIPMAP_NEAREST},
		{MipmapLinear, FilterNearest, glapi.NEAREST_MIPMAP_LINEAR},
		{MipmapLinear, FilterLinear, glapi.LINEAR_MIPMAP_LINEAR},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, MinFilterFor(tt.mip, tt.filter))
	}
	assert.Equal(t, glapi.LINEAR, MagFilterFor(FilterLinear))
}

func TestUploadTexture2D(t *testing.T) {
	f := glfake.New()
	dv, _ := newTestDevice(t, f)
	size := image.Pt(3, 2)

	require.NoError(t, dv.UploadTexture2D(glapi.TEXTURE_2D, glapi.RGB8, size, glapi.RGB, glapi.UNSIGNED_BYTE, make([]byte, 18)))
	assert.Equal(t, []string{"PixelStorei", "TexImage2D", "GetError"}, f.Names())
	assert.Equal(t, []any{glapi.UNPACK_ALIGNMENT, 1}, f.Calls[0].Args)
	assert.Equal(t, 18, f.Calls[1].Args[7])

	f.ClearCalls()
	require.NoError(t, dv.UploadTexture2D(glapi.TEXTURE_2D, glapi.RGBA32F, size, glapi.RGBA, glapi.FLOAT, nil))
	assert.Equal(t, 0, f.Named("TexImage2D")[0].Args[7])

	f.ClearCalls()
	var ae *ArgumentError
	assert.ErrorAs(t, dv.UploadTexture2D(glapi.TEXTURE_2D, glapi.RGB8, size, glapi.RGB, glapi.UNSIGNED_BYTE, make([]byte, 17)), &ae)
	assert.ErrorAs(t, dv.UploadTexture2D(glapi.TEXTURE_2D, glapi.RGB8, image.Pt(0, 2), glapi.RGB, glapi.UNSIGNED_BYTE, nil), &ae)
	assert.Empty(t, f.Calls)

	require.NoError(t, dv.GenerateMipmaps(glapi.TEXTURE_2D))
	assert.Equal(t, 1, f.Count("GenerateMipmap"))
}

func TestSetTextureParameters(t *testing.T) {
	f := glfake.New()
	dv, _ := newTestDevice(t, f)
	p := TextureParameters{
		MinFilter:   MinFilterFor(MipmapLinear, FilterLinear),
		MagFilter:   glapi.LINEAR,
		WrapS:       glapi.CLAMP_TO_EDGE,
		BorderColor: [4]float32{0, 0, 0, 1},
		Anisotropy:  64,
	}
	require.NoError(t, dv.SetTextureParameters(glapi.TEXTURE_1D, p))
	params := capArgsAt(f, "TexParameteri", 1)
	assert.Equal(t, []glapi.Enum{glapi.TEXTURE_MIN_FILTER, glapi.TEXTURE_MAG_FILTER, glapi.TEXTURE_WRAP_S}, params)
	aniso := f.Named("TexParameterf")
	require.Len(t, aniso, 1)
	assert.Equal(t, float32(16), aniso[0].Args[2], "clamped to the device maximum")

	f.ClearCalls()
	wrap := glapi.REPEAT
	p.WrapT, p.WrapR = &wrap, &wrap
	p.Anisotropy = 0.5
	require.NoError(t, dv.SetTextureParameters(glapi.TEXTURE_3D, p))
	assert.Len(t, f.Named("TexParameteri"), 5)
	assert.Zero(t, f.Count("TexParameterf"))
	assert.Equal(t, 1, f.Count("TexParameterfv"))
}

func TestAnisotropyUnsupported(t *testing.T) {
	f := glfake.New()
	f.Version = "4.1.0 glfake"
	dv, _ := newTestDevice(t, f)
	require.NoError(t, dv.SetTextureParameters(glapi.TEXTURE_2D, TextureParameters{Anisotropy: 8}))
	assert.Zero(t, f.Count("TexParameterf"))
}

func TestBindTexture(t *testing.T) {
	f := glfake.New()
	dv, _ := newTestDevice(t, f)
	require.NoError(t, dv.BindTexture(3, glapi.TEXTURE_2D, 5))
	require.NoError(t, dv.BindTexture(3, glapi.TEXTURE_2D, 6))
	assert.Equal(t, []glapi.Enum{glapi.TEXTURE0 + 3}, capArgs(f, "ActiveTexture"))
	assert.Equal(t, 2, f.Count("BindTexture"))

	var ae *ArgumentError
	assert.ErrorAs(t, dv.BindTexture(32, glapi.TEXTURE_2D, 5), &ae)

	dv.Reset()
	require.NoError(t, dv.BindTexture(3, glapi.TEXTURE_2D, 5))
	assert.Equal(t, 2, f.Count("ActiveTexture"))
}

func TestConfigureAttribute(t *testing.T) {
	f := glfake.New()
	dv, _ := newTestDevice(t, f)
	require.NoError(t, dv.ConfigureAttribute(Attribute{Location: 0, Components: 3, Type: glapi.FLOAT, Stride: 20}))
	div := 1
	require.NoError(t, dv.ConfigureAttribute(Attribute{Location: 1, Components: 1, Type: glapi.UNSIGNED_SHORT, Stride: 20, Offset: 12, Divisor: &div}))

	assert.Equal(t, []any{0, 3, glapi.FLOAT, false, 20, 0}, f.Named("VertexAttribPointer")[0].Args)
	require.Len(t, f.Named("VertexAttribIPointer"), 1)
	assert.Equal(t, []any{1, 1, glapi.UNSIGNED_SHORT, 20, 12}, f.Named("VertexAttribIPointer")[0].Args)
	assert.Equal(t, 2, f.Count("EnableVertexAttribArray"))
	assert.Equal(t, []any{1, 1}, f.Named("VertexAttribDivisor")[0].Args)
	assert.Equal(t, 1, f.Count("VertexAttribDivisor"))

	var ae *ArgumentError
	assert.ErrorAs(t, dv.ConfigureAttribute(Attribute{Components: 5, Type: glapi.FLOAT}), &ae)
}

// capArgsAt returns argument i of each call named name.
func capArgsAt(f *glfake.Functions, name string, i int) []glapi.Enum {
	var caps []glapi.Enum
	for _, c := range f.Named(name) {
		caps = append(caps, c.Args[i].(glapi.Enum))
	}
	return caps
}
