// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gldev

import (
	"image"

	"cogentcore.org/gdevice/glapi"
	"github.com/chewxy/math32"
)

// MipmapSelection is how a mipmap level is chosen when minifying.
type MipmapSelection int32

const (
	MipmapNone MipmapSelection = iota
	MipmapNearest
	MipmapLinear
)

// Filter is the texel filter within one level.
type Filter int32

const (
	FilterNearest Filter = iota
	FilterLinear
)

// MinFilterFor returns the minification filter combining mipmap level
// selection m with texel filter f.
func MinFilterFor(m MipmapSelection, f Filter) glapi.Enum {
	switch m {
	case MipmapNearest:
		if f == FilterLinear {
			return glapi.LINEAR_MIPMAP_NEAREST
		}
		return glapi.NEAREST_MIPMAP_NEAREST
	case MipmapLinear:
		if f == FilterLinear {
			return glapi.LINEAR_MIPMAP_LINEAR
		}
		return glapi.NEAREST_MIPMAP_LINEAR
	}
	return MagFilterFor(f)
}

// MagFilterFor returns the magnification filter for f.
func MagFilterFor(f Filter) glapi.Enum {
	if f == FilterLinear {
		return glapi.LINEAR
	}
	return glapi.NEAREST
}

// BindTexture makes unit the active texture unit and binds t to target
// on it. The active unit is cached.
func (dv *Device) BindTexture(unit int, target glapi.Enum, t glapi.Texture) error {
	const op = "bind texture"
	if unit < 0 || (dv.Caps.MaxTextureUnits > 0 && unit >= dv.Caps.MaxTextureUnits) {
		return argErrorf(op, "texture unit %d out of range [0, %d)", unit, dv.Caps.MaxTextureUnits)
	}
	if !dv.state.activeTexture.is(unit) {
		dv.gl.ActiveTexture(glapi.TEXTURE0 + glapi.Enum(unit))
		if err := dv.check(op); err != nil {
			return err
		}
		dv.state.activeTexture = known(unit)
	}
	dv.gl.BindTexture(target, t)
	return dv.check(op)
}

// UploadTexture2D specifies the level 0 image of the texture bound to
// target. Rows are read with 1-byte alignment. A nil data allocates
// storage with undefined contents; otherwise its length must match
// size, format and typ.
func (dv *Device) UploadTexture2D(target, internalFormat glapi.Enum, size image.Point, format, typ glapi.Enum, data []byte) error {
	const op = "upload texture"
	if size.X <= 0 || size.Y <= 0 {
		return argErrorf(op, "size must be greater than 0, got %v", size)
	}
	if data != nil {
		if px := glapi.PixelSize(format, typ); px > 0 && len(data) != size.X*size.Y*px {
			return argErrorf(op, "expected %d bytes of data for %v, got %d", size.X*size.Y*px, size, len(data))
		}
	}
	dv.gl.PixelStorei(glapi.UNPACK_ALIGNMENT, 1)
	dv.gl.TexImage2D(target, 0, internalFormat, size.X, size.Y, format, typ, data)
	return dv.check(op)
}

// GenerateMipmaps generates all mipmap levels of the texture bound
// to target from level 0.
func (dv *Device) GenerateMipmaps(target glapi.Enum) error {
	dv.gl.GenerateMipmap(target)
	return dv.check("generate mipmaps")
}

// TextureParameters are the sampling parameters of a texture.
type TextureParameters struct {
	MinFilter glapi.Enum
	MagFilter glapi.Enum
	WrapS     glapi.Enum

	// WrapT and WrapR are left unset when nil.
	WrapT *glapi.Enum
	WrapR *glapi.Enum

	BorderColor [4]float32

	// Anisotropy is applied when 1 or more and anisotropic filtering
	// is supported, clamped to the device maximum.
	Anisotropy float32
}

// SetTextureParameters sets the sampling parameters of the texture
// bound to target.
func (dv *Device) SetTextureParameters(target glapi.Enum, p TextureParameters) error {
	dv.gl.TexParameteri(target, glapi.TEXTURE_MIN_FILTER, int(p.MinFilter))
	dv.gl.TexParameteri(target, glapi.TEXTURE_MAG_FILTER, int(p.MagFilter))
	dv.gl.TexParameteri(target, glapi.TEXTURE_WRAP_S, int(p.WrapS))
	if p.WrapT != nil {
		dv.gl.TexParameteri(target, glapi.TEXTURE_WRAP_T, int(*p.WrapT))
	}
	if p.WrapR != nil {
		dv.gl.TexParameteri(target, glapi.TEXTURE_WRAP_R, int(*p.WrapR))
	}
	dv.gl.TexParameterfv(target, glapi.TEXTURE_BORDER_COLOR, p.BorderColor[:])
	if p.Anisotropy >= 1 && dv.Caps.Features.Has(FeatureAnisotropy) {
		a := p.Anisotropy
		if dv.Caps.MaxAnisotropy >= 1 {
			a = math32.Min(a, dv.Caps.MaxAnisotropy)
		}
		dv.gl.TexParameterf(target, glapi.TEXTURE_MAX_ANISOTROPY, a)
	}
	return dv.check("set texture parameters")
}
