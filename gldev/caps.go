// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gldev

import (
	"fmt"
	"strings"

	"cogentcore.org/gdevice/config"
	"cogentcore.org/gdevice/glapi"
)

// Features is a set of optional driver capabilities.
type Features uint32

const (
	// FeatureClipControl is control over the clip-space origin
	// and depth range.
	FeatureClipControl Features = 1 << iota

	// FeatureImageUnit is image load/store units.
	FeatureImageUnit

	// FeatureShaderStorage is shader storage buffers.
	FeatureShaderStorage

	// FeatureAnisotropy is anisotropic texture filtering.
	FeatureAnisotropy
)

var featureNames = []string{"clip control", "image units", "shader storage", "anisotropic filtering"}

// Has reports whether all of feats are present.
func (f Features) Has(feats Features) bool {
	return f&feats == feats
}

func (f Features) String() string {
	var names []string
	for i, n := range featureNames {
		if f.Has(1 << i) {
			names = append(names, n)
		}
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, ", ")
}

// Caps are the capabilities and limits probed when a device is created.
type Caps struct {
	Version  glapi.Version
	ES       bool
	Vendor   string
	Renderer string

	Features Features

	MaxTextureUnits          int
	MaxClipDistances         int
	MaxImageUnits            int
	MaxStorageBufferBindings int
	MaxDrawBuffers           int
	MaxAnisotropy            float32
}

func (c *Caps) String() string {
	return fmt.Sprintf("OpenGL %s (%s, %s) features: %s", c.Version, c.Vendor, c.Renderer, c.Features)
}

// probeCaps queries version, extensions and limits, applying the
// toggles of cfg. The driver must be current.
func probeCaps(f glapi.Functions, cfg *config.Config) (Caps, error) {
	var c Caps
	ver, es, err := glapi.ParseVersion(f.GetString(glapi.VERSION))
	if err != nil {
		return c, err
	}
	c.Version, c.ES = ver, es
	c.Vendor = f.GetString(glapi.VENDOR)
	c.Renderer = f.GetString(glapi.RENDERER)
	exts := glapi.QueryExtensions(f)
	gl := func(major, minor int) bool { return !es && ver.AtLeast(major, minor) }

	probe := func(feat Features, tg config.Toggle, ok bool) {
		if ok && tg != config.Disabled {
			c.Features |= feat
		}
	}
	probe(FeatureClipControl, cfg.ClipControl, gl(4, 5) || exts.Has("GL_ARB_clip_control"))
	probe(FeatureImageUnit, cfg.ImageUnit, gl(4, 2) || exts.Has("GL_ARB_shader_image_load_store"))
	probe(FeatureShaderStorage, cfg.ShaderStorage, gl(4, 3) || exts.Has("GL_ARB_shader_storage_buffer_object"))
	probe(FeatureAnisotropy, cfg.Anisotropy, gl(4, 6) ||
		exts.Has("GL_ARB_texture_filter_anisotropic", "GL_EXT_texture_filter_anisotropic"))

	c.MaxTextureUnits = f.GetInteger(glapi.MAX_COMBINED_TEXTURE_IMAGE_UNITS)
	c.MaxClipDistances = f.GetInteger(glapi.MAX_CLIP_DISTANCES)
	c.MaxDrawBuffers = f.GetInteger(glapi.MAX_DRAW_BUFFERS)
	if c.Features.Has(FeatureImageUnit) {
		c.MaxImageUnits = f.GetInteger(glapi.MAX_IMAGE_UNITS)
	}
	if c.Features.Has(FeatureShaderStorage) {
		c.MaxStorageBufferBindings = f.GetInteger(glapi.MAX_SHADER_STORAGE_BUFFER_BINDINGS)
	}
	if c.Features.Has(FeatureAnisotropy) {
		c.MaxAnisotropy = f.GetFloat(glapi.MAX_TEXTURE_MAX_ANISOTROPY)
	}
	return c, nil
}
