// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gldev

import (
	"image"

	"cogentcore.org/gdevice/base/errors"
	"cogentcore.org/gdevice/glapi"
	"github.com/jinzhu/copier"
)

// DrawState is a full snapshot of the fixed-function state used by a
// draw. Zero values of enumerated fields select the driver defaults
// noted on each field; use [DefaultDrawState] for a snapshot that
// also writes all color channels.
type DrawState struct {

	// DepthWrite enables writing to the depth buffer.
	DepthWrite bool

	// DepthFunc is the depth comparison; 0 means ALWAYS. Depth
	// testing is disabled when DepthWrite is false and DepthFunc
	// is ALWAYS.
	DepthFunc glapi.Enum

	// DepthClamp clamps fragment depth to the depth range instead
	// of clipping primitives against the near and far planes.
	DepthClamp bool

	// ColorMask enables writing of the red, green, blue and alpha
	// channels.
	ColorMask [4]bool

	// Blend is the blend configuration; nil disables blending.
	Blend *BlendState

	// CullFace is the face culled; 0 disables culling.
	CullFace glapi.Enum

	// Scissor is the scissor rectangle; nil disables the scissor test.
	Scissor *image.Rectangle

	// PolygonMode is the rasterization mode of both faces;
	// 0 means FILL.
	PolygonMode glapi.Enum

	// PointSize is the rasterized point size; 0 means 1.
	PointSize float32

	// ClipDistances is the number of enabled clip distances.
	ClipDistances int

	// ClipOrigin and ClipDepth are the clip-space convention;
	// 0 means LOWER_LEFT and NEGATIVE_ONE_TO_ONE, which are the
	// only values allowed without clip control.
	ClipOrigin glapi.Enum
	ClipDepth  glapi.Enum
}

// DefaultDrawState returns the state of a draw with no depth test,
// no blending, no culling and all color channels written.
func DefaultDrawState() DrawState {
	return DrawState{ColorMask: [4]bool{true, true, true, true}}
}

// Clone returns a deep copy of s.
func (s DrawState) Clone() DrawState {
	var c DrawState
	errors.Log(copier.CopyWithOption(&c, &s, copier.Option{DeepCopy: true}))
	return c
}

// BlendState is a blend configuration.
type BlendState struct {
	Src, Dst           glapi.Enum
	SrcAlpha, DstAlpha glapi.Enum

	// Equation is the blend equation; 0 means FUNC_ADD.
	Equation glapi.Enum

	// Color is the blend constant color; nil means opaque white.
	Color *[4]float32
}

// NewBlend returns a blend using src and dst for both color and alpha.
func NewBlend(src, dst glapi.Enum) *BlendState {
	return &BlendState{Src: src, Dst: dst, SrcAlpha: src, DstAlpha: dst}
}

// IsIdentity reports whether b writes the source unchanged, which is
// the same as not blending. A nil b is the identity.
func (b *BlendState) IsIdentity() bool {
	return b == nil || (b.Src == glapi.ONE && b.Dst == glapi.ZERO &&
		b.SrcAlpha == glapi.ONE && b.DstAlpha == glapi.ZERO)
}
