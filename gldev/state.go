// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gldev

import "cogentcore.org/gdevice/glapi"

// cached is the last value applied to the driver for one aspect.
// The zero value is unknown.
type cached[T comparable] struct {
	v  T
	ok bool
}

func known[T comparable](v T) cached[T] {
	return cached[T]{v: v, ok: true}
}

// is reports whether the driver is known to hold v.
func (c cached[T]) is(v T) bool {
	return c.ok && c.v == v
}

// stateCache mirrors the fixed-function state of the driver.
// The zero value has every aspect unknown.
type stateCache struct {
	depthTest cached[bool]
	depthMask cached[bool]
	depthFunc cached[glapi.Enum]

	depthClamp cached[bool]

	colorMask cached[[4]bool]

	blend         cached[bool]
	blendFunc     cached[[4]glapi.Enum]
	blendEquation cached[glapi.Enum]
	blendColor    cached[[4]float32]

	cull     cached[bool]
	cullFace cached[glapi.Enum]

	scissorTest cached[bool]

	// scissor is x, y, width, height.
	scissor cached[[4]int]

	polygonMode   cached[glapi.Enum]
	pointSize     cached[float32]
	clipDistances cached[int]

	// clipControl is origin, depth.
	clipControl cached[[2]glapi.Enum]

	clearColor cached[[4]float32]
	clearDepth cached[float32]

	program       cached[glapi.Program]
	activeTexture cached[int]
}
