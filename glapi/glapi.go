// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package glapi defines the native OpenGL call surface used by the
// device layer: the [Functions] interface, driver enumerations, and
// typed resource handles.
//
// Implementations live in glnative (go-gl, requires cgo and a current
// context) and glfake (in-memory, for tests).
package glapi

import "unsafe"

// Resource handles. The zero value of each is the null handle,
// which unbinds the corresponding target.
type (
	Buffer       uint32
	VertexArray  uint32
	Texture      uint32
	Framebuffer  uint32
	Renderbuffer uint32
	Program      uint32
	Shader       uint32
)

// Uniform is a uniform location; -1 means not found.
type Uniform int32

// DebugProc receives driver debug messages.
type DebugProc func(source, typ Enum, id uint32, severity Enum, message string)

// Loader is implemented by [Functions] that need to resolve their
// entry points once a context is current.
type Loader interface {
	Load() error
}

// Functions is the set of native driver calls used by the device layer.
// All methods must be called on the thread owning the current context.
// Errors are reported through GetError, as in the native API.
type Functions interface {
	GetError() Enum
	GetString(name Enum) string
	GetStringi(name Enum, index int) string
	GetInteger(pname Enum) int
	GetFloat(pname Enum) float32

	GenBuffer() Buffer
	DeleteBuffer(b Buffer)
	BindBuffer(target Enum, b Buffer)
	BufferData(target Enum, size int, data []byte, usage Enum)
	BufferSubData(target Enum, offset int, data []byte)
	GetBufferParameteri(target, pname Enum) int
	MapBuffer(target, access Enum) unsafe.Pointer
	UnmapBuffer(target Enum) bool
	BindBufferBase(target Enum, index int, b Buffer)
	BindBufferRange(target Enum, index int, b Buffer, offset, size int)

	GenVertexArray() VertexArray
	DeleteVertexArray(va VertexArray)
	BindVertexArray(va VertexArray)
	VertexAttribPointer(index, size int, typ Enum, normalized bool, stride, offset int)
	VertexAttribIPointer(index, size int, typ Enum, stride, offset int)
	EnableVertexAttribArray(index int)
	VertexAttribDivisor(index, divisor int)

	GenTexture() Texture
	DeleteTexture(t Texture)
	ActiveTexture(unit Enum)
	BindTexture(target Enum, t Texture)
	PixelStorei(pname Enum, param int)
	TexImage2D(target Enum, level int, internalFormat Enum, width, height int, format, typ Enum, data []byte)
	GenerateMipmap(target Enum)
	TexParameteri(target, pname Enum, param int)
	TexParameterf(target, pname Enum, param float32)
	TexParameterfv(target, pname Enum, params []float32)
	BindImageTexture(unit int, t Texture, level int, layered bool, layer int, access, format Enum)

	GenFramebuffer() Framebuffer
	DeleteFramebuffer(fb Framebuffer)
	BindFramebuffer(target Enum, fb Framebuffer)
	FramebufferTexture2D(target, attachment, texTarget Enum, t Texture, level int)
	FramebufferRenderbuffer(target, attachment, rbTarget Enum, rb Renderbuffer)
	GetFramebufferAttachmentParameteri(target, attachment, pname Enum) int
	CheckFramebufferStatus(target Enum) Enum
	DrawBuffers(bufs []Enum)
	ReadPixels(x, y, width, height int, format, typ Enum, data unsafe.Pointer)
	Viewport(x, y, width, height int)

	GenRenderbuffer() Renderbuffer
	DeleteRenderbuffer(rb Renderbuffer)
	BindRenderbuffer(target Enum, rb Renderbuffer)
	RenderbufferStorage(target, internalFormat Enum, width, height int)

	CreateShader(typ Enum) Shader
	ShaderSource(s Shader, src string)
	CompileShader(s Shader)
	GetShaderi(s Shader, pname Enum) int
	GetShaderInfoLog(s Shader) string
	DeleteShader(s Shader)
	CreateProgram() Program
	AttachShader(p Program, s Shader)
	LinkProgram(p Program)
	GetProgrami(p Program, pname Enum) int
	GetProgramInfoLog(p Program) string
	DeleteProgram(p Program)
	UseProgram(p Program)
	GetActiveUniform(p Program, index int) (name string, size int, typ Enum)
	GetUniformLocation(p Program, name string) Uniform
	GetActiveAttrib(p Program, index int) (name string, size int, typ Enum)
	GetAttribLocation(p Program, name string) int
	GetProgramInterfacei(p Program, iface, pname Enum) int
	GetProgramResourceName(p Program, iface Enum, index int) string
	GetProgramResourceiv(p Program, iface Enum, index int, props []Enum) []int

	// Uniformfv and its variants set count vectors of arity
	// components each; UniformMatrixfv sets count cols x rows
	// matrices in column-major order.
	Uniformfv(loc Uniform, arity, count int, v []float32)
	Uniformdv(loc Uniform, arity, count int, v []float64)
	Uniformiv(loc Uniform, arity, count int, v []int32)
	Uniformuiv(loc Uniform, arity, count int, v []uint32)
	UniformMatrixfv(loc Uniform, cols, rows, count int, transpose bool, v []float32)
	UniformMatrixdv(loc Uniform, cols, rows, count int, transpose bool, v []float64)

	Enable(cap Enum)
	Disable(cap Enum)
	ClearColor(r, g, b, a float32)
	ClearDepth(d float32)
	Clear(mask Enum)
	DepthMask(flag bool)
	DepthFunc(fn Enum)
	ColorMask(r, g, b, a bool)
	BlendFuncSeparate(srcRGB, dstRGB, srcA, dstA Enum)
	BlendEquation(mode Enum)
	BlendColor(r, g, b, a float32)
	CullFace(mode Enum)
	Scissor(x, y, width, height int)
	PolygonMode(face, mode Enum)
	PointSize(size float32)
	ClipControl(origin, depth Enum)

	DrawArrays(mode Enum, first, count int)
	DrawArraysInstanced(mode Enum, first, count, instances int)
	DrawElements(mode Enum, count int, typ Enum, offset int)
	DrawElementsInstanced(mode Enum, count int, typ Enum, offset, instances int)
	DispatchCompute(x, y, z uint32)
	MemoryBarrier(barriers Enum)

	DebugMessageCallback(fn DebugProc)
}
