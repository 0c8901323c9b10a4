// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package glnative implements [glapi.Functions] on the OpenGL 4.6 core
// profile bindings of github.com/go-gl/gl. Load must be called with
// a current context before any other call.
package glnative

import (
	"strings"
	"unsafe"

	"cogentcore.org/gdevice/glapi"
	"github.com/go-gl/gl/v4.6-core/gl"
)

// Functions calls directly into the driver.
type Functions struct {
	debug glapi.DebugProc
}

var (
	_ glapi.Functions = (*Functions)(nil)
	_ glapi.Loader    = (*Functions)(nil)
)

// New returns the native functions. Entry points are resolved
// by [Functions.Load].
func New() *Functions {
	return &Functions{}
}

// Load resolves the driver entry points for the current context.
func (f *Functions) Load() error {
	return gl.Init()
}

func (f *Functions) GetError() glapi.Enum {
	return glapi.Enum(gl.GetError())
}

func (f *Functions) GetString(name glapi.Enum) string {
	p := gl.GetString(uint32(name))
	if p == nil {
		return ""
	}
	return gl.GoStr(p)
}

func (f *Functions) GetStringi(name glapi.Enum, index int) string {
	p := gl.GetStringi(uint32(name), uint32(index))
	if p == nil {
		return ""
	}
	return gl.GoStr(p)
}

func (f *Functions) GetInteger(pname glapi.Enum) int {
	var v int32
	gl.GetIntegerv(uint32(pname), &v)
	return int(v)
}

func (f *Functions) GetFloat(pname glapi.Enum) float32 {
	var v float32
	gl.GetFloatv(uint32(pname), &v)
	return v
}

func (f *Functions) GenBuffer() glapi.Buffer {
	var h uint32
	gl.GenBuffers(1, &h)
	return glapi.Buffer(h)
}

func (f *Functions) DeleteBuffer(b glapi.Buffer) {
	h := uint32(b)
	gl.DeleteBuffers(1, &h)
}

func (f *Functions) BindBuffer(target glapi.Enum, b glapi.Buffer) {
	gl.BindBuffer(uint32(target), uint32(b))
}

func (f *Functions) BufferData(target glapi.Enum, size int, data []byte, usage glapi.Enum) {
	gl.BufferData(uint32(target), size, bytesPtr(data), uint32(usage))
}

func (f *Functions) BufferSubData(target glapi.Enum, offset int, data []byte) {
	gl.BufferSubData(uint32(target), offset, len(data), bytesPtr(data))
}

func (f *Functions) GetBufferParameteri(target, pname glapi.Enum) int {
	var v int32
	gl.GetBufferParameteriv(uint32(target), uint32(pname), &v)
	return int(v)
}

func (f *Functions) MapBuffer(target, access glapi.Enum) unsafe.Pointer {
	return gl.MapBuffer(uint32(target), uint32(access))
}

func (f *Functions) UnmapBuffer(target glapi.Enum) bool {
	return gl.UnmapBuffer(uint32(target))
}

func (f *Functions) BindBufferBase(target glapi.Enum, index int, b glapi.Buffer) {
	gl.BindBufferBase(uint32(target), uint32(index), uint32(b))
}

func (f *Functions) BindBufferRange(target glapi.Enum, index int, b glapi.Buffer, offset, size int) {
	gl.BindBufferRange(uint32(target), uint32(index), uint32(b), offset, size)
}

func (f *Functions) GenVertexArray() glapi.VertexArray {
	var h uint32
	gl.GenVertexArrays(1, &h)
	return glapi.VertexArray(h)
}

func (f *Functions) DeleteVertexArray(va glapi.VertexArray) {
	h := uint32(va)
	gl.DeleteVertexArrays(1, &h)
}

func (f *Functions) BindVertexArray(va glapi.VertexArray) {
	gl.BindVertexArray(uint32(va))
}

func (f *Functions) VertexAttribPointer(index, size int, typ glapi.Enum, normalized bool, stride, offset int) {
	gl.VertexAttribPointerWithOffset(uint32(index), int32(size), uint32(typ), normalized, int32(stride), uintptr(offset))
}

func (f *Functions) VertexAttribIPointer(index, size int, typ glapi.Enum, stride, offset int) {
	gl.VertexAttribIPointerWithOffset(uint32(index), int32(size), uint32(typ), int32(stride), uintptr(offset))
}

func (f *Functions) EnableVertexAttribArray(index int) {
	gl.EnableVertexAttribArray(uint32(index))
}

func (f *Functions) VertexAttribDivisor(index, divisor int) {
	gl.VertexAttribDivisor(uint32(index), uint32(divisor))
}

func (f *Functions) GenTexture() glapi.Texture {
	var h uint32
	gl.GenTextures(1, &h)
	return glapi.Texture(h)
}

func (f *Functions) DeleteTexture(t glapi.Texture) {
	h := uint32(t)
	gl.DeleteTextures(1, &h)
}

func (f *Functions) ActiveTexture(unit glapi.Enum) {
	gl.ActiveTexture(uint32(unit))
}

func (f *Functions) BindTexture(target glapi.Enum, t glapi.Texture) {
	gl.BindTexture(uint32(target), uint32(t))
}

func (f *Functions) PixelStorei(pname glapi.Enum, param int) {
	gl.PixelStorei(uint32(pname), int32(param))
}

func (f *Functions) TexImage2D(target glapi.Enum, level int, internalFormat glapi.Enum, width, height int, format, typ glapi.Enum, data []byte) {
	gl.TexImage2D(uint32(target), int32(level), int32(internalFormat), int32(width), int32(height), 0, uint32(format), uint32(typ), bytesPtr(data))
}

func (f *Functions) GenerateMipmap(target glapi.Enum) {
	gl.GenerateMipmap(uint32(target))
}

func (f *Functions) TexParameteri(target, pname glapi.Enum, param int) {
	gl.TexParameteri(uint32(target), uint32(pname), int32(param))
}

func (f *Functions) TexParameterf(target, pname glapi.Enum, param float32) {
	gl.TexParameterf(uint32(target), uint32(pname), param)
}

func (f *Functions) TexParameterfv(target, pname glapi.Enum, params []float32) {
	gl.TexParameterfv(uint32(target), uint32(pname), &params[0])
}

func (f *Functions) BindImageTexture(unit int, t glapi.Texture, level int, layered bool, layer int, access, format glapi.Enum) {
	gl.BindImageTexture(uint32(unit), uint32(t), int32(level), layered, int32(layer), uint32(access), uint32(format))
}

func (f *Functions) GenFramebuffer() glapi.Framebuffer {
	var h uint32
	gl.GenFramebuffers(1, &h)
	return glapi.Framebuffer(h)
}

func (f *Functions) DeleteFramebuffer(fb glapi.Framebuffer) {
	h := uint32(fb)
	gl.DeleteFramebuffers(1, &h)
}

func (f *Functions) BindFramebuffer(target glapi.Enum, fb glapi.Framebuffer) {
	gl.BindFramebuffer(uint32(target), uint32(fb))
}

func (f *Functions) FramebufferTexture2D(target, attachment, texTarget glapi.Enum, t glapi.Texture, level int) {
	gl.FramebufferTexture2D(uint32(target), uint32(attachment), uint32(texTarget), uint32(t), int32(level))
}

func (f *Functions) FramebufferRenderbuffer(target, attachment, rbTarget glapi.Enum, rb glapi.Renderbuffer) {
	gl.FramebufferRenderbuffer(uint32(target), uint32(attachment), uint32(rbTarget), uint32(rb))
}

func (f *Functions) GetFramebufferAttachmentParameteri(target, attachment, pname glapi.Enum) int {
	var v int32
	gl.GetFramebufferAttachmentParameteriv(uint32(target), uint32(attachment), uint32(pname), &v)
	return int(v)
}

func (f *Functions) CheckFramebufferStatus(target glapi.Enum) glapi.Enum {
	return glapi.Enum(gl.CheckFramebufferStatus(uint32(target)))
}

func (f *Functions) DrawBuffers(bufs []glapi.Enum) {
	if len(bufs) == 0 {
		gl.DrawBuffers(0, nil)
		return
	}
	b := make([]uint32, len(bufs))
	for i, e := range bufs {
		b[i] = uint32(e)
	}
	gl.DrawBuffers(int32(len(b)), &b[0])
}

func (f *Functions) ReadPixels(x, y, width, height int, format, typ glapi.Enum, data unsafe.Pointer) {
	gl.ReadPixels(int32(x), int32(y), int32(width), int32(height), uint32(format), uint32(typ), data)
}

func (f *Functions) Viewport(x, y, width, height int) {
	gl.Viewport(int32(x), int32(y), int32(width), int32(height))
}

func (f *Functions) GenRenderbuffer() glapi.Renderbuffer {
	var h uint32
	gl.GenRenderbuffers(1, &h)
	return glapi.Renderbuffer(h)
}

func (f *Functions) DeleteRenderbuffer(rb glapi.Renderbuffer) {
	h := uint32(rb)
	gl.DeleteRenderbuffers(1, &h)
}

func (f *Functions) BindRenderbuffer(target glapi.Enum, rb glapi.Renderbuffer) {
	gl.BindRenderbuffer(uint32(target), uint32(rb))
}

func (f *Functions) RenderbufferStorage(target, internalFormat glapi.Enum, width, height int) {
	gl.RenderbufferStorage(uint32(target), uint32(internalFormat), int32(width), int32(height))
}

func (f *Functions) CreateShader(typ glapi.Enum) glapi.Shader {
	return glapi.Shader(gl.CreateShader(uint32(typ)))
}

func (f *Functions) ShaderSource(s glapi.Shader, src string) {
	csources, free := gl.Strs(cString(src))
	gl.ShaderSource(uint32(s), 1, csources, nil)
	free()
}

func (f *Functions) CompileShader(s glapi.Shader) {
	gl.CompileShader(uint32(s))
}

func (f *Functions) GetShaderi(s glapi.Shader, pname glapi.Enum) int {
	var v int32
	gl.GetShaderiv(uint32(s), uint32(pname), &v)
	return int(v)
}

func (f *Functions) GetShaderInfoLog(s glapi.Shader) string {
	n := f.GetShaderi(s, glapi.INFO_LOG_LENGTH)
	if n <= 0 {
		return ""
	}
	msg := strings.Repeat("\x00", n+1)
	gl.GetShaderInfoLog(uint32(s), int32(n), nil, gl.Str(msg))
	return strings.TrimRight(msg, "\x00")
}

func (f *Functions) DeleteShader(s glapi.Shader) {
	gl.DeleteShader(uint32(s))
}

func (f *Functions) CreateProgram() glapi.Program {
	return glapi.Program(gl.CreateProgram())
}

func (f *Functions) AttachShader(p glapi.Program, s glapi.Shader) {
	gl.AttachShader(uint32(p), uint32(s))
}

func (f *Functions) LinkProgram(p glapi.Program) {
	gl.LinkProgram(uint32(p))
}

func (f *Functions) GetProgrami(p glapi.Program, pname glapi.Enum) int {
	var v int32
	gl.GetProgramiv(uint32(p), uint32(pname), &v)
	return int(v)
}

func (f *Functions) GetProgramInfoLog(p glapi.Program) string {
	n := f.GetProgrami(p, glapi.INFO_LOG_LENGTH)
	if n <= 0 {
		return ""
	}
	msg := strings.Repeat("\x00", n+1)
	gl.GetProgramInfoLog(uint32(p), int32(n), nil, gl.Str(msg))
	return strings.TrimRight(msg, "\x00")
}

func (f *Functions) DeleteProgram(p glapi.Program) {
	gl.DeleteProgram(uint32(p))
}

func (f *Functions) UseProgram(p glapi.Program) {
	gl.UseProgram(uint32(p))
}

// nameBufSize bounds reflected names; longer names are truncated
// by the driver.
const nameBufSize = 256

func (f *Functions) GetActiveUniform(p glapi.Program, index int) (string, int, glapi.Enum) {
	var length, size int32
	var typ uint32
	buf := make([]uint8, nameBufSize)
	gl.GetActiveUniform(uint32(p), uint32(index), nameBufSize, &length, &size, &typ, &buf[0])
	return string(buf[:length]), int(size), glapi.Enum(typ)
}

func (f *Functions) GetUniformLocation(p glapi.Program, name string) glapi.Uniform {
	return glapi.Uniform(gl.GetUniformLocation(uint32(p), gl.Str(cString(name))))
}

func (f *Functions) GetActiveAttrib(p glapi.Program, index int) (string, int, glapi.Enum) {
	var length, size int32
	var typ uint32
	buf := make([]uint8, nameBufSize)
	gl.GetActiveAttrib(uint32(p), uint32(index), nameBufSize, &length, &size, &typ, &buf[0])
	return string(buf[:length]), int(size), glapi.Enum(typ)
}

func (f *Functions) GetAttribLocation(p glapi.Program, name string) int {
	return int(gl.GetAttribLocation(uint32(p), gl.Str(cString(name))))
}

func (f *Functions) GetProgramInterfacei(p glapi.Program, iface, pname glapi.Enum) int {
	var v int32
	gl.GetProgramInterfaceiv(uint32(p), uint32(iface), uint32(pname), &v)
	return int(v)
}

func (f *Functions) GetProgramResourceName(p glapi.Program, iface glapi.Enum, index int) string {
	var length int32
	buf := make([]uint8, nameBufSize)
	gl.GetProgramResourceName(uint32(p), uint32(iface), uint32(index), nameBufSize, &length, &buf[0])
	return string(buf[:length])
}

func (f *Functions) GetProgramResourceiv(p glapi.Program, iface glapi.Enum, index int, props []glapi.Enum) []int {
	if len(props) == 0 {
		return nil
	}
	ps := make([]uint32, len(props))
	for i, e := range props {
		ps[i] = uint32(e)
	}
	vals := make([]int32, len(props))
	var length int32
	gl.GetProgramResourceiv(uint32(p), uint32(iface), uint32(index), int32(len(ps)), &ps[0], int32(len(vals)), &length, &vals[0])
	res := make([]int, length)
	for i := range res {
		res[i] = int(vals[i])
	}
	return res
}

func (f *Functions) Uniformfv(loc glapi.Uniform, arity, count int, v []float32) {
	l, n := int32(loc), int32(count)
	switch arity {
	case 1:
		gl.Uniform1fv(l, n, &v[0])
	case 2:
		gl.Uniform2fv(l, n, &v[0])
	case 3:
		gl.Uniform3fv(l, n, &v[0])
	case 4:
		gl.Uniform4fv(l, n, &v[0])
	}
}

func (f *Functions) Uniformdv(loc glapi.Uniform, arity, count int, v []float64) {
	l, n := int32(loc), int32(count)
	switch arity {
	case 1:
		gl.Uniform1dv(l, n, &v[0])
	case 2:
		gl.Uniform2dv(l, n, &v[0])
	case 3:
		gl.Uniform3dv(l, n, &v[0])
	case 4:
		gl.Uniform4dv(l, n, &v[0])
	}
}

func (f *Functions) Uniformiv(loc glapi.Uniform, arity, count int, v []int32) {
	l, n := int32(loc), int32(count)
	switch arity {
	case 1:
		gl.Uniform1iv(l, n, &v[0])
	case 2:
		gl.Uniform2iv(l, n, &v[0])
	case 3:
		gl.Uniform3iv(l, n, &v[0])
	case 4:
		gl.Uniform4iv(l, n, &v[0])
	}
}

func (f *Functions) Uniformuiv(loc glapi.Uniform, arity, count int, v []uint32) {
	l, n := int32(loc), int32(count)
	switch arity {
	case 1:
		gl.Uniform1uiv(l, n, &v[0])
	case 2:
		gl.Uniform2uiv(l, n, &v[0])
	case 3:
		gl.Uniform3uiv(l, n, &v[0])
	case 4:
		gl.Uniform4uiv(l, n, &v[0])
	}
}

// matrixShape packs cols x rows for switching.
func matrixShape(cols, rows int) int { return cols*10 + rows }

func (f *Functions) UniformMatrixfv(loc glapi.Uniform, cols, rows, count int, transpose bool, v []float32) {
	l, n, p := int32(loc), int32(count), &v[0]
	switch matrixShape(cols, rows) {
	case 22:
		gl.UniformMatrix2fv(l, n, transpose, p)
	case 23:
		gl.UniformMatrix2x3fv(l, n, transpose, p)
	case 24:
		gl.UniformMatrix2x4fv(l, n, transpose, p)
	case 32:
		gl.UniformMatrix3x2fv(l, n, transpose, p)
	case 33:
		gl.UniformMatrix3fv(l, n, transpose, p)
	case 34:
		gl.UniformMatrix3x4fv(l, n, transpose, p)
	case 42:
		gl.UniformMatrix4x2fv(l, n, transpose, p)
	case 43:
		gl.UniformMatrix4x3fv(l, n, transpose, p)
	case 44:
		gl.UniformMatrix4fv(l, n, transpose, p)
	}
}

func (f *Functions) UniformMatrixdv(loc glapi.Uniform, cols, rows, count int, transpose bool, v []float64) {
	l, n, p := int32(loc), int32(count), &v[0]
	switch matrixShape(cols, rows) {
	case 22:
		gl.UniformMatrix2dv(l, n, transpose, p)
	case 23:
		gl.UniformMatrix2x3dv(l, n, transpose, p)
	case 24:
		gl.UniformMatrix2x4dv(l, n, transpose, p)
	case 32:
		gl.UniformMatrix3x2dv(l, n, transpose, p)
	case 33:
		gl.UniformMatrix3dv(l, n, transpose, p)
	case 34:
		gl.UniformMatrix3x4dv(l, n, transpose, p)
	case 42:
		gl.UniformMatrix4x2dv(l, n, transpose, p)
	case 43:
		gl.UniformMatrix4x3dv(l, n, transpose, p)
	case 44:
		gl.UniformMatrix4dv(l, n, transpose, p)
	}
}

func (f *Functions) Enable(cap glapi.Enum)  { gl.Enable(uint32(cap)) }
func (f *Functions) Disable(cap glapi.Enum) { gl.Disable(uint32(cap)) }

func (f *Functions) ClearColor(r, g, b, a float32) { gl.ClearColor(r, g, b, a) }
func (f *Functions) ClearDepth(d float32)          { gl.ClearDepthf(d) }
func (f *Functions) Clear(mask glapi.Enum)         { gl.Clear(uint32(mask)) }
func (f *Functions) DepthMask(flag bool)           { gl.DepthMask(flag) }
func (f *Functions) DepthFunc(fn glapi.Enum)       { gl.DepthFunc(uint32(fn)) }
func (f *Functions) ColorMask(r, g, b, a bool)     { gl.ColorMask(r, g, b, a) }

func (f *Functions) BlendFuncSeparate(srcRGB, dstRGB, srcA, dstA glapi.Enum) {
	gl.BlendFuncSeparate(uint32(srcRGB), uint32(dstRGB), uint32(srcA), uint32(dstA))
}

func (f *Functions) BlendEquation(mode glapi.Enum)   { gl.BlendEquation(uint32(mode)) }
func (f *Functions) BlendColor(r, g, b, a float32)   { gl.BlendColor(r, g, b, a) }
func (f *Functions) CullFace(mode glapi.Enum)        { gl.CullFace(uint32(mode)) }
func (f *Functions) Scissor(x, y, width, height int) { gl.Scissor(int32(x), int32(y), int32(width), int32(height)) }

func (f *Functions) PolygonMode(face, mode glapi.Enum) { gl.PolygonMode(uint32(face), uint32(mode)) }
func (f *Functions) PointSize(size float32)            { gl.PointSize(size) }
func (f *Functions) ClipControl(origin, depth glapi.Enum) {
	gl.ClipControl(uint32(origin), uint32(depth))
}

func (f *Functions) DrawArrays(mode glapi.Enum, first, count int) {
	gl.DrawArrays(uint32(mode), int32(first), int32(count))
}

func (f *Functions) DrawArraysInstanced(mode glapi.Enum, first, count, instances int) {
	gl.DrawArraysInstanced(uint32(mode), int32(first), int32(count), int32(instances))
}

func (f *Functions) DrawElements(mode glapi.Enum, count int, typ glapi.Enum, offset int) {
	gl.DrawElements(uint32(mode), int32(count), uint32(typ), gl.PtrOffset(offset))
}

func (f *Functions) DrawElementsInstanced(mode glapi.Enum, count int, typ glapi.Enum, offset, instances int) {
	gl.DrawElementsInstanced(uint32(mode), int32(count), uint32(typ), gl.PtrOffset(offset), int32(instances))
}

func (f *Functions) DispatchCompute(x, y, z uint32) { gl.DispatchCompute(x, y, z) }

func (f *Functions) MemoryBarrier(barriers glapi.Enum) { gl.MemoryBarrier(uint32(barriers)) }

// DebugMessageCallback installs fn as the driver debug callback,
// enabling synchronous debug output so that messages are delivered
// on the calling thread. A nil fn disables debug output.
func (f *Functions) DebugMessageCallback(fn glapi.DebugProc) {
	f.debug = fn
	if fn == nil {
		gl.Disable(gl.DEBUG_OUTPUT)
		gl.DebugMessageCallback(nil, nil)
		return
	}
	gl.Enable(gl.DEBUG_OUTPUT)
	gl.Enable(gl.DEBUG_OUTPUT_SYNCHRONOUS)
	gl.DebugMessageCallback(func(source, gltype, id, severity uint32, length int32, message string, userParam unsafe.Pointer) {
		if f.debug != nil {
			f.debug(glapi.Enum(source), glapi.Enum(gltype), id, glapi.Enum(severity), message)
		}
	}, nil)
}

// cString returns s with a single trailing null terminator.
func cString(s string) string {
	if strings.HasSuffix(s, "\x00") {
		return s
	}
	return s + "\x00"
}

func bytesPtr(b []byte) unsafe.Pointer {
	if len(b) == 0 {
		return nil
	}
	return unsafe.Pointer(&b[0])
}
