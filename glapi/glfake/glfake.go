// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package glfake provides an in-memory implementation of
// [glapi.Functions] that records every call, tracks live handles
// and simulates enough driver behavior to test the device layer:
// buffer storage, framebuffer attachments, shader compilation and
// program reflection. Errors can be injected per call name.
package glfake

import (
	"fmt"
	"slices"
	"strings"
	"unsafe"

	"cogentcore.org/gdevice/glapi"
)

// Call is one recorded driver call.
type Call struct {
	Name string
	Args []any
}

func (c Call) String() string {
	return fmt.Sprintf("%s%v", c.Name, c.Args)
}

// Handle kinds tracked by [Functions.Live].
const (
	KindBuffer       = "buffer"
	KindVertexArray  = "vertexarray"
	KindTexture      = "texture"
	KindFramebuffer  = "framebuffer"
	KindRenderbuffer = "renderbuffer"
	KindShader       = "shader"
	KindProgram      = "program"
)

type shader struct {
	typ      glapi.Enum
	src      string
	compiled bool
	log      string
}

type program struct {
	shaders  []glapi.Shader
	linked   bool
	log      string
	uniforms []variable
	attribs  []variable
	blocks   []block
}

// Functions is a fake driver. The zero value is not usable; use [New].
type Functions struct {

	// Calls is every call made since New or ClearCalls, in order.
	Calls []Call

	// Version is returned for VERSION.
	Version string

	// Exts are the reported extensions.
	Exts []string

	// Ints and Floats override GetInteger and GetFloat results.
	Ints   map[glapi.Enum]int
	Floats map[glapi.Enum]float32

	// LinkLog, when non-empty, makes every link fail with that log.
	LinkLog string

	// UnmapCorrupt makes UnmapBuffer report corrupted contents.
	UnmapCorrupt bool

	// Debug is the installed debug callback.
	Debug glapi.DebugProc

	fail    map[string]glapi.Enum
	errs    []glapi.Enum
	next    uint32
	live    map[string]map[uint32]bool
	enabled map[glapi.Enum]bool

	buffers     map[glapi.Buffer][]byte
	bound       map[glapi.Enum]glapi.Buffer
	mapped      map[glapi.Enum]bool
	drawFB      glapi.Framebuffer
	readFB      glapi.Framebuffer
	attachments map[glapi.Framebuffer]map[glapi.Enum]uint32
	shaders     map[glapi.Shader]*shader
	programs    map[glapi.Program]*program
}

var _ glapi.Functions = (*Functions)(nil)

// New returns a fake OpenGL 4.6 driver with no extensions.
func New() *Functions {
	return &Functions{
		Version:     "4.6.0 glfake",
		Ints:        map[glapi.Enum]int{},
		Floats:      map[glapi.Enum]float32{},
		fail:        map[string]glapi.Enum{},
		live:        map[string]map[uint32]bool{},
		enabled:     map[glapi.Enum]bool{},
		buffers:     map[glapi.Buffer][]byte{},
		bound:       map[glapi.Enum]glapi.Buffer{},
		mapped:      map[glapi.Enum]bool{},
		attachments: map[glapi.Framebuffer]map[glapi.Enum]uint32{},
		shaders:     map[glapi.Shader]*shader{},
		programs:    map[glapi.Program]*program{},
	}
}

// FailOn makes every subsequent call named name report code
// through GetError, until [Functions.ClearFailures].
func (f *Functions) FailOn(name string, code glapi.Enum) {
	f.fail[name] = code
}

// ClearFailures removes all injected failures.
func (f *Functions) ClearFailures() {
	clear(f.fail)
}

// ClearCalls empties the call record.
func (f *Functions) ClearCalls() {
	f.Calls = nil
}

// Named returns the recorded calls with the given name.
func (f *Functions) Named(name string) []Call {
	var cs []Call
	for _, c := range f.Calls {
		if c.Name == name {
			cs = append(cs, c)
		}
	}
	return cs
}

// Count returns the number of recorded calls with the given name.
func (f *Functions) Count(name string) int {
	return len(f.Named(name))
}

// Names returns the names of all recorded calls, in order.
func (f *Functions) Names() []string {
	ns := make([]string, len(f.Calls))
	for i, c := range f.Calls {
		ns[i] = c.Name
	}
	return ns
}

// Live returns the number of live handles of the given kind.
func (f *Functions) Live(kind string) int {
	return len(f.live[kind])
}

// IsEnabled reports whether cap is currently enabled.
func (f *Functions) IsEnabled(cap glapi.Enum) bool {
	return f.enabled[cap]
}

// BufferContents returns the storage of buffer b.
func (f *Functions) BufferContents(b glapi.Buffer) []byte {
	return f.buffers[b]
}

// Attachment returns the object attached to the given slot of fb.
func (f *Functions) Attachment(fb glapi.Framebuffer, attachment glapi.Enum) uint32 {
	return f.attachments[fb][attachment]
}

// ReadFramebuffer returns the framebuffer bound for reading.
func (f *Functions) ReadFramebuffer() glapi.Framebuffer { return f.readFB }

// DrawFramebuffer returns the framebuffer bound for drawing.
func (f *Functions) DrawFramebuffer() glapi.Framebuffer { return f.drawFB }

// EmitDebug delivers a message to the installed debug callback.
func (f *Functions) EmitDebug(severity glapi.Enum, msg string) {
	if f.Debug != nil {
		f.Debug(glapi.DEBUG_SOURCE_API, glapi.DEBUG_TYPE_ERROR, 1, severity, msg)
	}
}

func (f *Functions) record(name string, args ...any) {
	f.Calls = append(f.Calls, Call{Name: name, Args: args})
	if code, ok := f.fail[name]; ok {
		f.errs = append(f.errs, code)
	}
}

func (f *Functions) failed(name string) bool {
	_, ok := f.fail[name]
	return ok
}

func (f *Functions) setError(code glapi.Enum) {
	f.errs = append(f.errs, code)
}

func (f *Functions) gen(kind string) uint32 {
	f.next++
	if f.live[kind] == nil {
		f.live[kind] = map[uint32]bool{}
	}
	f.live[kind][f.next] = true
	return f.next
}

func (f *Functions) del(kind string, h uint32) {
	if h == 0 {
		return
	}
	delete(f.live[kind], h)
}

func (f *Functions) GetError() glapi.Enum {
	f.record("GetError")
	if len(f.errs) == 0 {
		return glapi.NO_ERROR
	}
	e := f.errs[0]
	f.errs = f.errs[1:]
	return e
}

func (f *Functions) GetString(name glapi.Enum) string {
	f.record("GetString", name)
	switch name {
	case glapi.VERSION:
		return f.Version
	case glapi.RENDERER:
		return "glfake"
	case glapi.VENDOR:
		return "Cogent Core"
	case glapi.SHADING_LANGUAGE_VERSION:
		return "4.60"
	}
	return ""
}

func (f *Functions) GetStringi(name glapi.Enum, index int) string {
	f.record("GetStringi", name, index)
	if name == glapi.EXTENSIONS && index >= 0 && index < len(f.Exts) {
		return f.Exts[index]
	}
	f.setError(glapi.INVALID_VALUE)
	return ""
}

var defaultInts = map[glapi.Enum]int{
	glapi.MAX_CLIP_DISTANCES:                 8,
	glapi.MAX_COMBINED_TEXTURE_IMAGE_UNITS:   32,
	glapi.MAX_IMAGE_UNITS:                    8,
	glapi.MAX_SHADER_STORAGE_BUFFER_BINDINGS: 8,
	glapi.MAX_DRAW_BUFFERS:                   8,
	glapi.MAX_COLOR_ATTACHMENTS:              8,
	glapi.MAX_VERTEX_ATTRIBS:                 16,
}

func (f *Functions) GetInteger(pname glapi.Enum) int {
	f.record("GetInteger", pname)
	if v, ok := f.Ints[pname]; ok {
		return v
	}
	if pname == glapi.NUM_EXTENSIONS {
		return len(f.Exts)
	}
	return defaultInts[pname]
}

func (f *Functions) GetFloat(pname glapi.Enum) float32 {
	f.record("GetFloat", pname)
	if v, ok := f.Floats[pname]; ok {
		return v
	}
	if pname == glapi.MAX_TEXTURE_MAX_ANISOTROPY {
		return 16
	}
	return 0
}

func (f *Functions) GenBuffer() glapi.Buffer {
	f.record("GenBuffer")
	if f.failed("GenBuffer") {
		return 0
	}
	return glapi.Buffer(f.gen(KindBuffer))
}

func (f *Functions) DeleteBuffer(b glapi.Buffer) {
	f.record("DeleteBuffer", b)
	f.del(KindBuffer, uint32(b))
	delete(f.buffers, b)
}

func (f *Functions) BindBuffer(target glapi.Enum, b glapi.Buffer) {
	f.record("BindBuffer", target, b)
	f.bound[target] = b
}

func (f *Functions) BufferData(target glapi.Enum, size int, data []byte, usage glapi.Enum) {
	f.record("BufferData", target, size, len(data), usage)
	b := f.bound[target]
	if b == 0 {
		f.setError(glapi.INVALID_OPERATION)
		return
	}
	if f.failed("BufferData") {
		return
	}
	st := make([]byte, size)
	copy(st, data)
	f.buffers[b] = st
}

func (f *Functions) BufferSubData(target glapi.Enum, offset int, data []byte) {
	f.record("BufferSubData", target, offset, slices.Clone(data))
	st, ok := f.buffers[f.bound[target]]
	if !ok || offset < 0 || offset+len(data) > len(st) {
		f.setError(glapi.INVALID_VALUE)
		return
	}
	copy(st[offset:], data)
}

func (f *Functions) GetBufferParameteri(target, pname glapi.Enum) int {
	f.record("GetBufferParameteri", target, pname)
	if pname == glapi.BUFFER_SIZE {
		return len(f.buffers[f.bound[target]])
	}
	return 0
}

func (f *Functions) MapBuffer(target, access glapi.Enum) unsafe.Pointer {
	f.record("MapBuffer", target, access)
	st, ok := f.buffers[f.bound[target]]
	if !ok || f.mapped[target] || f.failed("MapBuffer") {
		if !f.failed("MapBuffer") {
			f.setError(glapi.INVALID_OPERATION)
		}
		return nil
	}
	f.mapped[target] = true
	if len(st) == 0 {
		return nil
	}
	return unsafe.Pointer(&st[0])
}

func (f *Functions) UnmapBuffer(target glapi.Enum) bool {
	f.record("UnmapBuffer", target)
	if !f.mapped[target] {
		f.setError(glapi.INVALID_OPERATION)
		return false
	}
	f.mapped[target] = false
	return !f.UnmapCorrupt
}

// Mapped reports whether the buffer bound to target is mapped.
func (f *Functions) Mapped(target glapi.Enum) bool {
	return f.mapped[target]
}

func (f *Functions) BindBufferBase(target glapi.Enum, index int, b glapi.Buffer) {
	f.record("BindBufferBase", target, index, b)
}

func (f *Functions) BindBufferRange(target glapi.Enum, index int, b glapi.Buffer, offset, size int) {
	f.record("BindBufferRange", target, index, b, offset, size)
}

func (f *Functions) GenVertexArray() glapi.VertexArray {
	f.record("GenVertexArray")
	if f.failed("GenVertexArray") {
		return 0
	}
	return glapi.VertexArray(f.gen(KindVertexArray))
}

func (f *Functions) DeleteVertexArray(va glapi.VertexArray) {
	f.record("DeleteVertexArray", va)
	f.del(KindVertexArray, uint32(va))
}

func (f *Functions) BindVertexArray(va glapi.VertexArray) {
	f.record("BindVertexArray", va)
}

func (f *Functions) VertexAttribPointer(index, size int, typ glapi.Enum, normalized bool, stride, offset int) {
	f.record("VertexAttribPointer", index, size, typ, normalized, stride, offset)
}

func (f *Functions) VertexAttribIPointer(index, size int, typ glapi.Enum, stride, offset int) {
	f.record("VertexAttribIPointer", index, size, typ, stride, offset)
}

func (f *Functions) EnableVertexAttribArray(index int) {
	f.record("EnableVertexAttribArray", index)
}

func (f *Functions) VertexAttribDivisor(index, divisor int) {
	f.record("VertexAttribDivisor", index, divisor)
}

func (f *Functions) GenTexture() glapi.Texture {
	f.record("GenTexture")
	if f.failed("GenTexture") {
		return 0
	}
	return glapi.Texture(f.gen(KindTexture))
}

func (f *Functions) DeleteTexture(t glapi.Texture) {
	f.record("DeleteTexture", t)
	f.del(KindTexture, uint32(t))
}

func (f *Functions) ActiveTexture(unit glapi.Enum) {
	f.record("ActiveTexture", unit)
}

func (f *Functions) BindTexture(target glapi.Enum, t glapi.Texture) {
	f.record("BindTexture", target, t)
}

func (f *Functions) PixelStorei(pname glapi.Enum, param int) {
	f.record("PixelStorei", pname, param)
}

func (f *Functions) TexImage2D(target glapi.Enum, level int, internalFormat glapi.Enum, width, height int, format, typ glapi.Enum, data []byte) {
	f.record("TexImage2D", target, level, internalFormat, width, height, format, typ, len(data))
}

func (f *Functions) GenerateMipmap(target glapi.Enum) {
	f.record("GenerateMipmap", target)
}

func (f *Functions) TexParameteri(target, pname glapi.Enum, param int) {
	f.record("TexParameteri", target, pname, param)
}

func (f *Functions) TexParameterf(target, pname glapi.Enum, param float32) {
	f.record("TexParameterf", target, pname, param)
}

func (f *Functions) TexParameterfv(target, pname glapi.Enum, params []float32) {
	f.record("TexParameterfv", target, pname, slices.Clone(params))
}

func (f *Functions) BindImageTexture(unit int, t glapi.Texture, level int, layered bool, layer int, access, format glapi.Enum) {
	f.record("BindImageTexture", unit, t, level, layered, layer, access, format)
}

func (f *Functions) GenFramebuffer() glapi.Framebuffer {
	f.record("GenFramebuffer")
	if f.failed("GenFramebuffer") {
		return 0
	}
	return glapi.Framebuffer(f.gen(KindFramebuffer))
}

func (f *Functions) DeleteFramebuffer(fb glapi.Framebuffer) {
	f.record("DeleteFramebuffer", fb)
	f.del(KindFramebuffer, uint32(fb))
	delete(f.attachments, fb)
}

func (f *Functions) BindFramebuffer(target glapi.Enum, fb glapi.Framebuffer) {
	f.record("BindFramebuffer", target, fb)
	switch target {
	case glapi.FRAMEBUFFER:
		f.drawFB, f.readFB = fb, fb
	case glapi.DRAW_FRAMEBUFFER:
		f.drawFB = fb
	case glapi.READ_FRAMEBUFFER:
		f.readFB = fb
	default:
		f.setError(glapi.INVALID_ENUM)
	}
}

func (f *Functions) framebufferFor(target glapi.Enum) glapi.Framebuffer {
	if target == glapi.READ_FRAMEBUFFER {
		return f.readFB
	}
	return f.drawFB
}

func (f *Functions) attach(target, attachment glapi.Enum, obj uint32) {
	fb := f.framebufferFor(target)
	if fb == 0 {
		f.setError(glapi.INVALID_OPERATION)
		return
	}
	if f.attachments[fb] == nil {
		f.attachments[fb] = map[glapi.Enum]uint32{}
	}
	f.attachments[fb][attachment] = obj
}

func (f *Functions) FramebufferTexture2D(target, attachment, texTarget glapi.Enum, t glapi.Texture, level int) {
	f.record("FramebufferTexture2D", target, attachment, texTarget, t, level)
	f.attach(target, attachment, uint32(t))
}

func (f *Functions) FramebufferRenderbuffer(target, attachment, rbTarget glapi.Enum, rb glapi.Renderbuffer) {
	f.record("FramebufferRenderbuffer", target, attachment, rbTarget, rb)
	f.attach(target, attachment, uint32(rb))
}

func (f *Functions) GetFramebufferAttachmentParameteri(target, attachment, pname glapi.Enum) int {
	f.record("GetFramebufferAttachmentParameteri", target, attachment, pname)
	if pname != glapi.FRAMEBUFFER_ATTACHMENT_OBJECT_NAME {
		return 0
	}
	return int(f.attachments[f.framebufferFor(target)][attachment])
}

func (f *Functions) CheckFramebufferStatus(target glapi.Enum) glapi.Enum {
	f.record("CheckFramebufferStatus", target)
	fb := f.framebufferFor(target)
	if fb != 0 && len(f.attachments[fb]) == 0 {
		return glapi.FRAMEBUFFER_INCOMPLETE_MISSING_ATTACHMENT
	}
	return glapi.FRAMEBUFFER_COMPLETE
}

func (f *Functions) DrawBuffers(bufs []glapi.Enum) {
	f.record("DrawBuffers", slices.Clone(bufs))
}

// ReadPixels fills FLOAT reads with the handle of the object attached
// to the slot being read, so tests can tell which attachment was read.
func (f *Functions) ReadPixels(x, y, width, height int, format, typ glapi.Enum, data unsafe.Pointer) {
	f.record("ReadPixels", x, y, width, height, format, typ)
	if f.failed("ReadPixels") || typ != glapi.FLOAT || data == nil {
		return
	}
	slot := glapi.COLOR_ATTACHMENT0
	if format == glapi.DEPTH_COMPONENT {
		slot = glapi.DEPTH_ATTACHMENT
	}
	v := float32(f.attachments[f.readFB][slot])
	n := width * height * glapi.FormatComponents(format)
	for i, px := 0, unsafe.Slice((*float32)(data), n); i < n; i++ {
		px[i] = v
	}
}

func (f *Functions) Viewport(x, y, width, height int) {
	f.record("Viewport", x, y, width, height)
}

func (f *Functions) GenRenderbuffer() glapi.Renderbuffer {
	f.record("GenRenderbuffer")
	if f.failed("GenRenderbuffer") {
		return 0
	}
	return glapi.Renderbuffer(f.gen(KindRenderbuffer))
}

func (f *Functions) DeleteRenderbuffer(rb glapi.Renderbuffer) {
	f.record("DeleteRenderbuffer", rb)
	f.del(KindRenderbuffer, uint32(rb))
}

func (f *Functions) BindRenderbuffer(target glapi.Enum, rb glapi.Renderbuffer) {
	f.record("BindRenderbuffer", target, rb)
}

func (f *Functions) RenderbufferStorage(target, internalFormat glapi.Enum, width, height int) {
	f.record("RenderbufferStorage", target, internalFormat, width, height)
}

func (f *Functions) CreateShader(typ glapi.Enum) glapi.Shader {
	f.record("CreateShader", typ)
	switch typ {
	case glapi.VERTEX_SHADER, glapi.FRAGMENT_SHADER, glapi.GEOMETRY_SHADER, glapi.COMPUTE_SHADER:
	default:
		f.setError(glapi.INVALID_ENUM)
		return 0
	}
	if f.failed("CreateShader") {
		return 0
	}
	s := glapi.Shader(f.gen(KindShader))
	f.shaders[s] = &shader{typ: typ}
	return s
}

func (f *Functions) ShaderSource(s glapi.Shader, src string) {
	f.record("ShaderSource", s, src)
	if sh, ok := f.shaders[s]; ok {
		sh.src = src
	}
}

func (f *Functions) CompileShader(s glapi.Shader) {
	f.record("CompileShader", s)
	sh, ok := f.shaders[s]
	if !ok {
		f.setError(glapi.INVALID_VALUE)
		return
	}
	sh.log = compileError(sh.src)
	sh.compiled = sh.log == ""
}

func (f *Functions) GetShaderi(s glapi.Shader, pname glapi.Enum) int {
	f.record("GetShaderi", s, pname)
	sh, ok := f.shaders[s]
	if !ok {
		return 0
	}
	switch pname {
	case glapi.COMPILE_STATUS:
		if sh.compiled {
			return 1
		}
	case glapi.INFO_LOG_LENGTH:
		if sh.log != "" {
			return len(sh.log) + 1
		}
	}
	return 0
}

func (f *Functions) GetShaderInfoLog(s glapi.Shader) string {
	f.record("GetShaderInfoLog", s)
	if sh, ok := f.shaders[s]; ok {
		return sh.log
	}
	return ""
}

func (f *Functions) DeleteShader(s glapi.Shader) {
	f.record("DeleteShader", s)
	f.del(KindShader, uint32(s))
	delete(f.shaders, s)
}

func (f *Functions) CreateProgram() glapi.Program {
	f.record("CreateProgram")
	if f.failed("CreateProgram") {
		return 0
	}
	p := glapi.Program(f.gen(KindProgram))
	f.programs[p] = &program{}
	return p
}

func (f *Functions) AttachShader(p glapi.Program, s glapi.Shader) {
	f.record("AttachShader", p, s)
	if pr, ok := f.programs[p]; ok {
		pr.shaders = append(pr.shaders, s)
	}
}

func (f *Functions) LinkProgram(p glapi.Program) {
	f.record("LinkProgram", p)
	pr, ok := f.programs[p]
	if !ok {
		f.setError(glapi.INVALID_VALUE)
		return
	}
	pr.uniforms, pr.attribs, pr.blocks = nil, nil, nil
	if f.LinkLog != "" {
		pr.linked, pr.log = false, f.LinkLog
		return
	}
	for _, s := range pr.shaders {
		sh, ok := f.shaders[s]
		if !ok || !sh.compiled {
			pr.linked, pr.log = false, "error: attached shader is not compiled"
			return
		}
		u, a, b := scanSource(sh.src, sh.typ)
		for _, v := range u {
			if !slices.ContainsFunc(pr.uniforms, func(e variable) bool { return e.name == v.name }) {
				pr.uniforms = append(pr.uniforms, v)
			}
		}
		pr.attribs = append(pr.attribs, a...)
		pr.blocks = append(pr.blocks, b...)
	}
	pr.linked, pr.log = true, ""
}

func (f *Functions) GetProgrami(p glapi.Program, pname glapi.Enum) int {
	f.record("GetProgrami", p, pname)
	pr, ok := f.programs[p]
	if !ok {
		return 0
	}
	switch pname {
	case glapi.LINK_STATUS:
		if pr.linked {
			return 1
		}
	case glapi.INFO_LOG_LENGTH:
		if pr.log != "" {
			return len(pr.log) + 1
		}
	case glapi.ACTIVE_UNIFORMS:
		return len(pr.uniforms)
	case glapi.ACTIVE_ATTRIBUTES:
		return len(pr.attribs)
	}
	return 0
}

func (f *Functions) GetProgramInfoLog(p glapi.Program) string {
	f.record("GetProgramInfoLog", p)
	if pr, ok := f.programs[p]; ok {
		return pr.log
	}
	return ""
}

func (f *Functions) DeleteProgram(p glapi.Program) {
	f.record("DeleteProgram", p)
	f.del(KindProgram, uint32(p))
	delete(f.programs, p)
}

func (f *Functions) UseProgram(p glapi.Program) {
	f.record("UseProgram", p)
}

func (f *Functions) GetActiveUniform(p glapi.Program, index int) (string, int, glapi.Enum) {
	f.record("GetActiveUniform", p, index)
	pr, ok := f.programs[p]
	if !ok || index < 0 || index >= len(pr.uniforms) {
		f.setError(glapi.INVALID_VALUE)
		return "", 0, 0
	}
	v := pr.uniforms[index]
	return v.name, v.size, v.typ
}

// GetUniformLocation assigns each active uniform the location of its
// index, matching the bare or [0]-suffixed name.
func (f *Functions) GetUniformLocation(p glapi.Program, name string) glapi.Uniform {
	f.record("GetUniformLocation", p, name)
	if pr, ok := f.programs[p]; ok {
		for i, v := range pr.uniforms {
			if v.name == name || strings.TrimSuffix(v.name, "[0]") == name {
				return glapi.Uniform(i)
			}
		}
	}
	return -1
}

func (f *Functions) GetActiveAttrib(p glapi.Program, index int) (string, int, glapi.Enum) {
	f.record("GetActiveAttrib", p, index)
	pr, ok := f.programs[p]
	if !ok || index < 0 || index >= len(pr.attribs) {
		f.setError(glapi.INVALID_VALUE)
		return "", 0, 0
	}
	v := pr.attribs[index]
	return v.name, v.size, v.typ
}

func (f *Functions) GetAttribLocation(p glapi.Program, name string) int {
	f.record("GetAttribLocation", p, name)
	if pr, ok := f.programs[p]; ok {
		for i, v := range pr.attribs {
			if v.name == name || strings.TrimSuffix(v.name, "[0]") == name {
				return i
			}
		}
	}
	return -1
}

func (f *Functions) GetProgramInterfacei(p glapi.Program, iface, pname glapi.Enum) int {
	f.record("GetProgramInterfacei", p, iface, pname)
	pr, ok := f.programs[p]
	if !ok || iface != glapi.SHADER_STORAGE_BLOCK || pname != glapi.ACTIVE_RESOURCES {
		return 0
	}
	return len(pr.blocks)
}

func (f *Functions) GetProgramResourceName(p glapi.Program, iface glapi.Enum, index int) string {
	f.record("GetProgramResourceName", p, iface, index)
	pr, ok := f.programs[p]
	if !ok || index < 0 || index >= len(pr.blocks) {
		f.setError(glapi.INVALID_VALUE)
		return ""
	}
	return pr.blocks[index].name
}

func (f *Functions) GetProgramResourceiv(p glapi.Program, iface glapi.Enum, index int, props []glapi.Enum) []int {
	f.record("GetProgramResourceiv", p, iface, index, slices.Clone(props))
	pr, ok := f.programs[p]
	if !ok || index < 0 || index >= len(pr.blocks) {
		f.setError(glapi.INVALID_VALUE)
		return nil
	}
	res := make([]int, len(props))
	for i, pn := range props {
		switch pn {
		case glapi.BUFFER_BINDING:
			res[i] = pr.blocks[index].binding
		case glapi.BUFFER_DATA_SIZE:
			res[i] = 16
		}
	}
	return res
}

func (f *Functions) Uniformfv(loc glapi.Uniform, arity, count int, v []float32) {
	f.record("Uniformfv", loc, arity, count, slices.Clone(v))
}

func (f *Functions) Uniformdv(loc glapi.Uniform, arity, count int, v []float64) {
	f.record("Uniformdv", loc, arity, count, slices.Clone(v))
}

func (f *Functions) Uniformiv(loc glapi.Uniform, arity, count int, v []int32) {
	f.record("Uniformiv", loc, arity, count, slices.Clone(v))
}

func (f *Functions) Uniformuiv(loc glapi.Uniform, arity, count int, v []uint32) {
	f.record("Uniformuiv", loc, arity, count, slices.Clone(v))
}

func (f *Functions) UniformMatrixfv(loc glapi.Uniform, cols, rows, count int, transpose bool, v []float32) {
	f.record("UniformMatrixfv", loc, cols, rows, count, transpose, slices.Clone(v))
}

func (f *Functions) UniformMatrixdv(loc glapi.Uniform, cols, rows, count int, transpose bool, v []float64) {
	f.record("UniformMatrixdv", loc, cols, rows, count, transpose, slices.Clone(v))
}

func (f *Functions) Enable(cap glapi.Enum) {
	f.record("Enable", cap)
	f.enabled[cap] = true
}

func (f *Functions) Disable(cap glapi.Enum) {
	f.record("Disable", cap)
	f.enabled[cap] = false
}

func (f *Functions) ClearColor(r, g, b, a float32) { f.record("ClearColor", r, g, b, a) }
func (f *Functions) ClearDepth(d float32)          { f.record("ClearDepth", d) }
func (f *Functions) Clear(mask glapi.Enum)         { f.record("Clear", mask) }
func (f *Functions) DepthMask(flag bool)           { f.record("DepthMask", flag) }
func (f *Functions) DepthFunc(fn glapi.Enum)       { f.record("DepthFunc", fn) }
func (f *Functions) ColorMask(r, g, b, a bool)     { f.record("ColorMask", r, g, b, a) }

func (f *Functions) BlendFuncSeparate(srcRGB, dstRGB, srcA, dstA glapi.Enum) {
	f.record("BlendFuncSeparate", srcRGB, dstRGB, srcA, dstA)
}

func (f *Functions) BlendEquation(mode glapi.Enum)        { f.record("BlendEquation", mode) }
func (f *Functions) BlendColor(r, g, b, a float32)        { f.record("BlendColor", r, g, b, a) }
func (f *Functions) CullFace(mode glapi.Enum)             { f.record("CullFace", mode) }
func (f *Functions) Scissor(x, y, width, height int)      { f.record("Scissor", x, y, width, height) }
func (f *Functions) PolygonMode(face, mode glapi.Enum)    { f.record("PolygonMode", face, mode) }
func (f *Functions) PointSize(size float32)               { f.record("PointSize", size) }
func (f *Functions) ClipControl(origin, depth glapi.Enum) { f.record("ClipControl", origin, depth) }

func (f *Functions) DrawArrays(mode glapi.Enum, first, count int) {
	f.record("DrawArrays", mode, first, count)
}

func (f *Functions) DrawArraysInstanced(mode glapi.Enum, first, count, instances int) {
	f.record("DrawArraysInstanced", mode, first, count, instances)
}

func (f *Functions) DrawElements(mode glapi.Enum, count int, typ glapi.Enum, offset int) {
	f.record("DrawElements", mode, count, typ, offset)
}

func (f *Functions) DrawElementsInstanced(mode glapi.Enum, count int, typ glapi.Enum, offset, instances int) {
	f.record("DrawElementsInstanced", mode, count, typ, offset, instances)
}

func (f *Functions) DispatchCompute(x, y, z uint32) { f.record("DispatchCompute", x, y, z) }

func (f *Functions) MemoryBarrier(barriers glapi.Enum) { f.record("MemoryBarrier", barriers) }

func (f *Functions) DebugMessageCallback(fn glapi.DebugProc) {
	f.record("DebugMessageCallback", fn != nil)
	f.Debug = fn
}
