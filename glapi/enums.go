// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glapi

// Enum is a native driver enumeration value.
type Enum uint32

// Errors.
const (
	NO_ERROR                      Enum = 0
	INVALID_ENUM                  Enum = 0x0500
	INVALID_VALUE                 Enum = 0x0501
	INVALID_OPERATION             Enum = 0x0502
	STACK_OVERFLOW                Enum = 0x0503
	STACK_UNDERFLOW               Enum = 0x0504
	OUT_OF_MEMORY                 Enum = 0x0505
	INVALID_FRAMEBUFFER_OPERATION Enum = 0x0506
	CONTEXT_LOST                  Enum = 0x0507
)

// Buffer targets, usages and access.
const (
	ARRAY_BUFFER              Enum = 0x8892
	ELEMENT_ARRAY_BUFFER      Enum = 0x8893
	PIXEL_PACK_BUFFER         Enum = 0x88EB
	PIXEL_UNPACK_BUFFER       Enum = 0x88EC
	UNIFORM_BUFFER            Enum = 0x8A11
	TEXTURE_BUFFER            Enum = 0x8C2A
	TRANSFORM_FEEDBACK_BUFFER Enum = 0x8C8E
	COPY_READ_BUFFER          Enum = 0x8F36
	COPY_WRITE_BUFFER         Enum = 0x8F37
	DRAW_INDIRECT_BUFFER      Enum = 0x8F3F
	SHADER_STORAGE_BUFFER     Enum = 0x90D2
	DISPATCH_INDIRECT_BUFFER  Enum = 0x90EE
	ATOMIC_COUNTER_BUFFER     Enum = 0x92C0

	BUFFER_SIZE  Enum = 0x8764
	BUFFER_USAGE Enum = 0x8765

	STREAM_DRAW  Enum = 0x88E0
	STREAM_READ  Enum = 0x88E1
	STREAM_COPY  Enum = 0x88E2
	STATIC_DRAW  Enum = 0x88E4
	STATIC_READ  Enum = 0x88E5
	STATIC_COPY  Enum = 0x88E6
	DYNAMIC_DRAW Enum = 0x88E8
	DYNAMIC_READ Enum = 0x88E9
	DYNAMIC_COPY Enum = 0x88EA

	READ_ONLY  Enum = 0x88B8
	WRITE_ONLY Enum = 0x88B9
	READ_WRITE Enum = 0x88BA
)

// Scalar types.
const (
	BYTE           Enum = 0x1400
	UNSIGNED_BYTE  Enum = 0x1401
	SHORT          Enum = 0x1402
	UNSIGNED_SHORT Enum = 0x1403
	INT            Enum = 0x1404
	UNSIGNED_INT   Enum = 0x1405
	FLOAT          Enum = 0x1406
	DOUBLE         Enum = 0x140A
	HALF_FLOAT     Enum = 0x140B
	FIXED          Enum = 0x140C

	UNSIGNED_INT_24_8 Enum = 0x84FA
)

// Uniform and attribute type tags.
const (
	FLOAT_VEC2        Enum = 0x8B50
	FLOAT_VEC3        Enum = 0x8B51
	FLOAT_VEC4        Enum = 0x8B52
	INT_VEC2          Enum = 0x8B53
	INT_VEC3          Enum = 0x8B54
	INT_VEC4          Enum = 0x8B55
	BOOL              Enum = 0x8B56
	BOOL_VEC2         Enum = 0x8B57
	BOOL_VEC3         Enum = 0x8B58
	BOOL_VEC4         Enum = 0x8B59
	FLOAT_MAT2        Enum = 0x8B5A
	FLOAT_MAT3        Enum = 0x8B5B
	FLOAT_MAT4        Enum = 0x8B5C
	FLOAT_MAT2x3      Enum = 0x8B65
	FLOAT_MAT2x4      Enum = 0x8B66
	FLOAT_MAT3x2      Enum = 0x8B67
	FLOAT_MAT3x4      Enum = 0x8B68
	FLOAT_MAT4x2      Enum = 0x8B69
	FLOAT_MAT4x3      Enum = 0x8B6A
	UNSIGNED_INT_VEC2 Enum = 0x8DC6
	UNSIGNED_INT_VEC3 Enum = 0x8DC7
	UNSIGNED_INT_VEC4 Enum = 0x8DC8
	DOUBLE_MAT2       Enum = 0x8F46
	DOUBLE_MAT3       Enum = 0x8F47
	DOUBLE_MAT4       Enum = 0x8F48
	DOUBLE_MAT2x3     Enum = 0x8F49
	DOUBLE_MAT2x4     Enum = 0x8F4A
	DOUBLE_MAT3x2     Enum = 0x8F4B
	DOUBLE_MAT3x4     Enum = 0x8F4C
	DOUBLE_MAT4x2     Enum = 0x8F4D
	DOUBLE_MAT4x3     Enum = 0x8F4E
	DOUBLE_VEC2       Enum = 0x8FFC
	DOUBLE_VEC3       Enum = 0x8FFD
	DOUBLE_VEC4       Enum = 0x8FFE

	SAMPLER_1D              Enum = 0x8B5D
	SAMPLER_2D              Enum = 0x8B5E
	SAMPLER_3D              Enum = 0x8B5F
	SAMPLER_CUBE            Enum = 0x8B60
	SAMPLER_1D_SHADOW       Enum = 0x8B61
	SAMPLER_2D_SHADOW       Enum = 0x8B62
	SAMPLER_2D_ARRAY        Enum = 0x8DC1
	SAMPLER_BUFFER          Enum = 0x8DC2
	INT_SAMPLER_2D          Enum = 0x8DCA
	UNSIGNED_INT_SAMPLER_2D Enum = 0x8DD2
	IMAGE_2D                Enum = 0x904D
	SAMPLER_2D_MULTISAMPLE  Enum = 0x9108
)

// Textures.
const (
	TEXTURE_1D       Enum = 0x0DE0
	TEXTURE_2D       Enum = 0x0DE1
	TEXTURE_3D       Enum = 0x806F
	TEXTURE_CUBE_MAP Enum = 0x8513
	TEXTURE_2D_ARRAY Enum = 0x8C1A

	TEXTURE0       Enum = 0x84C0
	ACTIVE_TEXTURE Enum = 0x84E0

	TEXTURE_MAG_FILTER         Enum = 0x2800
	TEXTURE_MIN_FILTER         Enum = 0x2801
	TEXTURE_WRAP_S             Enum = 0x2802
	TEXTURE_WRAP_T             Enum = 0x2803
	TEXTURE_WRAP_R             Enum = 0x8072
	TEXTURE_BORDER_COLOR       Enum = 0x1004
	TEXTURE_MAX_ANISOTROPY     Enum = 0x84FE
	MAX_TEXTURE_MAX_ANISOTROPY Enum = 0x84FF

	NEAREST                Enum = 0x2600
	LINEAR                 Enum = 0x2601
	NEAREST_MIPMAP_NEAREST Enum = 0x2700
	LINEAR_MIPMAP_NEAREST  Enum = 0x2701
	NEAREST_MIPMAP_LINEAR  Enum = 0x2702
	LINEAR_MIPMAP_LINEAR   Enum = 0x2703

	REPEAT               Enum = 0x2901
	CLAMP_TO_BORDER      Enum = 0x812D
	CLAMP_TO_EDGE        Enum = 0x812F
	MIRRORED_REPEAT      Enum = 0x8370
	MIRROR_CLAMP_TO_EDGE Enum = 0x8743

	UNPACK_ALIGNMENT Enum = 0x0CF5
	PACK_ALIGNMENT   Enum = 0x0D05
)

// Pixel formats.
const (
	DEPTH_COMPONENT Enum = 0x1902
	RED             Enum = 0x1903
	RGB             Enum = 0x1907
	RGBA            Enum = 0x1908
	BGR             Enum = 0x80E0
	BGRA            Enum = 0x80E1
	RG              Enum = 0x8227
	RG_INTEGER      Enum = 0x8228
	DEPTH_STENCIL   Enum = 0x84F9
	RED_INTEGER     Enum = 0x8D94
	RGB_INTEGER     Enum = 0x8D98
	RGBA_INTEGER    Enum = 0x8D99

	R8                 Enum = 0x8229
	RG8                Enum = 0x822B
	RGB8               Enum = 0x8051
	RGBA8              Enum = 0x8058
	SRGB8              Enum = 0x8C41
	SRGB8_ALPHA8       Enum = 0x8C43
	R16F               Enum = 0x822D
	RG16F              Enum = 0x822F
	RGB16F             Enum = 0x881B
	RGBA16F            Enum = 0x881A
	R32F               Enum = 0x822E
	RG32F              Enum = 0x8230
	RGB32F             Enum = 0x8815
	RGBA32F            Enum = 0x8814
	R32I               Enum = 0x8235
	R32UI              Enum = 0x8236
	RGBA32I            Enum = 0x8D82
	RGBA32UI           Enum = 0x8D70
	DEPTH_COMPONENT16  Enum = 0x81A5
	DEPTH_COMPONENT24  Enum = 0x81A6
	DEPTH_COMPONENT32F Enum = 0x8CAC
	DEPTH24_STENCIL8   Enum = 0x88F0
)

// Framebuffers.
const (
	NONE Enum = 0

	FRAMEBUFFER              Enum = 0x8D40
	READ_FRAMEBUFFER         Enum = 0x8CA8
	DRAW_FRAMEBUFFER         Enum = 0x8CA9
	RENDERBUFFER             Enum = 0x8D41
	COLOR_ATTACHMENT0        Enum = 0x8CE0
	DEPTH_ATTACHMENT         Enum = 0x8D00
	STENCIL_ATTACHMENT       Enum = 0x8D20
	DEPTH_STENCIL_ATTACHMENT Enum = 0x821A
	FRAMEBUFFER_COMPLETE     Enum = 0x8CD5

	FRAMEBUFFER_INCOMPLETE_MISSING_ATTACHMENT Enum = 0x8CD7

	FRAMEBUFFER_ATTACHMENT_OBJECT_TYPE Enum = 0x8CD0
	FRAMEBUFFER_ATTACHMENT_OBJECT_NAME Enum = 0x8CD1

	MAX_DRAW_BUFFERS      Enum = 0x8824
	MAX_COLOR_ATTACHMENTS Enum = 0x8CDF

	DEPTH_BUFFER_BIT   Enum = 0x0100
	STENCIL_BUFFER_BIT Enum = 0x0400
	COLOR_BUFFER_BIT   Enum = 0x4000
)

// Shaders and programs.
const (
	FRAGMENT_SHADER   Enum = 0x8B30
	VERTEX_SHADER     Enum = 0x8B31
	GEOMETRY_SHADER   Enum = 0x8DD9
	COMPUTE_SHADER    Enum = 0x91B9
	COMPILE_STATUS    Enum = 0x8B81
	LINK_STATUS       Enum = 0x8B82
	INFO_LOG_LENGTH   Enum = 0x8B84
	ACTIVE_UNIFORMS   Enum = 0x8B86
	ACTIVE_ATTRIBUTES Enum = 0x8B89

	SHADER_STORAGE_BLOCK Enum = 0x92E6
	ACTIVE_RESOURCES     Enum = 0x92F5
	NAME_LENGTH          Enum = 0x92F9
	BUFFER_BINDING       Enum = 0x9302
	BUFFER_DATA_SIZE     Enum = 0x9303
)

// Capabilities toggled with Enable and Disable.
const (
	CULL_FACE                Enum = 0x0B44
	DEPTH_TEST               Enum = 0x0B71
	BLEND                    Enum = 0x0BE2
	SCISSOR_TEST             Enum = 0x0C11
	CLIP_DISTANCE0           Enum = 0x3000
	PROGRAM_POINT_SIZE       Enum = 0x8642
	DEPTH_CLAMP              Enum = 0x864F
	DEBUG_OUTPUT_SYNCHRONOUS Enum = 0x8242
	DEBUG_OUTPUT             Enum = 0x92E0
)

// Comparison functions.
const (
	NEVER    Enum = 0x0200
	LESS     Enum = 0x0201
	EQUAL    Enum = 0x0202
	LEQUAL   Enum = 0x0203
	GREATER  Enum = 0x0204
	NOTEQUAL Enum = 0x0205
	GEQUAL   Enum = 0x0206
	ALWAYS   Enum = 0x0207
)

// Blend factors and equations.
const (
	ZERO                     Enum = 0
	ONE                      Enum = 1
	SRC_COLOR                Enum = 0x0300
	ONE_MINUS_SRC_COLOR      Enum = 0x0301
	SRC_ALPHA                Enum = 0x0302
	ONE_MINUS_SRC_ALPHA      Enum = 0x0303
	DST_ALPHA                Enum = 0x0304
	ONE_MINUS_DST_ALPHA      Enum = 0x0305
	DST_COLOR                Enum = 0x0306
	ONE_MINUS_DST_COLOR      Enum = 0x0307
	SRC_ALPHA_SATURATE       Enum = 0x0308
	CONSTANT_COLOR           Enum = 0x8001
	ONE_MINUS_CONSTANT_COLOR Enum = 0x8002
	CONSTANT_ALPHA           Enum = 0x8003
	ONE_MINUS_CONSTANT_ALPHA Enum = 0x8004

	FUNC_ADD              Enum = 0x8006
	MIN                   Enum = 0x8007
	MAX                   Enum = 0x8008
	FUNC_SUBTRACT         Enum = 0x800A
	FUNC_REVERSE_SUBTRACT Enum = 0x800B
)

// Faces, rasterization modes and clip conventions.
const (
	FRONT          Enum = 0x0404
	BACK           Enum = 0x0405
	FRONT_AND_BACK Enum = 0x0408

	POINT Enum = 0x1B00
	LINE  Enum = 0x1B01
	FILL  Enum = 0x1B02

	LOWER_LEFT          Enum = 0x8CA1
	UPPER_LEFT          Enum = 0x8CA2
	NEGATIVE_ONE_TO_ONE Enum = 0x935E
	ZERO_TO_ONE         Enum = 0x935F
)

// Primitive topologies.
const (
	POINTS                   Enum = 0x0000
	LINES                    Enum = 0x0001
	LINE_LOOP                Enum = 0x0002
	LINE_STRIP               Enum = 0x0003
	TRIANGLES                Enum = 0x0004
	TRIANGLE_STRIP           Enum = 0x0005
	TRIANGLE_FAN             Enum = 0x0006
	LINES_ADJACENCY          Enum = 0x000A
	LINE_STRIP_ADJACENCY     Enum = 0x000B
	TRIANGLES_ADJACENCY      Enum = 0x000C
	TRIANGLE_STRIP_ADJACENCY Enum = 0x000D
	PATCHES                  Enum = 0x000E
)

// Memory barrier bits.
const (
	VERTEX_ATTRIB_ARRAY_BARRIER_BIT Enum = 0x00000001
	ELEMENT_ARRAY_BARRIER_BIT       Enum = 0x00000002
	UNIFORM_BARRIER_BIT             Enum = 0x00000004
	TEXTURE_FETCH_BARRIER_BIT       Enum = 0x00000008
	SHADER_IMAGE_ACCESS_BARRIER_BIT Enum = 0x00000020
	COMMAND_BARRIER_BIT             Enum = 0x00000040
	PIXEL_BUFFER_BARRIER_BIT        Enum = 0x00000080
	TEXTURE_UPDATE_BARRIER_BIT      Enum = 0x00000100
	BUFFER_UPDATE_BARRIER_BIT       Enum = 0x00000200
	FRAMEBUFFER_BARRIER_BIT         Enum = 0x00000400
	TRANSFORM_FEEDBACK_BARRIER_BIT  Enum = 0x00000800
	ATOMIC_COUNTER_BARRIER_BIT      Enum = 0x00001000
	SHADER_STORAGE_BARRIER_BIT      Enum = 0x00002000
	ALL_BARRIER_BITS                Enum = 0xFFFFFFFF
)

// Strings and limits.
const (
	VENDOR                   Enum = 0x1F00
	RENDERER                 Enum = 0x1F01
	VERSION                  Enum = 0x1F02
	EXTENSIONS               Enum = 0x1F03
	SHADING_LANGUAGE_VERSION Enum = 0x8B8C
	MAJOR_VERSION            Enum = 0x821B
	MINOR_VERSION            Enum = 0x821C
	NUM_EXTENSIONS           Enum = 0x821D

	MAX_CLIP_DISTANCES                 Enum = 0x0D32
	MAX_VERTEX_ATTRIBS                 Enum = 0x8869
	MAX_COMBINED_TEXTURE_IMAGE_UNITS   Enum = 0x8B4D
	MAX_IMAGE_UNITS                    Enum = 0x8F38
	MAX_SHADER_STORAGE_BUFFER_BINDINGS Enum = 0x90DD
)

// Debug output.
const (
	DEBUG_SOURCE_API             Enum = 0x8246
	DEBUG_SOURCE_WINDOW_SYSTEM   Enum = 0x8247
	DEBUG_SOURCE_SHADER_COMPILER Enum = 0x8248
	DEBUG_SOURCE_THIRD_PARTY     Enum = 0x8249
	DEBUG_SOURCE_APPLICATION     Enum = 0x824A
	DEBUG_SOURCE_OTHER           Enum = 0x824B

	DEBUG_TYPE_ERROR               Enum = 0x824C
	DEBUG_TYPE_DEPRECATED_BEHAVIOR Enum = 0x824D
	DEBUG_TYPE_UNDEFINED_BEHAVIOR  Enum = 0x824E
	DEBUG_TYPE_PORTABILITY         Enum = 0x824F
	DEBUG_TYPE_PERFORMANCE         Enum = 0x8250
	DEBUG_TYPE_OTHER               Enum = 0x8251
	DEBUG_TYPE_MARKER              Enum = 0x8268

	DEBUG_SEVERITY_NOTIFICATION Enum = 0x826B
	DEBUG_SEVERITY_HIGH         Enum = 0x9146
	DEBUG_SEVERITY_MEDIUM       Enum = 0x9147
	DEBUG_SEVERITY_LOW          Enum = 0x9148
)

var errorNames = map[Enum]string{
	INVALID_ENUM:                  "GL_INVALID_ENUM",
	INVALID_VALUE:                 "GL_INVALID_VALUE",
	INVALID_OPERATION:             "GL_INVALID_OPERATION",
	STACK_OVERFLOW:                "GL_STACK_OVERFLOW",
	STACK_UNDERFLOW:               "GL_STACK_UNDERFLOW",
	OUT_OF_MEMORY:                 "GL_OUT_OF_MEMORY",
	INVALID_FRAMEBUFFER_OPERATION: "GL_INVALID_FRAMEBUFFER_OPERATION",
	CONTEXT_LOST:                  "GL_CONTEXT_LOST",
}

// ErrorString returns the symbolic name of a GetError code.
func ErrorString(code Enum) string {
	if code == NO_ERROR {
		return "GL_NO_ERROR"
	}
	if s, ok := errorNames[code]; ok {
		return s
	}
	return "unknown GL error"
}

// IsIntegerType reports whether typ is one of the integer scalar
// types that vertex attributes must read with integer semantics.
func IsIntegerType(typ Enum) bool {
	switch typ {
	case BYTE, UNSIGNED_BYTE, SHORT, UNSIGNED_SHORT, INT, UNSIGNED_INT:
		return true
	}
	return false
}

// TypeSize returns the size in bytes of one value of scalar type typ,
// or 0 for an unknown type.
func TypeSize(typ Enum) int {
	switch typ {
	case BYTE, UNSIGNED_BYTE:
		return 1
	case SHORT, UNSIGNED_SHORT, HALF_FLOAT:
		return 2
	case INT, UNSIGNED_INT, FLOAT, FIXED, UNSIGNED_INT_24_8:
		return 4
	case DOUBLE:
		return 8
	}
	return 0
}

// FormatComponents returns the number of components in pixel format
// f, or 0 for an unknown format.
func FormatComponents(f Enum) int {
	switch f {
	case RED, RED_INTEGER, DEPTH_COMPONENT:
		return 1
	case RG, RG_INTEGER, DEPTH_STENCIL:
		return 2
	case RGB, BGR, RGB_INTEGER:
		return 3
	case RGBA, BGRA, RGBA_INTEGER:
		return 4
	}
	return 0
}

// PixelSize returns the size in bytes of one pixel of the given
// format and scalar type, or 0 if either is unknown.
func PixelSize(format, typ Enum) int {
	if typ == UNSIGNED_INT_24_8 {
		return 4
	}
	return FormatComponents(format) * TypeSize(typ)
}
