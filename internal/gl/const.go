package gl

import glc "github.com/gogpu/wgpu/hal/gles/gl"

// Constants shared with the GLES backend of wgpu. GL constants keep
// their ALL_CAPS spelling so call sites read like the reference pages.
//
//nolint:revive,stylecheck // GL naming
const (
	FALSE = glc.FALSE
	TRUE  = glc.TRUE

	BYTE           = glc.BYTE
	UNSIGNED_BYTE  = glc.UNSIGNED_BYTE
	SHORT          = glc.SHORT
	UNSIGNED_SHORT = glc.UNSIGNED_SHORT
	INT            = glc.INT
	UNSIGNED_INT   = glc.UNSIGNED_INT
	FLOAT          = glc.FLOAT
	HALF_FLOAT     = glc.HALF_FLOAT

	UNSIGNED_INT_24_8 = glc.UNSIGNED_INT_24_8

	NO_ERROR                      = glc.NO_ERROR
	INVALID_ENUM                  = glc.INVALID_ENUM
	INVALID_VALUE                 = glc.INVALID_VALUE
	INVALID_OPERATION             = glc.INVALID_OPERATION
	OUT_OF_MEMORY                 = glc.OUT_OF_MEMORY
	INVALID_FRAMEBUFFER_OPERATION = glc.INVALID_FRAMEBUFFER_OPERATION

	BLEND        = glc.BLEND
	CULL_FACE    = glc.CULL_FACE
	DEPTH_TEST   = glc.DEPTH_TEST
	SCISSOR_TEST = glc.SCISSOR_TEST
	STENCIL_TEST = glc.STENCIL_TEST

	ELEMENT_ARRAY_BUFFER  = glc.ELEMENT_ARRAY_BUFFER
	PIXEL_PACK_BUFFER     = glc.PIXEL_PACK_BUFFER
	PIXEL_UNPACK_BUFFER   = glc.PIXEL_UNPACK_BUFFER
	SHADER_STORAGE_BUFFER = glc.SHADER_STORAGE_BUFFER

	TEXTURE_2D       = glc.TEXTURE_2D
	TEXTURE_3D       = glc.TEXTURE_3D
	TEXTURE_2D_ARRAY = glc.TEXTURE_2D_ARRAY
	TEXTURE_CUBE_MAP = glc.TEXTURE_CUBE_MAP

	TEXTURE_MAG_FILTER   = glc.TEXTURE_MAG_FILTER
	TEXTURE_MIN_FILTER   = glc.TEXTURE_MIN_FILTER
	TEXTURE_WRAP_S       = glc.TEXTURE_WRAP_S
	TEXTURE_WRAP_T       = glc.TEXTURE_WRAP_T
	TEXTURE_WRAP_R       = glc.TEXTURE_WRAP_R
	TEXTURE_MIN_LOD      = glc.TEXTURE_MIN_LOD
	TEXTURE_MAX_LOD      = glc.TEXTURE_MAX_LOD
	TEXTURE_COMPARE_MODE = glc.TEXTURE_COMPARE_MODE
	TEXTURE_COMPARE_FUNC = glc.TEXTURE_COMPARE_FUNC
	TEXTURE_BASE_LEVEL   = glc.TEXTURE_BASE_LEVEL
	TEXTURE_MAX_LEVEL    = glc.TEXTURE_MAX_LEVEL

	TEXTURE_MAX_ANISOTROPY = glc.TEXTURE_MAX_ANISOTROPY
	COMPARE_REF_TO_TEXTURE = glc.COMPARE_REF_TO_TEXTURE

	NEAREST                = glc.NEAREST
	LINEAR                 = glc.LINEAR
	NEAREST_MIPMAP_NEAREST = glc.NEAREST_MIPMAP_NEAREST
	LINEAR_MIPMAP_NEAREST  = glc.LINEAR_MIPMAP_NEAREST
	NEAREST_MIPMAP_LINEAR  = glc.NEAREST_MIPMAP_LINEAR
	LINEAR_MIPMAP_LINEAR   = glc.LINEAR_MIPMAP_LINEAR
	REPEAT                 = glc.REPEAT
	CLAMP_TO_EDGE          = glc.CLAMP_TO_EDGE
	MIRRORED_REPEAT        = glc.MIRRORED_REPEAT

	DEPTH_COMPONENT = glc.DEPTH_COMPONENT
	RED             = glc.RED
	RG              = glc.RG
	RGB             = glc.RGB
	RGBA            = glc.RGBA
	DEPTH_STENCIL   = glc.DEPTH_STENCIL
	RED_INTEGER     = glc.RED_INTEGER
	RG_INTEGER      = glc.RG_INTEGER
	RGBA_INTEGER    = glc.RGBA_INTEGER
	BGRA            = glc.BGRA

	DEPTH_COMPONENT16 = glc.DEPTH_COMPONENT16
	DEPTH_COMPONENT24 = glc.DEPTH_COMPONENT24
	DEPTH24_STENCIL8  = glc.DEPTH24_STENCIL8
	DEPTH32F_STENCIL8 = glc.DEPTH32F_STENCIL8

	R8           = glc.R8
	R16F         = glc.R16F
	R32F         = glc.R32F
	RG8          = glc.RG8
	RG16F        = glc.RG16F
	RG32F        = glc.RG32F
	RGBA8        = glc.RGBA8
	SRGB8_ALPHA8 = glc.SRGB8_ALPHA8
	RGBA16F      = glc.RGBA16F
	RGBA32F      = glc.RGBA32F
	R8I          = glc.R8I
	R8UI         = glc.R8UI
	R16I         = glc.R16I
	R16UI        = glc.R16UI
	R32I         = glc.R32I
	R32UI        = glc.R32UI
	RG8I         = glc.RG8I
	RG8UI        = glc.RG8UI
	RG16I        = glc.RG16I
	RG16UI       = glc.RG16UI
	RG32I        = glc.RG32I
	RG32UI       = glc.RG32UI
	RGBA8I       = glc.RGBA8I
	RGBA8UI      = glc.RGBA8UI
	RGBA16I      = glc.RGBA16I
	RGBA16UI     = glc.RGBA16UI
	RGBA32I      = glc.RGBA32I
	RGBA32UI     = glc.RGBA32UI

	FRAGMENT_SHADER = glc.FRAGMENT_SHADER
	VERTEX_SHADER   = glc.VERTEX_SHADER
	COMPILE_STATUS  = glc.COMPILE_STATUS
	LINK_STATUS     = glc.LINK_STATUS
	INFO_LOG_LENGTH = glc.INFO_LOG_LENGTH

	POINTS         = glc.POINTS
	LINES          = glc.LINES
	LINE_STRIP     = glc.LINE_STRIP
	TRIANGLES      = glc.TRIANGLES
	TRIANGLE_STRIP = glc.TRIANGLE_STRIP

	ZERO                     = glc.ZERO
	ONE                      = glc.ONE
	SRC_COLOR                = glc.SRC_COLOR
	ONE_MINUS_SRC_COLOR      = glc.ONE_MINUS_SRC_COLOR
	SRC_ALPHA                = glc.SRC_ALPHA
	ONE_MINUS_SRC_ALPHA      = glc.ONE_MINUS_SRC_ALPHA
	DST_ALPHA                = glc.DST_ALPHA
	ONE_MINUS_DST_ALPHA      = glc.ONE_MINUS_DST_ALPHA
	DST_COLOR                = glc.DST_COLOR
	ONE_MINUS_DST_COLOR      = glc.ONE_MINUS_DST_COLOR
	SRC_ALPHA_SATURATE       = glc.SRC_ALPHA_SATURATE
	CONSTANT_COLOR           = glc.CONSTANT_COLOR
	ONE_MINUS_CONSTANT_COLOR = glc.ONE_MINUS_CONSTANT_COLOR

	FUNC_ADD              = glc.FUNC_ADD
	FUNC_SUBTRACT         = glc.FUNC_SUBTRACT
	FUNC_REVERSE_SUBTRACT = glc.FUNC_REVERSE_SUBTRACT
	MIN                   = glc.MIN
	MAX                   = glc.MAX

	NEVER    = glc.NEVER
	LESS     = glc.LESS
	EQUAL    = glc.EQUAL
	LEQUAL   = glc.LEQUAL
	GREATER  = glc.GREATER
	NOTEQUAL = glc.NOTEQUAL
	GEQUAL   = glc.GEQUAL
	ALWAYS   = glc.ALWAYS

	KEEP      = glc.KEEP
	REPLACE   = glc.REPLACE
	INCR      = glc.INCR
	DECR      = glc.DECR
	INVERT    = glc.INVERT
	INCR_WRAP = glc.INCR_WRAP
	DECR_WRAP = glc.DECR_WRAP

	FRONT          = glc.FRONT
	BACK           = glc.BACK
	FRONT_AND_BACK = glc.FRONT_AND_BACK
	CW             = glc.CW
	CCW            = glc.CCW

	FRAMEBUFFER          = glc.FRAMEBUFFER
	READ_FRAMEBUFFER     = glc.READ_FRAMEBUFFER
	DRAW_FRAMEBUFFER     = glc.DRAW_FRAMEBUFFER
	COLOR_ATTACHMENT0    = glc.COLOR_ATTACHMENT0
	DEPTH_ATTACHMENT     = glc.DEPTH_ATTACHMENT
	STENCIL_ATTACHMENT   = glc.STENCIL_ATTACHMENT
	FRAMEBUFFER_COMPLETE = glc.FRAMEBUFFER_COMPLETE

	DEPTH_STENCIL_ATTACHMENT = glc.DEPTH_STENCIL_ATTACHMENT

	COLOR_BUFFER_BIT = glc.COLOR_BUFFER_BIT

	VENDOR                   = glc.VENDOR
	RENDERER                 = glc.RENDERER
	VERSION                  = glc.VERSION
	SHADING_LANGUAGE_VERSION = glc.SHADING_LANGUAGE_VERSION

	MAX_TEXTURE_SIZE      = glc.MAX_TEXTURE_SIZE
	MAX_VERTEX_ATTRIBS    = glc.MAX_VERTEX_ATTRIBS
	MAX_COLOR_ATTACHMENTS = glc.MAX_COLOR_ATTACHMENTS
	MAX_DRAW_BUFFERS      = glc.MAX_DRAW_BUFFERS
)

// GL 4.x constants the GLES subset does not carry.
//
//nolint:revive,stylecheck // GL naming
const (
	NONE = 0

	TEXTURE_1D             = 0x0DE0
	TEXTURE_1D_ARRAY       = 0x8C18
	TEXTURE_CUBE_MAP_ARRAY = 0x9009
	TEXTURE_BORDER_COLOR   = 0x1004
	CLAMP_TO_BORDER        = 0x812D

	LINE = 0x1B01
	FILL = 0x1B02

	COLOR   = 0x1800
	DEPTH   = 0x1801
	STENCIL = 0x1802

	FRAMEBUFFER_UNDEFINED                     = 0x8219
	FRAMEBUFFER_INCOMPLETE_ATTACHMENT         = 0x8CD6
	FRAMEBUFFER_INCOMPLETE_MISSING_ATTACHMENT = 0x8CD7
	FRAMEBUFFER_INCOMPLETE_DRAW_BUFFER        = 0x8CDB
	FRAMEBUFFER_INCOMPLETE_READ_BUFFER        = 0x8CDC
	FRAMEBUFFER_UNSUPPORTED                   = 0x8CDD
	FRAMEBUFFER_INCOMPLETE_MULTISAMPLE        = 0x8D56
	FRAMEBUFFER_INCOMPLETE_LAYER_TARGETS      = 0x8DA8

	DEBUG_OUTPUT             = 0x92E0
	DEBUG_OUTPUT_SYNCHRONOUS = 0x8242
	DONT_CARE                = 0x1100

	DEBUG_SOURCE_API             = 0x8246
	DEBUG_SOURCE_WINDOW_SYSTEM   = 0x8247
	DEBUG_SOURCE_SHADER_COMPILER = 0x8248
	DEBUG_SOURCE_THIRD_PARTY     = 0x8249
	DEBUG_SOURCE_APPLICATION     = 0x824A
	DEBUG_SOURCE_OTHER           = 0x824B

	DEBUG_TYPE_ERROR               = 0x824C
	DEBUG_TYPE_DEPRECATED_BEHAVIOR = 0x824D
	DEBUG_TYPE_UNDEFINED_BEHAVIOR  = 0x824E
	DEBUG_TYPE_PORTABILITY         = 0x824F
	DEBUG_TYPE_PERFORMANCE         = 0x8250
	DEBUG_TYPE_OTHER               = 0x8251
	DEBUG_TYPE_MARKER              = 0x8268
	DEBUG_TYPE_PUSH_GROUP          = 0x8269
	DEBUG_TYPE_POP_GROUP           = 0x826A

	DEBUG_SEVERITY_HIGH         = 0x9146
	DEBUG_SEVERITY_MEDIUM       = 0x9147
	DEBUG_SEVERITY_LOW          = 0x9148
	DEBUG_SEVERITY_NOTIFICATION = 0x826B

	BUFFER           = 0x82E0
	SHADER           = 0x82E1
	PROGRAM          = 0x82E2
	PROGRAM_PIPELINE = 0x82E4
	SAMPLER          = 0x82E6
	VERTEX_ARRAY     = 0x8074
	TEXTURE          = 0x1702

	MAP_READ_BIT        = 0x0001
	MAP_WRITE_BIT       = 0x0002
	DYNAMIC_STORAGE_BIT = 0x0100

	LOWER_LEFT          = 0x8CA1
	UPPER_LEFT          = 0x8CA2
	NEGATIVE_ONE_TO_ONE = 0x935E
	ZERO_TO_ONE         = 0x935F

	MAJOR_VERSION              = 0x821B
	MINOR_VERSION              = 0x821C
	MAX_3D_TEXTURE_SIZE        = 0x8073
	MAX_ARRAY_TEXTURE_LAYERS   = 0x88FF
	MAX_TEXTURE_MAX_ANISOTROPY = 0x84FF

	VALIDATE_STATUS     = 0x8B83
	PROGRAM_SEPARABLE   = 0x8258
	VERTEX_SHADER_BIT   = 0x00000001
	FRAGMENT_SHADER_BIT = 0x00000002

	R8_SNORM     = 0x8F94
	RG8_SNORM    = 0x8F95
	RGBA8_SNORM  = 0x8F97
	R16          = 0x822A
	RG16         = 0x822C
	RGBA16       = 0x805B
	R16_SNORM    = 0x8F98
	RG16_SNORM   = 0x8F99
	RGBA16_SNORM = 0x8F9B

	RGB10_A2           = 0x8059
	RGB10_A2UI         = 0x906F
	R11F_G11F_B10F     = 0x8C3A
	RGB9_E5            = 0x8C3D
	STENCIL_INDEX      = 0x1901
	STENCIL_INDEX8     = 0x8D48
	DEPTH_COMPONENT32F = 0x8CAC

	INT_2_10_10_10_REV             = 0x8D9F
	UNSIGNED_INT_2_10_10_10_REV    = 0x8368
	UNSIGNED_INT_10F_11F_11F_REV   = 0x8C3B
	UNSIGNED_INT_5_9_9_9_REV       = 0x8C3E
	FLOAT_32_UNSIGNED_INT_24_8_REV = 0x8DAD
)
