package opengl

import (
	"math/bits"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/glgpu/internal/gl"
)

// FillMode selects how rasterized polygons are filled.
type FillMode uint8

const (
	FillModeFill FillMode = iota
	FillModeLine
)

// BorderColor selects the color sampled outside the texture when a
// sampler clamps to border.
type BorderColor uint8

const (
	BorderTransparentBlack BorderColor = iota
	BorderOpaqueBlack
	BorderOpaqueWhite
)

var borderColors = [...][4]float32{
	BorderTransparentBlack: {0, 0, 0, 0},
	BorderOpaqueBlack:      {0, 0, 0, 1},
	BorderOpaqueWhite:      {1, 1, 1, 1},
}

// BorderColorGL returns the RGBA value of c, or transparent black for
// an unknown value.
func BorderColorGL(c BorderColor) [4]float32 {
	if int(c) < len(borderColors) {
		return borderColors[c]
	}
	return borderColors[BorderTransparentBlack]
}

// formatClass flags what a pixel format can be used for.
type formatClass uint8

const (
	classColor formatClass = 1 << iota
	classRenderable
	classDepth
	classStencil
)

type pixelFormat struct {
	internal uint32
	format   uint32
	typ      uint32
	size     uint32
	class    formatClass
}

const cr = classColor | classRenderable

// pixelFormats covers the uncompressed gputypes formats. Snorm formats and
// RGB9E5 are filterable but not color renderable in core GL.
var pixelFormats = map[gputypes.TextureFormat]pixelFormat{
	gputypes.TextureFormatR8Unorm:  {gl.R8, gl.RED, gl.UNSIGNED_BYTE, 1, cr},
	gputypes.TextureFormatR8Snorm:  {gl.R8_SNORM, gl.RED, gl.BYTE, 1, classColor},
	gputypes.TextureFormatR8Uint:   {gl.R8UI, gl.RED_INTEGER, gl.UNSIGNED_BYTE, 1, cr},
	gputypes.TextureFormatR8Sint:   {gl.R8I, gl.RED_INTEGER, gl.BYTE, 1, cr},
	gputypes.TextureFormatR16Unorm: {gl.R16, gl.RED, gl.UNSIGNED_SHORT, 2, cr},
	gputypes.TextureFormatR16Snorm: {gl.R16_SNORM, gl.RED, gl.SHORT, 2, classColor},
	gputypes.TextureFormatR16Uint:  {gl.R16UI, gl.RED_INTEGER, gl.UNSIGNED_SHORT, 2, cr},
	gputypes.TextureFormatR16Sint:  {gl.R16I, gl.RED_INTEGER, gl.SHORT, 2, cr},
	gputypes.TextureFormatR16Float: {gl.R16F, gl.RED, gl.HALF_FLOAT, 2, cr},

	gputypes.TextureFormatRG8Unorm: {gl.RG8, gl.RG, gl.UNSIGNED_BYTE, 2, cr},
	gputypes.TextureFormatRG8Snorm: {gl.RG8_SNORM, gl.RG, gl.BYTE, 2, classColor},
	gputypes.TextureFormatRG8Uint:  {gl.RG8UI, gl.RG_INTEGER, gl.UNSIGNED_BYTE, 2, cr},
	gputypes.TextureFormatRG8Sint:  {gl.RG8I, gl.RG_INTEGER, gl.BYTE, 2, cr},

	gputypes.TextureFormatR32Float: {gl.R32F, gl.RED, gl.FLOAT, 4, cr},
	gputypes.TextureFormatR32Uint:  {gl.R32UI, gl.RED_INTEGER, gl.UNSIGNED_INT, 4, cr},
	gputypes.TextureFormatR32Sint:  {gl.R32I, gl.RED_INTEGER, gl.INT, 4, cr},

	gputypes.TextureFormatRG16Unorm: {gl.RG16, gl.RG, gl.UNSIGNED_SHORT, 4, cr},
	gputypes.TextureFormatRG16Snorm: {gl.RG16_SNORM, gl.RG, gl.SHORT, 4, classColor},
	gputypes.TextureFormatRG16Uint:  {gl.RG16UI, gl.RG_INTEGER, gl.UNSIGNED_SHORT, 4, cr},
	gputypes.TextureFormatRG16Sint:  {gl.RG16I, gl.RG_INTEGER, gl.SHORT, 4, cr},
	gputypes.TextureFormatRG16Float: {gl.RG16F, gl.RG, gl.HALF_FLOAT, 4, cr},

	gputypes.TextureFormatRGBA8Unorm:     {gl.RGBA8, gl.RGBA, gl.UNSIGNED_BYTE, 4, cr},
	gputypes.TextureFormatRGBA8UnormSrgb: {gl.SRGB8_ALPHA8, gl.RGBA, gl.UNSIGNED_BYTE, 4, cr},
	gputypes.TextureFormatRGBA8Snorm:     {gl.RGBA8_SNORM, gl.RGBA, gl.BYTE, 4, classColor},
	gputypes.TextureFormatRGBA8Uint:      {gl.RGBA8UI, gl.RGBA_INTEGER, gl.UNSIGNED_BYTE, 4, cr},
	gputypes.TextureFormatRGBA8Sint:      {gl.RGBA8I, gl.RGBA_INTEGER, gl.BYTE, 4, cr},
	gputypes.TextureFormatBGRA8Unorm:     {gl.RGBA8, gl.BGRA, gl.UNSIGNED_BYTE, 4, cr},
	gputypes.TextureFormatBGRA8UnormSrgb: {gl.SRGB8_ALPHA8, gl.BGRA, gl.UNSIGNED_BYTE, 4, cr},

	gputypes.TextureFormatRGB10A2Uint:   {gl.RGB10_A2UI, gl.RGBA_INTEGER, gl.UNSIGNED_INT_2_10_10_10_REV, 4, cr},
	gputypes.TextureFormatRGB10A2Unorm:  {gl.RGB10_A2, gl.RGBA, gl.UNSIGNED_INT_2_10_10_10_REV, 4, cr},
	gputypes.TextureFormatRG11B10Ufloat: {gl.R11F_G11F_B10F, gl.RGB, gl.UNSIGNED_INT_10F_11F_11F_REV, 4, cr},
	gputypes.TextureFormatRGB9E5Ufloat:  {gl.RGB9_E5, gl.RGB, gl.UNSIGNED_INT_5_9_9_9_REV, 4, classColor},

	gputypes.TextureFormatRG32Float: {gl.RG32F, gl.RG, gl.FLOAT, 8, cr},
	gputypes.TextureFormatRG32Uint:  {gl.RG32UI, gl.RG_INTEGER, gl.UNSIGNED_INT, 8, cr},
	gputypes.TextureFormatRG32Sint:  {gl.RG32I, gl.RG_INTEGER, gl.INT, 8, cr},

	gputypes.TextureFormatRGBA16Unorm: {gl.RGBA16, gl.RGBA, gl.UNSIGNED_SHORT, 8, cr},
	gputypes.TextureFormatRGBA16Snorm: {gl.RGBA16_SNORM, gl.RGBA, gl.SHORT, 8, classColor},
	gputypes.TextureFormatRGBA16Uint:  {gl.RGBA16UI, gl.RGBA_INTEGER, gl.UNSIGNED_SHORT, 8, cr},
	gputypes.TextureFormatRGBA16Sint:  {gl.RGBA16I, gl.RGBA_INTEGER, gl.SHORT, 8, cr},
	gputypes.TextureFormatRGBA16Float: {gl.RGBA16F, gl.RGBA, gl.HALF_FLOAT, 8, cr},

	gputypes.TextureFormatRGBA32Float: {gl.RGBA32F, gl.RGBA, gl.FLOAT, 16, cr},
	gputypes.TextureFormatRGBA32Uint:  {gl.RGBA32UI, gl.RGBA_INTEGER, gl.UNSIGNED_INT, 16, cr},
	gputypes.TextureFormatRGBA32Sint:  {gl.RGBA32I, gl.RGBA_INTEGER, gl.INT, 16, cr},

	gputypes.TextureFormatStencil8:             {gl.STENCIL_INDEX8, gl.STENCIL_INDEX, gl.UNSIGNED_BYTE, 1, classStencil},
	gputypes.TextureFormatDepth16Unorm:         {gl.DEPTH_COMPONENT16, gl.DEPTH_COMPONENT, gl.UNSIGNED_SHORT, 2, classDepth},
	gputypes.TextureFormatDepth24Plus:          {gl.DEPTH_COMPONENT24, gl.DEPTH_COMPONENT, gl.UNSIGNED_INT, 4, classDepth},
	gputypes.TextureFormatDepth24PlusStencil8:  {gl.DEPTH24_STENCIL8, gl.DEPTH_STENCIL, gl.UNSIGNED_INT_24_8, 4, classDepth | classStencil},
	gputypes.TextureFormatDepth32Float:         {gl.DEPTH_COMPONENT32F, gl.DEPTH_COMPONENT, gl.FLOAT, 4, classDepth},
	gputypes.TextureFormatDepth32FloatStencil8: {gl.DEPTH32F_STENCIL8, gl.DEPTH_STENCIL, gl.FLOAT_32_UNSIGNED_INT_24_8_REV, 8, classDepth | classStencil},
}

// PixelFormatInfo returns the sized internal format plus the client
// format and type used to upload pixels of f. ok is false for
// compressed and unknown formats.
func PixelFormatInfo(f gputypes.TextureFormat) (internalFormat, format, dataType uint32, ok bool) {
	p, ok := pixelFormats[f]
	return p.internal, p.format, p.typ, ok
}

// FormatBytesPerPixel returns the size of one texel, or 0.
func FormatBytesPerPixel(f gputypes.TextureFormat) uint32 { return pixelFormats[f].size }

// IsDepthFormat reports whether f has a depth aspect.
func IsDepthFormat(f gputypes.TextureFormat) bool { return pixelFormats[f].class&classDepth != 0 }

// IsStencilFormat reports whether f has a stencil aspect.
func IsStencilFormat(f gputypes.TextureFormat) bool { return pixelFormats[f].class&classStencil != 0 }

// IsColorRenderable reports whether f can be a color attachment.
func IsColorRenderable(f gputypes.TextureFormat) bool {
	return pixelFormats[f].class&classRenderable != 0
}

type vertexFormat struct {
	components int32
	typ        uint32
	normalized bool
}

var vertexFormats = map[gputypes.VertexFormat]vertexFormat{
	gputypes.VertexFormatUint8x2:      {2, gl.UNSIGNED_BYTE, false},
	gputypes.VertexFormatUint8x4:      {4, gl.UNSIGNED_BYTE, false},
	gputypes.VertexFormatSint8x2:      {2, gl.BYTE, false},
	gputypes.VertexFormatSint8x4:      {4, gl.BYTE, false},
	gputypes.VertexFormatUnorm8x2:     {2, gl.UNSIGNED_BYTE, true},
	gputypes.VertexFormatUnorm8x4:     {4, gl.UNSIGNED_BYTE, true},
	gputypes.VertexFormatSnorm8x2:     {2, gl.BYTE, true},
	gputypes.VertexFormatSnorm8x4:     {4, gl.BYTE, true},
	gputypes.VertexFormatUint16x2:     {2, gl.UNSIGNED_SHORT, false},
	gputypes.VertexFormatUint16x4:     {4, gl.UNSIGNED_SHORT, false},
	gputypes.VertexFormatSint16x2:     {2, gl.SHORT, false},
	gputypes.VertexFormatSint16x4:     {4, gl.SHORT, false},
	gputypes.VertexFormatUnorm16x2:    {2, gl.UNSIGNED_SHORT, true},
	gputypes.VertexFormatUnorm16x4:    {4, gl.UNSIGNED_SHORT, true},
	gputypes.VertexFormatSnorm16x2:    {2, gl.SHORT, true},
	gputypes.VertexFormatSnorm16x4:    {4, gl.SHORT, true},
	gputypes.VertexFormatFloat16x2:    {2, gl.HALF_FLOAT, false},
	gputypes.VertexFormatFloat16x4:    {4, gl.HALF_FLOAT, false},
	gputypes.VertexFormatFloat32:      {1, gl.FLOAT, false},
	gputypes.VertexFormatFloat32x2:    {2, gl.FLOAT, false},
	gputypes.VertexFormatFloat32x3:    {3, gl.FLOAT, false},
	gputypes.VertexFormatFloat32x4:    {4, gl.FLOAT, false},
	gputypes.VertexFormatUint32:       {1, gl.UNSIGNED_INT, false},
	gputypes.VertexFormatUint32x2:     {2, gl.UNSIGNED_INT, false},
	gputypes.VertexFormatUint32x3:     {3, gl.UNSIGNED_INT, false},
	gputypes.VertexFormatUint32x4:     {4, gl.UNSIGNED_INT, false},
	gputypes.VertexFormatSint32:       {1, gl.INT, false},
	gputypes.VertexFormatSint32x2:     {2, gl.INT, false},
	gputypes.VertexFormatSint32x3:     {3, gl.INT, false},
	gputypes.VertexFormatSint32x4:     {4, gl.INT, false},
	gputypes.VertexFormatUnorm1010102: {4, gl.UNSIGNED_INT_2_10_10_10_REV, true},
}

// VertexFormatInfo returns the component count, scalar type and
// normalization of f. Float formats are never normalized. integer is set
// for integer formats that are not normalized: those go through
// glVertexArrayAttribIFormat. components is 0 for an unknown format.
func VertexFormatInfo(f gputypes.VertexFormat) (components int32, dataType uint32, normalized, integer bool) {
	v, ok := vertexFormats[f]
	if !ok {
		return 0, gl.NONE, false, false
	}
	if v.typ == gl.FLOAT || v.typ == gl.HALF_FLOAT {
		return v.components, v.typ, false, false
	}
	return v.components, v.typ, v.normalized, !v.normalized
}

// VertexFormatSize returns the byte size of one attribute of format f.
func VertexFormatSize(f gputypes.VertexFormat) uint32 { return uint32(f.Size()) }

// CompareFunc maps a compare function. Undefined maps to ALWAYS.
func CompareFunc(f gputypes.CompareFunction) uint32 {
	switch f {
	case gputypes.CompareFunctionNever:
		return gl.NEVER
	case gputypes.CompareFunctionLess:
		return gl.LESS
	case gputypes.CompareFunctionEqual:
		return gl.EQUAL
	case gputypes.CompareFunctionLessEqual:
		return gl.LEQUAL
	case gputypes.CompareFunctionGreater:
		return gl.GREATER
	case gputypes.CompareFunctionNotEqual:
		return gl.NOTEQUAL
	case gputypes.CompareFunctionGreaterEqual:
		return gl.GEQUAL
	default:
		return gl.ALWAYS
	}
}

// StencilOpGL maps a stencil operation. Undefined maps to KEEP.
func StencilOpGL(op gputypes.StencilOperation) uint32 {
	switch op {
	case gputypes.StencilOperationZero:
		return gl.ZERO
	case gputypes.StencilOperationReplace:
		return gl.REPLACE
	case gputypes.StencilOperationInvert:
		return gl.INVERT
	case gputypes.StencilOperationIncrementClamp:
		return gl.INCR
	case gputypes.StencilOperationDecrementClamp:
		return gl.DECR
	case gputypes.StencilOperationIncrementWrap:
		return gl.INCR_WRAP
	case gputypes.StencilOperationDecrementWrap:
		return gl.DECR_WRAP
	default:
		return gl.KEEP
	}
}

// BlendOpGL maps a blend operation. Undefined maps to FUNC_ADD.
func BlendOpGL(op gputypes.BlendOperation) uint32 {
	switch op {
	case gputypes.BlendOperationSubtract:
		return gl.FUNC_SUBTRACT
	case gputypes.BlendOperationReverseSubtract:
		return gl.FUNC_REVERSE_SUBTRACT
	case gputypes.BlendOperationMin:
		return gl.MIN
	case gputypes.BlendOperationMax:
		return gl.MAX
	default:
		return gl.FUNC_ADD
	}
}

var blendFactors = map[gputypes.BlendFactor]uint32{
	gputypes.BlendFactorZero:              gl.ZERO,
	gputypes.BlendFactorOne:               gl.ONE,
	gputypes.BlendFactorSrc:               gl.SRC_COLOR,
	gputypes.BlendFactorOneMinusSrc:       gl.ONE_MINUS_SRC_COLOR,
	gputypes.BlendFactorSrcAlpha:          gl.SRC_ALPHA,
	gputypes.BlendFactorOneMinusSrcAlpha:  gl.ONE_MINUS_SRC_ALPHA,
	gputypes.BlendFactorDst:               gl.DST_COLOR,
	gputypes.BlendFactorOneMinusDst:       gl.ONE_MINUS_DST_COLOR,
	gputypes.BlendFactorDstAlpha:          gl.DST_ALPHA,
	gputypes.BlendFactorOneMinusDstAlpha:  gl.ONE_MINUS_DST_ALPHA,
	gputypes.BlendFactorSrcAlphaSaturated: gl.SRC_ALPHA_SATURATE,
	gputypes.BlendFactorConstant:          gl.CONSTANT_COLOR,
	gputypes.BlendFactorOneMinusConstant:  gl.ONE_MINUS_CONSTANT_COLOR,
}

// BlendFactorGL maps a blend factor. Undefined maps to ZERO.
func BlendFactorGL(f gputypes.BlendFactor) uint32 { return blendFactors[f] }

// PrimitiveGL maps a primitive topology.
func PrimitiveGL(t gputypes.PrimitiveTopology) uint32 {
	switch t {
	case gputypes.PrimitiveTopologyPointList:
		return gl.POINTS
	case gputypes.PrimitiveTopologyLineList:
		return gl.LINES
	case gputypes.PrimitiveTopologyLineStrip:
		return gl.LINE_STRIP
	case gputypes.PrimitiveTopologyTriangleStrip:
		return gl.TRIANGLE_STRIP
	default:
		return gl.TRIANGLES
	}
}

// IndexTypeGL maps an index format, or returns 0.
func IndexTypeGL(f gputypes.IndexFormat) uint32 {
	switch f {
	case gputypes.IndexFormatUint16:
		return gl.UNSIGNED_SHORT
	case gputypes.IndexFormatUint32:
		return gl.UNSIGNED_INT
	}
	return 0
}

// IndexSize returns the byte size of one index.
func IndexSize(f gputypes.IndexFormat) uint32 {
	switch f {
	case gputypes.IndexFormatUint16:
		return 2
	case gputypes.IndexFormatUint32:
		return 4
	}
	return 0
}

// CullFaceGL maps a cull mode. ok is false for CullModeNone.
func CullFaceGL(m gputypes.CullMode) (face uint32, ok bool) {
	switch m {
	case gputypes.CullModeFront:
		return gl.FRONT, true
	case gputypes.CullModeBack:
		return gl.BACK, true
	}
	return 0, false
}

// FrontFaceGL maps a winding order.
func FrontFaceGL(f gputypes.FrontFace) uint32 {
	if f == gputypes.FrontFaceCW {
		return gl.CW
	}
	return gl.CCW
}

// PolygonModeGL maps a fill mode.
func PolygonModeGL(m FillMode) uint32 {
	if m == FillModeLine {
		return gl.LINE
	}
	return gl.FILL
}

// TextureTarget maps a texture type to its bind target, or 0.
func TextureTarget(t gputypes.TextureViewDimension) uint32 {
	switch t {
	case gputypes.TextureViewDimension1D:
		return gl.TEXTURE_1D
	case gputypes.TextureViewDimension2D:
		return gl.TEXTURE_2D
	case gputypes.TextureViewDimension2DArray:
		return gl.TEXTURE_2D_ARRAY
	case gputypes.TextureViewDimensionCube:
		return gl.TEXTURE_CUBE_MAP
	case gputypes.TextureViewDimensionCubeArray:
		return gl.TEXTURE_CUBE_MAP_ARRAY
	case gputypes.TextureViewDimension3D:
		return gl.TEXTURE_3D
	}
	return 0
}

// TextureDimensions returns how many size arguments the storage call for
// t takes. Cube maps allocate like 2D textures; 2D arrays and cube arrays
// carry their slice count in the third dimension. 0 means unknown.
func TextureDimensions(t gputypes.TextureViewDimension) int {
	switch t {
	case gputypes.TextureViewDimension1D:
		return 1
	case gputypes.TextureViewDimension2D, gputypes.TextureViewDimensionCube:
		return 2
	case gputypes.TextureViewDimension2DArray, gputypes.TextureViewDimensionCubeArray,
		gputypes.TextureViewDimension3D:
		return 3
	}
	return 0
}

// isLayered reports whether the third coordinate of t selects a slice.
func isLayered(t gputypes.TextureViewDimension) bool {
	return TextureDimensions(t) == 3 && t != gputypes.TextureViewDimension3D
}

// MinFilterGL combines a minification filter with a mipmap filter.
func MinFilterGL(min gputypes.FilterMode, mip gputypes.MipmapFilterMode) uint32 {
	if min == gputypes.FilterModeLinear {
		switch mip {
		case gputypes.MipmapFilterModeNearest:
			return gl.LINEAR_MIPMAP_NEAREST
		case gputypes.MipmapFilterModeLinear:
			return gl.LINEAR_MIPMAP_LINEAR
		}
		return gl.LINEAR
	}
	switch mip {
	case gputypes.MipmapFilterModeNearest:
		return gl.NEAREST_MIPMAP_NEAREST
	case gputypes.MipmapFilterModeLinear:
		return gl.NEAREST_MIPMAP_LINEAR
	}
	return gl.NEAREST
}

// MagFilterGL maps a magnification filter.
func MagFilterGL(mag gputypes.FilterMode) uint32 {
	if mag == gputypes.FilterModeLinear {
		return gl.LINEAR
	}
	return gl.NEAREST
}

// WrapGL maps an address mode. Undefined maps to CLAMP_TO_EDGE.
func WrapGL(m gputypes.AddressMode) uint32 {
	switch m {
	case gputypes.AddressModeRepeat:
		return gl.REPEAT
	case gputypes.AddressModeMirrorRepeat:
		return gl.MIRRORED_REPEAT
	}
	return gl.CLAMP_TO_EDGE
}

// maxMipLevels returns floor(log2(largest))+1.
func maxMipLevels(w, h, d uint32) uint32 {
	m := max(w, h, d)
	if m == 0 {
		return 0
	}
	return uint32(bits.Len32(m))
}
