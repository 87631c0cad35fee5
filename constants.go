package vg

// Handle is an opaque engine object reference.
type Handle uint32

// InvalidHandle is the engine's null handle.
const InvalidHandle Handle = 0

// Context parameter ids.
const (
	ParamMatrixMode         ParamID = 0x1100
	ParamFillRule           ParamID = 0x1101
	ParamImageQuality       ParamID = 0x1102
	ParamRenderingQuality   ParamID = 0x1103
	ParamBlendMode          ParamID = 0x1104
	ParamImageMode          ParamID = 0x1105
	ParamScissorRects       ParamID = 0x1106
	ParamColorTransform     ParamID = 0x1170
	ParamColorTransformVals ParamID = 0x1171

	ParamStrokeLineWidth      ParamID = 0x1110
	ParamStrokeCapStyle       ParamID = 0x1111
	ParamStrokeJoinStyle      ParamID = 0x1112
	ParamStrokeMiterLimit     ParamID = 0x1113
	ParamStrokeDashPattern    ParamID = 0x1114
	ParamStrokeDashPhase      ParamID = 0x1115
	ParamStrokeDashPhaseReset ParamID = 0x1116

	ParamTileFillColor ParamID = 0x1120
	ParamClearColor    ParamID = 0x1121
	ParamGlyphOrigin   ParamID = 0x1122

	ParamMasking    ParamID = 0x1130
	ParamScissoring ParamID = 0x1131

	ParamPixelLayout  ParamID = 0x1140
	ParamScreenLayout ParamID = 0x1141

	ParamFilterFormatLinear        ParamID = 0x1150
	ParamFilterFormatPremultiplied ParamID = 0x1151
	ParamFilterChannelMask         ParamID = 0x1152

	ParamMaxScissorRects         ParamID = 0x1160
	ParamMaxDashCount            ParamID = 0x1161
	ParamMaxKernelSize           ParamID = 0x1162
	ParamMaxSeparableKernelSize  ParamID = 0x1163
	ParamMaxColorRampStops       ParamID = 0x1164
	ParamMaxImageWidth           ParamID = 0x1165
	ParamMaxImageHeight          ParamID = 0x1166
	ParamMaxImagePixels          ParamID = 0x1167
	ParamMaxImageBytes           ParamID = 0x1168
	ParamMaxFloat                ParamID = 0x1169
	ParamMaxGaussianStdDeviation ParamID = 0x116A
)

// Path parameter ids.
const (
	PathParamFormat      ParamID = 0x1600
	PathParamDatatype    ParamID = 0x1601
	PathParamScale       ParamID = 0x1602
	PathParamBias        ParamID = 0x1603
	PathParamNumSegments ParamID = 0x1604
	PathParamNumCoords   ParamID = 0x1605
)

// Paint parameter ids.
const (
	PaintParamType                   ParamID = 0x1A00
	PaintParamColor                  ParamID = 0x1A01
	PaintParamColorRampSpreadMode    ParamID = 0x1A02
	PaintParamColorRampStops         ParamID = 0x1A03
	PaintParamLinearGradient         ParamID = 0x1A04
	PaintParamRadialGradient         ParamID = 0x1A05
	PaintParamPatternTilingMode      ParamID = 0x1A06
	PaintParamColorRampPremultiplied ParamID = 0x1A07
)

// Image parameter ids.
const (
	ImageParamFormat ParamID = 0x1E00
	ImageParamWidth  ParamID = 0x1E01
	ImageParamHeight ParamID = 0x1E02
)

// Font parameter ids.
const (
	FontParamNumGlyphs ParamID = 0x2F00
)

// MatrixMode selects the matrix that matrix operations apply to.
type MatrixMode int32

const (
	MatrixPathUserToSurface  MatrixMode = 0x1400
	MatrixImageUserToSurface MatrixMode = 0x1401
	MatrixFillPaintToUser    MatrixMode = 0x1402
	MatrixStrokePaintToUser  MatrixMode = 0x1403
	MatrixGlyphUserToSurface MatrixMode = 0x1404
)

// FillRule selects how path interiors are determined.
type FillRule int32

const (
	EvenOdd FillRule = 0x1900
	NonZero FillRule = 0x1901
)

// ImageQuality is a resampling quality for image drawing.
type ImageQuality int32

const (
	ImageQualityNonAntialiased ImageQuality = 1 << 0
	ImageQualityFaster         ImageQuality = 1 << 1
	ImageQualityBetter         ImageQuality = 1 << 2
)

// RenderingQuality is the path rendering quality.
type RenderingQuality int32

const (
	RenderingQualityNonAntialiased RenderingQuality = 0x1200
	RenderingQualityFaster         RenderingQuality = 0x1201
	RenderingQualityBetter         RenderingQuality = 0x1202
)

// BlendMode is a Porter-Duff or additional blending mode.
type BlendMode int32

const (
	BlendSrc      BlendMode = 0x2000
	BlendSrcOver  BlendMode = 0x2001
	BlendDstOver  BlendMode = 0x2002
	BlendSrcIn    BlendMode = 0x2003
	BlendDstIn    BlendMode = 0x2004
	BlendMultiply BlendMode = 0x2005
	BlendScreen   BlendMode = 0x2006
	BlendDarken   BlendMode = 0x2007
	BlendLighten  BlendMode = 0x2008
	BlendAdditive BlendMode = 0x2009
)

// ImageMode selects how images combine with the current paint.
type ImageMode int32

const (
	DrawImageNormal   ImageMode = 0x1F00
	DrawImageMultiply ImageMode = 0x1F01
	DrawImageStencil  ImageMode = 0x1F02
)

// CapStyle is the stroke end cap.
type CapStyle int32

const (
	CapButt   CapStyle = 0x1700
	CapRound  CapStyle = 0x1701
	CapSquare CapStyle = 0x1702
)

// JoinStyle is the stroke segment join.
type JoinStyle int32

const (
	JoinMiter JoinStyle = 0x1800
	JoinRound JoinStyle = 0x1801
	JoinBevel JoinStyle = 0x1802
)

// PixelLayout describes sub-pixel geometry.
type PixelLayout int32

const (
	PixelLayoutUnknown       PixelLayout = 0x1300
	PixelLayoutRGBVertical   PixelLayout = 0x1301
	PixelLayoutBGRVertical   PixelLayout = 0x1302
	PixelLayoutRGBHorizontal PixelLayout = 0x1303
	PixelLayoutBGRHorizontal PixelLayout = 0x1304
)

// MaskOperation combines a mask source with the drawing surface mask.
type MaskOperation int32

const (
	MaskClear     MaskOperation = 0x1500
	MaskFill      MaskOperation = 0x1501
	MaskSet       MaskOperation = 0x1502
	MaskUnion     MaskOperation = 0x1503
	MaskIntersect MaskOperation = 0x1504
	MaskSubtract  MaskOperation = 0x1505
)

// PathFormat is the path command format.
type PathFormat int32

// PathFormatStandard is the only format defined by OpenVG 1.1.
const PathFormatStandard PathFormat = 0

// PathDatatype is the storage type of path coordinates.
type PathDatatype int32

const (
	PathDatatypeS8  PathDatatype = 0
	PathDatatypeS16 PathDatatype = 1
	PathDatatypeS32 PathDatatype = 2
	PathDatatypeF   PathDatatype = 3
)

// PaintType is the kind of paint.
type PaintType int32

const (
	PaintColor          PaintType = 0x1B00
	PaintLinearGradient PaintType = 0x1B01
	PaintRadialGradient PaintType = 0x1B02
	PaintPattern        PaintType = 0x1B03
)

// SpreadMode is the color ramp behavior outside [0, 1].
type SpreadMode int32

const (
	SpreadPad     SpreadMode = 0x1C00
	SpreadRepeat  SpreadMode = 0x1C01
	SpreadReflect SpreadMode = 0x1C02
)

// TilingMode is the pattern behavior outside the source image.
type TilingMode int32

const (
	TileFill    TilingMode = 0x1D00
	TilePad     TilingMode = 0x1D01
	TileRepeat  TilingMode = 0x1D02
	TileReflect TilingMode = 0x1D03
)

// ImageFormat is a pixel format and color space.
type ImageFormat int32

const (
	SRGBX8888    ImageFormat = 0
	SRGBA8888    ImageFormat = 1
	SRGBA8888Pre ImageFormat = 2
	SRGB565      ImageFormat = 3
	SRGBA5551    ImageFormat = 4
	SRGBA4444    ImageFormat = 5
	SL8          ImageFormat = 6
	LRGBX8888    ImageFormat = 7
	LRGBA8888    ImageFormat = 8
	LRGBA8888Pre ImageFormat = 9
	LL8          ImageFormat = 10
	A8           ImageFormat = 11
	BW1          ImageFormat = 12
	A1           ImageFormat = 13
	A4           ImageFormat = 14

	SXRGB8888    ImageFormat = 0 | 1<<6
	SARGB8888    ImageFormat = 1 | 1<<6
	SARGB8888Pre ImageFormat = 2 | 1<<6
	SARGB1555    ImageFormat = 4 | 1<<6
	SARGB4444    ImageFormat = 5 | 1<<6
	LXRGB8888    ImageFormat = 7 | 1<<6
	LARGB8888    ImageFormat = 8 | 1<<6
	LARGB8888Pre ImageFormat = 9 | 1<<6

	SBGRX8888    ImageFormat = 0 | 1<<7
	SBGRA8888    ImageFormat = 1 | 1<<7
	SBGRA8888Pre ImageFormat = 2 | 1<<7
	SBGR565      ImageFormat = 3 | 1<<7
	SBGRA5551    ImageFormat = 4 | 1<<7
	SBGRA4444    ImageFormat = 5 | 1<<7
	LBGRX8888    ImageFormat = 7 | 1<<7
	LBGRA8888    ImageFormat = 8 | 1<<7
	LBGRA8888Pre ImageFormat = 9 | 1<<7

	SXBGR8888    ImageFormat = 0 | 1<<6 | 1<<7
	SABGR8888    ImageFormat = 1 | 1<<6 | 1<<7
	SABGR8888Pre ImageFormat = 2 | 1<<6 | 1<<7
	SABGR1555    ImageFormat = 4 | 1<<6 | 1<<7
	SABGR4444    ImageFormat = 5 | 1<<6 | 1<<7
	LXBGR8888    ImageFormat = 7 | 1<<6 | 1<<7
	LABGR8888    ImageFormat = 8 | 1<<6 | 1<<7
	LABGR8888Pre ImageFormat = 9 | 1<<6 | 1<<7
)

// StringID selects an engine information string.
type StringID int32

const (
	StringVendor     StringID = 0x2300
	StringRenderer   StringID = 0x2301
	StringVersion    StringID = 0x2302
	StringExtensions StringID = 0x2303
)

// ArcType closes utility arcs.
type ArcType int32

const (
	ArcOpen  ArcType = 0xF100
	ArcChord ArcType = 0xF101
	ArcPie   ArcType = 0xF102
)

// Bit name registries for the engine's bitfields.
var (
	// PathCapabilityNames names VGPathCapabilities bits.
	PathCapabilityNames = NewBitNames(
		"APPEND_FROM", "APPEND_TO", "MODIFY", "TRANSFORM_FROM",
		"TRANSFORM_TO", "INTERPOLATE_FROM", "INTERPOLATE_TO",
		"PATH_LENGTH", "POINT_ALONG_PATH", "TANGENT_ALONG_PATH",
		"PATH_BOUNDS", "PATH_TRANSFORMED_BOUNDS",
	)

	// PaintModeNames names VGPaintMode bits.
	PaintModeNames = NewBitNames("FILL", "STROKE")

	// ImageQualityNames names the allowed-quality bits of image creation.
	ImageQualityNames = NewBitNames("NONANTIALIASED", "FASTER", "BETTER")

	// ChannelNames names VGImageChannel bits (VG_ALPHA is bit 0).
	ChannelNames = NewBitNames("ALPHA", "BLUE", "GREEN", "RED")
)

// PaintMode selects fill, stroke or both.
type PaintMode = BitMask

// Paint mode values.
var (
	Fill          = PaintModeNames.FromInt(1 << 0)
	Stroke        = PaintModeNames.FromInt(1 << 1)
	FillAndStroke = PaintModeNames.FromInt(1<<0 | 1<<1)
)
