package vg

// Descriptor tables of the OpenVG 1.1 objects. Defaults are the values the
// engine starts with; a nil default means the value is implementation
// defined.

func scalarParam(id ParamID, name, desc string, kind ValueKind, def Value) Descriptor {
	return Descriptor{ID: id, Name: name, Description: desc, Kind: kind, Shape: Scalar(), Default: def}
}

func enumParam[E ~int32](id ParamID, name, desc string, def E) Descriptor {
	return scalarParam(id, name, desc, KindEnum, Enum(def))
}

func floatsParam(id ParamID, name, desc string, shape Shape, def ...float32) Descriptor {
	d := scalarParam(id, name, desc, KindFloatVector, FloatVector(def))
	d.Shape = shape
	return d
}

func tuplesParam(id ParamID, name, desc string, elem ValueKind, inner int, def Value) Descriptor {
	d := scalarParam(id, name, desc, KindFlattened, def)
	d.Elem = elem
	d.Shape = FlattenedOf(inner)
	return d
}

// bitsParam declares a bitmask parameter that defaults to every named bit.
func bitsParam(id ParamID, name, desc string, bits *BitNames) Descriptor {
	d := scalarParam(id, name, desc, KindBitMask, bits.All())
	d.Bits = bits
	return d
}

func limitParam(id ParamID, name, desc string, kind ValueKind) Descriptor {
	return readOnly(scalarParam(id, name, desc, kind, nil))
}

func readOnly(d Descriptor) Descriptor {
	d.ReadOnly = true
	return d
}

// ContextParams describes the state reached through vgSet*/vgGet*.
var ContextParams = NewTable(ObjectContext,
	// Mode settings
	enumParam(ParamMatrixMode, "matrix_mode",
		"The matrix affected by matrix operations", MatrixPathUserToSurface),
	enumParam(ParamFillRule, "fill_rule",
		"The rule that determines path interiors", EvenOdd),
	enumParam(ParamImageQuality, "image_quality",
		"The resampling quality of image drawing", ImageQualityFaster),
	enumParam(ParamRenderingQuality, "rendering_quality",
		"The antialiasing quality of path rendering", RenderingQualityBetter),
	enumParam(ParamBlendMode, "blend_mode",
		"The blending mode applied to drawing", BlendSrcOver),
	enumParam(ParamImageMode, "image_mode",
		"How images combine with the current paint", DrawImageNormal),

	// Scissoring and color transformation
	tuplesParam(ParamScissorRects, "scissor_rects",
		"Scissor rectangles as (x, y, width, height)", KindInt, 4, IntTuples{}),
	scalarParam(ParamColorTransform, "color_transform",
		"Whether the color transformation is enabled", KindBool, Bool(false)),
	floatsParam(ParamColorTransformVals, "color_transform_values",
		"Color scale and bias as (Sr, Sg, Sb, Sa, Br, Bg, Bb, Ba)", Fixed(8),
		1, 1, 1, 1, 0, 0, 0, 0),

	// Stroke parameters
	scalarParam(ParamStrokeLineWidth, "stroke_line_width",
		"The stroke width in user units", KindFloat, Float(1)),
	enumParam(ParamStrokeCapStyle, "stroke_cap_style",
		"The stroke end cap", CapButt),
	enumParam(ParamStrokeJoinStyle, "stroke_join_style",
		"The join between stroke segments", JoinMiter),
	scalarParam(ParamStrokeMiterLimit, "stroke_miter_limit",
		"The miter length limit relative to the stroke width", KindFloat, Float(4)),
	floatsParam(ParamStrokeDashPattern, "stroke_dash_pattern",
		"Alternating dash and gap lengths", Dynamic()),
	scalarParam(ParamStrokeDashPhase, "stroke_dash_phase",
		"The offset into the dash pattern", KindFloat, Float(0)),
	scalarParam(ParamStrokeDashPhaseReset, "stroke_dash_phase_reset",
		"Whether the dash phase restarts at each subpath", KindBool, Bool(false)),

	// Fill colors
	floatsParam(ParamTileFillColor, "tile_fill_color",
		"The color used by the fill tiling mode", Fixed(4), 0, 0, 0, 0),
	floatsParam(ParamClearColor, "clear_color",
		"The color used by Clear", Fixed(4), 0, 0, 0, 0),
	floatsParam(ParamGlyphOrigin, "glyph_origin",
		"The current glyph origin", Fixed(2), 0, 0),

	// Masking and scissoring switches
	scalarParam(ParamMasking, "masking",
		"Whether the alpha mask is applied", KindBool, Bool(false)),
	scalarParam(ParamScissoring, "scissoring",
		"Whether scissor rectangles are applied", KindBool, Bool(false)),

	// Pixel layout
	enumParam(ParamPixelLayout, "pixel_layout",
		"The sub-pixel geometry hint", PixelLayoutUnknown),
	limitParam(ParamScreenLayout, "screen_layout",
		"The sub-pixel geometry of the display", KindEnum),

	// Image filters
	scalarParam(ParamFilterFormatLinear, "filter_format_linear",
		"Whether filters work in a linear color space", KindBool, Bool(false)),
	scalarParam(ParamFilterFormatPremultiplied, "filter_format_premultiplied",
		"Whether filters work on premultiplied values", KindBool, Bool(false)),
	bitsParam(ParamFilterChannelMask, "filter_channel_mask",
		"The channels written by filters", ChannelNames),

	// Implementation limits
	limitParam(ParamMaxScissorRects, "max_scissor_rects",
		"The maximum number of scissor rectangles", KindInt),
	limitParam(ParamMaxDashCount, "max_dash_count",
		"The maximum number of dash segments", KindInt),
	limitParam(ParamMaxKernelSize, "max_kernel_size",
		"The maximum convolution kernel size", KindInt),
	limitParam(ParamMaxSeparableKernelSize, "max_separable_kernel_size",
		"The maximum separable convolution kernel size", KindInt),
	limitParam(ParamMaxColorRampStops, "max_color_ramp_stops",
		"The maximum number of gradient stops", KindInt),
	limitParam(ParamMaxImageWidth, "max_image_width",
		"The largest image width", KindInt),
	limitParam(ParamMaxImageHeight, "max_image_height",
		"The largest image height", KindInt),
	limitParam(ParamMaxImagePixels, "max_image_pixels",
		"The largest image pixel count", KindInt),
	limitParam(ParamMaxImageBytes, "max_image_bytes",
		"The largest image size in bytes", KindInt),
	limitParam(ParamMaxFloat, "max_float",
		"The largest float the engine handles", KindFloat),
	limitParam(ParamMaxGaussianStdDeviation, "max_gaussian_std_deviation",
		"The largest Gaussian blur deviation", KindFloat),
)

// PathParams describes path objects. Path state is fixed at creation.
var PathParams = NewTable(ObjectPath,
	readOnly(enumParam(PathParamFormat, "format",
		"The path command format", PathFormatStandard)),
	readOnly(enumParam(PathParamDatatype, "datatype",
		"The coordinate storage type", PathDatatypeF)),
	readOnly(scalarParam(PathParamScale, "scale",
		"The scale applied to stored coordinates", KindFloat, Float(1))),
	readOnly(scalarParam(PathParamBias, "bias",
		"The bias applied to stored coordinates", KindFloat, Float(0))),
	readOnly(scalarParam(PathParamNumSegments, "num_segments",
		"The number of stored segments", KindInt, Int(0))),
	readOnly(scalarParam(PathParamNumCoords, "num_coords",
		"The number of stored coordinates", KindInt, Int(0))),
)

// PaintParams describes paint objects.
var PaintParams = NewTable(ObjectPaint,
	enumParam(PaintParamType, "type",
		"The kind of paint", PaintColor),
	floatsParam(PaintParamColor, "color",
		"The solid color as non-premultiplied (r, g, b, a)", Fixed(4), 0, 0, 0, 1),
	enumParam(PaintParamColorRampSpreadMode, "color_ramp_spread_mode",
		"The gradient behavior outside the ramp", SpreadPad),
	tuplesParam(PaintParamColorRampStops, "color_ramp_stops",
		"Gradient stops as (offset, r, g, b, a)", KindFloat, 5, FloatTuples{}),
	floatsParam(PaintParamLinearGradient, "linear_gradient",
		"The gradient line as (x0, y0, x1, y1)", Fixed(4), 0, 0, 1, 0),
	floatsParam(PaintParamRadialGradient, "radial_gradient",
		"The gradient circle as (cx, cy, fx, fy, r)", Fixed(5), 0, 0, 0, 0, 1),
	enumParam(PaintParamPatternTilingMode, "pattern_tiling_mode",
		"The pattern behavior outside the image", TileFill),
	scalarParam(PaintParamColorRampPremultiplied, "color_ramp_premultiplied",
		"Whether ramp colors are interpolated premultiplied", KindBool, Bool(true)),
)

// ImageParams describes image objects. Image state is fixed at creation.
var ImageParams = NewTable(ObjectImage,
	limitParam(ImageParamFormat, "format", "The pixel format", KindEnum),
	limitParam(ImageParamWidth, "width", "The width in pixels", KindInt),
	limitParam(ImageParamHeight, "height", "The height in pixels", KindInt),
)

// FontParams describes font objects.
var FontParams = NewTable(ObjectFont,
	readOnly(scalarParam(FontParamNumGlyphs, "num_glyphs",
		"The number of glyphs defined", KindInt, Int(0))),
)

var tables = map[ObjectKind]*Table{
	ObjectContext: ContextParams,
	ObjectPath:    PathParams,
	ObjectPaint:   PaintParams,
	ObjectImage:   ImageParams,
	ObjectFont:    FontParams,
}

// TableFor returns the descriptor table of an object kind.
func TableFor(kind ObjectKind) (*Table, bool) {
	t, ok := tables[kind]
	return t, ok
}
