package vg

// ContextOption configures a Context during creation.
// Use functional options to customize Context behavior.
//
// Example:
//
//	// Engine only; utility calls use the engine if it implements Utility
//	ctx, err := vg.NewContext(engine)
//
//	// Separate VGU implementation
//	ctx, err := vg.NewContext(engine, vg.WithUtility(vgu))
type ContextOption func(*contextOptions)

// contextOptions holds optional configuration for Context creation.
type contextOptions struct {
	utility Utility
	initial []initialParam
}

type initialParam struct {
	id ParamID
	v  Value
}

// WithUtility sets the VGU implementation used by the shape and warp
// helpers of the Context.
func WithUtility(u Utility) ContextOption {
	return func(o *contextOptions) {
		o.utility = u
	}
}

// WithParam sets a context parameter as part of NewContext.
// Parameters are applied in option order.
//
// Example:
//
//	ctx, err := vg.NewContext(engine,
//		vg.WithParam(vg.ParamFillRule, vg.Enum(vg.NonZero)),
//		vg.WithParam(vg.ParamStrokeLineWidth, vg.Float(2)),
//	)
func WithParam(id ParamID, v Value) ContextOption {
	return func(o *contextOptions) {
		o.initial = append(o.initial, initialParam{id: id, v: v})
	}
}

// PathOption configures a Path during creation.
type PathOption func(*pathOptions)

// pathOptions holds the creation arguments of a path.
type pathOptions struct {
	format       PathFormat
	datatype     PathDatatype
	scale        float32
	bias         float32
	segmentHint  int32
	coordHint    int32
	capabilities BitMask
}

// defaultPathOptions returns the default path creation arguments.
func defaultPathOptions() pathOptions {
	return pathOptions{
		format:       PathFormatStandard,
		datatype:     PathDatatypeF,
		scale:        1,
		bias:         0,
		capabilities: PathCapabilityNames.All(),
	}
}

// WithFormat sets the path command format.
func WithFormat(f PathFormat) PathOption {
	return func(o *pathOptions) {
		o.format = f
	}
}

// WithDatatype sets the coordinate storage type. Integer datatypes round
// coordinates to the nearest value and reject those out of range.
func WithDatatype(dt PathDatatype) PathOption {
	return func(o *pathOptions) {
		o.datatype = dt
	}
}

// WithScaleBias sets the transform applied by the engine to stored
// coordinates: value*scale + bias.
func WithScaleBias(scale, bias float32) PathOption {
	return func(o *pathOptions) {
		o.scale = scale
		o.bias = bias
	}
}

// WithCapacity hints the number of segments and coordinates the path will
// hold.
func WithCapacity(segments, coords int) PathOption {
	return func(o *pathOptions) {
		o.segmentHint = int32(segments)
		o.coordHint = int32(coords)
	}
}

// WithCapabilities sets the initial path capabilities.
//
// Example:
//
//	caps, _ := vg.NewBitMask(vg.PathCapabilityNames, nil,
//		map[string]bool{"APPEND_TO": true, "PATH_BOUNDS": true})
//	p, err := vg.NewPath(ctx, vg.WithCapabilities(caps))
func WithCapabilities(caps BitMask) PathOption {
	return func(o *pathOptions) {
		o.capabilities = caps
	}
}
