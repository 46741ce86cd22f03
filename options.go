package line

// Option configures a Line during creation.
// Use functional options to customize the stroke.
//
// Example:
//
//	// Default stroke: thickness 1, white, dash 1
//	l := line.New(path)
//
//	// Thick red dashed loop
//	l := line.New(path,
//	    line.WithThickness(8),
//	    line.WithColor(0xff0000),
//	    line.WithDashSize(12),
//	    line.WithGapSize(4),
//	    line.WithClosed(true),
//	)
type Option func(*options)

// options holds optional configuration for Line creation.
type options struct {
	dashSize  float64
	gapSize   float64
	offset    float64
	thickness float64
	color     Color
	closed    bool
	transform Matrix
	normals   NormalComputer
}

// defaultOptions returns the default line options.
func defaultOptions() options {
	return options{
		dashSize:  1,
		gapSize:   0, // Added to dashSize/2 in New
		offset:    0,
		thickness: 1,
		color:     DefaultColor,
		closed:    false,
		transform: Identity(),
		normals:   MiterNormals{},
	}
}

// WithDashSize sets the length of an opaque dash. Non-positive values are
// ignored and the default of 1 is kept.
func WithDashSize(size float64) Option {
	return func(o *options) {
		if size > 0 {
			o.dashSize = size
		}
	}
}

// WithGapSize sets the extra gap length. The effective gap between dashes
// is dashSize/2 + gap.
func WithGapSize(gap float64) Option {
	return func(o *options) {
		o.gapSize = gap
	}
}

// WithOffset sets the dash pattern phase offset.
func WithOffset(offset float64) Option {
	return func(o *options) {
		o.offset = offset
	}
}

// WithThickness sets the stroke width. Non-positive values are ignored and
// the default of 1 is kept.
func WithThickness(thickness float64) Option {
	return func(o *options) {
		if thickness > 0 {
			o.thickness = thickness
		}
	}
}

// WithColor sets the stroke color.
func WithColor(c Color) Option {
	return func(o *options) {
		o.color = c
	}
}

// WithClosed treats the path as a loop: the last point connects to the
// first for corner refinement and normal computation.
func WithClosed(closed bool) Option {
	return func(o *options) {
		o.closed = closed
	}
}

// WithTransform sets the local-to-world transform.
func WithTransform(m Matrix) Option {
	return func(o *options) {
		o.transform = m
	}
}

// WithMiterLimit caps the miter length of the built-in normal computer.
// It replaces any computer set by WithNormalComputer.
func WithMiterLimit(limit float64) Option {
	return func(o *options) {
		o.normals = MiterNormals{Limit: limit}
	}
}

// WithNormalComputer replaces the normal and miter algorithm.
// A nil computer is ignored.
func WithNormalComputer(nc NormalComputer) Option {
	return func(o *options) {
		if nc != nil {
			o.normals = nc
		}
	}
}
