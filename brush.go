package cairo

import "github.com/gogpu/cairo/engine"

// Brush represents what to paint with. This is a sealed interface; only
// types in this package implement it.
//
// Brushes are immutable values with no owning relationship to the Context:
// they are created once, held by the caller, and read by every draw
// operation. Gradient brushes hold engine-owned pattern handles, so
// copying a Brush is cheap.
type Brush interface {
	BrushSource

	// brushMarker is an unexported method that seals this interface.
	brushMarker()
}

// BrushSource is anything that can materialize into a Brush for a draw
// operation. The bbox callback supplies the bounding box of the shape
// being drawn; it is invoked lazily, only by sources that need geometry to
// resolve (concrete brushes ignore it).
//
// Brush values and Color both implement BrushSource, so draw operations
// accept either directly.
type BrushSource interface {
	MakeBrush(rc *Context, bbox func() Rect) Brush
}

// SolidBrush paints a single color.
type SolidBrush struct {
	Color Color
}

func (SolidBrush) brushMarker() {}

// MakeBrush implements BrushSource. Solid brushes materialize as
// themselves at zero cost.
func (b SolidBrush) MakeBrush(_ *Context, _ func() Rect) Brush { return b }

// MakeBrush implements BrushSource: a Color used as a brush paints solid.
func (c Color) MakeBrush(_ *Context, _ func() Rect) Brush {
	return SolidBrush{Color: c}
}

// LinearBrush paints with an engine-owned linear gradient pattern,
// constructed once by Context.Gradient.
type LinearBrush struct {
	pattern engine.Gradient
}

func (LinearBrush) brushMarker() {}

// MakeBrush implements BrushSource.
func (b LinearBrush) MakeBrush(_ *Context, _ func() Rect) Brush { return b }

// RadialBrush paints with an engine-owned radial gradient pattern,
// constructed once by Context.Gradient.
type RadialBrush struct {
	pattern engine.Gradient
}

func (RadialBrush) brushMarker() {}

// MakeBrush implements BrushSource.
func (b RadialBrush) MakeBrush(_ *Context, _ func() Rect) Brush { return b }

// ColorStop represents a color at a specific position in a gradient.
// Stop order defines interpolation order along the gradient axis; this
// package neither sorts nor deduplicates stops.
type ColorStop struct {
	// Offset is the position along the gradient axis, conventionally in
	// [0, 1].
	Offset float64
	Color  Color
}

// GradientSpec describes a gradient to construct. This is a sealed
// interface over LinearGradient and RadialGradient.
type GradientSpec interface {
	gradientSpec()
}

// LinearGradient describes a gradient along the segment from Start to End.
type LinearGradient struct {
	Start Point
	End   Point
	Stops []ColorStop
}

func (LinearGradient) gradientSpec() {}

// MakeBrush implements BrushSource by constructing the gradient on the
// fly. Construction failures are logged and fall back to a transparent
// solid brush; construct the brush once with Context.Gradient to observe
// the error.
func (g LinearGradient) MakeBrush(rc *Context, _ func() Rect) Brush {
	return makeGradientBrush(rc, g)
}

// RadialGradient describes a two-circle radial gradient: a zero-radius
// focal circle at Center+OriginOffset and a circle of the given Radius at
// Center.
type RadialGradient struct {
	Center Point
	// OriginOffset displaces the focal point from the center.
	OriginOffset Point
	Radius       float64
	Stops        []ColorStop
}

func (RadialGradient) gradientSpec() {}

// MakeBrush implements BrushSource by constructing the gradient on the
// fly, like LinearGradient.MakeBrush.
func (g RadialGradient) MakeBrush(rc *Context, _ func() Rect) Brush {
	return makeGradientBrush(rc, g)
}

func makeGradientBrush(rc *Context, spec GradientSpec) Brush {
	b, err := rc.Gradient(spec)
	if err != nil {
		logger().Warn("gradient brush materialization failed", "error", err)
		return SolidBrush{Color: Transparent}
	}
	return b
}

// setGradientStops appends stops in caller order to any gradient target,
// decomposing each packed color into four fractional channels. Both
// gradient kinds share this routine.
func setGradientStops(dst engine.Gradient, stops []ColorStop) {
	for _, stop := range stops {
		rgba := uint32(stop.Color)
		dst.AddColorStopRGBA(
			stop.Offset,
			byteToFrac(rgba>>24),
			byteToFrac(rgba>>16),
			byteToFrac(rgba>>8),
			byteToFrac(rgba),
		)
	}
}
