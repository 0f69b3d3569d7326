package cairo

import "github.com/gogpu/cairo/engine"

// LineCap determines the shape of stroke endpoints.
type LineCap int

const (
	// LineCapButt ends the stroke flat at the endpoint. This is the
	// default.
	LineCapButt LineCap = iota
	// LineCapRound ends the stroke with a semicircle.
	LineCapRound
	// LineCapSquare ends the stroke with a half-square extension.
	LineCapSquare
)

// LineJoin determines the shape of stroke corners.
type LineJoin int

const (
	// LineJoinMiter extends the outer edges until they meet. This is the
	// default.
	LineJoinMiter LineJoin = iota
	// LineJoinRound rounds the corner.
	LineJoinRound
	// LineJoinBevel cuts the corner flat.
	LineJoinBevel
)

// defaultMiterLimit is applied when a StrokeStyle leaves MiterLimit unset.
const defaultMiterLimit = 10.0

// Dash defines a dash pattern for stroking: alternating dash and gap
// lengths plus a starting phase offset into the pattern cycle.
type Dash struct {
	Array  []float64
	Offset float64
}

// NewDash creates a dash pattern from alternating dash/gap lengths.
func NewDash(lengths ...float64) *Dash {
	if len(lengths) == 0 {
		return nil
	}
	return &Dash{Array: lengths}
}

// StrokeStyle carries optional stroke parameter overrides. Each field
// defaults independently when left at its zero value: cap to LineCapButt,
// join to LineJoinMiter, miter limit to 10, dash to none (a solid line).
// A nil *StrokeStyle means all defaults.
type StrokeStyle struct {
	LineCap  LineCap
	LineJoin LineJoin
	// MiterLimit applies when <= 0 is replaced by the default of 10.
	MiterLimit float64
	// Dash is the dash pattern; nil draws a solid line.
	Dash *Dash
}

// convertLineCap maps the abstract cap enum onto the engine's. Total.
func convertLineCap(c LineCap) engine.LineCap {
	switch c {
	case LineCapRound:
		return engine.LineCapRound
	case LineCapSquare:
		return engine.LineCapSquare
	default:
		return engine.LineCapButt
	}
}

// convertLineJoin maps the abstract join enum onto the engine's. Total.
func convertLineJoin(j LineJoin) engine.LineJoin {
	switch j {
	case LineJoinRound:
		return engine.LineJoinRound
	case LineJoinBevel:
		return engine.LineJoinBevel
	default:
		return engine.LineJoinMiter
	}
}
