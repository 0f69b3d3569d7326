package engine

// Format describes the pixel layout of an image surface.
type Format int

const (
	// FormatARGB32 is packed 32-bit premultiplied ARGB, the native
	// compositing format.
	FormatARGB32 Format = iota
	// FormatRGB24 is packed 32-bit RGB with the unused byte ignored.
	FormatRGB24
)

// FillRule selects how path interiors are decided for fill and clip.
type FillRule int

const (
	FillRuleWinding FillRule = iota
	FillRuleEvenOdd
)

// LineCap is the engine's line cap enumeration.
type LineCap int

const (
	LineCapButt LineCap = iota
	LineCapRound
	LineCapSquare
)

// LineJoin is the engine's line join enumeration.
type LineJoin int

const (
	LineJoinMiter LineJoin = iota
	LineJoinRound
	LineJoinBevel
)

// Filter selects the sampling filter for surface patterns.
type Filter int

const (
	FilterNearest Filter = iota
	FilterBilinear
)

// Matrix is the engine's 2D affine transform representation.
// A point (x, y) maps to (XX*x + XY*y + X0, YX*x + YY*y + Y0).
type Matrix struct {
	XX, YX float64
	XY, YY float64
	X0, Y0 float64
}

// Identity returns the identity matrix.
func Identity() Matrix {
	return Matrix{XX: 1, YY: 1}
}

// Mul returns the composition m ∘ n: applying the result transforms a
// point first by n, then by m.
func (m Matrix) Mul(n Matrix) Matrix {
	return Matrix{
		XX: m.XX*n.XX + m.XY*n.YX,
		YX: m.YX*n.XX + m.YY*n.YX,
		XY: m.XX*n.XY + m.XY*n.YY,
		YY: m.YX*n.XY + m.YY*n.YY,
		X0: m.XX*n.X0 + m.XY*n.Y0 + m.X0,
		Y0: m.YX*n.X0 + m.YY*n.Y0 + m.Y0,
	}
}

// Pattern is a source the engine can paint with.
type Pattern interface {
	// Status reports the pattern's sticky error flag.
	Status() Status
}

// Gradient is a gradient pattern under construction. Color stops are
// appended in caller order; offsets are fractions along the gradient axis
// and channel values are fractions in [0, 1].
type Gradient interface {
	Pattern
	AddColorStopRGBA(offset, r, g, b, a float64)
}

// SurfacePattern is a pattern sourcing from an image surface.
type SurfacePattern interface {
	Pattern
	SetFilter(Filter)
}

// ImageSurface is an engine-owned pixel buffer. The engine chooses the row
// stride, which may exceed the tightly packed width for alignment; callers
// must honor Stride when addressing Data.
type ImageSurface interface {
	Width() int
	Height() int
	// Stride returns the byte distance between rows. Always >= Width*4
	// for 32-bit formats.
	Stride() int
	// Data borrows the surface's raw pixel bytes for writing. It fails if
	// the data is already borrowed elsewhere.
	Data() ([]byte, error)
	// Flush marks pending pixel modifications as complete.
	Flush()
	Status() Status
}

// ScaledFont is an engine font handle at a fixed size, settable as the
// context's active font.
type ScaledFont interface {
	Status() Status
}

// Device creates engine-owned resources. Resources are reference-counted
// or arena-managed by the engine; callers never free them explicitly.
type Device interface {
	// CreateImageSurface allocates a width×height surface in the given
	// format with an engine-chosen stride.
	CreateImageSurface(format Format, width, height int) (ImageSurface, error)

	// CreateLinearGradient creates a gradient along the segment
	// (x0, y0)-(x1, y1) with no stops.
	CreateLinearGradient(x0, y0, x1, y1 float64) Gradient

	// CreateRadialGradient creates a two-circle radial gradient between
	// circle (cx0, cy0, r0) and circle (cx1, cy1, r1) with no stops.
	CreateRadialGradient(cx0, cy0, r0, cx1, cy1, r1 float64) Gradient

	// CreateSurfacePattern wraps an image surface as a paintable pattern.
	CreateSurfacePattern(surface ImageSurface) SurfacePattern

	// CreateScaledFont builds a scaled font from raw font data (TTF/OTF)
	// at the given face index and pixel size.
	CreateScaledFont(data []byte, index int, size float64) (ScaledFont, error)
}

// Context is the stateful drawing context. Every method mutates or reads
// context state directly; drawing methods that fail set the sticky status
// flag and become no-ops rather than returning errors.
type Context interface {
	// Device returns the resource factory associated with this context's
	// target surface.
	Device() Device

	// Status reports the sticky error flag. Once non-success it persists
	// until cleared by engine-defined means; this contract never requires
	// the caller to clear it.
	Status() Status

	// Save pushes the full graphics state (transform, clip, source, line
	// state) onto the state stack; Restore pops it. Restoring past the
	// base state is engine-defined behavior surfaced via Status.
	Save()
	Restore()

	// Path construction. The current path persists across calls until a
	// path-consuming operation or NewPath clears it.
	NewPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	CurveTo(x1, y1, x2, y2, x3, y3 float64)
	ClosePath()

	// Path-consuming operations. Fill and Stroke clear the current path;
	// Clip intersects it into the clip region and clears it. Paint fills
	// the whole clip region with the current source, ignoring the path.
	SetFillRule(FillRule)
	Fill()
	Stroke()
	Clip()
	Paint()

	// Source state.
	SetSourceRGB(r, g, b float64)
	SetSourceRGBA(r, g, b, a float64)
	SetSource(Pattern)

	// Stroke state.
	SetLineWidth(width float64)
	SetLineCap(LineCap)
	SetLineJoin(LineJoin)
	SetMiterLimit(limit float64)
	// SetDash installs the dash pattern. An empty slice with zero offset
	// disables dashing.
	SetDash(dashes []float64, offset float64)

	// Transform state. Transform concatenates onto the current matrix;
	// Translate and Scale are shorthands for concatenating the
	// corresponding matrices. Matrix returns the current transform.
	Transform(Matrix)
	Translate(dx, dy float64)
	Scale(sx, sy float64)
	Matrix() Matrix

	// Toy text API.
	SetScaledFont(ScaledFont)
	ShowText(s string)
}
