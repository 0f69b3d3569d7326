// Package enginetest provides an in-memory fake implementation of the
// engine contract for testing code built on the cairo adapter.
//
// The Fake records every call it receives as a formatted trace line, keeps
// a model of the mutable state a real engine would hold (current
// transform, stroke parameters, save depth, current path emptiness), and
// lets tests inject a sticky status or stride padding on created surfaces.
// It implements both engine.Context and engine.Device.
package enginetest

import (
	"fmt"
	"sync"

	"github.com/gogpu/cairo/engine"
)

// Fake is a recording fake engine. The zero value is not usable; create
// one with New. Like a real engine context it is not safe for concurrent
// use.
type Fake struct {
	// Calls is the ordered trace of every context call received, one
	// formatted line per call, e.g. "MoveTo(1, 2)".
	Calls []string

	// StridePadding is added to the tight row width of every surface
	// created by CreateImageSurface, to exercise stride-honoring code.
	StridePadding int

	// DataErr, when set, is returned by the next Surface.Data call.
	DataErr error

	status      engine.Status
	saveDepth   int
	matrix      engine.Matrix
	matrixStack []engine.Matrix

	// Stroke and dash state, exposed for assertions.
	LineWidth  float64
	MiterLimit float64
	LineCap    engine.LineCap
	LineJoin   engine.LineJoin
	Dashes     []float64
	DashOffset float64
	FillRule   engine.FillRule

	// Source is the last pattern set by SetSource, nil after
	// SetSourceRGB/SetSourceRGBA.
	Source engine.Pattern
	// SourceRGBA is the last solid source set, valid when Source is nil.
	SourceRGBA [4]float64

	// ActiveFont is the last scaled font set.
	ActiveFont engine.ScaledFont
	// ShownText accumulates every ShowText argument.
	ShownText []string

	// PathEmpty mirrors the engine invariant that the current path is
	// empty outside of path construction.
	PathEmpty bool

	// Surfaces, Gradients and Patterns collect every resource created
	// through the Device side, in creation order.
	Surfaces  []*Surface
	Gradients []*Gradient
	Patterns  []*SurfacePattern
	Fonts     []*ScaledFont
}

// Interface compliance.
var (
	_ engine.Context      = (*Fake)(nil)
	_ engine.Device       = (*Fake)(nil)
	_ engine.ImageSurface = (*Surface)(nil)
	_ engine.Gradient     = (*Gradient)(nil)
)

// New creates a fake engine with an identity transform and success status.
func New() *Fake {
	return &Fake{matrix: engine.Identity(), PathEmpty: true}
}

// SetStatus injects a sticky status. Real engines set this themselves when
// an operation fails; tests set it to exercise the deferred-error path.
func (f *Fake) SetStatus(s engine.Status) { f.status = s }

// SaveDepth returns the current save/restore nesting depth.
func (f *Fake) SaveDepth() int { return f.saveDepth }

func (f *Fake) record(format string, args ...any) {
	f.Calls = append(f.Calls, fmt.Sprintf(format, args...))
}

// CallsNamed returns the trace filtered to calls whose line starts with
// the given name.
func (f *Fake) CallsNamed(name string) []string {
	var out []string
	for _, c := range f.Calls {
		if len(c) >= len(name) && c[:len(name)] == name {
			out = append(out, c)
		}
	}
	return out
}

// Device implements engine.Context.
func (f *Fake) Device() engine.Device { return f }

// Status implements engine.Context.
func (f *Fake) Status() engine.Status { return f.status }

// Save implements engine.Context.
func (f *Fake) Save() {
	f.record("Save")
	f.saveDepth++
	f.matrixStack = append(f.matrixStack, f.matrix)
}

// Restore implements engine.Context. Restoring past the base state sets
// the sticky status, as a real engine does.
func (f *Fake) Restore() {
	f.record("Restore")
	if f.saveDepth == 0 {
		f.status = engine.StatusInvalidRestore
		return
	}
	f.saveDepth--
	f.matrix = f.matrixStack[len(f.matrixStack)-1]
	f.matrixStack = f.matrixStack[:len(f.matrixStack)-1]
}

// NewPath implements engine.Context.
func (f *Fake) NewPath() {
	f.record("NewPath")
	f.PathEmpty = true
}

// MoveTo implements engine.Context.
func (f *Fake) MoveTo(x, y float64) {
	f.record("MoveTo(%g, %g)", x, y)
	f.PathEmpty = false
}

// LineTo implements engine.Context.
func (f *Fake) LineTo(x, y float64) {
	f.record("LineTo(%g, %g)", x, y)
	f.PathEmpty = false
}

// CurveTo implements engine.Context.
func (f *Fake) CurveTo(x1, y1, x2, y2, x3, y3 float64) {
	f.record("CurveTo(%g, %g, %g, %g, %g, %g)", x1, y1, x2, y2, x3, y3)
	f.PathEmpty = false
}

// ClosePath implements engine.Context.
func (f *Fake) ClosePath() { f.record("ClosePath") }

// SetFillRule implements engine.Context.
func (f *Fake) SetFillRule(r engine.FillRule) {
	f.record("SetFillRule(%d)", r)
	f.FillRule = r
}

// Fill implements engine.Context. It consumes the current path.
func (f *Fake) Fill() {
	f.record("Fill")
	f.PathEmpty = true
}

// Stroke implements engine.Context. It consumes the current path.
func (f *Fake) Stroke() {
	f.record("Stroke")
	f.PathEmpty = true
}

// Clip implements engine.Context. It consumes the current path.
func (f *Fake) Clip() {
	f.record("Clip")
	f.PathEmpty = true
}

// Paint implements engine.Context.
func (f *Fake) Paint() { f.record("Paint") }

// SetSourceRGB implements engine.Context.
func (f *Fake) SetSourceRGB(r, g, b float64) {
	f.record("SetSourceRGB(%g, %g, %g)", r, g, b)
	f.Source = nil
	f.SourceRGBA = [4]float64{r, g, b, 1}
}

// SetSourceRGBA implements engine.Context.
func (f *Fake) SetSourceRGBA(r, g, b, a float64) {
	f.record("SetSourceRGBA(%g, %g, %g, %g)", r, g, b, a)
	f.Source = nil
	f.SourceRGBA = [4]float64{r, g, b, a}
}

// SetSource implements engine.Context.
func (f *Fake) SetSource(p engine.Pattern) {
	f.record("SetSource(%T)", p)
	f.Source = p
}

// SetLineWidth implements engine.Context.
func (f *Fake) SetLineWidth(w float64) {
	f.record("SetLineWidth(%g)", w)
	f.LineWidth = w
}

// SetLineCap implements engine.Context.
func (f *Fake) SetLineCap(c engine.LineCap) {
	f.record("SetLineCap(%d)", c)
	f.LineCap = c
}

// SetLineJoin implements engine.Context.
func (f *Fake) SetLineJoin(j engine.LineJoin) {
	f.record("SetLineJoin(%d)", j)
	f.LineJoin = j
}

// SetMiterLimit implements engine.Context.
func (f *Fake) SetMiterLimit(l float64) {
	f.record("SetMiterLimit(%g)", l)
	f.MiterLimit = l
}

// SetDash implements engine.Context.
func (f *Fake) SetDash(dashes []float64, offset float64) {
	f.record("SetDash(%v, %g)", dashes, offset)
	f.Dashes = append(f.Dashes[:0], dashes...)
	f.DashOffset = offset
}

// Transform implements engine.Context: it concatenates onto the current
// matrix.
func (f *Fake) Transform(m engine.Matrix) {
	f.record("Transform(%+v)", m)
	f.matrix = f.matrix.Mul(m)
}

// Translate implements engine.Context.
func (f *Fake) Translate(dx, dy float64) {
	f.record("Translate(%g, %g)", dx, dy)
	f.matrix = f.matrix.Mul(engine.Matrix{XX: 1, YY: 1, X0: dx, Y0: dy})
}

// Scale implements engine.Context.
func (f *Fake) Scale(sx, sy float64) {
	f.record("Scale(%g, %g)", sx, sy)
	f.matrix = f.matrix.Mul(engine.Matrix{XX: sx, YY: sy})
}

// Matrix implements engine.Context.
func (f *Fake) Matrix() engine.Matrix { return f.matrix }

// SetScaledFont implements engine.Context.
func (f *Fake) SetScaledFont(sf engine.ScaledFont) {
	f.record("SetScaledFont")
	f.ActiveFont = sf
}

// ShowText implements engine.Context.
func (f *Fake) ShowText(s string) {
	f.record("ShowText(%q)", s)
	f.ShownText = append(f.ShownText, s)
}

// Surface is a fake image surface backed by a plain byte slice.
type Surface struct {
	fake    *Fake
	format  engine.Format
	width   int
	height  int
	stride  int
	data    []byte
	flushes int
	mu      sync.Mutex
}

// Format returns the format the surface was created with.
func (s *Surface) Format() engine.Format { return s.format }

// Width implements engine.ImageSurface.
func (s *Surface) Width() int { return s.width }

// Height implements engine.ImageSurface.
func (s *Surface) Height() int { return s.height }

// Stride implements engine.ImageSurface.
func (s *Surface) Stride() int { return s.stride }

// Data implements engine.ImageSurface.
func (s *Surface) Data() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fake.DataErr; err != nil {
		s.fake.DataErr = nil
		return nil, err
	}
	return s.data, nil
}

// Flush implements engine.ImageSurface.
func (s *Surface) Flush() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flushes++
}

// Flushes reports how many times Flush was called.
func (s *Surface) Flushes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.flushes
}

// Status implements engine.ImageSurface.
func (s *Surface) Status() engine.Status { return engine.StatusSuccess }

// Pixel returns the 4 bytes of the pixel at (x, y) honoring the stride.
func (s *Surface) Pixel(x, y int) [4]byte {
	off := y*s.stride + x*4
	return [4]byte{s.data[off], s.data[off+1], s.data[off+2], s.data[off+3]}
}

// CreateImageSurface implements engine.Device.
func (f *Fake) CreateImageSurface(format engine.Format, width, height int) (engine.ImageSurface, error) {
	f.record("CreateImageSurface(%d, %d, %d)", format, width, height)
	stride := width*4 + f.StridePadding
	s := &Surface{
		fake:   f,
		format: format,
		width:  width,
		height: height,
		stride: stride,
		data:   make([]byte, stride*height),
	}
	f.Surfaces = append(f.Surfaces, s)
	return s, nil
}

// Gradient is a fake gradient pattern recording its geometry and stops.
type Gradient struct {
	// Linear distinguishes the two construction calls.
	Linear bool
	// Coords holds x0,y0,x1,y1 for linear gradients and
	// cx0,cy0,r0,cx1,cy1,r1 for radial ones.
	Coords []float64
	// Stops holds one [offset, r, g, b, a] row per added stop, in call
	// order.
	Stops [][5]float64

	status engine.Status
}

// Status implements engine.Pattern.
func (g *Gradient) Status() engine.Status { return g.status }

// AddColorStopRGBA implements engine.Gradient.
func (g *Gradient) AddColorStopRGBA(offset, red, green, blue, alpha float64) {
	g.Stops = append(g.Stops, [5]float64{offset, red, green, blue, alpha})
}

// CreateLinearGradient implements engine.Device.
func (f *Fake) CreateLinearGradient(x0, y0, x1, y1 float64) engine.Gradient {
	f.record("CreateLinearGradient(%g, %g, %g, %g)", x0, y0, x1, y1)
	g := &Gradient{Linear: true, Coords: []float64{x0, y0, x1, y1}}
	f.Gradients = append(f.Gradients, g)
	return g
}

// CreateRadialGradient implements engine.Device.
func (f *Fake) CreateRadialGradient(cx0, cy0, r0, cx1, cy1, r1 float64) engine.Gradient {
	f.record("CreateRadialGradient(%g, %g, %g, %g, %g, %g)", cx0, cy0, r0, cx1, cy1, r1)
	g := &Gradient{Coords: []float64{cx0, cy0, r0, cx1, cy1, r1}}
	f.Gradients = append(f.Gradients, g)
	return g
}

// SurfacePattern is a fake surface pattern.
type SurfacePattern struct {
	Surface engine.ImageSurface
	Filter  engine.Filter
}

// Status implements engine.Pattern.
func (p *SurfacePattern) Status() engine.Status { return engine.StatusSuccess }

// SetFilter implements engine.SurfacePattern.
func (p *SurfacePattern) SetFilter(filter engine.Filter) { p.Filter = filter }

// CreateSurfacePattern implements engine.Device.
func (f *Fake) CreateSurfacePattern(surface engine.ImageSurface) engine.SurfacePattern {
	f.record("CreateSurfacePattern")
	p := &SurfacePattern{Surface: surface}
	f.Patterns = append(f.Patterns, p)
	return p
}

// ScaledFont is a fake scaled font recording the data length and size it
// was created with.
type ScaledFont struct {
	DataLen int
	Index   int
	Size    float64
}

// Status implements engine.ScaledFont.
func (sf *ScaledFont) Status() engine.Status { return engine.StatusSuccess }

// CreateScaledFont implements engine.Device.
func (f *Fake) CreateScaledFont(data []byte, index int, size float64) (engine.ScaledFont, error) {
	f.record("CreateScaledFont(%d, %d, %g)", len(data), index, size)
	sf := &ScaledFont{DataLen: len(data), Index: index, Size: size}
	f.Fonts = append(f.Fonts, sf)
	return sf, nil
}
