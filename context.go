package cairo

import (
	"fmt"
	"sync"

	"github.com/gogpu/cairo/engine"
	"github.com/gogpu/cairo/text"
)

// acquired tracks which engine contexts are currently driven by a Context.
// A live engine handle must have at most one logical owner; the engine's
// state machine cannot tolerate interleaved mutation.
var (
	acquiredMu sync.Mutex
	acquired   = make(map[engine.Context]struct{})
)

// Context implements the drawing abstraction over a stateful engine
// context. It exclusively borrows the engine handle for its whole
// lifetime and must not outlive it.
//
// Context is single-threaded: every operation is a direct, synchronous
// call sequence against engine state. It is not safe for concurrent use.
type Context struct {
	eng  engine.Context
	text *text.Source
}

// NewContext wraps an engine context. It fails with ErrBorrowConflict if
// the handle is already owned by another live Context; call Close to
// release ownership.
func NewContext(eng engine.Context) (*Context, error) {
	acquiredMu.Lock()
	defer acquiredMu.Unlock()
	if _, ok := acquired[eng]; ok {
		return nil, fmt.Errorf("engine context already owned: %w", ErrBorrowConflict)
	}
	acquired[eng] = struct{}{}
	return &Context{
		eng:  eng,
		text: text.New(eng.Device()),
	}, nil
}

// Close releases exclusive ownership of the engine handle. The Context
// must not be used afterwards.
func (rc *Context) Close() {
	acquiredMu.Lock()
	defer acquiredMu.Unlock()
	delete(acquired, rc.eng)
}

// Status reports the engine's sticky error flag. Drawing primitives are
// no-ops once the flag is set, so poll Status after batches of drawing
// calls. The flag is never cleared by this package.
func (rc *Context) Status() error {
	if s := rc.eng.Status(); s != engine.StatusSuccess {
		return &StatusError{Status: s}
	}
	return nil
}

// Finish ends drawing and reports any sticky engine error.
func (rc *Context) Finish() error {
	if err := rc.Status(); err != nil {
		logger().Warn("finish with sticky engine status", "error", err)
		return err
	}
	return nil
}

// Clear paints the entire visible surface with an opaque color. The
// color's alpha channel is ignored.
func (rc *Context) Clear(color Color) {
	rgba := uint32(color)
	rc.eng.SetSourceRGB(
		byteToFrac(rgba>>24),
		byteToFrac(rgba>>16),
		byteToFrac(rgba>>8),
	)
	rc.eng.Paint()
}

// SolidBrush creates a brush painting a single color. Color itself
// implements BrushSource, so this is only needed when a Brush value is
// wanted up front.
func (rc *Context) SolidBrush(color Color) Brush {
	return SolidBrush{Color: color}
}

// Gradient constructs an engine-owned gradient pattern from a description
// and returns it as a brush. Construction happens once, here, not per
// draw; the returned brush is cheap to copy and reuse.
func (rc *Context) Gradient(spec GradientSpec) (Brush, error) {
	switch g := spec.(type) {
	case LinearGradient:
		lg := rc.eng.Device().CreateLinearGradient(g.Start.X, g.Start.Y, g.End.X, g.End.Y)
		setGradientStops(lg, g.Stops)
		if s := lg.Status(); s != engine.StatusSuccess {
			return nil, &StatusError{Status: s}
		}
		logger().Debug("linear gradient created", "stops", len(g.Stops))
		return LinearBrush{pattern: lg}, nil
	case RadialGradient:
		focal := g.Center.Add(g.OriginOffset)
		rg := rc.eng.Device().CreateRadialGradient(
			focal.X, focal.Y, 0,
			g.Center.X, g.Center.Y, g.Radius,
		)
		setGradientStops(rg, g.Stops)
		if s := rg.Status(); s != engine.StatusSuccess {
			return nil, &StatusError{Status: s}
		}
		logger().Debug("radial gradient created", "stops", len(g.Stops))
		return RadialBrush{pattern: rg}, nil
	default:
		return nil, fmt.Errorf("gradient spec %T: %w", spec, ErrNotSupported)
	}
}

// Fill fills a shape using the winding (nonzero) fill rule.
func (rc *Context) Fill(shape Shape, brush BrushSource) {
	b := brush.MakeBrush(rc, shape.BoundingBox)
	rc.setPath(shape)
	rc.setBrush(b)
	rc.eng.SetFillRule(engine.FillRuleWinding)
	rc.eng.Fill()
}

// FillEvenOdd fills a shape using the even-odd fill rule.
func (rc *Context) FillEvenOdd(shape Shape, brush BrushSource) {
	b := brush.MakeBrush(rc, shape.BoundingBox)
	rc.setPath(shape)
	rc.setBrush(b)
	rc.eng.SetFillRule(engine.FillRuleEvenOdd)
	rc.eng.Fill()
}

// Clip intersects a shape into the clip region using the winding rule.
// The visible region only ever shrinks; use Save/Restore to widen it
// again.
func (rc *Context) Clip(shape Shape) {
	rc.setPath(shape)
	rc.eng.SetFillRule(engine.FillRuleWinding)
	rc.eng.Clip()
}

// Stroke strokes a shape's outline with the given width and default
// stroke parameters.
func (rc *Context) Stroke(shape Shape, brush BrushSource, width float64) {
	b := brush.MakeBrush(rc, shape.BoundingBox)
	rc.setPath(shape)
	rc.setStroke(width, nil)
	rc.setBrush(b)
	rc.eng.Stroke()
}

// StrokeStyled strokes a shape's outline with the given width and style
// overrides. A nil style means all defaults; each style field defaults
// independently.
func (rc *Context) StrokeStyled(shape Shape, brush BrushSource, width float64, style *StrokeStyle) {
	b := brush.MakeBrush(rc, shape.BoundingBox)
	rc.setPath(shape)
	rc.setStroke(width, style)
	rc.setBrush(b)
	rc.eng.Stroke()
}

// Text returns the text source used to load fonts and build layouts for
// this context.
func (rc *Context) Text() *text.Source {
	return rc.text
}

// DrawText draws a shaped layout with its baseline origin at pos.
//
// Gradient brush sources are materialized against a zero bounding box
// here, because the toy text path does not compute one. Construct
// gradient brushes explicitly with Gradient when drawing text.
func (rc *Context) DrawText(layout *text.Layout, pos Point, brush BrushSource) {
	b := brush.MakeBrush(rc, func() Rect { return Rect{} })
	rc.eng.SetScaledFont(layout.ScaledFont())
	rc.setBrush(b)
	rc.eng.MoveTo(pos.X, pos.Y)
	rc.eng.ShowText(layout.Text())
}

// Save pushes the engine's full graphics state (transform, clip, source,
// line state). A returned error reflects the engine's sticky status, not
// stack depth.
func (rc *Context) Save() error {
	rc.eng.Save()
	return rc.Status()
}

// Restore pops the engine's graphics state. Restoring past the base state
// is engine-defined behavior and surfaces through the sticky status.
func (rc *Context) Restore() error {
	rc.eng.Restore()
	return rc.Status()
}

// WithSave runs f inside a save/restore scope. Exactly one restore is
// issued per save, even if f returns an error or panics partway.
func (rc *Context) WithSave(f func(*Context) error) error {
	if err := rc.Save(); err != nil {
		return err
	}
	restored := false
	defer func() {
		if !restored {
			rc.eng.Restore()
		}
	}()
	if err := f(rc); err != nil {
		return err
	}
	restored = true
	return rc.Restore()
}

// Transform concatenates an affine transform onto the current transform.
// It does not replace the current transform.
func (rc *Context) Transform(t Affine) {
	rc.eng.Transform(affineToMatrix(t))
}

// CurrentTransform reads the engine's active matrix back as an Affine.
func (rc *Context) CurrentTransform() Affine {
	return matrixToAffine(rc.eng.Matrix())
}

// DrawImage draws the whole image scaled into the destination rectangle.
func (rc *Context) DrawImage(img *Image, dst Rect, interp InterpolationMode) {
	rc.drawImage(img, nil, dst, interp)
}

// DrawImageArea draws the src sub-region of the image scaled into the
// destination rectangle. Scale factors are computed independently per
// axis, so non-uniform scaling is expected.
func (rc *Context) DrawImageArea(img *Image, src, dst Rect, interp InterpolationMode) {
	rc.drawImage(img, &src, dst, interp)
}

// drawImage composes an image onto the surface as a scoped sequence:
// save, clip to the destination, translate and scale so the source region
// maps onto the destination, set the surface pattern, paint, restore.
func (rc *Context) drawImage(img *Image, src *Rect, dst Rect, interp InterpolationMode) {
	_ = rc.WithSave(func(rc *Context) error {
		pattern := rc.eng.Device().CreateSurfacePattern(img.surface)
		pattern.SetFilter(convertFilter(interp))
		srcRect := Rect{X1: float64(img.Width()), Y1: float64(img.Height())}
		if src != nil {
			srcRect = *src
		}
		scaleX := dst.Width() / srcRect.Width()
		scaleY := dst.Height() / srcRect.Height()
		rc.Clip(dst)
		rc.eng.Translate(dst.X0-scaleX*srcRect.X0, dst.Y0-scaleY*srcRect.Y0)
		rc.eng.Scale(scaleX, scaleY)
		rc.eng.SetSource(pattern)
		rc.eng.Paint()
		return nil
	})
}

// setBrush pushes the brush as the engine's source pattern. The engine is
// stateful while brushes are values; this is the single dispatch point
// between the two models.
func (rc *Context) setBrush(brush Brush) {
	switch b := brush.(type) {
	case SolidBrush:
		rgba := uint32(b.Color)
		rc.eng.SetSourceRGBA(
			byteToFrac(rgba>>24),
			byteToFrac(rgba>>16),
			byteToFrac(rgba>>8),
			byteToFrac(rgba),
		)
	case LinearBrush:
		rc.eng.SetSource(b.pattern)
	case RadialBrush:
		rc.eng.SetSource(b.pattern)
	}
}

// setStroke pushes the full set of stroke parameters. Every field is set
// on every call so that no stale state leaks between draws; absent style
// fields push their defaults, and an absent dash resets the engine's dash
// array to empty with zero phase.
func (rc *Context) setStroke(width float64, style *StrokeStyle) {
	rc.eng.SetLineWidth(width)

	lineJoin := LineJoinMiter
	lineCap := LineCapButt
	miterLimit := defaultMiterLimit
	var dash *Dash
	if style != nil {
		lineJoin = style.LineJoin
		lineCap = style.LineCap
		if style.MiterLimit > 0 {
			miterLimit = style.MiterLimit
		}
		dash = style.Dash
	}
	rc.eng.SetLineJoin(convertLineJoin(lineJoin))
	rc.eng.SetLineCap(convertLineCap(lineCap))
	rc.eng.SetMiterLimit(miterLimit)
	if dash == nil {
		rc.eng.SetDash(nil, 0)
	} else {
		rc.eng.SetDash(dash.Array, dash.Offset)
	}
}

// setPath lowers a shape's element stream into the engine's current path.
// The engine should already be in the no-path state after any prior
// operation, but NewPath is issued regardless.
//
// The engine has no quadratic curve primitive, so quadratic elements are
// degree-elevated to exact cubics, which requires tracking the current
// point explicitly.
func (rc *Context) setPath(shape Shape) {
	rc.eng.NewPath()
	var last Point
	for el := range shape.PathElements(FlattenTolerance) {
		switch el := el.(type) {
		case MoveTo:
			rc.eng.MoveTo(el.Point.X, el.Point.Y)
			last = el.Point
		case LineTo:
			rc.eng.LineTo(el.Point.X, el.Point.Y)
			last = el.Point
		case QuadTo:
			c1, c2 := elevateQuad(last, el.Control, el.Point)
			rc.eng.CurveTo(c1.X, c1.Y, c2.X, c2.Y, el.Point.X, el.Point.Y)
			last = el.Point
		case CubicTo:
			rc.eng.CurveTo(
				el.Control1.X, el.Control1.Y,
				el.Control2.X, el.Control2.Y,
				el.Point.X, el.Point.Y,
			)
			last = el.Point
		case Close:
			rc.eng.ClosePath()
		}
	}
}
