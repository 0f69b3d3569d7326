package cairo

import "iter"

// FlattenTolerance is the default accuracy, in coordinate units, used when
// a shape approximates curved geometry with path elements.
const FlattenTolerance = 1e-3

// PathElement represents a single element in a path element stream.
// This is a sealed interface; only types in this package implement it.
type PathElement interface {
	isPathElement()
}

// MoveTo starts a new subpath at a point.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// QuadTo draws a quadratic Bezier curve. The start point is implied by the
// previous element.
type QuadTo struct {
	Control Point
	Point   Point
}

func (QuadTo) isPathElement() {}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isPathElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// Shape is anything that can describe itself as a path element stream plus
// a bounding box. The tolerance bounds the error allowed when curved
// geometry has to be approximated; shapes that lower exactly ignore it.
type Shape interface {
	// PathElements yields the shape's elements in drawing order.
	PathElements(tolerance float64) iter.Seq[PathElement]

	// BoundingBox returns a rectangle containing the shape. For Bezier
	// elements it may be the control-point hull rather than the tight
	// curve bounds.
	BoundingBox() Rect
}

// Path is a mutable vector path. The zero value is an empty path ready
// for use. Path implements Shape.
type Path struct {
	elements []PathElement
	current  Point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{elements: make([]PathElement, 0, 16)}
}

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.current = pt
}

// LineTo draws a line to (x, y).
func (p *Path) LineTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
}

// QuadraticTo draws a quadratic Bezier curve with control point (cx, cy)
// ending at (x, y).
func (p *Path) QuadraticTo(cx, cy, x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, QuadTo{Control: Pt(cx, cy), Point: pt})
	p.current = pt
}

// CubicTo draws a cubic Bezier curve with control points (c1x, c1y) and
// (c2x, c2y) ending at (x, y).
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, CubicTo{
		Control1: Pt(c1x, c1y),
		Control2: Pt(c2x, c2y),
		Point:    pt,
	})
	p.current = pt
}

// ClosePath closes the current subpath.
func (p *Path) ClosePath() {
	p.elements = append(p.elements, Close{})
}

// Current returns the path's current point.
func (p *Path) Current() Point {
	return p.current
}

// PathElements implements Shape. Path stores its elements verbatim, so the
// tolerance is ignored.
func (p *Path) PathElements(_ float64) iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		for _, el := range p.elements {
			if !yield(el) {
				return
			}
		}
	}
}

// BoundingBox implements Shape. Control points of Bezier elements are
// included, so the box is conservative for curves.
func (p *Path) BoundingBox() Rect {
	bb := boundsAccumulator{}
	for _, el := range p.elements {
		switch el := el.(type) {
		case MoveTo:
			bb.add(el.Point)
		case LineTo:
			bb.add(el.Point)
		case QuadTo:
			bb.add(el.Control)
			bb.add(el.Point)
		case CubicTo:
			bb.add(el.Control1)
			bb.add(el.Control2)
			bb.add(el.Point)
		}
	}
	return bb.rect()
}

// elevateQuad raises a quadratic Bezier curve to the equivalent cubic.
// This is an exact degree elevation, not an approximation: the cubic's
// control points are
//
//	c1 = start + 2/3*(ctrl - start)
//	c2 = end   + 2/3*(ctrl - end)
func elevateQuad(start, ctrl, end Point) (c1, c2 Point) {
	c1 = start.Add(ctrl.Sub(start).Mul(2.0 / 3.0))
	c2 = end.Add(ctrl.Sub(end).Mul(2.0 / 3.0))
	return c1, c2
}

// boundsAccumulator grows a bounding rectangle point by point.
type boundsAccumulator struct {
	set bool
	r   Rect
}

func (b *boundsAccumulator) add(p Point) {
	if !b.set {
		b.r = Rect{X0: p.X, Y0: p.Y, X1: p.X, Y1: p.Y}
		b.set = true
		return
	}
	if p.X < b.r.X0 {
		b.r.X0 = p.X
	}
	if p.Y < b.r.Y0 {
		b.r.Y0 = p.Y
	}
	if p.X > b.r.X1 {
		b.r.X1 = p.X
	}
	if p.Y > b.r.Y1 {
		b.r.Y1 = p.Y
	}
}

func (b *boundsAccumulator) rect() Rect {
	return b.r
}
