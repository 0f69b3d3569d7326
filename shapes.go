package cairo

import "iter"

// Rect is an axis-aligned rectangle described by two corners. A Rect with
// X0 <= X1 and Y0 <= Y1 is in standard form; NewRect produces standard
// form regardless of argument order.
type Rect struct {
	X0, Y0, X1, Y1 float64
}

// NewRect creates a rectangle from two corner coordinates, normalizing so
// that X0 <= X1 and Y0 <= Y1.
func NewRect(x0, y0, x1, y1 float64) Rect {
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	return Rect{X0: x0, Y0: y0, X1: x1, Y1: y1}
}

// Width returns the rectangle's horizontal extent.
func (r Rect) Width() float64 { return r.X1 - r.X0 }

// Height returns the rectangle's vertical extent.
func (r Rect) Height() float64 { return r.Y1 - r.Y0 }

// IsEmpty reports whether the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.X1 <= r.X0 || r.Y1 <= r.Y0
}

// PathElements implements Shape. Rectangles lower exactly, so the
// tolerance is ignored.
func (r Rect) PathElements(_ float64) iter.Seq[PathElement] {
	els := [5]PathElement{
		MoveTo{Point: Pt(r.X0, r.Y0)},
		LineTo{Point: Pt(r.X1, r.Y0)},
		LineTo{Point: Pt(r.X1, r.Y1)},
		LineTo{Point: Pt(r.X0, r.Y1)},
		Close{},
	}
	return func(yield func(PathElement) bool) {
		for _, el := range els {
			if !yield(el) {
				return
			}
		}
	}
}

// BoundingBox implements Shape.
func (r Rect) BoundingBox() Rect { return r }

// Line is a straight segment between two points. It has no interior;
// filling it is a no-op, stroking draws the segment.
type Line struct {
	P0, P1 Point
}

// PathElements implements Shape.
func (l Line) PathElements(_ float64) iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		if !yield(MoveTo{Point: l.P0}) {
			return
		}
		yield(LineTo{Point: l.P1})
	}
}

// BoundingBox implements Shape.
func (l Line) BoundingBox() Rect {
	return NewRect(l.P0.X, l.P0.Y, l.P1.X, l.P1.Y)
}

// Circle is a circle described by center and radius.
type Circle struct {
	Center Point
	Radius float64
}

// kappa is the standard control-point distance factor for approximating a
// quarter circle with one cubic Bezier: 4*(sqrt(2)-1)/3.
const kappa = 0.5522847498307936

// PathElements implements Shape. The circle lowers to four cubic arcs,
// which is accurate to well under the default flattening tolerance for
// unit-scale radii, so the tolerance is ignored.
func (c Circle) PathElements(_ float64) iter.Seq[PathElement] {
	x, y, r := c.Center.X, c.Center.Y, c.Radius
	k := kappa * r
	els := [6]PathElement{
		MoveTo{Point: Pt(x+r, y)},
		CubicTo{Control1: Pt(x+r, y+k), Control2: Pt(x+k, y+r), Point: Pt(x, y+r)},
		CubicTo{Control1: Pt(x-k, y+r), Control2: Pt(x-r, y+k), Point: Pt(x-r, y)},
		CubicTo{Control1: Pt(x-r, y-k), Control2: Pt(x-k, y-r), Point: Pt(x, y-r)},
		CubicTo{Control1: Pt(x+k, y-r), Control2: Pt(x+r, y-k), Point: Pt(x+r, y)},
		Close{},
	}
	return func(yield func(PathElement) bool) {
		for _, el := range els {
			if !yield(el) {
				return
			}
		}
	}
}

// BoundingBox implements Shape.
func (c Circle) BoundingBox() Rect {
	return Rect{
		X0: c.Center.X - c.Radius,
		Y0: c.Center.Y - c.Radius,
		X1: c.Center.X + c.Radius,
		Y1: c.Center.Y + c.Radius,
	}
}
