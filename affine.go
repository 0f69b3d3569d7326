package cairo

import (
	"math"

	"github.com/gogpu/cairo/engine"
)

// Affine is a 2D affine transform stored as six coefficients
// [a, b, c, d, e, f]. A point (x, y) maps to
//
//	x' = a*x + c*y + e
//	y' = b*x + d*y + f
//
// The coefficient order is fixed: it corresponds one-to-one to the
// engine's matrix fields (xx=a, yx=b, xy=c, yy=d, x0=e, y0=f).
type Affine [6]float64

// Identity returns the identity transform.
func Identity() Affine {
	return Affine{1, 0, 0, 1, 0, 0}
}

// Translate creates a translation transform.
func Translate(x, y float64) Affine {
	return Affine{1, 0, 0, 1, x, y}
}

// Scale creates a scaling transform.
func Scale(sx, sy float64) Affine {
	return Affine{sx, 0, 0, sy, 0, 0}
}

// Rotate creates a rotation transform (angle in radians).
func Rotate(angle float64) Affine {
	sin, cos := math.Sincos(angle)
	return Affine{cos, sin, -sin, cos, 0, 0}
}

// Mul returns the composition a ∘ b: applying the result transforms a
// point first by b, then by a.
func (a Affine) Mul(b Affine) Affine {
	return Affine{
		a[0]*b[0] + a[2]*b[1],
		a[1]*b[0] + a[3]*b[1],
		a[0]*b[2] + a[2]*b[3],
		a[1]*b[2] + a[3]*b[3],
		a[0]*b[4] + a[2]*b[5] + a[4],
		a[1]*b[4] + a[3]*b[5] + a[5],
	}
}

// Apply transforms a point.
func (a Affine) Apply(p Point) Point {
	return Point{
		X: a[0]*p.X + a[2]*p.Y + a[4],
		Y: a[1]*p.X + a[3]*p.Y + a[5],
	}
}

// Determinant returns the determinant of the linear part.
func (a Affine) Determinant() float64 {
	return a[0]*a[3] - a[1]*a[2]
}

// affineToMatrix marshals an Affine into the engine's representation.
// The field mapping must stay a pure permutation: a transposed mapping
// silently produces wrong rotations.
func affineToMatrix(a Affine) engine.Matrix {
	return engine.Matrix{
		XX: a[0],
		YX: a[1],
		XY: a[2],
		YY: a[3],
		X0: a[4],
		Y0: a[5],
	}
}

// matrixToAffine is the inverse permutation of affineToMatrix.
func matrixToAffine(m engine.Matrix) Affine {
	return Affine{m.XX, m.YX, m.XY, m.YY, m.X0, m.Y0}
}
