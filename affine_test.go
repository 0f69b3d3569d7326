package cairo

import (
	"math"
	"testing"
)

func affineNear(a, b Affine, tol float64) bool {
	for i := range a {
		if math.Abs(a[i]-b[i]) > tol {
			return false
		}
	}
	return true
}

// The affine/matrix conversion is a pure field permutation; it must
// round-trip every coefficient exactly.
func TestAffineMatrixRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		a    Affine
	}{
		{"identity", Identity()},
		{"translation", Translate(10, -20)},
		{"scale", Scale(2, 0.5)},
		{"rotation", Rotate(math.Pi / 3)},
		{"composite", Translate(5, 7).Mul(Rotate(1.1)).Mul(Scale(3, -2))},
		{"arbitrary", Affine{1.5, -0.25, 0.75, 2.25, -10, 42}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := matrixToAffine(affineToMatrix(tt.a))
			if got != tt.a {
				t.Errorf("round trip = %v, want %v", got, tt.a)
			}
		})
	}
}

// A transposed permutation would map rotations to their inverses. Pin the
// exact field assignment.
func TestAffineToMatrixFieldOrder(t *testing.T) {
	m := affineToMatrix(Affine{1, 2, 3, 4, 5, 6})
	if m.XX != 1 || m.YX != 2 || m.XY != 3 || m.YY != 4 || m.X0 != 5 || m.Y0 != 6 {
		t.Errorf("field order wrong: %+v", m)
	}
}

func TestAffineApply(t *testing.T) {
	tests := []struct {
		name string
		a    Affine
		p    Point
		want Point
	}{
		{"identity", Identity(), Pt(3, 4), Pt(3, 4)},
		{"translate", Translate(1, 2), Pt(3, 4), Pt(4, 6)},
		{"scale", Scale(2, 3), Pt(3, 4), Pt(6, 12)},
		{"rotate 90", Rotate(math.Pi / 2), Pt(1, 0), Pt(0, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.a.Apply(tt.p)
			if math.Abs(got.X-tt.want.X) > 1e-12 || math.Abs(got.Y-tt.want.Y) > 1e-12 {
				t.Errorf("Apply(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestAffineMul(t *testing.T) {
	// Translate-then-scale differs from scale-then-translate.
	ts := Scale(2, 2).Mul(Translate(1, 0))
	if got := ts.Apply(Pt(0, 0)); got != Pt(2, 0) {
		t.Errorf("scale∘translate at origin = %v, want (2, 0)", got)
	}
	st := Translate(1, 0).Mul(Scale(2, 2))
	if got := st.Apply(Pt(0, 0)); got != Pt(1, 0) {
		t.Errorf("translate∘scale at origin = %v, want (1, 0)", got)
	}
}

func TestAffineDeterminant(t *testing.T) {
	if got := Scale(2, 3).Determinant(); got != 6 {
		t.Errorf("Scale(2,3) determinant = %g, want 6", got)
	}
	if got := Rotate(0.7).Determinant(); math.Abs(got-1) > 1e-12 {
		t.Errorf("rotation determinant = %g, want 1", got)
	}
}
