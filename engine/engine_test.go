package engine

import (
	"math"
	"testing"
)

func TestIdentity(t *testing.T) {
	m := Identity()
	if m.XX != 1 || m.YY != 1 || m.YX != 0 || m.XY != 0 || m.X0 != 0 || m.Y0 != 0 {
		t.Errorf("Identity() = %+v", m)
	}
}

func TestMatrixMul(t *testing.T) {
	translate := Matrix{XX: 1, YY: 1, X0: 10, Y0: 20}
	scale := Matrix{XX: 2, YY: 3}

	// translate ∘ scale: scaling happens first.
	got := translate.Mul(scale)
	want := Matrix{XX: 2, YY: 3, X0: 10, Y0: 20}
	if got != want {
		t.Errorf("translate.Mul(scale) = %+v, want %+v", got, want)
	}

	// scale ∘ translate: translation happens first and gets scaled.
	got = scale.Mul(translate)
	want = Matrix{XX: 2, YY: 3, X0: 20, Y0: 60}
	if got != want {
		t.Errorf("scale.Mul(translate) = %+v, want %+v", got, want)
	}
}

func TestMatrixMulRotation(t *testing.T) {
	sin, cos := math.Sincos(math.Pi / 2)
	rot := Matrix{XX: cos, YX: sin, XY: -sin, YY: cos}

	got := rot.Mul(rot)
	// Two quarter turns: x axis maps to (-1, 0).
	if math.Abs(got.XX+1) > 1e-12 || math.Abs(got.YX) > 1e-12 {
		t.Errorf("rot² = %+v, want half turn", got)
	}
}

func TestStatusString(t *testing.T) {
	tests := []struct {
		s    Status
		want string
	}{
		{StatusSuccess, "success"},
		{StatusNoMemory, "no memory"},
		{StatusInvalidRestore, "invalid restore"},
		{Status(1000), "status(1000)"},
	}
	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("Status(%d).String() = %q, want %q", tt.s, got, tt.want)
		}
	}
}
