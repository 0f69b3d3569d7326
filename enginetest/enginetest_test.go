package enginetest

import (
	"testing"

	"github.com/gogpu/cairo/engine"
)

func TestRestorePastBase(t *testing.T) {
	f := New()
	f.Restore()
	if f.Status() != engine.StatusInvalidRestore {
		t.Errorf("status = %v, want invalid restore", f.Status())
	}
}

func TestSaveRestoresMatrix(t *testing.T) {
	f := New()
	f.Save()
	f.Translate(10, 20)
	if f.Matrix().X0 != 10 {
		t.Fatalf("translate not applied: %+v", f.Matrix())
	}
	f.Restore()
	if f.Matrix() != engine.Identity() {
		t.Errorf("matrix after restore = %+v, want identity", f.Matrix())
	}
}

func TestTransformConcatenation(t *testing.T) {
	f := New()
	f.Translate(1, 0)
	f.Scale(2, 2)
	// Point (1, 1) should map through scale first, then translate.
	m := f.Matrix()
	x := m.XX*1 + m.XY*1 + m.X0
	y := m.YX*1 + m.YY*1 + m.Y0
	if x != 3 || y != 2 {
		t.Errorf("(1,1) maps to (%g, %g), want (3, 2)", x, y)
	}
}

func TestSurfaceStridePadding(t *testing.T) {
	f := New()
	f.StridePadding = 12
	s, err := f.CreateImageSurface(engine.FormatARGB32, 3, 2)
	if err != nil {
		t.Fatalf("CreateImageSurface: %v", err)
	}
	if s.Stride() != 3*4+12 {
		t.Errorf("stride = %d, want %d", s.Stride(), 3*4+12)
	}
	data, err := s.Data()
	if err != nil {
		t.Fatalf("Data: %v", err)
	}
	if len(data) != s.Stride()*2 {
		t.Errorf("data length = %d, want %d", len(data), s.Stride()*2)
	}
}

func TestCallsNamed(t *testing.T) {
	f := New()
	f.Save()
	f.MoveTo(1, 2)
	f.Save()
	if got := len(f.CallsNamed("Save")); got != 2 {
		t.Errorf("CallsNamed(Save) = %d, want 2", got)
	}
	if got := len(f.CallsNamed("LineTo")); got != 0 {
		t.Errorf("CallsNamed(LineTo) = %d, want 0", got)
	}
}
