package cairo

import (
	"testing"

	"github.com/gogpu/cairo/engine"
)

func TestConvertLineCap(t *testing.T) {
	tests := []struct {
		in   LineCap
		want engine.LineCap
	}{
		{LineCapButt, engine.LineCapButt},
		{LineCapRound, engine.LineCapRound},
		{LineCapSquare, engine.LineCapSquare},
	}
	for _, tt := range tests {
		if got := convertLineCap(tt.in); got != tt.want {
			t.Errorf("convertLineCap(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestConvertLineJoin(t *testing.T) {
	tests := []struct {
		in   LineJoin
		want engine.LineJoin
	}{
		{LineJoinMiter, engine.LineJoinMiter},
		{LineJoinRound, engine.LineJoinRound},
		{LineJoinBevel, engine.LineJoinBevel},
	}
	for _, tt := range tests {
		if got := convertLineJoin(tt.in); got != tt.want {
			t.Errorf("convertLineJoin(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestNewDash(t *testing.T) {
	if NewDash() != nil {
		t.Error("NewDash() with no lengths should return nil")
	}
	d := NewDash(5, 3)
	if d == nil || len(d.Array) != 2 || d.Array[0] != 5 || d.Array[1] != 3 {
		t.Errorf("NewDash(5, 3) = %+v", d)
	}
	if d.Offset != 0 {
		t.Errorf("NewDash offset = %g, want 0", d.Offset)
	}
}
