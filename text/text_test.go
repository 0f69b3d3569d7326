package text

import (
	"errors"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/cairo/enginetest"
)

func newSource() (*Source, *enginetest.Fake) {
	fake := enginetest.New()
	return New(fake), fake
}

func TestLoadFont(t *testing.T) {
	s, fake := newSource()

	f, err := s.LoadFont(goregular.TTF, 16)
	if err != nil {
		t.Fatalf("LoadFont: %v", err)
	}
	if f.Size() != 16 {
		t.Errorf("Size() = %g, want 16", f.Size())
	}
	if f.ScaledFont() == nil {
		t.Fatal("no engine scaled font created")
	}
	if len(fake.Fonts) != 1 {
		t.Fatalf("engine fonts created = %d, want 1", len(fake.Fonts))
	}
	if fake.Fonts[0].Size != 16 || fake.Fonts[0].DataLen != len(goregular.TTF) {
		t.Errorf("engine font = %+v", fake.Fonts[0])
	}
}

func TestLoadFontEmptyData(t *testing.T) {
	s, _ := newSource()
	if _, err := s.LoadFont(nil, 12); !errors.Is(err, ErrEmptyFontData) {
		t.Fatalf("LoadFont(nil) = %v, want ErrEmptyFontData", err)
	}
}

func TestLoadFontGarbageData(t *testing.T) {
	s, fake := newSource()
	if _, err := s.LoadFont([]byte("not a font"), 12); err == nil {
		t.Fatal("garbage font data accepted")
	}
	// Parsing fails before the engine is asked for a scaled font.
	if len(fake.Fonts) != 0 {
		t.Errorf("engine fonts created = %d, want 0", len(fake.Fonts))
	}
}

func TestNewLayout(t *testing.T) {
	s, _ := newSource()
	f, err := s.LoadFont(goregular.TTF, 16)
	if err != nil {
		t.Fatalf("LoadFont: %v", err)
	}

	l, err := s.NewLayout(f, "hello world")
	if err != nil {
		t.Fatalf("NewLayout: %v", err)
	}
	if l.Text() != "hello world" {
		t.Errorf("Text() = %q", l.Text())
	}
	if l.Width() <= 0 {
		t.Errorf("Width() = %g, want > 0", l.Width())
	}
	if l.GlyphCount() == 0 {
		t.Error("no glyphs shaped")
	}
	if l.Font() != f {
		t.Error("layout font is not the font it was built with")
	}
	if l.ScaledFont() != f.ScaledFont() {
		t.Error("layout scaled font differs from the font's handle")
	}
}

func TestNewLayoutWidthScalesWithText(t *testing.T) {
	s, _ := newSource()
	f, err := s.LoadFont(goregular.TTF, 16)
	if err != nil {
		t.Fatalf("LoadFont: %v", err)
	}

	short, err := s.NewLayout(f, "hi")
	if err != nil {
		t.Fatalf("NewLayout: %v", err)
	}
	long, err := s.NewLayout(f, "hi hi hi hi")
	if err != nil {
		t.Fatalf("NewLayout: %v", err)
	}
	if long.Width() <= short.Width() {
		t.Errorf("widths: long %g, short %g", long.Width(), short.Width())
	}
}

func TestNewLayoutEmptyText(t *testing.T) {
	s, _ := newSource()
	f, err := s.LoadFont(goregular.TTF, 16)
	if err != nil {
		t.Fatalf("LoadFont: %v", err)
	}

	l, err := s.NewLayout(f, "")
	if err != nil {
		t.Fatalf("NewLayout: %v", err)
	}
	if l.Width() != 0 || l.GlyphCount() != 0 {
		t.Errorf("empty layout: width %g, glyphs %d", l.Width(), l.GlyphCount())
	}
}

func TestNewLayoutNilFont(t *testing.T) {
	s, _ := newSource()
	if _, err := s.NewLayout(nil, "x"); !errors.Is(err, ErrNilFont) {
		t.Fatalf("NewLayout(nil) = %v, want ErrNilFont", err)
	}
}

func TestBaseDirectionDetection(t *testing.T) {
	s, _ := newSource()
	f, err := s.LoadFont(goregular.TTF, 16)
	if err != nil {
		t.Fatalf("LoadFont: %v", err)
	}

	// Hebrew text is right-to-left; the shaped width must still come out
	// positive.
	l, err := s.NewLayout(f, "שלום")
	if err != nil {
		t.Fatalf("NewLayout: %v", err)
	}
	if l.Width() < 0 {
		t.Errorf("RTL layout width = %g, want >= 0", l.Width())
	}
}
