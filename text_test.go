package aurora

import (
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func TestLoadFont(t *testing.T) {
	f, err := LoadFont(goregular.TTF, 16)
	if err != nil {
		t.Fatalf("LoadFont: %v", err)
	}
	if f.Size() != 16 || f.LineHeight() <= 0 {
		t.Errorf("size = %v, line height = %v", f.Size(), f.LineHeight())
	}
	w1, h := f.MeasureString("Home")
	w2, _ := f.MeasureString("Experience")
	if w1 <= 0 || h <= 0 || w2 <= w1 {
		t.Errorf("MeasureString widths = %v, %v; height = %v", w1, w2, h)
	}
}

func TestLoadFontInvalid(t *testing.T) {
	if _, err := LoadFont([]byte("not a font"), 16); err == nil {
		t.Error("expected error for invalid TTF data")
	}
}

func TestDefaultFonts(t *testing.T) {
	fonts, err := DefaultFonts()
	if err != nil {
		t.Fatalf("DefaultFonts: %v", err)
	}
	if fonts.Nav == nil || fonts.Title == nil || fonts.Title.Size() <= fonts.Nav.Size() {
		t.Errorf("unexpected fonts: %+v", fonts)
	}
}
