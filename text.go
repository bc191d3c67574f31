package aurora

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// Font wraps Ebitengine's text/v2 for TrueType font rendering.
type Font struct {
	face *text.GoTextFace
	size float64
	lh   float64 // cached line height
}

// LoadFont loads a TrueType font from raw TTF/OTF data at the given size.
func LoadFont(ttfData []byte, size float64) (*Font, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("aurora: failed to parse TTF data: %w", err)
	}
	face := &text.GoTextFace{
		Source: source,
		Size:   size,
	}
	m := face.Metrics()
	return &Font{
		face: face,
		size: size,
		lh:   m.HAscent + m.HDescent + m.HLineGap,
	}, nil
}

// MeasureString returns the width and height of the rendered text.
func (f *Font) MeasureString(s string) (width, height float64) {
	return text.Measure(s, f.face, f.lh)
}

// LineHeight returns the vertical distance between baselines.
func (f *Font) LineHeight() float64 {
	return f.lh
}

// Size returns the font size in pixels.
func (f *Font) Size() float64 {
	return f.size
}

// Face returns the underlying GoTextFace for direct Ebitengine text/v2 rendering.
func (f *Font) Face() *text.GoTextFace {
	return f.face
}

// Fonts holds the faces the page draws with.
type Fonts struct {
	Nav   *Font
	Title *Font
}

// DefaultFonts loads the Go fonts bundled with golang.org/x/image: regular
// for navigation labels, bold for section titles.
func DefaultFonts() (Fonts, error) {
	nav, err := LoadFont(goregular.TTF, 14)
	if err != nil {
		return Fonts{}, err
	}
	title, err := LoadFont(gobold.TTF, 32)
	if err != nil {
		return Fonts{}, err
	}
	return Fonts{Nav: nav, Title: title}, nil
}

// drawText draws s with its top-left corner at (x, y). Without a font it
// falls back to the debug bitmap font, which ignores color.
func drawText(dst *ebiten.Image, s string, f *Font, x, y float64, c Color) {
	if s == "" || c.A <= 0 {
		return
	}
	if f == nil {
		ebitenutil.DebugPrintAt(dst, s, int(x), int(y))
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.Scale(float32(c.R*c.A), float32(c.G*c.A), float32(c.B*c.A), float32(c.A))
	op.LineSpacing = f.lh
	text.Draw(dst, s, f.face, op)
}
