package aurora

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

const fpsRefresh = 0.5

// fpsOverlay shows FPS, TPS and the background renderer mode in the
// top-left corner. The text is redrawn every ~0.5 seconds.
type fpsOverlay struct {
	img   *ebiten.Image
	since float64
	label string
}

func (o *fpsOverlay) update(dt float64, mode RendererMode) {
	o.since += dt
	if o.label != "" && o.since < fpsRefresh {
		return
	}
	o.since = 0
	o.label = fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nBG: %s", ebiten.ActualFPS(), ebiten.ActualTPS(), mode)
	if o.img != nil {
		o.redraw()
	}
}

func (o *fpsOverlay) redraw() {
	o.img.Clear()
	// Semi-transparent background for readability
	o.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(o.img, o.label)
}

func (o *fpsOverlay) draw(dst *ebiten.Image) {
	if o.label == "" {
		return
	}
	if o.img == nil {
		// 100x48 fits three short lines of the debug font.
		o.img = ebiten.NewImage(100, 48)
		o.redraw()
	}
	dst.DrawImage(o.img, nil)
}
