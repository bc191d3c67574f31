package aurora

import "github.com/hajimehoshi/ebiten/v2"

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title     string
	Width     int
	Height    int
	Resizable bool
	ShowFPS   bool
}

// Run opens a window and runs the page until the window closes. The page is
// closed on every exit path.
func Run(p *Page, cfg RunConfig) error {
	defer p.Close()

	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	if cfg.Width > 0 && cfg.Height > 0 {
		ebiten.SetWindowSize(cfg.Width, cfg.Height)
	}
	p.ShowFPS = p.ShowFPS || cfg.ShowFPS
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	// The page draws its own cursor dot.
	ebiten.SetCursorMode(ebiten.CursorModeHidden)
	return ebiten.RunGame(p)
}
