package aurora

import (
	"errors"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/tanema/gween/ease"
)

// Page is the top-level object: it owns the frame clock, the pointer and
// scroll inputs, the background, the navigation menu and the section panels,
// and implements ebiten.Game.
//
// Per frame, Update feeds raw input into the pointer tracker and scroll
// observer, advances the clock (which applies the coalesced input and
// refreshes the background's uniforms), checks reveals against the viewport,
// then steps the UI animations.
type Page struct {
	cfg    Config
	layout Layout
	width  int
	height int

	clock      *FrameClock
	pointer    *PointerTracker
	cursor     *Cursor
	background *Background
	scroll     *ScrollObserver
	nav        *Navigator
	navbar     *NavBar
	reveal     *RevealAnimator

	panels     []*sectionPanel
	boundaries []SectionBoundary
	handles    []CallbackHandle

	// ClearColor fills the screen under the background each frame.
	ClearColor Color
	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir string
	// ShowFPS draws an FPS/TPS counter in the top-left corner.
	ShowFPS bool
	fps     fpsOverlay

	lastCursorX, lastCursorY int

	injectQueue     []syntheticEvent
	testRunner      *TestRunner
	screenshotQueue []string

	debug  bool
	stats  frameStats
	closed bool
}

// NewPage builds a page from cfg and layout. Nothing is drawn or acquired
// until the first Draw.
func NewPage(cfg Config, layout Layout) *Page {
	w, h := cfg.Window.Width, cfg.Window.Height
	p := &Page{
		cfg:           cfg,
		layout:        layout,
		ClearColor:    Hex(0x111827),
		ScreenshotDir: "screenshots",
		lastCursorX:   math.MinInt,
		lastCursorY:   math.MinInt,
	}

	// Tick order matters: pointer and scroll settle before the background
	// and navigator read them.
	p.clock = NewFrameClock(w, h)
	p.pointer = NewPointerTracker(p.clock)
	p.scroll = NewScrollObserver(p.clock, p.Boundaries, cfg.Scroll.ActivationMargin)
	p.nav = NewNavigator(cfg.Nav.HideThreshold)
	p.handles = append(p.handles, p.nav.Bind(p.scroll))

	p.background = NewBackground(p.clock, p.pointer, BackgroundOptions{
		TimeScale:    cfg.Background.TimeScale,
		PointerScale: cfg.Background.PointerScale,
	})
	if cfg.Background.ForceFallback {
		p.background.Fail(errors.New("disabled by configuration"))
	}

	p.reveal = NewRevealAnimator(p.clock, cfg.Reveal.Margin)
	p.handles = append(p.handles, p.reveal.OnReveal(p.onReveal))

	fonts, err := DefaultFonts()
	if err != nil {
		logger.Warn("using debug font", "err", err)
	}

	p.navbar = NewNavBar(p.nav, cfg.Nav.SlideDuration.Secs(), Stagger{Step: cfg.Nav.ItemStagger.Seconds()})
	p.navbar.SetFont(fonts.Nav)
	p.cursor = NewCursor(p.pointer)

	for _, s := range layout.Sections {
		if s.Hidden {
			continue
		}
		panel := newSectionPanel(s, cfg.Reveal)
		panel.font = fonts.Title
		p.panels = append(p.panels, panel)
	}
	p.relayout(w, h)
	p.SetDebugMode(cfg.Debug)
	return p
}

// Clock returns the page's frame clock.
func (p *Page) Clock() *FrameClock { return p.clock }

// Pointer returns the page's pointer tracker.
func (p *Page) Pointer() *PointerTracker { return p.pointer }

// Background returns the page's background renderer.
func (p *Page) Background() *Background { return p.background }

// Scroll returns the page's scroll observer.
func (p *Page) Scroll() *ScrollObserver { return p.scroll }

// Navigator returns the page's navigation state machine.
func (p *Page) Navigator() *Navigator { return p.nav }

// NavBar returns the page's navigation menu.
func (p *Page) NavBar() *NavBar { return p.navbar }

// Reveal returns the page's reveal animator.
func (p *Page) Reveal() *RevealAnimator { return p.reveal }

// Cursor returns the page's cursor dot.
func (p *Page) Cursor() *Cursor { return p.cursor }

// Boundaries returns the current section boundaries. The returned slice
// MUST NOT be mutated.
func (p *Page) Boundaries() []SectionBoundary {
	return p.boundaries
}

// MaxScroll returns the largest valid scroll offset.
func (p *Page) MaxScroll() float64 {
	return math.Max(0, p.layout.ContentHeight(float64(p.height))-float64(p.height))
}

// Viewport returns the visible part of the page in page coordinates.
func (p *Page) Viewport() Rect {
	return Rect{Y: p.scroll.Current().Offset, Width: float64(p.width), Height: float64(p.height)}
}

// ScrollBy moves the scroll target by delta pixels, clamped to the page.
func (p *Page) ScrollBy(delta float64) {
	target := math.Max(0, math.Min(p.scroll.Target()+delta, p.MaxScroll()))
	p.scroll.Report(target)
}

// Update implements ebiten.Game.
func (p *Page) Update() error {
	if p.closed {
		return nil
	}
	var t0 time.Time
	if p.debug {
		t0 = time.Now()
	}
	p.step(1.0/float64(ebiten.TPS()), true)
	if p.debug {
		p.stats.updateTime = time.Since(t0)
	}
	return nil
}

// step runs one frame. readInput is false in tests, where only injected
// events drive the page.
func (p *Page) step(dt float64, readInput bool) {
	if p.testRunner != nil {
		p.testRunner.step(p)
	}
	if !p.processInjectedInput() && readInput {
		p.processInput()
	}

	p.clock.Advance(dt)
	p.reveal.CheckViewport(p.Viewport())

	fdt := float32(dt)
	p.navbar.Update(fdt)
	p.cursor.Update(fdt)
	offset := p.scroll.Current().Offset
	for _, panel := range p.panels {
		panel.follow(offset)
		panel.update(fdt)
	}
	if p.ShowFPS {
		p.fps.update(dt, p.background.Mode())
	}
}

// processInput reads the real mouse, wheel and keyboard.
func (p *Page) processInput() {
	x, y := ebiten.CursorPosition()
	if x != p.lastCursorX || y != p.lastCursorY {
		p.lastCursorX, p.lastCursorY = x, y
		p.pointerMoved(float64(x), float64(y))
	}

	if _, wy := ebiten.Wheel(); wy != 0 {
		p.ScrollBy(-wy * p.cfg.Scroll.WheelSpeed)
	}
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyPageDown), inpututil.IsKeyJustPressed(ebiten.KeySpace):
		p.ScrollBy(float64(p.height) * 0.9)
	case inpututil.IsKeyJustPressed(ebiten.KeyPageUp):
		p.ScrollBy(-float64(p.height) * 0.9)
	case inpututil.IsKeyJustPressed(ebiten.KeyHome):
		p.scroll.ScrollTo(0, p.cfg.Scroll.SmoothDuration.Secs(), ease.InOutCubic)
	case inpututil.IsKeyJustPressed(ebiten.KeyEnd):
		p.scroll.ScrollTo(p.MaxScroll(), p.cfg.Scroll.SmoothDuration.Secs(), ease.InOutCubic)
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		p.click(float64(x), float64(y))
	}
}

func (p *Page) pointerMoved(x, y float64) {
	p.pointer.Move(x, y)
	p.cursor.SetHover(p.navbar.SetPointer(x, y))
}

// click smooth-scrolls to the nav item under (x, y), if any.
func (p *Page) click(x, y float64) {
	id, ok := p.navbar.HitTest(x, y)
	if !ok {
		return
	}
	p.scroll.ScrollToSection(id, p.cfg.Scroll.SmoothDuration.Secs(), ease.InOutCubic)
}

// Draw implements ebiten.Game.
func (p *Page) Draw(screen *ebiten.Image) {
	var t0 time.Time
	if p.debug {
		t0 = time.Now()
	}
	if !p.closed && !p.background.Running() {
		p.background.Start(screen)
	}

	screen.Fill(p.ClearColor.RGBA())
	p.background.Draw(screen)

	offset := p.scroll.Current().Offset
	active := p.nav.State().Active
	for _, panel := range p.panels {
		panel.draw(screen, offset, panel.id == active)
	}
	p.navbar.Draw(screen)
	p.cursor.Draw(screen)
	if p.ShowFPS {
		p.fps.draw(screen)
	}

	if p.debug {
		p.stats.drawTime = time.Since(t0)
		p.debugLog()
	}
	p.flushScreenshots(screen)
}

// Layout implements ebiten.Game. A size change updates boundaries and
// uniforms; it never re-acquires the background shader.
func (p *Page) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != p.width || outsideHeight != p.height {
		p.relayout(outsideWidth, outsideHeight)
	}
	return p.width, p.height
}

func (p *Page) relayout(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	p.width, p.height = w, h
	p.clock.Resize(w, h)
	p.background.Resize(w, h)
	p.navbar.Layout(w)

	p.boundaries = p.layout.Boundaries(float64(h))
	for i, panel := range p.panels {
		b := p.boundaries[i]
		panel.bounds = Rect{Y: b.Start, Width: float64(w), Height: b.End - b.Start}
		panel.handle = p.reveal.Observe(revealElementID(panel.id), panel.bounds)
	}

	if p.scroll.Target() > p.MaxScroll() {
		p.scroll.Report(p.MaxScroll())
	}
	p.scroll.Relayout()
}

func (p *Page) onReveal(r RevealRecord) {
	for _, panel := range p.panels {
		if revealElementID(panel.id) == r.ElementID {
			panel.start()
			return
		}
	}
}

// Close tears down every subscription and releases the background. It is
// safe to call more than once.
func (p *Page) Close() {
	if p.closed {
		return
	}
	p.closed = true
	for _, h := range p.handles {
		h.Remove()
	}
	p.handles = nil
	for _, panel := range p.panels {
		panel.handle.Unobserve()
	}
	p.navbar.Close()
	p.background.Stop()
	p.scroll.Close()
	p.pointer.Close()
}
