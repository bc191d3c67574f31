package aurora

type syntheticKind uint8

const (
	syntheticMove   syntheticKind = iota // pointer move to (x, y)
	syntheticScroll                      // absolute scroll offset y
	syntheticWheel                       // wheel delta y
	syntheticClick                       // click at (x, y)
)

// syntheticEvent is a single injected input event. One event is consumed
// per frame, in place of real input.
type syntheticEvent struct {
	kind syntheticKind
	x, y float64
}

// InjectMove queues a pointer move to the given screen coordinates.
func (p *Page) InjectMove(x, y float64) {
	p.injectQueue = append(p.injectQueue, syntheticEvent{kind: syntheticMove, x: x, y: y})
}

// InjectScroll queues a jump to an absolute scroll offset.
func (p *Page) InjectScroll(offset float64) {
	p.injectQueue = append(p.injectQueue, syntheticEvent{kind: syntheticScroll, y: offset})
}

// InjectWheel queues a mouse wheel movement; positive dy scrolls up, as with
// ebiten.Wheel.
func (p *Page) InjectWheel(dy float64) {
	p.injectQueue = append(p.injectQueue, syntheticEvent{kind: syntheticWheel, y: dy})
}

// InjectClick queues a click at the given screen coordinates.
func (p *Page) InjectClick(x, y float64) {
	p.injectQueue = append(p.injectQueue, syntheticEvent{kind: syntheticClick, x: x, y: y})
}

// InjectPath queues pointer moves from (fromX, fromY) to (toX, toY) spread
// linearly over the given number of frames (minimum 2).
func (p *Page) InjectPath(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	for i := 0; i < frames; i++ {
		t := float64(i) / float64(frames-1)
		p.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
}

// processInjectedInput pops one event from the inject queue and applies it.
// Returns true if an event was consumed (real input should be skipped).
func (p *Page) processInjectedInput() bool {
	if len(p.injectQueue) == 0 {
		return false
	}
	evt := p.injectQueue[0]
	copy(p.injectQueue, p.injectQueue[1:])
	p.injectQueue = p.injectQueue[:len(p.injectQueue)-1]

	switch evt.kind {
	case syntheticMove:
		p.pointerMoved(evt.x, evt.y)
	case syntheticScroll:
		p.scroll.Report(evt.y)
	case syntheticWheel:
		p.ScrollBy(-evt.y * p.cfg.Scroll.WheelSpeed)
	case syntheticClick:
		p.pointerMoved(evt.x, evt.y)
		p.click(evt.x, evt.y)
	}
	return true
}
