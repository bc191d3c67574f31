package aurora

import "math"

// PointerState is a pointer position in viewport pixels.
type PointerState struct {
	X, Y float64
}

// PointerTracker coalesces raw pointer moves into at most one applied update
// per frame. A move that arrives while another is pending replaces it; older
// positions within the same frame are discarded, never queued.
type PointerTracker struct {
	pending    PointerState
	hasPending bool
	current    PointerState
	updates    int

	tick  CallbackHandle
	moves handlerList[PointerState]
}

// NewPointerTracker creates a tracker that applies pending moves on each tick
// of clock.
func NewPointerTracker(clock *FrameClock) *PointerTracker {
	p := &PointerTracker{}
	if clock != nil {
		p.tick = clock.OnTick(p.flush)
	}
	return p
}

// Move records a raw pointer position. It does not change CurrentPosition
// until the next tick. NaN coordinates are dropped.
func (p *PointerTracker) Move(x, y float64) {
	if math.IsNaN(x) || math.IsNaN(y) {
		return
	}
	p.pending = PointerState{X: x, Y: y}
	p.hasPending = true
}

// CurrentPosition returns the most recently applied position.
func (p *PointerTracker) CurrentPosition() PointerState {
	return p.current
}

// Pending reports whether a move is waiting for the next tick.
func (p *PointerTracker) Pending() bool {
	return p.hasPending
}

// Updates returns how many coalesced updates have been applied.
func (p *PointerTracker) Updates() int {
	return p.updates
}

// OnUpdate registers fn to run whenever a coalesced position is applied.
func (p *PointerTracker) OnUpdate(fn func(PointerState)) CallbackHandle {
	return p.moves.add(fn)
}

// Normalized returns the current position in renderer space for a viewport
// of w by h pixels: both axes in [-1, 1], Y pointing up.
func (p *PointerTracker) Normalized(w, h int) Vec2 {
	if w <= 0 || h <= 0 {
		return Vec2{}
	}
	return Vec2{
		X: p.current.X/float64(w)*2 - 1,
		Y: -(p.current.Y/float64(h)*2 - 1),
	}
}

// Close stops applying moves. Safe to call more than once.
func (p *PointerTracker) Close() {
	p.tick.Remove()
	p.tick = CallbackHandle{}
	p.hasPending = false
}

func (p *PointerTracker) flush(FrameSample) {
	if !p.hasPending {
		return
	}
	p.current = p.pending
	p.hasPending = false
	p.updates++
	p.moves.emit(p.current)
}
