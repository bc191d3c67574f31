package aurora

import "math"

// FrameSample is handed to tick callbacks once per frame.
type FrameSample struct {
	// Elapsed is the total time in seconds since the clock was created.
	// It never decreases.
	Elapsed float64
	// Width and Height are the viewport size in pixels for this frame.
	Width, Height int
}

// FrameClock drives the per-frame update loop. Page calls Advance once per
// Ebitengine Update; everything that animates registers with OnTick.
//
// Nothing guarantees that frames keep arriving (a hidden window stops
// ticking), so consumers must not assume a minimum tick rate.
type FrameClock struct {
	elapsed float64
	frame   uint64
	width   int
	height  int
	ticks   handlerList[FrameSample]
}

// NewFrameClock creates a clock for a viewport of the given size.
func NewFrameClock(width, height int) *FrameClock {
	c := &FrameClock{}
	c.Resize(width, height)
	return c
}

// OnTick registers fn to run on every frame. Callbacks run in registration
// order, so a producer that must be settled before a consumer reads it
// (pointer before background) registers first.
func (c *FrameClock) OnTick(fn func(FrameSample)) CallbackHandle {
	return c.ticks.add(fn)
}

// Now returns the elapsed time of the most recent tick.
func (c *FrameClock) Now() float64 {
	return c.elapsed
}

// Frame returns how many ticks have been dispatched.
func (c *FrameClock) Frame() uint64 {
	return c.frame
}

// Size returns the viewport size carried by the next sample.
func (c *FrameClock) Size() (int, int) {
	return c.width, c.height
}

// Resize updates the viewport size. Non-positive dimensions are ignored.
func (c *FrameClock) Resize(width, height int) {
	if width > 0 {
		c.width = width
	}
	if height > 0 {
		c.height = height
	}
}

// Advance moves time forward by dt seconds and dispatches one tick.
// Negative, NaN and infinite dt count as zero.
func (c *FrameClock) Advance(dt float64) FrameSample {
	if dt > 0 && !math.IsInf(dt, 1) {
		c.elapsed += dt
	}
	c.frame++
	s := FrameSample{Elapsed: c.elapsed, Width: c.width, Height: c.height}
	c.ticks.emit(s)
	return s
}

// Subscribers returns the number of registered tick callbacks.
func (c *FrameClock) Subscribers() int {
	return c.ticks.len()
}
