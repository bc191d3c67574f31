package aurora

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	cursorHoverScale = 1.2
	cursorScaleTime  = 0.1
)

// Cursor is a small dot that follows the pointer's coalesced position and
// grows while an interactive element is hovered.
type Cursor struct {
	tracker *PointerTracker
	Radius  float64
	Color   Color

	hover bool
	scale float64
	tween *gween.Tween
}

// NewCursor creates a cursor following tracker.
func NewCursor(tracker *PointerTracker) *Cursor {
	return &Cursor{
		tracker: tracker,
		Radius:  8,
		Color:   Hex(0x60A5FA).WithAlpha(0.6),
		scale:   1,
	}
}

// Scale returns the current hover scale.
func (c *Cursor) Scale() float64 {
	return c.scale
}

// SetHover grows or shrinks the dot.
func (c *Cursor) SetHover(hover bool) {
	if hover == c.hover {
		return
	}
	c.hover = hover
	to := 1.0
	if hover {
		to = cursorHoverScale
	}
	c.tween = gween.New(float32(c.scale), float32(to), cursorScaleTime, ease.OutQuad)
}

// Update advances the hover transition.
func (c *Cursor) Update(dt float32) {
	if c.tween == nil {
		return
	}
	v, done := c.tween.Update(dt)
	c.scale = float64(v)
	if done {
		c.tween = nil
	}
}

// Draw renders the dot at the tracker's current position.
func (c *Cursor) Draw(dst *ebiten.Image) {
	if c.tracker == nil {
		return
	}
	p := c.tracker.CurrentPosition()
	vector.DrawFilledCircle(dst, float32(p.X), float32(p.Y), float32(c.Radius*c.scale), c.Color.RGBA(), true)
}
