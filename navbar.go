package aurora

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	navHiddenOffset = -100.0
	navTop          = 16.0
	navItemW        = 104.0
	navItemH        = 32.0
	navItemGap      = 8.0
	navPadding      = 12.0
)

var (
	navPill       = Color{R: 1, G: 1, B: 1, A: 0.10}
	navPillBorder = Color{R: 1, G: 1, B: 1, A: 0.20}
	navActive     = mixColor(Hex(0x3B82F6), Hex(0x9333EA), 0.5)
	navHover      = Color{R: 1, G: 1, B: 1, A: 0.10}
	navLabel      = Hex(0xE5E7EB)
)

type navItem struct {
	id     SectionID
	label  string
	bounds Rect
	intro  *Motion
}

// NavBar is the fixed navigation menu. It renders a Navigator's state:
// the active item is highlighted and the whole bar slides up out of view
// while hidden.
type NavBar struct {
	nav   *Navigator
	items []navItem
	bar   Rect

	offsetY       float64
	slide         *gween.Tween
	slideTarget   float64
	slideDuration float32

	hover int
	sub   CallbackHandle
	font  *Font
}

// NewNavBar creates a menu bound to nav. It starts above the viewport and
// slides in; items fade in staggered by declared index.
func NewNavBar(nav *Navigator, slideDuration float32, items Stagger) *NavBar {
	b := &NavBar{
		nav:           nav,
		offsetY:       navHiddenOffset,
		slideTarget:   navHiddenOffset,
		slideDuration: slideDuration,
		hover:         -1,
	}
	from := Pose{Alpha: 0, OffsetY: -20, Scale: 1}
	for i, id := range Sections {
		m := NewMotion(from, PoseSettled, float32(items.Delay(i)), slideDuration, ease.OutCubic)
		m.Start()
		b.items = append(b.items, navItem{id: id, label: id.Title(), intro: m})
	}
	b.follow(nav.State())
	b.sub = nav.OnChange(b.follow)
	return b
}

// SetFont sets the label font. A nil font uses the debug bitmap font.
func (b *NavBar) SetFont(f *Font) {
	b.font = f
}

// OffsetY returns the bar's current vertical slide offset: 0 when fully
// shown, -100 when fully hidden.
func (b *NavBar) OffsetY() float64 {
	return b.offsetY
}

// Sliding reports whether a slide transition is running.
func (b *NavBar) Sliding() bool {
	return b.slide != nil
}

// Layout centers the bar horizontally in a viewport of the given width.
func (b *NavBar) Layout(viewportWidth int) {
	n := float64(len(b.items))
	w := n*navItemW + (n-1)*navItemGap + 2*navPadding
	x := (float64(viewportWidth) - w) / 2
	b.bar = Rect{X: x, Y: navTop, Width: w, Height: navItemH + 2*navPadding}
	for i := range b.items {
		b.items[i].bounds = Rect{
			X:      x + navPadding + float64(i)*(navItemW+navItemGap),
			Y:      navTop + navPadding,
			Width:  navItemW,
			Height: navItemH,
		}
	}
}

// HitTest returns the section whose item is under the screen point.
func (b *NavBar) HitTest(x, y float64) (SectionID, bool) {
	y -= b.offsetY
	for _, it := range b.items {
		if it.bounds.Contains(x, y) {
			return it.id, true
		}
	}
	return "", false
}

// SetPointer updates the hovered item and reports whether any is hovered.
func (b *NavBar) SetPointer(x, y float64) bool {
	b.hover = -1
	y -= b.offsetY
	for i, it := range b.items {
		if it.bounds.Contains(x, y) {
			b.hover = i
			return true
		}
	}
	return false
}

// Update advances the slide and item intro animations.
func (b *NavBar) Update(dt float32) {
	for i := range b.items {
		b.items[i].intro.Update(dt)
	}
	if b.slide == nil {
		return
	}
	v, done := b.slide.Update(dt)
	b.offsetY = float64(v)
	if done {
		b.offsetY = b.slideTarget
		b.slide = nil
	}
}

// Draw renders the bar in screen space.
func (b *NavBar) Draw(dst *ebiten.Image) {
	if b.offsetY <= navHiddenOffset {
		return
	}
	active := b.nav.State().Active
	oy := float32(b.offsetY)

	vector.DrawFilledRect(dst, float32(b.bar.X)-1, float32(b.bar.Y)+oy-1,
		float32(b.bar.Width)+2, float32(b.bar.Height)+2, navPillBorder.RGBA(), true)
	vector.DrawFilledRect(dst, float32(b.bar.X), float32(b.bar.Y)+oy,
		float32(b.bar.Width), float32(b.bar.Height), navPill.RGBA(), true)

	for i, it := range b.items {
		pose := it.intro.Current()
		if pose.Alpha <= 0 {
			continue
		}
		x := float32(it.bounds.X + pose.OffsetX)
		y := float32(it.bounds.Y+pose.OffsetY) + oy
		switch {
		case it.id == active:
			vector.DrawFilledRect(dst, x, y, float32(it.bounds.Width), float32(it.bounds.Height),
				navActive.WithAlpha(pose.Alpha).RGBA(), true)
		case i == b.hover:
			vector.DrawFilledRect(dst, x, y, float32(it.bounds.Width), float32(it.bounds.Height),
				navHover.WithAlpha(navHover.A*pose.Alpha).RGBA(), true)
		}
		tx, ty := float64(x)+12, float64(y)+9
		if b.font != nil {
			w, h := b.font.MeasureString(it.label)
			tx = float64(x) + (it.bounds.Width-w)/2
			ty = float64(y) + (it.bounds.Height-h)/2
		}
		drawText(dst, it.label, b.font, tx, ty, navLabel.WithAlpha(pose.Alpha))
	}
}

// Close detaches the bar from its navigator.
func (b *NavBar) Close() {
	b.sub.Remove()
	b.sub = CallbackHandle{}
}

// follow starts a slide toward the position matching s.Visible.
func (b *NavBar) follow(s NavState) {
	target := 0.0
	if !s.Visible {
		target = navHiddenOffset
	}
	if target == b.slideTarget {
		return
	}
	b.slideTarget = target
	if b.slideDuration <= 0 {
		b.offsetY = target
		b.slide = nil
		return
	}
	b.slide = gween.New(float32(b.offsetY), float32(target), b.slideDuration, ease.OutCubic)
}
