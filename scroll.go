package aurora

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// DefaultActivationMargin is added to the scroll offset before resolving the
// active section, so a section activates slightly before its top edge
// reaches the top of the viewport.
const DefaultActivationMargin = 100.0

// ScrollSample is one processed scroll position.
type ScrollSample struct {
	Offset    float64
	Direction Direction
}

// SectionBoundary is the vertical extent of one mounted section in page
// coordinates. Start is inclusive, End exclusive.
type SectionBoundary struct {
	ID    SectionID
	Start float64
	End   float64
}

// Contains reports whether v falls in [Start, End).
func (b SectionBoundary) Contains(v float64) bool {
	return v >= b.Start && v < b.End
}

// LayoutFunc returns the boundaries of the currently mounted sections in
// declaration order. Sections that are not mounted are simply absent.
type LayoutFunc func() []SectionBoundary

// NextDirection derives the direction for a new offset. A strictly larger
// offset is DirectionDown, a strictly smaller one DirectionUp; an equal
// offset keeps the previous direction.
func NextDirection(prev ScrollSample, offset float64) Direction {
	switch {
	case offset > prev.Offset:
		return DirectionDown
	case offset < prev.Offset:
		return DirectionUp
	default:
		return prev.Direction
	}
}

// ResolveSection finds the section containing offset+margin. Boundaries are
// checked in the order given and the first match wins, so if a relayout
// briefly produces overlapping boundaries the earliest-declared section is
// chosen. Unknown section ids never match.
func ResolveSection(boundaries []SectionBoundary, offset, margin float64) (SectionBoundary, bool) {
	v := offset + margin
	for _, b := range boundaries {
		if !b.ID.Valid() {
			continue
		}
		if b.Contains(v) {
			return b, true
		}
	}
	return SectionBoundary{}, false
}

// scrollAnim is an in-flight smooth scroll. The tween runs in float32, so
// the final step snaps to target.
type scrollAnim struct {
	tween  *gween.Tween
	target float64
}

// ScrollObserver turns raw scroll positions into at most one ScrollSample
// per frame, tracks direction, and reports when the active section changes.
type ScrollObserver struct {
	margin float64
	layout LayoutFunc

	last       ScrollSample
	pending    float64
	hasPending bool
	elapsed    float64

	active    SectionID
	hasActive bool

	anim *scrollAnim
	tick CallbackHandle

	samples    handlerList[ScrollSample]
	directions handlerList[ScrollSample]
	sections   handlerList[SectionBoundary]
}

// NewScrollObserver creates an observer that processes pending positions on
// each tick of clock. layout may be nil until sections are mounted.
func NewScrollObserver(clock *FrameClock, layout LayoutFunc, margin float64) *ScrollObserver {
	o := &ScrollObserver{layout: layout, margin: margin}
	if clock != nil {
		o.elapsed = clock.Now()
		o.tick = clock.OnTick(o.flush)
	}
	return o
}

// SetLayout replaces the layout source and re-resolves the active section.
func (o *ScrollObserver) SetLayout(layout LayoutFunc) {
	o.layout = layout
	o.Relayout()
}

// Relayout re-resolves the active section against fresh boundaries without
// emitting a scroll sample. Call it after the layout changes.
func (o *ScrollObserver) Relayout() {
	o.resolve()
}

// Margin returns the activation margin.
func (o *ScrollObserver) Margin() float64 {
	return o.margin
}

// Report records a raw scroll position. Only the latest report before a tick
// is processed. A report cancels any smooth scroll in progress.
func (o *ScrollObserver) Report(offset float64) {
	if math.IsNaN(offset) || math.IsInf(offset, 0) {
		return
	}
	o.anim = nil
	o.pending = offset
	o.hasPending = true
}

// Target returns the offset the page is heading to: the pending report if
// there is one, otherwise the last processed offset.
func (o *ScrollObserver) Target() float64 {
	if o.hasPending {
		return o.pending
	}
	return o.last.Offset
}

// Current returns the last processed sample.
func (o *ScrollObserver) Current() ScrollSample {
	return o.last
}

// Active returns the active section, or false before any boundary matched.
func (o *ScrollObserver) Active() (SectionID, bool) {
	return o.active, o.hasActive
}

// Scrolling reports whether a smooth scroll is in progress.
func (o *ScrollObserver) Scrolling() bool {
	return o.anim != nil
}

// ScrollTo animates the offset to target over duration seconds. Every
// animated step goes through the same per-frame processing as a raw report.
func (o *ScrollObserver) ScrollTo(target float64, duration float32, fn ease.TweenFunc) {
	if math.IsNaN(target) || math.IsInf(target, 0) {
		return
	}
	if duration <= 0 {
		o.Report(target)
		return
	}
	if fn == nil {
		fn = ease.InOutCubic
	}
	from := o.Target()
	o.hasPending = false
	o.anim = &scrollAnim{
		tween:  gween.New(float32(from), float32(target), duration, fn),
		target: target,
	}
}

// ScrollToSection smooth-scrolls so the section's top meets the viewport top.
// It reports false when the section is unknown or not mounted.
func (o *ScrollObserver) ScrollToSection(id SectionID, duration float32, fn ease.TweenFunc) bool {
	if !id.Valid() || o.layout == nil {
		return false
	}
	for _, b := range o.layout() {
		if b.ID == id {
			o.ScrollTo(b.Start, duration, fn)
			return true
		}
	}
	return false
}

// OnSample registers fn for every processed sample.
func (o *ScrollObserver) OnSample(fn func(ScrollSample)) CallbackHandle {
	return o.samples.add(fn)
}

// OnDirectionChange registers fn for samples whose direction differs from
// the previous sample's.
func (o *ScrollObserver) OnDirectionChange(fn func(ScrollSample)) CallbackHandle {
	return o.directions.add(fn)
}

// OnSectionChange registers fn for changes of the active section.
func (o *ScrollObserver) OnSectionChange(fn func(SectionBoundary)) CallbackHandle {
	return o.sections.add(fn)
}

// Close stops processing scroll positions. Safe to call more than once.
func (o *ScrollObserver) Close() {
	o.tick.Remove()
	o.tick = CallbackHandle{}
	o.anim = nil
	o.hasPending = false
}

func (o *ScrollObserver) flush(s FrameSample) {
	dt := s.Elapsed - o.elapsed
	o.elapsed = s.Elapsed

	if o.anim != nil {
		v, done := o.anim.tween.Update(float32(dt))
		o.pending = float64(v)
		o.hasPending = true
		if done {
			o.pending = o.anim.target
			o.anim = nil
		}
	}
	if !o.hasPending {
		return
	}
	o.hasPending = false
	o.process(o.pending)
}

func (o *ScrollObserver) process(offset float64) {
	prev := o.last
	sample := ScrollSample{Offset: offset, Direction: NextDirection(prev, offset)}
	o.last = sample

	o.samples.emit(sample)
	if sample.Direction != prev.Direction {
		o.directions.emit(sample)
	}
	o.resolve()
}

// resolve updates the active section. A missing layout or no matching
// boundary keeps the previous active section.
func (o *ScrollObserver) resolve() {
	if o.layout == nil {
		return
	}
	b, ok := ResolveSection(o.layout(), o.last.Offset, o.margin)
	if !ok {
		return
	}
	if o.hasActive && b.ID == o.active {
		return
	}
	o.active = b.ID
	o.hasActive = true
	o.sections.emit(b)
}
