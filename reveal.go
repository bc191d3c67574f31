package aurora

// DefaultRevealMargin insets the viewport by 100 pixels on every side before
// testing elements against it.
const DefaultRevealMargin = -100.0

// RevealState is the one-way reveal state of an observed element.
type RevealState uint8

const (
	RevealUnseen   RevealState = iota // not yet intersected the viewport
	RevealRevealed                    // intersected once; final
)

// RevealRecord describes one observed element.
type RevealRecord struct {
	ElementID string
	State     RevealState
	Bounds    Rect
	// ObservedAt is the clock time the element was registered.
	ObservedAt float64
	// FirstObservedAt is the clock time of the first intersection, valid
	// once State is RevealRevealed.
	FirstObservedAt float64
}

// Revealed reports whether the record has been revealed.
func (r RevealRecord) Revealed() bool {
	return r.State == RevealRevealed
}

type revealEntry struct {
	RevealRecord
	gen uint32
}

// RevealHandle unregisters an observed element. Removing a handle whose
// element was already unobserved, or re-observed since, does nothing.
type RevealHandle struct {
	a   *RevealAnimator
	id  string
	gen uint32
}

// Unobserve destroys the element's record.
func (h RevealHandle) Unobserve() {
	if h.a == nil {
		return
	}
	e, ok := h.a.records[h.id]
	if !ok || e.gen != h.gen {
		return
	}
	h.a.Unobserve(h.id)
}

// ID returns the observed element id.
func (h RevealHandle) ID() string {
	return h.id
}

// RevealAnimator tracks one-shot reveals. Elements are registered with
// Observe and flip from unseen to revealed on their first intersection
// signal. Revealed elements ignore every later signal.
type RevealAnimator struct {
	clock   *FrameClock
	margin  float64
	records map[string]*revealEntry
	order   []string
	nextGen uint32
	reveals handlerList[RevealRecord]
}

// NewRevealAnimator creates an animator. margin grows (positive) or shrinks
// (negative) the viewport used by CheckViewport. clock may be nil, in which
// case timestamps are zero.
func NewRevealAnimator(clock *FrameClock, margin float64) *RevealAnimator {
	return &RevealAnimator{
		clock:   clock,
		margin:  margin,
		records: make(map[string]*revealEntry),
	}
}

// Margin returns the viewport margin.
func (a *RevealAnimator) Margin() float64 {
	return a.margin
}

// Observe registers id with the given page-space bounds. Observing an id
// that is already registered only updates its bounds.
func (a *RevealAnimator) Observe(id string, bounds Rect) RevealHandle {
	if e, ok := a.records[id]; ok {
		e.Bounds = bounds
		return RevealHandle{a: a, id: id, gen: e.gen}
	}
	a.nextGen++
	e := &revealEntry{
		RevealRecord: RevealRecord{
			ElementID:  id,
			State:      RevealUnseen,
			Bounds:     bounds,
			ObservedAt: a.now(),
		},
		gen: a.nextGen,
	}
	a.records[id] = e
	a.order = append(a.order, id)
	return RevealHandle{a: a, id: id, gen: e.gen}
}

// Unobserve removes id. Unknown ids are ignored.
func (a *RevealAnimator) Unobserve(id string) {
	if _, ok := a.records[id]; !ok {
		return
	}
	delete(a.records, id)
	for i, o := range a.order {
		if o == id {
			a.order = append(a.order[:i], a.order[i+1:]...)
			break
		}
	}
}

// SetBounds updates the bounds of an observed element after a relayout.
func (a *RevealAnimator) SetBounds(id string, bounds Rect) bool {
	e, ok := a.records[id]
	if !ok {
		return false
	}
	e.Bounds = bounds
	return true
}

// Signal delivers an intersection signal for id. It reports whether the
// signal revealed the element. Signals for unknown or already revealed
// elements, and signals with intersecting false, change nothing.
func (a *RevealAnimator) Signal(id string, intersecting bool) bool {
	e, ok := a.records[id]
	if !ok || e.State == RevealRevealed || !intersecting {
		return false
	}
	e.State = RevealRevealed
	e.FirstObservedAt = a.now()
	a.reveals.emit(e.RevealRecord)
	return true
}

// CheckViewport signals every unseen element against viewport, grown by the
// margin. Elements are checked in registration order. It returns how many
// elements were revealed.
func (a *RevealAnimator) CheckViewport(viewport Rect) int {
	root := viewport.Grow(a.margin)
	n := 0
	// Reveal handlers may observe or unobserve; iterate a copy.
	ids := append([]string(nil), a.order...)
	for _, id := range ids {
		e, ok := a.records[id]
		if !ok || e.State == RevealRevealed {
			continue
		}
		if a.Signal(id, e.Bounds.Intersects(root)) {
			n++
		}
	}
	return n
}

// IsRevealed reports whether id has been revealed. Unknown ids are not.
func (a *RevealAnimator) IsRevealed(id string) bool {
	e, ok := a.records[id]
	return ok && e.State == RevealRevealed
}

// Record returns a copy of id's record.
func (a *RevealAnimator) Record(id string) (RevealRecord, bool) {
	e, ok := a.records[id]
	if !ok {
		return RevealRecord{}, false
	}
	return e.RevealRecord, true
}

// Len returns the number of observed elements.
func (a *RevealAnimator) Len() int {
	return len(a.records)
}

// OnReveal registers fn for every unseen-to-revealed transition.
func (a *RevealAnimator) OnReveal(fn func(RevealRecord)) CallbackHandle {
	return a.reveals.add(fn)
}

func (a *RevealAnimator) now() float64 {
	if a.clock == nil {
		return 0
	}
	return a.clock.Now()
}
