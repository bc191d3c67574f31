package aurora

import "testing"

func TestRevealNeverReverts(t *testing.T) {
	a := NewRevealAnimator(nil, DefaultRevealMargin)
	a.Observe("card", Rect{Y: 100, Width: 100, Height: 100})

	var reveals int
	a.OnReveal(func(RevealRecord) { reveals++ })

	signals := []bool{false, false, true, false, true, false}
	for i, s := range signals {
		a.Signal("card", s)
		want := i >= 2
		if a.IsRevealed("card") != want {
			t.Fatalf("after signal %d (%v): revealed = %v, want %v", i, s, !want, want)
		}
	}
	if reveals != 1 {
		t.Errorf("reveal events = %d, want 1", reveals)
	}
}

func TestRevealTimestamps(t *testing.T) {
	c := NewFrameClock(100, 100)
	a := NewRevealAnimator(c, 0)
	c.Advance(1)
	a.Observe("x", Rect{Width: 10, Height: 10})
	c.Advance(2)
	a.Signal("x", true)

	r, ok := a.Record("x")
	if !ok {
		t.Fatal("record missing")
	}
	if r.ObservedAt != 1 || r.FirstObservedAt != 3 || !r.Revealed() {
		t.Errorf("record = %+v, want observed 1, first seen 3", r)
	}
}

func TestRevealCheckViewportMargin(t *testing.T) {
	a := NewRevealAnimator(nil, DefaultRevealMargin)
	viewport := Rect{Width: 1000, Height: 800}

	// Inset viewport spans y in [100, 700].
	a.Observe("edge", Rect{Y: 750, Width: 100, Height: 100})
	a.Observe("inside", Rect{Y: 650, Width: 100, Height: 100})
	a.Observe("touching", Rect{Y: 700, Width: 100, Height: 100})

	if n := a.CheckViewport(viewport); n != 2 {
		t.Errorf("revealed = %d, want 2", n)
	}
	if a.IsRevealed("edge") {
		t.Error("element in the 100px margin should stay unseen")
	}
	if !a.IsRevealed("inside") || !a.IsRevealed("touching") {
		t.Error("intersecting elements should be revealed")
	}

	// Scrolling away does not un-reveal.
	a.CheckViewport(Rect{Y: 5000, Width: 1000, Height: 800})
	if !a.IsRevealed("inside") {
		t.Error("reveal reverted after leaving the viewport")
	}
}

func TestRevealObserveTwiceKeepsState(t *testing.T) {
	a := NewRevealAnimator(nil, 0)
	h1 := a.Observe("x", Rect{Width: 1, Height: 1})
	a.Signal("x", true)
	h2 := a.Observe("x", Rect{Y: 50, Width: 1, Height: 1})
	if !a.IsRevealed("x") || a.Len() != 1 {
		t.Error("re-observing reset the record")
	}
	if r, _ := a.Record("x"); r.Bounds.Y != 50 {
		t.Errorf("bounds not updated: %+v", r.Bounds)
	}
	if h1 != h2 {
		t.Error("re-observe returned a different handle")
	}
}

func TestRevealHandleUnobserve(t *testing.T) {
	a := NewRevealAnimator(nil, 0)
	h := a.Observe("x", Rect{Width: 1, Height: 1})
	h.Unobserve()
	h.Unobserve()
	if a.Len() != 0 {
		t.Fatalf("Len = %d after Unobserve, want 0", a.Len())
	}
	if a.Signal("x", true) {
		t.Error("signal for a destroyed record revealed it")
	}

	// A stale handle must not remove a newer registration.
	a.Observe("x", Rect{Width: 1, Height: 1})
	h.Unobserve()
	if a.Len() != 1 {
		t.Error("stale handle removed a re-observed element")
	}
	RevealHandle{}.Unobserve()
}

func TestRevealUnobserveDuringDispatch(t *testing.T) {
	a := NewRevealAnimator(nil, 0)
	a.Observe("a", Rect{Width: 10, Height: 10})
	a.Observe("b", Rect{Width: 10, Height: 10})
	a.OnReveal(func(r RevealRecord) {
		if r.ElementID == "a" {
			a.Unobserve("b")
		}
	})
	if n := a.CheckViewport(Rect{Width: 100, Height: 100}); n != 1 {
		t.Errorf("revealed = %d, want 1", n)
	}
	if _, ok := a.Record("b"); ok {
		t.Error("b should be gone")
	}
}

func TestRevealSetBounds(t *testing.T) {
	a := NewRevealAnimator(nil, 0)
	if a.SetBounds("missing", Rect{}) {
		t.Error("SetBounds on unknown id returned true")
	}
	a.Observe("x", Rect{Y: 1000, Width: 10, Height: 10})
	a.CheckViewport(Rect{Width: 100, Height: 100})
	if a.IsRevealed("x") {
		t.Fatal("x revealed before it moved into view")
	}
	a.SetBounds("x", Rect{Y: 10, Width: 10, Height: 10})
	a.CheckViewport(Rect{Width: 100, Height: 100})
	if !a.IsRevealed("x") {
		t.Error("x not revealed after relayout")
	}
}
