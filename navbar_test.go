package aurora

import "testing"

func TestNavBarSlidesWithState(t *testing.T) {
	n := NewNavigator(DefaultHideThreshold)
	b := NewNavBar(n, 0.3, Stagger{Step: 0.1})
	defer b.Close()
	b.Layout(1280)

	if b.OffsetY() != navHiddenOffset || !b.Sliding() {
		t.Fatalf("bar should start hidden and sliding in, offset %v", b.OffsetY())
	}
	for i := 0; i < 30; i++ {
		b.Update(1.0 / 60)
	}
	if b.OffsetY() != 0 || b.Sliding() {
		t.Fatalf("offset = %v after intro, want 0", b.OffsetY())
	}

	n.Apply(ScrollSample{Offset: 400, Direction: DirectionDown})
	b.Update(0.1)
	if off := b.OffsetY(); off >= 0 || off <= navHiddenOffset {
		t.Errorf("offset = %v mid-slide, want between -100 and 0", off)
	}
	b.Update(0.3)
	if b.OffsetY() != navHiddenOffset {
		t.Errorf("offset = %v, want %v", b.OffsetY(), navHiddenOffset)
	}
}

func TestNavBarHitTest(t *testing.T) {
	n := NewNavigator(DefaultHideThreshold)
	b := NewNavBar(n, 0, Stagger{Step: 0.1})
	defer b.Close()
	b.Layout(1280)

	for _, it := range b.items {
		cx := it.bounds.X + it.bounds.Width/2
		cy := it.bounds.Y + it.bounds.Height/2
		got, ok := b.HitTest(cx, cy)
		if !ok || got != it.id {
			t.Errorf("HitTest at %v center = %v, %v", it.id, got, ok)
		}
	}
	if _, ok := b.HitTest(0, 0); ok {
		t.Error("HitTest outside the bar matched")
	}
	if b.SetPointer(0, 0) {
		t.Error("SetPointer outside the bar reported hover")
	}
}

func TestNavBarItemIntroStagger(t *testing.T) {
	b := NewNavBar(NewNavigator(DefaultHideThreshold), 0.3, Stagger{Step: 0.1})
	defer b.Close()
	for i := 1; i < len(b.items); i++ {
		if !(b.items[i].intro.Delay > b.items[i-1].intro.Delay) {
			t.Errorf("item %d delay %v not after item %d", i, b.items[i].intro.Delay, i-1)
		}
	}
	b.Update(0.05)
	if b.items[0].intro.Progress() == 0 || b.items[1].intro.Progress() != 0 {
		t.Error("first item should animate before the second")
	}
}

func TestNavBarClose(t *testing.T) {
	n := NewNavigator(DefaultHideThreshold)
	b := NewNavBar(n, 0, Stagger{Step: 0.1})
	b.Close()
	b.Close()
	n.Apply(ScrollSample{Offset: 400, Direction: DirectionDown})
	if b.OffsetY() != 0 {
		t.Errorf("closed bar followed the navigator: offset %v", b.OffsetY())
	}
}
