package aurora

import (
	"math"
	"testing"
)

func TestSectionPanelStaggers(t *testing.T) {
	cfg := DefaultConfig().Reveal
	p := newSectionPanel(SectionLayout{ID: "contact", Title: "Contact", Items: 4}, cfg)
	want := []float32{0.6, 0.7, 0.8, 0.9}
	for i, m := range p.cards {
		if math.Abs(float64(m.Delay-want[i])) > 1e-6 {
			t.Errorf("contact card %d delay = %v, want %v", i, m.Delay, want[i])
		}
	}

	e := newSectionPanel(SectionLayout{ID: "experience", Items: 3}, cfg)
	if len(e.bullets) != 3 || len(e.bullets[0]) != bulletCount {
		t.Fatalf("experience bullets = %d", len(e.bullets))
	}
	// Card 1 starts at 0.3s; its bullets follow at 0.6s and 0.65s.
	if d := e.bullets[1][1].Delay; math.Abs(float64(d)-0.65) > 1e-6 {
		t.Errorf("bullet delay = %v, want 0.65", d)
	}
	if len(p.bullets) != 0 {
		t.Error("only experience cards carry bullets")
	}
}

func TestSectionPanelStartsOnReveal(t *testing.T) {
	p := newSectionPanel(SectionLayout{ID: "skills", Items: 3}, DefaultConfig().Reveal)
	p.update(1)
	if p.header.Progress() != 0 {
		t.Fatal("panel animated before reveal")
	}
	p.start()
	for i := 0; i < 120; i++ {
		p.update(1.0 / 60)
	}
	if !p.header.Done {
		t.Error("header not settled")
	}
	for i, m := range p.cards {
		if !m.Done {
			t.Errorf("card %d not settled", i)
		}
	}
}

func TestSectionCardRect(t *testing.T) {
	p := newSectionPanel(SectionLayout{ID: "skills", Items: 4}, DefaultConfig().Reveal)
	p.bounds = Rect{Y: 1000, Width: 1280, Height: 800}
	r0, r3 := p.cardRect(0), p.cardRect(3)
	if r0.Y != 1000+panelCardsY || r0.X != panelPad {
		t.Errorf("card 0 = %+v", r0)
	}
	if r3.Y != r0.Y+cardH+cardGap || r3.X != r0.X {
		t.Errorf("card 3 = %+v, want second row first column", r3)
	}
}

func TestSkillBarsFillAfterCards(t *testing.T) {
	p := newSectionPanel(SectionLayout{ID: "skills", Items: 3}, DefaultConfig().Reveal)
	if len(p.bars) != 3 {
		t.Fatalf("bars = %d, want one per skills card", len(p.bars))
	}
	want := []float64{0.8, 0.9, 1.0}
	for i, m := range p.bars {
		if math.Abs(float64(m.Delay)-want[i]) > 1e-6 {
			t.Errorf("bar %d delay = %v, want %v", i, m.Delay, want[i])
		}
	}

	p.start()
	for i := 0; i < 30; i++ {
		p.update(1.0 / 60)
	}
	if s := p.bars[0].Current().Scale; s != 0 {
		t.Errorf("bar filled to %v before its delay", s)
	}
	for i := 0; i < 120; i++ {
		p.update(1.0 / 60)
	}
	for i, m := range p.bars {
		if !m.Done || m.Current().Scale != 1 {
			t.Errorf("bar %d not filled: %+v", i, m.Current())
		}
	}

	about := newSectionPanel(SectionLayout{ID: "about", Items: 3}, DefaultConfig().Reveal)
	if len(about.bars) != 0 {
		t.Error("only skills cards carry bars")
	}
}

func TestHeroPose(t *testing.T) {
	tests := []struct {
		progress float64
		want     Pose
	}{
		{-1, PoseSettled},
		{0, PoseSettled},
		{0.5, Pose{Alpha: 0.5, OffsetY: 200, Scale: 1}},
		{1, Pose{Alpha: 0, OffsetY: 400, Scale: 1}},
		{3, Pose{Alpha: 0, OffsetY: 400, Scale: 1}},
	}
	for _, tt := range tests {
		got := heroPose(tt.progress, 800)
		if math.Abs(got.Alpha-tt.want.Alpha) > 1e-9 || math.Abs(got.OffsetY-tt.want.OffsetY) > 1e-9 {
			t.Errorf("heroPose(%v) = %+v, want %+v", tt.progress, got, tt.want)
		}
	}
}
