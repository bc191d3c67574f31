package aurora

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	panelPad     = 64.0
	panelHeaderY = 96.0
	panelCardsY  = 176.0
	cardH        = 120.0
	cardGap      = 24.0
	cardCols     = 3
	bulletCount  = 2
)

// Contact links start at 0.6s. Experience bullets follow their card by
// 0.3s in 0.05s steps. Skill bars fill from 0.8s in 0.1s steps.
var (
	contactBase   = 0.6
	bulletStagger = Stagger{Base: 0.3, Step: 0.05}
	barStagger    = Stagger{Base: 0.8, Step: 0.1}
	barDuration   = float32(0.8)
)

// skillLevels are the bar fill fractions, cycled over the skills cards.
var skillLevels = []float64{0.95, 0.90, 0.88, 0.85, 0.80, 0.75, 0.70, 0.68}

// heroDrift is how far the home content sinks, as a fraction of the section
// height, by the time the section has scrolled out.
const heroDrift = 0.5

// heroPose maps home's scroll progress to the pose of its content: it sinks
// by heroDrift of the section height and fades out.
func heroPose(progress, height float64) Pose {
	gone := Pose{Alpha: 0, OffsetY: heroDrift * height, Scale: 1}
	return PoseSettled.Lerp(gone, clamp01(progress))
}

var (
	cardFill   = Color{R: 1, G: 1, B: 1, A: 0.06}
	titleColor = Hex(0xF9FAFB)
)

// sectionPanel is the placeholder content for one section: a header and a
// grid of cards. It reveals once as a group; cards follow a stagger.
type sectionPanel struct {
	id      SectionID
	title   string
	bounds  Rect
	header  *Motion
	cards   []*Motion
	bullets [][]*Motion
	bars    []*Motion
	handle  RevealHandle
	font    *Font

	// scroll is the scroll-linked pose layered over the reveal motions.
	// Only home follows the scroll; every other panel stays settled.
	scroll Pose
	linked bool
}

func revealElementID(id SectionID) string {
	return "section:" + string(id)
}

func newSectionPanel(sl SectionLayout, cfg RevealConfig) *sectionPanel {
	id := SectionID(sl.ID)
	dur := cfg.Duration.Secs()
	p := &sectionPanel{
		id:     id,
		title:  sl.Title,
		header: NewReveal(0, dur),
		scroll: PoseSettled,
		linked: id == SectionHome,
	}
	st := sectionStagger(id, cfg)
	for i := 0; i < sl.Items; i++ {
		p.cards = append(p.cards, NewReveal(float32(st.Delay(i)), dur))
		if id == SectionSkills {
			p.bars = append(p.bars, NewMotion(Pose{Alpha: 1, Scale: 0}, Pose{Alpha: 1, Scale: 1},
				float32(barStagger.Delay(i)), barDuration, nil))
		}
		if id != SectionExperience {
			continue
		}
		inner := st.Within(i, bulletStagger)
		var bs []*Motion
		for j := 0; j < bulletCount; j++ {
			bs = append(bs, NewMotion(Pose{Alpha: 0, OffsetX: -20, Scale: 1}, PoseSettled,
				float32(inner.Delay(j)), dur/2, nil))
		}
		p.bullets = append(p.bullets, bs)
	}
	return p
}

// sectionStagger returns the card stagger for a section.
func sectionStagger(id SectionID, cfg RevealConfig) Stagger {
	st := cfg.Stagger()
	if id == SectionContact {
		st.Base = contactBase
	}
	return st
}

// start launches every motion in the panel. Delays are fixed by declared
// index, so start order here does not matter.
func (p *sectionPanel) start() {
	p.header.Start()
	for _, m := range p.cards {
		m.Start()
	}
	for _, bs := range p.bullets {
		for _, m := range bs {
			m.Start()
		}
	}
	for _, m := range p.bars {
		m.Start()
	}
}

// follow updates the scroll-linked pose for the page offset. Progress runs
// from 0 with the panel top at the viewport top to 1 once its bottom has
// passed it.
func (p *sectionPanel) follow(offset float64) {
	if !p.linked || p.bounds.Height <= 0 {
		p.scroll = PoseSettled
		return
	}
	p.scroll = heroPose((offset-p.bounds.Y)/p.bounds.Height, p.bounds.Height)
}

func (p *sectionPanel) update(dt float32) {
	p.header.Update(dt)
	for _, m := range p.cards {
		m.Update(dt)
	}
	for _, bs := range p.bullets {
		for _, m := range bs {
			m.Update(dt)
		}
	}
	for _, m := range p.bars {
		m.Update(dt)
	}
}

// cardRect returns the page-space rectangle of card i.
func (p *sectionPanel) cardRect(i int) Rect {
	cols := cardCols
	if len(p.cards) < cols {
		cols = len(p.cards)
	}
	if cols == 0 {
		return Rect{}
	}
	w := (p.bounds.Width - 2*panelPad - float64(cols-1)*cardGap) / float64(cols)
	row, col := i/cols, i%cols
	return Rect{
		X:      p.bounds.X + panelPad + float64(col)*(w+cardGap),
		Y:      p.bounds.Y + panelCardsY + float64(row)*(cardH+cardGap),
		Width:  w,
		Height: cardH,
	}
}

// draw renders the panel with the page scrolled to offset.
func (p *sectionPanel) draw(dst *ebiten.Image, offset float64, active bool) {
	top := p.bounds.Y - offset
	if top > float64(dst.Bounds().Dy()) || top+p.bounds.Height < 0 {
		return
	}
	sp := p.scroll
	if sp.Alpha <= 0 {
		return
	}

	h := p.header.Current()
	h.Alpha *= sp.Alpha
	h.OffsetY += sp.OffsetY
	if h.Alpha > 0 {
		accent := fluidBlue
		if active {
			accent = fluidPurple
		}
		y := float32(top + panelHeaderY + h.OffsetY)
		lh := float32(20)
		if p.font != nil {
			lh = float32(p.font.LineHeight())
		}
		vector.DrawFilledRect(dst, float32(panelPad), y+lh+8, 96, 4, accent.WithAlpha(h.Alpha).RGBA(), true)
		drawText(dst, p.title, p.font, panelPad, float64(y), titleColor.WithAlpha(h.Alpha))
	}

	for i, m := range p.cards {
		pose := m.Current()
		pose.Alpha *= sp.Alpha
		pose.OffsetY += sp.OffsetY
		if pose.Alpha <= 0 {
			continue
		}
		r := p.cardRect(i)
		x := float32(r.X + pose.OffsetX)
		y := float32(r.Y - offset + pose.OffsetY)
		vector.DrawFilledRect(dst, x, y, float32(r.Width), float32(r.Height),
			cardFill.WithAlpha(cardFill.A*pose.Alpha).RGBA(), true)
		if i < len(p.bullets) {
			for j, b := range p.bullets[i] {
				bp := b.Current()
				if bp.Alpha <= 0 {
					continue
				}
				vector.DrawFilledRect(dst, x+16+float32(bp.OffsetX), y+40+float32(j)*24, float32(r.Width)/2, 6,
					fluidBlue.WithAlpha(0.4*bp.Alpha*sp.Alpha).RGBA(), true)
			}
		}
		if i < len(p.bars) {
			track := float32(r.Width) - 32
			fill := track * float32(skillLevels[i%len(skillLevels)]*p.bars[i].Current().Scale)
			by := y + float32(r.Height) - 28
			vector.DrawFilledRect(dst, x+16, by, track, 8, cardFill.WithAlpha(pose.Alpha*0.1).RGBA(), true)
			if fill > 0 {
				vector.DrawFilledRect(dst, x+16, by, fill, 8, fluidPurple.WithAlpha(pose.Alpha).RGBA(), true)
			}
		}
	}
}
