package aurora

import "time"

// debugLogInterval is how many frames pass between debug stat lines.
const debugLogInterval = 60

// frameStats holds per-frame timing. Only populated in debug mode.
type frameStats struct {
	updateTime time.Duration
	drawTime   time.Duration
}

// SetDebugMode enables or disables per-frame timing logs at debug level.
func (p *Page) SetDebugMode(enabled bool) {
	p.debug = enabled
}

// debugLog emits frame timing and animation state every debugLogInterval
// frames.
func (p *Page) debugLog() {
	if !p.debug || p.clock.Frame()%debugLogInterval != 0 {
		return
	}
	nav := p.nav.State()
	sample := p.scroll.Current()
	logger.Debug("frame",
		"frame", p.clock.Frame(),
		"update", p.stats.updateTime,
		"draw", p.stats.drawTime,
		"renderer", p.background.Mode().String(),
		"offset", sample.Offset,
		"direction", sample.Direction.String(),
		"nav_visible", nav.Visible,
		"active", string(nav.Active),
		"observed", p.reveal.Len(),
	)
}
