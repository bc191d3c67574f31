package aurora

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Pose is one endpoint of a reveal transition.
type Pose struct {
	Alpha   float64
	OffsetX float64
	OffsetY float64
	Scale   float64
}

// Stock endpoints: hidden sits 50 pixels low and transparent, settled is
// fully visible in place.
var (
	PoseHidden  = Pose{Alpha: 0, OffsetY: 50, Scale: 1}
	PoseSettled = Pose{Alpha: 1, Scale: 1}
)

// Lerp interpolates between p and to.
func (p Pose) Lerp(to Pose, t float64) Pose {
	return Pose{
		Alpha:   p.Alpha + (to.Alpha-p.Alpha)*t,
		OffsetX: p.OffsetX + (to.OffsetX-p.OffsetX)*t,
		OffsetY: p.OffsetY + (to.OffsetY-p.OffsetY)*t,
		Scale:   p.Scale + (to.Scale-p.Scale)*t,
	}
}

// Motion animates between two poses after a start delay. It stays at From
// until Start is called, then waits Delay seconds and tweens to To.
//
// There is no global animation manager; owners call Update each frame.
type Motion struct {
	From, To Pose
	Delay    float32

	tween    *gween.Tween
	waited   float32
	progress float64
	started  bool

	// Done is set once the motion has reached To.
	Done bool
}

// NewMotion creates an unstarted motion. A non-positive duration jumps
// straight to To once the delay has passed.
func NewMotion(from, to Pose, delay, duration float32, fn ease.TweenFunc) *Motion {
	m := &Motion{From: from, To: to, Delay: delay}
	if duration > 0 {
		if fn == nil {
			fn = ease.OutCubic
		}
		m.tween = gween.New(0, 1, duration, fn)
	}
	return m
}

// NewReveal creates the stock hidden-to-settled motion.
func NewReveal(delay, duration float32) *Motion {
	return NewMotion(PoseHidden, PoseSettled, delay, duration, ease.OutCubic)
}

// Start arms the motion. Calling Start again has no effect.
func (m *Motion) Start() {
	m.started = true
}

// Started reports whether Start has been called.
func (m *Motion) Started() bool {
	return m.started
}

// Progress returns the eased progress in [0, 1].
func (m *Motion) Progress() float64 {
	return m.progress
}

// Current returns the pose for the current progress.
func (m *Motion) Current() Pose {
	return m.From.Lerp(m.To, m.progress)
}

// Update advances the motion by dt seconds.
func (m *Motion) Update(dt float32) {
	if !m.started || m.Done || dt <= 0 {
		return
	}
	if m.waited < m.Delay {
		m.waited += dt
		if m.waited < m.Delay {
			return
		}
		dt = m.waited - m.Delay
		m.waited = m.Delay
	}
	if m.tween == nil {
		m.progress = 1
		m.Done = true
		return
	}
	if dt <= 0 {
		return
	}
	val, finished := m.tween.Update(dt)
	m.progress = float64(val)
	if finished {
		m.progress = 1
		m.Done = true
	}
}
