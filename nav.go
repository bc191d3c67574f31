package aurora

// DefaultHideThreshold is the offset past which scrolling down hides the
// navigation menu.
const DefaultHideThreshold = 150.0

// NavState is what the navigation menu renders from.
type NavState struct {
	Visible bool
	Active  SectionID
}

// Navigator is the navigation state machine. It consumes scroll samples and
// section changes and exposes {visible, active section}.
//
// Visibility rule: the menu is hidden exactly when the latest sample moved
// down and is past the hide threshold. Any upward sample shows it again.
type Navigator struct {
	state     NavState
	threshold float64
	changes   handlerList[NavState]
}

// NewNavigator starts visible with the first declared section active.
func NewNavigator(threshold float64) *Navigator {
	return &Navigator{
		state:     NavState{Visible: true, Active: Sections[0]},
		threshold: threshold,
	}
}

// State returns the current navigation state.
func (n *Navigator) State() NavState {
	return n.state
}

// Threshold returns the hide threshold in pixels.
func (n *Navigator) Threshold() float64 {
	return n.threshold
}

// Apply feeds one scroll sample and returns the resulting state.
func (n *Navigator) Apply(s ScrollSample) NavState {
	visible := !(s.Direction == DirectionDown && s.Offset > n.threshold)
	if visible != n.state.Visible {
		n.state.Visible = visible
		n.changes.emit(n.state)
	}
	return n.state
}

// SetActive marks id as the active section. Unknown ids are ignored and
// reported as false.
func (n *Navigator) SetActive(id SectionID) bool {
	if !id.Valid() {
		return false
	}
	if id != n.state.Active {
		n.state.Active = id
		n.changes.emit(n.state)
	}
	return true
}

// OnChange registers fn for every state change.
func (n *Navigator) OnChange(fn func(NavState)) CallbackHandle {
	return n.changes.add(fn)
}

// Bind subscribes the navigator to o. Remove the returned handle on teardown.
func (n *Navigator) Bind(o *ScrollObserver) CallbackHandle {
	if o == nil {
		return CallbackHandle{}
	}
	return joinHandles(
		o.OnSample(func(s ScrollSample) { n.Apply(s) }),
		o.OnSectionChange(func(b SectionBoundary) { n.SetActive(b.ID) }),
	)
}
