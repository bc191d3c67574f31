package aurora

import (
	"encoding/json"
	"fmt"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	Offset float64 `json:"offset,omitempty"`
	Delta  float64 `json:"delta,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

// TestRunner sequences injected input and screenshots across frames for
// scripted visual checks of a page. Attach it with Page.SetTestRunner.
//
// Actions: "move" (x, y), "path" (fromX, fromY, toX, toY, frames),
// "scroll" (offset), "wheel" (delta), "click" (x, y), "wait" (frames),
// "screenshot" (label).
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript parses a JSON test script.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "move", "path", "scroll", "wheel", "click", "wait", "screenshot":
		default:
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches a runner; it steps once per frame before input is
// processed.
func (p *Page) SetTestRunner(runner *TestRunner) {
	p.testRunner = runner
}

// Done reports whether all steps have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the runner by one frame.
func (r *TestRunner) step(p *Page) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(p.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "screenshot":
		p.Screenshot(st.Label)
	case "move":
		p.InjectMove(st.X, st.Y)
	case "path":
		p.InjectPath(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "scroll":
		p.InjectScroll(st.Offset)
	case "wheel":
		p.InjectWheel(st.Delta)
	case "click":
		p.InjectClick(st.X, st.Y)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(p.injectQueue) == 0 {
		r.done = true
	}
}
