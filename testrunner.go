package pullrefresh

import (
	"encoding/json"
	"fmt"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action     string  `json:"action"`
	Label      string  `json:"label,omitempty"`
	X          float64 `json:"x,omitempty"`
	Y          float64 `json:"y,omitempty"`
	FromX      float64 `json:"fromX,omitempty"`
	FromY      float64 `json:"fromY,omitempty"`
	ToX        float64 `json:"toX,omitempty"`
	ToY        float64 `json:"toY,omitempty"`
	DY         float64 `json:"dy,omitempty"`
	Frames     int     `json:"frames,omitempty"`
	Success    bool    `json:"success,omitempty"`
	Refreshing bool    `json:"refreshing,omitempty"`
	Animated   bool    `json:"animated,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

var knownActions = map[string]bool{
	"screenshot": true,
	"press":      true,
	"move":       true,
	"release":    true,
	"cancel":     true,
	"drag":       true,
	"wheel":      true,
	"wait":       true,
	"complete":   true,
	"refresh":    true,
}

// TestRunner sequences injected gestures, refresh calls, and screenshots
// across frames for automated visual testing. Attach to a Game via
// SetTestRunner.
//
// Actions: press/move/release {x, y}, cancel, drag {fromX, fromY, toX, toY,
// frames}, wheel {dy, frames}, wait {frames}, complete {success},
// refresh {refreshing, animated}, screenshot {label}.
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript parses a JSON test script and returns a TestRunner ready
// to be attached to a Game via SetTestRunner.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		if !knownActions[st.Action] {
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the test runner by one frame. Called from Game.Update.
func (r *TestRunner) step(g *Game) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if g.input.Pending() {
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
		g.Screenshot(st.Label)
	case "press":
		g.input.InjectPress(st.X, st.Y)
	case "move":
		g.input.InjectMove(st.X, st.Y)
	case "release":
		g.input.InjectRelease(st.X, st.Y)
	case "cancel":
		g.input.InjectCancel()
	case "drag":
		g.input.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, max(st.Frames, 2))
	case "wheel":
		for range max(st.Frames, 1) {
			g.input.InjectWheel(st.DY)
		}
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "complete":
		g.layout.SetRefreshComplete(st.Success)
	case "refresh":
		g.layout.SetRefreshing(st.Refreshing, st.Animated)
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && !g.input.Pending() {
		r.done = true
	}
}
