package gallery

import (
	"encoding/json"
	"fmt"
)

// scriptStep is a single action in a test script.
type scriptStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	Width  int     `json:"width,omitempty"`
	Height int     `json:"height,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

type script struct {
	Steps []scriptStep `json:"steps"`
}

// TestRunner sequences injected wheel, pointer and resize events and
// screenshots across frames for automated visual checks. Attach it with
// Scene.SetTestRunner.
//
// Actions: "wheel" (x, y pixel deltas repeated for frames), "hover" (x, y),
// "resize" (width, height), "wait" (frames), "screenshot" (label).
type TestRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript parses a JSON test script.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var sc script
	if err := json.Unmarshal(jsonData, &sc); err != nil {
		return nil, fmt.Errorf("gallery: parse test script: %w", err)
	}
	if len(sc.Steps) == 0 {
		return nil, fmt.Errorf("gallery: parse test script: no steps")
	}
	for i, st := range sc.Steps {
		switch st.Action {
		case "wheel", "hover", "resize", "wait", "screenshot":
		default:
			return nil, fmt.Errorf("gallery: parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: sc.Steps}, nil
}

// SetTestRunner attaches a TestRunner. Its step runs at the start of every
// Step, before input is processed.
func (s *Scene) SetTestRunner(runner *TestRunner) {
	s.testRunner = runner
}

// Done reports whether every step has executed and its injected events have
// drained.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the runner by one frame.
func (r *TestRunner) step(s *Scene) {
	if r.done {
		return
	}
	if len(s.injectQueue) > 0 {
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
		s.Screenshot(st.Label)
	case "wheel":
		s.InjectWheelFrames(st.X, st.Y, st.Frames)
	case "hover":
		s.InjectPointer(st.X, st.Y)
	case "resize":
		s.InjectResize(st.Width, st.Height)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}
}
