package ebitengine

import (
	"encoding/json"
	"fmt"
)

// scriptStep is a single action in an input script.
type scriptStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	DX     float64 `json:"dx,omitempty"`
	DY     float64 `json:"dy,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

type scriptFile struct {
	Steps []scriptStep `json:"steps"`
}

// Script sequences injected input, screenshots and a final close across
// ticks, for unattended runs of an example. Attach with Window.SetScript.
//
// Actions: "move" (x, y), "scroll" (dx, dy), "wait" (frames),
// "screenshot" (label), "close".
type Script struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON script.
func LoadScript(jsonData []byte) (*Script, error) {
	var f scriptFile
	if err := json.Unmarshal(jsonData, &f); err != nil {
		return nil, fmt.Errorf("parse input script: %w", err)
	}
	if len(f.Steps) == 0 {
		return nil, fmt.Errorf("parse input script: no steps")
	}
	for i, st := range f.Steps {
		switch st.Action {
		case "move", "scroll", "wait", "screenshot", "close":
		default:
			return nil, fmt.Errorf("parse input script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &Script{steps: f.Steps}, nil
}

// SetScript attaches a script. Its steps run from PollEvents, one per tick.
func (w *Window) SetScript(s *Script) {
	w.script = s
}

// Done reports whether every step has run.
func (s *Script) Done() bool {
	return s.done
}

// step advances the script by one tick.
func (s *Script) step(w *Window) {
	if s.done {
		return
	}
	// Let queued injections drain before advancing.
	if w.pendingInjected() > 0 {
		return
	}
	if s.waitCount > 0 {
		s.waitCount--
		return
	}
	if s.cursor >= len(s.steps) {
		s.done = true
		return
	}

	st := s.steps[s.cursor]
	s.cursor++

	switch st.Action {
	case "move":
		w.InjectCursor(st.X, st.Y)
	case "scroll":
		w.InjectScroll(st.DX, st.DY)
	case "wait":
		if st.Frames > 0 {
			s.waitCount = st.Frames - 1 // this tick counts as one
		}
	case "screenshot":
		w.Screenshot(st.Label)
	case "close":
		w.closeRequested = true
	}

	if s.cursor >= len(s.steps) && s.waitCount == 0 && w.pendingInjected() == 0 {
		s.done = true
	}
}
