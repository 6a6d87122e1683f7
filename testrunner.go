package reel

import (
	"encoding/json"
	"fmt"
)

// scriptStep is a single action in a playback script.
type scriptStep struct {
	Action string `json:"action"`
	Label  string `json:"label,omitempty"`
	Ticks  int    `json:"ticks,omitempty"`
	Frame  int    `json:"frame,omitempty"`
}

type script struct {
	Steps []scriptStep `json:"steps"`
}

// ScriptRunner plays a scripted sequence of engine actions, one step per
// tick, for automated visual checks. Attach it with Engine.SetScript.
//
// Actions:
//
//	{"action": "wait", "ticks": 30}        let the stage run for 30 ticks
//	{"action": "screenshot", "label": "x"} queue a screenshot
//	{"action": "go", "frame": 2}           jump the root clip to a frame
//	{"action": "pause"} / {"action": "resume"}
//	{"action": "quit"}                     destroy the engine
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON playback script.
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var s script
	if err := json.Unmarshal(jsonData, &s); err != nil {
		return nil, fmt.Errorf("reel: parse script: %w", err)
	}
	if len(s.Steps) == 0 {
		return nil, fmt.Errorf("reel: parse script: no steps")
	}
	for i, st := range s.Steps {
		switch st.Action {
		case "wait", "screenshot", "go", "pause", "resume", "quit":
		default:
			return nil, fmt.Errorf("reel: parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &ScriptRunner{steps: s.Steps}, nil
}

// SetScript attaches a script. Its steps run from Engine.Update before the
// stage ticks, including while the engine is paused.
func (e *Engine) SetScript(r *ScriptRunner) {
	e.script = r
}

// Done reports whether every step has run.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// step advances the runner by one tick.
func (r *ScriptRunner) step(e *Engine) {
	if r.done {
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
		e.Screenshot(st.Label)
	case "wait":
		if st.Ticks > 0 {
			r.waitCount = st.Ticks - 1 // this tick counts as one
		}
	case "go":
		root := e.stage.Root()
		if st.Frame >= 0 && st.Frame < root.FrameCount() {
			root.Go(st.Frame)
		}
	case "pause":
		e.Pause()
	case "resume":
		e.Resume()
	case "quit":
		e.Destroy()
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 {
		r.done = true
	}
}
