package reel

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestLoadScript(t *testing.T) {
	data := []byte(`{
		"steps": [
			{"action": "screenshot", "label": "initial"},
			{"action": "wait", "ticks": 3},
			{"action": "go", "frame": 1},
			{"action": "quit"}
		]
	}`)

	runner, err := LoadScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runner.steps) != 4 {
		t.Fatalf("expected 4 steps, got %d", len(runner.steps))
	}
	if runner.steps[0].Action != "screenshot" || runner.steps[0].Label != "initial" {
		t.Error("step 0 mismatch")
	}
	if runner.steps[1].Action != "wait" || runner.steps[1].Ticks != 3 {
		t.Error("step 1 mismatch")
	}
	if runner.steps[2].Frame != 1 {
		t.Error("step 2 mismatch")
	}
}

func TestLoadScript_Invalid(t *testing.T) {
	tests := map[string]string{
		"json":    `not json`,
		"empty":   `{"steps": []}`,
		"unknown": `{"steps": [{"action": "click"}]}`,
	}
	for name, data := range tests {
		if _, err := LoadScript([]byte(data)); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestRunnerStep_Wait(t *testing.T) {
	e := newTestEngine(t)
	runner, err := LoadScript([]byte(`{"steps": [
		{"action": "wait", "ticks": 3},
		{"action": "screenshot", "label": "after"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	e.SetScript(runner)

	for range 3 {
		e.Update()
	}
	if len(e.shots) != 0 {
		t.Fatal("screenshot queued before wait finished")
	}
	e.Update()
	if len(e.shots) != 1 || e.shots[0] != "after" {
		t.Errorf("shots = %v", e.shots)
	}
	if !runner.Done() {
		t.Error("runner should be done")
	}
	if e.Stage().Ticks() != 4 {
		t.Errorf("ticks = %d, want 4", e.Stage().Ticks())
	}
}

func TestRunnerStep_GoPauseResume(t *testing.T) {
	e := newTestEngine(t)
	root := e.Stage().Root()
	root.AddFrame()
	root.AddFrame()
	root.Go(0)
	root.Stop()

	runner, _ := LoadScript([]byte(`{"steps": [
		{"action": "go", "frame": 2},
		{"action": "pause"},
		{"action": "resume"}
	]}`))
	e.SetScript(runner)

	e.Update()
	if root.Frame() != 2 {
		t.Errorf("frame = %d, want 2", root.Frame())
	}
	e.Update()
	if !e.IsPaused() || e.Stage().Ticks() != 1 {
		t.Errorf("paused = %v, ticks = %d", e.IsPaused(), e.Stage().Ticks())
	}
	e.Update()
	if e.IsPaused() || e.Stage().Ticks() != 2 {
		t.Errorf("paused = %v, ticks = %d", e.IsPaused(), e.Stage().Ticks())
	}
	if !runner.Done() {
		t.Error("runner should be done")
	}
}

func TestRunnerStep_Quit(t *testing.T) {
	e := newTestEngine(t)
	runner, _ := LoadScript([]byte(`{"steps": [{"action": "quit"}]}`))
	e.SetScript(runner)
	if err := e.Update(); !errors.Is(err, ebiten.Termination) {
		t.Errorf("Update = %v, want Termination", err)
	}
	if e.Stage().Ticks() != 0 {
		t.Error("stage ticked after quit")
	}
}
