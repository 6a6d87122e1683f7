package reel

import (
	"fmt"
	"time"
)

// Stage is the top of a scene: a root clip drawn with DrawRoot, a render
// canvas it paints into and a screen canvas the result is blitted onto.
type Stage struct {
	root    *Node
	backend Backend
	canvas  Canvas // render target
	screen  Canvas // visible surface
	width   int
	height  int
	sink    CollisionSink
	debug   bool
	ticks   uint64
}

// NewStage creates a stage of w×h pixels whose canvases come from b.
// Returns an error wrapping ErrResolutionZero if either dimension is zero.
func NewStage(b Backend, w, h int) (*Stage, error) {
	st := &Stage{backend: b}
	st.root = NewClip("stage")
	st.root.stage = st
	st.root.Drawer = DrawRoot
	if err := st.Resolution(w, h); err != nil {
		return nil, err
	}
	return st, nil
}

// Resolution resizes the render and screen canvases and the root clip.
func (st *Stage) Resolution(w, h int) error {
	if w <= 0 || h <= 0 {
		return fmt.Errorf("stage resolution %dx%d: %w", w, h, ErrResolutionZero)
	}
	st.width, st.height = w, h
	st.canvas = st.backend.NewCanvas(w, h)
	st.screen = st.backend.NewCanvas(w, h)
	st.root.Size(float64(w), float64(h))
	return nil
}

// Size returns the stage resolution.
func (st *Stage) Size() (int, int) {
	return st.width, st.height
}

// Root returns the root clip.
func (st *Stage) Root() *Node {
	return st.root
}

// Add adds in to the root clip's current frame.
func (st *Stage) Add(in AddInput) error {
	return st.root.Add(in)
}

// Screen returns the canvas the stage presents each tick.
func (st *Stage) Screen() Canvas {
	return st.screen
}

// Backend returns the canvas factory the stage was created with.
func (st *Stage) Backend() Backend {
	return st.backend
}

// SetCollisionSink routes every contact found by a Collider on this stage
// to sink. Pass nil to stop publishing.
func (st *Stage) SetCollisionSink(sink CollisionSink) {
	st.sink = sink
}

// SetDebugMode enables per-tick stats and tree warnings on stderr.
func (st *Stage) SetDebugMode(enabled bool) {
	st.debug = enabled
	globalDebug = enabled
}

// globalDebug mirrors the most recently set Stage debug flag so node
// operations, which have no Stage pointer, can check it cheaply.
var globalDebug bool

// Ticks returns how many ticks the stage has run.
func (st *Stage) Ticks() uint64 {
	return st.ticks
}

// Tick runs one top-to-bottom walk of the scene: every clip paints its
// current frame, tweens, actions and colliders step, and the result lands
// on Screen.
func (st *Stage) Tick() {
	st.ticks++
	if !st.debug {
		st.root.Draw(st.screen)
		return
	}
	debugStatsCurrent = debugStats{}
	start := time.Now()
	st.root.Draw(st.screen)
	debugStatsCurrent.traverseTime = time.Since(start)
	st.debugLog(debugStatsCurrent)
}

// At returns the topmost node under the stage point (x, y), or nil.
func (st *Stage) At(x, y float64) *Node {
	return st.root.At(x, y, nil)
}
