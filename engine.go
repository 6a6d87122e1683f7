package reel

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window created by Run. Zero values fall back to
// a 640x480 window ticking 60 times per second.
type RunConfig struct {
	Title  string
	Width  int
	Height int
	// TPS is the number of stage ticks per second.
	TPS int
	// ClearColor fills the window before the stage is presented.
	ClearColor Color
	// ShowFPS adds an FPS/TPS readout on top of the stage.
	ShowFPS bool
	// Debug enables per-tick stats on stderr.
	Debug bool
	// ScreenshotDir is where Screenshot writes PNGs. Defaults to
	// "screenshots".
	ScreenshotDir string
}

// Engine drives a Stage from Ebitengine's game loop: every Update runs one
// stage tick and every Draw presents the stage's screen canvas. Engine
// implements ebiten.Game, so it can also be passed to ebiten.RunGame
// directly.
type Engine struct {
	// OnUpdate runs before every tick. Returning an error stops the game;
	// return ebiten.Termination to exit cleanly.
	OnUpdate func() error
	// OnDestroy runs once when Destroy is called.
	OnDestroy func()

	stage     *Stage
	clear     color.RGBA
	tps       int
	paused    bool
	destroyed bool

	script  *ScriptRunner
	shots   []string
	shotDir string
}

// NewEngine returns an engine for st ticking 60 times per second.
func NewEngine(st *Stage) *Engine {
	return &Engine{stage: st, tps: ebiten.DefaultTPS}
}

// Stage returns the stage the engine drives.
func (e *Engine) Stage() *Stage {
	return e.stage
}

// SetFPS sets the number of ticks per second.
func (e *Engine) SetFPS(tps int) *Engine {
	if tps > 0 {
		e.tps = tps
		ebiten.SetTPS(tps)
	}
	return e
}

// FPS returns the configured ticks per second.
func (e *Engine) FPS() int {
	return e.tps
}

// Pause stops ticking the stage. The window keeps presenting the last frame.
func (e *Engine) Pause() {
	e.paused = true
}

// Resume continues ticking and sets the root clip playing.
func (e *Engine) Resume() {
	e.paused = false
	e.stage.Root().Play()
}

// IsPaused reports whether the engine is paused.
func (e *Engine) IsPaused() bool {
	return e.paused
}

// Destroy ends the game loop after the current tick and runs OnDestroy.
// Calling it more than once has no further effect.
func (e *Engine) Destroy() {
	if e.destroyed {
		return
	}
	e.destroyed = true
	if e.OnDestroy != nil {
		e.OnDestroy()
	}
}

// Update implements ebiten.Game.
func (e *Engine) Update() error {
	if e.destroyed {
		return ebiten.Termination
	}
	if e.script != nil {
		e.script.step(e)
		if e.destroyed {
			return ebiten.Termination
		}
	}
	if e.paused {
		return nil
	}
	if e.OnUpdate != nil {
		if err := e.OnUpdate(); err != nil {
			return err
		}
	}
	e.stage.Tick()
	return nil
}

// Draw implements ebiten.Game. Stages built on a backend other than
// EbitenBackend present nothing.
func (e *Engine) Draw(screen *ebiten.Image) {
	screen.Fill(e.clear)
	if src, ok := e.stage.Screen().(ebitenSource); ok {
		screen.DrawImage(src.EbitenImage(), nil)
	}
	e.flushScreenshots(screen)
}

// Layout implements ebiten.Game. The logical screen is the stage resolution.
func (e *Engine) Layout(_, _ int) (int, int) {
	return e.stage.Size()
}

// Run opens a window configured by cfg and blocks until the game ends.
func (e *Engine) Run(cfg RunConfig) error {
	w, h := cfg.Width, cfg.Height
	if w == 0 || h == 0 {
		w, h = e.stage.Size()
	}
	title := cfg.Title
	if title == "" {
		title = "reel"
	}
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(w, h)
	if cfg.TPS > 0 {
		e.SetFPS(cfg.TPS)
	}
	e.clear = cfg.ClearColor.toRGBA()
	e.shotDir = cfg.ScreenshotDir
	if cfg.Debug {
		e.stage.SetDebugMode(true)
	}
	if cfg.ShowFPS {
		if b, ok := e.stage.Backend().(*EbitenBackend); ok {
			e.stage.Root().AddChild(NewFPSWidget(b))
		}
	}
	return ebiten.RunGame(e)
}

// Run is shorthand for NewEngine(st).Run(cfg).
func Run(st *Stage, cfg RunConfig) error {
	return NewEngine(st).Run(cfg)
}

// NewEbitenStage creates a w×h stage on a new EbitenBackend.
func NewEbitenStage(w, h int) (*Stage, error) {
	return NewStage(NewEbitenBackend(), w, h)
}
