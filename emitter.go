package reel

import (
	"math"
	"math/rand/v2"
)

// Range is a closed interval [Min, Max] sampled uniformly.
type Range struct {
	Min, Max float64
}

func (r Range) sample() float64 {
	if r.Max <= r.Min {
		return r.Min
	}
	return r.Min + rand.Float64()*(r.Max-r.Min)
}

// EmitterConfig controls how an Emitter spawns particles. Zero Count and
// Life default to 1 and 10.
type EmitterConfig struct {
	// Count is the number of particles spawned per tick.
	Count int
	// Life is how many ticks each particle is drawn before it removes itself.
	Life int
	// Speed is the range of initial speeds in pixels per tick.
	Speed Range
	// Angle is the range of emission angles in radians.
	Angle Range
	// Gravity is added to every particle's velocity each tick.
	Gravity Vec2
	// FadeOut scales each particle's alpha down to zero over its life.
	FadeOut bool

	// Spawn builds one particle. Defaults to an empty clip.
	Spawn func(e *Emitter) *Node
	// OnEmit is called with each particle after it is added.
	OnEmit func(p *Node)
}

// Emitter is the state of an emitter clip.
type Emitter struct {
	Config EmitterConfig
	node   *Node
}

// particle is the per-node state of an emitted particle.
type particle struct {
	life, maxLife int
	vx, vy        float64
	gravity       Vec2
	fade          bool
	alpha         float64
	draw          DrawFunc
}

// NewEmitter creates a clip that spawns cfg.Count particles every tick
// before painting its children.
func NewEmitter(name string, cfg EmitterConfig) *Node {
	if cfg.Count == 0 {
		cfg.Count = 1
	}
	if cfg.Life == 0 {
		cfg.Life = 10
	}
	n := NewClip(name)
	n.Type = NodeTypeEmitter
	n.emitter = &Emitter{Config: cfg, node: n}
	n.Painter = PaintEmitter
	return n
}

// Emitter returns the emitter state of n, or nil if n is not an emitter.
func (n *Node) Emitter() *Emitter {
	return n.emitter
}

// Node returns the emitter clip.
func (e *Emitter) Node() *Node {
	return e.node
}

// Emit spawns one particle into the emitter's current frame.
func (e *Emitter) Emit() *Node {
	cfg := &e.Config
	var p *Node
	if cfg.Spawn != nil {
		p = cfg.Spawn(e)
	} else {
		p = NewClip("")
	}

	speed := cfg.Speed.sample()
	sin, cos := math.Sincos(cfg.Angle.sample())
	p.particle = &particle{
		life:    cfg.Life,
		maxLife: cfg.Life,
		vx:      cos * speed,
		vy:      sin * speed,
		gravity: cfg.Gravity,
		fade:    cfg.FadeOut,
		alpha:   p.Alpha,
		draw:    p.Drawer,
	}
	p.Drawer = drawParticle

	e.node.AddChild(p)
	if cfg.OnEmit != nil {
		cfg.OnEmit(p)
	}
	return p
}

// Alive returns the number of particles in the current frame.
func (e *Emitter) Alive() int {
	return e.node.Len()
}

// PaintEmitter emits Count particles, then paints like a container.
func PaintEmitter(n *Node, s Surface) {
	e := n.emitter
	for range e.Config.Count {
		e.Emit()
	}
	PaintContainer(n, s)
}

// drawParticle draws the particle with its original strategy while it has
// life left, and removes it after.
func drawParticle(n *Node, s Surface) {
	p := n.particle
	if p.life <= 0 {
		n.Remove()
		return
	}
	p.life--
	n.X += p.vx
	n.Y += p.vy
	p.vx += p.gravity.X
	p.vy += p.gravity.Y
	if p.fade {
		n.Alpha = p.alpha * float64(p.life+1) / float64(p.maxLife)
	}
	p.draw(n, s)
}
