package reel

import (
	"fmt"
	"math/rand/v2"
)

// TweenState is the lifecycle state of a Tween.
type TweenState uint8

const (
	TweenIdle    TweenState = iota // created, not started
	TweenRunning                   // stepping every tick
	TweenPaused                    // keeps t, skips ticks
	TweenStopped                   // finished or stopped; OnStop has run
	TweenRemoved                   // unlinked from its clip; OnRemove has run
)

var tweenStateNames = [...]string{"idle", "running", "paused", "stopped", "removed"}

func (s TweenState) String() string {
	if int(s) < len(tweenStateNames) {
		return tweenStateNames[s]
	}
	return "unknown"
}

// RepeatForever makes a tween loop until it is stopped or removed.
const RepeatForever = -1

// DefaultTweenDuration is the duration, in ticks, of a new tween.
const DefaultTweenDuration = 100

// Tween interpolates numeric properties of Target from From to To over
// Duration ticks. It runs as an ordinary child of a clip: add it with
// Clip.Add and it steps once each time the clip is painted.
//
// Property names are those accepted by Node.Property. A tween does not own
// its target; stop or remove the tween before discarding the target.
type Tween struct {
	Target *Node

	// From is captured from the target on the first Start when nil.
	From map[string]float64
	To   map[string]float64

	Duration int // ticks per cycle
	Repeat   int // extra cycles after the first; RepeatForever loops
	Easing   Easing

	// AutoRemove unlinks the tween from its clip when a cycle completes,
	// taking precedence over Repeat.
	AutoRemove bool

	OnStop   func(*Tween)
	OnRemove func(*Tween)

	// Apply, when set, replaces interpolation for every key. p is the raw
	// progress t/Duration, before easing.
	Apply func(tw *Tween, key string, p float64) float64

	node  *Node
	t     int
	state TweenState
	warn  bool
}

// NewTween creates an idle tween of target towards to, with Linear easing
// and DefaultTweenDuration. Repeat is 0, so the tween runs one cycle and
// stops; set Repeat to RepeatForever to loop until stopped.
func NewTween(target *Node, to map[string]float64) *Tween {
	tw := &Tween{
		Target:   target,
		To:       to,
		Duration: DefaultTweenDuration,
		Easing:   Linear,
	}
	n := &Node{Type: NodeTypeTween, tween: tw}
	nodeDefaults(n)
	n.Drawer = drawTween
	n.HitTester = HitNone
	n.CollisionTester = nil
	n.CollisionQuerier = nil
	tw.node = n
	return tw
}

func (tw *Tween) addTo(c *Node) error {
	if tw == nil {
		return ErrInvalidInput
	}
	c.AddChild(tw.node)
	return nil
}

// Node returns the node that carries the tween in a clip.
func (tw *Tween) Node() *Node {
	return tw.node
}

// State returns the current lifecycle state.
func (tw *Tween) State() TweenState {
	return tw.state
}

// T returns the current step within the cycle.
func (tw *Tween) T() int {
	return tw.t
}

func drawTween(n *Node, _ Surface) {
	tw := n.tween
	if tw.state == TweenIdle {
		tw.Start()
	}
	tw.Step()
}

// Start captures From when it is nil and begins running. Starting a stopped
// tween resumes it from its current step with the same From values.
func (tw *Tween) Start() *Tween {
	if tw.From == nil {
		tw.From = make(map[string]float64, len(tw.To))
		for k := range tw.To {
			tw.From[k] = tw.Target.Property(k)
		}
	}
	tw.state = TweenRunning
	return tw
}

// Step advances one tick. It does nothing unless the tween is running.
func (tw *Tween) Step() {
	if tw.state != TweenRunning {
		return
	}
	if globalDebug && !tw.warn {
		tw.warn = debugCheckTweenTarget(tw)
	}

	d := max(tw.Duration, 1)
	tw.t++
	p := float64(tw.t) / float64(d)
	done := tw.t >= d

	ease := tw.Easing
	if ease == nil {
		ease = Linear
	}
	for k, to := range tw.To {
		var v float64
		switch {
		case tw.Apply != nil:
			v = tw.Apply(tw, k, p)
		case done:
			v = to
		default:
			from := tw.From[k]
			v = from + ease(p)*(to-from)
		}
		tw.Target.SetProperty(k, v)
	}

	if !done {
		return
	}
	switch {
	case tw.AutoRemove:
		tw.Remove()
	case tw.Repeat != 0:
		if tw.Repeat > 0 {
			tw.Repeat--
		}
		tw.t = 0
	default:
		tw.Stop()
	}
}

// Pause suspends a running tween without losing its step.
func (tw *Tween) Pause() *Tween {
	if tw.state == TweenRunning {
		tw.state = TweenPaused
	}
	return tw
}

// Resume continues a paused or stopped tween, or starts an idle one.
// A stopped tween restarts from step zero with the same From values.
func (tw *Tween) Resume() *Tween {
	switch tw.state {
	case TweenPaused, TweenStopped:
		tw.state = TweenRunning
	case TweenIdle:
		tw.Start()
	}
	return tw
}

// Stop halts the tween, rewinds it to step zero and runs OnStop. Rewinding
// uses up one remaining repeat.
func (tw *Tween) Stop() *Tween {
	tw.t = 0
	if tw.Repeat > 0 {
		tw.Repeat--
	}
	tw.state = TweenStopped
	if tw.OnStop != nil {
		tw.OnStop(tw)
	}
	return tw
}

// Restart rewinds to step zero and runs again with the same From values.
func (tw *Tween) Restart() *Tween {
	tw.t = 0
	return tw.Start()
}

// Reset rewinds to step zero, forgets From and returns to idle. The next
// Start captures From again.
func (tw *Tween) Reset() *Tween {
	tw.t = 0
	tw.From = nil
	tw.state = TweenIdle
	return tw
}

// Remove unlinks the tween from its clip and runs OnRemove.
func (tw *Tween) Remove() {
	if tw.node.parent != nil {
		tw.node.Remove()
		return
	}
	tw.removed()
}

// removed is called by Node.Remove for tween nodes.
func (tw *Tween) removed() {
	tw.state = TweenRemoved
	if tw.OnRemove != nil {
		tw.OnRemove(tw)
	}
}

func (tw *Tween) String() string {
	name := ""
	if tw.Target != nil {
		name = tw.Target.Name
	}
	return fmt.Sprintf("tween(%q %s t=%d/%d)", name, tw.state, tw.t, tw.Duration)
}

// Shake returns an auto-removing tween that jitters target's X and Y by up
// to radius around their current values for duration ticks, then puts them
// back. radius defaults to 3 and duration to 10.
func Shake(target *Node, radius float64, duration int) *Tween {
	if radius == 0 {
		radius = 3
	}
	if duration == 0 {
		duration = 10
	}
	tw := NewTween(target, map[string]float64{"x": target.X, "y": target.Y})
	tw.Duration = duration
	tw.AutoRemove = true
	tw.Apply = func(tw *Tween, key string, p float64) float64 {
		if p >= 1 {
			return tw.To[key]
		}
		return tw.To[key] - radius + rand.Float64()*2*radius
	}
	return tw
}

// --- Properties ---

type property struct {
	get func(n *Node) float64
	set func(n *Node, v float64)
}

var properties = map[string]property{
	"x":         {func(n *Node) float64 { return n.X }, func(n *Node, v float64) { n.X = v }},
	"y":         {func(n *Node) float64 { return n.Y }, func(n *Node, v float64) { n.Y = v }},
	"cx":        {func(n *Node) float64 { return n.CX }, func(n *Node, v float64) { n.CX = v }},
	"cy":        {func(n *Node) float64 { return n.CY }, func(n *Node, v float64) { n.CY = v }},
	"width":     {func(n *Node) float64 { return n.Width }, func(n *Node, v float64) { n.Width = v }},
	"height":    {func(n *Node) float64 { return n.Height }, func(n *Node, v float64) { n.Height = v }},
	"radius":    {func(n *Node) float64 { return n.Radius }, func(n *Node, v float64) { n.Radius = v }},
	"alpha":     {func(n *Node) float64 { return n.Alpha }, func(n *Node, v float64) { n.Alpha = v }},
	"lineWidth": {func(n *Node) float64 { return n.LineWidth }, func(n *Node, v float64) { n.LineWidth = v }},
	"x2":        {func(n *Node) float64 { return n.X2 }, func(n *Node, v float64) { n.X2 = v }},
	"y2":        {func(n *Node) float64 { return n.Y2 }, func(n *Node, v float64) { n.Y2 = v }},
	"rotation":  {(*Node).Rotation, func(n *Node, v float64) { n.SetRotation(v) }},
	"scaleX":    {(*Node).ScaleX, func(n *Node, v float64) { n.SetScaleX(v) }},
	"scaleY":    {(*Node).ScaleY, func(n *Node, v float64) { n.SetScaleY(v) }},
	"red":       {(*Node).Red, func(n *Node, v float64) { n.SetRed(v) }},
	"green":     {(*Node).Green, func(n *Node, v float64) { n.SetGreen(v) }},
	"blue":      {(*Node).Blue, func(n *Node, v float64) { n.SetBlue(v) }},
}

// Property returns a numeric property by name. Built-in names are x, y, cx,
// cy, width, height, radius, alpha, lineWidth, x2, y2, rotation, scaleX,
// scaleY, red, green and blue; any other name reads Values.
func (n *Node) Property(name string) float64 {
	if p, ok := properties[name]; ok {
		return p.get(n)
	}
	return n.Values[name]
}

// SetProperty writes a numeric property by name. Names that are not built
// in are stored in Values.
func (n *Node) SetProperty(name string, v float64) *Node {
	if p, ok := properties[name]; ok {
		p.set(n, v)
		return n.Invalidate()
	}
	if n.Values == nil {
		n.Values = make(map[string]float64)
	}
	n.Values[name] = v
	return n.Invalidate()
}
