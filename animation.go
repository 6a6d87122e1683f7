package reel

import (
	"maps"
	"slices"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// maxGroupTweens is the most properties a TweenGroup animates at once.
const maxGroupTweens = 4

// TweenGroup animates up to 4 numeric properties of a Node over a duration
// in seconds, using gween. Unlike Tween, which counts ticks, a TweenGroup is
// advanced by elapsed time: call Update(dt) yourself, or add the node
// returned by Action to a clip to step it by a fixed dt every tick.
//
// Create one with TweenPosition, TweenScale, TweenFill, TweenAlpha,
// TweenRotation or TweenProperties.
type TweenGroup struct {
	tweens [maxGroupTweens]*gween.Tween
	keys   [maxGroupTweens]string
	count  int
	target *Node
	Done   bool
}

// Update advances all tweens by dt seconds and writes the values to the
// target. Done is set once every tween has finished.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		g.target.SetProperty(g.keys[i], float64(val))
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}

// Reset rewinds every tween to its start.
func (g *TweenGroup) Reset() {
	for i := 0; i < g.count; i++ {
		g.tweens[i].Reset()
	}
	g.Done = false
}

// Action returns a node that advances the group by dt every tick and removes
// itself when the group is done.
func (g *TweenGroup) Action(dt float32) *Node {
	return NewAction("tween_group", func(self *Node) {
		g.Update(dt)
		if g.Done {
			self.Remove()
		}
	})
}

func (g *TweenGroup) add(key string, to float64, duration float32, fn ease.TweenFunc) {
	from := g.target.Property(key)
	g.tweens[g.count] = gween.New(float32(from), float32(to), duration, fn)
	g.keys[g.count] = key
	g.count++
}

// TweenProperties creates a TweenGroup animating up to 4 named properties
// (see Node.Property) to the values in to. Keys are taken in sorted order;
// any past the fourth are ignored.
func TweenProperties(node *Node, to map[string]float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{target: node}
	for _, k := range slices.Sorted(maps.Keys(to)) {
		if g.count == maxGroupTweens {
			break
		}
		g.add(k, to[k], duration, fn)
	}
	return g
}

// TweenPosition creates a TweenGroup that animates X and Y to the given
// coordinates over duration seconds using the easing function.
func TweenPosition(node *Node, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{target: node}
	g.add("x", toX, duration, fn)
	g.add("y", toY, duration, fn)
	return g
}

// TweenScale creates a TweenGroup that animates the scale factors.
func TweenScale(node *Node, toSX, toSY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{target: node}
	g.add("scaleX", toSX, duration, fn)
	g.add("scaleY", toSY, duration, fn)
	return g
}

// TweenFill creates a TweenGroup that animates the red, green and blue
// channels of a shape's color to those of to.
func TweenFill(node *Node, to Color, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{target: node}
	g.add("red", to.R*255, duration, fn)
	g.add("green", to.G*255, duration, fn)
	g.add("blue", to.B*255, duration, fn)
	return g
}

// TweenAlpha creates a TweenGroup that animates Alpha.
func TweenAlpha(node *Node, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{target: node}
	g.add("alpha", to, duration, fn)
	return g
}

// TweenRotation creates a TweenGroup that animates the rotation in radians.
func TweenRotation(node *Node, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{target: node}
	g.add("rotation", to, duration, fn)
	return g
}
