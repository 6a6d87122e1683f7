package reel

import "math"

// cacheState holds a node's pre-rendered bitmap and the draw strategy it
// replaced.
type cacheState struct {
	canvas Canvas
	prev   DrawFunc
	w, h   float64
}

// Cache renders n once into an offscreen canvas from b and switches n to
// DrawCache. w and h default to the node's Width and Height. The canvas
// covers (0, 0)-(X+w, Y+h) because n is drawn with its own transform.
//
// A cached node re-renders on the next draw after it or any descendant is
// invalidated. ClearCache restores the previous draw strategy.
func (n *Node) Cache(b Backend, w, h float64) *Node {
	if w == 0 {
		w = n.Width
	}
	if h == 0 {
		h = n.Height
	}
	n.ClearCache()

	cw := max(1, int(math.Ceil(n.X+w)))
	ch := max(1, int(math.Ceil(n.Y+h)))
	n.cache = &cacheState{
		canvas: b.NewCanvas(cw, ch),
		prev:   n.Drawer,
		w:      w,
		h:      h,
	}
	n.renderCache()
	n.Drawer = DrawCache
	return n
}

// ClearCache restores the draw strategy that was active before Cache.
func (n *Node) ClearCache() *Node {
	if n.cache == nil {
		return n
	}
	n.Drawer = n.cache.prev
	n.cache = nil
	return n
}

// IsCached reports whether n is drawn from a cached bitmap.
func (n *Node) IsCached() bool {
	return n.cache != nil
}

// renderCache repaints the cache canvas with the saved strategy. The dirty
// flag is cleared first so changes made while painting (frame advance,
// tween steps) schedule another render.
func (n *Node) renderCache() {
	c := n.cache
	n.dirty = false
	c.canvas.Clear()
	c.prev(n, c.canvas)
}

// DrawCache blits the node's cached bitmap, re-rendering it first if the
// node is dirty.
func DrawCache(n *Node, s Surface) {
	c := n.cache
	if c == nil {
		DrawDefault(n, s)
		return
	}
	if n.dirty {
		n.renderCache()
	}
	s.DrawImage(c.canvas, n.X, n.Y, c.w, c.h, n.X, n.Y, c.w, c.h)
}
