package reel

import "fmt"

// AddInput is anything that can be added to a clip. It is a closed set:
// *Node, *Tween, *Collider, ImageSource, Callback and Sequence. Each
// resolves to one or more concrete nodes before insertion.
type AddInput interface {
	addTo(c *Node) error
}

// ImageSource adds an Image wrapped in a new image node.
type ImageSource struct {
	Image Image
}

// Callback adds a per-tick action node that calls the function with itself.
type Callback func(self *Node)

// Sequence adds each element in order.
type Sequence []AddInput

func (n *Node) addTo(c *Node) error {
	if n == nil {
		return ErrInvalidInput
	}
	c.AddChild(n)
	return nil
}

func (src ImageSource) addTo(c *Node) error {
	if src.Image == nil {
		return ErrInvalidInput
	}
	c.AddChild(NewImage("", src.Image))
	return nil
}

func (fn Callback) addTo(c *Node) error {
	if fn == nil {
		return ErrInvalidInput
	}
	c.AddChild(NewAction("", fn))
	return nil
}

// addTo rejects the whole sequence before inserting anything if any element,
// at any depth, is nil.
func (seq Sequence) addTo(c *Node) error {
	if err := seq.validate(); err != nil {
		return err
	}
	for i, in := range seq {
		if err := in.addTo(c); err != nil {
			return fmt.Errorf("sequence element %d: %w", i, err)
		}
	}
	return nil
}

func (seq Sequence) validate() error {
	for i, in := range seq {
		var err error
		switch v := in.(type) {
		case nil:
			err = ErrInvalidInput
		case *Node:
			if v == nil {
				err = ErrInvalidInput
			}
		case *Tween:
			if v == nil {
				err = ErrInvalidInput
			}
		case *Collider:
			if v == nil {
				err = ErrInvalidInput
			}
		case ImageSource:
			if v.Image == nil {
				err = ErrInvalidInput
			}
		case Callback:
			if v == nil {
				err = ErrInvalidInput
			}
		case Sequence:
			err = v.validate()
		}
		if err != nil {
			return fmt.Errorf("sequence element %d: %w", i, err)
		}
	}
	return nil
}

// NewClip creates a clip with one empty frame, playing.
func NewClip(name string) *Node {
	n := &Node{Name: name, Type: NodeTypeClip}
	nodeDefaults(n)
	initClip(n)
	return n
}

// initClip gives n frame storage and container strategies.
func initClip(n *Node) {
	n.frames = make([]*Node, 0, 1)
	n.playing = true
	n.Painter = PaintContainer
	n.HitTester = HitContainer
	n.CollisionTester = TestContainer
	n.CollisionQuerier = QueryContainer
	n.AddFrame()
}

// newFrame returns an empty frame sentinel that points to itself.
func newFrame() *Node {
	f := &Node{Type: nodeTypeFrame}
	f.prev = f
	f.next = f
	return f
}

// IsClip reports whether n can hold children.
func (n *Node) IsClip() bool {
	return n.frames != nil
}

// Add inserts in into the current frame. Later additions paint on top and
// are hit-tested first. Returns ErrInvalidInput for nil input and
// ErrNotClip when n cannot hold children.
func (n *Node) Add(in AddInput) error {
	if in == nil {
		return fmt.Errorf("add to %q: %w", n.Name, ErrInvalidInput)
	}
	if !n.IsClip() {
		return fmt.Errorf("add to %q: %w", n.Name, ErrNotClip)
	}
	if err := in.addTo(n); err != nil {
		return fmt.Errorf("add to %q: %w", n.Name, err)
	}
	return nil
}

// AddChild splices child into the tail of the current frame in O(1).
// If child already has a parent, it is removed from it first.
// Panics if child is nil, n is not a clip, or child is an ancestor of n.
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("reel: cannot add nil child")
	}
	if !n.IsClip() {
		panic(fmt.Sprintf("reel: cannot add child to non-clip node %q", n.Name))
	}
	if isAncestor(child, n) {
		panic("reel: adding child would create a cycle")
	}
	if child.parent != nil {
		child.unlink()
	}
	if len(n.frames) == 0 {
		n.AddFrame()
	}
	frame := n.frames[n.current]
	frame.prev.next = child
	child.prev = frame.prev
	child.next = frame
	child.parent = n
	child.frame = frame
	frame.prev = child
	frame.size++
	n.Invalidate()
	if globalDebug {
		debugCheckTreeDepth(child)
		debugCheckFrameSize(n)
	}
}

// AddFrame appends a new empty frame, makes it current and adds inputs to it.
func (n *Node) AddFrame(inputs ...AddInput) error {
	if !n.IsClip() {
		return fmt.Errorf("add frame to %q: %w", n.Name, ErrNotClip)
	}
	n.frames = append(n.frames, newFrame())
	n.current = len(n.frames) - 1
	for _, in := range inputs {
		if err := n.Add(in); err != nil {
			return err
		}
	}
	return nil
}

// RemoveFrame deletes frame i and moves to the frame before it.
// The frame's children are detached.
func (n *Node) RemoveFrame(i int) {
	if i < 0 || i >= len(n.frames) {
		panic("reel: frame index out of range")
	}
	f := n.frames[i]
	for c := f.next; c != f; {
		next := c.next
		c.parent = nil
		c.prev = nil
		c.frame = nil
		c = next
	}
	copy(n.frames[i:], n.frames[i+1:])
	n.frames[len(n.frames)-1] = nil
	n.frames = n.frames[:len(n.frames)-1]
	n.current = max(i-1, 0)
	n.Invalidate()
}

// Go jumps to frame i.
func (n *Node) Go(i int) *Node {
	if i < 0 || i >= len(n.frames) {
		panic("reel: frame index out of range")
	}
	n.current = i
	return n.Invalidate()
}

// NextFrame advances to (current+1) mod FrameCount and invalidates n and
// its ancestors. A clip with a single frame is left clean.
func (n *Node) NextFrame() {
	if len(n.frames) < 2 {
		return
	}
	n.current++
	if n.current == len(n.frames) {
		n.current = 0
	}
	n.Invalidate()
}

// Frame returns the current frame index.
func (n *Node) Frame() int {
	return n.current
}

// FrameCount returns the number of frames.
func (n *Node) FrameCount() int {
	return len(n.frames)
}

// Play resumes frame advancement.
func (n *Node) Play() *Node {
	n.playing = true
	return n
}

// Stop halts frame advancement.
func (n *Node) Stop() *Node {
	n.playing = false
	return n
}

// IsPlaying reports whether the clip advances frames each tick.
func (n *Node) IsPlaying() bool {
	return n.playing
}

// Children returns the current frame's children in paint order.
func (n *Node) Children() []*Node {
	if len(n.frames) == 0 {
		return nil
	}
	var out []*Node
	f := n.frames[n.current]
	for c := f.next; c != f; c = c.next {
		out = append(out, c)
	}
	return out
}

// Len returns the number of children in the current frame.
func (n *Node) Len() int {
	if len(n.frames) == 0 {
		return 0
	}
	return n.frames[n.current].size
}

// Each calls fn for every child of every frame, last frame first.
// fn may remove the child it is given.
func (n *Node) Each(fn func(*Node)) *Node {
	for i := len(n.frames) - 1; i >= 0; i-- {
		f := n.frames[i]
		for c := f.next; c != f; {
			next := c.next
			fn(c)
			c = next
		}
	}
	return n
}

// AlignChildren aligns every child of every frame.
func (n *Node) AlignChildren(a Alignment) *Node {
	return n.Each(func(c *Node) { c.Align(a, nil) })
}
