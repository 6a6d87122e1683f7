package reel

import "math"

// Body is the axis-aligned geometry collision strategies work on: a box at
// (X, Y) of Width×Height, and a Radius around (X, Y) for circles. Rotation
// and scale are not applied.
type Body struct {
	Node                *Node
	X, Y, Width, Height float64
	Radius              float64
}

// Body returns n's collision geometry in its parent's space.
func (n *Node) Body() Body {
	return Body{Node: n, X: n.X, Y: n.Y, Width: n.Width, Height: n.Height, Radius: n.Radius}
}

func (b Body) offset(dx, dy float64) Body {
	b.X += dx
	b.Y += dy
	return b
}

// Collision is a resolved contact between A and B. The normal (NX, NY)
// points from A toward B and Penetration is the overlap depth along it.
type Collision struct {
	A, B *Node

	NX, NY      float64
	Penetration float64
	Contacts    int

	// TX, TY is the separation of the two centers, B minus A.
	TX, TY float64

	// Overlap is the intersection of the two boxes (AABB only).
	Overlap Rect
}

// Reverse returns the same contact seen from B.
func (c Collision) Reverse() Collision {
	c.A, c.B = c.B, c.A
	c.NX, c.NY = -c.NX, -c.NY
	c.TX, c.TY = -c.TX, -c.TY
	return c
}

// --- Test strategies ---

// TestAABB reports whether the boxes of n and b overlap. Touching edges
// count as overlapping.
func TestAABB(n *Node, b Body) bool {
	a := Rect{n.X, n.Y, n.Width, n.Height}
	return a.Intersects(Rect{b.X, b.Y, b.Width, b.Height})
}

// TestCircle reports whether the circles of n and b overlap.
func TestCircle(n *Node, b Body) bool {
	r := n.Radius + b.Radius
	dx := n.X - b.X
	dy := n.Y - b.Y
	return r*r > dx*dx+dy*dy
}

// TestContainer tests b against the current frame's children in list order,
// with b moved into the container's space. Stops at the first overlap.
func TestContainer(n *Node, b Body) bool {
	if len(n.frames) == 0 {
		return false
	}
	local := b.offset(-n.X, -n.Y)
	frame := n.frames[n.current]
	for c := frame.next; c != frame; c = c.next {
		if c.CollisionTester != nil && c.CollisionTester(c, local) {
			return true
		}
	}
	return false
}

// --- Query strategies ---

// QueryAABB resolves an overlap of two boxes along the axis of least
// overlap. The normal is ±1 on exactly one axis. Touching edges do not
// collide.
func QueryAABB(n *Node, b Body) (Collision, bool) {
	r1 := n.X + n.Width
	b1 := n.Y + n.Height
	r2 := b.X + b.Width
	b2 := b.Y + b.Height
	if b.X >= r1 || r2 <= n.X || b.Y >= b1 || b2 <= n.Y {
		return Collision{}, false
	}

	c := Collision{A: n, B: b.Node, Contacts: 2}
	c.TX = (b.X + b.Width/2) - (n.X + n.Width/2)
	c.TY = (b.Y + b.Height/2) - (n.Y + n.Height/2)

	left, top := max(n.X, b.X), max(n.Y, b.Y)
	right, bottom := min(r1, r2), min(b1, b2)
	c.Overlap = Rect{X: left, Y: top, Width: right - left, Height: bottom - top}

	if c.Overlap.Width < c.Overlap.Height {
		if c.TX < 0 {
			c.NX = -1
			c.Penetration = right - n.X
		} else {
			c.NX = 1
			c.Penetration = r1 - left
		}
	} else {
		if c.TY < 0 {
			c.NY = -1
			c.Penetration = bottom - n.Y
		} else {
			c.NY = 1
			c.Penetration = b1 - top
		}
	}
	return c, true
}

// QueryCircle resolves an overlap of two circles centered on their
// positions. The normal is the unit vector from A's center to B's, or
// (1, 0) when the centers coincide. Penetration is rA + rB minus the
// distance between centers.
func QueryCircle(n *Node, b Body) (Collision, bool) {
	r := n.Radius + b.Radius
	dx := b.X - n.X
	dy := b.Y - n.Y
	d2 := dx*dx + dy*dy
	if r*r <= d2 {
		return Collision{}, false
	}

	c := Collision{A: n, B: b.Node, TX: dx, TY: dy, Contacts: 1, NX: 1}
	dist := math.Sqrt(d2)
	if dist > 0 {
		c.NX, c.NY = dx/dist, dy/dist
	}
	c.Penetration = r - dist
	return c, true
}

// QueryContainer queries b against the current frame's children in list
// order, with b moved into the container's space, and returns the first
// contact. The contact's A is the child that was hit, and its geometry is
// in the container's space.
func QueryContainer(n *Node, b Body) (Collision, bool) {
	if len(n.frames) == 0 {
		return Collision{}, false
	}
	local := b.offset(-n.X, -n.Y)
	frame := n.frames[n.current]
	for c := frame.next; c != frame; c = c.next {
		if c.CollisionQuerier == nil {
			continue
		}
		if coll, ok := c.CollisionQuerier(c, local); ok {
			return coll, true
		}
	}
	return Collision{}, false
}

// --- Collider ---

// CollisionSink receives every contact found by a Collider on a stage.
type CollisionSink interface {
	Publish(c Collision)
}

// Collider queries Subject against Target once per tick. Add it to a clip
// like any other node. When Target is a clip, Subject is tested against its
// children; the reported contact always has Subject as A.
type Collider struct {
	Subject *Node
	Target  *Node

	// OnCollision is called for every contact, before it is published to
	// the stage's CollisionSink.
	OnCollision func(c Collision)

	node *Node
	last Collision
	hit  bool
}

// NewCollider creates a collider of subject against target.
func NewCollider(subject, target *Node, fn func(Collision)) *Collider {
	cl := &Collider{Subject: subject, Target: target, OnCollision: fn}
	n := &Node{Type: NodeTypeCollider, collider: cl}
	nodeDefaults(n)
	n.Drawer = drawCollider
	n.HitTester = HitNone
	n.CollisionTester = nil
	n.CollisionQuerier = nil
	cl.node = n
	return cl
}

func (cl *Collider) addTo(c *Node) error {
	if cl == nil {
		return ErrInvalidInput
	}
	c.AddChild(cl.node)
	return nil
}

// Node returns the node that carries the collider in a clip.
func (cl *Collider) Node() *Node {
	return cl.node
}

// Last returns the contact found on the most recent tick, if any.
func (cl *Collider) Last() (Collision, bool) {
	return cl.last, cl.hit
}

// Check runs one query and dispatches the contact.
func (cl *Collider) Check() (Collision, bool) {
	cl.last, cl.hit = cl.query()
	if !cl.hit {
		return cl.last, false
	}
	if cl.OnCollision != nil {
		cl.OnCollision(cl.last)
	}
	if st := cl.node.Stage(); st != nil && st.sink != nil {
		st.sink.Publish(cl.last)
	}
	return cl.last, true
}

func (cl *Collider) query() (Collision, bool) {
	if cl.Subject == nil || cl.Target == nil {
		return Collision{}, false
	}
	if cl.Target.IsClip() {
		c, ok := cl.Target.Query(cl.Subject)
		if !ok {
			return c, false
		}
		return c.Reverse(), true
	}
	return cl.Subject.Query(cl.Target)
}

func drawCollider(n *Node, _ Surface) {
	n.collider.Check()
}
