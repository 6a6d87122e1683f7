package reel

// DrawFunc draws a node onto a surface: typically begin, paint, end.
type DrawFunc func(n *Node, s Surface)

// PaintFunc paints a node's content after its transform is applied.
type PaintFunc func(n *Node, s Surface)

// HitTestFunc reports the node under the stage-space point (x, y). m is the
// inherited world matrix, or nil at the top of the walk. Returns nil when
// nothing is hit.
type HitTestFunc func(n *Node, x, y float64, m *Matrix) *Node

// CollisionTestFunc reports whether n overlaps b.
type CollisionTestFunc func(n *Node, b Body) bool

// CollisionQueryFunc resolves a contact between n and b.
type CollisionQueryFunc func(n *Node, b Body) (Collision, bool)

// nodeIDCounter is a plain counter (no atomic — reel is single-threaded).
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// Node is a display object: any transformable, drawable, hit-testable scene
// element. A single flat struct is used for every kind of node; what a node
// does is decided by its strategy fields, which may be swapped at runtime.
type Node struct {
	// Identity
	ID   uint32
	Name string
	Type NodeType

	// Circular list linkage. parent and prev are cleared on Remove; next is
	// left pointing at the former successor so an in-progress walk can resume.
	parent     *Node
	prev, next *Node
	frame      *Node // sentinel of the list n is in
	size       int   // child count, frame sentinels only

	// Transform
	X, Y          float64
	CX, CY        float64 // paint offset inside the node's own space
	Width, Height float64
	Radius        float64
	rotation      float64
	m             MatrixLite
	Alpha         float64

	// Style, applied by Begin when set.
	Fill      *Color
	Stroke    *Color
	LineWidth float64
	Font      string
	Blend     BlendMode

	// Strategies
	Drawer           DrawFunc
	Painter          PaintFunc
	HitTester        HitTestFunc
	CollisionTester  CollisionTestFunc
	CollisionQuerier CollisionQueryFunc

	// Values holds custom numeric properties. Tweens fall back to it for
	// property names that are not built in.
	Values   map[string]float64
	UserData any

	// Image and sprite content
	Source Image
	Slice  *Slice

	// Text content
	Text       string
	LineHeight float64

	// Shape geometry
	Points      []Vec2
	normals     []Vec2
	X2, Y2      float64
	colorStroke bool // Red/Green/Blue write the stroke instead of the fill

	// Clip state
	frames  []*Node
	current int
	playing bool

	// Kind-specific state
	action   Callback
	tilemap  *TileMap
	emitter  *Emitter
	particle *particle
	tween    *Tween
	collider *Collider
	cache    *cacheState
	stage    *Stage

	dirty   bool
	drawing bool
}

// nodeDefaults sets the common default field values shared by all constructors.
func nodeDefaults(n *Node) {
	n.ID = nextNodeID()
	n.Alpha = 1
	n.m = NewMatrixLite()
	n.Drawer = DrawDefault
	n.Painter = PaintVoid
	n.HitTester = HitRect
	n.CollisionTester = TestAABB
	n.CollisionQuerier = QueryAABB
	n.dirty = true
}

// NewNode creates a plain display object that paints nothing. Assign a
// Painter to give it content.
func NewNode(name string) *Node {
	n := &Node{Name: name, Type: NodeTypeShape}
	nodeDefaults(n)
	return n
}

// --- Strategy dispatch ---

// Draw renders the node using its current draw strategy.
func (n *Node) Draw(s Surface) {
	if globalDebug {
		debugStatsCurrent.nodes++
	}
	n.Drawer(n, s)
}

// Paint paints the node's content using its current paint strategy.
func (n *Node) Paint(s Surface) {
	n.Painter(n, s)
}

// At returns the node under the stage-space point (x, y), or nil.
func (n *Node) At(x, y float64, m *Matrix) *Node {
	if n.HitTester == nil {
		return nil
	}
	return n.HitTester(n, x, y, m)
}

// Collides reports whether n overlaps other.
func (n *Node) Collides(other *Node) bool {
	if n.CollisionTester == nil || other == nil {
		return false
	}
	return n.CollisionTester(n, other.Body())
}

// Query resolves a contact between n and other.
func (n *Node) Query(other *Node) (Collision, bool) {
	if n.CollisionQuerier == nil || other == nil {
		return Collision{}, false
	}
	return n.CollisionQuerier(n, other.Body())
}

// --- Hierarchy ---

// Parent returns the clip that currently owns n, or nil.
func (n *Node) Parent() *Node {
	return n.parent
}

// Remove unlinks n from its frame in O(1). No-op if n has no parent.
func (n *Node) Remove() *Node {
	if n.parent == nil {
		return n
	}
	if n.tween != nil {
		n.tween.removed()
	}
	n.unlink()
	return n
}

// unlink splices n out of its parent's list without notifying anyone.
func (n *Node) unlink() {
	n.prev.next = n.next
	n.next.prev = n.prev
	n.frame.size--
	p := n.parent
	n.parent = nil
	n.prev = nil
	n.frame = nil
	p.Invalidate()
}

// Stage returns the stage whose root is an ancestor of n, or nil.
func (n *Node) Stage() *Stage {
	for p := n; p != nil; p = p.parent {
		if p.stage != nil {
			return p.stage
		}
	}
	return nil
}

// isAncestor reports whether candidate is n or an ancestor of n.
func isAncestor(candidate, n *Node) bool {
	for p := n; p != nil; p = p.parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// --- Dirty tracking ---

// Invalidate marks n and every ancestor dirty. Cached nodes re-render on
// their next draw. Setters call this; call it yourself after writing
// fields such as X or Width directly.
func (n *Node) Invalidate() *Node {
	for p := n; p != nil; p = p.parent {
		p.dirty = true
	}
	return n
}

// IsDirty reports whether n changed since it was last cached.
func (n *Node) IsDirty() bool {
	return n.dirty
}

// IsDrawing reports whether n is between Begin and End.
func (n *Node) IsDrawing() bool {
	return n.drawing
}

// --- Transform properties ---

// Matrix returns the node's rotation/scale matrix.
func (n *Node) Matrix() MatrixLite {
	return n.m
}

// LocalMatrix returns the node's full affine transform relative to its parent.
func (n *Node) LocalMatrix() Matrix {
	return n.m.ToMatrix(n.X, n.Y)
}

// WorldMatrix composes the parent chain root-to-leaf into n's stage-space
// transform.
func (n *Node) WorldMatrix() Matrix {
	if n.parent == nil {
		return n.LocalMatrix()
	}
	return n.parent.WorldMatrix().Product(n.m.ToMatrix(0, 0), n.X, n.Y)
}

// Rotation returns the rotation in radians.
func (n *Node) Rotation() float64 {
	return n.rotation
}

// SetRotation sets the rotation in radians.
func (n *Node) SetRotation(r float64) *Node {
	n.rotation = r
	n.m.SetRotation(r)
	return n.Invalidate()
}

// Rotate adds a radians to the rotation.
func (n *Node) Rotate(a float64) *Node {
	return n.SetRotation(n.rotation + a)
}

// ScaleX returns the horizontal scale.
func (n *Node) ScaleX() float64 {
	return n.m.ScaleX()
}

// ScaleY returns the vertical scale.
func (n *Node) ScaleY() float64 {
	return n.m.ScaleY()
}

// SetScaleX sets the horizontal scale.
func (n *Node) SetScaleX(sx float64) *Node {
	n.m.SetScaleX(sx)
	return n.Invalidate()
}

// SetScaleY sets the vertical scale.
func (n *Node) SetScaleY(sy float64) *Node {
	n.m.SetScaleY(sy)
	return n.Invalidate()
}

// SetScale sets both scale factors.
func (n *Node) SetScale(sx, sy float64) *Node {
	n.m.Scale(sx, sy)
	return n.Invalidate()
}

// Stretch scales n so it covers w×h.
func (n *Node) Stretch(w, h float64) *Node {
	return n.SetScale(w/n.Width, h/n.Height)
}

// Pos sets X and Y.
func (n *Node) Pos(x, y float64) *Node {
	n.X = x
	n.Y = y
	return n.Invalidate()
}

// Move offsets the position by (dx, dy).
func (n *Node) Move(dx, dy float64) *Node {
	return n.Pos(n.X+dx, n.Y+dy)
}

// Size sets Width and Height.
func (n *Node) Size(w, h float64) *Node {
	n.Width = w
	n.Height = h
	return n.Invalidate()
}

// SetAlpha sets the node's alpha.
func (n *Node) SetAlpha(a float64) *Node {
	n.Alpha = a
	return n.Invalidate()
}

// Visible reports whether the node would produce any output.
func (n *Node) Visible() bool {
	return n.Alpha > 0
}

// SetFill sets the fill style used by n and its descendants.
func (n *Node) SetFill(c Color) *Node {
	n.Fill = &c
	return n.Invalidate()
}

// SetStroke sets the stroke style used by n and its descendants.
func (n *Node) SetStroke(c Color) *Node {
	n.Stroke = &c
	return n.Invalidate()
}

// Alignment positions a node relative to a container.
type Alignment uint8

const (
	AlignCenter       Alignment = iota + 1 // x at container center
	AlignLeft                              // x at 0
	AlignRight                             // right edge at container's right edge
	AlignMiddle                            // y at container middle
	AlignCenterMiddle                      // both axes centered
	AlignOrigin                            // node centered on its own origin
	AlignOriginTop                         // bottom-center on origin
	AlignOriginBottom                      // top-center on origin
)

// Align positions n relative to container, or its parent when container is nil.
func (n *Node) Align(a Alignment, container *Node) *Node {
	if container == nil {
		container = n.parent
	}
	if container == nil {
		return n
	}
	switch a {
	case AlignCenter:
		n.X = container.Width / 2
	case AlignLeft:
		n.X = 0
	case AlignRight:
		n.X = container.Width - n.Width
	case AlignMiddle:
		n.Y = container.Height / 2
	case AlignCenterMiddle:
		n.X, n.Y = container.Width/2, container.Height/2
	case AlignOrigin:
		n.X, n.Y = -n.Width/2, -n.Height/2
	case AlignOriginTop:
		n.X, n.Y = -n.Width/2, -n.Height
	case AlignOriginBottom:
		n.X, n.Y = -n.Width/2, 0
	}
	return n.Invalidate()
}

// ToClip encloses n in a new clip of the same size.
func (n *Node) ToClip() *Node {
	c := NewClip(n.Name)
	c.Width, c.Height = n.Width, n.Height
	c.AddChild(n)
	return c
}
