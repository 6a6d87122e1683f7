package reel

// NewAction creates a node that calls fn with itself every time its clip is
// painted. Actions draw nothing and never hit or collide. Remove the node to
// stop it.
func NewAction(name string, fn Callback) *Node {
	n := &Node{Name: name, Type: NodeTypeAction, action: fn}
	nodeDefaults(n)
	n.Drawer = drawAction
	n.HitTester = HitNone
	n.CollisionTester = nil
	n.CollisionQuerier = nil
	return n
}

func drawAction(n *Node, _ Surface) {
	if n.action != nil {
		n.action(n)
	}
}

// RotateForever returns a callback that turns obj clockwise by 0.1 radians
// per tick, wrapping back to zero once past 6.1.
func RotateForever(obj *Node) Callback {
	return func(*Node) {
		if obj.Rotation() < 6.1 {
			obj.Rotate(0.1)
		} else {
			obj.SetRotation(0)
		}
	}
}
