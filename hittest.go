package reel

// worldFor composes the inherited matrix m with n's own transform. A nil m
// means n is the top of the walk.
func worldFor(n *Node, m *Matrix) Matrix {
	if m == nil {
		return n.m.ToMatrix(n.X, n.Y)
	}
	return m.Product(n.m.ToMatrix(0, 0), n.X, n.Y)
}

// HitNone never reports a hit.
func HitNone(*Node, float64, float64, *Matrix) *Node {
	return nil
}

// HitRect hits when the local point lies in [0, Width) x [0, Height).
func HitRect(n *Node, x, y float64, m *Matrix) *Node {
	w := worldFor(n, m)
	lx, ly := w.ToClient(x, y)
	if (Rect{Width: n.Width, Height: n.Height}).Contains(lx, ly) {
		return n
	}
	return nil
}

// HitCircle hits when the local point lies within Radius of the origin.
func HitCircle(n *Node, x, y float64, m *Matrix) *Node {
	w := worldFor(n, m)
	lx, ly := w.ToClient(x, y)
	if lx*lx+ly*ly <= n.Radius*n.Radius {
		return n
	}
	return nil
}

// HitPolygon hits when the local point is on the inner side of every edge
// normal. The polygon must be convex.
func HitPolygon(n *Node, x, y float64, m *Matrix) *Node {
	if len(n.Points) == 0 {
		return nil
	}
	if len(n.normals) != len(n.Points) {
		n.CalculateNormals()
	}
	w := worldFor(n, m)
	lx, ly := w.ToClient(x, y)
	for i, p := range n.Points {
		nv := n.normals[i]
		if nv.X*(lx-p.X)+nv.Y*(ly-p.Y) > 0 {
			return nil
		}
	}
	return n
}

// HitContainer tests the current frame's children from topmost to
// bottommost and returns the first hit.
func HitContainer(n *Node, x, y float64, m *Matrix) *Node {
	if len(n.frames) == 0 {
		return nil
	}
	w := worldFor(n, m)
	frame := n.frames[n.current]
	for c := frame.prev; c != frame; c = c.prev {
		if hit := c.At(x, y, &w); hit != nil {
			return hit
		}
	}
	return nil
}
