package reel

// Begin saves the surface state and applies n's alpha, styles and transform.
func (n *Node) Begin(s Surface) {
	n.drawing = true
	s.Save()

	if n.Alpha != 1 {
		s.MultiplyAlpha(n.Alpha)
	}
	if n.Fill != nil {
		s.SetFill(*n.Fill)
	}
	if n.Stroke != nil {
		s.SetStroke(*n.Stroke)
	}
	if n.Font != "" {
		s.SetFont(n.Font)
	}
	if n.Blend != BlendInherit {
		s.SetBlend(n.Blend)
	}
	if n.LineWidth != 0 {
		s.SetLineWidth(n.LineWidth)
	}

	s.Transform(n.m.A, n.m.B, n.m.C, n.m.D, n.X, n.Y)
}

// End restores the surface state saved by Begin.
func (n *Node) End(s Surface) {
	s.Restore()
	n.drawing = false
}

// --- Draw strategies ---

// DrawVoid draws nothing.
func DrawVoid(*Node, Surface) {}

// DrawDefault saves state, applies the node transform, paints and restores.
func DrawDefault(n *Node, s Surface) {
	n.Begin(s)
	n.Paint(s)
	n.End(s)
}

// DrawNoTransform paints without touching the surface state. Use it for
// nodes whose transform is already resolved by the caller.
func DrawNoTransform(n *Node, s Surface) {
	n.Paint(s)
}

// DrawFastImage blits the node's source at (X, Y) with no other transform.
func DrawFastImage(n *Node, s Surface) {
	w, h := imageSize(n.Source)
	s.DrawImage(n.Source, 0, 0, w, h, n.X, n.Y, w, h)
}

// DrawRoot renders the node into its stage's render canvas, then blits the
// result onto s. Nodes that are not a stage root fall back to DrawDefault.
func DrawRoot(n *Node, s Surface) {
	st := n.stage
	if st == nil || st.canvas == nil {
		DrawDefault(n, s)
		return
	}
	c := st.canvas
	w, h := float64(c.Width()), float64(c.Height())

	c.ClearRect(0, 0, w, h)
	n.Begin(c)
	n.Paint(c)
	n.End(c)

	s.ClearRect(0, 0, w, h)
	s.DrawImage(c, 0, 0, w, h, 0, 0, w, h)
}

// --- Paint strategies ---

// PaintVoid paints nothing.
func PaintVoid(*Node, Surface) {}

// PaintContainer draws every child of the current frame in list order, then
// advances the frame if the clip is playing. The successor is captured before
// each child is drawn, so a child may remove itself.
func PaintContainer(n *Node, s Surface) {
	if len(n.frames) > 0 {
		frame := n.frames[n.current]
		for c := frame.next; c != frame; {
			next := c.next
			c.Draw(s)
			c = next
		}
	}
	if n.playing {
		n.NextFrame()
	}
}

// PaintImage paints the node's source at (CX, CY), unscaled.
func PaintImage(n *Node, s Surface) {
	if n.Source == nil {
		return
	}
	w, h := imageSize(n.Source)
	s.DrawImage(n.Source, 0, 0, w, h, n.CX, n.CY, w, h)
}

// PaintSprite paints the node's spritesheet slice at (CX, CY), stretched to
// Width and Height when they are set.
func PaintSprite(n *Node, s Surface) {
	sl := n.Slice
	if sl == nil || sl.Image == nil {
		return
	}
	w, h := n.Width, n.Height
	if w == 0 {
		w = sl.W
	}
	if h == 0 {
		h = sl.H
	}
	s.DrawImage(sl.Image, sl.X, sl.Y, sl.W, sl.H, n.CX, n.CY, w, h)
}
