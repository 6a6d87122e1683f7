package reel

// NewImage creates a node that paints img at (CX, CY). Width and Height
// default to the image size.
func NewImage(name string, img Image) *Node {
	n := &Node{Name: name, Type: NodeTypeImage, Source: img}
	nodeDefaults(n)
	n.Width, n.Height = imageSize(img)
	n.Painter = PaintImage
	return n
}

// NewSprite creates a node that paints one spritesheet slice. Width and
// Height default to the slice size; setting them stretches the slice.
func NewSprite(name string, sl *Slice) *Node {
	n := &Node{Name: name, Type: NodeTypeSprite, Slice: sl}
	nodeDefaults(n)
	if sl != nil {
		n.Width, n.Height = sl.W, sl.H
	}
	n.Painter = PaintSprite
	return n
}

// SetSource replaces the image a node paints and resizes it to match.
func (n *Node) SetSource(img Image) *Node {
	n.Source = img
	n.Width, n.Height = imageSize(img)
	return n.Invalidate()
}

// SetSlice replaces the slice a sprite paints.
func (n *Node) SetSlice(sl *Slice) *Node {
	n.Slice = sl
	return n.Invalidate()
}
