package reel

import "strings"

// defaultLineHeight is the line advance used by PaintMultilineText when the
// node's LineHeight is zero.
const defaultLineHeight = 12

// NewText creates a node that fills text at (CX, CY). Lines separated by
// '\n' are painted one under the other.
func NewText(name, text string) *Node {
	n := &Node{Name: name, Type: NodeTypeText, Text: text, LineHeight: defaultLineHeight}
	nodeDefaults(n)
	n.Painter = PaintText
	if strings.ContainsRune(text, '\n') {
		n.Painter = PaintMultilineText
	}
	return n
}

// SetText replaces the node's text.
func (n *Node) SetText(text string) *Node {
	n.Text = text
	return n.Invalidate()
}

// TextWidth measures the node's text on s with the node's own styles
// applied.
func (n *Node) TextWidth(s Surface) float64 {
	n.Begin(s)
	w := s.MeasureText(n.Text)
	n.End(s)
	return w
}

// PaintText fills the text at (CX, CY).
func PaintText(n *Node, s Surface) {
	s.FillText(n.Text, n.CX, n.CY)
}

// PaintMultilineText fills each line of the text, advancing LineHeight
// between lines.
func PaintMultilineText(n *Node, s Surface) {
	lh := n.LineHeight
	if lh == 0 {
		lh = defaultLineHeight
	}
	y := 0.0
	for line := range strings.SplitSeq(n.Text, "\n") {
		s.FillText(line, n.CX, n.CY+y)
		y += lh
	}
}

// PaintTextStroke strokes the text outline at (CX, CY).
func PaintTextStroke(n *Node, s Surface) {
	s.StrokeText(n.Text, n.CX, n.CY)
}
