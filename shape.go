package reel

import "math"

// NewRect creates a filled and stroked rectangle of size w×h.
func NewRect(name string, w, h float64) *Node {
	n := &Node{Name: name, Type: NodeTypeShape, Width: w, Height: h}
	nodeDefaults(n)
	n.Painter = PaintRect
	return n
}

// NewCircle creates a circle of radius r centered on the node's origin.
func NewCircle(name string, r float64) *Node {
	n := &Node{Name: name, Type: NodeTypeShape, Radius: r, Width: 2 * r, Height: 2 * r}
	nodeDefaults(n)
	n.Painter = PaintCircle
	n.HitTester = HitCircle
	n.CollisionTester = TestCircle
	n.CollisionQuerier = QueryCircle
	return n
}

// NewPolygon creates a closed convex polygon through points. Width and
// Height are set to the extent of the points from the origin.
func NewPolygon(name string, points []Vec2) *Node {
	n := &Node{Name: name, Type: NodeTypeShape, Points: points}
	nodeDefaults(n)
	n.Painter = PaintPolygon
	n.HitTester = HitPolygon
	n.CalculateNormals()
	for _, p := range points {
		n.Width = max(n.Width, p.X)
		n.Height = max(n.Height, p.Y)
	}
	return n
}

// NewRegularPolygon creates a polygon with the given number of sides whose
// vertices lie on a circle of radius r.
func NewRegularPolygon(name string, sides int, r float64) *Node {
	angle := 2 * math.Pi / float64(sides)
	points := make([]Vec2, 0, sides)
	a := angle
	for range sides {
		points = append(points, Vec2{math.Cos(a) * r, math.Sin(a) * r})
		a += angle
	}
	n := NewPolygon(name, points)
	n.Radius = r
	return n
}

// NewLine creates a line from (CX, CY) to (x2, y2).
func NewLine(name string, x2, y2 float64) *Node {
	n := &Node{Name: name, Type: NodeTypeShape, X2: x2, Y2: y2}
	nodeDefaults(n)
	n.Painter = PaintLine
	n.HitTester = HitNone
	return n
}

// NewDot creates a single stroked point. Its color channels drive the stroke.
func NewDot(name string, lineWidth float64) *Node {
	n := &Node{Name: name, Type: NodeTypeShape, LineWidth: lineWidth, Width: 1, Height: 1}
	nodeDefaults(n)
	n.Painter = PaintDot
	n.colorStroke = true
	return n
}

// CalculateNormals recomputes the unit edge normals of the polygon. Call it
// after editing Points.
func (n *Node) CalculateNormals() {
	l := len(n.Points)
	n.normals = n.normals[:0]
	for i, p := range n.Points {
		q := n.Points[(i+1)%l]
		dx, dy := q.X-p.X, q.Y-p.Y
		mag := math.Hypot(dx, dy)
		if mag == 0 {
			n.normals = append(n.normals, Vec2{})
			continue
		}
		n.normals = append(n.normals, Vec2{dy / mag, -dx / mag})
	}
}

// Normals returns the polygon's unit edge normals.
func (n *Node) Normals() []Vec2 {
	return n.normals
}

// --- Color channels ---

// shapeColor returns the style the Red/Green/Blue channels control, creating
// an opaque black one if it is unset.
func (n *Node) shapeColor() *Color {
	target := &n.Fill
	if n.colorStroke {
		target = &n.Stroke
	}
	if *target == nil {
		c := ColorBlack
		*target = &c
	}
	return *target
}

// Red returns the red channel of the shape color in 0-255.
func (n *Node) Red() float64 { return n.shapeColor().R * 255 }

// Green returns the green channel of the shape color in 0-255.
func (n *Node) Green() float64 { return n.shapeColor().G * 255 }

// Blue returns the blue channel of the shape color in 0-255.
func (n *Node) Blue() float64 { return n.shapeColor().B * 255 }

// SetRed sets the red channel of the shape color from a 0-255 value.
func (n *Node) SetRed(v float64) *Node {
	n.shapeColor().R = math.Floor(v) / 255
	return n.Invalidate()
}

// SetGreen sets the green channel of the shape color from a 0-255 value.
func (n *Node) SetGreen(v float64) *Node {
	n.shapeColor().G = math.Floor(v) / 255
	return n.Invalidate()
}

// SetBlue sets the blue channel of the shape color from a 0-255 value.
func (n *Node) SetBlue(v float64) *Node {
	n.shapeColor().B = math.Floor(v) / 255
	return n.Invalidate()
}

// --- Paint strategies ---

func paintPath(s Surface, path func()) {
	s.BeginPath()
	path()
	s.ClosePath()
	s.Fill()
	s.Stroke()
}

// PaintRect fills and strokes the node's bounds at (CX, CY).
func PaintRect(n *Node, s Surface) {
	s.FillRect(n.CX, n.CY, n.Width, n.Height)
	s.StrokeRect(n.CX, n.CY, n.Width, n.Height)
}

// PaintCircle fills and strokes a circle of Radius around (CX, CY).
func PaintCircle(n *Node, s Surface) {
	paintPath(s, func() {
		s.Arc(n.CX, n.CY, n.Radius, 0, 2*math.Pi)
	})
}

// PaintPolygon fills and strokes the polygon outline.
func PaintPolygon(n *Node, s Surface) {
	if len(n.Points) == 0 {
		return
	}
	paintPath(s, func() {
		s.MoveTo(n.Points[0].X, n.Points[0].Y)
		for _, p := range n.Points[1:] {
			s.LineTo(p.X, p.Y)
		}
	})
}

// PaintLine strokes a segment from (CX, CY) to (X2, Y2).
func PaintLine(n *Node, s Surface) {
	paintPath(s, func() {
		s.MoveTo(n.CX, n.CY)
		s.LineTo(n.X2, n.Y2)
	})
}

// PaintDot strokes a 1×1 square at the origin.
func PaintDot(_ *Node, s Surface) {
	s.StrokeRect(0, 0, 1, 1)
}
