package reel

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// --- Images ---

// ebitenSource is implemented by every Image the Ebitengine backend can blit.
type ebitenSource interface {
	EbitenImage() *ebiten.Image
}

// EbitenImage adapts an *ebiten.Image to Image.
type EbitenImage struct {
	img *ebiten.Image
}

// WrapEbitenImage returns img as an Image.
func WrapEbitenImage(img *ebiten.Image) *EbitenImage {
	return &EbitenImage{img: img}
}

func (e *EbitenImage) Width() int { return e.img.Bounds().Dx() }
func (e *EbitenImage) Height() int { return e.img.Bounds().Dy() }
func (e *EbitenImage) EbitenImage() *ebiten.Image { return e.img }

// --- White pixel singleton (no sync.Once; reel is single-threaded) ---

var (
	whiteImage    *ebiten.Image
	whiteSubImage *ebiten.Image
)

// ensureWhiteSubImage returns the inner pixel of a 3x3 white image, used as
// the source texture of filled and stroked paths.
func ensureWhiteSubImage() *ebiten.Image {
	if whiteSubImage == nil {
		whiteImage = ebiten.NewImage(3, 3)
		whiteImage.Fill(color.White)
		whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

// --- Backend ---

// EbitenBackend creates canvases backed by *ebiten.Image and holds the
// fonts they draw text with.
type EbitenBackend struct {
	// Smoothing selects linear filtering for scaled image blits.
	Smoothing bool

	fonts       map[string]text.Face
	defaultFace text.Face
}

// NewEbitenBackend returns a backend whose default font is the 7x13 bitmap
// face from golang.org/x/image.
func NewEbitenBackend() *EbitenBackend {
	return &EbitenBackend{
		fonts:       make(map[string]text.Face),
		defaultFace: text.NewGoXFace(basicfont.Face7x13),
	}
}

// NewCanvas returns a w×h transparent canvas.
func (b *EbitenBackend) NewCanvas(w, h int) Canvas {
	return b.newCanvas(ebiten.NewImage(w, h))
}

func (b *EbitenBackend) newCanvas(img *ebiten.Image) *EbitenCanvas {
	return &EbitenCanvas{
		img:     img,
		backend: b,
		st:      defaultCanvasState(),
	}
}

// RegisterFont parses TrueType or OpenType data and registers it at size
// under name, for use with Node.Font.
func (b *EbitenBackend) RegisterFont(name string, ttfData []byte, size float64) error {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return fmt.Errorf("reel: failed to parse font %q: %w", name, err)
	}
	b.fonts[name] = &text.GoTextFace{Source: source, Size: size}
	return nil
}

// RegisterFace registers an already-built face under name.
func (b *EbitenBackend) RegisterFace(name string, face text.Face) {
	b.fonts[name] = face
}

func (b *EbitenBackend) face(name string) text.Face {
	if f, ok := b.fonts[name]; ok {
		return f
	}
	return b.defaultFace
}

// --- Canvas ---

type canvasState struct {
	geom      ebiten.GeoM
	alpha     float64
	fill      Color
	stroke    Color
	lineWidth float64
	font      string
	blend     BlendMode
}

// defaultCanvasState matches a fresh 2D canvas context, except that the
// default stroke is transparent.
func defaultCanvasState() canvasState {
	return canvasState{
		alpha:     1,
		fill:      ColorBlack,
		stroke:    ColorTransparent,
		lineWidth: 1,
		blend:     BlendNormal,
	}
}

// EbitenCanvas is a Canvas drawing into an *ebiten.Image.
type EbitenCanvas struct {
	img     *ebiten.Image
	backend *EbitenBackend
	st      canvasState
	stack   []canvasState

	path     vector.Path
	hasPoint bool

	vertices []ebiten.Vertex
	indices  []uint16
}

func (c *EbitenCanvas) Width() int { return c.img.Bounds().Dx() }
func (c *EbitenCanvas) Height() int { return c.img.Bounds().Dy() }
func (c *EbitenCanvas) EbitenImage() *ebiten.Image { return c.img }

// Clear makes every pixel transparent and resets the drawing state.
func (c *EbitenCanvas) Clear() {
	c.img.Clear()
	c.st = defaultCanvasState()
	c.stack = c.stack[:0]
}

func (c *EbitenCanvas) Save() {
	c.stack = append(c.stack, c.st)
}

func (c *EbitenCanvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.st = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

// Transform multiplies the current transform by [a c e; b d f].
func (c *EbitenCanvas) Transform(a, b, cc, d, e, f float64) {
	var m ebiten.GeoM
	m.SetElement(0, 0, a)
	m.SetElement(0, 1, cc)
	m.SetElement(0, 2, e)
	m.SetElement(1, 0, b)
	m.SetElement(1, 1, d)
	m.SetElement(1, 2, f)
	m.Concat(c.st.geom)
	c.st.geom = m
}

func (c *EbitenCanvas) Translate(x, y float64) {
	c.Transform(1, 0, 0, 1, x, y)
}

func (c *EbitenCanvas) MultiplyAlpha(a float64) { c.st.alpha *= a }
func (c *EbitenCanvas) SetFill(col Color) { c.st.fill = col }
func (c *EbitenCanvas) SetStroke(col Color) { c.st.stroke = col }
func (c *EbitenCanvas) SetLineWidth(w float64) { c.st.lineWidth = w }
func (c *EbitenCanvas) SetFont(font string) { c.st.font = font }
func (c *EbitenCanvas) SetBlend(b BlendMode) { c.st.blend = b }

// --- Paths ---

func (c *EbitenCanvas) BeginPath() {
	c.path = vector.Path{}
	c.hasPoint = false
}

func (c *EbitenCanvas) MoveTo(x, y float64) {
	tx, ty := c.st.geom.Apply(x, y)
	c.path.MoveTo(float32(tx), float32(ty))
	c.hasPoint = true
}

func (c *EbitenCanvas) LineTo(x, y float64) {
	if !c.hasPoint {
		c.MoveTo(x, y)
		return
	}
	tx, ty := c.st.geom.Apply(x, y)
	c.path.LineTo(float32(tx), float32(ty))
}

// Arc adds a clockwise arc around (x, y), joined to the current point by a
// straight line. The arc is flattened into segments.
func (c *EbitenCanvas) Arc(x, y, r, start, end float64) {
	sweep := end - start
	segments := max(8, int(math.Ceil(math.Abs(sweep)*max(r, 1)/4)))
	for i := 0; i <= segments; i++ {
		a := start + sweep*float64(i)/float64(segments)
		px, py := x+r*math.Cos(a), y+r*math.Sin(a)
		if i == 0 {
			c.LineTo(px, py)
			continue
		}
		tx, ty := c.st.geom.Apply(px, py)
		c.path.LineTo(float32(tx), float32(ty))
	}
}

func (c *EbitenCanvas) ClosePath() {
	c.path.Close()
}

func (c *EbitenCanvas) Fill() {
	c.vertices, c.indices = c.path.AppendVerticesAndIndicesForFilling(c.vertices[:0], c.indices[:0])
	c.drawVertices(c.st.fill, c.st.blend.EbitenBlend())
}

func (c *EbitenCanvas) Stroke() {
	if c.st.lineWidth <= 0 {
		return
	}
	op := &vector.StrokeOptions{
		Width:      float32(c.st.lineWidth * c.scale()),
		LineJoin:   vector.LineJoinMiter,
		MiterLimit: 10,
	}
	c.vertices, c.indices = c.path.AppendVerticesAndIndicesForStroke(c.vertices[:0], c.indices[:0], op)
	c.drawVertices(c.st.stroke, c.st.blend.EbitenBlend())
}

// scale returns the average linear scale of the current transform.
func (c *EbitenCanvas) scale() float64 {
	a, b := c.st.geom.Element(0, 0), c.st.geom.Element(1, 0)
	cc, d := c.st.geom.Element(0, 1), c.st.geom.Element(1, 1)
	return math.Sqrt(math.Abs(a*d - b*cc))
}

// drawVertices fills the pending triangles with col.
func (c *EbitenCanvas) drawVertices(col Color, blend ebiten.Blend) {
	if len(c.indices) == 0 {
		return
	}
	a := float32(col.A * c.st.alpha)
	if a <= 0 && blend != ebiten.BlendClear {
		return
	}
	for i := range c.vertices {
		v := &c.vertices[i]
		v.SrcX, v.SrcY = 1, 1
		v.ColorR = float32(col.R)
		v.ColorG = float32(col.G)
		v.ColorB = float32(col.B)
		v.ColorA = a
	}
	op := &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
		FillRule:  ebiten.FillRuleNonZero,
		Blend:     blend,
	}
	c.img.DrawTriangles(c.vertices, c.indices, ensureWhiteSubImage(), op)
}

// --- Rectangles ---

func (c *EbitenCanvas) rectPath(x, y, w, h float64) {
	c.BeginPath()
	c.MoveTo(x, y)
	c.LineTo(x+w, y)
	c.LineTo(x+w, y+h)
	c.LineTo(x, y+h)
	c.ClosePath()
}

func (c *EbitenCanvas) FillRect(x, y, w, h float64) {
	saved, had := c.path, c.hasPoint
	c.rectPath(x, y, w, h)
	c.Fill()
	c.path, c.hasPoint = saved, had
}

func (c *EbitenCanvas) StrokeRect(x, y, w, h float64) {
	saved, had := c.path, c.hasPoint
	c.rectPath(x, y, w, h)
	c.Stroke()
	c.path, c.hasPoint = saved, had
}

// ClearRect makes the transformed rectangle transparent.
func (c *EbitenCanvas) ClearRect(x, y, w, h float64) {
	saved, had := c.path, c.hasPoint
	c.rectPath(x, y, w, h)
	c.vertices, c.indices = c.path.AppendVerticesAndIndicesForFilling(c.vertices[:0], c.indices[:0])
	c.drawVertices(ColorTransparent, ebiten.BlendClear)
	c.path, c.hasPoint = saved, had
}

// --- Text ---

// drawText draws s with its alphabetic baseline at (x, y).
func (c *EbitenCanvas) drawText(s string, x, y float64, col Color) {
	face := c.backend.face(c.st.font)
	m := face.Metrics()

	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y-m.HAscent)
	op.GeoM.Concat(c.st.geom)
	a := col.A * c.st.alpha
	op.ColorScale.Scale(float32(col.R*a), float32(col.G*a), float32(col.B*a), float32(a))
	op.Blend = c.st.blend.EbitenBlend()
	text.Draw(c.img, s, face, op)
}

func (c *EbitenCanvas) FillText(s string, x, y float64) {
	c.drawText(s, x, y, c.st.fill)
}

// StrokeText draws s in the stroke color, spread by half the line width in
// each direction.
func (c *EbitenCanvas) StrokeText(s string, x, y float64) {
	w := c.st.lineWidth / 2
	for _, d := range [4]Vec2{{-w, 0}, {w, 0}, {0, -w}, {0, w}} {
		c.drawText(s, x+d.X, y+d.Y, c.st.stroke)
	}
}

func (c *EbitenCanvas) MeasureText(s string) float64 {
	return text.Advance(s, c.backend.face(c.st.font))
}

// --- Images ---

// DrawImage blits the (sx, sy, sw, sh) region of img into the (dx, dy, dw,
// dh) rectangle. Images not created by this backend are ignored.
func (c *EbitenCanvas) DrawImage(img Image, sx, sy, sw, sh, dx, dy, dw, dh float64) {
	src, ok := img.(ebitenSource)
	if !ok || sw <= 0 || sh <= 0 {
		return
	}
	ei := src.EbitenImage()
	r := image.Rect(int(sx), int(sy), int(math.Ceil(sx+sw)), int(math.Ceil(sy+sh)))
	sub := ei.SubImage(r.Intersect(ei.Bounds())).(*ebiten.Image)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(dw/sw, dh/sh)
	op.GeoM.Translate(dx, dy)
	op.GeoM.Concat(c.st.geom)
	op.ColorScale.ScaleAlpha(float32(c.st.alpha))
	op.Blend = c.st.blend.EbitenBlend()
	if c.backend.Smoothing {
		op.Filter = ebiten.FilterLinear
	}
	c.img.DrawImage(sub, op)
}
