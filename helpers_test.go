package reel

import (
	"fmt"
	"math"
	"testing"
)

const epsilon = 1e-9

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertMatrix(t *testing.T, got, want Matrix) {
	t.Helper()
	g := [6]float64{got.A, got.B, got.C, got.D, got.E, got.F}
	w := [6]float64{want.A, want.B, want.C, want.D, want.E, want.F}
	for i := range g {
		if math.Abs(g[i]-w[i]) > 1e-9 {
			t.Errorf("matrix = %v, want %v", got, want)
			return
		}
	}
}

// testImage is an Image with fixed dimensions and no pixels.
type testImage struct {
	w, h int
}

func (i testImage) Width() int  { return i.w }
func (i testImage) Height() int { return i.h }

// blit is one recorded DrawImage call.
type blit struct {
	img                            Image
	sx, sy, sw, sh, dx, dy, dw, dh float64
}

// recSurface is a Canvas that records every call it receives.
type recSurface struct {
	w, h   int
	calls  []string
	blits  []blit
	clears int
}

func (s *recSurface) rec(format string, args ...any) {
	s.calls = append(s.calls, fmt.Sprintf(format, args...))
}

// count returns how many recorded calls start with prefix.
func (s *recSurface) count(prefix string) int {
	n := 0
	for _, c := range s.calls {
		if len(c) >= len(prefix) && c[:len(prefix)] == prefix {
			n++
		}
	}
	return n
}

func (s *recSurface) reset() {
	s.calls = nil
	s.blits = nil
}

func (s *recSurface) Width() int  { return s.w }
func (s *recSurface) Height() int { return s.h }
func (s *recSurface) Clear()      { s.clears++ }

func (s *recSurface) Save()    { s.rec("Save") }
func (s *recSurface) Restore() { s.rec("Restore") }
func (s *recSurface) Transform(a, b, c, d, e, f float64) {
	s.rec("Transform %g %g %g %g %g %g", a, b, c, d, e, f)
}
func (s *recSurface) Translate(x, y float64)  { s.rec("Translate %g %g", x, y) }
func (s *recSurface) MultiplyAlpha(a float64) { s.rec("MultiplyAlpha %g", a) }

func (s *recSurface) SetFill(c Color)        { s.rec("SetFill %g %g %g %g", c.R, c.G, c.B, c.A) }
func (s *recSurface) SetStroke(c Color)      { s.rec("SetStroke %g %g %g %g", c.R, c.G, c.B, c.A) }
func (s *recSurface) SetLineWidth(w float64) { s.rec("SetLineWidth %g", w) }
func (s *recSurface) SetFont(font string)    { s.rec("SetFont %s", font) }
func (s *recSurface) SetBlend(b BlendMode)   { s.rec("SetBlend %d", b) }

func (s *recSurface) BeginPath()                      { s.rec("BeginPath") }
func (s *recSurface) MoveTo(x, y float64)             { s.rec("MoveTo %g %g", x, y) }
func (s *recSurface) LineTo(x, y float64)             { s.rec("LineTo %g %g", x, y) }
func (s *recSurface) Arc(x, y, r, start, end float64) { s.rec("Arc %g %g %g", x, y, r) }
func (s *recSurface) ClosePath()                      { s.rec("ClosePath") }
func (s *recSurface) Fill()                           { s.rec("Fill") }
func (s *recSurface) Stroke()                         { s.rec("Stroke") }

func (s *recSurface) FillRect(x, y, w, h float64)   { s.rec("FillRect %g %g %g %g", x, y, w, h) }
func (s *recSurface) StrokeRect(x, y, w, h float64) { s.rec("StrokeRect %g %g %g %g", x, y, w, h) }
func (s *recSurface) ClearRect(x, y, w, h float64)  { s.rec("ClearRect %g %g %g %g", x, y, w, h) }

func (s *recSurface) FillText(text string, x, y float64)   { s.rec("FillText %s %g %g", text, x, y) }
func (s *recSurface) StrokeText(text string, x, y float64) { s.rec("StrokeText %s %g %g", text, x, y) }

// MeasureText reports 7 pixels per byte, like a 7x13 bitmap face.
func (s *recSurface) MeasureText(text string) float64 {
	return float64(7 * len(text))
}

func (s *recSurface) DrawImage(img Image, sx, sy, sw, sh, dx, dy, dw, dh float64) {
	s.rec("DrawImage")
	s.blits = append(s.blits, blit{img, sx, sy, sw, sh, dx, dy, dw, dh})
}

// recBackend hands out recSurfaces and remembers them in creation order.
type recBackend struct {
	canvases []*recSurface
}

func (b *recBackend) NewCanvas(w, h int) Canvas {
	c := &recSurface{w: w, h: h}
	b.canvases = append(b.canvases, c)
	return c
}

// newTestStage returns a w×h stage on a recBackend. canvases[0] is the
// render canvas and canvases[1] the screen.
func newTestStage(t *testing.T, w, h int) (*Stage, *recBackend) {
	t.Helper()
	b := &recBackend{}
	st, err := NewStage(b, w, h)
	if err != nil {
		t.Fatalf("NewStage: %v", err)
	}
	return st, b
}

// sliceSink collects published collisions.
type sliceSink struct {
	got []Collision
}

func (s *sliceSink) Publish(c Collision) {
	s.got = append(s.got, c)
}
