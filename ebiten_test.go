package reel

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func newTestCanvas(t *testing.T, w, h int) *EbitenCanvas {
	t.Helper()
	c, ok := NewEbitenBackend().NewCanvas(w, h).(*EbitenCanvas)
	if !ok {
		t.Fatal("NewCanvas should return an *EbitenCanvas")
	}
	return c
}

func TestEbitenCanvasSize(t *testing.T) {
	c := newTestCanvas(t, 40, 30)
	if c.Width() != 40 || c.Height() != 30 {
		t.Errorf("size = %dx%d", c.Width(), c.Height())
	}
	img := WrapEbitenImage(c.EbitenImage())
	if img.Width() != 40 || img.Height() != 30 {
		t.Errorf("wrapped size = %dx%d", img.Width(), img.Height())
	}
}

func TestEbitenCanvasTransformComposes(t *testing.T) {
	c := newTestCanvas(t, 8, 8)
	c.Translate(10, 20)
	c.Transform(2, 0, 0, 2, 1, 1)

	x, y := c.st.geom.Apply(1, 1)
	assertNear(t, "x", x, 13)
	assertNear(t, "y", y, 23)
}

func TestEbitenCanvasSaveRestore(t *testing.T) {
	c := newTestCanvas(t, 8, 8)
	c.SetFill(ColorWhite)
	c.Save()
	c.Translate(5, 5)
	c.MultiplyAlpha(0.5)
	c.SetFill(ColorBlack)
	c.SetBlend(BlendAdd)
	c.Restore()

	x, y := c.st.geom.Apply(0, 0)
	if x != 0 || y != 0 || c.st.alpha != 1 || c.st.fill != ColorWhite || c.st.blend != BlendNormal {
		t.Errorf("state after Restore = %+v", c.st)
	}

	// Unbalanced Restore is ignored.
	c.Restore()

	c.Save()
	c.Clear()
	if len(c.stack) != 0 || c.st.fill != ColorBlack {
		t.Error("Clear should reset the state")
	}
}

func TestEbitenCanvasMeasureText(t *testing.T) {
	c := newTestCanvas(t, 8, 8)
	// The default face is the 7x13 bitmap font.
	if w := c.MeasureText("hello"); w != 35 {
		t.Errorf("MeasureText = %v, want 35", w)
	}
}

func TestEbitenCanvasIgnoresForeignImages(t *testing.T) {
	c := newTestCanvas(t, 8, 8)
	c.DrawImage(testImage{4, 4}, 0, 0, 4, 4, 0, 0, 4, 4)
}

func TestEbitenBackendFonts(t *testing.T) {
	b := NewEbitenBackend()
	if b.face("missing") != b.defaultFace {
		t.Error("unknown font should fall back to the default face")
	}
	b.RegisterFace("ui", b.defaultFace)
	if b.face("ui") != b.defaultFace {
		t.Error("registered face not found")
	}
	if err := b.RegisterFont("bad", []byte("not a font"), 12); err == nil {
		t.Error("expected error for invalid font data")
	}
}

func TestBlendModeEbitenBlend(t *testing.T) {
	tests := []struct {
		mode BlendMode
		want ebiten.Blend
	}{
		{BlendNormal, ebiten.BlendSourceOver},
		{BlendInherit, ebiten.BlendSourceOver},
		{BlendAdd, ebiten.BlendLighter},
		{BlendErase, ebiten.BlendDestinationOut},
		{BlendBelow, ebiten.BlendDestinationOver},
		{BlendNone, ebiten.BlendCopy},
	}
	for _, tt := range tests {
		if got := tt.mode.EbitenBlend(); got != tt.want {
			t.Errorf("BlendMode(%d).EbitenBlend() = %+v", tt.mode, got)
		}
	}
}

func TestColorToRGBA(t *testing.T) {
	c := Color{R: 1, G: 0.5, B: -1, A: 2}.toRGBA()
	if c.R != 255 || c.G != 127 || c.B != 0 || c.A != 255 {
		t.Errorf("toRGBA = %+v", c)
	}
	if RGB(255, 0, 51) != (Color{1, 0, 0.2, 1}) {
		t.Errorf("RGB = %+v", RGB(255, 0, 51))
	}
}
