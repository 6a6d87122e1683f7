package reel

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsRefreshTicks is how often the FPS widget redraws its readout.
const fpsRefreshTicks = 30

// NewFPSWidget creates a clip that displays the current FPS and TPS.
// The readout is redrawn every fpsRefreshTicks ticks with
// ebitenutil.DebugPrint onto a canvas from b.
func NewFPSWidget(b *EbitenBackend) *Node {
	// 100x32 is enough for "FPS: 60.0\nTPS: 60.0"
	canvas := b.newCanvas(ebiten.NewImage(100, 32))

	clip := NewClip("fps_widget")
	img := NewImage("fps_readout", canvas)

	ticks := 0
	refresh := func(*Node) {
		ticks++
		if ticks%fpsRefreshTicks != 1 {
			return
		}
		dst := canvas.EbitenImage()
		dst.Clear()
		// Semi-transparent background for readability
		dst.Fill(color.RGBA{0, 0, 0, 128})
		ebitenutil.DebugPrint(dst, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
		img.Invalidate()
	}

	clip.AddChild(NewAction("fps_refresh", refresh))
	clip.AddChild(img)
	return clip
}
