package reel

import "fmt"

// Image is an opaque, already-decoded asset handle with known dimensions.
type Image interface {
	Width() int
	Height() int
}

// Surface is a 2D drawing target. The scene graph issues every draw call
// through this interface; rasterization lives behind it.
//
// Transform multiplies the current transform, as a canvas context does.
// Save and Restore push and pop the whole drawing state: transform, alpha,
// styles, font, blend mode and line width.
type Surface interface {
	Save()
	Restore()
	Transform(a, b, c, d, e, f float64)
	Translate(x, y float64)
	MultiplyAlpha(a float64)

	SetFill(c Color)
	SetStroke(c Color)
	SetLineWidth(w float64)
	SetFont(font string)
	SetBlend(b BlendMode)

	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	Arc(x, y, r, start, end float64)
	ClosePath()
	Fill()
	Stroke()

	FillRect(x, y, w, h float64)
	StrokeRect(x, y, w, h float64)
	ClearRect(x, y, w, h float64)

	FillText(text string, x, y float64)
	StrokeText(text string, x, y float64)
	MeasureText(text string) float64

	DrawImage(img Image, sx, sy, sw, sh, dx, dy, dw, dh float64)
}

// Canvas is an offscreen Surface that can itself be blitted as an Image.
type Canvas interface {
	Surface
	Image
	Clear()
}

// Backend creates offscreen canvases.
type Backend interface {
	NewCanvas(w, h int) Canvas
}

// AssetResolver supplies decoded images by name.
type AssetResolver interface {
	Image(name string) (Image, error)
}

// MapResolver is an in-memory AssetResolver.
type MapResolver map[string]Image

// Image returns the named image or an error wrapping ErrUnknownAsset.
func (r MapResolver) Image(name string) (Image, error) {
	if img, ok := r[name]; ok {
		return img, nil
	}
	return nil, fmt.Errorf("image %q: %w", name, ErrUnknownAsset)
}

// imageSize returns an image's dimensions as float64, or zeros for nil.
func imageSize(img Image) (float64, float64) {
	if img == nil {
		return 0, 0
	}
	return float64(img.Width()), float64(img.Height())
}
