package reel

import (
	"math"

	"github.com/tanema/gween/ease"
)

// Easing maps normalized time in [0, 1] to normalized progress. Progress may
// leave [0, 1] for overshooting curves such as Back and Elastic.
type Easing func(p float64) float64

// Base curves. Each is the "in" form; see EaseIn, EaseOut and EaseInOut.
var (
	Quad  Easing = func(p float64) float64 { return p * p }
	Cubic Easing = func(p float64) float64 { return p * p * p }
	Quart Easing = func(p float64) float64 { return math.Pow(p, 4) }
	Quint Easing = func(p float64) float64 { return math.Pow(p, 5) }
	Expo  Easing = func(p float64) float64 { return math.Pow(p, 6) }
	Sine  Easing = func(p float64) float64 { return 1 - math.Cos(p*math.Pi/2) }
	Circ  Easing = func(p float64) float64 { return 1 - math.Sqrt(1-p*p) }
	Back  Easing = func(p float64) float64 { return p * p * (3*p - 2) }

	Elastic Easing = func(p float64) float64 {
		if p == 0 || p == 1 {
			return p
		}
		return -math.Pow(2, 8*(p-1)) * math.Sin(((p-1)*80-7.5)*math.Pi/15)
	}

	Bounce Easing = func(p float64) float64 {
		if p <= 0 {
			return 0
		}
		bounce := 4.0
		var pow2 float64
		for {
			bounce--
			pow2 = math.Pow(2, bounce)
			if p >= (pow2-1)/11 {
				break
			}
		}
		d := (pow2*3-2)/22 - p
		return 1/math.Pow(4, 3-bounce) - 7.5625*d*d
	}
)

// Linear is constant speed.
var Linear Easing = func(p float64) float64 { return p }

// Swing accelerates then decelerates along half a cosine.
var Swing Easing = func(p float64) float64 { return -math.Cos(p*math.Pi)/2 + 0.5 }

// EaseIn returns f unchanged.
func EaseIn(f Easing) Easing { return f }

// EaseOut mirrors f: 1 - f(1-p).
func EaseOut(f Easing) Easing {
	return func(p float64) float64 { return 1 - f(1-p) }
}

// EaseInOut runs f over the first half and its mirror over the second.
func EaseInOut(f Easing) Easing {
	return func(p float64) float64 {
		if p < 0.5 {
			return f(2*p) / 2
		}
		return f(-2*p+2)/-2 + 1
	}
}

// Derived curves.
var (
	EaseInQuad    = EaseIn(Quad)
	EaseOutQuad   = EaseOut(Quad)
	EaseInOutQuad = EaseInOut(Quad)

	EaseInCubic    = EaseIn(Cubic)
	EaseOutCubic   = EaseOut(Cubic)
	EaseInOutCubic = EaseInOut(Cubic)

	EaseInQuart    = EaseIn(Quart)
	EaseOutQuart   = EaseOut(Quart)
	EaseInOutQuart = EaseInOut(Quart)

	EaseInQuint    = EaseIn(Quint)
	EaseOutQuint   = EaseOut(Quint)
	EaseInOutQuint = EaseInOut(Quint)

	EaseInExpo    = EaseIn(Expo)
	EaseOutExpo   = EaseOut(Expo)
	EaseInOutExpo = EaseInOut(Expo)

	EaseInSine    = EaseIn(Sine)
	EaseOutSine   = EaseOut(Sine)
	EaseInOutSine = EaseInOut(Sine)

	EaseInCirc    = EaseIn(Circ)
	EaseOutCirc   = EaseOut(Circ)
	EaseInOutCirc = EaseInOut(Circ)

	EaseInElastic    = EaseIn(Elastic)
	EaseOutElastic   = EaseOut(Elastic)
	EaseInOutElastic = EaseInOut(Elastic)

	EaseInBack    = EaseIn(Back)
	EaseOutBack   = EaseOut(Back)
	EaseInOutBack = EaseInOut(Back)

	EaseInBounce    = EaseIn(Bounce)
	EaseOutBounce   = EaseOut(Bounce)
	EaseInOutBounce = EaseInOut(Bounce)
)

// TweenFunc adapts e to gween's (t, begin, change, duration) signature.
func (e Easing) TweenFunc() ease.TweenFunc {
	return func(t, b, c, d float32) float32 {
		if d == 0 {
			return b + c
		}
		return b + c*float32(e(float64(t/d)))
	}
}

// FromTweenFunc adapts one of gween's ease functions to an Easing.
func FromTweenFunc(fn ease.TweenFunc) Easing {
	return func(p float64) float64 {
		return float64(fn(float32(p), 0, 1, 1))
	}
}
