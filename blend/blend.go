// Package blend implements the per-channel blend-mode formulas and the
// alpha-aware compositor that layers overlays onto a base image.
package blend

import (
	"errors"
	"math"

	"github.com/filtergram/filtergram/pixel"
)

// ErrDimensionMismatch reports a base/overlay size mismatch. Overlays are
// always built at the working image's dimensions, so hitting this indicates
// an internal invariant violation.
var ErrDimensionMismatch = errors.New("blend: base and overlay dimensions mismatch")

// Mode is a named blend mode.
type Mode int

const (
	Screen Mode = iota
	Multiply
	Overlay
	SoftLight
	Lighten
	Darken
	ColorDodge
	ColorBurn
	Exclusion
	Colorize
)

var modeNames = map[Mode]string{
	Screen:     "screen",
	Multiply:   "multiply",
	Overlay:    "overlay",
	SoftLight:  "soft-light",
	Lighten:    "lighten",
	Darken:     "darken",
	ColorDodge: "color-dodge",
	ColorBurn:  "color-burn",
	Exclusion:  "exclusion",
	Colorize:   "colorize",
}

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return "unknown"
}

// Func blends one base channel with one overlay channel, both in [0, 1].
type Func func(b, o float64) float64

// Funcs maps each per-channel mode to its formula. Colorize is absent: it
// operates on whole pixels, not channels.
var Funcs = map[Mode]Func{
	Screen:     screen,
	Multiply:   multiply,
	Overlay:    overlay,
	SoftLight:  softLight,
	Lighten:    math.Max,
	Darken:     math.Min,
	ColorDodge: colorDodge,
	ColorBurn:  colorBurn,
	Exclusion:  exclusion,
}

func screen(b, o float64) float64 {
	return 1 - (1-b)*(1-o)
}

func multiply(b, o float64) float64 {
	return b * o
}

func overlay(b, o float64) float64 {
	if b < 0.5 {
		return 2 * b * o
	}
	return 1 - 2*(1-b)*(1-o)
}

func softLight(b, o float64) float64 {
	if o < 0.5 {
		return b - (1-2*o)*b*(1-b)
	}
	var d float64
	if b < 0.25 {
		d = ((16*b-12)*b + 4) * b
	} else {
		d = math.Sqrt(b)
	}
	return b + (2*o-1)*(d-b)
}

func colorDodge(b, o float64) float64 {
	if o >= 1 {
		return 1
	}
	return math.Min(1, b/(1-o))
}

func colorBurn(b, o float64) float64 {
	if o <= 0 {
		return 0
	}
	return 1 - math.Min(1, (1-b)/o)
}

func exclusion(b, o float64) float64 {
	return b + o - 2*b*o
}

// Composite layers over onto base using the given mode and returns a new
// image. The overlay alpha weights how much of the blended color
// contributes; the result keeps the base alpha:
//
//	out = base*(1-overlayAlpha) + blend(base, overlay)*overlayAlpha
//
// Both images must share dimensions.
func Composite(base, over *pixel.Image, mode Mode) (*pixel.Image, error) {
	if base.Width != over.Width || base.Height != over.Height {
		return nil, ErrDimensionMismatch
	}
	out := pixel.New(base.Width, base.Height)
	fn := Funcs[mode]
	for y := 0; y < base.Height; y++ {
		for x := 0; x < base.Width; x++ {
			br, bg, bb, ba := base.At(x, y)
			or, og, ob, oa := over.At(x, y)
			var nr, ng, nb float64
			if mode == Colorize {
				nr, ng, nb = colorize(br, bg, bb, or, og, ob)
			} else {
				nr, ng, nb = fn(br, or), fn(bg, og), fn(bb, ob)
			}
			out.Set(x, y,
				pixel.Clamp(br*(1-oa)+nr*oa),
				pixel.Clamp(bg*(1-oa)+ng*oa),
				pixel.Clamp(bb*(1-oa)+nb*oa),
				ba,
			)
		}
	}
	return out, nil
}

// colorize replaces the base pixel's hue and saturation with the overlay's,
// keeping the base lightness.
func colorize(br, bg, bb, or, og, ob float64) (r, g, b float64) {
	h, s, _ := pixel.RGBToHSL(or, og, ob)
	l := pixel.Lightness(br, bg, bb)
	return pixel.HSLToRGB(h, s, l)
}
