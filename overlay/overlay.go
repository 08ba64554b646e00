// Package overlay builds the full-size pixel buffers that get composited
// onto the working image: solid fills or rasterized gradients, with a
// uniform opacity scale.
package overlay

import (
	"github.com/filtergram/filtergram/gradient"
	"github.com/filtergram/filtergram/pixel"
)

// Fill describes what an overlay is made of. When Gradient is nil the
// overlay is a solid opaque color.
type Fill struct {
	R, G, B  uint8
	Gradient *gradient.Spec
}

// Solid returns a solid color fill from 8-bit channels.
func Solid(r, g, b uint8) Fill {
	return Fill{R: r, G: g, B: b}
}

// Gradient returns a gradient fill.
func Gradient(spec *gradient.Spec) Fill {
	return Fill{Gradient: spec}
}

// Build produces a width x height overlay buffer. Solid fills start fully
// opaque; gradients keep whatever alpha their stops encode. opacityPct in
// [0, 100] then scales every pixel's alpha multiplicatively, so 100 is a
// no-op and 0 yields a fully transparent overlay.
func Build(width, height int, fill Fill, opacityPct float64) *pixel.Image {
	var img *pixel.Image
	if fill.Gradient != nil {
		img = gradient.Rasterize(width, height, fill.Gradient)
	} else {
		img = pixel.New(width, height)
		r := float64(fill.R) / 255
		g := float64(fill.G) / 255
		b := float64(fill.B) / 255
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				img.Set(x, y, r, g, b, 1)
			}
		}
	}
	if opacityPct != 100 {
		scale := opacityPct / 100
		for i := 3; i < len(img.Pix); i += 4 {
			img.Pix[i] *= scale
		}
	}
	return img
}
