// Package gradient rasterizes the synthetic linear and radial gradients the
// preset overlays are built from.
package gradient

import (
	"math"

	"github.com/filtergram/filtergram/pixel"
)

// Kind selects between a linear and a radial gradient.
type Kind int

const (
	Linear Kind = iota
	Radial
)

// Direction of a linear gradient. Only the two axis-aligned directions the
// presets use are supported; a vertical gradient is rasterized horizontally
// and rotated 90 degrees so stop interpolation stays single-path.
type Direction int

const (
	ToRight Direction = iota
	ToBottom
)

// Stop is a color at a position along the gradient axis. Positions are
// normalized against the gradient length and may exceed 1; the rasterized
// parameter is clamped to [0, 1] before interpolation. A None stop means
// alpha 0 at that position with no color of its own: interpolation toward it
// fades alpha while carrying the neighbouring colored stop's RGB.
type Stop struct {
	R, G, B float64
	A       float64
	Pos     float64
	None    bool
}

// Color returns an opaque stop from 8-bit channels.
func Color(r, g, b uint8, pos float64) Stop {
	return ColorAlpha(r, g, b, 1, pos)
}

// ColorAlpha returns a stop from 8-bit channels with the given alpha.
func ColorAlpha(r, g, b uint8, a, pos float64) Stop {
	return Stop{
		R:   float64(r) / 255,
		G:   float64(g) / 255,
		B:   float64(b) / 255,
		A:   a,
		Pos: pos,
	}
}

// None returns a fully transparent stop.
func None(pos float64) Stop {
	return Stop{Pos: pos, None: true}
}

// Spec describes a gradient: its kind, direction (linear only) and at least
// two ordered stops. Radial gradients are centered on the image with the
// radius reaching the farthest corner.
type Spec struct {
	Kind      Kind
	Direction Direction
	Stops     []Stop
}

// LinearSpec returns a linear gradient spec.
func LinearSpec(dir Direction, stops ...Stop) *Spec {
	return &Spec{Kind: Linear, Direction: dir, Stops: stops}
}

// RadialSpec returns a radial gradient spec.
func RadialSpec(stops ...Stop) *Spec {
	return &Spec{Kind: Radial, Stops: stops}
}

// Rasterize produces a width x height image of the gradient. The output
// always matches the requested dimensions exactly so overlays never need
// resizing downstream.
func Rasterize(width, height int, spec *Spec) *pixel.Image {
	if spec.Kind == Radial {
		return rasterizeRadial(width, height, spec.Stops)
	}
	if spec.Direction == ToBottom {
		return rasterizeLinear(height, width, spec.Stops).Rotate90()
	}
	return rasterizeLinear(width, height, spec.Stops)
}

func rasterizeLinear(width, height int, stops []Stop) *pixel.Image {
	out := pixel.New(width, height)
	for x := 0; x < width; x++ {
		var t float64
		if width > 1 {
			t = float64(x) / float64(width-1)
		}
		r, g, b, a := colorAt(stops, t)
		for y := 0; y < height; y++ {
			out.Set(x, y, r, g, b, a)
		}
	}
	return out
}

func rasterizeRadial(width, height int, stops []Stop) *pixel.Image {
	out := pixel.New(width, height)
	cx := float64(width-1) / 2
	cy := float64(height-1) / 2
	maxRadius := math.Hypot(cx, cy)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var t float64
			if maxRadius > 0 {
				t = math.Hypot(float64(x)-cx, float64(y)-cy) / maxRadius
			}
			r, g, b, a := colorAt(stops, t)
			out.Set(x, y, r, g, b, a)
		}
	}
	return out
}

// colorAt interpolates the stop sequence at parameter t clamped to [0, 1].
// Positions before the first stop hold the first color, positions beyond the
// last hold the last.
func colorAt(stops []Stop, t float64) (r, g, b, a float64) {
	t = pixel.Clamp(t)
	first := stops[0]
	if t <= first.Pos {
		return resolve(first, nearestColored(stops, 0))
	}
	for i := 1; i < len(stops); i++ {
		s0, s1 := stops[i-1], stops[i]
		if t <= s1.Pos {
			span := s1.Pos - s0.Pos
			var u float64
			if span > 0 {
				u = (t - s0.Pos) / span
			}
			return lerpStops(s0, s1, u)
		}
	}
	last := stops[len(stops)-1]
	return resolve(last, nearestColored(stops, len(stops)-1))
}

// lerpStops blends two adjacent stops. Alpha always interpolates; when one
// side is a None stop the colored side's RGB is carried across the
// transparent region instead of blending toward an arbitrary color.
func lerpStops(s0, s1 Stop, u float64) (r, g, b, a float64) {
	a = lerp(alphaOf(s0), alphaOf(s1), u)
	switch {
	case s0.None && !s1.None:
		return s1.R, s1.G, s1.B, a
	case s1.None && !s0.None:
		return s0.R, s0.G, s0.B, a
	case s0.None && s1.None:
		return 0, 0, 0, 0
	}
	return lerp(s0.R, s1.R, u), lerp(s0.G, s1.G, u), lerp(s0.B, s1.B, u), a
}

func alphaOf(s Stop) float64 {
	if s.None {
		return 0
	}
	return s.A
}

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// resolve returns a stop's color, substituting the nearest colored stop's
// RGB for a None stop so edges stay hue-stable.
func resolve(s Stop, colored *Stop) (r, g, b, a float64) {
	if !s.None {
		return s.R, s.G, s.B, s.A
	}
	if colored != nil {
		return colored.R, colored.G, colored.B, 0
	}
	return 0, 0, 0, 0
}

func nearestColored(stops []Stop, from int) *Stop {
	for d := 0; d < len(stops); d++ {
		if i := from - d; i >= 0 && !stops[i].None {
			return &stops[i]
		}
		if i := from + d; i < len(stops) && !stops[i].None {
			return &stops[i]
		}
	}
	return nil
}
