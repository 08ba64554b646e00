package preset

import (
	"github.com/filtergram/filtergram/blend"
	"github.com/filtergram/filtergram/gradient"
	"github.com/filtergram/filtergram/overlay"
)

// NewRegistry builds the registry of the 26 stock presets. Each recipe
// reproduces its CSS counterpart: overlays declared before the base
// adjustments come first in the sequence, the adjustments follow in
// modulate / level / sepia / grayscale stage order, and trailing overlays
// come last.
func NewRegistry() *Registry {
	return newRegistry([]*Spec{
		{Name: "1977", Ops: []Operation{
			Adjust{Brightness, 1.1},
			Adjust{Saturate, 1.3},
			Adjust{Contrast, 1.1},
			Overlay{overlay.Solid(243, 106, 188), 30, blend.Screen},
		}},
		{Name: "aden", Ops: []Operation{
			Adjust{Brightness, 1.2},
			Adjust{Saturate, 0.85},
			Adjust{HueRotate, -20},
			Adjust{Contrast, 0.9},
			Overlay{overlay.Gradient(gradient.LinearSpec(gradient.ToRight,
				gradient.ColorAlpha(66, 10, 14, 0.2, 0),
				gradient.None(1),
			)), 100, blend.Darken},
		}},
		{Name: "brannan", Ops: []Operation{
			Adjust{Contrast, 1.4},
			Adjust{Sepia, 0.5},
			Overlay{overlay.Solid(161, 44, 199), 31, blend.Lighten},
		}},
		{Name: "brooklyn", Ops: []Operation{
			Adjust{Brightness, 1.1},
			Adjust{Contrast, 0.9},
			Overlay{overlay.Gradient(gradient.RadialSpec(
				gradient.ColorAlpha(168, 223, 193, 0.4, 0.7),
				gradient.Color(196, 183, 200, 1),
			)), 100, blend.Overlay},
		}},
		{Name: "clarendon", Ops: []Operation{
			Overlay{overlay.Solid(127, 187, 227), 20, blend.Overlay},
			Adjust{Saturate, 1.35},
			Adjust{Contrast, 1.2},
		}},
		{Name: "earlybird", Ops: []Operation{
			Adjust{Contrast, 0.9},
			Adjust{Sepia, 0.2},
			Overlay{overlay.Gradient(gradient.RadialSpec(
				gradient.Color(208, 186, 142, 0.2),
				gradient.Color(54, 3, 9, 0.85),
				gradient.Color(29, 2, 16, 1),
			)), 100, blend.Overlay},
		}},
		{Name: "gingham", Ops: []Operation{
			Adjust{Brightness, 1.05},
			Adjust{HueRotate, -10},
			Overlay{overlay.Solid(230, 230, 250), 100, blend.SoftLight},
		}},
		{Name: "hudson", Ops: []Operation{
			Adjust{Brightness, 1.2},
			Adjust{Saturate, 1.1},
			Adjust{Contrast, 0.9},
			Overlay{overlay.Gradient(gradient.RadialSpec(
				gradient.Color(166, 177, 255, 0.5),
				gradient.Color(52, 33, 52, 1),
			)), 50, blend.Multiply},
		}},
		{Name: "inkwell", Ops: []Operation{
			Adjust{Brightness, 1.1},
			Adjust{Contrast, 1.1},
			Adjust{Sepia, 0.3},
			Adjust{Grayscale, 1},
		}},
		{Name: "kelvin", Ops: []Operation{
			Overlay{overlay.Solid(56, 44, 52), 100, blend.ColorDodge},
			Overlay{overlay.Solid(183, 125, 33), 100, blend.Overlay},
		}},
		{Name: "lark", Ops: []Operation{
			Overlay{overlay.Solid(34, 37, 63), 100, blend.ColorDodge},
			Adjust{Contrast, 0.9},
			Overlay{overlay.Solid(242, 242, 242), 80, blend.Darken},
		}},
		{Name: "lofi", Ops: []Operation{
			Adjust{Saturate, 1.1},
			Adjust{Contrast, 1.5},
		}},
		{Name: "maven", Ops: []Operation{
			Adjust{Brightness, 0.95},
			Adjust{Saturate, 1.5},
			Adjust{Contrast, 0.95},
			Adjust{Sepia, 0.25},
			Overlay{overlay.Solid(3, 230, 26), 20, blend.Colorize},
		}},
		{Name: "mayfair", Ops: []Operation{
			Adjust{Saturate, 1.1},
			Adjust{Contrast, 1.1},
			Overlay{overlay.Gradient(gradient.RadialSpec(
				gradient.ColorAlpha(255, 255, 255, 0.8, 0),
				gradient.ColorAlpha(255, 200, 200, 0.6, 0.3),
				gradient.Color(17, 17, 17, 0.6),
			)), 40, blend.Overlay},
		}},
		{Name: "moon", Ops: []Operation{
			Overlay{overlay.Solid(160, 160, 160), 100, blend.SoftLight},
			Adjust{Brightness, 1.1},
			Adjust{Contrast, 1.1},
			Adjust{Grayscale, 1},
			Overlay{overlay.Solid(56, 56, 56), 100, blend.Lighten},
		}},
		{Name: "nashville", Ops: []Operation{
			Overlay{overlay.Solid(247, 176, 153), 56, blend.Darken},
			Adjust{Brightness, 1.05},
			Adjust{Saturate, 1.2},
			Adjust{Contrast, 1.2},
			Adjust{Sepia, 0.2},
			Overlay{overlay.Solid(0, 70, 150), 40, blend.Lighten},
		}},
		{Name: "perpetua", Ops: []Operation{
			Overlay{overlay.Gradient(gradient.LinearSpec(gradient.ToBottom,
				gradient.Color(0, 91, 154, 0),
				gradient.Color(230, 193, 61, 1),
			)), 50, blend.SoftLight},
		}},
		{Name: "reyes", Ops: []Operation{
			Adjust{Brightness, 1.1},
			Adjust{Saturate, 0.75},
			Adjust{Contrast, 0.85},
			Adjust{Sepia, 0.22},
		}},
		{Name: "rise", Ops: []Operation{
			Overlay{overlay.Gradient(gradient.RadialSpec(
				gradient.ColorAlpha(236, 205, 169, 0.15, 0.55),
				gradient.ColorAlpha(50, 30, 7, 0.4, 1),
			)), 100, blend.Multiply},
			Adjust{Brightness, 1.05},
			Adjust{Saturate, 0.9},
			Adjust{Contrast, 0.9},
			Adjust{Sepia, 0.2},
			Overlay{overlay.Gradient(gradient.RadialSpec(
				gradient.ColorAlpha(232, 197, 152, 0.8, 0),
				gradient.None(0.9),
			)), 60, blend.Overlay},
		}},
		{Name: "slumber", Ops: []Operation{
			Overlay{overlay.Solid(69, 41, 12), 40, blend.Lighten},
			Adjust{Brightness, 1.05},
			Adjust{Saturate, 0.66},
			Overlay{overlay.Solid(125, 105, 24), 50, blend.SoftLight},
		}},
		{Name: "stinson", Ops: []Operation{
			Overlay{overlay.Solid(240, 149, 128), 20, blend.SoftLight},
			Adjust{Brightness, 1.15},
			Adjust{Saturate, 0.85},
			Adjust{Contrast, 0.75},
		}},
		{Name: "toaster", Ops: []Operation{
			Adjust{Brightness, 0.9},
			Adjust{Contrast, 1.5},
			Overlay{overlay.Gradient(gradient.RadialSpec(
				gradient.Color(128, 78, 15, 0),
				gradient.Color(59, 0, 59, 1),
			)), 100, blend.Screen},
		}},
		{Name: "valencia", Ops: []Operation{
			Adjust{Brightness, 1.08},
			Adjust{Contrast, 1.08},
			Adjust{Sepia, 0.08},
			Overlay{overlay.Solid(58, 3, 57), 50, blend.Exclusion},
		}},
		{Name: "walden", Ops: []Operation{
			Adjust{Brightness, 1.1},
			Adjust{Saturate, 1.6},
			Adjust{HueRotate, -10},
			Adjust{Sepia, 0.3},
			Overlay{overlay.Solid(0, 68, 204), 30, blend.Screen},
		}},
		{Name: "willow", Ops: []Operation{
			Overlay{overlay.Gradient(gradient.RadialSpec(
				gradient.Color(212, 169, 175, 0.55),
				gradient.Color(0, 0, 0, 1.5),
			)), 100, blend.Overlay},
			Adjust{Brightness, 0.9},
			Adjust{Contrast, 0.95},
			Adjust{Grayscale, 0.5},
			Overlay{overlay.Solid(216, 205, 203), 100, blend.Colorize},
		}},
		{Name: "xpro2", Ops: []Operation{
			Adjust{Sepia, 0.3},
			Overlay{overlay.Gradient(gradient.RadialSpec(
				gradient.Color(230, 231, 224, 0.4),
				gradient.ColorAlpha(43, 42, 161, 0.6, 1.1),
			)), 100, blend.ColorBurn},
		}},
	})
}
