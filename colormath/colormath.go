// Package colormath implements the pure color-adjustment routines of the
// filter engine: brightness/saturation/hue modulation, black/white point
// leveling and 3x3 color-matrix transforms. All functions mutate the working
// image in place and are deterministic.
package colormath

import (
	"math"

	"github.com/filtergram/filtergram/pixel"
)

// Modulate scales brightness, saturation and hue of every pixel, with each
// argument given as a percent where 100 is the identity. Brightness scales
// all channels, saturation scales HSL saturation, and hue shifts the HSL hue
// by (huePct-100)*1.8 degrees, matching the convention where hue-rotate(d)
// maps to huePct = 100 + d/1.8.
//
// Modulate(img, 100, 100, 100) leaves the image bit-identical.
func Modulate(img *pixel.Image, brightnessPct, saturationPct, huePct float64) {
	if brightnessPct == 100 && saturationPct == 100 && huePct == 100 {
		return
	}
	scale := brightnessPct / 100
	deg := (huePct - 100) * 1.8
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			r, g, b, a := img.At(x, y)
			if brightnessPct != 100 {
				r = pixel.Clamp(r * scale)
				g = pixel.Clamp(g * scale)
				b = pixel.Clamp(b * scale)
			}
			if saturationPct != 100 || huePct != 100 {
				h, s, l := pixel.RGBToHSL(r, g, b)
				if saturationPct != 100 {
					s = pixel.Clamp(s * saturationPct / 100)
				}
				if huePct != 100 {
					h = math.Mod(h+deg, 360)
					if h < 0 {
						h += 360
					}
				}
				r, g, b = pixel.HSLToRGB(h, s, l)
			}
			img.Set(x, y, r, g, b, a)
		}
	}
}

// Level remaps every channel linearly so that blackPct% maps to 0 and
// whitePct% maps to 1, clamping outside the range. Level(img, 0, 100) is the
// identity.
func Level(img *pixel.Image, blackPct, whitePct float64) {
	lo := blackPct / 100
	hi := whitePct / 100
	if lo == 0 && hi == 1 {
		return
	}
	span := hi - lo
	remap := func(v float64) float64 {
		if span == 0 {
			if v < lo {
				return 0
			}
			return 1
		}
		return pixel.Clamp((v - lo) / span)
	}
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			r, g, b, a := img.At(x, y)
			img.Set(x, y, remap(r), remap(g), remap(b), a)
		}
	}
}

// InverseLevel compresses the full channel range into [blackPct, whitePct]
// instead of stretching it: out = lo + v*(hi-lo), the counterpart of Level
// in the way ImageMagick +level inverts -level. InverseLevel(img, 0, 100) is
// the identity.
func InverseLevel(img *pixel.Image, blackPct, whitePct float64) {
	lo := blackPct / 100
	hi := whitePct / 100
	if lo == 0 && hi == 1 {
		return
	}
	span := hi - lo
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			r, g, b, a := img.At(x, y)
			img.Set(x, y,
				pixel.Clamp(lo+r*span),
				pixel.Clamp(lo+g*span),
				pixel.Clamp(lo+b*span),
				a,
			)
		}
	}
}

// ContrastLevels translates a CSS contrast() amount into black/white level
// percents. The two branches are genuinely different curves: c >= 1 narrows
// the input range around midtone for a forward Level stretch, c < 1 widens
// the percents for an InverseLevel compression. Either way the midtone 0.5
// is the fixed point and the applied curve is out = (v-0.5)*c + 0.5.
func ContrastLevels(c float64) (blackPct, whitePct float64) {
	if c >= 1 {
		return 50 - 50/c, 50 + 50/c
	}
	return (1 - c) * 50, (1 + c) * 50
}

// Matrix is a 3x3 color matrix mapping input (R,G,B) to output (R,G,B).
// Alpha always passes through unchanged.
type Matrix [3][3]float64

// Identity returns diag(1,1,1).
func Identity() Matrix {
	return Matrix{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

// Lerp interpolates from the identity toward target at intensity t in [0,1]:
// M(t) = I + t*(target - I). t=0 yields the identity, t=1 the target.
func Lerp(target Matrix, t float64) Matrix {
	id := Identity()
	var out Matrix
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = id[i][j] + t*(target[i][j]-id[i][j])
		}
	}
	return out
}

// sepiaTarget matches the CSS sepia() filter coefficients.
var sepiaTarget = Matrix{
	{0.393, 0.769, 0.189},
	{0.349, 0.686, 0.168},
	{0.272, 0.534, 0.131},
}

// grayscaleTarget replaces each channel with the BT.709 luminance.
var grayscaleTarget = Matrix{
	{0.2126, 0.7152, 0.0722},
	{0.2126, 0.7152, 0.0722},
	{0.2126, 0.7152, 0.0722},
}

// SepiaMatrix returns the sepia matrix at intensity t.
func SepiaMatrix(t float64) Matrix {
	return Lerp(sepiaTarget, t)
}

// GrayscaleMatrix returns the grayscale matrix at intensity t.
func GrayscaleMatrix(t float64) Matrix {
	return Lerp(grayscaleTarget, t)
}

// ApplyMatrix multiplies every pixel's (R,G,B) by m, clamping to [0,1].
func ApplyMatrix(img *pixel.Image, m Matrix) {
	if m == Identity() {
		return
	}
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			r, g, b, a := img.At(x, y)
			img.Set(x, y,
				pixel.Clamp(m[0][0]*r+m[0][1]*g+m[0][2]*b),
				pixel.Clamp(m[1][0]*r+m[1][1]*g+m[1][2]*b),
				pixel.Clamp(m[2][0]*r+m[2][1]*g+m[2][2]*b),
				a,
			)
		}
	}
}
