package pixel

import (
	"image"
	"math"
)

// Image is a width x height RGBA pixel buffer with normalized float64
// channels in [0, 1]. It is the working representation every engine stage
// operates on; each stage owns the buffer it holds exclusively.
type Image struct {
	Width  int
	Height int
	// Pix holds 4 float64 per pixel in RGBA order, row-major.
	Pix []float64
}

// New creates a fully transparent black image of the given dimensions.
func New(width, height int) *Image {
	return &Image{
		Width:  width,
		Height: height,
		Pix:    make([]float64, width*height*4),
	}
}

func (m *Image) offset(x, y int) int {
	return (y*m.Width + x) * 4
}

// At returns the RGBA channels of the pixel at (x, y).
func (m *Image) At(x, y int) (r, g, b, a float64) {
	i := m.offset(x, y)
	return m.Pix[i], m.Pix[i+1], m.Pix[i+2], m.Pix[i+3]
}

// Set writes the RGBA channels of the pixel at (x, y).
func (m *Image) Set(x, y int, r, g, b, a float64) {
	i := m.offset(x, y)
	m.Pix[i] = r
	m.Pix[i+1] = g
	m.Pix[i+2] = b
	m.Pix[i+3] = a
}

// Clone returns a deep copy of the image.
func (m *Image) Clone() *Image {
	out := &Image{
		Width:  m.Width,
		Height: m.Height,
		Pix:    make([]float64, len(m.Pix)),
	}
	copy(out.Pix, m.Pix)
	return out
}

// Rotate90 returns the image rotated 90 degrees clockwise. A width x height
// image becomes height x width; a left-to-right ramp becomes top-to-bottom.
func (m *Image) Rotate90() *Image {
	out := New(m.Height, m.Width)
	for y := 0; y < out.Height; y++ {
		for x := 0; x < out.Width; x++ {
			r, g, b, a := m.At(y, m.Height-1-x)
			out.Set(x, y, r, g, b, a)
		}
	}
	return out
}

// FromNRGBA converts a decoded NRGBA image into the normalized buffer.
func FromNRGBA(src *image.NRGBA) *Image {
	bounds := src.Bounds()
	out := New(bounds.Dx(), bounds.Dy())
	for y := 0; y < out.Height; y++ {
		for x := 0; x < out.Width; x++ {
			i := src.PixOffset(bounds.Min.X+x, bounds.Min.Y+y)
			out.Set(x, y,
				float64(src.Pix[i])/255,
				float64(src.Pix[i+1])/255,
				float64(src.Pix[i+2])/255,
				float64(src.Pix[i+3])/255,
			)
		}
	}
	return out
}

// ToNRGBA converts the buffer back to 8-bit NRGBA, rounding half up.
func (m *Image) ToNRGBA() *image.NRGBA {
	out := image.NewNRGBA(image.Rect(0, 0, m.Width, m.Height))
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			r, g, b, a := m.At(x, y)
			i := out.PixOffset(x, y)
			out.Pix[i] = quantize(r)
			out.Pix[i+1] = quantize(g)
			out.Pix[i+2] = quantize(b)
			out.Pix[i+3] = quantize(a)
		}
	}
	return out
}

func quantize(v float64) uint8 {
	return uint8(Clamp(v)*255 + 0.5)
}

// Clamp limits v to [0, 1].
func Clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// RGBToHSL converts normalized RGB to hue in degrees [0, 360) and
// saturation/lightness in [0, 1].
func RGBToHSL(r, g, b float64) (h, s, l float64) {
	maxV := math.Max(r, math.Max(g, b))
	minV := math.Min(r, math.Min(g, b))
	l = (maxV + minV) / 2
	if maxV == minV {
		return 0, 0, l
	}
	d := maxV - minV
	if l > 0.5 {
		s = d / (2 - maxV - minV)
	} else {
		s = d / (maxV + minV)
	}
	switch maxV {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}
	h *= 60
	return h, s, l
}

// HSLToRGB converts hue in degrees and saturation/lightness in [0, 1] back
// to normalized RGB.
func HSLToRGB(h, s, l float64) (r, g, b float64) {
	if s == 0 {
		return l, l, l
	}
	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q
	hk := h / 360
	r = hueToRGB(p, q, hk+1.0/3)
	g = hueToRGB(p, q, hk)
	b = hueToRGB(p, q, hk-1.0/3)
	return r, g, b
}

func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	default:
		return p
	}
}

// Lightness returns the HSL lightness of a normalized RGB color.
func Lightness(r, g, b float64) float64 {
	return (math.Max(r, math.Max(g, b)) + math.Min(r, math.Min(g, b))) / 2
}
