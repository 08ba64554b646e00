package pixel

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNRGBARoundTrip(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	for i := range src.Pix {
		src.Pix[i] = uint8(i * 17 % 256)
	}
	m := FromNRGBA(src)
	require.Equal(t, 3, m.Width)
	require.Equal(t, 2, m.Height)
	out := m.ToNRGBA()
	assert.Equal(t, src.Pix, out.Pix)
}

func TestFromNRGBAOffsetBounds(t *testing.T) {
	src := image.NewNRGBA(image.Rect(2, 3, 5, 5))
	src.SetNRGBA(2, 3, color.NRGBA{R: 255, A: 255})
	m := FromNRGBA(src)
	r, g, b, a := m.At(0, 0)
	assert.Equal(t, 1.0, r)
	assert.Equal(t, 0.0, g)
	assert.Equal(t, 0.0, b)
	assert.Equal(t, 1.0, a)
}

func TestRotate90(t *testing.T) {
	// 3x1 left-to-right ramp becomes a 1x3 top-to-bottom ramp.
	m := New(3, 1)
	m.Set(0, 0, 0, 0, 0, 1)
	m.Set(1, 0, 0.5, 0.5, 0.5, 1)
	m.Set(2, 0, 1, 1, 1, 1)
	out := m.Rotate90()
	require.Equal(t, 1, out.Width)
	require.Equal(t, 3, out.Height)
	r0, _, _, _ := out.At(0, 0)
	r1, _, _, _ := out.At(0, 1)
	r2, _, _, _ := out.At(0, 2)
	assert.Equal(t, 0.0, r0)
	assert.Equal(t, 0.5, r1)
	assert.Equal(t, 1.0, r2)
}

func TestClone(t *testing.T) {
	m := New(2, 2)
	m.Set(1, 1, 0.25, 0.5, 0.75, 1)
	c := m.Clone()
	c.Set(1, 1, 0, 0, 0, 0)
	r, _, _, _ := m.At(1, 1)
	assert.Equal(t, 0.25, r)
}

func TestHSLRoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b float64
	}{
		{"red", 1, 0, 0},
		{"gray", 0.5, 0.5, 0.5},
		{"olive", 0.5, 0.5, 0},
		{"skyish", 0.2, 0.6, 0.9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, s, l := RGBToHSL(tt.r, tt.g, tt.b)
			r, g, b := HSLToRGB(h, s, l)
			assert.InDelta(t, tt.r, r, 1e-9)
			assert.InDelta(t, tt.g, g, 1e-9)
			assert.InDelta(t, tt.b, b, 1e-9)
		})
	}
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, Clamp(-0.5))
	assert.Equal(t, 1.0, Clamp(1.5))
	assert.Equal(t, 0.3, Clamp(0.3))
}
