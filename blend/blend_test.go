package blend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filtergram/filtergram/pixel"
)

func TestBoundaryValues(t *testing.T) {
	tests := []struct {
		name string
		fn   Func
		b, o float64
		want float64
	}{
		{"screen(0,0)=0", screen, 0, 0, 0},
		{"screen(1,1)=1", screen, 1, 1, 1},
		{"screen(b,0)=b", screen, 0.4, 0, 0.4},
		{"multiply(b,1)=b", multiply, 0.7, 1, 0.7},
		{"multiply(b,0)=0", multiply, 0.7, 0, 0},
		{"darken(b,b)=b", Funcs[Darken], 0.3, 0.3, 0.3},
		{"lighten takes max", Funcs[Lighten], 0.3, 0.6, 0.6},
		{"dodge(b,0)=b", colorDodge, 0.45, 0, 0.45},
		{"dodge(b,1)=1", colorDodge, 0.45, 1, 1},
		{"burn(b,0)=0", colorBurn, 0.45, 0, 0},
		{"burn(1,o)=1", colorBurn, 1, 0.5, 1},
		{"exclusion(b,0)=b", exclusion, 0.25, 0, 0.25},
		{"exclusion(b,1)=1-b", exclusion, 0.25, 1, 0.75},
		{"overlay dark doubles", overlay, 0.25, 0.5, 0.25},
		{"overlay light", overlay, 0.75, 0.5, 0.75},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.fn(tt.b, tt.o), 1e-9)
		})
	}
}

func TestSoftLightBranches(t *testing.T) {
	// o < 0.5 darkens, o > 0.5 lightens, o = 0.5 is the identity
	b := 0.4
	assert.InDelta(t, b, softLight(b, 0.5), 1e-9)
	assert.Less(t, softLight(b, 0.2), b)
	assert.Greater(t, softLight(b, 0.8), b)
	// D(b) switches at b = 0.25
	lo := 0.25 - 1e-9
	hi := 0.25 + 1e-9
	assert.InDelta(t, softLight(lo, 0.9), softLight(hi, 0.9), 1e-6)
}

func TestCompositeZeroAlphaIsIdentity(t *testing.T) {
	base := pixel.New(2, 2)
	base.Set(0, 0, 0.1, 0.2, 0.3, 1)
	base.Set(1, 0, 0.9, 0.8, 0.7, 0.5)
	base.Set(0, 1, 0.5, 0.5, 0.5, 1)
	base.Set(1, 1, 1, 0, 1, 1)
	over := pixel.New(2, 2)
	over.Set(0, 0, 1, 1, 1, 0)
	over.Set(1, 0, 0, 0, 0, 0)
	over.Set(0, 1, 0.3, 0.6, 0.9, 0)
	over.Set(1, 1, 0.5, 0.5, 0.5, 0)

	for mode := range modeNames {
		out, err := Composite(base, over, mode)
		require.NoError(t, err)
		assert.Equal(t, base.Pix, out.Pix, "mode %s", mode)
	}
}

func TestCompositeKeepsBaseAlpha(t *testing.T) {
	base := pixel.New(1, 1)
	base.Set(0, 0, 0.4, 0.4, 0.4, 0.6)
	over := pixel.New(1, 1)
	over.Set(0, 0, 1, 1, 1, 1)
	out, err := Composite(base, over, Screen)
	require.NoError(t, err)
	_, _, _, a := out.At(0, 0)
	assert.Equal(t, 0.6, a)
}

func TestCompositeScreenBrightens(t *testing.T) {
	base := pixel.New(1, 1)
	base.Set(0, 0, 0.5, 0.5, 0.5, 1)
	over := pixel.New(1, 1)
	over.Set(0, 0, 243.0/255, 106.0/255, 188.0/255, 0.3)
	out, err := Composite(base, over, Screen)
	require.NoError(t, err)
	r, g, b, _ := out.At(0, 0)
	assert.Greater(t, r, 0.5)
	assert.Greater(t, g, 0.5)
	assert.Greater(t, b, 0.5)
}

func TestCompositeDimensionMismatch(t *testing.T) {
	base := pixel.New(2, 2)
	over := pixel.New(3, 2)
	out, err := Composite(base, over, Multiply)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestColorizeKeepsLightness(t *testing.T) {
	base := pixel.New(1, 1)
	base.Set(0, 0, 0.8, 0.2, 0.1, 1)
	over := pixel.New(1, 1)
	over.Set(0, 0, 0, 0.5, 1, 1)
	out, err := Composite(base, over, Colorize)
	require.NoError(t, err)
	r, g, b, _ := out.At(0, 0)
	assert.InDelta(t, pixel.Lightness(0.8, 0.2, 0.1), pixel.Lightness(r, g, b), 1e-9)
	// hue comes from the overlay: blue-ish dominates
	assert.Greater(t, b, r)
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "soft-light", SoftLight.String())
	assert.Equal(t, "unknown", Mode(99).String())
}
