package gradient

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinearEndpoints(t *testing.T) {
	spec := LinearSpec(ToRight,
		Color(255, 0, 0, 0),
		Color(0, 0, 255, 1),
	)
	img := Rasterize(10, 4, spec)
	require.Equal(t, 10, img.Width)
	require.Equal(t, 4, img.Height)

	r, g, b, a := img.At(0, 0)
	assert.Equal(t, []float64{1, 0, 0, 1}, []float64{r, g, b, a})

	r, g, b, a = img.At(9, 3)
	assert.Equal(t, []float64{0, 0, 1, 1}, []float64{r, g, b, a})

	// columns are uniform
	r0, _, _, _ := img.At(5, 0)
	r3, _, _, _ := img.At(5, 3)
	assert.Equal(t, r0, r3)
}

func TestLinearToBottomIsRotated(t *testing.T) {
	spec := LinearSpec(ToBottom,
		Color(255, 255, 255, 0),
		Color(0, 0, 0, 1),
	)
	img := Rasterize(3, 8, spec)
	require.Equal(t, 3, img.Width)
	require.Equal(t, 8, img.Height)

	top, _, _, _ := img.At(1, 0)
	bottom, _, _, _ := img.At(1, 7)
	assert.Equal(t, 1.0, top)
	assert.Equal(t, 0.0, bottom)

	// rows are uniform
	l, _, _, _ := img.At(0, 4)
	r, _, _, _ := img.At(2, 4)
	assert.Equal(t, l, r)
}

func TestNoneStopCarriesRGB(t *testing.T) {
	spec := LinearSpec(ToRight,
		ColorAlpha(66, 10, 14, 0.2, 0),
		None(1),
	)
	img := Rasterize(11, 1, spec)

	_, _, _, a0 := img.At(0, 0)
	assert.InDelta(t, 0.2, a0, 1e-9)

	r, g, b, a := img.At(10, 0)
	assert.InDelta(t, 0.0, a, 1e-9)
	// RGB carried from the colored stop, not blended toward black
	assert.InDelta(t, 66.0/255, r, 1e-9)
	assert.InDelta(t, 10.0/255, g, 1e-9)
	assert.InDelta(t, 14.0/255, b, 1e-9)

	_, _, _, mid := img.At(5, 0)
	assert.InDelta(t, 0.1, mid, 1e-9)
}

func TestRadialCenterAndCorner(t *testing.T) {
	spec := RadialSpec(
		Color(255, 255, 255, 0),
		Color(0, 0, 0, 1),
	)
	img := Rasterize(9, 9, spec)

	r, _, _, _ := img.At(4, 4)
	assert.Equal(t, 1.0, r) // center hits the first stop

	r, _, _, _ = img.At(0, 0)
	assert.Equal(t, 0.0, r) // farthest corner hits the last stop

	// edge midpoint is strictly between
	r, _, _, _ = img.At(4, 0)
	assert.Greater(t, r, 0.0)
	assert.Less(t, r, 1.0)
}

func TestRadialStopBeyondOneClamps(t *testing.T) {
	// a last stop at 1.5 is only partially reached at the corner
	spec := RadialSpec(
		Color(212, 169, 175, 0.55),
		Color(0, 0, 0, 1.5),
	)
	img := Rasterize(9, 9, spec)
	r, _, _, _ := img.At(0, 0)
	u := (1 - 0.55) / (1.5 - 0.55)
	want := (212.0 / 255) * (1 - u)
	assert.InDelta(t, want, r, 1e-9)
}

func TestStopsHoldOutsideRange(t *testing.T) {
	spec := LinearSpec(ToRight,
		Color(10, 20, 30, 0.25),
		Color(200, 100, 50, 0.75),
	)
	img := Rasterize(100, 1, spec)
	r, g, b, _ := img.At(0, 0)
	assert.InDelta(t, 10.0/255, r, 1e-9)
	assert.InDelta(t, 20.0/255, g, 1e-9)
	assert.InDelta(t, 30.0/255, b, 1e-9)
	r, _, _, _ = img.At(99, 0)
	assert.InDelta(t, 200.0/255, r, 1e-9)
}

func TestDeterminism(t *testing.T) {
	spec := RadialSpec(
		ColorAlpha(168, 223, 193, 0.4, 0.7),
		Color(196, 183, 200, 1),
	)
	a := Rasterize(33, 21, spec)
	b := Rasterize(33, 21, spec)
	assert.Equal(t, a.Pix, b.Pix)
}

func TestRadialMaxRadiusIsCorner(t *testing.T) {
	// sanity on the farthest-corner convention
	cx, cy := 4.0, 4.0
	assert.InDelta(t, math.Hypot(cx, cy), math.Sqrt(32), 1e-12)
}
