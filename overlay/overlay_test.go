package overlay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filtergram/filtergram/gradient"
)

func TestBuildSolid(t *testing.T) {
	img := Build(3, 2, Solid(243, 106, 188), 30)
	require.Equal(t, 3, img.Width)
	require.Equal(t, 2, img.Height)
	r, g, b, a := img.At(2, 1)
	assert.InDelta(t, 243.0/255, r, 1e-9)
	assert.InDelta(t, 106.0/255, g, 1e-9)
	assert.InDelta(t, 188.0/255, b, 1e-9)
	assert.InDelta(t, 0.3, a, 1e-9)
}

func TestBuildFullOpacityLeavesAlpha(t *testing.T) {
	img := Build(2, 2, Solid(0, 0, 0), 100)
	_, _, _, a := img.At(0, 0)
	assert.Equal(t, 1.0, a)
}

func TestBuildZeroOpacityIsTransparent(t *testing.T) {
	img := Build(4, 4, Solid(255, 255, 255), 0)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			_, _, _, a := img.At(x, y)
			assert.Equal(t, 0.0, a)
		}
	}
}

func TestBuildGradientScalesStopAlpha(t *testing.T) {
	spec := gradient.LinearSpec(gradient.ToRight,
		gradient.ColorAlpha(66, 10, 14, 0.2, 0),
		gradient.None(1),
	)
	img := Build(11, 1, Gradient(spec), 50)
	_, _, _, a := img.At(0, 0)
	// stop alpha 0.2 times 50% opacity
	assert.InDelta(t, 0.1, a, 1e-9)
	_, _, _, a = img.At(10, 0)
	assert.InDelta(t, 0.0, a, 1e-9)
}

func TestBuildMatchesRequestedSize(t *testing.T) {
	spec := gradient.RadialSpec(
		gradient.Color(255, 255, 255, 0),
		gradient.Color(0, 0, 0, 1),
	)
	img := Build(17, 9, Gradient(spec), 100)
	assert.Equal(t, 17, img.Width)
	assert.Equal(t, 9, img.Height)
}
