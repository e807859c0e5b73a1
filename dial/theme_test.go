package dial

import (
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestThemeForSchemes(t *testing.T) {
	light := ThemeFor(SchemeLight)
	assert.Equal(t, color.RGBA{0xff, 0xff, 0xff, 0xff}, light.Background)
	assert.Equal(t, color.RGBA{0x00, 0x00, 0x00, 0xff}, light.Border)
	assert.Equal(t, color.RGBA{0x00, 0x00, 0x00, 0xff}, light.Text)

	dark := ThemeFor(SchemeDark)
	assert.Equal(t, color.RGBA{0x00, 0x00, 0x00, 0xff}, dark.Background)
	assert.Zero(t, dark.Border.A, "dark scheme draws no ring outline")
	assert.Equal(t, color.RGBA{0xff, 0xff, 0xff, 0xff}, dark.Text)
}

func TestThemeForUnknownSchemeFallsBackToLight(t *testing.T) {
	assert.Equal(t, ThemeFor(SchemeLight), ThemeFor(Scheme(42)))
}

// channelsClose compares two colors allowing one step of 8-bit rounding
// from the HCL round trip.
func channelsClose(t *testing.T, want, got color.RGBA) {
	t.Helper()
	assert.LessOrEqual(t, math.Abs(float64(want.R)-float64(got.R)), 1.0)
	assert.LessOrEqual(t, math.Abs(float64(want.G)-float64(got.G)), 1.0)
	assert.LessOrEqual(t, math.Abs(float64(want.B)-float64(got.B)), 1.0)
}

func TestBlendAccentEndpoints(t *testing.T) {
	green := color.RGBA{0x20, 0xc0, 0x40, 0xff}
	red := color.RGBA{0xd0, 0x30, 0x20, 0xff}

	channelsClose(t, green, BlendAccent(green, red, 0))
	channelsClose(t, red, BlendAccent(green, red, 1))

	// Out-of-range fractions clamp to the endpoints.
	channelsClose(t, green, BlendAccent(green, red, -3))
	channelsClose(t, red, BlendAccent(green, red, 2))
}

func TestBlendAccentIsOpaque(t *testing.T) {
	a := BlendAccent(color.RGBA{0, 0xff, 0, 0xff}, color.RGBA{0xff, 0, 0, 0xff}, 0.5)
	assert.EqualValues(t, 0xff, a.A)
}
