package dial

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Scheme is the host's light/dark display mode. The core never reads it
// from ambient state; the integration layer resolves whatever the
// platform reports into a Scheme and asks for the matching Theme.
type Scheme int

const (
	SchemeLight Scheme = iota
	SchemeDark
)

// Theme is the resolved palette a scene is composed with. A zero-alpha
// Border means the ring outline is not stroked at all.
type Theme struct {
	Background color.RGBA
	Border     color.RGBA
	Text       color.RGBA
	Tick       color.RGBA
	Accent     color.RGBA // hand and knob
}

var (
	lightTheme = Theme{
		Background: color.RGBA{0xff, 0xff, 0xff, 0xff},
		Border:     color.RGBA{0x00, 0x00, 0x00, 0xff},
		Text:       color.RGBA{0x00, 0x00, 0x00, 0xff},
		Tick:       color.RGBA{0x00, 0x00, 0x00, 0xff},
		Accent:     color.RGBA{0xd0, 0x30, 0x20, 0xff},
	}
	darkTheme = Theme{
		Background: color.RGBA{0x00, 0x00, 0x00, 0xff},
		Border:     color.RGBA{0x00, 0x00, 0x00, 0x00},
		Text:       color.RGBA{0xff, 0xff, 0xff, 0xff},
		Tick:       color.RGBA{0xff, 0xff, 0xff, 0xff},
		Accent:     color.RGBA{0xd0, 0x30, 0x20, 0xff},
	}
)

// ThemeFor returns the palette for a scheme. Anything that is not
// explicitly dark is treated as light, so an unrecognized platform value
// degrades to the readable default.
func ThemeFor(s Scheme) Theme {
	if s == SchemeDark {
		return darkTheme
	}
	return lightTheme
}

// BlendAccent interpolates between two accent colors in HCL space, which
// keeps the intermediate hues from washing out the way straight RGB
// interpolation does. t is clamped to [0, 1].
func BlendAccent(from, to color.RGBA, t float64) color.RGBA {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	a, _ := colorful.MakeColor(from)
	b, _ := colorful.MakeColor(to)
	r, g, bl := a.BlendHcl(b, t).Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: bl, A: 0xff}
}
