package dial

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func composeDefault(t *testing.T, theme Theme, w, h float64) (*Dial, Scene) {
	t.Helper()
	d := mustDial(t, DefaultConfig())
	scene := d.Compose(0, d.AngleFor(0), theme, w, h)
	return d, scene
}

func TestComposeLayering(t *testing.T) {
	_, scene := composeDefault(t, ThemeFor(SchemeLight), 200, 200)
	n := len(scene.Elements)
	require.Greater(t, n, 4)

	// Background first, pointer on top.
	assert.IsType(t, Disc{}, scene.Elements[0])
	assert.IsType(t, Ring{}, scene.Elements[1])
	assert.IsType(t, Hand{}, scene.Elements[n-2])
	assert.IsType(t, Knob{}, scene.Elements[n-1])

	// Every minor tick precedes every major tick.
	lastMinor, firstMajor := -1, n
	for i, e := range scene.Elements {
		if tick, ok := e.(Tick); ok {
			if tick.Major {
				if i < firstMajor {
					firstMajor = i
				}
			} else {
				lastMinor = i
			}
		}
	}
	assert.Less(t, lastMinor, firstMajor)
}

func TestComposeElementCounts(t *testing.T) {
	d, scene := composeDefault(t, ThemeFor(SchemeLight), 200, 200)

	var minors, majors, labels int
	for _, e := range scene.Elements {
		switch el := e.(type) {
		case Tick:
			if el.Major {
				majors++
			} else {
				minors++
			}
		case Label:
			labels++
		}
	}

	assert.Equal(t, len(d.Ticks().Major), majors)
	assert.Equal(t, len(d.Ticks().Minor), minors)
	assert.Equal(t, majors, labels)
	// Disc, ring, ticks, labels, hand, knob, nothing else.
	assert.Len(t, scene.Elements, 2+minors+majors+labels+2)
}

func TestComposeGeometry(t *testing.T) {
	_, scene := composeDefault(t, ThemeFor(SchemeLight), 200, 200)

	disc := scene.Elements[0].(Disc)
	assert.Equal(t, Point{100, 100}, disc.Center)
	assert.Equal(t, 100.0, disc.Radius)

	for _, e := range scene.Elements {
		switch el := e.(type) {
		case Tick:
			// Marks end at the rim; length depends on rank.
			outer := math.Hypot(el.Outer.X-100, el.Outer.Y-100)
			inner := math.Hypot(el.Inner.X-100, el.Inner.Y-100)
			assert.InDelta(t, 100.0, outer, 1e-9)
			if el.Major {
				assert.InDelta(t, 200*majorTickLength, outer-inner, 1e-9)
				assert.InDelta(t, 200*majorTickThickness, el.Thickness, 1e-9)
			} else {
				assert.InDelta(t, 200*minorTickLength, outer-inner, 1e-9)
				assert.InDelta(t, 200*minorTickThickness, el.Thickness, 1e-9)
			}
		case Label:
			// Labels sit at 75% of the radius.
			r := math.Hypot(el.Center.X-100, el.Center.Y-100)
			assert.InDelta(t, 75.0, r, 1e-9)
			assert.InDelta(t, 200.0/labelSizeDivisor, el.Size, 1e-9)
		}
	}
}

func TestComposeLabelsAreRoundedIntegers(t *testing.T) {
	d := mustDial(t, Config{
		Min: 0, Max: 1,
		MajorStep:    0.25,
		Subdivisions: 0,
		StartAngle:   -225, EndAngle: 45,
	})
	scene := d.Compose(0, d.AngleFor(0), ThemeFor(SchemeLight), 100, 100)

	var texts []string
	for _, e := range scene.Elements {
		if l, ok := e.(Label); ok {
			texts = append(texts, l.Text)
		}
	}
	assert.Equal(t, []string{"0", "0", "1", "1", "1"}, texts)
}

func TestComposeHandPivot(t *testing.T) {
	d := mustDial(t, DefaultConfig())
	// Hand pointing straight up (north is -90° with y down).
	scene := d.Compose(50, -90, ThemeFor(SchemeLight), 200, 200)

	var hand Hand
	found := false
	for _, e := range scene.Elements {
		if h, ok := e.(Hand); ok {
			hand, found = h, true
		}
	}
	require.True(t, found)

	// Total length is 90% of the radius, with the pivot 10% along it:
	// tip 81 above center, counterweight tail 9 below.
	assert.InDelta(t, 100, hand.Tip.X, 1e-9)
	assert.InDelta(t, 100-81, hand.Tip.Y, 1e-9)
	assert.InDelta(t, 100, hand.Tail.X, 1e-9)
	assert.InDelta(t, 100+9, hand.Tail.Y, 1e-9)
	assert.InDelta(t, 200*handThickness, hand.Thickness, 1e-9)
}

func TestComposeSquareFit(t *testing.T) {
	_, scene := composeDefault(t, ThemeFor(SchemeLight), 320, 200)

	// The dial is sized by the smaller dimension and stays centered.
	disc := scene.Elements[0].(Disc)
	assert.Equal(t, 100.0, disc.Radius)
	assert.Equal(t, Point{160, 100}, disc.Center)

	knob := scene.Elements[len(scene.Elements)-1].(Knob)
	assert.InDelta(t, 200*knobRadius, knob.Radius, 1e-9)
}

func TestComposeDarkSchemeRingInvisible(t *testing.T) {
	_, light := composeDefault(t, ThemeFor(SchemeLight), 200, 200)
	_, dark := composeDefault(t, ThemeFor(SchemeDark), 200, 200)

	assert.NotZero(t, light.Elements[1].(Ring).Stroke.A)
	assert.Zero(t, dark.Elements[1].(Ring).Stroke.A)
}

func TestComposeSummary(t *testing.T) {
	d := mustDial(t, DefaultConfig())
	scene := d.Compose(37.2, d.AngleFor(37.2), ThemeFor(SchemeLight), 200, 200)

	assert.Equal(t, "Dial", scene.Summary.Label)
	assert.Equal(t, 37.2, scene.Summary.Value)
	assert.True(t, scene.Summary.UpdatesOften)
}

func TestComposeOutOfRangeValue(t *testing.T) {
	// Per-frame composition has no error path: out-of-range values render,
	// with the hand extrapolated past the scale.
	d := mustDial(t, DefaultConfig())
	scene := d.Compose(140, d.AngleFor(140), ThemeFor(SchemeDark), 200, 200)
	assert.NotEmpty(t, scene.Elements)
}
