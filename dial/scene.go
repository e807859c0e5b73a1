package dial

import (
	"image/color"
	"math"
	"strconv"
)

// Proportions of the dial face, all relative to the diameter d (the
// smaller of the target width/height, so the dial always renders square).
const (
	minorTickLength    = 0.040 // radial extent of a minor mark
	minorTickThickness = 0.007
	majorTickLength    = 0.060
	majorTickThickness = 0.012
	labelRadiusFactor  = 0.75 // of the radius, not the diameter
	labelSizeDivisor   = 14   // font size = d / 14
	handLengthFactor   = 0.90 // of the radius
	handThickness      = 0.010
	handPivotFraction  = 0.10 // pivot sits 10% along the hand from the tail
	knobRadius         = 0.030
)

// Element is one drawable piece of a composed dial scene. The concrete
// types below carry resolved surface coordinates; a renderer type-switches
// over them and paints in slice order (later elements on top).
type Element interface {
	element()
}

// Disc is the filled background circle.
type Disc struct {
	Center Point
	Radius float64
	Fill   color.RGBA
}

// Ring is the stroked outline of the dial face. A zero-alpha Stroke means
// the outline is invisible and may be skipped entirely.
type Ring struct {
	Center Point
	Radius float64
	Width  float64
	Stroke color.RGBA
}

// Tick is a single graduation mark, drawn as a thick line segment from
// Inner to Outer along the mark's angle.
type Tick struct {
	Inner, Outer Point
	Thickness    float64
	Color        color.RGBA
	Major        bool
}

// Label is the numeric text next to a major tick. Center is the midpoint
// of the rendered text; Size is the font height in surface units.
type Label struct {
	Center Point
	Text   string
	Size   float64
	Color  color.RGBA
}

// Hand is the value pointer: a thin segment from the short counterweight
// tail through the pivot to the tip.
type Hand struct {
	Tail, Tip Point
	Thickness float64
	Color     color.RGBA
}

// Knob is the filled circle covering the hand's pivot.
type Knob struct {
	Center Point
	Radius float64
	Fill   color.RGBA
}

func (Disc) element()  {}
func (Ring) element()  {}
func (Tick) element()  {}
func (Label) element() {}
func (Hand) element()  {}
func (Knob) element()  {}

// Summary is the accessibility surface of a composed scene: the single
// element the host's assistive-technology layer should announce.
type Summary struct {
	Label string
	Value float64
	// UpdatesOften marks the value as frequently changing so screen
	// readers can rate-limit announcements.
	UpdatesOften bool
}

// Scene is one frame's worth of drawable elements plus the accessibility
// summary. Scenes are ephemeral, recomposed from scratch every redraw.
type Scene struct {
	Elements []Element
	Summary  Summary
}

// Compose builds the scene for the given value on a surface of
// width×height. The dial occupies a centered square with diameter
// min(width, height). handAngle is the hand's rendered angle in degrees:
// AngleFor(value) for a static hand, or the current spring angle when the
// caller animates it. Composition is pure: same inputs, same scene.
func (d *Dial) Compose(value, handAngle float64, theme Theme, width, height float64) Scene {
	diameter := math.Min(width, height)
	radius := diameter / 2
	center := Point{X: width / 2, Y: height / 2}

	elements := make([]Element, 0, 3+len(d.ticks.Minor)+2*len(d.ticks.Major))

	elements = append(elements, Disc{
		Center: center,
		Radius: radius,
		Fill:   theme.Background,
	})
	elements = append(elements, Ring{
		Center: center,
		Radius: radius,
		Width:  diameter * minorTickThickness,
		Stroke: theme.Border,
	})

	for _, v := range d.ticks.Minor {
		elements = append(elements, d.tick(v, radius, diameter*minorTickLength, diameter*minorTickThickness, theme.Tick, false, width, height))
	}
	for _, v := range d.ticks.Major {
		elements = append(elements, d.tick(v, radius, diameter*majorTickLength, diameter*majorTickThickness, theme.Tick, true, width, height))
		elements = append(elements, Label{
			Center: at(radius*labelRadiusFactor, d.AngleFor(v), width, height),
			Text:   strconv.Itoa(int(math.Round(v))),
			Size:   diameter / labelSizeDivisor,
			Color:  theme.Text,
		})
	}

	handLength := radius * handLengthFactor
	elements = append(elements, Hand{
		Tail:      at(-handLength*handPivotFraction, handAngle, width, height),
		Tip:       at(handLength*(1-handPivotFraction), handAngle, width, height),
		Thickness: diameter * handThickness,
		Color:     theme.Accent,
	})
	elements = append(elements, Knob{
		Center: center,
		Radius: diameter * knobRadius,
		Fill:   theme.Accent,
	})

	return Scene{
		Elements: elements,
		Summary: Summary{
			Label:        "Dial",
			Value:        value,
			UpdatesOften: true,
		},
	}
}

// tick builds one graduation mark: a segment of the given radial length
// ending at the rim, so the mark sits inset by half its own length.
func (d *Dial) tick(value, radius, length, thickness float64, c color.RGBA, major bool, width, height float64) Tick {
	angle := d.AngleFor(value)
	return Tick{
		Inner:     at(radius-length, angle, width, height),
		Outer:     at(radius, angle, width, height),
		Thickness: thickness,
		Color:     c,
		Major:     major,
	}
}
