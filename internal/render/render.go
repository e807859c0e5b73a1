// Package render rasterizes a composed dial scene onto an Ebiten image.
// It is the only place the demo touches drawing APIs; the dial package
// stays rendering-agnostic.
package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/dialkit/dial"
)

// Cell size of the debug font the labels are drawn with.
const (
	glyphWidth  = 8
	glyphHeight = 16
)

// Renderer draws scenes. It keeps a scratch image so label text can be
// rendered once and rescaled to the scene's font size without allocating
// per frame.
type Renderer struct {
	scratch *ebiten.Image
}

func New() *Renderer {
	return &Renderer{}
}

// Draw paints the scene's elements in order, so later elements end up on
// top exactly as composed.
func (r *Renderer) Draw(screen *ebiten.Image, scene dial.Scene) {
	for _, e := range scene.Elements {
		switch el := e.(type) {
		case dial.Disc:
			vector.DrawFilledCircle(screen, float32(el.Center.X), float32(el.Center.Y), float32(el.Radius), el.Fill, true)
		case dial.Ring:
			if el.Stroke.A == 0 {
				continue
			}
			vector.StrokeCircle(screen, float32(el.Center.X), float32(el.Center.Y), float32(el.Radius), float32(el.Width), el.Stroke, true)
		case dial.Tick:
			vector.StrokeLine(screen, float32(el.Inner.X), float32(el.Inner.Y), float32(el.Outer.X), float32(el.Outer.Y), float32(el.Thickness), el.Color, true)
		case dial.Label:
			r.drawLabel(screen, el)
		case dial.Hand:
			vector.StrokeLine(screen, float32(el.Tail.X), float32(el.Tail.Y), float32(el.Tip.X), float32(el.Tip.Y), float32(el.Thickness), el.Color, true)
		case dial.Knob:
			vector.DrawFilledCircle(screen, float32(el.Center.X), float32(el.Center.Y), float32(el.Radius), el.Fill, true)
		}
	}
}

// drawLabel renders the text into the scratch image at the debug font's
// native size, then draws it scaled and centered on the label position.
func (r *Renderer) drawLabel(screen *ebiten.Image, l dial.Label) {
	w := glyphWidth * len(l.Text)
	if r.scratch == nil || r.scratch.Bounds().Dx() < w {
		r.scratch = ebiten.NewImage(max(w, 8*glyphWidth), glyphHeight)
	}
	r.scratch.Clear()
	ebitenutil.DebugPrint(r.scratch, l.Text)

	scale := l.Size / glyphHeight
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(l.Center.X-float64(w)*scale/2, l.Center.Y-glyphHeight*scale/2)
	op.ColorScale.ScaleWithColor(l.Color)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(r.scratch, op)
}
