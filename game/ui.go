package game

import (
	"fmt"
	"image/color"

	"github.com/golang/geo/r2"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// pointer is the mouse state sampled once per frame
type pointer struct {
	X, Y        float64
	Pressed     bool
	JustPressed bool
}

// box is an axis-aligned screen rectangle
type box struct {
	X, Y, W, H float64
}

func (b box) contains(x, y float64) bool {
	return r2.RectFromPoints(r2.Point{X: b.X, Y: b.Y}, r2.Point{X: b.X + b.W, Y: b.Y + b.H}).
		ContainsPoint(r2.Point{X: x, Y: y})
}

// slider is a horizontal value slider dragged with the mouse
type slider struct {
	Label    string
	Bounds   box
	Min, Max float64
	Value    float64
	dragging bool
}

func newSlider(label string, bounds box, lo, hi, value float64) *slider {
	return &slider{
		Label:  label,
		Bounds: bounds,
		Min:    lo,
		Max:    hi,
		Value:  clamp(value, lo, hi),
	}
}

// valueAt maps a cursor x to a value, clamped to the range
func (s *slider) valueAt(x float64) float64 {
	t := (x - s.Bounds.X) / s.Bounds.W
	return clamp(s.Min+t*(s.Max-s.Min), s.Min, s.Max)
}

// knobX maps the current value back to screen x
func (s *slider) knobX() float64 {
	return s.Bounds.X + (s.Value-s.Min)/(s.Max-s.Min)*s.Bounds.W
}

// update follows a drag that started on the slider
func (s *slider) update(p pointer) {
	if p.JustPressed && s.Bounds.contains(p.X, p.Y) {
		s.dragging = true
	}
	if !p.Pressed {
		s.dragging = false
	}
	if s.dragging {
		s.Value = s.valueAt(p.X)
	}
}

func (s *slider) nudge(delta float64) {
	s.Value = clamp(s.Value+delta, s.Min, s.Max)
}

func (s *slider) draw(dst *ebiten.Image, face text.Face) {
	b := s.Bounds
	vector.DrawFilledRect(dst, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), colorSliderTrack, false)
	vector.DrawFilledRect(dst, float32(b.X), float32(b.Y), float32(s.knobX()-b.X), float32(b.H), colorSliderFill, false)
	vector.DrawFilledRect(dst, float32(s.knobX()-knobHalfWidth), float32(b.Y-2), knobHalfWidth*2, float32(b.H+4), colorSliderKnob, false)

	drawLabel(dst, face, fmt.Sprintf("%s %.1f", s.Label, s.Value), b.X+b.W+labelGap, b.Y, colorText)
}

// button fires on the frame the mouse is pressed inside it
type button struct {
	Label  string
	Bounds box
}

func (b *button) clicked(p pointer) bool {
	return p.JustPressed && b.Bounds.contains(p.X, p.Y)
}

func (b *button) draw(dst *ebiten.Image, face text.Face, enabled bool) {
	clr := colorButton
	if !enabled {
		clr = colorButtonDisabled
	}
	r := b.Bounds
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), clr, false)
	vector.StrokeRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 1, colorText, false)
	drawLabel(dst, face, b.Label, r.X+buttonPadding, r.Y+buttonPadding/2, colorText)
}

func drawLabel(dst *ebiten.Image, face text.Face, s string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, s, face, op)
}
