package game

import "image/color"

// Color constants
var (
	colorBackground     = color.NRGBA{R: 0, G: 0, B: 0, A: 255}
	colorProjectile     = color.NRGBA{R: 255, G: 0, B: 0, A: 255}
	colorIndicator      = color.NRGBA{R: 255, G: 255, B: 0, A: 255}
	colorTarget         = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	colorHitBox         = color.NRGBA{R: 0, G: 255, B: 0, A: 255}
	colorPanel          = color.NRGBA{R: 24, G: 28, B: 40, A: 220}
	colorSliderTrack    = color.NRGBA{R: 50, G: 56, B: 72, A: 255}
	colorSliderFill     = color.NRGBA{R: 66, G: 150, B: 250, A: 255}
	colorSliderKnob     = color.NRGBA{R: 200, G: 220, B: 255, A: 255}
	colorButton         = color.NRGBA{R: 41, G: 74, B: 122, A: 255}
	colorButtonDisabled = color.NRGBA{R: 60, G: 60, B: 60, A: 255}
	colorText           = color.NRGBA{R: 230, G: 230, B: 230, A: 255}
)

// Control panel layout, anchored to the bottom-right corner of the window
const (
	panelWidth    = 250.0
	panelHeight   = 96.0
	panelMargin   = 10.0
	panelPadding  = 8.0
	sliderWidth   = 140.0
	sliderHeight  = 12.0
	sliderSpacing = 26.0
	knobHalfWidth = 3.0
	labelGap      = 6.0
	buttonWidth   = 64.0
	buttonHeight  = 20.0
	buttonPadding = 6.0
)

// Keyboard nudges per tick while an arrow key is held
const (
	angleNudge = 0.5 // degrees
	speedNudge = 0.5 // units per second
)

// HUD placement
const (
	hudX = 8
	hudY = 8
)
