package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

//go:generate go tool mockgen -destination=./mocks/controls_mock.go -package=mocks . Controls

// Controls is the source of the live control inputs
type Controls interface {
	// Update samples input for the current frame
	Update()

	// Angle returns the pending launch angle in degrees
	Angle() float64

	// Speed returns the pending launch speed
	Speed() float64

	// LaunchPressed returns true on the frame a launch was requested
	LaunchPressed() bool

	// OverlayToggled returns true on the frame the debug overlay was toggled
	OverlayToggled() bool
}

// panelKeys is the keyboard state relevant to the panel for one frame
type panelKeys struct {
	Launch    bool
	Overlay   bool
	AngleUp   bool
	AngleDown bool
	SpeedUp   bool
	SpeedDown bool
}

// Panel provides the angle and speed sliders and the launch button
type Panel struct {
	Bounds box

	angle  *slider
	speed  *slider
	launch *button
	face   text.Face

	launchPressed  bool
	overlayToggled bool
}

// NewPanel lays the panel out in the bottom-right corner of the window
func NewPanel(cfg Config) *Panel {
	x := cfg.WindowWidth - panelWidth - panelMargin
	y := cfg.WindowHeight - panelHeight - panelMargin
	innerX := x + panelPadding
	innerY := y + panelPadding

	return &Panel{
		Bounds: box{X: x, Y: y, W: panelWidth, H: panelHeight},
		angle: newSlider("Angle",
			box{X: innerX, Y: innerY, W: sliderWidth, H: sliderHeight},
			cfg.MinAngle, cfg.MaxAngle, cfg.DefaultAngle),
		speed: newSlider("Speed",
			box{X: innerX, Y: innerY + sliderSpacing, W: sliderWidth, H: sliderHeight},
			cfg.MinSpeed, cfg.MaxSpeed, cfg.DefaultSpeed),
		launch: &button{
			Label:  "Launch",
			Bounds: box{X: innerX, Y: innerY + 2*sliderSpacing, W: buttonWidth, H: buttonHeight},
		},
		face: text.NewGoXFace(basicfont.Face7x13),
	}
}

// Update samples the mouse and keyboard
func (p *Panel) Update() {
	cx, cy := ebiten.CursorPosition()
	ptr := pointer{
		X:           float64(cx),
		Y:           float64(cy),
		Pressed:     ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		JustPressed: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
	}
	keys := panelKeys{
		Launch:    inpututil.IsKeyJustPressed(ebiten.KeySpace),
		Overlay:   inpututil.IsKeyJustPressed(ebiten.KeyF3),
		AngleUp:   ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		AngleDown: ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		SpeedUp:   ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		SpeedDown: ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
	}
	p.apply(ptr, keys)
}

// apply folds one frame of input into the panel state
func (p *Panel) apply(ptr pointer, keys panelKeys) {
	p.angle.update(ptr)
	p.speed.update(ptr)

	if keys.AngleUp {
		p.angle.nudge(angleNudge)
	}
	if keys.AngleDown {
		p.angle.nudge(-angleNudge)
	}
	if keys.SpeedUp {
		p.speed.nudge(speedNudge)
	}
	if keys.SpeedDown {
		p.speed.nudge(-speedNudge)
	}

	p.launchPressed = keys.Launch || p.launch.clicked(ptr)
	p.overlayToggled = keys.Overlay
}

// Angle returns the angle slider value
func (p *Panel) Angle() float64 {
	return p.angle.Value
}

// Speed returns the speed slider value
func (p *Panel) Speed() float64 {
	return p.speed.Value
}

// LaunchPressed returns true on the frame Launch was clicked or Space pressed
func (p *Panel) LaunchPressed() bool {
	return p.launchPressed
}

// OverlayToggled returns true on the frame F3 was pressed
func (p *Panel) OverlayToggled() bool {
	return p.overlayToggled
}

// Draw renders the panel. The button is greyed out while a shot is in flight.
func (p *Panel) Draw(dst *ebiten.Image, canLaunch bool) {
	b := p.Bounds
	drawBox(dst, b, colorPanel)
	p.angle.draw(dst, p.face)
	p.speed.draw(dst, p.face)
	p.launch.draw(dst, p.face, canLaunch)
}
