package game

import (
	"errors"
	"fmt"

	"github.com/golang/geo/r2"
)

// DampingMode selects how air resistance is applied each tick
type DampingMode string

const (
	// DampingPerTick multiplies velocity by AirResistance once per tick, whatever dt is
	DampingPerTick DampingMode = "per-tick"

	// DampingTimeScaled raises AirResistance to dt*TPS so the decay rate is frame-rate independent
	DampingTimeScaled DampingMode = "time-scaled"
)

// Config holds the physics, layout and control constants.
// It is passed by value and never mutated by the simulation.
type Config struct {
	// Gravity is the downward acceleration in units per second^2
	Gravity float64

	// Scale converts velocity units into pixels when integrating position
	Scale float64

	// AirResistance is the velocity multiplier applied by the damping step
	AirResistance float64

	// Restitution is the fraction of speed kept on a wall reflection
	Restitution float64

	// SettleSpeed is the speed below which a projectile in flight comes to rest
	SettleSpeed float64

	// Damping selects the damping function
	Damping DampingMode

	// WindowWidth is the logical screen width in pixels
	WindowWidth float64

	// WindowHeight is the logical screen height in pixels
	WindowHeight float64

	// Title is the window title
	Title string

	// TPS is the tick rate the presentation layer is capped at
	TPS int

	// ProjectileRadius is the radius of the projectile in pixels
	ProjectileRadius float64

	// LaunchOrigin is where the projectile rests between shots
	LaunchOrigin r2.Point

	// TargetWidth and TargetHeight are the target rectangle extents
	TargetWidth  float64
	TargetHeight float64

	// RelocateTweenSeconds is how long the drawn target takes to slide to a new pose
	RelocateTweenSeconds float64

	// IndicatorLength and IndicatorThickness size the launch direction marker
	IndicatorLength    float64
	IndicatorThickness float64

	// Control ranges in degrees and units per second
	MinAngle float64
	MaxAngle float64
	MinSpeed float64
	MaxSpeed float64

	// Initial slider values
	DefaultAngle float64
	DefaultSpeed float64
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return Config{
		Gravity:              9.81,
		Scale:                10.0,
		AirResistance:        0.995,
		Restitution:          0.75,
		SettleSpeed:          1.0,
		Damping:              DampingPerTick,
		WindowWidth:          800,
		WindowHeight:         600,
		Title:                "Launch!!!",
		TPS:                  60,
		ProjectileRadius:     5.0,
		LaunchOrigin:         r2.Point{X: 50, Y: 450},
		TargetWidth:          40,
		TargetHeight:         10,
		RelocateTweenSeconds: 0.25,
		IndicatorLength:      30,
		IndicatorThickness:   2,
		MinAngle:             -90,
		MaxAngle:             90,
		MinSpeed:             10,
		MaxSpeed:             100,
		DefaultAngle:         45,
		DefaultSpeed:         50,
	}
}

// ScreenWidth returns the window width in whole pixels
func (c Config) ScreenWidth() int {
	return int(c.WindowWidth)
}

// ScreenHeight returns the window height in whole pixels
func (c Config) ScreenHeight() int {
	return int(c.WindowHeight)
}

// Validate reports every inconsistent field in one joined error
func (c Config) Validate() error {
	var errs []error

	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		errs = append(errs, fmt.Errorf("window size %vx%v must be positive", c.WindowWidth, c.WindowHeight))
	}
	if c.TargetWidth <= 0 || c.TargetHeight <= 0 {
		errs = append(errs, fmt.Errorf("target size %vx%v must be positive", c.TargetWidth, c.TargetHeight))
	}
	if int(c.WindowWidth-c.TargetWidth) < 1 {
		errs = append(errs, fmt.Errorf("target width %v does not fit window width %v", c.TargetWidth, c.WindowWidth))
	}
	if int(c.WindowHeight/2) < 1 {
		errs = append(errs, fmt.Errorf("window height %v leaves no room to place the target", c.WindowHeight))
	}
	if c.ProjectileRadius <= 0 {
		errs = append(errs, fmt.Errorf("projectile radius %v must be positive", c.ProjectileRadius))
	}
	if c.Restitution <= 0 || c.Restitution > 1 {
		errs = append(errs, fmt.Errorf("restitution %v must be in (0, 1]", c.Restitution))
	}
	if c.AirResistance <= 0 || c.AirResistance > 1 {
		errs = append(errs, fmt.Errorf("air resistance %v must be in (0, 1]", c.AirResistance))
	}
	if c.SettleSpeed <= 0 {
		errs = append(errs, fmt.Errorf("settle speed %v must be positive", c.SettleSpeed))
	}
	if c.Gravity < 0 {
		errs = append(errs, fmt.Errorf("gravity %v must not be negative", c.Gravity))
	}
	if c.Scale <= 0 {
		errs = append(errs, fmt.Errorf("scale %v must be positive", c.Scale))
	}
	if c.TPS <= 0 {
		errs = append(errs, fmt.Errorf("tps %d must be positive", c.TPS))
	}
	if c.Damping != DampingPerTick && c.Damping != DampingTimeScaled {
		errs = append(errs, fmt.Errorf("unknown damping mode %q", c.Damping))
	}
	if c.MinAngle >= c.MaxAngle {
		errs = append(errs, fmt.Errorf("angle range [%v, %v] is empty", c.MinAngle, c.MaxAngle))
	} else if c.DefaultAngle < c.MinAngle || c.DefaultAngle > c.MaxAngle {
		errs = append(errs, fmt.Errorf("default angle %v outside [%v, %v]", c.DefaultAngle, c.MinAngle, c.MaxAngle))
	}
	if c.MinSpeed >= c.MaxSpeed {
		errs = append(errs, fmt.Errorf("speed range [%v, %v] is empty", c.MinSpeed, c.MaxSpeed))
	} else if c.DefaultSpeed < c.MinSpeed || c.DefaultSpeed > c.MaxSpeed {
		errs = append(errs, fmt.Errorf("default speed %v outside [%v, %v]", c.DefaultSpeed, c.MinSpeed, c.MaxSpeed))
	}

	return errors.Join(errs...)
}
