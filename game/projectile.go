package game

import (
	"github.com/golang/geo/r2"
)

// Outcome describes what happened to a projectile during one Integrate call
type Outcome uint8

const (
	OutcomeBouncedX Outcome = 1 << iota
	OutcomeBouncedY
	OutcomeSettled
)

// Bounced reports whether either axis reflected
func (o Outcome) Bounced() bool {
	return o&(OutcomeBouncedX|OutcomeBouncedY) != 0
}

// Settled reports whether the projectile came to rest
func (o Outcome) Settled() bool {
	return o&OutcomeSettled != 0
}

// Indicator is the pose of the launch direction marker
type Indicator struct {
	// Anchor is the point the marker pivots around
	Anchor r2.Point

	// Rotation in degrees, clockwise on screen
	Rotation float64
}

// Projectile is the single launched body.
// Position is the top-left of the drawn circle's bounding box.
type Projectile struct {
	Position r2.Point
	Velocity r2.Point
	Radius   float64

	Indicator Indicator

	launched  bool
	canLaunch bool

	cfg     Config
	damping DampingFunc
}

// NewProjectile creates a projectile at rest on the launch origin
func NewProjectile(cfg Config) *Projectile {
	p := &Projectile{
		Radius:  cfg.ProjectileRadius,
		cfg:     cfg,
		damping: dampingFor(cfg.Damping),
	}
	p.Reset()
	p.UpdateIndicator(cfg.DefaultAngle)
	return p
}

// IsLaunched reports whether the projectile is in flight
func (p *Projectile) IsLaunched() bool {
	return p.launched
}

// CanLaunch reports whether the projectile is at rest and may be launched
func (p *Projectile) CanLaunch() bool {
	return p.canLaunch
}

// SetDamping swaps the air resistance function
func (p *Projectile) SetDamping(fn DampingFunc) {
	p.damping = fn
}

// Center returns the middle of the drawn circle
func (p *Projectile) Center() r2.Point {
	return p.Position.Add(r2.Point{X: p.Radius, Y: p.Radius})
}

// Speed returns the magnitude of the velocity
func (p *Projectile) Speed() float64 {
	return p.Velocity.Norm()
}

// Launch sets the projectile in flight. It is ignored while already in flight
// and reports whether the launch happened.
func (p *Projectile) Launch(angleDeg, speed float64) bool {
	if !p.canLaunch {
		return false
	}
	p.Velocity = launchVelocity(angleDeg, speed)
	p.launched = true
	p.canLaunch = false
	return true
}

// Integrate advances the projectile by dt seconds
func (p *Projectile) Integrate(dt float64) Outcome {
	if !p.launched {
		return 0
	}
	var out Outcome

	// Gravity, then drag
	p.Velocity.Y += p.cfg.Gravity * dt
	p.Velocity = p.damping(p.Velocity, dt, p.cfg)

	p.Position = p.Position.Add(p.Velocity.Mul(dt * p.cfg.Scale))

	// Walls
	var bounced bool
	p.Velocity.X, bounced = reflectAxis(p.Position.X, p.Velocity.X, p.cfg.WindowWidth-2*p.Radius, p.cfg.Restitution)
	if bounced {
		out |= OutcomeBouncedX
	}
	p.Velocity.Y, bounced = reflectAxis(p.Position.Y, p.Velocity.Y, p.cfg.WindowHeight-2*p.Radius, p.cfg.Restitution)
	if bounced {
		out |= OutcomeBouncedY
	}

	if p.Velocity.Norm() < p.cfg.SettleSpeed {
		p.Reset()
		out |= OutcomeSettled
	}

	return out
}

// Reset puts the projectile back on the launch origin, ready to launch
func (p *Projectile) Reset() {
	p.launched = false
	p.Position = p.cfg.LaunchOrigin
	p.Velocity = r2.Point{}
	p.canLaunch = true
}

// UpdateIndicator points the direction marker at the pending launch angle.
// The marker is frozen while in flight.
func (p *Projectile) UpdateIndicator(angleDeg float64) {
	if p.launched {
		return
	}
	p.Indicator = Indicator{
		Anchor:   p.Center(),
		Rotation: -angleDeg,
	}
}
