package game

import (
	"math"

	"github.com/golang/geo/r2"
)

// DampingFunc applies air resistance to a velocity for one tick of length dt
type DampingFunc func(vel r2.Point, dt float64, cfg Config) r2.Point

// PerTickDamping multiplies the velocity by AirResistance once per tick.
// The decay therefore depends on the frame rate.
func PerTickDamping(vel r2.Point, _ float64, cfg Config) r2.Point {
	return vel.Mul(cfg.AirResistance)
}

// TimeScaledDamping applies AirResistance as if it were calibrated for one tick
// at cfg.TPS, so a slow frame decays more than a fast one.
func TimeScaledDamping(vel r2.Point, dt float64, cfg Config) r2.Point {
	return vel.Mul(math.Pow(cfg.AirResistance, dt*float64(cfg.TPS)))
}

// dampingFor returns the damping function selected by mode
func dampingFor(mode DampingMode) DampingFunc {
	if mode == DampingTimeScaled {
		return TimeScaledDamping
	}
	return PerTickDamping
}

// reflectAxis bounces a velocity component when pos touches either bound.
// The position is only tested, never pulled back inside.
func reflectAxis(pos, vel, upper, restitution float64) (float64, bool) {
	if pos <= 0 || pos >= upper {
		return -vel * restitution, true
	}
	return vel, false
}

// launchVelocity projects a speed along an angle measured from the horizontal.
// Up is negative y on screen.
func launchVelocity(angleDeg, speed float64) r2.Point {
	rad := angleDeg * math.Pi / 180
	return r2.Point{
		X: speed * math.Cos(rad),
		Y: -speed * math.Sin(rad),
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}
