package game

import (
	"github.com/rs/zerolog"
)

// ControlState is a snapshot of the control inputs for one frame
type ControlState struct {
	Angle  float64
	Speed  float64
	Launch bool
}

// StepResult reports the events of one simulation step
type StepResult struct {
	Launched bool
	Hit      bool
	Settled  bool
	Bounced  bool
}

// Stats counts shots over the session
type Stats struct {
	Shots   int
	Hits    int
	Misses  int
	Bounces int
}

// Simulation owns the projectile and the target and steps them in a fixed order
type Simulation struct {
	Projectile *Projectile
	Target     *Target
	Stats      Stats

	cfg    Config
	rng    RandomSource
	logger zerolog.Logger
}

// NewSimulation creates a simulation with the projectile at rest and the target placed
func NewSimulation(cfg Config, rng RandomSource, logger zerolog.Logger) *Simulation {
	return &Simulation{
		Projectile: NewProjectile(cfg),
		Target:     NewTarget(cfg, rng),
		cfg:        cfg,
		rng:        rng,
		logger:     logger,
	}
}

// Step advances the simulation by dt seconds.
// Order: integrate, hit test, launch request, indicator refresh.
func (s *Simulation) Step(dt float64, in ControlState) StepResult {
	var res StepResult

	out := s.Projectile.Integrate(dt)
	if out.Bounced() {
		res.Bounced = true
		s.Stats.Bounces++
	}
	if out.Settled() {
		res.Settled = true
		s.Stats.Misses++
		s.logger.Debug().Int("shots", s.Stats.Shots).Msg("projectile settled")
	}

	if s.Target.CheckCollision(s.Projectile) {
		res.Hit = true
		s.Stats.Hits++
		s.logger.Info().
			Float64("x", s.Projectile.Position.X).
			Float64("y", s.Projectile.Position.Y).
			Int("hits", s.Stats.Hits).
			Msg("target hit")
		s.Target.Relocate(s.rng)
		s.Projectile.Reset()
	}

	if in.Launch && s.Projectile.Launch(in.Angle, in.Speed) {
		res.Launched = true
		s.Stats.Shots++
		s.logger.Debug().Float64("angle", in.Angle).Float64("speed", in.Speed).Msg("launched")
	}

	s.Projectile.UpdateIndicator(in.Angle)

	return res
}
