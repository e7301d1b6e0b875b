package game

import (
	"math/rand/v2"
	"time"

	"github.com/golang/geo/r2"
)

// RandomSource is the random generator used to place the target.
// *rand.Rand satisfies it.
type RandomSource interface {
	IntN(n int) int
}

// NewRand returns a PCG-backed generator. A zero seed uses the wall clock.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Target is the rectangle the projectile has to land in
type Target struct {
	// Position is the top-left corner
	Position r2.Point

	// Rotation in whole degrees; it only affects drawing
	Rotation float64

	// Size is the width and height
	Size r2.Point

	cfg Config
}

// NewTarget creates a target at a random pose
func NewTarget(cfg Config, rng RandomSource) *Target {
	t := &Target{
		Size: r2.Point{X: cfg.TargetWidth, Y: cfg.TargetHeight},
		cfg:  cfg,
	}
	t.Relocate(rng)
	return t
}

// Relocate moves the target to a new random pose in the upper half of the window
func (t *Target) Relocate(rng RandomSource) {
	t.Position = r2.Point{
		X: float64(rng.IntN(int(t.cfg.WindowWidth - t.Size.X))),
		Y: float64(rng.IntN(int(t.cfg.WindowHeight / 2))),
	}
	t.Rotation = float64(rng.IntN(180) - 90)
}

// Bounds returns the axis-aligned hit rectangle
func (t *Target) Bounds() r2.Rect {
	return r2.RectFromPoints(t.Position, t.Position.Add(t.Size))
}

// CheckCollision reports whether the projectile's position lies inside the target.
// The test ignores Rotation: the hit box stays axis-aligned even when the
// target is drawn rotated.
func (t *Target) CheckCollision(p *Projectile) bool {
	return t.Bounds().ContainsPoint(p.Position)
}
