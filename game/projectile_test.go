package game

import (
	"math"
	"testing"

	"github.com/golang/geo/r2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const frame = 1.0 / 60

func TestNewProjectileAtRest(t *testing.T) {
	cfg := DefaultConfig()
	p := NewProjectile(cfg)

	assert.Equal(t, r2.Point{X: 50, Y: 450}, p.Position)
	assert.Equal(t, r2.Point{}, p.Velocity)
	assert.Equal(t, 5.0, p.Radius)
	assert.True(t, p.CanLaunch())
	assert.False(t, p.IsLaunched())
	assert.Equal(t, r2.Point{X: 55, Y: 455}, p.Indicator.Anchor)
	assert.Equal(t, -45.0, p.Indicator.Rotation)
}

func TestLaunchVelocity(t *testing.T) {
	tests := []struct {
		name         string
		angle, speed float64
	}{
		{"diagonal", 45, 50},
		{"flat slow", 0, 10},
		{"straight up", 90, 100},
		{"straight down", -90, 10},
		{"shallow down", -30, 75},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewProjectile(DefaultConfig())

			require.True(t, p.Launch(tt.angle, tt.speed))

			rad := tt.angle * math.Pi / 180
			assert.InDelta(t, tt.speed*math.Cos(rad), p.Velocity.X, 1e-9)
			assert.InDelta(t, -tt.speed*math.Sin(rad), p.Velocity.Y, 1e-9)
			assert.True(t, p.IsLaunched())
			assert.False(t, p.CanLaunch())
		})
	}
}

func TestLaunchRejectedInFlight(t *testing.T) {
	p := NewProjectile(DefaultConfig())
	require.True(t, p.Launch(45, 50))
	p.Integrate(frame)

	vel := p.Velocity
	pos := p.Position

	assert.False(t, p.Launch(-30, 100))
	assert.Equal(t, vel, p.Velocity)
	assert.Equal(t, pos, p.Position)
	assert.True(t, p.IsLaunched())
	assert.False(t, p.CanLaunch())
}

func TestIntegrateAtRestIsNoop(t *testing.T) {
	p := NewProjectile(DefaultConfig())

	out := p.Integrate(frame)

	assert.Equal(t, Outcome(0), out)
	assert.Equal(t, r2.Point{X: 50, Y: 450}, p.Position)
	assert.Equal(t, r2.Point{}, p.Velocity)
}

func TestIntegrateGravityOnly(t *testing.T) {
	cfg := DefaultConfig()
	cfg.AirResistance = 1
	p := NewProjectile(cfg)
	require.True(t, p.Launch(45, 50))

	// A zero-length first frame changes nothing
	p.Integrate(0)
	assert.Equal(t, r2.Point{X: 50, Y: 450}, p.Position)

	before := p.Velocity
	p.Integrate(frame)

	assert.InDelta(t, before.Y+9.81/60, p.Velocity.Y, 1e-9)
	assert.InDelta(t, before.X, p.Velocity.X, 1e-9)
}

func TestIntegrateDefaultOrder(t *testing.T) {
	p := NewProjectile(DefaultConfig())
	require.True(t, p.Launch(45, 50))
	before := p.Velocity

	p.Integrate(frame)

	wantVel := r2.Point{X: before.X * 0.995, Y: (before.Y + 9.81*frame) * 0.995}
	assert.InDelta(t, wantVel.X, p.Velocity.X, 1e-9)
	assert.InDelta(t, wantVel.Y, p.Velocity.Y, 1e-9)
	assert.InDelta(t, 50+wantVel.X*frame*10, p.Position.X, 1e-9)
	assert.InDelta(t, 450+wantVel.Y*frame*10, p.Position.Y, 1e-9)
}

func inFlight(p *Projectile, pos, vel r2.Point) {
	p.launched = true
	p.canLaunch = false
	p.Position = pos
	p.Velocity = vel
}

func TestIntegrateLeftWallReflectsWithoutClamp(t *testing.T) {
	p := NewProjectile(DefaultConfig())
	inFlight(p, r2.Point{X: -1, Y: 300}, r2.Point{X: -20, Y: 0})

	out := p.Integrate(frame)

	damped := -20 * 0.995
	assert.True(t, out&OutcomeBouncedX != 0)
	assert.InDelta(t, -damped*0.75, p.Velocity.X, 1e-9)
	assert.Greater(t, p.Velocity.X, 0.0)
	assert.InDelta(t, -1+damped*frame*10, p.Position.X, 1e-9)
	assert.Less(t, p.Position.X, 0.0)
}

func TestWallReflectionLosesEnergy(t *testing.T) {
	tests := []struct {
		name     string
		pos, vel r2.Point
		axisX    bool
	}{
		{"left", r2.Point{X: 1, Y: 300}, r2.Point{X: -40, Y: 5}, true},
		{"right", r2.Point{X: 788, Y: 300}, r2.Point{X: 60, Y: -5}, true},
		{"top", r2.Point{X: 400, Y: 1}, r2.Point{X: 5, Y: -30}, false},
		{"bottom", r2.Point{X: 400, Y: 589}, r2.Point{X: 5, Y: 30}, false},
		{"already past right", r2.Point{X: 795, Y: 300}, r2.Point{X: 3, Y: 0}, true},
		{"already below", r2.Point{X: 400, Y: 600}, r2.Point{X: 0, Y: 12}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewProjectile(DefaultConfig())
			inFlight(p, tt.pos, tt.vel)

			out := p.Integrate(frame)

			if tt.axisX {
				require.True(t, out&OutcomeBouncedX != 0)
				assert.LessOrEqual(t, math.Abs(p.Velocity.X), math.Abs(tt.vel.X))
				assert.NotEqual(t, math.Signbit(tt.vel.X), math.Signbit(p.Velocity.X))
			} else {
				require.True(t, out&OutcomeBouncedY != 0)
				assert.LessOrEqual(t, math.Abs(p.Velocity.Y), math.Abs(tt.vel.Y))
				assert.NotEqual(t, math.Signbit(tt.vel.Y), math.Signbit(p.Velocity.Y))
			}
		})
	}
}

func TestIntegrateSettlesBelowThreshold(t *testing.T) {
	p := NewProjectile(DefaultConfig())
	inFlight(p, r2.Point{X: 400, Y: 300}, r2.Point{X: 0.5, Y: -0.2})

	out := p.Integrate(frame)

	assert.True(t, out.Settled())
	assert.Equal(t, r2.Point{X: 50, Y: 450}, p.Position)
	assert.Equal(t, r2.Point{}, p.Velocity)
	assert.True(t, p.CanLaunch())
	assert.False(t, p.IsLaunched())
}

func TestIntegrateEventuallySettles(t *testing.T) {
	for _, angle := range []float64{45, 10, -20, 70} {
		p := NewProjectile(DefaultConfig())
		require.True(t, p.Launch(angle, 80))

		settled := false
		for i := 0; i < 20000 && !settled; i++ {
			settled = p.Integrate(frame).Settled()
			assert.Equal(t, !p.IsLaunched(), p.CanLaunch())
		}

		require.True(t, settled, "angle %v never settled", angle)
		assert.Equal(t, r2.Point{X: 50, Y: 450}, p.Position)
		assert.True(t, p.CanLaunch())
		assert.False(t, p.IsLaunched())
	}
}

func TestUpdateIndicator(t *testing.T) {
	p := NewProjectile(DefaultConfig())

	p.UpdateIndicator(-30)
	assert.Equal(t, 30.0, p.Indicator.Rotation)
	assert.Equal(t, p.Center(), p.Indicator.Anchor)

	require.True(t, p.Launch(-30, 50))
	p.Integrate(frame)
	p.UpdateIndicator(80)

	assert.Equal(t, 30.0, p.Indicator.Rotation)
	assert.Equal(t, r2.Point{X: 55, Y: 455}, p.Indicator.Anchor)
}

func TestDampingFunctions(t *testing.T) {
	cfg := DefaultConfig()
	v := r2.Point{X: 10, Y: -20}

	assert.Equal(t, v.Mul(0.995), PerTickDamping(v, 0.5, cfg))

	oneTick := TimeScaledDamping(v, frame, cfg)
	assert.InDelta(t, v.X*0.995, oneTick.X, 1e-9)
	assert.InDelta(t, v.Y*0.995, oneTick.Y, 1e-9)

	twoTicks := TimeScaledDamping(v, 2*frame, cfg)
	assert.InDelta(t, v.X*0.995*0.995, twoTicks.X, 1e-9)

	assert.Equal(t, v, TimeScaledDamping(v, 0, cfg))
}

func TestSetDampingSwapsBehaviour(t *testing.T) {
	p := NewProjectile(DefaultConfig())
	p.SetDamping(func(vel r2.Point, _ float64, _ Config) r2.Point { return vel })
	require.True(t, p.Launch(0, 50))

	p.Integrate(frame)

	assert.InDelta(t, 50.0, p.Velocity.X, 1e-9)
	assert.InDelta(t, 9.81/60, p.Velocity.Y, 1e-9)
}

func TestTimeScaledModeSelected(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Damping = DampingTimeScaled
	p := NewProjectile(cfg)
	require.True(t, p.Launch(0, 50))

	p.Integrate(2 * frame)

	assert.InDelta(t, 50*0.995*0.995, p.Velocity.X, 1e-9)
}
