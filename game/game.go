package game

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
)

// Game represents the main game state
type Game struct {
	config   Config
	sim      *Simulation
	renderer *Renderer
	controls Controls
	logger   zerolog.Logger

	// panel is drawn only when the controls are the built-in panel
	panel *Panel

	// Drawn target pose, eased after each relocation
	sprite *targetSprite

	debug DebugState

	rng RandomSource
	now func() time.Time

	// Last update time for delta time calculation
	lastUpdateTime time.Time
}

// Option customises a Game
type Option func(*Game)

// WithRand sets the random source used to place the target
func WithRand(rng RandomSource) Option {
	return func(g *Game) { g.rng = rng }
}

// WithLogger sets the logger
func WithLogger(logger zerolog.Logger) Option {
	return func(g *Game) { g.logger = logger }
}

// WithControls replaces the on-screen panel as the input source
func WithControls(c Controls) Option {
	return func(g *Game) { g.controls = c }
}

// WithClock sets the wall clock used to measure frame time
func WithClock(now func() time.Time) Option {
	return func(g *Game) { g.now = now }
}

// NewGame creates a new game instance
func NewGame(config Config, opts ...Option) *Game {
	g := &Game{
		config:   config,
		renderer: NewRenderer(config),
		logger:   zerolog.Nop(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}

	if g.rng == nil {
		g.rng = NewRand(0)
	}
	if g.controls == nil {
		g.controls = NewPanel(config)
	}
	if p, ok := g.controls.(*Panel); ok {
		g.panel = p
	}

	g.sim = NewSimulation(config, g.rng, g.logger)
	g.sprite = newTargetSprite(Pose{Position: g.sim.Target.Position, Rotation: g.sim.Target.Rotation})

	g.logger.Info().
		Float64("target_x", g.sim.Target.Position.X).
		Float64("target_y", g.sim.Target.Position.Y).
		Float64("target_rotation", g.sim.Target.Rotation).
		Msg("game created")

	return g
}

// Simulation returns the simulation core
func (g *Game) Simulation() *Simulation {
	return g.sim
}

// Debug returns the current debug flags
func (g *Game) Debug() DebugState {
	return g.debug
}

// TargetPose returns where the target is currently drawn
func (g *Game) TargetPose() Pose {
	return g.sprite.pose
}

// Update advances the game by one frame
func (g *Game) Update() error {
	g.controls.Update()

	// Wall-clock delta; zero on the first frame
	now := g.now()
	var dt float64
	if !g.lastUpdateTime.IsZero() {
		dt = now.Sub(g.lastUpdateTime).Seconds()
	}
	g.lastUpdateTime = now

	res := g.sim.Step(dt, ControlState{
		Angle:  g.controls.Angle(),
		Speed:  g.controls.Speed(),
		Launch: g.controls.LaunchPressed(),
	})

	if res.Hit {
		g.sprite.moveTo(Pose{Position: g.sim.Target.Position, Rotation: g.sim.Target.Rotation}, g.config.RelocateTweenSeconds)
	}
	g.sprite.update(dt)

	if g.controls.OverlayToggled() {
		g.debug.ShowHitBox = !g.debug.ShowHitBox
		g.logger.Debug().Bool("show_hit_box", g.debug.ShowHitBox).Msg("debug overlay toggled")
	}

	return nil
}

// Draw renders the game
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Render(screen, g.sim, g.sprite.pose)
	if g.debug.ShowHitBox {
		g.renderer.RenderOverlay(screen, g.sim)
	}
	if g.panel != nil {
		g.panel.Draw(screen, g.sim.Projectile.CanLaunch())
	}
	g.renderer.RenderHUD(screen, g.sim.Stats)
}

// Layout keeps a fixed logical screen size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.config.ScreenWidth(), g.config.ScreenHeight()
}
