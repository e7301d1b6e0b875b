package game

import (
	"fmt"
	"image/color"
	"math"

	"github.com/golang/geo/r2"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Pose is a drawn position and rotation in degrees
type Pose struct {
	Position r2.Point
	Rotation float64
}

// Renderer handles drawing the simulation
type Renderer struct {
	cfg Config

	// Solid sprites rotated with GeoM, created on first draw
	targetImage    *ebiten.Image
	indicatorImage *ebiten.Image
}

// NewRenderer creates a new renderer
func NewRenderer(cfg Config) *Renderer {
	return &Renderer{cfg: cfg}
}

// Render draws the indicator (only at rest), the projectile and the target
func (r *Renderer) Render(screen *ebiten.Image, sim *Simulation, target Pose) {
	screen.Fill(colorBackground)

	p := sim.Projectile
	if !p.IsLaunched() {
		r.drawIndicator(screen, p.Indicator)
	}

	c := p.Center()
	vector.DrawFilledCircle(screen, float32(c.X), float32(c.Y), float32(p.Radius), colorProjectile, true)

	r.drawTarget(screen, target, sim.Target.Size)
}

// RenderOverlay outlines the axis-aligned hit box and the rotated drawn shape
func (r *Renderer) RenderOverlay(screen *ebiten.Image, sim *Simulation) {
	b := sim.Target.Bounds()
	lo, size := b.Lo(), b.Size()
	vector.StrokeRect(screen, float32(lo.X), float32(lo.Y), float32(size.X), float32(size.Y), 1, colorHitBox, false)

	corners := rotatedCorners(sim.Target.Position, sim.Target.Size, sim.Target.Rotation)
	for i := range corners {
		from, to := corners[i], corners[(i+1)%len(corners)]
		vector.StrokeLine(screen, float32(from.X), float32(from.Y), float32(to.X), float32(to.Y), 1, colorIndicator, false)
	}

	pos := sim.Projectile.Position
	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("pos %.1f,%.1f vel %.1f,%.1f", pos.X, pos.Y, sim.Projectile.Velocity.X, sim.Projectile.Velocity.Y),
		hudX, hudY+16)
}

// RenderHUD prints the session statistics
func (r *Renderer) RenderHUD(screen *ebiten.Image, stats Stats) {
	hud := fmt.Sprintf("Shots: %d | Hits: %d | Misses: %d | Bounces: %d | TPS: %0.1f",
		stats.Shots, stats.Hits, stats.Misses, stats.Bounces, ebiten.ActualTPS())
	ebitenutil.DebugPrintAt(screen, hud, hudX, hudY)
}

func (r *Renderer) drawTarget(screen *ebiten.Image, pose Pose, size r2.Point) {
	if r.targetImage == nil {
		r.targetImage = solidImage(size.X, size.Y, colorTarget)
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Rotate(pose.Rotation * math.Pi / 180)
	op.GeoM.Translate(pose.Position.X, pose.Position.Y)
	screen.DrawImage(r.targetImage, op)
}

func (r *Renderer) drawIndicator(screen *ebiten.Image, ind Indicator) {
	if r.indicatorImage == nil {
		r.indicatorImage = solidImage(r.cfg.IndicatorLength, r.cfg.IndicatorThickness, colorIndicator)
	}
	// Pivot on the middle of the short edge
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, -r.cfg.IndicatorThickness/2)
	op.GeoM.Rotate(ind.Rotation * math.Pi / 180)
	op.GeoM.Translate(ind.Anchor.X, ind.Anchor.Y)
	screen.DrawImage(r.indicatorImage, op)
}

func solidImage(w, h float64, clr color.Color) *ebiten.Image {
	img := ebiten.NewImage(max(1, int(math.Round(w))), max(1, int(math.Round(h))))
	img.Fill(clr)
	return img
}

func drawBox(dst *ebiten.Image, b box, clr color.Color) {
	vector.DrawFilledRect(dst, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), clr, false)
}

// rotatedCorners returns the corners of a rectangle rotated clockwise about its
// top-left corner, in drawing order
func rotatedCorners(topLeft, size r2.Point, rotationDeg float64) [4]r2.Point {
	rad := rotationDeg * math.Pi / 180
	sin, cos := math.Sincos(rad)
	local := [4]r2.Point{
		{X: 0, Y: 0},
		{X: size.X, Y: 0},
		{X: size.X, Y: size.Y},
		{X: 0, Y: size.Y},
	}
	var out [4]r2.Point
	for i, p := range local {
		out[i] = r2.Point{
			X: topLeft.X + p.X*cos - p.Y*sin,
			Y: topLeft.Y + p.X*sin + p.Y*cos,
		}
	}
	return out
}
