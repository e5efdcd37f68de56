package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Ground is the scrolling strip at the bottom of the playfield. It is also
// the floor the flyer cannot pass.
type Ground struct {
	X        float64 // Scroll offset, in (-tile width, 0]
	Collided bool    // Set once the flyer has hit it; cleared only by restart

	speed  float64
	tile   core.Image
	fieldH float64
}

// NewGround creates a ground strip sitting on the bottom edge.
func NewGround(cfg config.FlappyConfig, tile core.Image) *Ground {
	return &Ground{
		speed:  cfg.Ground.Speed,
		tile:   tile,
		fieldH: cfg.Playfield.Height,
	}
}

// Top returns the y of the ground's upper edge.
func (g *Ground) Top() float64 {
	return g.fieldH - g.tile.Height()
}

// Update scrolls one tick while Running and wraps after a full tile.
func (g *Ground) Update(phase Phase) {
	if phase != PhaseRunning {
		return
	}
	g.X -= g.speed
	if g.X <= -g.tile.Width() {
		g.X = 0
	}
}

// Floor returns the lowest y the flyer's top may reach.
func (g *Ground) Floor(f *Flyer) float64 {
	return g.Top() - f.Rect().H
}

// Collides reports whether the flyer has reached the floor. On contact the
// flyer is clamped onto the floor, stopped, and the sticky flag is set.
func (g *Ground) Collides(f *Flyer) bool {
	floor := g.Floor(f)
	if f.Y < floor {
		return false
	}
	f.Y = floor
	f.Velocity = 0
	g.Collided = true
	return true
}

// Tile returns the ground sprite.
func (g *Ground) Tile() core.Image {
	return g.tile
}
