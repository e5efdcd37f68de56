package flappy

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// ObstaclePair is an upper and a lower barrier with a gap between them.
type ObstaclePair struct {
	X      float64 // Left edge
	GapY   int     // Top of the gap
	Scored bool    // Whether this pair has already awarded its point
}

// ObstacleSet holds the live pairs in spawn order, which is also
// left-to-right screen order.
type ObstacleSet struct {
	pairs     []ObstaclePair
	cfg       config.FlappyObstacles
	spawnX    float64 // right edge of the playfield
	groundTop float64
	rng       *rand.Rand
}

// NewObstacleSet creates an empty set. groundTop bounds where gaps may open.
func NewObstacleSet(cfg config.FlappyConfig, groundTop float64, rng *rand.Rand) *ObstacleSet {
	return &ObstacleSet{
		cfg:       cfg.Obstacles,
		spawnX:    cfg.Playfield.Width,
		groundTop: groundTop,
		rng:       rng,
	}
}

// Reset removes every pair.
func (s *ObstacleSet) Reset() {
	s.pairs = s.pairs[:0]
}

// Pairs returns the live pairs, leftmost first. The slice is owned by the set.
func (s *ObstacleSet) Pairs() []ObstaclePair {
	return s.pairs
}

// Len returns the number of live pairs.
func (s *ObstacleSet) Len() int {
	return len(s.pairs)
}

// Width returns the shared obstacle width.
func (s *ObstacleSet) Width() float64 {
	return s.cfg.Width
}

// Gap returns the shared gap height.
func (s *ObstacleSet) Gap() float64 {
	return s.cfg.Gap
}

// Update scrolls, recycles and spawns pairs for one tick. Pairs only move
// while Running. Pairs that have fully left the screen are always at the
// front, so they are dropped as a prefix.
func (s *ObstacleSet) Update(phase Phase, tick int) {
	if phase == PhaseRunning {
		for i := range s.pairs {
			s.pairs[i].X -= s.cfg.Speed
		}
	}

	stale := 0
	for stale < len(s.pairs) && s.pairs[stale].X <= -s.cfg.Width {
		stale++
	}
	if stale > 0 {
		s.pairs = append(s.pairs[:0], s.pairs[stale:]...)
	}

	if phase == PhaseRunning && tick%s.cfg.SpawnEvery == 0 {
		s.spawn()
	}
}

// spawn appends a pair at the right edge with a random gap anchor.
func (s *ObstacleSet) spawn() {
	span := math.Max(s.groundTop-s.cfg.SpawnReserve, 0) / s.cfg.SpawnSpread
	gapY := int(math.Round(s.cfg.SpawnTop + s.rng.Float64()*span))
	s.pairs = append(s.pairs, ObstaclePair{X: s.spawnX, GapY: gapY})
}

// Collides reports whether the flyer's box touches either barrier of p.
// Edges count as contact.
func (s *ObstacleSet) Collides(p ObstaclePair, flyer core.Rect) bool {
	if p.X > flyer.Right() || p.X+s.cfg.Width < flyer.X {
		return false
	}
	gapTop := float64(p.GapY)
	return gapTop >= flyer.Y || gapTop+s.cfg.Gap <= flyer.Bottom()
}

// Cleared reports whether p's trailing edge is past the flyer's scoring line.
func (s *ObstacleSet) Cleared(p ObstaclePair, flyerX float64) bool {
	return p.X+s.cfg.Width <= flyerX-s.cfg.ScoreOffset
}
