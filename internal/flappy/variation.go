package flappy

import "math/rand"

// Backdrop is the time-of-day scenery.
type Backdrop int

const (
	BackdropDay Backdrop = iota
	BackdropNight
)

func (b Backdrop) String() string {
	if b == BackdropNight {
		return "night"
	}
	return "day"
}

// FlyerColor is the flyer's color variant.
type FlyerColor int

const (
	FlyerYellow FlyerColor = iota
	FlyerRed
	FlyerBlue
)

var flyerColors = [...]string{"yellow", "red", "blue"}

func (c FlyerColor) String() string {
	if c < 0 || int(c) >= len(flyerColors) {
		return "unknown"
	}
	return flyerColors[c]
}

// ObstacleColor is the obstacle color variant.
type ObstacleColor int

const (
	ObstacleGreen ObstacleColor = iota
	ObstacleRed
)

func (c ObstacleColor) String() string {
	if c == ObstacleRed {
		return "red"
	}
	return "green"
}

// SceneVariation holds the cosmetic choices for one run. The flyer keeps
// its own color.
type SceneVariation struct {
	Backdrop Backdrop
	Obstacle ObstacleColor
}

// Roll picks a new backdrop, obstacle color and flyer color uniformly.
func (s *SceneVariation) Roll(rng *rand.Rand, flyer *Flyer) {
	s.Backdrop = Backdrop(rng.Intn(2))
	s.Obstacle = ObstacleColor(rng.Intn(2))
	flyer.SetVariation(rng)
}

// SkySprite names the full-screen sky for the backdrop.
func (s SceneVariation) SkySprite() string {
	if s.Backdrop == BackdropNight {
		return SpriteSkyNight
	}
	return SpriteSkyDay
}

// BackdropSprite names the scenery strip drawn above the ground.
func (s SceneVariation) BackdropSprite() string {
	if s.Backdrop == BackdropNight {
		return SpriteBackgroundNight
	}
	return SpriteBackgroundDay
}

// PipeSprite names the obstacle sprite for the rolled color.
func (s SceneVariation) PipeSprite(inverted bool) string {
	return ObstacleSprite(s.Obstacle, inverted)
}
