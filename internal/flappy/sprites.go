package flappy

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Catalog names used by the game.
const (
	SpriteSkyDay          = "sky-day"
	SpriteSkyNight        = "sky-night"
	SpriteBackgroundDay   = "background-day"
	SpriteBackgroundNight = "background-night"
	SpriteBase            = "base"
	SpriteMessage         = "message"
	SpriteGameOver        = "game-over"
	SpriteScorePanel      = "score"
	SpritePlay            = "play"

	SoundDie       = "die"
	SoundHit       = "hit"
	SoundPoint     = "point"
	SoundSwooshing = "swooshing"
	SoundWing      = "wing"
)

// imageSource resolves sprite names. *assets.Catalog implements it.
type imageSource interface {
	MustImage(name string) core.Image
}

// FlyerSprite names the sprite for a color and wing pose.
func FlyerSprite(c FlyerColor, p Pose) string {
	return fmt.Sprintf("%sbird-%sflap", c, p)
}

// ObstacleSprite names the lower (or, if inverted, upper) obstacle sprite.
func ObstacleSprite(c ObstacleColor, inverted bool) string {
	if inverted {
		return "pipe-" + c.String() + "-inverted"
	}
	return "pipe-" + c.String()
}

// DigitSprite names the sprite for a single decimal digit.
func DigitSprite(d int) string {
	return strconv.Itoa(d)
}

// RequiredImages lists every sprite the game may draw.
func RequiredImages() []string {
	names := []string{
		SpriteSkyDay, SpriteSkyNight,
		SpriteBackgroundDay, SpriteBackgroundNight,
		SpriteBase, SpriteMessage, SpriteGameOver, SpriteScorePanel, SpritePlay,
	}
	for c := FlyerYellow; c <= FlyerBlue; c++ {
		for p := PoseUp; p <= PoseDown; p++ {
			names = append(names, FlyerSprite(c, p))
		}
	}
	for c := ObstacleGreen; c <= ObstacleRed; c++ {
		names = append(names, ObstacleSprite(c, false), ObstacleSprite(c, true))
	}
	for d := 0; d <= 9; d++ {
		names = append(names, DigitSprite(d))
	}
	return names
}

// RequiredSounds lists every sound the game may play.
func RequiredSounds() []string {
	return []string{SoundDie, SoundHit, SoundPoint, SoundSwooshing, SoundWing}
}
