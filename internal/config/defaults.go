package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the built-in configuration. It matches the
// embedded defaults/flappy.yaml.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Loop: FlappyLoop{
			TicksPerSecond:  60,
			MaxCatchUpTicks: 5,
		},
		Playfield: FlappyPlayfield{
			Width:  450,
			Height: 600,
		},
		Player: FlappyPlayer{
			X:      80,
			StartY: 250,
		},
		Physics: FlappyPhysics{
			Gravity:      0.25,
			JumpImpulse:  4.8,
			TiltAngle:    -25,
			RotationStep: 10,
			MaxRotation:  90,
			FlapPeriod:   5,
		},
		Obstacles: FlappyObstacles{
			Width:        52,
			Gap:          90,
			SpawnEvery:   100,
			Speed:        2,
			SpawnTop:     100,
			SpawnReserve: 180,
			SpawnSpread:  1.5,
			ScoreOffset:  2,
		},
		Ground: FlappyGround{
			Speed: 2,
		},
		Audio: FlappyAudio{
			Enabled:    true,
			Volume:     0.6,
			SampleRate: 44100,
			DieDelay:   350 * time.Millisecond,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
