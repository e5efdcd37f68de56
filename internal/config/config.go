// Package config provides game configuration loaded from YAML files.
package config

import "time"

// FlappyConfig contains all tuning for the game. Distances are playfield
// pixels, speeds are pixels per tick, and periods are counted in ticks.
type FlappyConfig struct {
	Loop      FlappyLoop      `yaml:"loop"`
	Playfield FlappyPlayfield `yaml:"playfield"`
	Player    FlappyPlayer    `yaml:"player"`
	Physics   FlappyPhysics   `yaml:"physics"`
	Obstacles FlappyObstacles `yaml:"obstacles"`
	Ground    FlappyGround    `yaml:"ground"`
	Audio     FlappyAudio     `yaml:"audio"`
}

// FlappyLoop defines the fixed simulation rate.
type FlappyLoop struct {
	TicksPerSecond  int `yaml:"ticks_per_second"`
	MaxCatchUpTicks int `yaml:"max_catch_up_ticks"`
}

// FlappyPlayfield defines the logical drawing area.
type FlappyPlayfield struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// FlappyPlayer defines where the flyer starts.
type FlappyPlayer struct {
	X      float64 `yaml:"x"`
	StartY float64 `yaml:"start_y"`
}

// FlappyPhysics defines the flyer's motion.
type FlappyPhysics struct {
	Gravity      float64 `yaml:"gravity"`
	JumpImpulse  float64 `yaml:"jump_impulse"`  // upward speed set by a flap
	TiltAngle    float64 `yaml:"tilt_angle"`    // degrees, nose-up pose while rising
	RotationStep float64 `yaml:"rotation_step"` // degrees per tick while diving
	MaxRotation  float64 `yaml:"max_rotation"`  // degrees, straight down
	FlapPeriod   int     `yaml:"flap_period"`   // ticks per wing frame
}

// FlappyObstacles defines obstacle pairs and their spawning.
type FlappyObstacles struct {
	Width        float64 `yaml:"width"`
	Gap          float64 `yaml:"gap"`
	SpawnEvery   int     `yaml:"spawn_every"`
	Speed        float64 `yaml:"speed"`
	SpawnTop     float64 `yaml:"spawn_top"`     // smallest gap anchor
	SpawnReserve float64 `yaml:"spawn_reserve"` // space kept free above the ground
	SpawnSpread  float64 `yaml:"spawn_spread"`  // divisor narrowing the anchor range
	ScoreOffset  float64 `yaml:"score_offset"`  // how far past the flyer a pair counts as cleared
}

// FlappyGround defines the scrolling ground strip.
type FlappyGround struct {
	Speed float64 `yaml:"speed"`
}

// FlappyAudio defines sound playback.
type FlappyAudio struct {
	Enabled    bool          `yaml:"enabled"`
	Volume     float64       `yaml:"volume"` // 0..1
	SampleRate int           `yaml:"sample_rate"`
	DieDelay   time.Duration `yaml:"die_delay"`
}
