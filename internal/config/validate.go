package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks that the configuration can drive a game.
func (c FlappyConfig) Validate() error {
	switch {
	case c.Loop.TicksPerSecond <= 0:
		return invalid("loop.ticks_per_second must be positive, got %d", c.Loop.TicksPerSecond)
	case c.Loop.MaxCatchUpTicks <= 0:
		return invalid("loop.max_catch_up_ticks must be positive, got %d", c.Loop.MaxCatchUpTicks)
	case c.Playfield.Width <= 0 || c.Playfield.Height <= 0:
		return invalid("playfield must have a positive size, got %.0fx%.0f", c.Playfield.Width, c.Playfield.Height)
	case c.Player.X < 0 || c.Player.X >= c.Playfield.Width:
		return invalid("player.x %.1f is outside the playfield", c.Player.X)
	case c.Player.StartY < 0 || c.Player.StartY >= c.Playfield.Height:
		return invalid("player.start_y %.1f is outside the playfield", c.Player.StartY)
	case c.Physics.Gravity <= 0:
		return invalid("physics.gravity must be positive, got %g", c.Physics.Gravity)
	case c.Physics.JumpImpulse <= 0:
		return invalid("physics.jump_impulse must be positive, got %g", c.Physics.JumpImpulse)
	case c.Physics.RotationStep <= 0:
		return invalid("physics.rotation_step must be positive, got %g", c.Physics.RotationStep)
	case c.Physics.FlapPeriod <= 0:
		return invalid("physics.flap_period must be positive, got %d", c.Physics.FlapPeriod)
	case c.Obstacles.Width <= 0:
		return invalid("obstacles.width must be positive, got %g", c.Obstacles.Width)
	case c.Obstacles.Gap <= 0:
		return invalid("obstacles.gap must be positive, got %g", c.Obstacles.Gap)
	case c.Obstacles.SpawnEvery <= 0:
		return invalid("obstacles.spawn_every must be positive, got %d", c.Obstacles.SpawnEvery)
	case c.Obstacles.Speed <= 0:
		return invalid("obstacles.speed must be positive, got %g", c.Obstacles.Speed)
	case c.Obstacles.SpawnSpread <= 0:
		return invalid("obstacles.spawn_spread must be positive, got %g", c.Obstacles.SpawnSpread)
	case c.Ground.Speed < 0:
		return invalid("ground.speed must not be negative, got %g", c.Ground.Speed)
	case c.Audio.Volume < 0 || c.Audio.Volume > 1:
		return invalid("audio.volume must be within 0..1, got %g", c.Audio.Volume)
	case c.Audio.Enabled && c.Audio.SampleRate <= 0:
		return invalid("audio.sample_rate must be positive, got %d", c.Audio.SampleRate)
	case c.Audio.DieDelay < 0:
		return invalid("audio.die_delay must not be negative, got %s", c.Audio.DieDelay)
	}
	return nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}
