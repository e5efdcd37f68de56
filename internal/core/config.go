package core

// RuntimeConfig contains host-side settings that are independent of the
// game tuning: the terminal size, the display refresh rate and the seed.
type RuntimeConfig struct {
	// ScreenW is the width of the terminal/screen in characters.
	ScreenW int

	// ScreenH is the height of the terminal/screen in characters.
	ScreenH int

	// TickRate is how often the host redraws, in frames per second.
	// The simulation rate is fixed separately and does not follow it.
	TickRate int

	// Seed is the random seed for deterministic gameplay.
	Seed int64
}

// DefaultRuntimeConfig returns a standard 80x24 terminal at 60 frames per second.
func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}
