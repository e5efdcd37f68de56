package flappy

import (
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Pose is a wing frame of the flap cycle.
type Pose int

const (
	PoseUp Pose = iota
	PoseMid
	PoseDown
)

func (p Pose) String() string {
	switch p {
	case PoseUp:
		return "up"
	case PoseDown:
		return "down"
	default:
		return "mid"
	}
}

// Flyer is the player-controlled entity. Its x never changes; the world
// scrolls past it.
type Flyer struct {
	X        float64 // Fixed horizontal position
	Y        float64 // Top of the sprite
	Velocity float64 // Positive is downward
	Rotation float64 // Degrees, positive is nose-down
	Pose     Pose
	Color    FlyerColor

	reverting bool // which extreme pose comes next
	physics   config.FlappyPhysics
	sprites   imageSource
}

// NewFlyer creates a flyer at its starting position.
func NewFlyer(cfg config.FlappyConfig, sprites imageSource) *Flyer {
	return &Flyer{
		X:       cfg.Player.X,
		Y:       cfg.Player.StartY,
		Pose:    PoseUp,
		physics: cfg.Physics,
		sprites: sprites,
	}
}

// Update integrates one tick of motion. In Home the flyer hovers level.
func (f *Flyer) Update(phase Phase) {
	if phase == PhaseHome {
		f.Rotation = 0
		return
	}
	f.Velocity += f.physics.Gravity
	f.Y += f.Velocity
}

// Jump sets an upward velocity. Callers gate it on the phase.
func (f *Flyer) Jump() {
	f.Velocity = -f.physics.JumpImpulse
}

// PickAnimationFrame advances the flap cycle every FlapPeriod ticks:
// mid, then up or down alternately, then mid again. The extreme pose is
// only entered while the flyer is not diving.
func (f *Flyer) PickAnimationFrame(phase Phase, tick int) {
	if phase == PhaseScoreSummary {
		f.Pose = PoseMid
		return
	}
	if tick%f.physics.FlapPeriod != 0 {
		return
	}
	switch {
	case f.Pose == PoseUp || f.Pose == PoseDown:
		f.Pose = PoseMid
	case f.Velocity <= f.physics.JumpImpulse:
		if f.reverting {
			f.Pose = PoseUp
		} else {
			f.Pose = PoseDown
		}
		f.reverting = !f.reverting
	}
}

// PickRotation snaps to the tilt angle while rising or falling slowly and
// otherwise turns the nose down step by step.
func (f *Flyer) PickRotation(phase Phase) {
	if phase == PhaseHome {
		return
	}
	if f.Velocity < f.physics.JumpImpulse {
		f.Rotation = f.physics.TiltAngle
		return
	}
	if f.Rotation < f.physics.MaxRotation {
		f.Rotation = min(f.Rotation+f.physics.RotationStep, f.physics.MaxRotation)
	}
}

// SetVariation picks a color uniformly.
func (f *Flyer) SetVariation(rng *rand.Rand) {
	f.Color = FlyerColor(rng.Intn(len(flyerColors)))
}

// Sprite returns the image for the current color and pose.
func (f *Flyer) Sprite() core.Image {
	return f.sprites.MustImage(FlyerSprite(f.Color, f.Pose))
}

// Rect returns the unrotated bounding box used for collisions.
func (f *Flyer) Rect() core.Rect {
	img := f.Sprite()
	return core.NewRect(f.X, f.Y, img.Width(), img.Height())
}
