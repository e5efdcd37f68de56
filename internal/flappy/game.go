// Package flappy implements the side-scrolling flyer game: a fixed-rate
// simulation of one flyer, scrolling obstacle pairs and a ground strip,
// driven through a Home, Running and ScoreSummary phase cycle.
//
// The game never touches a terminal or a window. Hosts call Tick at the
// fixed simulation rate, Action on player input and Render once per frame.
package flappy

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/assets"
	"github.com/vovakirdan/tui-flappy/internal/clock"
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Catalog provides the game's sprites and sounds. *assets.Catalog
// implements it.
type Catalog interface {
	MustImage(name string) core.Image
	Sound(name string) (assets.Sound, error)
	Require(images, sounds []string) error
}

// Options configures a Game beyond its tuning.
type Options struct {
	// Seed drives spawn heights and cosmetic variation.
	Seed int64
	// Scheduler runs delayed sounds. Defaults to real timers.
	Scheduler clock.Scheduler
	// Logger receives lifecycle events. Defaults to discarding them.
	Logger *log.Logger
}

// Game is one play session. It is not safe for concurrent use; hosts
// drive it from a single goroutine.
type Game struct {
	cfg       config.FlappyConfig
	catalog   Catalog
	sounds    map[string]assets.Sound
	scheduler clock.Scheduler
	logger    *log.Logger
	rng       *rand.Rand

	phase   Phase          // Current top-level state
	tick    int            // Ticks since the current phase cycle began
	flyer   *Flyer         // Player entity
	pipes   *ObstacleSet   // Live obstacle pairs
	ground  *Ground        // Scrolling floor
	score   *ScoreTracker  // Current and best score
	scene   SceneVariation // Cosmetic choices for this run
	layout  SummaryLayout  // End-of-run screen placement
	dieTask clock.Task     // Pending delayed sound, if any
	runs    int            // Runs finished this session
}

// State is a read-only snapshot for hosts and tests.
type State struct {
	Phase    Phase
	Score    int
	Best     int
	Tick     int
	Pairs    int
	Runs     int
	Backdrop Backdrop
	Flyer    FlyerColor
	Obstacle ObstacleColor
}

// New creates a game in the Home phase. It fails if the configuration is
// invalid or the catalog lacks any sprite or sound the game uses.
func New(cfg config.FlappyConfig, catalog Catalog, opts Options) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := catalog.Require(RequiredImages(), RequiredSounds()); err != nil {
		return nil, fmt.Errorf("asset catalog incomplete: %w", err)
	}

	g := &Game{
		cfg:       cfg,
		catalog:   catalog,
		sounds:    make(map[string]assets.Sound),
		scheduler: opts.Scheduler,
		logger:    opts.Logger,
		rng:       rand.New(rand.NewSource(opts.Seed)),
	}
	if g.scheduler == nil {
		g.scheduler = clock.TimerScheduler{}
	}
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}
	for _, name := range RequiredSounds() {
		snd, _ := catalog.Sound(name)
		g.sounds[name] = snd
	}

	g.score = NewScoreTracker(func() { g.play(SoundPoint) })
	g.ground = NewGround(cfg, catalog.MustImage(SpriteBase))
	g.pipes = NewObstacleSet(cfg, g.ground.Top(), g.rng)
	g.placeSummary()

	g.resetRun()
	g.phase = PhaseHome
	return g, nil
}

// Tick advances the simulation by one fixed step.
func (g *Game) Tick() {
	g.pipes.Update(g.phase, g.tick)

	g.flyer.Update(g.phase)
	g.flyer.PickAnimationFrame(g.phase, g.tick)
	g.flyer.PickRotation(g.phase)

	g.ground.Update(g.phase)
	g.resolveCollisions()
	g.tick++
}

// Action handles the primary command. In Home it starts a run with a flap,
// while Running it flaps, and on the summary screen it restarts if the
// event is a keypress or a click on the play button.
func (g *Game) Action(ev core.ActionEvent) {
	switch g.phase {
	case PhaseHome:
		g.run()
		g.jump()
	case PhaseRunning:
		g.jump()
	case PhaseScoreSummary:
		if !ev.Pointer || g.score.PlayButton().Contains(ev.X, ev.Y) {
			g.Restart()
		}
	}
}

// Restart leaves the summary screen for a fresh run in Home. It reports
// false, and does nothing, in any other phase.
func (g *Game) Restart() bool {
	if !g.transition(PhaseHome) {
		return false
	}
	g.resetRun()
	g.play(SoundSwooshing)
	return true
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// State returns a snapshot of the session.
func (g *Game) State() State {
	return State{
		Phase:    g.phase,
		Score:    g.score.Current,
		Best:     g.score.Best,
		Tick:     g.tick,
		Pairs:    g.pipes.Len(),
		Runs:     g.runs,
		Backdrop: g.scene.Backdrop,
		Flyer:    g.flyer.Color,
		Obstacle: g.scene.Obstacle,
	}
}

// Playfield returns the logical drawing area size.
func (g *Game) Playfield() (width, height float64) {
	return g.cfg.Playfield.Width, g.cfg.Playfield.Height
}

// Close cancels pending sounds.
func (g *Game) Close() {
	g.cancelDie()
}

// run starts a run from Home.
func (g *Game) run() {
	if !g.transition(PhaseRunning) {
		return
	}
	g.tick = 0
	g.logger.Debug("run started",
		"backdrop", g.scene.Backdrop,
		"flyer", g.flyer.Color,
		"obstacles", g.scene.Obstacle)
}

// jump flaps unless the run is over.
func (g *Game) jump() {
	if g.phase == PhaseScoreSummary {
		return
	}
	g.flyer.Jump()
	g.play(SoundWing)
}

// stop ends the run.
func (g *Game) stop(cause string) {
	if !g.transition(PhaseScoreSummary) {
		return
	}
	g.score.Commit()
	g.placeSummary()
	g.runs++
	g.logger.Info("run ended",
		"cause", cause,
		"score", g.score.Current,
		"best", g.score.Best,
		"ticks", g.tick)
}

// placeSummary lays out the end-of-run screen and moves the restart hit
// area to wherever the play button is drawn.
func (g *Game) placeSummary() {
	g.layout = LayoutSummary(g.catalog, g.cfg.Playfield.Width)
	g.score.SetPlayButton(g.layout.Play)
}

// transition moves to the given phase if the move is legal.
func (g *Game) transition(to Phase) bool {
	if !g.phase.CanTransition(to) {
		g.logger.Debug("ignored phase change", "from", g.phase, "to", to)
		return false
	}
	g.phase = to
	return true
}

// resetRun rebuilds every per-run entity from the configuration and rolls
// a new look. The best score survives.
func (g *Game) resetRun() {
	g.cancelDie()
	g.flyer = NewFlyer(g.cfg, g.catalog)
	g.pipes.Reset()
	g.ground = NewGround(g.cfg, g.catalog.MustImage(SpriteBase))
	g.score.Clear()
	g.scene.Roll(g.rng, g.flyer)
	g.tick = 0
}

// scheduleDie plays the die sound after the configured delay.
func (g *Game) scheduleDie() {
	g.cancelDie()
	snd := g.sounds[SoundDie]
	g.dieTask = g.scheduler.After(g.cfg.Audio.DieDelay, snd.Play)
}

func (g *Game) cancelDie() {
	if g.dieTask != nil {
		g.dieTask.Cancel()
		g.dieTask = nil
	}
}

func (g *Game) play(name string) {
	if snd, ok := g.sounds[name]; ok {
		snd.Play()
	}
}
