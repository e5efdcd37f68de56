package flappy

import (
	"sync"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/assets"
	"github.com/vovakirdan/tui-flappy/internal/clock"
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// soundLog records every sound played, in order.
type soundLog struct {
	mu     sync.Mutex
	played []string
}

func (l *soundLog) count(name string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	n := 0
	for _, p := range l.played {
		if p == name {
			n++
		}
	}
	return n
}

type recordedSound struct {
	name string
	log  *soundLog
}

func (s recordedSound) Play() {
	s.log.mu.Lock()
	s.log.played = append(s.log.played, s.name)
	s.log.mu.Unlock()
}

type recordingBank struct {
	log *soundLog
}

func (b recordingBank) Load(spec assets.SoundSpec) (assets.Sound, error) {
	return recordedSound{name: spec.Name, log: b.log}, nil
}

type fixture struct {
	game      *Game
	sounds    *soundLog
	scheduler *clock.ManualScheduler
}

func newFixture(t *testing.T, mutate func(*config.FlappyConfig)) fixture {
	t.Helper()
	cfg := config.DefaultFlappyConfig()
	if mutate != nil {
		mutate(&cfg)
	}

	sounds := &soundLog{}
	catalog, err := assets.Default(recordingBank{log: sounds})
	if err != nil {
		t.Fatalf("assets.Default() error = %v", err)
	}

	sched := &clock.ManualScheduler{}
	g, err := New(cfg, catalog, Options{Seed: 1, Scheduler: sched})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return fixture{game: g, sounds: sounds, scheduler: sched}
}

// keepAlive parks the flyer in the middle of the first pair's gap.
func keepAlive(g *Game) {
	if g.pipes.Len() == 0 {
		return
	}
	p := g.pipes.Pairs()[0]
	g.flyer.Y = float64(p.GapY) + (g.pipes.Gap()-g.flyer.Rect().H)/2
	g.flyer.Velocity = 0
}

// endRun starts a run and crashes into the ground.
func endRun(t *testing.T, g *Game) {
	t.Helper()
	if g.Phase() == PhaseHome {
		g.Action(core.PrimaryAction())
	}
	g.flyer.Y = g.ground.Top()
	g.Tick()
	if g.Phase() != PhaseScoreSummary {
		t.Fatalf("expected ScoreSummary after ground hit, got %s", g.Phase())
	}
}
