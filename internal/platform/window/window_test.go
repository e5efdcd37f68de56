package window

import (
	"errors"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tui-flappy/internal/assets"
	"github.com/vovakirdan/tui-flappy/internal/clock"
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/flappy"
)

type fakeMuter struct {
	muted bool
}

func (f *fakeMuter) ToggleMute() bool {
	f.muted = !f.muted
	return f.muted
}

func newTestWindow(t *testing.T, sound Muter) (*Window, *assets.Catalog) {
	t.Helper()
	catalog, err := assets.Default(assets.SilentBank{})
	if err != nil {
		t.Fatalf("assets.Default() error = %v", err)
	}
	cfg := config.DefaultFlappyConfig()
	game, err := flappy.New(cfg, catalog, flappy.Options{Seed: 1, Scheduler: &clock.ManualScheduler{}})
	if err != nil {
		t.Fatalf("flappy.New() error = %v", err)
	}
	t.Cleanup(game.Close)
	return New(game, Options{Loop: cfg.Loop, Sound: sound}), catalog
}

// crash lets the flyer fall onto the ground.
func crash(t *testing.T, w *Window) {
	t.Helper()
	for i := 0; i < 1000 && w.game.Phase() == flappy.PhaseRunning; i++ {
		w.game.Tick()
	}
	if w.game.Phase() != flappy.PhaseScoreSummary {
		t.Fatalf("Phase = %s, expected score summary", w.game.Phase())
	}
}

func TestWindowDefaults(t *testing.T) {
	w, _ := newTestWindow(t, nil)
	if w.opts.Title != "Flappy" || w.opts.Scale != 1 {
		t.Errorf("defaults = %q x%g", w.opts.Title, w.opts.Scale)
	}
	if gw, gh := w.Layout(1920, 1080); gw != 450 || gh != 600 {
		t.Errorf("Layout() = %dx%d, expected the playfield size", gw, gh)
	}
}

func TestWindowFlapStartsRun(t *testing.T) {
	w, _ := newTestWindow(t, nil)
	if err := w.handleInput(frameInput{Flap: true}); err != nil {
		t.Fatalf("handleInput() error = %v", err)
	}
	if w.game.Phase() != flappy.PhaseRunning {
		t.Errorf("Phase = %s, expected running", w.game.Phase())
	}
}

func TestWindowClickRestartsOnlyOnPlayButton(t *testing.T) {
	w, catalog := newTestWindow(t, nil)
	w.handleInput(frameInput{Flap: true})
	crash(t, w)

	w.handleInput(frameInput{Click: true, X: 2, Y: 2})
	if w.game.Phase() != flappy.PhaseScoreSummary {
		t.Fatalf("click off the button changed phase to %s", w.game.Phase())
	}

	play := flappy.LayoutSummary(catalog, 450).Play
	w.handleInput(frameInput{Click: true, X: int(play.X) + 10, Y: int(play.Y) + 10})
	if w.game.Phase() != flappy.PhaseHome {
		t.Errorf("Phase = %s, expected home after clicking play", w.game.Phase())
	}
}

func TestWindowMute(t *testing.T) {
	sound := &fakeMuter{}
	w, _ := newTestWindow(t, sound)

	w.handleInput(frameInput{Mute: true})
	if !sound.muted || w.notice != "sound off" {
		t.Errorf("muted=%v notice=%q", sound.muted, w.notice)
	}
	w.handleInput(frameInput{Mute: true})
	if sound.muted || w.notice != "sound on" {
		t.Errorf("muted=%v notice=%q", sound.muted, w.notice)
	}
}

func TestWindowMuteWithoutSound(t *testing.T) {
	w, _ := newTestWindow(t, nil)
	if err := w.handleInput(frameInput{Mute: true}); err != nil {
		t.Fatalf("handleInput() error = %v", err)
	}
	if w.notice != "" {
		t.Errorf("notice = %q, expected none without a sound device", w.notice)
	}
}

func TestWindowDebugToggle(t *testing.T) {
	w, _ := newTestWindow(t, nil)
	w.handleInput(frameInput{Debug: true})
	if !w.debug {
		t.Error("F3 should enable the debug overlay")
	}
	w.handleInput(frameInput{Debug: true})
	if w.debug {
		t.Error("second F3 should hide the debug overlay")
	}
}

func TestWindowQuit(t *testing.T) {
	w, _ := newTestWindow(t, nil)
	err := w.handleInput(frameInput{Quit: true, Flap: true})
	if !errors.Is(err, ebiten.Termination) {
		t.Fatalf("handleInput() error = %v, expected ebiten.Termination", err)
	}
	if w.game.Phase() != flappy.PhaseHome {
		t.Error("quit should not deliver the other inputs of the frame")
	}
}

func TestWindowStepRunsFixedTicks(t *testing.T) {
	w, _ := newTestWindow(t, nil)
	start := time.Unix(0, 0)
	interval := w.stepper.Interval()

	w.step(start)
	if got := w.game.State().Tick; got != 0 {
		t.Fatalf("first frame ran %d ticks, expected 0", got)
	}
	w.step(start.Add(3 * interval))
	if got := w.game.State().Tick; got != 3 {
		t.Errorf("Tick = %d, expected 3", got)
	}

	// A long stall is capped and the excess is dropped.
	w.step(start.Add(time.Minute))
	if got := w.game.State().Tick; got != 3+config.DefaultFlappyConfig().Loop.MaxCatchUpTicks {
		t.Errorf("Tick = %d after stall", got)
	}
	if w.stepper.Dropped() == 0 {
		t.Error("stall should drop ticks")
	}
}
