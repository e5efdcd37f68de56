// Package window hosts the game in a desktop window using Ebitengine.
package window

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/tui-flappy/internal/clock"
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/flappy"
)

// Muter toggles sound output.
type Muter interface {
	ToggleMute() bool
}

// Options configures the window.
type Options struct {
	Title string
	// Scale multiplies the playfield size for the initial window size.
	Scale float64
	Loop  config.FlappyLoop
	Sound Muter
	// Logger defaults to discarding output.
	Logger *log.Logger
}

var (
	flapKeys = []ebiten.Key{ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW, ebiten.KeyEnter}
	quitKeys = []ebiten.Key{ebiten.KeyEscape, ebiten.KeyQ}
)

// Window implements ebiten.Game around one flappy.Game.
type Window struct {
	game    *flappy.Game
	stepper *clock.Stepper
	surface *surface
	opts    Options
	logger  *log.Logger
	debug   bool
	notice  string
}

// New creates a window host.
func New(game *flappy.Game, opts Options) *Window {
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	if opts.Title == "" {
		opts.Title = "Flappy"
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Window{
		game:    game,
		stepper: clock.NewStepper(opts.Loop.TicksPerSecond, opts.Loop.MaxCatchUpTicks),
		surface: newSurface(),
		opts:    opts,
		logger:  logger,
	}
}

// frameInput is the input gathered for one frame.
type frameInput struct {
	Quit  bool
	Flap  bool
	Mute  bool
	Debug bool
	Click bool
	X, Y  int
}

// Update polls input and advances the simulation by the fixed steps that
// fit since the previous call.
func (w *Window) Update() error {
	if err := w.handleInput(pollInput()); err != nil {
		return err
	}
	w.step(time.Now())
	return nil
}

func pollInput() frameInput {
	in := frameInput{
		Quit:  anyJustPressed(quitKeys),
		Flap:  anyJustPressed(flapKeys),
		Mute:  inpututil.IsKeyJustPressed(ebiten.KeyM),
		Debug: inpututil.IsKeyJustPressed(ebiten.KeyF3),
		Click: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
	}
	if in.Click {
		in.X, in.Y = ebiten.CursorPosition()
	}
	return in
}

// handleInput maps one frame of input onto game actions. It returns
// ebiten.Termination when the player quits.
func (w *Window) handleInput(in frameInput) error {
	if in.Quit {
		return ebiten.Termination
	}
	if in.Flap {
		w.game.Action(core.PrimaryAction())
	}
	if in.Click {
		w.game.Action(core.PointerAction(float64(in.X), float64(in.Y)))
	}
	if in.Mute && w.opts.Sound != nil {
		if w.opts.Sound.ToggleMute() {
			w.notice = "sound off"
		} else {
			w.notice = "sound on"
		}
	}
	if in.Debug {
		w.debug = !w.debug
	}
	return nil
}

func (w *Window) step(now time.Time) {
	before := w.stepper.Dropped()
	w.stepper.Advance(now, w.game.Tick)
	if dropped := w.stepper.Dropped() - before; dropped > 0 {
		w.logger.Debug("simulation fell behind", "dropped_ticks", dropped)
	}
}

// Draw renders the current frame.
func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	w.surface.begin(screen)
	w.game.Render(w.surface)

	if w.notice != "" {
		text.Draw(screen, w.notice, basicfont.Face7x13, 8, screen.Bounds().Dy()-8, color.White)
	}
	if w.debug {
		s := w.game.State()
		lines := fmt.Sprintf("FPS %.0f  TPS %.0f\nphase %s  tick %d\npairs %d  dropped %d",
			ebiten.ActualFPS(), ebiten.ActualTPS(), s.Phase, s.Tick, s.Pairs, w.stepper.Dropped())
		text.Draw(screen, lines, basicfont.Face7x13, 8, 16, color.White)
	}
}

// Layout keeps the logical screen at playfield size; ebiten scales it to
// the window.
func (w *Window) Layout(_, _ int) (int, int) {
	fw, fh := w.game.Playfield()
	return int(fw), int(fh)
}

// Run opens the window and blocks until it is closed.
func Run(game *flappy.Game, opts Options) error {
	win := New(game, opts)
	fw, fh := game.Playfield()

	ebiten.SetWindowSize(int(fw*win.opts.Scale), int(fh*win.opts.Scale))
	ebiten.SetWindowTitle(win.opts.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	// Update runs once per frame; the stepper owns the simulation rate.
	ebiten.SetTPS(ebiten.SyncWithFPS)

	defer game.Close()
	err := ebiten.RunGame(win)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

func anyJustPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}
