package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/clock"
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/flappy"
)

// footerHeight is the number of rows reserved below the playfield.
const footerHeight = 1

// Minimum terminal size that still shows a recognizable playfield.
const (
	minScreenW = 24
	minScreenH = 10
)

// Muter toggles sound output.
type Muter interface {
	ToggleMute() bool
}

// Options configures a Model.
type Options struct {
	// Runtime holds the terminal size and refresh rate.
	Runtime core.RuntimeConfig
	// Loop is the fixed simulation rate.
	Loop config.FlappyLoop
	// Sound is toggled by the mute key. May be nil.
	Sound Muter
	// Logger receives host events. Defaults to discarding them.
	Logger *log.Logger
	// ScreenshotDir is where ctrl+s writes frames.
	ScreenshotDir string
}

// Model is the Bubble Tea model hosting one game.
type Model struct {
	game     *flappy.Game
	screen   *core.Screen
	canvas   *core.Canvas
	stepper  *clock.Stepper
	keys     KeyMap
	help     help.Model
	opts     Options
	logger   *log.Logger
	notice   string
	quitting bool
}

// NewModel creates a model for the given game.
func NewModel(game *flappy.Game, opts Options) Model {
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = 60
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	w, h := game.Playfield()
	screen := core.NewScreen(opts.Runtime.ScreenW, opts.Runtime.ScreenH-footerHeight)
	return Model{
		game:    game,
		screen:  screen,
		canvas:  core.NewCanvas(screen, w, h),
		stepper: clock.NewStepper(opts.Loop.TicksPerSecond, opts.Loop.MaxCatchUpTicks),
		keys:    DefaultKeyMap(),
		help:    help.New(),
		opts:    opts,
		logger:  logger,
	}
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.opts.Runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.Resolve(msg) {
	case core.ActionQuit:
		m.quitting = true
		m.game.Close()
		return m, tea.Quit
	case core.ActionPrimary:
		m.game.Action(core.PrimaryAction())
	case core.ActionMute:
		if m.opts.Sound != nil {
			if m.opts.Sound.ToggleMute() {
				m.notice = "sound off"
			} else {
				m.notice = "sound on"
			}
		}
	case core.ActionScreenshot:
		m.notice = m.saveScreenshot()
	}
	return m, nil
}

// handleMouse turns a left click into a pointer action in playfield space.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if msg.Y >= m.screen.Height() {
		return m, nil
	}
	x, y := m.canvas.ToWorld(msg.X, msg.Y)
	m.game.Action(core.PointerAction(x, y))
	return m, nil
}

// handleResize refits the playfield to the new terminal size. The game
// keeps running; only the projection changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.opts.Runtime.ScreenW = msg.Width
	m.opts.Runtime.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height-footerHeight)
	m.canvas.Begin()
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs however many fixed simulation steps fit since the
// previous frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	before := m.stepper.Dropped()
	m.stepper.Advance(now, m.game.Tick)
	if dropped := m.stepper.Dropped() - before; dropped > 0 {
		m.logger.Debug("simulation fell behind", "dropped_ticks", dropped)
	}
	return m, tickCmd(m.opts.Runtime.TickRate)
}

// saveScreenshot writes the current frame as plain text and returns a
// notice for the footer.
func (m *Model) saveScreenshot() string {
	m.draw()

	dir := m.opts.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "screenshot failed"
		}
		dir = filepath.Join(home, ".tui-flappy", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return "screenshot failed"
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("flappy_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return "screenshot failed"
	}
	m.logger.Info("screenshot saved", "path", path)
	return "saved " + filepath.Base(path)
}

// draw renders the game into the screen buffer.
func (m Model) draw() {
	m.canvas.Begin()
	if m.screen.Width() < minScreenW || m.screen.Height() < minScreenH {
		m.screen.DrawTextCentered(m.screen.Height()/2, "terminal too small", core.ColorOrange)
		return
	}
	m.game.Render(m.canvas)
}

// footer shows the score line and key help.
func (m Model) footer() string {
	s := m.game.State()
	score := scoreStyle.Render(fmt.Sprintf("score %d  best %d", s.Score, s.Best))
	line := score + "  " + footerStyle.Render(m.help.View(m.keys))
	if m.notice != "" {
		line += "  " + noticeStyle.Render(m.notice)
	}
	return line
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.draw()
	return RenderScreen(m.screen) + "\n" + m.footer()
}

// Run starts the Bubble Tea program for the given game.
func Run(game *flappy.Game, opts Options) error {
	p := tea.NewProgram(
		NewModel(game, opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
