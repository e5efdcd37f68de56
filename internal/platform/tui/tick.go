// Package tui provides the Bubble Tea host for the game. It handles the
// terminal UI loop, input mapping and serving the game over SSH.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent once per display frame.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends a tick message after one
// frame at the given refresh rate.
func tickCmd(refreshRate int) tea.Cmd {
	if refreshRate <= 0 {
		refreshRate = 60
	}
	interval := time.Second / time.Duration(refreshRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
