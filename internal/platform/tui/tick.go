// Package tui provides the Bubble Tea host for tripgames sessions.
// It drives the frame loop, maps keys and mouse to input frames, and shows
// the name prompt and leaderboards.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tripgames/internal/engine"
)

// TickMsg requests one frame for the loop run identified by Handle.
// Ticks of a cancelled or replaced run are dropped.
type TickMsg struct {
	Handle engine.Handle
	At     time.Time
}

// tickCmd schedules the next frame of run h at the given rate.
func tickCmd(h engine.Handle, fps int) tea.Cmd {
	if fps <= 0 {
		fps = 60
	}
	interval := time.Second / time.Duration(fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Handle: h, At: t}
	})
}
