// Package tui provides the Bubble Tea front-end for dodge.
// It pumps frames, maps keys to held directions and renders the screen.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg is sent to trigger one game frame.
type FrameMsg time.Time

// frameCmd returns a Bubble Tea command that delivers the next frame after
// interval.
func frameCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}
