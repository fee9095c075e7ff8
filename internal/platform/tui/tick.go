// Package tui runs procroids game modes in a terminal with Bubble Tea.
// It owns the frame clock, key mapping, press/release synthesis and the
// translation of core.Screen buffers into styled terminal output.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg drives one simulation frame.
type TickMsg time.Time

// tickCmd schedules the next frame at the given rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
