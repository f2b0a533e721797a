package device

import (
	"io"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type lightOffMsg struct {
	seq int
}

// haptics stands in for the vibration motor and backlight. A long pulse
// rings the terminal bell and the backlight highlights the countdown for a
// fixed period.
type haptics struct {
	bell      io.Writer
	log       *slog.Logger
	queued    []tea.Cmd
	backlight time.Duration
	seq       int
	lit       bool
}

func (h *haptics) PulseLong() {
	if h.bell == nil {
		return
	}

	if _, err := io.WriteString(h.bell, "\a"); err != nil {
		h.log.Warn("unable to ring terminal bell", slog.Any("error", err))
	}
}

func (h *haptics) Illuminate() {
	if h.backlight <= 0 {
		return
	}

	h.seq++
	h.lit = true

	seq := h.seq

	h.queued = append(h.queued, tea.Tick(h.backlight, func(time.Time) tea.Msg {
		return lightOffMsg{seq: seq}
	}))
}

// lightOff turns the light off unless it was illuminated again since the
// message was scheduled.
func (h *haptics) lightOff(msg lightOffMsg) {
	if msg.seq == h.seq {
		h.lit = false
	}
}

func (h *haptics) drain() []tea.Cmd {
	cmds := h.queued
	h.queued = nil

	return cmds
}
