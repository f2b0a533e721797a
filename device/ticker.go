package device

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ayoisaiah/pomade/internal/session"
)

// TickMsg is delivered when a scheduled countdown tick expires.
type TickMsg struct {
	Handle session.Handle
	Cookie session.Cookie
}

// ticker schedules countdown ticks as bubbletea commands. A tea.Tick cannot
// be withdrawn once issued, so Cancel only records the handle and the tick
// is still delivered.
type ticker struct {
	cancelled map[session.Handle]bool
	queued    []tea.Cmd
	last      TickMsg
	next      session.Handle
}

func newTicker() *ticker {
	return &ticker{
		cancelled: make(map[session.Handle]bool),
	}
}

func (t *ticker) Schedule(
	delay time.Duration,
	cookie session.Cookie,
) session.Handle {
	t.next++

	msg := TickMsg{Handle: t.next, Cookie: cookie}
	t.last = msg

	t.queued = append(t.queued, tea.Tick(delay, func(time.Time) tea.Msg {
		return msg
	}))

	return msg.Handle
}

func (t *ticker) Cancel(h session.Handle) {
	t.cancelled[h] = true
}

// delivered forgets a handle once its tick arrives and reports whether it
// had been cancelled.
func (t *ticker) delivered(h session.Handle) bool {
	cancelled := t.cancelled[h]
	delete(t.cancelled, h)

	return cancelled
}

func (t *ticker) drain() []tea.Cmd {
	cmds := t.queued
	t.queued = nil

	return cmds
}
