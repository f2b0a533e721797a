package device

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/ayoisaiah/pomade/countdown"
	"github.com/ayoisaiah/pomade/internal/session"
	"github.com/ayoisaiah/pomade/internal/timeutil"
)

// headerView shows the interval kind, the work cycle and when the interval
// ends.
func (m *Model) headerView() string {
	snap := m.snap

	if snap.Phase == session.Idle {
		return m.styles.label("").Render("Pomade")
	}

	var s strings.Builder

	s.WriteString(m.styles.label(snap.Kind).Render(string(snap.Kind)))

	if snap.Kind == session.Work && snap.LongBreakInterval > 0 {
		s.WriteString(m.styles.hint.Render(
			fmt.Sprintf("(%d/%d) ", snap.WorkCycle, snap.LongBreakInterval),
		))
	}

	if snap.Phase.CountingDown() {
		layout := timeutil.ClockLayout(m.opts.TwentyFourHour)
		s.WriteString(m.styles.hint.Render("until " + snap.EndTime().Format(layout)))
	}

	return s.String()
}

func (m *Model) countdownView() string {
	text := m.screen.text(countdown.RegionCountdown)
	if text == "" {
		return ""
	}

	if m.haptics.lit {
		return m.styles.lit.Render(text)
	}

	return m.styles.countdown.Render(text)
}

// actionBarView draws the icon beside each button and the matching key hint.
func (m *Model) actionBarView() string {
	bindings := map[countdown.Slot]key.Binding{
		countdown.SlotUp:     defaultKeymap.restart,
		countdown.SlotSelect: defaultKeymap.sel,
		countdown.SlotDown:   defaultKeymap.abort,
	}

	var (
		rows  []string
		hints []key.Binding
	)

	for _, slot := range countdown.Slots {
		icon := m.screen.icon(slot)
		if icon.ID == countdown.IconNone {
			continue
		}

		b := bindings[slot]
		rows = append(rows, m.styles.icon.Render(icon.Art)+" "+string(icon.ID))
		hints = append(hints, key.NewBinding(
			key.WithKeys(b.Keys()...),
			key.WithHelp(b.Help().Key, string(icon.ID)),
		))
	}

	hints = append(hints, defaultKeymap.quit)

	return strings.Join(rows, "   ") + "\n\n" + m.help.ShortHelpView(hints)
}

func (m *Model) View() string {
	if m.closed {
		return ""
	}

	var s strings.Builder

	s.WriteString(m.headerView())
	s.WriteString("\n\n")

	if cd := m.countdownView(); cd != "" {
		s.WriteString(cd)
		s.WriteString("\n\n")
	}

	s.WriteString(m.styles.prompt.Render(m.screen.text(countdown.RegionPrompt)))
	s.WriteString("\n\n")

	if m.snap.Phase != session.Idle {
		s.WriteString(m.progress.ViewAs(m.snap.Elapsed()))
		s.WriteString("\n\n")
	}

	s.WriteString(m.actionBarView())

	return m.styles.base.Render(s.String())
}
