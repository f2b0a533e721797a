package device

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/ayoisaiah/pomade/internal/session"
)

type styles struct {
	kind      map[session.Kind]lipgloss.Style
	base      lipgloss.Style
	countdown lipgloss.Style
	lit       lipgloss.Style
	prompt    lipgloss.Style
	hint      lipgloss.Style
	icon      lipgloss.Style
}

func newStyles(colors map[session.Kind]string, dark bool) styles {
	fg := lipgloss.Color("#333333")
	muted := lipgloss.Color("#777777")

	if dark {
		fg = lipgloss.Color("#EEEEEE")
		muted = lipgloss.Color("#9E9E9E")
	}

	s := styles{
		kind:      make(map[session.Kind]lipgloss.Style, len(colors)),
		base:      lipgloss.NewStyle().Padding(1, padding),
		countdown: lipgloss.NewStyle().Bold(true).Foreground(fg),
		lit:       lipgloss.NewStyle().Bold(true).Reverse(true).Padding(0, 1),
		prompt:    lipgloss.NewStyle().Foreground(fg),
		hint:      lipgloss.NewStyle().Foreground(muted),
		icon:      lipgloss.NewStyle().Foreground(fg).Bold(true),
	}

	for kind, c := range colors {
		s.kind[kind] = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color(c)).
			Padding(0, 1).
			MarginRight(1)
	}

	return s
}

func (s styles) label(kind session.Kind) lipgloss.Style {
	if st, ok := s.kind[kind]; ok {
		return st
	}

	return s.hint.MarginRight(1)
}
