package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ------- styling helpers (Lip Gloss) -------
type styles struct {
	title     lipgloss.Style
	section   lipgloss.Style
	item      lipgloss.Style
	muted     lipgloss.Style
	accent    lipgloss.Style
	selected  lipgloss.Style
	copied    lipgloss.Style
	help      lipgloss.Style
	errorText lipgloss.Style
	border    lipgloss.Color
	modalBg   lipgloss.Color
	buttonBg  lipgloss.Color
	buttonFg  lipgloss.Color
	activeBg  lipgloss.Color
	activeFg  lipgloss.Color
}

func newStyles(theme string) styles {
	s := styles{
		title:     lipgloss.NewStyle().Bold(true),
		section:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		item:      lipgloss.NewStyle(),
		muted:     lipgloss.NewStyle().Faint(true),
		accent:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		selected:  lipgloss.NewStyle().Bold(true).Reverse(true),
		copied:    lipgloss.NewStyle().Background(lipgloss.Color("22")).Foreground(lipgloss.Color("120")).Padding(0, 1),
		help:      lipgloss.NewStyle().Faint(true),
		errorText: lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		border:    lipgloss.Color("8"),
		modalBg:   lipgloss.Color("236"),
		buttonBg:  lipgloss.Color("238"),
		buttonFg:  lipgloss.Color("252"),
		activeBg:  lipgloss.Color("12"),
		activeFg:  lipgloss.Color("0"),
	}
	switch strings.ToLower(theme) {
	case "neon":
		s.title = s.title.Foreground(lipgloss.Color("13"))
		s.section = s.section.Foreground(lipgloss.Color("14"))
		s.accent = s.accent.Foreground(lipgloss.Color("14"))
		s.activeBg = lipgloss.Color("13")
	case "mono":
		plain := lipgloss.NewStyle()
		s.section = plain.Bold(true)
		s.accent = plain
		s.copied = plain.Reverse(true).Padding(0, 1)
		s.errorText = plain.Bold(true)
		s.border, s.modalBg, s.buttonBg, s.activeBg = "", "", "", ""
		s.buttonFg, s.activeFg = "", ""
	}
	return s
}

// helpers for View
func (s styles) panel(inner string) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.border).
		Padding(0, 1).
		Render(inner)
}
