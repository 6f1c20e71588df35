package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Makepad-fr/liser/internal/clipboard"
	"github.com/Makepad-fr/liser/internal/fragment"
	"github.com/Makepad-fr/liser/internal/ui"
)

func (m modelTUI) View() string {
	if m.modal.Pending() {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.modalView())
	}

	var b strings.Builder
	b.WriteString(m.header())
	b.WriteString("\n\n")
	b.WriteString(m.body())

	if m.editing != editNone {
		b.WriteString("\n")
		b.WriteString(m.editView())
	}
	if m.view.Picker().Open {
		b.WriteString("\n")
		b.WriteString(m.pickerView())
	}

	b.WriteString("\n")
	b.WriteString(m.footer())

	return m.styles.panel(b.String())
}

func (m modelTUI) header() string {
	secs := m.view.Sections()
	items := 0
	for _, s := range secs {
		items += len(s.Items)
	}
	return fmt.Sprintf("%s   %s %d  %s %d",
		m.styles.title.Render("Bag list "+m.opt.BagListID),
		m.styles.accent.Render("Sections"), len(secs),
		m.styles.accent.Render("Items"), items,
	)
}

func (m modelTUI) body() string {
	if !m.loaded {
		if m.status != "" {
			return m.styles.errorText.Render(m.status)
		}
		return m.styles.muted.Render("loading…")
	}
	rows := m.rows()
	if len(rows) == 0 {
		return m.styles.muted.Render("no sections")
	}

	lines := make([]string, 0, len(rows))
	for i, r := range rows {
		prefix := "  "
		if i == m.cursor {
			prefix = m.styles.selected.Render("> ")
		}
		lines = append(lines, prefix+m.rowText(r))
	}
	return strings.Join(lines, "\n")
}

func (m modelTUI) rowText(r row) string {
	if m.flash.key == r.key() {
		return m.styles.copied.Render(clipboard.ConfirmLabel)
	}
	s, _ := m.view.Section(r.sectionID)
	if r.itemID != "" {
		return "    " + m.styles.item.Render(m.label(r))
	}
	line := m.styles.section.Render(s.Title)
	if s.Position != "" {
		line = m.styles.muted.Render("#"+s.Position) + " " + line
	}
	if s.Description != "" {
		line += "  " + m.styles.muted.Render(ui.Truncate(strings.Join(strings.Fields(s.Description), " "), 60))
	}
	return line
}

func (m modelTUI) editView() string {
	if m.editing.multiline() {
		hint := m.styles.help.Render("enter: new line   ctrl+s: save   esc: cancel")
		return m.styles.panel(m.editing.label() + "\n" + m.ta.View() + "\n" + hint)
	}
	return m.styles.panel(m.editing.label() + "\n" + m.ti.View())
}

func (m modelTUI) pickerView() string {
	p := m.view.Picker()
	title := "Add item"
	if s, ok := m.view.Section(p.SectionID); ok {
		title += " to " + s.Title
	}
	parts := []string{title, m.search.View()}
	switch {
	case len(p.Candidates) > 0:
		parts = append(parts, m.candidates.View())
	case p.Content != "":
		// fragments without items carry a message for the user
		parts = append(parts, m.styles.muted.Render(fragment.PlainText(p.Content)))
	}
	parts = append(parts, m.styles.help.Render("enter: search/select   tab: results   esc: close"))
	return m.styles.panel(strings.Join(parts, "\n"))
}

func (m modelTUI) footer() string {
	var parts []string
	if m.inflight > 0 {
		parts = append(parts, m.spinner.View()+" saving")
	}
	if m.loaded && m.status != "" {
		parts = append(parts, m.styles.errorText.Render(m.status))
	}
	parts = append(parts, m.help.View(m.keys))
	return strings.Join(parts, "\n")
}

func (m modelTUI) modalView() string {
	btn := lipgloss.NewStyle().Padding(0, 1).Foreground(m.styles.buttonFg).Background(m.styles.buttonBg)
	active := btn.Foreground(m.styles.activeFg).Background(m.styles.activeBg).Bold(true)

	controls := lipgloss.JoinHorizontal(lipgloss.Top, active.Render("Yes (y)"), " ", btn.Render("No (n)"))
	width := min(max(m.width/2, 40), 72)
	body := lipgloss.NewStyle().Width(width - 4).Render(m.modal.Message())

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.styles.border).
		Background(m.styles.modalBg).
		Padding(1, 2).
		Width(width).
		Render(strings.Join([]string{body, "", controls}, "\n"))
}
