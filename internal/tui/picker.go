package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Makepad-fr/liser/internal/model"
)

// candidate adapts a search result to bubbles/list.Item
type candidate struct {
	model.Item
}

func (c candidate) FilterValue() string { return c.Title }

// Custom delegate to control how candidates render (single line)
type candidateDelegate struct {
	st styles
}

func (d candidateDelegate) Height() int                               { return 1 }
func (d candidateDelegate) Spacing() int                              { return 0 }
func (d candidateDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d candidateDelegate) Render(w io.Writer, m list.Model, index int, li list.Item) {
	c, ok := li.(candidate)
	if !ok {
		return
	}
	prefix := "  "
	title := c.Title
	if index == m.Index() {
		prefix = d.st.selected.Render("> ")
		title = d.st.accent.Render(title)
	}
	fmt.Fprintln(w, prefix+title)
}

func newCandidateList(st styles) list.Model {
	l := list.New(nil, candidateDelegate{st: st}, 40, 8)
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(true)
	l.SetFilteringEnabled(false)
	l.Styles.PaginationStyle = st.help
	return l
}

func candidateItems(items []model.Item) []list.Item {
	out := make([]list.Item, 0, len(items))
	for _, it := range items {
		out = append(out, candidate{Item: it})
	}
	return out
}

func (m modelTUI) selectedCandidate() (model.Item, bool) {
	c, ok := m.candidates.SelectedItem().(candidate)
	if !ok {
		return model.Item{}, false
	}
	return c.Item, true
}
