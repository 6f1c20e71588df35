// Package tui is the interactive bag-list editor.
package tui

import (
	"context"
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Makepad-fr/liser/internal/clipboard"
	"github.com/Makepad-fr/liser/internal/confirm"
	"github.com/Makepad-fr/liser/internal/editor"
	"github.com/Makepad-fr/liser/internal/model"
	"github.com/Makepad-fr/liser/internal/view"
)

// Options configure a TUI session.
type Options struct {
	BagListID string
	Theme     string
	Copier    *clipboard.Copier
	Logger    *slog.Logger
}

type editField int

const (
	editNone editField = iota
	editTitle
	editDescription
	editPosition
)

func (f editField) multiline() bool { return f == editDescription }

func (f editField) label() string {
	switch f {
	case editTitle:
		return "Edit title"
	case editDescription:
		return "Edit description"
	case editPosition:
		return "Edit position"
	}
	return ""
}

// row is one selectable line: a section header (itemID empty) or an item.
type row struct {
	sectionID string
	itemID    string
}

func (r row) key() string { return r.sectionID + "/" + r.itemID }

type flash struct {
	key string
	seq int
}

// messages
type (
	loadedMsg struct {
		sections []model.Section
		err      error
	}
	outcomeMsg struct {
		out view.Outcome
	}
	searchMsg struct {
		sectionID string
		query     string
		content   string
		err       error
	}
	copiedMsg struct {
		key    string
		copied bool
	}
	flashRevertMsg struct {
		seq int
	}
)

type modelTUI struct {
	ctx    context.Context
	ed     *editor.Editor
	copier *clipboard.Copier
	log    *slog.Logger
	opt    Options

	view  *view.Model
	modal *confirm.Modal[tea.Cmd]

	cursor int
	loaded bool
	status string // last load problem, shown in the footer

	// Inline edit
	editing     editField
	editSection string
	ti          textinput.Model
	ta          textarea.Model // descriptions are multi-line and unbounded

	// Item picker
	search       textinput.Model
	candidates   list.Model
	pickerOnList bool

	flash    flash
	flashSeq int

	inflight int
	spinner  spinner.Model
	help     help.Model
	keys     keyMap
	styles   styles

	width, height int
}

func newModel(ctx context.Context, ed *editor.Editor, opt Options) modelTUI {
	if opt.Logger == nil {
		opt.Logger = slog.Default()
	}
	if opt.Copier == nil {
		opt.Copier = clipboard.New(nil, opt.Logger)
	}
	m := modelTUI{
		ctx:    ctx,
		ed:     ed,
		copier: opt.Copier,
		log:    opt.Logger,
		opt:    opt,
		view:   view.New(nil),
		modal:  &confirm.Modal[tea.Cmd]{},
		keys:   defaultKeys(),
		help:   help.New(),
		styles: newStyles(opt.Theme),
		width:  80,
		height: 24,
	}

	// set up text input for inline edit
	m.ti = textinput.New()
	m.ti.Prompt = "> "
	m.ti.CharLimit = 0

	m.ta = textarea.New()
	m.ta.CharLimit = 0
	m.ta.MaxHeight = 0
	m.ta.ShowLineNumbers = false
	m.ta.SetWidth(60)
	m.ta.SetHeight(5)

	m.search = textinput.New()
	m.search.Prompt = "/ "
	m.search.Placeholder = "Search items..."
	m.search.CharLimit = 200

	m.candidates = newCandidateList(m.styles)
	m.spinner = spinner.New()
	m.spinner.Spinner = spinner.Dot
	return m
}

// Run starts the editor for opt.BagListID and blocks until the user quits.
func Run(ctx context.Context, ed *editor.Editor, opt Options) error {
	p := tea.NewProgram(newModel(ctx, ed, opt), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

func (m modelTUI) Init() tea.Cmd {
	return tea.Batch(m.loadCmd(), m.spinner.Tick)
}

// rows flattens the view into selectable lines.
func (m modelTUI) rows() []row {
	var out []row
	for _, s := range m.view.Sections() {
		out = append(out, row{sectionID: s.ID})
		for _, it := range s.Items {
			out = append(out, row{sectionID: s.ID, itemID: it.ID})
		}
	}
	return out
}

func (m modelTUI) current() (row, bool) {
	rs := m.rows()
	if m.cursor < 0 || m.cursor >= len(rs) {
		return row{}, false
	}
	return rs[m.cursor], true
}

func (m *modelTUI) clampCursor() {
	n := len(m.rows())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// label is the visible text of a row, the thing that gets copied.
func (m modelTUI) label(r row) string {
	s, ok := m.view.Section(r.sectionID)
	if !ok {
		return ""
	}
	if r.itemID == "" {
		return s.Title
	}
	for _, it := range s.Items {
		if it.ID == r.itemID {
			return it.Title
		}
	}
	return ""
}

// ---------- commands ----------

func (m modelTUI) loadCmd() tea.Cmd {
	ctx, ed, id := m.ctx, m.ed, m.opt.BagListID
	return func() tea.Msg {
		secs, err := ed.Load(ctx, id)
		return loadedMsg{sections: secs, err: err}
	}
}

func mutateCmd(ctx context.Context, ed *editor.Editor, req editor.Request) tea.Cmd {
	return func() tea.Msg {
		return outcomeMsg{out: ed.Do(ctx, req)}
	}
}

func searchCmd(ctx context.Context, ed *editor.Editor, query, sectionID string) tea.Cmd {
	return func() tea.Msg {
		content, err := ed.Search(ctx, query, sectionID)
		return searchMsg{sectionID: sectionID, query: query, content: content, err: err}
	}
}

func copyCmd(c *clipboard.Copier, key, text string) tea.Cmd {
	return func() tea.Msg {
		copied, _ := c.Copy(text)
		return copiedMsg{key: key, copied: copied}
	}
}
