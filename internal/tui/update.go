package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Makepad-fr/liser/internal/clipboard"
	"github.com/Makepad-fr/liser/internal/editor"
	"github.com/Makepad-fr/liser/internal/view"
)

func (m modelTUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.candidates.SetSize(max(msg.Width-8, 20), max(msg.Height/3, 4))
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case loadedMsg:
		if msg.err != nil {
			m.log.Error("load sections", "baglist_id", m.opt.BagListID, "err", msg.err)
			m.status = "could not load sections: " + msg.err.Error()
			return m, nil
		}
		m.status = ""
		m.loaded = true
		m.view.Replace(msg.sections)
		m.clampCursor()
		return m, nil

	case outcomeMsg:
		if m.inflight > 0 {
			m.inflight--
		}
		// the view patches itself only for confirmed successes
		if m.view.Apply(msg.out) == view.EffectReload {
			m.resetPicker()
			return m, m.loadCmd()
		}
		m.clampCursor()
		return m, nil

	case searchMsg:
		if msg.err != nil {
			return m, nil
		}
		if m.view.SetPickerContent(msg.sectionID, msg.query, msg.content) {
			m.candidates.SetItems(candidateItems(m.view.Picker().Candidates))
			m.candidates.Select(0)
		}
		return m, nil

	case copiedMsg:
		if !msg.copied {
			return m, nil
		}
		m.flashSeq++
		seq := m.flashSeq
		m.flash = flash{key: msg.key, seq: seq}
		return m, tea.Tick(clipboard.RevertAfter, func(time.Time) tea.Msg {
			return flashRevertMsg{seq: seq}
		})

	case flashRevertMsg:
		if msg.seq == m.flash.seq {
			m.flash = flash{}
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// cursor blink and friends
	var cmd tea.Cmd
	switch {
	case m.editing != editNone:
		cmd = m.updateEditor(msg)
	case m.view.Picker().Open && !m.pickerOnList:
		m.search, cmd = m.search.Update(msg)
	}
	return m, cmd
}

func (m modelTUI) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case m.modal.Pending():
		return m.handleModalKey(msg)
	case m.editing != editNone:
		return m.handleEditKey(msg)
	case m.view.Picker().Open:
		return m.handlePickerKey(msg)
	}
	return m.handleMainKey(msg)
}

// modal mode
func (m modelTUI) handleModalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Accept):
		cmd, _ := m.modal.Accept()
		if cmd != nil {
			m.inflight++
		}
		return m, cmd
	case key.Matches(msg, m.keys.Decline):
		m.modal.Decline()
	}
	return m, nil
}

// edit mode
func (m modelTUI) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	save := m.keys.Submit
	if m.editing.multiline() {
		// enter belongs to the textarea
		save = m.keys.SaveText
	}
	switch {
	case key.Matches(msg, save):
		field, sectionID, value := m.editing, m.editSection, m.editValue()
		m.stopEditing()

		var req editor.Request
		switch field {
		case editTitle:
			req = editor.UpdateTitle(sectionID, value)
		case editDescription:
			req = editor.UpdateDescription(sectionID, value)
		case editPosition:
			req = editor.UpdatePosition(sectionID, value)
		}
		req, err := req.Normalize()
		if err != nil {
			// invalid input never reaches the server
			return m, nil
		}
		// the control now shows the new value; the response does not change it
		switch field {
		case editTitle:
			m.view.SetTitle(sectionID, req.Value)
		case editDescription:
			m.view.SetDescription(sectionID, req.Value)
		case editPosition:
			m.view.SetPosition(sectionID, req.Value)
		}
		m.inflight++
		return m, mutateCmd(m.ctx, m.ed, req)

	case key.Matches(msg, m.keys.Cancel):
		m.stopEditing()
		return m, nil
	}
	return m, m.updateEditor(msg)
}

func (m *modelTUI) updateEditor(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if m.editing.multiline() {
		m.ta, cmd = m.ta.Update(msg)
	} else {
		m.ti, cmd = m.ti.Update(msg)
	}
	return cmd
}

func (m modelTUI) editValue() string {
	if m.editing.multiline() {
		return m.ta.Value()
	}
	return m.ti.Value()
}

func (m *modelTUI) stopEditing() {
	m.editing = editNone
	m.editSection = ""
	m.ti.Blur()
	m.ta.Blur()
}

// picker mode
func (m modelTUI) handlePickerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	p := m.view.Picker()
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.view.ClosePicker()
		m.resetPicker()
		return m, nil

	case key.Matches(msg, m.keys.SwitchFocus):
		if m.pickerOnList || len(m.candidates.Items()) == 0 {
			m.pickerOnList = false
			m.search.Focus()
			return m, textinput.Blink
		}
		m.pickerOnList = true
		m.search.Blur()
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		if !m.pickerOnList {
			return m, searchCmd(m.ctx, m.ed, m.search.Value(), p.SectionID)
		}
		it, ok := m.selectedCandidate()
		if !ok {
			return m, nil
		}
		return m.ask(editor.Associate(p.SectionID, it.ID))
	}

	var cmd tea.Cmd
	if m.pickerOnList {
		m.candidates, cmd = m.candidates.Update(msg)
	} else {
		m.search, cmd = m.search.Update(msg)
	}
	return m, cmd
}

func (m *modelTUI) resetPicker() {
	m.search.SetValue("")
	m.search.Blur()
	m.pickerOnList = false
	m.candidates.SetItems(nil)
}

// main list mode
func (m modelTUI) handleMainKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.rows())-1 {
			m.cursor++
		}
		return m, nil
	case key.Matches(msg, m.keys.Reload):
		return m, m.loadCmd()
	}

	r, ok := m.current()
	if !ok {
		return m, nil
	}
	s, _ := m.view.Section(r.sectionID)

	switch {
	case key.Matches(msg, m.keys.EditTitle):
		return m.startEditing(editTitle, s.ID, s.Title)
	case key.Matches(msg, m.keys.EditDesc):
		return m.startEditing(editDescription, s.ID, s.Description)
	case key.Matches(msg, m.keys.EditPos):
		return m.startEditing(editPosition, s.ID, s.Position)

	case key.Matches(msg, m.keys.RemoveItem):
		if r.itemID == "" {
			return m, nil
		}
		return m.ask(editor.RemoveItem(r.sectionID, r.itemID))

	case key.Matches(msg, m.keys.DeleteSect):
		return m.ask(editor.DeleteSection(r.sectionID))

	case key.Matches(msg, m.keys.AddItem):
		m.view.OpenPicker(r.sectionID)
		m.resetPicker()
		m.search.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Copy):
		// one copy at a time; a second press before the label reverts is ignored
		if m.flash.key != "" {
			return m, nil
		}
		return m, copyCmd(m.copier, r.key(), m.label(r))
	}
	return m, nil
}

func (m modelTUI) startEditing(field editField, sectionID, value string) (tea.Model, tea.Cmd) {
	m.editing = field
	m.editSection = sectionID
	if field.multiline() {
		m.ta.SetValue(value)
		m.ta.Placeholder = field.label() + "..."
		return m, m.ta.Focus()
	}
	m.ti.SetValue(value)
	m.ti.CursorEnd()
	m.ti.Placeholder = field.label() + "..."
	m.ti.Focus()
	return m, textinput.Blink
}

// ask routes req through the confirmation modal; the request is only built
// into a command once the user accepts.
func (m modelTUI) ask(req editor.Request) (tea.Model, tea.Cmd) {
	ctx, ed := m.ctx, m.ed
	m.modal.Confirm(req.ConfirmMessage(), func() tea.Cmd {
		return mutateCmd(ctx, ed, req)
	})
	return m, nil
}
