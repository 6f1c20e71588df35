// Package view is the client-side picture of one bag list: sections keyed by
// id, their item rows, and the item picker panel. It is loaded from a
// server fragment and afterwards changed only by the edit controls writing
// their own value and by Apply after a confirmed server success.
package view

import (
	"github.com/Makepad-fr/liser/internal/client"
	"github.com/Makepad-fr/liser/internal/fragment"
	"github.com/Makepad-fr/liser/internal/model"
)

// Effect tells the caller what to do beyond the in-place patch.
type Effect int

const (
	EffectNone Effect = iota
	// EffectReload asks for a full resynchronization from the server.
	EffectReload
)

// Outcome is the finished result of one mutation request.
type Outcome struct {
	Op        client.Op
	SectionID string
	ItemID    string
	Value     string
	Result    client.Result
	Err       error
}

// OK reports whether the server confirmed the mutation.
func (o Outcome) OK() bool { return o.Err == nil && o.Result.Success }

// Picker is the search-and-associate panel. Content is the last search
// fragment exactly as the server sent it.
type Picker struct {
	Open       bool
	SectionID  string
	Query      string
	Content    string
	Candidates []model.Item
}

type Model struct {
	order  []string
	byID   map[string]*model.Section
	picker Picker
}

func New(sections []model.Section) *Model {
	m := &Model{}
	m.Replace(sections)
	return m
}

// Replace rebuilds the view from freshly loaded sections. The picker is
// left as is.
func (m *Model) Replace(sections []model.Section) {
	m.order = make([]string, 0, len(sections))
	m.byID = make(map[string]*model.Section, len(sections))
	for _, s := range sections {
		if s.ID == "" {
			continue
		}
		if _, dup := m.byID[s.ID]; dup {
			continue
		}
		s := s
		s.Items = append([]model.Item(nil), s.Items...)
		m.order = append(m.order, s.ID)
		m.byID[s.ID] = &s
	}
}

func (m *Model) Len() int { return len(m.order) }

// Sections returns a copy of the sections in display order.
func (m *Model) Sections() []model.Section {
	out := make([]model.Section, 0, len(m.order))
	for _, id := range m.order {
		s := *m.byID[id]
		s.Items = append([]model.Item(nil), s.Items...)
		out = append(out, s)
	}
	return out
}

func (m *Model) Section(id string) (model.Section, bool) {
	s, ok := m.byID[id]
	if !ok {
		return model.Section{}, false
	}
	c := *s
	c.Items = append([]model.Item(nil), s.Items...)
	return c, true
}

// HasItem reports whether itemID has a row in sectionID.
func (m *Model) HasItem(sectionID, itemID string) bool {
	s, ok := m.byID[sectionID]
	if !ok {
		return false
	}
	for _, it := range s.Items {
		if it.ID == itemID {
			return true
		}
	}
	return false
}

// SetTitle, SetDescription and SetPosition are the edit controls writing
// what the user typed; the server round-trip never touches these fields.
func (m *Model) SetTitle(sectionID, v string) bool {
	return m.set(sectionID, func(s *model.Section) { s.Title = v })
}

func (m *Model) SetDescription(sectionID, v string) bool {
	return m.set(sectionID, func(s *model.Section) { s.Description = v })
}

func (m *Model) SetPosition(sectionID, v string) bool {
	return m.set(sectionID, func(s *model.Section) { s.Position = v })
}

func (m *Model) set(id string, f func(*model.Section)) bool {
	s, ok := m.byID[id]
	if ok {
		f(s)
	}
	return ok
}

func (m *Model) Picker() Picker {
	p := m.picker
	p.Candidates = append([]model.Item(nil), m.picker.Candidates...)
	return p
}

// OpenPicker shows an empty picker for sectionID.
func (m *Model) OpenPicker(sectionID string) {
	m.picker = Picker{Open: true, SectionID: sectionID}
}

// SetPickerContent stores a search fragment verbatim. Results for a picker
// that was closed, or reopened for another section, are dropped.
func (m *Model) SetPickerContent(sectionID, query, content string) bool {
	if !m.picker.Open || m.picker.SectionID != sectionID {
		return false
	}
	m.picker.Query = query
	m.picker.Content = content
	m.picker.Candidates, _ = fragment.ParseItems(content)
	return true
}

// ClosePicker clears the picker. In-flight searches are not cancelled.
func (m *Model) ClosePicker() {
	m.picker = Picker{}
}

// Apply patches the view for a finished mutation. Nothing changes unless
// the server confirmed success.
func (m *Model) Apply(o Outcome) Effect {
	if !o.OK() {
		return EffectNone
	}
	switch o.Op {
	case client.OpRemoveItemFromSection:
		m.removeItem(o.SectionID, o.ItemID)
	case client.OpDeleteSection:
		m.removeSection(o.SectionID)
	case client.OpAssociateItem:
		m.ClosePicker()
		return EffectReload
	}
	// title, description and position are already shown by their control
	return EffectNone
}

func (m *Model) removeItem(sectionID, itemID string) {
	s, ok := m.byID[sectionID]
	if !ok {
		return
	}
	for i, it := range s.Items {
		if it.ID == itemID {
			s.Items = append(s.Items[:i], s.Items[i+1:]...)
			return
		}
	}
}

func (m *Model) removeSection(sectionID string) {
	if _, ok := m.byID[sectionID]; !ok {
		return
	}
	delete(m.byID, sectionID)
	for i, id := range m.order {
		if id == sectionID {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	if m.picker.SectionID == sectionID {
		m.ClosePicker()
	}
}
