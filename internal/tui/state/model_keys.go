package state

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/cristianoliveira/contactbook/internal/domain"
)

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m, tea.Quit
	}
	if !m.ui.Loaded() {
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		return m, nil
	}
	if m.searchMode {
		return m.handleSearchKey(msg)
	}
	return m.handleBrowseKey(msg)
}

// handleSearchKey routes keys while the search input has focus.
func (m *Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.leaveSearch()
	case key.Matches(msg, m.keys.Up):
		m.ui.FocusPrev()
	case key.Matches(msg, m.keys.Down):
		m.ui.FocusNext()
	case key.Matches(msg, m.keys.Enter):
		m.ui.Enter()
		m.syncInput()
		m.viewport.GotoTop()
	default:
		before := m.input.Value()
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		if value := m.input.Value(); value != before {
			m.ui.SetQuery(value)
			m.dropdownOffset = 0
		}
		m.refresh()
		return m, cmd
	}
	m.refresh()
	return m, nil
}

// handleBrowseKey routes keys while the list has focus.
func (m *Model) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Search):
		cmd = m.enterSearch()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Sort):
		m.ui.ToggleSort()
		m.viewport.GotoTop()
	case key.Matches(msg, m.keys.SortAsc):
		m.ui.Sort(domain.SortOrderAsc)
		m.viewport.GotoTop()
	case key.Matches(msg, m.keys.SortDesc):
		m.ui.Sort(domain.SortOrderDesc)
		m.viewport.GotoTop()
	case key.Matches(msg, m.keys.NextPage):
		m.pageChanged(m.ui.NextPage())
	case key.Matches(msg, m.keys.PrevPage):
		m.pageChanged(m.ui.PrevPage())
	case key.Matches(msg, m.keys.FirstPage):
		m.pageChanged(m.ui.GoToPage(1))
	case key.Matches(msg, m.keys.LastPage):
		m.pageChanged(m.ui.LastPage())
	case key.Matches(msg, m.keys.JumpPage):
		m.pageChanged(m.ui.GoToPage(int(msg.String()[0] - '0')))
	case key.Matches(msg, m.keys.Reset):
		m.ui.Reset()
		m.input.Reset()
		m.viewport.GotoTop()
	case key.Matches(msg, m.keys.ScrollUp), key.Matches(msg, m.keys.ScrollDn):
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	default:
		return m, nil
	}
	m.refresh()
	return m, cmd
}

func (m *Model) enterSearch() tea.Cmd {
	m.searchMode = true
	m.ui.SetQuery(m.input.Value())
	m.dropdownOffset = 0
	return m.input.Focus()
}

func (m *Model) leaveSearch() {
	m.searchMode = false
	m.input.Blur()
	m.ui.DismissSuggestions()
	m.pointerInDropdown = false
}

// syncInput copies the state's query into the input, e.g. after a
// suggestion fills it with a name.
func (m *Model) syncInput() {
	m.input.SetValue(m.ui.Query())
	m.input.CursorEnd()
}

// pageChanged scrolls the list back to the top after a page change.
func (m *Model) pageChanged(changed bool) {
	if changed {
		m.viewport.GotoTop()
	}
}
