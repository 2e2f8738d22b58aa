package state

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/cristianoliveira/contactbook/internal/tui/events"
)

// handleMouseMsg publishes pointer events to the bus and applies the
// direct effects of a click.
func (m *Model) handleMouseMsg(msg tea.MouseMsg) tea.Cmd {
	if !m.ui.Loaded() {
		return nil
	}

	var cmd tea.Cmd
	switch {
	case msg.Action == tea.MouseActionMotion && msg.Button == tea.MouseButtonNone:
		m.bus.Publish(events.Event{Kind: events.PointerMove, X: msg.X, Y: msg.Y})
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		m.bus.Publish(events.Event{Kind: events.PointerDown, X: msg.X, Y: msg.Y})
		if i, ok := m.suggestionAt(msg.Y); ok {
			m.ui.SelectSuggestion(i)
			m.syncInput()
			m.pointerInDropdown = false
			m.viewport.GotoTop()
		} else if msg.Y == inputRow && !m.searchMode {
			cmd = m.enterSearch()
		}
	case msg.Button == tea.MouseButtonWheelUp, msg.Button == tea.MouseButtonWheelDown:
		m.viewport, cmd = m.viewport.Update(msg)
		return cmd
	default:
		return nil
	}
	m.refresh()
	return cmd
}

// onPointerDown dismisses the suggestions when the press lands outside
// the input and the suggestion list.
func (m *Model) onPointerDown(e events.Event) {
	if m.insideSearch(e.Y) {
		return
	}
	m.ui.DismissSuggestions()
	m.pointerInDropdown = false
}

// onPointerMove highlights the hovered suggestion and clears the
// highlight when the pointer leaves the list.
func (m *Model) onPointerMove(e events.Event) {
	if i, ok := m.suggestionAt(e.Y); ok {
		m.ui.Hover(i)
		m.pointerInDropdown = true
		return
	}
	if m.pointerInDropdown {
		m.pointerInDropdown = false
		m.ui.Leave()
	}
}

// suggestionAt maps a screen row to a suggestion index through the
// visible window of the dropdown.
func (m *Model) suggestionAt(y int) (int, bool) {
	row := y - dropdownTop
	if row < 0 || row >= m.dropdownRows {
		return 0, false
	}
	i := m.dropdownOffset + row
	return i, i < len(m.ui.Suggestions())
}

func (m *Model) insideSearch(y int) bool {
	if y == inputRow {
		return true
	}
	_, ok := m.suggestionAt(y)
	return ok
}
