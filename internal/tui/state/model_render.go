package state

import (
	"strings"

	"github.com/cristianoliveira/contactbook/internal/domain"
	"github.com/cristianoliveira/contactbook/internal/tui/render"
)

// View renders the TUI.
func (m *Model) View() string {
	w, _ := m.size()
	if !m.ui.Loaded() {
		return render.Title(w, 0) + "\n\n" + render.Loading(m.spinner.View())
	}

	var s strings.Builder
	s.WriteString(render.Title(w, len(m.ui.Contacts())))
	s.WriteString("\n")
	s.WriteString(m.input.View())
	if dropdown := render.Dropdown(m.dropdownState()); dropdown != "" {
		s.WriteString("\n")
		s.WriteString(dropdown)
	}
	s.WriteString("\n")
	s.WriteString(render.StatusBar(render.StatusBarState{
		SortLabel: m.ui.SortLabel(),
		Header:    m.ui.Header(),
		Width:     w,
	}))
	s.WriteString("\n")
	s.WriteString(m.viewport.View())
	s.WriteString("\n")
	s.WriteString(render.Pager(render.PagerState{
		Page:       m.ui.Page(),
		TotalPages: m.ui.TotalPages(),
		Width:      w,
	}))
	s.WriteString("\n")
	s.WriteString(m.footer())
	return s.String()
}

// dropdownState renders only the window of suggestions that fits the
// screen; the full list stays in UIState.
func (m *Model) dropdownState() render.DropdownState {
	w, _ := m.size()
	suggestions := m.ui.Suggestions()
	start := min(m.dropdownOffset, len(suggestions))
	end := min(start+m.dropdownRows, len(suggestions))
	focus := m.ui.Focus()
	if focus != NoFocus {
		focus -= start
	}
	return render.DropdownState{
		Names: domain.Names(suggestions[start:end]),
		Focus: focus,
		Width: w,
	}
}

// layoutDropdown sizes the suggestion window to the rows the rest of the
// layout leaves and scrolls it so the focused suggestion stays visible.
func (m *Model) layoutDropdown(budget int) {
	n := len(m.ui.Suggestions())
	rows := max(0, min(n, budget))
	offset := m.dropdownOffset
	if focus := m.ui.Focus(); focus != NoFocus && rows > 0 {
		if focus < offset {
			offset = focus
		}
		if focus >= offset+rows {
			offset = focus - rows + 1
		}
	}
	m.dropdownRows = rows
	m.dropdownOffset = max(0, min(offset, n-rows))
}

func (m *Model) footer() string {
	w, _ := m.size()
	return render.Footer(render.FooterState{
		StatusKind:    m.status.Type.String(),
		StatusMessage: m.status.Text,
		Help:          m.help.View(m.keys),
		Width:         w,
	})
}

// refresh sizes the viewport to the space the rest of the layout leaves
// and renders the current page into it.
func (m *Model) refresh() {
	w, h := m.size()
	// title, input, status bar, pager and footer; the list keeps one row
	chrome := 4 + strings.Count(m.footer(), "\n") + 1
	m.layoutDropdown(h - chrome - 1)
	vh := h - chrome - m.dropdownRows
	if vh < 1 {
		vh = 1
	}
	m.viewport.Width = w
	m.viewport.Height = vh
	m.viewport.SetContent(render.Cards(m.ui.Visible(), w))
}
