package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// DropdownState defines the inputs needed to render the suggestion list.
type DropdownState struct {
	Names []string
	// Focus is the highlighted row, or -1.
	Focus int
	Width int
}

// Dropdown renders one line per suggestion. It returns "" when there are
// no suggestions so the layout collapses.
func Dropdown(state DropdownState) string {
	if len(state.Names) == 0 {
		return ""
	}
	width := state.Width
	if width <= 0 {
		width = 40
	}
	rows := make([]string, len(state.Names))
	for i, name := range state.Names {
		row := ansi.Truncate("  "+name, width, "…")
		if i == state.Focus {
			row = focusedStyle.Render(padRight(row, width))
		}
		rows[i] = row
	}
	return strings.Join(rows, "\n")
}

// StatusBarState defines the inputs needed to render the line above the list.
type StatusBarState struct {
	SortLabel string
	// Header is the committed results heading, empty when unfiltered.
	Header string
	Width  int
}

// StatusBar renders the sort indicator and the results heading.
func StatusBar(state StatusBarState) string {
	line := dimStyle.Render("[" + state.SortLabel + "]")
	if state.Header != "" {
		line += "  " + headerStyle.Render(state.Header)
	}
	if state.Width > 0 {
		line = ansi.Truncate(line, state.Width, "…")
	}
	return line
}

// Title renders the application title line.
func Title(width int, total int) string {
	title := titleStyle.Render("Contacts")
	if total > 0 {
		title += dimStyle.Render(fmt.Sprintf(" (%d)", total))
	}
	if width > 0 {
		title = ansi.Truncate(title, width, "…")
	}
	return title
}

func padRight(s string, width int) string {
	if w := ansi.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
