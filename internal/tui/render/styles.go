package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/cristianoliveira/contactbook/internal/colors"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ansiColorNumber(colors.Blue)))
	nameStyle    = lipgloss.NewStyle().Bold(true)
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	focusedStyle = lipgloss.NewStyle().Background(lipgloss.Color(ansiColorNumber(colors.Blue))).Foreground(lipgloss.Color("0"))
	currentStyle = lipgloss.NewStyle().Bold(true).Reverse(true)
	headerStyle  = lipgloss.NewStyle().Bold(true)
	phraseStyle  = lipgloss.NewStyle().Italic(true)
	statusStyles = map[string]lipgloss.Style{
		"error":   lipgloss.NewStyle().Foreground(lipgloss.Color(ansiColorNumber(colors.Red))),
		"warning": lipgloss.NewStyle().Foreground(lipgloss.Color(ansiColorNumber(colors.Yellow))),
		"ok":      lipgloss.NewStyle().Foreground(lipgloss.Color(ansiColorNumber(colors.Green))),
		"info":    lipgloss.NewStyle().Foreground(lipgloss.Color(ansiColorNumber(colors.Cyan))),
	}
)

// ansiColorNumber extracts the color number from an ANSI escape such as
// "\033[0;34m".
func ansiColorNumber(ansi string) string {
	if len(ansi) < 2 {
		return ""
	}
	lastSemicolon := strings.LastIndex(ansi, ";")
	if lastSemicolon == -1 {
		return ""
	}
	return ansi[lastSemicolon+1 : len(ansi)-1]
}
