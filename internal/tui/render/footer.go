package render

import "strings"

// FooterState defines the inputs needed to render the bottom line.
type FooterState struct {
	// StatusKind is one of error, warning, ok, info.
	StatusKind    string
	StatusMessage string
	Help          string
	Width         int
}

// Footer renders the status message when present, otherwise help text.
// Full help may span several lines.
func Footer(state FooterState) string {
	text := state.Help
	if state.StatusMessage != "" {
		style, ok := statusStyles[state.StatusKind]
		if !ok {
			style = statusStyles["info"]
		}
		text = style.Render(state.StatusMessage)
	}
	return fit(strings.Split(text, "\n"), state.Width)
}

// Loading renders the placeholder shown until the contacts arrive.
func Loading(spinner string) string {
	return spinner + " " + dimStyle.Render("Loading contacts...")
}
