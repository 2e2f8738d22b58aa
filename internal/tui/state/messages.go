package state

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cristianoliveira/contactbook/internal/source"
)

// ContactsLoadedMsg carries the result of the one fetch.
type ContactsLoadedMsg struct {
	Result source.Result
	// Err is a session store failure; fetch failures live in Result.Err.
	Err error
}

// clearStatusMsg clears the status line if it still shows the message
// with the same sequence number.
type clearStatusMsg struct {
	seq int
}

func clearStatusAfter(d time.Duration, seq int) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}
