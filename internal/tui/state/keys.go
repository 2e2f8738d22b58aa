package state

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Search    key.Binding
	Up        key.Binding
	Down      key.Binding
	Enter     key.Binding
	Escape    key.Binding
	NextPage  key.Binding
	PrevPage  key.Binding
	FirstPage key.Binding
	LastPage  key.Binding
	JumpPage  key.Binding
	Sort      key.Binding
	SortAsc   key.Binding
	SortDesc  key.Binding
	Reset     key.Binding
	ScrollUp  key.Binding
	ScrollDn  key.Binding
	Help      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Search:    key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Up:        key.NewBinding(key.WithKeys("up", "ctrl+p"), key.WithHelp("↑", "prev suggestion")),
		Down:      key.NewBinding(key.WithKeys("down", "ctrl+n"), key.WithHelp("↓", "next suggestion")),
		Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "search/select")),
		Escape:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "leave search")),
		NextPage:  key.NewBinding(key.WithKeys("right", "l", "n"), key.WithHelp("→/n", "next page")),
		PrevPage:  key.NewBinding(key.WithKeys("left", "h", "p"), key.WithHelp("←/p", "prev page")),
		FirstPage: key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "first page")),
		LastPage:  key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "last page")),
		JumpPage:  key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-9", "go to page")),
		Sort:      key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "toggle sort")),
		SortAsc:   key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "sort A-Z")),
		SortDesc:  key.NewBinding(key.WithKeys("z"), key.WithHelp("z", "sort Z-A")),
		Reset:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		ScrollUp:  key.NewBinding(key.WithKeys("up", "k", "pgup"), key.WithHelp("↑/k", "scroll up")),
		ScrollDn:  key.NewBinding(key.WithKeys("down", "j", "pgdown"), key.WithHelp("↓/j", "scroll down")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.NextPage, k.PrevPage, k.Sort, k.Reset, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Search, k.Up, k.Down, k.Enter, k.Escape},
		{k.NextPage, k.PrevPage, k.FirstPage, k.LastPage, k.JumpPage},
		{k.Sort, k.SortAsc, k.SortDesc, k.Reset},
		{k.ScrollUp, k.ScrollDn, k.Help, k.Quit},
	}
}
