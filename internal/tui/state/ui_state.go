package state

import (
	"github.com/cristianoliveira/contactbook/internal/domain"
	"github.com/cristianoliveira/contactbook/internal/search"
)

// NoFocus means no suggestion is highlighted.
const NoFocus = -1

// UIState is the search, suggestion and paging state of the contact list.
// It has no terminal concerns; Model drives it from keys and the mouse.
type UIState struct {
	engine *search.Engine

	contacts []domain.Contact
	loaded   bool

	query       string
	suggestions []domain.Contact
	focus       int

	result search.Result
	order  domain.SortOrder
	sorted bool
	pager  domain.Paginator
}

// NewUIState creates an empty state, before contacts have loaded.
func NewUIState(engine *search.Engine, pageSize int, order domain.SortOrder) *UIState {
	if engine == nil {
		engine = search.NewEngine()
	}
	if !order.IsValid() {
		order = domain.SortOrderAsc
	}
	return &UIState{
		engine:      engine,
		contacts:    []domain.Contact{},
		suggestions: []domain.Contact{},
		focus:       NoFocus,
		order:       order,
		sorted:      true,
		pager:       domain.NewPaginator(pageSize),
	}
}

// SetContacts installs the loaded collection and marks loading complete.
func (u *UIState) SetContacts(contacts []domain.Contact) {
	u.contacts = domain.Clone(contacts)
	if u.contacts == nil {
		u.contacts = []domain.Contact{}
	}
	u.loaded = true
	u.result = search.Result{}
	u.clearSuggestions()
	u.pager.Reset(len(u.contacts))
}

// Loaded reports whether the one fetch has resolved.
func (u *UIState) Loaded() bool { return u.loaded }

// Contacts returns the full collection in its current order.
func (u *UIState) Contacts() []domain.Contact { return u.contacts }

// Query returns the text in the search input.
func (u *UIState) Query() string { return u.query }

// Suggestions returns the current suggestions.
func (u *UIState) Suggestions() []domain.Contact { return u.suggestions }

// Focus returns the highlighted suggestion index or NoFocus.
func (u *UIState) Focus() int { return u.focus }

// Result returns the committed search.
func (u *UIState) Result() search.Result { return u.result }

// LastQuery returns the committed query, empty when unfiltered.
func (u *UIState) LastQuery() string { return u.result.Query }

// Filtered reports whether a search has been committed.
func (u *UIState) Filtered() bool { return u.result.Filtered }

// SortOrder returns the active sort order.
func (u *UIState) SortOrder() domain.SortOrder { return u.order }

// Page returns the current 1-based page.
func (u *UIState) Page() int { return u.pager.Page() }

// TotalPages returns the number of pages of the visible collection.
func (u *UIState) TotalPages() int { return u.pager.TotalPages() }

// Header returns the results heading, empty when unfiltered.
func (u *UIState) Header() string { return u.result.Header() }

// Collection returns the filtered results when a search is committed,
// otherwise the full collection.
func (u *UIState) Collection() []domain.Contact {
	if u.result.Filtered {
		return u.result.Contacts
	}
	return u.contacts
}

// Visible returns the contacts on the current page.
func (u *UIState) Visible() []domain.Contact {
	return domain.Page(u.Collection(), u.pager.PageSize(), u.pager.Page())
}

// SetQuery updates the input text and recomputes suggestions. Focus is
// cleared; the committed results are unchanged.
func (u *UIState) SetQuery(raw string) {
	u.query = raw
	u.suggestions = u.engine.Suggestions(u.contacts, raw)
	u.focus = NoFocus
}

// FocusNext moves the highlight down, wrapping from the last row (or no
// focus) to the first. It is a no-op without suggestions.
func (u *UIState) FocusNext() {
	n := len(u.suggestions)
	if n == 0 {
		return
	}
	if u.focus == NoFocus || u.focus >= n-1 {
		u.focus = 0
		return
	}
	u.focus++
}

// FocusPrev moves the highlight up, wrapping from the first row (or no
// focus) to the last. It is a no-op without suggestions.
func (u *UIState) FocusPrev() {
	n := len(u.suggestions)
	if n == 0 {
		return
	}
	if u.focus <= 0 {
		u.focus = n - 1
		return
	}
	u.focus--
}

// Hover highlights suggestion i.
func (u *UIState) Hover(i int) {
	if i < 0 || i >= len(u.suggestions) {
		return
	}
	u.focus = i
}

// Leave clears the highlight.
func (u *UIState) Leave() {
	u.focus = NoFocus
}

// DismissSuggestions hides the suggestion list.
func (u *UIState) DismissSuggestions() {
	u.clearSuggestions()
}

// Enter selects the highlighted suggestion, or commits the typed query
// when nothing is highlighted.
func (u *UIState) Enter() {
	if u.focus != NoFocus && u.focus < len(u.suggestions) {
		u.SelectSuggestion(u.focus)
		return
	}
	u.Commit()
}

// Commit runs the search for the typed query. A blank query clears the
// filter. The page returns to 1.
func (u *UIState) Commit() {
	u.apply(u.engine.Commit(u.contacts, u.query))
}

// SelectSuggestion fills the input with suggestion i's name and commits
// a search for it.
func (u *UIState) SelectSuggestion(i int) {
	if i < 0 || i >= len(u.suggestions) {
		return
	}
	name := u.suggestions[i].Name
	u.query = name
	u.apply(u.engine.Select(u.contacts, name))
}

func (u *UIState) apply(res search.Result) {
	u.result = res
	u.clearSuggestions()
	u.pager.Reset(len(u.Collection()))
}

// Reset clears the input, suggestions and committed search, returning to
// the full collection on page 1.
func (u *UIState) Reset() {
	u.query = ""
	u.result = search.Result{}
	u.clearSuggestions()
	u.pager.Reset(len(u.contacts))
}

// MarkUnsorted records that the collection is still in source order, so
// the sort indicator does not claim an order nobody applied.
func (u *UIState) MarkUnsorted() { u.sorted = false }

// Sorted reports whether the collection has been ordered by name.
func (u *UIState) Sorted() bool { return u.sorted }

// SortLabel names the current order for the status bar.
func (u *UIState) SortLabel() string {
	if !u.sorted {
		return "Unsorted"
	}
	return u.order.Label()
}

// Sort reorders the collection and any committed results by name and
// returns to page 1.
func (u *UIState) Sort(order domain.SortOrder) {
	if !order.IsValid() {
		return
	}
	u.order = order
	u.sorted = true
	u.contacts = domain.SortByName(u.contacts, order)
	if u.result.Filtered {
		u.result.Contacts = domain.SortByName(u.result.Contacts, order)
	}
	u.pager.Reset(len(u.Collection()))
}

// ToggleSort flips between ascending and descending. An unsorted
// collection is sorted in the configured order first.
func (u *UIState) ToggleSort() {
	if !u.sorted {
		u.Sort(u.order)
		return
	}
	u.Sort(u.order.Toggle())
}

// NextPage advances one page; it reports whether the page changed.
func (u *UIState) NextPage() bool { return u.pager.Next() }

// PrevPage goes back one page; it reports whether the page changed.
func (u *UIState) PrevPage() bool { return u.pager.Prev() }

// GoToPage jumps to page n; out-of-range pages are ignored.
func (u *UIState) GoToPage(n int) bool { return u.pager.GoTo(n) }

// LastPage jumps to the final page.
func (u *UIState) LastPage() bool { return u.pager.GoTo(u.pager.TotalPages()) }

func (u *UIState) clearSuggestions() {
	u.suggestions = []domain.Contact{}
	u.focus = NoFocus
}
