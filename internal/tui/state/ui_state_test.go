package state

import (
	"testing"

	"github.com/cristianoliveira/contactbook/internal/domain"
	"github.com/cristianoliveira/contactbook/internal/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func directory() []domain.Contact {
	names := []string{
		"Leanne Graham", "Ervin Howell", "Clementine Bauch", "Patricia Lebsack",
		"Chelsey Dietrich", "Mrs. Dennis Schulist", "Kurtis Weissnat", "Nicholas Runolfsdottir V",
		"Glenna Reichert", "Clementina DuBuque", "Adam Smith", "Zoe Young",
	}
	out := make([]domain.Contact, len(names))
	for i, n := range names {
		out[i] = domain.Contact{ID: i + 1, Name: n}
	}
	return out
}

func newLoadedState(t *testing.T, contacts []domain.Contact) *UIState {
	t.Helper()
	u := NewUIState(search.NewEngine(), 5, domain.SortOrderAsc)
	u.SetContacts(contacts)
	return u
}

func TestNewUIStateDefaults(t *testing.T) {
	u := NewUIState(nil, 0, "")

	assert.False(t, u.Loaded())
	assert.Equal(t, NoFocus, u.Focus())
	assert.Empty(t, u.Suggestions())
	assert.Equal(t, domain.SortOrderAsc, u.SortOrder())
	assert.Equal(t, 1, u.Page())
	assert.Equal(t, 1, u.TotalPages())
	assert.Empty(t, u.Visible())
}

func TestScenarioErvin(t *testing.T) {
	u := newLoadedState(t, directory()[:3])

	u.SetQuery("ervin")
	require.Equal(t, []string{"Ervin Howell"}, domain.Names(u.Suggestions()))

	u.Enter()

	assert.True(t, u.Filtered())
	assert.Equal(t, "ervin", u.LastQuery())
	assert.Equal(t, []string{"Ervin Howell"}, domain.Names(u.Visible()))
	assert.Equal(t, `Results for "ervin" (1 results)`, u.Header())
	assert.Empty(t, u.Suggestions())
}

func TestSetQueryClearsFocusAndKeepsCommittedResults(t *testing.T) {
	u := newLoadedState(t, directory())
	u.SetQuery("cle")
	u.Commit()
	committed := u.Visible()

	u.SetQuery("c")
	u.FocusNext()
	u.SetQuery("ch")

	assert.Equal(t, NoFocus, u.Focus())
	assert.Equal(t, committed, u.Visible())
	assert.Equal(t, []string{"Chelsey Dietrich"}, domain.Names(u.Suggestions()))
}

func TestEmptyQueryHasNoSuggestions(t *testing.T) {
	u := newLoadedState(t, directory())

	u.SetQuery("   ")

	assert.Empty(t, u.Suggestions())
}

func TestFocusWrapsAround(t *testing.T) {
	u := newLoadedState(t, directory())
	u.SetQuery("c")
	require.Len(t, u.Suggestions(), 3)

	u.FocusNext()
	assert.Equal(t, 0, u.Focus())
	u.FocusNext()
	u.FocusNext()
	assert.Equal(t, 2, u.Focus())
	u.FocusNext()
	assert.Equal(t, 0, u.Focus(), "down from last wraps to first")

	u.FocusPrev()
	assert.Equal(t, 2, u.Focus(), "up from first wraps to last")

	u.Leave()
	u.FocusPrev()
	assert.Equal(t, 2, u.Focus(), "up without focus goes to last")
}

func TestFocusWithoutSuggestionsIsNoop(t *testing.T) {
	u := newLoadedState(t, directory())
	u.SetQuery("zzz")

	u.FocusNext()
	assert.Equal(t, NoFocus, u.Focus())
	u.FocusPrev()
	assert.Equal(t, NoFocus, u.Focus())
}

func TestEnterSelectsFocusedSuggestion(t *testing.T) {
	u := newLoadedState(t, directory())
	u.SetQuery("cle")
	u.FocusNext()
	u.FocusNext()

	u.Enter()

	assert.Equal(t, "Clementina DuBuque", u.Query())
	assert.Equal(t, "Clementina DuBuque", u.LastQuery())
	assert.Equal(t, []string{"Clementina DuBuque"}, domain.Names(u.Visible()))
	assert.Equal(t, NoFocus, u.Focus())
}

func TestHoverAndLeave(t *testing.T) {
	u := newLoadedState(t, directory())
	u.SetQuery("c")

	u.Hover(1)
	assert.Equal(t, 1, u.Focus())
	u.Hover(7)
	assert.Equal(t, 1, u.Focus())
	u.Leave()
	assert.Equal(t, NoFocus, u.Focus())
}

func TestDismissSuggestions(t *testing.T) {
	u := newLoadedState(t, directory())
	u.SetQuery("c")
	u.FocusNext()

	u.DismissSuggestions()

	assert.Empty(t, u.Suggestions())
	assert.Equal(t, NoFocus, u.Focus())
	assert.Equal(t, "c", u.Query())
}

func TestCommitEmptyAfterFilterReturnsToAll(t *testing.T) {
	u := newLoadedState(t, directory())
	u.SetQuery("cle")
	u.Commit()
	u.NextPage()

	u.SetQuery("")
	u.Commit()

	assert.False(t, u.Filtered())
	assert.Empty(t, u.LastQuery())
	assert.Equal(t, 1, u.Page())
	assert.Equal(t, 3, u.TotalPages())
	assert.Empty(t, u.Header())
}

func TestCommitIsIdempotent(t *testing.T) {
	u := newLoadedState(t, directory())
	u.SetQuery("c")

	u.Commit()
	first := u.Visible()
	u.Commit()

	assert.Equal(t, first, u.Visible())
	assert.Equal(t, "c", u.LastQuery())
}

func TestCommitWithNoMatchesShowsEmptyResults(t *testing.T) {
	u := newLoadedState(t, directory())
	u.SetQuery("zzz")

	u.Commit()

	assert.True(t, u.Filtered())
	assert.Empty(t, u.Visible())
	assert.Equal(t, 1, u.TotalPages())
	assert.Equal(t, `Results for "zzz" (0 results)`, u.Header())
}

func TestPagination(t *testing.T) {
	u := newLoadedState(t, directory())

	assert.Equal(t, 3, u.TotalPages())
	assert.False(t, u.PrevPage(), "prev on page 1 is a no-op")
	assert.Equal(t, 1, u.Page())

	assert.True(t, u.GoToPage(3))
	assert.Len(t, u.Visible(), 2)
	assert.False(t, u.NextPage(), "next on last page is a no-op")
	assert.Equal(t, 3, u.Page())

	assert.False(t, u.GoToPage(9))
	assert.True(t, u.PrevPage())
	assert.Equal(t, 2, u.Page())
	assert.True(t, u.LastPage())
	assert.Equal(t, 3, u.Page())
}

func TestSortResetsPageAndReordersFilteredResults(t *testing.T) {
	u := newLoadedState(t, directory())
	u.GoToPage(2)

	u.ToggleSort()

	assert.Equal(t, domain.SortOrderDesc, u.SortOrder())
	assert.Equal(t, 1, u.Page())
	assert.Equal(t, "Zoe Young", u.Visible()[0].Name)

	u.SetQuery("cle")
	u.Commit()
	assert.Equal(t, []string{"Clementine Bauch", "Clementina DuBuque"}, domain.Names(u.Visible()))

	u.Sort(domain.SortOrderAsc)
	assert.Equal(t, []string{"Clementina DuBuque", "Clementine Bauch"}, domain.Names(u.Visible()))

	u.Sort("sideways")
	assert.Equal(t, domain.SortOrderAsc, u.SortOrder())
}

func TestReset(t *testing.T) {
	u := newLoadedState(t, directory())
	u.SetQuery("cle")
	u.Commit()
	u.SetQuery("c")

	u.Reset()

	assert.Empty(t, u.Query())
	assert.Empty(t, u.Suggestions())
	assert.False(t, u.Filtered())
	assert.Equal(t, 1, u.Page())
	assert.Len(t, u.Collection(), 12)
}

func TestSetContactsWithEmptyCollection(t *testing.T) {
	u := newLoadedState(t, nil)

	assert.True(t, u.Loaded())
	assert.NotNil(t, u.Contacts())
	assert.Empty(t, u.Visible())
	assert.Equal(t, 1, u.TotalPages())
}

func TestUnsortedStateSortsOnFirstToggle(t *testing.T) {
	u := newLoadedState(t, directory())
	u.MarkUnsorted()

	assert.False(t, u.Sorted())
	assert.Equal(t, "Unsorted", u.SortLabel())
	assert.Equal(t, "Leanne Graham", u.Visible()[0].Name)

	u.ToggleSort()

	assert.True(t, u.Sorted())
	assert.Equal(t, domain.SortOrderAsc, u.SortOrder())
	assert.Equal(t, "Sort A-Z", u.SortLabel())
	assert.Equal(t, "Adam Smith", u.Visible()[0].Name)

	u.ToggleSort()
	assert.Equal(t, "Sort Z-A", u.SortLabel())
}
