package search

import (
	"testing"

	"github.com/cristianoliveira/contactbook/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var directory = []domain.Contact{
	{ID: 1, Name: "Leanne Graham"},
	{ID: 2, Name: "Ervin Howell"},
	{ID: 3, Name: "Clementine Bauch"},
	{ID: 4, Name: "Patricia Lebsack"},
	{ID: 5, Name: "Chelsey Dietrich"},
	{ID: 6, Name: "Mrs. Dennis Schulist"},
	{ID: 7, Name: "Kurtis Weissnat"},
	{ID: 8, Name: "Nicholas Runolfsdottir V"},
	{ID: 9, Name: "Glenna Reichert"},
	{ID: 10, Name: "Clementina DuBuque"},
}

func ids(contacts []domain.Contact) []int {
	out := make([]int, len(contacts))
	for i, c := range contacts {
		out[i] = c.ID
	}
	return out
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "ervin", Normalize("  Ervin \t"))
	assert.Equal(t, "", Normalize("   "))
}

func TestParseMatchMode(t *testing.T) {
	m, err := ParseMatchMode("SUBSTRING")
	require.NoError(t, err)
	assert.Equal(t, MatchSubstring, m)

	m, err = ParseMatchMode("")
	require.NoError(t, err)
	assert.Equal(t, MatchToken, m)

	_, err = ParseMatchMode("fuzzy")
	assert.Error(t, err)

	assert.Equal(t, "token", NewProvider(MatchToken).Name())
	assert.Equal(t, "substring", NewProvider(MatchSubstring).Name())
}

func TestTokenProvider(t *testing.T) {
	p := NewTokenProvider()
	leanne := domain.Contact{Name: "Leanne Graham"}
	dennis := domain.Contact{Name: "Mrs. Dennis  Schulist"}

	tests := []struct {
		name    string
		contact domain.Contact
		query   string
		want    bool
	}{
		{"full name prefix", leanne, "leanne g", true},
		{"first token prefix", leanne, "lea", true},
		{"second token prefix", leanne, "gra", true},
		{"inner substring", leanne, "eanne", false},
		{"title token", dennis, "mrs", true},
		{"token after double space", dennis, "schu", true},
		{"no match", leanne, "ervin", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.Match(tt.contact, tt.query))
		})
	}
}

func TestSubstringProvider(t *testing.T) {
	p := NewSubstringProvider()
	leanne := domain.Contact{Name: "Leanne Graham"}

	assert.True(t, p.Match(leanne, "eanne"))
	assert.True(t, p.Match(leanne, "ham"))
	assert.False(t, p.Match(leanne, "ervin"))
}

func TestSuggestionsEmptyQuery(t *testing.T) {
	e := NewEngine()

	assert.Empty(t, e.Suggestions(directory, ""))
	assert.Empty(t, e.Suggestions(directory, "   "))
	assert.NotNil(t, e.Suggestions(directory, ""))
}

func TestSuggestionsMatchPredicate(t *testing.T) {
	e := NewEngine()
	p := NewTokenProvider()

	for _, q := range []string{"c", "cle", "D", " d", "kurtis", "v", "x"} {
		got := e.Suggestions(directory, q)
		for _, c := range got {
			assert.True(t, p.Match(c, Normalize(q)), "query %q returned non-matching %q", q, c.Name)
		}
	}
}

func TestSuggestionsStableOrder(t *testing.T) {
	e := NewEngine()

	got := e.Suggestions(directory, "cle")

	assert.Equal(t, []int{3, 10}, ids(got))
}

func TestSuggestionsLimit(t *testing.T) {
	unbounded := NewEngine()
	capped := NewEngine(WithSuggestionLimit(1))

	assert.Len(t, unbounded.Suggestions(directory, "c"), 3)
	assert.Equal(t, []int{3}, ids(capped.Suggestions(directory, "c")))
	assert.Equal(t, 0, NewEngine(WithSuggestionLimit(-4)).Limit())
}

func TestCommitScenarioErvin(t *testing.T) {
	e := NewEngine()
	contacts := directory[:3]

	suggestions := e.Suggestions(contacts, "ervin")
	assert.Equal(t, []string{"Ervin Howell"}, domain.Names(suggestions))

	result := e.Commit(contacts, "ervin")
	assert.True(t, result.Filtered)
	assert.Equal(t, []string{"Ervin Howell"}, domain.Names(result.Contacts))
	assert.Equal(t, `Results for "ervin" (1 results)`, result.Header())
}

func TestCommitIsIdempotent(t *testing.T) {
	e := NewEngine()

	first := e.Commit(directory, "  Cl ")
	second := e.Commit(directory, "  Cl ")

	assert.Equal(t, first, second)
	assert.Equal(t, "Cl", first.Query)
}

func TestCommitEmptyClearsFilter(t *testing.T) {
	e := NewEngine()

	result := e.Commit(directory, "  ")

	assert.False(t, result.Filtered)
	assert.Empty(t, result.Query)
	assert.Nil(t, result.Contacts)
	assert.Empty(t, result.Header())
}

func TestCommitNoMatches(t *testing.T) {
	e := NewEngine(WithSuggestionLimit(1))

	result := e.Commit(directory, "zzz")

	assert.True(t, result.Filtered)
	assert.NotNil(t, result.Contacts)
	assert.Equal(t, 0, result.Count())
	assert.Equal(t, `Results for "zzz" (0 results)`, result.Header())
}

func TestCommitIgnoresSuggestionLimit(t *testing.T) {
	e := NewEngine(WithSuggestionLimit(1))

	assert.Equal(t, 3, e.Commit(directory, "c").Count())
}

func TestSelect(t *testing.T) {
	e := NewEngine()

	result := e.Select(directory, "Clementine Bauch")

	assert.Equal(t, "Clementine Bauch", result.Query)
	assert.Equal(t, []int{3}, ids(result.Contacts))
}

func TestEngineUsesProvider(t *testing.T) {
	m := new(MockProvider)
	m.On("Match", mock.Anything, "ab").Return(func(c domain.Contact, q string) bool {
		return c.ID%2 == 0
	})
	e := NewEngine(WithProvider(m))

	got := e.Suggestions(directory[:4], " AB ")

	assert.Equal(t, []int{2, 4}, ids(got))
	m.AssertNumberOfCalls(t, "Match", 4)
}

func TestWithProviderNilKeepsDefault(t *testing.T) {
	e := NewEngine(WithProvider(nil))
	assert.Equal(t, "token", e.Provider().Name())
}
