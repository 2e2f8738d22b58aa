package render

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/cristianoliveira/contactbook/internal/colors"
	"github.com/cristianoliveira/contactbook/internal/domain"
	"github.com/stretchr/testify/assert"
)

func leanne() domain.Contact {
	return domain.Contact{
		ID:       1,
		Name:     "Leanne Graham",
		Username: "Bret",
		Email:    "Sincere@april.biz",
		Phone:    "1-770-736-8031 x56442",
		Website:  "hildegard.org",
		Address:  domain.Address{Street: "Kulas Light", Suite: "Apt. 556", City: "Gwenborough", Zipcode: "92998-3874"},
		Company:  domain.Company{Name: "Romaguera-Crona", CatchPhrase: "Multi-layered client-server neural-net", BS: "harness real-time e-markets"},
	}
}

func TestAnsiColorNumber(t *testing.T) {
	assert.Equal(t, "34", ansiColorNumber(colors.Blue))
	assert.Equal(t, "33", ansiColorNumber(colors.Yellow))
	assert.Equal(t, "", ansiColorNumber("x"))
	assert.Equal(t, "", ansiColorNumber("plain"))
}

func TestCardShowsEveryField(t *testing.T) {
	card := ansi.Strip(Card(leanne(), 0))

	for _, want := range []string{
		"Leanne Graham",
		"@Bret",
		"Phone: 1-770-736-8031 x56442",
		"Email: Sincere@april.biz",
		"Address: Apt. 556, Kulas Light, Gwenborough, 92998-3874",
		"Website: hildegard.org",
		"Company: Romaguera-Crona",
		`"Multi-layered client-server neural-net"`,
		"harness real-time e-markets",
	} {
		assert.Contains(t, card, want)
	}
}

func TestCardSkipsEmptyFieldsAndFitsWidth(t *testing.T) {
	card := Card(domain.Contact{ID: 2, Name: "Ervin Howell", Email: "Shanna@melissa.tv"}, 12)

	plain := ansi.Strip(card)
	assert.NotContains(t, plain, "Phone")
	assert.NotContains(t, plain, "Company")
	for _, line := range strings.Split(card, "\n") {
		assert.LessOrEqual(t, ansi.StringWidth(line), 12)
	}
}

func TestCardsEmpty(t *testing.T) {
	assert.Equal(t, NoContactsMessage, ansi.Strip(Cards(nil, 80)))
}

func TestCardsSeparatedByBlankLine(t *testing.T) {
	out := ansi.Strip(Cards([]domain.Contact{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}}, 80))
	assert.Equal(t, "A\n\nB", out)
}

func TestDropdown(t *testing.T) {
	assert.Equal(t, "", Dropdown(DropdownState{Focus: -1}))

	out := Dropdown(DropdownState{Names: []string{"Clementine Bauch", "Clementina DuBuque"}, Focus: 1, Width: 30})
	lines := strings.Split(out, "\n")

	assert.Len(t, lines, 2)
	assert.Equal(t, "  Clementine Bauch", ansi.Strip(lines[0]))
	assert.Equal(t, "  Clementina DuBuque", strings.TrimRight(ansi.Strip(lines[1]), " "))
	assert.Equal(t, 30, ansi.StringWidth(lines[1]))
}

func TestStatusBar(t *testing.T) {
	assert.Equal(t, "[Sort A-Z]", ansi.Strip(StatusBar(StatusBarState{SortLabel: "Sort A-Z"})))

	out := ansi.Strip(StatusBar(StatusBarState{SortLabel: "Sort Z-A", Header: `Results for "ervin" (1 results)`}))
	assert.Equal(t, `[Sort Z-A]  Results for "ervin" (1 results)`, out)
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "Contacts", ansi.Strip(Title(80, 0)))
	assert.Equal(t, "Contacts (10)", ansi.Strip(Title(80, 10)))
}

func TestPager(t *testing.T) {
	assert.Equal(t, "‹ Prev  1 [2] 3  Next ›", ansi.Strip(Pager(PagerState{Page: 2, TotalPages: 3})))
	assert.Equal(t, "‹ Prev  [1]  Next ›", ansi.Strip(Pager(PagerState{Page: 0, TotalPages: 0})))
}

func TestPagerFallsBackToDots(t *testing.T) {
	out := ansi.Strip(Pager(PagerState{Page: 3, TotalPages: 40, Width: 30}))

	assert.True(t, strings.HasPrefix(out, "‹ Prev  "))
	assert.True(t, strings.HasSuffix(out, "  Next ›"))
	assert.NotContains(t, out, "[3]")
	assert.Contains(t, out, "•")
}

func TestFooter(t *testing.T) {
	assert.Equal(t, "? help", ansi.Strip(Footer(FooterState{Help: "? help"})))
	assert.Equal(t, "boom", ansi.Strip(Footer(FooterState{Help: "? help", StatusKind: "error", StatusMessage: "boom"})))
	assert.Equal(t, "note", ansi.Strip(Footer(FooterState{StatusKind: "other", StatusMessage: "note"})))
}

func TestLoading(t *testing.T) {
	assert.Equal(t, "* Loading contacts...", ansi.Strip(Loading("*")))
}
