package render

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/cristianoliveira/contactbook/internal/domain"
)

// NoContactsMessage is shown when the visible collection is empty.
const NoContactsMessage = "No contacts found"

// Card renders one contact as a block of lines no wider than width.
func Card(c domain.Contact, width int) string {
	lines := []string{nameStyle.Render(c.Name)}
	add := func(label, value string) {
		if strings.TrimSpace(value) == "" {
			return
		}
		lines = append(lines, labelStyle.Render(label+": ")+value)
	}
	if c.Username != "" {
		lines = append(lines, labelStyle.Render("@"+c.Username))
	}
	add("Phone", c.Phone)
	add("Email", c.Email)
	add("Address", c.Address.FormatLine())
	add("Website", c.Website)
	add("Company", c.Company.Name)
	if c.Company.CatchPhrase != "" {
		lines = append(lines, "  "+phraseStyle.Render(`"`+c.Company.CatchPhrase+`"`))
	}
	if c.Company.BS != "" {
		lines = append(lines, "  "+dimStyle.Render(c.Company.BS))
	}
	return fit(lines, width)
}

// Cards renders contacts separated by blank lines, or the empty-state
// message.
func Cards(contacts []domain.Contact, width int) string {
	if len(contacts) == 0 {
		return dimStyle.Render(NoContactsMessage)
	}
	cards := make([]string, len(contacts))
	for i, c := range contacts {
		cards[i] = Card(c, width)
	}
	return strings.Join(cards, "\n\n")
}

func fit(lines []string, width int) string {
	if width > 0 {
		for i, l := range lines {
			lines[i] = ansi.Truncate(l, width, "…")
		}
	}
	return strings.Join(lines, "\n")
}
