package format

import (
	"fmt"
	"io"

	"github.com/cristianoliveira/contactbook/internal/colors"
)

// noContactsMessage matches the empty state of the interactive list.
const noContactsMessage = "No contacts found"

// SimpleFormatter prints "name <email>" lines followed by a page footer.
type SimpleFormatter struct{}

// NewSimpleFormatter creates a new SimpleFormatter.
func NewSimpleFormatter() *SimpleFormatter {
	return &SimpleFormatter{}
}

// Format implements Formatter.
func (f *SimpleFormatter) Format(listing Listing, writer io.Writer) error {
	if err := writeHeading(listing, writer); err != nil {
		return err
	}
	for _, page := range listing.Pages {
		if len(page.Contacts) == 0 {
			if _, err := fmt.Fprintf(writer, "%s%s%s\n", colors.Blue, noContactsMessage, colors.Reset); err != nil {
				return err
			}
		}
		for _, c := range page.Contacts {
			line := c.Name
			if c.Email != "" {
				line += " <" + c.Email + ">"
			}
			if _, err := fmt.Fprintln(writer, line); err != nil {
				return err
			}
		}
		if err := writeFooter(page, listing.TotalPages, writer); err != nil {
			return err
		}
	}
	return nil
}

func writeHeading(listing Listing, writer io.Writer) error {
	if listing.Header == "" {
		return nil
	}
	_, err := fmt.Fprintln(writer, listing.Header)
	return err
}

func writeFooter(page PageView, total int, writer io.Writer) error {
	_, err := fmt.Fprintf(writer, "Page %d of %d\n", page.Number, total)
	return err
}
