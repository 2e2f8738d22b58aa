// Package format renders contact listings for CLI commands.
package format

import (
	"io"

	"github.com/cristianoliveira/contactbook/internal/domain"
)

// Listing is a rendered view of one or more pages of a contact collection.
type Listing struct {
	// Header is the results heading, empty for an unfiltered listing.
	Header     string
	Query      string
	Filtered   bool
	Sort       domain.SortOrder
	TotalPages int
	Pages      []PageView
}

// PageView holds the contacts of one page. Number is 1-based.
type PageView struct {
	Number   int
	Contacts []domain.Contact
}

// Formatter defines the interface for output formatters.
type Formatter interface {
	Format(listing Listing, writer io.Writer) error
}

// FormatterType represents the type of formatter to use.
type FormatterType string

const (
	// FormatterTypeSimple prints one contact per line.
	FormatterTypeSimple FormatterType = "simple"

	// FormatterTypeTable prints contacts in aligned columns with headers.
	FormatterTypeTable FormatterType = "table"

	// FormatterTypeJSON prints the listing as a JSON document.
	FormatterTypeJSON FormatterType = "json"
)

// NewFormatter creates a new formatter of the specified type.
func NewFormatter(formatterType FormatterType) Formatter {
	switch formatterType {
	case FormatterTypeTable:
		return NewTableFormatter()
	case FormatterTypeJSON:
		return NewJSONFormatter()
	default:
		return NewSimpleFormatter()
	}
}

// IsValidType reports whether s names a formatter.
func IsValidType(s string) bool {
	switch FormatterType(s) {
	case FormatterTypeSimple, FormatterTypeTable, FormatterTypeJSON:
		return true
	}
	return false
}
