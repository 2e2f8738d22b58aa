package format

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cristianoliveira/contactbook/internal/colors"
	"github.com/cristianoliveira/contactbook/internal/domain"
	"github.com/mattn/go-runewidth"
)

const ellipsis = "..."

// TableConfig holds configuration for table formatting.
type TableConfig struct {
	// ShowHeaders determines whether to show column headers.
	ShowHeaders bool

	// HeaderColor is the color to use for headers.
	HeaderColor string

	// ColumnWidths defines the width for each column.
	ColumnWidths map[string]int

	// ColumnAlignments defines the alignment for each column (left, right).
	ColumnAlignments map[string]string
}

// DefaultTableConfig returns a default table configuration.
func DefaultTableConfig() *TableConfig {
	return &TableConfig{
		ShowHeaders: true,
		HeaderColor: colors.Blue,
		ColumnWidths: map[string]int{
			"ID":      4,
			"Name":    26,
			"Email":   28,
			"Phone":   22,
			"City":    16,
			"Company": 20,
		},
		ColumnAlignments: map[string]string{
			"ID": "right",
		},
	}
}

// TableColumn represents a column in a table.
type TableColumn struct {
	Name      string
	Width     int
	Alignment string
	// Extractor extracts the raw cell value from a contact.
	Extractor func(domain.Contact) string
}

// TableFormatter prints contacts in fixed-width columns.
type TableFormatter struct {
	config  *TableConfig
	columns []TableColumn
}

// NewTableFormatter creates a TableFormatter with the default columns.
func NewTableFormatter() *TableFormatter {
	config := DefaultTableConfig()
	column := func(name string, extract func(domain.Contact) string) TableColumn {
		return TableColumn{
			Name:      name,
			Width:     config.ColumnWidths[name],
			Alignment: config.ColumnAlignments[name],
			Extractor: extract,
		}
	}
	return &TableFormatter{
		config: config,
		columns: []TableColumn{
			column("ID", func(c domain.Contact) string { return strconv.Itoa(c.ID) }),
			column("Name", func(c domain.Contact) string { return c.Name }),
			column("Email", func(c domain.Contact) string { return c.Email }),
			column("Phone", func(c domain.Contact) string { return c.Phone }),
			column("City", func(c domain.Contact) string { return c.Address.City }),
			column("Company", func(c domain.Contact) string { return c.Company.Name }),
		},
	}
}

// WithColumns adds custom columns to the formatter.
func (f *TableFormatter) WithColumns(columns ...TableColumn) *TableFormatter {
	f.columns = append(f.columns, columns...)
	return f
}

// Format implements Formatter.
func (f *TableFormatter) Format(listing Listing, writer io.Writer) error {
	if err := writeHeading(listing, writer); err != nil {
		return err
	}
	for _, page := range listing.Pages {
		if len(page.Contacts) == 0 {
			if _, err := fmt.Fprintf(writer, "%s%s%s\n", colors.Blue, noContactsMessage, colors.Reset); err != nil {
				return err
			}
		} else if err := f.writeTable(page.Contacts, writer); err != nil {
			return err
		}
		if err := writeFooter(page, listing.TotalPages, writer); err != nil {
			return err
		}
	}
	return nil
}

func (f *TableFormatter) writeTable(contacts []domain.Contact, writer io.Writer) error {
	if f.config.ShowHeaders {
		names := make([]string, len(f.columns))
		seps := make([]string, len(f.columns))
		for i, col := range f.columns {
			names[i] = formatCell(col.Name, col.Width, "left")
			seps[i] = strings.Repeat("-", col.Width)
		}
		if _, err := fmt.Fprintf(writer, "%s%s%s\n", f.config.HeaderColor, strings.Join(names, "  "), colors.Reset); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(writer, strings.Join(seps, "  ")); err != nil {
			return err
		}
	}

	for _, c := range contacts {
		cells := make([]string, len(f.columns))
		for i, col := range f.columns {
			cells[i] = formatCell(col.Extractor(c), col.Width, col.Alignment)
		}
		if _, err := fmt.Fprintln(writer, strings.TrimRight(strings.Join(cells, "  "), " ")); err != nil {
			return err
		}
	}
	return nil
}

// formatCell fits s into width display cells, truncating with an ellipsis.
func formatCell(s string, width int, alignment string) string {
	if runewidth.StringWidth(s) > width {
		tail := ellipsis
		if width < len(ellipsis) {
			tail = ""
		}
		s = runewidth.Truncate(s, width, tail)
	}
	if alignment == "right" {
		return runewidth.FillLeft(s, width)
	}
	return runewidth.FillRight(s, width)
}
