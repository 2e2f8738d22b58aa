package format

import (
	"encoding/json"
	"io"

	"github.com/cristianoliveira/contactbook/internal/domain"
)

// JSONFormatter prints the listing as an indented JSON document.
type JSONFormatter struct{}

// NewJSONFormatter creates a new JSONFormatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

type jsonPage struct {
	Page     int              `json:"page"`
	Contacts []domain.Contact `json:"contacts"`
}

type jsonListing struct {
	Query      string     `json:"query,omitempty"`
	Filtered   bool       `json:"filtered"`
	Header     string     `json:"header,omitempty"`
	Sort       string     `json:"sort"`
	TotalPages int        `json:"total_pages"`
	Pages      []jsonPage `json:"pages"`
}

// Format implements Formatter.
func (f *JSONFormatter) Format(listing Listing, writer io.Writer) error {
	out := jsonListing{
		Query:      listing.Query,
		Filtered:   listing.Filtered,
		Header:     listing.Header,
		Sort:       listing.Sort.String(),
		TotalPages: listing.TotalPages,
		Pages:      make([]jsonPage, 0, len(listing.Pages)),
	}
	for _, p := range listing.Pages {
		contacts := p.Contacts
		if contacts == nil {
			contacts = []domain.Contact{}
		}
		out.Pages = append(out.Pages, jsonPage{Page: p.Number, Contacts: contacts})
	}

	encoder := json.NewEncoder(writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}
