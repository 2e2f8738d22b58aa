package search

import (
	"strings"

	"github.com/cristianoliveira/contactbook/internal/domain"
)

// SubstringProvider matches when the lower-cased name contains the query.
type SubstringProvider struct{}

// NewSubstringProvider creates a substring provider.
func NewSubstringProvider() Provider {
	return SubstringProvider{}
}

// Match implements Provider.
func (SubstringProvider) Match(c domain.Contact, query string) bool {
	return strings.Contains(strings.ToLower(c.Name), query)
}

// Name returns the provider name.
func (SubstringProvider) Name() string {
	return string(MatchSubstring)
}
