package search

import (
	"strings"

	"github.com/cristianoliveira/contactbook/internal/domain"
)

// TokenProvider matches when the lower-cased name, or any
// whitespace-delimited token of it, starts with the query. "gra" finds
// "Leanne Graham"; "eanne" does not.
type TokenProvider struct{}

// NewTokenProvider creates a token prefix provider.
func NewTokenProvider() Provider {
	return TokenProvider{}
}

// Match implements Provider.
func (TokenProvider) Match(c domain.Contact, query string) bool {
	name := strings.ToLower(c.Name)
	if strings.HasPrefix(name, query) {
		return true
	}
	for _, token := range strings.Fields(name) {
		if strings.HasPrefix(token, query) {
			return true
		}
	}
	return false
}

// Name returns the provider name.
func (TokenProvider) Name() string {
	return string(MatchToken)
}
