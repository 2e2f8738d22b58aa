// Package search filters contacts by name. It backs both the live
// autocomplete suggestions and the committed search results, so the TUI
// and the CLI always agree on what matches.
package search

import (
	"fmt"
	"strings"

	"github.com/cristianoliveira/contactbook/internal/domain"
)

// Provider decides whether a contact matches a query. The query handed to
// Match is already normalized (see Normalize) and never empty.
type Provider interface {
	Match(c domain.Contact, query string) bool

	// Name returns the provider name for identification and debugging.
	Name() string
}

// MatchMode selects a Provider.
type MatchMode string

const (
	// MatchToken matches a prefix of the full name or of any name token.
	MatchToken MatchMode = "token"
	// MatchSubstring matches the query anywhere in the name.
	MatchSubstring MatchMode = "substring"
)

// ParseMatchMode parses a config value into a MatchMode.
func ParseMatchMode(s string) (MatchMode, error) {
	switch m := MatchMode(strings.ToLower(strings.TrimSpace(s))); m {
	case MatchToken, MatchSubstring:
		return m, nil
	case "":
		return MatchToken, nil
	default:
		return "", fmt.Errorf("invalid match mode: %s", s)
	}
}

// NewProvider returns the provider for mode, defaulting to token matching.
func NewProvider(mode MatchMode) Provider {
	if mode == MatchSubstring {
		return NewSubstringProvider()
	}
	return NewTokenProvider()
}

// Normalize trims and lower-cases a raw query.
func Normalize(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}
