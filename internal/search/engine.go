package search

import (
	"fmt"
	"strings"

	"github.com/cristianoliveira/contactbook/internal/domain"
)

// Result is the outcome of a committed search. When Filtered is false the
// whole collection is shown and Contacts is nil.
type Result struct {
	Filtered bool
	Query    string
	Contacts []domain.Contact
}

// Count returns the number of matched contacts.
func (r Result) Count() int {
	return len(r.Contacts)
}

// Header renders the results heading, e.g. `Results for "ervin" (1 results)`.
// It is empty for unfiltered results.
func (r Result) Header() string {
	if !r.Filtered {
		return ""
	}
	return fmt.Sprintf("Results for %q (%d results)", r.Query, len(r.Contacts))
}

// Engine derives suggestions and committed results from a contact
// collection. It holds no per-session state.
type Engine struct {
	provider Provider
	limit    int
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithProvider sets the match provider.
func WithProvider(p Provider) EngineOption {
	return func(e *Engine) {
		if p != nil {
			e.provider = p
		}
	}
}

// WithSuggestionLimit caps the number of suggestions. Zero or less means
// unbounded.
func WithSuggestionLimit(n int) EngineOption {
	return func(e *Engine) {
		e.limit = n
	}
}

// NewEngine returns an engine using token matching and unbounded
// suggestions unless overridden.
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{provider: NewTokenProvider()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Provider returns the active match provider.
func (e *Engine) Provider() Provider {
	return e.provider
}

// Limit returns the suggestion cap, 0 for unbounded.
func (e *Engine) Limit() int {
	if e.limit < 0 {
		return 0
	}
	return e.limit
}

// filter returns the matches of a normalized, non-empty query in
// collection order.
func (e *Engine) filter(all []domain.Contact, query string, limit int) []domain.Contact {
	matches := make([]domain.Contact, 0)
	for _, c := range all {
		if !e.provider.Match(c, query) {
			continue
		}
		matches = append(matches, c)
		if limit > 0 && len(matches) == limit {
			break
		}
	}
	return matches
}

// Suggestions returns the contacts to offer while typing. An empty query
// yields no suggestions rather than the full collection.
func (e *Engine) Suggestions(all []domain.Contact, query string) []domain.Contact {
	q := Normalize(query)
	if q == "" {
		return []domain.Contact{}
	}
	return e.filter(all, q, e.Limit())
}

// Commit runs an explicit search. A blank query clears the filter.
func (e *Engine) Commit(all []domain.Contact, query string) Result {
	q := Normalize(query)
	if q == "" {
		return Result{}
	}
	return Result{
		Filtered: true,
		Query:    strings.TrimSpace(query),
		Contacts: e.filter(all, q, 0),
	}
}

// Select commits a search for a chosen suggestion's name.
func (e *Engine) Select(all []domain.Contact, name string) Result {
	return e.Commit(all, name)
}
