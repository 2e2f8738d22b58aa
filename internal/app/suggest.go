package app

import (
	"context"
	"fmt"
	"io"

	"github.com/cristianoliveira/contactbook/internal/colors"
	"github.com/cristianoliveira/contactbook/internal/search"
)

// SuggestUseCase prints the autocomplete suggestions for a query.
type SuggestUseCase struct {
	dir *Directory
}

// NewSuggestUseCase creates a new suggest use-case.
func NewSuggestUseCase(dir *Directory) *SuggestUseCase {
	if dir == nil {
		panic("NewSuggestUseCase: directory dependency cannot be nil")
	}
	return &SuggestUseCase{dir: dir}
}

// Execute writes one suggested name per line. A negative limit keeps the
// configured suggestion limit.
func (u *SuggestUseCase) Execute(ctx context.Context, query string, limit int, w io.Writer) error {
	res, err := u.dir.Load(ctx)
	if err != nil {
		return err
	}
	if res.Err != nil {
		colors.Warning(fmt.Sprintf("could not load contacts: %v", res.Err))
	}

	engine := u.dir.Engine()
	if limit >= 0 {
		engine = search.NewEngine(search.WithProvider(engine.Provider()), search.WithSuggestionLimit(limit))
	}
	for _, c := range engine.Suggestions(res.Contacts, query) {
		if _, err := fmt.Fprintln(w, c.Name); err != nil {
			return err
		}
	}
	return nil
}
