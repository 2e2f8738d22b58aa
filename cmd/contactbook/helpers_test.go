package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	contactapp "github.com/cristianoliveira/contactbook/internal/app"
	"github.com/cristianoliveira/contactbook/internal/domain"
	"github.com/cristianoliveira/contactbook/internal/source"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

func testContacts() []domain.Contact {
	return []domain.Contact{
		{ID: 1, Name: "Leanne Graham", Email: "Sincere@april.biz"},
		{ID: 2, Name: "Ervin Howell", Email: "Shanna@melissa.tv"},
		{ID: 3, Name: "Clementine Bauch", Email: "Nathan@yesenia.net"},
		{ID: 4, Name: "Patricia Lebsack", Email: "Julianne.OConner@kory.org"},
		{ID: 5, Name: "Chelsey Dietrich", Email: "Lucio_Hettinger@annie.ca"},
		{ID: 6, Name: "Mrs. Dennis Schulist", Email: "Karley_Dach@jasper.info"},
		{ID: 7, Name: "Kurtis Weissnat", Email: "Telly.Hoeger@billy.biz"},
	}
}

type fakeDirectories struct {
	contacts []domain.Contact
	fetchErr error
	err      error
	opened   int
}

func (f *fakeDirectories) NewDirectory() (*contactapp.Directory, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.opened++
	return contactapp.NewDirectory(contactapp.Options{
		Fetcher: source.FetcherFunc(func(ctx context.Context) ([]domain.Contact, error) {
			return f.contacts, f.fetchErr
		}),
		Presort:  true,
		PageSize: 3,
	}), nil
}

var errNoDirectory = errors.New("storage unavailable")

// execute runs c with args and returns what it printed to stdout.
func execute(t *testing.T, c *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	c.SetOut(&out)
	c.SetErr(&bytes.Buffer{})
	c.SetArgs(args)
	c.SilenceUsage = true
	c.SilenceErrors = true
	err := c.ExecuteContext(context.Background())
	return out.String(), err
}

func requireLines(t *testing.T, want []string, got string) {
	t.Helper()
	require.Equal(t, want, splitLines(got))
}

func splitLines(s string) []string {
	var lines []string
	for _, l := range bytes.Split(bytes.TrimRight([]byte(s), "\n"), []byte("\n")) {
		lines = append(lines, string(l))
	}
	return lines
}
