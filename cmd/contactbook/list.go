package main

import (
	"fmt"

	contactapp "github.com/cristianoliveira/contactbook/internal/app"
	"github.com/cristianoliveira/contactbook/internal/domain"
	"github.com/cristianoliveira/contactbook/internal/format"
	"github.com/spf13/cobra"
)

type listFlags struct {
	query    string
	page     int
	pageSize int
	sort     string
	allPages bool
	format   string
}

// NewListCmd creates the non-interactive listing command.
func NewListCmd(client directoryClient) *cobra.Command {
	if client == nil {
		panic("NewListCmd: client dependency cannot be nil")
	}

	var flags listFlags
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Print a page of contacts",
		Long: `Print a page of contacts, optionally filtered by a search query.

EXAMPLES:
    contactbook list
    contactbook list --query ervin
    contactbook list --sort desc --page 2
    contactbook list --all-pages --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.options()
			if err != nil {
				return err
			}
			dir, err := client.NewDirectory()
			if err != nil {
				return err
			}
			defer dir.Close()
			return contactapp.NewListUseCase(dir).Execute(cmd.Context(), opts, cmd.OutOrStdout())
		},
	}

	listCmd.Flags().StringVar(&flags.query, "query", "", "search query; only matching contacts are listed")
	listCmd.Flags().IntVar(&flags.page, "page", 1, "page to print, starting at 1")
	listCmd.Flags().IntVar(&flags.pageSize, "page-size", 0, "contacts per page (default from config)")
	listCmd.Flags().StringVar(&flags.sort, "sort", "", "name sort order: asc or desc (default from config)")
	listCmd.Flags().BoolVar(&flags.allPages, "all-pages", false, "print every page")
	listCmd.Flags().StringVar(&flags.format, "format", string(format.FormatterTypeSimple), "output format: simple, table or json")

	return listCmd
}

func (f listFlags) options() (contactapp.ListOptions, error) {
	opts := contactapp.ListOptions{
		Query:    f.query,
		Page:     f.page,
		PageSize: f.pageSize,
		AllPages: f.allPages,
		Format:   format.FormatterType(f.format),
	}
	if f.pageSize < 0 {
		return opts, fmt.Errorf("invalid page size %d: must be positive", f.pageSize)
	}
	if !format.IsValidType(f.format) {
		return opts, fmt.Errorf("invalid format %q: must be simple, table or json", f.format)
	}
	if f.sort != "" {
		order, err := domain.ParseSortOrder(f.sort)
		if err != nil {
			return opts, err
		}
		opts.Sort = order
	}
	return opts, nil
}
