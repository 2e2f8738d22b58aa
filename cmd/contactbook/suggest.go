package main

import (
	"strings"

	contactapp "github.com/cristianoliveira/contactbook/internal/app"
	"github.com/spf13/cobra"
)

// NewSuggestCmd creates the command printing autocomplete suggestions.
func NewSuggestCmd(client directoryClient) *cobra.Command {
	if client == nil {
		panic("NewSuggestCmd: client dependency cannot be nil")
	}

	var limit int
	suggestCmd := &cobra.Command{
		Use:   "suggest <query>",
		Short: "Print the names suggested for a query",
		Long: `Print the names the search input would suggest for a query, one per line.

EXAMPLES:
    contactbook suggest cle
    contactbook suggest "leanne g" --limit 3`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := client.NewDirectory()
			if err != nil {
				return err
			}
			defer dir.Close()
			query := strings.Join(args, " ")
			return contactapp.NewSuggestUseCase(dir).Execute(cmd.Context(), query, limit, cmd.OutOrStdout())
		},
	}

	suggestCmd.Flags().IntVar(&limit, "limit", -1, "maximum suggestions; 0 for no limit (default from config)")
	return suggestCmd
}
