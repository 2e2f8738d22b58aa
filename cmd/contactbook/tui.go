package main

import (
	"errors"

	"github.com/cristianoliveira/contactbook/internal/colors"
	tuiapp "github.com/cristianoliveira/contactbook/internal/tui/app"
	"github.com/spf13/cobra"
)

// NewTUICmd creates the interactive browser command.
func NewTUICmd(client tuiapp.Client) *cobra.Command {
	if client == nil {
		panic("NewTUICmd: client dependency cannot be nil")
	}

	return &cobra.Command{
		Use:   "tui",
		Short: "Interactive contact browser",
		Long: `Interactive contact browser.

USAGE:
    contactbook tui

KEY BINDINGS:
    /           Focus the search input
    ↑/↓         Move through suggestions
    Enter       Search, or pick the highlighted suggestion
    ESC         Leave the search input
    ←/→ h/l     Previous/next page
    1-9 g G     Jump to a page, the first or the last page
    s a z       Toggle, ascending or descending name sort
    r           Reset the search
    ?           Toggle full help
    q           Quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, client)
		},
	}
}

func runTUI(cmd *cobra.Command, client tuiapp.Client) (err error) {
	colors.DisableStructuredLogging()
	defer colors.EnableStructuredLogging()
	defer func() {
		err = errors.Join(err, client.Close())
	}()

	ctx := cmd.Context()
	model, err := client.CreateModel(ctx)
	if err != nil {
		return err
	}
	defer model.Close()

	return client.RunProgram(ctx, model)
}
