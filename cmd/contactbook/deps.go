package main

import (
	contactapp "github.com/cristianoliveira/contactbook/internal/app"
	tuiapp "github.com/cristianoliveira/contactbook/internal/tui/app"
	"github.com/spf13/cobra"
)

// directoryClient opens the session's contact directory. Configuration is
// only loaded once the root command runs, so directories are built lazily.
type directoryClient interface {
	NewDirectory() (*contactapp.Directory, error)
}

type configDirectoryClient struct{}

func (configDirectoryClient) NewDirectory() (*contactapp.Directory, error) {
	return newDirectoryFromConfig()
}

var newDirectoryFromConfig = contactapp.NewDirectoryFromConfig

type cliDeps struct {
	directories directoryClient
	tuiClient   tuiapp.Client
	version     versionClient
}

func buildCLIDeps() (cliDeps, error) {
	return cliDeps{
		directories: configDirectoryClient{},
		tuiClient:   tuiapp.NewDefaultClient(nil, nil),
		version:     buildVersion{},
	}, nil
}

func registerCommands(root *cobra.Command, deps cliDeps) {
	root.AddCommand(
		NewTUICmd(deps.tuiClient),
		NewListCmd(deps.directories),
		NewSuggestCmd(deps.directories),
		NewVersionCmd(deps.version),
	)
}
