package main

import (
	"os"

	"github.com/cristianoliveira/contactbook/cmd"
	"github.com/cristianoliveira/contactbook/internal/colors"
)

func init() {
	deps, err := buildCLIDeps()
	if err != nil {
		colors.Error(err.Error())
		os.Exit(1)
	}
	registerCommands(cmd.RootCmd, deps)
}

func main() {
	os.Exit(run(os.Args[1:], cmd.Execute))
}

// run executes the CLI and returns the process exit code. The TUI owns the
// terminal, so startup entries are skipped for it.
func run(args []string, execute func() error) int {
	logStartup := len(args) == 0 || args[0] != "tui"
	if logStartup {
		colors.StructuredInfo("startup", "main", "started", nil, map[string]any{"args": len(args)})
	}
	if err := execute(); err != nil {
		if logStartup {
			colors.StructuredError("startup", "main", "failed", err, nil)
		}
		return 1
	}
	if logStartup {
		colors.StructuredInfo("startup", "main", "completed", nil, nil)
	}
	return 0
}
