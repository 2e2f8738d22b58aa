// Package cmd holds the contactbook root command and the process-wide
// setup every subcommand shares.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/cristianoliveira/contactbook/internal/colors"
	"github.com/cristianoliveira/contactbook/internal/config"
	"github.com/cristianoliveira/contactbook/internal/logging"
	"github.com/cristianoliveira/contactbook/internal/version"
	"github.com/spf13/cobra"
)

var (
	configPath string
	debugFlag  bool
	quietFlag  bool
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:               "contactbook",
	Short:             "Browse, search and page through your contacts.",
	Long:              `Browse, search and page through your contacts.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: initRuntime,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logging.ShutdownGlobal()
	},
}

// Execute runs the root command until it returns or the process receives
// an interrupt. Errors are printed to stderr.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := RootCmd.ExecuteContext(ctx); err != nil {
		colors.Error(err.Error())
		return err
	}
	return nil
}

func init() {
	RootCmd.Version = version.String()
	RootCmd.CompletionOptions.HiddenDefaultCmd = true

	RootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default is $XDG_CONFIG_HOME/contactbook/config.toml)")
	RootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "print debug output and structured logs to stderr")
	RootCmd.PersistentFlags().BoolVarP(&quietFlag, "quiet", "q", false, "suppress informational output")

	RootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		if cmd != RootCmd {
			fmt.Fprint(cmd.OutOrStdout(), cmd.UsageString())
			return
		}
		printHelpText(cmd)
	})
}

// initRuntime loads configuration and applies the global flags on top of it.
func initRuntime(cmd *cobra.Command, args []string) error {
	if configPath != "" {
		if err := os.Setenv(config.EnvPrefix+"CONFIG_PATH", configPath); err != nil {
			return fmt.Errorf("set config path: %w", err)
		}
	}
	config.Load()

	if cmd.Flags().Changed("debug") {
		config.Set("debug", fmt.Sprint(debugFlag))
	}
	if cmd.Flags().Changed("quiet") {
		config.Set("quiet", fmt.Sprint(quietFlag))
	}
	colors.SetDebug(config.GetBool("debug", false))
	colors.SetQuiet(config.GetBool("quiet", false))

	if err := logging.InitGlobal(); err != nil {
		colors.Warning(fmt.Sprintf("file logging disabled: %v", err))
	}
	return nil
}

func printHelpText(cmd *cobra.Command) {
	commandOrder := []string{"tui", "list", "suggest", "version"}

	var cmdLines []string
	for _, name := range commandOrder {
		var found *cobra.Command
		for _, c := range cmd.Commands() {
			if c.Name() == name {
				found = c
				break
			}
		}
		if found == nil {
			continue
		}
		cmdLines = append(cmdLines, fmt.Sprintf("    %-16s %s", found.Name(), found.Short))
	}

	fmt.Fprintf(cmd.OutOrStdout(), `contactbook %s

Browse, search and page through your contacts.

USAGE:
    contactbook [COMMAND] [OPTIONS]

COMMANDS:
%s

OPTIONS:
        --config    Config file (TOML or YAML)
        --debug     Print debug output
    -q, --quiet     Suppress informational output
    -h, --help      Show help message
`, version.String(), strings.Join(cmdLines, "\n"))
}
