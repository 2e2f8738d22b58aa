package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/cristianoliveira/contactbook/internal/colors"
	"github.com/cristianoliveira/contactbook/internal/config"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRuntimeTest(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(dir, "state"))
	t.Setenv("CONTACTBOOK_DOTENV_PATH", filepath.Join(dir, "missing.env"))
	t.Setenv("CONTACTBOOK_CONFIG_PATH", "")
	t.Cleanup(func() {
		for _, name := range []string{"config", "debug", "quiet"} {
			f := RootCmd.PersistentFlags().Lookup(name)
			f.Changed = false
			_ = f.Value.Set(f.DefValue)
		}
		colors.SetDebug(false)
		colors.SetQuiet(false)
	})
	return dir
}

func newFlaggedCommand(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	c := &cobra.Command{Use: "test"}
	c.Flags().AddFlagSet(RootCmd.PersistentFlags())
	require.NoError(t, c.ParseFlags(args))
	return c
}

func TestInitRuntimeLoadsConfigFile(t *testing.T) {
	dir := setupRuntimeTest(t)
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("page_size: 7\nsort_order: desc\n"), 0o644))

	c := newFlaggedCommand(t, "--config", path)
	require.NoError(t, initRuntime(c, nil))

	assert.Equal(t, 7, config.GetInt("page_size", 0))
	assert.Equal(t, "desc", config.Get("sort_order", ""))
}

func TestInitRuntimeFlagsOverrideConfig(t *testing.T) {
	setupRuntimeTest(t)
	t.Setenv("CONTACTBOOK_DEBUG", "false")
	t.Setenv("CONTACTBOOK_QUIET", "false")

	c := newFlaggedCommand(t, "--debug", "-q")
	require.NoError(t, initRuntime(c, nil))

	assert.True(t, config.GetBool("debug", false))
	assert.True(t, colors.DebugEnabled())
	assert.True(t, config.GetBool("quiet", false))
}

func TestInitRuntimeKeepsConfigWithoutFlags(t *testing.T) {
	setupRuntimeTest(t)
	t.Setenv("CONTACTBOOK_DEBUG", "true")

	c := newFlaggedCommand(t)
	require.NoError(t, initRuntime(c, nil))

	assert.True(t, colors.DebugEnabled())
}

func TestPrintHelpTextListsCommands(t *testing.T) {
	root := &cobra.Command{Use: "contactbook"}
	root.AddCommand(
		&cobra.Command{Use: "version", Short: "Show version information", Run: func(*cobra.Command, []string) {}},
		&cobra.Command{Use: "list", Short: "Print a page of contacts", Run: func(*cobra.Command, []string) {}},
	)
	var out bytes.Buffer
	root.SetOut(&out)

	printHelpText(root)

	help := out.String()
	assert.Contains(t, help, "USAGE:\n    contactbook [COMMAND] [OPTIONS]")
	assert.Contains(t, help, "    list             Print a page of contacts")
	assert.Less(t, bytes.Index(out.Bytes(), []byte("list ")), bytes.Index(out.Bytes(), []byte("version ")))
	assert.NotContains(t, help, "suggest")
}
