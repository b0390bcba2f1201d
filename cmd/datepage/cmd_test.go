// ABOUTME: Tests for CLI commands
// ABOUTME: Checks command structure and runs commands against temp XDG directories

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harper/datepage/internal/calendar"
	"github.com/harper/datepage/internal/config"
)

var cliNow = time.Date(2019, 2, 6, 12, 0, 0, 0, time.Local)

// setupCLI isolates config and state in temp dirs and fixes the clock.
func setupCLI(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))

	prevNow, prevNoColor := nowFunc, color.NoColor
	nowFunc = func() time.Time { return cliNow }
	color.NoColor = true
	t.Cleanup(func() {
		nowFunc, color.NoColor = prevNow, prevNoColor
	})
	return dir
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return out.String(), err
}

func TestRootCommand(t *testing.T) {
	if rootCmd.Use != "datepage" {
		t.Errorf("expected Use to be 'datepage', got %q", rootCmd.Use)
	}
	if rootCmd.Short == "" {
		t.Error("expected root command to have a short description")
	}
	for _, name := range []string{"config", "verbose", "no-color", "week-start"} {
		if rootCmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("expected --%s persistent flag", name)
		}
	}
}

func TestSubcommandsRegistered(t *testing.T) {
	want := []string{"add", "sub", "startof", "endof", "page", "browse", "mcp", "config", "setup", "version", "install-skill"}
	have := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		have[c.Name()] = true
	}
	for _, name := range want {
		if !have[name] {
			t.Errorf("expected %q subcommand", name)
		}
	}
}

func TestPageCommandFlags(t *testing.T) {
	for _, name := range []string{"date", "unit", "multiplier", "direction", "next", "prev", "reset", "no-save", "markdown", "json"} {
		if pageCmd.Flags().Lookup(name) == nil {
			t.Errorf("expected --%s flag on page", name)
		}
	}
	if browseCmd.Flags().Lookup("unit") == nil {
		t.Error("expected --unit flag on browse")
	}
}

func TestAddCommand(t *testing.T) {
	setupCLI(t)

	out, err := execute(t, "add", "2019-02-06", "week")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "2019-02-13"), "got %q", out)

	out, err = execute(t, "add", "2019-01-31", "months", "1", "--json")
	require.NoError(t, err)
	var res dateResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, "2019-02-28", res.Date)
	assert.Equal(t, "months", res.Unit)
	require.NotNil(t, res.Amount)
	assert.Equal(t, 1, *res.Amount)
}

func TestSubCommand(t *testing.T) {
	setupCLI(t)

	out, err := execute(t, "sub", "2019-02-06", "days", "2")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "2019-02-04"), "got %q", out)

	out, err = execute(t, "sub", "today", "day")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "2019-02-05"), "got %q", out)
}

func TestShiftCommand_Errors(t *testing.T) {
	setupCLI(t)

	_, err := execute(t, "add", "2019-02-06", "fortnight")
	assert.ErrorIs(t, err, calendar.ErrUnsupportedUnit)

	_, err = execute(t, "add", "2019-02-06", "day", "many")
	assert.ErrorContains(t, err, "amount must be an integer")

	_, err = execute(t, "add", "2019-02-06", "hours", "3000000")
	assert.ErrorIs(t, err, calendar.ErrInvalidArgument)

	_, err = execute(t, "add", "someday", "day")
	assert.Error(t, err)

	_, err = execute(t, "add", "2019-02-06")
	assert.Error(t, err)
}

func TestStartOfEndOfCommands(t *testing.T) {
	setupCLI(t)

	out, err := execute(t, "startof", "2019-02-06", "week")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "2019-02-03"), "got %q", out)

	out, err = execute(t, "startof", "2019-02-06", "week", "--week-start", "monday")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "2019-02-04"), "got %q", out)

	out, err = execute(t, "endof", "2019-02-06", "month", "--json")
	require.NoError(t, err)
	var res dateResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.True(t, res.Result.Equal(time.Date(2019, 2, 28, 23, 59, 59, 999999999, time.Local)), "got %v", res.Result)

	_, err = execute(t, "endof", "2019-02-06", "weeks")
	assert.ErrorIs(t, err, calendar.ErrUnsupportedUnit)
}

func decodePage(t *testing.T, out string) pageJSON {
	t.Helper()
	var page pageJSON
	require.NoError(t, json.Unmarshal([]byte(out), &page), out)
	return page
}

func TestPageCommand_Persists(t *testing.T) {
	dir := setupCLI(t)

	out, err := execute(t, "page", "--json")
	require.NoError(t, err)
	page := decodePage(t, out)
	assert.Equal(t, "2019-02-06", page.Date)
	assert.Equal(t, "week", page.Unit)
	assert.Equal(t, []string{"2019-02-03", "2019-02-04", "2019-02-05", "2019-02-06", "2019-02-07", "2019-02-08", "2019-02-09"}, page.Days)
	assert.True(t, page.IsCurrentInterval)

	_, err = os.Stat(filepath.Join(dir, "data", "datepage", config.StateFilename))
	require.NoError(t, err, "page state should be saved")

	out, err = execute(t, "page", "--next", "1", "--json")
	require.NoError(t, err)
	page = decodePage(t, out)
	assert.Equal(t, "2019-02-13", page.Date)
	assert.Equal(t, "2019-02-10", page.Days[0])
	assert.False(t, page.IsCurrentInterval)

	out, err = execute(t, "page", "--json")
	require.NoError(t, err)
	assert.Equal(t, "2019-02-13", decodePage(t, out).Date, "continues from the saved page")

	out, err = execute(t, "page", "--prev", "3", "--unit", "day", "--json")
	require.NoError(t, err)
	assert.Equal(t, "2019-02-10", decodePage(t, out).Date)

	out, err = execute(t, "page", "--reset", "--json")
	require.NoError(t, err)
	page = decodePage(t, out)
	assert.Equal(t, "2019-02-06", page.Date)
	assert.Equal(t, "week", page.Unit)
}

func TestPageCommand_Options(t *testing.T) {
	setupCLI(t)

	out, err := execute(t, "page", "--date", "2019-02-06", "--unit", "month", "--multiplier", "2", "--direction", "forward", "--no-save", "--json")
	require.NoError(t, err)
	page := decodePage(t, out)
	assert.Equal(t, "2019-02-01", page.Days[0])
	assert.Equal(t, "2019-03-31", page.Days[len(page.Days)-1])
	assert.Len(t, page.Days, 59)

	_, err = execute(t, "page", "--unit", "fortnight")
	assert.ErrorIs(t, err, calendar.ErrUnsupportedUnit)

	_, err = execute(t, "page", "--direction", "sideways")
	assert.ErrorIs(t, err, calendar.ErrInvalidArgument)

	_, err = execute(t, "page", "--multiplier=-1")
	assert.ErrorIs(t, err, calendar.ErrInvalidArgument)
}

func TestPageCommand_NoSave(t *testing.T) {
	dir := setupCLI(t)

	_, err := execute(t, "page", "--no-save")
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "data", "datepage", config.StateFilename))
	assert.True(t, os.IsNotExist(err))
}

func TestPageCommand_ResetClearsSavedPage(t *testing.T) {
	dir := setupCLI(t)
	statePath := filepath.Join(dir, "data", "datepage", config.StateFilename)

	_, err := execute(t, "page", "--next", "2")
	require.NoError(t, err)
	_, err = os.Stat(statePath)
	require.NoError(t, err)

	out, err := execute(t, "page", "--reset", "--no-save", "--json")
	require.NoError(t, err)
	assert.Equal(t, "2019-02-06", decodePage(t, out).Date)

	_, err = os.Stat(statePath)
	assert.True(t, os.IsNotExist(err), "reset should delete the saved page")
}

func TestPageCommand_Text(t *testing.T) {
	setupCLI(t)

	out, err := execute(t, "page", "--no-save")
	require.NoError(t, err)
	assert.Contains(t, out, "1 week back from 2019-02-06 (current)")
	assert.Contains(t, out, "Wed 06 Feb ← today")
	assert.Contains(t, out, "Sun 03 Feb")
	assert.Contains(t, out, strings.Repeat("─", config.SeparatorWidth))

	out, err = execute(t, "page", "--no-save", "--unit", "year")
	require.NoError(t, err)
	assert.Contains(t, out, "365 days")
}

func TestPageCommand_Markdown(t *testing.T) {
	setupCLI(t)

	out, err := execute(t, "page", "--no-save", "--markdown")
	require.NoError(t, err)
	assert.Contains(t, out, "1 week back from 2019-02-06")
	assert.Contains(t, out, "2019-02-03")
	assert.Contains(t, out, "today")
}

func TestPageCommand_UsesConfigDefaults(t *testing.T) {
	dir := setupCLI(t)
	cfgPath := filepath.Join(dir, "custom.toml")
	require.NoError(t, (&config.Config{Unit: "day", Multiplier: 3, Direction: "forward"}).SaveTo(cfgPath))

	out, err := execute(t, "page", "--config", cfgPath, "--no-save", "--json")
	require.NoError(t, err)
	page := decodePage(t, out)
	assert.Equal(t, "day", page.Unit)
	assert.Equal(t, 3, page.Multiplier)
	assert.Equal(t, "forward", page.Direction)
	assert.Equal(t, []string{"2019-02-06", "2019-02-07", "2019-02-08"}, page.Days)
}

func TestConfigCommands(t *testing.T) {
	dir := setupCLI(t)

	out, err := execute(t, "config", "path")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "config", "datepage", "config.toml"), strings.TrimSpace(out))

	out, err = execute(t, "config", "set", "unit", "month")
	require.NoError(t, err)
	assert.Contains(t, out, "Set unit = month")

	out, err = execute(t, "config")
	require.NoError(t, err)
	assert.Contains(t, out, "unit        month")
	assert.Contains(t, out, "week_start  Sunday")

	_, err = execute(t, "config", "set", "colour", "blue")
	assert.ErrorContains(t, err, "unknown config key")

	_, err = execute(t, "config", "set", "multiplier", "0")
	assert.Error(t, err)
}

func TestInvalidConfigFile(t *testing.T) {
	dir := setupCLI(t)
	cfgPath := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("unit = \"fortnight\"\n"), 0o644))

	_, err := execute(t, "add", "2019-02-06", "day", "--config", cfgPath)
	assert.ErrorContains(t, err, "failed to load config")
}

func TestVersionCommand(t *testing.T) {
	setupCLI(t)

	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "datepage "+Version)
	assert.Contains(t, out, "commit:")
}

func TestVerboseLogsToStderr(t *testing.T) {
	setupCLI(t)
	resetFlags(rootCmd)

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs([]string{"add", "2019-02-06", "day", "-v"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, errOut.String(), "config loaded")
	assert.Contains(t, errOut.String(), "shifted date")
	assert.NotContains(t, out.String(), "config loaded")
}

func TestBrowseRequiresTerminal(t *testing.T) {
	setupCLI(t)
	if isTerminal() {
		t.Skip("stdout is a terminal")
	}
	_, err := execute(t, "browse")
	assert.ErrorContains(t, err, "interactive terminal")
}
