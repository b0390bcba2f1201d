// ABOUTME: Cobra command for interactive datepage configuration
// ABOUTME: Launches a bubbletea wizard to pick the default unit and week start

package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/harper/datepage/internal/tui"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Configure the default page",
	Long:  "Interactive wizard to choose the default page unit and first day of the week.",
	Args:  cobra.NoArgs,
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(cmd *cobra.Command, args []string) error {
	model := tui.NewSetupModel(cfg.Unit, cfg.WeekStart)

	result, err := tea.NewProgram(model).Run()
	if err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	final := result.(tui.SetupModel)
	if !final.ShouldSave() {
		fmt.Fprintln(cmd.OutOrStdout(), "Setup canceled.")
		return nil
	}

	unit, ws := final.Result()
	if err := cfg.Set("unit", unit); err != nil {
		return err
	}
	if err := cfg.Set("week_start", ws); err != nil {
		return err
	}

	path := resolvedConfigPath()
	if err := cfg.SaveTo(path); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Config saved to %s\n", path)
	return nil
}
