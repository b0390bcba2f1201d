// ABOUTME: Config command for viewing and editing datepage settings
// ABOUTME: Shows the effective config and sets keys in config.toml

package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harper/datepage/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change configuration",
	Long: `Show the effective configuration and where it is stored.

Keys: unit, multiplier, direction, week_start, log_level, data_dir.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		faint := color.New(color.Faint).SprintFunc()

		dir, _ := cfg.GetDirection()
		rows := [][2]string{
			{"unit", cfg.GetUnit()},
			{"multiplier", fmt.Sprint(cfg.GetMultiplier())},
			{"direction", dir.String()},
			{"week_start", weekStart.String()},
			{"log_level", cfg.GetLogLevel()},
			{"data_dir", cfg.GetDataDir()},
		}
		for _, r := range rows {
			fmt.Fprintf(out, "%-11s %s\n", r[0], r[1])
		}
		fmt.Fprintf(out, "\n%s %s\n", faint("config:"), resolvedConfigPath())
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration key",
	Example: `  datepage config set unit month
  datepage config set week_start monday`,
	Args: cobra.ExactArgs(2),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) == 0 {
			return config.Keys(), cobra.ShellCompDirectiveNoFileComp
		}
		return nil, cobra.ShellCompDirectiveNoFileComp
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cfg.Set(args[0], args[1]); err != nil {
			return err
		}
		path := resolvedConfigPath()
		if err := cfg.SaveTo(path); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s in %s\n", args[0], args[1], path)
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), resolvedConfigPath())
	},
}

func init() {
	configCmd.AddCommand(configSetCmd, configPathCmd)
	rootCmd.AddCommand(configCmd)
}
