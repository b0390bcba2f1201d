// ABOUTME: Root Cobra command and global flags
// ABOUTME: Loads config, sets up logging and shared page defaults

package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harper/datepage/internal/calendar"
	"github.com/harper/datepage/internal/config"
	"github.com/harper/datepage/internal/logger"
)

var (
	configPath string
	verbose    bool
	noColor    bool
	weekStartF string

	cfg       *config.Config
	appLog    *slog.Logger
	weekStart = calendar.DefaultWeekStart

	// nowFunc is the clock for every command.
	nowFunc = time.Now
)

var rootCmd = &cobra.Command{
	Use:   "datepage",
	Short: "Calendar arithmetic and date-range paging",
	Long: `
     _       _
  __| | __ _| |_ ___ _ __   __ _  __ _  ___
 / _' |/ _' | __/ _ \ '_ \ / _' |/ _' |/ _ \
| (_| | (_| | ||  __/ |_) | (_| | (_| |  __/
 \__,_|\__,_|\__\___| .__/ \__,_|\__, |\___|
                    |_|          |___/

Calendar arithmetic and date-range paging for humans and AI agents.

Add and subtract calendar units, find the start and end of a unit,
and page through weeks, months or quarters from the terminal or MCP.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if noColor {
			color.NoColor = true
		}

		var err error
		if configPath != "" {
			cfg, err = config.LoadFrom(configPath)
		} else {
			cfg, err = config.Load()
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		level := cfg.GetLogLevel()
		if verbose {
			level = "debug"
		}
		appLog = logger.New(cmd.ErrOrStderr(), level)

		weekStart, err = cfg.GetWeekStart()
		if err != nil {
			return err
		}
		if weekStartF != "" {
			weekStart, err = config.ParseWeekday(weekStartF)
			if err != nil {
				return err
			}
		}

		appLog.Debug("config loaded",
			slog.String("path", resolvedConfigPath()),
			slog.String("unit", cfg.GetUnit()),
			slog.String("week_start", weekStart.String()))
		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file path (default: ~/.config/datepage/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug output to stderr")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().StringVar(&weekStartF, "week-start", "", "first day of a week page (default from config, sunday)")
}

func resolvedConfigPath() string {
	if configPath != "" {
		return configPath
	}
	return config.GetConfigPath()
}

func calendarOptions() []calendar.Option {
	return []calendar.Option{calendar.WithWeekStart(weekStart)}
}
