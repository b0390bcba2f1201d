// ABOUTME: Startof command for unit boundaries
// ABOUTME: Prints the first instant of the unit containing a date

package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/harper/datepage/internal/calendar"
)

var startOfCmd = &cobra.Command{
	Use:   "startof <date> <unit>",
	Short: "Print the start of the unit containing a date",
	Long: `Print the first instant of the calendar unit containing a date.

Units are singular: second, minute, hour, day, week, isoweek, month,
quarter, year, isoweekyear, decade. Weeks start on the configured
week_start (override with --week-start); isoweeks always start on Monday.`,
	Example: `  datepage startof 2019-02-06 week
  datepage startof now isoweekyear`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBound(cmd, args, calendar.StartOf)
	},
}

func init() {
	startOfCmd.Flags().Bool("json", false, "output as JSON")
	rootCmd.AddCommand(startOfCmd)
}

func runBound(cmd *cobra.Command, args []string, op func(time.Time, string, ...calendar.Option) (time.Time, error)) error {
	asJSON, _ := cmd.Flags().GetBool("json")

	date, err := parseDateArg(args[0])
	if err != nil {
		return err
	}

	result, err := op(date, args[1], calendarOptions()...)
	if err != nil {
		return err
	}
	appLog.Debug("computed bound", "input", date, "unit", args[1], "result", result)

	return printDateResult(cmd, newDateResult(args[0], args[1], nil, result), asJSON)
}
