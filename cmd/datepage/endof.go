// ABOUTME: Endof command for unit boundaries
// ABOUTME: Prints the last instant of the unit containing a date

package main

import (
	"github.com/spf13/cobra"

	"github.com/harper/datepage/internal/calendar"
)

var endOfCmd = &cobra.Command{
	Use:   "endof <date> <unit>",
	Short: "Print the end of the unit containing a date",
	Long: `Print the last instant of the calendar unit containing a date,
accurate to the nanosecond (23:59:59.999999999 for day-based units).

Accepts the same units as startof.`,
	Example: `  datepage endof 2019-02-06 month
  datepage endof today quarter --json`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBound(cmd, args, calendar.EndOf)
	},
}

func init() {
	endOfCmd.Flags().Bool("json", false, "output as JSON")
	rootCmd.AddCommand(endOfCmd)
}
