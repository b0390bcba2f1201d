// ABOUTME: Add command for calendar arithmetic
// ABOUTME: Moves a date forward by an amount of calendar units

package main

import (
	"github.com/spf13/cobra"

	"github.com/harper/datepage/internal/calendar"
)

var addCmd = &cobra.Command{
	Use:   "add <date> <unit> [amount]",
	Short: "Add calendar units to a date",
	Long: `Add an amount of calendar units to a date (default amount: 1).

Dates are YYYY-MM-DD, RFC3339, or now/today/yesterday/tomorrow.
Units may be plural (days, weeks). Month, quarter, year and decade steps
clamp to the last day of the target month: 2019-01-31 + 1 month = 2019-02-28.`,
	Example: `  datepage add 2019-02-06 week
  datepage add today days 10
  datepage add 2019-01-31 month --json`,
	Args: cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runShift(cmd, args, calendar.Add)
	},
}

func init() {
	addCmd.Flags().Bool("json", false, "output as JSON")
	rootCmd.AddCommand(addCmd)
}
