// ABOUTME: Sub command for calendar arithmetic
// ABOUTME: Moves a date backward by an amount of calendar units

package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/harper/datepage/internal/calendar"
)

var subCmd = &cobra.Command{
	Use:   "sub <date> <unit> [amount]",
	Short: "Subtract calendar units from a date",
	Long: `Subtract an amount of calendar units from a date (default amount: 1).

Accepts the same dates and units as add.`,
	Example: `  datepage sub 2019-02-06 days 2
  datepage sub today quarter`,
	Args: cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runShift(cmd, args, calendar.Sub)
	},
}

func init() {
	subCmd.Flags().Bool("json", false, "output as JSON")
	rootCmd.AddCommand(subCmd)
}

func runShift(cmd *cobra.Command, args []string, op func(time.Time, string, int) (time.Time, error)) error {
	asJSON, _ := cmd.Flags().GetBool("json")

	date, err := parseDateArg(args[0])
	if err != nil {
		return err
	}
	amount, err := parseAmountArg(args, 2)
	if err != nil {
		return err
	}

	result, err := op(date, args[1], amount)
	if err != nil {
		return err
	}
	appLog.Debug("shifted date", "input", date, "unit", args[1], "amount", amount, "result", result)

	return printDateResult(cmd, newDateResult(args[0], args[1], &amount, result), asJSON)
}
