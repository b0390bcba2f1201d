// ABOUTME: Shared output helpers for date commands
// ABOUTME: Prints results as colored text or JSON and detects terminals

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/x/term"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/harper/datepage/internal/config"
	"github.com/harper/datepage/internal/timeutil"
)

// defaultTermWidth is used when the terminal width cannot be detected.
const defaultTermWidth = 80

// dateResult is the JSON form of a single computed date.
type dateResult struct {
	Input  string    `json:"input"`
	Unit   string    `json:"unit"`
	Amount *int      `json:"amount,omitempty"`
	Result time.Time `json:"result"`
	Date   string    `json:"date"`
}

func parseDateArg(s string) (time.Time, error) {
	return timeutil.ParseDate(s, nowFunc())
}

func parseAmountArg(args []string, idx int) (int, error) {
	if len(args) <= idx {
		return 1, nil
	}
	n, err := strconv.Atoi(args[idx])
	if err != nil {
		return 0, fmt.Errorf("amount must be an integer, got %q", args[idx])
	}
	return n, nil
}

func printDateResult(cmd *cobra.Command, res dateResult, asJSON bool) error {
	out := cmd.OutOrStdout()
	if asJSON {
		return writeJSON(out, res)
	}

	bold := color.New(color.Bold).SprintFunc()
	faint := color.New(color.Faint).SprintFunc()

	fmt.Fprintf(out, "%s  %s\n", bold(res.Date), faint(res.Result.Format(time.RFC3339Nano)))
	return nil
}

func newDateResult(input, unit string, amount *int, t time.Time) dateResult {
	return dateResult{
		Input:  input,
		Unit:   unit,
		Amount: amount,
		Result: t,
		Date:   t.Format(config.DateLayout),
	}
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// isTerminal reports whether stdout is an interactive terminal.
func isTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// termWidth returns the stdout terminal width, or defaultTermWidth.
func termWidth() int {
	fd := os.Stdout.Fd()
	if !isTerminal() {
		return defaultTermWidth
	}
	if w, _, err := term.GetSize(fd); err == nil && w > 0 {
		return w
	}
	return defaultTermWidth
}
