// ABOUTME: Page command for printing and stepping through date ranges
// ABOUTME: Remembers the last page in the data directory between runs

package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harper/datepage/internal/config"
	"github.com/harper/datepage/internal/content"
	"github.com/harper/datepage/internal/paginate"
	"github.com/harper/datepage/internal/state"
)

// pageJSON is the JSON form of a page.
type pageJSON struct {
	Date              string    `json:"date"`
	Unit              string    `json:"unit"`
	Multiplier        int       `json:"multiplier"`
	Direction         string    `json:"direction"`
	Start             time.Time `json:"start"`
	End               time.Time `json:"end"`
	Days              []string  `json:"days"`
	IsCurrentInterval bool      `json:"is_current_interval"`
}

var pageCmd = &cobra.Command{
	Use:   "page",
	Short: "Print the current page of dates",
	Long: `Print a page: a date range derived from a reference date, a unit,
a multiplier and a direction.

A "back" page ends with the unit containing the date and reaches back over
multiplier units; a "forward" page starts with that unit and reaches forward.

The page is saved, so the next run continues from it:

  datepage page --unit month        # this month
  datepage page --next 1            # next month
  datepage page --prev 2            # two months before that

Use --reset to forget the saved page and start over from today with the
configured defaults.`,
	Args: cobra.NoArgs,
	RunE: runPage,
}

func init() {
	pageCmd.Flags().String("date", "", "reference date (YYYY-MM-DD, RFC3339, today, ...)")
	pageCmd.Flags().StringP("unit", "u", "", "page unit (default from config)")
	pageCmd.Flags().IntP("multiplier", "m", 0, "units per page (default from config)")
	pageCmd.Flags().StringP("direction", "d", "", "back or forward (default from config)")
	pageCmd.Flags().Int("next", 0, "move forward this many pages")
	pageCmd.Flags().Int("prev", 0, "move back this many pages")
	pageCmd.Flags().Bool("reset", false, "forget the saved page and start from today")
	pageCmd.Flags().Bool("no-save", false, "do not remember this page")
	pageCmd.Flags().Bool("markdown", false, "render the page as Markdown")
	pageCmd.Flags().Bool("json", false, "output as JSON")
	rootCmd.AddCommand(pageCmd)
}

func runPage(cmd *cobra.Command, args []string) error {
	store := state.NewStore(cfg.GetDataDir())

	p, err := openPager(cmd, store)
	if err != nil {
		return err
	}

	next, _ := cmd.Flags().GetInt("next")
	prev, _ := cmd.Flags().GetInt("prev")
	if err := stepPages(p, next-prev); err != nil {
		return err
	}

	if noSave, _ := cmd.Flags().GetBool("no-save"); !noSave {
		if err := store.Save(state.FromPager(p, nowFunc())); err != nil {
			return fmt.Errorf("failed to save page: %w", err)
		}
		appLog.Debug("page saved", "path", store.Path(), "page", p.State().String())
	}

	out := cmd.OutOrStdout()
	asJSON, _ := cmd.Flags().GetBool("json")
	markdown, _ := cmd.Flags().GetBool("markdown")

	switch {
	case asJSON:
		return writeJSON(out, toPageJSON(p))
	case markdown:
		style := "notty"
		if isTerminal() {
			style = "dark"
		}
		rendered, err := content.Render(content.PageMarkdown(p, nowFunc()), style, termWidth())
		if err != nil {
			return err
		}
		fmt.Fprint(out, rendered)
		return nil
	default:
		printPage(out, p, nowFunc())
		return nil
	}
}

// openPager builds a pager from config defaults, the saved page and flags,
// in increasing order of precedence. --reset deletes the saved page.
func openPager(cmd *cobra.Command, store *state.Store) (*paginate.Pager, error) {
	dir, err := cfg.GetDirection()
	if err != nil {
		return nil, err
	}
	opts := []paginate.Option{
		paginate.WithUnit(cfg.GetUnit()),
		paginate.WithMultiplier(cfg.GetMultiplier()),
		paginate.WithDirection(dir),
	}

	flags := cmd.Flags()
	if reset, _ := flags.GetBool("reset"); reset {
		if err := store.Clear(); err != nil {
			return nil, err
		}
		appLog.Debug("saved page cleared", "path", store.Path())
	} else {
		saved, err := store.Load()
		if err != nil {
			appLog.Warn("ignoring unreadable saved page", "path", store.Path(), "error", err)
		} else if saved != nil {
			opts = append(opts, saved.Options()...)
		}
	}

	if flags.Changed("date") {
		text, _ := flags.GetString("date")
		date, err := parseDateArg(text)
		if err != nil {
			return nil, err
		}
		opts = append(opts, paginate.WithDate(date))
	}
	if flags.Changed("unit") {
		unit, _ := flags.GetString("unit")
		opts = append(opts, paginate.WithUnit(unit))
	}
	if flags.Changed("multiplier") {
		n, _ := flags.GetInt("multiplier")
		opts = append(opts, paginate.WithMultiplier(n))
	}
	if flags.Changed("direction") {
		text, _ := flags.GetString("direction")
		d, err := paginate.ParseDirection(text)
		if err != nil {
			return nil, err
		}
		opts = append(opts, paginate.WithDirection(d))
	}

	opts = append(opts, paginate.WithWeekStart(weekStart), paginate.WithClock(nowFunc))
	return paginate.New(opts...)
}

// stepPages moves n whole pages, forward when n is positive.
func stepPages(p *paginate.Pager, n int) error {
	for ; n > 0; n-- {
		if err := p.Add(0, ""); err != nil {
			return err
		}
	}
	for ; n < 0; n++ {
		if err := p.Sub(0, ""); err != nil {
			return err
		}
	}
	return nil
}

func toPageJSON(p *paginate.Pager) pageJSON {
	st := p.State()
	out := pageJSON{
		Date:              st.Date.Format(config.DateLayout),
		Unit:              st.Unit.String(),
		Multiplier:        st.Multiplier,
		Direction:         st.Direction.String(),
		Start:             p.StartDate(),
		End:               p.EndDate(),
		Days:              []string{},
		IsCurrentInterval: p.IsCurrentInterval(),
	}
	for _, d := range p.EachDay() {
		out.Days = append(out.Days, d.Format(config.DateLayout))
	}
	return out
}

func printPage(w io.Writer, p *paginate.Pager, now time.Time) {
	bold := color.New(color.Bold).SprintFunc()
	faint := color.New(color.Faint).SprintFunc()
	cyan := color.New(color.FgCyan).SprintFunc()
	green := color.New(color.FgGreen).SprintFunc()

	title := p.State().String()
	if p.IsCurrentInterval() {
		title += " " + green("(current)")
	}
	fmt.Fprintln(w, bold(title))
	fmt.Fprintf(w, "%s → %s\n", cyan(p.StartDate().Format(config.DateTimeLayout)), cyan(p.EndDate().Format(config.DateTimeLayout)))
	fmt.Fprintln(w, strings.Repeat("─", config.SeparatorWidth))

	days := p.EachDay()
	if len(days) > content.MaxTableDays {
		fmt.Fprintf(w, "%s\n", faint(fmt.Sprintf("%d days", len(days))))
		return
	}

	ref := p.Date()
	for _, d := range days {
		line := d.Format(config.DayLayout)
		switch {
		case sameDate(d, ref) && sameDate(d, now):
			line = bold(line) + " " + green("← today")
		case sameDate(d, ref):
			line = bold(line)
		case sameDate(d, now):
			line += " " + green("← today")
		}
		fmt.Fprintln(w, line)
	}
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.In(a.Location()).Date()
	return ay == by && am == bm && ad == bd
}
