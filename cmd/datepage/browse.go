// ABOUTME: Browse command for interactive paging
// ABOUTME: Launches the bubbletea pager and saves the page it ends on

package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/harper/datepage/internal/state"
	"github.com/harper/datepage/internal/tui"
)

var browseCmd = &cobra.Command{
	Use:     "browse",
	Aliases: []string{"b", "tui"},
	Short:   "Page through dates interactively",
	Long: `Open an interactive pager starting from the saved page (or today).

Keys: ←/h previous page, →/l next page, t today, u cycle unit,
+/- wider or narrower page, d flip direction, g go to date, q quit.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !isTerminal() {
			return fmt.Errorf("browse needs an interactive terminal; use 'datepage page' instead")
		}

		store := state.NewStore(cfg.GetDataDir())
		p, err := openPager(cmd, store)
		if err != nil {
			return err
		}

		model := tui.NewPagerModel(p, weekStart, nowFunc)
		result, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
		if err != nil {
			return fmt.Errorf("TUI error: %w", err)
		}

		final := result.(tui.PagerModel)
		if noSave, _ := cmd.Flags().GetBool("no-save"); noSave {
			return nil
		}
		if err := store.Save(state.FromPager(final.Pager(), nowFunc())); err != nil {
			return fmt.Errorf("failed to save page: %w", err)
		}
		return nil
	},
}

func init() {
	browseCmd.Flags().String("date", "", "reference date (YYYY-MM-DD, RFC3339, today, ...)")
	browseCmd.Flags().StringP("unit", "u", "", "page unit (default from config)")
	browseCmd.Flags().IntP("multiplier", "m", 0, "units per page (default from config)")
	browseCmd.Flags().StringP("direction", "d", "", "back or forward (default from config)")
	browseCmd.Flags().Bool("reset", false, "forget the saved page and start from today")
	browseCmd.Flags().Bool("no-save", false, "do not remember the final page")
	rootCmd.AddCommand(browseCmd)
}
