// ABOUTME: Renders a page as Markdown and as styled terminal output
// ABOUTME: Markdown tables are drawn by glamour for the page --markdown view

package content

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"

	"github.com/harper/datepage/internal/paginate"
)

// MaxTableDays is the longest page rendered one row per day.
// Longer pages get one row per month.
const MaxTableDays = 62

const (
	dateLayout    = "2006-01-02"
	instantLayout = "2006-01-02 15:04:05.000 MST"
)

// PageMarkdown describes the pager's current page as Markdown.
// today marks the matching row.
func PageMarkdown(p *paginate.Pager, today time.Time) string {
	var b strings.Builder
	iv := p.Interval()
	days := p.EachDay()

	fmt.Fprintf(&b, "# %s\n\n", p.State())
	fmt.Fprintf(&b, "**%s** → **%s**", iv.Start.Format(instantLayout), iv.End.Format(instantLayout))
	if p.IsCurrentInterval() {
		b.WriteString(" _(current)_")
	}
	b.WriteString("\n\n")

	if len(days) <= MaxTableDays {
		b.WriteString("| Day | Date | |\n|---|---|---|\n")
		for _, d := range days {
			fmt.Fprintf(&b, "| %s | %s | %s |\n", d.Format("Mon"), d.Format(dateLayout), marker(d, p.Date(), today))
		}
	} else {
		b.WriteString("| Month | Days |\n|---|---|\n")
		for _, m := range groupByMonth(days) {
			fmt.Fprintf(&b, "| %s | %d |\n", m.start.Format("January 2006"), m.count)
		}
	}

	fmt.Fprintf(&b, "\n%d days\n", len(days))
	return b.String()
}

func marker(d, ref, today time.Time) string {
	var marks []string
	if sameDay(d, ref) {
		marks = append(marks, "reference")
	}
	if sameDay(d, today) {
		marks = append(marks, "today")
	}
	return strings.Join(marks, ", ")
}

type monthSpan struct {
	start time.Time
	count int
}

func groupByMonth(days []time.Time) []monthSpan {
	var spans []monthSpan
	for _, d := range days {
		if n := len(spans); n > 0 && spans[n-1].start.Month() == d.Month() && spans[n-1].start.Year() == d.Year() {
			spans[n-1].count++
			continue
		}
		spans = append(spans, monthSpan{start: d, count: 1})
	}
	return spans
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.In(a.Location()).Date()
	return ay == by && am == bm && ad == bd
}

// Render draws markdown for a terminal with the given glamour style
// ("dark", "light", "notty") wrapped at width. A width below 1 disables wrapping.
func Render(markdown, style string, width int) (string, error) {
	opts := []glamour.TermRendererOption{glamour.WithStandardStyle(style)}
	if width > 0 {
		opts = append(opts, glamour.WithWordWrap(width))
	}
	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", fmt.Errorf("create markdown renderer: %w", err)
	}
	out, err := r.Render(markdown)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return out, nil
}
