// ABOUTME: Interactive bubbletea pager over a paginate.Pager
// ABOUTME: Renders the current page as a day grid, month list or year list

package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/harper/datepage/internal/calendar"
	"github.com/harper/datepage/internal/config"
	"github.com/harper/datepage/internal/paginate"
)

// cycleUnits is the order the unit key steps through.
var cycleUnits = []calendar.Unit{
	calendar.Day,
	calendar.Week,
	calendar.ISOWeek,
	calendar.Month,
	calendar.Quarter,
	calendar.Year,
	calendar.ISOWeekYear,
	calendar.Decade,
}

const (
	gridMaxDays   = 42
	monthMaxDays  = 366
	maxMultiplier = 99
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	rangeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("99"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	todayStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("82"))
	refStyle    = lipgloss.NewStyle().Reverse(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// PagerModel is the bubbletea model for browsing pages.
type PagerModel struct {
	pager     *paginate.Pager
	weekStart time.Weekday
	clock     func() time.Time
	keys      keyMap
	help      help.Model
	input     textinput.Model
	entering  bool
	err       error
	quitting  bool
}

// NewPagerModel wraps p. A nil clock means time.Now.
func NewPagerModel(p *paginate.Pager, weekStart time.Weekday, clock func() time.Time) PagerModel {
	if clock == nil {
		clock = time.Now
	}
	input := textinput.New()
	input.Placeholder = config.DateLayout
	input.CharLimit = 10
	input.Width = 12

	return PagerModel{
		pager:     p,
		weekStart: weekStart,
		clock:     clock,
		keys:      defaultKeyMap(),
		help:      help.New(),
		input:     input,
	}
}

// Init implements tea.Model.
func (m PagerModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m PagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if m.entering {
			return m.updateInput(msg)
		}
		return m.handleKey(msg)
	default:
		if m.entering {
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

func (m PagerModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var err error

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Prev):
		err = m.pager.Sub(0, "")
	case key.Matches(msg, m.keys.Next):
		err = m.pager.Add(0, "")
	case key.Matches(msg, m.keys.Today):
		err = m.pager.SetDate(m.clock())
	case key.Matches(msg, m.keys.Unit):
		err = m.pager.SetUnit(nextUnit(m.pager.Unit()).String())
	case key.Matches(msg, m.keys.More):
		if n := m.pager.Multiplier(); n < maxMultiplier {
			err = m.pager.SetMultiplier(n + 1)
		}
	case key.Matches(msg, m.keys.Less):
		if n := m.pager.Multiplier(); n > 1 {
			err = m.pager.SetMultiplier(n - 1)
		}
	case key.Matches(msg, m.keys.Direction):
		d := paginate.Forward
		if m.pager.Direction() == paginate.Forward {
			d = paginate.Back
		}
		err = m.pager.SetDirection(d)
	case key.Matches(msg, m.keys.Goto):
		m.entering = true
		m.input.SetValue(m.pager.Date().Format(config.DateLayout))
		m.input.CursorEnd()
		m.err = nil
		return m, m.input.Focus()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	default:
		return m, nil
	}

	m.err = err
	return m, nil
}

func (m PagerModel) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc, tea.KeyCtrlC:
		m.entering = false
		m.input.Blur()
		return m, nil
	case tea.KeyEnter:
		value := strings.TrimSpace(m.input.Value())
		if value == "" {
			m.entering = false
			m.input.Blur()
			return m, nil
		}
		if err := m.pager.Props().DateInput.Set(value); err != nil {
			m.err = err
			return m, nil
		}
		m.err = nil
		m.entering = false
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func nextUnit(u calendar.Unit) calendar.Unit {
	for i, c := range cycleUnits {
		if c == u {
			return cycleUnits[(i+1)%len(cycleUnits)]
		}
	}
	return cycleUnits[0]
}

// View implements tea.Model.
func (m PagerModel) View() string {
	if m.quitting {
		return ""
	}

	props := m.pager.Props()
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(headerStyle.Render(" " + m.pager.State().String()))
	if props.IsCurrentInterval {
		b.WriteString(todayStyle.Render("  (current)"))
	}
	b.WriteString("\n ")
	b.WriteString(rangeStyle.Render(fmt.Sprintf("%s → %s",
		props.StartDate.Format(config.DateTimeLayout),
		props.EndDate.Format(config.DateTimeLayout))))
	b.WriteString("\n\n")

	days := props.EachDay
	switch {
	case len(days) <= gridMaxDays:
		b.WriteString(m.renderGrid(days, props.Date))
	case len(days) <= monthMaxDays:
		b.WriteString(renderMonths(days))
	default:
		b.WriteString(renderYears(days))
	}
	b.WriteString("\n")

	if m.entering {
		b.WriteString(" Go to date: ")
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}
	if m.err != nil {
		b.WriteString(errorStyle.Render(" " + m.err.Error()))
		b.WriteString("\n")
	}
	b.WriteString(" ")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")

	return b.String()
}

// renderGrid lays days out in week rows starting on the configured weekday.
func (m PagerModel) renderGrid(days []time.Time, ref time.Time) string {
	var b strings.Builder

	b.WriteString(" ")
	for i := 0; i < 7; i++ {
		wd := time.Weekday((int(m.weekStart) + i) % 7)
		b.WriteString(mutedStyle.Render(fmt.Sprintf("%-4s", wd.String()[:3])))
	}
	b.WriteString("\n")
	if len(days) == 0 {
		return b.String()
	}

	today := m.clock().In(days[0].Location())
	offset := (int(days[0].Weekday()) - int(m.weekStart) + 7) % 7

	b.WriteString(" ")
	b.WriteString(strings.Repeat("    ", offset))
	col := offset
	for _, day := range days {
		cell := fmt.Sprintf("%2d", day.Day())
		switch {
		case sameDay(day, ref):
			cell = refStyle.Render(cell)
		case sameDay(day, today):
			cell = todayStyle.Render(cell)
		}
		b.WriteString(cell + "  ")
		col++
		if col == 7 {
			b.WriteString("\n ")
			col = 0
		}
	}
	if col != 0 {
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), " ")
}

// renderMonths lists each month touched by days with its day count.
func renderMonths(days []time.Time) string {
	var b strings.Builder
	for i := 0; i < len(days); {
		y, mo, _ := days[i].Date()
		j := i
		for j < len(days) && days[j].Month() == mo && days[j].Year() == y {
			j++
		}
		fmt.Fprintf(&b, " %-14s %s\n", days[i].Format("January 2006"), mutedStyle.Render(fmt.Sprintf("%d days", j-i)))
		i = j
	}
	return b.String()
}

// renderYears lists each year touched by days with its day count.
func renderYears(days []time.Time) string {
	var b strings.Builder
	for i := 0; i < len(days); {
		y := days[i].Year()
		j := i
		for j < len(days) && days[j].Year() == y {
			j++
		}
		fmt.Fprintf(&b, " %-6d %s\n", y, mutedStyle.Render(fmt.Sprintf("%d days", j-i)))
		i = j
	}
	return b.String()
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.In(a.Location()).Date()
	return ay == by && am == bm && ad == bd
}

// Pager returns the wrapped pager.
func (m PagerModel) Pager() *paginate.Pager {
	return m.pager
}
