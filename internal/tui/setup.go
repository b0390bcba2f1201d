// ABOUTME: Interactive wizard for choosing the default page unit and week start
// ABOUTME: Two-step bubbletea model whose answers are written to config.toml

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/harper/datepage/internal/calendar"
	"github.com/harper/datepage/internal/config"
)

// Step represents the current wizard step.
type Step int

const (
	StepUnit Step = iota
	StepWeekStart
	StepDone
)

// SetupModel is the bubbletea model for the setup wizard.
type SetupModel struct {
	step     Step
	inputs   [2]textinput.Model
	err      string
	quitting bool
}

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))
	stepStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
)

// NewSetupModel creates the wizard, pre-filled with existing config values.
func NewSetupModel(unit, weekStart string) SetupModel {
	unitInput := textinput.New()
	unitInput.Placeholder = config.DefaultUnit
	unitInput.Focus()
	unitInput.Width = 20
	if unit != "" {
		unitInput.SetValue(unit)
	}

	weekInput := textinput.New()
	weekInput.Placeholder = strings.ToLower(calendar.DefaultWeekStart.String())
	weekInput.Width = 20
	if weekStart != "" {
		weekInput.SetValue(weekStart)
	}

	return SetupModel{
		step:   StepUnit,
		inputs: [2]textinput.Model{unitInput, weekInput},
	}
}

// Init implements tea.Model.
func (m SetupModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m SetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.step == StepDone {
		return m, nil
	}
	idx := int(m.step)

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEscape:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			return m.handleEnter()
		}
	}

	var cmd tea.Cmd
	m.inputs[idx], cmd = m.inputs[idx].Update(msg)
	return m, cmd
}

func (m SetupModel) handleEnter() (tea.Model, tea.Cmd) {
	idx := int(m.step)
	val := strings.ToLower(strings.TrimSpace(m.inputs[idx].Value()))

	switch m.step {
	case StepUnit:
		if val == "" {
			val = config.DefaultUnit
		}
		u, err := calendar.ParseUnit(val)
		if err == nil && !u.Bounded() {
			err = fmt.Errorf("%w: cannot page by %s", calendar.ErrUnsupportedUnit, u)
		}
		if err != nil {
			m.err = err.Error()
			return m, nil
		}
	case StepWeekStart:
		if val == "" {
			val = strings.ToLower(calendar.DefaultWeekStart.String())
		}
		day, err := config.ParseWeekday(val)
		if err != nil {
			m.err = err.Error()
			return m, nil
		}
		val = strings.ToLower(day.String())
	}

	m.err = ""
	m.inputs[idx].SetValue(val)
	m.inputs[idx].Blur()

	if m.step == StepUnit {
		m.step = StepWeekStart
		m.inputs[1].Focus()
		return m, textinput.Blink
	}
	m.step = StepDone
	return m, tea.Quit
}

// View implements tea.Model.
func (m SetupModel) View() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(titleStyle.Render(" datepage setup"))
	b.WriteString("\n\n")

	switch m.step {
	case StepUnit:
		b.WriteString(stepStyle.Render(fmt.Sprintf("Step 1 of 2: Page unit (%s)", unitList())))
		b.WriteString("\n")
		b.WriteString(m.inputs[0].View())
		b.WriteString("\n")
	case StepWeekStart:
		fmt.Fprintf(&b, "  Unit: %s\n\n", m.inputs[0].Value())
		b.WriteString(stepStyle.Render("Step 2 of 2: First day of the week"))
		b.WriteString("\n")
		b.WriteString(m.inputs[1].View())
		b.WriteString("\n")
	case StepDone:
		b.WriteString(successStyle.Render("Setup complete!"))
		b.WriteString("\n\n")
		fmt.Fprintf(&b, "  Unit:       %s\n", m.inputs[0].Value())
		fmt.Fprintf(&b, "  Week start: %s\n", m.inputs[1].Value())
	}

	if m.err != "" {
		b.WriteString(errorStyle.Render(m.err))
		b.WriteString("\n")
	}
	return b.String()
}

func unitList() string {
	var names []string
	for _, u := range calendar.Units() {
		if u.Bounded() {
			names = append(names, u.String())
		}
	}
	return strings.Join(names, ", ")
}

// Result returns the entered values.
func (m SetupModel) Result() (unit, weekStart string) {
	return m.inputs[0].Value(), m.inputs[1].Value()
}

// ShouldSave returns true if the wizard completed and the user did not cancel.
func (m SetupModel) ShouldSave() bool {
	return m.step == StepDone && !m.quitting
}
