// ABOUTME: Unit tests for the datepage setup wizard bubbletea model
// ABOUTME: Uses synthetic tea.Msg values to test state machine transitions

package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func enter(t *testing.T, m SetupModel) SetupModel {
	t.Helper()
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return updated.(SetupModel)
}

func TestNewSetupModel_DefaultValues(t *testing.T) {
	m := NewSetupModel("", "")
	if m.step != StepUnit {
		t.Errorf("expected initial step StepUnit, got %d", m.step)
	}
	if m.inputs[0].Value() != "" || m.inputs[1].Value() != "" {
		t.Error("expected empty inputs for new config")
	}
}

func TestNewSetupModel_ExistingConfig(t *testing.T) {
	m := NewSetupModel("month", "monday")
	if m.inputs[0].Value() != "month" {
		t.Errorf("expected pre-filled unit, got %q", m.inputs[0].Value())
	}
	if m.inputs[1].Value() != "monday" {
		t.Errorf("expected pre-filled week start, got %q", m.inputs[1].Value())
	}
}

func TestSetupModel_Defaults(t *testing.T) {
	m := enter(t, NewSetupModel("", ""))
	if m.step != StepWeekStart {
		t.Fatalf("expected StepWeekStart after Enter, got %d", m.step)
	}
	if m.inputs[0].Value() != "week" {
		t.Errorf("expected default unit 'week', got %q", m.inputs[0].Value())
	}

	m = enter(t, m)
	if m.step != StepDone {
		t.Fatalf("expected StepDone, got %d", m.step)
	}
	unit, weekStart := m.Result()
	if unit != "week" || weekStart != "sunday" {
		t.Errorf("unexpected result %q %q", unit, weekStart)
	}
	if !m.ShouldSave() {
		t.Error("expected ShouldSave true after completing flow")
	}
}

func TestSetupModel_InvalidUnit(t *testing.T) {
	for _, bad := range []string{"fortnight", "weeks", "millisecond"} {
		m := NewSetupModel(bad, "")
		m = enter(t, m)
		if m.step != StepUnit {
			t.Errorf("%s: expected to stay on StepUnit, got %d", bad, m.step)
		}
		if m.err == "" {
			t.Errorf("%s: expected an error message", bad)
		}
	}
}

func TestSetupModel_NormalizesInput(t *testing.T) {
	m := NewSetupModel("  ISOWeek ", "MON")
	m = enter(t, enter(t, m))

	unit, weekStart := m.Result()
	if unit != "isoweek" {
		t.Errorf("expected lowercased unit, got %q", unit)
	}
	if weekStart != "monday" {
		t.Errorf("expected full weekday name, got %q", weekStart)
	}
}

func TestSetupModel_InvalidWeekStart(t *testing.T) {
	m := enter(t, NewSetupModel("day", "someday"))
	m = enter(t, m)
	if m.step != StepWeekStart {
		t.Errorf("expected to stay on StepWeekStart, got %d", m.step)
	}
	if !strings.Contains(m.View(), "weekday") {
		t.Error("expected view to show the weekday error")
	}
}

func TestSetupModel_QuitOnCtrlC(t *testing.T) {
	m := NewSetupModel("", "")
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	m = updated.(SetupModel)
	if cmd == nil {
		t.Error("expected quit cmd on ctrl+c")
	}
	if !m.quitting {
		t.Error("expected quitting to be true")
	}
	if m.ShouldSave() {
		t.Error("expected ShouldSave false after ctrl+c")
	}
}

func TestSetupModel_TypingGoesToActiveInput(t *testing.T) {
	m := NewSetupModel("", "")
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("day")})
	m = updated.(SetupModel)
	if m.inputs[0].Value() != "day" {
		t.Errorf("expected typed unit, got %q", m.inputs[0].Value())
	}
}

func TestSetupModel_ViewShowsCurrentStep(t *testing.T) {
	m := NewSetupModel("", "")
	if !strings.Contains(m.View(), "Page unit") {
		t.Error("expected StepUnit view to mention Page unit")
	}
	if !strings.Contains(m.View(), "isoweekyear") {
		t.Error("expected StepUnit view to list units")
	}

	m.step = StepWeekStart
	if !strings.Contains(m.View(), "First day of the week") {
		t.Error("expected StepWeekStart view to mention the week start")
	}

	m.step = StepDone
	if !strings.Contains(m.View(), "Setup complete") {
		t.Error("expected StepDone view to confirm completion")
	}
}
