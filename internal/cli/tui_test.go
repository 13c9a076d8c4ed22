package cli

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestTUIModel_CursorMovement(t *testing.T) {
	m := newTUIModel(NewContext(), "bind9")

	updated, _ := m.Update(keyMsg("down"))
	m = updated.(tuiModel)
	if m.cursor != 1 {
		t.Errorf("cursor = %d after down, want 1", m.cursor)
	}

	updated, _ = m.Update(keyMsg("up"))
	m = updated.(tuiModel)
	if m.cursor != 0 {
		t.Errorf("cursor = %d after up, want 0", m.cursor)
	}

	// Does not move past either end.
	updated, _ = m.Update(keyMsg("up"))
	m = updated.(tuiModel)
	if m.cursor != 0 {
		t.Errorf("cursor = %d, want 0", m.cursor)
	}
	for i := 0; i < len(tuiSteps)+3; i++ {
		updated, _ = m.Update(keyMsg("down"))
		m = updated.(tuiModel)
	}
	if m.cursor != len(tuiSteps)-1 {
		t.Errorf("cursor = %d, want %d", m.cursor, len(tuiSteps)-1)
	}
}

func TestTUIModel_EnterRunsStep(t *testing.T) {
	m := newTUIModel(NewContext(), "bind9")

	updated, cmd := m.Update(keyMsg("enter"))
	m = updated.(tuiModel)
	if !m.running {
		t.Error("model should be running after enter")
	}
	if cmd == nil {
		t.Fatal("enter should produce a command")
	}

	// Keys are ignored while a step runs.
	updated, _ = m.Update(keyMsg("down"))
	m = updated.(tuiModel)
	if m.cursor != 0 {
		t.Errorf("cursor moved while running, cursor = %d", m.cursor)
	}
}

func TestTUIModel_StepDone(t *testing.T) {
	m := newTUIModel(NewContext(), "bind9")
	m.running = true

	updated, _ := m.Update(stepDoneMsg{step: StepInstall, err: nil})
	m = updated.(tuiModel)
	if m.running {
		t.Error("model still running after stepDoneMsg")
	}
	if m.failed || !strings.Contains(m.status, "completed") {
		t.Errorf("status = %q, failed = %v", m.status, m.failed)
	}

	m.running = true
	updated, _ = m.Update(stepDoneMsg{step: StepConfigure, err: errors.New("boom")})
	m = updated.(tuiModel)
	if !m.failed || !strings.Contains(m.status, "boom") {
		t.Errorf("status = %q, failed = %v", m.status, m.failed)
	}
}

func TestTUIModel_View(t *testing.T) {
	m := newTUIModel(NewContext(), "pdns4")
	view := m.View()
	if !strings.Contains(view, "pdns4") {
		t.Error("view should show the backend name")
	}
	for _, step := range tuiSteps {
		if !strings.Contains(view, step.label) {
			t.Errorf("view missing step %q", step.label)
		}
	}
}
