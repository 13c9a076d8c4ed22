package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// The default invocation with no subcommand opens a small menu to run
// lifecycle steps interactively.

type tuiStep struct {
	name  string
	label string
}

var tuiSteps = []tuiStep{
	{StepInstall, "Install backend packages"},
	{StepConfigure, "Configure and restart"},
	{StepInit, "Initialize database"},
	{StepStart, "Start service"},
	{StepStop, "Stop service"},
	{StepCleanup, "Cleanup generated files"},
	{"apply", "Apply full lifecycle"},
}

type stepDoneMsg struct {
	step string
	err  error
}

type tuiModel struct {
	cliCtx  *Context
	backend string
	cursor  int
	running bool
	status  string
	failed  bool
}

func newTUIModel(cliCtx *Context, backend string) tuiModel {
	return tuiModel{cliCtx: cliCtx, backend: backend}
}

func (m tuiModel) Init() tea.Cmd {
	return nil
}

func (m tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.running {
			return m, nil
		}
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(tuiSteps)-1 {
				m.cursor++
			}
		case "enter", " ":
			step := tuiSteps[m.cursor]
			m.running = true
			m.failed = false
			m.status = fmt.Sprintf("Running %s...", step.name)
			return m, runStepCmd(m.cliCtx, step.name)
		}
	case stepDoneMsg:
		m.running = false
		if msg.err != nil {
			m.failed = true
			m.status = fmt.Sprintf("%s failed: %v", msg.step, msg.err)
		} else {
			m.status = fmt.Sprintf("%s completed", msg.step)
		}
	}
	return m, nil
}

func (m tuiModel) View() string {
	var b strings.Builder

	b.WriteString(tuiTitleStyle.Render("backendctl · "+m.backend) + "\n\n")

	for i, step := range tuiSteps {
		if i == m.cursor {
			b.WriteString(tuiSelectedStyle.Render("› "+step.label) + "\n")
		} else {
			b.WriteString(tuiItemStyle.Render(step.label) + "\n")
		}
	}

	b.WriteString("\n")
	if m.status != "" {
		if m.failed {
			b.WriteString(tuiErrStyle.Render(m.status) + "\n")
		} else {
			b.WriteString(tuiOKStyle.Render(m.status) + "\n")
		}
	}
	b.WriteString(tuiHelpStyle.Render("↑/↓ select · enter run · q quit") + "\n")

	return b.String()
}

func runStepCmd(cliCtx *Context, step string) tea.Cmd {
	return func() tea.Msg {
		wf, err := NewWorkflow(cliCtx)
		if err != nil {
			return stepDoneMsg{step: step, err: err}
		}
		defer wf.Close()

		if step == "apply" {
			return stepDoneMsg{step: step, err: wf.RunSteps(context.Background(), ApplySequence)}
		}
		return stepDoneMsg{step: step, err: wf.RunStep(context.Background(), step)}
	}
}

func runTUI(cliCtx *Context) error {
	// Resolve the backend label up front so the menu shows what a run
	// would act on, and config errors surface before the screen opens.
	wf, err := NewWorkflow(cliCtx)
	if err != nil {
		return err
	}
	backend := wf.Config.Backend
	wf.Close()

	_, err = tea.NewProgram(newTUIModel(cliCtx, backend)).Run()
	return err
}
