package ui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// SpinnerModel is a bubbletea model for showing progress on one task
type SpinnerModel struct {
	spinner  spinner.Model
	message  string
	finished bool
	success  bool
	result   string
}

// TaskFunc is a function that performs work and returns a success message
type TaskFunc func() (string, error)

// TaskCompleteMsg signals task completion
type TaskCompleteMsg struct {
	Success bool
	Message string
}

// NewSpinner creates a new spinner with a message
func NewSpinner(message string) SpinnerModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(ColorPrimary)

	return SpinnerModel{
		spinner: s,
		message: message,
	}
}

// Init implements tea.Model
func (m SpinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update implements tea.Model
func (m SpinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		}

	case TaskCompleteMsg:
		m.finished = true
		m.success = msg.Success
		m.result = msg.Message
		return m, tea.Quit

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View implements tea.Model
func (m SpinnerModel) View() string {
	if m.finished {
		if m.success {
			return "  " + RenderSuccess(m.result) + "\n"
		}
		return "  " + RenderError(m.result) + "\n"
	}
	return "  " + m.spinner.View() + " " + m.message + "\n"
}

// RunWithSpinner executes a task while showing a spinner. The task's error
// is rendered but also returned so callers can apply their own policy.
func RunWithSpinner(message string, task TaskFunc) error {
	model := NewSpinner(message)
	p := tea.NewProgram(model)

	var taskErr error
	go func() {
		result, err := task()
		if err != nil {
			taskErr = err
			p.Send(TaskCompleteMsg{Success: false, Message: err.Error()})
		} else {
			p.Send(TaskCompleteMsg{Success: true, Message: result})
		}
	}()

	if _, err := p.Run(); err != nil {
		return err
	}
	return taskErr
}
