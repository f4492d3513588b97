package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// ConfirmModel asks a single yes/no question. Every setup step is gated by
// one of these unless the run is fully automatic.
type ConfirmModel struct {
	Question  string
	Hint      string
	Default   bool
	cursor    int // 0 = Yes, 1 = No
	answered  bool
	accepted  bool
	cancelled bool
}

// NewConfirm creates a yes/no confirmation with the cursor on the default
func NewConfirm(question, hint string, defaultYes bool) ConfirmModel {
	cursor := 0
	if !defaultYes {
		cursor = 1
	}
	return ConfirmModel{
		Question: question,
		Hint:     hint,
		Default:  defaultYes,
		cursor:   cursor,
	}
}

// Init implements tea.Model
func (m ConfirmModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m ConfirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc", "q":
			m.cancelled = true
			return m, tea.Quit

		case "left", "h":
			if m.cursor > 0 {
				m.cursor--
			}

		case "right", "l":
			if m.cursor < 1 {
				m.cursor++
			}

		case "y", "Y":
			m.answered = true
			m.accepted = true
			return m, tea.Quit

		case "n", "N":
			m.answered = true
			m.accepted = false
			return m, tea.Quit

		case "enter":
			m.answered = true
			m.accepted = m.cursor == 0
			return m, tea.Quit
		}
	}

	return m, nil
}

// View implements tea.Model
func (m ConfirmModel) View() string {
	if m.answered || m.cancelled {
		return ""
	}

	var b strings.Builder

	var yesBtn, noBtn string
	if m.cursor == 0 {
		yesBtn = ButtonStyle.Render("[ Yes ]")
		noBtn = ButtonInactiveStyle.Render("[ No ]")
	} else {
		yesBtn = ButtonInactiveStyle.Render("[ Yes ]")
		noBtn = ButtonStyle.Render("[ No ]")
	}

	b.WriteString("\n")
	b.WriteString("  " + SelectedStyle.Render("?") + " " + m.Question + "  " + yesBtn + " " + noBtn + "\n")

	if m.Hint != "" {
		b.WriteString("    " + DimStyle.Render(m.Hint) + "\n")
	}

	b.WriteString("    " + DimStyle.Render("←/→ select · y/n · enter confirm") + "\n")

	return b.String()
}

// IsAccepted returns true if the user answered yes
func (m ConfirmModel) IsAccepted() bool {
	return m.accepted
}

// IsCancelled returns true if the user aborted without answering
func (m ConfirmModel) IsCancelled() bool {
	return m.cancelled
}

// RunConfirm asks the question interactively and returns the answer
func RunConfirm(question, hint string, defaultYes bool) (bool, error) {
	model := NewConfirm(question, hint, defaultYes)
	p := tea.NewProgram(model)

	finalModel, err := p.Run()
	if err != nil {
		return false, fmt.Errorf("confirm error: %w", err)
	}

	result := finalModel.(ConfirmModel)
	if result.IsCancelled() {
		return false, ErrUserCancelled
	}
	return result.IsAccepted(), nil
}

// SimpleConfirm asks a y/n question on one line (non-TUI fallback)
func SimpleConfirm(question string, defaultYes bool) bool {
	suffix := "[Y/n]"
	if !defaultYes {
		suffix = "[y/N]"
	}
	fmt.Printf("  %s %s: ", question, suffix)

	var input string
	fmt.Scanln(&input)
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" {
		return defaultYes
	}
	return input == "y" || input == "yes"
}
