package ui

import (
	"bytes"
	"os"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestNewPrompt(t *testing.T) {
	model := NewPrompt("Migration name", "Used for the first migration directory", "init")

	if model.Title != "Migration name" {
		t.Errorf("Expected title 'Migration name', got %s", model.Title)
	}

	if model.Description != "Used for the first migration directory" {
		t.Errorf("Expected description, got %s", model.Description)
	}

	if model.Default != "init" {
		t.Errorf("Expected default 'init', got %s", model.Default)
	}

	if model.finished {
		t.Error("Should not be finished initially")
	}

	if model.cancelled {
		t.Error("Should not be cancelled initially")
	}
}

func TestPromptModel_Init(t *testing.T) {
	model := NewPrompt("Test", "", "init")
	cmd := model.Init()

	// Init should return textinput.Blink command
	if cmd == nil {
		t.Error("Init should return a command for text input blinking")
	}
}

func TestPromptModel_Update_Enter(t *testing.T) {
	model := NewPrompt("Migration name", "", "init")

	// Simulate typing
	model.textInput.SetValue("add-posts")

	// Press enter
	newModel, cmd := model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	model = newModel.(PromptModel)

	if !model.finished {
		t.Error("Should be finished after enter")
	}

	if model.value != "add-posts" {
		t.Errorf("Value should be 'add-posts', got %s", model.value)
	}

	if cmd == nil {
		t.Error("Should return quit command")
	}
}

func TestPromptModel_Update_EnterWithDefault(t *testing.T) {
	model := NewPrompt("Migration name", "", "init")

	// Press enter without typing (use default)
	newModel, _ := model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	model = newModel.(PromptModel)

	if model.value != "init" {
		t.Errorf("Value should be 'init', got %s", model.value)
	}
}

func TestPromptModel_Update_CtrlC(t *testing.T) {
	model := NewPrompt("Test", "", "init")

	newModel, cmd := model.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	model = newModel.(PromptModel)

	if !model.cancelled {
		t.Error("Should be cancelled after ctrl+c")
	}

	if cmd == nil {
		t.Error("ctrl+c should return quit command")
	}
}

func TestPromptModel_Update_Esc(t *testing.T) {
	model := NewPrompt("Test", "", "init")

	newModel, cmd := model.Update(tea.KeyMsg{Type: tea.KeyEsc})
	model = newModel.(PromptModel)

	if !model.cancelled {
		t.Error("Should be cancelled after esc")
	}

	if cmd == nil {
		t.Error("esc should return quit command")
	}
}

func TestPromptModel_View(t *testing.T) {
	model := NewPrompt("Database URL", "Connection string written to .env", "file:./dev.db")
	view := model.View()

	// Should contain title
	if !strings.Contains(view, "Database URL") {
		t.Error("View should contain title")
	}

	// Should contain description
	if !strings.Contains(view, "Connection string written to .env") {
		t.Error("View should contain description")
	}

	// Should contain default hint
	if !strings.Contains(view, "file:./dev.db") {
		t.Error("View should contain default value hint")
	}

	// When finished, view should be empty
	model.finished = true
	view = model.View()
	if view != "" {
		t.Error("View should be empty when finished")
	}

	// Same when cancelled
	model.finished = false
	model.cancelled = true
	view = model.View()
	if view != "" {
		t.Error("View should be empty when cancelled")
	}
}

func TestPromptModel_View_NoDescription(t *testing.T) {
	model := NewPrompt("Migration name", "", "init")
	view := model.View()

	// Should still work without description
	if !strings.Contains(view, "Migration name") {
		t.Error("View should contain title")
	}
}

func TestPromptModel_Value(t *testing.T) {
	model := NewPrompt("Test", "", "init")

	// Without setting value, should return default
	if model.Value() != "init" {
		t.Errorf("Expected default value, got %s", model.Value())
	}

	// After setting value
	model.value = "add-posts"
	if model.Value() != "add-posts" {
		t.Errorf("Expected 'add-posts', got %s", model.Value())
	}

	// Empty value should return default
	model.value = ""
	if model.Value() != "init" {
		t.Errorf("Empty value should return default, got %s", model.Value())
	}
}

func TestPromptModel_IsFinished(t *testing.T) {
	model := NewPrompt("Test", "", "init")

	if model.IsFinished() {
		t.Error("Should not be finished initially")
	}

	model.finished = true
	if !model.IsFinished() {
		t.Error("Should be finished after setting flag")
	}
}

func TestPromptModel_IsCancelled(t *testing.T) {
	model := NewPrompt("Test", "", "init")

	if model.IsCancelled() {
		t.Error("Should not be cancelled initially")
	}

	model.cancelled = true
	if !model.IsCancelled() {
		t.Error("Should be cancelled after setting flag")
	}
}

func TestSimplePrompt(t *testing.T) {
	// Save original stdin
	oldStdin := os.Stdin

	// Create a pipe for stdin
	r, w, _ := os.Pipe()
	os.Stdin = r

	// Write input to pipe
	w.WriteString("add-posts\n")
	w.Close()

	// Capture stdout
	oldStdout := os.Stdout
	rOut, wOut, _ := os.Pipe()
	os.Stdout = wOut

	result := SimplePrompt("Migration name", "init")

	wOut.Close()
	os.Stdout = oldStdout
	os.Stdin = oldStdin

	// Read captured output
	var buf bytes.Buffer
	buf.ReadFrom(rOut)

	if result != "add-posts" {
		t.Errorf("Expected 'add-posts', got %s", result)
	}
}

func TestSimplePrompt_Empty(t *testing.T) {
	// Save original stdin
	oldStdin := os.Stdin

	// Create a pipe for stdin
	r, w, _ := os.Pipe()
	os.Stdin = r

	// Write empty input (just newline)
	w.WriteString("\n")
	w.Close()

	// Capture stdout
	oldStdout := os.Stdout
	_, wOut, _ := os.Pipe()
	os.Stdout = wOut

	result := SimplePrompt("Migration name", "init")

	wOut.Close()
	os.Stdout = oldStdout
	os.Stdin = oldStdin

	if result != "init" {
		t.Errorf("Expected 'init', got %s", result)
	}
}
