package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestNewCheckbox(t *testing.T) {
	items := []CheckboxItem{
		{Label: "Client accessor", Value: "accessor", Checked: true},
		{Label: "Devtools module", Value: "devtools", Checked: false},
	}

	model := NewCheckbox("Select artifacts to remove", items)

	if model.Title != "Select artifacts to remove" {
		t.Errorf("Expected title to be set, got %s", model.Title)
	}

	if len(model.Items) != 2 {
		t.Errorf("Expected 2 items, got %d", len(model.Items))
	}

	if model.cursor != 0 {
		t.Errorf("Expected cursor at 0, got %d", model.cursor)
	}

	if model.finished {
		t.Error("Should not be finished initially")
	}
}

func TestCheckboxModel_Init(t *testing.T) {
	model := NewCheckbox("Test", []CheckboxItem{})
	cmd := model.Init()

	if cmd != nil {
		t.Error("Init should return nil")
	}
}

func TestCheckboxModel_Update(t *testing.T) {
	items := []CheckboxItem{
		{Label: "Client accessor", Value: "accessor", Checked: false},
		{Label: "Devtools module", Value: "devtools", Checked: false},
		{Label: "prisma directory", Value: "prisma-dir", Checked: false, Disabled: true},
	}

	model := NewCheckbox("Test", items)

	// Test down navigation
	newModel, _ := model.Update(tea.KeyMsg{Type: tea.KeyDown})
	model = newModel.(CheckboxModel)
	if model.cursor != 1 {
		t.Errorf("After down, cursor should be 1, got %d", model.cursor)
	}

	// Test up navigation
	newModel, _ = model.Update(tea.KeyMsg{Type: tea.KeyUp})
	model = newModel.(CheckboxModel)
	if model.cursor != 0 {
		t.Errorf("After up, cursor should be 0, got %d", model.cursor)
	}

	// Test space to toggle
	newModel, _ = model.Update(tea.KeyMsg{Type: tea.KeySpace})
	model = newModel.(CheckboxModel)
	if !model.Items[0].Checked {
		t.Error("Item should be checked after space")
	}

	// Toggle again
	newModel, _ = model.Update(tea.KeyMsg{Type: tea.KeySpace})
	model = newModel.(CheckboxModel)
	if model.Items[0].Checked {
		t.Error("Item should be unchecked after second space")
	}

	// Test j/k navigation
	newModel, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	model = newModel.(CheckboxModel)
	if model.cursor != 1 {
		t.Errorf("After j, cursor should be 1, got %d", model.cursor)
	}

	newModel, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	model = newModel.(CheckboxModel)
	if model.cursor != 0 {
		t.Errorf("After k, cursor should be 0, got %d", model.cursor)
	}
}

func TestCheckboxModel_Update_Disabled(t *testing.T) {
	items := []CheckboxItem{
		{Label: "Locked", Value: "locked", Checked: false, Disabled: true},
	}

	model := NewCheckbox("Test", items)

	// Space on disabled item should not toggle
	newModel, _ := model.Update(tea.KeyMsg{Type: tea.KeySpace})
	model = newModel.(CheckboxModel)
	if model.Items[0].Checked {
		t.Error("Disabled item should not be toggled")
	}
}

func TestCheckboxModel_Update_Confirm(t *testing.T) {
	items := []CheckboxItem{
		{Label: "Client accessor", Value: "accessor", Checked: true},
	}

	model := NewCheckbox("Test", items)

	// Move to confirm button (index = len(items))
	model.cursor = len(items)

	// Press enter on confirm
	newModel, cmd := model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	model = newModel.(CheckboxModel)

	if !model.finished {
		t.Error("Should be finished after enter on confirm")
	}

	if cmd == nil {
		t.Error("Should return quit command")
	}
}

func TestCheckboxModel_Update_Cancel(t *testing.T) {
	items := []CheckboxItem{
		{Label: "Client accessor", Value: "accessor", Checked: true},
	}

	model := NewCheckbox("Test", items)

	newModel, cmd := model.Update(tea.KeyMsg{Type: tea.KeyEsc})
	model = newModel.(CheckboxModel)

	if !model.IsCancelled() {
		t.Error("Should be cancelled after esc")
	}

	if cmd == nil {
		t.Error("Should return quit command")
	}
}

func TestCheckboxModel_View(t *testing.T) {
	items := []CheckboxItem{
		{Label: "Client accessor", Value: "accessor", Checked: true, Hint: "lib/prisma.ts"},
		{Label: "Devtools module", Value: "devtools", Checked: false},
	}

	model := NewCheckbox("Select artifacts", items)
	view := model.View()

	if !strings.Contains(view, "Select artifacts") {
		t.Error("View should contain title")
	}

	if !strings.Contains(view, "Client accessor") {
		t.Error("View should contain first item")
	}

	if !strings.Contains(view, "Devtools module") {
		t.Error("View should contain second item")
	}

	if !strings.Contains(view, "Confirm") {
		t.Error("View should contain Confirm button")
	}

	// When finished, view should be empty
	model.finished = true
	view = model.View()
	if view != "" {
		t.Error("View should be empty when finished")
	}
}

func TestCheckboxModel_Selected(t *testing.T) {
	items := []CheckboxItem{
		{Label: "Client accessor", Value: "accessor", Checked: true},
		{Label: "Devtools module", Value: "devtools", Checked: false},
		{Label: "prisma directory", Value: "prisma-dir", Checked: true},
	}

	model := NewCheckbox("Test", items)
	selected := model.Selected()

	if len(selected) != 2 {
		t.Errorf("Expected 2 selected, got %d", len(selected))
	}

	expectedValues := map[string]bool{"accessor": true, "prisma-dir": true}
	for _, v := range selected {
		if !expectedValues[v] {
			t.Errorf("Unexpected selected value: %s", v)
		}
	}
}

func TestCheckboxModel_SelectedString(t *testing.T) {
	items := []CheckboxItem{
		{Label: "Client accessor", Value: "accessor", Checked: true},
		{Label: "Devtools module", Value: "devtools", Checked: true},
	}

	model := NewCheckbox("Test", items)
	str := model.SelectedString()

	if str != "accessor devtools" {
		t.Errorf("Expected 'accessor devtools', got %s", str)
	}
}

func TestCheckboxModel_IsFinished(t *testing.T) {
	model := NewCheckbox("Test", []CheckboxItem{})

	if model.IsFinished() {
		t.Error("Should not be finished initially")
	}

	model.finished = true
	if !model.IsFinished() {
		t.Error("Should be finished after setting flag")
	}
}
