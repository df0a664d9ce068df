// Package state holds the editable form state of the TUI.
package state

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/simple-todo/internal/todo"
	"github.com/hy4ri/simple-todo/internal/tui/document"
)

// Form field indexes for focus management.
const (
	FormFieldText = iota
	FormFieldPriority
	FormFieldSubmit
)

const formFieldCount = 3

// Form modes.
const (
	ModeCreate = "create"
	ModeEdit   = "edit"
)

// TaskForm is the state of the creation form or of the inline edit form.
type TaskForm struct {
	Mode   string // "create" or "edit"
	TaskID string // task being edited, empty in create mode

	Text       textarea.Model
	Priority   todo.Priority
	FocusIndex int

	defaultPriority todo.Priority
}

// NewTaskForm creates an empty creation form.
func NewTaskForm(defaultPriority todo.Priority) *TaskForm {
	if !defaultPriority.Valid() {
		defaultPriority = todo.PriorityHigh
	}
	f := &TaskForm{
		Mode:            ModeCreate,
		Text:            newTextArea("I want to..."),
		Priority:        defaultPriority,
		defaultPriority: defaultPriority,
	}
	f.Focus(FormFieldText)
	return f
}

// NewEditTaskForm creates an edit form seeded from an edit session.
func NewEditTaskForm(s todo.EditSession) *TaskForm {
	f := &TaskForm{
		Mode:            ModeEdit,
		TaskID:          s.TaskID,
		Text:            newTextArea(""),
		Priority:        s.Priority,
		defaultPriority: s.Priority,
	}
	f.Text.SetValue(s.Text)
	f.Focus(FormFieldText)
	return f
}

func newTextArea(placeholder string) textarea.Model {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.ShowLineNumbers = false
	ta.Prompt = ""
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.SetHeight(2)
	ta.SetWidth(50)
	// Enter submits the form; alt+enter breaks the line.
	ta.KeyMap.InsertNewline.SetKeys("alt+enter")
	return ta
}

// Update handles input for the form. It reports submit when the user asked
// to commit the form; validity is left to the caller.
func (f *TaskForm) Update(msg tea.Msg) (submit bool, cmd tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "tab":
			f.NextField()
			return false, nil
		case "shift+tab":
			f.PrevField()
			return false, nil
		case "enter":
			return true, nil
		}

		switch f.FocusIndex {
		case FormFieldPriority:
			switch msg.String() {
			case "1", "2", "3":
				f.Priority, _ = todo.ParsePriority(msg.String())
			case "h", "left", "k", "up":
				f.Priority = f.Priority.Prev()
			case "l", "right", "j", "down":
				f.Priority = f.Priority.Next()
			}
			return false, nil
		case FormFieldSubmit:
			if msg.String() == " " || msg.String() == "space" {
				return true, nil
			}
			return false, nil
		}
	}

	if f.FocusIndex != FormFieldText {
		return false, nil
	}
	f.Text, cmd = f.Text.Update(msg)
	return false, cmd
}

// NextField moves focus to the next field.
func (f *TaskForm) NextField() {
	f.Focus((f.FocusIndex + 1) % formFieldCount)
}

// PrevField moves focus to the previous field.
func (f *TaskForm) PrevField() {
	f.Focus((f.FocusIndex - 1 + formFieldCount) % formFieldCount)
}

// Focus moves focus to the field at index.
func (f *TaskForm) Focus(index int) {
	f.FocusIndex = index
	if index == FormFieldText {
		f.Text.Focus()
		return
	}
	f.Text.Blur()
}

// Blur removes focus from the text input. FocusIndex is kept so focus
// returns to the same field.
func (f *TaskForm) Blur() {
	f.Text.Blur()
}

// Value returns the raw text.
func (f *TaskForm) Value() string {
	return f.Text.Value()
}

// IsValid checks if the form is valid.
func (f *TaskForm) IsValid() bool {
	return strings.TrimSpace(f.Text.Value()) != ""
}

// Reset clears the text and restores the default priority.
func (f *TaskForm) Reset() {
	f.Text.Reset()
	f.Priority = f.defaultPriority
	f.Focus(FormFieldText)
}

// DocumentFocus maps the focused field to its document element.
func (f *TaskForm) DocumentFocus() document.Focus {
	if f.Mode == ModeEdit {
		switch f.FocusIndex {
		case FormFieldPriority:
			return document.FocusUpdatePriority
		case FormFieldSubmit:
			return document.FocusUpdateSubmit
		}
		return document.FocusUpdateText
	}
	switch f.FocusIndex {
	case FormFieldPriority:
		return document.FocusCreatePriority
	case FormFieldSubmit:
		return document.FocusCreateSubmit
	}
	return document.FocusCreateText
}

// SetWidth sets width of the text input.
func (f *TaskForm) SetWidth(width int) {
	if width < 20 {
		width = 20
	}
	f.Text.SetWidth(width)
}
