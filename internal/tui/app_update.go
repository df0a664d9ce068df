package tui

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hy4ri/simple-todo/internal/todo"
	"github.com/hy4ri/simple-todo/internal/tui/components"
	"github.com/hy4ri/simple-todo/internal/tui/state"
)

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.renderer.SetSize(msg.Width, msg.Height)
		a.helpComp.SetSize(msg.Width, msg.Height)
		a.form.SetWidth(a.inputWidth())
		if a.edit != nil {
			a.edit.SetWidth(a.inputWidth())
		}
		return a, nil

	case statusMsg:
		a.setStatus(msg.msg, msg.err)
		return a, nil

	case components.CloseHelpMsg:
		a.showHelp = false
		return a, nil
	}

	return a, nil
}

func (a *App) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}

	if a.showHelp {
		_, cmd := a.helpComp.Update(msg)
		return a, cmd
	}

	switch {
	case a.edit != nil:
		return a.handleEditKey(msg)
	case a.focusedPane == PaneForm:
		return a.handleFormKey(msg)
	default:
		return a.handleListKey(msg)
	}
}

// handleFormKey handles keys while the creation form is focused.
func (a *App) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == a.keymap.Back.Key {
		a.focusList()
		return a, nil
	}

	submit, cmd := a.form.Update(msg)
	if submit {
		a.submitCreate()
	}
	return a, cmd
}

// submitCreate adds a task from the creation form.
func (a *App) submitCreate() {
	if !a.form.IsValid() {
		a.logger.Debug("create rejected", "reason", "blank text")
		a.setStatus("Describe the task first", true)
		return
	}

	task, err := a.store.Add(a.form.Value(), a.form.Priority)
	if err != nil {
		a.logger.Debug("create rejected", "err", err)
		a.setStatus(describeError(err), true)
		return
	}

	a.logger.Debug("task added", "id", task.ID, "priority", task.Priority)
	a.form.Reset()
	a.cursor = a.store.Len() - 1
	a.setStatus("Task added", false)
}

// handleEditKey handles keys while a row is in edit mode.
func (a *App) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == a.keymap.Back.Key {
		a.store.CancelEdit()
		a.logger.Debug("edit cancelled", "id", a.edit.TaskID)
		a.edit = nil
		a.setStatus("Edit cancelled", false)
		return a, nil
	}

	submit, cmd := a.edit.Update(msg)
	if err := a.store.UpdateDraft(a.edit.Value(), a.edit.Priority); err != nil {
		a.logger.Debug("draft update rejected", "err", err)
		a.syncEdit()
		return a, cmd
	}
	if submit {
		a.saveEdit()
	}
	return a, cmd
}

// saveEdit commits the edit form to the store.
func (a *App) saveEdit() {
	id := a.edit.TaskID
	err := a.store.SaveEdit(id, a.edit.Value(), a.edit.Priority)
	switch {
	case errors.Is(err, todo.ErrEmptyText):
		// keep the session open so the user can fix the text
		a.logger.Debug("save rejected", "id", id, "err", err)
		a.setStatus(describeError(err), true)
		return
	case err != nil:
		a.logger.Debug("save rejected", "id", id, "err", err)
		a.setStatus(describeError(err), true)
		a.store.CancelEdit()
	default:
		a.logger.Debug("task saved", "id", id, "priority", a.edit.Priority)
		a.setStatus("Task saved", false)
	}
	a.edit = nil
	a.focusList()
}

// handleListKey handles keys while the task list is focused.
func (a *App) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, ok := a.keyState.HandleKey(msg, a.keymap, a.config.UI.VimMode)
	if !ok || action == "" {
		return a, nil
	}

	switch action {
	case "up":
		a.moveCursor(-1)
	case "down":
		a.moveCursor(1)
	case "top":
		a.cursor = 0
	case "bottom":
		a.cursor = max(a.store.Len()-1, 0)
	case "quit":
		return a, tea.Quit
	case "help":
		a.showHelp = true
	case "focus_form":
		a.focusedPane = PaneForm
		a.form.Focus(a.form.FocusIndex)
	case "edit":
		a.beginEdit()
	case "complete":
		return a, a.toggleSelected()
	case "delete":
		a.deleteSelected()
	case "copy":
		return a, a.copySelected()
	}
	return a, nil
}

func (a *App) beginEdit() {
	task, ok := a.store.At(a.cursor)
	if !ok {
		return
	}
	session, err := a.store.BeginEdit(task.ID)
	if err != nil {
		a.logger.Debug("edit rejected", "id", task.ID, "err", err)
		return
	}
	a.edit = state.NewEditTaskForm(session)
	a.edit.SetWidth(a.inputWidth())
	a.logger.Debug("edit started", "id", task.ID)
}

func (a *App) toggleSelected() tea.Cmd {
	task, ok := a.store.At(a.cursor)
	if !ok {
		return nil
	}
	if err := a.store.Toggle(task.ID); err != nil {
		a.logger.Debug("toggle rejected", "id", task.ID, "err", err)
		return nil
	}

	task, _ = a.store.Get(task.ID)
	a.logger.Debug("task toggled", "id", task.ID, "completed", task.Completed)
	if task.Completed && a.config.Notifications.OnComplete {
		return a.notifyCmd(task.Text)
	}
	return nil
}

func (a *App) deleteSelected() {
	task, ok := a.store.At(a.cursor)
	if !ok {
		return
	}
	if err := a.store.Delete(task.ID); err != nil {
		a.logger.Debug("delete rejected", "id", task.ID, "err", err)
		return
	}
	a.logger.Debug("task deleted", "id", task.ID)
	a.syncEdit()
	a.clampCursor()
	a.setStatus("Task deleted", false)
}

func (a *App) copySelected() tea.Cmd {
	task, ok := a.store.At(a.cursor)
	if !ok {
		return nil
	}
	return a.copyCmd(task.Text)
}

// syncEdit drops the edit form when the store no longer has a session.
func (a *App) syncEdit() {
	if _, ok := a.store.Editing(); !ok {
		a.edit = nil
	}
}

func (a *App) focusList() {
	a.focusedPane = PaneList
	a.form.Blur()
	a.keyState.Reset()
	a.clampCursor()
}

func (a *App) moveCursor(delta int) {
	a.cursor += delta
	a.clampCursor()
}

func (a *App) clampCursor() {
	if a.cursor >= a.store.Len() {
		a.cursor = a.store.Len() - 1
	}
	if a.cursor < 0 {
		a.cursor = 0
	}
}

func (a *App) setStatus(msg string, isErr bool) {
	a.statusMsg = msg
	a.statusErr = isErr
}

func (a *App) inputWidth() int {
	w := a.width - 12
	if w > 70 {
		w = 70
	}
	return w
}

func describeError(err error) string {
	switch {
	case errors.Is(err, todo.ErrEmptyText):
		return "Task text cannot be empty"
	case errors.Is(err, todo.ErrInvalidPriority):
		return "Pick High, Medium or Low"
	case errors.Is(err, todo.ErrTaskNotFound):
		return "Task no longer exists"
	default:
		return err.Error()
	}
}
