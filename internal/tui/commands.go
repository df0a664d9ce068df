package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hy4ri/simple-todo/internal/config"
)

// copyCmd writes the task text to the system clipboard.
func (a *App) copyCmd(text string) tea.Cmd {
	copyText := a.copyText
	return func() tea.Msg {
		if err := copyText(text); err != nil {
			return statusMsg{msg: "Failed to copy: " + err.Error(), err: true}
		}
		return statusMsg{msg: "Copied: " + text}
	}
}

// notifyCmd sends a desktop notification for a completed task.
func (a *App) notifyCmd(text string) tea.Cmd {
	notify, logger := a.notify, a.logger
	return func() tea.Msg {
		if err := notify(config.AppName, "Completed: "+text); err != nil {
			logger.Warn("notification failed", "err", err)
		}
		return nil
	}
}
