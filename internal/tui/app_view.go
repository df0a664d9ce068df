package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hy4ri/simple-todo/internal/tui/document"
	"github.com/hy4ri/simple-todo/internal/tui/styles"
)

// View implements tea.Model.
func (a *App) View() string {
	if a.showHelp {
		help := a.helpComp.View()
		if a.width > 0 && a.height > 0 {
			return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, help)
		}
		return help
	}

	widgets := map[string]string{document.IDCreateText: a.form.Text.View()}
	if a.edit != nil {
		widgets[document.IDUpdateText] = a.edit.Text.View()
	}
	a.renderer.Widgets = widgets

	parts := []string{a.renderer.Render(a.Document())}
	if a.statusMsg != "" {
		parts = append(parts, a.renderStatus())
	}
	if a.showHints {
		parts = append(parts, a.renderHints())
	}
	return styles.App.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (a *App) renderStatus() string {
	return a.statusStyle().Render(a.statusMsg)
}

func (a *App) statusStyle() lipgloss.Style {
	if a.statusErr {
		return styles.StatusBarError
	}
	return styles.StatusBarSuccess
}

// renderHints renders the key hints for the focused pane.
func (a *App) renderHints() string {
	var pairs [][2]string
	switch {
	case a.edit != nil:
		pairs = [][2]string{{"enter", "save"}, {"tab", "field"}, {"esc", "cancel"}}
	case a.focusedPane == PaneForm:
		pairs = [][2]string{{"enter", "add"}, {"tab", "field"}, {"1-3", "priority"}, {"esc", "list"}}
	default:
		pairs = [][2]string{
			{"j/k", "move"},
			{a.keymap.CompleteTask.Key, "toggle"},
			{a.keymap.EditTask.Key, "edit"},
			{"dd", "delete"},
			{a.keymap.FocusForm.Key, "add"},
			{a.keymap.Help.Key, "help"},
			{a.keymap.Quit.Key, "quit"},
		}
	}

	items := make([]string, 0, len(pairs))
	for _, p := range pairs {
		items = append(items, styles.StatusBarKey.Render(p[0])+" "+styles.HelpDesc.Render(p[1]))
	}
	return styles.StatusBar.Render(strings.Join(items, "  "))
}
