// Package ui paints the document tree to the terminal with Lip Gloss.
package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/hy4ri/simple-todo/internal/tui/document"
	"github.com/hy4ri/simple-todo/internal/tui/styles"
)

// Renderer paints a document. It holds no application state.
type Renderer struct {
	Width  int
	Height int

	// Widgets maps a TestID to the live view of the bubbles widget backing
	// that element, so the cursor and scrolling of the widget are shown.
	Widgets map[string]string
}

// NewRenderer creates a renderer for the given terminal size.
func NewRenderer(width, height int) *Renderer {
	return &Renderer{Width: width, Height: height}
}

// SetSize updates the terminal size.
func (r *Renderer) SetSize(width, height int) {
	r.Width = width
	r.Height = height
}

// Render paints the whole document.
func (r *Renderer) Render(doc *document.Node) string {
	if doc == nil {
		return ""
	}
	return r.renderNode(doc)
}

func (r *Renderer) renderNode(n *document.Node) string {
	switch n.Tag {
	case document.TagHeading:
		return styles.Title.Render(n.Text)
	case document.TagCard:
		return r.renderCard(n)
	case document.TagLabel:
		return styles.InputLabel.Render(n.Text)
	case document.TagTextarea:
		return r.renderTextarea(n)
	case document.TagSelect:
		return renderSelect(n)
	case document.TagButton:
		return renderButton(n)
	case document.TagList:
		return r.renderList(n)
	case document.TagItem:
		if n.HasClass("editing") {
			return r.renderEditItem(n)
		}
		return r.renderItem(n)
	default:
		return r.renderChildren(n)
	}
}

func (r *Renderer) renderChildren(n *document.Node) string {
	parts := make([]string, 0, len(n.Children))
	for _, c := range n.Children {
		parts = append(parts, r.renderNode(c))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (r *Renderer) renderCard(n *document.Node) string {
	style := styles.Card
	if containsFocus(n) {
		style = styles.CardFocused
	}
	if w := r.contentWidth(); w > 0 {
		style = style.Width(w)
	}
	body := lipgloss.JoinVertical(lipgloss.Left,
		styles.CardHeader.Render(n.Text),
		r.renderChildren(n),
	)
	return style.Render(body)
}

func (r *Renderer) renderTextarea(n *document.Node) string {
	content, ok := r.Widgets[n.TestID]
	if !ok {
		content = n.Value
	}
	style := styles.Input
	if n.Focused {
		style = styles.InputFocused
	}
	return style.Render(content)
}

func renderSelect(n *document.Node) string {
	opts := n.Options()
	parts := make([]string, 0, len(opts))
	for _, o := range opts {
		if o.Checked {
			parts = append(parts, styles.OptionSelected.Render(o.Text))
			continue
		}
		parts = append(parts, styles.Option.Render(o.Text))
	}
	line := strings.Join(parts, "  ")
	if n.Focused {
		return styles.HelpKey.Render("‹ ") + line + styles.HelpKey.Render(" ›")
	}
	return "  " + line
}

func renderButton(n *document.Node) string {
	switch {
	case n.Disabled:
		return styles.ButtonDisabled.Render(n.Text)
	case n.Focused:
		return styles.ButtonFocused.Render(n.Text)
	default:
		return styles.Button.Render(n.Text)
	}
}

func (r *Renderer) renderList(n *document.Node) string {
	if len(n.Children) == 0 {
		return styles.HelpDesc.Render("No todos yet")
	}
	rows := make([]string, 0, len(n.Children))
	for _, c := range n.Children {
		rows = append(rows, r.renderNode(c))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderItem paints a display-mode row: checkbox, text, badge, actions.
func (r *Renderer) renderItem(n *document.Node) string {
	var b strings.Builder
	var textWidth int
	if w := r.contentWidth(); w > 0 {
		// checkbox, badge and hints take roughly 30 cells
		textWidth = w - 30
	}

	for _, c := range n.Children {
		switch {
		case c.Tag == document.TagCheckbox:
			if c.Checked {
				b.WriteString(styles.CheckboxChecked)
			} else {
				b.WriteString(styles.CheckboxUnchecked)
			}
			b.WriteString(" ")
		case c.HasClass("todo-text"):
			text := singleLine(c.Text)
			if textWidth > 0 {
				text = truncateString(text, textWidth)
			}
			b.WriteString(TaskTextStyle(c).Render(text))
		case c.HasClass("badge"):
			b.WriteString(styles.GetBadgeStyle(badgeClass(c)).Render(c.Text))
		case c.Tag == document.TagGroup:
			for _, btn := range c.Children {
				style := styles.TaskAction
				if btn.HasClass("text-danger") {
					style = styles.TaskActionDanger
				}
				b.WriteString(style.Render(btn.Text))
			}
		}
	}

	marker := lipgloss.NewStyle().Foreground(styles.GetPriorityColor(priorityClass(n))).Render("▍")
	row := marker + b.String()
	if n.Focused {
		return styles.TaskSelected.Render(row)
	}
	return styles.TaskItem.Render(row)
}

func (r *Renderer) renderEditItem(n *document.Node) string {
	return styles.TaskSelected.Render(r.renderChildren(n))
}

// TaskTextStyle returns the style for a task text span. Completed tasks are
// struck through.
func TaskTextStyle(n *document.Node) lipgloss.Style {
	if n.HasClass("completed") {
		return styles.TaskCompleted
	}
	return styles.TaskContent
}

func (r *Renderer) contentWidth() int {
	if r.Width <= 0 {
		return 0
	}
	w := r.Width - 6 // app padding and card border
	if w > 80 {
		w = 80
	}
	if w < 40 {
		w = 40
	}
	return w
}

func containsFocus(n *document.Node) bool {
	if n.Focused {
		return true
	}
	for _, c := range n.Children {
		if containsFocus(c) {
			return true
		}
	}
	return false
}

func priorityClass(n *document.Node) string {
	for _, c := range n.Classes {
		if strings.HasPrefix(c, "priority-") {
			return c
		}
	}
	return ""
}

func badgeClass(n *document.Node) string {
	for _, c := range n.Classes {
		if strings.HasPrefix(c, "bg-") {
			return c
		}
	}
	return ""
}
