// Package styles provides Lip Gloss styles for the TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/hy4ri/simple-todo/internal/todo"
)

// Terminal-adaptive colors that work in both light and dark terminals.
var (
	// Subtle is a muted color for secondary text
	Subtle = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#999999"}

	// Highlight is the accent color for focused elements
	Highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}

	// Special colors
	ErrorColor   = lipgloss.AdaptiveColor{Light: "#FF0000", Dark: "#FF6666"}
	SuccessColor = lipgloss.AdaptiveColor{Light: "#00AA00", Dark: "#66FF66"}
)

// Priority colors: danger, warning, secondary.
var (
	PriorityHighColor   = lipgloss.Color("#D0473D")
	PriorityMediumColor = lipgloss.Color("#EA8811")
	PriorityLowColor    = lipgloss.Color("#6C757D")
)

// Base styles
var (
	// App is the base style for the entire application
	App = lipgloss.NewStyle().
		Padding(1, 2)

	// Title is the style for the page heading
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Highlight)

	// Card frames the form and the list
	Card = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Subtle).
		Padding(0, 1)

	// CardFocused is for the card holding the focused element
	CardFocused = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Highlight).
			Padding(0, 1)

	// CardHeader is the header line inside a card
	CardHeader = lipgloss.NewStyle().
			Bold(true).
			Foreground(Subtle)
)

// Task styles
var (
	// TaskItem is the base style for a task row
	TaskItem = lipgloss.NewStyle().
			PaddingLeft(2)

	// TaskSelected is the style for the row under the cursor
	TaskSelected = lipgloss.NewStyle().
			PaddingLeft(1).
			BorderLeft(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderLeftForeground(Highlight).
			Bold(true)

	// TaskCompleted is the style for completed task text
	TaskCompleted = lipgloss.NewStyle().
			Faint(true).
			Strikethrough(true)

	// TaskContent is for the task text
	TaskContent = lipgloss.NewStyle()

	// TaskAction is for the inline edit/delete hints
	TaskAction = lipgloss.NewStyle().
			Foreground(Subtle).
			PaddingLeft(1)

	// TaskActionDanger is for the delete hint
	TaskActionDanger = lipgloss.NewStyle().
				Foreground(ErrorColor).
				PaddingLeft(1)
)

// Priority badge styles
var (
	BadgeHigh = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(PriorityHighColor).
			Padding(0, 1).
			MarginLeft(1)
	BadgeMedium = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#000000")).
			Background(PriorityMediumColor).
			Padding(0, 1).
			MarginLeft(1)
	BadgeLow = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(PriorityLowColor).
			Padding(0, 1).
			MarginLeft(1)
)

// GetBadgeStyle returns the badge style for a badge class.
func GetBadgeStyle(class string) lipgloss.Style {
	switch class {
	case todo.PriorityHigh.BadgeClass():
		return BadgeHigh
	case todo.PriorityMedium.BadgeClass():
		return BadgeMedium
	default:
		return BadgeLow
	}
}

// GetPriorityColor returns the accent color for a row priority class.
func GetPriorityColor(class string) lipgloss.Color {
	switch class {
	case todo.PriorityHigh.Class():
		return PriorityHighColor
	case todo.PriorityMedium.Class():
		return PriorityMediumColor
	default:
		return PriorityLowColor
	}
}

// StatusBar styles
var (
	// StatusBar is the base style for the status bar
	StatusBar = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#333333", Dark: "#DDDDDD"}).
			Background(lipgloss.AdaptiveColor{Light: "#E8E8E8", Dark: "#1F1F1F"}).
			Padding(0, 1)

	// StatusBarKey is for keyboard shortcut hints
	StatusBarKey = lipgloss.NewStyle().
			Bold(true).
			Foreground(Highlight).
			Background(lipgloss.AdaptiveColor{Light: "#E8E8E8", Dark: "#1F1F1F"})

	// StatusBarText is for status bar descriptions
	StatusBarText = lipgloss.NewStyle().
			Foreground(Subtle).
			Background(lipgloss.AdaptiveColor{Light: "#E8E8E8", Dark: "#1F1F1F"})

	// StatusBarSuccess is for confirmations of completed actions
	StatusBarSuccess = lipgloss.NewStyle().
				Foreground(SuccessColor).
				Background(lipgloss.AdaptiveColor{Light: "#E8E8E8", Dark: "#1F1F1F"})

	// StatusBarError is for error messages
	StatusBarError = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Background(lipgloss.AdaptiveColor{Light: "#E8E8E8", Dark: "#1F1F1F"}).
			Bold(true)
)

// Help styles
var (
	// HelpKey is for key bindings in help
	HelpKey = lipgloss.NewStyle().
		Bold(true).
		Foreground(Highlight)

	// HelpDesc is for key binding descriptions
	HelpDesc = lipgloss.NewStyle().
			Foreground(Subtle)
)

// Input styles
var (
	// Input is the style for form fields
	Input = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Subtle).
		Padding(0, 1)

	// InputFocused is for focused form fields
	InputFocused = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Highlight).
			Padding(0, 1)

	// InputLabel is for field labels
	InputLabel = lipgloss.NewStyle().
			Bold(true)

	// Button is for form buttons
	Button = lipgloss.NewStyle().
		Padding(0, 3).
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(lipgloss.Color("#0D6EFD"))

	// ButtonFocused is for the focused button
	ButtonFocused = Button.
			Bold(true).
			Underline(true)

	// ButtonDisabled is for buttons that cannot be pressed
	ButtonDisabled = lipgloss.NewStyle().
			Padding(0, 3).
			Faint(true).
			Foreground(Subtle)

	// OptionSelected is the chosen option in a priority selector
	OptionSelected = lipgloss.NewStyle().
			Bold(true).
			Underline(true)

	// Option is an unselected option
	Option = lipgloss.NewStyle().
		Foreground(Subtle)
)

// Dialog styles
var (
	// Dialog is the base style for dialog boxes
	Dialog = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Highlight).
		Padding(1, 2)
)

// Checkbox styles
const (
	CheckboxUnchecked = "[ ]"
	CheckboxChecked   = "[x]"
)
