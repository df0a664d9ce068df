package tui

import tea "github.com/charmbracelet/bubbletea"

// Key represents a key binding.
type Key struct {
	Key  string
	Help string
}

// Keymap contains the list key bindings of the application.
type Keymap struct {
	// Navigation
	Up     Key
	Down   Key
	Top    Key
	Bottom Key

	// Actions
	Back      Key
	Quit      Key
	Help      Key
	FocusForm Key

	// Task actions
	EditTask     Key
	DeleteTask   Key
	CompleteTask Key
	CopyTask     Key
}

// DefaultKeymap returns the default Vim-style key bindings.
func DefaultKeymap() Keymap {
	return Keymap{
		Up:     Key{Key: "k", Help: "up"},
		Down:   Key{Key: "j", Help: "down"},
		Top:    Key{Key: "g", Help: "top (gg)"},
		Bottom: Key{Key: "G", Help: "bottom"},

		Back:      Key{Key: "esc", Help: "back"},
		Quit:      Key{Key: "q", Help: "quit"},
		Help:      Key{Key: "?", Help: "help"},
		FocusForm: Key{Key: "a", Help: "add task"},

		EditTask:     Key{Key: "e", Help: "edit task"},
		DeleteTask:   Key{Key: "d", Help: "delete (dd)"},
		CompleteTask: Key{Key: "x", Help: "complete/uncomplete"},
		CopyTask:     Key{Key: "y", Help: "copy text"},
	}
}

// KeyState tracks multi-key sequences (like 'gg' or 'dd').
type KeyState struct {
	LastKey  string
	WaitingG bool // Waiting for second 'g' in 'gg'
	WaitingD bool // Waiting for second 'd' in 'dd'
}

// HandleKey processes a key press in the list and returns the action to take.
// Returns the action name and whether the key was consumed.
func (ks *KeyState) HandleKey(msg tea.KeyMsg, keymap Keymap, vimMode bool) (string, bool) {
	key := msg.String()

	// Handle 'gg' sequence (go to top)
	if ks.WaitingG {
		ks.WaitingG = false
		if key == keymap.Top.Key {
			return "top", true
		}
	}

	// Handle 'dd' sequence (delete)
	if ks.WaitingD {
		ks.WaitingD = false
		if key == keymap.DeleteTask.Key {
			return "delete", true
		}
	}

	if vimMode {
		switch key {
		case keymap.Top.Key:
			ks.WaitingG = true
			ks.LastKey = key
			return "", true
		case keymap.DeleteTask.Key:
			ks.WaitingD = true
			ks.LastKey = key
			return "", true
		case keymap.Up.Key:
			return "up", true
		case keymap.Down.Key:
			return "down", true
		case keymap.Bottom.Key:
			return "bottom", true
		}
	}

	switch key {
	case "up":
		return "up", true
	case "down":
		return "down", true
	case "home":
		return "top", true
	case "end":
		return "bottom", true
	case "delete":
		return "delete", true
	case keymap.Quit.Key, "ctrl+c":
		return "quit", true
	case keymap.Help.Key:
		return "help", true
	case keymap.FocusForm.Key, "tab":
		return "focus_form", true
	case keymap.EditTask.Key, "enter":
		return "edit", true
	case keymap.CompleteTask.Key, " ", "space":
		return "complete", true
	case keymap.CopyTask.Key:
		return "copy", true
	}

	return "", false
}

// Reset clears any pending multi-key sequences.
func (ks *KeyState) Reset() {
	ks.WaitingG = false
	ks.WaitingD = false
	ks.LastKey = ""
}

// HelpItems returns a slice of key-description pairs for the help view.
func (k Keymap) HelpItems() [][]string {
	return [][]string{
		{"Form", ""},
		{"tab/shift+tab", "Next/previous field"},
		{"1-3 h/l", "Pick priority"},
		{"enter", "Add / save"},
		{"alt+enter", "New line in text"},
		{k.Back.Key, "Back to list / cancel edit"},
		{"", ""},
		{"Tasks", ""},
		{k.Up.Key + "/" + k.Down.Key, "Move up/down"},
		{"gg/" + k.Bottom.Key, "Go to top/bottom"},
		{k.CompleteTask.Key + "/space", "Complete/uncomplete task"},
		{k.EditTask.Key, "Edit task"},
		{"dd", "Delete task"},
		{k.CopyTask.Key, "Copy task text"},
		{k.FocusForm.Key, "Add new task"},
		{"", ""},
		{"General", ""},
		{k.Help.Key, "Toggle help"},
		{k.Quit.Key, "Quit"},
	}
}
