// Package tui provides the terminal user interface of the to-do list.
package tui

import (
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	charmLog "github.com/charmbracelet/log"
	"github.com/gen2brain/beeep"

	"github.com/hy4ri/simple-todo/internal/config"
	"github.com/hy4ri/simple-todo/internal/logging"
	"github.com/hy4ri/simple-todo/internal/todo"
	"github.com/hy4ri/simple-todo/internal/tui/components"
	"github.com/hy4ri/simple-todo/internal/tui/document"
	"github.com/hy4ri/simple-todo/internal/tui/state"
	"github.com/hy4ri/simple-todo/internal/tui/ui"
)

// Pane represents which part of the screen receives keys.
type Pane int

const (
	PaneForm Pane = iota
	PaneList
)

// App is the main Bubble Tea model for the application. It owns the task
// store and is its only caller.
type App struct {
	// Dependencies
	store  *todo.Store
	config *config.Config
	logger *charmLog.Logger

	// Forms
	form *state.TaskForm
	edit *state.TaskForm // non-nil while the store has an edit session

	// Focus and list state
	focusedPane Pane
	cursor      int

	// UI state
	statusMsg string
	statusErr bool
	width     int
	height    int
	showHints bool
	showHelp  bool

	// Components
	keyState KeyState
	keymap   Keymap
	renderer *ui.Renderer
	helpComp *components.HelpModel

	// Side effects, replaceable in tests
	notify   func(title, message string) error
	copyText func(text string) error
}

// Option configures an App.
type Option func(*App)

// WithLogger sets the runtime logger.
func WithLogger(l *charmLog.Logger) Option {
	return func(a *App) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithNotifier replaces the desktop notification sender.
func WithNotifier(fn func(title, message string) error) Option {
	return func(a *App) {
		if fn != nil {
			a.notify = fn
		}
	}
}

// WithClipboard replaces the clipboard writer.
func WithClipboard(fn func(text string) error) Option {
	return func(a *App) {
		if fn != nil {
			a.copyText = fn
		}
	}
}

// NewApp creates a new App instance.
func NewApp(store *todo.Store, cfg *config.Config, opts ...Option) *App {
	if store == nil {
		store = todo.NewStore()
	}
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	app := &App{
		store:       store,
		config:      cfg,
		logger:      logging.Discard().Logger,
		form:        state.NewTaskForm(cfg.DefaultPriority()),
		focusedPane: PaneForm,
		showHints:   cfg.UI.ShowHints,
		keymap:      DefaultKeymap(),
		renderer:    ui.NewRenderer(0, 0),
		helpComp:    components.NewHelp(),
		notify: func(title, message string) error {
			return beeep.Notify(title, message, "")
		},
		copyText: clipboard.WriteAll,
	}
	for _, opt := range opts {
		opt(app)
	}

	app.helpComp.SetKeymap(app.keymap.HelpItems())
	return app
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return nil
}

// Document returns the current document projection.
func (a *App) Document() *document.Node {
	in := document.Input{
		Tasks:          a.store.Tasks(),
		CreateText:     a.form.Value(),
		CreatePriority: a.form.Priority,
		Focus:          a.documentFocus(),
		Cursor:         a.cursor,
	}
	if s, ok := a.store.Editing(); ok {
		in.Edit = &s
	}
	return document.Render(in)
}

func (a *App) documentFocus() document.Focus {
	if a.edit != nil {
		return a.edit.DocumentFocus()
	}
	if a.focusedPane == PaneForm {
		return a.form.DocumentFocus()
	}
	return document.FocusList
}

// Message types
type statusMsg struct {
	msg string
	err bool
}
