// Package main is the entry point for the simple-todo application.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hy4ri/simple-todo/internal/config"
	"github.com/hy4ri/simple-todo/internal/logging"
	"github.com/hy4ri/simple-todo/internal/todo"
	"github.com/hy4ri/simple-todo/internal/tui"
)

const version = "0.1.0"

const helpText = `simple-todo - A very simple terminal to-do list

USAGE:
    simple-todo [OPTIONS]

OPTIONS:
    -h, --help          Show this help message
    -v, --version       Show version information
    --init              Create a template config file
    --config PATH       Use PATH instead of the default config file

CONFIGURATION:
    Config file: ~/.config/simple-todo/config.yaml
    Files ending in .toml are read as TOML.

    Tasks live in memory and are gone when the program exits.

KEYBINDINGS:
    Form:
        Tab/Shift+Tab   Next/previous field
        1-3, h/l        Pick priority (1=High)
        Enter           Add task / save edit
        Alt+Enter       New line in text
        Esc             Go to the list / cancel edit

    List:
        j/k             Move down/up
        gg/G            Go to top/bottom
        x, Space        Complete/uncomplete task
        e, Enter        Edit task
        dd              Delete task
        y               Copy task text
        a, Tab          Go to the form
        ?               Show help
        q               Quit
`

const configTemplate = `# simple-todo configuration
# Location: ~/.config/simple-todo/config.yaml

ui:
  # Enable Vim-style keybindings in the list (default: true)
  vim_mode: true
  # Show key hints under the list (default: true)
  show_hints: true
  # Priority preselected in the create form: high, medium or low
  default_priority: high

notifications:
  # Send a desktop notification when a task is completed
  on_complete: false

logging:
  # debug, info, warn or error
  level: info
  # Log file path; empty disables logging
  file: ""
`

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Define flags
	var (
		showHelp    bool
		showVersion bool
		initConfig  bool
		configPath  string
	)

	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "Show version")
	flag.BoolVar(&showVersion, "v", false, "Show version (shorthand)")
	flag.BoolVar(&initConfig, "init", false, "Create template config file")
	flag.StringVar(&configPath, "config", "", "Path to config file")

	flag.Usage = func() {
		fmt.Print(helpText)
	}

	flag.Parse()

	// Handle flags
	if showHelp {
		fmt.Print(helpText)
		return nil
	}

	if showVersion {
		fmt.Printf("%s version %s\n", config.AppName, version)
		return nil
	}

	if initConfig {
		return createConfigTemplate(configPath)
	}

	return runApp(configPath)
}

// createConfigTemplate creates a template configuration file.
func createConfigTemplate(path string) error {
	if path == "" {
		p, err := config.ConfigPath()
		if err != nil {
			return fmt.Errorf("failed to get config path: %w", err)
		}
		path = p
	}

	// Check if config already exists
	if _, err := os.Stat(path); err == nil {
		fmt.Printf("Config file already exists: %s\n", path)
		fmt.Print("Overwrite? [y/N]: ")

		var response string
		fmt.Scanln(&response)

		if response != "y" && response != "Y" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// TOML files get the defaults without comments
	if config.IsTOML(path) {
		if err := config.Save(config.DefaultConfig(), path); err != nil {
			return err
		}
	} else if err := os.WriteFile(path, []byte(configTemplate), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Printf("Config file created: %s\n", path)
	return nil
}

// runApp starts the main TUI application.
func runApp(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := logging.New(cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to open log: %w", err)
	}
	defer logger.Close()

	logger.Info("starting", "version", version, "log", logger.Path())

	store := todo.NewStore()
	app := tui.NewApp(store, cfg, tui.WithLogger(logger.Logger))
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	total, done := store.Counts()
	logger.Info("exiting", "tasks", total, "completed", done)
	return nil
}
