// Package logging configures the runtime logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	charmLog "github.com/charmbracelet/log"

	"github.com/hy4ri/simple-todo/internal/config"
)

// Logger wraps a charm logger and the file it writes to.
type Logger struct {
	*charmLog.Logger
	closeFile func() error
	path      string
}

// New builds a logger from cfg. With no file configured the logger
// discards everything.
func New(cfg config.LoggingConfig) (*Logger, error) {
	level, err := charmLog.ParseLevel(strings.ToLower(strings.TrimSpace(cfg.Level)))
	if err != nil {
		return nil, fmt.Errorf("parse logging level %q: %w", cfg.Level, err)
	}

	path := strings.TrimSpace(cfg.File)
	if path == "" {
		return &Logger{Logger: newCharmLogger(io.Discard, level)}, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	return &Logger{
		Logger:    newCharmLogger(f, level),
		closeFile: f.Close,
		path:      path,
	}, nil
}

// Discard returns a logger that drops all output.
func Discard() *Logger {
	return &Logger{Logger: newCharmLogger(io.Discard, charmLog.InfoLevel)}
}

// Path returns the active log file path, empty when logging is disabled.
func (l *Logger) Path() string {
	if l == nil {
		return ""
	}
	return l.path
}

// Close closes the log file, if any.
func (l *Logger) Close() error {
	if l == nil || l.closeFile == nil {
		return nil
	}
	return l.closeFile()
}

// Keep file output parseable and unstyled.
func newCharmLogger(w io.Writer, level charmLog.Level) *charmLog.Logger {
	return charmLog.NewWithOptions(w, charmLog.Options{
		Level:           level,
		Prefix:          config.AppName,
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Formatter:       charmLog.LogfmtFormatter,
	})
}
