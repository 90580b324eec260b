package logging

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

const (
	// debugEnv enables file logging at debug level when set to any value.
	debugEnv = "DEBUG"
	// logFileEnv overrides the debug log file location.
	logFileEnv = "TOOLBOX_LOG_FILE"

	defaultLogFile = "toolbox.log"
	logPrefix      = "Toolbox"
)

type AppLogger struct {
	logger *log.Logger
	debug  bool
}

var (
	defaultLogger *AppLogger
	once          sync.Once
)

// GetDefault returns the process-wide logger, creating it on first use.
func GetDefault() *AppLogger {
	once.Do(func() {
		defaultLogger = NewAppLogger()
	})
	return defaultLogger
}

// Debug logs through the process-wide logger, for code that runs before any
// logger is handed around.
func Debug(msg string, keyvals ...interface{}) {
	GetDefault().Debug(msg, keyvals...)
}

// NewAppLogger builds the application logger.
//
// With DEBUG set, everything from debug level up goes to a log file that is
// truncated on every run (toolbox.log in the working directory unless
// TOOLBOX_LOG_FILE points elsewhere). The TUI owns the terminal, so writing
// debug output to stderr would corrupt the screen.
//
// Without DEBUG only warnings and errors are written, to stderr.
func NewAppLogger() *AppLogger {
	debug := os.Getenv(debugEnv) != ""

	if !debug {
		return NewAppLoggerTo(os.Stderr, false)
	}

	logPath := os.Getenv(logFileEnv)
	if logPath == "" {
		cwd, err := os.Getwd()
		if err != nil {
			panic(fmt.Sprintf("Failed to get current working directory: %v", err))
		}
		logPath = filepath.Join(cwd, defaultLogFile)
	}

	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		panic(fmt.Sprintf("Failed to create debug log file: %v", err))
	}

	al := NewAppLoggerTo(logFile, true)
	al.logger.Info("Debug logging enabled", "log_file", logPath)
	return al
}

// NewAppLoggerTo creates a logger writing to w. Debug loggers report caller
// and use a short time format.
func NewAppLoggerTo(w io.Writer, debug bool) *AppLogger {
	var logger *log.Logger
	if debug {
		logger = log.NewWithOptions(w, log.Options{
			ReportCaller:    true,
			ReportTimestamp: true,
			TimeFormat:      time.Kitchen,
			Prefix:          logPrefix,
		})
		logger.SetLevel(log.DebugLevel)
	} else {
		logger = log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      time.RFC3339,
			Prefix:          logPrefix,
		})
		logger.SetLevel(log.WarnLevel)
	}

	return &AppLogger{
		logger: logger,
		debug:  debug,
	}
}

// WithComponent returns a logger whose prefix names the subsystem, e.g.
// "Toolbox/mcp".
func (al *AppLogger) WithComponent(name string) *AppLogger {
	return &AppLogger{
		logger: al.logger.WithPrefix(logPrefix + "/" + name),
		debug:  al.debug,
	}
}

func (al *AppLogger) Info(msg string, keyvals ...interface{}) {
	al.logger.Info(msg, keyvals...)
}

func (al *AppLogger) Warn(msg string, keyvals ...interface{}) {
	al.logger.Warn(msg, keyvals...)
}

func (al *AppLogger) Error(msg string, keyvals ...interface{}) {
	al.logger.Error(msg, keyvals...)
}

func (al *AppLogger) Debug(msg string, keyvals ...interface{}) {
	if al.debug {
		al.logger.Debug(msg, keyvals...)
	}
}

// Log a bubbletea message (debug only)
func (al *AppLogger) LogMessage(msg tea.Msg) {
	if !al.debug {
		return
	}

	al.logger.Debug("Message received",
		"type", fmt.Sprintf("%T", msg),
		"content", fmt.Sprintf("%+v", msg),
	)
}

// LogEvent records a controller event before it is dispatched (debug only).
func (al *AppLogger) LogEvent(name string, event interface{}) {
	if al.debug {
		al.logger.Debug("Event dispatched", "event", name, "payload", fmt.Sprintf("%+v", event))
	}
}

func (al *AppLogger) LogPerformance(operation string, start time.Time) {
	if al.debug {
		duration := time.Since(start)
		al.logger.Debug("Performance",
			"operation", operation,
			"duration", duration,
		)
	}
}

func (al *AppLogger) LogStateTransition(component, from, to string) {
	if al.debug {
		al.logger.Debug("State transition",
			"component", component,
			"from", from,
			"to", to,
		)
	}
}

func (al *AppLogger) LogUserAction(action, context string) {
	if al.debug {
		al.logger.Debug("User action",
			"action", action,
			"context", context,
		)
	}
}

// NewTestLogger creates a debug logger that writes to a buffer, without
// timestamps so output can be matched in tests.
func NewTestLogger() (*AppLogger, *bytes.Buffer) {
	var buf bytes.Buffer

	logger := log.NewWithOptions(&buf, log.Options{
		ReportTimestamp: false,
		ReportCaller:    false,
		Prefix:          "Test",
	})
	logger.SetLevel(log.DebugLevel)

	return &AppLogger{
		logger: logger,
		debug:  true,
	}, &buf
}

// NewNopLogger discards everything. Used by CLI paths that must keep stdout
// and stderr clean.
func NewNopLogger() *AppLogger {
	return NewAppLoggerTo(io.Discard, false)
}
