// Package logging provides the file-backed debug logger shared by the
// executor, the message bus and the widget orchestrator.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// defaultLogger is the process-wide logger used by Debugf.
var defaultLogger *DebugLogger
var defaultLoggerMu sync.RWMutex

// SetDefault installs l as the process-wide logger and returns the previous one.
func SetDefault(l *DebugLogger) *DebugLogger {
	defaultLoggerMu.Lock()
	defer defaultLoggerMu.Unlock()
	prev := defaultLogger
	defaultLogger = l
	return prev
}

// Default returns the process-wide logger. It may be nil.
func Default() *DebugLogger {
	defaultLoggerMu.RLock()
	defer defaultLoggerMu.RUnlock()
	return defaultLogger
}

// Debugf writes a message using the process-wide logger.
// Components that have no logger of their own (bus, stream adapters,
// toolkit widgets) log through here.
func Debugf(format string, args ...interface{}) {
	Default().Log(format, args...)
}

// DebugLogger writes timestamped lines to a file with thread-safe access.
type DebugLogger struct {
	mu   sync.Mutex
	file *os.File
}

// New creates a logger appending to the specified path.
// If the path is empty, returns a no-op logger.
// Creates parent directories if they don't exist.
func New(logPath string) (*DebugLogger, error) {
	if logPath == "" {
		return &DebugLogger{}, nil
	}

	dir := filepath.Dir(logPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	logger := &DebugLogger{file: f}
	logger.Log("=== relm debug log started at %s ===", time.Now().Format(time.RFC3339))

	return logger, nil
}

// DefaultPath returns the debug log location under the XDG state directory.
func DefaultPath() string {
	stateDir := os.Getenv("XDG_STATE_HOME")
	if stateDir == "" {
		home, _ := os.UserHomeDir()
		stateDir = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateDir, "relm", "debug.log")
}

// Nop returns a no-op logger for testing or when logging is disabled.
func Nop() *DebugLogger {
	return &DebugLogger{}
}

// Log writes a timestamped message to the debug log.
// If the logger is nil or has no file, this is a no-op.
func (l *DebugLogger) Log(format string, args ...interface{}) {
	if l == nil || l.file == nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	msg := fmt.Sprintf(format, args...)
	timestamp := time.Now().Format("15:04:05.000")
	fmt.Fprintf(l.file, "[%s] %s\n", timestamp, msg)
}

// Close closes the log file.
// Safe to call on nil logger or logger without file.
func (l *DebugLogger) Close() error {
	if l == nil || l.file == nil {
		return nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	return l.file.Close()
}
