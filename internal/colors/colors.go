// Package colors provides color output utilities.
package colors

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

// Color constants
const (
	Red    = "\033[0;31m"
	Green  = "\033[0;32m"
	Yellow = "\033[1;33m"
	Blue   = "\033[0;34m"
	Cyan   = "\033[0;36m"
	Reset  = "\033[0m"
)

const checkmark = "✓"

// Logger defines the interface for structured logging.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

var (
	debugEnabled = false
	quiet        = false
	logger       Logger
	loggerMu     sync.RWMutex

	// stdout and stderr can be replaced in tests.
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
	outMu  sync.Mutex
)

func init() {
	if val := os.Getenv("KIOSKBOARD_DEBUG"); val == "true" || val == "1" {
		debugEnabled = true
	}
}

// SetDebug enables or disables debug output.
func SetDebug(enabled bool) {
	debugEnabled = enabled
}

// SetQuiet suppresses console output. Messages are still mirrored to the
// structured logger. The dashboard sets this while it owns the terminal.
func SetQuiet(enabled bool) {
	quiet = enabled
}

// SetLogger sets the structured logger to mirror console output.
func SetLogger(l Logger) {
	loggerMu.Lock()
	defer loggerMu.Unlock()
	logger = l
}

// SetOutput replaces the console writers. Nil keeps the current writer.
func SetOutput(out, errOut io.Writer) {
	outMu.Lock()
	defer outMu.Unlock()
	if out != nil {
		stdout = out
	}
	if errOut != nil {
		stderr = errOut
	}
}

func currentLogger() Logger {
	loggerMu.RLock()
	defer loggerMu.RUnlock()
	return logger
}

// emit writes a formatted line. Write failures fall back to a plain line on
// os.Stderr; nothing here may recurse into another printer.
func emit(w func() io.Writer, line string) {
	if quiet {
		return
	}
	outMu.Lock()
	defer outMu.Unlock()
	if _, err := io.WriteString(w(), line); err != nil {
		fmt.Fprintf(os.Stderr, "failed to print message: %v\n", err)
	}
}

func toStdout() io.Writer { return stdout }
func toStderr() io.Writer { return stderr }

// Error outputs an error message to stderr.
func Error(msgs ...string) {
	msg := strings.Join(msgs, " ")
	if l := currentLogger(); l != nil {
		l.Error(msg)
	}
	emit(toStderr, fmt.Sprintf("%sError:%s %s%s\n", Red, Reset, msg, Reset))
}

// Success outputs a success message to stdout.
func Success(msgs ...string) {
	msg := strings.Join(msgs, " ")
	if l := currentLogger(); l != nil {
		l.Info(msg, "type", "success")
	}
	emit(toStdout, fmt.Sprintf("%s%s%s %s%s\n", Green, checkmark, Reset, msg, Reset))
}

// Warning outputs a warning message to stderr.
func Warning(msgs ...string) {
	msg := strings.Join(msgs, " ")
	if l := currentLogger(); l != nil {
		l.Warn(msg)
	}
	emit(toStderr, fmt.Sprintf("%sWarning:%s %s%s\n", Yellow, Reset, msg, Reset))
}

// Info outputs an informational message to stdout.
func Info(msgs ...string) {
	msg := strings.Join(msgs, " ")
	if l := currentLogger(); l != nil {
		l.Info(msg)
	}
	emit(toStdout, fmt.Sprintf("%s%s%s\n", Blue, msg, Reset))
}

// Debug outputs a debug message to stderr if debug is enabled.
func Debug(msgs ...string) {
	if !debugEnabled {
		return
	}
	msg := strings.Join(msgs, " ")
	if l := currentLogger(); l != nil {
		l.Debug(msg)
	}
	emit(toStderr, fmt.Sprintf("%sDebug:%s %s%s\n", Cyan, Reset, msg, Reset))
}

// Output is the package-level printer as a value, for code that takes a
// ColorOutput dependency.
type Output struct{}

func (Output) Error(msgs ...string)   { Error(msgs...) }
func (Output) Warning(msgs ...string) { Warning(msgs...) }
func (Output) Info(msgs ...string)    { Info(msgs...) }
func (Output) Success(msgs ...string) { Success(msgs...) }
