package errors

import (
	"sync"

	"github.com/cristianoliveira/kioskboard/internal/colors"
)

// ErrorHandler is the interface for error handling.
// Different implementations can handle errors differently based on context.
type ErrorHandler interface {
	Error(msg string)
	Warning(msg string)
	Info(msg string)
	Success(msg string)
}

// ColorOutput is the console printer used by CLIHandler.
type ColorOutput interface {
	Error(msgs ...string)
	Warning(msgs ...string)
	Info(msgs ...string)
	Success(msgs ...string)
}

// CLIHandler handles errors by printing to stdout/stderr.
type CLIHandler struct {
	colors ColorOutput
	mu     sync.Mutex
}

// NewCLIHandler creates a handler printing through out.
func NewCLIHandler(out ColorOutput) *CLIHandler {
	return &CLIHandler{colors: out}
}

// NewDefaultCLIHandler creates a CLI handler using the colors package.
func NewDefaultCLIHandler() *CLIHandler {
	return NewCLIHandler(colors.Output{})
}

func (h *CLIHandler) Error(msg string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.colors.Error(msg)
}

func (h *CLIHandler) Warning(msg string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.colors.Warning(msg)
}

func (h *CLIHandler) Info(msg string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.colors.Info(msg)
}

func (h *CLIHandler) Success(msg string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.colors.Success(msg)
}

// Report routes a classified error to h. Autoplay and layout failures are
// expected on a kiosk and only warrant a warning.
func Report(h ErrorHandler, err error) {
	if err == nil {
		return
	}
	switch KindOf(err) {
	case KindAutoplay, KindLayout:
		h.Warning(err.Error())
	default:
		h.Error(err.Error())
	}
}
