// Package errors defines the failure kinds of the dashboard and the handlers
// that surface them. No kind is fatal: every failure degrades to an empty or
// skipped item.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind classifies a failure.
type Kind int

const (
	// KindUnknown is any error that was not produced by this package.
	KindUnknown Kind = iota
	// KindNetwork is a listing or file fetch that was rejected or malformed.
	KindNetwork
	// KindRender is a single item that could not be decoded or rendered in time.
	KindRender
	// KindLayout is a scroll update attempted against zero-size content.
	KindLayout
	// KindAutoplay is a video whose playback could not be started.
	KindAutoplay
)

func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network failure"
	case KindRender:
		return "render failure"
	case KindLayout:
		return "layout measurement failure"
	case KindAutoplay:
		return "autoplay blocked"
	default:
		return "unknown failure"
	}
}

// Error is a classified failure. Op names the operation ("list certificates",
// "render pdf") and Item the file it concerns, when there is one.
type Error struct {
	Kind Kind
	Op   string
	Item string
	Err  error
}

func (e *Error) Error() string {
	msg := e.Op
	if e.Item != "" {
		msg += " " + e.Item
	}
	if msg != "" {
		msg += ": "
	}
	msg += e.Kind.String()
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is a kind sentinel matching e.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || t.Op != "" || t.Item != "" || t.Err != nil {
		return false
	}
	return t.Kind == e.Kind
}

// Sentinels for errors.Is.
var (
	ErrNetwork  = &Error{Kind: KindNetwork}
	ErrRender   = &Error{Kind: KindRender}
	ErrLayout   = &Error{Kind: KindLayout}
	ErrAutoplay = &Error{Kind: KindAutoplay}
)

// New builds a classified error.
func New(kind Kind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

// ForItem builds a classified error about a single file.
func ForItem(kind Kind, op, item string, err error) *Error {
	return &Error{Kind: kind, Op: op, Item: item, Err: err}
}

// LoadError reports a listing that could not be loaded.
func LoadError(op string, format string, args ...any) *Error {
	return New(KindNetwork, op, fmt.Errorf(format, args...))
}

// KindOf returns the kind of the first classified error in err's chain.
func KindOf(err error) Kind {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
