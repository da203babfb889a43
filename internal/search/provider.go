// Package search filters file listings by name. Substring, regex and token
// strategies share the Provider interface.
package search

import (
	"fmt"

	"github.com/cristianoliveira/kioskboard/internal/media"
)

// Provider matches a file name against a query.
type Provider interface {
	// Match returns true if name matches query. An empty query matches
	// everything.
	Match(name, query string) bool

	// Name returns the provider name for identification and debugging.
	Name() string
}

// Options holds configuration options for creating search providers.
type Options struct {
	CaseInsensitive bool
}

// Option is a function that modifies search options.
type Option func(*Options)

// WithCaseInsensitive sets case-insensitive search.
func WithCaseInsensitive(enabled bool) Option {
	return func(o *Options) {
		o.CaseInsensitive = enabled
	}
}

func applyOptions(opts []Option) Options {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// New returns the provider called mode: "substring", "regex" or "token".
func New(mode string, opts ...Option) (Provider, error) {
	switch mode {
	case "", "substring":
		return NewSubstringProvider(opts...), nil
	case "regex":
		return NewRegexProvider(opts...), nil
	case "token":
		return NewTokenProvider(opts...), nil
	}
	return nil, fmt.Errorf("unknown search mode %q (want substring, regex or token)", mode)
}

// Filter keeps the names of files that match query, in order.
func Filter(p Provider, files media.FileList, query string) media.FileList {
	kept := make(media.FileList, 0, len(files))
	for _, name := range files {
		if p.Match(name, query) {
			kept = append(kept, name)
		}
	}
	return kept
}
