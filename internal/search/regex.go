package search

import (
	"regexp"
	"sync"
)

// RegexProvider matches names against a regular expression. Compiled
// patterns are cached.
type RegexProvider struct {
	opts    Options
	cache   map[string]*regexp.Regexp
	cacheMu sync.RWMutex
}

// NewRegexProvider creates a new regex search provider.
func NewRegexProvider(opts ...Option) Provider {
	return &RegexProvider{
		opts:  applyOptions(opts),
		cache: make(map[string]*regexp.Regexp),
	}
}

// Match returns false for every name when query is not a valid pattern.
func (p *RegexProvider) Match(name, query string) bool {
	if query == "" {
		return true
	}
	re, err := p.getRegex(query)
	if err != nil {
		return false
	}
	return re.MatchString(name)
}

// Compile reports whether query is a valid pattern.
func (p *RegexProvider) Compile(query string) error {
	_, err := p.getRegex(query)
	return err
}

func (p *RegexProvider) getRegex(pattern string) (*regexp.Regexp, error) {
	p.cacheMu.RLock()
	re, ok := p.cache[pattern]
	p.cacheMu.RUnlock()
	if ok {
		return re, nil
	}

	expr := pattern
	if p.opts.CaseInsensitive {
		expr = "(?i)" + pattern
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, err
	}

	p.cacheMu.Lock()
	p.cache[pattern] = re
	p.cacheMu.Unlock()
	return re, nil
}

func (p *RegexProvider) Name() string {
	return "regex"
}
