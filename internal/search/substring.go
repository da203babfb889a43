package search

import "strings"

// SubstringProvider matches names containing the query.
type SubstringProvider struct {
	opts Options
}

// NewSubstringProvider creates a new substring search provider.
func NewSubstringProvider(opts ...Option) Provider {
	return &SubstringProvider{opts: applyOptions(opts)}
}

func (p *SubstringProvider) Match(name, query string) bool {
	if query == "" {
		return true
	}
	if p.opts.CaseInsensitive {
		name, query = strings.ToLower(name), strings.ToLower(query)
	}
	return strings.Contains(name, query)
}

func (p *SubstringProvider) Name() string {
	return "substring"
}
