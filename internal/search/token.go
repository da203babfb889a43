package search

import (
	"strings"

	"github.com/cristianoliveira/kioskboard/internal/media"
)

// TokenProvider splits the query on whitespace; every text token must be
// contained in the name. The tokens "image", "pdf" and "video" restrict the
// kind instead, and several kind tokens are alternatives.
type TokenProvider struct {
	opts Options
}

// NewTokenProvider creates a new token search provider.
func NewTokenProvider(opts ...Option) Provider {
	return &TokenProvider{opts: applyOptions(opts)}
}

var kindTokens = map[string]media.Kind{
	"image": media.Image,
	"pdf":   media.PDF,
	"video": media.Video,
}

func (p *TokenProvider) Match(name, query string) bool {
	tokens := strings.Fields(query)
	if len(tokens) == 0 {
		return true
	}

	kinds := map[media.Kind]bool{}
	subject := name
	if p.opts.CaseInsensitive {
		subject = strings.ToLower(name)
	}
	for _, token := range tokens {
		if kind, ok := kindTokens[strings.ToLower(token)]; ok {
			kinds[kind] = true
			continue
		}
		if p.opts.CaseInsensitive {
			token = strings.ToLower(token)
		}
		if !strings.Contains(subject, token) {
			return false
		}
	}
	return len(kinds) == 0 || kinds[media.Classify(name)]
}

func (p *TokenProvider) Name() string {
	return "token"
}
