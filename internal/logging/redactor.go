package logging

import (
	"net/url"
	"regexp"
	"strings"
)

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// redactor redacts sensitive values in log key-value pairs.
type redactor struct {
	sensitiveWords map[string]bool
}

func newRedactor() *redactor {
	words := []string{"secret", "password", "token", "key", "auth", "credential"}
	m := make(map[string]bool, len(words))
	for _, w := range words {
		m[w] = true
	}
	return &redactor{sensitiveWords: m}
}

// redact walks key-value pairs ([key1, value1, key2, value2, ...]) and returns
// a copy where sensitive values are replaced. Keys naming a URL keep scheme,
// host and path but lose the query string, since embed links for boards carry
// access tokens there.
func (r *redactor) redact(pairs []any) []any {
	if len(pairs) == 0 {
		return pairs
	}
	result := make([]any, len(pairs))
	copy(result, pairs)
	for i := 0; i+1 < len(result); i += 2 {
		key, ok := result[i].(string)
		if !ok {
			continue
		}
		switch {
		case r.isSensitive(key):
			result[i+1] = "[REDACTED]"
		case r.isURLKey(key):
			if s, ok := result[i+1].(string); ok {
				result[i+1] = stripQuery(s)
			}
		}
	}
	return result
}

// isSensitive returns true if the key contains any sensitive word as a separate segment.
func (r *redactor) isSensitive(key string) bool {
	for _, part := range nonAlphanumeric.Split(strings.ToLower(key), -1) {
		if r.sensitiveWords[part] {
			return true
		}
	}
	return false
}

func (r *redactor) isURLKey(key string) bool {
	for _, part := range nonAlphanumeric.Split(strings.ToLower(key), -1) {
		if part == "url" {
			return true
		}
	}
	return false
}

func stripQuery(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.RawQuery == "" {
		return raw
	}
	u.RawQuery = "[REDACTED]"
	u.Fragment = ""
	return u.String()
}
