package search

import (
	"testing"

	"github.com/cristianoliveira/kioskboard/internal/media"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var files = media.FileList{"Award 2024.pdf", "award-photo.jpg", "intro.mp4", "Team.PNG"}

func TestSubstringProvider(t *testing.T) {
	tests := []struct {
		name  string
		query string
		ci    bool
		want  media.FileList
	}{
		{"empty query matches all", "", false, files},
		{"case sensitive", "award", false, media.FileList{"award-photo.jpg"}},
		{"case insensitive", "award", true, media.FileList{"Award 2024.pdf", "award-photo.jpg"}},
		{"no match", "zzz", true, media.FileList{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewSubstringProvider(WithCaseInsensitive(tt.ci))
			assert.Equal(t, tt.want, Filter(p, files, tt.query))
		})
	}
}

func TestRegexProvider(t *testing.T) {
	p := NewRegexProvider()
	assert.Equal(t, media.FileList{"Award 2024.pdf"}, Filter(p, files, `\d{4}`))
	assert.Equal(t, media.FileList{}, Filter(p, files, `\.png$`))
	assert.Equal(t, media.FileList{"Team.PNG"}, Filter(NewRegexProvider(WithCaseInsensitive(true)), files, `\.png$`))

	t.Run("invalid pattern matches nothing", func(t *testing.T) {
		assert.Equal(t, media.FileList{}, Filter(p, files, "("))
		assert.Error(t, p.(*RegexProvider).Compile("("))
	})
}

func TestTokenProvider(t *testing.T) {
	p := NewTokenProvider(WithCaseInsensitive(true))

	assert.Equal(t, media.FileList{"Award 2024.pdf"}, Filter(p, files, "award 2024"))
	assert.Equal(t, media.FileList{"award-photo.jpg", "Team.PNG"}, Filter(p, files, "image"))
	assert.Equal(t, media.FileList{"Award 2024.pdf"}, Filter(p, files, "award pdf"))
	assert.Equal(t, media.FileList{"Award 2024.pdf", "intro.mp4"}, Filter(p, files, "pdf video"))
	assert.Equal(t, files, Filter(p, files, "   "))
}

func TestNew(t *testing.T) {
	for mode, want := range map[string]string{"": "substring", "substring": "substring", "regex": "regex", "token": "token"} {
		p, err := New(mode)
		require.NoError(t, err)
		assert.Equal(t, want, p.Name())
	}
	_, err := New("fuzzy")
	assert.Error(t, err)
}
