package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	tests := []struct {
		name     string
		version  string
		commit   string
		expected string
	}{
		{name: "development build", version: "development", commit: "unknown", expected: "development"},
		{name: "release with commit", version: "1.0.0", commit: "abc1234", expected: "1.0.0+abc1234"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			origVersion, origCommit := Version, Commit
			defer func() { Version, Commit = origVersion, origCommit }()

			Version, Commit = tt.version, tt.commit
			assert.Equal(t, tt.expected, String())
			assert.Equal(t, "kioskboard/"+tt.expected, UserAgent())
		})
	}
}
