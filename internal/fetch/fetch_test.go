package fetch

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/cristianoliveira/kioskboard/internal/catalog"
	"github.com/cristianoliveira/kioskboard/internal/errors"
	"github.com/cristianoliveira/kioskboard/internal/media"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPSourceList(t *testing.T) {
	var gotUA, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotPath = r.URL.Path
		_, _ = io.WriteString(w, `["a.png","b.pdf","c.jpg"]`)
	}))
	defer srv.Close()

	src := NewHTTPSource(srv.URL+"/", media.Certificates, srv.Client())
	names, err := src.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, media.FileList{"a.png", "b.pdf", "c.jpg"}, names)
	assert.Equal(t, "/api/certificates", gotPath)
	assert.Contains(t, gotUA, "kioskboard/")
	assert.Equal(t, media.Certificates, src.Section())
}

func TestHTTPSourceListFailures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"server error", http.StatusInternalServerError, `{"error":"boom"}`},
		{"error object with 200", http.StatusOK, `{"error":"boom"}`},
		{"not json", http.StatusOK, `<html>`},
		{"mixed array", http.StatusOK, `["a.png", 3]`},
		{"null", http.StatusOK, `null`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls++
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			}))
			defer srv.Close()

			_, err := NewHTTPSource(srv.URL, media.Videos, srv.Client()).List(context.Background())
			require.Error(t, err)
			assert.ErrorIs(t, err, errors.ErrNetwork)
			assert.Equal(t, 1, calls, "no retry")
		})
	}
}

func TestHTTPSourceUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewHTTPSource(url, media.Videos, nil).List(context.Background())
	assert.ErrorIs(t, err, errors.ErrNetwork)
}

func TestHTTPSourceOpen(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/Videos/my clip.mp4" {
			_, _ = io.WriteString(w, "data")
			return
		}
		http.NotFound(w, r)
	}))
	defer srv.Close()

	src := NewHTTPSource(srv.URL, media.Videos, srv.Client())
	data, err := ReadAll(context.Background(), src, "my clip.mp4")
	require.NoError(t, err)
	assert.Equal(t, "data", string(data))

	_, err = src.Open(context.Background(), "missing.mp4")
	assert.ErrorIs(t, err, errors.ErrNetwork)
}

func TestDirSource(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.pdf", "a.png", ".x.png", "n.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(name), 0o644))
	}
	scanner, err := catalog.NewScanner([]string{".*"})
	require.NoError(t, err)

	src := NewDirSource(dir, media.Certificates, scanner)
	names, err := src.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, media.FileList{"a.png", "b.pdf"}, names)

	data, err := ReadAll(context.Background(), src, "b.pdf")
	require.NoError(t, err)
	assert.Equal(t, "b.pdf", string(data))

	_, err = src.Open(context.Background(), "../etc/passwd")
	assert.ErrorIs(t, err, errors.ErrNetwork)
	_, err = src.Open(context.Background(), "missing.png")
	assert.ErrorIs(t, err, errors.ErrNetwork)
}
