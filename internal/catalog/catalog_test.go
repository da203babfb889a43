package catalog

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/cristianoliveira/kioskboard/internal/media"
	"github.com/cristianoliveira/kioskboard/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
	}
}

func defaultScanner(t *testing.T) *Scanner {
	t.Helper()
	s, err := NewScanner([]string{".*", "~$*", "Thumbs.db"})
	require.NoError(t, err)
	return s
}

func TestScannerFiltersAndSorts(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "c.jpg", "a.png", "b.PDF", "notes.txt", ".hidden.png", "~$draft.pdf", "clip.mp4", "Thumbs.db")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.png"), 0o755))

	s := defaultScanner(t)
	certs, err := s.Names(dir, media.Certificates)
	require.NoError(t, err)
	assert.Equal(t, media.FileList{"a.png", "b.PDF", "c.jpg"}, certs)

	videos, err := s.Names(dir, media.Videos)
	require.NoError(t, err)
	assert.Equal(t, media.FileList{"a.png", "c.jpg", "clip.mp4"}, videos)
}

func TestScannerMissingFolderIsEmpty(t *testing.T) {
	names, err := defaultScanner(t).Names(filepath.Join(t.TempDir(), "absent"), media.Videos)
	require.NoError(t, err)
	assert.NotNil(t, names)
	assert.Empty(t, names)
}

func TestScannerRejectsBadPattern(t *testing.T) {
	_, err := NewScanner([]string{"[a-"})
	assert.Error(t, err)
}

func TestScanEntries(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "a.png", "b.pdf")
	entries, err := defaultScanner(t).Scan(dir, media.Certificates)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, media.Image, entries[0].Kind)
	assert.Equal(t, media.PDF, entries[1].Kind)
	assert.Equal(t, int64(1), entries[1].Size)
	// not a real JPEG/PNG, so no EXIF
	assert.Zero(t, entries[0].Orientation)
}

func newCatalog(t *testing.T) (*Catalog, string, string) {
	t.Helper()
	root := t.TempDir()
	certs := filepath.Join(root, "Certificates")
	videos := filepath.Join(root, "Videos")
	c := New(defaultScanner(t), storage.NewMemoryStorage(), map[media.Section]string{
		media.Certificates: certs,
		media.Videos:       videos,
	}, nil)
	require.NoError(t, c.EnsureDirs())
	return c, certs, videos
}

func TestCatalogRefreshAndNames(t *testing.T) {
	c, certs, videos := newCatalog(t)
	ctx := context.Background()
	touch(t, certs, "b.pdf", "a.png")
	touch(t, videos, "clip.webm")

	names, err := c.Names(ctx, media.Certificates)
	require.NoError(t, err)
	assert.Empty(t, names, "nothing is listed before the first refresh")

	require.NoError(t, c.RefreshAll(ctx))
	names, err = c.Names(ctx, media.Certificates)
	require.NoError(t, err)
	assert.Equal(t, media.FileList{"a.png", "b.pdf"}, names)

	touch(t, certs, "c.jpg")
	c.SetLive(true)
	names, err = c.Names(ctx, media.Certificates)
	require.NoError(t, err)
	assert.Equal(t, media.FileList{"a.png", "b.pdf", "c.jpg"}, names)
}

func TestSectionOf(t *testing.T) {
	c, certs, videos := newCatalog(t)
	s, ok := c.sectionOf(filepath.Join(certs, "x.pdf"))
	require.True(t, ok)
	assert.Equal(t, media.Certificates, s)
	s, ok = c.sectionOf(filepath.Join(videos, "y.mp4"))
	require.True(t, ok)
	assert.Equal(t, media.Videos, s)
	_, ok = c.sectionOf(filepath.Join(videos, "nested", "y.mp4"))
	assert.False(t, ok)
}

func TestWatchRefreshesOnChange(t *testing.T) {
	c, certs, _ := newCatalog(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, c.RefreshAll(ctx))

	var mu sync.Mutex
	var changed []media.Section
	done := make(chan error, 1)
	go func() {
		done <- c.Watch(ctx, 20*time.Millisecond, func(s media.Section) {
			mu.Lock()
			changed = append(changed, s)
			mu.Unlock()
		})
	}()

	require.Eventually(t, func() bool {
		// keep writing until the watcher is registered and picks it up
		touch(t, certs, "new.png")
		names, err := c.Names(ctx, media.Certificates)
		return err == nil && len(names) == 1
	}, 5*time.Second, 50*time.Millisecond)

	mu.Lock()
	assert.Contains(t, changed, media.Certificates)
	mu.Unlock()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop")
	}
}
