package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/cristianoliveira/kioskboard/internal/media"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) (*SQLiteStorage, string) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "state", "catalog.db")
	s, err := NewSQLiteStorage(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s, dbPath
}

func TestNewSQLiteStorageRejectsEmptyPath(t *testing.T) {
	_, err := NewSQLiteStorage("  ")
	require.Error(t, err)
}

func TestReplaceAndList(t *testing.T) {
	s, _ := newTestStorage(t)
	ctx := context.Background()
	mod := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, s.Replace(ctx, media.Certificates, []media.Entry{
		{Name: "b.pdf", Kind: media.PDF, Size: 10, ModTime: mod},
		{Name: "a.png", Kind: media.Image, Size: 5, Orientation: 6},
	}))
	require.NoError(t, s.Replace(ctx, media.Videos, []media.Entry{{Name: "clip.mp4", Kind: media.Video}}))

	certs, err := s.List(ctx, media.Certificates)
	require.NoError(t, err)
	require.Len(t, certs, 2)
	require.Equal(t, "a.png", certs[0].Name)
	require.Equal(t, 6, certs[0].Orientation)
	require.Equal(t, media.Image, certs[0].Kind)
	require.True(t, certs[0].ModTime.IsZero())
	require.Equal(t, "b.pdf", certs[1].Name)
	require.True(t, mod.Equal(certs[1].ModTime))
	require.Equal(t, media.Certificates, certs[1].Section)

	require.NoError(t, s.Replace(ctx, media.Certificates, []media.Entry{{Name: "c.jpg", Kind: media.Image}}))
	certs, err = s.List(ctx, media.Certificates)
	require.NoError(t, err)
	require.Equal(t, media.FileList{"c.jpg"}, media.Names(certs))

	videos, err := s.List(ctx, media.Videos)
	require.NoError(t, err)
	require.Equal(t, media.FileList{"clip.mp4"}, media.Names(videos))
}

func TestCatalogSurvivesReopen(t *testing.T) {
	s, dbPath := newTestStorage(t)
	ctx := context.Background()
	require.NoError(t, s.Replace(ctx, media.Videos, []media.Entry{{Name: "x.webm"}}))
	require.NoError(t, s.Close())

	reopened, err := NewSQLiteStorage(dbPath)
	require.NoError(t, err)
	defer reopened.Close()
	entries, err := reopened.List(ctx, media.Videos)
	require.NoError(t, err)
	require.Equal(t, media.FileList{"x.webm"}, media.Names(entries))
}

func TestReplaceDuplicateNameRollsBack(t *testing.T) {
	s, _ := newTestStorage(t)
	ctx := context.Background()
	require.NoError(t, s.Replace(ctx, media.Videos, []media.Entry{{Name: "keep.mp4"}}))

	err := s.Replace(ctx, media.Videos, []media.Entry{{Name: "dup.mp4"}, {Name: "dup.mp4"}})
	require.Error(t, err)

	entries, err := s.List(ctx, media.Videos)
	require.NoError(t, err)
	require.Equal(t, media.FileList{"keep.mp4"}, media.Names(entries))
}
