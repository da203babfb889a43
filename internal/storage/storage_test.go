package storage

import (
	"context"
	"testing"

	"github.com/cristianoliveira/kioskboard/internal/media"
	"github.com/cristianoliveira/kioskboard/internal/storage/sqlite"
	"github.com/stretchr/testify/require"
)

func TestNewForBackend(t *testing.T) {
	dir := t.TempDir()

	s, err := NewForBackend("", dir)
	require.NoError(t, err)
	require.IsType(t, &MemoryStorage{}, s)

	s, err = NewForBackend(" SQLite ", dir)
	require.NoError(t, err)
	require.IsType(t, &sqlite.SQLiteStorage{}, s)
	require.NoError(t, s.Close())

	s, err = NewForBackend("sqlite", "")
	require.NoError(t, err)
	require.IsType(t, &MemoryStorage{}, s)

	s, err = NewForBackend("redis", dir)
	require.NoError(t, err)
	require.IsType(t, &MemoryStorage{}, s)
}

func TestMemoryStorage(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStorage()

	entries, err := m.List(ctx, media.Certificates)
	require.NoError(t, err)
	require.Empty(t, entries)

	in := []media.Entry{{Name: "b.pdf"}, {Name: "a.png"}}
	require.NoError(t, m.Replace(ctx, media.Certificates, in))
	in[0].Name = "mutated"

	entries, err = m.List(ctx, media.Certificates)
	require.NoError(t, err)
	require.Equal(t, media.FileList{"a.png", "b.pdf"}, media.Names(entries))

	entries[0].Name = "mutated"
	again, _ := m.List(ctx, media.Certificates)
	require.Equal(t, "a.png", again[0].Name)
}
