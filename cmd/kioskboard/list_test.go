package main

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/cristianoliveira/kioskboard/internal/media"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeListClient struct {
	listings map[media.Section]media.FileList
	err      error
}

func (f fakeListClient) List(_ context.Context, section media.Section) (media.FileList, error) {
	return f.listings[section], f.err
}

func TestListPrintsBothSections(t *testing.T) {
	client := fakeListClient{listings: map[media.Section]media.FileList{
		media.Certificates: {"a.pdf", "b.png"},
	}}

	out, err := execute(t, NewListCmd(client))
	require.NoError(t, err)
	assert.Equal(t, "certificates (2)\na.pdf\nb.png\n\nvideos (0)\n", out)
}

func TestListSingleSection(t *testing.T) {
	client := fakeListClient{listings: map[media.Section]media.FileList{
		media.Videos: {"clip.mp4", "photo.jpg"},
	}}

	out, err := execute(t, NewListCmd(client), "videos")
	require.NoError(t, err)
	assert.Equal(t, "clip.mp4\nphoto.jpg\n", out)
}

func TestListJSON(t *testing.T) {
	client := fakeListClient{listings: map[media.Section]media.FileList{
		media.Certificates: {"a.pdf"},
	}}

	out, err := execute(t, NewListCmd(client), "certificates", "--format", "json")
	require.NoError(t, err)
	assert.JSONEq(t, `["a.pdf"]`, out)

	out, err = execute(t, NewListCmd(client), "videos", "--format", "json")
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, out)

	out, err = execute(t, NewListCmd(client), "--format", "json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"certificates":["a.pdf"],"videos":[]}`, out)
}

func TestListUnknownSection(t *testing.T) {
	_, err := execute(t, NewListCmd(fakeListClient{}), "music")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown section")
}

func TestListClientError(t *testing.T) {
	_, err := execute(t, NewListCmd(fakeListClient{err: errors.New("boom")}), "certificates")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "list certificates: boom")
}

func TestSourceListerReadsFolders(t *testing.T) {
	dir := setupConfig(t)
	writeFiles(t, filepath.Join(dir, "Certificates"), "b.pdf", "a.png", "notes.txt", ".hidden.pdf")
	writeFiles(t, filepath.Join(dir, "Videos"), "clip.mp4")

	certs, err := sourceLister{}.List(context.Background(), media.Certificates)
	require.NoError(t, err)
	assert.Equal(t, media.FileList{"a.png", "b.pdf"}, certs)

	videos, err := sourceLister{}.List(context.Background(), media.Videos)
	require.NoError(t, err)
	assert.Equal(t, media.FileList{"clip.mp4"}, videos)
}

func TestListFilter(t *testing.T) {
	client := fakeListClient{listings: map[media.Section]media.FileList{
		media.Videos: {"Intro.mp4", "photo.jpg", "outro.webm"},
	}}

	out, err := execute(t, NewListCmd(client), "videos", "--filter", "intro", "--ignore-case")
	require.NoError(t, err)
	assert.Equal(t, "Intro.mp4\n", out)

	out, err = execute(t, NewListCmd(client), "videos", "--filter", "video", "--mode", "token")
	require.NoError(t, err)
	assert.Equal(t, "Intro.mp4\noutro.webm\n", out)

	out, err = execute(t, NewListCmd(client), "videos", "--filter", `^o`, "--mode", "regex", "--format", "json")
	require.NoError(t, err)
	assert.JSONEq(t, `["outro.webm"]`, out)
}

func TestListRejectsBadFilter(t *testing.T) {
	_, err := execute(t, NewListCmd(fakeListClient{}), "--filter", "(", "--mode", "regex")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid filter")

	_, err = execute(t, NewListCmd(fakeListClient{}), "--mode", "fuzzy")
	assert.Error(t, err)
}
