package state

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cristianoliveira/kioskboard/internal/carousel"
	"github.com/cristianoliveira/kioskboard/internal/fetch"
	"github.com/cristianoliveira/kioskboard/internal/media"
	mediarender "github.com/cristianoliveira/kioskboard/internal/render"
)

// frameMsg is one animation frame stamped with its loop generation.
type frameMsg struct {
	gen uint64
}

// certListingMsg carries the certificate listing.
type certListingMsg struct {
	files media.FileList
	err   error
}

// certBatchMsg carries one rendered batch of certificates.
type certBatchMsg struct {
	batch carousel.BatchResult
}

// batchPauseMsg ends the pause between two batches.
type batchPauseMsg struct{}

// mediaListingMsg carries the media listing.
type mediaListingMsg struct {
	files media.FileList
	err   error
}

// previewMsg carries the rendered preview of a photo.
type previewMsg struct {
	name    string
	width   int
	surface *mediarender.Surface
	err     error
}

// saveSettingsSuccessMsg is sent when settings are saved successfully.
type saveSettingsSuccessMsg struct{}

// saveSettingsFailedMsg is sent when settings save fails.
type saveSettingsFailedMsg struct {
	err error
}

func frameTick(gen uint64, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg { return frameMsg{gen: gen} })
}

func batchPause(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return batchPauseMsg{} })
}

func fetchCertificatesCmd(ctx context.Context, c *carousel.Carousel) tea.Cmd {
	return func() tea.Msg {
		files, err := c.FetchListing(ctx)
		return certListingMsg{files: files, err: err}
	}
}

func renderBatchCmd(ctx context.Context, c *carousel.Carousel, jobs []carousel.Job, width int) tea.Cmd {
	return func() tea.Msg {
		return certBatchMsg{batch: c.RenderBatch(ctx, jobs, width)}
	}
}

func fetchMediaCmd(ctx context.Context, src fetch.Source) tea.Cmd {
	return func() tea.Msg {
		files, err := src.List(ctx)
		return mediaListingMsg{files: files, err: err}
	}
}

func renderPreviewCmd(ctx context.Context, src fetch.Source, renderer mediarender.Func, name string, width int) tea.Cmd {
	return func() tea.Msg {
		data, err := fetch.ReadAll(ctx, src, name)
		if err != nil {
			return previewMsg{name: name, width: width, err: err}
		}
		surface, err := renderer(data, width)
		return previewMsg{name: name, width: width, surface: surface, err: err}
	}
}

// SaveSettingsCmd returns a command to save settings.
func SaveSettingsCmd(saveFn func() error) tea.Cmd {
	return func() tea.Msg {
		if err := saveFn(); err != nil {
			return saveSettingsFailedMsg{err: err}
		}
		return saveSettingsSuccessMsg{}
	}
}
