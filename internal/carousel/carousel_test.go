package carousel

import (
	"bytes"
	"context"
	stderrors "errors"
	"io"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cristianoliveira/kioskboard/internal/clock"
	"github.com/cristianoliveira/kioskboard/internal/errors"
	"github.com/cristianoliveira/kioskboard/internal/media"
	"github.com/cristianoliveira/kioskboard/internal/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	files   media.FileList
	listErr error
	missing map[string]bool
	opens   atomic.Int32
}

func (f *fakeSource) Section() media.Section { return media.Certificates }

func (f *fakeSource) List(context.Context) (media.FileList, error) {
	return f.files, f.listErr
}

func (f *fakeSource) Open(_ context.Context, name string) (io.ReadCloser, error) {
	f.opens.Add(1)
	if f.missing[name] {
		return nil, errors.ForItem(errors.KindNetwork, "fetch", name, stderrors.New("404"))
	}
	return io.NopCloser(bytes.NewReader([]byte(name))), nil
}

// stubRenderer draws every file as a block of 3 rows (PDFs 4) labelled with
// its name; names containing "bad" fail.
func stubRenderer(name string) render.Func {
	kind := media.CertificateRoute(name)
	return func(data []byte, width int) (*render.Surface, error) {
		if strings.Contains(string(data), "bad") {
			return nil, stderrors.New("corrupt")
		}
		h := 3
		if kind == media.PDF {
			h = 4
		}
		lines := make([]string, h)
		for i := range lines {
			lines[i] = string(data)
		}
		return &render.Surface{Kind: kind, Lines: lines, Width: width, Height: h}, nil
	}
}

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.BatchPause = 0
	cfg.Speed = 1
	return cfg
}

func newTestCarousel(src *fakeSource, opts ...Option) (*Carousel, *clock.Fake) {
	clk := clock.NewFake(time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC))
	opts = append([]Option{WithRenderer(stubRenderer)}, opts...)
	return New(src, clk, testConfig(), opts...), clk
}

func names(items []Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Name
	}
	return out
}

func TestLoadDoublesDisplayInOrder(t *testing.T) {
	src := &fakeSource{files: media.FileList{"a.png", "b.pdf", "c.jpg"}}
	c, _ := newTestCarousel(src)

	require.NoError(t, c.Load(context.Background(), 20))
	assert.Equal(t, Ready, c.State())
	assert.Equal(t, []string{"a.png", "b.pdf", "c.jpg", "a.png", "b.pdf", "c.jpg"}, names(c.Display()))

	kinds := []media.Kind{}
	for _, it := range c.Items() {
		kinds = append(kinds, it.Kind)
	}
	assert.Equal(t, []media.Kind{media.Image, media.PDF, media.Image}, kinds)
	assert.Equal(t, Stats{Loaded: 3, Images: 2, PDFs: 1}, c.Stats())

	// (3+1) + (4+1) + (3+1) rows, doubled
	assert.Equal(t, 26.0, c.ContentHeight())
}

func TestFailedItemsAreDropped(t *testing.T) {
	src := &fakeSource{
		files:   media.FileList{"a.png", "bad.pdf", "c.jpg", "gone.png", "e.png", "f.png", "g.pdf"},
		missing: map[string]bool{"gone.png": true},
	}
	c, _ := newTestCarousel(src)

	require.NoError(t, c.Load(context.Background(), 10))
	assert.Equal(t, []string{"a.png", "c.jpg", "e.png", "f.png", "g.pdf"}, names(c.Items()))
	assert.Equal(t, 2, c.Stats().Failed)
	assert.Equal(t, int32(7), src.opens.Load())
}

func TestBatchesApplyOutOfOrder(t *testing.T) {
	files := media.FileList{"1.png", "2.png", "3.png", "4.png", "5.png", "6.png", "7.png"}
	c, _ := newTestCarousel(&fakeSource{files: files})
	ctx := context.Background()

	c.ApplyListing(c.FetchListing(ctx))
	first, ok := c.NextBatch()
	require.True(t, ok)
	require.Len(t, first, 5)
	second, ok := c.NextBatch()
	require.True(t, ok)
	require.Len(t, second, 2)
	_, ok = c.NextBatch()
	require.False(t, ok)

	c.ApplyBatch(c.RenderBatch(ctx, second, 5))
	assert.Equal(t, []string{"6.png", "7.png"}, names(c.Items()))
	assert.Equal(t, Loading, c.State())

	c.ApplyBatch(c.RenderBatch(ctx, first, 5))
	assert.Equal(t, []string(files), names(c.Items()))
	assert.Equal(t, Ready, c.State())
}

func TestStaleBatchIsIgnored(t *testing.T) {
	c, _ := newTestCarousel(&fakeSource{files: media.FileList{"a.png"}})
	ctx := context.Background()
	c.ApplyListing(media.FileList{"a.png"}, nil)
	jobs, _ := c.NextBatch()
	stale := c.RenderBatch(ctx, jobs, 5)

	c.ApplyListing(media.FileList{"z.png"}, nil)
	assert.False(t, c.ApplyBatch(stale))
	assert.Empty(t, c.Items())
}

func TestLastBatchFirstWaitsForEarlierBatches(t *testing.T) {
	files := media.FileList{"1.png", "2.png", "3.png", "4.png", "5.png", "bad6.png"}
	c, _ := newTestCarousel(&fakeSource{files: files})
	ctx := context.Background()

	c.ApplyListing(c.FetchListing(ctx))
	first, _ := c.NextBatch()
	last, _ := c.NextBatch()

	require.True(t, c.ApplyBatch(c.RenderBatch(ctx, last, 5)))
	assert.Empty(t, c.Items())
	assert.Equal(t, Loading, c.State())

	require.True(t, c.ApplyBatch(c.RenderBatch(ctx, first, 5)))
	assert.Len(t, c.Items(), 5)
	assert.Equal(t, Ready, c.State())
	assert.Equal(t, 1, c.Stats().Failed)
}

func TestReloadWithSameNamesIgnoresOldBatch(t *testing.T) {
	files := media.FileList{"a.png"}
	c, _ := newTestCarousel(&fakeSource{files: files})
	ctx := context.Background()

	c.ApplyListing(files, nil)
	jobs, _ := c.NextBatch()
	stale := c.RenderBatch(ctx, jobs, 5)

	c.ApplyListing(files, nil)
	assert.False(t, c.ApplyBatch(stale))
	assert.Empty(t, c.Items())
	assert.Equal(t, Stats{}, c.Stats())
	assert.Equal(t, Loading, c.State())

	jobs, _ = c.NextBatch()
	require.True(t, c.ApplyBatch(c.RenderBatch(ctx, jobs, 5)))
	assert.Equal(t, Stats{Loaded: 1, Images: 1}, c.Stats())
	assert.Equal(t, Ready, c.State())
}

func TestListingFailureShowsEmptyState(t *testing.T) {
	src := &fakeSource{listErr: errors.LoadError("list certificates", "unexpected status 500")}
	c, _ := newTestCarousel(src)

	err := c.Load(context.Background(), 10)
	require.Error(t, err)
	assert.Equal(t, Empty, c.State())
	assert.ErrorIs(t, c.Err(), errors.ErrNetwork)
	assert.Empty(t, c.Display())
	assert.Equal(t, int32(0), src.opens.Load())

	// empty content: frames are no-ops
	c.Frame()
	assert.Equal(t, 0.0, c.Offset())
}

func TestEmptyListing(t *testing.T) {
	c, _ := newTestCarousel(&fakeSource{files: media.FileList{}})
	require.NoError(t, c.Load(context.Background(), 10))
	assert.Equal(t, Empty, c.State())
	assert.NoError(t, c.Err())
}

func TestPDFTimeout(t *testing.T) {
	release := make(chan struct{})
	defer close(release)
	slow := func(name string) render.Func {
		if media.Classify(name) != media.PDF {
			return stubRenderer(name)
		}
		return func([]byte, int) (*render.Surface, error) {
			<-release
			return nil, stderrors.New("unreachable")
		}
	}
	cfg := testConfig()
	cfg.PDFTimeout = 20 * time.Millisecond
	c := New(&fakeSource{files: media.FileList{"a.png", "slow.pdf"}}, clock.Real(), cfg, WithRenderer(slow))

	ctx := context.Background()
	c.ApplyListing(c.FetchListing(ctx))
	jobs, _ := c.NextBatch()
	result := c.RenderBatch(ctx, jobs, 10)
	require.Len(t, result.Results, 2)
	assert.NoError(t, result.Results[0].Err)
	assert.ErrorIs(t, result.Results[1].Err, errors.ErrRender)

	c.ApplyBatch(result)
	assert.Equal(t, []string{"a.png"}, names(c.Items()))
}

func TestFrameAndGestures(t *testing.T) {
	c, clk := newTestCarousel(&fakeSource{files: media.FileList{"a.png", "b.png"}})
	require.NoError(t, c.Load(context.Background(), 4))
	half := c.ContentHeight() / 2
	require.Equal(t, 8.0, half)

	c.Frame()
	c.Frame()
	assert.Equal(t, 2.0, c.Offset())

	c.Gestures().OnTouchStart(10)
	assert.True(t, c.Scroller().Paused())
	c.Gestures().OnTouchMove(7)
	assert.Equal(t, 5.0, c.Offset())
	c.Gestures().OnTouchEnd()

	c.Frame()
	assert.Equal(t, 5.0, c.Offset(), "no tick while paused")

	clk.Advance(3 * time.Second)
	c.Frame()
	assert.False(t, c.Scroller().Paused())
	assert.Equal(t, 6.0, c.Offset(), "resume and tick in the same frame")

	for i := 0; i < 100; i++ {
		c.Frame()
		require.Less(t, c.Offset(), half)
	}
}

func TestReloadStartsAtTop(t *testing.T) {
	c, _ := newTestCarousel(&fakeSource{files: media.FileList{"a.png", "b.png"}})
	require.NoError(t, c.Load(context.Background(), 4))
	c.Frame()
	c.Frame()
	require.Equal(t, 2.0, c.Offset())

	require.NoError(t, c.Load(context.Background(), 4))
	assert.Equal(t, 0.0, c.Offset())
	assert.Equal(t, Ready, c.State())
}

func TestViewport(t *testing.T) {
	c, _ := newTestCarousel(&fakeSource{files: media.FileList{"a.png", "b.png"}})
	require.NoError(t, c.Load(context.Background(), 5))

	rows := c.Viewport(6)
	require.Len(t, rows, 6)
	assert.Equal(t, "a.png", rows[0])
	assert.Equal(t, strings.Repeat(" ", 5), rows[3])
	assert.Equal(t, "b.png", rows[4])

	c.Scroller().ApplyManualDelta(6)
	rows = c.Viewport(3)
	assert.Equal(t, []string{"b.png", strings.Repeat(" ", 5), "a.png"}, rows)

	assert.Empty(t, c.Viewport(0))
}
