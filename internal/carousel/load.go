package carousel

import (
	"context"
	"fmt"
	"sort"

	"github.com/cristianoliveira/kioskboard/internal/errors"
	"github.com/cristianoliveira/kioskboard/internal/fetch"
	"github.com/cristianoliveira/kioskboard/internal/media"
	"github.com/cristianoliveira/kioskboard/internal/render"
	"golang.org/x/sync/errgroup"
)

// Job is one file to render. Gen is the listing generation it belongs to.
type Job struct {
	Gen   uint64
	Index int
	Name  string
}

// Result is the outcome of one job. Exactly one of Surface and Err is set.
type Result struct {
	Job
	Surface *render.Surface
	Err     error
}

// BatchResult holds the results of a batch in job order.
type BatchResult struct {
	Gen     uint64
	Results []Result
}

// FetchListing loads the certificate listing. It does not touch state.
func (c *Carousel) FetchListing(ctx context.Context) (media.FileList, error) {
	return c.src.List(ctx)
}

// ApplyListing stores the listing and starts loading. A failure or an empty
// listing leaves the carousel in the empty state; there is no retry.
func (c *Carousel) ApplyListing(files media.FileList, err error) {
	c.gen++
	c.outstanding = 0
	c.items = nil
	c.stats = Stats{}
	c.next = 0
	c.listErr = err
	c.scroller.Reset()
	if err != nil {
		c.files = nil
		c.slots = nil
		c.state = Empty
		c.logger.Error("certificate listing failed", "error", err)
		return
	}
	c.files = files
	c.slots = make([]*Item, len(files))
	if len(files) == 0 {
		c.state = Empty
		c.logger.Info("no certificates to show")
		return
	}
	c.state = Loading
	c.logger.Info("certificate listing loaded", "files", len(files))
}

// NextBatch returns the next jobs to render.
func (c *Carousel) NextBatch() ([]Job, bool) {
	if c.state != Loading || c.next >= len(c.files) {
		return nil, false
	}
	end := min(c.next+c.cfg.BatchSize, len(c.files))
	jobs := make([]Job, 0, end-c.next)
	for i := c.next; i < end; i++ {
		jobs = append(jobs, Job{Gen: c.gen, Index: i, Name: c.files[i]})
	}
	c.next = end
	c.outstanding++
	return jobs, true
}

// RenderBatch fetches and renders jobs concurrently. A failing job never
// cancels its siblings. It does not touch state.
func (c *Carousel) RenderBatch(ctx context.Context, jobs []Job, width int) BatchResult {
	results := make([]Result, len(jobs))
	var gen uint64
	if len(jobs) > 0 {
		gen = jobs[0].Gen
	}
	var g errgroup.Group
	for i, job := range jobs {
		g.Go(func() error {
			surface, err := c.renderJob(ctx, job, width)
			results[i] = Result{Job: job, Surface: surface, Err: err}
			return nil
		})
	}
	_ = g.Wait()
	return BatchResult{Gen: gen, Results: results}
}

func (c *Carousel) renderJob(ctx context.Context, job Job, width int) (*render.Surface, error) {
	kind := media.CertificateRoute(job.Name)
	if kind == media.PDF && c.cfg.PDFTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.cfg.PDFTimeout)
		defer cancel()
	}

	type outcome struct {
		surface *render.Surface
		err     error
	}
	done := make(chan outcome, 1)
	go func() {
		data, err := fetch.ReadAll(ctx, c.src, job.Name)
		if err != nil {
			done <- outcome{err: err}
			return
		}
		s, err := c.renderer(job.Name)(data, width)
		done <- outcome{surface: s, err: err}
	}()

	select {
	case out := <-done:
		if out.err != nil && errors.KindOf(out.err) == errors.KindUnknown {
			out.err = errors.ForItem(errors.KindRender, "render", job.Name, out.err)
		}
		return out.surface, out.err
	case <-ctx.Done():
		return nil, errors.ForItem(errors.KindRender, "render", job.Name, fmt.Errorf("timed out: %w", ctx.Err()))
	}
}

// ApplyBatch records a batch and reports whether it belonged to the current
// listing. Failed items are dropped and logged; the display keeps listing
// order whatever order batches complete in. Loading ends once every batch
// handed out has been applied.
func (c *Carousel) ApplyBatch(batch BatchResult) bool {
	if batch.Gen != c.gen || c.slots == nil || c.outstanding == 0 {
		return false
	}
	c.outstanding--
	for _, r := range batch.Results {
		if r.Index < 0 || r.Index >= len(c.slots) {
			continue
		}
		if r.Err != nil || r.Surface == nil {
			c.stats.Failed++
			c.logger.Warn("certificate dropped", "file", r.Name, "error", r.Err)
			continue
		}
		item := &Item{Index: r.Index, Name: r.Name, Kind: r.Surface.Kind, Surface: r.Surface}
		c.slots[r.Index] = item
		c.stats.Loaded++
		if item.Kind == media.PDF {
			c.stats.PDFs++
		} else {
			c.stats.Images++
		}
	}
	c.rebuild()

	if c.state == Loading && c.next >= len(c.files) && c.outstanding == 0 {
		c.finish()
	}
	return true
}

func (c *Carousel) rebuild() {
	items := make([]Item, 0, len(c.slots))
	for _, slot := range c.slots {
		if slot != nil {
			items = append(items, *slot)
		}
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].Index < items[j].Index })
	c.items = items
}

func (c *Carousel) finish() {
	if len(c.items) == 0 {
		c.state = Empty
	} else {
		c.state = Ready
	}
	c.logger.Info("certificates loaded",
		"loaded", c.stats.Loaded,
		"failed", c.stats.Failed,
		"images", c.stats.Images,
		"pdfs", c.stats.PDFs)
}
