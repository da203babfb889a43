// Package carousel composes the certificate listing, the renderers, the loop
// scroller and the gesture controller into the auto-scrolling certificates
// panel.
//
// The carousel is state owned by one event loop. Loading is split so the
// slow parts (fetching the listing, rendering a batch) are plain functions
// that can run anywhere, while Apply* methods mutate state and must run on
// the owner's loop.
package carousel

import (
	"context"
	"time"

	"github.com/cristianoliveira/kioskboard/internal/clock"
	"github.com/cristianoliveira/kioskboard/internal/fetch"
	"github.com/cristianoliveira/kioskboard/internal/gesture"
	"github.com/cristianoliveira/kioskboard/internal/logging"
	"github.com/cristianoliveira/kioskboard/internal/media"
	"github.com/cristianoliveira/kioskboard/internal/render"
	"github.com/cristianoliveira/kioskboard/internal/scroll"
)

// State is the load state of the carousel.
type State int

const (
	Idle State = iota
	Loading
	Ready
	Empty
)

func (s State) String() string {
	switch s {
	case Loading:
		return "loading"
	case Ready:
		return "ready"
	case Empty:
		return "empty"
	default:
		return "idle"
	}
}

// Config tunes loading and scrolling.
type Config struct {
	BatchSize  int
	BatchPause time.Duration
	PDFTimeout time.Duration
	// Gap is the number of blank rows after each item.
	Gap int
	// Speed is the auto-scroll advance per frame, in rows.
	Speed   float64
	Gesture gesture.Config
}

// DefaultConfig returns the kiosk defaults.
func DefaultConfig() Config {
	return Config{
		BatchSize:  5,
		BatchPause: 100 * time.Millisecond,
		PDFTimeout: 15 * time.Second,
		Gap:        1,
		Speed:      0.1,
		Gesture:    gesture.DefaultConfig(),
	}
}

// Item is a rendered certificate.
type Item struct {
	// Index is the position of the file in the listing.
	Index   int
	Name    string
	Kind    media.Kind
	Surface *render.Surface
}

// Stats counts the outcome of a load.
type Stats struct {
	Loaded int
	Failed int
	Images int
	PDFs   int
}

// Carousel is the certificates panel state.
type Carousel struct {
	src      fetch.Source
	cfg      Config
	logger   logging.Logger
	renderer func(name string) render.Func

	scroller *scroll.Scroller
	gesture  *gesture.Controller

	state   State
	files   media.FileList
	items   []Item
	slots   []*Item
	next    int
	stats   Stats
	listErr error
	// gen stamps the current listing; batches of older listings are ignored.
	gen uint64
	// outstanding counts batches handed out and not yet applied.
	outstanding int
}

// Option configures a Carousel.
type Option func(*Carousel)

// WithLogger sets the logger.
func WithLogger(l logging.Logger) Option {
	return func(c *Carousel) { c.logger = l }
}

// WithRenderer replaces the renderer selection, mainly for tests.
func WithRenderer(r func(name string) render.Func) Option {
	return func(c *Carousel) { c.renderer = r }
}

// New returns an idle carousel reading from src.
func New(src fetch.Source, clk clock.Clock, cfg Config, opts ...Option) *Carousel {
	if cfg.BatchSize < 1 {
		cfg.BatchSize = 1
	}
	c := &Carousel{
		src:      src,
		cfg:      cfg,
		logger:   logging.Discard(),
		renderer: render.ForCertificate,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.scroller = scroll.New(cfg.Speed, c.ContentHeight, scroll.WithLogger(c.logger))
	c.gesture = gesture.New(c.scroller, clk, cfg.Gesture)
	return c
}

// Scroller returns the loop scroller.
func (c *Carousel) Scroller() *scroll.Scroller { return c.scroller }

// Gestures returns the gesture controller.
func (c *Carousel) Gestures() *gesture.Controller { return c.gesture }

// State returns the load state.
func (c *Carousel) State() State { return c.state }

// Files returns the listing.
func (c *Carousel) Files() media.FileList { return c.files }

// Stats returns the load counters.
func (c *Carousel) Stats() Stats { return c.stats }

// Err returns the listing failure behind an empty state, if any.
func (c *Carousel) Err() error { return c.listErr }

// Frame runs one animation frame: a due resume first, then the tick, so a
// gesture always wins over the periodic advance.
func (c *Carousel) Frame() {
	c.gesture.Poll()
	c.scroller.Tick()
}

// Offset returns the scroll position in rows.
func (c *Carousel) Offset() float64 { return c.scroller.Position() }

// Stop cancels pending timers; used when the panel goes away.
func (c *Carousel) Stop() { c.gesture.Stop() }

// Load runs the whole load synchronously: listing, then every batch with
// the configured pause in between.
func (c *Carousel) Load(ctx context.Context, width int) error {
	files, err := c.FetchListing(ctx)
	c.ApplyListing(files, err)
	if err != nil {
		return err
	}
	for {
		batch, ok := c.NextBatch()
		if !ok {
			return nil
		}
		c.ApplyBatch(c.RenderBatch(ctx, batch, width))
		if c.state != Loading {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(c.cfg.BatchPause):
		}
	}
}
