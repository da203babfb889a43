// Package scroll implements the looping scroller behind the certificates
// carousel.
//
// The scroller owns a single position that lives in [0, half) where half is
// half of the measured content height. The content is rendered twice, so when
// the position wraps at the midpoint the second copy sits exactly where the
// first one was.
package scroll

import (
	"fmt"
	"math"

	"github.com/cristianoliveira/kioskboard/internal/errors"
	"github.com/cristianoliveira/kioskboard/internal/logging"
)

// State is the run state of a Scroller.
type State int

const (
	Running State = iota
	Paused
)

func (s State) String() string {
	if s == Paused {
		return "PAUSED"
	}
	return "RUNNING"
}

// Measure returns the current content height. It is called on every update
// because the layout can change between frames.
type Measure func() float64

// Sink receives the new position after every applied update.
type Sink func(offset float64)

// Scroller is the loop scroller. It is not safe for concurrent use; all
// mutators are expected to run on the owner's event loop.
type Scroller struct {
	speed    float64
	measure  Measure
	sink     Sink
	logger   logging.Logger
	position float64
	state    State
	// skipping is set while updates are dropped for a zero-size layout, so
	// the failure is logged once per episode instead of once per frame.
	skipping bool
}

// Option configures a Scroller.
type Option func(*Scroller)

// WithSink sets the transform sink.
func WithSink(sink Sink) Option {
	return func(s *Scroller) { s.sink = sink }
}

// WithLogger sets the logger used for layout measurement failures.
func WithLogger(l logging.Logger) Option {
	return func(s *Scroller) { s.logger = l }
}

// New returns a running scroller advancing speed units per tick.
func New(speed float64, measure Measure, opts ...Option) *Scroller {
	s := &Scroller{
		speed:   speed,
		measure: measure,
		logger:  logging.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Tick advances the position by the per-frame speed while running. It reports
// whether the position changed.
func (s *Scroller) Tick() bool {
	if s.state == Paused {
		return false
	}
	return s.advance(s.speed)
}

// ApplyManualDelta moves the position by a signed amount regardless of state.
func (s *Scroller) ApplyManualDelta(delta float64) bool {
	return s.advance(delta)
}

func (s *Scroller) advance(delta float64) bool {
	half := s.halfHeight()
	if half <= 0 {
		if !s.skipping {
			s.skipping = true
			err := errors.New(errors.KindLayout, "scroll", fmt.Errorf("content height %.1f", 2*half))
			s.logger.Debug("scroll update skipped", "error", err)
		}
		return false
	}
	s.skipping = false
	s.position = normalize(s.position+delta, half)
	if s.sink != nil {
		s.sink(s.position)
	}
	return true
}

func (s *Scroller) halfHeight() float64 {
	if s.measure == nil {
		return 0
	}
	h := s.measure()
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return 0
	}
	return h / 2
}

// normalize wraps pos into [0, half).
func normalize(pos, half float64) float64 {
	if math.IsNaN(pos) || math.IsInf(pos, 0) {
		return 0
	}
	pos = math.Mod(pos, half)
	if pos < 0 {
		pos += half
	}
	// -tiny + half rounds to half
	if pos >= half {
		pos = 0
	}
	return pos
}

// Pause stops periodic ticks. Manual deltas still apply.
func (s *Scroller) Pause() { s.state = Paused }

// Resume restarts periodic ticks.
func (s *Scroller) Resume() { s.state = Running }

// Paused reports whether periodic ticks are suspended.
func (s *Scroller) Paused() bool { return s.state == Paused }

// State returns the current run state.
func (s *Scroller) State() State { return s.state }

// Position returns the current offset.
func (s *Scroller) Position() float64 { return s.position }

// Reset moves the position back to the top.
func (s *Scroller) Reset() {
	s.position = 0
	if s.sink != nil {
		s.sink(0)
	}
}
