// Package gesture turns wheel, touch and drag input into manual scroll deltas
// and manages the idle timer that hands control back to auto-scroll.
package gesture

import (
	"time"

	"github.com/cristianoliveira/kioskboard/internal/clock"
)

// Target is the scroller a Controller drives.
type Target interface {
	Pause()
	Resume()
	ApplyManualDelta(delta float64) bool
}

// Config holds the tuning of a Controller.
type Config struct {
	// ResumeDelay is the idle time after the last interaction before
	// auto-scroll resumes.
	ResumeDelay time.Duration
	// WheelScale multiplies wheel deltas.
	WheelScale float64
	// DragScale multiplies touch and drag deltas.
	DragScale float64
}

// DefaultConfig matches the kiosk defaults.
func DefaultConfig() Config {
	return Config{
		ResumeDelay: 3 * time.Second,
		WheelScale:  0.5,
		DragScale:   1,
	}
}

// track follows one pointer stream (touch or mouse drag).
type track struct {
	active bool
	last   float64
}

// Controller owns the interaction state of a scroller: whether it is paused by
// the user and the pending resume. Start events pause synchronously; end
// events arm the resume. Every start cancels the pending resume first, so the
// last interaction always owns the timer.
type Controller struct {
	target  Target
	cfg     Config
	resume  *clock.Deferred
	touch   track
	drag    track
	hovered bool
}

// New returns a controller for target.
func New(target Target, clk clock.Clock, cfg Config) *Controller {
	c := &Controller{target: target, cfg: cfg}
	c.resume = clock.NewDeferred(clk, target.Resume)
	return c
}

func (c *Controller) begin() {
	c.resume.Cancel()
	c.target.Pause()
}

func (c *Controller) armResume() {
	c.resume.Schedule(c.cfg.ResumeDelay)
}

// OnWheel pauses, applies the scaled delta and arms the wheel idle timeout.
func (c *Controller) OnWheel(deltaY float64) {
	c.begin()
	c.target.ApplyManualDelta(deltaY * c.cfg.WheelScale)
	c.armResume()
}

// OnTouchStart begins a touch at screen coordinate y.
func (c *Controller) OnTouchStart(y float64) {
	c.begin()
	c.touch = track{active: true, last: y}
}

// OnTouchMove scrolls by the distance the finger travelled since the last
// event. Moving the finger up advances the content.
func (c *Controller) OnTouchMove(y float64) {
	c.move(&c.touch, y)
}

// OnTouchEnd ends the touch and arms the resume.
func (c *Controller) OnTouchEnd() {
	c.touch.active = false
	c.armResume()
}

// OnDragStart begins a mouse drag at screen coordinate y.
func (c *Controller) OnDragStart(y float64) {
	c.begin()
	c.drag = track{active: true, last: y}
}

// OnDragMove scrolls like OnTouchMove.
func (c *Controller) OnDragMove(y float64) {
	c.move(&c.drag, y)
}

// OnDragEnd ends the drag and arms the resume.
func (c *Controller) OnDragEnd() {
	c.drag.active = false
	c.armResume()
}

func (c *Controller) move(t *track, y float64) {
	if !t.active {
		return
	}
	delta := (t.last - y) * c.cfg.DragScale
	t.last = y
	if delta != 0 {
		c.target.ApplyManualDelta(delta)
	}
}

// OnPointerEnter pauses while the pointer rests on the content.
func (c *Controller) OnPointerEnter() {
	if c.hovered {
		return
	}
	c.hovered = true
	c.begin()
}

// OnPointerLeave arms the resume when the pointer leaves the content.
func (c *Controller) OnPointerLeave() {
	if !c.hovered {
		return
	}
	c.hovered = false
	c.armResume()
}

// Hovered reports whether the pointer is over the content.
func (c *Controller) Hovered() bool { return c.hovered }

// interacting reports whether a touch or drag is in progress.
func (c *Controller) interacting() bool { return c.touch.active || c.drag.active }

// ResumePending reports whether a resume is armed.
func (c *Controller) ResumePending() bool { return c.resume.Pending() }

// Poll resumes the target if the idle delay has elapsed. The owner calls it
// once per frame before ticking the scroller.
func (c *Controller) Poll() bool {
	return c.resume.Poll()
}

// Stop cancels the pending resume and any gesture in progress.
func (c *Controller) Stop() {
	c.resume.Cancel()
	c.touch.active = false
	c.drag.active = false
	c.hovered = false
}
