package clock

import "time"

// Deferred is a cancellable action that becomes due after a delay. Scheduling
// again replaces the pending deadline, so the last caller wins.
type Deferred struct {
	clock    Clock
	action   func()
	deadline time.Time
	pending  bool
}

// NewDeferred returns an idle Deferred that runs action when polled after its
// deadline. action may be nil when the caller only inspects Poll's result.
func NewDeferred(c Clock, action func()) *Deferred {
	return &Deferred{clock: c, action: action}
}

// Schedule arms the action to fire delay from now, replacing any pending one.
func (d *Deferred) Schedule(delay time.Duration) {
	d.deadline = d.clock.Now().Add(delay)
	d.pending = true
}

// Cancel drops the pending action, if any.
func (d *Deferred) Cancel() {
	d.pending = false
}

// Pending reports whether an action is armed.
func (d *Deferred) Pending() bool {
	return d.pending
}

// Poll runs the action if it is due and reports whether it ran.
func (d *Deferred) Poll() bool {
	if !d.pending || d.clock.Now().Before(d.deadline) {
		return false
	}
	d.pending = false
	if d.action != nil {
		d.action()
	}
	return true
}
