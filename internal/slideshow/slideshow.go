// Package slideshow implements the media panel: one photo or video at a
// time, advancing on a dwell timer (photos) or at the end of playback
// (videos), with manual navigation and swipe gestures.
package slideshow

import (
	"context"
	"fmt"
	"time"

	"github.com/cristianoliveira/kioskboard/internal/clock"
	"github.com/cristianoliveira/kioskboard/internal/errors"
	"github.com/cristianoliveira/kioskboard/internal/logging"
	"github.com/cristianoliveira/kioskboard/internal/media"
)

// Feedback labels shown after a user action.
const (
	LabelPlay  = "PLAY"
	LabelPause = "PAUSE"
	LabelNext  = "NEXT"
	LabelPrev  = "PREV"
)

// Direction is the outcome of a swipe.
type Direction int

const (
	None Direction = iota
	Forward
	Backward
)

// Config tunes the slideshow.
type Config struct {
	PhotoDwell       time.Duration
	FeedbackDuration time.Duration
	// SwipeThreshold is the horizontal travel a swipe must exceed to
	// navigate. Shorter swipes are taps.
	SwipeThreshold float64
}

// DefaultConfig returns the kiosk defaults.
func DefaultConfig() Config {
	return Config{
		PhotoDwell:       5 * time.Second,
		FeedbackDuration: time.Second,
		SwipeThreshold:   50,
	}
}

// Slideshow is the media panel state. Like the carousel it is owned by one
// event loop; Poll must be called regularly to fire timers.
type Slideshow struct {
	cfg    Config
	player VideoPlayer
	logger logging.Logger

	list    media.DisplayList
	index   int
	playing bool

	dwell    *clock.Deferred
	feedback *clock.Deferred
	label    string

	playback Playback
	// fallback is set while a video whose playback was blocked runs on the
	// photo dwell timer instead.
	fallback bool

	listErr error
	loaded  bool
}

// Option configures a Slideshow.
type Option func(*Slideshow)

// WithPlayer sets the video player.
func WithPlayer(p VideoPlayer) Option {
	return func(s *Slideshow) { s.player = p }
}

// WithLogger sets the logger.
func WithLogger(l logging.Logger) Option {
	return func(s *Slideshow) { s.logger = l }
}

// New returns an empty, playing slideshow.
func New(clk clock.Clock, cfg Config, opts ...Option) *Slideshow {
	s := &Slideshow{
		cfg:     cfg,
		player:  NoPlayer{},
		logger:  logging.Discard(),
		playing: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.dwell = clock.NewDeferred(clk, nil)
	s.feedback = clock.NewDeferred(clk, func() { s.label = "" })
	return s
}

// ApplyListing replaces the list. Unsupported files are dropped and logged.
// A failed listing leaves the slideshow empty; there is no retry.
func (s *Slideshow) ApplyListing(files media.FileList, err error) {
	s.stopPlayback()
	s.dwell.Cancel()
	s.loaded = true
	s.listErr = err
	s.index = 0
	if err != nil {
		s.list = nil
		s.logger.Error("media listing failed", "error", err)
		return
	}
	kept, dropped := media.Partition(files, media.IsMedia)
	for _, name := range dropped {
		s.logger.Warn("unsupported media skipped", "file", name, "ext", media.Ext(name))
	}
	s.list = media.Single(kept)
	s.logger.Info("media listing loaded", "files", len(s.list), "skipped", len(dropped))
	s.enter()
}

// Loaded reports whether a listing was applied.
func (s *Slideshow) Loaded() bool { return s.loaded }

// Err returns the listing failure, if any.
func (s *Slideshow) Err() error { return s.listErr }

// List returns the display list.
func (s *Slideshow) List() media.DisplayList { return s.list }

// Len returns the number of items.
func (s *Slideshow) Len() int { return len(s.list) }

// Index returns the current position.
func (s *Slideshow) Index() int { return s.index }

// Current returns the current item.
func (s *Slideshow) Current() (name string, kind media.Kind, ok bool) {
	if len(s.list) == 0 {
		return "", media.Unsupported, false
	}
	name = s.list[s.index]
	return name, media.MediaRoute(name), true
}

// Playing reports whether the slideshow advances on its own.
func (s *Slideshow) Playing() bool { return s.playing }

// Label returns the transient feedback label, "" when none is shown.
func (s *Slideshow) Label() string { return s.label }

// Position formats the header counter ("3/12").
func (s *Slideshow) Position() string {
	if len(s.list) == 0 {
		return "0/0"
	}
	return fmt.Sprintf("%d/%d", s.index+1, len(s.list))
}

// Next moves to the following item, wrapping at the end.
func (s *Slideshow) Next() {
	if len(s.list) == 0 {
		return
	}
	s.index = (s.index + 1) % len(s.list)
	s.enter()
}

// Prev moves to the preceding item, wrapping at the start.
func (s *Slideshow) Prev() {
	if len(s.list) == 0 {
		return
	}
	s.index = (s.index - 1 + len(s.list)) % len(s.list)
	s.enter()
}

// Skip navigates and shows the matching label.
func (s *Slideshow) Skip(d Direction) {
	switch d {
	case Forward:
		s.Next()
		s.showFeedback(LabelNext)
	case Backward:
		s.Prev()
		s.showFeedback(LabelPrev)
	}
}

// Classify returns the direction of a horizontal swipe from startX to endX.
// Moving the finger left goes forward.
func (s *Slideshow) Classify(startX, endX float64) Direction {
	diff := startX - endX
	switch {
	case diff > s.cfg.SwipeThreshold:
		return Forward
	case diff < -s.cfg.SwipeThreshold:
		return Backward
	default:
		return None
	}
}

// Swipe navigates for a swipe past the threshold and reports what it did.
// Shorter swipes do nothing; taps are handled by TogglePlay.
func (s *Slideshow) Swipe(startX, endX float64) Direction {
	d := s.Classify(startX, endX)
	s.Skip(d)
	return d
}

// TogglePlay switches between playing and paused.
func (s *Slideshow) TogglePlay() {
	s.playing = !s.playing
	if s.playing {
		s.showFeedback(LabelPlay)
		s.resume()
	} else {
		s.showFeedback(LabelPause)
		s.pause()
	}
}

// SetPlaying forces the play state without feedback; used to restore a
// saved session.
func (s *Slideshow) SetPlaying(playing bool) {
	if s.playing == playing {
		return
	}
	s.playing = playing
	if playing {
		s.resume()
	} else {
		s.pause()
	}
}

func (s *Slideshow) showFeedback(label string) {
	s.label = label
	s.feedback.Schedule(s.cfg.FeedbackDuration)
}

// Poll fires due timers and end-of-playback. It reports whether anything
// visible changed.
func (s *Slideshow) Poll() bool {
	changed := s.feedback.Poll()
	if !s.playing {
		return changed
	}
	if s.dwell.Poll() {
		s.Next()
		return true
	}
	if s.playback != nil {
		select {
		case err := <-s.playback.Done():
			s.playback = nil
			if err != nil {
				s.logger.Warn("video playback ended with error", "error", err)
			}
			s.Next()
			return true
		default:
		}
	}
	return changed
}

// Stop cancels timers and stops playback.
func (s *Slideshow) Stop() {
	s.dwell.Cancel()
	s.feedback.Cancel()
	s.stopPlayback()
}

// enter starts the current item from the beginning.
func (s *Slideshow) enter() {
	s.dwell.Cancel()
	s.stopPlayback()
	s.fallback = false
	if s.playing {
		s.start()
	}
}

func (s *Slideshow) start() {
	name, kind, ok := s.Current()
	if !ok {
		return
	}
	if kind != media.Video {
		s.dwell.Schedule(s.cfg.PhotoDwell)
		return
	}
	pb, err := s.player.Start(context.Background(), name)
	if err != nil {
		blocked := errors.ForItem(errors.KindAutoplay, "play", name, err)
		s.logger.Warn("autoplay blocked", "file", name, "error", blocked)
		s.fallback = true
		s.dwell.Schedule(s.cfg.PhotoDwell)
		return
	}
	s.playback = pb
}

func (s *Slideshow) pause() {
	s.dwell.Cancel()
	if s.playback != nil {
		if err := s.playback.Pause(); err != nil {
			s.logger.Warn("video pause failed", "error", err)
		}
	}
}

func (s *Slideshow) resume() {
	if s.playback != nil {
		if err := s.playback.Resume(); err != nil {
			s.logger.Warn("video resume failed", "error", err)
		}
		return
	}
	// photos and blocked videos get a fresh dwell; an ended video restarts
	s.fallback = false
	s.start()
}

func (s *Slideshow) stopPlayback() {
	if s.playback == nil {
		return
	}
	if err := s.playback.Stop(); err != nil {
		s.logger.Debug("video stop failed", "error", err)
	}
	s.playback = nil
}

// Blocked reports whether the current video runs on the dwell timer because
// playback could not start.
func (s *Slideshow) Blocked() bool { return s.fallback }
