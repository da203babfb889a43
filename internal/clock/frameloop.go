package clock

// FrameLoop is an explicit animation scheduler. Each Start opens a new
// generation; frames are stamped with the generation that requested them and
// frames from an earlier generation are ignored, so a frame already queued by
// the event loop when Stop is called does nothing.
type FrameLoop struct {
	generation uint64
	running    bool
	onFrame    func()
}

// NewFrameLoop returns a stopped loop calling onFrame on every accepted frame.
func NewFrameLoop(onFrame func()) *FrameLoop {
	return &FrameLoop{onFrame: onFrame}
}

// Start opens a new generation and returns its stamp. Starting a running loop
// invalidates frames of the previous generation.
func (l *FrameLoop) Start() uint64 {
	l.generation++
	l.running = true
	return l.generation
}

// Stop cancels the pending frame.
func (l *FrameLoop) Stop() {
	l.running = false
}

// Running reports whether frames are accepted.
func (l *FrameLoop) Running() bool {
	return l.running
}

// Generation returns the stamp of the current generation.
func (l *FrameLoop) Generation() uint64 {
	return l.generation
}

// Frame runs one frame stamped gen. It reports whether the frame was accepted;
// the caller schedules the next frame only when it was.
func (l *FrameLoop) Frame(gen uint64) bool {
	if !l.running || gen != l.generation {
		return false
	}
	if l.onFrame != nil {
		l.onFrame()
	}
	return true
}
