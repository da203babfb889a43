package slideshow

import (
	"context"
	stderrors "errors"
	"fmt"
	"os/exec"
	"strings"
	"sync"
)

// ErrNoPlayer is returned when no video player is configured.
var ErrNoPlayer = stderrors.New("no video player configured")

// VideoPlayer starts playback of a media file.
type VideoPlayer interface {
	Start(ctx context.Context, name string) (Playback, error)
}

// Playback is a running video.
type Playback interface {
	// Done delivers the outcome once playback ends on its own or is stopped.
	Done() <-chan error
	Pause() error
	Resume() error
	Stop() error
}

// NoPlayer refuses every video.
type NoPlayer struct{}

func (NoPlayer) Start(context.Context, string) (Playback, error) { return nil, ErrNoPlayer }

// ExecPlayer plays videos with an external command such as
// "mpv --really-quiet --fs". The target (path or URL) is appended.
type ExecPlayer struct {
	argv    []string
	resolve func(name string) string
}

// NewExecPlayer parses command. An empty command yields NoPlayer.
func NewExecPlayer(command string, resolve func(name string) string) VideoPlayer {
	argv := strings.Fields(command)
	if len(argv) == 0 {
		return NoPlayer{}
	}
	return &ExecPlayer{argv: argv, resolve: resolve}
}

func (p *ExecPlayer) Start(ctx context.Context, name string) (Playback, error) {
	target := name
	if p.resolve != nil {
		target = p.resolve(name)
	}
	args := append(append([]string{}, p.argv[1:]...), target)
	cmd := exec.CommandContext(ctx, p.argv[0], args...)
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start %s: %w", p.argv[0], err)
	}
	pb := &execPlayback{cmd: cmd, done: make(chan error, 1)}
	go func() {
		pb.done <- cmd.Wait()
	}()
	return pb, nil
}

type execPlayback struct {
	cmd     *exec.Cmd
	done    chan error
	mu      sync.Mutex
	stopped bool
}

func (p *execPlayback) Done() <-chan error { return p.done }

func (p *execPlayback) Pause() error  { return suspend(p.cmd.Process) }
func (p *execPlayback) Resume() error { return resume(p.cmd.Process) }

func (p *execPlayback) Stop() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.stopped {
		return nil
	}
	p.stopped = true
	// a suspended process must be continued before it can exit
	_ = resume(p.cmd.Process)
	return p.cmd.Process.Kill()
}
