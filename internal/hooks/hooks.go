// Package hooks runs user scripts when the listing server sees changes.
//
// Scripts live in <hooks_dir>/<point>/ and run in name order. Only
// executable files are run. Each script gets HOOK_POINT, HOOK_TIMESTAMP and
// the variables of the event in its environment.
package hooks

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/cristianoliveira/kioskboard/internal/config"
	"github.com/cristianoliveira/kioskboard/internal/logging"
)

// Hook points.
const (
	ServerStarted  = "server-started"
	ListingChanged = "listing-changed"
)

// Failure modes.
const (
	FailAbort  = "abort"
	FailWarn   = "warn"
	FailIgnore = "ignore"
)

// waitDelay bounds how long a killed script's output is drained.
const waitDelay = time.Second

// Options tunes a Runner.
type Options struct {
	Dir         string
	FailureMode string
	Async       bool
	Timeout     time.Duration
	MaxAsync    int
}

// OptionsFromConfig reads the hooks_* keys.
func OptionsFromConfig() Options {
	dir := config.Get("hooks_dir", "")
	if dir == "" {
		dir = filepath.Join(config.Get("config_dir", ""), "hooks")
	}
	return Options{
		Dir:         dir,
		FailureMode: config.Get("hooks_failure_mode", FailWarn),
		Async:       config.GetBool("hooks_async", false),
		Timeout:     config.GetDuration("hooks_timeout", 30*time.Second),
		MaxAsync:    config.GetInt("hooks_max_async", 10),
	}
}

// Runner executes hook scripts. It is safe for concurrent use.
type Runner struct {
	opts   Options
	logger logging.Logger

	mu      sync.Mutex
	pending int
	wg      sync.WaitGroup
}

// NewRunner returns a runner; a nil logger discards.
func NewRunner(opts Options, logger logging.Logger) *Runner {
	if logger == nil {
		logger = logging.Discard()
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 30 * time.Second
	}
	if opts.MaxAsync <= 0 {
		opts.MaxAsync = 10
	}
	if opts.FailureMode == "" {
		opts.FailureMode = FailWarn
	}
	return &Runner{opts: opts, logger: logger.With("component", "hooks")}
}

// scripts returns the executable scripts of point, sorted by name. A missing
// directory has no scripts.
func (r *Runner) scripts(point string) []string {
	dir := filepath.Join(r.opts.Dir, point)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		path := filepath.Join(dir, e.Name())
		info, err := os.Stat(path)
		if err != nil || info.Mode()&0o111 == 0 {
			continue
		}
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

// Run executes the scripts of point. With the abort failure mode the first
// failing synchronous script stops the run and its error is returned.
func (r *Runner) Run(ctx context.Context, point string, env map[string]string) error {
	scripts := r.scripts(point)
	if len(scripts) == 0 {
		return nil
	}
	vars := []string{
		"HOOK_POINT=" + point,
		"HOOK_TIMESTAMP=" + time.Now().Format(time.RFC3339),
	}
	if exe, err := os.Executable(); err == nil {
		vars = append(vars, "KIOSKBOARD_BINARY="+exe)
	}
	for k, v := range env {
		vars = append(vars, k+"="+v)
	}
	r.logger.Debug("running hooks", "point", point, "scripts", len(scripts))

	for _, script := range scripts {
		if r.opts.Async {
			r.startAsync(script, vars)
			continue
		}
		if err := r.exec(ctx, script, vars); err != nil && r.opts.FailureMode == FailAbort {
			return err
		}
	}
	return nil
}

func (r *Runner) startAsync(script string, vars []string) {
	r.mu.Lock()
	if r.pending >= r.opts.MaxAsync {
		r.mu.Unlock()
		r.logger.Warn("too many hooks pending, skipping", "hook", filepath.Base(script), "max", r.opts.MaxAsync)
		return
	}
	r.pending++
	r.wg.Add(1)
	r.mu.Unlock()

	go func() {
		defer func() {
			r.mu.Lock()
			r.pending--
			r.mu.Unlock()
			r.wg.Done()
		}()
		_ = r.exec(context.Background(), script, vars)
	}()
}

// exec runs one script with the runner timeout and logs the outcome.
func (r *Runner) exec(ctx context.Context, script string, vars []string) error {
	name := filepath.Base(script)
	ctx, cancel := context.WithTimeout(ctx, r.opts.Timeout)
	defer cancel()

	start := time.Now()
	cmd := exec.CommandContext(ctx, script)
	cmd.Env = append(os.Environ(), vars...)
	killGroup(cmd)
	// Output pipes held open by orphaned children must not outlive the timeout.
	cmd.WaitDelay = waitDelay
	output, err := cmd.CombinedOutput()
	duration := time.Since(start)

	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			err = fmt.Errorf("timed out after %s", r.opts.Timeout)
		}
		err = fmt.Errorf("hook %s failed: %w", name, err)
		if r.opts.FailureMode != FailIgnore {
			r.logger.Warn("hook failed", "hook", name, "error", err,
				"output", strings.TrimSpace(string(output)), "duration", duration)
		}
		return err
	}
	r.logger.Debug("hook completed", "hook", name, "duration", duration)
	return nil
}

// Pending returns the number of async hooks still running.
func (r *Runner) Pending() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pending
}

// Wait blocks until every async hook has finished.
func (r *Runner) Wait() {
	r.wg.Wait()
}
