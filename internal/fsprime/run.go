package fsprime

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/charlievieth/fastwalk"
)

// DefaultProgressInterval is the default interval for progress updates.
const DefaultProgressInterval = 500 * time.Millisecond

// logger provides conditional debug output.
type logger struct {
	enabled bool
}

// printf prints debug output if logging is enabled.
func (l logger) printf(format string, args ...any) {
	if l.enabled {
		//nolint:forbidigo // Debug output to console
		fmt.Printf(format, args...)
	}
}

// startProgressReporter invokes hook(files, bytes) on each tick until ctx is
// done. The hook runs on the reporter goroutine, so a slow hook delays its
// own next tick but never the walk itself.
func startProgressReporter(ctx context.Context, counters *Counters, hook ProgressFunc, interval time.Duration) {
	if hook == nil {
		return
	}

	if interval <= 0 {
		interval = DefaultProgressInterval
	}

	ticker := time.NewTicker(interval)

	go func() {
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				snap := counters.Snapshot()
				hook(snap.FilesProcessed, snap.BytesRead)
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Run warms the page cache under opt.Path and returns the final counters
// plus elapsed time.
//
// The traversal is depth-first and never follows links. Per-item failures
// are converted into the access-error counter and never abort the run; the
// only fatal errors are a root that does not exist or is not a directory.
// Progress updates are delivered to progressHook if provided, at
// opt.ProgressInterval cadence.
//
// With opt.Workers > 1 (or 0, one per CPU) file reads run on a worker pool;
// the final totals are identical to a sequential run over the same tree.
func Run(ctx context.Context, opt Options, progressHook ProgressFunc) (*Result, error) {
	log := logger{enabled: opt.Debug}

	if opt.Path == "" {
		opt.Path = "."
	}

	opt.Path = filepath.Clean(opt.Path)

	root, err := filepath.Abs(opt.Path)
	if err != nil {
		return nil, fmt.Errorf("resolving absolute path: %w", err)
	}

	// Validate the root before traversal begins. Only a missing or
	// non-directory root is fatal; a root whose metadata cannot be read
	// (e.g. no search permission on a parent) is left to the walker,
	// which classifies it and turns the failure into an access error so
	// the run still ends with a report.
	statInfo, err := os.Stat(root)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("accessing path %q: %w", opt.Path, err)
	case err == nil && !statInfo.IsDir():
		return nil, fmt.Errorf("path %q is not a directory", opt.Path)
	}

	workers := opt.Workers
	if workers <= 0 {
		// Same default parallelism fastwalk picks for its walkers.
		workers = fastwalk.DefaultNumWorkers()
	}

	counters := &Counters{}

	// Create child context to ensure progress reporter cleanup
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	startProgressReporter(ctx, counters, progressHook, opt.ProgressInterval)

	log.printf("[debug]: warming %s (workers: %d, staged: %v)\n", root, workers, opt.Staged)

	start := time.Now()

	if opt.Staged {
		runStaged(counters, log, root, workers, opt.OnTotals)
	} else {
		runImmediate(counters, log, root, workers)
	}

	result := &Result{Snapshot: counters.Snapshot()}
	result.Elapsed = time.Since(start)

	return result, nil
}
