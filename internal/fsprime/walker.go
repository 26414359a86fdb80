package fsprime

import (
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// workQueueDepth bounds the channel between the walker and the reader pool,
// so that discovery cannot run unboundedly ahead of slow reads.
const workQueueDepth = 256

// fileEntry is a regular file discovered by the walker. The size is taken at
// discovery time and is informational only; the file is not re-validated
// before it is read.
type fileEntry struct {
	path string
	size int64
}

// walker performs the depth-first traversal and hands every regular file to
// the dispatch function. It owns all recursion; dispatch decides whether the
// file is read immediately, queued for a worker, or collected for a staged
// pass.
type walker struct {
	counters *Counters
	log      logger
	dispatch func(path string, d fs.DirEntry)
}

// walkRoot starts the traversal. The root is treated like any other
// directory: if it is link-classified, or its metadata cannot be read, it
// counts as one access error and nothing is descended into.
func (w *walker) walkRoot(root string) {
	link, err := IsLink(root)
	if err != nil {
		w.log.printf("[debug]: %s classifying root %s: %v\n", errClass(err), root, err)
		w.counters.AddAccessError()

		return
	}

	if link {
		w.log.printf("[debug]: root %s is a link, not descending\n", root)
		w.counters.AddAccessError()

		return
	}

	w.walkDir(root)
}

// walkDir enumerates one directory and recurses. Every failure here is local:
// a directory that cannot be enumerated contributes one access error and is
// not counted as scanned, but entries os.ReadDir managed to return before
// the failure are still processed, and sibling subtrees are unaffected.
func (w *walker) walkDir(dir string) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		w.log.printf("[debug]: %s enumerating %s: %v\n", errClass(err), dir, err)
		w.counters.AddAccessError()
	} else {
		w.counters.AddDirectoryScanned()
	}

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		mode := entry.Type()

		switch {
		case IsLinkMode(mode):
			// Links are invisible to the walk: never opened, never
			// recursed into, never an error. Skipping them is also what
			// keeps the traversal loop-free.
			w.log.printf("[debug]: skipping link %s\n", path)
		case mode.IsDir():
			w.walkDir(path)
		case mode.IsRegular():
			w.dispatch(path, entry)
		default:
			// Sockets, pipes and devices carry no cacheable file content.
			w.log.printf("[debug]: skipping special file %s\n", path)
		}
	}
}

// startReaderPool launches workers goroutines draining the work channel,
// each with its own reader (and thus its own chunk buffer). The returned
// WaitGroup completes once the channel is closed and drained.
func startReaderPool(counters *Counters, log logger, workers int, work <-chan string) *sync.WaitGroup {
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			r := newReader(counters, log)
			for path := range work {
				// Failures are already accounted by the reader.
				_ = r.warm(path)
			}
		}()
	}

	return &wg
}

// runImmediate reads each file as the walker discovers it, either inline
// (workers == 1) or through a bounded work channel and a reader pool.
func runImmediate(counters *Counters, log logger, root string, workers int) {
	if workers <= 1 {
		r := newReader(counters, log)
		w := &walker{
			counters: counters,
			log:      log,
			dispatch: func(path string, _ fs.DirEntry) {
				_ = r.warm(path)
			},
		}
		w.walkRoot(root)

		return
	}

	work := make(chan string, workQueueDepth)
	wg := startReaderPool(counters, log, workers, work)

	w := &walker{
		counters: counters,
		log:      log,
		dispatch: func(path string, _ fs.DirEntry) {
			work <- path
		},
	}
	w.walkRoot(root)

	close(work)
	wg.Wait()
}

// runStaged first collects every regular file, reports the discovered totals
// through onTotals, then reads the collected files. Collecting first costs
// memory proportional to the file count but makes the total byte count known
// before any read starts.
func runStaged(counters *Counters, log logger, root string, workers int, onTotals func(files, bytes int64)) {
	var files []fileEntry

	w := &walker{
		counters: counters,
		log:      log,
		dispatch: func(path string, d fs.DirEntry) {
			entry := fileEntry{path: path}
			if info, err := d.Info(); err == nil {
				entry.size = info.Size()
			}

			files = append(files, entry)
		},
	}
	w.walkRoot(root)

	if onTotals != nil {
		var total int64
		for _, f := range files {
			total += f.size
		}

		onTotals(int64(len(files)), total)
	}

	if workers <= 1 {
		r := newReader(counters, log)
		for _, f := range files {
			_ = r.warm(f.path)
		}

		return
	}

	work := make(chan string, workQueueDepth)
	wg := startReaderPool(counters, log, workers, work)

	for _, f := range files {
		work <- f.path
	}

	close(work)
	wg.Wait()
}
