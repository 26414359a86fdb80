package fsprime

import (
	"sync/atomic"
	"time"
)

// ChunkSize is the read buffer size used by the file reader. 80 KiB keeps
// each read cache-friendly while amortizing syscall overhead without large
// per-worker memory spikes.
const ChunkSize = 80 * 1024

// ProgressFunc receives periodic progress updates with the cumulative number
// of files processed and bytes read so far.
type ProgressFunc func(files, bytes int64)

// Options configures a warming run.
type Options struct {
	// Path is the root directory to warm. Defaults to the current directory.
	Path string
	// Workers is the number of parallel file readers.
	// 0 selects one per CPU, 1 runs the reference sequential mode.
	Workers int
	// Staged collects the full file list before reading anything, which
	// makes the total byte count known upfront for progress reporting.
	// The default immediate mode reads each file as it is discovered.
	Staged bool
	// OnTotals is invoked once in staged mode, after discovery completes,
	// with the number of files found and the best-effort sum of their sizes.
	OnTotals func(files, bytes int64)
	// ProgressInterval controls the progress callback cadence.
	ProgressInterval time.Duration
	// Debug indicates whether debug output is enabled.
	Debug bool
	// Output represents output format (table or json).
	Output string
	// Version indicates whether to show version and exit.
	Version bool
}

// Snapshot is a point-in-time reading of the run's counters.
type Snapshot struct {
	// DirectoriesScanned is the number of directories fully enumerated.
	DirectoriesScanned int64 `json:"directories_scanned"`
	// FilesProcessed is the number of files read to completion.
	FilesProcessed int64 `json:"files_processed"`
	// BytesRead is the cumulative number of bytes read, including partial
	// reads of files that later failed.
	BytesRead int64 `json:"bytes_read"`
	// AccessErrors is the number of files and directories that could not
	// be opened, read or enumerated.
	AccessErrors int64 `json:"access_errors"`
}

// Result is the final outcome of a warming run.
type Result struct {
	Snapshot

	// Elapsed is the total wall-clock time of the run.
	Elapsed time.Duration `json:"elapsed"`
}

// Counters aggregates run statistics. All mutation goes through atomic
// operations so the walker and any number of reader workers can share one
// instance without lost updates. Every counter is monotonically
// non-decreasing for the lifetime of a run.
type Counters struct {
	directoriesScanned atomic.Int64
	filesProcessed     atomic.Int64
	bytesRead          atomic.Int64
	accessErrors       atomic.Int64
}

// AddDirectoryScanned records one fully enumerated directory.
func (c *Counters) AddDirectoryScanned() {
	c.directoriesScanned.Add(1)
}

// AddFileProcessed records one file read to completion.
func (c *Counters) AddFileProcessed() {
	c.filesProcessed.Add(1)
}

// AddBytesRead accounts n bytes of file content.
func (c *Counters) AddBytesRead(n int64) {
	c.bytesRead.Add(n)
}

// AddAccessError records one failed file or directory.
func (c *Counters) AddAccessError() {
	c.accessErrors.Add(1)
}

// Snapshot returns the current counter values. The four loads are not taken
// under a common lock; the result is only a consistent total once no
// mutators are in flight, which is all the final report needs.
func (c *Counters) Snapshot() Snapshot {
	return Snapshot{
		DirectoriesScanned: c.directoriesScanned.Load(),
		FilesProcessed:     c.filesProcessed.Load(),
		BytesRead:          c.bytesRead.Load(),
		AccessErrors:       c.accessErrors.Load(),
	}
}
