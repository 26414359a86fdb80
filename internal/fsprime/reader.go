package fsprime

import (
	"io"
	"os"
)

// reader streams single files into the void to pull their pages into the OS
// cache. Each reader owns one reusable chunk buffer, so a reader instance
// must not be shared between goroutines; the worker pool gives every worker
// its own.
type reader struct {
	counters *Counters
	log      logger
	buf      []byte
}

// newReader creates a reader accounting into counters.
func newReader(counters *Counters, log logger) *reader {
	return &reader{
		counters: counters,
		log:      log,
		buf:      make([]byte, ChunkSize),
	}
}

// warm reads the file at path to the end, discarding the content. It counts
// the file as processed only on clean end-of-stream; any open or mid-read
// failure counts exactly one access error instead. Bytes accounted before a
// failure are kept — a partial read still warmed those pages. The handle is
// released on every exit path.
func (r *reader) warm(path string) error {
	file, err := os.Open(path)
	if err != nil {
		r.log.printf("[debug]: %s opening %s: %v\n", errClass(err), path, err)
		r.counters.AddAccessError()

		return err
	}
	defer file.Close()

	applyReadaheadHint(file)

	for {
		n, err := file.Read(r.buf)
		if n > 0 {
			r.counters.AddBytesRead(int64(n))
		}

		if err == io.EOF {
			break
		}

		if err != nil {
			r.log.printf("[debug]: %s reading %s: %v\n", errClass(err), path, err)
			r.counters.AddAccessError()

			return err
		}
	}

	r.counters.AddFileProcessed()

	return nil
}
