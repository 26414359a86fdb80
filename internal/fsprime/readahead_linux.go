//go:build linux

package fsprime

import (
	"os"

	"golang.org/x/sys/unix"
)

// applyReadaheadHint tells the kernel the file will be read sequentially and
// that its pages are wanted, widening the read-ahead window and starting the
// cache fill early. Both hints are advisory; failures are ignored.
func applyReadaheadHint(f *os.File) {
	fd := int(f.Fd())
	_ = unix.Fadvise(fd, 0, 0, unix.FADV_SEQUENTIAL)
	_ = unix.Fadvise(fd, 0, 0, unix.FADV_WILLNEED)
}
