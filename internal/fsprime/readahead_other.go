//go:build !linux

package fsprime

import "os"

// applyReadaheadHint is a no-op on platforms without posix_fadvise.
func applyReadaheadHint(_ *os.File) {}
