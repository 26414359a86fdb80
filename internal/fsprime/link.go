package fsprime

import (
	"errors"
	"io/fs"
	"os"
)

// IsLinkMode reports whether a directory entry's type bits classify it as a
// link: a symbolic link, or an irregular entry such as a Windows junction or
// other reparse point. Link-classified entries are never followed, opened or
// descended into.
func IsLinkMode(mode fs.FileMode) bool {
	return mode&(fs.ModeSymlink|fs.ModeIrregular) != 0
}

// IsLink classifies the entry at path without following it. A non-nil error
// means the entry's metadata could not be read at all (removed, permission
// denied); callers treat that the same as any other access error.
func IsLink(path string) (bool, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return false, err
	}

	return IsLinkMode(info.Mode()), nil
}

// errClass names the error taxonomy bucket for debug output: permission
// refusals versus everything else (locked file, device error, entry removed
// mid-scan).
func errClass(err error) string {
	if errors.Is(err, fs.ErrPermission) {
		return "access denied"
	}

	return "io failure"
}
