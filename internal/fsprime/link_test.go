package fsprime

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

// symlinkOrSkip creates a symlink and skips the test on platforms where
// symlink creation is not permitted (e.g. Windows without privileges).
func symlinkOrSkip(t *testing.T, oldname, newname string) {
	t.Helper()

	if err := os.Symlink(oldname, newname); err != nil {
		t.Skipf("cannot create symlinks on this platform: %v", err)
	}
}

func TestIsLinkMode(t *testing.T) {
	cases := []struct {
		name string
		mode fs.FileMode
		want bool
	}{
		{"regular", 0, false},
		{"directory", fs.ModeDir, false},
		{"symlink", fs.ModeSymlink, true},
		{"irregular", fs.ModeIrregular, true},
		{"named pipe", fs.ModeNamedPipe, false},
	}

	for _, tc := range cases {
		if got := IsLinkMode(tc.mode); got != tc.want {
			t.Errorf("%s: IsLinkMode = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestIsLinkRegularFile(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "plain.txt")
	if err := os.WriteFile(path, []byte("data"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	link, err := IsLink(path)
	if err != nil {
		t.Fatalf("IsLink: %v", err)
	}
	if link {
		t.Error("regular file classified as link")
	}
}

func TestIsLinkSymlink(t *testing.T) {
	dir := t.TempDir()

	target := filepath.Join(dir, "target")
	if err := os.Mkdir(target, 0o755); err != nil {
		t.Fatalf("creating target: %v", err)
	}

	link := filepath.Join(dir, "link")
	symlinkOrSkip(t, target, link)

	got, err := IsLink(link)
	if err != nil {
		t.Fatalf("IsLink: %v", err)
	}
	if !got {
		t.Error("symlink not classified as link")
	}
}

// TestIsLinkMissing verifies that unreadable metadata surfaces as an error,
// which callers treat like any other access error.
func TestIsLinkMissing(t *testing.T) {
	if _, err := IsLink(filepath.Join(t.TempDir(), "gone")); err == nil {
		t.Error("expected error for missing path")
	}
}
