// Package testutil holds helpers shared by moon's package tests.
package testutil

import (
	"flag"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

var updateSnapshots = flag.Bool("update-snapshots", false, "update snapshot golden files")

// snapshotsDir returns the absolute path to the test/snapshots directory.
func snapshotsDir() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "..", "..", "test", "snapshots")
}

// AssertSnapshot compares actual output against a named golden file.
// If the -update-snapshots flag is set, it writes the actual output to the file instead.
// The name is used as the filename under test/snapshots/ (e.g. "list-view.txt").
func AssertSnapshot(t *testing.T, name string, actual string) {
	t.Helper()

	dir := snapshotsDir()
	path := filepath.Join(dir, name)

	if *updateSnapshots {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("failed to create snapshots dir: %v", err)
		}
		if err := os.WriteFile(path, []byte(actual), 0o644); err != nil {
			t.Fatalf("failed to write snapshot %q: %v", name, err)
		}
		t.Logf("updated snapshot: %s", name)
		return
	}

	expected, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("snapshot %q not found; run with -update-snapshots to create it: %v", name, err)
	}

	if string(expected) != actual {
		line, want, got := firstDiff(string(expected), actual)
		t.Errorf("snapshot %q mismatch at line %d\n  want: %q\n  got:  %q\n\n--- expected ---\n%s\n--- actual ---\n%s",
			name, line, want, got, string(expected), actual)
	}
}

// firstDiff returns the 1-based number of the first line that differs and
// both versions of it.
func firstDiff(expected, actual string) (int, string, string) {
	e := strings.Split(expected, "\n")
	a := strings.Split(actual, "\n")
	for i := 0; i < max(len(e), len(a)); i++ {
		var el, al string
		if i < len(e) {
			el = e[i]
		}
		if i < len(a) {
			al = a[i]
		}
		if el != al {
			return i + 1, el, al
		}
	}
	return 0, "", ""
}
