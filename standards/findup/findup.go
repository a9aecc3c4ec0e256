// Package findup locates the nearest ancestor directory containing a named
// file, starting from a working directory and walking toward the root.
package findup

import (
	"os"
	"path/filepath"
)

// Nearest returns the full path of the named file in the closest directory
// containing it, searching startDir first and then each ancestor in turn.
// The second return value reports whether any match was found.
func Nearest(startDir, name string) (string, bool) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false
	}

	for {
		candidate := filepath.Join(dir, name)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}
