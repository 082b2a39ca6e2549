// Package fs provides file system adapters for locating projects and hashing files.
package fs

import (
	"io/fs"
	"iter"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// skippedDirs are never descended into.
var skippedDirs = map[string]bool{
	".git":         true,
	".jj":          true,
	".vs":          true,
	".rebind":      true,
	"bin":          true,
	"obj":          true,
	"node_modules": true,
	"packages":     true,
}

// Walker provides file walking functionality.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// WalkFiles yields every file below root. Build output and tool directories
// are skipped, as is anything whose slash-separated path relative to root
// matches one of the doublestar exclude globs.
func (w *Walker) WalkFiles(root string, exclude []string) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				// Unreadable entries are skipped, the rest of the tree is still walked.
				if d != nil && d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}

			if path == root {
				return nil
			}

			if d.IsDir() {
				if skippedDirs[strings.ToLower(d.Name())] || w.excluded(root, path, exclude) {
					return filepath.SkipDir
				}
				return nil
			}

			if w.excluded(root, path, exclude) {
				return nil
			}

			if !yield(path) {
				return filepath.SkipAll
			}
			return nil
		})
	}
}

func (w *Walker) excluded(root, path string, exclude []string) bool {
	if len(exclude) == 0 {
		return false
	}

	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	rel = filepath.ToSlash(rel)

	for _, pattern := range exclude {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
		// "Legacy/**" should also prune the Legacy directory itself.
		if ok, _ := doublestar.Match(pattern, rel+"/"); ok {
			return true
		}
	}
	return false
}
