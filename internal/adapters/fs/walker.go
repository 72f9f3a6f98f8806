// Package fs provides file system adapters for package discovery and the fetch cache.
package fs

import (
	"io/fs"
	"iter"
	"path/filepath"
)

// Walker provides file walking functionality.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// WalkFiles yields every file below root whose base name is name, skipping VCS and ignored directories.
// Paths include root. A walk error is yielded once and ends the iteration.
func (w *Walker) WalkFiles(root, name string, ignores []string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() {
				if path != root && w.shouldSkipDir(d.Name(), ignores) {
					return filepath.SkipDir
				}
				return nil
			}

			if d.Name() != name {
				return nil
			}

			if !yield(path, nil) {
				return filepath.SkipAll
			}
			return nil
		})
		if walkErr != nil {
			yield("", walkErr)
		}
	}
}

// shouldSkipDir reports whether a directory is excluded from the walk.
func (w *Walker) shouldSkipDir(name string, ignores []string) bool {
	// Always skip VCS metadata
	if name == ".git" || name == ".jj" {
		return true
	}

	for _, ignore := range ignores {
		if matched, _ := filepath.Match(ignore, name); matched {
			return true
		}
	}
	return false
}
