package paths

import (
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Lister lists the files matching a glob pattern.
type Lister interface {
	Glob(pattern string) ([]string, error)
}

// FSLister globs an fs.FS and drops matches inside ignored directories.
type FSLister struct {
	fsys   fs.FS
	ignore map[string]bool
}

// NewFSLister creates a Lister over fsys that never returns matches below any
// directory named in ignoreDirs.
func NewFSLister(fsys fs.FS, ignoreDirs []string) *FSLister {
	ignore := make(map[string]bool, len(ignoreDirs))
	for _, dir := range ignoreDirs {
		ignore[dir] = true
	}
	return &FSLister{fsys: fsys, ignore: ignore}
}

// NewDirLister creates a Lister rooted at dir on the host filesystem.
func NewDirLister(dir string, ignoreDirs []string) *FSLister {
	return NewFSLister(os.DirFS(dir), ignoreDirs)
}

// Glob returns the files matching pattern in lexical walk order. Ignored
// directories are never entered, and neither is any directory that cannot
// lead to a match: one deeper than a pattern without "**" reaches, or one not
// matching the pattern's leading literal segments.
func (l *FSLister) Glob(pattern string) ([]string, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("glob %s: %w", pattern, doublestar.ErrBadPattern)
	}

	segments := strings.Split(pattern, "/")
	fixed := len(segments)
	for i, seg := range segments {
		if strings.Contains(seg, "**") {
			fixed = i
			break
		}
	}

	matches := []string{}
	err := fs.WalkDir(l.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if p == "." {
				return err
			}
			// Unreadable subdirectory.
			return nil
		}
		if p == "." {
			return nil
		}

		if d.IsDir() {
			if l.ignore[d.Name()] {
				return fs.SkipDir
			}
			depth := strings.Count(p, "/")
			if depth+1 >= fixed && fixed == len(segments) {
				return fs.SkipDir
			}
			if depth < fixed {
				prefix := strings.Join(segments[:depth+1], "/")
				if ok, _ := doublestar.Match(prefix, p); !ok {
					return fs.SkipDir
				}
			}
			return nil
		}

		if ok, _ := doublestar.Match(pattern, p); ok {
			matches = append(matches, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	return matches, nil
}
