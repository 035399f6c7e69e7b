package discovery

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Scanner finds test project files below a directory
type Scanner struct {
	skipDirs map[string]bool
	pattern  string
}

// NewScanner creates a Scanner that matches file names against pattern and
// never descends into the given directories
func NewScanner(pattern string, skipDirs []string) *Scanner {
	skipMap := make(map[string]bool)
	for _, dir := range skipDirs {
		skipMap[dir] = true
	}
	return &Scanner{skipDirs: skipMap, pattern: pattern}
}

// Pattern returns the file name pattern test projects must match
func (s *Scanner) Pattern() string {
	return s.pattern
}

// Scan returns every test project below root in walk order. The result is
// empty, not nil, when nothing matches.
func (s *Scanner) Scan(root string) ([]string, error) {
	if !doublestar.ValidatePattern(s.pattern) {
		return nil, fmt.Errorf("invalid test project pattern: %s", s.pattern)
	}

	root = filepath.Clean(root)
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("solution root does not exist: %s", root)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("solution root is not a directory: %s", root)
	}

	projects := []string{}
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if path == root {
				return nil
			}
			name := d.Name()
			if strings.HasPrefix(name, ".") || s.skipDirs[name] {
				return filepath.SkipDir
			}
			return nil
		}

		if matched, _ := doublestar.Match(s.pattern, d.Name()); matched {
			projects = append(projects, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", root, err)
	}

	return projects, nil
}
