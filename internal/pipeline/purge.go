package pipeline

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// findIntermediateDirs lists directories below root named in targets, without
// descending into them or into ignored and hidden directories.
func findIntermediateDirs(root string, targets, ignore []string) ([]string, error) {
	targetSet := toSet(targets)
	ignoreSet := toSet(ignore)

	var dirs []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() || path == root {
			return nil
		}
		name := d.Name()
		if ignoreSet[name] || strings.HasPrefix(name, ".") {
			return filepath.SkipDir
		}
		if targetSet[name] {
			dirs = append(dirs, path)
			return filepath.SkipDir
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", root, err)
	}
	return dirs, nil
}

func removeDir(dir string) error {
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("remove %s: %w", dir, err)
	}
	return nil
}

func toSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, item := range items {
		set[item] = true
	}
	return set
}
