package discovery

import (
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Filter narrows discovered test projects by name
type Filter struct{}

// NewFilter creates a new Filter
func NewFilter() *Filter {
	return &Filter{}
}

// FilterByName keeps the projects whose file name matches pattern.
// Wildcard patterns ("*Orders*", "Api.Test?.csproj") are matched against the
// file name; a plain pattern matches when the file name contains it.
func (f *Filter) FilterByName(projects []string, pattern string) []string {
	if pattern == "" {
		return projects
	}

	wildcard := strings.ContainsAny(pattern, "*?[")
	filtered := []string{}
	for _, project := range projects {
		name := filepath.Base(project)
		if wildcard {
			if matched, err := doublestar.Match(pattern, name); err == nil && matched {
				filtered = append(filtered, project)
			}
			continue
		}
		if strings.Contains(name, pattern) {
			filtered = append(filtered, project)
		}
	}

	return filtered
}
