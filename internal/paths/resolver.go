// Package paths locates solution, project and assembly files below a work
// directory using ordered glob cascades, memoizing every path it finds.
package paths

import (
	"path"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"dotpipe/internal/domain"
)

// Resolver finds target files relative to its root directory.
//
// A found path is cached for the lifetime of the Resolver; a miss is not, so a
// later call can still succeed once the file appears. A Resolver is meant to be
// built once per process and shared; it is not safe for concurrent use.
type Resolver struct {
	root     string
	lister   Lister
	patterns map[Target][]string
	cache    map[Target]string
	log      *zap.Logger
}

// NewResolver creates a Resolver over root using the default cascades.
func NewResolver(root string, lister Lister, log *zap.Logger) *Resolver {
	return NewResolverWithPatterns(root, lister, DefaultPatterns, log)
}

// NewResolverWithPatterns creates a Resolver with custom cascades.
func NewResolverWithPatterns(root string, lister Lister, patterns map[Target][]string, log *zap.Logger) *Resolver {
	if log == nil {
		log = zap.NewNop()
	}
	return &Resolver{
		root:     root,
		lister:   lister,
		patterns: patterns,
		cache:    make(map[Target]string),
		log:      log,
	}
}

// Root returns the directory every resolved path is relative to.
func (r *Resolver) Root() string {
	return r.root
}

// Resolve returns the first match of the first pattern in t's cascade that
// matches anything. The slash-separated path is relative to Root.
func (r *Resolver) Resolve(t Target) (string, bool) {
	if cached, ok := r.cache[t]; ok {
		return cached, true
	}

	for _, pattern := range r.patterns[t] {
		matches, err := r.lister.Glob(pattern)
		if err != nil {
			r.log.Warn("listing failed", zap.Stringer("target", t), zap.String("pattern", pattern), zap.Error(err))
			continue
		}
		if len(matches) == 0 {
			continue
		}
		found := matches[0]
		r.log.Debug("resolved path", zap.Stringer("target", t), zap.String("pattern", pattern), zap.String("path", found))
		r.cache[t] = found
		return found, true
	}

	r.log.Debug("target not found", zap.Stringer("target", t))
	return "", false
}

// Require is Resolve for callers that cannot continue without the target.
func (r *Resolver) Require(t Target) (string, error) {
	p, ok := r.Resolve(t)
	if !ok {
		return "", &domain.ResolutionError{Target: t.String()}
	}
	return p, nil
}

// Dir returns the slash-separated directory containing t.
func (r *Resolver) Dir(t Target) (string, bool) {
	p, ok := r.Resolve(t)
	if !ok {
		return "", false
	}
	return path.Dir(normalize(p)), true
}

// ReleaseDir returns the publish output directory next to the solution, always
// with forward slashes.
func (r *Resolver) ReleaseDir() (string, bool) {
	dir, ok := r.Dir(Solution)
	if !ok {
		return "", false
	}
	return path.Join(dir, ReleaseDirName), true
}

// Abs joins a resolved path to Root using host separators.
func (r *Resolver) Abs(rel string) string {
	if filepath.IsAbs(rel) {
		return rel
	}
	return filepath.Join(r.root, filepath.FromSlash(rel))
}

func normalize(p string) string {
	return strings.ReplaceAll(p, `\`, "/")
}
