// Package testrun holds the configuration of one test orchestrator run.
package testrun

// Options is an immutable snapshot of the test run configuration.
type Options struct {
	CIMode       bool   // Capture output and replay it in the summary
	Filter       string // Passed to the test command's --filter
	SkipClean    bool   // Skip the clean/restore/build pipeline
	WithCoverage bool   // Collect coverage
	Only         string // Narrow discovered test projects by name
}

// Builder collects options through chained setters. A nil argument leaves
// the current value untouched.
type Builder struct {
	opts Options
}

// NewBuilder creates a Builder with every option at its zero value.
func NewBuilder() *Builder {
	return &Builder{}
}

// From creates a Builder seeded with base.
func From(base Options) *Builder {
	return &Builder{opts: base}
}

// CIMode sets whether command output is captured and replayed on failure.
func (b *Builder) CIMode(v *bool) *Builder {
	if v != nil {
		b.opts.CIMode = *v
	}
	return b
}

// Filter sets the expression passed to the test command's --filter.
func (b *Builder) Filter(v *string) *Builder {
	if v != nil {
		b.opts.Filter = *v
	}
	return b
}

// SkipClean sets whether the clean, restore and build stages are skipped.
func (b *Builder) SkipClean(v *bool) *Builder {
	if v != nil {
		b.opts.SkipClean = *v
	}
	return b
}

// WithCoverage sets whether coverage is collected.
func (b *Builder) WithCoverage(v *bool) *Builder {
	if v != nil {
		b.opts.WithCoverage = *v
	}
	return b
}

// Only sets the name pattern that narrows the discovered test projects.
func (b *Builder) Only(v *string) *Builder {
	if v != nil {
		b.opts.Only = *v
	}
	return b
}

// Build returns the configured snapshot. Later setter calls do not affect it.
func (b *Builder) Build() Options {
	return b.opts
}
