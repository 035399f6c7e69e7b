package domain

import "time"

// StageResult is the outcome of a single external command invocation.
type StageResult struct {
	Stage    string        // clean, restore, build, test, ...
	ExitCode int           // 0 means success
	Stdout   string        // Captured stdout, empty when streamed
	Stderr   string        // Captured stderr, empty when streamed
	Duration time.Duration // Time taken to execute
}

// Success reports whether the command exited with status 0.
func (r StageResult) Success() bool {
	return r.ExitCode == 0
}

// TestProjectResult is the outcome of running the test command against one test project.
type TestProjectResult struct {
	Project  string        `json:"project"`
	ExitCode int           `json:"exit_code"`
	Stdout   string        `json:"stdout,omitempty"`
	Stderr   string        `json:"stderr,omitempty"`
	Duration time.Duration `json:"duration"`

	// Parsed from captured output; nil when the output was streamed
	Counts      *TestCounts `json:"counts,omitempty"`
	FailedTests []string    `json:"failed_tests,omitempty"`
}

// Success reports whether the project's test run exited with status 0.
func (r TestProjectResult) Success() bool {
	return r.ExitCode == 0
}

// TestCounts are the test case totals reported by the test runner.
type TestCounts struct {
	Passed  int `json:"passed"`
	Failed  int `json:"failed"`
	Skipped int `json:"skipped"`
	Total   int `json:"total"`
}

// Add returns the element-wise sum of c and o.
func (c TestCounts) Add(o TestCounts) TestCounts {
	return TestCounts{
		Passed:  c.Passed + o.Passed,
		Failed:  c.Failed + o.Failed,
		Skipped: c.Skipped + o.Skipped,
		Total:   c.Total + o.Total,
	}
}

// AggregateOutcome summarizes a per-project test run.
type AggregateOutcome struct {
	TotalProjects int
	Failed        []TestProjectResult
}

// Succeeded is true iff no project failed.
func (o AggregateOutcome) Succeeded() bool {
	return len(o.Failed) == 0
}

// Aggregate collects the failed results, preserving their order.
func Aggregate(results []TestProjectResult) AggregateOutcome {
	outcome := AggregateOutcome{TotalProjects: len(results)}
	for _, r := range results {
		if !r.Success() {
			outcome.Failed = append(outcome.Failed, r)
		}
	}
	return outcome
}
