package domain

// RunReportMeta contains metadata about a stored per-project test run.
type RunReportMeta struct {
	RunID           string  `json:"run_id"`
	Solution        string  `json:"solution"`
	TotalProjects   int     `json:"total_projects"`
	FailedProjects  int     `json:"failed_projects"`
	PassedProjects  int     `json:"passed_projects"`
	Captured        bool    `json:"captured"`
	Coverage        bool    `json:"coverage"`
	Filter          string  `json:"filter,omitempty"`
	Duration        string  `json:"duration"`
	DurationSeconds float64 `json:"duration_seconds"`
	Timestamp       string  `json:"timestamp"`
}

// RunReport is the persisted form of a per-project test run.
type RunReport struct {
	Meta     RunReportMeta       `json:"meta"`
	Projects []TestProjectResult `json:"projects"`
}

// Failures returns the failed project results in run order.
func (r *RunReport) Failures() []TestProjectResult {
	var failed []TestProjectResult
	for _, p := range r.Projects {
		if !p.Success() {
			failed = append(failed, p)
		}
	}
	return failed
}
