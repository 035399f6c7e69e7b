package domain

import (
	"errors"
	"fmt"
)

// Exit codes used when a failure carries no natural numeric code.
const (
	ExitSuccess = 0
	ExitFailure = 1
)

// ResolutionError reports that a required file could not be located.
type ResolutionError struct {
	Target string
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("unable to find %s", e.Target)
}

// StageError reports an external command that exited non-zero.
type StageError struct {
	Stage    string
	ExitCode int
	Cause    error // set when the process could not be started or a purge failed
}

func (e *StageError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s failed: %v", e.Stage, e.Cause)
	}
	return fmt.Sprintf("%s failed with exit code %d", e.Stage, e.ExitCode)
}

func (e *StageError) Unwrap() error {
	return e.Cause
}

// NoProjectsError reports that no test projects were discovered.
type NoProjectsError struct {
	Root    string
	Pattern string
}

func (e *NoProjectsError) Error() string {
	return fmt.Sprintf("no test projects matching %s found under %s", e.Pattern, e.Root)
}

// TestFailuresError reports that one or more test projects failed.
type TestFailuresError struct {
	Failed int
	Total  int
}

func (e *TestFailuresError) Error() string {
	return fmt.Sprintf("%d of %d test project(s) failed", e.Failed, e.Total)
}

// ExitCode maps an error returned by the pipeline to a process exit status.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var stageErr *StageError
	if errors.As(err, &stageErr) && stageErr.ExitCode != 0 {
		return stageErr.ExitCode
	}
	return ExitFailure
}
