// Package mocks provides test doubles shared across package tests.
package mocks

import (
	"context"
	"strings"

	"dotpipe/internal/domain"
	"dotpipe/internal/execution"
)

// Executor records invocations and answers them from Respond.
// A nil Respond makes every command succeed with empty output.
type Executor struct {
	Calls   []execution.Invocation
	Respond func(inv execution.Invocation) (domain.StageResult, error)
}

// Run implements execution.Executor.
func (e *Executor) Run(_ context.Context, inv execution.Invocation) (domain.StageResult, error) {
	e.Calls = append(e.Calls, inv)
	if e.Respond == nil {
		return domain.StageResult{Stage: inv.Stage}, nil
	}
	result, err := e.Respond(inv)
	result.Stage = inv.Stage
	return result, err
}

// Stages returns the stage names of the recorded calls in order.
func (e *Executor) Stages() []string {
	stages := make([]string, 0, len(e.Calls))
	for _, c := range e.Calls {
		stages = append(stages, c.Stage)
	}
	return stages
}

// CallsFor returns the recorded calls for one stage.
func (e *Executor) CallsFor(stage string) []execution.Invocation {
	var calls []execution.Invocation
	for _, c := range e.Calls {
		if c.Stage == stage {
			calls = append(calls, c)
		}
	}
	return calls
}

// FailStage makes every invocation of stage exit with code.
func FailStage(stage string, code int) func(execution.Invocation) (domain.StageResult, error) {
	return func(inv execution.Invocation) (domain.StageResult, error) {
		if inv.Stage == stage {
			return domain.StageResult{ExitCode: code, Stderr: stage + " exploded\n"}, nil
		}
		return domain.StageResult{}, nil
	}
}

// FailArg makes every invocation with an argument containing substr exit with code.
func FailArg(substr string, code int) func(execution.Invocation) (domain.StageResult, error) {
	return func(inv execution.Invocation) (domain.StageResult, error) {
		for _, arg := range inv.Args {
			if strings.Contains(arg, substr) {
				return domain.StageResult{
					ExitCode: code,
					Stdout:   "Failed!  - Failed: 1, Passed: 3\n",
					Stderr:   "error in " + substr + "\n",
				}, nil
			}
		}
		return domain.StageResult{Stdout: "Passed!  - Failed: 0\n"}, nil
	}
}
