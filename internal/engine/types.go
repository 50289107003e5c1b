package engine

import (
	"ldot.dev/ldot/internal/shell"
	"ldot.dev/ldot/internal/stack"
)

// TargetKind says whether a plan runs a stage or a script
type TargetKind int

const (
	// TargetStage is a project stage
	TargetStage TargetKind = iota
	// TargetScript is a top-level script
	TargetScript
)

func (k TargetKind) String() string {
	if k == TargetScript {
		return "script"
	}
	return "stage"
}

// Resolution is a registered stack file matched by stack name
type Resolution struct {
	Path     string
	Document *stack.Document
}

// Plan is a resolved command list that has not run yet
type Plan struct {
	RunID    string
	Stack    string
	File     string
	Kind     TargetKind
	Target   string // "project/stage" for stages, the script name for scripts
	Commands []string
}

// Execution is the result of running a plan. Failing commands are recorded
// in Report rather than returned as an error.
type Execution struct {
	Plan
	Report *shell.Report
}

// Succeeded reports whether every command exited 0
func (e *Execution) Succeeded() bool {
	return e.Report != nil && e.Report.Status == shell.AllSucceeded
}
