package shell

import (
	"context"
	"fmt"

	ldoterrors "ldot.dev/ldot/internal/errors"
)

// Status summarizes a command list run
type Status int

const (
	// AllSucceeded means every command exited with code 0
	AllSucceeded Status = iota
	// SomeFailed means at least one command exited non-zero or could not start
	SomeFailed
)

func (s Status) String() string {
	if s == AllSucceeded {
		return "all succeeded"
	}
	return "some failed"
}

// Outcome records what happened to one command
type Outcome struct {
	Command   string
	Succeeded bool
	ExitCode  int   // -1 when the command never started
	Err       error // *errors.SpawnError when the command never started
}

// Detail is the exit code when the command ran, or the spawn error text
func (o Outcome) Detail() string {
	if o.Err != nil {
		return o.Err.Error()
	}
	return fmt.Sprintf("exit code: %d", o.ExitCode)
}

// Report is the result of running a command list
type Report struct {
	Status   Status
	Outcomes []Outcome
}

// Failed returns the outcomes that did not succeed, in order
func (r *Report) Failed() []Outcome {
	var failed []Outcome
	for _, o := range r.Outcomes {
		if !o.Succeeded {
			failed = append(failed, o)
		}
	}
	return failed
}

// Runner executes command lists one command at a time
type Runner struct {
	Executor  Executor
	Tokenizer Tokenizer
	// BeforeCommand, when set, is called before each command starts
	BeforeCommand func(index int, command string)
	// AfterCommand, when set, is called with each outcome as it is recorded
	AfterCommand func(index int, outcome Outcome)
}

// NewRunner creates a runner using the process executor and whitespace tokenizer
func NewRunner() *Runner {
	return &Runner{
		Executor:  NewProcessExecutor(),
		Tokenizer: WhitespaceTokenizer{},
	}
}

// Run executes every command in order, waiting for each to exit before the
// next starts. A failing command never stops the list.
func (r *Runner) Run(ctx context.Context, commands []string) *Report {
	report := &Report{
		Status:   AllSucceeded,
		Outcomes: make([]Outcome, 0, len(commands)),
	}

	for i, command := range commands {
		if r.BeforeCommand != nil {
			r.BeforeCommand(i, command)
		}

		outcome := r.runOne(ctx, command)
		if !outcome.Succeeded {
			report.Status = SomeFailed
		}
		report.Outcomes = append(report.Outcomes, outcome)

		if r.AfterCommand != nil {
			r.AfterCommand(i, outcome)
		}
	}

	return report
}

func (r *Runner) runOne(ctx context.Context, command string) Outcome {
	tokenizer := r.Tokenizer
	if tokenizer == nil {
		tokenizer = WhitespaceTokenizer{}
	}

	argv, err := tokenizer.Split(command)
	if err == nil && len(argv) == 0 {
		err = errEmptyCommand
	}
	if err != nil {
		return Outcome{Command: command, ExitCode: -1, Err: ldoterrors.NewSpawnError(command, err)}
	}

	code, err := r.Executor.Execute(ctx, argv)
	if err != nil {
		return Outcome{Command: command, ExitCode: -1, Err: ldoterrors.NewSpawnError(command, err)}
	}
	return Outcome{Command: command, Succeeded: code == 0, ExitCode: code}
}
