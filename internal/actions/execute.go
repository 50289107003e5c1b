package actions

import (
	"errors"
	"fmt"

	"ldot.dev/ldot/internal/engine"
	ldoterrors "ldot.dev/ldot/internal/errors"
	"ldot.dev/ldot/internal/runtime"
	"ldot.dev/ldot/internal/shell"
	"ldot.dev/ldot/internal/tui"
)

// ExecuteOptions contains options for the execute command
type ExecuteOptions struct {
	Stack   string // empty selects the default stack
	Project string
	Stage   string
}

// ExecuteAction runs every command of a project stage and prints a report.
// It returns ErrCommandsFailed after the report when any command failed.
func ExecuteAction(ctx *runtime.Context, opts ExecuteOptions) error {
	plan, err := ctx.Engine.PlanStage(opts.Stack, opts.Project, opts.Stage)
	if err != nil {
		return withStackHint(err)
	}
	return runPlan(ctx, plan)
}

// ScriptOptions contains options for the script command
type ScriptOptions struct {
	Stack  string // empty selects the default stack
	Script string
}

// ScriptAction runs every command of a script and prints a report
func ScriptAction(ctx *runtime.Context, opts ScriptOptions) error {
	plan, err := ctx.Engine.PlanScript(opts.Stack, opts.Script)
	if err != nil {
		return withStackHint(err)
	}
	return runPlan(ctx, plan)
}

func runPlan(ctx *runtime.Context, plan *engine.Plan) error {
	splog := ctx.Splog
	ctx.Runner.BeforeCommand = func(_ int, command string) {
		splog.Newline()
		splog.Info("%s", tui.FormatCommandEcho(command))
	}
	ctx.Runner.AfterCommand = func(_ int, outcome shell.Outcome) {
		if outcome.Err != nil {
			splog.Info("%s", tui.ColorRed(outcome.Err.Error()))
		}
	}
	defer func() {
		ctx.Runner.BeforeCommand = nil
		ctx.Runner.AfterCommand = nil
	}()

	exec := ctx.Engine.Run(ctx, plan)

	splog.Newline()
	for _, outcome := range exec.Report.Outcomes {
		splog.Info("%s", tui.FormatOutcome(outcome))
	}
	splog.Info("%s", tui.FormatStatus(exec.Report))

	if !exec.Succeeded() {
		return ldoterrors.ErrCommandsFailed
	}
	return nil
}

func withStackHint(err error) error {
	if errors.Is(err, ldoterrors.ErrNoStackSelected) {
		return fmt.Errorf("%w: pass a stack name or run 'ldot config default <name>'", err)
	}
	return err
}
