package engine

import (
	"context"

	"github.com/google/uuid"

	ldoterrors "ldot.dev/ldot/internal/errors"
	"ldot.dev/ldot/internal/tui"
)

// Engine plans and runs stages and scripts of registered stacks
type Engine struct {
	registry Registry
	resolver *Resolver
	runner   CommandRunner
	splog    *tui.Splog
	newRunID func() string
}

// Options configures an Engine
type Options struct {
	Registry Registry
	Runner   CommandRunner
	Splog    *tui.Splog
}

// New creates an engine
func New(opts Options) *Engine {
	splog := opts.Splog
	if splog == nil {
		splog = tui.NewSplog()
	}
	return &Engine{
		registry: opts.Registry,
		resolver: NewResolver(opts.Registry, splog),
		runner:   opts.Runner,
		splog:    splog,
		newRunID: uuid.NewString,
	}
}

// Resolver returns the engine's stack resolver
func (e *Engine) Resolver() *Resolver {
	return e.resolver
}

// EffectiveStack returns explicit when set, otherwise the registry's default
// stack. It fails with ErrNoStackSelected when both are empty.
func (e *Engine) EffectiveStack(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	reg, err := e.registry.Read()
	if err != nil {
		return "", err
	}
	if reg.DefaultStack == "" {
		return "", ldoterrors.ErrNoStackSelected
	}
	return reg.DefaultStack, nil
}

// PlanStage resolves the commands of a project stage. A missing project and
// a missing stage both fail with ErrStageNotFound.
func (e *Engine) PlanStage(stackName, project, stage string) (*Plan, error) {
	name, err := e.EffectiveStack(stackName)
	if err != nil {
		return nil, err
	}
	res, err := e.resolver.Resolve(name)
	if err != nil {
		return nil, err
	}

	found, ok := res.Document.FindStage(project, stage)
	if !ok {
		return nil, ldoterrors.NewStageNotFoundError(name, project, stage)
	}

	return &Plan{
		RunID:    e.newRunID(),
		Stack:    name,
		File:     res.Path,
		Kind:     TargetStage,
		Target:   project + "/" + stage,
		Commands: found.Commands,
	}, nil
}

// PlanScript resolves the commands of a script
func (e *Engine) PlanScript(stackName, script string) (*Plan, error) {
	name, err := e.EffectiveStack(stackName)
	if err != nil {
		return nil, err
	}
	res, err := e.resolver.Resolve(name)
	if err != nil {
		return nil, err
	}

	found, ok := res.Document.FindScript(script)
	if !ok {
		return nil, ldoterrors.NewScriptNotFoundError(name, script)
	}

	return &Plan{
		RunID:    e.newRunID(),
		Stack:    name,
		File:     res.Path,
		Kind:     TargetScript,
		Target:   script,
		Commands: found.Commands,
	}, nil
}

// Run hands the plan's commands to the runner and waits for all of them
func (e *Engine) Run(ctx context.Context, plan *Plan) *Execution {
	splog := e.splog.With("run_id", plan.RunID, "stack", plan.Stack, plan.Kind.String(), plan.Target)
	splog.Debug("Running %s %s from %s", plan.Kind, plan.Target, plan.File)
	splog.Info("Executing %d commands", len(plan.Commands))

	report := e.runner.Run(ctx, plan.Commands)

	splog.Debug("Finished %s %s: %s", plan.Kind, plan.Target, report.Status)
	return &Execution{Plan: *plan, Report: report}
}

// RunStage plans and runs a project stage
func (e *Engine) RunStage(ctx context.Context, stackName, project, stage string) (*Execution, error) {
	plan, err := e.PlanStage(stackName, project, stage)
	if err != nil {
		return nil, err
	}
	return e.Run(ctx, plan), nil
}

// RunScript plans and runs a script
func (e *Engine) RunScript(ctx context.Context, stackName, script string) (*Execution, error) {
	plan, err := e.PlanScript(stackName, script)
	if err != nil {
		return nil, err
	}
	return e.Run(ctx, plan), nil
}
