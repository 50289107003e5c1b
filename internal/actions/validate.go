package actions

import (
	"ldot.dev/ldot/internal/runtime"
	"ldot.dev/ldot/internal/stack"
	"ldot.dev/ldot/internal/tui"
)

// ValidateOptions contains options for the validate command
type ValidateOptions struct {
	File string
}

// ValidateAction parses and validates a stack file without registering it
func ValidateAction(ctx *runtime.Context, opts ValidateOptions) error {
	path, err := stackFilePath(opts.File)
	if err != nil {
		return err
	}

	ctx.Splog.Info("Validating stack file: %s", path)
	doc, err := stack.Load(path)
	if err != nil {
		return err
	}

	ctx.Splog.Info("Stack %s is valid", tui.ColorCyan(doc.StackName))
	ctx.Splog.Debug("%d projects, %d scripts", len(doc.Projects), len(doc.Scripts))
	return nil
}
