package actions

import (
	"ldot.dev/ldot/internal/config"
	"ldot.dev/ldot/internal/runtime"
	"ldot.dev/ldot/internal/stack"
	"ldot.dev/ldot/internal/tui"
)

// LoadOptions contains options for the load command
type LoadOptions struct {
	File string
}

// LoadAction validates a stack file and adds it to the registry.
// Invalid files are never registered.
func LoadAction(ctx *runtime.Context, opts LoadOptions) error {
	path, err := stackFilePath(opts.File)
	if err != nil {
		return err
	}
	canonical, err := config.Canonicalize(path)
	if err != nil {
		return err
	}

	doc, err := stack.Load(canonical)
	if err != nil {
		return err
	}

	candidates, err := ctx.Store.Candidates()
	if err != nil {
		return err
	}

	if _, err := ctx.Store.Register(canonical); err != nil {
		return err
	}
	ctx.Splog.Info("Loaded stack %s from %s", tui.ColorCyan(doc.StackName), canonical)

	for _, c := range candidates {
		if c.Valid() && c.Doc.StackName == doc.StackName {
			ctx.Splog.Warn("Stack %s is also declared by %s, which was loaded first and takes precedence", doc.StackName, c.Path)
			break
		}
	}
	return nil
}

// UnloadOptions contains options for the unload command
type UnloadOptions struct {
	File string
}

// UnloadAction removes a stack file from the registry. The file is kept.
func UnloadAction(ctx *runtime.Context, opts UnloadOptions) error {
	path, err := stackFilePath(opts.File)
	if err != nil {
		return err
	}

	canonical, err := ctx.Store.Unregister(path)
	if err != nil {
		return err
	}
	ctx.Splog.Info("Unloaded %s", canonical)

	changed, err := ctx.Store.Reconcile()
	if err != nil {
		return err
	}
	if changed {
		ctx.Splog.Debug("Cleared the default stack because it is no longer registered")
	}
	return nil
}
