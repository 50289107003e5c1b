// Package common provides shared helper functions for CLI commands.
package common

import (
	"github.com/spf13/cobra"

	"ldot.dev/ldot/internal/runtime"
)

// Persistent flag names defined on the root command
const (
	FlagRegistry   = "registry"
	FlagDebug      = "debug"
	FlagShellWords = "shell-words"
)

// Run is a helper that provides a runtime context with an opened registry to
// a command's execution function
func Run(cmd *cobra.Command, fn func(ctx *runtime.Context) error) error {
	ctx, err := runtime.GetContext(Options(cmd))
	if err != nil {
		return err
	}
	defer ctx.Close()
	bind(cmd, ctx)
	return fn(ctx)
}

// RunWithoutRegistry provides a runtime context that never reads or writes
// the registry file
func RunWithoutRegistry(cmd *cobra.Command, fn func(ctx *runtime.Context) error) error {
	ctx, err := runtime.NewContext(Options(cmd))
	if err != nil {
		return err
	}
	defer ctx.Close()
	bind(cmd, ctx)
	return fn(ctx)
}

// Options builds runtime options from the persistent flags and the
// command's streams
func Options(cmd *cobra.Command) runtime.Options {
	registry, _ := cmd.Flags().GetString(FlagRegistry)
	debug, _ := cmd.Flags().GetBool(FlagDebug)
	shellWords, _ := cmd.Flags().GetBool(FlagShellWords)
	return runtime.Options{
		RegistryPath: registry,
		Debug:        debug,
		ShellWords:   shellWords,
		Stdin:        cmd.InOrStdin(),
		Stdout:       cmd.OutOrStdout(),
		Stderr:       cmd.ErrOrStderr(),
	}
}

func bind(cmd *cobra.Command, ctx *runtime.Context) {
	if c := cmd.Context(); c != nil {
		ctx.Context = c
	}
}

// CompleteStackNames is a helper for cobra.ValidArgsFunction that returns the
// names of every valid registered stack for the first argument.
func CompleteStackNames(cmd *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	ctx, err := runtime.NewContext(Options(cmd))
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	defer ctx.Close()

	candidates, err := ctx.Store.Candidates()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	var names []string
	for _, c := range candidates {
		if c.Valid() {
			names = append(names, c.Doc.StackName)
		}
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}
