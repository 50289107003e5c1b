package cli

import (
	"github.com/spf13/cobra"

	"ldot.dev/ldot/internal/actions"
	"ldot.dev/ldot/internal/cli/common"
	"ldot.dev/ldot/internal/runtime"
	"ldot.dev/ldot/internal/tui"
)

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

// newValidateCmd creates the validate command
func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file]",
		Short: "Check that a stack file parses and its names are valid",
		Long: `Check that a stack file parses and its names are valid.

The file defaults to ldot_stack.json in the current directory. Only the first
problem found is reported.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return common.RunWithoutRegistry(cmd, func(ctx *runtime.Context) error {
				return actions.ValidateAction(ctx, actions.ValidateOptions{File: firstArg(args)})
			})
		},
	}
}

// newGenerateCmd creates the generate command
func newGenerateCmd() *cobra.Command {
	var (
		name          string
		version       string
		description   string
		noInteractive bool
	)

	cmd := &cobra.Command{
		Use:     "generate [file]",
		Aliases: []string{"init"},
		Short:   "Write a template stack file",
		Long: `Write a template stack file.

When run in a terminal, ldot asks for the file path, stack name, version and
description. A directory path gets ldot_stack.json appended. An existing file
is never overwritten.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return common.RunWithoutRegistry(cmd, func(ctx *runtime.Context) error {
				return actions.GenerateAction(ctx, actions.GenerateOptions{
					File:        firstArg(args),
					StackName:   name,
					Version:     version,
					Description: description,
					Interactive: !noInteractive && tui.InteractiveAllowed(ctx.Settings.NonInteractive),
				})
			})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Stack name (default \"stack\")")
	cmd.Flags().StringVar(&version, "stack-version", "", "Stack version (default \"1.0.0\")")
	cmd.Flags().StringVar(&description, "description", "", "Stack description (default \"Stack Description\")")
	cmd.Flags().BoolVar(&noInteractive, "no-interactive", false, "Do not prompt; use flags and defaults")

	return cmd
}

// newLoadCmd creates the load command
func newLoadCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "load [file]",
		Aliases: []string{"register"},
		Short:   "Validate a stack file and add it to the registry",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return common.Run(cmd, func(ctx *runtime.Context) error {
				return actions.LoadAction(ctx, actions.LoadOptions{File: firstArg(args)})
			})
		},
	}
}

// newUnloadCmd creates the unload command
func newUnloadCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "unload [file]",
		Aliases: []string{"unregister"},
		Short:   "Remove a stack file from the registry",
		Long: `Remove a stack file from the registry. The file itself is kept.

The file must still exist. Use 'ldot config regen' to start over when a
registered file was deleted.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return common.Run(cmd, func(ctx *runtime.Context) error {
				return actions.UnloadAction(ctx, actions.UnloadOptions{File: firstArg(args)})
			})
		},
	}
}
