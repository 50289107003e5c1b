package cli

import (
	"github.com/spf13/cobra"

	"ldot.dev/ldot/internal/actions"
	"ldot.dev/ldot/internal/cli/common"
	"ldot.dev/ldot/internal/runtime"
)

// newConfigCmd creates the config command
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Aliases: []string{"configure"},
		Short:   "Inspect and change the stack registry",
		Long: `Inspect and change the stack registry.

Examples:
  ldot config list
  ldot config list --format yaml
  ldot config default web
  ldot config regen`,
	}

	cmd.AddCommand(newConfigListCmd())
	cmd.AddCommand(newConfigDefaultCmd())
	cmd.AddCommand(newConfigEditCmd())
	cmd.AddCommand(newConfigRegenCmd())

	return cmd
}

func newConfigListCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show the default stack and every registered stack file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return common.Run(cmd, func(ctx *runtime.Context) error {
				return actions.ConfigListAction(ctx, actions.ConfigListOptions{Format: format})
			})
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", actions.FormatText, "Output format: text, json or yaml")
	_ = cmd.RegisterFlagCompletionFunc("format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{actions.FormatText, actions.FormatJSON, actions.FormatYAML}, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func newConfigDefaultCmd() *cobra.Command {
	var clearDefault bool

	cmd := &cobra.Command{
		Use:               "default [name]",
		Short:             "Show or set the stack used when none is given",
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: common.CompleteStackNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			return common.Run(cmd, func(ctx *runtime.Context) error {
				return actions.ConfigDefaultAction(ctx, actions.ConfigDefaultOptions{
					Name:  firstArg(args),
					Clear: clearDefault,
				})
			})
		},
	}

	cmd.Flags().BoolVar(&clearDefault, "clear", false, "Unset the default stack")

	return cmd
}

func newConfigEditCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "edit",
		Short: "Print the registry file location for editing by hand",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return common.RunWithoutRegistry(cmd, actions.ConfigEditAction)
		},
	}
}

func newConfigRegenCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "regen",
		Aliases: []string{"regenerate"},
		Short:   "Replace the registry with an empty one",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return common.RunWithoutRegistry(cmd, actions.ConfigRegenAction)
		},
	}
}
